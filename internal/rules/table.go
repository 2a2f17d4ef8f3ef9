package rules

import "regexp"

// NewTable compiles the full rule set. Call once at startup and pass the
// table by reference into each analyzer.
func NewTable() *Table {
	return &Table{
		DocumentCategories: []CategoryRule{
			{
				Category:     "identity",
				Keywords:     []string{"aadhaar", "aadhar", "आधार", "pan", "पैन", "voter", "मतदाता", "passport", "पासपोर्ट", "driving license"},
				FilePatterns: []string{"aadhaar", "pan_card", "voter_id"},
			},
			{
				Category:     "pension",
				Keywords:     []string{"pension", "पेंशन", "ppo", "पीपीओ", "gratuity", "ग्रेच्युटी", "commutation", "retirement", "सेवानिवृत्ति"},
				FilePatterns: []string{"pension", "ppo", "retirement"},
			},
			{
				Category:     "medical",
				Keywords:     []string{"medical", "चिकित्सा", "hospital", "अस्पताल", "prescription", "नुस्खा", "report", "रिपोर्ट", "health", "स्वास्थ्य", "blood", "xray", "x-ray"},
				FilePatterns: []string{"medical", "hospital", "prescription", "lab_report"},
			},
			{
				Category:     "property",
				Keywords:     []string{"property", "संपत्ति", "land", "भूमि", "house", "मकान", "registry", "रजिस्ट्री", "deed"},
				FilePatterns: []string{"property", "land", "registry"},
			},
			{
				Category:     "education",
				Keywords:     []string{"education", "शिक्षा", "degree", "डिग्री", "certificate", "प्रमाणपत्र", "marksheet", "अंकसूची"},
				FilePatterns: []string{"degree", "certificate", "marksheet"},
			},
			{
				Category:     "legal",
				Keywords:     []string{"legal", "कानूनी", "will", "वसीयत", "court", "न्यायालय", "affidavit", "शपथपत्र", "power of attorney"},
				FilePatterns: []string{"legal", "will", "court", "affidavit"},
			},
		},

		CategoryLabels: map[string]string{
			"identity":  "पहचान पत्र",
			"pension":   "पेंशन दस्तावेज़",
			"medical":   "मेडिकल रिकॉर्ड",
			"property":  "संपत्ति दस्तावेज़",
			"education": "शिक्षा प्रमाणपत्र",
			"legal":     "कानूनी दस्तावेज़",
			"other":     "अन्य दस्तावेज़",
		},

		CategoryTags: map[string][]string{
			"identity":  {"पहचान", "सरकारी ID"},
			"pension":   {"पेंशन", "सेवानिवृत्ति", "वित्तीय"},
			"medical":   {"स्वास्थ्य", "चिकित्सा"},
			"property":  {"संपत्ति", "भूमि"},
			"education": {"शिक्षा", "प्रमाणपत्र"},
			"legal":     {"कानूनी", "विधिक"},
			"other":     {"अन्य"},
		},

		ExpiryPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)valid\s*(?:till|until|upto|up to)\s*[:\-]?\s*(\d{1,2}[\s/\-]\d{1,2}[\s/\-]\d{2,4})`),
			regexp.MustCompile(`(?i)expir(?:y|es|ation)\s*(?:date)?\s*[:\-]?\s*(\d{1,2}[\s/\-]\d{1,2}[\s/\-]\d{2,4})`),
			regexp.MustCompile(`(?i)(\d{1,2}[\s/\-]\d{1,2}[\s/\-]\d{4})\s*(?:तक|till)`),
		},

		ScamSignatures: []ScamSignature{
			{
				Pattern:     regexp.MustCompile(`(?i)OTP|ओटीपी.*share|बताइए|बताएं`),
				Type:        "otp_scam",
				Severity:    SeverityCritical,
				Explanation: "कोई भी बैंक या सरकारी कर्मचारी कभी OTP नहीं माँगता। यह धोखाधड़ी है।",
			},
			{
				Pattern:     regexp.MustCompile(`(?i)bank.*call.*verify|बैंक.*कॉल.*जांच`),
				Type:        "bank_impersonation",
				Severity:    SeverityHigh,
				Explanation: "बैंक कभी फ़ोन पर खाते की जानकारी नहीं माँगता। शाखा में जाकर जांच करें।",
			},
			{
				Pattern:     regexp.MustCompile(`(?i)lottery|लॉटरी|jackpot|जैकपॉट`),
				Type:        "lottery_scam",
				Severity:    SeverityHigh,
				Explanation: "बिना खेले लॉटरी नहीं लगती। यह ठगी का तरीका है।",
			},
			{
				Pattern:     regexp.MustCompile(`(?i)KYC.*expire|केवाईसी.*बंद`),
				Type:        "kyc_scam",
				Severity:    SeverityHigh,
				Explanation: "KYC के लिए बैंक शाखा जाएं। फ़ोन पर कोई KYC नहीं होती।",
			},
			{
				Pattern:     regexp.MustCompile(`(?i)insurance.*claim|बीमा.*क्लेम.*मिल`),
				Type:        "insurance_scam",
				Severity:    SeverityMedium,
				Explanation: "बीमा क्लेम के लिए पहले पैसे नहीं देने होते। यह ठगी हो सकती है।",
			},
			{
				Pattern:     regexp.MustCompile(`(?i)link.*click|लिंक.*क्लिक`),
				Type:        "phishing",
				Severity:    SeverityMedium,
				Explanation: "अनजान लिंक पर क्लिक न करें। यह आपकी जानकारी चुरा सकता है।",
			},
			{
				Pattern:     regexp.MustCompile(`(?i)transfer.*money.*(?:urgent|immediately)|पैसे.*(?:तुरंत|जल्दी).*भेजें`),
				Type:        "money_transfer_scam",
				Severity:    SeverityCritical,
				Explanation: "किसी को तुरंत पैसे न भेजें। पहले परिवार से बात करें।",
			},
			{
				Pattern:     regexp.MustCompile(`(?i)government.*scheme.*(?:free|मुफ्त)`),
				Type:        "fake_scheme",
				Severity:    SeverityMedium,
				Explanation: "सरकारी योजनाओं की जांच आधिकारिक वेबसाइट पर करें।",
			},
			{
				Pattern:     regexp.MustCompile(`(?i)(?:arrested|गिरफ्तार).*(?:police|पुलिस)`),
				Type:        "police_impersonation",
				Severity:    SeverityHigh,
				Explanation: "पुलिस फ़ोन पर गिरफ्तारी की धमकी नहीं देती। यह ठगी है।",
			},
		},

		EmergencyPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)एम्बुलेंस|ambulance`),
			regexp.MustCompile(`(?i)बेहोश|unconscious|faint`),
			regexp.MustCompile(`(?i)सांस नहीं|can't breathe|breathing`),
			regexp.MustCompile(`(?i)गिर गय|fell down|fallen`),
			regexp.MustCompile(`(?i)chest pain|सीने में दर्द`),
			regexp.MustCompile(`(?i)heart|दिल का दौरा`),
			regexp.MustCompile(`(?i)stroke|लकवा`),
			regexp.MustCompile(`(?i)accident|दुर्घटना`),
		},

		HelpCategories: []HelpCategory{
			{
				Category: "health",
				Keywords: []string{
					"दर्द", "बीमार", "अस्पताल", "दवाई", "डॉक्टर", "तबीयत", "खून", "बेहोश", "सांस", "चक्कर", "बुखार", "गिर गया", "एम्बुलेंस",
					"pain", "sick", "hospital", "medicine", "doctor", "health", "blood", "unconscious", "breathing", "dizzy", "fever", "fell", "ambulance", "emergency",
				},
			},
			{
				Category: "bank",
				Keywords: []string{
					"पेंशन", "बैंक", "पैसा", "खाता", "atm", "चेक", "जमा", "निकासी", "फ्रॉड", "ठगी",
					"pension", "bank", "money", "account", "check", "deposit", "withdrawal", "fraud", "scam",
				},
			},
			{
				Category: "document",
				Keywords: []string{
					"दस्तावेज़", "कागज़", "फॉर्म", "प्रमाणपत्र", "आधार", "पैन", "जमा करना", "फाइल",
					"document", "paper", "form", "certificate", "aadhaar", "pan", "submit", "file",
				},
			},
			{
				Category: "transport",
				Keywords: []string{
					"गाड़ी", "यात्रा", "जाना", "अस्पताल जाना", "बैंक जाना", "सवारी", "ऑटो", "टैक्सी",
					"vehicle", "travel", "go", "ride", "auto", "taxi", "transport", "cab",
				},
			},
		},

		UrgentMarkers: []string{"तुरंत", "जल्दी", "urgent", "immediately", "अभी", "now", "help", "मदद"},

		UrgencyWeights: map[string]int{
			"critical": 100,
			"high":     75,
			"normal":   40,
			"low":      10,
		},

		CategoryWeights: map[string]int{
			"emergency": 50,
			"health":    40,
			"bank":      25,
			"document":  15,
			"transport": 20,
			"general":   10,
		},

		Glossary: []GlossaryTerm{
			{Term: "dearness allowance", Explanation: "महंगाई भत्ता (DA) - महंगाई बढ़ने पर मिलने वाली अतिरिक्त राशि"},
			{Term: "gratuity", Explanation: "ग्रेच्युटी - सेवानिवृत्ति पर मिलने वाली एकमुश्त राशि"},
			{Term: "commutation", Explanation: "कम्यूटेशन - पेंशन का एक हिस्सा एकमुश्त लेना"},
			{Term: "pensioner", Explanation: "पेंशनभोगी - सेवानिवृत्त व्यक्ति"},
			{Term: "arrears", Explanation: "बकाया राशि - पहले की जमा न हुई राशि"},
			{Term: "revised", Explanation: "संशोधित - बदला हुआ / नया"},
			{Term: "notification", Explanation: "अधिसूचना - सरकारी सूचना"},
			{Term: "gazette", Explanation: "राजपत्र - सरकारी पत्र"},
			{Term: "effective from", Explanation: "लागू होने की तारीख"},
			{Term: "disbursement", Explanation: "वितरण - पैसे बाँटना"},
			{Term: "compliance", Explanation: "पालन करना"},
			{Term: "beneficiary", Explanation: "लाभार्थी - जिसे फायदा मिलेगा"},
		},

		Boilerplate: []Substitution{
			{Pattern: regexp.MustCompile(`(?i)(?:it is )?hereby (?:notified|ordered|directed)`), Replacement: ""},
			{Pattern: regexp.MustCompile(`(?i)in pursuance of`), Replacement: "के अनुसार"},
			{Pattern: regexp.MustCompile(`(?i)with effect from`), Replacement: "से लागू"},
			{Pattern: regexp.MustCompile(`(?i)the government has decided`), Replacement: "सरकार ने फैसला किया है"},
		},

		SentenceSplit:       regexp.MustCompile(`[.।]+`),
		ImportancePattern:   regexp.MustCompile(`(?i)increase|decrease|amount|pension|date|deadline|submit|required`),
		SubmitPattern:       regexp.MustCompile(`(?i)submit|जमा|file|भेजें`),
		DeadlinePattern:     regexp.MustCompile(`(?i)deadline|last date|अंतिम तिथि`),
		DeadlineDatePattern: regexp.MustCompile(`(\d{1,2}[\s/-]\w+[\s/-]\d{4})`),
		IncreasePattern:     regexp.MustCompile(`(?i)increase|बढ़ोतरी|hike`),
		BankPattern:         regexp.MustCompile(`(?i)bank|बैंक`),
		PositivePattern:     regexp.MustCompile(`(?i)increase|hike|benefit|बढ़ोतरी|लाभ`),
		NegativePattern:     regexp.MustCompile(`(?i)decrease|stop|discontinue|reduce|कमी`),
		ActionNeededPattern: regexp.MustCompile(`(?i)deadline|required|mandatory|अनिवार्य`),
		ChangePattern:       regexp.MustCompile(`(?i)from\s+(\d+%?)\s+to\s+(\d+%?)`),
	}
}
