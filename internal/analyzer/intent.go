package analyzer

import (
	"strings"

	"github.com/alok-48/GuruMitra/internal/rules"
)

const emergencyMessage = "यह आपातकालीन स्थिति है। तुरंत मदद भेजी जा रही है।"

type HelpClassification struct {
	Category   string  `json:"category"`
	Urgency    string  `json:"urgency"`
	Confidence float64 `json:"confidence"`
	Message    string  `json:"message,omitempty"`
}

// IntentClassifier turns a free-text help request into a category,
// urgency and confidence.
type IntentClassifier struct {
	rules *rules.Table
}

func NewIntentClassifier(table *rules.Table) IntentClassifier {
	return IntentClassifier{rules: table}
}

// Classify first tests the emergency signatures; any hit short-circuits
// to an emergency classification. Otherwise each category is scored by
// keyword hits across both languages and the first category with the
// strictly highest count wins, defaulting to "general".
func (c IntentClassifier) Classify(text string) HelpClassification {
	if text == "" {
		return HelpClassification{Category: "general", Urgency: "normal", Confidence: 0}
	}

	lower := strings.ToLower(text)

	for _, pattern := range c.rules.EmergencyPatterns {
		if pattern.MatchString(lower) {
			return HelpClassification{
				Category:   "emergency",
				Urgency:    "critical",
				Confidence: 0.95,
				Message:    emergencyMessage,
			}
		}
	}

	topCategory := "general"
	topScore := 0
	for _, cat := range c.rules.HelpCategories {
		score := 0
		for _, keyword := range cat.Keywords {
			if strings.Contains(lower, keyword) {
				score++
			}
		}
		if score > topScore {
			topScore = score
			topCategory = cat.Category
		}
	}

	confidence := float64(topScore) / 5
	if confidence > 1 {
		confidence = 1
	}

	return HelpClassification{
		Category:   topCategory,
		Urgency:    c.assessUrgency(lower, topCategory, topScore),
		Confidence: confidence,
	}
}

func (c IntentClassifier) assessUrgency(text, category string, score int) string {
	hasUrgentWord := false
	for _, w := range c.rules.UrgentMarkers {
		if strings.Contains(text, w) {
			hasUrgentWord = true
			break
		}
	}

	if category == "health" && (score >= 3 || hasUrgentWord) {
		return "high"
	}
	if hasUrgentWord {
		return "high"
	}
	if category == "health" {
		return "high"
	}
	return "normal"
}

// PriorityScore combines urgency weight, category weight and an age
// bonus for users over 75, capped at 100. Unknown urgency or category
// falls back to the normal/general weights.
func (c IntentClassifier) PriorityScore(category, urgency string, userAge int) int {
	urgencyScore, ok := c.rules.UrgencyWeights[urgency]
	if !ok {
		urgencyScore = c.rules.UrgencyWeights["normal"]
	}
	categoryScore, ok := c.rules.CategoryWeights[category]
	if !ok {
		categoryScore = c.rules.CategoryWeights["general"]
	}

	ageBonus := 0
	if userAge > 75 {
		ageBonus = 15
	}

	score := urgencyScore + categoryScore + ageBonus
	if score > 100 {
		score = 100
	}
	return score
}
