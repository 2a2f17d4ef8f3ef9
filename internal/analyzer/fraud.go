package analyzer

import (
	"math"

	"github.com/alok-48/GuruMitra/internal/models"
	"github.com/alok-48/GuruMitra/internal/rules"
	"github.com/google/uuid"
)

const fraudAdvice = "सावधान! यह संदेश संदिग्ध है। कृपया किसी को भी अपनी निजी जानकारी न दें।"

type FraudAlert struct {
	Type        string         `json:"type"`
	Severity    rules.Severity `json:"severity"`
	Description string         `json:"description"`
	MatchedText string         `json:"matchedText"`
}

type MessageAnalysis struct {
	IsSafe    bool         `json:"isSafe"`
	Alerts    []FraudAlert `json:"alerts"`
	RiskScore int          `json:"riskScore"`
	Advice    string       `json:"advice,omitempty"`
}

type PensionAnomaly struct {
	Type     string  `json:"type"`
	Message  string  `json:"message"`
	Expected float64 `json:"expected"`
	Actual   float64 `json:"actual"`
}

type PensionAnalysis struct {
	IsNormal  bool             `json:"isNormal"`
	Anomalies []PensionAnomaly `json:"anomalies,omitempty"`
}

// FraudAnalyzer matches message text against known scam signatures and
// inspects pension payment history for anomalies.
type FraudAnalyzer struct {
	rules *rules.Table
}

func NewFraudAnalyzer(table *rules.Table) FraudAnalyzer {
	return FraudAnalyzer{rules: table}
}

// AnalyzeMessage tests every scam signature against the text. Signatures
// stack: one message may raise several alerts. The risk score is the sum
// of severity weights saturated at 100.
func (a FraudAnalyzer) AnalyzeMessage(text string) MessageAnalysis {
	if text == "" {
		return MessageAnalysis{IsSafe: true, Alerts: []FraudAlert{}}
	}

	alerts := []FraudAlert{}
	riskScore := 0
	for _, sig := range a.rules.ScamSignatures {
		if match := sig.Pattern.FindString(text); match != "" {
			alerts = append(alerts, FraudAlert{
				Type:        sig.Type,
				Severity:    sig.Severity,
				Description: sig.Explanation,
				MatchedText: match,
			})
			riskScore += rules.SeverityWeight(sig.Severity)
		}
	}
	if riskScore > 100 {
		riskScore = 100
	}

	result := MessageAnalysis{
		IsSafe:    len(alerts) == 0,
		Alerts:    alerts,
		RiskScore: riskScore,
	}
	if !result.IsSafe {
		result.Advice = fraudAdvice
	}
	return result
}

// AnalyzePensionPattern flags statistical deviations of the latest
// payment from the user's history. Payments must be ordered most recent
// first; fewer than 3 entries short-circuits to normal.
func (a FraudAnalyzer) AnalyzePensionPattern(userID uuid.UUID, payments []models.PensionPayment) PensionAnalysis {
	if len(payments) < 3 {
		return PensionAnalysis{IsNormal: true}
	}

	var anomalies []PensionAnomaly

	var sum float64
	for _, p := range payments {
		sum += p.Amount
	}
	mean := sum / float64(len(payments))
	latest := payments[0].Amount

	if math.Abs(latest-mean) > mean*0.2 {
		msg := "इस महीने की पेंशन राशि सामान्य से कम है।"
		if latest > mean {
			msg = "इस महीने की पेंशन राशि सामान्य से ज़्यादा है।"
		}
		anomalies = append(anomalies, PensionAnomaly{
			Type:     "amount_deviation",
			Message:  msg,
			Expected: mean,
			Actual:   latest,
		})
	}

	var daySum int
	for _, p := range payments {
		daySum += p.CreditedDate.Day()
	}
	meanDay := math.Round(float64(daySum) / float64(len(payments)))
	latestDay := float64(payments[0].CreditedDate.Day())

	if math.Abs(latestDay-meanDay) > 5 {
		anomalies = append(anomalies, PensionAnomaly{
			Type:     "date_deviation",
			Message:  "पेंशन सामान्य तारीख से देर से आई है।",
			Expected: meanDay,
			Actual:   latestDay,
		})
	}

	return PensionAnalysis{
		IsNormal:  len(anomalies) == 0,
		Anomalies: anomalies,
	}
}
