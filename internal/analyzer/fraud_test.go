package analyzer

import (
	"testing"
	"time"

	"github.com/alok-48/GuruMitra/internal/models"
	"github.com/alok-48/GuruMitra/internal/rules"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFraudAnalyzer() FraudAnalyzer {
	return NewFraudAnalyzer(rules.NewTable())
}

func TestAnalyzeMessageEmpty(t *testing.T) {
	a := newFraudAnalyzer()

	got := a.AnalyzeMessage("")
	assert.True(t, got.IsSafe)
	assert.Empty(t, got.Alerts)
	assert.Zero(t, got.RiskScore)
	assert.Empty(t, got.Advice)
}

func TestAnalyzeMessageOTPScam(t *testing.T) {
	a := newFraudAnalyzer()

	got := a.AnalyzeMessage("Your account is blocked, please share the OTP to unblock")
	assert.False(t, got.IsSafe)
	require.Len(t, got.Alerts, 1)
	assert.Equal(t, "otp_scam", got.Alerts[0].Type)
	assert.Equal(t, rules.SeverityCritical, got.Alerts[0].Severity)
	assert.NotEmpty(t, got.Alerts[0].MatchedText)
	assert.GreaterOrEqual(t, got.RiskScore, 40)
	assert.NotEmpty(t, got.Advice)
}

func TestAnalyzeMessageStacking(t *testing.T) {
	a := newFraudAnalyzer()

	// lottery (high) and phishing (medium) both match the same message
	got := a.AnalyzeMessage("You won a lottery jackpot! Open the link and click now")
	assert.False(t, got.IsSafe)
	require.Len(t, got.Alerts, 2)
	assert.Equal(t, "lottery_scam", got.Alerts[0].Type)
	assert.Equal(t, "phishing", got.Alerts[1].Type)
	assert.Equal(t, 40, got.RiskScore) // 25 + 15
}

func TestAnalyzeMessageRiskScoreSaturates(t *testing.T) {
	a := newFraudAnalyzer()

	got := a.AnalyzeMessage(
		"Share your OTP now! You must transfer money immediately or be arrested by police. " +
			"Your KYC will expire and you won a lottery jackpot.")
	assert.False(t, got.IsSafe)
	assert.GreaterOrEqual(t, len(got.Alerts), 4)
	assert.Equal(t, 100, got.RiskScore)
}

func TestAnalyzeMessageSafeText(t *testing.T) {
	a := newFraudAnalyzer()

	got := a.AnalyzeMessage("नमस्ते, कल शाम को मंदिर चलेंगे?")
	assert.True(t, got.IsSafe)
	assert.Empty(t, got.Alerts)
	assert.Zero(t, got.RiskScore)
}

func payment(amount float64, day int) models.PensionPayment {
	return models.PensionPayment{
		Amount:       amount,
		CreditedDate: time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC),
	}
}

func TestAnalyzePensionPatternTooFewPayments(t *testing.T) {
	a := newFraudAnalyzer()
	userID := uuid.New()

	assert.True(t, a.AnalyzePensionPattern(userID, nil).IsNormal)
	assert.True(t, a.AnalyzePensionPattern(userID, []models.PensionPayment{
		payment(1000, 5), payment(5000, 25),
	}).IsNormal)
}

func TestAnalyzePensionPatternAmountDeviation(t *testing.T) {
	a := newFraudAnalyzer()

	// latest 2000 vs mean 2700: deviation 700 > 540 (20% of mean)
	got := a.AnalyzePensionPattern(uuid.New(), []models.PensionPayment{
		payment(2000, 5), payment(3000, 5), payment(3100, 5),
	})
	assert.False(t, got.IsNormal)
	require.Len(t, got.Anomalies, 1)
	assert.Equal(t, "amount_deviation", got.Anomalies[0].Type)
	assert.InDelta(t, 2700, got.Anomalies[0].Expected, 1e-9)
	assert.InDelta(t, 2000, got.Anomalies[0].Actual, 1e-9)
}

func TestAnalyzePensionPatternDateDeviation(t *testing.T) {
	a := newFraudAnalyzer()

	// amounts stable, latest credited on the 25th vs usual 5th-6th
	got := a.AnalyzePensionPattern(uuid.New(), []models.PensionPayment{
		payment(3000, 25), payment(3000, 6), payment(3000, 5),
	})
	assert.False(t, got.IsNormal)
	require.Len(t, got.Anomalies, 1)
	assert.Equal(t, "date_deviation", got.Anomalies[0].Type)
	assert.Equal(t, 25.0, got.Anomalies[0].Actual)
}

func TestAnalyzePensionPatternNormal(t *testing.T) {
	a := newFraudAnalyzer()

	got := a.AnalyzePensionPattern(uuid.New(), []models.PensionPayment{
		payment(3000, 5), payment(3000, 6), payment(3050, 5),
	})
	assert.True(t, got.IsNormal)
	assert.Empty(t, got.Anomalies)
}
