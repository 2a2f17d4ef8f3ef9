package analyzer

import (
	"testing"

	"github.com/alok-48/GuruMitra/internal/rules"
	"github.com/stretchr/testify/assert"
)

func newIntentClassifier() IntentClassifier {
	return NewIntentClassifier(rules.NewTable())
}

func TestClassifyEmptyText(t *testing.T) {
	c := newIntentClassifier()

	got := c.Classify("")
	assert.Equal(t, "general", got.Category)
	assert.Equal(t, "normal", got.Urgency)
	assert.Zero(t, got.Confidence)
}

func TestClassifyEmergencyShortCircuits(t *testing.T) {
	c := newIntentClassifier()

	tests := []struct {
		name string
		text string
	}{
		{name: "english ambulance", text: "please send an ambulance"},
		{name: "hindi ambulance", text: "एम्बुलेंस भेजिए"},
		{name: "chest pain", text: "my father has chest pain"},
		{name: "emergency wins over other content", text: "I need an ambulance to go to the bank for my pension"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text)
			assert.Equal(t, "emergency", got.Category)
			assert.Equal(t, "critical", got.Urgency)
			assert.Equal(t, 0.95, got.Confidence)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestClassifyCategories(t *testing.T) {
	c := newIntentClassifier()

	tests := []struct {
		name         string
		text         string
		wantCategory string
		wantUrgency  string
	}{
		{
			name:         "bank request",
			text:         "pension money not credited to my bank account",
			wantCategory: "bank",
			wantUrgency:  "normal",
		},
		{
			name:         "health forces high urgency",
			text:         "fever and body pain since morning",
			wantCategory: "health",
			wantUrgency:  "high",
		},
		{
			name:         "urgent marker forces high urgency",
			text:         "need to submit the form, it is urgent",
			wantCategory: "document",
			wantUrgency:  "high",
		},
		{
			name:         "hindi transport request",
			text:         "टैक्सी या ऑटो से यात्रा करनी है",
			wantCategory: "transport",
			wantUrgency:  "normal",
		},
		{
			name:         "no keywords falls back to general",
			text:         "just wanted to talk to someone",
			wantCategory: "general",
			wantUrgency:  "normal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text)
			assert.Equal(t, tt.wantCategory, got.Category)
			assert.Equal(t, tt.wantUrgency, got.Urgency)
			assert.GreaterOrEqual(t, got.Confidence, 0.0)
			assert.LessOrEqual(t, got.Confidence, 1.0)
		})
	}
}

func TestClassifyConfidence(t *testing.T) {
	c := newIntentClassifier()

	// four bank keyword hits -> 4/5
	got := c.Classify("pension money not credited to my bank account")
	assert.InDelta(t, 0.8, got.Confidence, 1e-9)

	// six or more hits clamp at 1
	got = c.Classify("bank account money deposit withdrawal pension check")
	assert.Equal(t, 1.0, got.Confidence)
}

func TestPriorityScore(t *testing.T) {
	c := newIntentClassifier()

	tests := []struct {
		name     string
		category string
		urgency  string
		age      int
		want     int
	}{
		{name: "critical emergency caps at 100", category: "emergency", urgency: "critical", age: 80, want: 100},
		{name: "normal general", category: "general", urgency: "normal", want: 50},
		{name: "high bank with age bonus caps", category: "bank", urgency: "high", age: 80, want: 100},
		{name: "high bank without bonus", category: "bank", urgency: "high", age: 70, want: 100},
		{name: "normal health with age bonus", category: "health", urgency: "normal", age: 80, want: 95},
		{name: "low transport", category: "transport", urgency: "low", want: 30},
		{name: "unknown values fall back to normal general", category: "nonsense", urgency: "whatever", want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.PriorityScore(tt.category, tt.urgency, tt.age)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}
