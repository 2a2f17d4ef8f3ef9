package analyzer

import (
	"testing"
	"time"

	"github.com/alok-48/GuruMitra/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocumentClassifier() DocumentClassifier {
	return NewDocumentClassifier(rules.NewTable())
}

func TestCategorize(t *testing.T) {
	c := newDocumentClassifier()

	tests := []struct {
		name         string
		filename     string
		text         string
		wantCategory string
	}{
		{
			name:         "pension document by filename pattern",
			filename:     "pension_ppo_2023.pdf",
			wantCategory: "pension",
		},
		{
			name:         "identity document from recognized text",
			filename:     "scan001.jpg",
			text:         "Government of India Aadhaar card",
			wantCategory: "identity",
		},
		{
			name:         "medical record in Hindi",
			filename:     "scan002.jpg",
			text:         "अस्पताल रिपोर्ट",
			wantCategory: "medical",
		},
		{
			name:         "no match falls back to other",
			filename:     "IMG_20230101.jpg",
			wantCategory: "other",
		},
		{
			name:         "empty input falls back to other",
			wantCategory: "other",
		},
		{
			name:         "tie resolved by rule declaration order",
			filename:     "scan003.jpg",
			text:         "report deed", // medical and property both score 2
			wantCategory: "medical",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Categorize(tt.filename, tt.text)
			assert.Equal(t, tt.wantCategory, got.Category)
			assert.GreaterOrEqual(t, got.Confidence, 0.0)
			assert.LessOrEqual(t, got.Confidence, 1.0)
		})
	}
}

func TestCategorizeConfidence(t *testing.T) {
	c := newDocumentClassifier()

	// keyword hits worth 2, filename pattern hits worth 3
	got := c.Categorize("lab_report.pdf", "blood xray")
	assert.Equal(t, "medical", got.Category)
	// report(2) + blood(2) + xray(2) + lab_report(3) = 9 -> 0.9
	assert.InDelta(t, 0.9, got.Confidence, 1e-9)

	// scores above 10 clamp to confidence 1
	got = c.Categorize("medical_hospital_prescription.pdf", "medical hospital prescription health blood xray")
	assert.Equal(t, 1.0, got.Confidence)
}

func TestCategorizeDeterministic(t *testing.T) {
	c := newDocumentClassifier()
	first := c.Categorize("pension_slip.pdf", "monthly pension credited")
	second := c.Categorize("pension_slip.pdf", "monthly pension credited")
	assert.Equal(t, first, second)
}

func TestExtractExpiryDate(t *testing.T) {
	c := newDocumentClassifier()

	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{name: "valid till form", text: "Card valid till: 12-05-2026", want: "12-05-2026", found: true},
		{name: "expiry date form", text: "Expiry Date 01/01/2030", want: "01/01/2030", found: true},
		{name: "hindi till form", text: "यह कार्ड 12-05-2026 तक मान्य है", want: "12-05-2026", found: true},
		{name: "no date", text: "no date in this text"},
		{name: "empty text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := c.ExtractExpiryDate(tt.text)
			require.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggestTags(t *testing.T) {
	c := newDocumentClassifier()

	assert.Equal(t, []string{"पेंशन", "सेवानिवृत्ति", "वित्तीय"}, c.SuggestTags("pension"))
	assert.Equal(t, []string{"अन्य"}, c.SuggestTags("other"))
	assert.Equal(t, []string{"अन्य"}, c.SuggestTags("unknown-category"))
}

func TestSuggestedName(t *testing.T) {
	c := newDocumentClassifier()
	today := time.Now().Format("2006-01-02")

	assert.Equal(t, "पेंशन दस्तावेज़ - "+today, c.SuggestedName("pension"))
	assert.Equal(t, "दस्तावेज़ - "+today, c.SuggestedName("unknown-category"))
}
