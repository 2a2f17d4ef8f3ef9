// Package analyzer implements the assistive decision layer: five
// deterministic, rule-driven analyzers over free text and behavioral
// history. Every analyzer is a value type holding only the shared
// immutable rule table, so concurrent use needs no coordination.
package analyzer

import (
	"strings"
	"time"

	"github.com/alok-48/GuruMitra/internal/rules"
)

type ClassificationResult struct {
	Category      string  `json:"category"`
	Confidence    float64 `json:"confidence"`
	SuggestedName string  `json:"suggestedName"`
}

// DocumentClassifier assigns uploaded documents to a category based on
// the filename and any recognized text.
type DocumentClassifier struct {
	rules *rules.Table
}

func NewDocumentClassifier(table *rules.Table) DocumentClassifier {
	return DocumentClassifier{rules: table}
}

// Categorize scores the combined filename and recognized text against
// every category rule: 2 points per keyword hit, 3 per filename-pattern
// hit. The first category with the strictly highest score wins; a zero
// top score falls back to "other". Confidence is score/10 capped at 1.
func (c DocumentClassifier) Categorize(filename, recognizedText string) ClassificationResult {
	combined := strings.ToLower(filename + " " + recognizedText)

	bestCategory := "other"
	bestScore := 0

	for _, rule := range c.rules.DocumentCategories {
		score := 0
		for _, keyword := range rule.Keywords {
			if strings.Contains(combined, strings.ToLower(keyword)) {
				score += 2
			}
		}
		for _, pattern := range rule.FilePatterns {
			if strings.Contains(combined, strings.ToLower(pattern)) {
				score += 3
			}
		}
		if score > bestScore {
			bestScore = score
			bestCategory = rule.Category
		}
	}

	confidence := float64(bestScore) / 10
	if confidence > 1 {
		confidence = 1
	}

	return ClassificationResult{
		Category:      bestCategory,
		Confidence:    confidence,
		SuggestedName: c.SuggestedName(bestCategory),
	}
}

// SuggestedName builds a display title from the localized category label
// and today's date.
func (c DocumentClassifier) SuggestedName(category string) string {
	label, ok := c.rules.CategoryLabels[category]
	if !ok {
		label = "दस्तावेज़"
	}
	return label + " - " + time.Now().Format("2006-01-02")
}

// ExtractExpiryDate scans recognized text for a validity or expiry date
// and returns the first match. The second return is false when no
// pattern matches.
func (c DocumentClassifier) ExtractExpiryDate(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	for _, pattern := range c.rules.ExpiryPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// SuggestTags returns the fixed localized tag set for a category,
// defaulting to the "other" set.
func (c DocumentClassifier) SuggestTags(category string) []string {
	if tags, ok := c.rules.CategoryTags[category]; ok {
		return tags
	}
	return c.rules.CategoryTags["other"]
}
