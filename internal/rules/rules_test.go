package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityWeight(t *testing.T) {
	assert.Equal(t, 40, SeverityWeight(SeverityCritical))
	assert.Equal(t, 25, SeverityWeight(SeverityHigh))
	assert.Equal(t, 15, SeverityWeight(SeverityMedium))
	assert.Equal(t, 5, SeverityWeight(SeverityLow))
	assert.Equal(t, 5, SeverityWeight(Severity("unknown")))
}

func TestNewTable(t *testing.T) {
	table := NewTable()

	seen := make(map[string]bool)
	for _, rule := range table.DocumentCategories {
		assert.False(t, seen[rule.Category], "duplicate category %s", rule.Category)
		seen[rule.Category] = true
		assert.NotEmpty(t, rule.Keywords)
	}

	// every document category has a label and a tag set
	for _, rule := range table.DocumentCategories {
		assert.Contains(t, table.CategoryLabels, rule.Category)
		assert.Contains(t, table.CategoryTags, rule.Category)
	}
	assert.Contains(t, table.CategoryLabels, "other")
	assert.Contains(t, table.CategoryTags, "other")

	for _, sig := range table.ScamSignatures {
		assert.NotNil(t, sig.Pattern)
		assert.NotEmpty(t, sig.Type)
		assert.NotEmpty(t, sig.Explanation)
	}

	// every help category scored by the classifier has a priority weight
	for _, cat := range table.HelpCategories {
		assert.Contains(t, table.CategoryWeights, cat.Category)
	}
	assert.Contains(t, table.CategoryWeights, "emergency")
	assert.Contains(t, table.CategoryWeights, "general")
}
