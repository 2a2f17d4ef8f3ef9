// Package rules holds the static rule table consulted by every analyzer:
// document category rules, scam signatures, emergency patterns, help-request
// keywords and the policy glossary. The table is built once at startup and
// never mutated, so it is safe to share across concurrent requests without
// locking.
package rules

import "regexp"

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// SeverityWeight is the fixed contribution of an alert severity to the
// aggregate risk score. Unknown severities count as low.
func SeverityWeight(s Severity) int {
	switch s {
	case SeverityCritical:
		return 40
	case SeverityHigh:
		return 25
	case SeverityMedium:
		return 15
	default:
		return 5
	}
}

// CategoryRule scores document text against one category. A keyword match
// is worth 2 points, a filename pattern match 3.
type CategoryRule struct {
	Category     string
	Keywords     []string
	FilePatterns []string
}

type ScamSignature struct {
	Pattern     *regexp.Regexp
	Type        string
	Severity    Severity
	Explanation string
}

// HelpCategory lists the keywords (Hindi and English) counted when scoring
// a free-text help request.
type HelpCategory struct {
	Category string
	Keywords []string
}

type GlossaryTerm struct {
	Term        string
	Explanation string
}

// Substitution rewrites one bureaucratic phrase into plain language.
type Substitution struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// Table is the process-wide immutable rule set.
type Table struct {
	// Document classification
	DocumentCategories []CategoryRule
	CategoryLabels     map[string]string
	CategoryTags       map[string][]string
	ExpiryPatterns     []*regexp.Regexp

	// Fraud detection
	ScamSignatures []ScamSignature

	// Help-request intent
	EmergencyPatterns []*regexp.Regexp
	HelpCategories    []HelpCategory
	UrgentMarkers     []string
	UrgencyWeights    map[string]int
	CategoryWeights   map[string]int

	// Policy simplification
	Glossary            []GlossaryTerm
	Boilerplate         []Substitution
	SentenceSplit       *regexp.Regexp
	ImportancePattern   *regexp.Regexp
	SubmitPattern       *regexp.Regexp
	DeadlinePattern     *regexp.Regexp
	DeadlineDatePattern *regexp.Regexp
	IncreasePattern     *regexp.Regexp
	BankPattern         *regexp.Regexp
	PositivePattern     *regexp.Regexp
	NegativePattern     *regexp.Regexp
	ActionNeededPattern *regexp.Regexp
	ChangePattern       *regexp.Regexp
}
