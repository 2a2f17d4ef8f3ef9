package analyzer

import (
	"strings"
	"unicode/utf8"

	"github.com/alok-48/GuruMitra/internal/rules"
)

type ActionItem struct {
	Action   string `json:"action"`
	Priority string `json:"priority"`
}

type GlossaryEntry struct {
	Term        string `json:"term"`
	Explanation string `json:"explanation"`
}

type Change struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type SimplificationResult struct {
	Simplified  string          `json:"simplified"`
	Bullets     []ActionItem    `json:"bullets"`
	Glossary    []GlossaryEntry `json:"glossary"`
	Impact      string          `json:"impact,omitempty"`
	Complexity  string          `json:"complexity,omitempty"`
	WhatChanged []Change        `json:"whatChanged,omitempty"`
}

// PolicySimplifier rewrites bureaucratic notice text into a simpler
// form with action items, a glossary of complex terms, an impact
// assessment and extracted numeric changes.
type PolicySimplifier struct {
	rules *rules.Table
}

func NewPolicySimplifier(table *rules.Table) PolicySimplifier {
	return PolicySimplifier{rules: table}
}

func (s PolicySimplifier) Simplify(text, category string) SimplificationResult {
	if text == "" {
		return SimplificationResult{Bullets: []ActionItem{}, Glossary: []GlossaryEntry{}}
	}

	lower := strings.ToLower(text)

	// Glossary entries follow the fixed declaration order, not the order
	// terms appear in the text.
	glossary := []GlossaryEntry{}
	for _, term := range s.rules.Glossary {
		if strings.Contains(lower, term.Term) {
			glossary = append(glossary, GlossaryEntry{Term: term.Term, Explanation: term.Explanation})
		}
	}

	return SimplificationResult{
		Simplified:  s.makeSimpler(text),
		Bullets:     s.extractActionItems(text),
		Glossary:    glossary,
		Impact:      s.assessImpact(lower),
		Complexity:  s.assessComplexity(text),
		WhatChanged: s.extractChanges(text),
	}
}

// makeSimpler strips boilerplate, then keeps only the sentences that
// mention something the reader must act on or that changed. If nothing
// qualifies the stripped text is returned whole.
func (s PolicySimplifier) makeSimpler(text string) string {
	result := text
	for _, sub := range s.rules.Boilerplate {
		result = sub.Pattern.ReplaceAllString(result, sub.Replacement)
	}

	var important []string
	for _, sentence := range s.rules.SentenceSplit.Split(result, -1) {
		if len(strings.TrimSpace(sentence)) <= 10 {
			continue
		}
		if s.rules.ImportancePattern.MatchString(sentence) {
			important = append(important, sentence)
		}
	}

	if len(important) == 0 {
		return result
	}
	return strings.Join(important, "। ") + "।"
}

func (s PolicySimplifier) extractActionItems(text string) []ActionItem {
	actions := []ActionItem{}
	lower := strings.ToLower(text)

	if s.rules.SubmitPattern.MatchString(lower) {
		actions = append(actions, ActionItem{Action: "कोई दस्तावेज़ जमा करना है", Priority: "high"})
	}
	if s.rules.DeadlinePattern.MatchString(lower) {
		deadline := "जल्द जांचें"
		if m := s.rules.DeadlineDatePattern.FindStringSubmatch(text); m != nil {
			deadline = m[1]
		}
		actions = append(actions, ActionItem{Action: "अंतिम तारीख: " + deadline, Priority: "high"})
	}
	if s.rules.IncreasePattern.MatchString(lower) {
		actions = append(actions, ActionItem{Action: "आपकी राशि में बढ़ोतरी हुई है - खाते में जांचें", Priority: "medium"})
	}
	if s.rules.BankPattern.MatchString(lower) {
		actions = append(actions, ActionItem{Action: "बैंक से संपर्क करें", Priority: "medium"})
	}

	if len(actions) == 0 {
		actions = append(actions, ActionItem{Action: "यह जानकारी के लिए है, अभी कुछ करने की ज़रूरत नहीं", Priority: "low"})
	}
	return actions
}

// assessImpact checks positive, negative and action-needed language in
// that order; the first match wins.
func (s PolicySimplifier) assessImpact(lower string) string {
	switch {
	case s.rules.PositivePattern.MatchString(lower):
		return "positive"
	case s.rules.NegativePattern.MatchString(lower):
		return "negative"
	case s.rules.ActionNeededPattern.MatchString(lower):
		return "action_needed"
	default:
		return "informational"
	}
}

// assessComplexity estimates reading difficulty from the share of words
// longer than 10 characters.
func (s PolicySimplifier) assessComplexity(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return "simple"
	}
	longWords := 0
	for _, w := range words {
		if utf8.RuneCountInString(w) > 10 {
			longWords++
		}
	}
	ratio := float64(longWords) / float64(len(words))
	switch {
	case ratio > 0.3:
		return "complex"
	case ratio > 0.15:
		return "moderate"
	default:
		return "simple"
	}
}

func (s PolicySimplifier) extractChanges(text string) []Change {
	var changes []Change
	for _, m := range s.rules.ChangePattern.FindAllStringSubmatch(text, -1) {
		changes = append(changes, Change{From: m[1], To: m[2]})
	}
	return changes
}
