package analyzer

import (
	"testing"

	"github.com/alok-48/GuruMitra/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPolicySimplifier() PolicySimplifier {
	return NewPolicySimplifier(rules.NewTable())
}

func TestSimplifyEmptyText(t *testing.T) {
	s := newPolicySimplifier()

	got := s.Simplify("", "general")
	assert.Empty(t, got.Simplified)
	assert.Empty(t, got.Bullets)
	assert.Empty(t, got.Glossary)
	assert.Empty(t, got.WhatChanged)
}

func TestSimplifyKeepsImportantSentences(t *testing.T) {
	s := newPolicySimplifier()

	text := "It is hereby notified that the pension amount will increase. The office remains closed on Sundays and holidays."
	got := s.Simplify(text, "pension")

	assert.Contains(t, got.Simplified, "pension amount will increase")
	assert.NotContains(t, got.Simplified, "closed on Sundays")
}

func TestSimplifyFallsBackToStrippedText(t *testing.T) {
	s := newPolicySimplifier()

	text := "It is hereby notified that the office timings have shifted for winter."
	got := s.Simplify(text, "general")

	// no sentence matches the importance pattern, so the boilerplate-stripped
	// original comes back whole
	assert.NotContains(t, got.Simplified, "hereby notified")
	assert.Contains(t, got.Simplified, "office timings have shifted")
}

func TestSimplifyGlossaryFollowsDeclarationOrder(t *testing.T) {
	s := newPolicySimplifier()

	// arrears appears before gratuity in the text, but the glossary keeps
	// the fixed declaration order
	got := s.Simplify("Arrears will be paid along with the gratuity amount.", "pension")

	require.Len(t, got.Glossary, 2)
	assert.Equal(t, "gratuity", got.Glossary[0].Term)
	assert.Equal(t, "arrears", got.Glossary[1].Term)
	assert.NotEmpty(t, got.Glossary[0].Explanation)
}

func TestSimplifyActionItems(t *testing.T) {
	s := newPolicySimplifier()

	got := s.Simplify("Beneficiaries must submit the life certificate.", "pension")
	require.Len(t, got.Bullets, 1)
	assert.Equal(t, "high", got.Bullets[0].Priority)

	got = s.Simplify("Last date for verification at your bank branch is 15 March 2026.", "pension")
	require.Len(t, got.Bullets, 2)
	assert.Contains(t, got.Bullets[0].Action, "15 March 2026")
	assert.Equal(t, "high", got.Bullets[0].Priority)
	assert.Equal(t, "medium", got.Bullets[1].Priority) // bank contact

	got = s.Simplify("General awareness program for senior citizens.", "general")
	require.Len(t, got.Bullets, 1)
	assert.Equal(t, "low", got.Bullets[0].Priority)
}

func TestSimplifyImpactPrecedence(t *testing.T) {
	s := newPolicySimplifier()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "positive wins over action needed", text: "DA increase announced, verification required", want: "positive"},
		{name: "negative", text: "The old scheme will be discontinued", want: "negative"},
		{name: "action needed", text: "Verification is mandatory before the deadline", want: "action_needed"},
		{name: "informational", text: "A new office has opened in the district", want: "informational"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Simplify(tt.text, "general")
			assert.Equal(t, tt.want, got.Impact)
		})
	}
}

func TestSimplifyComplexity(t *testing.T) {
	s := newPolicySimplifier()

	assert.Equal(t, "simple", s.Simplify("the cat sat on the mat", "general").Complexity)
	// 2 of 4 words longer than 10 chars -> ratio 0.5 -> complex
	assert.Equal(t, "complex", s.Simplify("notwithstanding aforementioned pension rules", "general").Complexity)
	// 1 of 6 words longer than 10 chars -> ratio ~0.17 -> moderate
	assert.Equal(t, "moderate", s.Simplify("the disbursement of funds is done", "general").Complexity)
}

func TestSimplifyWhatChanged(t *testing.T) {
	s := newPolicySimplifier()

	got := s.Simplify("DA revised from 50% to 53% with effect from July.", "pension")
	require.Len(t, got.WhatChanged, 1)
	assert.Equal(t, Change{From: "50%", To: "53%"}, got.WhatChanged[0])

	got = s.Simplify("Rate moved from 4 to 5 and again from 5 to 6.", "general")
	require.Len(t, got.WhatChanged, 2)
	assert.Equal(t, Change{From: "4", To: "5"}, got.WhatChanged[0])
	assert.Equal(t, Change{From: "5", To: "6"}, got.WhatChanged[1])

	got = s.Simplify("No numeric change mentioned here.", "general")
	assert.Empty(t, got.WhatChanged)
}
