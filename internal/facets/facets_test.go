package facets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonaByID(t *testing.T) {
	p, ok := PersonaByID("developer")
	require.True(t, ok)
	assert.Equal(t, PreferFreemium, p.PreferredPricing)
	assert.Contains(t, p.Categories, "coding")

	_, ok = PersonaByID("astronaut")
	assert.False(t, ok)
}

func TestEveryPersonaIsComplete(t *testing.T) {
	for _, p := range Personas {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.SearchTerms, "persona %s", p.ID)
		assert.NotEmpty(t, p.Categories, "persona %s", p.ID)
		assert.NotEmpty(t, p.PreferredPricing, "persona %s", p.ID)
	}
}

func TestEveryQuestionIsComplete(t *testing.T) {
	total := 0
	for _, g := range QuestionGroups {
		for _, q := range g.Questions {
			total++
			assert.NotEmpty(t, q.Text)
			assert.NotEmpty(t, q.SearchTerms, "question %s", q.Text)
			assert.NotEmpty(t, q.Categories, "question %s", q.Text)
		}
	}
	assert.Equal(t, 13, total)
}

func TestFindQuestion(t *testing.T) {
	q, ok := FindQuestion("Best AI tools for SEO")
	require.True(t, ok)
	assert.Contains(t, q.Categories, "seo")

	_, ok = FindQuestion("Best AI tools for Astronauts")
	assert.False(t, ok)
}

func TestMapUserType(t *testing.T) {
	tests := []struct {
		answer string
		want   string
	}{
		{answer: "developer", want: "startup"},
		{answer: "creator", want: "personal"},
		{answer: "enterprise", want: "enterprise"},
		{answer: "unknown", want: "personal"},
		{answer: "", want: "personal"},
	}
	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			assert.Equal(t, tt.want, MapUserType(QuickUserTypes, tt.answer))
		})
	}
}

func TestMapUseCases(t *testing.T) {
	got := MapUseCases(QuickUseCases, []string{"design", "research", "custom", ""})
	// Mapped answers translate, unmapped pass through, empties drop.
	assert.Equal(t, []string{"image", "chatbots", "custom"}, got)
}

func TestGuidedNeedsMapping(t *testing.T) {
	got := MapUseCases(GuidedNeeds, []string{"documentation", "sales", "video"})
	assert.Equal(t, []string{"writing", "productivity", "video"}, got)
}

func TestUnion(t *testing.T) {
	got := Union([]string{"a", "b"}, []string{"b", "c", "", "a"})
	assert.Equal(t, []string{"a", "b", "c"}, got)

	assert.Empty(t, Union(nil, nil))
}

func TestHelpWithByID(t *testing.T) {
	h, ok := HelpWithByID("teaching")
	require.True(t, ok)
	assert.Contains(t, h.Categories, "education")

	_, ok = HelpWithByID("juggling")
	assert.False(t, ok)
}
