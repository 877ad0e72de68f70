package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gubicoo/lens/internal/model"
	"github.com/gubicoo/lens/internal/wizard"
)

func testCatalog() *model.Catalog {
	return model.NewCatalog(
		[]model.Category{
			{ID: "writing", Name: "Writing"},
			{ID: "coding", Name: "Coding"},
			{ID: "image", Name: "Image"},
		},
		[]model.Tool{
			{
				ID: "chatgpt", Name: "ChatGPT", Category: "chatbots", Rating: 4.8,
				PricingType: model.PricingFreemium,
			},
			{
				ID: "claude", Name: "Claude", Category: "chatbots", Rating: 4.7,
				PricingType: model.PricingFreemium,
			},
			{
				ID: "perplexity", Name: "Perplexity", Category: "chatbots", Rating: 4.5,
				PricingType: model.PricingFreemium,
			},
			{
				ID: "jasper", Name: "Jasper", Category: "writing", Rating: 4.2,
				Purpose:     "Marketing copywriting assistant",
				PricingType: model.PricingPaid,
				RecommendedFor: &model.RecommendedFor{
					UserType: []string{"startup"},
					UseCases: []string{"writing"},
				},
			},
			{
				ID: "cursor", Name: "Cursor", Category: "coding", Rating: 4.6,
				Purpose:     "AI code editor",
				PricingType: model.PricingFreemium,
				RecommendedFor: &model.RecommendedFor{
					UserType: []string{"startup"},
					UseCases: []string{"coding"},
				},
			},
			{ID: "", Name: "Broken record"},
		},
	)
}

func TestQuick_ReturnsRankedRecommendation(t *testing.T) {
	c := testCatalog()

	result := Quick(c, wizard.QuickAnswers{
		UserType: "developer",
		UseCases: []string{"coding"},
	})

	// developer maps to startup
	assert.Equal(t, "startup", result.UserType)

	all := result.Recommendation.Tools()
	require.NotEmpty(t, all)
	assert.LessOrEqual(t, len(all), 5)
	assert.LessOrEqual(t, len(result.Recommendation.Primary), 3)
	assert.LessOrEqual(t, len(result.Recommendation.Optional), 2)

	// The direct use-case match must be in the set.
	assert.Contains(t, toolIDs(all), "cursor")

	// Invalid records never surface.
	assert.NotContains(t, toolIDs(all), "")
}

func TestQuick_NoDuplicates(t *testing.T) {
	c := testCatalog()
	result := Quick(c, wizard.QuickAnswers{UserType: "personal", UseCases: []string{"research"}})

	seen := map[string]bool{}
	for _, tl := range result.Recommendation.Tools() {
		assert.False(t, seen[tl.ID], "duplicate id %q", tl.ID)
		seen[tl.ID] = true
	}
}

func TestGuided_UsesDefaultsWhenUnanswered(t *testing.T) {
	c := testCatalog()

	result := Guided(c, wizard.GuidedAnswers{
		OrgType: "startup-0-10",
		Needs:   []string{"writing"},
	})

	assert.Equal(t, "startup", result.UserType)
	assert.NotEmpty(t, result.Recommendation.Tools())
	assert.Contains(t, toolIDs(result.Recommendation.Tools()), "jasper")
}

func TestGuided_WeakMatchesPullInGeneralPurposeTools(t *testing.T) {
	// No tool scores above the backfill floor, so the three fixed
	// general-purpose assistants must appear, split 3/2.
	c := model.NewCatalog(nil, []model.Tool{
		{ID: "chatgpt", Name: "ChatGPT", Rating: 0.5},
		{ID: "claude", Name: "Claude", Rating: 0.4},
		{ID: "perplexity", Name: "Perplexity", Rating: 0.3},
		{ID: "niche", Name: "Niche Coder", Category: "coding", Rating: 0.2},
		{ID: "other", Name: "Other", Category: "image", Rating: 0.1},
	})

	result := Guided(c, wizard.GuidedAnswers{
		OrgType: "individual",
		Needs:   []string{"quantum-simulation"},
		Budget:  "free",
		AILevel: "beginner",
	})

	all := toolIDs(result.Recommendation.Tools())
	assert.Contains(t, all, "chatgpt")
	assert.Contains(t, all, "claude")
	assert.Contains(t, all, "perplexity")
	assert.Len(t, result.Recommendation.Primary, 3)
	assert.Len(t, result.Recommendation.Optional, 2)
}

func TestGuided_UnknownOrgTypeFallsBackToPersonal(t *testing.T) {
	c := testCatalog()
	result := Guided(c, wizard.GuidedAnswers{OrgType: "galactic-empire", Needs: []string{"writing"}})
	assert.Equal(t, "personal", result.UserType)
}

func TestVerdict(t *testing.T) {
	c := testCatalog()
	free := model.Tool{ID: "f", Name: "F", PricingType: model.PricingFree}
	paid := model.Tool{ID: "p", Name: "P", PricingType: model.PricingPaid}

	tests := []struct {
		name     string
		userType string
		primary  []model.Tool
		contains string
	}{
		{
			name:     "personal with free tools",
			userType: "personal",
			primary:  []model.Tool{free, paid},
			contains: "Not yet",
		},
		{
			name:     "personal with only paid tools",
			userType: "personal",
			primary:  []model.Tool{paid},
			contains: "Consider it",
		},
		{
			name:     "startup",
			userType: "startup",
			primary:  []model.Tool{free},
			contains: "selectively",
		},
		{
			name:     "enterprise",
			userType: "enterprise",
			primary:  []model.Tool{paid},
			contains: "ROI",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, Verdict(tt.userType, tt.primary, c), tt.contains)
		})
	}
}

func toolIDs(tools []model.Tool) []string {
	out := make([]string, 0, len(tools))
	for _, t := range tools {
		out = append(out, t.ID)
	}
	return out
}
