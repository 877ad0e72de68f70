package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gubicoo/lens/internal/model"
	"github.com/gubicoo/lens/internal/normalize"
)

func TestScore_InvalidToolScoresZero(t *testing.T) {
	crit := Criteria{UserType: "personal", UseCases: []string{"writing"}}
	assert.Zero(t, Score(model.Tool{Name: "No id"}, nil, crit))
	assert.Zero(t, Score(model.Tool{ID: "no-name"}, nil, crit))
}

func TestScore_RatingIsBase(t *testing.T) {
	tool := model.Tool{ID: "x", Name: "X", Rating: 4.5}
	assert.InDelta(t, 4.5, Score(tool, nil, Criteria{}), 0.001)
}

func TestScore_GeneralPurposeBonus(t *testing.T) {
	tests := []struct {
		id   string
		want float64
	}{
		{id: "chatgpt", want: 4},
		{id: "Claude", want: 4},
		{id: "perplexity", want: 4},
		{id: "jasper", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			tool := model.Tool{ID: tt.id, Name: "T"}
			assert.InDelta(t, tt.want, Score(tool, nil, Criteria{}), 0.001)
		})
	}
}

func TestScore_UseCasePaths(t *testing.T) {
	tests := []struct {
		name string
		tool model.Tool
		uc   string
		want bool
	}{
		{
			name: "direct metadata membership",
			tool: model.Tool{ID: "x", Name: "X", RecommendedFor: &model.RecommendedFor{UseCases: []string{"Writing"}}},
			uc:   "writing",
			want: true,
		},
		{
			name: "exact category equality",
			tool: model.Tool{ID: "x", Name: "X", Category: "coding"},
			uc:   "coding",
			want: true,
		},
		{
			name: "synonym table",
			tool: model.Tool{ID: "x", Name: "X", Category: "image"},
			uc:   "design",
			want: true,
		},
		{
			name: "substring in purpose",
			tool: model.Tool{ID: "x", Name: "X", Purpose: "Automates video editing"},
			uc:   "video",
			want: true,
		},
		{
			name: "substring in name",
			tool: model.Tool{ID: "x", Name: "VideoMaker"},
			uc:   "video",
			want: true,
		},
		{
			name: "no path matches",
			tool: model.Tool{ID: "x", Name: "X", Category: "seo", Purpose: "Keyword research"},
			uc:   "video",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.tool, nil, Criteria{UseCases: []string{tt.uc}})
			if tt.want {
				assert.InDelta(t, float64(weightUseCase), got, 0.001)
			} else {
				assert.Zero(t, got)
			}
		})
	}
}

func TestScore_UseCaseBonusAwardedOnce(t *testing.T) {
	// Tool matches both requested use cases; the bonus must not stack.
	tool := model.Tool{
		ID: "x", Name: "X", Category: "writing",
		RecommendedFor: &model.RecommendedFor{UseCases: []string{"writing", "content"}},
	}
	got := Score(tool, nil, Criteria{UseCases: []string{"writing", "content"}})
	assert.InDelta(t, float64(weightUseCase), got, 0.001)
}

func TestScore_BudgetRules(t *testing.T) {
	tests := []struct {
		name   string
		tool   model.Tool
		budget string
		want   float64
	}{
		{
			name: "explicit metadata match",
			tool: model.Tool{ID: "x", Name: "X",
				RecommendedFor: &model.RecommendedFor{Budget: []string{"medium"}}},
			budget: "medium",
			want:   weightBudget,
		},
		{
			name:   "free fallback needs strictly free pricing",
			tool:   model.Tool{ID: "x", Name: "X", PricingType: model.PricingFree},
			budget: "free",
			want:   weightBudget,
		},
		{
			name:   "freemium does not satisfy free fallback",
			tool:   model.Tool{ID: "x", Name: "X", PricingType: model.PricingFreemium},
			budget: "free",
			want:   0,
		},
		{
			name: "low budget within ceiling",
			tool: model.Tool{ID: "x", Name: "X",
				Pricing: &model.Pricing{Paid: &model.PaidPlan{Monthly: 20}}},
			budget: "low",
			want:   weightBudget,
		},
		{
			name: "low budget above ceiling",
			tool: model.Tool{ID: "x", Name: "X",
				Pricing: &model.Pricing{Paid: &model.PaidPlan{Monthly: 21}}},
			budget: "low",
			want:   0,
		},
		{
			name: "flexible gives partial credit for any paid price",
			tool: model.Tool{ID: "x", Name: "X",
				Pricing: &model.Pricing{Paid: &model.PaidPlan{Monthly: 99}}},
			budget: "flexible",
			want:   weightBudgetPartial,
		},
		{
			name:   "empty budget scores nothing",
			tool:   model.Tool{ID: "x", Name: "X", PricingType: model.PricingFree},
			budget: "",
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.tool, nil, Criteria{Budget: tt.budget})
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestScore_LegacyPricingFeedsBudgetRule(t *testing.T) {
	// A tool with only a legacy paid price and no pricingType field is
	// normalized to paid, and its monthly price drives the low-budget
	// bonus.
	tool := model.Tool{
		ID: "x", Name: "X",
		Pricing: &model.Pricing{Paid: &model.PaidPlan{Monthly: 15}},
	}

	v := normalize.NewView(tool, nil)
	assert.True(t, v.IsPaid)
	assert.False(t, v.IsFree)

	got := Score(tool, nil, Criteria{Budget: "low"})
	assert.InDelta(t, float64(weightBudget), got, 0.001)
}

func TestScore_AdditiveAcrossRules(t *testing.T) {
	tool := model.Tool{
		ID: "chatgpt", Name: "ChatGPT", Category: "chatbots", Rating: 4.8,
		PricingType: model.PricingFreemium,
		RecommendedFor: &model.RecommendedFor{
			UserType:   []string{"personal"},
			UseCases:   []string{"writing"},
			Industries: []string{"education"},
			AILevel:    []string{"beginner"},
			Budget:     []string{"free"},
		},
	}
	crit := Criteria{
		UserType:        "personal",
		UseCases:        []string{"writing"},
		Budget:          "free",
		PrimaryCategory: "chatbots",
		Industry:        "education",
		AILevel:         "beginner",
	}

	// rating + general purpose + use case + user type + budget +
	// category + industry + ai level
	want := 4.8 + 4 + 5 + 3 + 2 + 2 + 1 + 1
	assert.InDelta(t, want, Score(tool, nil, crit), 0.001)
}

func TestScore_MoreCriteriaNeverLowersScore(t *testing.T) {
	tool := model.Tool{
		ID: "x", Name: "X", Category: "writing", Rating: 3,
		RecommendedFor: &model.RecommendedFor{UserType: []string{"startup"}},
	}

	base := Score(tool, nil, Criteria{UseCases: []string{"writing"}})
	withUser := Score(tool, nil, Criteria{UseCases: []string{"writing"}, UserType: "startup"})
	assert.GreaterOrEqual(t, withUser, base)
}

func TestIsGeneralPurpose(t *testing.T) {
	assert.True(t, IsGeneralPurpose("chatgpt"))
	assert.True(t, IsGeneralPurpose("CLAUDE"))
	assert.False(t, IsGeneralPurpose("midjourney"))
}
