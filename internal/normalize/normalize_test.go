package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gubicoo/lens/internal/model"
)

func testCatalog() *model.Catalog {
	return model.NewCatalog(
		[]model.Category{
			{ID: "writing", Name: "Writing & Content"},
			{ID: "coding", Name: "Coding Assistants"},
		},
		nil,
	)
}

func TestPricingTypeOf(t *testing.T) {
	tests := []struct {
		name string
		tool model.Tool
		want model.PricingType
	}{
		{
			name: "flat field wins over legacy",
			tool: model.Tool{
				PricingType: model.PricingFree,
				Pricing:     &model.Pricing{Paid: &model.PaidPlan{Monthly: 20}},
			},
			want: model.PricingFree,
		},
		{
			name: "legacy available free plan derives freemium",
			tool: model.Tool{Pricing: &model.Pricing{Free: &model.FreePlan{Available: true}}},
			want: model.PricingFreemium,
		},
		{
			name: "legacy unavailable free plan derives paid",
			tool: model.Tool{Pricing: &model.Pricing{Free: &model.FreePlan{Available: false}}},
			want: model.PricingPaid,
		},
		{
			name: "no pricing at all derives paid",
			tool: model.Tool{},
			want: model.PricingPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PricingTypeOf(tt.tool))
		})
	}
}

func TestNewView_PricingFlags(t *testing.T) {
	tests := []struct {
		name         string
		tool         model.Tool
		wantFree     bool
		wantFreemium bool
		wantPaid     bool
	}{
		{
			name:         "free tool",
			tool:         model.Tool{PricingType: model.PricingFree},
			wantFree:     true,
			wantFreemium: true,
		},
		{
			name:         "freemium tool",
			tool:         model.Tool{PricingType: model.PricingFreemium},
			wantFreemium: true,
		},
		{
			name:     "paid tool",
			tool:     model.Tool{PricingType: model.PricingPaid},
			wantPaid: true,
		},
		{
			name: "freemium with paid plan is also paid",
			tool: model.Tool{
				PricingType: model.PricingFreemium,
				Pricing:     &model.Pricing{Paid: &model.PaidPlan{Monthly: 10}},
			},
			wantFreemium: true,
			wantPaid:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView(tt.tool, nil)
			assert.Equal(t, tt.wantFree, v.IsFree, "IsFree")
			assert.Equal(t, tt.wantFreemium, v.IsFreemium, "IsFreemium")
			assert.Equal(t, tt.wantPaid, v.IsPaid, "IsPaid")
		})
	}
}

func TestCategoryName_FallbackChain(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		name string
		tool model.Tool
		want string
	}{
		{
			name: "denormalized name wins",
			tool: model.Tool{Category: "writing", CategoryName: "Custom Name"},
			want: "Custom Name",
		},
		{
			name: "catalog lookup",
			tool: model.Tool{Category: "writing"},
			want: "Writing & Content",
		},
		{
			name: "unknown category uses default",
			tool: model.Tool{Category: "nonexistent"},
			want: DefaultCategoryName,
		},
		{
			name: "no category uses default",
			tool: model.Tool{},
			want: DefaultCategoryName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryName(tt.tool, c))
		})
	}
}

func TestSearchableText(t *testing.T) {
	c := testCatalog()
	tool := model.Tool{
		ID:       "jasper",
		Name:     "Jasper AI",
		Purpose:  "Marketing Copy",
		Category: "writing",
		RecommendedFor: &model.RecommendedFor{
			Industries: []string{"E-Commerce"},
			UseCases:   []string{"Blogging"},
		},
	}

	blob := SearchableText(tool, c)

	assert.Equal(t, strings.ToLower(blob), blob, "blob must be lowercased")
	for _, want := range []string{"jasper ai", "marketing copy", "writing & content", "jasper", "e-commerce", "blogging"} {
		assert.Contains(t, blob, want)
	}
}

func TestTierTexts_BothShapes(t *testing.T) {
	flat := model.Tool{FreeTier: "100 msgs/day", PaidTier: "Unlimited", Limits: "Rate limited"}
	assert.Equal(t, "100 msgs/day", FreeTierText(flat))
	assert.Equal(t, "Unlimited", PaidTierText(flat))
	assert.Equal(t, "Rate limited", LimitsText(flat))

	legacy := model.Tool{Pricing: &model.Pricing{
		Free: &model.FreePlan{Available: true, Limits: "10 uses"},
		Paid: &model.PaidPlan{Benefits: "More uses"},
	}}
	assert.Equal(t, "10 uses", FreeTierText(legacy))
	assert.Equal(t, "More uses", PaidTierText(legacy))
	assert.Equal(t, "10 uses", LimitsText(legacy))
}
