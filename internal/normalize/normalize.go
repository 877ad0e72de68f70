// Package normalize derives a canonical read-only view of a tool record.
//
// The dataset carries two pricing shapes at once: a flat PricingType enum
// on newer records and a nested free/paid structure on legacy ones. All
// derivations happen here so that no other package branches on shape.
package normalize

import (
	"strings"

	"github.com/gubicoo/lens/internal/model"
)

// DefaultCategoryName is used when a tool's category cannot be resolved.
const DefaultCategoryName = "AI Tool"

// View is the canonical projection of a tool. Every field has a defined
// value; absent source data never leaks through as a surprise downstream.
type View struct {
	Tool model.Tool

	PricingType model.PricingType
	IsFree      bool
	IsFreemium  bool
	IsPaid      bool

	// MonthlyPrice is the legacy paid-plan monthly price, 0 when absent.
	MonthlyPrice float64

	CategoryName string
}

// NewView builds the canonical view of a tool against its catalog.
func NewView(t model.Tool, c *model.Catalog) View {
	v := View{
		Tool:         t,
		PricingType:  PricingTypeOf(t),
		CategoryName: CategoryName(t, c),
	}
	v.IsFree = v.PricingType == model.PricingFree
	v.IsFreemium = v.PricingType == model.PricingFreemium || v.IsFree
	v.IsPaid = v.PricingType == model.PricingPaid || (t.Pricing != nil && t.Pricing.Paid != nil)
	if t.Pricing != nil && t.Pricing.Paid != nil {
		v.MonthlyPrice = t.Pricing.Paid.Monthly
	}
	return v
}

// PricingTypeOf returns the flat pricing classification, deriving it from
// the legacy nested shape when the flat field is absent: a tool with an
// available free plan is Freemium, anything else is Paid.
func PricingTypeOf(t model.Tool) model.PricingType {
	if t.PricingType != "" {
		return t.PricingType
	}
	if t.Pricing != nil && t.Pricing.Free != nil && t.Pricing.Free.Available {
		return model.PricingFreemium
	}
	return model.PricingPaid
}

// CategoryName resolves the display name of the tool's category: the
// denormalized field wins, then a catalog lookup, then a fixed default.
func CategoryName(t model.Tool, c *model.Catalog) string {
	if t.CategoryName != "" {
		return t.CategoryName
	}
	if c != nil {
		if name := c.CategoryName(t.Category); name != "" {
			return name
		}
	}
	return DefaultCategoryName
}

// FreeTierText returns the free-tier description across both shapes.
func FreeTierText(t model.Tool) string {
	if t.FreeTier != "" {
		return t.FreeTier
	}
	if t.Pricing != nil && t.Pricing.Free != nil {
		return t.Pricing.Free.Limits
	}
	return ""
}

// PaidTierText returns the paid-tier description across both shapes.
func PaidTierText(t model.Tool) string {
	if t.PaidTier != "" {
		return t.PaidTier
	}
	if t.Pricing != nil && t.Pricing.Paid != nil {
		return t.Pricing.Paid.Benefits
	}
	return ""
}

// LimitsText returns the usage-limits description across both shapes.
func LimitsText(t model.Tool) string {
	if t.Limits != "" {
		return t.Limits
	}
	if t.Pricing != nil && t.Pricing.Free != nil {
		return t.Pricing.Free.Limits
	}
	return ""
}

// SearchableText returns the lower-cased text blob term matching runs
// against: name, purpose-or-description, category name, id, and the
// recommendation industries and use cases.
func SearchableText(t model.Tool, c *model.Catalog) string {
	parts := []string{
		t.Name,
		t.Summary(),
		CategoryName(t, c),
		t.ID,
	}
	parts = append(parts, t.Industries()...)
	parts = append(parts, t.UseCases()...)
	return strings.ToLower(strings.Join(parts, "\n"))
}
