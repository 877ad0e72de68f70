// Package compare builds the side-by-side feature matrix for selected
// tools and for bulk all-or-category comparisons.
package compare

import (
	"fmt"
	"strings"

	"github.com/gubicoo/lens/internal/common"
	"github.com/gubicoo/lens/internal/model"
	"github.com/gubicoo/lens/internal/normalize"
	"github.com/gubicoo/lens/internal/search"
)

const (
	// MinTools and MaxTools bound an explicit selection.
	MinTools = 2
	MaxTools = 5

	na = "N/A"
)

// Row is one feature row of the matrix, one value per tool.
type Row struct {
	Feature string
	Values  []string
}

// Matrix is the rendered comparison: tool names as columns, feature
// rows beneath.
type Matrix struct {
	Names []string
	Rows  []Row
}

// Select resolves the given ids against the catalog and builds their
// matrix. Between 2 and 5 ids are required and each must resolve.
func Select(c *model.Catalog, ids []string) (Matrix, error) {
	if len(ids) < MinTools || len(ids) > MaxTools {
		return Matrix{}, common.NewUserError(
			fmt.Sprintf("Select between %d and %d tools to compare.", MinTools, MaxTools),
			fmt.Errorf("compare: got %d tools, want %d to %d", len(ids), MinTools, MaxTools),
		)
	}

	tools := make([]model.Tool, 0, len(ids))
	for _, id := range ids {
		t, ok := c.ToolByID(id)
		if !ok {
			return Matrix{}, common.NewUserError(
				fmt.Sprintf("No tool with id %q in the catalog.", id),
				fmt.Errorf("compare: %q: %w", id, common.ErrToolNotFound),
			)
		}
		tools = append(tools, t)
	}
	return Build(c, tools), nil
}

// ByCategory builds the bulk matrix over every valid tool, or over one
// category when categoryID is not "all". No size limits apply.
func ByCategory(c *model.Catalog, categoryID string) Matrix {
	var tools []model.Tool
	if categoryID == "" || strings.EqualFold(categoryID, "all") {
		tools = search.All(c)
	} else {
		tools = search.ByCategory(c, categoryID)
	}
	return Build(c, tools)
}

// Build assembles the feature matrix for the given tools. Missing data
// renders as "N/A" so every row stays rectangular.
func Build(c *model.Catalog, tools []model.Tool) Matrix {
	m := Matrix{Names: make([]string, 0, len(tools))}
	for _, t := range tools {
		m.Names = append(m.Names, t.Name)
	}

	row := func(feature string, f func(model.Tool, normalize.View) string) Row {
		r := Row{Feature: feature, Values: make([]string, 0, len(tools))}
		for _, t := range tools {
			r.Values = append(r.Values, f(t, normalize.NewView(t, c)))
		}
		return r
	}

	m.Rows = []Row{
		row("Category", func(t model.Tool, v normalize.View) string {
			return v.CategoryName
		}),
		row("Purpose", func(t model.Tool, v normalize.View) string {
			return orNA(t.Summary())
		}),
		row("Pricing Type", func(t model.Tool, v normalize.View) string {
			return string(v.PricingType)
		}),
		row("Free Tier", func(t model.Tool, v normalize.View) string {
			if !v.IsFreemium {
				return "None"
			}
			if text := normalize.FreeTierText(t); text != "" {
				return text
			}
			return "Available"
		}),
		row("Paid Tier", func(t model.Tool, v normalize.View) string {
			return orNA(normalize.PaidTierText(t))
		}),
		row("Monthly Price", func(t model.Tool, v normalize.View) string {
			return priceText(t, func(p *model.PaidPlan) float64 { return p.Monthly })
		}),
		row("Yearly Price", func(t model.Tool, v normalize.View) string {
			return priceText(t, func(p *model.PaidPlan) float64 { return p.Yearly })
		}),
		row("Limits", func(t model.Tool, v normalize.View) string {
			return orNA(normalize.LimitsText(t))
		}),
		row("Rating", func(t model.Tool, v normalize.View) string {
			if t.Rating == 0 {
				return na
			}
			return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", t.Rating), "0"), ".")
		}),
		row("Should I Pay?", func(t model.Tool, v normalize.View) string {
			return orNA(t.ShouldIPay)
		}),
		row("Best For", func(t model.Tool, v normalize.View) string {
			if len(t.BestFor) == 0 {
				return na
			}
			best := t.BestFor
			if len(best) > 3 {
				best = best[:3]
			}
			return strings.Join(best, ", ")
		}),
	}
	return m
}

func orNA(s string) string {
	if s == "" {
		return na
	}
	return s
}

func priceText(t model.Tool, pick func(*model.PaidPlan) float64) string {
	if t.Pricing == nil || t.Pricing.Paid == nil {
		return na
	}
	price := pick(t.Pricing.Paid)
	if price == 0 {
		return "$" + na
	}
	return "$" + strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", price), "0"), ".")
}
