// Package search implements keyword search and the catalog listings.
package search

import (
	"strings"

	"github.com/gubicoo/lens/internal/match"
	"github.com/gubicoo/lens/internal/model"
	"github.com/gubicoo/lens/internal/rank"
)

const (
	trendingLimit = 3
	featuredLimit = 6
)

// Keyword returns tools whose searchable text contains the query,
// ordered by rating descending and capped at 10. Whitespace-only
// queries return no results.
func Keyword(c *model.Catalog, query string) []model.Tool {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	q := match.Query{
		Terms: []string{query},
		Mode:  match.TextOnly,
	}

	var out []model.Tool
	for _, t := range c.Tools {
		if match.Matches(t, c, q) {
			out = append(out, t)
		}
	}

	rank.ByRating(out)
	return rank.Cap(out, rank.BrowseLimit)
}

// ByCategory returns every valid tool in the category, uncapped, ordered
// by rating descending then name ascending. The category id comparison
// is case-insensitive after trimming; an unknown id yields an empty
// result.
func ByCategory(c *model.Catalog, categoryID string) []model.Tool {
	want := strings.ToLower(strings.TrimSpace(categoryID))
	if want == "" {
		return nil
	}

	var out []model.Tool
	for _, t := range c.ValidTools() {
		if strings.ToLower(strings.TrimSpace(t.Category)) == want {
			out = append(out, t)
		}
	}

	rank.ByRatingThenName(out)
	return out
}

// All returns every valid tool, uncapped, ordered by rating descending
// then name ascending.
func All(c *model.Catalog) []model.Tool {
	out := append([]model.Tool(nil), c.ValidTools()...)
	rank.ByRatingThenName(out)
	return out
}

// Trending returns the top 3 valid tools by rating.
func Trending(c *model.Catalog) []model.Tool {
	out := append([]model.Tool(nil), c.ValidTools()...)
	rank.ByRating(out)
	return rank.Cap(out, trendingLimit)
}

// Featured returns the top 6 valid tools by rating.
func Featured(c *model.Catalog) []model.Tool {
	out := append([]model.Tool(nil), c.ValidTools()...)
	rank.ByRating(out)
	return rank.Cap(out, featuredLimit)
}
