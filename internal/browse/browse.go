// Package browse implements the persona and curated-question result
// flows on top of the matcher and ranking rules.
package browse

import (
	"log/slog"

	"github.com/gubicoo/lens/internal/facets"
	"github.com/gubicoo/lens/internal/match"
	"github.com/gubicoo/lens/internal/model"
	"github.com/gubicoo/lens/internal/rank"
)

// ForPersona returns the top tools for a persona, optionally widened by
// help-with selections. A tool qualifies when its category is in the
// combined category set or its text matches a persona search term. The
// persona's pricing preference breaks rating ties; results cap at 10.
func ForPersona(c *model.Catalog, p facets.Persona, helpWith []facets.HelpWith) []model.Tool {
	categories := p.Categories
	for _, h := range helpWith {
		categories = facets.Union(categories, h.Categories)
	}

	q := match.Query{
		Terms:       p.SearchTerms,
		CategoryIDs: categories,
		Mode:        match.AnyOf,
	}

	var out []model.Tool
	for _, t := range c.Tools {
		if match.Matches(t, c, q) {
			out = append(out, t)
		}
	}

	rank.ByRatingPreferPricing(out, c, p.PreferredPricing)
	out = rank.Cap(out, rank.BrowseLimit)

	slog.Debug("persona browse", "persona", p.ID, "results", len(out))
	return out
}

// ForQuestion returns the top tools for a curated question. Category
// membership is a hard gate and a search term must then match within
// the gated set. Results sort by rating descending and cap at 10.
func ForQuestion(c *model.Catalog, q facets.Question) []model.Tool {
	query := match.Query{
		Terms:       q.SearchTerms,
		CategoryIDs: q.Categories,
		Mode:        match.CategoryThenText,
	}

	var out []model.Tool
	for _, t := range c.Tools {
		if match.Matches(t, c, query) {
			out = append(out, t)
		}
	}

	rank.ByRating(out)
	out = rank.Cap(out, rank.BrowseLimit)

	slog.Debug("question browse", "question", q.Text, "results", len(out))
	return out
}
