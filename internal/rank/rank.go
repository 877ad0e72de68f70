// Package rank orders, caps, deduplicates, and backfills result lists.
package rank

import (
	"sort"
	"strings"

	"github.com/gubicoo/lens/internal/facets"
	"github.com/gubicoo/lens/internal/model"
	"github.com/gubicoo/lens/internal/normalize"
	"github.com/gubicoo/lens/internal/score"
)

const (
	// BrowseLimit caps search and browse result lists.
	BrowseLimit = 10
	// recommendLimit caps the recommendation result set.
	recommendLimit = 5
	// primaryCount is how many of the top results are "primary"; the
	// remainder are "optional".
	primaryCount = 3
	// backfillFloor is the minimum top score below which the fixed
	// general-purpose tools are added. Empirical; keep as is.
	backfillFloor = 5
)

// Scored pairs a tool with its criteria score.
type Scored struct {
	Tool  model.Tool
	Score float64
}

// SortScored orders scored tools by score descending. Stable: equal
// scores keep their relative order.
func SortScored(items []Scored) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
}

// ByRating orders tools by rating descending. Stable: equal ratings keep
// catalog order.
func ByRating(tools []model.Tool) {
	sort.SliceStable(tools, func(i, j int) bool {
		return tools[i].Rating > tools[j].Rating
	})
}

// ByRatingThenName orders tools by rating descending, then name ascending.
// Used for uncapped full listings.
func ByRatingThenName(tools []model.Tool) {
	sort.SliceStable(tools, func(i, j int) bool {
		if tools[i].Rating != tools[j].Rating {
			return tools[i].Rating > tools[j].Rating
		}
		return strings.ToLower(tools[i].Name) < strings.ToLower(tools[j].Name)
	})
}

// ByRatingPreferPricing orders tools by rating descending and, among equal
// ratings, puts tools satisfying the persona's pricing preference first.
// A "free" preference favors free tools, "freemium" favors tools with any
// free tier; a "paid" preference imposes no tie-break.
func ByRatingPreferPricing(tools []model.Tool, c *model.Catalog, pref facets.PricingPreference) {
	satisfies := func(t model.Tool) bool {
		v := normalize.NewView(t, c)
		switch pref {
		case facets.PreferFree:
			return v.IsFree
		case facets.PreferFreemium:
			return v.IsFreemium
		}
		return false
	}
	sort.SliceStable(tools, func(i, j int) bool {
		if tools[i].Rating != tools[j].Rating {
			return tools[i].Rating > tools[j].Rating
		}
		return satisfies(tools[i]) && !satisfies(tools[j])
	})
}

// Cap truncates the list to at most n entries.
func Cap(tools []model.Tool, n int) []model.Tool {
	if n < 0 || len(tools) <= n {
		return tools
	}
	return tools[:n]
}

// Dedup removes tools whose id was already seen, keeping first
// occurrences in order.
func Dedup(tools []model.Tool) []model.Tool {
	seen := make(map[string]bool, len(tools))
	out := tools[:0]
	for _, t := range tools {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out
}

// Recommendation is the final output of the guided and quick flows: the
// top results split into up to 3 primary picks and up to 2 optional ones.
type Recommendation struct {
	Primary  []model.Tool
	Optional []model.Tool
}

// Tools returns the combined primary and optional lists in rank order.
func (r Recommendation) Tools() []model.Tool {
	out := make([]model.Tool, 0, len(r.Primary)+len(r.Optional))
	out = append(out, r.Primary...)
	out = append(out, r.Optional...)
	return out
}

// TopWithBackfill converts sorted scored results into a Recommendation.
//
// When fewer than five tools scored, or the best score sits below the
// backfill floor, the fixed general-purpose assistants are appended
// (skipping ids already present), the combined set is re-scored with the
// supplied function and re-sorted, and the top five is taken again.
func TopWithBackfill(scored []Scored, c *model.Catalog, rescore func(model.Tool) float64) Recommendation {
	top := make([]model.Tool, 0, recommendLimit)
	for _, s := range scored {
		if len(top) == recommendLimit {
			break
		}
		top = append(top, s.Tool)
	}

	needsBackfill := len(top) < recommendLimit ||
		(len(scored) > 0 && scored[0].Score < backfillFloor)
	if needsBackfill {
		top = appendGeneralPurpose(top, c)

		rescored := make([]Scored, 0, len(top))
		for _, t := range top {
			rescored = append(rescored, Scored{Tool: t, Score: rescore(t)})
		}
		SortScored(rescored)

		top = top[:0]
		for _, s := range rescored {
			if len(top) == recommendLimit {
				break
			}
			top = append(top, s.Tool)
		}
	}

	top = Dedup(top)
	split := primaryCount
	if split > len(top) {
		split = len(top)
	}
	return Recommendation{Primary: top[:split], Optional: top[split:]}
}

func appendGeneralPurpose(tools []model.Tool, c *model.Catalog) []model.Tool {
	present := make(map[string]bool, len(tools))
	for _, t := range tools {
		present[strings.ToLower(t.ID)] = true
	}
	for _, id := range score.GeneralPurposeIDs {
		if present[id] {
			continue
		}
		if t, ok := c.ToolByID(id); ok {
			tools = append(tools, t)
			present[id] = true
		}
	}
	return tools
}
