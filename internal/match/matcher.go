// Package match decides whether a tool satisfies a text/category query.
package match

import (
	"strings"

	"github.com/gubicoo/lens/internal/model"
	"github.com/gubicoo/lens/internal/normalize"
)

// Mode selects how the category and text acceptance paths combine. The
// gating differs by calling context and must be chosen explicitly by the
// caller, never inferred.
type Mode int

const (
	// TextOnly accepts on a text hit alone; category ids are ignored.
	// Used by plain keyword search.
	TextOnly Mode = iota
	// AnyOf accepts on a category hit OR a text hit. Used by
	// persona-based browsing.
	AnyOf
	// CategoryThenText requires category membership AND a text hit.
	// Used by curated question browsing.
	CategoryThenText
)

// Query is a matching request against one tool.
type Query struct {
	Terms       []string
	CategoryIDs []string
	Mode        Mode
}

// Matches reports whether the tool satisfies the query. Tools missing
// identity fields never match.
func Matches(t model.Tool, c *model.Catalog, q Query) bool {
	if !t.Valid() {
		return false
	}

	switch q.Mode {
	case TextOnly:
		return textMatch(t, c, q.Terms)
	case AnyOf:
		return categoryMatch(t, q.CategoryIDs) || textMatch(t, c, q.Terms)
	case CategoryThenText:
		return categoryMatch(t, q.CategoryIDs) && textMatch(t, c, q.Terms)
	}
	return false
}

// categoryMatch treats an empty id list as a match-all: a question or
// persona without category constraints constrains nothing.
func categoryMatch(t model.Tool, ids []string) bool {
	if len(ids) == 0 {
		return true
	}
	for _, id := range ids {
		if t.Category == id {
			return true
		}
	}
	return false
}

// textMatch reports whether any term appears, case-insensitively, in the
// tool's searchable text (name, purpose/description, category name, id,
// recommendation industries and use cases).
func textMatch(t model.Tool, c *model.Catalog, terms []string) bool {
	if len(terms) == 0 {
		return false
	}
	blob := normalize.SearchableText(t, c)
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if strings.Contains(blob, term) {
			return true
		}
	}
	return false
}
