package model

import "strings"

// Catalog is the full in-memory set of categories and tools for one
// session. It is loaded once and treated as read-only afterwards.
type Catalog struct {
	Categories []Category
	Tools      []Tool

	toolsByID      map[string]int
	categoriesByID map[string]int
}

// NewCatalog builds a catalog with its lookup indexes. Entries missing
// identity fields stay in the slices (callers filter with Valid) but are
// not indexed.
func NewCatalog(categories []Category, tools []Tool) *Catalog {
	c := &Catalog{
		Categories:     categories,
		Tools:          tools,
		toolsByID:      make(map[string]int, len(tools)),
		categoriesByID: make(map[string]int, len(categories)),
	}
	for i, cat := range categories {
		if cat.Valid() {
			c.categoriesByID[normalizeID(cat.ID)] = i
		}
	}
	for i, t := range tools {
		if t.Valid() {
			c.toolsByID[normalizeID(t.ID)] = i
		}
	}
	return c
}

// normalizeID makes id lookups case-insensitive and whitespace-tolerant,
// matching how category links arrive from user input.
func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// ToolByID returns the tool with the given id.
func (c *Catalog) ToolByID(id string) (Tool, bool) {
	i, ok := c.toolsByID[normalizeID(id)]
	if !ok {
		return Tool{}, false
	}
	return c.Tools[i], true
}

// CategoryByID returns the category with the given id.
func (c *Catalog) CategoryByID(id string) (Category, bool) {
	i, ok := c.categoriesByID[normalizeID(id)]
	if !ok {
		return Category{}, false
	}
	return c.Categories[i], true
}

// CategoryName resolves a category id to its display name, or "" when the
// id is unknown.
func (c *Catalog) CategoryName(id string) string {
	cat, ok := c.CategoryByID(id)
	if !ok {
		return ""
	}
	return cat.Name
}

// ValidTools returns the tools that pass the identity check, in catalog
// order.
func (c *Catalog) ValidTools() []Tool {
	out := make([]Tool, 0, len(c.Tools))
	for _, t := range c.Tools {
		if t.Valid() {
			out = append(out, t)
		}
	}
	return out
}

// Settings holds the user's display preferences.
type Settings struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
	Currency string `json:"currency"`
	Region   string `json:"region"`
}

// DefaultSettings returns the hardcoded preference defaults.
func DefaultSettings() Settings {
	return Settings{
		Theme:    "light",
		Language: "en",
		Currency: "USD",
		Region:   "Global",
	}
}
