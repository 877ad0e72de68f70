// Package model defines the catalog data types shared across the application.
package model

// Category represents one tool category in the catalog.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
}

// Valid reports whether the category carries the identity fields every
// listing operation requires. Invalid categories are skipped, never errored.
func (c Category) Valid() bool {
	return c.ID != "" && c.Name != ""
}
