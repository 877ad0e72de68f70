package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gubicoo/lens/internal/model"
)

func testCatalog() *model.Catalog {
	return model.NewCatalog(
		[]model.Category{
			{ID: "writing", Name: "Writing"},
			{ID: "coding", Name: "Coding"},
		},
		[]model.Tool{
			{ID: "jasper", Name: "Jasper", Category: "writing", Purpose: "Marketing copy", Rating: 4.2},
			{ID: "copyai", Name: "Copy.ai", Category: "writing", Purpose: "Sales copy", Rating: 4.0},
			{ID: "cursor", Name: "Cursor", Category: "coding", Purpose: "AI code editor", Rating: 4.6},
			{ID: "ghost", Name: "Ghostwriter", Category: "Coding ", Purpose: "Code completion", Rating: 3.9},
			{ID: "", Name: "Broken"},
		},
	)
}

func TestKeyword(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "matches purpose ordered by rating",
			query: "copy",
			want:  []string{"jasper", "copyai"},
		},
		{
			name:  "matches category name",
			query: "coding",
			want:  []string{"cursor", "ghost"},
		},
		{
			name:  "matches id",
			query: "copyai",
			want:  []string{"copyai"},
		},
		{
			name:  "case insensitive",
			query: "JASPER",
			want:  []string{"jasper"},
		},
		{
			name:  "whitespace only returns nothing",
			query: "   ",
			want:  nil,
		},
		{
			name:  "no hits",
			query: "spreadsheet",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toolIDs(Keyword(c, tt.query)))
		})
	}
}

func TestKeyword_CapsAtTen(t *testing.T) {
	tools := make([]model.Tool, 0, 12)
	for i := 0; i < 12; i++ {
		tools = append(tools, model.Tool{
			ID:   fmt.Sprintf("tool-%d", i),
			Name: fmt.Sprintf("Widget %d", i),
		})
	}
	c := model.NewCatalog(nil, tools)
	assert.Len(t, Keyword(c, "widget"), 10)
}

func TestByCategory(t *testing.T) {
	c := testCatalog()

	t.Run("case insensitive with whitespace tolerance", func(t *testing.T) {
		// "ghost" stores its category as "Coding " with stray casing
		// and padding; it still belongs to the coding listing.
		got := ByCategory(c, "CODING")
		assert.Equal(t, []string{"cursor", "ghost"}, toolIDs(got))
	})

	t.Run("rating then name ordering, uncapped", func(t *testing.T) {
		got := ByCategory(c, "writing")
		require.Len(t, got, 2)
		assert.Equal(t, "jasper", got[0].ID)
	})

	t.Run("unknown category yields empty", func(t *testing.T) {
		assert.Empty(t, ByCategory(c, "nonexistent"))
	})

	t.Run("empty id yields empty", func(t *testing.T) {
		assert.Empty(t, ByCategory(c, ""))
	})
}

func TestAll_ExcludesInvalidAndSorts(t *testing.T) {
	c := testCatalog()
	got := All(c)
	require.Len(t, got, 4)
	assert.Equal(t, "cursor", got[0].ID)
	assert.NotContains(t, toolIDs(got), "")
}

func TestTrendingAndFeatured(t *testing.T) {
	tools := make([]model.Tool, 0, 8)
	for i := 0; i < 8; i++ {
		tools = append(tools, model.Tool{
			ID:     fmt.Sprintf("t%d", i),
			Name:   "T",
			Rating: float64(i),
		})
	}
	c := model.NewCatalog(nil, tools)

	trending := Trending(c)
	require.Len(t, trending, 3)
	assert.InDelta(t, 7, trending[0].Rating, 0.001)

	featured := Featured(c)
	assert.Len(t, featured, 6)
}

func toolIDs(tools []model.Tool) []string {
	if len(tools) == 0 {
		return nil
	}
	out := make([]string, 0, len(tools))
	for _, t := range tools {
		out = append(out, t.ID)
	}
	return out
}
