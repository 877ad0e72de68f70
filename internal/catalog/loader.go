// Package catalog loads and memoizes the static tool dataset.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/gubicoo/lens/internal/common"
	"github.com/gubicoo/lens/internal/model"
)

// Provider loads the catalog from a JSON file exactly once per process and
// serves the cached result afterwards. A failed load is cached too; the
// user retries by re-running the command.
type Provider struct {
	path    string
	once    sync.Once
	catalog *model.Catalog
	err     error
}

// NewProvider creates a provider reading from the given file path.
func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

// rawCatalog mirrors the on-disk shape. Pointer slices distinguish a
// missing key from an empty array: both top-level arrays must be present.
type rawCatalog struct {
	Categories *[]model.Category `json:"categories"`
	Tools      *[]model.Tool     `json:"tools"`
}

// Load returns the memoized catalog, reading and validating the file on
// first use.
func (p *Provider) Load(ctx context.Context) (*model.Catalog, error) {
	p.once.Do(func() {
		p.catalog, p.err = p.load(ctx)
	})
	return p.catalog, p.err
}

func (p *Provider) load(ctx context.Context) (*model.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.NewUserError(
				fmt.Sprintf("catalog file %s not found", p.path), common.ErrCatalogNotFound)
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var raw rawCatalog
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, common.NewUserError(
			"catalog file is malformed", fmt.Errorf("%w: %w", common.ErrInvalidCatalog, err))
	}
	if raw.Categories == nil || raw.Tools == nil {
		return nil, common.NewUserError(
			"catalog file is missing categories or tools", common.ErrInvalidCatalog)
	}

	cat := model.NewCatalog(*raw.Categories, *raw.Tools)

	skippedCategories := 0
	for _, c := range cat.Categories {
		if !c.Valid() {
			skippedCategories++
		}
	}
	skippedTools := 0
	for _, t := range cat.Tools {
		if !t.Valid() {
			skippedTools++
		}
	}
	slog.Debug("catalog loaded",
		"path", p.path,
		"categories", len(cat.Categories),
		"tools", len(cat.Tools),
		"skipped_categories", skippedCategories,
		"skipped_tools", skippedTools)

	return cat, nil
}

// Check walks the dataset and reports how many records would be skipped by
// listing operations. It never fails on individual records.
type Check struct {
	Categories        int
	Tools             int
	SkippedCategories int
	SkippedTools      int
}

// Inspect counts valid and skipped records in an already-loaded catalog.
func Inspect(c *model.Catalog) Check {
	var chk Check
	chk.Categories = len(c.Categories)
	chk.Tools = len(c.Tools)
	for _, cat := range c.Categories {
		if !cat.Valid() {
			chk.SkippedCategories++
		}
	}
	for _, t := range c.Tools {
		if !t.Valid() {
			chk.SkippedTools++
		}
	}
	return chk
}
