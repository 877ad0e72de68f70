// Package storage persists favorites and settings in a local SQLite
// database.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gubicoo/lens/internal/common"
	"github.com/gubicoo/lens/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStorage implements the Storage interface using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStorage creates a new SQLite storage instance.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath cannot be empty: %w", common.ErrStoreUnavailable)
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStorage{db: db, dbPath: dbPath}
	if err := s.Migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// SaveTool marks a tool as saved. Saving an already-saved tool is a
// no-op.
func (s *SQLiteStorage) SaveTool(ctx context.Context, toolID string) error {
	if toolID == "" {
		return fmt.Errorf("toolID cannot be empty")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO saved_tools (tool_id) VALUES (?)`, toolID)
	if err != nil {
		return fmt.Errorf("failed to save tool: %w", err)
	}
	return nil
}

// RemoveTool unmarks a saved tool. Removing an unsaved tool is a no-op.
func (s *SQLiteStorage) RemoveTool(ctx context.Context, toolID string) error {
	if toolID == "" {
		return fmt.Errorf("toolID cannot be empty")
	}
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM saved_tools WHERE tool_id = ?`, toolID)
	if err != nil {
		return fmt.Errorf("failed to remove tool: %w", err)
	}
	return nil
}

// IsToolSaved reports whether the tool is saved.
func (s *SQLiteStorage) IsToolSaved(ctx context.Context, toolID string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM saved_tools WHERE tool_id = ?`, toolID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check saved tool: %w", err)
	}
	return n > 0, nil
}

// SavedToolIDs returns all saved tool ids in save order.
func (s *SQLiteStorage) SavedToolIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT tool_id FROM saved_tools ORDER BY saved_at, tool_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved tools: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan saved tool: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate saved tools: %w", err)
	}
	return ids, nil
}

// SavedTools resolves the saved ids against the catalog, silently
// dropping ids that no longer exist there.
func (s *SQLiteStorage) SavedTools(ctx context.Context, c *model.Catalog) ([]model.Tool, error) {
	ids, err := s.SavedToolIDs(ctx)
	if err != nil {
		return nil, err
	}
	tools := make([]model.Tool, 0, len(ids))
	for _, id := range ids {
		if t, ok := c.ToolByID(id); ok {
			tools = append(tools, t)
		}
	}
	return tools, nil
}

// GetSettings returns the stored settings merged over the defaults, so
// keys never written still have defined values.
func (s *SQLiteStorage) GetSettings(ctx context.Context) (model.Settings, error) {
	settings := model.DefaultSettings()

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return settings, fmt.Errorf("failed to load settings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return settings, fmt.Errorf("failed to scan setting: %w", err)
		}
		switch key {
		case "theme":
			settings.Theme = value
		case "language":
			settings.Language = value
		case "currency":
			settings.Currency = value
		case "region":
			settings.Region = value
		}
	}
	if err := rows.Err(); err != nil {
		return settings, fmt.Errorf("failed to iterate settings: %w", err)
	}
	return settings, nil
}

// SaveSettings persists the settings. Currency is pinned to USD
// regardless of the value passed in.
func (s *SQLiteStorage) SaveSettings(ctx context.Context, settings model.Settings) error {
	settings.Currency = "USD"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	pairs := map[string]string{
		"theme":    settings.Theme,
		"language": settings.Language,
		"currency": settings.Currency,
		"region":   settings.Region,
	}
	for key, value := range pairs {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO settings (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
			key, value); err != nil {
			return fmt.Errorf("failed to save setting %q: %w", key, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settings: %w", err)
	}
	return nil
}

// Open opens the store at dbPath, degrading to nil when the database
// cannot be opened. Callers treat a nil store as "no favorites, default
// settings" rather than failing the whole command.
func Open(dbPath string) (*SQLiteStorage, error) {
	s, err := NewSQLiteStorage(dbPath)
	if err != nil {
		if errors.Is(err, common.ErrStoreUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", common.ErrStoreUnavailable, err)
	}
	return s, nil
}
