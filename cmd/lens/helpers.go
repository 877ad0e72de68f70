package main

import (
	"context"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/gubicoo/lens/internal/catalog"
	"github.com/gubicoo/lens/internal/common"
	"github.com/gubicoo/lens/internal/config"
	"github.com/gubicoo/lens/internal/model"
	"github.com/gubicoo/lens/internal/storage"
)

// loadCatalog reads the configured catalog dataset.
func loadCatalog(ctx context.Context) (*model.Catalog, error) {
	path := viper.GetString("catalog.path")
	if path == "" {
		path = config.DefaultCatalogPath()
	} else {
		path = config.ExpandPath(path)
	}
	return catalog.NewProvider(path).Load(ctx)
}

// initStorage opens the favorites and settings database.
func initStorage() (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	} else {
		dbPath = config.ExpandPath(dbPath)
	}
	return storage.Open(dbPath)
}

// tryStorage opens the database, degrading to nil when it is
// unavailable so read paths can still render with defaults.
func tryStorage() *storage.SQLiteStorage {
	store, err := initStorage()
	if err != nil {
		slog.Warn("favorites store unavailable, continuing without it", "error", err)
		return nil
	}
	return store
}

func closeStorage(store *storage.SQLiteStorage) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		common.LogError(err, "failed to close storage", nil)
	}
}
