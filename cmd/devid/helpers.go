package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/teklink/devid/internal/catalog"
	"github.com/teklink/devid/internal/common"
	"github.com/teklink/devid/internal/config"
	"github.com/teklink/devid/internal/engine"
	"github.com/teklink/devid/internal/match"
	"github.com/teklink/devid/internal/storage"
)

// initStore opens the extension store with proper path expansion and brings
// its schema up to date.
func initStore(ctx context.Context) (*storage.Store, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/devid/devid.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// buildEngine loads the extension entries and billing overrides, builds the
// immutable lookup structures, and returns a ready engine. The store is only
// read here; the engine never touches it afterwards.
func buildEngine(ctx context.Context) (*engine.Engine, error) {
	store, err := initStore(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			common.LogError(closeErr, "Failed to close database", nil)
		}
	}()

	extensions, err := store.ListExtensions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load extensions: %w", err)
	}

	overrides, err := store.ListBillingOverrides(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load billing overrides: %w", err)
	}

	tree, err := match.NewTree(extensions)
	if err != nil {
		return nil, fmt.Errorf("failed to build identifier tree: %w", err)
	}

	common.LogInfo("Loaded classification tables", common.Fields{
		"extensions":        len(extensions),
		"billing_overrides": len(overrides),
	})

	billing := catalog.NewBillingWithOverrides(overrides)
	return engine.New(match.NewResolver(tree), billing), nil
}
