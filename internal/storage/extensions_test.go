package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teklink/devid/internal/catalog"
	"github.com/teklink/devid/internal/model"
)

func createTestStorage(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestNewRequiresPath(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := createTestStorage(t)
	assert.NoError(t, store.Migrate(context.Background()))
}

func TestExtensionRoundtrip(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.AddExtension(ctx, model.Extension{
		Path:   []string{"htek", "uc923"},
		Family: model.FamilyDeskphone,
	}))
	require.NoError(t, store.AddExtension(ctx, model.Extension{
		Path:   []string{"snomd785"},
		Family: model.FamilyDeskphone,
	}))

	extensions, err := store.ListExtensions(ctx)
	require.NoError(t, err)
	require.Len(t, extensions, 2)

	// Insertion order is preserved.
	assert.Equal(t, []string{"htek", "uc923"}, extensions[0].Path)
	assert.Equal(t, model.FamilyDeskphone, extensions[0].Family)
	assert.Equal(t, []string{"snomd785"}, extensions[1].Path)
}

func TestAddExtensionLowercasesTokens(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.AddExtension(ctx, model.Extension{
		Path:   []string{"Akuvox", " X912 "},
		Family: model.FamilyDoorBell,
	}))

	extensions, err := store.ListExtensions(ctx)
	require.NoError(t, err)
	require.Len(t, extensions, 1)
	assert.Equal(t, []string{"akuvox", "x912"}, extensions[0].Path)
}

func TestAddExtensionUpsert(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.AddExtension(ctx, model.Extension{
		Path:   []string{"axis"},
		Family: model.FamilyPager,
	}))
	require.NoError(t, store.AddExtension(ctx, model.Extension{
		Path:   []string{"axis"},
		Family: model.FamilyDoorBell,
	}))

	extensions, err := store.ListExtensions(ctx)
	require.NoError(t, err)
	require.Len(t, extensions, 1)
	assert.Equal(t, model.FamilyDoorBell, extensions[0].Family)
}

func TestAddExtensionValidation(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	assert.Error(t, store.AddExtension(ctx, model.Extension{Family: model.FamilyPager}))
	assert.Error(t, store.AddExtension(ctx, model.Extension{Path: []string{"snom"}}))
	assert.Error(t, store.AddExtension(ctx, model.Extension{
		Path:   []string{"snom", "  "},
		Family: model.FamilyPager,
	}))
}

func TestBillingOverrideRoundtrip(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.AddBillingOverride(ctx, catalog.Override{
		Platform: model.PlatformKazoo,
		Product:  catalog.Pager,
		Code:     "KZ9999",
	}))
	require.NoError(t, store.AddBillingOverride(ctx, catalog.Override{
		Platform: model.PlatformSkySwitch,
		Product:  catalog.Pager,
		Code:     "SS9999",
	}))

	overrides, err := store.ListBillingOverrides(ctx)
	require.NoError(t, err)
	require.Len(t, overrides, 2)
	assert.Equal(t, model.PlatformKazoo, overrides[0].Platform)
	assert.Equal(t, "KZ9999", overrides[0].Code)
	assert.Equal(t, model.PlatformSkySwitch, overrides[1].Platform)
}

func TestAddBillingOverrideUpsert(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	o := catalog.Override{Platform: model.PlatformKazoo, Product: catalog.SIPTrunk, Code: "KZ0001"}
	require.NoError(t, store.AddBillingOverride(ctx, o))
	o.Code = "KZ0002"
	require.NoError(t, store.AddBillingOverride(ctx, o))

	overrides, err := store.ListBillingOverrides(ctx)
	require.NoError(t, err)
	require.Len(t, overrides, 1)
	assert.Equal(t, "KZ0002", overrides[0].Code)
}

func TestAddBillingOverrideValidation(t *testing.T) {
	store := createTestStorage(t)

	err := store.AddBillingOverride(context.Background(), catalog.Override{
		Platform: model.PlatformKazoo,
		Code:     "KZ0001",
	})
	assert.Error(t, err)
}
