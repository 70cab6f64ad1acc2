package item

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PouchSim_Go/internal/domain"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestItemLoader_Load(t *testing.T) {
	loader := NewLoader()

	t.Run("valid catalog", func(t *testing.T) {
		path := writeCatalog(t, `{
			"version": "1",
			"description": "test catalog",
			"items": [
				{"id": "Apple", "type": "material", "stackable": true, "image": "apple.png"},
				{"id": "Slate", "type": "key", "repeatable": false}
			]
		}`)

		config, err := loader.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "1", config.Version)
		require.Len(t, config.Items, 2)
		assert.True(t, config.Items[0].Stackable)
		assert.True(t, config.Items[0].IsRepeatable())
		assert.False(t, config.Items[1].IsRepeatable())
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/items.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read items config file")
	})

	t.Run("schema violation", func(t *testing.T) {
		path := writeCatalog(t, `{"version": "1", "items": [{"id": "Apple", "type": "fruit"}]}`)
		_, err := loader.Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := writeCatalog(t, `{invalid json}`)
		_, err := loader.Load(path)
		assert.Error(t, err)
	})
}

func TestItemLoader_LoadRegistry(t *testing.T) {
	loader := NewLoader()

	path := writeCatalog(t, `{"version": "1", "items": [
		{"id": "Apple", "type": "material", "stackable": true},
		{"id": "Apple", "type": "material", "stackable": true}
	]}`)
	_, err := loader.LoadRegistry(context.Background(), path)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

// The shipped catalog must always load
func TestDefaultCatalog(t *testing.T) {
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	path := filepath.Join(filepath.Dir(file), "..", "..", DefaultConfigPath)

	r, err := NewLoader().LoadRegistry(context.Background(), path)
	require.NoError(t, err)

	arrow := r.MustLookup("NormalArrow")
	assert.Equal(t, domain.TypeArrow, arrow.Type)
	assert.Equal(t, 0, arrow.SortOrder)
	assert.True(t, arrow.Stackable)

	assert.False(t, r.MustLookup("MasterSword").Repeatable)
	assert.Equal(t, domain.TypeKey, r.MustLookup("SpiritOrb").Type)
	assert.Equal(t, -1, r.MustLookup("HasRitoSoulPlus").SortOrder)
}
