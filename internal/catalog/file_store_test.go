package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func writeCatalogFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

// ==========================
// Core Functionality Tests
// ==========================

func TestFileStore_List(t *testing.T) {
	store, err := NewFileStore("testdata/products.json")
	require.NoError(t, err)

	products, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)

	// File order is preserved
	assert.Equal(t, "p-1001", products[0].ID)
	assert.Equal(t, "p-1002", products[1].ID)
	assert.Equal(t, "p-1003", products[2].ID)

	assert.Equal(t, "Trail Runner Pro", products[0].Name)
	assert.Equal(t, "footwear", products[0].Category)
	assert.Equal(t, 120.0, products[0].StockAmount)
	assert.Equal(t, 0.03, products[0].ReturnRate)
}

func TestFileStore_Get(t *testing.T) {
	store, err := NewFileStore("testdata/products.json")
	require.NoError(t, err)

	t.Run("existing product", func(t *testing.T) {
		p, err := store.Get(context.Background(), "p-1002")
		require.NoError(t, err)

		assert.Equal(t, "Canvas Weekender Bag", p.Name)
		assert.Equal(t, 750.0, p.StockAmount)
		assert.Equal(t, 2.0, p.WeeklySales)
		assert.Equal(t, 280.0, p.ProductAgeDays)
		assert.Equal(t, 2.2, p.Rating)
		assert.Equal(t, 0.24, p.ReturnRate)
	})

	t.Run("missing product", func(t *testing.T) {
		_, err := store.Get(context.Background(), "p-9999")
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestFileStore_ListReturnsCopy(t *testing.T) {
	store, err := NewFileStore("testdata/products.json")
	require.NoError(t, err)

	first, err := store.List(context.Background())
	require.NoError(t, err)

	// Mutating the returned slice must not leak into the store
	first[0].Name = "mutated"

	second, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Trail Runner Pro", second[0].Name)
}

func TestProduct_Features(t *testing.T) {
	p := Product{
		ID:             "p-1",
		StockAmount:    650,
		WeeklySales:    4,
		ProductAgeDays: 130,
		Rating:         3.1,
		ReturnRate:     0.15,
	}

	f := p.Features()
	assert.Equal(t, 650.0, f.StockAmount)
	assert.Equal(t, 4.0, f.WeeklySales)
	assert.Equal(t, 130.0, f.ProductAgeDays)
	assert.Equal(t, 3.1, f.Rating)
	assert.Equal(t, 0.15, f.ReturnRate)
}

// ==========================
// Error Handling Tests
// ==========================

func TestNewFileStore_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewFileStore("testdata/does-not-exist.json")
		assert.Error(t, err)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := writeCatalogFile(t, `{"not": "an array"`)
		_, err := NewFileStore(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("product without id", func(t *testing.T) {
		path := writeCatalogFile(t, `[{"name": "no id here"}]`)
		_, err := NewFileStore(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "without an id")
	})

	t.Run("duplicate product id", func(t *testing.T) {
		path := writeCatalogFile(t, `[{"id": "p-1", "name": "a"}, {"id": "p-1", "name": "b"}]`)
		_, err := NewFileStore(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate product id")
	})
}
