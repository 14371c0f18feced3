// internal/catalog/file_store.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// FileStore serves the catalog from a products.json file. The file is
// read once and held in memory; the catalog is read-only at runtime.
type FileStore struct {
	mu       sync.RWMutex
	products []Product
	byID     map[string]Product
}

// NewFileStore loads the catalog from the given JSON file.
func NewFileStore(path string) (*FileStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	byID := make(map[string]Product, len(products))
	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog file %s contains a product without an id", path)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("catalog file %s contains duplicate product id %q", path, p.ID)
		}
		byID[p.ID] = p
	}

	return &FileStore{products: products, byID: byID}, nil
}

// List returns every product in file order.
func (s *FileStore) List(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// Get returns the product with the given id.
func (s *FileStore) Get(ctx context.Context, id string) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}
