// internal/catalog/store.go
package catalog

import (
	"context"
	"errors"
)

// Error codes for catalog lookups
var (
	ErrProductNotFound = errors.New("PRODUCT_NOT_FOUND")
)

// Store provides read access to the product catalog.
type Store interface {
	// List returns every product in the catalog.
	List(ctx context.Context) ([]Product, error)

	// Get returns the product with the given id, or ErrProductNotFound.
	Get(ctx context.Context, id string) (Product, error)
}
