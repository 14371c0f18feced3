// internal/catalog/postgres_store.go
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresStore reads the catalog from the products table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a catalog store backed by PostgreSQL.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const productColumns = `id, name, category, description, image,
       stock_amount, weekly_sales, product_age_days, rating, return_rate`

// List returns every product ordered by id.
func (s *PostgresStore) List(ctx context.Context) ([]Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate product rows: %w", err)
	}

	return products, nil
}

// Get returns the product with the given id.
func (s *PostgresStore) Get(ctx context.Context, id string) (Product, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrProductNotFound
		}
		return Product{}, fmt.Errorf("failed to query product %s: %w", id, err)
	}

	return p, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (Product, error) {
	var p Product
	var description, image sql.NullString

	err := row.Scan(
		&p.ID, &p.Name, &p.Category, &description, &image,
		&p.StockAmount, &p.WeeklySales, &p.ProductAgeDays,
		&p.Rating, &p.ReturnRate,
	)
	if err != nil {
		return Product{}, err
	}

	p.Description = description.String
	p.Image = image.String
	return p, nil
}
