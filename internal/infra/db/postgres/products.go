package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"colcal/quotation/internal/domain/catalog"
)

const productsSchema = `
CREATE TABLE IF NOT EXISTS catalog_products (
	sku         TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	unit_price  NUMERIC(14, 2) NOT NULL DEFAULT 0 CHECK (unit_price >= 0)
)`

const maxSearchLimit = 50

var _ catalog.Repository = (*DB)(nil)

func (db *DB) EnsureCatalogSchema(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, productsSchema); err != nil {
		return fmt.Errorf("create catalog_products: %w", err)
	}
	return nil
}

func (db *DB) ProductBySKU(ctx context.Context, sku string) (catalog.Product, error) {
	var p catalog.Product
	err := db.Pool.QueryRow(ctx,
		`SELECT sku, name, description, unit_price::float8 FROM catalog_products WHERE sku = $1`,
		strings.TrimSpace(sku),
	).Scan(&p.SKU, &p.Name, &p.Description, &p.UnitPrice)
	if errors.Is(err, pgx.ErrNoRows) {
		return catalog.Product{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.Product{}, fmt.Errorf("lookup product %s: %w", sku, err)
	}
	return p, nil
}

func (db *DB) SearchProducts(ctx context.Context, query string, limit int) ([]catalog.Product, error) {
	if limit <= 0 || limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	pattern := "%" + escapeLike(strings.TrimSpace(query)) + "%"

	rows, err := db.Pool.Query(ctx,
		`SELECT sku, name, description, unit_price::float8
		   FROM catalog_products
		  WHERE name ILIKE $1 OR sku ILIKE $1 OR description ILIKE $1
		  ORDER BY name
		  LIMIT $2`,
		pattern, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}

	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalog.Product, error) {
		var p catalog.Product
		err := row.Scan(&p.SKU, &p.Name, &p.Description, &p.UnitPrice)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}
	return products, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
