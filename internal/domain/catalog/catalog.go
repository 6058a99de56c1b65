// Package catalog describes the read-only product list a salesperson can pick
// line items from. Picking a product only prefills a line item; the form
// stays free to edit it afterwards.
package catalog

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("product not found")

type Product struct {
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
}

type Repository interface {
	ProductBySKU(ctx context.Context, sku string) (Product, error)
	SearchProducts(ctx context.Context, query string, limit int) ([]Product, error)
}
