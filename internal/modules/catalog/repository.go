package catalog

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a SKU has no catalog entry.
var ErrNotFound = errors.New("product not found")

// Repository defines read access to the product catalog.
type Repository interface {
	List(ctx context.Context) ([]*Product, error)
	GetBySKU(ctx context.Context, sku string) (*Product, error)
}
