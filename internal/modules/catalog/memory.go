package catalog

import (
	"context"
	"fmt"
)

// memoryRepo serves the catalog from an in-process slice. The slice is fixed
// at construction, so reads need no locking.
type memoryRepo struct {
	products []*Product
	bySKU    map[string]*Product
}

// NewMemoryRepository builds a Repository over the given products, preserving
// their load order.
func NewMemoryRepository(products []Product) Repository {
	repo := &memoryRepo{bySKU: make(map[string]*Product, len(products))}
	for i := range products {
		p := products[i]
		repo.products = append(repo.products, &p)
		repo.bySKU[p.SKU] = &p
	}
	return repo
}

func (r *memoryRepo) List(ctx context.Context) ([]*Product, error) {
	return r.products, nil
}

func (r *memoryRepo) GetBySKU(ctx context.Context, sku string) (*Product, error) {
	p, ok := r.bySKU[sku]
	if !ok {
		return nil, fmt.Errorf("sku %s: %w", sku, ErrNotFound)
	}
	return p, nil
}
