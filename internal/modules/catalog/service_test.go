package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []Product {
	return []Product{
		{SKU: "SH123", Title: "Cotton Shirt", Description: "Casual cotton shirt", Price: 1799, Sizes: []string{"S", "M", "L"}},
		{SKU: "DR234", Title: "Party Dress", Description: "Floral party dress", Price: 2599, Sizes: []string{"S", "M", "L"}},
		{SKU: "SNK010", Title: "Sneakers", Description: "Comfort sneakers", Price: 2499, Sizes: []string{"8", "9", "10"}},
		{SKU: "TSH001", Title: "Graphic Tee", Description: "Printed tee", Price: 799, Sizes: []string{"M", "L", "XL"}},
		{SKU: "JKT09", Title: "Light Jacket", Description: "Windproof jacket", Price: 3499, Sizes: []string{"M", "L", "XL"}},
	}
}

func TestRecommend_NoFilters(t *testing.T) {
	svc := NewService(NewMemoryRepository(testProducts()))

	candidates, err := svc.Recommend(context.Background(), RecommendRequest{})
	require.NoError(t, err)
	require.Len(t, candidates, 5)

	for i, c := range candidates {
		assert.Equal(t, testProducts()[i].SKU, c.SKU)
		assert.Equal(t, round2(0.90-0.05*float64(i)), c.Score)
	}
	assert.Equal(t, 0.90, candidates[0].Score)
	assert.Equal(t, 0.70, candidates[4].Score)
}

func TestRecommend_BudgetIsInclusiveUpperBound(t *testing.T) {
	svc := NewService(NewMemoryRepository(testProducts()))
	budget := 1799

	candidates, err := svc.Recommend(context.Background(), RecommendRequest{
		Filters: &Filters{BudgetMax: &budget},
	})
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "SH123", candidates[0].SKU)
	assert.Equal(t, "TSH001", candidates[1].SKU)
	assert.Equal(t, 0.85, candidates[1].Score)
}

func TestRecommend_SizeExcludes(t *testing.T) {
	svc := NewService(NewMemoryRepository(testProducts()))

	candidates, err := svc.Recommend(context.Background(), RecommendRequest{
		Filters: &Filters{Size: "9"},
	})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "SNK010", candidates[0].SKU)
}

func TestRecommend_CategoryIsAdvisoryOnly(t *testing.T) {
	svc := NewService(NewMemoryRepository(testProducts()))

	candidates, err := svc.Recommend(context.Background(), RecommendRequest{
		Filters: &Filters{Category: "dress"},
	})
	require.NoError(t, err)
	assert.Len(t, candidates, 5, "a category miss must not exclude products")
}

func TestRecommend_FallbackNeverEmpty(t *testing.T) {
	svc := NewService(NewMemoryRepository(testProducts()))
	budget := 1

	candidates, err := svc.Recommend(context.Background(), RecommendRequest{
		Filters: &Filters{BudgetMax: &budget},
	})
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	for i, c := range candidates {
		assert.Equal(t, testProducts()[i].SKU, c.SKU)
		assert.Equal(t, 0.50, c.Score)
	}
}

func TestRecommend_ScoreHasNoFloor(t *testing.T) {
	products := make([]Product, 20)
	for i := range products {
		products[i] = Product{SKU: fmt.Sprintf("SKU%02d", i), Title: "Item", Price: 100}
	}
	svc := NewService(NewMemoryRepository(products))

	candidates, err := svc.Recommend(context.Background(), RecommendRequest{})
	require.NoError(t, err)
	require.Len(t, candidates, 20)
	assert.Equal(t, -0.05, candidates[19].Score)
}

func TestGetProduct_Unknown(t *testing.T) {
	svc := NewService(NewMemoryRepository(testProducts()))

	_, err := svc.GetProduct(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrNotFound)
}
