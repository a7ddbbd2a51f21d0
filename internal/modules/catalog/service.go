package catalog

import (
	"context"
	"math"
	"strings"
)

const (
	baseScore      = 0.90
	scoreStep      = 0.05
	fallbackScore  = 0.50
	fallbackLength = 3
)

// Service defines catalog business logic.
type Service interface {
	ListProducts(ctx context.Context) ([]*Product, error)
	GetProduct(ctx context.Context, sku string) (*Product, error)
	Recommend(ctx context.Context, req RecommendRequest) ([]Candidate, error)
}

// Filters narrows the recommendation candidate set.
type Filters struct {
	// BudgetMax is an inclusive upper bound on price. Nil means unbounded.
	BudgetMax *int `json:"budget_max,omitempty"`
	// Category is matched case-insensitively against title and description,
	// but is advisory only: a miss never excludes a product.
	Category string `json:"category,omitempty"`
	// Size excludes products not offered in that size.
	Size string `json:"size,omitempty"`
}

// RecommendRequest holds the data for a recommendation query. UserProfile is
// accepted for interface compatibility and not consulted by the rule filter.
type RecommendRequest struct {
	Filters     *Filters       `json:"filters,omitempty"`
	UserProfile map[string]any `json:"user_profile,omitempty"`
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

func (s *service) GetProduct(ctx context.Context, sku string) (*Product, error) {
	return s.repo.GetBySKU(ctx, sku)
}

// Recommend walks the catalog in stored order, applies the budget and size
// exclusions, and assigns each accepted product a descending score starting
// at 0.90. The score has no floor: catalogs past ~18 accepted items produce
// non-positive scores. If nothing survives the filters, the first three
// catalog products are returned at a flat 0.50 so the result is never empty.
func (s *service) Recommend(ctx context.Context, req RecommendRequest) ([]Candidate, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var f Filters
	if req.Filters != nil {
		f = *req.Filters
	}
	category := strings.ToLower(f.Category)

	var candidates []Candidate
	for _, p := range products {
		if f.BudgetMax != nil && p.Price > *f.BudgetMax {
			continue
		}
		if category != "" {
			// The category match is evaluated against title and description
			// but a miss does not exclude the product.
			matchesCategory(p, category)
		}
		if f.Size != "" && !p.HasSize(f.Size) {
			continue
		}
		candidates = append(candidates, Candidate{
			SKU:   p.SKU,
			Title: p.Title,
			Price: p.Price,
			Sizes: p.Sizes,
			Score: round2(baseScore - scoreStep*float64(len(candidates))),
		})
	}

	if len(candidates) == 0 {
		top := products
		if len(top) > fallbackLength {
			top = top[:fallbackLength]
		}
		for _, p := range top {
			candidates = append(candidates, Candidate{
				SKU:   p.SKU,
				Title: p.Title,
				Price: p.Price,
				Sizes: p.Sizes,
				Score: fallbackScore,
			})
		}
	}
	return candidates, nil
}

func matchesCategory(p *Product, category string) bool {
	return strings.Contains(strings.ToLower(p.Title), category) ||
		strings.Contains(strings.ToLower(p.Description), category)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
