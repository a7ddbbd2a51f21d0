package offers

import (
	"context"
	"errors"

	"github.com/retailmock/storefront-backend/internal/modules/catalog"
	"github.com/retailmock/storefront-backend/internal/modules/customer"
)

// Service defines offer calculation business logic.
type Service interface {
	Apply(ctx context.Context, req ApplyRequest) (*Quote, error)
}

type service struct {
	catalog   catalog.Repository
	customers customer.Directory
}

// NewService creates an offers service pricing against the given catalog and
// customer directory.
func NewService(catalogRepo catalog.Repository, customers customer.Directory) Service {
	return &service{catalog: catalogRepo, customers: customers}
}

// Apply prices the cart. Unknown SKUs contribute zero rather than failing
// the cart. A Gold customer gets floor(5%) of the base total as a loyalty
// discount; the WELCOME50 coupon adds a flat 50 on top. The loyalty entry,
// when present, precedes the coupon entry.
func (s *service) Apply(ctx context.Context, req ApplyRequest) (*Quote, error) {
	baseTotal := 0
	for _, line := range req.Cart {
		qty := line.Qty
		if qty < 1 {
			qty = 1
		}
		p, err := s.catalog.GetBySKU(ctx, line.SKU)
		if errors.Is(err, catalog.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		baseTotal += p.Price * qty
	}

	totalDiscount := 0
	discounts := []Discount{}
	if req.UserID != "" {
		c, err := s.customers.GetByID(ctx, req.UserID)
		if err != nil && !errors.Is(err, customer.ErrNotFound) {
			return nil, err
		}
		if err == nil && c.LoyaltyTier == customer.TierGold {
			amount := baseTotal * 5 / 100
			discounts = append(discounts, Discount{Type: DiscountLoyaltyGold, Amount: amount})
			totalDiscount += amount
		}
	}
	if req.Coupon == CouponWelcome {
		discounts = append(discounts, Discount{Type: DiscountCoupon, Amount: 50})
		totalDiscount += 50
	}

	finalPrice := baseTotal - totalDiscount
	if finalPrice < 0 {
		finalPrice = 0
	}
	return &Quote{
		BaseTotal:    baseTotal,
		Discounts:    discounts,
		FinalPrice:   finalPrice,
		PointsEarned: finalPrice / 100,
	}, nil
}
