package fulfillment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/retailmock/storefront-backend/internal/modules/inventory"
)

const (
	pickupLeadTime = 2 * time.Hour

	// Offsets for the alternative slots offered when a reservation cannot be
	// satisfied. Fixed, not derived from a slot calendar.
	firstAlternative  = 24 * time.Hour
	secondAlternative = 48 * time.Hour
)

// Service defines fulfillment business logic.
type Service interface {
	Reserve(ctx context.Context, req ReserveRequest) (*Result, error)
}

// service reserves stock against the shared inventory ledger. The clock and
// pickup-code source are fields so tests can pin them.
type service struct {
	ledger *inventory.Ledger
	now    func() time.Time
	code   func() string
}

// NewService creates a fulfillment service mutating the given ledger.
func NewService(ledger *inventory.Ledger) Service {
	return &service{ledger: ledger, now: time.Now, code: newPickupCode}
}

// Reserve holds one unit of the SKU at the store, first fit in ledger order.
// On success the ledger quantity is decremented and the caller gets a pickup
// code and ETA. When no matching record has stock, the result is a
// structured unavailability with two alternative slots at +24h and +48h;
// unknown SKUs and stores fold into the same branch. There is no hold phase
// and no cancellation: a decrement is final.
func (s *service) Reserve(ctx context.Context, req ReserveRequest) (*Result, error) {
	if req.SKU == "" {
		return nil, fmt.Errorf("sku is required")
	}
	if req.Store == "" {
		return nil, fmt.Errorf("store is required")
	}

	if !s.ledger.ReserveOne(req.SKU, req.Store) {
		now := s.now().UTC()
		return &Result{
			Status: StatusUnavailable,
			Alternatives: []string{
				now.Add(firstAlternative).Format(time.RFC3339),
				now.Add(secondAlternative).Format(time.RFC3339),
			},
		}, nil
	}

	return &Result{
		Status:     StatusReserved,
		PickupCode: s.code(),
		ETA:        s.now().UTC().Add(pickupLeadTime).Format(time.RFC3339),
	}, nil
}

// newPickupCode draws 6 upper-case hex characters from a random 128-bit
// UUID. Collisions are negligible at demo scale.
func newPickupCode() string {
	u := uuid.New()
	return fmt.Sprintf("%X", u[0:3])
}
