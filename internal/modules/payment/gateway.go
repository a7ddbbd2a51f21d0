package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Gateway is the provider-agnostic interface every payment adapter must
// implement. To add a real provider, implement this interface and register it
// in main.
type Gateway interface {
	// Authorize decides a payment request and returns the provider reference.
	Authorize(ctx context.Context, req *ProcessRequest) (*ProcessResult, error)
}

// mockGateway is a deterministic demo adapter: it declines any amount above
// the threshold and approves everything else with a fresh transaction ref.
type mockGateway struct {
	declineOver float64
	ref         func() string
}

// NewMockGateway returns the demo gateway, declining amounts above 5000.
func NewMockGateway() Gateway {
	return &mockGateway{declineOver: 5000, ref: newTxRef}
}

func (g *mockGateway) Authorize(ctx context.Context, req *ProcessRequest) (*ProcessResult, error) {
	if req.OrderID == "" {
		return nil, fmt.Errorf("order_id is required")
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be greater than zero")
	}

	if req.Amount > g.declineOver {
		return &ProcessResult{Status: StatusDeclined, Reason: "insufficient_funds"}, nil
	}
	return &ProcessResult{
		Status:  StatusApproved,
		TxID:    g.ref(),
		Message: "success",
	}, nil
}

// newTxRef builds a TXN- reference with 10 upper-case hex characters from a
// random UUID.
func newTxRef() string {
	u := uuid.New()
	return fmt.Sprintf("TXN-%X", u[0:5])
}
