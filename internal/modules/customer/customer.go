package customer

import (
	"context"
	"errors"
)

// Loyalty tiers. Only Gold carries a discount; Silver and unknown tiers are
// intentionally not discounted.
const (
	TierSilver = "Silver"
	TierGold   = "Gold"
)

// ErrNotFound is returned when a user id has no directory entry.
var ErrNotFound = errors.New("customer not found")

// Customer is an immutable directory entry.
type Customer struct {
	UserID      string `json:"user_id"`
	SizeProfile string `json:"size_profile"`
	LoyaltyTier string `json:"loyalty_tier"`
}

// Directory defines read access to the customer records.
type Directory interface {
	GetByID(ctx context.Context, userID string) (*Customer, error)
}
