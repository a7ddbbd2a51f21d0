package inventory

import (
	"context"
	"fmt"
	"strings"
)

// Service defines inventory business logic.
type Service interface {
	Check(ctx context.Context, req CheckRequest) (*CheckResult, error)
}

type service struct{ ledger *Ledger }

// NewService creates an inventory service reading from the given ledger.
func NewService(ledger *Ledger) Service { return &service{ledger: ledger} }

// Check sums stock for the SKU across the ledger. Records whose store is
// "Online" (any casing) count toward online stock; every other store keeps
// its label as stored. A preferred store always appears in the result, at
// zero if it holds no stock.
func (s *service) Check(ctx context.Context, req CheckRequest) (*CheckResult, error) {
	if req.SKU == "" {
		return nil, fmt.Errorf("sku is required")
	}

	result := &CheckResult{
		StoreStock:         map[string]int{},
		FulfillmentOptions: []string{},
	}
	for _, rec := range s.ledger.Snapshot() {
		if rec.SKU != req.SKU {
			continue
		}
		if strings.EqualFold(rec.Store, StoreOnline) {
			result.OnlineStock += rec.Qty
		} else {
			result.StoreStock[rec.Store] += rec.Qty
		}
	}
	if req.PreferredStore != "" {
		if _, ok := result.StoreStock[req.PreferredStore]; !ok {
			result.StoreStock[req.PreferredStore] = 0
		}
	}

	if result.OnlineStock > 0 {
		result.FulfillmentOptions = append(result.FulfillmentOptions, OptionShipToHome)
	}
	for _, qty := range result.StoreStock {
		if qty > 0 {
			result.FulfillmentOptions = append(result.FulfillmentOptions, OptionClickAndCollect)
			break
		}
	}
	return result, nil
}
