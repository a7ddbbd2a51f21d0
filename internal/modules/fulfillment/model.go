package fulfillment

// Reservation outcome statuses.
const (
	StatusReserved    = "reserved"
	StatusUnavailable = "slot_unavailable"
)

// ReserveRequest asks to hold one unit of a SKU for in-store pickup. Slot and
// UserContact are accepted for interface compatibility; the demo engine keys
// the reservation on (SKU, store) alone.
type ReserveRequest struct {
	SKU         string `json:"sku"`
	Store       string `json:"store"`
	Slot        string `json:"slot,omitempty"`
	UserContact string `json:"user_contact,omitempty"`
}

// Result is either a successful reservation (pickup code and ETA) or a
// structured unavailability carrying alternative pickup slots. It is not
// persisted: the only durable effect of a reservation is the ledger
// decrement.
type Result struct {
	Status       string   `json:"status"`
	PickupCode   string   `json:"pickup_code,omitempty"`
	ETA          string   `json:"eta,omitempty"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// Reserved reports whether the reservation succeeded.
func (r *Result) Reserved() bool { return r.Status == StatusReserved }
