package inventory

// StoreOnline is the store label denoting the non-physical channel. Matching
// against it is case-insensitive.
const StoreOnline = "Online"

// Fulfillment options reported by a stock check.
const (
	OptionShipToHome      = "ship_to_home"
	OptionClickAndCollect = "click_and_collect"
)

// Record is one (SKU, store, size) stock line. Orphan SKUs without a catalog
// entry are tolerated. Qty is the only field mutated after load, and only by
// the ledger itself.
type Record struct {
	SKU   string `json:"sku"`
	Store string `json:"store"`
	Size  string `json:"size"`
	Qty   int    `json:"qty"`
}

// CheckRequest asks for aggregated stock of a SKU. Size is accepted for
// interface compatibility but does not filter quantities: stock is summed
// across all sizes of the SKU.
type CheckRequest struct {
	SKU            string `json:"sku"`
	Size           string `json:"size,omitempty"`
	PreferredStore string `json:"preferred_store,omitempty"`
}

// CheckResult is the aggregated stock picture for one SKU.
type CheckResult struct {
	OnlineStock        int            `json:"online_stock"`
	StoreStock         map[string]int `json:"store_stock"`
	FulfillmentOptions []string       `json:"fulfillment_options"`
}
