package offers

// Discount entry types, in application order: loyalty before coupon.
const (
	DiscountLoyaltyGold = "loyalty_gold"
	DiscountCoupon      = "coupon"
)

// CouponWelcome is the only coupon code the demo engine honors: a flat
// 50-unit discount.
const CouponWelcome = "WELCOME50"

// CartLine is one request-scoped cart entry. Qty defaults to 1 when omitted.
type CartLine struct {
	SKU string `json:"sku"`
	Qty int    `json:"qty,omitempty"`
}

// ApplyRequest holds the data for a pricing query.
type ApplyRequest struct {
	UserID string     `json:"user_id,omitempty"`
	Cart   []CartLine `json:"cart"`
	Coupon string     `json:"coupon,omitempty"`
}

// Discount is one applied discount entry.
type Discount struct {
	Type   string `json:"type"`
	Amount int    `json:"amount"`
}

// Quote is the priced cart. FinalPrice never goes negative regardless of
// discount magnitude.
type Quote struct {
	BaseTotal    int        `json:"base_total"`
	Discounts    []Discount `json:"discounts"`
	FinalPrice   int        `json:"final_price"`
	PointsEarned int        `json:"points_earned"`
}
