package seed

import (
	"github.com/retailmock/storefront-backend/internal/modules/catalog"
	"github.com/retailmock/storefront-backend/internal/modules/customer"
	"github.com/retailmock/storefront-backend/internal/modules/inventory"
)

const fallbackReturnsPolicy = "Return policy: Items can be returned within 15 days of delivery " +
	"if unused and tags intact. Return shipping is free for orders above ₹2000; otherwise " +
	"standard charges apply. Certain categories (innerwear, final sale) are non-returnable. " +
	"See in-app orders page for steps."

// Fallback returns the built-in demo records used when no external source is
// configured. Callers get fresh slices and may mutate them.
func Fallback() *Data {
	return &Data{
		Products: []catalog.Product{
			{SKU: "SH123", Title: "Cotton Shirt", Description: "Casual cotton shirt", Price: 1799, Sizes: []string{"S", "M", "L"}},
			{SKU: "DR234", Title: "Party Dress", Description: "Floral party dress", Price: 2599, Sizes: []string{"S", "M", "L"}},
			{SKU: "SNK010", Title: "Sneakers", Description: "Comfort sneakers", Price: 2499, Sizes: []string{"8", "9", "10"}},
			{SKU: "TSH001", Title: "Graphic Tee", Description: "Printed tee", Price: 799, Sizes: []string{"M", "L", "XL"}},
			{SKU: "JKT09", Title: "Light Jacket", Description: "Windproof jacket", Price: 3499, Sizes: []string{"M", "L", "XL"}},
		},
		Inventory: []inventory.Record{
			{SKU: "SH123", Store: "Indiranagar", Size: "M", Qty: 1},
			{SKU: "SH123", Store: "MallX", Size: "M", Qty: 0},
			{SKU: "DR234", Store: "Indiranagar", Size: "M", Qty: 2},
			{SKU: "SNK010", Store: "Online", Size: "9", Qty: 5},
		},
		Customers: []customer.Customer{
			{UserID: "U100", SizeProfile: "M", LoyaltyTier: customer.TierSilver},
			{UserID: "U101", SizeProfile: "9", LoyaltyTier: customer.TierGold},
		},
		ReturnsPolicy: fallbackReturnsPolicy,
	}
}
