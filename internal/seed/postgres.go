package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/retailmock/storefront-backend/internal/modules/catalog"
	"github.com/retailmock/storefront-backend/internal/modules/customer"
	"github.com/retailmock/storefront-backend/internal/modules/inventory"
)

// LoadPostgres reads the seed tables from a Postgres database. The
// connection is only used at startup: once loaded, the engine holds no
// reference to it. The returns policy has no table and keeps the built-in
// text.
func LoadPostgres(ctx context.Context, db *sql.DB) (*Data, error) {
	data := &Data{ReturnsPolicy: Fallback().ReturnsPolicy}

	rows, err := db.QueryContext(ctx, `SELECT sku, title, description, price, sizes FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p catalog.Product
		var sizes string
		if err := rows.Scan(&p.SKU, &p.Title, &p.Description, &p.Price, &sizes); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Sizes = splitSizes(sizes)
		data.Products = append(data.Products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	invRows, err := db.QueryContext(ctx, `SELECT sku, store, size, qty FROM inventory ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	defer invRows.Close()
	for invRows.Next() {
		var rec inventory.Record
		if err := invRows.Scan(&rec.SKU, &rec.Store, &rec.Size, &rec.Qty); err != nil {
			return nil, fmt.Errorf("scan inventory record: %w", err)
		}
		if rec.Qty < 0 {
			return nil, fmt.Errorf("inventory record %s/%s: negative qty %d", rec.SKU, rec.Store, rec.Qty)
		}
		data.Inventory = append(data.Inventory, rec)
	}
	if err := invRows.Err(); err != nil {
		return nil, err
	}

	custRows, err := db.QueryContext(ctx, `SELECT user_id, size_profile, loyalty_tier FROM customers ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}
	defer custRows.Close()
	for custRows.Next() {
		var c customer.Customer
		if err := custRows.Scan(&c.UserID, &c.SizeProfile, &c.LoyaltyTier); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		data.Customers = append(data.Customers, c)
	}
	if err := custRows.Err(); err != nil {
		return nil, err
	}
	return data, nil
}
