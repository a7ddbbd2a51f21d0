// Package seed loads the catalog, inventory, and customer tables consumed at
// process start. Sources are interchangeable: CSV files, Postgres tables, or
// the built-in fallback records. The engine only ever sees the typed Data;
// string fields are converted and validated here, failing fast on malformed
// rows.
package seed

import (
	"os"
	"path/filepath"

	"github.com/retailmock/storefront-backend/internal/modules/catalog"
	"github.com/retailmock/storefront-backend/internal/modules/customer"
	"github.com/retailmock/storefront-backend/internal/modules/inventory"
)

// Data is everything the engine needs at startup.
type Data struct {
	Products      []catalog.Product
	Inventory     []inventory.Record
	Customers     []customer.Customer
	ReturnsPolicy string
}

// LoadDir reads seed tables from CSV files in dir. Each table falls back to
// the built-in records independently when its file is absent; a present but
// malformed file is an error.
func LoadDir(dir string) (*Data, error) {
	fb := Fallback()
	data := &Data{}

	products, err := loadProductsCSV(filepath.Join(dir, "products.csv"))
	if err != nil {
		return nil, err
	}
	data.Products = products
	if data.Products == nil {
		data.Products = fb.Products
	}

	records, err := loadInventoryCSV(filepath.Join(dir, "inventory.csv"))
	if err != nil {
		return nil, err
	}
	data.Inventory = records
	if data.Inventory == nil {
		data.Inventory = fb.Inventory
	}

	customers, err := loadCustomersCSV(filepath.Join(dir, "customers.csv"))
	if err != nil {
		return nil, err
	}
	data.Customers = customers
	if data.Customers == nil {
		data.Customers = fb.Customers
	}

	policy, err := os.ReadFile(filepath.Join(dir, "returns_policy.txt"))
	if err == nil {
		data.ReturnsPolicy = string(policy)
	} else {
		data.ReturnsPolicy = fb.ReturnsPolicy
	}
	return data, nil
}
