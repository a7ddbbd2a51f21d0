package seed

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retailmock/storefront-backend/internal/modules/catalog"
	"github.com/retailmock/storefront-backend/internal/modules/customer"
	"github.com/retailmock/storefront-backend/internal/modules/inventory"
)

// readCSV parses a header-keyed CSV file into one map per row. A missing
// file is not an error: it returns nil rows so the caller can fall back.
func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(rec) {
				row[key] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func loadProductsCSV(path string) ([]catalog.Product, error) {
	rows, err := readCSV(path)
	if err != nil || rows == nil {
		return nil, err
	}
	products := make([]catalog.Product, 0, len(rows))
	for i, row := range rows {
		price, err := strconv.Atoi(row["price"])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad price %q", path, i+1, row["price"])
		}
		products = append(products, catalog.Product{
			SKU:         row["sku"],
			Title:       row["title"],
			Description: row["desc"],
			Price:       price,
			Sizes:       splitSizes(row["sizes"]),
		})
	}
	return products, nil
}

func loadInventoryCSV(path string) ([]inventory.Record, error) {
	rows, err := readCSV(path)
	if err != nil || rows == nil {
		return nil, err
	}
	records := make([]inventory.Record, 0, len(rows))
	for i, row := range rows {
		qty, err := strconv.Atoi(row["qty"])
		if err != nil || qty < 0 {
			return nil, fmt.Errorf("%s row %d: bad qty %q", path, i+1, row["qty"])
		}
		records = append(records, inventory.Record{
			SKU:   row["sku"],
			Store: row["store"],
			Size:  row["size"],
			Qty:   qty,
		})
	}
	return records, nil
}

func loadCustomersCSV(path string) ([]customer.Customer, error) {
	rows, err := readCSV(path)
	if err != nil || rows == nil {
		return nil, err
	}
	customers := make([]customer.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, customer.Customer{
			UserID:      row["user_id"],
			SizeProfile: row["size_profile"],
			LoyaltyTier: row["loyalty_tier"],
		})
	}
	return customers, nil
}

// splitSizes parses the pipe-delimited size set, e.g. "S|M|L".
func splitSizes(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "|")
}
