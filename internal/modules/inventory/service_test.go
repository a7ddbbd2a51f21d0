package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []Record {
	return []Record{
		{SKU: "SH123", Store: "Indiranagar", Size: "M", Qty: 1},
		{SKU: "SH123", Store: "MallX", Size: "M", Qty: 0},
		{SKU: "DR234", Store: "Indiranagar", Size: "M", Qty: 2},
		{SKU: "SNK010", Store: "Online", Size: "9", Qty: 5},
	}
}

func TestCheck_UnknownSKU(t *testing.T) {
	svc := NewService(NewLedger(testRecords()))

	result, err := svc.Check(context.Background(), CheckRequest{SKU: "NOPE"})
	require.NoError(t, err)
	assert.Equal(t, 0, result.OnlineStock)
	assert.Empty(t, result.StoreStock)
	assert.Empty(t, result.FulfillmentOptions)
}

func TestCheck_PreferredStoreAlwaysPresent(t *testing.T) {
	svc := NewService(NewLedger(testRecords()))

	result, err := svc.Check(context.Background(), CheckRequest{SKU: "NOPE", PreferredStore: "MallX"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"MallX": 0}, result.StoreStock)
	assert.Empty(t, result.FulfillmentOptions)
}

func TestCheck_OnlineOnlyStock(t *testing.T) {
	svc := NewService(NewLedger(testRecords()))

	result, err := svc.Check(context.Background(), CheckRequest{SKU: "SNK010"})
	require.NoError(t, err)
	assert.Equal(t, 5, result.OnlineStock)
	assert.Empty(t, result.StoreStock)
	assert.Equal(t, []string{OptionShipToHome}, result.FulfillmentOptions)
}

func TestCheck_StoreStockKeepsLabelCasing(t *testing.T) {
	svc := NewService(NewLedger([]Record{
		{SKU: "SH123", Store: "online", Size: "M", Qty: 3},
		{SKU: "SH123", Store: "MallX", Size: "M", Qty: 2},
		{SKU: "SH123", Store: "MallX", Size: "L", Qty: 1},
	}))

	result, err := svc.Check(context.Background(), CheckRequest{SKU: "SH123"})
	require.NoError(t, err)
	assert.Equal(t, 3, result.OnlineStock, "online matches case-insensitively")
	assert.Equal(t, map[string]int{"MallX": 3}, result.StoreStock)
	assert.ElementsMatch(t, []string{OptionShipToHome, OptionClickAndCollect}, result.FulfillmentOptions)
}

func TestCheck_SizeDoesNotFilter(t *testing.T) {
	svc := NewService(NewLedger(testRecords()))

	result, err := svc.Check(context.Background(), CheckRequest{SKU: "SNK010", Size: "8"})
	require.NoError(t, err)
	assert.Equal(t, 5, result.OnlineStock, "stock is aggregated across all sizes")
}

func TestCheck_MissingSKU(t *testing.T) {
	svc := NewService(NewLedger(nil))

	_, err := svc.Check(context.Background(), CheckRequest{})
	assert.Error(t, err)
}
