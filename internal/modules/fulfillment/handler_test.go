package fulfillment

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailmock/storefront-backend/internal/modules/inventory"
)

func postReserve(t *testing.T, router *chi.Mux, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/fulfillment/reserve", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestReserveEndpoint(t *testing.T) {
	ledger := inventory.NewLedger([]inventory.Record{
		{SKU: "SH123", Store: "Indiranagar", Size: "M", Qty: 1},
	})
	router := chi.NewRouter()
	NewHandler(NewService(ledger)).RegisterRoutes(router)

	rec := postReserve(t, router, `{"sku":"SH123","store":"Indiranagar"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"reserved"`)
	assert.Contains(t, rec.Body.String(), `"pickup_code"`)

	rec = postReserve(t, router, `{"sku":"SH123","store":"Indiranagar"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"slot_unavailable"`)
	assert.Contains(t, rec.Body.String(), `"alternatives"`)

	rec = postReserve(t, router, `{"store":"Indiranagar"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
