package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/retailmock/storefront-backend/internal/modules/catalog"
	"github.com/retailmock/storefront-backend/internal/modules/customer"
	"github.com/retailmock/storefront-backend/internal/modules/fulfillment"
	"github.com/retailmock/storefront-backend/internal/modules/inventory"
	"github.com/retailmock/storefront-backend/internal/modules/offers"
	"github.com/retailmock/storefront-backend/internal/modules/payment"
	"github.com/retailmock/storefront-backend/internal/modules/support"
	"github.com/retailmock/storefront-backend/internal/seed"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file, using process environment")
	}

	data, err := loadSeedData(logger)
	if err != nil {
		logger.Fatal("seed load failed", zap.Error(err))
	}
	logger.Info("seed data loaded",
		zap.Int("products", len(data.Products)),
		zap.Int("inventory_records", len(data.Inventory)),
		zap.Int("customers", len(data.Customers)))

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Catalog & Recommendations ───────────────────────────
	catalogRepo := catalog.NewMemoryRepository(data.Products)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	// ── Customers ───────────────────────────────────────────
	customers := customer.NewMemoryDirectory(data.Customers)
	customer.NewHandler(customers).RegisterRoutes(router)

	// ── Inventory & Fulfillment (shared ledger) ─────────────
	ledger := inventory.NewLedger(data.Inventory)
	inventoryService := inventory.NewService(ledger)
	inventory.NewHandler(inventoryService).RegisterRoutes(router)

	fulfillmentService := fulfillment.NewService(ledger)
	fulfillment.NewHandler(fulfillmentService).RegisterRoutes(router)

	// ── Offers ──────────────────────────────────────────────
	offersService := offers.NewService(catalogRepo, customers)
	offers.NewHandler(offersService).RegisterRoutes(router)

	// ── Payments (deterministic demo gateway) ───────────────
	gateway := payment.NewMockGateway()
	payment.NewHandler(gateway).RegisterRoutes(router)

	// ── Support ─────────────────────────────────────────────
	supportService := support.NewService(data.ReturnsPolicy)
	support.NewHandler(supportService).RegisterRoutes(router)

	router.Get("/health", health)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("storefront API listening", zap.String("port", port))
	logger.Fatal("server stopped", zap.Error(http.ListenAndServe(":"+port, router)))
}

// loadSeedData picks the seed source: Postgres when DATABASE_URL is set,
// otherwise CSV files in SEED_DIR with built-in fallback records. The
// database connection is closed as soon as the tables are read; nothing in
// the engine depends on the loading mechanism afterwards.
func loadSeedData(logger *zap.Logger) (*seed.Data, error) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		db, err := sql.Open("postgres", url)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			return nil, err
		}
		logger.Info("loading seed data from postgres")
		return seed.LoadPostgres(context.Background(), db)
	}

	dir := os.Getenv("SEED_DIR")
	if dir == "" {
		dir = "data"
	}
	return seed.LoadDir(dir)
}

func health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok","time":"` + time.Now().UTC().Format(time.RFC3339) + `"}`))
}
