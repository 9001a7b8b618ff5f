package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ecomseller/storefront/internal/cart"
	"github.com/ecomseller/storefront/internal/catalog"
	"github.com/ecomseller/storefront/internal/checkout"
	"github.com/ecomseller/storefront/internal/coupon"
	h "github.com/ecomseller/storefront/internal/http"
	"github.com/ecomseller/storefront/internal/orders"
	"github.com/ecomseller/storefront/internal/pricing"
)

type Config struct {
	HTTPPort        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	TaxRate         decimal.Decimal
	CatalogSeed     int64
	OrdersSeed      int64
	LatencyMin      time.Duration
	LatencyMax      time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		TaxRate:         getEnvDecimal("TAX_RATE", pricing.DefaultTaxRate),
		CatalogSeed:     getEnvInt64("CATALOG_SEED", time.Now().UnixNano()),
		OrdersSeed:      getEnvInt64("ORDERS_SEED", time.Now().UnixNano()),
		LatencyMin:      100 * time.Millisecond,
		LatencyMax:      500 * time.Millisecond,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if parsed, err := decimal.NewFromString(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// jitteredDelay models the fake backend's network latency.
func jitteredDelay(min, max time.Duration) func() {
	return func() {
		time.Sleep(min + time.Duration(rand.Int63n(int64(max-min))))
	}
}

func main() {
	cfg := loadConfig()

	delay := jitteredDelay(cfg.LatencyMin, cfg.LatencyMax)
	catalogStore := catalog.NewSimulated(cfg.CatalogSeed, delay)
	catalogCache := catalog.NewCached(catalogStore)
	orderStore := orders.NewSimulated(cfg.OrdersSeed, delay)

	ledger := cart.NewLedger()
	rules := coupon.NewRules()
	engine := pricing.NewEngine(cfg.TaxRate)
	orchestrator := checkout.NewOrchestrator(ledger, rules, engine, orderStore)

	productHandler := h.NewProductHandler(catalogStore, catalogCache)
	cartHandler := h.NewCartHandler(orchestrator, catalogCache)
	checkoutHandler := h.NewCheckoutHandler(orchestrator)
	ordersHandler := h.NewOrdersHandler(orderStore)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(h.RequestIDMiddleware)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Post("/", productHandler.Add)
			r.Get("/search", productHandler.Search)
			r.Get("/{product_id}", productHandler.Get)
			r.Put("/{product_id}", productHandler.Update)
			r.Delete("/{product_id}", productHandler.Delete)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.Get)
			r.Get("/quote", cartHandler.Quote)
			r.Post("/items", cartHandler.AddItem)
			r.Patch("/items/{product_id}", cartHandler.ChangeQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
			r.Post("/coupon", cartHandler.ApplyCoupon)
			r.Delete("/coupon", cartHandler.RemoveCoupon)
		})

		r.Post("/checkout", checkoutHandler.Checkout)
		r.Post("/checkout/abandon", checkoutHandler.Abandon)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", ordersHandler.List)
			r.Get("/{order_id}", ordersHandler.Get)
			r.Patch("/{order_id}/status", ordersHandler.UpdateStatus)
		})

		r.Get("/dashboard/summary", ordersHandler.Summary)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: otelhttp.NewHandler(r, "storefront"),
	}

	go func() {
		log.Printf("storefront listening on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("server stopped")
}
