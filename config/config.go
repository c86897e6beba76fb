package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"go-marketplace/orders"
)

// Config holds all environment-sourced settings. Order rates are read
// once here and injected into the order service, never re-read per call.
type Config struct {
	Port      string
	MongoURI  string
	JWTSecret string
	Rates     orders.Rates
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getdecimal(k string) decimal.Decimal {
	raw := getenv(k, "0")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		log.Fatalf("[config] invalid %s=%q: %v", k, raw, err)
	}
	return d
}

// Load reads .env if present and returns the resolved configuration.
func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Port:      getenv("PORT", "5000"),
		MongoURI:  getenv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		JWTSecret: getenv("JWT_SECRET", "dev-fallback-secret-change-me"),
		Rates: orders.Rates{
			TaxRate:      getdecimal("ORDER_TAX_RATE"),
			ShippingFlat: getdecimal("ORDER_SHIPPING_FLAT"),
		},
	}
	log.Printf("[config] PORT=%s", cfg.Port)
	log.Printf("[config] ORDER_TAX_RATE=%s ORDER_SHIPPING_FLAT=%s",
		cfg.Rates.TaxRate, cfg.Rates.ShippingFlat)
	return cfg
}
