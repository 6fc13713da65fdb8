package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel string
	Port     uint16
	Secure   bool // mark session cookies Secure (behind TLS)
	Pricing  PricingConfig
	Coupons  CouponConfig
	Session  SessionConfig
}

// PricingConfig holds the deployment-specific pricing constants. They are
// supplied at construction time, never hard-coded, so deployments can vary
// thresholds and rates.
type PricingConfig struct {
	// TaxRate is a fraction in [0,1], e.g. 0.14 for 14%.
	TaxRate float64

	// FreeShippingThresholdCents is the inclusive post-discount subtotal
	// at which shipping becomes free.
	FreeShippingThresholdCents int64

	// StandardShippingFeeCents is charged below the threshold.
	StandardShippingFeeCents int64
}

// CouponConfig locates the static coupon registry.
type CouponConfig struct {
	// File is a JSON file with registry entries. Empty means an empty
	// registry (every code rejects as not found).
	File string
}

// SessionConfig controls guest cart lifecycle.
type SessionConfig struct {
	// IdleTTL is how long an untouched cart survives.
	IdleTTL time.Duration

	// SweepInterval is how often the idle sweeper runs.
	SweepInterval time.Duration
}

func NewConfig() (*Config, error) {
	// Try to load .env from current directory, then walk up to find it (max 2 levels)
	err := godotenv.Load()
	if err != nil {
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("Warning: .env file not found, using environment variables and defaults")
		}
	}

	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Port:     getEnvInt("PORT", 3000),
		Secure:   getEnvBool("SECURE_COOKIES", false),
		Pricing: PricingConfig{
			TaxRate:                    getEnvFloat("TAX_RATE", 0.14),
			FreeShippingThresholdCents: getEnvInt64("FREE_SHIPPING_THRESHOLD_CENTS", 50000),
			StandardShippingFeeCents:   getEnvInt64("STANDARD_SHIPPING_FEE_CENTS", 100),
		},
		Coupons: CouponConfig{
			File: getEnv("COUPON_FILE", ""),
		},
		Session: SessionConfig{
			IdleTTL:       getEnvDuration("CART_IDLE_TTL", 30*24*time.Hour),
			SweepInterval: getEnvDuration("CART_SWEEP_INTERVAL", time.Hour),
		},
	}

	// Validate env
	validEnv := cfg.Env == "dev" || cfg.Env == "prod"
	if !validEnv {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	// Validate log level
	validLevel := cfg.LogLevel == "info" || cfg.LogLevel == "debug" || cfg.LogLevel == "warn" || cfg.LogLevel == "error"
	if !validLevel {
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	// Pricing constants must satisfy the calculator's preconditions up front.
	if cfg.Pricing.TaxRate < 0 || cfg.Pricing.TaxRate > 1 {
		return nil, fmt.Errorf("TAX_RATE must be a fraction between 0 and 1, got %v", cfg.Pricing.TaxRate)
	}
	if cfg.Pricing.FreeShippingThresholdCents < 0 {
		return nil, fmt.Errorf("FREE_SHIPPING_THRESHOLD_CENTS must not be negative")
	}
	if cfg.Pricing.StandardShippingFeeCents < 0 {
		return nil, fmt.Errorf("STANDARD_SHIPPING_FEE_CENTS must not be negative")
	}
	if cfg.Session.IdleTTL <= 0 {
		return nil, fmt.Errorf("CART_IDLE_TTL must be positive")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue uint16) uint16 {
	if value := os.Getenv(key); value != "" {
		var intValue uint16
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		var intValue int64
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		var floatValue float64
		if _, err := fmt.Sscanf(value, "%f", &floatValue); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
