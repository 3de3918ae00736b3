package config

import (
	"os"
	"strconv"
	"strings"
)

// Config is loaded once at startup from the environment. Growth figures are
// placeholders supplied by the operator until a reporting backend exists.
type Config struct {
	Port              string
	DefaultTaxPercent float64
	RevenueGrowth     float64
	CustomerGrowth    float64
	AllowedOrigins    []string
}

func Load() Config {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		DefaultTaxPercent: getEnvFloat("DEFAULT_TAX_PERCENT", 8.5),
		RevenueGrowth:     getEnvFloat("REVENUE_GROWTH", 15.5),
		CustomerGrowth:    getEnvFloat("CUSTOMER_GROWTH", 8.2),
	}

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:4200,http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
