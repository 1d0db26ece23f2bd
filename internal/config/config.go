package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
	SheetsWebAppURL string
	CatalogPath     string
	SessionTTL      time.Duration
	DeliveryFees    DeliveryFees
	CORSOrigins     []string
}

// DeliveryFees are the flat charges per delivery tier. Tiers are fixed;
// the fees are configuration, not computed.
type DeliveryFees struct {
	Local    int64
	Regional int64
	National int64
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		SheetsWebAppURL: envOrDefault("SHEETS_WEBAPP_URL", ""),
		CatalogPath:     envOrDefault("CATALOG_PATH", ""),
		SessionTTL:      envMinutes("SESSION_TTL_MINUTES", 3*time.Hour),
		DeliveryFees: DeliveryFees{
			Local:    envInt64("DELIVERY_FEE_LOCAL", 50),
			Regional: envInt64("DELIVERY_FEE_REGIONAL", 80),
			National: envInt64("DELIVERY_FEE_NATIONAL", 120),
		},
		CORSOrigins: envList("CORS_ORIGINS", []string{"*"}),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envMinutes(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		minutes, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(minutes) * time.Minute
		}
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return n
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
