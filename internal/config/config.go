package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config holds server settings sourced from the environment.
type Config struct {
	Port            string
	Env             string
	JWTSecret       string
	JWTExpiry       time.Duration
	SessionTTL      time.Duration
	HistoryCapacity int
	RateRPS         float64
	RateBurst       int
}

func Load() Config {
	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		JWTExpiry:       getEnvDuration("JWT_EXPIRY", 24*time.Hour),
		SessionTTL:      getEnvDuration("SESSION_TTL", time.Hour),
		HistoryCapacity: getEnvInt("HISTORY_CAPACITY", 5),
		RateRPS:         getEnvFloat("RATE_LIMIT_RPS", 5),
		RateBurst:       getEnvInt("RATE_LIMIT_BURST", 10),
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using fallback", "key", key, "value", v)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration in environment, using fallback", "key", key, "value", v)
		return fallback
	}
	return d
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid float in environment, using fallback", "key", key, "value", v)
		return fallback
	}
	return f
}
