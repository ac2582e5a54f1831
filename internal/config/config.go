// Package config reads service settings from the environment. Every knob
// has a default that works for local development.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the runtime settings for the chat service.
type Config struct {
	Port            string
	RedisURL        string
	ClassifierURL   string
	SessionCapacity int
	CacheMaxCost    int64
	CacheTTL        time.Duration
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// FromEnv builds the config from environment variables. An empty
// CLASSIFIER_URL means the classifier runs in-process; an empty REDIS_URL
// means the answer cache is in-memory only.
func FromEnv() Config {
	return Config{
		Port:            getEnv("PORT", "8080"),
		RedisURL:        getEnv("REDIS_URL", ""),
		ClassifierURL:   getEnv("CLASSIFIER_URL", ""),
		SessionCapacity: getEnvInt("SESSION_CAPACITY", 1024),
		CacheMaxCost:    int64(getEnvInt("ANSWER_CACHE_MAX_COST", 1<<20)),
		CacheTTL:        getEnvDuration("ANSWER_CACHE_TTL", 5*time.Minute),
		AllowedOrigins:  getEnvList("ALLOWED_ORIGINS", []string{"*"}),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
