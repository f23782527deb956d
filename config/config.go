package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the client needs from the environment.
type Config struct {
	BackendURL  string
	CacheDBPath string
	HTTPTimeout time.Duration
	LogLevel    string
	MockPort    string
	JWTSecret   string
}

// Load reads .env (if present) and assembles the config with defaults
// suitable for running against a local mockd instance.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	cfg := &Config{
		BackendURL:  getEnv("BACKEND_URL", "http://localhost:8080"),
		CacheDBPath: getEnv("CACHE_DB_PATH", "streetbites-session.db"),
		HTTPTimeout: 30 * time.Second,
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		MockPort:    getEnv("MOCKD_PORT", "8080"),
		JWTSecret:   getEnv("JWT_SECRET", "TestSecretKeyAUTH1945"),
	}

	if raw := os.Getenv("HTTP_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cfg.HTTPTimeout = time.Duration(secs) * time.Second
		} else {
			log.Printf("Warning: invalid HTTP_TIMEOUT_SECONDS %q, using default", raw)
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
