package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. An optional
// .env file in the working directory is loaded first; real environment
// variables win over file entries (godotenv does not overwrite).
//
// Recognized variables:
//
//	ADDRESS        bind address (e.g. ":8080")
//	DATABASE_DSN   PostgreSQL DSN
//	SECRET_KEY     JWT HMAC secret
//	TOKEN_TTL      token lifetime, time.ParseDuration format (e.g. "24h")
//	ALLOWED_ORIGIN browser origin for CORS
//	GIN_MODE       gin run mode
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v := os.Getenv("ALLOWED_ORIGIN"); v != "" {
		config.AllowedOrigin = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		config.GinMode = v
	}
}
