// Package config handles configuration for the server component,
// including defaults, environment, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the AuthGate server.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). When empty the server keeps users
//     in memory, which is only suitable for local runs.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - TokenValidityDuration: session token lifetime; also used as the auth
//     cookie MaxAge so the two cannot diverge.
//   - AllowedOrigin: browser origin allowed for credentialed CORS requests.
//   - GinMode: gin run mode (debug, release, test).
type Config struct {
	EndpointAddr          string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	AllowedOrigin         string
	GinMode               string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 24 * time.Hour
	c.AllowedOrigin = "http://localhost:3000"
	c.GinMode = "debug"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (including an optional .env file), an optional JSON
// file, and finally command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
