package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/authgate/authgate/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. Duration fields are strings in time.ParseDuration format
// ("24h", "30m"). After unmarshalling, its fields are copied into the
// runtime Config struct.
type JsonConfig struct {
	EndpointAddr  string `json:"endpoint_addr"`
	DatabaseDSN   string `json:"database_dsn"`
	SecretKey     string `json:"secret_key"`
	TokenTTL      string `json:"token_ttl"`
	AllowedOrigin string `json:"allowed_origin"`
	GinMode       string `json:"gin_mode"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags; if neither
// is set, no JSON file is loaded. An unreadable file or invalid JSON panics,
// as a misconfigured server must not start. Empty fields leave the current
// value untouched.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenTTL != "" {
		d, err := time.ParseDuration(c.TokenTTL)
		if err != nil {
			panic(err)
		}
		config.TokenValidityDuration = d
	}
	if c.AllowedOrigin != "" {
		config.AllowedOrigin = c.AllowedOrigin
	}
	if c.GinMode != "" {
		config.GinMode = c.GinMode
	}
}
