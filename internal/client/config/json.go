package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/authgate/authgate/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Duration
// fields are strings in time.ParseDuration format ("10s", "1m").
type JsonConfig struct {
	ServerBaseURL  string `json:"server_base_url"`
	RequestTimeout string `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config command-line flags; if neither is set,
// no JSON is loaded. Empty fields leave the current value untouched.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}
