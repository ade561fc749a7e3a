package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:8080", cfg.ServerBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestParseJson(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	data, err := json.Marshal(JsonConfig{
		ServerBaseURL:  "http://api.example.org",
		RequestTimeout: "30s",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	origArgs := os.Args
	os.Args = []string{"client", "-c", path}
	t.Cleanup(func() { os.Args = origArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "http://api.example.org", cfg.ServerBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"client", "-a", "http://api.example.org:9090", "-t", "5"}
	t.Cleanup(func() { os.Args = origArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://api.example.org:9090", cfg.ServerBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}
