package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000/api/v1", c.BaseURL)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"fincli"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:8000/api/v1", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("FINANZAS_BASE_URL", "https://api.example.com/v1")
	t.Setenv("FINANZAS_REQUEST_TIMEOUT", "7s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "https://api.example.com/v1", cfg.BaseURL)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_UnsetKeepsDefaults(t *testing.T) {
	t.Setenv("FINANZAS_BASE_URL", "")
	t.Setenv("FINANZAS_REQUEST_TIMEOUT", "")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://localhost:8000/api/v1", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "base url and timeout",
			args: []string{"fincli", "-a", "http://10.0.0.1:8000/api/v1", "-t", "30"},
			expected: &Config{
				BaseURL:        "http://10.0.0.1:8000/api/v1",
				RequestTimeout: 30 * time.Second,
			},
		},
		{
			name:        "incorrect timeout",
			args:        []string{"fincli", "-t", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			cfg := &Config{}
			cfg.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}

			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Equal(t, tt.expected.BaseURL, cfg.BaseURL)
			assert.Equal(t, tt.expected.RequestTimeout, cfg.RequestTimeout)
		})
	}
}
