// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validConfigJSON = `{
    "rpc_list": [
        "https://api.mainnet-beta.solana.com",
        "https://solana-rpc.publicnode.com"
    ],
    "commitment": "finalized",
    "retries": 5,
    "retry_delay_ms": 150,
    "cache_ttl_ms": 10000,
    "debug_logging": true,
    "log_file": "quotes.log",
    "metrics_addr": ":9100"
}`

func setupTestConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))
	return configPath
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "Valid config",
			content: validConfigJSON,
			check: func(t *testing.T, cfg *Config) {
				assert.Len(t, cfg.RPCList, 2)
				assert.Equal(t, "finalized", cfg.Commitment)
				assert.Equal(t, 5, cfg.Retries)
				assert.Equal(t, 150*time.Millisecond, cfg.RetryDelay())
				assert.Equal(t, 10*time.Second, cfg.CacheTTL())
				assert.True(t, cfg.DebugLogging)
				assert.Equal(t, "quotes.log", cfg.LogFile)
				assert.Equal(t, ":9100", cfg.MetricsAddr)
			},
		},
		{
			name:    "Defaults applied",
			content: `{"rpc_list": ["https://test.com"]}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultCommitment, cfg.Commitment)
				assert.Equal(t, DefaultRetries, cfg.Retries)
				assert.Equal(t, DefaultRetryDelayMs, cfg.RetryDelayMs)
				assert.Equal(t, DefaultCacheTTLMs, cfg.CacheTTLMs)
				assert.Equal(t, DefaultLogFile, cfg.LogFile)
				assert.Empty(t, cfg.MetricsAddr)
			},
		},
		{
			name:    "Empty RPC list",
			content: `{"rpc_list": []}`,
			wantErr: true,
		},
		{
			name:    "Invalid JSON syntax",
			content: "{invalid json",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(setupTestConfig(t, tt.content))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	valid := func() Config {
		return Config{
			RPCList:      []string{"https://test-rpc.com"},
			Commitment:   "confirmed",
			Retries:      3,
			RetryDelayMs: 100,
			CacheTTLMs:   1000,
		}
	}

	tests := []struct {
		name          string
		mutate        func(*Config)
		expectedError string
	}{
		{name: "Valid configuration", mutate: func(*Config) {}},
		{name: "Empty RPC list", mutate: func(c *Config) { c.RPCList = nil }, expectedError: "rpc_list is empty"},
		{name: "Invalid RPC URL", mutate: func(c *Config) { c.RPCList = []string{"invalid-url"} }, expectedError: "invalid RPC URL protocol"},
		{name: "Websocket RPC URL", mutate: func(c *Config) { c.RPCList = []string{"wss://test.com"} }, expectedError: "invalid RPC URL protocol"},
		{name: "Unknown commitment", mutate: func(c *Config) { c.Commitment = "max" }, expectedError: "invalid commitment"},
		{name: "Negative retries", mutate: func(c *Config) { c.Retries = -1 }, expectedError: "invalid retries count"},
		{name: "Negative retry delay", mutate: func(c *Config) { c.RetryDelayMs = -5 }, expectedError: "invalid retry_delay_ms"},
		{name: "Negative cache ttl", mutate: func(c *Config) { c.CacheTTLMs = -1 }, expectedError: "invalid cache_ttl_ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := validateConfig(&cfg)
			if tt.expectedError == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.expectedError)
		})
	}
}

func TestLoadConfigEnvironmentVariables(t *testing.T) {
	t.Setenv("PUMP_SDK_RPC_LIST", "https://env-rpc1.com, https://env-rpc2.com,")
	t.Setenv("PUMP_SDK_COMMITMENT", "processed")
	t.Setenv("PUMP_SDK_METRICS_ADDR", "127.0.0.1:9200")

	cfg, err := LoadConfig(setupTestConfig(t, validConfigJSON))
	require.NoError(t, err)

	// Переменные окружения имеют приоритет, остальные поля из файла
	assert.Equal(t, []string{"https://env-rpc1.com", "https://env-rpc2.com"}, cfg.RPCList)
	assert.Equal(t, "processed", cfg.Commitment)
	assert.Equal(t, "127.0.0.1:9200", cfg.MetricsAddr)
	assert.Equal(t, 5, cfg.Retries)
}
