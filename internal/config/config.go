// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/spf13/viper"
)

// Config описывает подключение к RPC и ambient-настройки SDK.
type Config struct {
	RPCList      []string `mapstructure:"rpc_list"`
	Commitment   string   `mapstructure:"commitment"`
	Retries      int      `mapstructure:"retries"`
	RetryDelayMs int      `mapstructure:"retry_delay_ms"`
	CacheTTLMs   int      `mapstructure:"cache_ttl_ms"`
	DebugLogging bool     `mapstructure:"debug_logging"`
	LogFile      string   `mapstructure:"log_file"`
	MetricsAddr  string   `mapstructure:"metrics_addr"`
}

const (
	DefaultCommitment   = "confirmed"
	DefaultRetries      = 3
	DefaultRetryDelayMs = 200
	DefaultCacheTTLMs   = 30_000
	DefaultLogFile      = "pump-sdk.log"
)

const envPrefix = "PUMP_SDK"

// RetryDelay возвращает задержку между попытками RPC.
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMs) * time.Millisecond
}

// CacheTTL возвращает время жизни кэша Global/FeeConfig.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMs) * time.Millisecond
}

// CommitmentType переводит строку конфигурации в тип solana-go.
func (c *Config) CommitmentType() rpc.CommitmentType {
	return rpc.CommitmentType(c.Commitment)
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := map[string]interface{}{
		"commitment":     DefaultCommitment,
		"retries":        DefaultRetries,
		"retry_delay_ms": DefaultRetryDelayMs,
		"cache_ttl_ms":   DefaultCacheTTLMs,
		"log_file":       DefaultLogFile,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := loadEnvironmentVariables(v, &cfg); err != nil {
		return nil, err
	}

	return &cfg, validateConfig(&cfg)
}

func validateConfig(cfg *Config) error {
	if len(cfg.RPCList) == 0 {
		return errors.New("rpc_list is empty")
	}
	for _, rpcURL := range cfg.RPCList {
		if err := validateURLWithCache(rpcURL, "http"); err != nil {
			return errors.New("invalid RPC URL protocol")
		}
	}
	switch rpc.CommitmentType(cfg.Commitment) {
	case rpc.CommitmentProcessed, rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
	default:
		return errors.New("invalid commitment")
	}
	return validateNumericParams(cfg)
}

func validateNumericParams(cfg *Config) error {
	if cfg.Retries < 0 {
		return errors.New("invalid retries count")
	}
	if cfg.RetryDelayMs < 0 {
		return errors.New("invalid retry_delay_ms")
	}
	if cfg.CacheTTLMs < 0 {
		return errors.New("invalid cache_ttl_ms")
	}
	return nil
}

var urlCache sync.Map

func validateURLWithCache(rawURL string, protocol string) error {
	if _, ok := urlCache.Load(rawURL); ok {
		return nil
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.New("invalid URL format")
	}
	if !strings.HasPrefix(parsed.Scheme, protocol) {
		return errors.New("invalid URL protocol")
	}
	urlCache.Store(rawURL, parsed)
	return nil
}

// loadEnvironmentVariables: переменные PUMP_SDK_* имеют приоритет над файлом.
func loadEnvironmentVariables(v *viper.Viper, cfg *Config) error {
	v.AutomaticEnv()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envRPCList := v.GetString("RPC_LIST")
	if envRPCList != "" {
		var cleanRPCs []string
		for _, rpcURL := range strings.Split(envRPCList, ",") {
			clean := strings.TrimSpace(rpcURL)
			if clean != "" {
				cleanRPCs = append(cleanRPCs, clean)
			}
		}
		if len(cleanRPCs) > 0 {
			cfg.RPCList = cleanRPCs
		}
	}

	if commitment := v.GetString("COMMITMENT"); commitment != "" {
		cfg.Commitment = commitment
	}
	if addr := v.GetString("METRICS_ADDR"); addr != "" {
		cfg.MetricsAddr = addr
	}
	return nil
}
