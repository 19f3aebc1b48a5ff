package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the VaultKeeper CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - TokenFile: where the session token and session id are kept between runs.
//   - RequestTimeout: deadline applied to each remote call.
type Config struct {
	ServerEndpointAddr string        `env:"VAULTKEEPER_SERVER_ADDR"`
	TokenFile          string        `env:"VAULTKEEPER_TOKEN_FILE"`
	RequestTimeout     time.Duration `env:"VAULTKEEPER_REQUEST_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.TokenFile = defaultTokenFile()
	c.RequestTimeout = 10 * time.Second
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".vaultkeeper-session"
	}
	return filepath.Join(dir, "vaultkeeper", "session.json")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	if err := parseEnv(cfg); err != nil {
		panic(err)
	}
	parseFlags(cfg)
	return cfg
}
