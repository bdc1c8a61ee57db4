// Package runtimeconfig aggregates the site's runtime settings: remote
// backend credentials, the HTTP server, optional self-hosted storage, and
// logging. Values layer as defaults, then a TOML file, then environment
// variables.
package runtimeconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	ErrListenAddrRequired     = errors.New("site config: server listen address is required")
	ErrPageSizeInvalid        = errors.New("site config: page size must be positive")
	ErrStorageDriverUnknown   = errors.New("site config: storage driver is invalid")
	ErrStorageDSNRequired     = errors.New("site config: storage dsn is required when a driver is set")
	ErrLoggingProviderUnknown = errors.New("site config: logging provider is invalid")
	ErrLoggingLevelInvalid    = errors.New("site config: logging level is invalid")
	ErrLoggingFormatInvalid   = errors.New("site config: logging format is invalid")
)

// Environment variable names recognised by FromEnv.
const (
	EnvBackendURL    = "SITE_BACKEND_URL"
	EnvBackendKey    = "SITE_BACKEND_KEY"
	EnvListenAddr    = "SITE_LISTEN_ADDR"
	EnvBaseURL       = "SITE_BASE_URL"
	EnvStorageDriver = "SITE_STORAGE_DRIVER"
	EnvStorageDSN    = "SITE_STORAGE_DSN"
	EnvLogLevel      = "SITE_LOG_LEVEL"
)

// Config aggregates runtime settings for the site process.
type Config struct {
	Backend BackendConfig `toml:"backend"`
	Server  ServerConfig  `toml:"server"`
	Site    SiteConfig    `toml:"site"`
	Storage StorageConfig `toml:"storage"`
	Logging LoggingConfig `toml:"logging"`
}

// BackendConfig identifies the remote content backend. Leaving URL empty
// runs the site in degraded demo mode.
type BackendConfig struct {
	URL    string `toml:"url"`
	APIKey string `toml:"api_key"`
}

// ServerConfig captures the HTTP listener.
type ServerConfig struct {
	ListenAddr string `toml:"listen_addr"`
}

// SiteConfig captures presentation settings.
type SiteConfig struct {
	BaseURL      string `toml:"base_url"`
	PageSize     int    `toml:"page_size"`
	PreviewCount int    `toml:"preview_count"`
}

// StorageConfig selects the optional self-hosted record store. With an
// empty driver the site talks only to the remote backend.
type StorageConfig struct {
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `toml:"provider"`
	Level     string   `toml:"level"`
	Format    string   `toml:"format"`
	AddSource bool     `toml:"add_source"`
	Focus     []string `toml:"focus"`
}

// DefaultConfig returns the site's opinionated defaults.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr: ":8080",
		},
		Site: SiteConfig{
			PageSize:     6,
			PreviewCount: 3,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// LoadFile overlays a TOML file onto the defaults. A missing path is not
// an error; it just yields the defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("site config: decode %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv overlays recognised environment variables onto cfg. Environment
// values win over file values.
func FromEnv(cfg Config) Config {
	if v, ok := os.LookupEnv(EnvBackendURL); ok {
		cfg.Backend.URL = v
	}
	if v, ok := os.LookupEnv(EnvBackendKey); ok {
		cfg.Backend.APIKey = v
	}
	if v, ok := os.LookupEnv(EnvListenAddr); ok {
		cfg.Server.ListenAddr = v
	}
	if v, ok := os.LookupEnv(EnvBaseURL); ok {
		cfg.Site.BaseURL = v
	}
	if v, ok := os.LookupEnv(EnvStorageDriver); ok {
		cfg.Storage.Driver = v
	}
	if v, ok := os.LookupEnv(EnvStorageDSN); ok {
		cfg.Storage.DSN = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.Logging.Level = v
	}
	return cfg
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Server.ListenAddr) == "" {
		return ErrListenAddrRequired
	}
	if cfg.Site.PageSize <= 0 || cfg.Site.PreviewCount <= 0 {
		return ErrPageSizeInvalid
	}

	switch driver := strings.TrimSpace(cfg.Storage.Driver); driver {
	case "":
	case "sqlite3", "postgres":
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	default:
		return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, driver)
	}

	provider := strings.ToLower(strings.TrimSpace(cfg.Logging.Provider))
	if provider != "" && !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
