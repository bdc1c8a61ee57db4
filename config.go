package website

import "github.com/servetdekorasyon/website/internal/runtimeconfig"

var (
	ErrListenAddrRequired     = runtimeconfig.ErrListenAddrRequired
	ErrPageSizeInvalid        = runtimeconfig.ErrPageSizeInvalid
	ErrStorageDriverUnknown   = runtimeconfig.ErrStorageDriverUnknown
	ErrStorageDSNRequired     = runtimeconfig.ErrStorageDSNRequired
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config        = runtimeconfig.Config
	BackendConfig = runtimeconfig.BackendConfig
	ServerConfig  = runtimeconfig.ServerConfig
	SiteConfig    = runtimeconfig.SiteConfig
	StorageConfig = runtimeconfig.StorageConfig
	LoggingConfig = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the site's opinionated defaults.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig overlays a TOML file and then the environment onto the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg, err := runtimeconfig.LoadFile(path)
	if err != nil {
		return cfg, err
	}
	return runtimeconfig.FromEnv(cfg), nil
}
