package runtimeconfig_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/servetdekorasyon/website/internal/runtimeconfig"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if cfg.Site.PageSize != 6 {
		t.Fatalf("unexpected default page size %d", cfg.Site.PageSize)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*runtimeconfig.Config)
		wantErr error
	}{
		{
			name:    "empty listen addr",
			mutate:  func(c *runtimeconfig.Config) { c.Server.ListenAddr = " " },
			wantErr: runtimeconfig.ErrListenAddrRequired,
		},
		{
			name:    "zero page size",
			mutate:  func(c *runtimeconfig.Config) { c.Site.PageSize = 0 },
			wantErr: runtimeconfig.ErrPageSizeInvalid,
		},
		{
			name:    "unknown storage driver",
			mutate:  func(c *runtimeconfig.Config) { c.Storage.Driver = "oracle" },
			wantErr: runtimeconfig.ErrStorageDriverUnknown,
		},
		{
			name:    "driver without dsn",
			mutate:  func(c *runtimeconfig.Config) { c.Storage.Driver = "sqlite3" },
			wantErr: runtimeconfig.ErrStorageDSNRequired,
		},
		{
			name:    "unknown logging provider",
			mutate:  func(c *runtimeconfig.Config) { c.Logging.Provider = "syslog" },
			wantErr: runtimeconfig.ErrLoggingProviderUnknown,
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *runtimeconfig.Config) { c.Logging.Level = "loud" },
			wantErr: runtimeconfig.ErrLoggingLevelInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := runtimeconfig.DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.toml")
	doc := `
[backend]
url = "https://proj.supabase.co"
api_key = "anon"

[server]
listen_addr = ":9090"

[logging]
provider = "gologger"
level = "debug"
format = "json"
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := runtimeconfig.LoadFile(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Backend.URL != "https://proj.supabase.co" {
		t.Fatalf("unexpected backend url %q", cfg.Backend.URL)
	}
	if cfg.Server.ListenAddr != ":9090" {
		t.Fatalf("unexpected listen addr %q", cfg.Server.ListenAddr)
	}
	if cfg.Site.PageSize != 6 {
		t.Fatalf("defaults must survive overlay, page size %d", cfg.Site.PageSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("loaded config must validate: %v", err)
	}
}

func TestLoadFileMissingPathYieldsDefaults(t *testing.T) {
	cfg, err := runtimeconfig.LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load missing config: %v", err)
	}
	if cfg.Server.ListenAddr != ":8080" {
		t.Fatalf("expected defaults, got %q", cfg.Server.ListenAddr)
	}
}

func TestFromEnvOverridesFileValues(t *testing.T) {
	t.Setenv(runtimeconfig.EnvBackendURL, "https://env.supabase.co")
	t.Setenv(runtimeconfig.EnvLogLevel, "debug")

	cfg := runtimeconfig.FromEnv(runtimeconfig.DefaultConfig())
	if cfg.Backend.URL != "https://env.supabase.co" {
		t.Fatalf("unexpected backend url %q", cfg.Backend.URL)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected log level %q", cfg.Logging.Level)
	}
}
