package content

import (
	"context"
	"strings"

	"github.com/servetdekorasyon/website/gateway"
	"github.com/servetdekorasyon/website/internal/logging"
	"github.com/servetdekorasyon/website/internal/schema"
	"github.com/servetdekorasyon/website/pkg/interfaces"
)

// SettingsSnapshot is a key-indexed view of the site settings with typed
// accessors for the well-known keys. Missing keys resolve to the built-in
// defaults so the public site always has something to render.
type SettingsSnapshot struct {
	byKey map[string]Setting
}

// Lookup returns the setting for key, if present.
func (s SettingsSnapshot) Lookup(key string) (Setting, bool) {
	setting, ok := s.byKey[key]
	return setting, ok
}

func (s SettingsSnapshot) value(key string) string {
	if setting, ok := s.byKey[key]; ok && setting.Value != "" {
		return setting.Value
	}
	for _, fallback := range FallbackSettings() {
		if fallback.Key == key {
			return fallback.Value
		}
	}
	return ""
}

// CompanyName returns the display name used across the site chrome.
func (s SettingsSnapshot) CompanyName() string { return s.value(SettingCompanyName) }

// WhatsAppNumber returns the digits-only number for the chat button.
func (s SettingsSnapshot) WhatsAppNumber() string { return s.value(SettingWhatsAppNumber) }

// WhatsAppMessage returns the prefilled chat message.
func (s SettingsSnapshot) WhatsAppMessage() string { return s.value(SettingWhatsAppMessage) }

// SiteLogo returns the logo image URL, empty when unset.
func (s SettingsSnapshot) SiteLogo() string { return s.value(SettingSiteLogo) }

// SettingService manages the site_settings key/value store.
type SettingService struct {
	gw     gateway.Service
	logger interfaces.Logger
}

// SettingServiceOption configures a SettingService.
type SettingServiceOption func(*SettingService)

// WithSettingLogger injects the service logger.
func WithSettingLogger(logger interfaces.Logger) SettingServiceOption {
	return func(s *SettingService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSettingService constructs the service over the supplied gateway.
func NewSettingService(gw gateway.Service, opts ...SettingServiceOption) *SettingService {
	s := &SettingService{
		gw:     gw,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches every setting into a snapshot. Backend failures degrade to
// the built-in defaults.
func (s *SettingService) Load(ctx context.Context) (SettingsSnapshot, error) {
	records, err := s.gw.FetchCollection(ctx, CollectionSettings, gateway.Query{})
	if err != nil {
		s.logger.Warn("settings.fetch_failed", "error", err)
		records = nil
	}

	byKey := make(map[string]Setting, len(records))
	for _, record := range records {
		setting := settingFromRecord(record)
		if setting.Key != "" {
			byKey[setting.Key] = setting
		}
	}
	return SettingsSnapshot{byKey: byKey}, nil
}

// List returns every stored setting for the admin panel.
func (s *SettingService) List(ctx context.Context) ([]Setting, error) {
	records, err := s.gw.FetchCollection(ctx, CollectionSettings, gateway.Query{}.Order("key", gateway.Ascending))
	if err != nil {
		return nil, err
	}

	settings := make([]Setting, 0, len(records))
	for _, record := range records {
		settings = append(settings, settingFromRecord(record))
	}
	return settings, nil
}

// Upsert writes a setting value, creating the row when the key is new.
func (s *SettingService) Upsert(ctx context.Context, key, value string, settingType SettingType) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrSettingNotFound
	}
	if settingType == "" {
		settingType = SettingText
	}

	fields := map[string]any{
		"key":   key,
		"value": value,
		"type":  string(settingType),
	}
	if err := schema.ValidatePayload(CollectionSettings, fields); err != nil {
		return err
	}

	existing, err := s.gw.ResolveOne(ctx, CollectionSettings, "key", key)
	switch {
	case err == nil:
		if err := s.gw.UpdateRecord(ctx, CollectionSettings, existing.ID, fields); err != nil {
			return err
		}
	case gateway.IsNotFound(err):
		if _, err := s.gw.InsertRecord(ctx, CollectionSettings, fields); err != nil {
			return err
		}
	default:
		return err
	}

	s.logger.Info("settings.upserted", "key", key)
	return nil
}
