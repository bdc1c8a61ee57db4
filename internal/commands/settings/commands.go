// Package settingscmd exposes site setting updates as validated command
// messages.
package settingscmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/servetdekorasyon/website/content"
	"github.com/servetdekorasyon/website/internal/commands"
	"github.com/servetdekorasyon/website/pkg/interfaces"
)

const upsertSettingMessageType = "site.settings.upsert"

// UpsertSettingCommand writes a setting value, creating the key when new.
type UpsertSettingCommand struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	ValueType string `json:"type,omitempty"`
}

// Type implements command.Message.
func (UpsertSettingCommand) Type() string { return upsertSettingMessageType }

// Validate ensures the key is present and the type, when given, is known.
func (m UpsertSettingCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Key) == "" {
		errs["key"] = validation.NewError("site.settings.upsert.key_required", "key is required")
	}
	switch content.SettingType(m.ValueType) {
	case "", content.SettingText, content.SettingImageURL:
	default:
		errs["type"] = validation.NewError("site.settings.upsert.type_unknown", "type must be text or image_url")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpsertSettingHandler writes settings via the setting service.
type UpsertSettingHandler struct {
	inner *commands.Handler[UpsertSettingCommand]
}

// NewUpsertSettingHandler constructs a handler wired to the setting service.
func NewUpsertSettingHandler(service *content.SettingService, logger interfaces.Logger, opts ...commands.HandlerOption[UpsertSettingCommand]) *UpsertSettingHandler {
	exec := func(ctx context.Context, msg UpsertSettingCommand) error {
		return service.Upsert(ctx, msg.Key, msg.Value, content.SettingType(msg.ValueType))
	}

	handlerOpts := []commands.HandlerOption[UpsertSettingCommand]{
		commands.WithLogger[UpsertSettingCommand](logger),
		commands.WithOperation[UpsertSettingCommand]("settings.upsert"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UpsertSettingHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[UpsertSettingCommand].Execute.
func (h *UpsertSettingHandler) Execute(ctx context.Context, msg UpsertSettingCommand) error {
	return h.inner.Execute(ctx, msg)
}
