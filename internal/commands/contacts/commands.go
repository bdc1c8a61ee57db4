// Package contactscmd exposes admin inbox operations as validated command
// messages.
package contactscmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/servetdekorasyon/website/content"
	"github.com/servetdekorasyon/website/internal/commands"
	"github.com/servetdekorasyon/website/pkg/interfaces"
)

const deleteContactMessageType = "site.contacts.delete"

// DeleteContactCommand removes a handled inquiry from the inbox.
type DeleteContactCommand struct {
	ID string `json:"id"`
}

// Type implements command.Message.
func (DeleteContactCommand) Type() string { return deleteContactMessageType }

// Validate ensures a target id is present.
func (m DeleteContactCommand) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return validation.Errors{
			"id": validation.NewError("site.contacts.delete.id_required", "id is required"),
		}
	}
	return nil
}

// DeleteContactHandler removes inquiries via the contact service.
type DeleteContactHandler struct {
	inner *commands.Handler[DeleteContactCommand]
}

// NewDeleteContactHandler constructs a handler wired to the contact service.
func NewDeleteContactHandler(service *content.ContactService, logger interfaces.Logger, opts ...commands.HandlerOption[DeleteContactCommand]) *DeleteContactHandler {
	exec := func(ctx context.Context, msg DeleteContactCommand) error {
		return service.Delete(ctx, msg.ID)
	}

	handlerOpts := []commands.HandlerOption[DeleteContactCommand]{
		commands.WithLogger[DeleteContactCommand](logger),
		commands.WithOperation[DeleteContactCommand]("contacts.delete"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeleteContactHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[DeleteContactCommand].Execute.
func (h *DeleteContactHandler) Execute(ctx context.Context, msg DeleteContactCommand) error {
	return h.inner.Execute(ctx, msg)
}
