// Package offeringscmd exposes admin management of the service catalog as
// validated command messages.
package offeringscmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/servetdekorasyon/website/content"
	"github.com/servetdekorasyon/website/internal/commands"
	"github.com/servetdekorasyon/website/pkg/interfaces"
)

const (
	createOfferingMessageType = "site.offerings.create"
	updateOfferingMessageType = "site.offerings.update"
	deleteOfferingMessageType = "site.offerings.delete"
)

// CreateOfferingCommand requests a new service catalog entry.
type CreateOfferingCommand struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	OrderIndex  int    `json:"order_index"`
}

// Type implements command.Message.
func (CreateOfferingCommand) Type() string { return createOfferingMessageType }

// Validate ensures required fields and a known icon name.
func (m CreateOfferingCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Title) == "" {
		errs["title"] = validation.NewError("site.offerings.create.title_required", "title is required")
	}
	if strings.TrimSpace(m.Description) == "" {
		errs["description"] = validation.NewError("site.offerings.create.description_required", "description is required")
	}
	if !content.Icon(m.Icon).Valid() {
		errs["icon"] = validation.NewError("site.offerings.create.icon_unknown", "icon is not in the supported set")
	}
	if m.OrderIndex < 0 {
		errs["order_index"] = validation.NewError("site.offerings.create.order_invalid", "order_index must not be negative")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateOfferingHandler stores catalog entries via the offering service.
type CreateOfferingHandler struct {
	inner *commands.Handler[CreateOfferingCommand]
}

// NewCreateOfferingHandler constructs a handler wired to the offering service.
func NewCreateOfferingHandler(service *content.OfferingService, logger interfaces.Logger, opts ...commands.HandlerOption[CreateOfferingCommand]) *CreateOfferingHandler {
	exec := func(ctx context.Context, msg CreateOfferingCommand) error {
		_, err := service.Create(ctx, content.CreateOfferingRequest{
			Title:       msg.Title,
			Description: msg.Description,
			Icon:        content.Icon(msg.Icon),
			OrderIndex:  msg.OrderIndex,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[CreateOfferingCommand]{
		commands.WithLogger[CreateOfferingCommand](logger),
		commands.WithOperation[CreateOfferingCommand]("offerings.create"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CreateOfferingHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[CreateOfferingCommand].Execute.
func (h *CreateOfferingHandler) Execute(ctx context.Context, msg CreateOfferingCommand) error {
	return h.inner.Execute(ctx, msg)
}

// UpdateOfferingCommand applies field changes to a catalog entry.
type UpdateOfferingCommand struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// Type implements command.Message.
func (UpdateOfferingCommand) Type() string { return updateOfferingMessageType }

// Validate ensures a target and at least one change.
func (m UpdateOfferingCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.ID) == "" {
		errs["id"] = validation.NewError("site.offerings.update.id_required", "id is required")
	}
	if len(m.Fields) == 0 {
		errs["fields"] = validation.NewError("site.offerings.update.fields_required", "at least one field must change")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateOfferingHandler applies edits via the offering service.
type UpdateOfferingHandler struct {
	inner *commands.Handler[UpdateOfferingCommand]
}

// NewUpdateOfferingHandler constructs a handler wired to the offering service.
func NewUpdateOfferingHandler(service *content.OfferingService, logger interfaces.Logger, opts ...commands.HandlerOption[UpdateOfferingCommand]) *UpdateOfferingHandler {
	exec := func(ctx context.Context, msg UpdateOfferingCommand) error {
		return service.Update(ctx, msg.ID, msg.Fields)
	}

	handlerOpts := []commands.HandlerOption[UpdateOfferingCommand]{
		commands.WithLogger[UpdateOfferingCommand](logger),
		commands.WithOperation[UpdateOfferingCommand]("offerings.update"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UpdateOfferingHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[UpdateOfferingCommand].Execute.
func (h *UpdateOfferingHandler) Execute(ctx context.Context, msg UpdateOfferingCommand) error {
	return h.inner.Execute(ctx, msg)
}

// DeleteOfferingCommand removes a catalog entry.
type DeleteOfferingCommand struct {
	ID string `json:"id"`
}

// Type implements command.Message.
func (DeleteOfferingCommand) Type() string { return deleteOfferingMessageType }

// Validate ensures a target id is present.
func (m DeleteOfferingCommand) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return validation.Errors{
			"id": validation.NewError("site.offerings.delete.id_required", "id is required"),
		}
	}
	return nil
}

// DeleteOfferingHandler removes entries via the offering service.
type DeleteOfferingHandler struct {
	inner *commands.Handler[DeleteOfferingCommand]
}

// NewDeleteOfferingHandler constructs a handler wired to the offering service.
func NewDeleteOfferingHandler(service *content.OfferingService, logger interfaces.Logger, opts ...commands.HandlerOption[DeleteOfferingCommand]) *DeleteOfferingHandler {
	exec := func(ctx context.Context, msg DeleteOfferingCommand) error {
		return service.Delete(ctx, msg.ID)
	}

	handlerOpts := []commands.HandlerOption[DeleteOfferingCommand]{
		commands.WithLogger[DeleteOfferingCommand](logger),
		commands.WithOperation[DeleteOfferingCommand]("offerings.delete"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeleteOfferingHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[DeleteOfferingCommand].Execute.
func (h *DeleteOfferingHandler) Execute(ctx context.Context, msg DeleteOfferingCommand) error {
	return h.inner.Execute(ctx, msg)
}
