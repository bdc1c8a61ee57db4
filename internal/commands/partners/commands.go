// Package partnerscmd exposes admin management of the partner strip as
// validated command messages.
package partnerscmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/servetdekorasyon/website/content"
	"github.com/servetdekorasyon/website/internal/commands"
	"github.com/servetdekorasyon/website/pkg/interfaces"
)

const (
	createPartnerMessageType = "site.partners.create"
	updatePartnerMessageType = "site.partners.update"
	deletePartnerMessageType = "site.partners.delete"
)

// CreatePartnerCommand requests a new partner logo.
type CreatePartnerCommand struct {
	Name       string `json:"name"`
	LogoURL    string `json:"logo_url"`
	WebsiteURL string `json:"website_url,omitempty"`
	OrderIndex int    `json:"order_index"`
	Active     bool   `json:"active"`
}

// Type implements command.Message.
func (CreatePartnerCommand) Type() string { return createPartnerMessageType }

// Validate ensures required fields are present.
func (m CreatePartnerCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Name) == "" {
		errs["name"] = validation.NewError("site.partners.create.name_required", "name is required")
	}
	if strings.TrimSpace(m.LogoURL) == "" {
		errs["logo_url"] = validation.NewError("site.partners.create.logo_required", "logo_url is required")
	}
	if m.OrderIndex < 0 {
		errs["order_index"] = validation.NewError("site.partners.create.order_invalid", "order_index must not be negative")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreatePartnerHandler stores partners via the partner service.
type CreatePartnerHandler struct {
	inner *commands.Handler[CreatePartnerCommand]
}

// NewCreatePartnerHandler constructs a handler wired to the partner service.
func NewCreatePartnerHandler(service *content.PartnerService, logger interfaces.Logger, opts ...commands.HandlerOption[CreatePartnerCommand]) *CreatePartnerHandler {
	exec := func(ctx context.Context, msg CreatePartnerCommand) error {
		_, err := service.Create(ctx, content.CreatePartnerRequest{
			Name:       msg.Name,
			LogoURL:    msg.LogoURL,
			WebsiteURL: msg.WebsiteURL,
			OrderIndex: msg.OrderIndex,
			Active:     msg.Active,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[CreatePartnerCommand]{
		commands.WithLogger[CreatePartnerCommand](logger),
		commands.WithOperation[CreatePartnerCommand]("partners.create"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CreatePartnerHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[CreatePartnerCommand].Execute.
func (h *CreatePartnerHandler) Execute(ctx context.Context, msg CreatePartnerCommand) error {
	return h.inner.Execute(ctx, msg)
}

// UpdatePartnerCommand applies field changes to a partner.
type UpdatePartnerCommand struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// Type implements command.Message.
func (UpdatePartnerCommand) Type() string { return updatePartnerMessageType }

// Validate ensures a target and at least one change.
func (m UpdatePartnerCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.ID) == "" {
		errs["id"] = validation.NewError("site.partners.update.id_required", "id is required")
	}
	if len(m.Fields) == 0 {
		errs["fields"] = validation.NewError("site.partners.update.fields_required", "at least one field must change")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdatePartnerHandler applies edits via the partner service.
type UpdatePartnerHandler struct {
	inner *commands.Handler[UpdatePartnerCommand]
}

// NewUpdatePartnerHandler constructs a handler wired to the partner service.
func NewUpdatePartnerHandler(service *content.PartnerService, logger interfaces.Logger, opts ...commands.HandlerOption[UpdatePartnerCommand]) *UpdatePartnerHandler {
	exec := func(ctx context.Context, msg UpdatePartnerCommand) error {
		return service.Update(ctx, msg.ID, msg.Fields)
	}

	handlerOpts := []commands.HandlerOption[UpdatePartnerCommand]{
		commands.WithLogger[UpdatePartnerCommand](logger),
		commands.WithOperation[UpdatePartnerCommand]("partners.update"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UpdatePartnerHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[UpdatePartnerCommand].Execute.
func (h *UpdatePartnerHandler) Execute(ctx context.Context, msg UpdatePartnerCommand) error {
	return h.inner.Execute(ctx, msg)
}

// DeletePartnerCommand removes a partner logo.
type DeletePartnerCommand struct {
	ID string `json:"id"`
}

// Type implements command.Message.
func (DeletePartnerCommand) Type() string { return deletePartnerMessageType }

// Validate ensures a target id is present.
func (m DeletePartnerCommand) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return validation.Errors{
			"id": validation.NewError("site.partners.delete.id_required", "id is required"),
		}
	}
	return nil
}

// DeletePartnerHandler removes partners via the partner service.
type DeletePartnerHandler struct {
	inner *commands.Handler[DeletePartnerCommand]
}

// NewDeletePartnerHandler constructs a handler wired to the partner service.
func NewDeletePartnerHandler(service *content.PartnerService, logger interfaces.Logger, opts ...commands.HandlerOption[DeletePartnerCommand]) *DeletePartnerHandler {
	exec := func(ctx context.Context, msg DeletePartnerCommand) error {
		return service.Delete(ctx, msg.ID)
	}

	handlerOpts := []commands.HandlerOption[DeletePartnerCommand]{
		commands.WithLogger[DeletePartnerCommand](logger),
		commands.WithOperation[DeletePartnerCommand]("partners.delete"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeletePartnerHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[DeletePartnerCommand].Execute.
func (h *DeletePartnerHandler) Execute(ctx context.Context, msg DeletePartnerCommand) error {
	return h.inner.Execute(ctx, msg)
}
