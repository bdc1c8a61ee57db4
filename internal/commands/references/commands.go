// Package referencescmd exposes admin management of the portfolio gallery
// as validated command messages.
package referencescmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/servetdekorasyon/website/content"
	"github.com/servetdekorasyon/website/internal/commands"
	"github.com/servetdekorasyon/website/pkg/interfaces"
)

const (
	createReferenceMessageType = "site.references.create"
	updateReferenceMessageType = "site.references.update"
	deleteReferenceMessageType = "site.references.delete"
)

// CreateReferenceCommand requests a new portfolio entry.
type CreateReferenceCommand struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url"`
}

// Type implements command.Message.
func (CreateReferenceCommand) Type() string { return createReferenceMessageType }

// Validate ensures required fields are present.
func (m CreateReferenceCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Title) == "" {
		errs["title"] = validation.NewError("site.references.create.title_required", "title is required")
	}
	if strings.TrimSpace(m.ImageURL) == "" {
		errs["image_url"] = validation.NewError("site.references.create.image_required", "image_url is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateReferenceHandler stores entries via the reference service.
type CreateReferenceHandler struct {
	inner *commands.Handler[CreateReferenceCommand]
}

// NewCreateReferenceHandler constructs a handler wired to the reference service.
func NewCreateReferenceHandler(service *content.ReferenceService, logger interfaces.Logger, opts ...commands.HandlerOption[CreateReferenceCommand]) *CreateReferenceHandler {
	exec := func(ctx context.Context, msg CreateReferenceCommand) error {
		_, err := service.Create(ctx, content.CreateReferenceRequest{
			Title:       msg.Title,
			Description: msg.Description,
			ImageURL:    msg.ImageURL,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[CreateReferenceCommand]{
		commands.WithLogger[CreateReferenceCommand](logger),
		commands.WithOperation[CreateReferenceCommand]("references.create"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CreateReferenceHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[CreateReferenceCommand].Execute.
func (h *CreateReferenceHandler) Execute(ctx context.Context, msg CreateReferenceCommand) error {
	return h.inner.Execute(ctx, msg)
}

// UpdateReferenceCommand applies field changes to a portfolio entry.
type UpdateReferenceCommand struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// Type implements command.Message.
func (UpdateReferenceCommand) Type() string { return updateReferenceMessageType }

// Validate ensures a target and at least one change.
func (m UpdateReferenceCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.ID) == "" {
		errs["id"] = validation.NewError("site.references.update.id_required", "id is required")
	}
	if len(m.Fields) == 0 {
		errs["fields"] = validation.NewError("site.references.update.fields_required", "at least one field must change")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateReferenceHandler applies edits via the reference service.
type UpdateReferenceHandler struct {
	inner *commands.Handler[UpdateReferenceCommand]
}

// NewUpdateReferenceHandler constructs a handler wired to the reference service.
func NewUpdateReferenceHandler(service *content.ReferenceService, logger interfaces.Logger, opts ...commands.HandlerOption[UpdateReferenceCommand]) *UpdateReferenceHandler {
	exec := func(ctx context.Context, msg UpdateReferenceCommand) error {
		return service.Update(ctx, msg.ID, msg.Fields)
	}

	handlerOpts := []commands.HandlerOption[UpdateReferenceCommand]{
		commands.WithLogger[UpdateReferenceCommand](logger),
		commands.WithOperation[UpdateReferenceCommand]("references.update"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UpdateReferenceHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[UpdateReferenceCommand].Execute.
func (h *UpdateReferenceHandler) Execute(ctx context.Context, msg UpdateReferenceCommand) error {
	return h.inner.Execute(ctx, msg)
}

// DeleteReferenceCommand removes a portfolio entry.
type DeleteReferenceCommand struct {
	ID string `json:"id"`
}

// Type implements command.Message.
func (DeleteReferenceCommand) Type() string { return deleteReferenceMessageType }

// Validate ensures a target id is present.
func (m DeleteReferenceCommand) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return validation.Errors{
			"id": validation.NewError("site.references.delete.id_required", "id is required"),
		}
	}
	return nil
}

// DeleteReferenceHandler removes entries via the reference service.
type DeleteReferenceHandler struct {
	inner *commands.Handler[DeleteReferenceCommand]
}

// NewDeleteReferenceHandler constructs a handler wired to the reference service.
func NewDeleteReferenceHandler(service *content.ReferenceService, logger interfaces.Logger, opts ...commands.HandlerOption[DeleteReferenceCommand]) *DeleteReferenceHandler {
	exec := func(ctx context.Context, msg DeleteReferenceCommand) error {
		return service.Delete(ctx, msg.ID)
	}

	handlerOpts := []commands.HandlerOption[DeleteReferenceCommand]{
		commands.WithLogger[DeleteReferenceCommand](logger),
		commands.WithOperation[DeleteReferenceCommand]("references.delete"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeleteReferenceHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[DeleteReferenceCommand].Execute.
func (h *DeleteReferenceHandler) Execute(ctx context.Context, msg DeleteReferenceCommand) error {
	return h.inner.Execute(ctx, msg)
}
