// Package postscmd exposes the admin blog operations as validated command
// messages over the shared handler foundation.
package postscmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/servetdekorasyon/website/content"
	"github.com/servetdekorasyon/website/internal/commands"
	"github.com/servetdekorasyon/website/pkg/interfaces"
)

const (
	createPostMessageType = "site.posts.create"
	updatePostMessageType = "site.posts.update"
	deletePostMessageType = "site.posts.delete"
)

// CreatePostCommand requests a new blog post. Slug is optional and is
// derived from the title when empty.
type CreatePostCommand struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Excerpt   string `json:"excerpt"`
	Category  string `json:"category"`
	Author    string `json:"author"`
	Slug      string `json:"slug,omitempty"`
	Published bool   `json:"published"`
}

// Type implements command.Message.
func (CreatePostCommand) Type() string { return createPostMessageType }

// Validate ensures the message carries required fields before reaching handlers.
func (m CreatePostCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Title) == "" {
		errs["title"] = validation.NewError("site.posts.create.title_required", "title is required")
	}
	if strings.TrimSpace(m.Content) == "" {
		errs["content"] = validation.NewError("site.posts.create.content_required", "content is required")
	}
	if strings.TrimSpace(m.Category) == "" {
		errs["category"] = validation.NewError("site.posts.create.category_required", "category is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreatePostHandler stores new posts via the post service.
type CreatePostHandler struct {
	inner *commands.Handler[CreatePostCommand]
}

// NewCreatePostHandler constructs a handler wired to the post service.
func NewCreatePostHandler(service *content.PostService, logger interfaces.Logger, opts ...commands.HandlerOption[CreatePostCommand]) *CreatePostHandler {
	exec := func(ctx context.Context, msg CreatePostCommand) error {
		_, err := service.Create(ctx, content.CreatePostRequest{
			Title:     msg.Title,
			Content:   msg.Content,
			Excerpt:   msg.Excerpt,
			Category:  msg.Category,
			Author:    msg.Author,
			Slug:      msg.Slug,
			Published: msg.Published,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[CreatePostCommand]{
		commands.WithLogger[CreatePostCommand](logger),
		commands.WithOperation[CreatePostCommand]("posts.create"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CreatePostHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[CreatePostCommand].Execute.
func (h *CreatePostHandler) Execute(ctx context.Context, msg CreatePostCommand) error {
	return h.inner.Execute(ctx, msg)
}

// UpdatePostCommand requests a partial edit of an existing post.
type UpdatePostCommand struct {
	ID        string  `json:"id"`
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`
	Excerpt   *string `json:"excerpt,omitempty"`
	Category  *string `json:"category,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

// Type implements command.Message.
func (UpdatePostCommand) Type() string { return updatePostMessageType }

// Validate ensures the edit targets a post and changes something.
func (m UpdatePostCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.ID) == "" {
		errs["id"] = validation.NewError("site.posts.update.id_required", "id is required")
	}
	if m.Title == nil && m.Content == nil && m.Excerpt == nil && m.Category == nil && m.Published == nil {
		errs["fields"] = validation.NewError("site.posts.update.fields_required", "at least one field must change")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdatePostHandler applies edits via the post service.
type UpdatePostHandler struct {
	inner *commands.Handler[UpdatePostCommand]
}

// NewUpdatePostHandler constructs a handler wired to the post service.
func NewUpdatePostHandler(service *content.PostService, logger interfaces.Logger, opts ...commands.HandlerOption[UpdatePostCommand]) *UpdatePostHandler {
	exec := func(ctx context.Context, msg UpdatePostCommand) error {
		return service.Update(ctx, content.UpdatePostRequest{
			ID:        msg.ID,
			Title:     msg.Title,
			Content:   msg.Content,
			Excerpt:   msg.Excerpt,
			Category:  msg.Category,
			Published: msg.Published,
		})
	}

	handlerOpts := []commands.HandlerOption[UpdatePostCommand]{
		commands.WithLogger[UpdatePostCommand](logger),
		commands.WithOperation[UpdatePostCommand]("posts.update"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UpdatePostHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[UpdatePostCommand].Execute.
func (h *UpdatePostHandler) Execute(ctx context.Context, msg UpdatePostCommand) error {
	return h.inner.Execute(ctx, msg)
}

// DeletePostCommand removes a post. The admin UI asks for confirmation
// before dispatching this.
type DeletePostCommand struct {
	ID string `json:"id"`
}

// Type implements command.Message.
func (DeletePostCommand) Type() string { return deletePostMessageType }

// Validate ensures a target id is present.
func (m DeletePostCommand) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return validation.Errors{
			"id": validation.NewError("site.posts.delete.id_required", "id is required"),
		}
	}
	return nil
}

// DeletePostHandler removes posts via the post service.
type DeletePostHandler struct {
	inner *commands.Handler[DeletePostCommand]
}

// NewDeletePostHandler constructs a handler wired to the post service.
func NewDeletePostHandler(service *content.PostService, logger interfaces.Logger, opts ...commands.HandlerOption[DeletePostCommand]) *DeletePostHandler {
	exec := func(ctx context.Context, msg DeletePostCommand) error {
		return service.Delete(ctx, msg.ID)
	}

	handlerOpts := []commands.HandlerOption[DeletePostCommand]{
		commands.WithLogger[DeletePostCommand](logger),
		commands.WithOperation[DeletePostCommand]("posts.delete"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeletePostHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[DeletePostCommand].Execute.
func (h *DeletePostHandler) Execute(ctx context.Context, msg DeletePostCommand) error {
	return h.inner.Execute(ctx, msg)
}
