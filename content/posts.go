package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/servetdekorasyon/website/gateway"
	"github.com/servetdekorasyon/website/internal/logging"
	"github.com/servetdekorasyon/website/internal/schema"
	"github.com/servetdekorasyon/website/pkg/interfaces"
)

// PostService exposes blog post use cases: public listing and slug
// resolution with fallback content, and admin-side mutations.
type PostService struct {
	gw     gateway.Service
	logger interfaces.Logger
	now    func() time.Time
}

// PostServiceOption configures a PostService.
type PostServiceOption func(*PostService)

// WithPostLogger injects the service logger.
func WithPostLogger(logger interfaces.Logger) PostServiceOption {
	return func(s *PostService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPostClock overrides the time source, for deterministic tests.
func WithPostClock(now func() time.Time) PostServiceOption {
	return func(s *PostService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewPostService constructs the service over the supplied gateway.
func NewPostService(gw gateway.Service, opts ...PostServiceOption) *PostService {
	s := &PostService{
		gw:     gw,
		logger: logging.NoOp(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every post, newest first. Backend failures and empty results
// both degrade to the built-in demo posts so the page is never empty.
func (s *PostService) List(ctx context.Context) ([]Post, error) {
	return s.list(ctx, 0)
}

// Preview returns the most recent posts for homepage widgets.
func (s *PostService) Preview(ctx context.Context, limit int) ([]Post, error) {
	return s.list(ctx, limit)
}

func (s *PostService) list(ctx context.Context, limit int) ([]Post, error) {
	query := gateway.Query{}.Order("created_at", gateway.Descending)
	if limit > 0 {
		query = query.Take(limit)
	}

	records, err := s.gw.FetchCollection(ctx, CollectionPosts, query)
	if err != nil {
		s.logger.Warn("posts.fetch_failed", "error", err)
	}
	if err != nil || len(records) == 0 {
		return s.fallback(limit)
	}

	posts := make([]Post, 0, len(records))
	for _, record := range records {
		post := postFromRecord(record)
		post.Content = SanitizeRichText(post.Content)
		posts = append(posts, post)
	}
	return posts, nil
}

// ListStored returns only what the backend actually holds, newest first.
// Admin views use it so stored counts are never inflated by demo content.
func (s *PostService) ListStored(ctx context.Context) ([]Post, error) {
	query := gateway.Query{}.Order("created_at", gateway.Descending)
	records, err := s.gw.FetchCollection(ctx, CollectionPosts, query)
	if err != nil {
		return nil, err
	}

	posts := make([]Post, 0, len(records))
	for _, record := range records {
		post := postFromRecord(record)
		post.Content = SanitizeRichText(post.Content)
		posts = append(posts, post)
	}
	return posts, nil
}

func (s *PostService) fallback(limit int) ([]Post, error) {
	posts, err := FallbackPosts(s.now())
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// GetBySlug resolves a single post for a detail page. Both "not found" and
// transport failures degrade to the matching demo post; a slug unknown to
// the demo set as well yields ErrPostNotFound.
func (s *PostService) GetBySlug(ctx context.Context, slug string) (Post, error) {
	record, err := s.gw.ResolveOne(ctx, CollectionPosts, "slug", slug)
	if err == nil {
		post := postFromRecord(*record)
		post.Content = SanitizeRichText(post.Content)
		return post, nil
	}
	if !gateway.IsNotFound(err) {
		s.logger.Warn("posts.resolve_failed", "slug", slug, "error", err)
	}

	fallback, fbErr := FallbackPosts(s.now())
	if fbErr != nil {
		return Post{}, fbErr
	}
	for _, post := range fallback {
		if post.Slug == slug {
			return post, nil
		}
	}
	return Post{}, ErrPostNotFound
}

// CreatePostRequest carries admin input for a new post. An empty Slug is
// derived from Title.
type CreatePostRequest struct {
	Title     string
	Content   string
	Excerpt   string
	Category  string
	Author    string
	Slug      string
	Published bool
}

// Create validates and stores a new post. Slug uniqueness is enforced at
// write time; a collision surfaces ErrSlugExists to the admin.
func (s *PostService) Create(ctx context.Context, req CreatePostRequest) (*Post, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	postSlug := strings.TrimSpace(req.Slug)
	if postSlug == "" {
		derived, err := DeriveSlug(title)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSlugInvalid, err)
		}
		postSlug = derived
	} else if !IsValidSlug(postSlug) {
		return nil, ErrSlugInvalid
	}

	if _, err := s.gw.ResolveOne(ctx, CollectionPosts, "slug", postSlug); err == nil {
		return nil, ErrSlugExists
	} else if !gateway.IsNotFound(err) {
		return nil, err
	}

	now := s.now().UTC()
	fields := map[string]any{
		"title":          title,
		"content":        req.Content,
		"excerpt":        req.Excerpt,
		"category":       req.Category,
		"author":         req.Author,
		"published_date": now.Format(time.RFC3339),
		"slug":           postSlug,
		"published":      req.Published,
	}
	if err := schema.ValidatePayload(CollectionPosts, fields); err != nil {
		return nil, err
	}

	record, err := s.gw.InsertRecord(ctx, CollectionPosts, fields)
	if err != nil {
		return nil, err
	}
	s.logger.Info("posts.created", "slug", postSlug)

	post := postFromRecord(*record)
	return &post, nil
}

// UpdatePostRequest carries a partial admin edit. Nil fields are untouched.
type UpdatePostRequest struct {
	ID        string
	Title     *string
	Content   *string
	Excerpt   *string
	Category  *string
	Published *bool
}

// Update applies a partial edit to an existing post.
func (s *PostService) Update(ctx context.Context, req UpdatePostRequest) error {
	if strings.TrimSpace(req.ID) == "" {
		return errors.New("content: post id required")
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.Excerpt != nil {
		fields["excerpt"] = *req.Excerpt
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Published != nil {
		fields["published"] = *req.Published
	}
	if len(fields) == 0 {
		return nil
	}

	if err := s.gw.UpdateRecord(ctx, CollectionPosts, req.ID, fields); err != nil {
		return err
	}
	s.logger.Info("posts.updated", "id", req.ID)
	return nil
}

// Delete removes a post. Callers must have collected explicit confirmation.
func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := s.gw.DeleteRecord(ctx, CollectionPosts, id); err != nil {
		return err
	}
	s.logger.Info("posts.deleted", "id", id)
	return nil
}
