package content

import (
	"context"
	"time"

	"github.com/servetdekorasyon/website/gateway"
	"github.com/servetdekorasyon/website/internal/logging"
	"github.com/servetdekorasyon/website/internal/schema"
	"github.com/servetdekorasyon/website/pkg/interfaces"
)

// ReferenceService serves the completed-projects gallery.
type ReferenceService struct {
	gw     gateway.Service
	logger interfaces.Logger
	now    func() time.Time
}

// ReferenceServiceOption configures a ReferenceService.
type ReferenceServiceOption func(*ReferenceService)

// WithReferenceLogger injects the service logger.
func WithReferenceLogger(logger interfaces.Logger) ReferenceServiceOption {
	return func(s *ReferenceService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithReferenceClock overrides the time source.
func WithReferenceClock(now func() time.Time) ReferenceServiceOption {
	return func(s *ReferenceService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewReferenceService constructs the service over the supplied gateway.
func NewReferenceService(gw gateway.Service, opts ...ReferenceServiceOption) *ReferenceService {
	s := &ReferenceService{
		gw:     gw,
		logger: logging.NoOp(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns references newest first, degrading to demo entries when the
// backend fails or holds nothing.
func (s *ReferenceService) List(ctx context.Context) ([]Reference, error) {
	query := gateway.Query{}.Order("created_at", gateway.Descending)

	records, err := s.gw.FetchCollection(ctx, CollectionReferences, query)
	if err != nil {
		s.logger.Warn("references.fetch_failed", "error", err)
	}
	if err != nil || len(records) == 0 {
		return FallbackReferences(s.now()), nil
	}

	references := make([]Reference, 0, len(records))
	for _, record := range records {
		references = append(references, referenceFromRecord(record))
	}
	return references, nil
}

// ListStored returns only what the backend actually holds, newest first,
// with no demo fallback.
func (s *ReferenceService) ListStored(ctx context.Context) ([]Reference, error) {
	query := gateway.Query{}.Order("created_at", gateway.Descending)
	records, err := s.gw.FetchCollection(ctx, CollectionReferences, query)
	if err != nil {
		return nil, err
	}

	references := make([]Reference, 0, len(records))
	for _, record := range records {
		references = append(references, referenceFromRecord(record))
	}
	return references, nil
}

// CreateReferenceRequest carries admin input for a new reference entry.
type CreateReferenceRequest struct {
	Title       string
	Description string
	ImageURL    string
}

// Create validates and stores a new reference.
func (s *ReferenceService) Create(ctx context.Context, req CreateReferenceRequest) (*Reference, error) {
	fields := map[string]any{
		"title":       req.Title,
		"description": req.Description,
		"image_url":   req.ImageURL,
		"created_at":  s.now().UTC().Format(time.RFC3339),
	}
	if err := schema.ValidatePayload(CollectionReferences, fields); err != nil {
		return nil, err
	}

	record, err := s.gw.InsertRecord(ctx, CollectionReferences, fields)
	if err != nil {
		return nil, err
	}
	s.logger.Info("references.created", "title", req.Title)

	reference := referenceFromRecord(*record)
	return &reference, nil
}

// Update applies field changes to an existing reference.
func (s *ReferenceService) Update(ctx context.Context, id string, fields map[string]any) error {
	if err := s.gw.UpdateRecord(ctx, CollectionReferences, id, fields); err != nil {
		return err
	}
	s.logger.Info("references.updated", "id", id)
	return nil
}

// Delete removes a reference entry.
func (s *ReferenceService) Delete(ctx context.Context, id string) error {
	if err := s.gw.DeleteRecord(ctx, CollectionReferences, id); err != nil {
		return err
	}
	s.logger.Info("references.deleted", "id", id)
	return nil
}
