package content

import (
	"context"

	"github.com/servetdekorasyon/website/gateway"
	"github.com/servetdekorasyon/website/internal/logging"
	"github.com/servetdekorasyon/website/internal/schema"
	"github.com/servetdekorasyon/website/pkg/interfaces"
)

// OfferingService serves the company's service catalog.
type OfferingService struct {
	gw     gateway.Service
	logger interfaces.Logger
}

// OfferingServiceOption configures an OfferingService.
type OfferingServiceOption func(*OfferingService)

// WithOfferingLogger injects the service logger.
func WithOfferingLogger(logger interfaces.Logger) OfferingServiceOption {
	return func(s *OfferingService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewOfferingService constructs the service over the supplied gateway.
func NewOfferingService(gw gateway.Service, opts ...OfferingServiceOption) *OfferingService {
	s := &OfferingService{
		gw:     gw,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns offerings in display order, degrading to the built-in
// catalog when the backend fails or holds nothing.
func (s *OfferingService) List(ctx context.Context) ([]Offering, error) {
	query := gateway.Query{}.Order("order_index", gateway.Ascending)

	records, err := s.gw.FetchCollection(ctx, CollectionOfferings, query)
	if err != nil {
		s.logger.Warn("offerings.fetch_failed", "error", err)
	}
	if err != nil || len(records) == 0 {
		return FallbackOfferings(), nil
	}

	offerings := make([]Offering, 0, len(records))
	for _, record := range records {
		offerings = append(offerings, offeringFromRecord(record))
	}
	return offerings, nil
}

// ListStored returns only what the backend actually holds, in display
// order, with no demo fallback.
func (s *OfferingService) ListStored(ctx context.Context) ([]Offering, error) {
	query := gateway.Query{}.Order("order_index", gateway.Ascending)
	records, err := s.gw.FetchCollection(ctx, CollectionOfferings, query)
	if err != nil {
		return nil, err
	}

	offerings := make([]Offering, 0, len(records))
	for _, record := range records {
		offerings = append(offerings, offeringFromRecord(record))
	}
	return offerings, nil
}

// CreateOfferingRequest carries admin input for a new catalog entry.
type CreateOfferingRequest struct {
	Title       string
	Description string
	Icon        Icon
	OrderIndex  int
}

// Create validates and stores a new offering. The icon must come from the
// closed icon set.
func (s *OfferingService) Create(ctx context.Context, req CreateOfferingRequest) (*Offering, error) {
	if !req.Icon.Valid() {
		return nil, ErrIconInvalid
	}

	fields := map[string]any{
		"title":       req.Title,
		"description": req.Description,
		"icon":        string(req.Icon),
		"order_index": req.OrderIndex,
	}
	if err := schema.ValidatePayload(CollectionOfferings, fields); err != nil {
		return nil, err
	}

	record, err := s.gw.InsertRecord(ctx, CollectionOfferings, fields)
	if err != nil {
		return nil, err
	}
	s.logger.Info("offerings.created", "title", req.Title)

	offering := offeringFromRecord(*record)
	return &offering, nil
}

// Update applies field changes to an existing offering. Icon changes are
// validated against the closed set before the write.
func (s *OfferingService) Update(ctx context.Context, id string, fields map[string]any) error {
	if raw, ok := fields["icon"]; ok {
		name, _ := raw.(string)
		if !Icon(name).Valid() {
			return ErrIconInvalid
		}
	}
	if err := s.gw.UpdateRecord(ctx, CollectionOfferings, id, fields); err != nil {
		return err
	}
	s.logger.Info("offerings.updated", "id", id)
	return nil
}

// Delete removes a catalog entry.
func (s *OfferingService) Delete(ctx context.Context, id string) error {
	if err := s.gw.DeleteRecord(ctx, CollectionOfferings, id); err != nil {
		return err
	}
	s.logger.Info("offerings.deleted", "id", id)
	return nil
}
