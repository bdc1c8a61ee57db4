package content

import (
	"context"

	"github.com/servetdekorasyon/website/gateway"
	"github.com/servetdekorasyon/website/internal/logging"
	"github.com/servetdekorasyon/website/internal/schema"
	"github.com/servetdekorasyon/website/pkg/interfaces"
)

// PartnerService serves the brand-logo strip.
type PartnerService struct {
	gw     gateway.Service
	logger interfaces.Logger
}

// PartnerServiceOption configures a PartnerService.
type PartnerServiceOption func(*PartnerService)

// WithPartnerLogger injects the service logger.
func WithPartnerLogger(logger interfaces.Logger) PartnerServiceOption {
	return func(s *PartnerService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewPartnerService constructs the service over the supplied gateway.
func NewPartnerService(gw gateway.Service, opts ...PartnerServiceOption) *PartnerService {
	s := &PartnerService{
		gw:     gw,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListActive returns the partners shown on the public site, in display
// order, degrading to the demo brands when the backend fails or is empty.
func (s *PartnerService) ListActive(ctx context.Context) ([]Partner, error) {
	query := gateway.Query{}.
		Where("active", true).
		Order("order_index", gateway.Ascending)

	records, err := s.gw.FetchCollection(ctx, CollectionPartners, query)
	if err != nil {
		s.logger.Warn("partners.fetch_failed", "error", err)
	}
	if err != nil || len(records) == 0 {
		return FallbackPartners(), nil
	}

	partners := make([]Partner, 0, len(records))
	for _, record := range records {
		partners = append(partners, partnerFromRecord(record))
	}
	return partners, nil
}

// List returns every partner, active or not, for the admin panel.
func (s *PartnerService) List(ctx context.Context) ([]Partner, error) {
	query := gateway.Query{}.Order("order_index", gateway.Ascending)

	records, err := s.gw.FetchCollection(ctx, CollectionPartners, query)
	if err != nil {
		return nil, err
	}

	partners := make([]Partner, 0, len(records))
	for _, record := range records {
		partners = append(partners, partnerFromRecord(record))
	}
	return partners, nil
}

// CreatePartnerRequest carries admin input for a new partner logo.
type CreatePartnerRequest struct {
	Name       string
	LogoURL    string
	WebsiteURL string
	OrderIndex int
	Active     bool
}

// Create validates and stores a new partner.
func (s *PartnerService) Create(ctx context.Context, req CreatePartnerRequest) (*Partner, error) {
	fields := map[string]any{
		"name":        req.Name,
		"logo_url":    req.LogoURL,
		"website_url": req.WebsiteURL,
		"order_index": req.OrderIndex,
		"active":      req.Active,
	}
	if err := schema.ValidatePayload(CollectionPartners, fields); err != nil {
		return nil, err
	}

	record, err := s.gw.InsertRecord(ctx, CollectionPartners, fields)
	if err != nil {
		return nil, err
	}
	s.logger.Info("partners.created", "name", req.Name)

	partner := partnerFromRecord(*record)
	return &partner, nil
}

// Update applies field changes to an existing partner.
func (s *PartnerService) Update(ctx context.Context, id string, fields map[string]any) error {
	if err := s.gw.UpdateRecord(ctx, CollectionPartners, id, fields); err != nil {
		return err
	}
	s.logger.Info("partners.updated", "id", id)
	return nil
}

// Delete removes a partner logo.
func (s *PartnerService) Delete(ctx context.Context, id string) error {
	if err := s.gw.DeleteRecord(ctx, CollectionPartners, id); err != nil {
		return err
	}
	s.logger.Info("partners.deleted", "id", id)
	return nil
}
