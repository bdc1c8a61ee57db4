package content

import (
	"context"
	"time"

	"github.com/servetdekorasyon/website/gateway"
	"github.com/servetdekorasyon/website/internal/logging"
	"github.com/servetdekorasyon/website/internal/schema"
	"github.com/servetdekorasyon/website/pkg/interfaces"
)

// ContactService records visitor inquiries and lets admins review them.
type ContactService struct {
	gw     gateway.Service
	logger interfaces.Logger
	now    func() time.Time
}

// ContactServiceOption configures a ContactService.
type ContactServiceOption func(*ContactService)

// WithContactLogger injects the service logger.
func WithContactLogger(logger interfaces.Logger) ContactServiceOption {
	return func(s *ContactService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithContactClock overrides the time source.
func WithContactClock(now func() time.Time) ContactServiceOption {
	return func(s *ContactService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewContactService constructs the service over the supplied gateway.
func NewContactService(gw gateway.Service, opts ...ContactServiceOption) *ContactService {
	s := &ContactService{
		gw:     gw,
		logger: logging.NoOp(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitContactRequest carries one visitor inquiry.
type SubmitContactRequest struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Submit stores a visitor inquiry. This is the only public write path on
// the site; everything else requires an admin session.
func (s *ContactService) Submit(ctx context.Context, req SubmitContactRequest) error {
	fields := map[string]any{
		"name":       req.Name,
		"email":      req.Email,
		"phone":      req.Phone,
		"message":    req.Message,
		"created_at": s.now().UTC().Format(time.RFC3339),
	}
	if err := schema.ValidatePayload(CollectionContacts, fields); err != nil {
		return err
	}

	if _, err := s.gw.InsertRecord(ctx, CollectionContacts, fields); err != nil {
		s.logger.Warn("contacts.submit_failed", "error", err)
		return err
	}
	s.logger.Info("contacts.submitted", "email", req.Email)
	return nil
}

// List returns inquiries newest first for the admin inbox. There is no
// demo fallback here; an empty inbox is just empty.
func (s *ContactService) List(ctx context.Context) ([]Contact, error) {
	query := gateway.Query{}.Order("created_at", gateway.Descending)

	records, err := s.gw.FetchCollection(ctx, CollectionContacts, query)
	if err != nil {
		return nil, err
	}

	contacts := make([]Contact, 0, len(records))
	for _, record := range records {
		contacts = append(contacts, contactFromRecord(record))
	}
	return contacts, nil
}

// Delete removes an inquiry from the inbox.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := s.gw.DeleteRecord(ctx, CollectionContacts, id); err != nil {
		return err
	}
	s.logger.Info("contacts.deleted", "id", id)
	return nil
}
