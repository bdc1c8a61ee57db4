package admin

import (
	"context"

	"github.com/servetdekorasyon/website/content"
)

// Recency windows shown on the admin landing page.
const (
	recentContactLimit = 5
	recentPostLimit    = 3
)

// Dashboard aggregates the admin landing page numbers: stored collection
// counts plus the freshest inquiries and posts. Counts come from the
// stored lists, so an empty backend reads as zero rather than as the demo
// datasets.
type Dashboard struct {
	OfferingCount  int               `json:"offering_count"`
	PostCount      int               `json:"post_count"`
	ReferenceCount int               `json:"reference_count"`
	ContactCount   int               `json:"contact_count"`
	RecentContacts []content.Contact `json:"recent_contacts"`
	RecentPosts    []content.Post    `json:"recent_posts"`
}

// Dashboard builds the landing page aggregate for an authorized session.
func (s *Service) Dashboard(ctx context.Context, accessToken string) (*Dashboard, error) {
	if _, err := s.Authorize(ctx, accessToken); err != nil {
		return nil, err
	}

	offerings, err := s.services.Offerings.ListStored(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.services.Posts.ListStored(ctx)
	if err != nil {
		return nil, err
	}
	references, err := s.services.References.ListStored(ctx)
	if err != nil {
		return nil, err
	}
	contacts, err := s.services.Contacts.List(ctx)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		OfferingCount:  len(offerings),
		PostCount:      len(posts),
		ReferenceCount: len(references),
		ContactCount:   len(contacts),
		RecentContacts: head(contacts, recentContactLimit),
		RecentPosts:    head(posts, recentPostLimit),
	}, nil
}

func head[T any](items []T, limit int) []T {
	if len(items) <= limit {
		return items
	}
	return items[:limit]
}
