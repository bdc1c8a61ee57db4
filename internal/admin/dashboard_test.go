package admin_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/servetdekorasyon/website/content"
	"github.com/servetdekorasyon/website/gateway"
	"github.com/servetdekorasyon/website/internal/admin"
)

func TestDashboardRequiresSession(t *testing.T) {
	service, _ := newAdminFixture(t, stubVerifier{})

	if _, err := service.Dashboard(context.Background(), "stale-token"); !errors.Is(err, admin.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestDashboardCountsStoredContentOnly(t *testing.T) {
	service, gw := newAdminFixture(t, liveSession())

	dashboard, err := service.Dashboard(context.Background(), "token")
	if err != nil {
		t.Fatalf("dashboard on empty backend: %v", err)
	}
	if dashboard.PostCount != 0 || dashboard.OfferingCount != 0 || dashboard.ReferenceCount != 0 || dashboard.ContactCount != 0 {
		t.Fatalf("expected zero counts on empty backend, got %+v", dashboard)
	}

	base := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	posts := make([]gateway.Record, 0, 4)
	for i := 0; i < 4; i++ {
		posts = append(posts, gateway.Record{
			ID: fmt.Sprintf("p%d", i),
			Fields: map[string]any{
				"title":      fmt.Sprintf("Yazı %d", i),
				"slug":       fmt.Sprintf("yazi-%d", i),
				"created_at": base.Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
			},
		})
	}
	gw.Seed(content.CollectionPosts, posts)

	inquiries := make([]gateway.Record, 0, 6)
	for i := 0; i < 6; i++ {
		inquiries = append(inquiries, gateway.Record{
			ID: fmt.Sprintf("c%d", i),
			Fields: map[string]any{
				"name":       fmt.Sprintf("Ziyaretçi %d", i),
				"email":      fmt.Sprintf("z%d@example.com", i),
				"message":    "Fiyat almak istiyorum.",
				"created_at": base.Add(time.Duration(i) * time.Minute).Format(time.RFC3339),
			},
		})
	}
	gw.Seed(content.CollectionContacts, inquiries)
	gw.Seed(content.CollectionOfferings, []gateway.Record{{
		ID:     "o1",
		Fields: map[string]any{"title": "Banyo Tadilatı", "icon": "Bath", "order_index": 0},
	}})

	dashboard, err = service.Dashboard(context.Background(), "token")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dashboard.PostCount != 4 {
		t.Fatalf("expected 4 posts, got %d", dashboard.PostCount)
	}
	if dashboard.OfferingCount != 1 {
		t.Fatalf("expected 1 offering, got %d", dashboard.OfferingCount)
	}
	if dashboard.ContactCount != 6 {
		t.Fatalf("expected 6 contacts, got %d", dashboard.ContactCount)
	}
	if len(dashboard.RecentContacts) != 5 {
		t.Fatalf("expected 5 recent contacts, got %d", len(dashboard.RecentContacts))
	}
	if dashboard.RecentContacts[0].Name != "Ziyaretçi 5" {
		t.Fatalf("expected newest contact first, got %q", dashboard.RecentContacts[0].Name)
	}
	if len(dashboard.RecentPosts) != 3 {
		t.Fatalf("expected 3 recent posts, got %d", len(dashboard.RecentPosts))
	}
	if dashboard.RecentPosts[0].Slug != "yazi-3" {
		t.Fatalf("expected newest post first, got %q", dashboard.RecentPosts[0].Slug)
	}
}
