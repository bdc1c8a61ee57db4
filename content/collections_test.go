package content_test

import (
	"context"
	"errors"
	"testing"

	"github.com/servetdekorasyon/website/content"
	"github.com/servetdekorasyon/website/gateway"
	"github.com/servetdekorasyon/website/internal/schema"
)

func TestOfferingServiceListOrdersByIndex(t *testing.T) {
	gw := gateway.NewMemory()
	gw.Seed(content.CollectionOfferings, []gateway.Record{
		{Fields: map[string]any{"title": "Dekorasyon", "description": "d", "icon": "Palette", "order_index": 2}},
		{Fields: map[string]any{"title": "Banyo Tadilatı", "description": "b", "icon": "Bath", "order_index": 1}},
	})
	svc := content.NewOfferingService(gw)

	offerings, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list offerings: %v", err)
	}
	if len(offerings) != 2 {
		t.Fatalf("expected 2 offerings, got %d", len(offerings))
	}
	if offerings[0].Title != "Banyo Tadilatı" {
		t.Fatalf("expected order_index ordering, got %q first", offerings[0].Title)
	}
	if offerings[0].Icon != content.IconBath {
		t.Fatalf("unexpected icon: %v", offerings[0].Icon)
	}
}

func TestOfferingServiceFallsBackOnFailure(t *testing.T) {
	gw := gateway.NewMemory()
	gw.FailNextWith(errors.New("backend down"))
	svc := content.NewOfferingService(gw)

	offerings, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list offerings: %v", err)
	}
	if len(offerings) != 3 {
		t.Fatalf("expected 3 demo offerings, got %d", len(offerings))
	}
}

func TestOfferingServiceRejectsUnknownIcon(t *testing.T) {
	svc := content.NewOfferingService(gateway.NewMemory())

	_, err := svc.Create(context.Background(), content.CreateOfferingRequest{
		Title:       "Yeni Hizmet",
		Description: "açıklama",
		Icon:        content.Icon("Rocket"),
		OrderIndex:  4,
	})
	if !errors.Is(err, content.ErrIconInvalid) {
		t.Fatalf("expected ErrIconInvalid, got %v", err)
	}

	if err := svc.Update(context.Background(), "some-id", map[string]any{"icon": "Rocket"}); !errors.Is(err, content.ErrIconInvalid) {
		t.Fatalf("expected ErrIconInvalid on update, got %v", err)
	}
}

func TestReferenceServiceFallsBackWhenEmpty(t *testing.T) {
	svc := content.NewReferenceService(gateway.NewMemory(), content.WithReferenceClock(fixedNow))

	references, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list references: %v", err)
	}
	if len(references) != 4 {
		t.Fatalf("expected 4 demo references, got %d", len(references))
	}
	if references[0].Title != "Modern Banyo Tasarımı" {
		t.Fatalf("unexpected first reference: %q", references[0].Title)
	}
}

func TestReferenceServiceCreateValidatesPayload(t *testing.T) {
	svc := content.NewReferenceService(gateway.NewMemory())

	_, err := svc.Create(context.Background(), content.CreateReferenceRequest{Title: "Eksik Görsel"})
	if !errors.Is(err, schema.ErrPayloadInvalid) {
		t.Fatalf("expected payload validation error, got %v", err)
	}

	reference, err := svc.Create(context.Background(), content.CreateReferenceRequest{
		Title:       "Yeni Proje",
		Description: "tamamlandı",
		ImageURL:    "https://example.com/proje.jpg",
	})
	if err != nil {
		t.Fatalf("create reference: %v", err)
	}
	if reference.ID == "" {
		t.Fatal("expected assigned id")
	}
}

func TestContactServiceSubmitAndInbox(t *testing.T) {
	gw := gateway.NewMemory()
	svc := content.NewContactService(gw, content.WithContactClock(fixedNow))

	err := svc.Submit(context.Background(), content.SubmitContactRequest{
		Name:    "Ayşe Yılmaz",
		Email:   "ayse@example.com",
		Phone:   "05551234567",
		Message: "Banyo tadilatı için fiyat almak istiyorum.",
	})
	if err != nil {
		t.Fatalf("submit contact: %v", err)
	}

	contacts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list contacts: %v", err)
	}
	if len(contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(contacts))
	}
	if contacts[0].Email != "ayse@example.com" {
		t.Fatalf("unexpected contact: %q", contacts[0].Email)
	}

	if err := svc.Delete(context.Background(), contacts[0].ID); err != nil {
		t.Fatalf("delete contact: %v", err)
	}
	contacts, err = svc.List(context.Background())
	if err != nil {
		t.Fatalf("list contacts after delete: %v", err)
	}
	if len(contacts) != 0 {
		t.Fatalf("expected empty inbox, got %d", len(contacts))
	}
}

func TestContactServiceSubmitSurfacesUnconfiguredBackend(t *testing.T) {
	svc := content.NewContactService(gateway.New(gateway.Config{}))

	err := svc.Submit(context.Background(), content.SubmitContactRequest{
		Name:    "Ayşe Yılmaz",
		Email:   "ayse@example.com",
		Phone:   "05551234567",
		Message: "Banyo tadilatı için fiyat almak istiyorum.",
	})
	if !gateway.IsUnconfigured(err) {
		t.Fatalf("expected unconfigured error from degraded submit, got %v", err)
	}
}

func TestContactServiceSubmitRejectsMissingFields(t *testing.T) {
	svc := content.NewContactService(gateway.NewMemory())

	err := svc.Submit(context.Background(), content.SubmitContactRequest{Name: "Ad"})
	if !errors.Is(err, schema.ErrPayloadInvalid) {
		t.Fatalf("expected payload validation error, got %v", err)
	}
}

func TestSettingsSnapshotFallsBackToDefaults(t *testing.T) {
	svc := content.NewSettingService(gateway.NewMemory())

	snapshot, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if got := snapshot.CompanyName(); got != "Servet Dekorasyon" {
		t.Fatalf("unexpected default company name: %q", got)
	}
	if got := snapshot.WhatsAppNumber(); got != "905551234567" {
		t.Fatalf("unexpected default whatsapp number: %q", got)
	}
}

func TestSettingServiceUpsertInsertsThenUpdates(t *testing.T) {
	gw := gateway.NewMemory()
	svc := content.NewSettingService(gw)
	ctx := context.Background()

	if err := svc.Upsert(ctx, content.SettingCompanyName, "Dekor A.Ş.", content.SettingText); err != nil {
		t.Fatalf("upsert insert: %v", err)
	}
	if err := svc.Upsert(ctx, content.SettingCompanyName, "Dekor Ltd.", content.SettingText); err != nil {
		t.Fatalf("upsert update: %v", err)
	}

	settings, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list settings: %v", err)
	}
	if len(settings) != 1 {
		t.Fatalf("expected single setting row, got %d", len(settings))
	}
	if settings[0].Value != "Dekor Ltd." {
		t.Fatalf("expected updated value, got %q", settings[0].Value)
	}

	snapshot, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if got := snapshot.CompanyName(); got != "Dekor Ltd." {
		t.Fatalf("expected stored value to win, got %q", got)
	}
}

func TestPartnerServiceListActiveFiltersInactive(t *testing.T) {
	gw := gateway.NewMemory()
	gw.Seed(content.CollectionPartners, []gateway.Record{
		{Fields: map[string]any{"name": "Vitra", "logo_url": "v.png", "order_index": 1, "active": true}},
		{Fields: map[string]any{"name": "Eski Marka", "logo_url": "e.png", "order_index": 2, "active": false}},
	})
	svc := content.NewPartnerService(gw)

	partners, err := svc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("list active partners: %v", err)
	}
	if len(partners) != 1 || partners[0].Name != "Vitra" {
		t.Fatalf("expected only active partner, got %+v", partners)
	}

	all, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list all partners: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 partners for admin, got %d", len(all))
	}
}

func TestPartnerServiceFallsBackWhenEmpty(t *testing.T) {
	svc := content.NewPartnerService(gateway.NewMemory())

	partners, err := svc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("list partners: %v", err)
	}
	if len(partners) != 5 {
		t.Fatalf("expected 5 demo partners, got %d", len(partners))
	}
}
