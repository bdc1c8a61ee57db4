package localstore_test

import (
	"context"
	"testing"

	"github.com/servetdekorasyon/website/gateway"
	"github.com/servetdekorasyon/website/gateway/localstore"
	"github.com/servetdekorasyon/website/pkg/testsupport"
)

func newStoreFixture(t *testing.T) *localstore.Store {
	t.Helper()

	db, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store := localstore.New(db, nil)
	if err := store.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return store
}

func TestStoreInsertFetchRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newStoreFixture(t)

	first, err := store.InsertRecord(ctx, "references", map[string]any{
		"title":       "Modern Banyo",
		"description": "Komple yenileme",
		"image_url":   "https://example.com/banyo.jpg",
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected assigned id")
	}
	if _, err := store.InsertRecord(ctx, "references", map[string]any{"title": "Mutfak"}); err != nil {
		t.Fatalf("insert second: %v", err)
	}

	records, err := store.FetchCollection(ctx, "references", gateway.Query{})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].String("title") != "Modern Banyo" {
		t.Fatalf("unexpected record %+v", records[0])
	}
}

func TestStoreQuerySemanticsMatchGateway(t *testing.T) {
	ctx := context.Background()
	store := newStoreFixture(t)

	for _, partner := range []map[string]any{
		{"name": "Vitra", "active": true, "order_index": 2},
		{"name": "Artema", "active": true, "order_index": 1},
		{"name": "Pasif", "active": false, "order_index": 3},
	} {
		if _, err := store.InsertRecord(ctx, "partners", partner); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	records, err := store.FetchCollection(ctx, "partners",
		gateway.Query{}.Where("active", true).Order("order_index", gateway.Ascending))
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 active partners, got %d", len(records))
	}
	if records[0].String("name") != "Artema" || records[1].String("name") != "Vitra" {
		t.Fatalf("unexpected order: %s, %s", records[0].String("name"), records[1].String("name"))
	}
}

func TestStoreUpdateDeleteResolve(t *testing.T) {
	ctx := context.Background()
	store := newStoreFixture(t)

	record, err := store.InsertRecord(ctx, "settings", map[string]any{"key": "company_name", "value": "Eski Ad"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := store.UpdateRecord(ctx, "settings", record.ID, map[string]any{"value": "Servet Dekorasyon"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	resolved, err := store.ResolveOne(ctx, "settings", "key", "company_name")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.String("value") != "Servet Dekorasyon" {
		t.Fatalf("update not visible: %+v", resolved)
	}

	if err := store.DeleteRecord(ctx, "settings", record.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.ResolveOne(ctx, "settings", "key", "company_name"); !gateway.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
	if err := store.DeleteRecord(ctx, "settings", record.ID); !gateway.IsRejected(err) {
		t.Fatalf("expected rejection for repeated delete, got %v", err)
	}
}
