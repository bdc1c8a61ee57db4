package gateway_test

import (
	"context"
	"errors"
	"testing"

	"github.com/servetdekorasyon/website/gateway"
)

func seedOfferings(t *testing.T) *gateway.Memory {
	t.Helper()

	mem := gateway.NewMemory()
	mem.Seed("services", []gateway.Record{
		{Fields: map[string]any{"title": "Banyo Tadilatı", "order_index": 2, "icon": "Bath"}},
		{Fields: map[string]any{"title": "Dekorasyon", "order_index": 1, "icon": "Palette"}},
		{Fields: map[string]any{"title": "Tesisat", "order_index": 3, "icon": "Wrench"}},
	})
	return mem
}

func TestMemoryFetchAppliesOrderAndLimit(t *testing.T) {
	mem := seedOfferings(t)

	records, err := mem.FetchCollection(context.Background(), "services",
		gateway.Query{}.Order("order_index", gateway.Ascending).Take(2))
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].String("title") != "Dekorasyon" || records[1].String("title") != "Banyo Tadilatı" {
		t.Fatalf("unexpected order: %s, %s", records[0].String("title"), records[1].String("title"))
	}
}

func TestMemoryFetchAppliesEqualityFilters(t *testing.T) {
	mem := gateway.NewMemory()
	mem.Seed("partners", []gateway.Record{
		{Fields: map[string]any{"name": "Vitra", "active": true}},
		{Fields: map[string]any{"name": "Eski Marka", "active": false}},
	})

	records, err := mem.FetchCollection(context.Background(), "partners",
		gateway.Query{}.Where("active", true))
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(records) != 1 || records[0].String("name") != "Vitra" {
		t.Fatalf("unexpected filter result: %+v", records)
	}
}

func TestMemoryInsertAssignsID(t *testing.T) {
	mem := gateway.NewMemory()
	record, err := mem.InsertRecord(context.Background(), "contacts", map[string]any{"name": "Ali"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if record.ID == "" {
		t.Fatal("expected assigned id")
	}

	found, err := mem.ResolveOne(context.Background(), "contacts", "id", record.ID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if found.String("name") != "Ali" {
		t.Fatalf("unexpected record %+v", found)
	}
}

func TestMemoryUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	mem := gateway.NewMemory()
	record, err := mem.InsertRecord(ctx, "settings", map[string]any{"key": "company_name", "value": "Eski"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := mem.UpdateRecord(ctx, "settings", record.ID, map[string]any{"value": "Yeni"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	updated, err := mem.ResolveOne(ctx, "settings", "key", "company_name")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if updated.String("value") != "Yeni" {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := mem.DeleteRecord(ctx, "settings", record.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := mem.ResolveOne(ctx, "settings", "key", "company_name"); !gateway.IsNotFound(err) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}

	if err := mem.DeleteRecord(ctx, "settings", record.ID); !gateway.IsRejected(err) {
		t.Fatalf("expected rejection for missing record, got %v", err)
	}
}

func TestMemoryFailNextPropagatesOnce(t *testing.T) {
	mem := seedOfferings(t)
	boom := errors.New("backend down")
	mem.FailNextWith(&gateway.NetworkError{Op: "fetch", Collection: "services", Err: boom})

	if _, err := mem.FetchCollection(context.Background(), "services", gateway.Query{}); !gateway.IsNetwork(err) {
		t.Fatalf("expected armed failure, got %v", err)
	}
	if _, err := mem.FetchCollection(context.Background(), "services", gateway.Query{}); err != nil {
		t.Fatalf("expected recovery after one-shot failure, got %v", err)
	}
}
