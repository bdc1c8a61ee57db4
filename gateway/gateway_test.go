package gateway_test

import (
	"context"
	"testing"

	"github.com/servetdekorasyon/website/gateway"
)

func TestResolveModeDegradesOnBadConfiguration(t *testing.T) {
	cases := []struct {
		name string
		cfg  gateway.Config
		want gateway.Mode
	}{
		{"empty", gateway.Config{}, gateway.ModeDegraded},
		{"missing key", gateway.Config{BaseURL: "https://demo.supabase.co"}, gateway.ModeDegraded},
		{"missing url", gateway.Config{APIKey: "anon"}, gateway.ModeDegraded},
		{"malformed url", gateway.Config{BaseURL: "://not-a-url", APIKey: "anon"}, gateway.ModeDegraded},
		{"relative url", gateway.Config{BaseURL: "demo.supabase.co", APIKey: "anon"}, gateway.ModeDegraded},
		{"valid", gateway.Config{BaseURL: "https://demo.supabase.co", APIKey: "anon"}, gateway.ModeLive},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.ResolveMode(); got != tc.want {
				t.Fatalf("expected mode %s, got %s", tc.want, got)
			}
		})
	}
}

func TestDegradedGatewayReadsQuietWritesFail(t *testing.T) {
	ctx := context.Background()
	svc := gateway.New(gateway.Config{})

	if svc.Mode() != gateway.ModeDegraded {
		t.Fatalf("expected degraded mode, got %s", svc.Mode())
	}

	records, err := svc.FetchCollection(ctx, "posts", gateway.Query{})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty fetch result, got %d records", len(records))
	}

	inserted, err := svc.InsertRecord(ctx, "contacts", map[string]any{"name": "Ayşe"})
	if !gateway.IsUnconfigured(err) {
		t.Fatalf("expected unconfigured insert error, got %v", err)
	}
	if inserted != nil {
		t.Fatalf("expected no record from failed insert, got %+v", inserted)
	}

	if err := svc.UpdateRecord(ctx, "posts", "p1", map[string]any{"title": "x"}); !gateway.IsUnconfigured(err) {
		t.Fatalf("expected unconfigured update error, got %v", err)
	}
	if err := svc.DeleteRecord(ctx, "posts", "p1"); !gateway.IsUnconfigured(err) {
		t.Fatalf("expected unconfigured delete error, got %v", err)
	}

	if _, err := svc.ResolveOne(ctx, "posts", "slug", "missing"); !gateway.IsNotFound(err) {
		t.Fatalf("expected not-found from degraded resolve, got %v", err)
	}
}

func TestQueryBuilderDoesNotShareFilterBackingArrays(t *testing.T) {
	base := gateway.Query{}.Where("published", true)
	a := base.Where("category", "Tadilat")
	b := base.Where("category", "Dekorasyon")

	if got := a.Filters[1].Value; got != "Tadilat" {
		t.Fatalf("query a mutated: %v", got)
	}
	if got := b.Filters[1].Value; got != "Dekorasyon" {
		t.Fatalf("query b mutated: %v", got)
	}
}
