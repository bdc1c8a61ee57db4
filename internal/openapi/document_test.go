package openapi_test

import (
	"encoding/json"
	"testing"

	"github.com/servetdekorasyon/website/internal/openapi"
)

func TestSiteDocumentCoversPublicAndAdminPaths(t *testing.T) {
	doc := openapi.SiteDocument("1.0.0")

	if doc.OpenAPI != "3.0.3" {
		t.Fatalf("unexpected openapi version %q", doc.OpenAPI)
	}
	for _, path := range []string{
		"/api/posts",
		"/api/posts/{slug}",
		"/api/contact",
		"/api/admin/settings/{key}",
		"/api/admin/partners/{id}",
	} {
		if _, ok := doc.Paths[path]; !ok {
			t.Errorf("missing path %s", path)
		}
	}

	item, _ := doc.Paths["/api/admin/partners"].(map[string]any)
	if item == nil {
		t.Fatal("missing /api/admin/partners")
	}
	if _, ok := item["get"]; !ok {
		t.Error("expected get operation on /api/admin/partners")
	}
	if _, ok := item["post"]; !ok {
		t.Error("expected post operation on /api/admin/partners")
	}
}

func TestSiteDocumentEmbedsCollectionSchemas(t *testing.T) {
	doc := openapi.SiteDocument("1.0.0")

	for _, name := range []string{"posts", "services", "references", "contacts", "settings", "partners"} {
		src, ok := doc.Components.Schemas[name]
		if !ok {
			t.Fatalf("missing schema %s", name)
		}
		var decoded map[string]any
		if err := json.Unmarshal(src, &decoded); err != nil {
			t.Fatalf("schema %s is not valid JSON: %v", name, err)
		}
	}
}

func TestSiteDocumentSerializes(t *testing.T) {
	raw, err := json.Marshal(openapi.SiteDocument("1.0.0"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var round openapi.Document
	if err := json.Unmarshal(raw, &round); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if round.Info.Title == "" || round.Info.Version != "1.0.0" {
		t.Fatalf("unexpected info %+v", round.Info)
	}
}
