// Package openapi describes the site JSON API as an OpenAPI document so
// front-end and tooling consumers can discover endpoints without reading
// the server source.
package openapi

import (
	"encoding/json"

	"github.com/servetdekorasyon/website/internal/schema"
)

// Document is a minimal OpenAPI 3 document.
type Document struct {
	OpenAPI    string         `json:"openapi"`
	Info       Info           `json:"info"`
	Paths      map[string]any `json:"paths"`
	Components Components     `json:"components,omitempty"`
}

// Info captures document metadata.
type Info struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

// Components aggregates reusable schema definitions.
type Components struct {
	Schemas map[string]json.RawMessage `json:"schemas,omitempty"`
}

// NewDocument constructs an empty document with the given metadata.
func NewDocument(title, version string) *Document {
	return &Document{
		OpenAPI: "3.0.3",
		Info:    Info{Title: title, Version: version},
		Paths:   map[string]any{},
	}
}

// AddSchema registers a component schema under name.
func (d *Document) AddSchema(name string, src json.RawMessage) {
	if d == nil || name == "" || len(src) == 0 {
		return
	}
	if d.Components.Schemas == nil {
		d.Components.Schemas = map[string]json.RawMessage{}
	}
	d.Components.Schemas[name] = src
}

// AddOperation registers a single operation on a path.
func (d *Document) AddOperation(path, method, summary string) {
	if d == nil || path == "" || method == "" {
		return
	}
	item, _ := d.Paths[path].(map[string]any)
	if item == nil {
		item = map[string]any{}
	}
	item[method] = map[string]any{"summary": summary}
	d.Paths[path] = item
}

// SiteDocument builds the document for the public and admin site API.
// Collection payload schemas come from the same definitions the write
// path validates against.
func SiteDocument(version string) *Document {
	doc := NewDocument("Servet Dekorasyon Site API", version)

	for name, src := range schema.RawSchemas() {
		doc.AddSchema(name, src)
	}

	doc.AddOperation("/healthz", "get", "Service health and gateway mode")
	doc.AddOperation("/api/posts", "get", "List published blog posts")
	doc.AddOperation("/api/posts/{slug}", "get", "Fetch a blog post by slug")
	doc.AddOperation("/api/services", "get", "List service offerings")
	doc.AddOperation("/api/references", "get", "List project references")
	doc.AddOperation("/api/partners", "get", "List active brand partners")
	doc.AddOperation("/api/site", "get", "Site chrome settings and WhatsApp link")
	doc.AddOperation("/api/contact", "post", "Submit a contact request")

	doc.AddOperation("/api/admin/dashboard", "get", "Collection counts and recent activity")
	doc.AddOperation("/api/admin/posts", "post", "Create a blog post")
	doc.AddOperation("/api/admin/posts/{id}", "patch", "Update a blog post")
	doc.AddOperation("/api/admin/posts/{id}", "delete", "Delete a blog post")
	doc.AddOperation("/api/admin/services", "post", "Create a service offering")
	doc.AddOperation("/api/admin/services/{id}", "patch", "Update a service offering")
	doc.AddOperation("/api/admin/services/{id}", "delete", "Delete a service offering")
	doc.AddOperation("/api/admin/references", "post", "Create a project reference")
	doc.AddOperation("/api/admin/references/{id}", "patch", "Update a project reference")
	doc.AddOperation("/api/admin/references/{id}", "delete", "Delete a project reference")
	doc.AddOperation("/api/admin/contacts", "get", "List contact submissions")
	doc.AddOperation("/api/admin/contacts/{id}", "delete", "Delete a contact submission")
	doc.AddOperation("/api/admin/settings", "get", "List site settings")
	doc.AddOperation("/api/admin/settings/{key}", "put", "Create or update a site setting")
	doc.AddOperation("/api/admin/partners", "get", "List all brand partners")
	doc.AddOperation("/api/admin/partners", "post", "Create a brand partner")
	doc.AddOperation("/api/admin/partners/{id}", "patch", "Update a brand partner")
	doc.AddOperation("/api/admin/partners/{id}", "delete", "Delete a brand partner")

	return doc
}
