// Package schema validates collection payloads before they are written
// through the gateway, so malformed admin input surfaces as a structured
// rejection instead of a backend constraint error.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrUnknownCollection = errors.New("schema: unknown collection")
	ErrPayloadInvalid    = errors.New("schema: payload validation failed")
)

// Issue captures a single validation failure.
type Issue struct {
	Location string
	Message  string
}

// PayloadError surfaces validation issues with schema-aware context.
type PayloadError struct {
	Collection string
	Issues     []Issue
}

func (e *PayloadError) Error() string {
	if len(e.Issues) == 0 {
		return fmt.Sprintf("%s: %s", ErrPayloadInvalid.Error(), e.Collection)
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return fmt.Sprintf("%s: %s", e.Collection, strings.Join(parts, "; "))
}

func (e *PayloadError) Unwrap() error {
	return ErrPayloadInvalid
}

const (
	postsSchema = `{
		"type": "object",
		"required": ["title", "content", "excerpt", "category", "author", "slug"],
		"properties": {
			"title":          {"type": "string", "minLength": 1},
			"content":        {"type": "string", "minLength": 1},
			"excerpt":        {"type": "string"},
			"category":       {"type": "string", "minLength": 1},
			"author":         {"type": "string"},
			"published_date": {"type": "string"},
			"slug":           {"type": "string", "pattern": "^[a-z0-9]+(?:-[a-z0-9]+)*$"},
			"published":      {"type": "boolean"}
		}
	}`
	referencesSchema = `{
		"type": "object",
		"required": ["image_url", "title"],
		"properties": {
			"image_url":   {"type": "string", "minLength": 1},
			"title":       {"type": "string", "minLength": 1},
			"description": {"type": "string"}
		}
	}`
	offeringsSchema = `{
		"type": "object",
		"required": ["title", "description", "icon", "order_index"],
		"properties": {
			"title":       {"type": "string", "minLength": 1},
			"description": {"type": "string", "minLength": 1},
			"icon":        {"type": "string", "enum": ["Bath", "Palette", "Wrench", "Hammer", "Lightbulb", "Home", "Settings", "Star"]},
			"order_index": {"type": "integer", "minimum": 0}
		}
	}`
	contactsSchema = `{
		"type": "object",
		"required": ["name", "email", "message"],
		"properties": {
			"name":    {"type": "string", "minLength": 1},
			"email":   {"type": "string", "minLength": 3},
			"phone":   {"type": "string"},
			"message": {"type": "string", "minLength": 1}
		}
	}`
	settingsSchema = `{
		"type": "object",
		"required": ["key", "value"],
		"properties": {
			"key":         {"type": "string", "minLength": 1},
			"value":       {"type": "string"},
			"type":        {"type": "string", "enum": ["text", "image_url"]},
			"description": {"type": "string"}
		}
	}`
	partnersSchema = `{
		"type": "object",
		"required": ["name", "logo_url", "order_index"],
		"properties": {
			"name":        {"type": "string", "minLength": 1},
			"logo_url":    {"type": "string"},
			"website_url": {"type": "string"},
			"order_index": {"type": "integer", "minimum": 0},
			"active":      {"type": "boolean"}
		}
	}`
)

var collectionSchemas = map[string]string{
	"posts":      postsSchema,
	"references": referencesSchema,
	"services":   offeringsSchema,
	"contacts":   contactsSchema,
	"settings":   settingsSchema,
	"partners":   partnersSchema,
}

var (
	compileOnce sync.Once
	compiled    map[string]*jsonschema.Schema
	compileErr  error
)

func compiledSchemas() (map[string]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled = make(map[string]*jsonschema.Schema, len(collectionSchemas))
		for name, doc := range collectionSchemas {
			compiler := jsonschema.NewCompiler()
			url := "site://schemas/" + name + ".json"
			if err := compiler.AddResource(url, strings.NewReader(doc)); err != nil {
				compileErr = fmt.Errorf("schema: add %s: %w", name, err)
				return
			}
			schema, err := compiler.Compile(url)
			if err != nil {
				compileErr = fmt.Errorf("schema: compile %s: %w", name, err)
				return
			}
			compiled[name] = schema
		}
	})
	return compiled, compileErr
}

// RawSchemas returns the JSON Schema source for every collection, keyed by
// collection name. Consumers embedding the schemas elsewhere (API documents,
// tooling) get the same definitions ValidatePayload enforces.
func RawSchemas() map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(collectionSchemas))
	for name, src := range collectionSchemas {
		out[name] = json.RawMessage(src)
	}
	return out
}

// ValidatePayload checks insert payload fields against the collection schema.
func ValidatePayload(collection string, fields map[string]any) error {
	schemas, err := compiledSchemas()
	if err != nil {
		return err
	}
	schema, ok := schemas[collection]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}

	value := make(map[string]any, len(fields))
	for key, val := range fields {
		value[key] = normalizeValue(val)
	}

	if err := schema.Validate(value); err != nil {
		return toPayloadError(collection, err)
	}
	return nil
}

// normalizeValue widens Go integer types so the JSON schema "integer" checks
// behave as if the payload had round-tripped through JSON.
func normalizeValue(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return v
}

func toPayloadError(collection string, err error) error {
	payloadErr := &PayloadError{Collection: collection}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		for _, cause := range flatten(validationErr) {
			payloadErr.Issues = append(payloadErr.Issues, Issue{
				Location: cause.InstanceLocation,
				Message:  cause.Message,
			})
		}
	}
	return payloadErr
}

func flatten(err *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(err.Causes) == 0 {
		return []*jsonschema.ValidationError{err}
	}
	var leaves []*jsonschema.ValidationError
	for _, cause := range err.Causes {
		leaves = append(leaves, flatten(cause)...)
	}
	return leaves
}
