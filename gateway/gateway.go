package gateway

import (
	"context"
	"net/url"
	"strings"
)

// Mode reports how the gateway was resolved at construction time. The mode
// never changes for the lifetime of a gateway instance, so call sites do not
// need to re-check configuration before every operation.
type Mode string

const (
	// ModeLive means the gateway talks to the configured remote backend.
	ModeLive Mode = "live"
	// ModeDegraded means configuration was absent or malformed; every
	// operation is a safe no-op and reads yield empty results.
	ModeDegraded Mode = "degraded"
)

// Record is one item inside a named collection. The backend owns identifier
// assignment; clients only carry ids they previously read.
type Record struct {
	Collection string
	ID         string
	Fields     map[string]any
}

// String returns the string value of a field, or "" when absent or non-string.
func (r Record) String(field string) string {
	if r.Fields == nil {
		return ""
	}
	if v, ok := r.Fields[field].(string); ok {
		return v
	}
	return ""
}

// Bool returns the boolean value of a field, defaulting to false.
func (r Record) Bool(field string) bool {
	if r.Fields == nil {
		return false
	}
	if v, ok := r.Fields[field].(bool); ok {
		return v
	}
	return false
}

// Int returns the integer value of a field. JSON decoding produces float64,
// so both representations are accepted.
func (r Record) Int(field string) int {
	if r.Fields == nil {
		return 0
	}
	switch v := r.Fields[field].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// Service is the uniform contract for reading and writing named collections
// on the remote backend. Implementations must never panic on backend
// failures; the failure taxonomy in errors.go is the only escape channel.
type Service interface {
	// Mode reports whether the gateway is live or degraded.
	Mode() Mode

	// FetchCollection lists records matching the query. Degraded gateways
	// return an empty slice and no error.
	FetchCollection(ctx context.Context, name string, query Query) ([]Record, error)

	// InsertRecord creates a record from the supplied fields and returns the
	// stored representation, including the backend-assigned id.
	InsertRecord(ctx context.Context, name string, fields map[string]any) (*Record, error)

	// UpdateRecord applies a partial field update to the identified record.
	UpdateRecord(ctx context.Context, name, id string, fields map[string]any) error

	// DeleteRecord removes the identified record.
	DeleteRecord(ctx context.Context, name, id string) error

	// ResolveOne finds a single record by a unique field match. A missing
	// record yields ErrNotFound so callers can distinguish absence from
	// transport failure.
	ResolveOne(ctx context.Context, name, matchField string, matchValue any) (*Record, error)
}

// Config carries the two externally supplied values that select between live
// and degraded operation.
type Config struct {
	// BaseURL is the backend service endpoint, e.g. https://project.supabase.co.
	BaseURL string
	// APIKey is the anonymous access credential sent with every request.
	APIKey string
}

// ResolveMode decides once, at construction, whether the configuration is
// usable. Absent values or a malformed endpoint select degraded mode.
func (c Config) ResolveMode() Mode {
	base := strings.TrimSpace(c.BaseURL)
	if base == "" || strings.TrimSpace(c.APIKey) == "" {
		return ModeDegraded
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ModeDegraded
	}
	return ModeLive
}
