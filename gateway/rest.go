package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/servetdekorasyon/website/internal/logging"
	"github.com/servetdekorasyon/website/pkg/interfaces"
)

const defaultRequestTimeout = 10 * time.Second

// Option configures a gateway built by New.
type Option func(*options)

type options struct {
	httpClient *http.Client
	logger     interfaces.Logger
}

// WithHTTPClient overrides the HTTP client used for backend calls.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithLogger injects the logger used for gateway diagnostics.
func WithLogger(logger interfaces.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New builds a gateway from the supplied configuration. Missing or malformed
// configuration yields a degraded gateway rather than an error, so the rest
// of the application never special-cases "is the backend configured".
func New(cfg Config, opts ...Option) Service {
	o := &options{
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		logger:     logging.NoOp(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if cfg.ResolveMode() == ModeDegraded {
		o.logger.Warn("gateway.degraded", "reason", "backend configuration absent or malformed")
		return NewDegraded(o.logger)
	}

	return &restClient{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:  strings.TrimSpace(cfg.APIKey),
		client:  o.httpClient,
		logger:  o.logger,
	}
}

// restClient talks to a Supabase-style REST backend: collections are exposed
// under /rest/v1/{name} with PostgREST query semantics.
type restClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  interfaces.Logger
}

var _ Service = (*restClient)(nil)

func (c *restClient) Mode() Mode { return ModeLive }

func (c *restClient) FetchCollection(ctx context.Context, name string, query Query) ([]Record, error) {
	endpoint := c.collectionURL(name, query)
	body, err := c.do(ctx, http.MethodGet, "fetch", name, endpoint, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return decodeRecords(name, body)
}

func (c *restClient) InsertRecord(ctx context.Context, name string, fields map[string]any) (*Record, error) {
	payload, err := json.Marshal([]map[string]any{fields})
	if err != nil {
		return nil, fmt.Errorf("gateway: encode %s insert: %w", name, err)
	}
	endpoint := c.collectionURL(name, Query{})
	body, err := c.do(ctx, http.MethodPost, "insert", name, endpoint, payload, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	records, err := decodeRecords(name, body)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &RejectedError{Op: "insert", Collection: name, Message: "backend returned no representation"}
	}
	return &records[0], nil
}

func (c *restClient) UpdateRecord(ctx context.Context, name, id string, fields map[string]any) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("gateway: encode %s update: %w", name, err)
	}
	endpoint := c.recordURL(name, id)
	_, err = c.do(ctx, http.MethodPatch, "update", name, endpoint, payload, http.StatusNoContent)
	return err
}

func (c *restClient) DeleteRecord(ctx context.Context, name, id string) error {
	endpoint := c.recordURL(name, id)
	_, err := c.do(ctx, http.MethodDelete, "delete", name, endpoint, nil, http.StatusNoContent)
	return err
}

func (c *restClient) ResolveOne(ctx context.Context, name, matchField string, matchValue any) (*Record, error) {
	query := Query{}.Where(matchField, matchValue).Take(1)
	records, err := c.FetchCollection(ctx, name, query)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return &records[0], nil
}

func (c *restClient) collectionURL(name string, query Query) string {
	values := url.Values{}
	values.Set("select", "*")
	for _, filter := range query.Filters {
		values.Set(filter.Field, "eq."+formatFilterValue(filter.Value))
	}
	if query.OrderBy != "" {
		dir := query.Direction
		if dir == "" {
			dir = Ascending
		}
		values.Set("order", query.OrderBy+"."+string(dir))
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	return fmt.Sprintf("%s/rest/v1/%s?%s", c.baseURL, url.PathEscape(name), values.Encode())
}

func (c *restClient) recordURL(name, id string) string {
	values := url.Values{}
	values.Set("id", "eq."+id)
	return fmt.Sprintf("%s/rest/v1/%s?%s", c.baseURL, url.PathEscape(name), values.Encode())
}

func (c *restClient) do(ctx context.Context, method, op, collection, endpoint string, payload []byte, want int) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("gateway: build %s request: %w", op, err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPost {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("gateway.transport_error", "op", op, "collection", collection, "error", err)
		return nil, &NetworkError{Op: op, Collection: collection, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: op, Collection: collection, Err: err}
	}

	if resp.StatusCode != want && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		rejected := decodeRejection(op, collection, resp.StatusCode, body)
		c.logger.Warn("gateway.rejected", "op", op, "collection", collection, "status", resp.StatusCode, "code", rejected.Code)
		return nil, rejected
	}

	return body, nil
}

func decodeRecords(name string, body []byte) ([]Record, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	var rows []map[string]any
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("gateway: decode %s response: %w", name, err)
	}
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, recordFromRow(name, row))
	}
	return records, nil
}

func recordFromRow(name string, row map[string]any) Record {
	record := Record{Collection: name, Fields: row}
	switch id := row["id"].(type) {
	case string:
		record.ID = id
	case float64:
		record.ID = strconv.FormatInt(int64(id), 10)
	}
	return record
}

func decodeRejection(op, collection string, status int, body []byte) *RejectedError {
	rejected := &RejectedError{Op: op, Collection: collection, Status: status}
	var detail struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	if err := json.Unmarshal(body, &detail); err == nil {
		rejected.Message = detail.Message
		rejected.Code = detail.Code
	}
	return rejected
}

func formatFilterValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
