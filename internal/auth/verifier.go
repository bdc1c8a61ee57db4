// Package auth verifies admin sessions against the remote backend's auth
// endpoint. In degraded mode there is no auth subsystem to talk to, so the
// admin panel stays locked and reports demo mode instead.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/servetdekorasyon/website/gateway"
	"github.com/servetdekorasyon/website/internal/logging"
	"github.com/servetdekorasyon/website/pkg/interfaces"
)

var (
	// ErrDemoMode indicates the backend is unconfigured; the public site
	// runs on fallback content and the admin panel cannot be entered.
	ErrDemoMode = errors.New("auth: admin login unavailable in demo mode")
	// ErrTokenRequired rejects an empty access token.
	ErrTokenRequired = errors.New("auth: access token required")
)

const verifyTimeout = 10 * time.Second

// Verifier checks bearer tokens against the backend's user endpoint.
type Verifier struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  interfaces.Logger
}

// VerifierOption configures a Verifier.
type VerifierOption func(*Verifier)

// WithHTTPClient overrides the HTTP client, mainly for tests.
func WithHTTPClient(client *http.Client) VerifierOption {
	return func(v *Verifier) {
		if client != nil {
			v.client = client
		}
	}
}

// WithLogger injects the verifier logger.
func WithLogger(logger interfaces.Logger) VerifierOption {
	return func(v *Verifier) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// NewVerifier constructs a SessionVerifier for the configured backend.
// Degraded configurations yield a verifier that always reports demo mode.
func NewVerifier(cfg gateway.Config, opts ...VerifierOption) interfaces.SessionVerifier {
	if cfg.ResolveMode() == gateway.ModeDegraded {
		return demoVerifier{}
	}

	v := &Verifier{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: verifyTimeout},
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

type supabaseUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Verify implements interfaces.SessionVerifier. A rejected token yields
// (nil, nil); only transport problems surface as errors.
func (v *Verifier) Verify(ctx context.Context, accessToken string) (*interfaces.Session, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, ErrTokenRequired
	}

	endpoint, err := url.JoinPath(v.baseURL, "auth", "v1", "user")
	if err != nil {
		return nil, fmt.Errorf("auth: build verify url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("auth: build verify request: %w", err)
	}
	req.Header.Set("apikey", v.apiKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := v.client.Do(req)
	if err != nil {
		v.logger.Warn("auth.verify_transport_failed", "error", err)
		return nil, fmt.Errorf("auth: verify session: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var user supabaseUser
		if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
			return nil, fmt.Errorf("auth: decode user: %w", err)
		}
		return &interfaces.Session{UserID: user.ID, Email: user.Email}, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		v.logger.Debug("auth.verify_rejected", "status", resp.StatusCode)
		return nil, nil
	default:
		return nil, fmt.Errorf("auth: verify session: unexpected status %d", resp.StatusCode)
	}
}

type demoVerifier struct{}

func (demoVerifier) Verify(context.Context, string) (*interfaces.Session, error) {
	return nil, ErrDemoMode
}
