package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	website "github.com/servetdekorasyon/website"
	"github.com/servetdekorasyon/website/gateway"
	"github.com/servetdekorasyon/website/internal/di"
	"github.com/servetdekorasyon/website/pkg/interfaces"
)

type staticVerifier struct{}

func (staticVerifier) Verify(_ context.Context, token string) (*interfaces.Session, error) {
	if token == "admin-token" {
		return &interfaces.Session{UserID: "admin", Email: "admin@example.com"}, nil
	}
	return nil, nil
}

func newTestAPI(t *testing.T) http.Handler {
	t.Helper()
	module, err := website.New(website.DefaultConfig(),
		di.WithGateway(gateway.NewMemory()),
		di.WithSessionVerifier(staticVerifier{}),
	)
	if err != nil {
		t.Fatalf("build module: %v", err)
	}
	t.Cleanup(func() { _ = module.Close() })
	return newAPIHandler(module)
}

func TestAdminCreatePostRejectsInvalidInput(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/posts", strings.NewReader(`{"content":"no title"}`))
	req.Header.Set("Authorization", "Bearer admin-token")
	res := httptest.NewRecorder()
	api.ServeHTTP(res, req)

	if res.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for missing title, got %d: %s", res.Code, res.Body.String())
	}
}

func TestAdminCreatePostRequiresSession(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/posts", strings.NewReader(`{"title":"Yeni Yazı"}`))
	req.Header.Set("Authorization", "Bearer wrong-token")
	res := httptest.NewRecorder()
	api.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a session, got %d", res.Code)
	}
}

func TestContactSubmitOnUnconfiguredBackendIsUnavailable(t *testing.T) {
	module, err := website.New(website.DefaultConfig(), di.WithSessionVerifier(staticVerifier{}))
	if err != nil {
		t.Fatalf("build module: %v", err)
	}
	t.Cleanup(func() { _ = module.Close() })
	api := newAPIHandler(module)

	body := `{"Name":"Ayşe","Email":"ayse@example.com","Phone":"05551234567","Message":"Fiyat almak istiyorum."}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	res := httptest.NewRecorder()
	api.ServeHTTP(res, req)

	if res.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 from unconfigured backend, got %d: %s", res.Code, res.Body.String())
	}
}
