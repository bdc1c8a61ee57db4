package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	website "github.com/servetdekorasyon/website"
	"github.com/servetdekorasyon/website/content"
	"github.com/servetdekorasyon/website/gateway"
	"github.com/servetdekorasyon/website/internal/admin"
	"github.com/servetdekorasyon/website/internal/auth"
	contactscmd "github.com/servetdekorasyon/website/internal/commands/contacts"
	offeringscmd "github.com/servetdekorasyon/website/internal/commands/offerings"
	partnerscmd "github.com/servetdekorasyon/website/internal/commands/partners"
	postscmd "github.com/servetdekorasyon/website/internal/commands/posts"
	referencescmd "github.com/servetdekorasyon/website/internal/commands/references"
	settingscmd "github.com/servetdekorasyon/website/internal/commands/settings"
	"github.com/servetdekorasyon/website/internal/openapi"
	"github.com/servetdekorasyon/website/internal/schema"
)

const apiVersion = "1.0.0"

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the site JSON API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			module, err := website.New(cfg)
			if err != nil {
				return err
			}
			defer module.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := &http.Server{
				Addr:              cfg.Server.ListenAddr,
				Handler:           newAPIHandler(module),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}
}

type apiHandler struct {
	module *website.Module
}

func newAPIHandler(module *website.Module) http.Handler {
	api := &apiHandler{module: module}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", api.health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(module.Container().Registry(), promhttp.HandlerOpts{}))
	mux.HandleFunc("GET /api/openapi.json", api.openapiDocument)

	mux.HandleFunc("GET /api/posts", api.listPosts)
	mux.HandleFunc("GET /api/posts/{slug}", api.getPost)
	mux.HandleFunc("GET /api/services", api.listOfferings)
	mux.HandleFunc("GET /api/references", api.listReferences)
	mux.HandleFunc("GET /api/partners", api.listPartners)
	mux.HandleFunc("GET /api/site", api.siteInfo)
	mux.HandleFunc("POST /api/contact", api.submitContact)

	mux.HandleFunc("GET /api/admin/dashboard", api.adminDashboard)
	mux.HandleFunc("POST /api/admin/posts", api.adminCreatePost)
	mux.HandleFunc("PATCH /api/admin/posts/{id}", api.adminUpdatePost)
	mux.HandleFunc("DELETE /api/admin/posts/{id}", api.adminDeletePost)
	mux.HandleFunc("POST /api/admin/services", api.adminCreateOffering)
	mux.HandleFunc("PATCH /api/admin/services/{id}", api.adminUpdateOffering)
	mux.HandleFunc("DELETE /api/admin/services/{id}", api.adminDeleteOffering)
	mux.HandleFunc("POST /api/admin/references", api.adminCreateReference)
	mux.HandleFunc("PATCH /api/admin/references/{id}", api.adminUpdateReference)
	mux.HandleFunc("DELETE /api/admin/references/{id}", api.adminDeleteReference)
	mux.HandleFunc("GET /api/admin/contacts", api.adminListContacts)
	mux.HandleFunc("DELETE /api/admin/contacts/{id}", api.adminDeleteContact)
	mux.HandleFunc("GET /api/admin/settings", api.adminListSettings)
	mux.HandleFunc("PUT /api/admin/settings/{key}", api.adminUpsertSetting)
	mux.HandleFunc("GET /api/admin/partners", api.adminListPartners)
	mux.HandleFunc("POST /api/admin/partners", api.adminCreatePartner)
	mux.HandleFunc("PATCH /api/admin/partners/{id}", api.adminUpdatePartner)
	mux.HandleFunc("DELETE /api/admin/partners/{id}", api.adminDeletePartner)

	return mux
}

func (h *apiHandler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"mode":   string(h.module.Gateway().Mode()),
	})
}

func (h *apiHandler) openapiDocument(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, openapi.SiteDocument(apiVersion))
}

func (h *apiHandler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.module.Posts().List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (h *apiHandler) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.module.Posts().GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (h *apiHandler) listOfferings(w http.ResponseWriter, r *http.Request) {
	offerings, err := h.module.Offerings().List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, offerings)
}

func (h *apiHandler) listReferences(w http.ResponseWriter, r *http.Request) {
	references, err := h.module.References().List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, references)
}

func (h *apiHandler) listPartners(w http.ResponseWriter, r *http.Request) {
	partners, err := h.module.Partners().ListActive(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, partners)
}

// siteInfo returns the public chrome settings plus the resolved WhatsApp
// link so the front end does not rebuild it.
func (h *apiHandler) siteInfo(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.module.Settings().Load(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	whatsapp, err := h.module.Links().WhatsApp(snapshot.WhatsAppNumber(), snapshot.WhatsAppMessage())
	if err != nil {
		whatsapp = ""
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"company_name":  snapshot.CompanyName(),
		"site_logo":     snapshot.SiteLogo(),
		"whatsapp_link": whatsapp,
	})
}

func (h *apiHandler) submitContact(w http.ResponseWriter, r *http.Request) {
	var req content.SubmitContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}
	if err := h.module.Contacts().Submit(r.Context(), req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "received"})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return token
	}
	return ""
}

func (h *apiHandler) adminDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.module.Admin().Dashboard(r.Context(), bearerToken(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

func (h *apiHandler) adminCreatePost(w http.ResponseWriter, r *http.Request) {
	var cmd postscmd.CreatePostCommand
	if !decodeBody(w, r, &cmd) {
		return
	}
	respond(w, h.module.Admin().CreatePost(r.Context(), bearerToken(r), cmd), http.StatusCreated)
}

func (h *apiHandler) adminUpdatePost(w http.ResponseWriter, r *http.Request) {
	var cmd postscmd.UpdatePostCommand
	if !decodeBody(w, r, &cmd) {
		return
	}
	cmd.ID = r.PathValue("id")
	respond(w, h.module.Admin().UpdatePost(r.Context(), bearerToken(r), cmd), http.StatusOK)
}

func (h *apiHandler) adminDeletePost(w http.ResponseWriter, r *http.Request) {
	cmd := postscmd.DeletePostCommand{ID: r.PathValue("id")}
	respond(w, h.module.Admin().DeletePost(r.Context(), bearerToken(r), cmd), http.StatusOK)
}

func (h *apiHandler) adminCreateOffering(w http.ResponseWriter, r *http.Request) {
	var cmd offeringscmd.CreateOfferingCommand
	if !decodeBody(w, r, &cmd) {
		return
	}
	respond(w, h.module.Admin().CreateOffering(r.Context(), bearerToken(r), cmd), http.StatusCreated)
}

func (h *apiHandler) adminUpdateOffering(w http.ResponseWriter, r *http.Request) {
	var cmd offeringscmd.UpdateOfferingCommand
	if !decodeBody(w, r, &cmd) {
		return
	}
	cmd.ID = r.PathValue("id")
	respond(w, h.module.Admin().UpdateOffering(r.Context(), bearerToken(r), cmd), http.StatusOK)
}

func (h *apiHandler) adminDeleteOffering(w http.ResponseWriter, r *http.Request) {
	cmd := offeringscmd.DeleteOfferingCommand{ID: r.PathValue("id")}
	respond(w, h.module.Admin().DeleteOffering(r.Context(), bearerToken(r), cmd), http.StatusOK)
}

func (h *apiHandler) adminCreateReference(w http.ResponseWriter, r *http.Request) {
	var cmd referencescmd.CreateReferenceCommand
	if !decodeBody(w, r, &cmd) {
		return
	}
	respond(w, h.module.Admin().CreateReference(r.Context(), bearerToken(r), cmd), http.StatusCreated)
}

func (h *apiHandler) adminUpdateReference(w http.ResponseWriter, r *http.Request) {
	var cmd referencescmd.UpdateReferenceCommand
	if !decodeBody(w, r, &cmd) {
		return
	}
	cmd.ID = r.PathValue("id")
	respond(w, h.module.Admin().UpdateReference(r.Context(), bearerToken(r), cmd), http.StatusOK)
}

func (h *apiHandler) adminDeleteReference(w http.ResponseWriter, r *http.Request) {
	cmd := referencescmd.DeleteReferenceCommand{ID: r.PathValue("id")}
	respond(w, h.module.Admin().DeleteReference(r.Context(), bearerToken(r), cmd), http.StatusOK)
}

func (h *apiHandler) adminListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.module.Admin().ListContacts(r.Context(), bearerToken(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

func (h *apiHandler) adminDeleteContact(w http.ResponseWriter, r *http.Request) {
	cmd := contactscmd.DeleteContactCommand{ID: r.PathValue("id")}
	respond(w, h.module.Admin().DeleteContact(r.Context(), bearerToken(r), cmd), http.StatusOK)
}

func (h *apiHandler) adminListSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.module.Admin().ListSettings(r.Context(), bearerToken(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *apiHandler) adminUpsertSetting(w http.ResponseWriter, r *http.Request) {
	var cmd settingscmd.UpsertSettingCommand
	if !decodeBody(w, r, &cmd) {
		return
	}
	cmd.Key = r.PathValue("key")
	respond(w, h.module.Admin().UpsertSetting(r.Context(), bearerToken(r), cmd), http.StatusOK)
}

func (h *apiHandler) adminListPartners(w http.ResponseWriter, r *http.Request) {
	partners, err := h.module.Admin().ListPartners(r.Context(), bearerToken(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, partners)
}

func (h *apiHandler) adminCreatePartner(w http.ResponseWriter, r *http.Request) {
	var cmd partnerscmd.CreatePartnerCommand
	if !decodeBody(w, r, &cmd) {
		return
	}
	respond(w, h.module.Admin().CreatePartner(r.Context(), bearerToken(r), cmd), http.StatusCreated)
}

func (h *apiHandler) adminUpdatePartner(w http.ResponseWriter, r *http.Request) {
	var cmd partnerscmd.UpdatePartnerCommand
	if !decodeBody(w, r, &cmd) {
		return
	}
	cmd.ID = r.PathValue("id")
	respond(w, h.module.Admin().UpdatePartner(r.Context(), bearerToken(r), cmd), http.StatusOK)
}

func (h *apiHandler) adminDeletePartner(w http.ResponseWriter, r *http.Request) {
	cmd := partnerscmd.DeletePartnerCommand{ID: r.PathValue("id")}
	respond(w, h.module.Admin().DeletePartner(r.Context(), bearerToken(r), cmd), http.StatusOK)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return false
	}
	return true
}

func respond(w http.ResponseWriter, err error, okStatus int) {
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, okStatus, map[string]string{"status": "ok"})
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, admin.ErrUnauthorized), errors.Is(err, auth.ErrDemoMode), errors.Is(err, auth.ErrTokenRequired):
		status = http.StatusUnauthorized
	case errors.Is(err, content.ErrPostNotFound), gateway.IsNotFound(err):
		status = http.StatusNotFound
	case errors.Is(err, content.ErrSlugExists):
		status = http.StatusConflict
	case errors.Is(err, schema.ErrPayloadInvalid),
		errors.Is(err, content.ErrTitleRequired),
		errors.Is(err, content.ErrSlugInvalid),
		errors.Is(err, content.ErrIconInvalid),
		goerrors.IsCategory(err, goerrors.CategoryValidation):
		status = http.StatusUnprocessableEntity
	case gateway.IsRejected(err):
		status = http.StatusBadGateway
	case gateway.IsNetwork(err), gateway.IsUnconfigured(err):
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
