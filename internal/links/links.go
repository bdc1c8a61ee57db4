// Package links builds the site's outbound and internal URLs from one
// route table, so paths are not scattered through templates and handlers.
package links

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

const (
	groupSite     = "site"
	groupWhatsApp = "whatsapp"
)

// Config carries the base URLs for the route table.
type Config struct {
	// SiteBaseURL is the public origin, e.g. "https://servetdekorasyon.com".
	SiteBaseURL string
}

// Resolver builds URLs from the configured route manager.
type Resolver struct {
	manager *urlkit.RouteManager
}

// New constructs a Resolver with the site and WhatsApp route groups.
func New(cfg Config) *Resolver {
	base := strings.TrimRight(strings.TrimSpace(cfg.SiteBaseURL), "/")

	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    groupSite,
				BaseURL: base,
				Paths: map[string]string{
					"home":       "/",
					"services":   "/hizmetler",
					"references": "/referanslar",
					"blog":       "/blog",
					"post":       "/blog/:slug",
					"contact":    "/iletisim",
					"admin":      "/admin",
				},
			},
			{
				Name:    groupWhatsApp,
				BaseURL: "https://wa.me",
				Paths: map[string]string{
					"chat": "/:number",
				},
			},
		},
	})

	return &Resolver{manager: manager}
}

// WhatsApp builds a click-to-chat link for the given number and prefilled
// message. Non-digit characters in the number are stripped to match the
// wa.me format.
func (r *Resolver) WhatsApp(number, message string) (string, error) {
	digits := digitsOnly(number)
	if digits == "" {
		return "", fmt.Errorf("links: whatsapp number has no digits: %q", number)
	}

	builder, err := r.builder(groupWhatsApp, "chat")
	if err != nil {
		return "", err
	}
	builder.WithParam("number", digits)
	if strings.TrimSpace(message) != "" {
		builder.WithQuery("text", message)
	}
	return builder.Build()
}

// Post builds the canonical URL of a blog post.
func (r *Resolver) Post(slug string) (string, error) {
	builder, err := r.builder(groupSite, "post")
	if err != nil {
		return "", err
	}
	builder.WithParam("slug", slug)
	return builder.Build()
}

// Page builds the URL of a named top-level page: home, services,
// references, blog, contact, or admin.
func (r *Resolver) Page(name string) (string, error) {
	builder, err := r.builder(groupSite, name)
	if err != nil {
		return "", err
	}
	return builder.Build()
}

// builder resolves a route builder, converting urlkit's panics on unknown
// names into errors.
func (r *Resolver) builder(groupName, route string) (builder *urlkit.Builder, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("links: route %s.%s not found: %v", groupName, route, rec)
		}
	}()
	builder = r.manager.Group(groupName).Builder(route)
	return builder, err
}

func digitsOnly(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
