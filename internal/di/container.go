// Package di wires the site's runtime dependencies from one Config: the
// gateway (remote, self-hosted, or degraded), logging, metrics, content
// services, the contact form, and the admin service.
package di

import (
	"context"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/uptrace/bun"

	"github.com/servetdekorasyon/website/content"
	"github.com/servetdekorasyon/website/forms"
	"github.com/servetdekorasyon/website/gateway"
	"github.com/servetdekorasyon/website/gateway/localstore"
	"github.com/servetdekorasyon/website/internal/admin"
	"github.com/servetdekorasyon/website/internal/auth"
	"github.com/servetdekorasyon/website/internal/links"
	"github.com/servetdekorasyon/website/internal/logging"
	"github.com/servetdekorasyon/website/internal/logging/gologger"
	"github.com/servetdekorasyon/website/internal/metrics"
	"github.com/servetdekorasyon/website/internal/runtimeconfig"
	"github.com/servetdekorasyon/website/pkg/interfaces"
)

// Container wires module dependencies.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	registry       *prometheus.Registry

	gw       gateway.Service
	bunDB    *bun.DB
	verifier interfaces.SessionVerifier
	resolver *links.Resolver

	posts      *content.PostService
	offerings  *content.OfferingService
	references *content.ReferenceService
	contacts   *content.ContactService
	settings   *content.SettingService
	partners   *content.PartnerService

	adminSvc *admin.Service
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithGateway overrides the configured gateway, mainly for tests.
func WithGateway(gw gateway.Service) Option {
	return func(c *Container) {
		c.gw = gw
	}
}

// WithLoggerProvider overrides the configured logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithSessionVerifier overrides the configured session verifier.
func WithSessionVerifier(verifier interfaces.SessionVerifier) Option {
	return func(c *Container) {
		c.verifier = verifier
	}
}

// WithRegistry overrides the metrics registry.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(c *Container) {
		c.registry = registry
	}
}

// NewContainer builds the dependency graph for the given configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	if c.registry == nil {
		c.registry = prometheus.NewRegistry()
	}
	if err := c.configureGateway(); err != nil {
		return nil, err
	}
	c.configureServices()
	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil {
		return nil
	}

	logCfg := c.Config.Logging
	format := logCfg.Format
	if strings.EqualFold(strings.TrimSpace(logCfg.Provider), "console") && format == "" {
		format = "console"
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:     logCfg.Level,
		Format:    format,
		AddSource: logCfg.AddSource,
		Focus:     logCfg.Focus,
	})
	if err != nil {
		return err
	}
	c.loggerProvider = provider
	return nil
}

func (c *Container) configureGateway() error {
	if c.gw != nil {
		return nil
	}

	gatewayLogger := logging.GatewayLogger(c.loggerProvider)

	if driver := strings.TrimSpace(c.Config.Storage.Driver); driver != "" {
		db, err := localstore.Open(driver, c.Config.Storage.DSN)
		if err != nil {
			return fmt.Errorf("di: open local store: %w", err)
		}
		c.bunDB = db
		store := localstore.New(db, gatewayLogger)
		if err := store.EnsureSchema(context.Background()); err != nil {
			return fmt.Errorf("di: ensure local store schema: %w", err)
		}
		c.gw = store
	} else {
		c.gw = gateway.New(gateway.Config{
			BaseURL: c.Config.Backend.URL,
			APIKey:  c.Config.Backend.APIKey,
		}, gateway.WithLogger(gatewayLogger))
	}

	c.gw = metrics.NewGatewayMetrics(c.registry).Instrument(c.gw)
	return nil
}

func (c *Container) configureServices() {
	contentLogger := logging.ContentLogger(c.loggerProvider)

	c.posts = content.NewPostService(c.gw, content.WithPostLogger(contentLogger))
	c.offerings = content.NewOfferingService(c.gw, content.WithOfferingLogger(contentLogger))
	c.references = content.NewReferenceService(c.gw, content.WithReferenceLogger(contentLogger))
	c.contacts = content.NewContactService(c.gw, content.WithContactLogger(contentLogger))
	c.settings = content.NewSettingService(c.gw, content.WithSettingLogger(contentLogger))
	c.partners = content.NewPartnerService(c.gw, content.WithPartnerLogger(contentLogger))

	c.resolver = links.New(links.Config{SiteBaseURL: c.Config.Site.BaseURL})

	if c.verifier == nil {
		c.verifier = auth.NewVerifier(gateway.Config{
			BaseURL: c.Config.Backend.URL,
			APIKey:  c.Config.Backend.APIKey,
		}, auth.WithLogger(logging.AuthLogger(c.loggerProvider)))
	}

	c.adminSvc = admin.New(c.verifier, admin.Services{
		Posts:      c.posts,
		Offerings:  c.offerings,
		References: c.references,
		Contacts:   c.contacts,
		Settings:   c.settings,
		Partners:   c.partners,
	}, admin.WithLogger(logging.AdminLogger(c.loggerProvider)))
}

// Gateway exposes the configured record gateway.
func (c *Container) Gateway() gateway.Service { return c.gw }

// DB exposes the bun handle of the self-hosted store, nil when remote.
func (c *Container) DB() *bun.DB { return c.bunDB }

// Registry exposes the metrics registry for the HTTP exposition endpoint.
func (c *Container) Registry() *prometheus.Registry { return c.registry }

// LoggerProvider exposes the configured logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider { return c.loggerProvider }

// Posts exposes the blog post service.
func (c *Container) Posts() *content.PostService { return c.posts }

// Offerings exposes the service catalog service.
func (c *Container) Offerings() *content.OfferingService { return c.offerings }

// References exposes the portfolio service.
func (c *Container) References() *content.ReferenceService { return c.references }

// Contacts exposes the inquiry service.
func (c *Container) Contacts() *content.ContactService { return c.contacts }

// Settings exposes the site settings service.
func (c *Container) Settings() *content.SettingService { return c.settings }

// Partners exposes the partner strip service.
func (c *Container) Partners() *content.PartnerService { return c.partners }

// Links exposes the URL resolver.
func (c *Container) Links() *links.Resolver { return c.resolver }

// SessionVerifier exposes the admin session verifier.
func (c *Container) SessionVerifier() interfaces.SessionVerifier { return c.verifier }

// Admin exposes the admin panel service.
func (c *Container) Admin() *admin.Service { return c.adminSvc }

// NewContactForm builds a form controller delivering to the contact service.
func (c *Container) NewContactForm(opts ...forms.Option) *forms.Controller {
	sink := func(ctx context.Context, submission forms.Submission) error {
		return c.contacts.Submit(ctx, content.SubmitContactRequest{
			Name:    submission.Name,
			Email:   submission.Email,
			Phone:   submission.Phone,
			Message: submission.Message,
		})
	}
	formOpts := []forms.Option{forms.WithLogger(logging.FormsLogger(c.loggerProvider))}
	formOpts = append(formOpts, opts...)
	return forms.New(sink, formOpts...)
}

// Close releases held resources.
func (c *Container) Close() error {
	if c.bunDB != nil {
		return c.bunDB.Close()
	}
	return nil
}
