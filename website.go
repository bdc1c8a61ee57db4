// Package website is the runtime façade for the Servet Dekorasyon site:
// public content services backed by a remote or self-hosted gateway, the
// contact form, list and carousel controllers, and the admin panel.
package website

import (
	"github.com/servetdekorasyon/website/carousel"
	"github.com/servetdekorasyon/website/content"
	"github.com/servetdekorasyon/website/forms"
	"github.com/servetdekorasyon/website/gateway"
	"github.com/servetdekorasyon/website/internal/admin"
	"github.com/servetdekorasyon/website/internal/di"
	"github.com/servetdekorasyon/website/internal/links"
	"github.com/servetdekorasyon/website/internal/logging"
	"github.com/servetdekorasyon/website/listview"
)

// Module represents the top level site runtime.
type Module struct {
	container *di.Container
}

// New constructs the site module using the provided configuration and
// optional dependency overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying dependency container for advanced
// integrations.
func (m *Module) Container() *di.Container { return m.container }

// Gateway exposes the configured record gateway.
func (m *Module) Gateway() gateway.Service { return m.container.Gateway() }

// Posts exposes the blog post service.
func (m *Module) Posts() *content.PostService { return m.container.Posts() }

// Offerings exposes the service catalog.
func (m *Module) Offerings() *content.OfferingService { return m.container.Offerings() }

// References exposes the portfolio gallery service.
func (m *Module) References() *content.ReferenceService { return m.container.References() }

// Contacts exposes the inquiry service.
func (m *Module) Contacts() *content.ContactService { return m.container.Contacts() }

// Settings exposes the site settings service.
func (m *Module) Settings() *content.SettingService { return m.container.Settings() }

// Partners exposes the partner strip service.
func (m *Module) Partners() *content.PartnerService { return m.container.Partners() }

// Links exposes the URL resolver.
func (m *Module) Links() *links.Resolver { return m.container.Links() }

// Admin exposes the admin panel service.
func (m *Module) Admin() *admin.Service { return m.container.Admin() }

// NewContactForm builds a contact form controller bound to the inquiry
// service.
func (m *Module) NewContactForm(opts ...forms.Option) *forms.Controller {
	return m.container.NewContactForm(opts...)
}

// NewBlogList builds a list controller configured for the blog page:
// title and excerpt search, category filter with the "all" sentinel, and
// the configured page size.
func (m *Module) NewBlogList() *listview.Controller[content.Post] {
	return listview.New(listview.Config[content.Post]{
		PageSize:    m.container.Config.Site.PageSize,
		CategoryAll: content.CategoryAll,
		SearchText: func(p content.Post) []string {
			return []string{p.Title, p.Excerpt}
		},
		CategoryOf: func(p content.Post) string {
			return p.Category
		},
		Logger: logging.ListViewLogger(m.container.LoggerProvider()),
	})
}

// NewCarousel builds a slide controller over count slides.
func (m *Module) NewCarousel(count int, opts ...carousel.Option) *carousel.Controller {
	carouselOpts := append([]carousel.Option{
		carousel.WithLogger(logging.CarouselLogger(m.container.LoggerProvider())),
	}, opts...)
	return carousel.New(count, carouselOpts...)
}

// Close releases module resources.
func (m *Module) Close() error { return m.container.Close() }
