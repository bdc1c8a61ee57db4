// Package admin fronts every content mutation behind session verification.
// Each operation verifies the caller's access token, then dispatches the
// matching command through the shared handler foundation.
package admin

import (
	"context"
	"errors"

	"github.com/servetdekorasyon/website/content"
	contactscmd "github.com/servetdekorasyon/website/internal/commands/contacts"
	offeringscmd "github.com/servetdekorasyon/website/internal/commands/offerings"
	partnerscmd "github.com/servetdekorasyon/website/internal/commands/partners"
	postscmd "github.com/servetdekorasyon/website/internal/commands/posts"
	referencescmd "github.com/servetdekorasyon/website/internal/commands/references"
	settingscmd "github.com/servetdekorasyon/website/internal/commands/settings"
	"github.com/servetdekorasyon/website/internal/logging"
	"github.com/servetdekorasyon/website/pkg/interfaces"
)

// ErrUnauthorized rejects operations without a live admin session.
var ErrUnauthorized = errors.New("admin: session required")

// Services bundles the content services the admin panel manages.
type Services struct {
	Posts      *content.PostService
	Offerings  *content.OfferingService
	References *content.ReferenceService
	Contacts   *content.ContactService
	Settings   *content.SettingService
	Partners   *content.PartnerService
}

// Service is the admin panel backend.
type Service struct {
	verifier interfaces.SessionVerifier
	services Services
	logger   interfaces.Logger

	createPost *postscmd.CreatePostHandler
	updatePost *postscmd.UpdatePostHandler
	deletePost *postscmd.DeletePostHandler

	createOffering *offeringscmd.CreateOfferingHandler
	updateOffering *offeringscmd.UpdateOfferingHandler
	deleteOffering *offeringscmd.DeleteOfferingHandler

	createReference *referencescmd.CreateReferenceHandler
	updateReference *referencescmd.UpdateReferenceHandler
	deleteReference *referencescmd.DeleteReferenceHandler

	deleteContact *contactscmd.DeleteContactHandler
	upsertSetting *settingscmd.UpsertSettingHandler

	createPartner *partnerscmd.CreatePartnerHandler
	updatePartner *partnerscmd.UpdatePartnerHandler
	deletePartner *partnerscmd.DeletePartnerHandler
}

// Option configures a Service.
type Option func(*Service)

// WithLogger injects the admin logger; command handlers derive theirs from it.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs the admin service over the supplied verifier and content
// services.
func New(verifier interfaces.SessionVerifier, services Services, opts ...Option) *Service {
	s := &Service{
		verifier: verifier,
		services: services,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.createPost = postscmd.NewCreatePostHandler(services.Posts, s.logger)
	s.updatePost = postscmd.NewUpdatePostHandler(services.Posts, s.logger)
	s.deletePost = postscmd.NewDeletePostHandler(services.Posts, s.logger)

	s.createOffering = offeringscmd.NewCreateOfferingHandler(services.Offerings, s.logger)
	s.updateOffering = offeringscmd.NewUpdateOfferingHandler(services.Offerings, s.logger)
	s.deleteOffering = offeringscmd.NewDeleteOfferingHandler(services.Offerings, s.logger)

	s.createReference = referencescmd.NewCreateReferenceHandler(services.References, s.logger)
	s.updateReference = referencescmd.NewUpdateReferenceHandler(services.References, s.logger)
	s.deleteReference = referencescmd.NewDeleteReferenceHandler(services.References, s.logger)

	s.deleteContact = contactscmd.NewDeleteContactHandler(services.Contacts, s.logger)
	s.upsertSetting = settingscmd.NewUpsertSettingHandler(services.Settings, s.logger)

	s.createPartner = partnerscmd.NewCreatePartnerHandler(services.Partners, s.logger)
	s.updatePartner = partnerscmd.NewUpdatePartnerHandler(services.Partners, s.logger)
	s.deletePartner = partnerscmd.NewDeletePartnerHandler(services.Partners, s.logger)

	return s
}

// Authorize verifies the access token and returns the session behind it.
func (s *Service) Authorize(ctx context.Context, accessToken string) (*interfaces.Session, error) {
	session, err := s.verifier.Verify(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrUnauthorized
	}
	return session, nil
}

func (s *Service) authorized(ctx context.Context, accessToken string, run func(context.Context) error) error {
	session, err := s.Authorize(ctx, accessToken)
	if err != nil {
		return err
	}
	return run(withSession(ctx, session))
}

// CreatePost stores a new blog post.
func (s *Service) CreatePost(ctx context.Context, accessToken string, cmd postscmd.CreatePostCommand) error {
	return s.authorized(ctx, accessToken, func(ctx context.Context) error {
		return s.createPost.Execute(ctx, cmd)
	})
}

// UpdatePost applies a partial edit to a blog post.
func (s *Service) UpdatePost(ctx context.Context, accessToken string, cmd postscmd.UpdatePostCommand) error {
	return s.authorized(ctx, accessToken, func(ctx context.Context) error {
		return s.updatePost.Execute(ctx, cmd)
	})
}

// DeletePost removes a blog post.
func (s *Service) DeletePost(ctx context.Context, accessToken string, cmd postscmd.DeletePostCommand) error {
	return s.authorized(ctx, accessToken, func(ctx context.Context) error {
		return s.deletePost.Execute(ctx, cmd)
	})
}

// CreateOffering adds a service catalog entry.
func (s *Service) CreateOffering(ctx context.Context, accessToken string, cmd offeringscmd.CreateOfferingCommand) error {
	return s.authorized(ctx, accessToken, func(ctx context.Context) error {
		return s.createOffering.Execute(ctx, cmd)
	})
}

// UpdateOffering edits a service catalog entry.
func (s *Service) UpdateOffering(ctx context.Context, accessToken string, cmd offeringscmd.UpdateOfferingCommand) error {
	return s.authorized(ctx, accessToken, func(ctx context.Context) error {
		return s.updateOffering.Execute(ctx, cmd)
	})
}

// DeleteOffering removes a service catalog entry.
func (s *Service) DeleteOffering(ctx context.Context, accessToken string, cmd offeringscmd.DeleteOfferingCommand) error {
	return s.authorized(ctx, accessToken, func(ctx context.Context) error {
		return s.deleteOffering.Execute(ctx, cmd)
	})
}

// CreateReference adds a portfolio entry.
func (s *Service) CreateReference(ctx context.Context, accessToken string, cmd referencescmd.CreateReferenceCommand) error {
	return s.authorized(ctx, accessToken, func(ctx context.Context) error {
		return s.createReference.Execute(ctx, cmd)
	})
}

// UpdateReference edits a portfolio entry.
func (s *Service) UpdateReference(ctx context.Context, accessToken string, cmd referencescmd.UpdateReferenceCommand) error {
	return s.authorized(ctx, accessToken, func(ctx context.Context) error {
		return s.updateReference.Execute(ctx, cmd)
	})
}

// DeleteReference removes a portfolio entry.
func (s *Service) DeleteReference(ctx context.Context, accessToken string, cmd referencescmd.DeleteReferenceCommand) error {
	return s.authorized(ctx, accessToken, func(ctx context.Context) error {
		return s.deleteReference.Execute(ctx, cmd)
	})
}

// ListContacts returns the inquiry inbox.
func (s *Service) ListContacts(ctx context.Context, accessToken string) ([]content.Contact, error) {
	if _, err := s.Authorize(ctx, accessToken); err != nil {
		return nil, err
	}
	return s.services.Contacts.List(ctx)
}

// DeleteContact removes a handled inquiry.
func (s *Service) DeleteContact(ctx context.Context, accessToken string, cmd contactscmd.DeleteContactCommand) error {
	return s.authorized(ctx, accessToken, func(ctx context.Context) error {
		return s.deleteContact.Execute(ctx, cmd)
	})
}

// ListSettings returns every stored site setting.
func (s *Service) ListSettings(ctx context.Context, accessToken string) ([]content.Setting, error) {
	if _, err := s.Authorize(ctx, accessToken); err != nil {
		return nil, err
	}
	return s.services.Settings.List(ctx)
}

// UpsertSetting writes a site setting.
func (s *Service) UpsertSetting(ctx context.Context, accessToken string, cmd settingscmd.UpsertSettingCommand) error {
	return s.authorized(ctx, accessToken, func(ctx context.Context) error {
		return s.upsertSetting.Execute(ctx, cmd)
	})
}

// ListPartners returns every partner, active or not.
func (s *Service) ListPartners(ctx context.Context, accessToken string) ([]content.Partner, error) {
	if _, err := s.Authorize(ctx, accessToken); err != nil {
		return nil, err
	}
	return s.services.Partners.List(ctx)
}

// CreatePartner adds a partner logo.
func (s *Service) CreatePartner(ctx context.Context, accessToken string, cmd partnerscmd.CreatePartnerCommand) error {
	return s.authorized(ctx, accessToken, func(ctx context.Context) error {
		return s.createPartner.Execute(ctx, cmd)
	})
}

// UpdatePartner edits a partner.
func (s *Service) UpdatePartner(ctx context.Context, accessToken string, cmd partnerscmd.UpdatePartnerCommand) error {
	return s.authorized(ctx, accessToken, func(ctx context.Context) error {
		return s.updatePartner.Execute(ctx, cmd)
	})
}

// DeletePartner removes a partner.
func (s *Service) DeletePartner(ctx context.Context, accessToken string, cmd partnerscmd.DeletePartnerCommand) error {
	return s.authorized(ctx, accessToken, func(ctx context.Context) error {
		return s.deletePartner.Execute(ctx, cmd)
	})
}
