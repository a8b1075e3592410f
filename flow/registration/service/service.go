package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gallerykit/portal/email"
	"github.com/gallerykit/portal/flow/linking"
	"github.com/gallerykit/portal/flow/registration"
	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/internal/config"
	"github.com/gallerykit/portal/internal/validate"
	"github.com/gallerykit/portal/pkg/nanoid"
	"github.com/gallerykit/portal/user/account"
	"github.com/gallerykit/portal/user/credential"
	"github.com/sirupsen/logrus"
)

var errInvalidFlowID = internal.NewErrorf(internal.ErrorCodeNotFound, "%v", internal.ErrInvalidExpiredFlow)

type service struct {
	cfg config.Registration
	log *logrus.Logger

	r  registration.Repository
	as account.Service
	cs credential.Service
	ls linking.Service
	ec email.Client
}

func NewRegistrationService(cfg config.Registration, log *logrus.Logger, r registration.Repository, as account.Service, cs credential.Service, ls linking.Service, ec email.Client) registration.Service {
	return &service{
		cfg: cfg,
		log: log,

		r:  r,
		as: as,
		cs: cs,
		ls: ls,
		ec: ec,
	}
}

func (s *service) New(ctx context.Context, requestURL string) (*registration.Registration, error) {
	tok, err := nanoid.New()
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "%v", internal.ErrFailedNanoID)
	}
	fid, err := nanoid.New()
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "%v", internal.ErrFailedNanoID)
	}
	action := fmt.Sprintf("/%s/%s", s.cfg.URL, fid)
	newFlow, err := s.r.Create(ctx, registration.Registration{
		FlowID:     fid,
		CSRFToken:  tok,
		Form:       generateForm(action, tok),
		ExpiresAt:  time.Now().Add(s.cfg.Lifetime),
		RequestURL: requestURL,
	})
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to create new registration flow")
	}
	return newFlow, nil
}

func (s *service) Find(ctx context.Context, flowID string) (*registration.Registration, error) {
	if flowID == "" {
		return nil, errInvalidFlowID
	}
	found, err := s.r.GetByFlowID(ctx, flowID)
	if err != nil || found == nil || found.ExpiresAt.Before(time.Now()) {
		return nil, errInvalidFlowID
	}
	return found, nil
}

func (s *service) Submit(ctx context.Context, flow registration.Registration, payload registration.Payload) (*account.Account, error) {
	// Collaborator messages pass through untouched so the form can
	// render them as-is
	if err := validate.Check(payload); err != nil {
		return nil, err
	}

	// Redeem the pending assertion, if any, before touching the account
	// table. A lapsed assertion must not leave an account behind.
	var assertion *linking.Assertion
	if payload.AssertionToken != "" {
		found, err := s.ls.Consume(ctx, payload.AssertionToken)
		if err != nil {
			return nil, err
		}
		assertion = found
	}

	created, err := s.as.Create(ctx, account.Account{
		Username: payload.Username,
		Email:    payload.Email,
		Kind:     account.User,
	})
	if err != nil {
		return nil, err
	}

	// First credential. Any failure here rolls the account back so the
	// two always land together.
	if assertion != nil {
		if _, err := s.cs.CreateExternal(ctx, created.ID, assertion.Provider, assertion.Subject); err != nil {
			s.as.Delete(ctx, created.ID.String(), true)
			return nil, err
		}
	} else {
		if _, err := s.cs.CreatePassword(ctx, created.ID, payload.Password, []credential.Identifier{
			{
				Type:  credential.Email,
				Value: payload.Email,
			},
			{
				Type:  credential.Username,
				Value: payload.Username,
			},
		}); err != nil {
			s.as.Delete(ctx, created.ID.String(), true)
			return nil, err
		}
	}

	if err := s.r.Delete(ctx, flow.ID); err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to delete registration flow")
	}

	// One welcome email per registration. Delivery problems are logged,
	// never surfaced to the user.
	if err := s.ec.SendWelcome(created.Email, *created); err != nil {
		s.log.WithError(err).WithField("account", created.ID).Warn("Failed to send welcome email")
	}
	return created, nil
}
