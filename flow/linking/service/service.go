package service

import (
	"context"
	"errors"
	"time"

	"github.com/gallerykit/portal/flow/linking"
	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/internal/config"
	"github.com/gallerykit/portal/pkg/nanoid"
	"github.com/gallerykit/portal/provider"
	"github.com/gallerykit/portal/user/account"
	"github.com/gallerykit/portal/user/credential"
)

var errExpired = internal.NewErrorf(internal.ErrorCodeExpired, "%v", linking.ErrExpired)

type service struct {
	cfg config.Linking
	r   linking.Repository
	cs  credential.Service
}

func NewLinkingService(cfg config.Linking, r linking.Repository, cs credential.Service) linking.Service {
	return &service{
		cfg: cfg,
		r:   r,
		cs:  cs,
	}
}

func (s *service) Stash(ctx context.Context, identity provider.Identity) (*linking.Assertion, error) {
	token, err := nanoid.New()
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "%v", internal.ErrFailedNanoID)
	}
	newAssertion := linking.Assertion{
		Token:    token,
		Provider: identity.Provider,
		Subject:  identity.Subject,
		Name:     identity.Name,
		Email:    identity.Email,
		IssuedAt: time.Now(),
	}
	if err := s.r.Create(ctx, newAssertion, s.cfg.Lifetime); err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to store pending assertion")
	}
	return &newAssertion, nil
}

func (s *service) Consume(ctx context.Context, token string) (*linking.Assertion, error) {
	if token == "" {
		return nil, errExpired
	}
	found, err := s.r.Consume(ctx, token)
	if err != nil || found == nil {
		return nil, errExpired
	}
	return found, nil
}

func (s *service) Link(ctx context.Context, acct account.Account, token string) (*linking.Result, error) {
	if acct.IsOrganization() {
		return nil, internal.NewErrorf(internal.ErrorCodeConflict, "%v", linking.ErrIsOrganization)
	}
	// Administrators may hold several external credentials; everyone
	// else is limited to one.
	if !acct.Admin {
		existing, err := s.cs.Externals(ctx, acct.ID)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			return nil, internal.NewErrorf(internal.ErrorCodeConflict, "%v", linking.ErrAlreadyLinked)
		}
	}
	// Consume after the conflict checks so a conflicting account does
	// not burn the assertion.
	assertion, err := s.Consume(ctx, token)
	if err != nil {
		return nil, err
	}
	attached, err := s.cs.CreateExternal(ctx, acct.ID, assertion.Provider, assertion.Subject)
	if err != nil {
		return nil, err
	}
	// An account retains at most one non external credential after
	// linking
	if err := s.cs.RemovePassword(ctx, acct.ID); err != nil {
		return nil, err
	}
	return &linking.Result{
		Account:    &acct,
		Credential: attached,
		Used:       attached.Used(&credential.CredentialExternal{Provider: assertion.Provider, Subject: assertion.Subject}),
	}, nil
}

func (s *service) Change(ctx context.Context, acct account.Account, token string) (*linking.Result, error) {
	if acct.IsOrganization() {
		return nil, internal.NewErrorf(internal.ErrorCodeConflict, "%v", linking.ErrIsOrganization)
	}
	assertion, err := s.Consume(ctx, token)
	if err != nil {
		return nil, err
	}
	replaced, ok, err := s.cs.ReplaceExternal(ctx, acct.ID, assertion.Provider, assertion.Subject)
	if err != nil || !ok {
		// The failure message can carry a user derived identity string;
		// sanitize before it reaches the transient notice channel.
		message := "Failed to update the external account"
		var ie *internal.Error
		if errors.As(err, &ie) {
			message = ie.Message()
		}
		return nil, internal.WrapErrorf(err, internal.ErrorCodeConflict, "%s", linking.SanitizeMessage(message))
	}
	if err := s.cs.RemovePassword(ctx, acct.ID); err != nil {
		return nil, err
	}
	return &linking.Result{
		Account:    &acct,
		Credential: replaced,
		Used:       replaced.Used(&credential.CredentialExternal{Provider: assertion.Provider, Subject: assertion.Subject}),
	}, nil
}
