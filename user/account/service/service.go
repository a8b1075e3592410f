package service

import (
	"context"
	"time"

	goaway "github.com/TwiN/go-away"
	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/internal/config"
	"github.com/gallerykit/portal/internal/validate"
	"github.com/gallerykit/portal/user/account"
	"github.com/gofrs/uuid"
	"golang.org/x/sync/errgroup"
)

type service struct {
	cfg config.Lockout
	ar  account.Repository
}

func NewAccountService(cfg config.Lockout, ar account.Repository) account.Service {
	return &service{
		cfg: cfg,
		ar:  ar,
	}
}

func (s *service) Create(ctx context.Context, newAccount account.Account) (*account.Account, error) {
	if err := validate.Check(newAccount); err != nil {
		return nil, err
	}
	// Check for profanity in username
	if goaway.IsProfane(newAccount.Username) {
		return nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "%v", account.ErrUsernameProfane)
	}
	// Check if email and username already exist. Each probe writes its
	// own slot so the goroutines never share a variable.
	var eg errgroup.Group
	var byUsername, byEmail *account.Account
	eg.Go(func() error {
		if f, err := s.ar.GetWithIdentifier(ctx, newAccount.Username); err == nil {
			byUsername = f
		}
		return nil
	})
	eg.Go(func() error {
		if f, err := s.ar.GetWithIdentifier(ctx, newAccount.Email); err == nil {
			byEmail = f
		}
		return nil
	})
	if eg.Wait(); byUsername != nil || byEmail != nil {
		return nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "%v", account.ErrDuplicateIdentity)
	}
	created, err := s.ar.Create(ctx, newAccount)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to create new account")
	}
	return created, nil
}

func (s *service) Find(ctx context.Context, identifier string) (*account.Account, error) {
	uid, err := uuid.FromString(identifier)
	if err == nil && uid != uuid.Nil {
		found, err := s.ar.Get(ctx, uid)
		if err != nil {
			return nil, internal.WrapErrorf(err, internal.ErrorCodeNotFound, "%v", account.ErrAccountNotFound)
		}
		return found, nil
	}
	found, err := s.ar.GetWithIdentifier(ctx, identifier)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeNotFound, "%v", account.ErrAccountNotFound)
	}
	return found, nil
}

func (s *service) RecordLoginFailure(ctx context.Context, acct account.Account) error {
	acct.FailedLoginCount++
	if acct.FailedLoginCount >= s.cfg.MaxAttempts {
		end := time.Now().Add(s.cfg.Duration)
		acct.LockoutEnd = &end
		acct.FailedLoginCount = 0
	}
	if _, err := s.ar.Update(ctx, acct); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to record login failure")
	}
	return nil
}

func (s *service) ResetLoginFailures(ctx context.Context, acct account.Account) error {
	if acct.FailedLoginCount == 0 && acct.LockoutEnd == nil {
		return nil
	}
	acct.FailedLoginCount = 0
	acct.LockoutEnd = nil
	if _, err := s.ar.Update(ctx, acct); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to reset login failures")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id string, permanent bool) error {
	uid, err := uuid.FromString(id)
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "Account with id %s does not exist", id)
	}
	if err := s.ar.Delete(ctx, uid, permanent); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to delete account: %s", id)
	}
	return nil
}
