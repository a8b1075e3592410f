package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gallerykit/portal/flow/linking"
	"github.com/gallerykit/portal/flow/login"
	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/internal/config"
	"github.com/gallerykit/portal/internal/validate"
	"github.com/gallerykit/portal/pkg/nanoid"
	"github.com/gallerykit/portal/provider"
	"github.com/gallerykit/portal/user/account"
	"github.com/gallerykit/portal/user/credential"
)

var (
	errInvalidFlowID  = internal.NewErrorf(internal.ErrorCodeNotFound, "%v", internal.ErrInvalidExpiredFlow)
	errBadCredentials = internal.NewErrorf(internal.ErrorCodeBadCredentials, "Invalid identifier or password provided")
)

type service struct {
	cfg config.Login
	r   login.Repository
	as  account.Service
	cs  credential.Service
	ls  linking.Service
	reg *provider.Registry
}

func NewLoginService(cfg config.Login, r login.Repository, as account.Service, cs credential.Service, ls linking.Service, reg *provider.Registry) login.Service {
	return &service{
		cfg: cfg,
		r:   r,
		as:  as,
		cs:  cs,
		ls:  ls,
		reg: reg,
	}
}

func (s *service) New(ctx context.Context, requestURL string) (*login.Login, error) {
	tok, err := nanoid.New()
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "%v", internal.ErrFailedNanoID)
	}
	fid, err := nanoid.New()
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "%v", internal.ErrFailedNanoID)
	}
	action := fmt.Sprintf("/%s/%s", s.cfg.URL, fid)
	providers := s.reg.LoginOptions()
	challenges := map[string]string{}
	for _, name := range providers {
		challenges[name] = fmt.Sprintf("/%s/external/%s", s.cfg.URL, strings.ToLower(name))
	}
	newFlow, err := s.r.Create(ctx, login.Login{
		FlowID:     fid,
		CSRFToken:  tok,
		Form:       generateForm(action, tok, providers, challenges),
		ExpiresAt:  time.Now().Add(s.cfg.Lifetime),
		RequestURL: requestURL,
	})
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to create new login flow")
	}
	return newFlow, nil
}

func (s *service) Find(ctx context.Context, flowID string) (*login.Login, error) {
	if flowID == "" {
		return nil, errInvalidFlowID
	}
	found, err := s.r.GetByFlowID(ctx, flowID)
	if err != nil || found == nil || found.ExpiresAt.Before(time.Now()) {
		return nil, errInvalidFlowID
	}
	return found, nil
}

// Submit runs the sign-in decision protocol. The outcome is either a
// Decision or an error; rejections (bad credentials, lockout, linking
// conflicts, lapsed assertions) are always errors, a policy challenge is
// a Decision.
func (s *service) Submit(ctx context.Context, flow login.Login, payload login.Payload, opts login.SubmitOptions) (*login.Decision, error) {
	if flow.ExpiresAt.Before(time.Now()) {
		return nil, errInvalidFlowID
	}
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	if opts.Linking && payload.AssertionToken == "" {
		return nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "A pending external account is required to link")
	}

	var acct *account.Account
	var used string
	switch {
	case payload.Identifier != "":
		found, err := s.verifyPassword(ctx, payload)
		if err != nil {
			return nil, err
		}
		acct = found
		used = string(credential.Password)
		if opts.Linking {
			result, err := s.ls.Link(ctx, *acct, payload.AssertionToken)
			if err != nil {
				return nil, err
			}
			acct = result.Account
			used = result.Used
		}
	default:
		found, via, err := s.verifyAssertion(ctx, payload.AssertionToken)
		if err != nil {
			return nil, err
		}
		acct = found
		used = via
	}

	// Administrators must sign in with an enforced provider when one is
	// configured. Not an error: the caller re-challenges.
	if acct.Admin && !opts.Policy.Empty() && !opts.Policy.Satisfied(used) {
		return &login.Decision{
			Kind:     login.Challenge,
			Provider: opts.Policy.First(),
		}, nil
	}
	return &login.Decision{
		Kind:    login.Authenticated,
		Account: acct,
		Used:    used,
	}, nil
}

// verifyPassword resolves the identifier and checks the password,
// maintaining the lockout counters as it goes. A nonexistent account and
// a wrong password are indistinguishable to the caller.
func (s *service) verifyPassword(ctx context.Context, payload login.Payload) (*account.Account, error) {
	found, err := s.as.Find(ctx, payload.Identifier)
	if err != nil || found == nil {
		return nil, errBadCredentials
	}
	if found.IsOrganization() {
		return nil, errBadCredentials
	}
	if locked, minutes := found.Locked(time.Now()); locked {
		return nil, internal.NewErrorf(internal.ErrorCodeAccountLocked, "%s", login.LockMessage(minutes))
	}
	if err := s.cs.ComparePassword(ctx, found.ID, payload.Password); err != nil {
		if recordErr := s.as.RecordLoginFailure(ctx, *found); recordErr != nil {
			return nil, recordErr
		}
		return nil, errBadCredentials
	}
	if err := s.as.ResetLoginFailures(ctx, *found); err != nil {
		return nil, err
	}
	return found, nil
}

// verifyAssertion redeems a pending external identity and resolves the
// account it is linked to.
func (s *service) verifyAssertion(ctx context.Context, token string) (*account.Account, string, error) {
	assertion, err := s.ls.Consume(ctx, token)
	if err != nil {
		return nil, "", err
	}
	cred, err := s.cs.FindExternal(ctx, assertion.Provider, assertion.Subject)
	if err != nil || cred == nil {
		return nil, "", internal.NewErrorf(internal.ErrorCodeNotFound, "No account is linked to this external account")
	}
	found, err := s.as.Find(ctx, cred.AccountID.String())
	if err != nil || found == nil {
		return nil, "", internal.NewErrorf(internal.ErrorCodeNotFound, "%v", account.ErrAccountNotFound)
	}
	used := cred.Used(&credential.CredentialExternal{Provider: assertion.Provider, Subject: assertion.Subject})
	return found, used, nil
}
