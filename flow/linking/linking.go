package linking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gallerykit/portal/provider"
	"github.com/gallerykit/portal/user/account"
	"github.com/gallerykit/portal/user/credential"
)

// AssertionCookie carries a pending assertion token across the redirect
// from the provider callback to the flow that consumes it.
const AssertionCookie = "gallery_link"

var (
	// ErrExpired covers both an assertion that lapsed and one that was
	// already consumed. Callers render it as a generic notice and
	// redirect to the sign-in entry point, never a raw error.
	ErrExpired = errors.New("Your external account link has expired. Please try again.")
	// ErrAlreadyLinked is the conflict for non administrators that
	// already hold an external credential
	ErrAlreadyLinked = errors.New("Account is already linked to another external account")
	// ErrIsOrganization bars organization accounts from holding
	// external credentials
	ErrIsOrganization = errors.New("Organization accounts cannot link external accounts")
)

// Assertion is a pending external identity: the claims a provider handed
// back, waiting to be consumed exactly once by a linking or sign-in
// flow.
type Assertion struct {
	// Token keys the assertion in the transient store. Carried by a
	// short lived cookie.
	Token string `json:"token" validate:"required"`

	Provider string    `json:"provider" validate:"required"`
	Subject  string    `json:"subject" validate:"required"`
	Name     string    `json:"name,omitempty"`
	Email    string    `json:"email,omitempty"`
	IssuedAt time.Time `json:"issued_at" validate:"required"`
}

// Result is the outcome of a completed link or change operation.
type Result struct {
	Account    *account.Account       `json:"account"`
	Credential *credential.Credential `json:"-"`
	// Used is the concrete credential type linked, eg "external.AAD"
	Used string `json:"used"`
}

type Repository interface {
	// Create stores an assertion with a TTL
	Create(ctx context.Context, newAssertion Assertion, ttl time.Duration) error
	// Consume removes and returns an assertion. Single use: concurrent
	// or repeated consumption of the same token succeeds at most once,
	// every other attempt observes the assertion as expired.
	Consume(ctx context.Context, token string) (*Assertion, error)
}

type Service interface {
	// Stash records a verified provider identity as a pending assertion
	// and hands back its token
	Stash(ctx context.Context, identity provider.Identity) (*Assertion, error)
	// Consume redeems an assertion token. Absent, lapsed or already
	// consumed tokens yield an Expired error.
	Consume(ctx context.Context, token string) (*Assertion, error)
	// Link attaches the assertion's external identity to the account,
	// then removes any password credential. Enforces the single
	// external credential limit for non administrators and bars
	// organization accounts.
	Link(ctx context.Context, acct account.Account, token string) (*Result, error)
	// Change swaps the account's external credential for the
	// assertion's identity. Failure messages are sanitized before they
	// reach the notice channel.
	Change(ctx context.Context, acct account.Account, token string) (*Result, error)
}

// SanitizeMessage percent-encodes hostile characters in user derived
// failure messages. Identity strings like "Name <email>" would otherwise
// corrupt the cookie backed notice channel.
func SanitizeMessage(message string) string {
	message = strings.ReplaceAll(message, "<", "%3C")
	return strings.ReplaceAll(message, ">", "%3E")
}
