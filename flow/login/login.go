package login

import (
	"context"
	"fmt"
	"time"

	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/provider"
	"github.com/gallerykit/portal/ui/form"
	"github.com/gallerykit/portal/user/account"
	"github.com/gofrs/uuid"
)

// Login is a single sign-in flow record
type Login struct {
	internal.Base
	RequestURL string    `json:"-" gorm:"not null" validate:"required"`
	FlowID     string    `json:"-" gorm:"not null;uniqueIndex" validate:"required"`
	ExpiresAt  time.Time `json:"expires_at" gorm:"index;not null" validate:"required"`

	CSRFToken string    `json:"csrf_token" gorm:"not null" validate:"required"`
	Form      form.Form `json:"form" gorm:"not null;type:json" validate:"required"`
}

type Payload struct {
	Identifier string `json:"identifier" form:"identifier" validate:"required_without=AssertionToken,max=128"`
	Password   string `json:"password" form:"password" validate:"required_without=AssertionToken,max=128"`
	// AssertionToken carries the pending external identity when the
	// submission completes a linking handshake
	AssertionToken string `json:"assertion_token,omitempty" form:"assertion_token"`
}

// DecisionKind tags the terminal state of the sign-in decision protocol.
type DecisionKind string

const (
	// Authenticated establishes a session
	Authenticated DecisionKind = "Authenticated"
	// Challenge re-challenges with an enforced provider instead of
	// completing sign-in. A terminal redirect, not an error.
	Challenge DecisionKind = "Challenge"
)

// Decision is the outcome of the sign-in decision protocol. Rejections
// surface as errors rather than Decision values; only completions and
// policy challenges reach the caller this way.
type Decision struct {
	Kind DecisionKind `json:"kind"`

	// Account is set when Kind is Authenticated
	Account *account.Account `json:"account,omitempty"`
	// Used is the concrete credential type that passed, eg "password"
	// or "external.AAD"
	Used string `json:"used,omitempty"`
	// Provider is set when Kind is Challenge: the provider to
	// re-challenge with
	Provider string `json:"provider,omitempty"`
}

// SubmitOptions carries the cross-cutting inputs of the decision
// protocol. The enforced policy arrives as an explicit parameter so the
// engine stays pure.
type SubmitOptions struct {
	// Linking marks the submission as an external account linking
	// attempt; AssertionToken must be present
	Linking bool
	// Policy is the enforced provider policy for administrators
	Policy provider.Policy
}

type Repository interface {
	Create(ctx context.Context, newFlow Login) (*Login, error)
	Get(ctx context.Context, id uuid.UUID) (*Login, error)
	GetByFlowID(ctx context.Context, flowID string) (*Login, error)
	Update(ctx context.Context, updateFlow Login) (*Login, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service interface {
	New(ctx context.Context, requestURL string) (*Login, error)
	Find(ctx context.Context, flowID string) (*Login, error)
	// Submit drives the decision protocol: verify credential, evaluate
	// linking, check enforced provider policy. See Decision.
	Submit(ctx context.Context, flow Login, payload Payload, opts SubmitOptions) (*Decision, error)
}

// LockMessage renders the remaining lockout as a user facing message.
// Exactly one minute reads "a minute".
func LockMessage(minutes int) string {
	if minutes == 1 {
		return "Your account has been locked. Try again in a minute."
	}
	return fmt.Sprintf("Your account has been locked. Try again in %d minutes.", minutes)
}
