package registration

import (
	"context"
	"time"

	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/ui/form"
	"github.com/gallerykit/portal/user/account"
	"github.com/gofrs/uuid"
)

// Registration is a single sign-up flow record
type Registration struct {
	internal.Base
	RequestURL string    `json:"-" gorm:"not null" validate:"required"`
	FlowID     string    `json:"-" gorm:"not null;uniqueIndex" validate:"required"`
	ExpiresAt  time.Time `json:"expires_at" gorm:"index;not null" validate:"required"`

	CSRFToken string    `json:"csrf_token" gorm:"not null" validate:"required"`
	Form      form.Form `json:"form" gorm:"not null;type:json" validate:"required"`
}

type Payload struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required_without=AssertionToken,max=128"`
	// AssertionToken completes registration from a pending external
	// identity instead of a password
	AssertionToken string `json:"assertion_token,omitempty" form:"assertion_token"`
}

type Repository interface {
	Create(ctx context.Context, newFlow Registration) (*Registration, error)
	Get(ctx context.Context, id uuid.UUID) (*Registration, error)
	GetByFlowID(ctx context.Context, flowID string) (*Registration, error)
	Update(ctx context.Context, updateFlow Registration) (*Registration, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service interface {
	New(ctx context.Context, requestURL string) (*Registration, error)
	Find(ctx context.Context, flowID string) (*Registration, error)
	// Submit creates the account with its first credential. Atomic: a
	// failure on either side leaves no partial account behind. Exactly
	// one welcome email goes out on success.
	Submit(ctx context.Context, flow Registration, payload Payload) (*account.Account, error)
}
