package account

import (
	"context"
	"errors"
	"time"

	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/user/credential"
	"github.com/gofrs/uuid"
)

var (
	ErrUsernameProfane   = errors.New("Username contains a disallowed word")
	ErrDuplicateIdentity = errors.New("Username or email is already in use")
	ErrAccountNotFound   = errors.New("Account does not exist")
)

// Kind separates user accounts from organization accounts. Organization
// accounts cannot sign in themselves and are barred from holding external
// credentials.
type Kind string

const (
	User         Kind = "user"
	Organization Kind = "organization"
)

// Account is the authenticated principal. It holds zero or one password
// credential and zero or more external credentials; non administrators are
// limited to a single external credential.
type Account struct {
	internal.BaseSoftDelete
	Username string `json:"username" gorm:"uniqueIndex;size:64;not null" validate:"required,min=3,max=64"`
	// Email is the primary email that will be used for account security
	// related notifications
	Email string `json:"email" gorm:"uniqueIndex;not null" validate:"email,required"`
	Kind  Kind   `json:"kind" gorm:"index;not null;default:user" validate:"required,oneof='user' 'organization'"`
	// Admin accounts bypass the single external credential limit and are
	// subject to the enforced provider policy.
	Admin bool `json:"admin" gorm:"not null;default:false"`

	// Lockout counters. Maintained by the credential service on failed
	// and successful password checks.
	FailedLoginCount int        `json:"-" gorm:"not null;default:0"`
	LockoutEnd       *time.Time `json:"-" gorm:"default:null"`

	Credentials []credential.Credential `json:"-" gorm:"foreignKey:AccountID"`
}

// IsOrganization reports whether the account is an organization account.
func (a Account) IsOrganization() bool {
	return a.Kind == Organization
}

// Locked reports whether the account is currently locked out, along with
// the minutes remaining. Remaining minutes round up so a lock never
// renders as "0 minutes".
func (a Account) Locked(now time.Time) (bool, int) {
	if a.LockoutEnd == nil || !a.LockoutEnd.After(now) {
		return false, 0
	}
	remaining := a.LockoutEnd.Sub(now)
	minutes := int(remaining / time.Minute)
	if remaining%time.Minute != 0 {
		minutes++
	}
	return true, minutes
}

type Repository interface {
	Create(ctx context.Context, newAccount Account) (*Account, error)
	Get(ctx context.Context, id uuid.UUID) (*Account, error)
	// GetWithIdentifier retrieves an account via username or email
	GetWithIdentifier(ctx context.Context, identifier string) (*Account, error)
	Update(ctx context.Context, updateAccount Account) (*Account, error)
	Delete(ctx context.Context, id uuid.UUID, permanent bool) error
}

type Service interface {
	// Find locates an account via id, username or email
	Find(ctx context.Context, identifier string) (*Account, error)
	// Create creates a new account. Creation is atomic: a uniqueness or
	// validation failure leaves no partial account behind.
	Create(ctx context.Context, newAccount Account) (*Account, error)
	// Delete removes an account
	Delete(ctx context.Context, id string, permanent bool) error
	// RecordLoginFailure bumps the consecutive failure counter and locks
	// the account once the configured threshold is reached
	RecordLoginFailure(ctx context.Context, acct Account) error
	// ResetLoginFailures clears the counters after a successful check
	ResetLoginFailures(ctx context.Context, acct Account) error
}
