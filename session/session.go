package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/pkg/nanoid"
	"github.com/gallerykit/portal/user/account"
	"github.com/gallerykit/portal/user/credential"
	"github.com/gofrs/uuid"
)

var (
	ErrInvalidSession      = errors.New("Invalid session provided")
	ErrInvalidSessionID    = errors.New("Invalid session id provided")
	ErrInvalidSessionToken = errors.New("Invalid session token provided")
	ErrSessionNotFound     = errors.New("No active session found")
)

// State defines the current state of the session
type State string

const (
	// Unauthenticated is the default State
	Unauthenticated State = "Unauthenticated"
	// Authenticated occurs when the User has successfully authenticated
	Authenticated State = "Authenticated"
)

// Session defines the session model
//
// A Session is only established after credential verification succeeds,
// linking produced no conflict, and the enforced provider policy, when
// applicable, is satisfied.
type Session struct {
	// ID defines the unique id for the session
	ID uuid.UUID `json:"id" gorm:"primaryKey;not null" validate:"required"`
	// Token can be used by API clients to fetch the current session by
	// passing it in the `X-Session-Token` Header
	Token string `json:"-" gorm:"not null;uniqueIndex" validate:"required"`
	// State defines the current state of the session
	State State `json:"state" gorm:"not null;default:Unauthenticated" validate:"required"`
	// CreatedAt defines when the session was created
	CreatedAt time.Time `json:"created_at" gorm:"index;not null;default:current_timestamp" validate:"required"`
	// ExpiresAt defines the expiration of the session. Only applicable
	// when `State` is `Authenticated`
	ExpiresAt *time.Time `json:"expires_at" validate:"required_if=State Authenticated"`
	// AuthenticatedAt defines the time when user was successfully logged in
	AuthenticatedAt *time.Time `json:"authenticated_at" validate:"required_if=State Authenticated"`
	// CredentialMethods defines the list of credentials used to
	// authenticate the user
	CredentialMethods CredentialMethods `json:"credential_methods,omitempty" gorm:"type:json;default:null" validate:"required_if=State Authenticated"`

	// AccountID defines the ID of the Account that the session belongs to
	AccountID *uuid.UUID `json:"-" validate:"required_if=State Authenticated"`
	// Account is the account, if any, that the session belongs to
	Account *account.Account `json:"account,omitempty" gorm:"-" validate:"required_if=State Authenticated"`
}

type Repository interface {
	// Create creates a new Session
	Create(ctx context.Context, newSession Session) (*Session, error)
	// Get retrieves a session via ID
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	// GetByToken retrieves a session via Token
	GetByToken(ctx context.Context, token string) (*Session, error)
	// Update updates a session
	Update(ctx context.Context, updateSession Session) (*Session, error)
	// Delete deletes a session via ID
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteAllAccount deletes all the sessions that belong to an account
	DeleteAllAccount(ctx context.Context, accountID uuid.UUID) error
}

type Service interface {
	// New creates a session
	New(ctx context.Context, newSession Session) (*Session, error)
	// FindByID finds a session via ID
	FindByID(ctx context.Context, id uuid.UUID) (*Session, error)
	// FindByToken finds a session via Token
	FindByToken(ctx context.Context, token string) (*Session, error)
	// Update updates a session
	Update(ctx context.Context, currentSession Session) (*Session, error)
	// Destroy deletes session
	Destroy(ctx context.Context, id uuid.UUID) error
	// DestroyAllAccount deletes all the sessions that belong to an account
	DestroyAllAccount(ctx context.Context, accountID uuid.UUID) error
}

func NewUnauthenticated() (*Session, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to generate uuid")
	}
	token, err := nanoid.New()
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "%v", internal.ErrFailedNanoID)
	}

	now := time.Now()
	return &Session{
		ID:        id,
		CreatedAt: now,
		Token:     token,
		State:     Unauthenticated,
	}, nil
}

func NewAuthenticated(acct account.Account, lifetime time.Duration, methods ...credential.CredentialType) (*Session, error) {
	newSession, err := NewUnauthenticated()
	if err != nil {
		return nil, err
	}
	newSession.Authenticate(acct, lifetime, methods...)
	return newSession, nil
}

func (s *Session) AddCredential(method credential.CredentialType) {
	s.CredentialMethods = append(s.CredentialMethods, CredentialMethod{
		Method:   method,
		IssuedAt: time.Now(),
	})
}

// AuthenticateWith promotes the session and records the concrete
// credential type that passed, eg "password" or "external.AAD". The
// concrete type feeds later enforced provider policy checks.
func (s *Session) AuthenticateWith(acct account.Account, lifetime time.Duration, used string) {
	method := credential.Password
	if strings.HasPrefix(used, credential.ExternalPrefix) || used == string(credential.External) {
		method = credential.External
	}
	s.CredentialMethods = append(s.CredentialMethods, CredentialMethod{
		Method:   method,
		Used:     used,
		IssuedAt: time.Now(),
	})
	s.Authenticate(acct, lifetime)
}

// Authenticate promotes the session. Callers must have run the full
// decision protocol first; this only records the outcome.
func (s *Session) Authenticate(acct account.Account, lifetime time.Duration, methods ...credential.CredentialType) {
	for _, method := range methods {
		s.AddCredential(method)
	}

	now := time.Now()
	expire := now.Add(lifetime)
	s.State = Authenticated
	s.ExpiresAt = &expire
	s.AuthenticatedAt = &now
	s.AccountID = &acct.ID
	s.Account = &acct
}

func (s *Session) Authenticated() bool {
	if s.State == Authenticated && s.ExpiresAt != nil && s.ExpiresAt.After(time.Now()) && s.AccountID != nil && s.Account != nil {
		return true
	}
	return false
}

// Valid reports an error when the session lapsed
func (s *Session) Valid() error {
	if s.State == Authenticated && (s.ExpiresAt == nil || s.ExpiresAt.Before(time.Now())) {
		return internal.NewErrorf(internal.ErrorCodeUnauthorized, "%v", ErrInvalidSession)
	}
	return nil
}
