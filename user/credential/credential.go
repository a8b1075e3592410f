package credential

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
)

// Credential is a stored authentication factor belonging to exactly one
// Account. Either a password or an external identity.
type Credential struct {
	ID        uuid.UUID  `gorm:"primaryKey;type:uuid;default:uuid_generate_v4()" validate:"required,uuid4"`
	CreatedAt time.Time  `gorm:"index;not null;default:current_timestamp" validate:"required"`
	UpdatedAt *time.Time `gorm:"index;default:null"`

	Type CredentialType `gorm:"index;not null" validate:"required,oneof='external' 'password'"`
	// Depending on the type values stored in here will differ. For
	// example:
	// type: external
	// values:
	// 		- provider: AAD
	//		- subject: 9s988s...
	Values string `gorm:"not null;type:json" validate:"required"`

	AccountID   uuid.UUID    `gorm:"index;not null" validate:"required,uuid4"`
	Identifiers []Identifier `gorm:"constraint:OnDelete:CASCADE"`
}

// CredentialType defines a Credential Type
type CredentialType string

const (
	// CredentialTypes
	External CredentialType = "external"
	Password CredentialType = "password"
)

// ExternalPrefix prefixes provider names when a concrete credential type
// is rendered, eg "external.AAD".
const ExternalPrefix = "external."

// CredentialPassword defines the structure for a type password's Values
// field
type CredentialPassword struct {
	HashedPassword string `json:"hashed_password"`
}

// CredentialExternal defines the structure for a type external's Values
// field
type CredentialExternal struct {
	Provider string `json:"provider"`
	Subject  string `json:"subject"`
}

// Used renders the concrete credential type for policy checks:
// "password" for password credentials, "external.<provider>" otherwise.
func (c Credential) Used(values *CredentialExternal) string {
	if c.Type == Password {
		return string(Password)
	}
	if values == nil {
		return string(External)
	}
	return fmt.Sprintf("%s%s", ExternalPrefix, values.Provider)
}

type Repository interface {
	// Create creates a new credential
	Create(ctx context.Context, newCredential Credential) (*Credential, error)
	// GetWithIdentifier retrieves a credential with an identifier
	GetWithIdentifier(ctx context.Context, credentialType CredentialType, identifier string) (*Credential, error)
	// GetWithAccountID retrieves credentials of a type belonging to an account
	GetWithAccountID(ctx context.Context, credentialType CredentialType, accountID uuid.UUID) ([]Credential, error)
	// GetExternal retrieves the credential carrying a provider subject pair
	GetExternal(ctx context.Context, provider string, subject string) (*Credential, error)
	// Update updates a credential
	Update(ctx context.Context, updateCredential Credential) (*Credential, error)
	// Delete deletes a credential via id
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service interface {
	// CreatePassword creates a password credential
	CreatePassword(ctx context.Context, accountID uuid.UUID, password string, identifiers []Identifier) (*Credential, error)
	// ComparePassword compares a password credential
	ComparePassword(ctx context.Context, accountID uuid.UUID, password string) error
	// RemovePassword removes an account's password credential, if any.
	// After linking an account retains at most one non external
	// credential, so the linking flows call this on success.
	RemovePassword(ctx context.Context, accountID uuid.UUID) error
	// CreateExternal attaches a new external credential to an account
	CreateExternal(ctx context.Context, accountID uuid.UUID, provider string, subject string) (*Credential, error)
	// FindExternal locates the account credential matching a provider
	// assertion
	FindExternal(ctx context.Context, provider string, subject string) (*Credential, error)
	// Externals lists an account's external credentials
	Externals(ctx context.Context, accountID uuid.UUID) ([]Credential, error)
	// ReplaceExternal swaps an account's external credential for a new
	// one. Reports false when the repository rejected the swap.
	ReplaceExternal(ctx context.Context, accountID uuid.UUID, provider string, subject string) (*Credential, bool, error)
}
