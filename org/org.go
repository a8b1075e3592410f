// Package org covers organization accounts: membership requests and
// signing certificates. Both rule sets are deliberately shallow; the
// interesting decisions live in who may perform them.
package org

import (
	"context"
	"errors"
	"time"

	"github.com/gallerykit/portal/internal"
	"github.com/gofrs/uuid"
)

var (
	ErrNotOrganization   = errors.New("Account is not an organization")
	ErrNotMember         = errors.New("Account is not a member of this organization")
	ErrNotOrgAdmin       = errors.New("Only organization administrators may do this")
	ErrDuplicateRequest  = errors.New("A membership request is already pending")
	ErrRequestNotFound   = errors.New("Membership request does not exist or has already been handled")
	ErrDuplicateThumb    = errors.New("A certificate with this thumbprint is already registered")
	ErrCertificateGone   = errors.New("Certificate does not exist")
)

// MembershipState tracks a membership through its request lifecycle
type MembershipState string

const (
	Pending   MembershipState = "pending"
	Confirmed MembershipState = "confirmed"
)

// Membership ties an account to an organization. A membership starts as
// a pending request keyed by a confirmation token and only counts once
// confirmed.
type Membership struct {
	internal.Base
	OrgID     uuid.UUID       `json:"org_id" gorm:"index:idx_org_member,unique;not null" validate:"required"`
	AccountID uuid.UUID       `json:"account_id" gorm:"index:idx_org_member,unique;not null" validate:"required"`
	State     MembershipState `json:"state" gorm:"index;not null;default:pending" validate:"required,oneof='pending' 'confirmed'"`
	// Admin marks an organization administrator. Org admins confirm
	// requests, manage certificates and carry package permissions for
	// the organization's packages.
	Admin bool `json:"admin" gorm:"not null;default:false"`

	// ConfirmToken is the single-use token mailed to the organization
	// admins. Cleared on confirmation.
	ConfirmToken string     `json:"-" gorm:"index"`
	ConfirmedAt  *time.Time `json:"confirmed_at,omitempty"`
}

// Certificate is a signing certificate registered to an organization,
// identified by its thumbprint.
type Certificate struct {
	internal.Base
	OrgID      uuid.UUID `json:"org_id" gorm:"index;not null" validate:"required"`
	Thumbprint string    `json:"thumbprint" gorm:"uniqueIndex;not null" validate:"required"`
	Active     bool      `json:"active" gorm:"not null;default:true"`
}

type Repository interface {
	CreateMembership(ctx context.Context, newMembership Membership) (*Membership, error)
	GetMembership(ctx context.Context, orgID uuid.UUID, accountID uuid.UUID) (*Membership, error)
	GetMembershipByToken(ctx context.Context, token string) (*Membership, error)
	ListMemberships(ctx context.Context, orgID uuid.UUID) ([]Membership, error)
	UpdateMembership(ctx context.Context, updateMembership Membership) (*Membership, error)
	DeleteMembership(ctx context.Context, id uuid.UUID) error

	CreateCertificate(ctx context.Context, newCertificate Certificate) (*Certificate, error)
	GetCertificate(ctx context.Context, id uuid.UUID) (*Certificate, error)
	ListCertificates(ctx context.Context, orgID uuid.UUID) ([]Certificate, error)
	UpdateCertificate(ctx context.Context, updateCertificate Certificate) (*Certificate, error)
	DeleteCertificate(ctx context.Context, id uuid.UUID) error
}

type Service interface {
	// RequestMembership files a pending request and mails the org admins
	// a confirmation link
	RequestMembership(ctx context.Context, orgID uuid.UUID, requesterID uuid.UUID) (*Membership, error)
	// ConfirmMembership redeems a confirmation token. Single use.
	ConfirmMembership(ctx context.Context, actorID uuid.UUID, token string) (*Membership, error)
	// CancelMembership withdraws a pending request or removes a member.
	// Members may remove themselves; anything else needs an org admin.
	CancelMembership(ctx context.Context, actorID uuid.UUID, orgID uuid.UUID, accountID uuid.UUID) error
	// Members lists an organization's memberships
	Members(ctx context.Context, orgID uuid.UUID) ([]Membership, error)
	// IsOrgAdmin reports whether the account holds a confirmed admin
	// membership of the organization
	IsOrgAdmin(ctx context.Context, orgID uuid.UUID, accountID uuid.UUID) bool

	// AddCertificate registers a signing certificate by thumbprint
	AddCertificate(ctx context.Context, actorID uuid.UUID, orgID uuid.UUID, thumbprint string) (*Certificate, error)
	// Certificates lists an organization's certificates
	Certificates(ctx context.Context, actorID uuid.UUID, orgID uuid.UUID) ([]Certificate, error)
	// SetCertificateActivation flips a certificate's active flag
	SetCertificateActivation(ctx context.Context, actorID uuid.UUID, certificateID uuid.UUID, active bool) (*Certificate, error)
	// DeleteCertificate removes a certificate
	DeleteCertificate(ctx context.Context, actorID uuid.UUID, certificateID uuid.UUID) error
}
