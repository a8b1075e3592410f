package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gallerykit/portal/email"
	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/internal/validate"
	"github.com/gallerykit/portal/org"
	"github.com/gallerykit/portal/pkg/nanoid"
	"github.com/gallerykit/portal/user/account"
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
)

type service struct {
	log *logrus.Logger

	r  org.Repository
	as account.Service
	ec email.Client
}

func NewOrgService(log *logrus.Logger, r org.Repository, as account.Service, ec email.Client) org.Service {
	return &service{
		log: log,

		r:  r,
		as: as,
		ec: ec,
	}
}

// organization resolves an account and insists it is an organization
func (s *service) organization(ctx context.Context, orgID uuid.UUID) (*account.Account, error) {
	found, err := s.as.Find(ctx, orgID.String())
	if err != nil {
		return nil, err
	}
	if !found.IsOrganization() {
		return nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "%v", org.ErrNotOrganization)
	}
	return found, nil
}

func (s *service) RequestMembership(ctx context.Context, orgID uuid.UUID, requesterID uuid.UUID) (*org.Membership, error) {
	found, err := s.organization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if existing, err := s.r.GetMembership(ctx, orgID, requesterID); err == nil && existing != nil {
		return nil, internal.NewErrorf(internal.ErrorCodeConflict, "%v", org.ErrDuplicateRequest)
	}
	requester, err := s.as.Find(ctx, requesterID.String())
	if err != nil {
		return nil, err
	}
	token, err := nanoid.New()
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "%v", internal.ErrFailedNanoID)
	}
	created, err := s.r.CreateMembership(ctx, org.Membership{
		OrgID:        orgID,
		AccountID:    requesterID,
		State:        org.Pending,
		ConfirmToken: token,
	})
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to create membership request")
	}
	s.notifyAdmins(ctx, *found, *requester, token)
	return created, nil
}

// notifyAdmins mails every confirmed org admin a confirmation link.
// Delivery problems are logged, never surfaced to the requester.
func (s *service) notifyAdmins(ctx context.Context, orgAcct account.Account, requester account.Account, token string) {
	members, err := s.r.ListMemberships(ctx, orgAcct.ID)
	if err != nil {
		s.log.WithError(err).WithField("org", orgAcct.ID).Warn("Failed to list organization admins")
		return
	}
	confirmURL := fmt.Sprintf("/orgs/%s/confirm?token=%s", orgAcct.Username, token)
	for _, member := range members {
		if member.State != org.Confirmed || !member.Admin {
			continue
		}
		admin, err := s.as.Find(ctx, member.AccountID.String())
		if err != nil {
			continue
		}
		if err := s.ec.SendMembershipRequest(admin.Email, orgAcct, requester, confirmURL); err != nil {
			s.log.WithError(err).WithField("org", orgAcct.ID).Warn("Failed to send membership request email")
		}
	}
}

func (s *service) ConfirmMembership(ctx context.Context, actorID uuid.UUID, token string) (*org.Membership, error) {
	if err := validate.Var(token, "required"); err != nil {
		return nil, internal.NewErrorf(internal.ErrorCodeNotFound, "%v", org.ErrRequestNotFound)
	}
	found, err := s.r.GetMembershipByToken(ctx, token)
	if err != nil || found == nil || found.State != org.Pending {
		return nil, internal.NewErrorf(internal.ErrorCodeNotFound, "%v", org.ErrRequestNotFound)
	}
	if !s.IsOrgAdmin(ctx, found.OrgID, actorID) {
		return nil, internal.NewErrorf(internal.ErrorCodePermissionDenied, "%v", org.ErrNotOrgAdmin)
	}
	now := time.Now()
	found.State = org.Confirmed
	found.ConfirmToken = ""
	found.ConfirmedAt = &now
	updated, err := s.r.UpdateMembership(ctx, *found)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to confirm membership")
	}
	return updated, nil
}

func (s *service) CancelMembership(ctx context.Context, actorID uuid.UUID, orgID uuid.UUID, accountID uuid.UUID) error {
	// Members may always remove themselves
	if actorID != accountID && !s.IsOrgAdmin(ctx, orgID, actorID) {
		return internal.NewErrorf(internal.ErrorCodePermissionDenied, "%v", org.ErrNotOrgAdmin)
	}
	found, err := s.r.GetMembership(ctx, orgID, accountID)
	if err != nil || found == nil {
		return internal.NewErrorf(internal.ErrorCodeNotFound, "%v", org.ErrNotMember)
	}
	return s.r.DeleteMembership(ctx, found.ID)
}

func (s *service) Members(ctx context.Context, orgID uuid.UUID) ([]org.Membership, error) {
	if _, err := s.organization(ctx, orgID); err != nil {
		return nil, err
	}
	return s.r.ListMemberships(ctx, orgID)
}

func (s *service) IsOrgAdmin(ctx context.Context, orgID uuid.UUID, accountID uuid.UUID) bool {
	found, err := s.r.GetMembership(ctx, orgID, accountID)
	if err != nil || found == nil {
		return false
	}
	return found.State == org.Confirmed && found.Admin
}

func (s *service) AddCertificate(ctx context.Context, actorID uuid.UUID, orgID uuid.UUID, thumbprint string) (*org.Certificate, error) {
	if !s.IsOrgAdmin(ctx, orgID, actorID) {
		return nil, internal.NewErrorf(internal.ErrorCodePermissionDenied, "%v", org.ErrNotOrgAdmin)
	}
	if err := validate.Var(thumbprint, "required,hexadecimal"); err != nil {
		return nil, err
	}
	created, err := s.r.CreateCertificate(ctx, org.Certificate{
		OrgID:      orgID,
		Thumbprint: thumbprint,
		Active:     true,
	})
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeConflict, "%v", org.ErrDuplicateThumb)
	}
	return created, nil
}

func (s *service) Certificates(ctx context.Context, actorID uuid.UUID, orgID uuid.UUID) ([]org.Certificate, error) {
	member, err := s.r.GetMembership(ctx, orgID, actorID)
	if err != nil || member == nil || member.State != org.Confirmed {
		return nil, internal.NewErrorf(internal.ErrorCodePermissionDenied, "%v", org.ErrNotMember)
	}
	return s.r.ListCertificates(ctx, orgID)
}

func (s *service) SetCertificateActivation(ctx context.Context, actorID uuid.UUID, certificateID uuid.UUID, active bool) (*org.Certificate, error) {
	found, err := s.r.GetCertificate(ctx, certificateID)
	if err != nil || found == nil {
		return nil, internal.NewErrorf(internal.ErrorCodeNotFound, "%v", org.ErrCertificateGone)
	}
	if !s.IsOrgAdmin(ctx, found.OrgID, actorID) {
		return nil, internal.NewErrorf(internal.ErrorCodePermissionDenied, "%v", org.ErrNotOrgAdmin)
	}
	found.Active = active
	updated, err := s.r.UpdateCertificate(ctx, *found)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to update certificate")
	}
	return updated, nil
}

func (s *service) DeleteCertificate(ctx context.Context, actorID uuid.UUID, certificateID uuid.UUID) error {
	found, err := s.r.GetCertificate(ctx, certificateID)
	if err != nil || found == nil {
		return internal.NewErrorf(internal.ErrorCodeNotFound, "%v", org.ErrCertificateGone)
	}
	if !s.IsOrgAdmin(ctx, found.OrgID, actorID) {
		return internal.NewErrorf(internal.ErrorCodePermissionDenied, "%v", org.ErrNotOrgAdmin)
	}
	return s.r.DeleteCertificate(ctx, found.ID)
}
