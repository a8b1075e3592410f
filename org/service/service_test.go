package service

import (
	"context"
	"io"
	"testing"

	emailMocks "github.com/gallerykit/portal/mocks/email"
	orgMocks "github.com/gallerykit/portal/mocks/org"
	accountMocks "github.com/gallerykit/portal/mocks/user/account"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/org"
	"github.com/gallerykit/portal/user/account"
	"github.com/gofrs/uuid"
)

func newTestService(t *testing.T) (org.Service, *orgMocks.Repository, *accountMocks.Service, *emailMocks.Client) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	mockRepo := &orgMocks.Repository{}
	mockAccounts := &accountMocks.Service{}
	mockEmail := &emailMocks.Client{}
	testService := NewOrgService(log, mockRepo, mockAccounts, mockEmail)
	return testService, mockRepo, mockAccounts, mockEmail
}

func newID(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := uuid.NewV4()
	require.NoError(t, err)
	return id
}

func newOrgAccount(t *testing.T) *account.Account {
	t.Helper()
	acct := account.Account{
		Username: "gallery_publishers",
		Email:    "publishers@gallerykit.dev",
		Kind:     account.Organization,
	}
	acct.ID = newID(t)
	return &acct
}

func TestOrgServiceRequestMembership(t *testing.T) {
	ctx := context.Background()

	t.Run("Files Request And Notifies Admins", func(t *testing.T) {
		testService, mockRepo, mockAccounts, mockEmail := newTestService(t)
		orgAcct := newOrgAccount(t)
		requesterID := newID(t)
		adminID := newID(t)

		requester := account.Account{Username: "polar_bear", Email: "polar_bear@gallerykit.dev", Kind: account.User}
		requester.ID = requesterID
		admin := account.Account{Username: "walrus", Email: "walrus@gallerykit.dev", Kind: account.User}
		admin.ID = adminID

		mockAccounts.On("Find", ctx, orgAcct.ID.String()).Return(orgAcct, nil)
		mockAccounts.On("Find", ctx, requesterID.String()).Return(&requester, nil)
		mockAccounts.On("Find", ctx, adminID.String()).Return(&admin, nil)
		mockRepo.On("GetMembership", ctx, orgAcct.ID, requesterID).Return(nil, errors.New("record not found"))
		mockRepo.On("CreateMembership", ctx, mock.Anything).Return(&org.Membership{
			OrgID:     orgAcct.ID,
			AccountID: requesterID,
			State:     org.Pending,
		}, nil)
		mockRepo.On("ListMemberships", ctx, orgAcct.ID).Return([]org.Membership{
			{OrgID: orgAcct.ID, AccountID: adminID, State: org.Confirmed, Admin: true},
			{OrgID: orgAcct.ID, AccountID: newID(t), State: org.Confirmed, Admin: false},
		}, nil)
		mockEmail.On("SendMembershipRequest", admin.Email, *orgAcct, requester, mock.Anything).Return(nil)

		created, err := testService.RequestMembership(ctx, orgAcct.ID, requesterID)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, org.Pending, created.State)
		// Only the admin gets mail
		mockEmail.AssertNumberOfCalls(t, "SendMembershipRequest", 1)
	})

	t.Run("Duplicate Request", func(t *testing.T) {
		testService, mockRepo, mockAccounts, _ := newTestService(t)
		orgAcct := newOrgAccount(t)
		requesterID := newID(t)

		mockAccounts.On("Find", ctx, orgAcct.ID.String()).Return(orgAcct, nil)
		mockRepo.On("GetMembership", ctx, orgAcct.ID, requesterID).Return(&org.Membership{
			OrgID:     orgAcct.ID,
			AccountID: requesterID,
			State:     org.Pending,
		}, nil)

		created, err := testService.RequestMembership(ctx, orgAcct.ID, requesterID)
		assert.Nil(t, created)
		assert.Equal(t, internal.ErrorCodeConflict, internal.CodeOf(err))
	})

	t.Run("Not An Organization", func(t *testing.T) {
		testService, _, mockAccounts, _ := newTestService(t)
		user := account.Account{Username: "polar_bear", Email: "polar_bear@gallerykit.dev", Kind: account.User}
		user.ID = newID(t)

		mockAccounts.On("Find", ctx, user.ID.String()).Return(&user, nil)

		created, err := testService.RequestMembership(ctx, user.ID, newID(t))
		assert.Nil(t, created)
		assert.Equal(t, internal.ErrorCodeInvalidArgument, internal.CodeOf(err))
	})
}

func TestOrgServiceConfirmMembership(t *testing.T) {
	ctx := context.Background()

	t.Run("Admin Confirms", func(t *testing.T) {
		testService, mockRepo, _, _ := newTestService(t)
		orgID := newID(t)
		adminID := newID(t)
		pending := org.Membership{
			OrgID:        orgID,
			AccountID:    newID(t),
			State:        org.Pending,
			ConfirmToken: "confirm-token",
		}

		mockRepo.On("GetMembershipByToken", ctx, "confirm-token").Return(&pending, nil)
		mockRepo.On("GetMembership", ctx, orgID, adminID).Return(&org.Membership{
			OrgID:     orgID,
			AccountID: adminID,
			State:     org.Confirmed,
			Admin:     true,
		}, nil)
		mockRepo.On("UpdateMembership", ctx, mock.MatchedBy(func(m org.Membership) bool {
			return m.State == org.Confirmed && m.ConfirmToken == "" && m.ConfirmedAt != nil
		})).Return(&org.Membership{
			OrgID:     orgID,
			AccountID: pending.AccountID,
			State:     org.Confirmed,
		}, nil)

		confirmed, err := testService.ConfirmMembership(ctx, adminID, "confirm-token")
		require.NoError(t, err)
		assert.Equal(t, org.Confirmed, confirmed.State)
	})

	t.Run("Non Admin Rejected", func(t *testing.T) {
		testService, mockRepo, _, _ := newTestService(t)
		orgID := newID(t)
		memberID := newID(t)

		mockRepo.On("GetMembershipByToken", ctx, "confirm-token").Return(&org.Membership{
			OrgID:        orgID,
			AccountID:    newID(t),
			State:        org.Pending,
			ConfirmToken: "confirm-token",
		}, nil)
		mockRepo.On("GetMembership", ctx, orgID, memberID).Return(&org.Membership{
			OrgID:     orgID,
			AccountID: memberID,
			State:     org.Confirmed,
			Admin:     false,
		}, nil)

		confirmed, err := testService.ConfirmMembership(ctx, memberID, "confirm-token")
		assert.Nil(t, confirmed)
		assert.Equal(t, internal.ErrorCodePermissionDenied, internal.CodeOf(err))
	})

	t.Run("Unknown Or Handled Token", func(t *testing.T) {
		testService, mockRepo, _, _ := newTestService(t)

		mockRepo.On("GetMembershipByToken", ctx, "stale").Return(nil, errors.New("record not found"))

		confirmed, err := testService.ConfirmMembership(ctx, newID(t), "stale")
		assert.Nil(t, confirmed)
		assert.Equal(t, internal.ErrorCodeNotFound, internal.CodeOf(err))
	})
}

func TestOrgServiceCertificates(t *testing.T) {
	ctx := context.Background()

	t.Run("Admin Adds Certificate", func(t *testing.T) {
		testService, mockRepo, _, _ := newTestService(t)
		orgID := newID(t)
		adminID := newID(t)

		mockRepo.On("GetMembership", ctx, orgID, adminID).Return(&org.Membership{
			OrgID:     orgID,
			AccountID: adminID,
			State:     org.Confirmed,
			Admin:     true,
		}, nil)
		mockRepo.On("CreateCertificate", ctx, mock.MatchedBy(func(cert org.Certificate) bool {
			return cert.OrgID == orgID && cert.Thumbprint == "a1b2c3d4e5" && cert.Active
		})).Return(&org.Certificate{
			OrgID:      orgID,
			Thumbprint: "a1b2c3d4e5",
			Active:     true,
		}, nil)

		created, err := testService.AddCertificate(ctx, adminID, orgID, "a1b2c3d4e5")
		require.NoError(t, err)
		assert.True(t, created.Active)
	})

	t.Run("Member Cannot Add", func(t *testing.T) {
		testService, mockRepo, _, _ := newTestService(t)
		orgID := newID(t)
		memberID := newID(t)

		mockRepo.On("GetMembership", ctx, orgID, memberID).Return(&org.Membership{
			OrgID:     orgID,
			AccountID: memberID,
			State:     org.Confirmed,
			Admin:     false,
		}, nil)

		created, err := testService.AddCertificate(ctx, memberID, orgID, "a1b2c3d4e5")
		assert.Nil(t, created)
		assert.Equal(t, internal.ErrorCodePermissionDenied, internal.CodeOf(err))
	})

	t.Run("Deactivation Is Admin Gated", func(t *testing.T) {
		testService, mockRepo, _, _ := newTestService(t)
		orgID := newID(t)
		adminID := newID(t)
		certID := newID(t)
		cert := org.Certificate{OrgID: orgID, Thumbprint: "a1b2c3d4e5", Active: true}
		cert.ID = certID

		mockRepo.On("GetCertificate", ctx, certID).Return(&cert, nil)
		mockRepo.On("GetMembership", ctx, orgID, adminID).Return(&org.Membership{
			OrgID:     orgID,
			AccountID: adminID,
			State:     org.Confirmed,
			Admin:     true,
		}, nil)
		mockRepo.On("UpdateCertificate", ctx, mock.MatchedBy(func(updated org.Certificate) bool {
			return !updated.Active
		})).Return(&org.Certificate{OrgID: orgID, Thumbprint: "a1b2c3d4e5", Active: false}, nil)

		updated, err := testService.SetCertificateActivation(ctx, adminID, certID, false)
		require.NoError(t, err)
		assert.False(t, updated.Active)
	})
}
