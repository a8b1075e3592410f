package service

import (
	"context"
	"testing"
	"time"

	linkingMocks "github.com/gallerykit/portal/mocks/flow/linking"
	loginMocks "github.com/gallerykit/portal/mocks/flow/login"
	accountMocks "github.com/gallerykit/portal/mocks/user/account"
	credentialMocks "github.com/gallerykit/portal/mocks/user/credential"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gallerykit/portal/flow/linking"
	"github.com/gallerykit/portal/flow/login"
	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/internal/config"
	"github.com/gallerykit/portal/provider"
	"github.com/gallerykit/portal/user/account"
	"github.com/gallerykit/portal/user/credential"
	"github.com/gofrs/uuid"
)

func newTestService(t *testing.T) (login.Service, *loginMocks.Repository, *accountMocks.Service, *credentialMocks.Service, *linkingMocks.Service) {
	t.Helper()
	mockRepo := &loginMocks.Repository{}
	mockAccounts := &accountMocks.Service{}
	mockCredentials := &credentialMocks.Service{}
	mockLinking := &linkingMocks.Service{}
	testService := NewLoginService(config.Login{
		URL:      "login",
		Lifetime: time.Minute * 10,
	}, mockRepo, mockAccounts, mockCredentials, mockLinking, &provider.Registry{})
	return testService, mockRepo, mockAccounts, mockCredentials, mockLinking
}

func newTestFlow(t *testing.T) login.Login {
	t.Helper()
	return login.Login{
		FlowID:    "live",
		ExpiresAt: time.Now().Add(time.Minute * 10),
	}
}

func newTestAccount(t *testing.T, admin bool) account.Account {
	t.Helper()
	id, err := uuid.NewV4()
	require.NoError(t, err)
	acct := account.Account{
		Username: "polar_bear",
		Email:    "polar_bear@gallerykit.dev",
		Kind:     account.User,
		Admin:    admin,
	}
	acct.ID = id
	return acct
}

func TestLockMessage(t *testing.T) {
	assert.Equal(t, "Your account has been locked. Try again in a minute.", login.LockMessage(1))
	assert.Equal(t, "Your account has been locked. Try again in 2 minutes.", login.LockMessage(2))
	assert.Equal(t, "Your account has been locked. Try again in 10 minutes.", login.LockMessage(10))
}

func TestLoginServiceFind(t *testing.T) {
	ctx := context.Background()
	testService, mockRepo, _, _, _ := newTestService(t)

	t.Run("Empty Flow ID", func(t *testing.T) {
		found, err := testService.Find(ctx, "")
		assert.Nil(t, found)
		assert.Equal(t, internal.ErrorCodeNotFound, internal.CodeOf(err))
	})

	t.Run("Expired Flow", func(t *testing.T) {
		mockRepo.On("GetByFlowID", ctx, "expired").Return(&login.Login{
			FlowID:    "expired",
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil)

		found, err := testService.Find(ctx, "expired")
		assert.Nil(t, found)
		assert.Equal(t, internal.ErrorCodeNotFound, internal.CodeOf(err))
	})
}

func TestLoginServiceSubmitPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Expired Flow", func(t *testing.T) {
		testService, _, mockAccounts, mockCredentials, _ := newTestService(t)

		decision, err := testService.Submit(ctx, login.Login{
			FlowID:    "expired",
			ExpiresAt: time.Now().Add(-time.Minute),
		}, login.Payload{
			Identifier: "polar_bear",
			Password:   "super-secret",
		}, login.SubmitOptions{})
		assert.Nil(t, decision)
		assert.Equal(t, internal.ErrorCodeNotFound, internal.CodeOf(err))
		mockAccounts.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
		mockCredentials.AssertNotCalled(t, "ComparePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Authenticated", func(t *testing.T) {
		testService, _, mockAccounts, mockCredentials, _ := newTestService(t)
		acct := newTestAccount(t, false)

		mockAccounts.On("Find", ctx, "polar_bear").Return(&acct, nil)
		mockCredentials.On("ComparePassword", ctx, acct.ID, "super-secret").Return(nil)
		mockAccounts.On("ResetLoginFailures", ctx, acct).Return(nil)

		decision, err := testService.Submit(ctx, newTestFlow(t), login.Payload{
			Identifier: "polar_bear",
			Password:   "super-secret",
		}, login.SubmitOptions{})
		require.NoError(t, err)
		require.NotNil(t, decision)
		assert.Equal(t, login.Authenticated, decision.Kind)
		assert.Equal(t, "password", decision.Used)
		assert.Equal(t, acct.ID, decision.Account.ID)
	})

	t.Run("Wrong Password Records Failure", func(t *testing.T) {
		testService, _, mockAccounts, mockCredentials, _ := newTestService(t)
		acct := newTestAccount(t, false)

		mockAccounts.On("Find", ctx, "polar_bear").Return(&acct, nil)
		mockCredentials.On("ComparePassword", ctx, acct.ID, "wrong").Return(errors.New("mismatch"))
		mockAccounts.On("RecordLoginFailure", ctx, acct).Return(nil)

		decision, err := testService.Submit(ctx, newTestFlow(t), login.Payload{
			Identifier: "polar_bear",
			Password:   "wrong",
		}, login.SubmitOptions{})
		assert.Nil(t, decision)
		assert.Equal(t, internal.ErrorCodeBadCredentials, internal.CodeOf(err))
		mockAccounts.AssertCalled(t, "RecordLoginFailure", ctx, acct)
	})

	t.Run("Unknown Identifier", func(t *testing.T) {
		testService, _, mockAccounts, _, _ := newTestService(t)

		mockAccounts.On("Find", ctx, "nobody").Return(nil, account.ErrAccountNotFound)

		decision, err := testService.Submit(ctx, newTestFlow(t), login.Payload{
			Identifier: "nobody",
			Password:   "whatever",
		}, login.SubmitOptions{})
		assert.Nil(t, decision)
		assert.Equal(t, internal.ErrorCodeBadCredentials, internal.CodeOf(err))
	})

	t.Run("Locked Account", func(t *testing.T) {
		testService, _, mockAccounts, _, _ := newTestService(t)
		acct := newTestAccount(t, false)
		end := time.Now().Add(time.Minute * 10)
		acct.FailedLoginCount = 5
		acct.LockoutEnd = &end

		mockAccounts.On("Find", ctx, "polar_bear").Return(&acct, nil)

		decision, err := testService.Submit(ctx, newTestFlow(t), login.Payload{
			Identifier: "polar_bear",
			Password:   "super-secret",
		}, login.SubmitOptions{})
		assert.Nil(t, decision)
		assert.Equal(t, internal.ErrorCodeAccountLocked, internal.CodeOf(err))

		var actual *internal.Error
		require.ErrorAs(t, err, &actual)
		assert.Equal(t, login.LockMessage(10), actual.Message())
	})
}

func TestLoginServiceSubmitAssertion(t *testing.T) {
	ctx := context.Background()

	t.Run("Authenticated", func(t *testing.T) {
		testService, _, mockAccounts, mockCredentials, mockLinking := newTestService(t)
		acct := newTestAccount(t, false)

		mockLinking.On("Consume", ctx, "assertion-token").Return(&linking.Assertion{
			Token:    "assertion-token",
			Provider: "MSA",
			Subject:  "subject-1",
			IssuedAt: time.Now(),
		}, nil)
		mockCredentials.On("FindExternal", ctx, "MSA", "subject-1").Return(&credential.Credential{
			Type:      credential.External,
			AccountID: acct.ID,
		}, nil)
		mockAccounts.On("Find", ctx, acct.ID.String()).Return(&acct, nil)

		decision, err := testService.Submit(ctx, newTestFlow(t), login.Payload{
			AssertionToken: "assertion-token",
		}, login.SubmitOptions{})
		require.NoError(t, err)
		require.NotNil(t, decision)
		assert.Equal(t, login.Authenticated, decision.Kind)
		assert.Equal(t, "external.MSA", decision.Used)
	})

	t.Run("Expired Assertion", func(t *testing.T) {
		testService, _, _, _, mockLinking := newTestService(t)

		mockLinking.On("Consume", ctx, "stale").Return(nil, internal.NewErrorf(internal.ErrorCodeExpired, "%v", linking.ErrExpired))

		decision, err := testService.Submit(ctx, newTestFlow(t), login.Payload{
			AssertionToken: "stale",
		}, login.SubmitOptions{})
		assert.Nil(t, decision)
		assert.Equal(t, internal.ErrorCodeExpired, internal.CodeOf(err))
	})

	t.Run("Unlinked External Account", func(t *testing.T) {
		testService, _, _, mockCredentials, mockLinking := newTestService(t)

		mockLinking.On("Consume", ctx, "assertion-token").Return(&linking.Assertion{
			Token:    "assertion-token",
			Provider: "MSA",
			Subject:  "subject-2",
			IssuedAt: time.Now(),
		}, nil)
		mockCredentials.On("FindExternal", ctx, "MSA", "subject-2").Return(nil, errors.New("not found"))

		decision, err := testService.Submit(ctx, newTestFlow(t), login.Payload{
			AssertionToken: "assertion-token",
		}, login.SubmitOptions{})
		assert.Nil(t, decision)
		assert.Equal(t, internal.ErrorCodeNotFound, internal.CodeOf(err))
	})
}

func TestLoginServiceSubmitPolicy(t *testing.T) {
	ctx := context.Background()
	policy := provider.Policy("AAD;MSA")

	t.Run("Admin Password Challenged", func(t *testing.T) {
		testService, _, mockAccounts, mockCredentials, _ := newTestService(t)
		admin := newTestAccount(t, true)

		mockAccounts.On("Find", ctx, "polar_bear").Return(&admin, nil)
		mockCredentials.On("ComparePassword", ctx, admin.ID, "super-secret").Return(nil)
		mockAccounts.On("ResetLoginFailures", ctx, admin).Return(nil)

		decision, err := testService.Submit(ctx, newTestFlow(t), login.Payload{
			Identifier: "polar_bear",
			Password:   "super-secret",
		}, login.SubmitOptions{Policy: policy})
		require.NoError(t, err)
		require.NotNil(t, decision)
		assert.Equal(t, login.Challenge, decision.Kind)
		assert.Equal(t, "AAD", decision.Provider)
		assert.Nil(t, decision.Account)
	})

	t.Run("Admin Listed Provider Passes", func(t *testing.T) {
		testService, _, mockAccounts, mockCredentials, mockLinking := newTestService(t)
		admin := newTestAccount(t, true)

		mockLinking.On("Consume", ctx, "assertion-token").Return(&linking.Assertion{
			Token:    "assertion-token",
			Provider: "MSA",
			Subject:  "subject-3",
			IssuedAt: time.Now(),
		}, nil)
		mockCredentials.On("FindExternal", ctx, "MSA", "subject-3").Return(&credential.Credential{
			Type:      credential.External,
			AccountID: admin.ID,
		}, nil)
		mockAccounts.On("Find", ctx, admin.ID.String()).Return(&admin, nil)

		decision, err := testService.Submit(ctx, newTestFlow(t), login.Payload{
			AssertionToken: "assertion-token",
		}, login.SubmitOptions{Policy: policy})
		require.NoError(t, err)
		require.NotNil(t, decision)
		assert.Equal(t, login.Authenticated, decision.Kind)
		assert.Equal(t, "external.MSA", decision.Used)
	})

	t.Run("Non Admin Unaffected", func(t *testing.T) {
		testService, _, mockAccounts, mockCredentials, _ := newTestService(t)
		acct := newTestAccount(t, false)

		mockAccounts.On("Find", ctx, "polar_bear").Return(&acct, nil)
		mockCredentials.On("ComparePassword", ctx, acct.ID, "super-secret").Return(nil)
		mockAccounts.On("ResetLoginFailures", ctx, acct).Return(nil)

		decision, err := testService.Submit(ctx, newTestFlow(t), login.Payload{
			Identifier: "polar_bear",
			Password:   "super-secret",
		}, login.SubmitOptions{Policy: policy})
		require.NoError(t, err)
		assert.Equal(t, login.Authenticated, decision.Kind)
	})

	t.Run("Empty Policy Skips Check", func(t *testing.T) {
		testService, _, mockAccounts, mockCredentials, _ := newTestService(t)
		admin := newTestAccount(t, true)

		mockAccounts.On("Find", ctx, "polar_bear").Return(&admin, nil)
		mockCredentials.On("ComparePassword", ctx, admin.ID, "super-secret").Return(nil)
		mockAccounts.On("ResetLoginFailures", ctx, admin).Return(nil)

		decision, err := testService.Submit(ctx, newTestFlow(t), login.Payload{
			Identifier: "polar_bear",
			Password:   "super-secret",
		}, login.SubmitOptions{})
		require.NoError(t, err)
		assert.Equal(t, login.Authenticated, decision.Kind)
	})
}

func TestLoginServiceSubmitLinking(t *testing.T) {
	ctx := context.Background()

	t.Run("Links After Password Check", func(t *testing.T) {
		testService, _, mockAccounts, mockCredentials, mockLinking := newTestService(t)
		acct := newTestAccount(t, false)

		mockAccounts.On("Find", ctx, "polar_bear").Return(&acct, nil)
		mockCredentials.On("ComparePassword", ctx, acct.ID, "super-secret").Return(nil)
		mockAccounts.On("ResetLoginFailures", ctx, acct).Return(nil)
		mockLinking.On("Link", ctx, acct, "assertion-token").Return(&linking.Result{
			Account: &acct,
			Used:    "external.AAD",
		}, nil)

		decision, err := testService.Submit(ctx, newTestFlow(t), login.Payload{
			Identifier:     "polar_bear",
			Password:       "super-secret",
			AssertionToken: "assertion-token",
		}, login.SubmitOptions{Linking: true})
		require.NoError(t, err)
		assert.Equal(t, login.Authenticated, decision.Kind)
		assert.Equal(t, "external.AAD", decision.Used)
	})

	t.Run("Missing Assertion", func(t *testing.T) {
		testService, _, _, _, _ := newTestService(t)

		decision, err := testService.Submit(ctx, newTestFlow(t), login.Payload{
			Identifier: "polar_bear",
			Password:   "super-secret",
		}, login.SubmitOptions{Linking: true})
		assert.Nil(t, decision)
		assert.Equal(t, internal.ErrorCodeInvalidArgument, internal.CodeOf(err))
	})

	t.Run("Conflict Propagates", func(t *testing.T) {
		testService, _, mockAccounts, mockCredentials, mockLinking := newTestService(t)
		acct := newTestAccount(t, false)

		mockAccounts.On("Find", ctx, "polar_bear").Return(&acct, nil)
		mockCredentials.On("ComparePassword", ctx, acct.ID, "super-secret").Return(nil)
		mockAccounts.On("ResetLoginFailures", ctx, acct).Return(nil)
		mockLinking.On("Link", ctx, acct, "assertion-token").Return(nil, internal.NewErrorf(internal.ErrorCodeConflict, "%v", linking.ErrAlreadyLinked))

		decision, err := testService.Submit(ctx, newTestFlow(t), login.Payload{
			Identifier:     "polar_bear",
			Password:       "super-secret",
			AssertionToken: "assertion-token",
		}, login.SubmitOptions{Linking: true})
		assert.Nil(t, decision)
		assert.Equal(t, internal.ErrorCodeConflict, internal.CodeOf(err))
	})
}
