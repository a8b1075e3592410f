package service

import (
	"context"
	"testing"
	"time"

	linkingMocks "github.com/gallerykit/portal/mocks/flow/linking"
	credentialMocks "github.com/gallerykit/portal/mocks/user/credential"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gallerykit/portal/flow/linking"
	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/internal/config"
	"github.com/gallerykit/portal/user/account"
	"github.com/gallerykit/portal/user/credential"
	"github.com/gofrs/uuid"
)

func newTestService(t *testing.T) (linking.Service, *linkingMocks.Repository, *credentialMocks.Service) {
	t.Helper()
	mockRepo := &linkingMocks.Repository{}
	mockCredentials := &credentialMocks.Service{}
	testService := NewLinkingService(config.Linking{
		URL:      "link",
		Lifetime: time.Minute * 5,
	}, mockRepo, mockCredentials)
	return testService, mockRepo, mockCredentials
}

func newTestAccount(t *testing.T, kind account.Kind, admin bool) account.Account {
	t.Helper()
	id, err := uuid.NewV4()
	require.NoError(t, err)
	acct := account.Account{
		Username: "polar_bear",
		Email:    "polar_bear@gallerykit.dev",
		Kind:     kind,
		Admin:    admin,
	}
	acct.ID = id
	return acct
}

func newAssertion(token string, provider string) *linking.Assertion {
	return &linking.Assertion{
		Token:    token,
		Provider: provider,
		Subject:  "subject-1",
		IssuedAt: time.Now(),
	}
}

func TestLinkingServiceConsume(t *testing.T) {
	ctx := context.Background()
	testService, mockRepo, _ := newTestService(t)

	// Single use: the repository hands an assertion out exactly once
	mockRepo.On("Consume", ctx, "one-shot").Return(newAssertion("one-shot", "AAD"), nil).Once()
	mockRepo.On("Consume", ctx, "one-shot").Return(nil, errors.New("redis: nil"))

	first, err := testService.Consume(ctx, "one-shot")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "AAD", first.Provider)

	second, err := testService.Consume(ctx, "one-shot")
	assert.Nil(t, second)
	assert.Equal(t, internal.ErrorCodeExpired, internal.CodeOf(err))

	t.Run("Empty Token", func(t *testing.T) {
		got, err := testService.Consume(ctx, "")
		assert.Nil(t, got)
		assert.Equal(t, internal.ErrorCodeExpired, internal.CodeOf(err))
	})
}

func TestLinkingServiceLink(t *testing.T) {
	ctx := context.Background()

	t.Run("Attaches And Removes Password", func(t *testing.T) {
		testService, mockRepo, mockCredentials := newTestService(t)
		acct := newTestAccount(t, account.User, false)

		mockCredentials.On("Externals", ctx, acct.ID).Return(nil, nil)
		mockRepo.On("Consume", ctx, "assertion-token").Return(newAssertion("assertion-token", "AAD"), nil)
		mockCredentials.On("CreateExternal", ctx, acct.ID, "AAD", "subject-1").Return(&credential.Credential{
			Type:      credential.External,
			AccountID: acct.ID,
		}, nil)
		mockCredentials.On("RemovePassword", ctx, acct.ID).Return(nil)

		result, err := testService.Link(ctx, acct, "assertion-token")
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "external.AAD", result.Used)
		mockCredentials.AssertCalled(t, "RemovePassword", ctx, acct.ID)
	})

	t.Run("Non Admin Already Linked", func(t *testing.T) {
		testService, mockRepo, mockCredentials := newTestService(t)
		acct := newTestAccount(t, account.User, false)

		mockCredentials.On("Externals", ctx, acct.ID).Return([]credential.Credential{
			{Type: credential.External, AccountID: acct.ID},
		}, nil)

		result, err := testService.Link(ctx, acct, "assertion-token")
		assert.Nil(t, result)
		assert.Equal(t, internal.ErrorCodeConflict, internal.CodeOf(err))
		// The conflict must not burn the single-use assertion
		mockRepo.AssertNotCalled(t, "Consume", mock.Anything, mock.Anything)
	})

	t.Run("Admin May Hold Several", func(t *testing.T) {
		testService, mockRepo, mockCredentials := newTestService(t)
		admin := newTestAccount(t, account.User, true)

		mockRepo.On("Consume", ctx, "assertion-token").Return(newAssertion("assertion-token", "MSA"), nil)
		mockCredentials.On("CreateExternal", ctx, admin.ID, "MSA", "subject-1").Return(&credential.Credential{
			Type:      credential.External,
			AccountID: admin.ID,
		}, nil)
		mockCredentials.On("RemovePassword", ctx, admin.ID).Return(nil)

		result, err := testService.Link(ctx, admin, "assertion-token")
		require.NoError(t, err)
		assert.Equal(t, "external.MSA", result.Used)
		// No single-credential probe for admins
		mockCredentials.AssertNotCalled(t, "Externals", mock.Anything, mock.Anything)
	})

	t.Run("Organization Account", func(t *testing.T) {
		testService, mockRepo, _ := newTestService(t)
		org := newTestAccount(t, account.Organization, false)

		result, err := testService.Link(ctx, org, "assertion-token")
		assert.Nil(t, result)
		assert.Equal(t, internal.ErrorCodeConflict, internal.CodeOf(err))
		mockRepo.AssertNotCalled(t, "Consume", mock.Anything, mock.Anything)
	})
}

func TestLinkingServiceChange(t *testing.T) {
	ctx := context.Background()

	t.Run("Swaps Credential", func(t *testing.T) {
		testService, mockRepo, mockCredentials := newTestService(t)
		acct := newTestAccount(t, account.User, false)

		mockRepo.On("Consume", ctx, "assertion-token").Return(newAssertion("assertion-token", "MSA"), nil)
		mockCredentials.On("ReplaceExternal", ctx, acct.ID, "MSA", "subject-1").Return(&credential.Credential{
			Type:      credential.External,
			AccountID: acct.ID,
		}, true, nil)
		mockCredentials.On("RemovePassword", ctx, acct.ID).Return(nil)

		result, err := testService.Change(ctx, acct, "assertion-token")
		require.NoError(t, err)
		assert.Equal(t, "external.MSA", result.Used)
	})

	t.Run("Failure Message Is Sanitized", func(t *testing.T) {
		testService, mockRepo, mockCredentials := newTestService(t)
		acct := newTestAccount(t, account.User, false)

		mockRepo.On("Consume", ctx, "assertion-token").Return(newAssertion("assertion-token", "MSA"), nil)
		mockCredentials.On("ReplaceExternal", ctx, acct.ID, "MSA", "subject-1").Return(nil, false, internal.NewErrorf(internal.ErrorCodeConflict, "Identity John Doe <john@d.com> is taken"))

		result, err := testService.Change(ctx, acct, "assertion-token")
		assert.Nil(t, result)

		var actual *internal.Error
		require.ErrorAs(t, err, &actual)
		assert.Equal(t, internal.ErrorCodeConflict, actual.Code())
		assert.Equal(t, "Identity John Doe %3Cjohn@d.com%3E is taken", actual.Message())
		assert.NotContains(t, actual.Message(), "<")
	})
}
