package service

import (
	"context"
	"testing"
	"time"

	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/internal/config"
	mocks "github.com/gallerykit/portal/mocks/user/account"
	"github.com/gallerykit/portal/user/account"
	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testLockout = config.Lockout{
	MaxAttempts: 5,
	Duration:    time.Minute * 10,
}

func newTestAccount() account.Account {
	id, _ := uuid.NewV4()
	return account.Account{
		BaseSoftDelete: internal.BaseSoftDelete{ID: id},
		Username:       "john_doe",
		Email:          "john@doe.com",
		Kind:           account.User,
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates when identity is free", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		s := NewAccountService(testLockout, mockRepo)

		acct := newTestAccount()
		mockRepo.On("GetWithIdentifier", ctx, acct.Username).Return(nil, errors.New("record not found"))
		mockRepo.On("GetWithIdentifier", ctx, acct.Email).Return(nil, errors.New("record not found"))
		mockRepo.On("Create", ctx, acct).Return(&acct, nil)

		created, err := s.Create(ctx, acct)
		require.NoError(t, err)
		assert.Equal(t, acct.Username, created.Username)
	})

	t.Run("rejects a profane username", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		s := NewAccountService(testLockout, mockRepo)

		acct := newTestAccount()
		acct.Username = "fuck_this"

		created, err := s.Create(ctx, acct)
		require.Error(t, err)
		assert.Nil(t, created)
		assert.Equal(t, account.ErrUsernameProfane.Error(), err.(*internal.Error).Message())
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects a taken username", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		s := NewAccountService(testLockout, mockRepo)

		acct := newTestAccount()
		existing := newTestAccount()
		mockRepo.On("GetWithIdentifier", ctx, acct.Username).Return(&existing, nil)
		mockRepo.On("GetWithIdentifier", ctx, acct.Email).Return(nil, errors.New("record not found"))

		created, err := s.Create(ctx, acct)
		require.Error(t, err)
		assert.Nil(t, created)
		assert.Equal(t, account.ErrDuplicateIdentity.Error(), err.(*internal.Error).Message())
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		s := NewAccountService(testLockout, mockRepo)

		acct := newTestAccount()
		existing := newTestAccount()
		mockRepo.On("GetWithIdentifier", ctx, acct.Username).Return(nil, errors.New("record not found"))
		mockRepo.On("GetWithIdentifier", ctx, acct.Email).Return(&existing, nil)

		created, err := s.Create(ctx, acct)
		require.Error(t, err)
		assert.Nil(t, created)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects when username and email are both taken", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		s := NewAccountService(testLockout, mockRepo)

		acct := newTestAccount()
		existingUsername := newTestAccount()
		existingEmail := newTestAccount()
		mockRepo.On("GetWithIdentifier", ctx, acct.Username).Return(&existingUsername, nil)
		mockRepo.On("GetWithIdentifier", ctx, acct.Email).Return(&existingEmail, nil)

		created, err := s.Create(ctx, acct)
		require.Error(t, err)
		assert.Nil(t, created)
		assert.Equal(t, account.ErrDuplicateIdentity.Error(), err.(*internal.Error).Message())
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects an invalid payload", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		s := NewAccountService(testLockout, mockRepo)

		acct := newTestAccount()
		acct.Email = "not-an-email"

		created, err := s.Create(ctx, acct)
		require.Error(t, err)
		assert.Nil(t, created)
	})
}

func TestFind(t *testing.T) {
	ctx := context.Background()

	t.Run("finds by id", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		s := NewAccountService(testLockout, mockRepo)

		acct := newTestAccount()
		mockRepo.On("Get", ctx, acct.ID).Return(&acct, nil)

		found, err := s.Find(ctx, acct.ID.String())
		require.NoError(t, err)
		assert.Equal(t, acct.ID, found.ID)
	})

	t.Run("finds by username", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		s := NewAccountService(testLockout, mockRepo)

		acct := newTestAccount()
		mockRepo.On("GetWithIdentifier", ctx, acct.Username).Return(&acct, nil)

		found, err := s.Find(ctx, acct.Username)
		require.NoError(t, err)
		assert.Equal(t, acct.ID, found.ID)
	})

	t.Run("maps a miss to not found", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		s := NewAccountService(testLockout, mockRepo)

		mockRepo.On("GetWithIdentifier", ctx, "ghost").Return(nil, errors.New("record not found"))

		found, err := s.Find(ctx, "ghost")
		require.Error(t, err)
		assert.Nil(t, found)
		assert.Equal(t, internal.ErrorCodeNotFound, internal.CodeOf(err))
	})
}

func TestRecordLoginFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("increments below the threshold", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		s := NewAccountService(testLockout, mockRepo)

		acct := newTestAccount()
		acct.FailedLoginCount = 2
		mockRepo.On("Update", ctx, mock.MatchedBy(func(updated account.Account) bool {
			return updated.FailedLoginCount == 3 && updated.LockoutEnd == nil
		})).Return(&acct, nil)

		require.NoError(t, s.RecordLoginFailure(ctx, acct))
		mockRepo.AssertExpectations(t)
	})

	t.Run("locks at the threshold and resets the counter", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		s := NewAccountService(testLockout, mockRepo)

		acct := newTestAccount()
		acct.FailedLoginCount = 4
		before := time.Now()
		mockRepo.On("Update", ctx, mock.MatchedBy(func(updated account.Account) bool {
			if updated.FailedLoginCount != 0 || updated.LockoutEnd == nil {
				return false
			}
			return updated.LockoutEnd.After(before.Add(testLockout.Duration - time.Minute))
		})).Return(&acct, nil)

		require.NoError(t, s.RecordLoginFailure(ctx, acct))
		mockRepo.AssertExpectations(t)
	})
}

func TestResetLoginFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("clears counters and lockout", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		s := NewAccountService(testLockout, mockRepo)

		acct := newTestAccount()
		acct.FailedLoginCount = 3
		end := time.Now().Add(time.Minute)
		acct.LockoutEnd = &end
		mockRepo.On("Update", ctx, mock.MatchedBy(func(updated account.Account) bool {
			return updated.FailedLoginCount == 0 && updated.LockoutEnd == nil
		})).Return(&acct, nil)

		require.NoError(t, s.ResetLoginFailures(ctx, acct))
		mockRepo.AssertExpectations(t)
	})

	t.Run("skips the write when nothing to clear", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		s := NewAccountService(testLockout, mockRepo)

		require.NoError(t, s.ResetLoginFailures(ctx, newTestAccount()))
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestLocked(t *testing.T) {
	now := time.Now()

	t.Run("remaining minutes round up", func(t *testing.T) {
		end := now.Add(time.Minute + time.Second)
		acct := newTestAccount()
		acct.LockoutEnd = &end

		locked, minutes := acct.Locked(now)
		assert.True(t, locked)
		assert.Equal(t, 2, minutes)
	})

	t.Run("expired lockout is not locked", func(t *testing.T) {
		end := now.Add(-time.Second)
		acct := newTestAccount()
		acct.LockoutEnd = &end

		locked, _ := acct.Locked(now)
		assert.False(t, locked)
	})
}
