package service

import (
	"context"
	"testing"

	"github.com/gallerykit/portal/gallery"
	"github.com/gallerykit/portal/internal"
	mocks "github.com/gallerykit/portal/mocks/gallery"
	orgmocks "github.com/gallerykit/portal/mocks/org"
	"github.com/gallerykit/portal/user/account"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAccount(kind account.Kind) account.Account {
	id, _ := uuid.NewV4()
	return account.Account{
		BaseSoftDelete: internal.BaseSoftDelete{ID: id},
		Kind:           kind,
	}
}

func newTestPackage(title string, listed bool, owners ...account.Account) gallery.Package {
	id, _ := uuid.NewV4()
	return gallery.Package{
		BaseSoftDelete: internal.BaseSoftDelete{ID: id},
		Title:          title,
		Version:        "1.0.0",
		Listed:         listed,
		Owners:         owners,
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()

	owner := newTestAccount(account.User)
	orgAcct := newTestAccount(account.Organization)

	listed := newTestPackage("Listed.Package", true, owner)
	unlisted := newTestPackage("Unlisted.Package", false, owner)
	orgOwned := newTestPackage("Org.Package", false, orgAcct)

	t.Run("anonymous viewer only sees listed packages", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		mockOrg := &orgmocks.Service{}
		s := NewGalleryService(mockRepo, mockOrg)

		mockRepo.On("List", ctx, 0, 20).Return([]gallery.Package{listed, unlisted, orgOwned}, nil)

		views, err := s.List(ctx, nil, 0, 20)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "Listed.Package", views[0].Title)
		assert.False(t, views[0].CanEdit)
		mockOrg.AssertNotCalled(t, "IsOrgAdmin", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("owner sees their unlisted package", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		mockOrg := &orgmocks.Service{}
		s := NewGalleryService(mockRepo, mockOrg)

		mockRepo.On("List", ctx, 0, 20).Return([]gallery.Package{listed, unlisted, orgOwned}, nil)
		mockOrg.On("IsOrgAdmin", ctx, orgAcct.ID, owner.ID).Return(false)

		views, err := s.List(ctx, &owner, 0, 20)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "Listed.Package", views[0].Title)
		assert.Equal(t, "Unlisted.Package", views[1].Title)
		assert.True(t, views[1].CanUnlist)
	})

	t.Run("org admin sees the organization's unlisted package", func(t *testing.T) {
		viewer := newTestAccount(account.User)
		mockRepo := &mocks.Repository{}
		mockOrg := &orgmocks.Service{}
		s := NewGalleryService(mockRepo, mockOrg)

		mockRepo.On("List", ctx, 0, 20).Return([]gallery.Package{unlisted, orgOwned}, nil)
		mockOrg.On("IsOrgAdmin", ctx, orgAcct.ID, viewer.ID).Return(true)

		views, err := s.List(ctx, &viewer, 0, 20)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "Org.Package", views[0].Title)
		assert.True(t, views[0].CanManageOwners)
	})

	t.Run("membership probe is memoized per owning organization", func(t *testing.T) {
		viewer := newTestAccount(account.User)
		mockRepo := &mocks.Repository{}
		mockOrg := &orgmocks.Service{}
		s := NewGalleryService(mockRepo, mockOrg)

		other := newTestPackage("Org.Other", false, orgAcct)
		mockRepo.On("List", ctx, 0, 20).Return([]gallery.Package{orgOwned, other}, nil)
		mockOrg.On("IsOrgAdmin", ctx, orgAcct.ID, viewer.ID).Return(true)

		views, err := s.List(ctx, &viewer, 0, 20)
		require.NoError(t, err)
		require.Len(t, views, 2)
		mockOrg.AssertNumberOfCalls(t, "IsOrgAdmin", 1)
	})

	t.Run("site admin sees everything", func(t *testing.T) {
		admin := newTestAccount(account.User)
		admin.Admin = true
		mockRepo := &mocks.Repository{}
		mockOrg := &orgmocks.Service{}
		s := NewGalleryService(mockRepo, mockOrg)

		mockRepo.On("List", ctx, 0, 20).Return([]gallery.Package{listed, unlisted, orgOwned}, nil)

		views, err := s.List(ctx, &admin, 0, 20)
		require.NoError(t, err)
		assert.Len(t, views, 3)
	})
}

func TestOwned(t *testing.T) {
	ctx := context.Background()

	owner := newTestAccount(account.User)
	listed := newTestPackage("Owned.Listed", true, owner)
	unlisted := newTestPackage("Owned.Unlisted", false, owner)

	t.Run("owner sees every owned package, unlisted included", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		mockOrg := &orgmocks.Service{}
		s := NewGalleryService(mockRepo, mockOrg)

		mockRepo.On("ListOwned", ctx, owner.ID).Return([]gallery.Package{listed, unlisted}, nil)

		views, err := s.Owned(ctx, &owner)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "Owned.Unlisted", views[1].Title)
		assert.True(t, views[1].CanEdit)
	})

	t.Run("anonymous viewer is rejected", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		mockOrg := &orgmocks.Service{}
		s := NewGalleryService(mockRepo, mockOrg)

		views, err := s.Owned(ctx, nil)
		require.Error(t, err)
		assert.Nil(t, views)
		assert.Equal(t, internal.ErrorCodeUnauthorized, internal.CodeOf(err))
		mockRepo.AssertNotCalled(t, "ListOwned", mock.Anything, mock.Anything)
	})
}

func TestFind(t *testing.T) {
	ctx := context.Background()

	owner := newTestAccount(account.User)
	unlisted := newTestPackage("Hidden.Package", false, owner)

	t.Run("unlisted package is not found for strangers", func(t *testing.T) {
		stranger := newTestAccount(account.User)
		mockRepo := &mocks.Repository{}
		mockOrg := &orgmocks.Service{}
		s := NewGalleryService(mockRepo, mockOrg)

		mockRepo.On("Get", ctx, unlisted.ID).Return(&unlisted, nil)

		view, err := s.Find(ctx, &stranger, unlisted.ID)
		require.Error(t, err)
		assert.Nil(t, view)
		assert.Equal(t, internal.ErrorCodeNotFound, internal.CodeOf(err))
	})

	t.Run("unlisted package is found for its owner", func(t *testing.T) {
		mockRepo := &mocks.Repository{}
		mockOrg := &orgmocks.Service{}
		s := NewGalleryService(mockRepo, mockOrg)

		mockRepo.On("Get", ctx, unlisted.ID).Return(&unlisted, nil)

		view, err := s.Find(ctx, &owner, unlisted.ID)
		require.NoError(t, err)
		require.NotNil(t, view)
		assert.Equal(t, "Hidden.Package", view.Title)
		assert.True(t, view.CanUnlist)
	})
}
