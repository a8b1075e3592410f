package service

import (
	"context"

	"github.com/gallerykit/portal/gallery"
	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/org"
	"github.com/gallerykit/portal/user/account"
	"github.com/gofrs/uuid"
)

type service struct {
	r  gallery.Repository
	os org.Service
}

func NewGalleryService(r gallery.Repository, os org.Service) gallery.Service {
	return &service{
		r:  r,
		os: os,
	}
}

// orgAdmin builds the membership probe for one viewer. Results are
// memoized per call since a listing page repeats the same owning orgs.
func (s *service) orgAdmin(ctx context.Context, viewer *account.Account) gallery.OrgAdminFunc {
	if viewer == nil {
		return nil
	}
	seen := map[uuid.UUID]bool{}
	return func(orgID uuid.UUID) bool {
		if admin, ok := seen[orgID]; ok {
			return admin
		}
		admin := s.os.IsOrgAdmin(ctx, orgID, viewer.ID)
		seen[orgID] = admin
		return admin
	}
}

func (s *service) List(ctx context.Context, viewer *account.Account, offset int, limit int) ([]gallery.View, error) {
	found, err := s.r.List(ctx, offset, limit)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to list packages")
	}
	isOrgAdmin := s.orgAdmin(ctx, viewer)
	views := make([]gallery.View, 0, len(found))
	for _, pkg := range found {
		view := gallery.NewView(pkg, viewer, isOrgAdmin)
		// Unlisted packages stay visible to those who could relist them
		if !pkg.Listed && !view.CanUnlist {
			continue
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *service) Owned(ctx context.Context, viewer *account.Account) ([]gallery.View, error) {
	if viewer == nil {
		return nil, internal.NewErrorf(internal.ErrorCodeUnauthorized, "%v", internal.ErrUnauthorized)
	}
	found, err := s.r.ListOwned(ctx, viewer.ID)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to list owned packages")
	}
	isOrgAdmin := s.orgAdmin(ctx, viewer)
	views := make([]gallery.View, 0, len(found))
	for _, pkg := range found {
		views = append(views, gallery.NewView(pkg, viewer, isOrgAdmin))
	}
	return views, nil
}

func (s *service) Find(ctx context.Context, viewer *account.Account, id uuid.UUID) (*gallery.View, error) {
	found, err := s.r.Get(ctx, id)
	if err != nil || found == nil {
		return nil, internal.NewErrorf(internal.ErrorCodeNotFound, "Package does not exist")
	}
	view := gallery.NewView(*found, viewer, s.orgAdmin(ctx, viewer))
	if !found.Listed && !view.CanUnlist {
		return nil, internal.NewErrorf(internal.ErrorCodeNotFound, "Package does not exist")
	}
	return &view, nil
}
