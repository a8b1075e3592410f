// Package gallery holds the package listing surface: the catalog rows
// and the permission gated view models rendered to a viewer.
package gallery

import (
	"context"

	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/user/account"
	"github.com/gofrs/uuid"
)

// Package is one published package version in the catalog. Owners are
// accounts, user or organization alike.
type Package struct {
	internal.BaseSoftDelete
	Title   string `json:"title" gorm:"index:idx_pkg_version,unique;size:128;not null" validate:"required,max=128"`
	Version string `json:"version" gorm:"index:idx_pkg_version,unique;size:64;not null" validate:"required,max=64"`
	// Listed controls whether the package shows up in the public
	// catalog. Unlisted packages stay visible to their owners.
	Listed    bool  `json:"listed" gorm:"not null;default:true"`
	Downloads int64 `json:"downloads" gorm:"not null;default:0"`

	Owners []account.Account `json:"owners" gorm:"many2many:package_owners"`
}

type Repository interface {
	Create(ctx context.Context, newPackage Package) (*Package, error)
	Get(ctx context.Context, id uuid.UUID) (*Package, error)
	// List pages through the catalog, owners preloaded
	List(ctx context.Context, offset int, limit int) ([]Package, error)
	// ListOwned retrieves the packages an account owns directly
	ListOwned(ctx context.Context, accountID uuid.UUID) ([]Package, error)
	Update(ctx context.Context, updatePackage Package) (*Package, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service interface {
	// List renders the catalog for a viewer. Unlisted packages only
	// appear for viewers permitted to unlist them.
	List(ctx context.Context, viewer *account.Account, offset int, limit int) ([]View, error)
	// Find renders a single package for a viewer
	Find(ctx context.Context, viewer *account.Account, id uuid.UUID) (*View, error)
	// Owned renders the packages the viewer owns directly, unlisted
	// included
	Owned(ctx context.Context, viewer *account.Account) ([]View, error)
}
