package gallery

import (
	"github.com/gallerykit/portal/user/account"
	"github.com/gofrs/uuid"
)

// Action is a permission gated operation on a package.
type Action string

const (
	Edit                   Action = "edit"
	Unlist                 Action = "unlist"
	ManageOwners           Action = "manage-owners"
	DisplayPrivateMetadata Action = "display-private-metadata"
)

// OrgAdminFunc reports whether the viewer administers the given
// organization account. Injected so the permission check stays free of
// membership storage.
type OrgAdminFunc func(orgID uuid.UUID) bool

// Allowed aggregates the three grants for an action on a package: the
// viewer is a site admin, owns the package directly, or administers an
// organization that owns it.
func Allowed(action Action, viewer *account.Account, pkg Package, isOrgAdmin OrgAdminFunc) bool {
	if viewer == nil {
		return false
	}
	if viewer.Admin {
		return true
	}
	for _, owner := range pkg.Owners {
		if owner.ID == viewer.ID {
			return true
		}
		if owner.IsOrganization() && isOrgAdmin != nil && isOrgAdmin(owner.ID) {
			return true
		}
	}
	return false
}

// View is a catalog row shaped for one viewer: the Can* fields carry
// the outcome of the permission aggregation.
type View struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Version   string    `json:"version"`
	Listed    bool      `json:"listed"`
	Downloads int64     `json:"downloads"`
	Owners    []string  `json:"owners"`

	CanEdit                   bool `json:"can_edit"`
	CanUnlist                 bool `json:"can_unlist"`
	CanManageOwners           bool `json:"can_manage_owners"`
	CanDisplayPrivateMetadata bool `json:"can_display_private_metadata"`
}

// NewView computes the permission gated view of a package for a viewer.
func NewView(pkg Package, viewer *account.Account, isOrgAdmin OrgAdminFunc) View {
	owners := make([]string, 0, len(pkg.Owners))
	for _, owner := range pkg.Owners {
		owners = append(owners, owner.Username)
	}
	return View{
		ID:        pkg.ID,
		Title:     pkg.Title,
		Version:   pkg.Version,
		Listed:    pkg.Listed,
		Downloads: pkg.Downloads,
		Owners:    owners,

		CanEdit:                   Allowed(Edit, viewer, pkg, isOrgAdmin),
		CanUnlist:                 Allowed(Unlist, viewer, pkg, isOrgAdmin),
		CanManageOwners:           Allowed(ManageOwners, viewer, pkg, isOrgAdmin),
		CanDisplayPrivateMetadata: Allowed(DisplayPrivateMetadata, viewer, pkg, isOrgAdmin),
	}
}
