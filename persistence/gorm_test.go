package persistence

import (
	"testing"

	"github.com/gallerykit/portal/flow/login"
	"github.com/gallerykit/portal/flow/registration"
	"github.com/gallerykit/portal/gallery"
	"github.com/gallerykit/portal/org"
	"github.com/gallerykit/portal/session"
	"github.com/gallerykit/portal/user/account"
	"github.com/gallerykit/portal/user/credential"
	"github.com/stretchr/testify/assert"
)

// Every model a repository persists must be migrated, sessions
// included: Session.Account is excluded from gorm so nothing else
// creates that table.
func TestModelsCoverRepositories(t *testing.T) {
	expected := []interface{}{
		&account.Account{},
		&credential.Credential{},
		&credential.Identifier{},
		&session.Session{},
		&login.Login{},
		&registration.Registration{},
		&org.Membership{},
		&org.Certificate{},
		&gallery.Package{},
	}

	migrated := models()
	for _, model := range expected {
		assert.Containsf(t, migrated, model, "%T is not migrated", model)
	}
}
