package persistence

import (
	"fmt"

	"github.com/gallerykit/portal/flow/login"
	"github.com/gallerykit/portal/flow/registration"
	"github.com/gallerykit/portal/gallery"
	"github.com/gallerykit/portal/internal/config"
	"github.com/gallerykit/portal/org"
	"github.com/gallerykit/portal/session"
	"github.com/gallerykit/portal/user/account"
	"github.com/gallerykit/portal/user/credential"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewGorm(cfg config.Database) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d",
		cfg.Host, cfg.Username, cfg.Password, cfg.Name, cfg.Port)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(cfg.LogLevel),
	})
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(models()...)
}

// models lists every table the repositories touch. Session.Account is
// not a gorm association, so the sessions table only exists when listed
// here explicitly.
func models() []interface{} {
	return []interface{}{
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
}
