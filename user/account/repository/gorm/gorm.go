package gorm

import (
	"context"

	"github.com/gallerykit/portal/user/account"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type gormAccountRepository struct {
	DB *gorm.DB
}

func NewGormAccountRepository(d *gorm.DB) account.Repository {
	return &gormAccountRepository{DB: d}
}

func (g *gormAccountRepository) Create(ctx context.Context, newAccount account.Account) (*account.Account, error) {
	clone := newAccount
	if err := g.DB.WithContext(ctx).Create(&clone).Error; err != nil {
		return nil, err
	}
	return &clone, nil
}

func (g *gormAccountRepository) Get(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	var found account.Account
	if err := g.DB.WithContext(ctx).Preload("Credentials").First(&found, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &found, nil
}

func (g *gormAccountRepository) GetWithIdentifier(ctx context.Context, identifier string) (*account.Account, error) {
	var found account.Account
	if err := g.DB.WithContext(ctx).Preload("Credentials").First(&found, "LOWER(username) = LOWER(?) OR LOWER(email) = LOWER(?)", identifier, identifier).Error; err != nil {
		return nil, err
	}
	return &found, nil
}

func (g *gormAccountRepository) Update(ctx context.Context, updateAccount account.Account) (*account.Account, error) {
	updated := updateAccount
	if err := g.DB.WithContext(ctx).Save(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *gormAccountRepository) Delete(ctx context.Context, id uuid.UUID, permanent bool) error {
	db := g.DB.WithContext(ctx)
	if permanent {
		db = db.Unscoped()
	}
	if err := db.Where("id = ?", id).Delete(&account.Account{}).Error; err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	return nil
}
