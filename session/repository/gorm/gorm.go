package gorm

import (
	"context"

	"github.com/gallerykit/portal/session"
	"github.com/gallerykit/portal/user/account"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type gormSessionRepository struct {
	DB *gorm.DB
}

func NewGormSessionRepository(d *gorm.DB) session.Repository {
	return &gormSessionRepository{DB: d}
}

func (g *gormSessionRepository) Create(ctx context.Context, newSession session.Session) (*session.Session, error) {
	created := newSession
	if err := g.DB.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *gormSessionRepository) Get(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	var found session.Session
	if err := g.DB.WithContext(ctx).First(&found, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := g.attachAccount(ctx, &found); err != nil {
		return nil, err
	}
	return &found, nil
}

func (g *gormSessionRepository) GetByToken(ctx context.Context, token string) (*session.Session, error) {
	var found session.Session
	if err := g.DB.WithContext(ctx).First(&found, "token = ?", token).Error; err != nil {
		return nil, err
	}
	if err := g.attachAccount(ctx, &found); err != nil {
		return nil, err
	}
	return &found, nil
}

func (g *gormSessionRepository) Update(ctx context.Context, updateSession session.Session) (*session.Session, error) {
	updated := updateSession
	// Make sure we're not accidentally updating the Account
	updated.Account = nil
	if err := g.DB.WithContext(ctx).Save(&updated).Error; err != nil {
		return nil, err
	}
	updated.Account = updateSession.Account
	return &updated, nil
}

func (g *gormSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := g.DB.WithContext(ctx).Where("id = ?", id).Delete(&session.Session{}).Error; err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	return nil
}

func (g *gormSessionRepository) DeleteAllAccount(ctx context.Context, accountID uuid.UUID) error {
	if err := g.DB.WithContext(ctx).Where("account_id = ?", accountID).Delete(&session.Session{}).Error; err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	return nil
}

func (g *gormSessionRepository) attachAccount(ctx context.Context, found *session.Session) error {
	if found.AccountID == nil {
		return nil
	}
	var acct account.Account
	if err := g.DB.WithContext(ctx).First(&acct, "id = ?", found.AccountID).Error; err != nil {
		return err
	}
	found.Account = &acct
	return nil
}
