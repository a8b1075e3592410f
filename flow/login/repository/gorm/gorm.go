package gorm

import (
	"context"

	"github.com/gallerykit/portal/flow/login"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type gormLoginRepository struct {
	DB *gorm.DB
}

func NewGormLoginRepository(d *gorm.DB) login.Repository {
	return &gormLoginRepository{DB: d}
}

func (g *gormLoginRepository) Create(ctx context.Context, newFlow login.Login) (*login.Login, error) {
	created := newFlow
	if err := g.DB.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *gormLoginRepository) Get(ctx context.Context, id uuid.UUID) (*login.Login, error) {
	var found login.Login
	if err := g.DB.WithContext(ctx).First(&found, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &found, nil
}

func (g *gormLoginRepository) GetByFlowID(ctx context.Context, flowID string) (*login.Login, error) {
	var found login.Login
	if err := g.DB.WithContext(ctx).First(&found, "flow_id = ?", flowID).Error; err != nil {
		return nil, err
	}
	return &found, nil
}

func (g *gormLoginRepository) Update(ctx context.Context, updateFlow login.Login) (*login.Login, error) {
	updated := updateFlow
	if err := g.DB.WithContext(ctx).Save(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *gormLoginRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := g.DB.WithContext(ctx).Where("id = ?", id.String()).Delete(login.Login{}).Error; err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	return nil
}
