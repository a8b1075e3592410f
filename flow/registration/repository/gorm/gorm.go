package gorm

import (
	"context"

	"github.com/gallerykit/portal/flow/registration"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type gormRegistrationRepository struct {
	DB *gorm.DB
}

func NewGormRegistrationRepository(d *gorm.DB) registration.Repository {
	return &gormRegistrationRepository{DB: d}
}

func (g *gormRegistrationRepository) Create(ctx context.Context, newFlow registration.Registration) (*registration.Registration, error) {
	created := newFlow
	if err := g.DB.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *gormRegistrationRepository) Get(ctx context.Context, id uuid.UUID) (*registration.Registration, error) {
	var found registration.Registration
	if err := g.DB.WithContext(ctx).First(&found, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &found, nil
}

func (g *gormRegistrationRepository) GetByFlowID(ctx context.Context, flowID string) (*registration.Registration, error) {
	var found registration.Registration
	if err := g.DB.WithContext(ctx).First(&found, "flow_id = ?", flowID).Error; err != nil {
		return nil, err
	}
	return &found, nil
}

func (g *gormRegistrationRepository) Update(ctx context.Context, updateFlow registration.Registration) (*registration.Registration, error) {
	updated := updateFlow
	if err := g.DB.WithContext(ctx).Save(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *gormRegistrationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := g.DB.WithContext(ctx).Where("id = ?", id.String()).Delete(registration.Registration{}).Error; err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	return nil
}
