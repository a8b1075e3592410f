package gorm

import (
	"context"

	"github.com/gallerykit/portal/org"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type gormOrgRepository struct {
	DB *gorm.DB
}

func NewGormOrgRepository(d *gorm.DB) org.Repository {
	return &gormOrgRepository{DB: d}
}

func (g *gormOrgRepository) CreateMembership(ctx context.Context, newMembership org.Membership) (*org.Membership, error) {
	created := newMembership
	if err := g.DB.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *gormOrgRepository) GetMembership(ctx context.Context, orgID uuid.UUID, accountID uuid.UUID) (*org.Membership, error) {
	var found org.Membership
	if err := g.DB.WithContext(ctx).First(&found, "org_id = ? AND account_id = ?", orgID, accountID).Error; err != nil {
		return nil, err
	}
	return &found, nil
}

func (g *gormOrgRepository) GetMembershipByToken(ctx context.Context, token string) (*org.Membership, error) {
	var found org.Membership
	if err := g.DB.WithContext(ctx).First(&found, "confirm_token = ?", token).Error; err != nil {
		return nil, err
	}
	return &found, nil
}

func (g *gormOrgRepository) ListMemberships(ctx context.Context, orgID uuid.UUID) ([]org.Membership, error) {
	var found []org.Membership
	if err := g.DB.WithContext(ctx).Find(&found, "org_id = ?", orgID).Error; err != nil {
		return nil, err
	}
	return found, nil
}

func (g *gormOrgRepository) UpdateMembership(ctx context.Context, updateMembership org.Membership) (*org.Membership, error) {
	updated := updateMembership
	if err := g.DB.WithContext(ctx).Save(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *gormOrgRepository) DeleteMembership(ctx context.Context, id uuid.UUID) error {
	if err := g.DB.WithContext(ctx).Where("id = ?", id.String()).Delete(org.Membership{}).Error; err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	return nil
}

func (g *gormOrgRepository) CreateCertificate(ctx context.Context, newCertificate org.Certificate) (*org.Certificate, error) {
	created := newCertificate
	if err := g.DB.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *gormOrgRepository) GetCertificate(ctx context.Context, id uuid.UUID) (*org.Certificate, error) {
	var found org.Certificate
	if err := g.DB.WithContext(ctx).First(&found, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &found, nil
}

func (g *gormOrgRepository) ListCertificates(ctx context.Context, orgID uuid.UUID) ([]org.Certificate, error) {
	var found []org.Certificate
	if err := g.DB.WithContext(ctx).Find(&found, "org_id = ?", orgID).Error; err != nil {
		return nil, err
	}
	return found, nil
}

func (g *gormOrgRepository) UpdateCertificate(ctx context.Context, updateCertificate org.Certificate) (*org.Certificate, error) {
	updated := updateCertificate
	if err := g.DB.WithContext(ctx).Save(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *gormOrgRepository) DeleteCertificate(ctx context.Context, id uuid.UUID) error {
	if err := g.DB.WithContext(ctx).Where("id = ?", id.String()).Delete(org.Certificate{}).Error; err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	return nil
}
