package gorm

import (
	"context"

	"github.com/gallerykit/portal/user/credential"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type gormCredentialRepository struct {
	DB *gorm.DB
}

func NewGormCredentialRepository(d *gorm.DB) credential.Repository {
	return &gormCredentialRepository{DB: d}
}

func (g *gormCredentialRepository) Create(ctx context.Context, newCredential credential.Credential) (*credential.Credential, error) {
	clone := newCredential
	if err := g.DB.WithContext(ctx).Create(&clone).Error; err != nil {
		return nil, err
	}
	return &clone, nil
}

func (g *gormCredentialRepository) GetWithIdentifier(ctx context.Context, credentialType credential.CredentialType, id string) (*credential.Credential, error) {
	var identifier credential.Identifier
	if err := g.DB.WithContext(ctx).First(&identifier, "LOWER(value) = LOWER(?)", id).Error; err != nil {
		return nil, err
	}
	var found credential.Credential
	if err := g.DB.WithContext(ctx).Preload("Identifiers").First(&found, "id = ? AND type = ?", identifier.CredentialID, credentialType).Error; err != nil {
		return nil, err
	}
	return &found, nil
}

func (g *gormCredentialRepository) GetWithAccountID(ctx context.Context, credentialType credential.CredentialType, accountID uuid.UUID) ([]credential.Credential, error) {
	var found []credential.Credential
	if err := g.DB.WithContext(ctx).Preload("Identifiers").Find(&found, "type = ? AND account_id = ?", credentialType, accountID).Error; err != nil {
		return nil, err
	}
	return found, nil
}

func (g *gormCredentialRepository) GetExternal(ctx context.Context, provider string, subject string) (*credential.Credential, error) {
	var found credential.Credential
	if err := g.DB.WithContext(ctx).First(&found, "type = ? AND values ->> 'provider' = ? AND values ->> 'subject' = ?", credential.External, provider, subject).Error; err != nil {
		return nil, err
	}
	return &found, nil
}

func (g *gormCredentialRepository) Update(ctx context.Context, update credential.Credential) (*credential.Credential, error) {
	updated := update
	if err := g.DB.WithContext(ctx).Save(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *gormCredentialRepository) Delete(ctx context.Context, credentialID uuid.UUID) error {
	if err := g.DB.WithContext(ctx).Where("credential_id = ?", credentialID).Delete(&credential.Identifier{}).Error; err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	if err := g.DB.WithContext(ctx).Where("id = ?", credentialID).Delete(&credential.Credential{}).Error; err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	return nil
}
