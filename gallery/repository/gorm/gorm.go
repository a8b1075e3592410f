package gorm

import (
	"context"

	"github.com/gallerykit/portal/gallery"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type gormPackageRepository struct {
	DB *gorm.DB
}

func NewGormPackageRepository(d *gorm.DB) gallery.Repository {
	return &gormPackageRepository{DB: d}
}

func (g *gormPackageRepository) Create(ctx context.Context, newPackage gallery.Package) (*gallery.Package, error) {
	if err := g.DB.WithContext(ctx).Create(&newPackage).Error; err != nil {
		return nil, err
	}
	return &newPackage, nil
}

func (g *gormPackageRepository) Get(ctx context.Context, id uuid.UUID) (*gallery.Package, error) {
	var found gallery.Package
	if err := g.DB.WithContext(ctx).Preload("Owners").First(&found, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &found, nil
}

func (g *gormPackageRepository) List(ctx context.Context, offset int, limit int) ([]gallery.Package, error) {
	var found []gallery.Package
	if err := g.DB.WithContext(ctx).Preload("Owners").
		Order("title asc, version desc").
		Offset(offset).Limit(limit).
		Find(&found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

func (g *gormPackageRepository) ListOwned(ctx context.Context, accountID uuid.UUID) ([]gallery.Package, error) {
	var found []gallery.Package
	if err := g.DB.WithContext(ctx).Preload("Owners").
		Joins("JOIN package_owners ON package_owners.package_id = packages.id").
		Where("package_owners.account_id = ?", accountID).
		Order("title asc, version desc").
		Find(&found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

func (g *gormPackageRepository) Update(ctx context.Context, updatePackage gallery.Package) (*gallery.Package, error) {
	if err := g.DB.WithContext(ctx).Save(&updatePackage).Error; err != nil {
		return nil, err
	}
	return &updatePackage, nil
}

func (g *gormPackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return g.DB.WithContext(ctx).Delete(&gallery.Package{}, "id = ?", id).Error
}
