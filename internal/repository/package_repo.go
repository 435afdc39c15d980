package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lenscraft/studio-api/internal/models"
	"gorm.io/gorm"
)

type PackageRepository interface {
	Create(ctx context.Context, pkg *models.ServicePackage) error
	FindAll(ctx context.Context, category string) ([]models.ServicePackage, error)
	FindBySlug(ctx context.Context, slug string) (*models.ServicePackage, error)
	FindByTitle(ctx context.Context, title string) (*models.ServicePackage, error)
}

type packageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) Create(ctx context.Context, pkg *models.ServicePackage) error {
	if pkg.ID == "" {
		pkg.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *packageRepository) FindAll(ctx context.Context, category string) ([]models.ServicePackage, error) {
	q := r.db.WithContext(ctx)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var packages []models.ServicePackage
	if err := q.Order("created_at DESC").Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *packageRepository) FindBySlug(ctx context.Context, slug string) (*models.ServicePackage, error) {
	var pkg models.ServicePackage
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&pkg).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *packageRepository) FindByTitle(ctx context.Context, title string) (*models.ServicePackage, error) {
	var pkg models.ServicePackage
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&pkg).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}
