package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lenscraft/studio-api/internal/models"
	"gorm.io/gorm"
)

type TeamRepository interface {
	Create(ctx context.Context, member *models.TeamMember) error
	FindByID(ctx context.Context, id string) (*models.TeamMember, error)
	FindActive(ctx context.Context) ([]models.TeamMember, error)
	FindAll(ctx context.Context) ([]models.TeamMember, error)
	Update(ctx context.Context, member *models.TeamMember) error
}

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(ctx context.Context, member *models.TeamMember) error {
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *teamRepository) FindByID(ctx context.Context, id string) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *teamRepository) FindActive(ctx context.Context) ([]models.TeamMember, error) {
	var team []models.TeamMember
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&team).Error
	if err != nil {
		return nil, err
	}
	return team, nil
}

func (r *teamRepository) FindAll(ctx context.Context) ([]models.TeamMember, error) {
	var team []models.TeamMember
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&team).Error; err != nil {
		return nil, err
	}
	return team, nil
}

func (r *teamRepository) Update(ctx context.Context, member *models.TeamMember) error {
	return r.db.WithContext(ctx).Save(member).Error
}
