package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/lenscraft/studio-api/internal/models"
	"github.com/lenscraft/studio-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrPackageNotFound    = errors.New("package not found")
	ErrPackageTitleNeeded = errors.New("title and price are required")
	ErrMemberNotFound     = errors.New("team member not found")
	ErrMemberFieldsNeeded = errors.New("name and role are required")
)

var slugCleaner = regexp.MustCompile(`[^\w-]`)

type CatalogService interface {
	ListPackages(ctx context.Context, category string) ([]models.ServicePackage, error)
	GetPackage(ctx context.Context, slug string) (*models.ServicePackage, error)
	CreatePackage(ctx context.Context, caller models.CallerIdentity, pkg *models.ServicePackage) error

	PublicTeam(ctx context.Context) ([]models.TeamMember, error)
	AdminListTeam(ctx context.Context) ([]models.TeamMember, error)
	CreateMember(ctx context.Context, member *models.TeamMember) error
	UpdateMember(ctx context.Context, id string, update *models.TeamMember) (*models.TeamMember, error)
	ToggleMemberActive(ctx context.Context, id string) (*models.TeamMember, error)
}

type catalogService struct {
	packages repository.PackageRepository
	team     repository.TeamRepository
}

func NewCatalogService(packages repository.PackageRepository, team repository.TeamRepository) CatalogService {
	return &catalogService{packages: packages, team: team}
}

func (s *catalogService) ListPackages(ctx context.Context, category string) ([]models.ServicePackage, error) {
	return s.packages.FindAll(ctx, category)
}

func (s *catalogService) GetPackage(ctx context.Context, slug string) (*models.ServicePackage, error) {
	pkg, err := s.packages.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return pkg, nil
}

func (s *catalogService) CreatePackage(ctx context.Context, caller models.CallerIdentity, pkg *models.ServicePackage) error {
	if pkg.Title == "" || pkg.Price <= 0 {
		return ErrPackageTitleNeeded
	}
	if pkg.Slug == "" {
		pkg.Slug = Slugify(pkg.Title)
	}
	if pkg.Category == "" {
		pkg.Category = models.CategoryWedding
	}
	pkg.CreatedBy = caller.AccountID
	return s.packages.Create(ctx, pkg)
}

// Slugify derives a URL slug from a title: "Wedding Premium" -> "wedding-premium".
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.Join(strings.Fields(slug), "-")
	return slugCleaner.ReplaceAllString(slug, "")
}

func (s *catalogService) PublicTeam(ctx context.Context) ([]models.TeamMember, error) {
	return s.team.FindActive(ctx)
}

func (s *catalogService) AdminListTeam(ctx context.Context) ([]models.TeamMember, error) {
	return s.team.FindAll(ctx)
}

func (s *catalogService) CreateMember(ctx context.Context, member *models.TeamMember) error {
	if member.Name == "" || member.Role == "" {
		return ErrMemberFieldsNeeded
	}
	member.Active = true
	return s.team.Create(ctx, member)
}

func (s *catalogService) UpdateMember(ctx context.Context, id string, update *models.TeamMember) (*models.TeamMember, error) {
	member, err := s.team.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	if update.Name != "" {
		member.Name = update.Name
	}
	if update.Role != "" {
		member.Role = update.Role
	}
	if update.Specialization != "" {
		member.Specialization = update.Specialization
	}
	if update.Bio != "" {
		member.Bio = update.Bio
	}
	if update.ExperienceYears != 0 {
		member.ExperienceYears = update.ExperienceYears
	}
	if update.Skills != nil {
		member.Skills = update.Skills
	}
	if update.ImageURL != "" {
		member.ImageURL = update.ImageURL
	}

	if err := s.team.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *catalogService) ToggleMemberActive(ctx context.Context, id string) (*models.TeamMember, error) {
	member, err := s.team.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	member.Active = !member.Active
	if err := s.team.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}
