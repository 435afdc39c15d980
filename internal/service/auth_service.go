package service

import (
	"context"
	"errors"

	"github.com/lenscraft/studio-api/internal/models"
	"github.com/lenscraft/studio-api/internal/repository"
	"github.com/lenscraft/studio-api/pkg/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAdminAccount    = errors.New("not authorized as admin")
	ErrAccountNotFound    = errors.New("account not found")
	ErrMissingAuthFields  = errors.New("name, email and password are required")
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string, role models.Role) (*models.Account, string, error)
	Login(ctx context.Context, email, password string) (*models.Account, string, error)
	AdminLogin(ctx context.Context, email, password string) (*models.Account, string, error)
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)
	UpdateProfile(ctx context.Context, accountID, name, email string) (*models.Account, error)
}

type authService struct {
	accounts repository.AccountRepository
	tokens   *token.Manager
}

func NewAuthService(accounts repository.AccountRepository, tokens *token.Manager) AuthService {
	return &authService{accounts: accounts, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, name, email, password string, role models.Role) (*models.Account, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", ErrMissingAuthFields
	}

	_, err := s.accounts.FindByEmail(ctx, email)
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	if role == "" {
		role = models.RoleClient
	}
	account := &models.Account{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, "", err
	}

	tok, err := s.tokens.Issue(account.ID, string(account.Role), account.Email)
	if err != nil {
		return nil, "", err
	}
	return account, tok, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.Account, string, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(account.ID, string(account.Role), account.Email)
	if err != nil {
		return nil, "", err
	}
	return account, tok, nil
}

// AdminLogin rejects non-admin accounts before the password is even checked,
// without revealing whether the account exists.
func (s *authService) AdminLogin(ctx context.Context, email, password string) (*models.Account, string, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil || account.Role != models.RoleAdmin {
		return nil, "", ErrNotAdminAccount
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(account.ID, string(account.Role), account.Email)
	if err != nil {
		return nil, "", err
	}
	return account, tok, nil
}

func (s *authService) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func (s *authService) UpdateProfile(ctx context.Context, accountID, name, email string) (*models.Account, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if name != "" {
		account.Name = name
	}
	if email != "" && email != account.Email {
		_, err := s.accounts.FindByEmail(ctx, email)
		if err == nil {
			return nil, ErrEmailTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		account.Email = email
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}
