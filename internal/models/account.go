package models

import "time"

type Role string

const (
	RoleClient          Role = "client"
	RolePhotographer    Role = "photographer"
	RoleCinematographer Role = "cinematographer"
	RoleEditor          Role = "editor"
	RoleAssistant       Role = "assistant"
	RoleAdmin           Role = "admin"
)

type Account struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null;default:'client'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CallerIdentity is the resolved account attached to an authenticated request.
// Operations take it as an explicit value instead of reading ambient request state.
type CallerIdentity struct {
	AccountID string
	Role      Role
}

func (c CallerIdentity) IsAdmin() bool {
	return c.Role == RoleAdmin
}
