package database

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/lenscraft/studio-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureDefaultAdmin creates the bootstrap admin account if it does not exist yet.
func EnsureDefaultAdmin(db *gorm.DB, email, password string) {
	if email == "" || password == "" {
		return
	}

	var existing models.Account
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Println("admin account already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("admin lookup failed: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash admin password: %v", err)
		return
	}

	admin := models.Account{
		ID:           uuid.NewString(),
		Name:         "Super Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("failed to create admin account: %v", err)
		return
	}
	log.Printf("default admin created: %s", email)
}
