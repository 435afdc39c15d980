package models

import "time"

type TeamMember struct {
	ID              string     `gorm:"primaryKey" json:"id"`
	Name            string     `gorm:"not null" json:"name"`
	Role            string     `gorm:"not null" json:"role"` // e.g. Candid, Drone
	Specialization  string     `json:"specialization,omitempty"`
	Bio             string     `json:"bio,omitempty"`
	ExperienceYears int        `gorm:"not null;default:0" json:"experience_years"`
	Skills          StringList `gorm:"type:text" json:"skills"`
	ImageURL        string     `json:"image_url,omitempty"`
	Active          bool       `gorm:"not null;default:true" json:"active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
