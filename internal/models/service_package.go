package models

import "time"

type PackageCategory string

const (
	CategoryWedding   PackageCategory = "wedding"
	CategoryCinematic PackageCategory = "cinematic"
	CategoryDrone     PackageCategory = "drone"
	CategoryOther     PackageCategory = "other"
)

type ServicePackage struct {
	ID                    string          `gorm:"primaryKey" json:"id"`
	Title                 string          `gorm:"not null" json:"title"`
	Slug                  string          `gorm:"uniqueIndex;not null" json:"slug"`
	Category              PackageCategory `gorm:"type:varchar(20);not null;default:'wedding'" json:"category"`
	ShortDescription      string          `json:"short_description,omitempty"`
	Description           string          `json:"description,omitempty"`
	Price                 float64         `gorm:"not null" json:"price"`
	PhotosIncluded        int             `gorm:"not null;default:0" json:"photos_included"`
	VideosIncludedMinutes int             `gorm:"not null;default:0" json:"videos_included_minutes"`
	DroneIncluded         bool            `gorm:"not null;default:false" json:"drone_included"`
	Perks                 StringList      `gorm:"type:text" json:"perks"`
	CoverImage            string          `json:"cover_image,omitempty"`
	CreatedBy             string          `json:"created_by,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}
