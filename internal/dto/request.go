package dto

import "github.com/lenscraft/studio-api/internal/models"

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type CreateBookingRequest struct {
	ServiceType   string               `json:"service_type"`
	Date          string               `json:"date"`
	Time          string               `json:"time"`
	Venue         string               `json:"venue"`
	City          string               `json:"city"`
	Notes         string               `json:"notes,omitempty"`
	ContactMethod models.ContactMethod `json:"contact_method"`
	ContactValue  string               `json:"contact_value"`
}

type CreatePackageRequest struct {
	Title                 string                 `json:"title"`
	Slug                  string                 `json:"slug,omitempty"`
	Category              models.PackageCategory `json:"category,omitempty"`
	ShortDescription      string                 `json:"short_description,omitempty"`
	Description           string                 `json:"description,omitempty"`
	Price                 float64                `json:"price"`
	PhotosIncluded        int                    `json:"photos_included,omitempty"`
	VideosIncludedMinutes int                    `json:"videos_included_minutes,omitempty"`
	DroneIncluded         bool                   `json:"drone_included,omitempty"`
	Perks                 []string               `json:"perks,omitempty"`
	CoverImage            string                 `json:"cover_image,omitempty"`
}

type TeamMemberRequest struct {
	Name            string   `json:"name"`
	Role            string   `json:"role"`
	Specialization  string   `json:"specialization,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	ExperienceYears int      `json:"experience_years,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	ImageURL        string   `json:"image_url,omitempty"`
}
