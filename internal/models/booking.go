package models

import "time"

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

type ContactMethod string

const (
	ContactWhatsApp ContactMethod = "whatsapp"
	ContactEmail    ContactMethod = "email"
)

type Booking struct {
	ID            string        `gorm:"primaryKey" json:"id"`
	ClientID      string        `gorm:"not null;index" json:"client_id"`
	ServiceType   string        `gorm:"not null" json:"service_type"`
	Date          string        `gorm:"not null" json:"date"` // YYYY-MM-DD, compared lexically
	Time          string        `gorm:"not null" json:"time"`
	Venue         string        `gorm:"not null" json:"venue"`
	City          string        `gorm:"not null" json:"city"`
	Notes         string        `json:"notes,omitempty"`
	ContactMethod ContactMethod `gorm:"type:varchar(10);not null;default:'whatsapp'" json:"contact_method"`
	ContactValue  string        `gorm:"not null" json:"contact_value"`
	// Price is snapshotted from the matching service package at creation time so
	// revenue totals stay stable when package prices change later.
	Price     float64       `gorm:"not null;default:0" json:"price"`
	Status    BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	Client *Account `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}
