package dto

import (
	"time"

	"github.com/lenscraft/studio-api/internal/models"
)

type AccountResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

type AuthResponse struct {
	Message string          `json:"message"`
	User    AccountResponse `json:"user"`
	Token   string          `json:"token"`
	IsAdmin bool            `json:"is_admin,omitempty"`
}

type BookingResponse struct {
	ID            string               `json:"id"`
	ClientID      string               `json:"client_id"`
	ClientName    string               `json:"client_name,omitempty"`
	ClientEmail   string               `json:"client_email,omitempty"`
	ServiceType   string               `json:"service_type"`
	Date          string               `json:"date"`
	Time          string               `json:"time"`
	Venue         string               `json:"venue"`
	City          string               `json:"city"`
	Notes         string               `json:"notes,omitempty"`
	ContactMethod models.ContactMethod `json:"contact_method"`
	ContactValue  string               `json:"contact_value"`
	Price         float64              `json:"price"`
	Status        models.BookingStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
}

// BookingActionResponse wraps status mutations (cancel/accept) with a
// human-readable message, mirroring the public API contract.
type BookingActionResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

type StatsResponse struct {
	TotalBookings int64   `json:"total_bookings"`
	Pending       int64   `json:"pending"`
	Confirmed     int64   `json:"confirmed"`
	Cancelled     int64   `json:"cancelled"`
	Revenue       float64 `json:"revenue"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToAccountResponse(a *models.Account) AccountResponse {
	return AccountResponse{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Role:  a.Role,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:            b.ID,
		ClientID:      b.ClientID,
		ServiceType:   b.ServiceType,
		Date:          b.Date,
		Time:          b.Time,
		Venue:         b.Venue,
		City:          b.City,
		Notes:         b.Notes,
		ContactMethod: b.ContactMethod,
		ContactValue:  b.ContactValue,
		Price:         b.Price,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	}
	if b.Client != nil {
		resp.ClientName = b.Client.Name
		resp.ClientEmail = b.Client.Email
	}
	return resp
}

func ToBookingResponses(bookings []models.Booking) []BookingResponse {
	resp := make([]BookingResponse, len(bookings))
	for i := range bookings {
		resp[i] = ToBookingResponse(&bookings[i])
	}
	return resp
}
