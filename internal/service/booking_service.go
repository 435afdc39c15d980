package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"time"

	"github.com/lenscraft/studio-api/internal/models"
	"github.com/lenscraft/studio-api/internal/repository"
	"github.com/lenscraft/studio-api/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrNotBookingOwner      = errors.New("you are not allowed to cancel this booking")
	ErrAdminOnly            = errors.New("not authorized")
	ErrAlreadyCancelled     = errors.New("booking is already cancelled")
	ErrOnlyPendingAccepted  = errors.New("only pending bookings can be accepted")
	ErrDuplicateBooking     = errors.New("you have already booked this service on the same date")
	ErrContactRequired      = errors.New("preferred contact method and value are required")
	ErrInvalidContactMethod = errors.New("contact method must be either whatsapp or email")
	ErrMissingBookingFields = errors.New("service type, date, time, venue and city are required")
)

type CreateBookingInput struct {
	ServiceType   string
	Date          string
	Time          string
	Venue         string
	City          string
	Notes         string
	ContactMethod models.ContactMethod
	ContactValue  string
}

type BookingService interface {
	Create(ctx context.Context, caller models.CallerIdentity, in CreateBookingInput) (*models.Booking, error)
	ListMine(ctx context.Context, caller models.CallerIdentity) ([]models.Booking, error)
	ListAll(ctx context.Context, caller models.CallerIdentity) ([]models.Booking, error)
	ListFiltered(ctx context.Context, caller models.CallerIdentity, filter repository.BookingFilter) ([]models.Booking, error)
	Cancel(ctx context.Context, caller models.CallerIdentity, bookingID string) (*models.Booking, error)
	Accept(ctx context.Context, caller models.CallerIdentity, bookingID string) (*models.Booking, error)
	AdminCancel(ctx context.Context, caller models.CallerIdentity, bookingID string) (*models.Booking, error)
	ExportCSV(ctx context.Context, caller models.CallerIdentity) ([]byte, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	packageRepo repository.PackageRepository
	publisher   *rabbitmq.Publisher
}

func NewBookingService(bookingRepo repository.BookingRepository, packageRepo repository.PackageRepository, publisher *rabbitmq.Publisher) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		packageRepo: packageRepo,
		publisher:   publisher,
	}
}

func (s *bookingService) Create(ctx context.Context, caller models.CallerIdentity, in CreateBookingInput) (*models.Booking, error) {
	if in.ContactMethod == "" || in.ContactValue == "" {
		return nil, ErrContactRequired
	}
	if in.ContactMethod != models.ContactWhatsApp && in.ContactMethod != models.ContactEmail {
		return nil, ErrInvalidContactMethod
	}
	if in.ServiceType == "" || in.Date == "" || in.Time == "" || in.Venue == "" || in.City == "" {
		return nil, ErrMissingBookingFields
	}

	// Duplicate check: cancelled bookings do not block a rebooking.
	_, err := s.bookingRepo.FindActiveByClientDateService(ctx, caller.AccountID, in.Date, in.ServiceType)
	if err == nil {
		return nil, ErrDuplicateBooking
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Snapshot the package price when the service type names a known package.
	// The label stays loose: unknown service types book at price 0.
	var price float64
	if pkg, err := s.packageRepo.FindByTitle(ctx, in.ServiceType); err == nil {
		price = pkg.Price
	}

	booking := &models.Booking{
		ClientID:      caller.AccountID,
		ServiceType:   in.ServiceType,
		Date:          in.Date,
		Time:          in.Time,
		Venue:         in.Venue,
		City:          in.City,
		Notes:         in.Notes,
		ContactMethod: in.ContactMethod,
		ContactValue:  in.ContactValue,
		Price:         price,
		Status:        models.StatusPending,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.notify("booking.created", booking)
	return booking, nil
}

func (s *bookingService) ListMine(ctx context.Context, caller models.CallerIdentity) ([]models.Booking, error) {
	return s.bookingRepo.FindByClientID(ctx, caller.AccountID)
}

func (s *bookingService) ListAll(ctx context.Context, caller models.CallerIdentity) ([]models.Booking, error) {
	if !caller.IsAdmin() {
		return nil, ErrAdminOnly
	}
	return s.bookingRepo.FindFiltered(ctx, repository.BookingFilter{})
}

func (s *bookingService) ListFiltered(ctx context.Context, caller models.CallerIdentity, filter repository.BookingFilter) ([]models.Booking, error) {
	if !caller.IsAdmin() {
		return nil, ErrAdminOnly
	}
	return s.bookingRepo.FindFiltered(ctx, filter)
}

// Cancel is the client-facing path: the owner (or an admin) may cancel any
// booking that is not already cancelled.
func (s *bookingService) Cancel(ctx context.Context, caller models.CallerIdentity, bookingID string) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if booking.ClientID != caller.AccountID && !caller.IsAdmin() {
		return nil, ErrNotBookingOwner
	}
	if booking.Status == models.StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, models.StatusCancelled); err != nil {
		return nil, err
	}
	booking.Status = models.StatusCancelled

	s.notify("booking.cancelled", booking)
	return booking, nil
}

func (s *bookingService) Accept(ctx context.Context, caller models.CallerIdentity, bookingID string) (*models.Booking, error) {
	if !caller.IsAdmin() {
		return nil, ErrAdminOnly
	}

	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if booking.Status != models.StatusPending {
		return nil, ErrOnlyPendingAccepted
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, models.StatusConfirmed); err != nil {
		return nil, err
	}
	booking.Status = models.StatusConfirmed

	s.notify("booking.accepted", booking)
	return booking, nil
}

// AdminCancel bypasses the ownership check but still refuses to re-cancel:
// cancelled is terminal and same-state moves are conflicts, not no-ops.
func (s *bookingService) AdminCancel(ctx context.Context, caller models.CallerIdentity, bookingID string) (*models.Booking, error) {
	if !caller.IsAdmin() {
		return nil, ErrAdminOnly
	}

	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if booking.Status == models.StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, models.StatusCancelled); err != nil {
		return nil, err
	}
	booking.Status = models.StatusCancelled

	s.notify("booking.cancelled", booking)
	return booking, nil
}

func (s *bookingService) ExportCSV(ctx context.Context, caller models.CallerIdentity) ([]byte, error) {
	if !caller.IsAdmin() {
		return nil, ErrAdminOnly
	}

	bookings, err := s.bookingRepo.FindFiltered(ctx, repository.BookingFilter{})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{
		"Client Name", "Client Email", "Service Type", "Date", "Time",
		"Status", "Contact Method", "Contact Value", "Created At",
	}); err != nil {
		return nil, err
	}

	for i := range bookings {
		b := &bookings[i]
		var clientName, clientEmail string
		if b.Client != nil {
			clientName = b.Client.Name
			clientEmail = b.Client.Email
		}
		row := []string{
			clientName,
			clientEmail,
			b.ServiceType,
			b.Date,
			b.Time,
			string(b.Status),
			string(b.ContactMethod),
			b.ContactValue,
			b.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *bookingService) notify(routingKey string, booking *models.Booking) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.Publish(routingKey, booking)
}
