package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lenscraft/studio-api/internal/models"
	"gorm.io/gorm"
)

// BookingFilter narrows admin listings. Zero values (and the literal "all")
// mean "no filter"; date bounds are inclusive and independently combinable.
type BookingFilter struct {
	Status        string
	ServiceType   string
	ContactMethod string
	FromDate      string
	ToDate        string
}

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id string) (*models.Booking, error)
	FindByClientID(ctx context.Context, clientID string) ([]models.Booking, error)
	FindFiltered(ctx context.Context, filter BookingFilter) ([]models.Booking, error)
	FindActiveByClientDateService(ctx context.Context, clientID, date, serviceType string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus) error
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.BookingStatus) (int64, error)
	SumPriceByStatus(ctx context.Context, status models.BookingStatus) (float64, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByClientID(ctx context.Context, clientID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindFiltered(ctx context.Context, filter BookingFilter) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).Preload("Client")

	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.ServiceType != "" && filter.ServiceType != "all" {
		q = q.Where("service_type = ?", filter.ServiceType)
	}
	if filter.ContactMethod != "" && filter.ContactMethod != "all" {
		q = q.Where("contact_method = ?", filter.ContactMethod)
	}
	if filter.FromDate != "" {
		q = q.Where("date >= ?", filter.FromDate)
	}
	if filter.ToDate != "" {
		q = q.Where("date <= ?", filter.ToDate)
	}

	var bookings []models.Booking
	if err := q.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindActiveByClientDateService matches the partial unique index guarding
// duplicate bookings: cancelled bookings do not count.
func (r *bookingRepository) FindActiveByClientDateService(ctx context.Context, clientID, date, serviceType string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND date = ? AND service_type = ? AND status <> ?",
			clientID, date, serviceType, models.StatusCancelled).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("status", status).Error
}

func (r *bookingRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).Count(&count).Error
	return count, err
}

func (r *bookingRepository) CountByStatus(ctx context.Context, status models.BookingStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) SumPriceByStatus(ctx context.Context, status models.BookingStatus) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(price), 0)").
		Scan(&total).Error
	return total, err
}
