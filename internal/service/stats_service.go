package service

import (
	"context"

	"github.com/lenscraft/studio-api/internal/models"
	"github.com/lenscraft/studio-api/internal/repository"
)

// Stats holds all-time dashboard totals. Revenue sums the snapshotted price of
// confirmed bookings only; every call re-scans the collection.
type Stats struct {
	TotalBookings int64
	Pending       int64
	Confirmed     int64
	Cancelled     int64
	Revenue       float64
}

type StatsService interface {
	ComputeStats(ctx context.Context) (*Stats, error)
}

type statsService struct {
	bookingRepo repository.BookingRepository
}

func NewStatsService(bookingRepo repository.BookingRepository) StatsService {
	return &statsService{bookingRepo: bookingRepo}
}

func (s *statsService) ComputeStats(ctx context.Context) (*Stats, error) {
	total, err := s.bookingRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.bookingRepo.CountByStatus(ctx, models.StatusPending)
	if err != nil {
		return nil, err
	}
	confirmed, err := s.bookingRepo.CountByStatus(ctx, models.StatusConfirmed)
	if err != nil {
		return nil, err
	}
	cancelled, err := s.bookingRepo.CountByStatus(ctx, models.StatusCancelled)
	if err != nil {
		return nil, err
	}
	revenue, err := s.bookingRepo.SumPriceByStatus(ctx, models.StatusConfirmed)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalBookings: total,
		Pending:       pending,
		Confirmed:     confirmed,
		Cancelled:     cancelled,
		Revenue:       revenue,
	}, nil
}
