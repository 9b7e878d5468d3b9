package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Hacnine/BestaTechnology-sub001/internal/domain"
	"github.com/Hacnine/BestaTechnology-sub001/internal/repository"
)

type bookingService struct {
	bookings repository.BookingRepo
	clock    func() time.Time
}

func NewBookingService(bookings repository.BookingRepo) BookingService {
	return &bookingService{
		bookings: bookings,
		clock:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *bookingService) Accept(ctx context.Context, bookingID, actorID string) (*domain.FabricBookingStage, error) {
	if actorID == "" {
		return nil, fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}
	// The repository does the atomic nil -> actor transition; no pre-read,
	// so two racing accepts cannot both observe "unclaimed".
	if err := s.bookings.Claim(ctx, bookingID, actorID, s.clock()); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, bookingID)
}

func (s *bookingService) Complete(ctx context.Context, bookingID, actorID string, actual time.Time) error {
	if actorID == "" {
		return fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}
	if actual.IsZero() {
		return fmt.Errorf("%w: completion date is required", ErrInvalidInput)
	}
	return s.bookings.Complete(ctx, bookingID, actorID, actual)
}

func (s *bookingService) ListMine(ctx context.Context, actorID string, f repository.BookingFilter) ([]*domain.FabricBookingStage, error) {
	return s.bookings.ListMine(ctx, actorID, f)
}

func (s *bookingService) ListUnclaimed(ctx context.Context, f repository.BookingFilter) ([]*domain.FabricBookingStage, error) {
	return s.bookings.ListUnclaimed(ctx, f)
}
