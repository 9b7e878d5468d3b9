package repository

import (
	"context"
	"time"

	"github.com/Hacnine/BestaTechnology-sub001/internal/domain"
)

// BookingFilter narrows a booking pool view. Search matches the style name
// (substring, case-insensitive); the planned range filters on the planned
// complete date. Offset/Limit window the filtered, order-preserving result
// set; Limit <= 0 means no limit.
type BookingFilter struct {
	Search      string
	PlannedFrom *time.Time
	PlannedTo   *time.Time
	Offset      int
	Limit       int
}

type PlanRepo interface {
	Create(ctx context.Context, p *domain.TimeAndActionPlan) error
	GetByID(ctx context.Context, id string) (*domain.TimeAndActionPlan, error)
	List(ctx context.Context) ([]*domain.TimeAndActionPlan, error)
	ListByMerchandiser(ctx context.Context, merchandiserID string) ([]*domain.TimeAndActionPlan, error)
	Update(ctx context.Context, p *domain.TimeAndActionPlan) error
}

type CadRepo interface {
	Create(ctx context.Context, s *domain.CadStage) error
	GetByPlan(ctx context.Context, tnaID string) (*domain.CadStage, error)
	SetPlannedDate(ctx context.Context, id string, d time.Time) error
	// Complete sets the write-once final complete date; ErrAlreadyComplete
	// if it is already set.
	Complete(ctx context.Context, id string, actual time.Time) error
}

type SampleRepo interface {
	Create(ctx context.Context, s *domain.SampleDevelopmentStage) error
	GetByPlan(ctx context.Context, tnaID string) (*domain.SampleDevelopmentStage, error)
	SetPlannedDate(ctx context.Context, id string, d time.Time) error
	Complete(ctx context.Context, id string, actual time.Time) error
}

type BookingRepo interface {
	Create(ctx context.Context, b *domain.FabricBookingStage) error
	GetByID(ctx context.Context, id string) (*domain.FabricBookingStage, error)
	GetByPlan(ctx context.Context, tnaID string) (*domain.FabricBookingStage, error)
	SetPlannedDate(ctx context.Context, id string, d time.Time) error
	SetReceiveDate(ctx context.Context, id string, d time.Time) error

	// Claim transitions owner_id nil -> actor as a single conditional update.
	// Claiming a booking already owned by the same actor is a no-op success;
	// owned by anyone else, ErrClaimConflict.
	Claim(ctx context.Context, id, actorID string, claimedAt time.Time) error

	// Complete sets the write-once actual complete date, requiring ownership.
	Complete(ctx context.Context, id, actorID string, actual time.Time) error

	// ListMine and ListUnclaimed are disjoint views over the pool.
	ListMine(ctx context.Context, actorID string, f BookingFilter) ([]*domain.FabricBookingStage, error)
	ListUnclaimed(ctx context.Context, f BookingFilter) ([]*domain.FabricBookingStage, error)
}

type TrackingRepo interface {
	Create(ctx context.Context, s *domain.DHLTrackingStage) error
	GetByPlan(ctx context.Context, tnaID string) (*domain.DHLTrackingStage, error)
}
