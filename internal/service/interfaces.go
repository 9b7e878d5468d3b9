package service

import (
	"context"
	"time"

	"github.com/Hacnine/BestaTechnology-sub001/internal/domain"
	"github.com/Hacnine/BestaTechnology-sub001/internal/repository"
)

// CreatePlanInput carries the fields needed to open a new TNA plan. The three
// upstream stage records are created with it as empty shells; planned dates
// are filled in later per stage.
type CreatePlanInput struct {
	StyleName         string
	MerchandiserID    string
	SampleSendingDate time.Time
}

type PlanService interface {
	Create(ctx context.Context, in CreatePlanInput) (*domain.TimeAndActionPlan, error)
	// GetByID returns the plan with all four stage records attached (the
	// tracking stage is nil until created).
	GetByID(ctx context.Context, id string) (*domain.TimeAndActionPlan, error)
	List(ctx context.Context) ([]*domain.TimeAndActionPlan, error)
	ListByMerchandiser(ctx context.Context, merchandiserID string) ([]*domain.TimeAndActionPlan, error)

	SetSampleSendingDate(ctx context.Context, planID string, d time.Time) error
	SetCadPlanned(ctx context.Context, planID string, d time.Time) error
	SetSamplePlanned(ctx context.Context, planID string, d time.Time) error
	SetBookingPlanned(ctx context.Context, planID string, d time.Time) error
	SetBookingReceiveDate(ctx context.Context, planID string, d time.Time) error

	// CompleteCad and CompleteSample record the write-once actual completion
	// date of their stage.
	CompleteCad(ctx context.Context, planID string, actual time.Time) error
	CompleteSample(ctx context.Context, planID string, actual time.Time) error

	// CreateTracking opens the DHL tracking stage. It fails with
	// ErrGateNotSatisfied unless CAD, fabric booking and sample development
	// are all complete.
	CreateTracking(ctx context.Context, planID string, date time.Time) (*domain.DHLTrackingStage, error)
}

type BookingService interface {
	// Accept claims an unclaimed booking for the actor. Re-accepting a
	// booking the actor already owns succeeds without changing anything;
	// accepting someone else's booking returns repository.ErrClaimConflict.
	Accept(ctx context.Context, bookingID, actorID string) (*domain.FabricBookingStage, error)
	// Complete records the booking's write-once actual completion date.
	// Only the owner may complete.
	Complete(ctx context.Context, bookingID, actorID string, actual time.Time) error
	ListMine(ctx context.Context, actorID string, f repository.BookingFilter) ([]*domain.FabricBookingStage, error)
	ListUnclaimed(ctx context.Context, f repository.BookingFilter) ([]*domain.FabricBookingStage, error)
}

// StageStatusView is one dashboard row cell: a stage's dates plus its derived
// schedule status and display label.
type StageStatusView struct {
	Stage   domain.StageKind
	Planned *time.Time
	Actual  *time.Time
	Status  domain.ScheduleStatus
	Label   string
}

// PlanStatusView is the full derived state of one plan as shown on the
// dashboard. Everything in it is recomputed on read; nothing is persisted.
type PlanStatusView struct {
	PlanID            string
	DisplayID         string
	StyleName         string
	MerchandiserID    string
	SampleSendingDate time.Time

	Cad     StageStatusView
	Booking StageStatusView
	Sample  StageStatusView

	TrackingDate     *time.Time
	ReadyForTracking bool

	LeadTimeDays int
	Risk         domain.RiskLevel
}

// BoardFilter narrows the dashboard. An empty MerchandiserID means all plans.
type BoardFilter struct {
	MerchandiserID string
}

type StatusService interface {
	PlanStatus(ctx context.Context, planID string) (*PlanStatusView, error)
	Board(ctx context.Context, f BoardFilter) ([]PlanStatusView, error)
}
