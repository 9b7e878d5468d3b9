package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Hacnine/BestaTechnology-sub001/internal/db"
	"github.com/Hacnine/BestaTechnology-sub001/internal/domain"
	"github.com/Hacnine/BestaTechnology-sub001/internal/repository"
	"github.com/Hacnine/BestaTechnology-sub001/internal/schedule"
	"github.com/google/uuid"
)

type planService struct {
	plans     repository.PlanRepo
	cads      repository.CadRepo
	samples   repository.SampleRepo
	bookings  repository.BookingRepo
	trackings repository.TrackingRepo
	uow       db.UnitOfWork
	clock     func() time.Time
}

func NewPlanService(
	plans repository.PlanRepo,
	cads repository.CadRepo,
	samples repository.SampleRepo,
	bookings repository.BookingRepo,
	trackings repository.TrackingRepo,
	uow db.UnitOfWork,
) PlanService {
	return &planService{
		plans:     plans,
		cads:      cads,
		samples:   samples,
		bookings:  bookings,
		trackings: trackings,
		uow:       uow,
		clock:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *planService) Create(ctx context.Context, in CreatePlanInput) (*domain.TimeAndActionPlan, error) {
	styleName := strings.TrimSpace(in.StyleName)
	if styleName == "" {
		return nil, fmt.Errorf("%w: style name is required", ErrInvalidInput)
	}
	if in.MerchandiserID == "" {
		return nil, fmt.Errorf("%w: merchandiser is required", ErrInvalidInput)
	}
	if in.SampleSendingDate.IsZero() {
		return nil, fmt.Errorf("%w: sample sending date is required", ErrInvalidInput)
	}

	now := s.clock()
	p := &domain.TimeAndActionPlan{
		ID:                uuid.New().String(),
		StyleName:         styleName,
		MerchandiserID:    in.MerchandiserID,
		SampleSendingDate: in.SampleSendingDate,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	p.Cad = &domain.CadStage{ID: uuid.New().String(), TnaID: p.ID, CreatedAt: now, UpdatedAt: now}
	p.FabricBooking = &domain.FabricBookingStage{ID: uuid.New().String(), TnaID: p.ID, StyleName: styleName, CreatedAt: now, UpdatedAt: now}
	p.SampleDevelopment = &domain.SampleDevelopmentStage{ID: uuid.New().String(), TnaID: p.ID, CreatedAt: now, UpdatedAt: now}

	// The plan and its three upstream stage shells are born together or not
	// at all.
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLitePlanRepo(tx).Create(ctx, p); err != nil {
			return fmt.Errorf("creating plan: %w", err)
		}
		if err := repository.NewSQLiteCadRepo(tx).Create(ctx, p.Cad); err != nil {
			return fmt.Errorf("creating cad stage: %w", err)
		}
		if err := repository.NewSQLiteBookingRepo(tx).Create(ctx, p.FabricBooking); err != nil {
			return fmt.Errorf("creating fabric booking stage: %w", err)
		}
		if err := repository.NewSQLiteSampleRepo(tx).Create(ctx, p.SampleDevelopment); err != nil {
			return fmt.Errorf("creating sample development stage: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *planService) GetByID(ctx context.Context, id string) (*domain.TimeAndActionPlan, error) {
	p, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.attachStages(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *planService) List(ctx context.Context) ([]*domain.TimeAndActionPlan, error) {
	plans, err := s.plans.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.attachAll(ctx, plans)
}

func (s *planService) ListByMerchandiser(ctx context.Context, merchandiserID string) ([]*domain.TimeAndActionPlan, error) {
	plans, err := s.plans.ListByMerchandiser(ctx, merchandiserID)
	if err != nil {
		return nil, err
	}
	return s.attachAll(ctx, plans)
}

func (s *planService) attachAll(ctx context.Context, plans []*domain.TimeAndActionPlan) ([]*domain.TimeAndActionPlan, error) {
	for _, p := range plans {
		if err := s.attachStages(ctx, p); err != nil {
			return nil, err
		}
	}
	return plans, nil
}

// attachStages loads the stage records onto the plan. The three upstream
// stages always exist (created with the plan); only tracking may be absent.
func (s *planService) attachStages(ctx context.Context, p *domain.TimeAndActionPlan) error {
	var err error
	if p.Cad, err = s.cads.GetByPlan(ctx, p.ID); err != nil {
		return fmt.Errorf("loading cad stage: %w", err)
	}
	if p.FabricBooking, err = s.bookings.GetByPlan(ctx, p.ID); err != nil {
		return fmt.Errorf("loading fabric booking stage: %w", err)
	}
	if p.SampleDevelopment, err = s.samples.GetByPlan(ctx, p.ID); err != nil {
		return fmt.Errorf("loading sample development stage: %w", err)
	}
	p.Tracking, err = s.trackings.GetByPlan(ctx, p.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			p.Tracking = nil
			return nil
		}
		return fmt.Errorf("loading tracking stage: %w", err)
	}
	return nil
}

func (s *planService) SetSampleSendingDate(ctx context.Context, planID string, d time.Time) error {
	if d.IsZero() {
		return fmt.Errorf("%w: sample sending date is required", ErrInvalidInput)
	}
	p, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return err
	}
	p.SampleSendingDate = d
	p.UpdatedAt = s.clock()
	return s.plans.Update(ctx, p)
}

func (s *planService) SetCadPlanned(ctx context.Context, planID string, d time.Time) error {
	stage, err := s.cads.GetByPlan(ctx, planID)
	if err != nil {
		return err
	}
	return s.cads.SetPlannedDate(ctx, stage.ID, d)
}

func (s *planService) SetSamplePlanned(ctx context.Context, planID string, d time.Time) error {
	stage, err := s.samples.GetByPlan(ctx, planID)
	if err != nil {
		return err
	}
	return s.samples.SetPlannedDate(ctx, stage.ID, d)
}

func (s *planService) SetBookingPlanned(ctx context.Context, planID string, d time.Time) error {
	stage, err := s.bookings.GetByPlan(ctx, planID)
	if err != nil {
		return err
	}
	return s.bookings.SetPlannedDate(ctx, stage.ID, d)
}

func (s *planService) SetBookingReceiveDate(ctx context.Context, planID string, d time.Time) error {
	stage, err := s.bookings.GetByPlan(ctx, planID)
	if err != nil {
		return err
	}
	return s.bookings.SetReceiveDate(ctx, stage.ID, d)
}

func (s *planService) CompleteCad(ctx context.Context, planID string, actual time.Time) error {
	stage, err := s.cads.GetByPlan(ctx, planID)
	if err != nil {
		return err
	}
	return s.cads.Complete(ctx, stage.ID, actual)
}

func (s *planService) CompleteSample(ctx context.Context, planID string, actual time.Time) error {
	stage, err := s.samples.GetByPlan(ctx, planID)
	if err != nil {
		return err
	}
	return s.samples.Complete(ctx, stage.ID, actual)
}

func (s *planService) CreateTracking(ctx context.Context, planID string, date time.Time) (*domain.DHLTrackingStage, error) {
	p, err := s.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if p.Tracking != nil {
		return nil, ErrTrackingExists
	}
	if !schedule.GateReady(p) {
		return nil, fmt.Errorf("%w: %s", ErrGateNotSatisfied, describeGate(p))
	}

	now := s.clock()
	t := &domain.DHLTrackingStage{
		ID:        uuid.New().String(),
		TnaID:     planID,
		Date:      &date,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.trackings.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("creating tracking stage: %w", err)
	}
	return t, nil
}

// describeGate names the upstream stages still blocking tracking creation.
func describeGate(p *domain.TimeAndActionPlan) string {
	var pending []string
	if p.Cad == nil || p.Cad.FinalCompleteDate == nil {
		pending = append(pending, domain.StageCad.DisplayName())
	}
	if p.FabricBooking == nil || p.FabricBooking.ActualCompleteDate == nil {
		pending = append(pending, domain.StageFabricBooking.DisplayName())
	}
	if p.SampleDevelopment == nil || p.SampleDevelopment.ActualSampleCompleteDate == nil {
		pending = append(pending, domain.StageSampleDevelopment.DisplayName())
	}
	return "pending: " + strings.Join(pending, ", ")
}
