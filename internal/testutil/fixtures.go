package testutil

import (
	"time"

	"github.com/Hacnine/BestaTechnology-sub001/internal/domain"
	"github.com/google/uuid"
)

// Plan options
type PlanOption func(*domain.TimeAndActionPlan)

func WithSampleSendingDate(d time.Time) PlanOption {
	return func(p *domain.TimeAndActionPlan) {
		p.SampleSendingDate = d
	}
}

func WithMerchandiser(id string) PlanOption {
	return func(p *domain.TimeAndActionPlan) {
		p.MerchandiserID = id
	}
}

func NewTestPlan(styleName string, opts ...PlanOption) *domain.TimeAndActionPlan {
	now := time.Now().UTC()
	p := &domain.TimeAndActionPlan{
		ID:                uuid.New().String(),
		StyleName:         styleName,
		MerchandiserID:    "merch-1",
		SampleSendingDate: now.AddDate(0, 1, 0),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Cad options
type CadOption func(*domain.CadStage)

func WithCadPlanned(d time.Time) CadOption {
	return func(s *domain.CadStage) {
		s.CompleteDate = &d
	}
}

func WithCadFinal(d time.Time) CadOption {
	return func(s *domain.CadStage) {
		s.FinalCompleteDate = &d
	}
}

func NewTestCad(tnaID string, opts ...CadOption) *domain.CadStage {
	now := time.Now().UTC()
	s := &domain.CadStage{
		ID:        uuid.New().String(),
		TnaID:     tnaID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Booking options
type BookingOption func(*domain.FabricBookingStage)

func WithBookingPlanned(d time.Time) BookingOption {
	return func(b *domain.FabricBookingStage) {
		b.CompleteDate = &d
	}
}

func WithBookingActual(d time.Time) BookingOption {
	return func(b *domain.FabricBookingStage) {
		b.ActualCompleteDate = &d
	}
}

func WithBookingOwner(actorID string, claimedAt time.Time) BookingOption {
	return func(b *domain.FabricBookingStage) {
		b.OwnerID = &actorID
		b.ClaimedAt = &claimedAt
	}
}

func NewTestBooking(tnaID, styleName string, opts ...BookingOption) *domain.FabricBookingStage {
	now := time.Now().UTC()
	b := &domain.FabricBookingStage{
		ID:        uuid.New().String(),
		TnaID:     tnaID,
		StyleName: styleName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Sample options
type SampleOption func(*domain.SampleDevelopmentStage)

func WithSamplePlanned(d time.Time) SampleOption {
	return func(s *domain.SampleDevelopmentStage) {
		s.SampleCompleteDate = &d
	}
}

func WithSampleActual(d time.Time) SampleOption {
	return func(s *domain.SampleDevelopmentStage) {
		s.ActualSampleCompleteDate = &d
	}
}

func NewTestSample(tnaID string, opts ...SampleOption) *domain.SampleDevelopmentStage {
	now := time.Now().UTC()
	s := &domain.SampleDevelopmentStage{
		ID:        uuid.New().String(),
		TnaID:     tnaID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTestTracking builds a tracking stage with the given date.
func NewTestTracking(tnaID string, date time.Time) *domain.DHLTrackingStage {
	now := time.Now().UTC()
	return &domain.DHLTrackingStage{
		ID:        uuid.New().String(),
		TnaID:     tnaID,
		Date:      &date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
