package service

import (
	"context"
	"sort"
	"time"

	"github.com/Hacnine/BestaTechnology-sub001/internal/dateutil"
	"github.com/Hacnine/BestaTechnology-sub001/internal/domain"
	"github.com/Hacnine/BestaTechnology-sub001/internal/schedule"
)

type statusService struct {
	plans PlanService
	clock func() time.Time
}

// NewStatusService builds the read-side dashboard service on top of the plan
// aggregate loader.
func NewStatusService(plans PlanService) StatusService {
	return &statusService{
		plans: plans,
		clock: func() time.Time { return time.Now().UTC() },
	}
}

func (s *statusService) PlanStatus(ctx context.Context, planID string) (*PlanStatusView, error) {
	p, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	v := buildPlanStatusView(p, s.clock())
	return &v, nil
}

func (s *statusService) Board(ctx context.Context, f BoardFilter) ([]PlanStatusView, error) {
	var (
		plans []*domain.TimeAndActionPlan
		err   error
	)
	if f.MerchandiserID != "" {
		plans, err = s.plans.ListByMerchandiser(ctx, f.MerchandiserID)
	} else {
		plans, err = s.plans.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	now := s.clock()
	views := make([]PlanStatusView, 0, len(plans))
	for _, p := range plans {
		views = append(views, buildPlanStatusView(p, now))
	}
	sortBoard(views)
	return views, nil
}

// buildPlanStatusView derives the full dashboard row for one plan at the
// given instant. Pure: all schedule math lives in the schedule package.
func buildPlanStatusView(p *domain.TimeAndActionPlan, now time.Time) PlanStatusView {
	reference := dateutil.Normalize(now)

	cad := schedule.ClassifyCad(p.Cad, reference)
	booking := schedule.ClassifyBooking(p.FabricBooking, reference)
	sample := schedule.ClassifySample(p.SampleDevelopment, reference)

	leadTime := schedule.LeadTimeRemaining(p, now)

	v := PlanStatusView{
		PlanID:            p.ID,
		DisplayID:         p.DisplayID(),
		StyleName:         p.StyleName,
		MerchandiserID:    p.MerchandiserID,
		SampleSendingDate: p.SampleSendingDate,
		Cad: StageStatusView{
			Stage:  domain.StageCad,
			Status: cad,
			Label:  cad.Label(),
		},
		Booking: StageStatusView{
			Stage:  domain.StageFabricBooking,
			Status: booking,
			Label:  booking.Label(),
		},
		Sample: StageStatusView{
			Stage:  domain.StageSampleDevelopment,
			Status: sample,
			Label:  sample.Label(),
		},
		ReadyForTracking: p.Tracking == nil && schedule.GateReady(p),
		LeadTimeDays:     leadTime,
		Risk:             schedule.ComputeRisk([]domain.ScheduleStatus{cad, booking, sample}, leadTime),
	}

	if p.Cad != nil {
		v.Cad.Planned = p.Cad.CompleteDate
		v.Cad.Actual = p.Cad.FinalCompleteDate
	}
	if p.FabricBooking != nil {
		v.Booking.Planned = p.FabricBooking.CompleteDate
		v.Booking.Actual = p.FabricBooking.ActualCompleteDate
	}
	if p.SampleDevelopment != nil {
		v.Sample.Planned = p.SampleDevelopment.SampleCompleteDate
		v.Sample.Actual = p.SampleDevelopment.ActualSampleCompleteDate
	}
	if p.Tracking != nil {
		v.TrackingDate = p.Tracking.Date
	}
	return v
}

// riskPriority orders risk levels for board sorting, worst first.
func riskPriority(l domain.RiskLevel) int {
	switch l {
	case domain.RiskCritical:
		return 0
	case domain.RiskAtRisk:
		return 1
	default:
		return 2
	}
}

func sortBoard(views []PlanStatusView) {
	sort.Slice(views, func(i, j int) bool {
		ri, rj := riskPriority(views[i].Risk), riskPriority(views[j].Risk)
		if ri != rj {
			return ri < rj
		}
		if !views[i].SampleSendingDate.Equal(views[j].SampleSendingDate) {
			return views[i].SampleSendingDate.Before(views[j].SampleSendingDate)
		}
		return views[i].StyleName < views[j].StyleName
	})
}
