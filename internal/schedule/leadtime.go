package schedule

import (
	"time"

	"github.com/Hacnine/BestaTechnology-sub001/internal/dateutil"
	"github.com/Hacnine/BestaTechnology-sub001/internal/domain"
)

// LeadTimeRemaining returns the whole days between the plan's reference date
// and its sample sending date, ceiling-rounded toward the later date. The
// reference date is the DHL tracking date when present, otherwise now. A
// negative result means the reference date has already passed the shipment
// target. Always derived, never stored.
func LeadTimeRemaining(p *domain.TimeAndActionPlan, now time.Time) int {
	reference := dateutil.Normalize(now)
	if p.Tracking != nil && p.Tracking.Date != nil {
		reference = dateutil.Normalize(*p.Tracking.Date)
	}
	return dateutil.CeilDayDiff(reference, dateutil.Normalize(p.SampleSendingDate))
}

// leadTimeWarnDays is the remaining-lead-time threshold below which a plan is
// flagged at risk even when no stage has slipped yet.
const leadTimeWarnDays = 7

// ComputeRisk rolls per-stage schedule statuses and the remaining lead time
// up to a plan-level risk signal.
//
// A plan is critical when the shipment target has passed or any stage is
// overdue; at risk when the lead-time buffer is inside the warning window or
// any stage ran late (finished late or is due today); on track otherwise.
func ComputeRisk(statuses []domain.ScheduleStatus, leadTimeDays int) domain.RiskLevel {
	if leadTimeDays < 0 {
		return domain.RiskCritical
	}

	level := domain.RiskOnTrack
	if leadTimeDays <= leadTimeWarnDays {
		level = domain.RiskAtRisk
	}

	for _, s := range statuses {
		switch s.Kind {
		case domain.ScheduleOverdue:
			return domain.RiskCritical
		case domain.ScheduleLate, domain.ScheduleDueToday:
			level = domain.RiskAtRisk
		}
	}
	return level
}
