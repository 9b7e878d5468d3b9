// Package schedule holds the pure schedule math: per-stage variance
// classification, the upstream dependency gate and the plan-level lead-time
// roll-up. Everything here is side-effect free and safe to call concurrently.
package schedule

import (
	"time"

	"github.com/Hacnine/BestaTechnology-sub001/internal/dateutil"
	"github.com/Hacnine/BestaTechnology-sub001/internal/domain"
)

// Classify derives a stage's schedule status from its planned and actual
// dates. It is total over all four presence combinations: missing data yields
// ScheduleUnknown, never an error.
//
// With both dates set the result is a variance classification
// (positive variance = completed early). With only a planned date the result
// is measured against reference, which callers normalize from "now" or an
// injected clock.
func Classify(planned, actual *time.Time, reference time.Time) domain.ScheduleStatus {
	if planned == nil {
		return domain.ScheduleStatus{Kind: domain.ScheduleUnknown}
	}

	if actual != nil {
		variance := dateutil.DayDiff(*actual, *planned)
		switch {
		case variance > 0:
			return domain.ScheduleStatus{Kind: domain.ScheduleEarly, Days: variance}
		case variance < 0:
			return domain.ScheduleStatus{Kind: domain.ScheduleLate, Days: -variance}
		default:
			return domain.ScheduleStatus{Kind: domain.ScheduleOnTime}
		}
	}

	remaining := dateutil.DayDiff(reference, *planned)
	switch {
	case remaining > 0:
		return domain.ScheduleStatus{Kind: domain.ScheduleRemaining, Days: remaining}
	case remaining < 0:
		return domain.ScheduleStatus{Kind: domain.ScheduleOverdue, Days: -remaining}
	default:
		return domain.ScheduleStatus{Kind: domain.ScheduleDueToday}
	}
}

// ClassifyCad derives the CAD stage status.
func ClassifyCad(s *domain.CadStage, reference time.Time) domain.ScheduleStatus {
	if s == nil {
		return domain.ScheduleStatus{Kind: domain.ScheduleUnknown}
	}
	return Classify(s.CompleteDate, s.FinalCompleteDate, reference)
}

// ClassifyBooking derives the fabric booking stage status.
func ClassifyBooking(s *domain.FabricBookingStage, reference time.Time) domain.ScheduleStatus {
	if s == nil {
		return domain.ScheduleStatus{Kind: domain.ScheduleUnknown}
	}
	return Classify(s.CompleteDate, s.ActualCompleteDate, reference)
}

// ClassifySample derives the sample development stage status.
func ClassifySample(s *domain.SampleDevelopmentStage, reference time.Time) domain.ScheduleStatus {
	if s == nil {
		return domain.ScheduleStatus{Kind: domain.ScheduleUnknown}
	}
	return Classify(s.SampleCompleteDate, s.ActualSampleCompleteDate, reference)
}
