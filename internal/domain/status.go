package domain

import "fmt"

type ScheduleStatusKind string

const (
	ScheduleUnknown   ScheduleStatusKind = "unknown"
	ScheduleRemaining ScheduleStatusKind = "remaining"
	ScheduleDueToday  ScheduleStatusKind = "due_today"
	ScheduleOverdue   ScheduleStatusKind = "overdue"
	ScheduleEarly     ScheduleStatusKind = "early"
	ScheduleLate      ScheduleStatusKind = "late"
	ScheduleOnTime    ScheduleStatusKind = "on_time"
)

// ScheduleStatus is the derived schedule state of a single stage. Days carries
// the whole-day magnitude for the kinds that have one (remaining, overdue,
// early, late) and is zero otherwise. It is always recomputed from the stage
// dates and never persisted, so it cannot go stale.
type ScheduleStatus struct {
	Kind ScheduleStatusKind
	Days int
}

// Label returns the canonical display text for the status. The exact bytes
// are a stable contract shared by the dashboard and the CSV export; changing
// them breaks downstream consumers.
func (s ScheduleStatus) Label() string {
	switch s.Kind {
	case ScheduleRemaining:
		return fmt.Sprintf("%d days left", s.Days)
	case ScheduleDueToday:
		return "Due today"
	case ScheduleOverdue:
		return fmt.Sprintf("%d days overdue", s.Days)
	case ScheduleEarly:
		return fmt.Sprintf("+ %d days", s.Days)
	case ScheduleLate:
		return fmt.Sprintf("%d days", s.Days)
	case ScheduleOnTime:
		return "0 day"
	default:
		return "--"
	}
}

// Completed reports whether the status describes a finished stage
// (a variance classification rather than a pending one).
func (s ScheduleStatus) Completed() bool {
	switch s.Kind {
	case ScheduleEarly, ScheduleLate, ScheduleOnTime:
		return true
	}
	return false
}
