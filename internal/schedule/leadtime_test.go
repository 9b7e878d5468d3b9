package schedule

import (
	"testing"
	"time"

	"github.com/Hacnine/BestaTechnology-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLeadTimeRemaining_FromNow(t *testing.T) {
	p := &domain.TimeAndActionPlan{SampleSendingDate: day(2024, 3, 20)}
	assert.Equal(t, 5, LeadTimeRemaining(p, day(2024, 3, 15)))
}

func TestLeadTimeRemaining_PrefersTrackingDate(t *testing.T) {
	p := &domain.TimeAndActionPlan{
		SampleSendingDate: day(2024, 3, 20),
		Tracking:          &domain.DHLTrackingStage{Date: dayPtr(2024, 3, 18)},
	}
	// Tracking date wins over now.
	assert.Equal(t, 2, LeadTimeRemaining(p, day(2024, 3, 1)))
}

func TestLeadTimeRemaining_NegativeWhenTargetPassed(t *testing.T) {
	p := &domain.TimeAndActionPlan{SampleSendingDate: day(2024, 3, 20)}
	assert.Equal(t, -4, LeadTimeRemaining(p, day(2024, 3, 24)))
}

func TestLeadTimeRemaining_NormalizesWallClockInputs(t *testing.T) {
	// A mid-afternoon "now" must not shave a day off the buffer.
	p := &domain.TimeAndActionPlan{SampleSendingDate: day(2024, 3, 20)}
	now := time.Date(2024, 3, 15, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, 5, LeadTimeRemaining(p, now))
}

func TestComputeRisk(t *testing.T) {
	remaining := domain.ScheduleStatus{Kind: domain.ScheduleRemaining, Days: 10}
	overdue := domain.ScheduleStatus{Kind: domain.ScheduleOverdue, Days: 2}
	late := domain.ScheduleStatus{Kind: domain.ScheduleLate, Days: 1}
	onTime := domain.ScheduleStatus{Kind: domain.ScheduleOnTime}

	tests := []struct {
		name     string
		statuses []domain.ScheduleStatus
		leadTime int
		want     domain.RiskLevel
	}{
		{"healthy plan", []domain.ScheduleStatus{remaining, onTime}, 20, domain.RiskOnTrack},
		{"target passed", []domain.ScheduleStatus{onTime}, -1, domain.RiskCritical},
		{"stage overdue", []domain.ScheduleStatus{remaining, overdue}, 20, domain.RiskCritical},
		{"stage late", []domain.ScheduleStatus{late, onTime}, 20, domain.RiskAtRisk},
		{"buffer inside warning window", []domain.ScheduleStatus{remaining}, 7, domain.RiskAtRisk},
		{"no stage data yet", nil, 30, domain.RiskOnTrack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeRisk(tt.statuses, tt.leadTime))
		})
	}
}
