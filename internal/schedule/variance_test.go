package schedule

import (
	"testing"
	"time"

	"github.com/Hacnine/BestaTechnology-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func TestClassify_CompletedEarly(t *testing.T) {
	// planned 2024-01-10, actual 2024-01-08 -> +2 days early.
	got := Classify(dayPtr(2024, 1, 10), dayPtr(2024, 1, 8), day(2024, 2, 1))
	assert.Equal(t, domain.ScheduleStatus{Kind: domain.ScheduleEarly, Days: 2}, got)
	assert.Equal(t, "+ 2 days", got.Label())
}

func TestClassify_CompletedLate(t *testing.T) {
	// planned 2024-01-10, actual 2024-01-12 -> 2 days late.
	got := Classify(dayPtr(2024, 1, 10), dayPtr(2024, 1, 12), day(2024, 2, 1))
	assert.Equal(t, domain.ScheduleStatus{Kind: domain.ScheduleLate, Days: 2}, got)
	assert.Equal(t, "2 days", got.Label())
}

func TestClassify_CompletedOnTime(t *testing.T) {
	got := Classify(dayPtr(2024, 1, 10), dayPtr(2024, 1, 10), day(2024, 2, 1))
	assert.Equal(t, domain.ScheduleStatus{Kind: domain.ScheduleOnTime}, got)
	assert.Equal(t, "0 day", got.Label())
}

func TestClassify_Remaining(t *testing.T) {
	got := Classify(dayPtr(2024, 1, 15), nil, day(2024, 1, 10))
	assert.Equal(t, domain.ScheduleStatus{Kind: domain.ScheduleRemaining, Days: 5}, got)
	assert.Equal(t, "5 days left", got.Label())
}

func TestClassify_DueToday(t *testing.T) {
	got := Classify(dayPtr(2024, 1, 10), nil, day(2024, 1, 10))
	assert.Equal(t, domain.ScheduleStatus{Kind: domain.ScheduleDueToday}, got)
	assert.Equal(t, "Due today", got.Label())
}

func TestClassify_Overdue(t *testing.T) {
	got := Classify(dayPtr(2024, 1, 10), nil, day(2024, 1, 13))
	assert.Equal(t, domain.ScheduleStatus{Kind: domain.ScheduleOverdue, Days: 3}, got)
	assert.Equal(t, "3 days overdue", got.Label())
}

func TestClassify_TotalOverPresenceCombinations(t *testing.T) {
	reference := day(2024, 1, 10)
	planned := dayPtr(2024, 1, 12)
	actual := dayPtr(2024, 1, 11)

	tests := []struct {
		name     string
		planned  *time.Time
		actual   *time.Time
		wantKind domain.ScheduleStatusKind
	}{
		{"both set", planned, actual, domain.ScheduleEarly},
		{"planned only", planned, nil, domain.ScheduleRemaining},
		{"actual only", nil, actual, domain.ScheduleUnknown},
		{"neither", nil, nil, domain.ScheduleUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.planned, tt.actual, reference)
			assert.Equal(t, tt.wantKind, got.Kind)
		})
	}
}

func TestClassify_VarianceSignProperties(t *testing.T) {
	planned := day(2024, 3, 15)

	// Any actual on or before the planned date classifies early-or-on-time.
	for offset := 0; offset <= 10; offset++ {
		actual := planned.AddDate(0, 0, -offset)
		got := Classify(&planned, &actual, day(2024, 4, 1))
		if offset == 0 {
			assert.Equal(t, domain.ScheduleOnTime, got.Kind)
		} else {
			assert.Equal(t, domain.ScheduleEarly, got.Kind, "offset %d", offset)
			assert.Equal(t, offset, got.Days)
		}
	}

	// Any actual after the planned date classifies late.
	for offset := 1; offset <= 10; offset++ {
		actual := planned.AddDate(0, 0, offset)
		got := Classify(&planned, &actual, day(2024, 4, 1))
		assert.Equal(t, domain.ScheduleLate, got.Kind, "offset %d", offset)
		assert.Equal(t, offset, got.Days)
	}
}

func TestClassify_RemainingBoundary(t *testing.T) {
	planned := dayPtr(2024, 6, 10)

	assert.Equal(t, domain.ScheduleRemaining, Classify(planned, nil, day(2024, 6, 9)).Kind)
	assert.Equal(t, domain.ScheduleDueToday, Classify(planned, nil, day(2024, 6, 10)).Kind)
	assert.Equal(t, domain.ScheduleOverdue, Classify(planned, nil, day(2024, 6, 11)).Kind)
}

func TestClassify_ReferenceTimeOfDayIrrelevant(t *testing.T) {
	// A late-evening reference in any timezone lands on the same UTC day.
	planned := dayPtr(2024, 6, 10)
	reference := time.Date(2024, 6, 10, 23, 55, 0, 0, time.UTC)
	assert.Equal(t, domain.ScheduleDueToday, Classify(planned, nil, reference).Kind)
}

func TestClassifyStageHelpers_NilStage(t *testing.T) {
	now := day(2024, 1, 1)
	assert.Equal(t, domain.ScheduleUnknown, ClassifyCad(nil, now).Kind)
	assert.Equal(t, domain.ScheduleUnknown, ClassifyBooking(nil, now).Kind)
	assert.Equal(t, domain.ScheduleUnknown, ClassifySample(nil, now).Kind)
}

func TestClassifyStageHelpers_FieldMapping(t *testing.T) {
	now := day(2024, 1, 20)

	cad := &domain.CadStage{CompleteDate: dayPtr(2024, 1, 10), FinalCompleteDate: dayPtr(2024, 1, 8)}
	assert.Equal(t, domain.ScheduleStatus{Kind: domain.ScheduleEarly, Days: 2}, ClassifyCad(cad, now))

	booking := &domain.FabricBookingStage{CompleteDate: dayPtr(2024, 1, 25)}
	assert.Equal(t, domain.ScheduleStatus{Kind: domain.ScheduleRemaining, Days: 5}, ClassifyBooking(booking, now))

	sample := &domain.SampleDevelopmentStage{SampleCompleteDate: dayPtr(2024, 1, 10), ActualSampleCompleteDate: dayPtr(2024, 1, 12)}
	assert.Equal(t, domain.ScheduleStatus{Kind: domain.ScheduleLate, Days: 2}, ClassifySample(sample, now))
}
