package schedule

import (
	"testing"
	"time"

	"github.com/Hacnine/BestaTechnology-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
)

func gatePlan(cadDone, bookingDone, sampleDone bool) *domain.TimeAndActionPlan {
	done := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	p := &domain.TimeAndActionPlan{
		ID:                "tna-1",
		Cad:               &domain.CadStage{},
		FabricBooking:     &domain.FabricBookingStage{},
		SampleDevelopment: &domain.SampleDevelopmentStage{},
	}
	if cadDone {
		p.Cad.FinalCompleteDate = &done
	}
	if bookingDone {
		p.FabricBooking.ActualCompleteDate = &done
	}
	if sampleDone {
		p.SampleDevelopment.ActualSampleCompleteDate = &done
	}
	return p
}

// All 8 combinations of the three prerequisites; the gate opens only for the
// all-true row.
func TestGateReady_TruthTable(t *testing.T) {
	for i := 0; i < 8; i++ {
		cad := i&1 != 0
		booking := i&2 != 0
		sample := i&4 != 0
		want := cad && booking && sample

		got := GateReady(gatePlan(cad, booking, sample))
		assert.Equalf(t, want, got, "cad=%v booking=%v sample=%v", cad, booking, sample)
	}
}

func TestGateReady_MissingStageRecords(t *testing.T) {
	assert.False(t, GateReady(nil))
	assert.False(t, GateReady(&domain.TimeAndActionPlan{ID: "tna-1"}))

	// One stage record absent entirely, the others complete.
	p := gatePlan(true, true, true)
	p.FabricBooking = nil
	assert.False(t, GateReady(p))
}
