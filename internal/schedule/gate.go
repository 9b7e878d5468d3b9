package schedule

import "github.com/Hacnine/BestaTechnology-sub001/internal/domain"

// GateReady reports whether all three upstream stages of a plan are provably
// complete: CAD final date, fabric booking actual date and sample development
// actual date all set. Pure AND-join, no partial credit; a missing stage
// record counts as unsatisfied.
//
// This is the only validation gating DHL tracking creation. Once the tracking
// stage exists it has no further gate.
func GateReady(p *domain.TimeAndActionPlan) bool {
	if p == nil {
		return false
	}
	return p.Cad != nil && p.Cad.FinalCompleteDate != nil &&
		p.FabricBooking != nil && p.FabricBooking.ActualCompleteDate != nil &&
		p.SampleDevelopment != nil && p.SampleDevelopment.ActualSampleCompleteDate != nil
}
