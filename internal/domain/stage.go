package domain

import "time"

// StageKind identifies one of the four fixed production stages of a TNA plan.
// The stage topology is fixed: CAD, fabric booking and sample development run
// upstream of DHL tracking. It is not user-configurable.
type StageKind string

const (
	StageCad               StageKind = "cad"
	StageFabricBooking     StageKind = "fabric_booking"
	StageSampleDevelopment StageKind = "sample_development"
	StageDHLTracking       StageKind = "dhl_tracking"
)

// DisplayName returns the human-facing stage name.
func (k StageKind) DisplayName() string {
	switch k {
	case StageCad:
		return "CAD"
	case StageFabricBooking:
		return "Fabric Booking"
	case StageSampleDevelopment:
		return "Sample Development"
	case StageDHLTracking:
		return "DHL Tracking"
	default:
		return string(k)
	}
}

// CadStage is the design/CAD step. FinalCompleteDate is write-once: set at
// the moment of completion and immutable afterwards.
type CadStage struct {
	ID                string
	TnaID             string
	CompleteDate      *time.Time
	FinalCompleteDate *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// FabricBookingStage is the claimable stage: a booking sits in a shared pool
// until exactly one actor claims it. OwnerID transitions only nil -> actor;
// there is no release operation.
type FabricBookingStage struct {
	ID                 string
	TnaID              string
	StyleName          string
	CompleteDate       *time.Time
	ActualCompleteDate *time.Time
	ReceiveDate        *time.Time
	OwnerID            *string
	ClaimedAt          *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Claimed reports whether any actor owns the booking.
func (b *FabricBookingStage) Claimed() bool {
	return b.OwnerID != nil && *b.OwnerID != ""
}

// ClaimedBy reports whether the given actor owns the booking.
func (b *FabricBookingStage) ClaimedBy(actorID string) bool {
	return b.OwnerID != nil && *b.OwnerID == actorID
}

// SampleDevelopmentStage is the sample-making step.
type SampleDevelopmentStage struct {
	ID                       string
	TnaID                    string
	SampleCompleteDate       *time.Time
	ActualSampleCompleteDate *time.Time
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// DHLTrackingStage records the shipment hand-off. It carries no planned date;
// its creation is gated on the three upstream stages being complete, and once
// created it has no further gate.
type DHLTrackingStage struct {
	ID        string
	TnaID     string
	Date      *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
