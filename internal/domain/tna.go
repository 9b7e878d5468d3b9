package domain

import "time"

// TimeAndActionPlan coordinates the production stages of one order/style
// against its shipment target date. Exactly one instance of each stage type
// hangs off the plan; stage records have no lifecycle outside their parent.
// Plans are never deleted, only superseded.
type TimeAndActionPlan struct {
	ID                string
	StyleName         string
	MerchandiserID    string
	SampleSendingDate time.Time

	Cad               *CadStage
	FabricBooking     *FabricBookingStage
	SampleDevelopment *SampleDevelopmentStage
	Tracking          *DHLTrackingStage

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayID returns a short identifier for display, truncating the
// uuid to 8 characters.
func (p *TimeAndActionPlan) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
