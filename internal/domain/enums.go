package domain

type RiskLevel string

const (
	RiskOnTrack  RiskLevel = "on_track"
	RiskAtRisk   RiskLevel = "at_risk"
	RiskCritical RiskLevel = "critical"
)

// Role is the closed set of actor roles known to the system. Actor identity
// itself is opaque; the role only drives which board a user lands on.
type Role string

const (
	RoleMerchandiser Role = "merchandiser"
	RoleCadDesigner  Role = "cad_designer"
	RoleFabricStaff  Role = "fabric_staff"
	RoleSampleStaff  Role = "sample_staff"
	RoleManagement   Role = "management"
)

// Section names a landing view in the client.
type Section string

const (
	SectionPlans    Section = "plans"
	SectionCadBoard Section = "cad_board"
	SectionBookings Section = "bookings"
	SectionSamples  Section = "samples"
	SectionOverview Section = "overview"
)

// roleHome maps each role to its landing section. Dispatch is a table lookup
// keyed by the closed Role enum, not string branching.
var roleHome = map[Role]Section{
	RoleMerchandiser: SectionPlans,
	RoleCadDesigner:  SectionCadBoard,
	RoleFabricStaff:  SectionBookings,
	RoleSampleStaff:  SectionSamples,
	RoleManagement:   SectionOverview,
}

// HomeSection returns the landing section for a role. Unknown roles fall back
// to the overview board.
func HomeSection(r Role) Section {
	if s, ok := roleHome[r]; ok {
		return s
	}
	return SectionOverview
}
