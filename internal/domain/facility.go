package domain

// FacilityID identifies a bookable facility.
// Values double as URL path segments.
type FacilityID string

const (
	FacilityPlayground   FacilityID = "playground"
	FacilityPartyHall    FacilityID = "party-hall"
	FacilitySwimmingPool FacilityID = "swimming-pool"
	FacilityMeetingHall  FacilityID = "meeting-hall"
	FacilityParking      FacilityID = "parking"
)

// Role of the caller resolved by the auth layer
type Role string

const (
	RoleUser     Role = "user"
	RoleAdmin    Role = "admin"
	RoleSecurity Role = "security"
)

// IsStaff returns true for roles that may see every booking
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleSecurity
}
