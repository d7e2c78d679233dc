package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxEventTypeLength      = 100
	MaxMeetingPurposeLength = 500
	MaxVehicleNumberLength  = 20
	MaxCapacityOverride     = 500
	MaxAdvanceNoticeDays    = 365
	MaxCancelCutoffMinutes  = 10080 // 1 week
)
