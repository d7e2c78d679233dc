package facility

import (
	"time"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/pkg/types"
)

// CapacityKind selects how a slot is consumed
type CapacityKind int

const (
	// Exclusive one active booking fully occupies an overlapping window
	Exclusive CapacityKind = iota
	// Shared bookings coexist until their summed units reach the ceiling
	Shared
)

func (k CapacityKind) String() string {
	if k == Shared {
		return "shared"
	}
	return "exclusive"
}

// CapacityRule binds a capacity variant to its parameters
type CapacityRule struct {
	Kind    CapacityKind
	Ceiling int // Shared only
	// UnitsFromPartySize: a booking consumes PartySize units instead of one
	UnitsFromPartySize bool
}

// CancellationKind selects the cancellation policy variant
type CancellationKind int

const (
	// CancelAnytime no cutoff
	CancelAnytime CancellationKind = iota
	// CancelBeforeStart allowed while now < slot start - Window
	CancelBeforeStart
	// CancelAfterCreation allowed while now - createdAt <= Window
	CancelAfterCreation
)

func (k CancellationKind) String() string {
	switch k {
	case CancelBeforeStart:
		return "before_start"
	case CancelAfterCreation:
		return "after_creation"
	default:
		return "anytime"
	}
}

// CancellationPolicy binds a cancellation variant to its window
type CancellationPolicy struct {
	Kind   CancellationKind
	Window time.Duration
}

// NamedSlot fixed block of a facility that is booked by label
type NamedSlot struct {
	Label string
	Start types.TimeString
	End   types.TimeString
}

// PayloadRules facility specific request fields
type PayloadRules struct {
	PartySizeField string // name of the size attribute, empty when the facility has none
	PartySizeMin   int
	PartySizeMax   int // 0 = no upper bound

	RequireEventType      bool
	RequireMeetingPurpose bool
}

// Adapter static configuration of one facility.
// Time-slot facilities use the slot grid; parking only uses its slot catalog.
type Adapter struct {
	ID   domain.FacilityID
	Name string

	Open       types.TimeString
	Close      types.TimeString
	Durations  []int // allowed durations in hours, the first one is the default
	NamedSlots []NamedSlot

	Capacity          CapacityRule
	AdvanceNoticeDays int
	Cancellation      CancellationPolicy

	// OneBookingPerUserPerDate a user may hold a single active booking per date, whatever the slot
	OneBookingPerUserPerDate bool

	Payload PayloadRules

	ParkingSlots []domain.ParkingSlot
}

// IsTimeSlot returns true for facilities booked by date and time window
func (a Adapter) IsTimeSlot() bool {
	return len(a.Durations) > 0
}

// WithSettings returns a copy of the adapter with runtime overrides applied
func (a Adapter) WithSettings(s *domain.FacilitySettings) Adapter {
	if s == nil {
		return a
	}
	if s.Capacity != nil && a.Capacity.Kind == Shared {
		a.Capacity.Ceiling = *s.Capacity
	}
	if s.AdvanceNoticeDays != nil {
		a.AdvanceNoticeDays = *s.AdvanceNoticeDays
	}
	if s.CancelCutoffMinutes != nil && a.Cancellation.Kind != CancelAnytime {
		a.Cancellation.Window = time.Duration(*s.CancelCutoffMinutes) * time.Minute
	}
	return a
}

var (
	playground = Adapter{
		ID:        domain.FacilityPlayground,
		Name:      "Playground",
		Open:      types.MustTimeString("06:00"),
		Close:     types.MustTimeString("23:00"),
		Durations: []int{1},
		Capacity:  CapacityRule{Kind: Shared, Ceiling: 4},
		Cancellation: CancellationPolicy{
			Kind: CancelAnytime,
		},
	}

	swimmingPool = Adapter{
		ID:        domain.FacilitySwimmingPool,
		Name:      "Swimming Pool",
		Open:      types.MustTimeString("07:00"),
		Close:     types.MustTimeString("21:00"),
		Durations: []int{1},
		Capacity:  CapacityRule{Kind: Shared, Ceiling: 30, UnitsFromPartySize: true},
		Cancellation: CancellationPolicy{
			Kind:   CancelBeforeStart,
			Window: 20 * time.Minute,
		},
		Payload: PayloadRules{
			PartySizeField: "numberOfPeople",
			PartySizeMin:   1,
		},
	}

	meetingHall = Adapter{
		ID:        domain.FacilityMeetingHall,
		Name:      "Meeting Hall",
		Open:      types.MustTimeString("08:00"),
		Close:     types.MustTimeString("20:00"),
		Durations: []int{1, 2, 3},
		Capacity:  CapacityRule{Kind: Exclusive},
		Cancellation: CancellationPolicy{
			Kind:   CancelBeforeStart,
			Window: 20 * time.Minute,
		},
		Payload: PayloadRules{
			PartySizeField:        "numberOfAttendees",
			PartySizeMin:          1,
			PartySizeMax:          20,
			RequireMeetingPurpose: true,
		},
	}

	partyHall = Adapter{
		ID:        domain.FacilityPartyHall,
		Name:      "Party Hall",
		Open:      types.MustTimeString("09:00"),
		Close:     types.MustTimeString("23:00"),
		Durations: []int{4},
		NamedSlots: []NamedSlot{
			{Label: "Morning", Start: types.MustTimeString("09:00"), End: types.MustTimeString("13:00")},
			{Label: "Afternoon", Start: types.MustTimeString("14:00"), End: types.MustTimeString("18:00")},
			{Label: "Evening", Start: types.MustTimeString("19:00"), End: types.MustTimeString("23:00")},
		},
		Capacity:          CapacityRule{Kind: Exclusive},
		AdvanceNoticeDays: 2,
		Cancellation: CancellationPolicy{
			Kind:   CancelAfterCreation,
			Window: 24 * time.Hour,
		},
		OneBookingPerUserPerDate: true,
		Payload: PayloadRules{
			PartySizeField:   "numberOfGuests",
			PartySizeMin:     1,
			RequireEventType: true,
		},
	}

	parking = Adapter{
		ID:           domain.FacilityParking,
		Name:         "Vehicle Parking",
		Capacity:     CapacityRule{Kind: Exclusive},
		ParkingSlots: parkingCatalog(),
	}
)

var catalog = []Adapter{playground, partyHall, swimmingPool, meetingHall, parking}

// All returns every facility adapter in display order
func All() []Adapter {
	out := make([]Adapter, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the adapter of a facility
func Lookup(id domain.FacilityID) (Adapter, error) {
	for _, a := range catalog {
		if a.ID == id {
			return a, nil
		}
	}
	return Adapter{}, ErrUnknownFacility
}

// LookupTimeSlot returns the adapter of a date/time booked facility
func LookupTimeSlot(id domain.FacilityID) (Adapter, error) {
	a, err := Lookup(id)
	if err != nil {
		return Adapter{}, err
	}
	if !a.IsTimeSlot() {
		return Adapter{}, ErrUnknownFacility
	}
	return a, nil
}
