package facility

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
)

func parkingCatalog() []domain.ParkingSlot {
	zones := []struct {
		name  string
		count int
	}{
		{"Ground Floor - A", 4},
		{"Ground Floor - B", 4},
		{"1st Floor - C", 4},
		{"1st Floor - D", 3},
	}

	slots := make([]domain.ParkingSlot, 0, 15)
	n := 1
	for _, z := range zones {
		for i := 1; i <= z.count; i++ {
			slots = append(slots, domain.ParkingSlot{
				ID:   fmt.Sprintf("P%03d", n),
				Name: fmt.Sprintf("%s%d", z.name, i),
			})
			n++
		}
	}
	return slots
}

// ParkingSlots returns the fixed catalog of physical slots
func ParkingSlots() []domain.ParkingSlot {
	out := make([]domain.ParkingSlot, len(parking.ParkingSlots))
	copy(out, parking.ParkingSlots)
	return out
}

// LookupParkingSlot returns a slot from the catalog
func LookupParkingSlot(id string) (domain.ParkingSlot, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	for _, s := range parking.ParkingSlots {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.ParkingSlot{}, ErrUnknownParkingSlot
}

// AvailableParkingSlots catalog slots not claimed by any active allocation
func AvailableParkingSlots(allocations []*domain.ParkingAllocation) []domain.ParkingSlot {
	taken := make(map[string]struct{}, len(allocations))
	for _, a := range allocations {
		if a.IsActive() {
			taken[a.SlotID] = struct{}{}
		}
	}

	out := make([]domain.ParkingSlot, 0, len(parking.ParkingSlots))
	for _, s := range parking.ParkingSlots {
		if _, ok := taken[s.ID]; !ok {
			out = append(out, s)
		}
	}
	return out
}

// ParkingRequest request to claim a parking slot
type ParkingRequest struct {
	UserID        int64
	SlotID        string
	VehicleNumber string
	VehicleType   domain.VehicleType
}

// NormalizeVehicleNumber trims and upper-cases a registration number
func NormalizeVehicleNumber(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ValidateParkingRequest checks the fields and returns the normalized request
func ValidateParkingRequest(req ParkingRequest) (ParkingRequest, error) {
	req.SlotID = strings.ToUpper(strings.TrimSpace(req.SlotID))
	req.VehicleNumber = NormalizeVehicleNumber(req.VehicleNumber)

	if req.SlotID == "" {
		return req, invalid("slotId", "is required")
	}
	if req.VehicleNumber == "" {
		return req, invalid("vehicleNumber", "is required")
	}
	if len(req.VehicleNumber) > domain.MaxVehicleNumberLength {
		return req, invalid("vehicleNumber", "must be at most %d characters", domain.MaxVehicleNumberLength)
	}

	valid := false
	for _, vt := range domain.VehicleTypes {
		if vt == req.VehicleType {
			valid = true
			break
		}
	}
	if !valid {
		return req, invalid("vehicleType", "must be one of %v", domain.VehicleTypes)
	}

	return req, nil
}

// AdmitParking decides whether the request can claim its slot.
// A slot holds one active allocation; a user holds one active allocation overall.
func AdmitParking(req ParkingRequest, active []*domain.ParkingAllocation) (ParkingRequest, domain.ParkingSlot, error) {
	req, err := ValidateParkingRequest(req)
	if err != nil {
		return req, domain.ParkingSlot{}, err
	}

	slot, err := LookupParkingSlot(req.SlotID)
	if err != nil {
		return req, domain.ParkingSlot{}, err
	}

	for _, a := range active {
		if a.IsActive() && a.SlotID == slot.ID {
			return req, domain.ParkingSlot{}, ErrCapacityExceeded
		}
	}
	for _, a := range active {
		if a.IsActive() && a.UserID == req.UserID {
			return req, domain.ParkingSlot{}, ErrDuplicateBooking
		}
	}

	return req, slot, nil
}

var parkingTransitions = map[domain.ParkingStatus][]domain.ParkingStatus{
	domain.ParkingPending:  {domain.ParkingApproved, domain.ParkingRejected},
	domain.ParkingApproved: {domain.ParkingRejected, domain.ParkingReleased},
}

// CheckParkingTransition validates a parking state change
func CheckParkingTransition(from, to domain.ParkingStatus) error {
	for _, allowed := range parkingTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
