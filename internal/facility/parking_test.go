package facility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
)

func TestParkingCatalog(t *testing.T) {
	slots := ParkingSlots()

	require.Len(t, slots, 15)
	assert.Equal(t, domain.ParkingSlot{ID: "P001", Name: "Ground Floor - A1"}, slots[0])
	assert.Equal(t, domain.ParkingSlot{ID: "P005", Name: "Ground Floor - B1"}, slots[4])
	assert.Equal(t, domain.ParkingSlot{ID: "P012", Name: "1st Floor - C4"}, slots[11])
	assert.Equal(t, domain.ParkingSlot{ID: "P015", Name: "1st Floor - D3"}, slots[14])

	slot, err := LookupParkingSlot(" p007 ")
	require.NoError(t, err)
	assert.Equal(t, "Ground Floor - B3", slot.Name)

	_, err = LookupParkingSlot("P016")
	assert.ErrorIs(t, err, ErrUnknownParkingSlot)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAvailableParkingSlots(t *testing.T) {
	allocations := []*domain.ParkingAllocation{
		{SlotID: "P001", Status: domain.ParkingApproved},
		{SlotID: "P002", Status: domain.ParkingPending},
		{SlotID: "P003", Status: domain.ParkingReleased},
		{SlotID: "P004", Status: domain.ParkingRejected},
	}

	free := AvailableParkingSlots(allocations)

	require.Len(t, free, 13)
	assert.Equal(t, "P003", free[0].ID)
	assert.Equal(t, "P004", free[1].ID)
}

func TestAdmitParking(t *testing.T) {
	active := []*domain.ParkingAllocation{
		{UserID: 1, SlotID: "P001", Status: domain.ParkingApproved},
		{UserID: 2, SlotID: "P002", Status: domain.ParkingReleased},
	}

	req := ParkingRequest{UserID: 3, SlotID: "p005", VehicleNumber: " ka01ab1234 ", VehicleType: domain.VehicleCar}
	normalized, slot, err := AdmitParking(req, active)
	require.NoError(t, err)
	assert.Equal(t, "P005", slot.ID)
	assert.Equal(t, "KA01AB1234", normalized.VehicleNumber)

	// slot already claimed
	req.SlotID = "P001"
	_, _, err = AdmitParking(req, active)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	// user 1 already holds P001, a different slot is still refused
	req = ParkingRequest{UserID: 1, SlotID: "P006", VehicleNumber: "MH12", VehicleType: domain.VehicleSUV}
	_, _, err = AdmitParking(req, active)
	assert.ErrorIs(t, err, ErrDuplicateBooking)

	// user 2 released, so may request again
	req.UserID = 2
	_, _, err = AdmitParking(req, active)
	assert.NoError(t, err)
}

func TestValidateParkingRequest(t *testing.T) {
	base := ParkingRequest{UserID: 1, SlotID: "P001", VehicleNumber: "KA01", VehicleType: domain.VehicleScooter}

	_, err := ValidateParkingRequest(base)
	assert.NoError(t, err)

	bad := base
	bad.VehicleType = "Truck"
	_, err = ValidateParkingRequest(bad)
	assert.ErrorIs(t, err, ErrValidation)

	bad = base
	bad.VehicleNumber = "   "
	_, err = ValidateParkingRequest(bad)
	assert.ErrorIs(t, err, ErrValidation)

	bad = base
	bad.SlotID = ""
	_, err = ValidateParkingRequest(bad)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCheckParkingTransition(t *testing.T) {
	allowed := [][2]domain.ParkingStatus{
		{domain.ParkingPending, domain.ParkingApproved},
		{domain.ParkingPending, domain.ParkingRejected},
		{domain.ParkingApproved, domain.ParkingRejected},
		{domain.ParkingApproved, domain.ParkingReleased},
	}
	for _, tr := range allowed {
		assert.NoError(t, CheckParkingTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	refused := [][2]domain.ParkingStatus{
		{domain.ParkingApproved, domain.ParkingApproved},
		{domain.ParkingPending, domain.ParkingReleased},
		{domain.ParkingRejected, domain.ParkingApproved},
		{domain.ParkingReleased, domain.ParkingApproved},
		{domain.ParkingReleased, domain.ParkingRejected},
	}
	for _, tr := range refused {
		assert.ErrorIs(t, CheckParkingTransition(tr[0], tr[1]), ErrInvalidTransition, "%s -> %s", tr[0], tr[1])
	}
}

func TestLookup(t *testing.T) {
	for _, a := range All() {
		got, err := Lookup(a.ID)
		require.NoError(t, err)
		assert.Equal(t, a.Name, got.Name)
	}

	_, err := Lookup("tennis-court")
	assert.ErrorIs(t, err, ErrUnknownFacility)

	_, err = LookupTimeSlot(domain.FacilityParking)
	assert.ErrorIs(t, err, ErrUnknownFacility)

	a, err := LookupTimeSlot(domain.FacilityPartyHall)
	require.NoError(t, err)
	assert.Equal(t, 2, a.AdvanceNoticeDays)
}
