package domain

import "time"

// ParkingStatus represents the state of a parking allocation
type ParkingStatus string

const (
	ParkingPending  ParkingStatus = "pending"
	ParkingApproved ParkingStatus = "approved"
	ParkingRejected ParkingStatus = "rejected"
	ParkingReleased ParkingStatus = "released"
)

// VehicleType is the kind of vehicle parked in a slot
type VehicleType string

const (
	VehicleCar        VehicleType = "Car"
	VehicleMotorcycle VehicleType = "Motorcycle"
	VehicleScooter    VehicleType = "Scooter"
	VehicleSUV        VehicleType = "SUV"
	VehicleOther      VehicleType = "Other"
)

// VehicleTypes lists accepted vehicle types
var VehicleTypes = []VehicleType{
	VehicleCar,
	VehicleMotorcycle,
	VehicleScooter,
	VehicleSUV,
	VehicleOther,
}

// ParkingSlot is a physical parking space from the fixed catalog
type ParkingSlot struct {
	ID   string
	Name string
}

// ParkingAllocation represents a request for (and later the holding of) a parking slot.
// Parking has no date dimension: an allocation claims the slot until it is released or rejected.
type ParkingAllocation struct {
	ID              int64
	UserID          int64
	UserName        string
	ApartmentNumber string
	SlotID          string
	SlotName        string
	VehicleNumber   string
	VehicleType     VehicleType
	Status          ParkingStatus

	ApprovedAt *time.Time
	RejectedAt *time.Time
	ReleasedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActive returns true if the allocation still claims its slot
func (a *ParkingAllocation) IsActive() bool {
	return a.Status == ParkingPending || a.Status == ParkingApproved
}

// ActiveParkingStatuses statuses that claim a slot
var ActiveParkingStatuses = []ParkingStatus{
	ParkingPending,
	ParkingApproved,
}
