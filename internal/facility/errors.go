package facility

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownFacility          = errors.New("facility: unknown facility")
	ErrValidation               = errors.New("facility: validation failed")
	ErrCapacityExceeded         = errors.New("facility: slot has no remaining capacity")
	ErrDuplicateBooking         = errors.New("facility: user already holds an active booking for this slot")
	ErrAdvanceNotice            = errors.New("facility: date violates the minimum advance notice")
	ErrCancellationWindowClosed = errors.New("facility: cancellation window has closed")
	ErrAlreadyCancelled         = errors.New("facility: booking is already cancelled")
	ErrInvalidTransition        = errors.New("facility: invalid parking status transition")
)

var (
	ErrSlotElapsed        = &ValidationError{Field: "startTime", Reason: "slot has already started"}
	ErrDateInPast         = &ValidationError{Field: "date", Reason: "date is in the past"}
	ErrUnknownParkingSlot = &ValidationError{Field: "slotId", Reason: "unknown parking slot"}
)

// ValidationError a malformed or out-of-range request field.
// errors.Is(err, ErrValidation) holds for every ValidationError.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
