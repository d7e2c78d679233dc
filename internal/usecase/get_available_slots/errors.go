package get_available_slots

import "errors"

var (
	// ErrFacilityNotFound возвращается для неизвестного объекта или парковки
	ErrFacilityNotFound = errors.New("get_available_slots: facility not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
