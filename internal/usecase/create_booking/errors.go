package create_booking

import "errors"

var (
	// ErrFacilityNotFound возвращается для неизвестного объекта или парковки
	ErrFacilityNotFound = errors.New("create_booking: facility not found")

	// ErrUserNotFound возвращается, когда пользователя нет в справочнике
	ErrUserNotFound = errors.New("create_booking: user not found in directory")

	// ErrUpstream возвращается, когда справочник пользователей недоступен
	ErrUpstream = errors.New("create_booking: user directory unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
