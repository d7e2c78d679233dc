package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrFacilityNotFound возвращается для неизвестного объекта или парковки
	ErrFacilityNotFound = errors.New("bookings: facility not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому пользователю
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
