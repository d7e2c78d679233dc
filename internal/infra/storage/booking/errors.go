package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrUnknownFacility возвращается для объекта без таблицы бронирований
	ErrUnknownFacility = errors.New("booking.repository: unknown facility")

	// ErrSlotTaken возвращается при нарушении уникального индекса на занятость слота
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrDuplicateBooking возвращается при нарушении уникального индекса "один пользователь - один слот"
	ErrDuplicateBooking = errors.New("booking.repository: user already booked this slot")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrCannotCancel возвращается, когда бронирование уже не в статусе confirmed
	ErrCannotCancel = errors.New("booking.repository: booking cannot be cancelled")
)
