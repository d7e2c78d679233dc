package settings

import "errors"

var (
	// ErrFacilityNotFound возвращается для неизвестного объекта
	ErrFacilityNotFound = errors.New("settings: facility not found")

	// ErrInvalidInput возвращается при некорректных значениях переопределений
	ErrInvalidInput = errors.New("settings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("settings: internal error")
)
