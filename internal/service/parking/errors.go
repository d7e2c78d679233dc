package parking

import "errors"

var (
	// ErrAllocationNotFound возвращается, когда заявка не найдена
	ErrAllocationNotFound = errors.New("parking: allocation not found")

	// ErrUserNotFound возвращается, когда пользователя нет в справочнике
	ErrUserNotFound = errors.New("parking: user not found")

	// ErrUpstream возвращается, когда справочник пользователей недоступен
	ErrUpstream = errors.New("parking: user service unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("parking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("parking: internal error")
)
