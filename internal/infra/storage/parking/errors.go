package parking

import "errors"

var (
	// ErrAllocationNotFound возвращается, когда заявка на парковку не найдена
	ErrAllocationNotFound = errors.New("parking.repository: allocation not found")

	// ErrSlotTaken возвращается при нарушении уникального индекса на активную заявку по месту
	ErrSlotTaken = errors.New("parking.repository: parking slot already taken")

	// ErrUserHasAllocation возвращается при нарушении уникального индекса на активную заявку пользователя
	ErrUserHasAllocation = errors.New("parking.repository: user already holds a parking slot")

	// ErrStatusChanged возвращается, когда статус заявки изменился до обновления
	ErrStatusChanged = errors.New("parking.repository: allocation status changed")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("parking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("parking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("parking.repository: failed to scan row")
)
