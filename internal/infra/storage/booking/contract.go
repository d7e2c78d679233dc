package booking

import (
	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// tables у каждого объекта своя таблица с одинаковым набором колонок
var tables = map[domain.FacilityID]string{
	domain.FacilityPlayground:   "playground_bookings",
	domain.FacilityPartyHall:    "party_hall_bookings",
	domain.FacilitySwimmingPool: "swimming_pool_bookings",
	domain.FacilityMeetingHall:  "meeting_hall_bookings",
}

// TableName возвращает таблицу бронирований объекта
func TableName(facility domain.FacilityID) (string, error) {
	table, ok := tables[facility]
	if !ok {
		return "", ErrUnknownFacility
	}
	return table, nil
}
