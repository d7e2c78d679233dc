package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID        int64             // ID пользователя (для логирования, не влияет на результат)
	Facility      domain.FacilityID // Объект
	Date          time.Time         // Дата (без времени)
	DurationHours int               // Длительность, 0 - по умолчанию для объекта
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Facility      domain.FacilityID
	Date          time.Time
	DurationHours int
	Slots         []domain.AvailableSlot // Только слоты со свободными местами, по времени начала
}
