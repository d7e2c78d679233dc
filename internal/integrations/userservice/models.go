package userservice

// User модель жильца из UserService
// В бронирование копируются только имя и номер квартиры
type User struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	ApartmentNumber string `json:"apartment_number"`
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
