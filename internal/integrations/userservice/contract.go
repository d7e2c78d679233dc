package userservice

import "context"

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UserGetter источник данных о пользователе (HTTP клиент или кэш поверх него)
type UserGetter interface {
	GetUser(ctx context.Context, userID int64) (*User, error)
}
