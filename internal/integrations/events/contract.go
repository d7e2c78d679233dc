package events

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// channel часть *amqp.Channel, которой пользуется издатель
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}
