package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 3 * time.Second

// Publisher публикует события бронирований в RabbitMQ (topic exchange)
// Ошибки публикации только логируются: событие вторично по отношению к записи в БД
type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
	log      Logger
}

// NewPublisher подключается к RabbitMQ и объявляет exchange
func NewPublisher(url, exchange string, log Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange, log: log}, nil
}

func newPublisherWithChannel(ch channel, exchange string, log Logger) *Publisher {
	return &Publisher{ch: ch, exchange: exchange, log: log}
}

// Publish сериализует событие в JSON и отправляет его с ключом key
func (p *Publisher) Publish(ctx context.Context, key string, event interface{}) {
	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error("Publish: marshal %s event: %v", key, err)
		return
	}

	// Запрос мог уже завершиться, событие отправляем со своим таймаутом
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		p.log.Error("Publish: send %s event to %s: %v", key, p.exchange, err)
	}
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// Noop издатель для выключенных событий
type Noop struct{}

func (Noop) Publish(context.Context, string, interface{}) {}
