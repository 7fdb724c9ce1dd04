package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

var (
	// ErrConnect возвращается, когда не удалось подключиться к брокеру
	ErrConnect = errors.New("events: failed to connect to broker")

	// ErrPublish возвращается при ошибке публикации
	ErrPublish = errors.New("events: failed to publish event")
)

// RabbitPublisher публикует события в topic exchange RabbitMQ.
// Соединение переустанавливается при следующей публикации, если брокер его закрыл.
type RabbitPublisher struct {
	url      string
	exchange string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewRabbitPublisher подключается к брокеру и объявляет exchange
func NewRabbitPublisher(url, exchange string) (*RabbitPublisher, error) {
	p := &RabbitPublisher{url: url, exchange: exchange}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

// Publish отправляет событие с routing key, равным типу события
func (p *RabbitPublisher) Publish(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal event: %v", ErrPublish, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() || p.ch == nil || p.ch.IsClosed() {
		if err := p.connect(); err != nil {
			return err
		}
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    event.OccurredAt.UTC(),
		Type:         string(event.Type),
		Body:         body,
	}

	if err := p.ch.PublishWithContext(ctx, p.exchange, string(event.Type), false, false, msg); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPublish, event.Type, err)
	}
	return nil
}

// Close закрывает канал и соединение
func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// connect вызывается под p.mu
func (p *RabbitPublisher) connect() error {
	if p.conn != nil && !p.conn.IsClosed() {
		_ = p.conn.Close()
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	if err := ch.ExchangeDeclare(
		p.exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("%w: declare exchange %s: %v", ErrConnect, p.exchange, err)
	}

	p.conn = conn
	p.ch = ch
	return nil
}
