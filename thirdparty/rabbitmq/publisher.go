package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/muhammadheryan/inventory-service/model"
	"github.com/rabbitmq/amqp091-go"
)

// EventPublisher announces product and user changes to interested consumers.
type EventPublisher interface {
	PublishRecordEvent(ctx context.Context, event model.RecordEvent) error
}

type Publisher struct {
	mu      sync.Mutex
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(
		constant.RecordEventsExchange, // name
		amqp091.ExchangeFanout,        // type
		true,                          // durable
		false,                         // auto-delete
		false,                         // internal
		false,                         // no-wait
		nil,                           // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) PublishRecordEvent(ctx context.Context, event model.RecordEvent) error {
	publishing, err := newPublishing(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.channel.PublishWithContext(ctx,
		constant.RecordEventsExchange, // exchange
		routingKey(event),             // routing key, ignored by fanout but kept for tracing
		false,                         // mandatory
		false,                         // immediate
		publishing,
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

func newPublishing(event model.RecordEvent) (amqp091.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp091.Publishing{}, err
	}
	return amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    event.OccurredAt,
		Type:         routingKey(event),
		Body:         body,
	}, nil
}

func routingKey(event model.RecordEvent) string {
	return string(event.Entity) + "." + string(event.Action)
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishRecordEvent(context.Context, model.RecordEvent) error {
	return nil
}
