// Package rabbitmq relays outbox events through a durable RabbitMQ queue.
package rabbitmq

import (
	"context"
	"time"

	"go-hrfine/internal/messaging/outbox"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Publisher struct {
	ch    Channel
	queue string
}

func NewPublisher(ch Channel, queue string) *Publisher {
	return &Publisher{ch: ch, queue: queue}
}

// DeclareQueue makes sure the durable queue exists.
func DeclareQueue(ch *amqp.Channel, queue string) error {
	_, err := ch.QueueDeclare(queue, true, false, false, false, nil)
	return err
}

// Publish sends the event on the default exchange with the queue as the
// routing key. Messages are persistent.
func (p *Publisher) Publish(ctx context.Context, event outbox.Event) error {
	return p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Type:         event.EventType,
		Timestamp:    time.Now().UTC(),
		Headers: amqp.Table{
			"aggregate_type": event.AggregateType,
			"aggregate_id":   event.AggregateID,
		},
		Body: event.Payload,
	})
}
