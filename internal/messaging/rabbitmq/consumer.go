package rabbitmq

import (
	"context"
	"encoding/json"

	"go-hrfine/internal/events"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ConsumeEmailRequested delivers email.requested events from deliveries until
// ctx ends or the channel closes. A delivery is acked after the mail went out.
// A failed send is requeued once and dropped on the second failure;
// undecodable bodies are dropped.
func ConsumeEmailRequested(
	ctx context.Context,
	deliveries <-chan amqp.Delivery,
	sender EmailSender,
	logger *zap.Logger,
) {
	log := logger.Named("rabbitmq.consumer.email_requested")
	log.Info("email consumer started")

	for {
		var d amqp.Delivery
		var ok bool
		select {
		case <-ctx.Done():
			log.Info("email consumer stopped")
			return
		case d, ok = <-deliveries:
			if !ok {
				log.Warn("email deliveries channel closed")
				return
			}
		}

		var event events.EmailRequestedEvent
		if err := json.Unmarshal(d.Body, &event); err != nil || event.To == "" {
			log.Error("decode email_requested event failed", zap.String("message_id", d.MessageId), zap.Error(err))
			_ = d.Nack(false, false)
			continue
		}

		if err := sender.Send(ctx, event.To, event.Subject, event.Body); err != nil {
			log.Error("deliver email failed",
				zap.String("kind", event.Kind),
				zap.String("emp_id", event.EmpID),
				zap.Error(err),
			)
			_ = d.Nack(false, !d.Redelivered)
			continue
		}

		if err := d.Ack(false); err != nil {
			log.Error("ack email message failed", zap.Error(err))
			continue
		}

		log.Info("email delivered from email_requested event",
			zap.String("kind", event.Kind),
			zap.String("emp_id", event.EmpID),
		)
	}
}
