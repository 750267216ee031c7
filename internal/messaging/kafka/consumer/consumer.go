package consumer

import (
	"context"
	"encoding/json"

	"go-hrfine/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// EmailSender delivers one mail.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ConsumeEmailRequested delivers email.requested events until ctx ends.
// Offsets are committed only after the mail went out; undecodable messages
// are committed and dropped.
func ConsumeEmailRequested(
	ctx context.Context,
	reader MessageReader,
	sender EmailSender,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.email_requested")
	log.Info("email consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("email consumer stopped")
				return
			}
			log.Error("fetch email message failed", zap.Error(err))
			continue
		}

		var event events.EmailRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil || event.To == "" {
			log.Error("decode email_requested event failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := sender.Send(ctx, event.To, event.Subject, event.Body); err != nil {
			log.Error("deliver email failed",
				zap.String("kind", event.Kind),
				zap.String("emp_id", event.EmpID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit email message failed", zap.Error(err))
			continue
		}

		log.Info("email delivered from email_requested event",
			zap.String("kind", event.Kind),
			zap.String("emp_id", event.EmpID),
		)
	}
}
