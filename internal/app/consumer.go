package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"go-hrfine/internal/config"
	"go-hrfine/internal/messaging/kafka/consumer"
	"go-hrfine/internal/messaging/rabbitmq"
	"go-hrfine/internal/notification"
	"go-hrfine/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer delivers email.requested events over SMTP.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mailer := notification.NewSMTPMailer(cfg.SMTP)

	if cfg.Notification.Broker == config.BrokerRabbitMQ {
		return consumeRabbitMQ(ctx, cfg, mailer, logger)
	}

	if len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("no kafka brokers configured")
	}
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    cfg.NotificationTopic(),
		GroupID:  cfg.Kafka.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer reader.Close()

	logger.Info("consuming from kafka",
		zap.String("topic", cfg.NotificationTopic()),
		zap.String("group_id", cfg.Kafka.GroupID),
	)
	consumer.ConsumeEmailRequested(ctx, reader, mailer, logger)
	return nil
}

func consumeRabbitMQ(ctx context.Context, cfg *config.Config, mailer *notification.SMTPMailer, logger *zap.Logger) error {
	conn, err := connection.ConnectRabbitMQWithRetry(cfg.RabbitMQ.URL, cfg.RabbitMQ.MaxRetries, logger)
	if err != nil {
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open rabbitmq channel: %w", err)
	}
	defer ch.Close()

	queue := cfg.NotificationQueue()
	if err := rabbitmq.DeclareQueue(ch, queue); err != nil {
		return err
	}
	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("set rabbitmq qos: %w", err)
	}

	deliveries, err := ch.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", queue, err)
	}

	logger.Info("consuming from rabbitmq",
		zap.String("url", cfg.RedactedRabbitURL()),
		zap.String("queue", queue),
	)
	rabbitmq.ConsumeEmailRequested(ctx, deliveries, mailer, logger)
	return nil
}
