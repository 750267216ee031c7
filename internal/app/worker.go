package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"go-hrfine/internal/config"
	"go-hrfine/internal/messaging/kafka/producer"
	"go-hrfine/internal/messaging/outbox"
	"go-hrfine/internal/messaging/rabbitmq"
	"go-hrfine/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays pending outbox rows to the configured broker until the
// process is signalled.
func RunWorker(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := connection.OpenDatabase(cfg, logger)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := gormDB.AutoMigrate(&outbox.Event{}); err != nil {
		return fmt.Errorf("migrate outbox: %w", err)
	}

	var publisher outbox.Publisher
	switch cfg.Notification.Broker {
	case config.BrokerRabbitMQ:
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

		if err := rabbitmq.DeclareQueue(ch, cfg.NotificationQueue()); err != nil {
			return err
		}
		publisher = rabbitmq.NewPublisher(ch, cfg.NotificationQueue())
		logger.Info("outbox publishing to rabbitmq",
			zap.String("url", cfg.RedactedRabbitURL()),
			zap.String("queue", cfg.NotificationQueue()),
		)
	default:
		writer, err := connection.ConnectKafkaWithRetry(cfg.Kafka, logger)
		if err != nil {
			return err
		}
		defer writer.Close()

		publisher = producer.NewPublisher(writer)
		logger.Info("outbox publishing to kafka", zap.Strings("brokers", cfg.Kafka.Brokers))
	}

	outbox.ProcessOutboxEvents(
		ctx,
		outbox.NewRepository(gormDB),
		publisher,
		logger,
		cfg.Notification.PollInterval,
		cfg.Notification.BatchSize,
	)
	return nil
}
