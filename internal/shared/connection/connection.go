package connection

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-hrfine/internal/config"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var retryDelay = 5 * time.Second

func dialector(driver, dsn string) gorm.Dialector {
	if driver == config.DriverMySQL {
		return mysql.Open(dsn)
	}
	return postgres.Open(dsn)
}

func newGormLogger(logger *zap.Logger, slow time.Duration) gormlogger.Interface {
	return gormlogger.New(
		zap.NewStdLog(logger.Named("gorm")),
		gormlogger.Config{
			SlowThreshold:             slow,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}

// OpenDatabase creates the configured database when it is missing and then
// connects to it, retrying while the server comes up.
func OpenDatabase(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	log := logger.Named("connection.database")

	if cfg.Database.CreateIfAbsent {
		if err := ensureDatabase(cfg, log); err != nil {
			return nil, err
		}
	}

	return ConnectGORMWithRetry(
		cfg.Database.Driver,
		cfg.DatabaseDSN(false),
		cfg.Database.MaxRetries,
		newGormLogger(logger, cfg.Database.SlowThreshold),
		log,
	)
}

func ConnectGORMWithRetry(
	driver, dsn string,
	maxRetries int,
	gormLog gormlogger.Interface,
	logger *zap.Logger,
) (*gorm.DB, error) {
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		db, err := gorm.Open(dialector(driver, dsn), &gorm.Config{Logger: gormLog})
		if err != nil {
			lastErr = err
			logger.Warn("gorm open failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
			time.Sleep(retryDelay)
			continue
		}

		sqlDB, err := db.DB()
		if err != nil {
			lastErr = err
			logger.Warn("get sql.DB failed", zap.Int("attempt", i), zap.Error(err))
			time.Sleep(retryDelay)
			continue
		}

		if err := sqlDB.Ping(); err != nil {
			lastErr = err
			logger.Warn("database ping failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
			time.Sleep(retryDelay)
			continue
		}

		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)

		logger.Info("database connected", zap.String("driver", driver))
		return db, nil
	}

	return nil, fmt.Errorf("database connection failed after %d retries: %w", maxRetries, lastErr)
}

func ensureDatabase(cfg *config.Config, logger *zap.Logger) error {
	server, err := ConnectGORMWithRetry(
		cfg.Database.Driver,
		cfg.DatabaseDSN(true),
		cfg.Database.MaxRetries,
		gormlogger.Discard,
		logger,
	)
	if err != nil {
		return err
	}
	sqlDB, err := server.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.Database.Driver == config.DriverPostgres {
		var exists int64
		if err := server.Raw("SELECT COUNT(*) FROM pg_database WHERE datname = ?", cfg.Database.Name).
			Scan(&exists).Error; err != nil {
			return fmt.Errorf("check database: %w", err)
		}
		if exists > 0 {
			return nil
		}
	}

	stmt, err := createDatabaseStatement(cfg.Database.Driver, cfg.Database.Name)
	if err != nil {
		return err
	}
	if err := server.Exec(stmt).Error; err != nil {
		return fmt.Errorf("create database: %w", err)
	}
	logger.Info("database ensured", zap.String("name", cfg.Database.Name))
	return nil
}

func createDatabaseStatement(driver, name string) (string, error) {
	if name == "" || strings.ContainsAny(name, "`\"';\\ ") {
		return "", fmt.Errorf("invalid database name %q", name)
	}
	if driver == config.DriverMySQL {
		return "CREATE DATABASE IF NOT EXISTS `" + name + "` CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci", nil
	}
	return `CREATE DATABASE "` + name + `"`, nil
}

func ConnectRedisWithRetry(cfg config.RedisConfig, logger *zap.Logger) (*redis.Client, error) {
	log := logger.Named("connection.redis")
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	for i := 1; i <= cfg.MaxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err == nil {
			log.Info("redis connected", zap.String("addr", cfg.Addr))
			return rdb, nil
		}
		log.Warn("redis ping failed", zap.Int("attempt", i), zap.Int("max", cfg.MaxRetries), zap.Error(err))
		time.Sleep(retryDelay)
	}

	_ = rdb.Close()
	return nil, fmt.Errorf("failed to connect redis at %s", cfg.Addr)
}

// ConnectKafkaWithRetry waits until a broker answers and returns a writer
// that routes by message key.
func ConnectKafkaWithRetry(cfg config.KafkaConfig, logger *zap.Logger) (*kafkago.Writer, error) {
	log := logger.Named("connection.kafka")
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("no kafka brokers configured")
	}

	var lastErr error
	for i := 1; i <= cfg.MaxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		conn, err := kafkago.DialContext(ctx, "tcp", cfg.Brokers[0])
		cancel()
		if err == nil {
			_ = conn.Close()
			log.Info("kafka connected", zap.Strings("brokers", cfg.Brokers))
			return &kafkago.Writer{
				Addr:                   kafkago.TCP(cfg.Brokers...),
				Balancer:               &kafkago.Hash{},
				RequiredAcks:           kafkago.RequireAll,
				AllowAutoTopicCreation: true,
			}, nil
		}
		lastErr = err
		log.Warn("kafka dial failed", zap.Int("attempt", i), zap.Int("max", cfg.MaxRetries), zap.Error(err))
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("kafka connection failed after %d retries: %w", cfg.MaxRetries, lastErr)
}

func ConnectRabbitMQWithRetry(url string, maxRetries int, logger *zap.Logger) (*amqp.Connection, error) {
	log := logger.Named("connection.rabbitmq")

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		conn, err := amqp.Dial(url)
		if err == nil {
			log.Info("rabbitmq connected")
			return conn, nil
		}
		lastErr = err
		log.Warn("rabbitmq dial failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("rabbitmq connection failed after %d retries: %w", maxRetries, lastErr)
}
