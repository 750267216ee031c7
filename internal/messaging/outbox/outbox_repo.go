package outbox

import (
	"context"
	"database/sql"
	"time"

	"go-hrfine/internal/shared/dbtx"

	"gorm.io/gorm"
)

const maxErrorLength = 500

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, event *Event) error
	ListPending(ctx context.Context, now time.Time, limit int) ([]Event, error)
	MarkSent(ctx context.Context, id string, now time.Time) error
	MarkFailed(ctx context.Context, event Event, reason string, now time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: dbtx.Bind(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, event *Event) error {
	if event.Status == "" {
		event.Status = StatusPending
	}
	if err := event.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(event).Error
}

// ListPending returns unsent events that are due at now, oldest first.
func (r *repository) ListPending(ctx context.Context, now time.Time, limit int) ([]Event, error) {
	var events []Event
	err := r.db.WithContext(ctx).
		Where("status IN ?", []string{StatusPending, StatusFailed}).
		Where("next_retry_at IS NULL OR next_retry_at <= ?", now).
		Order("created_at ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (r *repository) MarkSent(ctx context.Context, id string, now time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Event{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        StatusSent,
			"processed_at":  now,
			"error_message": nil,
		}).Error
}

func (r *repository) MarkFailed(ctx context.Context, event Event, reason string, now time.Time) error {
	if len(reason) > maxErrorLength {
		reason = reason[:maxErrorLength]
	}
	return r.db.WithContext(ctx).
		Model(&Event{}).
		Where("id = ?", event.ID).
		Updates(map[string]any{
			"status":        StatusFailed,
			"retry_count":   gorm.Expr("retry_count + 1"),
			"error_message": reason,
			"next_retry_at": now.Add(Backoff(event.RetryCount)),
		}).Error
}
