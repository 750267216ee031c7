package counter

import (
	"context"
	"database/sql"
	"time"

	"go-hrfine/internal/shared/dbtx"

	"gorm.io/gorm"
)

// SequenceCounter holds the last issued value per (scope, counter type).
type SequenceCounter struct {
	Scope       string `gorm:"primaryKey;size:64"`
	CounterType string `gorm:"primaryKey;size:64"`
	LastValue   int64  `gorm:"not null;default:0"`
	UpdatedAt   time.Time
}

func (SequenceCounter) TableName() string { return "sequence_counters" }

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	NextValue(ctx context.Context, scope, counterType string) (int64, error)
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

// NextValue atomically increments the counter and returns the new value.
// The first call for a key returns 1.
func (r *repository) NextValue(ctx context.Context, scope, counterType string) (int64, error) {
	db := r.db.WithContext(ctx)

	if db.Dialector.Name() == "mysql" {
		// LAST_INSERT_ID(expr) makes the driver report expr as the insert id.
		res, err := db.Statement.ConnPool.ExecContext(ctx, `
			INSERT INTO sequence_counters (scope, counter_type, last_value, updated_at)
			VALUES (?, ?, LAST_INSERT_ID(1), CURRENT_TIMESTAMP)
			ON DUPLICATE KEY UPDATE
				last_value = LAST_INSERT_ID(last_value + 1),
				updated_at = CURRENT_TIMESTAMP
		`, scope, counterType)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	}

	var next int64
	err := db.Raw(`
		INSERT INTO sequence_counters (scope, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, CURRENT_TIMESTAMP)
		ON CONFLICT (scope, counter_type) DO UPDATE
		SET last_value = sequence_counters.last_value + 1, updated_at = CURRENT_TIMESTAMP
		RETURNING last_value
	`, scope, counterType).Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}
