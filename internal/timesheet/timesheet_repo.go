package timesheet

import (
	"context"
	"database/sql"
	"time"

	"go-hrfine/internal/shared/dbtx"
	"go-hrfine/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timesheet_repo.go -destination=mock/timesheet_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, ts *TimeStamp) error
	FindByID(ctx context.Context, id uint) (*TimeStamp, error)
	Save(ctx context.Context, ts *TimeStamp) error
	Delete(ctx context.Context, id uint) error
	ListRange(ctx context.Context, empID string, from, to time.Time) ([]Row, error)
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

func (r *repository) Create(ctx context.Context, ts *TimeStamp) error {
	return r.db.WithContext(ctx).Create(ts).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*TimeStamp, error) {
	var ts TimeStamp
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&ts).Error; err != nil {
		return nil, err
	}
	return &ts, nil
}

func (r *repository) Save(ctx context.Context, ts *TimeStamp) error {
	return r.db.WithContext(ctx).
		Model(ts).
		Select("*").
		Omit("id", "emp_id", "created_at").
		Updates(ts).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&TimeStamp{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListRange returns empID's stamps dated within [from, to], earliest first.
func (r *repository) ListRange(ctx context.Context, empID string, from, to time.Time) ([]Row, error) {
	var rows []Row
	err := r.db.WithContext(ctx).
		Table("time_stamps AS ts").
		Select("ts.*, p.project_code, p.project_name, pl.period_no").
		Joins("LEFT JOIN project_details p ON p.id = ts.project_id").
		Joins("LEFT JOIN project_plans pl ON pl.id = ts.period_id").
		Where("ts.emp_id = ?", empID).
		Scopes(scope.Between("ts.stamp_date", from, to)).
		Order("ts.stamp_date ASC, ts.start_time ASC").
		Scan(&rows).Error
	return rows, err
}
