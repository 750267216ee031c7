package user

import (
	"context"
	"database/sql"
	"strings"

	"go-hrfine/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmpID(ctx context.Context, empID string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context, q string) ([]User, error)
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	UpdatePassword(ctx context.Context, id uint, hash string, resetStatus bool) error
	UpdateEmail(ctx context.Context, id uint, email string) error
	UpdateRole(ctx context.Context, id uint, role string) error
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

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmpID(ctx context.Context, empID string) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "emp_id = ?", empID).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "LOWER(email) = ?", strings.ToLower(email)).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindAll(ctx context.Context, q string) ([]User, error) {
	var users []User
	db := r.db.WithContext(ctx)
	if q = strings.TrimSpace(strings.ToLower(q)); q != "" {
		like := "%" + q + "%"
		db = db.Where("LOWER(email) LIKE ? OR emp_id LIKE ?", like, like)
	}
	err := db.Order("emp_id ASC").Find(&users).Error
	return users, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&User{}).Count(&n).Error
	return n, err
}

func (r *repository) CountByRole(ctx context.Context, role string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("role = ?", role).Count(&n).Error
	return n, err
}

func (r *repository) UpdatePassword(ctx context.Context, id uint, hash string, resetStatus bool) error {
	return r.updateColumns(ctx, id, map[string]any{
		"password":     hash,
		"reset_status": resetStatus,
	})
}

func (r *repository) UpdateEmail(ctx context.Context, id uint, email string) error {
	return r.updateColumns(ctx, id, map[string]any{"email": email})
}

func (r *repository) UpdateRole(ctx context.Context, id uint, role string) error {
	return r.updateColumns(ctx, id, map[string]any{"role": role})
}

func (r *repository) updateColumns(ctx context.Context, id uint, cols map[string]any) error {
	res := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
