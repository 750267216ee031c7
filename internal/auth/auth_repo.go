package auth

import (
	"context"
	"database/sql"

	"go-hrfine/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateSession(ctx context.Context, t *RefreshToken) error
	FindSession(ctx context.Context, id string) (*RefreshToken, error)
	RevokeSession(ctx context.Context, id string, userID uint) error
	RevokeAllSessions(ctx context.Context, userID uint) error
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

func (r *repository) CreateSession(ctx context.Context, t *RefreshToken) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindSession(ctx context.Context, id string) (*RefreshToken, error) {
	var t RefreshToken
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) RevokeSession(ctx context.Context, id string, userID uint) error {
	res := r.db.WithContext(ctx).
		Model(&RefreshToken{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("status", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) RevokeAllSessions(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Model(&RefreshToken{}).
		Where("user_id = ? AND status = ?", userID, true).
		Update("status", false).Error
}
