package client

import (
	"context"
	"database/sql"
	"strings"

	"go-hrfine/internal/shared/codegen"
	"go-hrfine/internal/shared/dbtx"
	"go-hrfine/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=client_repo.go -destination=mock/client_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Client) error
	Update(ctx context.Context, c *Client) error
	FindByID(ctx context.Context, id uint) (*Row, error)
	FindByName(ctx context.Context, name string) (*Row, error)
	List(ctx context.Context, q string) ([]Row, error)
	ExistsName(ctx context.Context, name string, excludeID uint) (bool, error)
	ExistsCode(ctx context.Context, code string, excludeID uint) (bool, error)
	CodesWithPrefix(ctx context.Context, prefix string) ([]string, error)
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

func (r *repository) Create(ctx context.Context, c *Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) Update(ctx context.Context, c *Client) error {
	return r.db.WithContext(ctx).
		Model(c).
		Select("client_type", "client_name", "client_code", "client_email", "contact_address", "client_tel").
		Updates(c).Error
}

func (r *repository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("clients AS c").
		Select("c.*, pt.name AS project_type").
		Joins("LEFT JOIN project_types pt ON pt.id = c.client_type")
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Row, error) {
	var row Row
	if err := r.joined(ctx).Where("c.id = ?", id).Take(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) FindByName(ctx context.Context, name string) (*Row, error) {
	var row Row
	if err := r.joined(ctx).Where("c.client_name = ?", strings.TrimSpace(name)).Take(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) List(ctx context.Context, q string) ([]Row, error) {
	var rows []Row
	err := r.joined(ctx).
		Scopes(scope.Search(q, "c.client_name", "c.client_code", "c.client_email")).
		Order("c.client_code ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) exists(ctx context.Context, query string, arg any, excludeID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Client{}).Where(query, arg).Where("id <> ?", excludeID).Count(&n).Error
	return n > 0, err
}

func (r *repository) ExistsName(ctx context.Context, name string, excludeID uint) (bool, error) {
	return r.exists(ctx, "LOWER(client_name) = ?", strings.ToLower(strings.TrimSpace(name)), excludeID)
}

func (r *repository) ExistsCode(ctx context.Context, code string, excludeID uint) (bool, error) {
	return r.exists(ctx, "UPPER(client_code) = ?", strings.ToUpper(strings.TrimSpace(code)), excludeID)
}

func (r *repository) CodesWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Model(&Client{}).
		Where("client_code LIKE ?", codegen.LikePattern(prefix)).
		Pluck("client_code", &codes).Error
	return codes, err
}
