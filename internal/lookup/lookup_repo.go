package lookup

import (
	"context"
	"database/sql"
	"strings"

	"go-hrfine/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=lookup_repo.go -destination=mock/lookup_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	List(ctx context.Context, kind Kind) ([]Item, error)
	Create(ctx context.Context, kind Kind, req CreateRequest) (Item, error)
	Exists(ctx context.Context, kind Kind, id uint) (bool, error)
	ExistsByName(ctx context.Context, kind Kind, name string) (bool, error)
	ExistsPositionName(ctx context.Context, departmentID uint, name string, excludeID uint) (bool, error)
	ExistsProjectTypeCode(ctx context.Context, code string) (bool, error)
	FindPosition(ctx context.Context, id uint) (*Position, error)
	UpdatePosition(ctx context.Context, p *Position) error
	FindProjectType(ctx context.Context, id uint) (*ProjectType, error)
}

type record interface {
	toItem() Item
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

func listAs[T record](db *gorm.DB) ([]Item, error) {
	var rows []T
	if err := db.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]Item, len(rows))
	for i, row := range rows {
		items[i] = row.toItem()
	}
	return items, nil
}

func (r *repository) List(ctx context.Context, kind Kind) ([]Item, error) {
	db := r.db.WithContext(ctx)
	switch kind {
	case KindCompanies:
		return listAs[Company](db)
	case KindEmployeeTypes:
		return listAs[EmployeeType](db)
	case KindContractTypes:
		return listAs[ContractType](db)
	case KindWorkingStatuses:
		return listAs[WorkingStatus](db)
	case KindPositions:
		return listAs[Position](db)
	case KindProjectTypes:
		return listAs[ProjectType](db)
	case KindDepartments:
		return listAs[Department](db.Preload("Positions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("id ASC")
		}))
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *repository) Create(ctx context.Context, kind Kind, req CreateRequest) (Item, error) {
	var row record
	switch kind {
	case KindCompanies:
		row = &Company{Name: req.Name}
	case KindEmployeeTypes:
		row = &EmployeeType{Name: req.Name}
	case KindContractTypes:
		row = &ContractType{Name: req.Name}
	case KindWorkingStatuses:
		row = &WorkingStatus{Name: req.Name}
	case KindDepartments:
		row = &Department{Name: req.Name}
	case KindPositions:
		row = &Position{Name: req.Name, DepartmentID: req.DepartmentID}
	case KindProjectTypes:
		row = &ProjectType{Name: req.Name, Code: req.Code}
	default:
		return Item{}, gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return Item{}, err
	}
	return row.toItem(), nil
}

func (r *repository) count(ctx context.Context, table string, query string, args ...any) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Table(table).Where(query, args...).Count(&n).Error
	return n > 0, err
}

func (r *repository) Exists(ctx context.Context, kind Kind, id uint) (bool, error) {
	return r.count(ctx, kind.table(), "id = ?", id)
}

func (r *repository) ExistsByName(ctx context.Context, kind Kind, name string) (bool, error) {
	return r.count(ctx, kind.table(), "LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name)))
}

func (r *repository) ExistsPositionName(ctx context.Context, departmentID uint, name string, excludeID uint) (bool, error) {
	return r.count(ctx, KindPositions.table(),
		"department_id = ? AND LOWER(name) = ? AND id <> ?",
		departmentID, strings.ToLower(strings.TrimSpace(name)), excludeID,
	)
}

func (r *repository) ExistsProjectTypeCode(ctx context.Context, code string) (bool, error) {
	return r.count(ctx, KindProjectTypes.table(), "UPPER(code) = ?", strings.ToUpper(strings.TrimSpace(code)))
}

func (r *repository) FindPosition(ctx context.Context, id uint) (*Position, error) {
	var p Position
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) UpdatePosition(ctx context.Context, p *Position) error {
	res := r.db.WithContext(ctx).Model(&Position{}).Where("id = ?", p.ID).Updates(map[string]any{
		"name":          p.Name,
		"department_id": p.DepartmentID,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindProjectType(ctx context.Context, id uint) (*ProjectType, error) {
	var pt ProjectType
	if err := r.db.WithContext(ctx).First(&pt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pt, nil
}
