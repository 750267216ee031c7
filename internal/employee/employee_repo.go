package employee

import (
	"context"
	"database/sql"

	"go-hrfine/internal/shared/dbtx"
	"go-hrfine/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Exists(ctx context.Context, s Section, empID string) (bool, error)
	Create(ctx context.Context, s Section) error
	Find(ctx context.Context, empID string, dst Section) error
	Save(ctx context.Context, s Section) error
	List(ctx context.Context, q string) ([]SummaryRow, error)
	Managers(ctx context.Context) ([]ManagerOption, error)
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

func (r *repository) Exists(ctx context.Context, s Section, empID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(s).Scopes(scope.EmpID(empID)).Count(&n).Error
	return n > 0, err
}

func (r *repository) Create(ctx context.Context, s Section) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// Find loads the section row for empID into dst, which must be a pointer to
// one of the section entities.
func (r *repository) Find(ctx context.Context, empID string, dst Section) error {
	return r.db.WithContext(ctx).Scopes(scope.EmpID(empID)).First(dst).Error
}

// Save writes every column of a section previously loaded with Find, zero
// values included. The key columns are never rewritten.
func (r *repository) Save(ctx context.Context, s Section) error {
	return r.db.WithContext(ctx).
		Model(s).
		Select("*").
		Omit("id", "emp_id", "created_at").
		Updates(s).Error
}

func (r *repository) List(ctx context.Context, q string) ([]SummaryRow, error) {
	var rows []SummaryRow
	err := r.db.WithContext(ctx).
		Table("users AS u").
		Select(`u.emp_id, u.email, u.role,
			p.thai_name, p.eng_name, p.eng_nickname,
			d.name AS department, pos.name AS position, ws.name AS working_status,
			h.start_date`).
		Joins("LEFT JOIN personal_infos p ON p.emp_id = u.emp_id").
		Joins("LEFT JOIN hiring_infos h ON h.emp_id = u.emp_id").
		Joins("LEFT JOIN departments d ON d.id = h.department_id").
		Joins("LEFT JOIN positions pos ON pos.id = h.position_id").
		Joins("LEFT JOIN working_statuses ws ON ws.id = h.working_status_id").
		Scopes(scope.Search(q, "u.emp_id", "u.email", "p.thai_name", "p.eng_name", "p.eng_nickname")).
		Order("u.emp_id ASC").
		Scan(&rows).Error
	return rows, err
}

// Managers lists everyone with personal info on file, which is what the
// manager pickers offer.
func (r *repository) Managers(ctx context.Context) ([]ManagerOption, error) {
	var rows []ManagerOption
	err := r.db.WithContext(ctx).
		Table("personal_infos").
		Select("emp_id, thai_name, eng_name, eng_nickname").
		Order("emp_id ASC").
		Scan(&rows).Error
	return rows, err
}
