package project

import (
	"context"
	"database/sql"
	"strings"

	"go-hrfine/internal/shared/codegen"
	"go-hrfine/internal/shared/dbtx"
	"go-hrfine/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=project_repo.go -destination=mock/project_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateProject(ctx context.Context, p *Project) error
	FindProject(ctx context.Context, id uint) (*Project, error)
	FindDetail(ctx context.Context, id uint) (*DetailRow, error)
	ExistsCode(ctx context.Context, code string, excludeID uint) (bool, error)
	CodesWithPrefix(ctx context.Context, prefix string) ([]string, error)
	Dashboard(ctx context.Context, q string) ([]DashboardRow, error)
	Assigned(ctx context.Context, empID string) ([]Project, error)
	CreateDuration(ctx context.Context, d *Duration) error
	FindDuration(ctx context.Context, projectID uint) (*Duration, error)
	CreateBill(ctx context.Context, b *Bill) error
	FindBill(ctx context.Context, projectID uint) (*Bill, error)
	CreatePlans(ctx context.Context, plans []Plan) error
	FindPlan(ctx context.Context, projectID, planID uint) (*Plan, error)
	ListPlans(ctx context.Context, projectIDs []uint) ([]Plan, error)
	CreateMember(ctx context.Context, m *Member) error
	FindMember(ctx context.Context, projectID uint, empID string) (*Member, error)
	ListMembers(ctx context.Context, projectID uint) ([]MemberRow, error)
	Save(ctx context.Context, row any) error
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

func (r *repository) CreateProject(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindProject(ctx context.Context, id uint) (*Project, error) {
	var p Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindDetail(ctx context.Context, id uint) (*DetailRow, error) {
	var row DetailRow
	err := r.db.WithContext(ctx).
		Table("project_details AS p").
		Select("p.*, pt.name AS project_type_name, c.client_name, pi.eng_name AS manager_name").
		Joins("LEFT JOIN project_types pt ON pt.id = p.project_type").
		Joins("LEFT JOIN clients c ON c.id = p.project_client").
		Joins("LEFT JOIN personal_infos pi ON pi.emp_id = p.project_manager").
		Where("p.id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) ExistsCode(ctx context.Context, code string, excludeID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&Project{}).
		Where("UPPER(project_code) = ?", strings.ToUpper(strings.TrimSpace(code))).
		Where("id <> ?", excludeID).
		Count(&n).Error
	return n > 0, err
}

func (r *repository) CodesWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Model(&Project{}).
		Where("project_code LIKE ?", codegen.LikePattern(prefix)).
		Pluck("project_code", &codes).Error
	return codes, err
}

func (r *repository) Dashboard(ctx context.Context, q string) ([]DashboardRow, error) {
	var rows []DashboardRow
	err := r.db.WithContext(ctx).
		Table("project_details AS p").
		Select(`p.id, p.project_code, p.project_name, p.project_manager, p.color_mark,
			pt.name AS project_type, c.client_name, pi.eng_name AS manager_name,
			d.project_sign_date, d.project_end_date,
			(SELECT COUNT(*) FROM project_members m WHERE m.project_id = p.id) AS member_count`).
		Joins("LEFT JOIN project_types pt ON pt.id = p.project_type").
		Joins("LEFT JOIN clients c ON c.id = p.project_client").
		Joins("LEFT JOIN personal_infos pi ON pi.emp_id = p.project_manager").
		Joins("LEFT JOIN project_durations d ON d.project_id = p.id").
		Scopes(scope.Search(q, "p.project_code", "p.project_name", "c.client_name")).
		Order("p.project_code ASC").
		Scan(&rows).Error
	return rows, err
}

// Assigned lists projects empID manages or is a member of.
func (r *repository) Assigned(ctx context.Context, empID string) ([]Project, error) {
	var rows []Project
	err := r.db.WithContext(ctx).
		Where("project_manager = ?", empID).
		Or("id IN (?)", r.db.Model(&Member{}).Select("project_id").Where("member_id = ?", empID)).
		Order("project_code ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CreateDuration(ctx context.Context, d *Duration) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindDuration(ctx context.Context, projectID uint) (*Duration, error) {
	var d Duration
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Take(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) CreateBill(ctx context.Context, b *Bill) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) FindBill(ctx context.Context, projectID uint) (*Bill, error) {
	var b Bill
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Take(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) CreatePlans(ctx context.Context, plans []Plan) error {
	if len(plans) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&plans).Error
}

func (r *repository) FindPlan(ctx context.Context, projectID, planID uint) (*Plan, error) {
	var p Plan
	err := r.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", planID, projectID).
		Take(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListPlans(ctx context.Context, projectIDs []uint) ([]Plan, error) {
	var plans []Plan
	if len(projectIDs) == 0 {
		return plans, nil
	}
	err := r.db.WithContext(ctx).
		Where("project_id IN ?", projectIDs).
		Order("project_id ASC, period_no ASC").
		Find(&plans).Error
	return plans, err
}

func (r *repository) CreateMember(ctx context.Context, m *Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) FindMember(ctx context.Context, projectID uint, empID string) (*Member, error) {
	var m Member
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND member_id = ?", projectID, empID).
		Take(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) ListMembers(ctx context.Context, projectID uint) ([]MemberRow, error) {
	var rows []MemberRow
	err := r.db.WithContext(ctx).
		Table("project_members AS m").
		Select("m.*, pi.eng_name, pos.name AS position_name").
		Joins("LEFT JOIN personal_infos pi ON pi.emp_id = m.member_id").
		Joins("LEFT JOIN positions pos ON pos.id = m.position_id").
		Where("m.project_id = ?", projectID).
		Order("m.member_id ASC").
		Scan(&rows).Error
	return rows, err
}

// Save writes every column of a row previously loaded by one of the Find
// methods. Keys and creation time are left alone.
func (r *repository) Save(ctx context.Context, row any) error {
	return r.db.WithContext(ctx).
		Model(row).
		Select("*").
		Omit("id", "project_id", "created_at").
		Updates(row).Error
}
