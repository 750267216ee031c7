package project

import (
	"time"

	"gorm.io/datatypes"
)

const (
	SectionDetails  = "project_details"
	SectionDuration = "project_duration"
	SectionBill     = "project_bill"
	SectionPlan     = "project_plan"
	SectionMember   = "project_member"
)

// Project is the anchor row of a project; every other project table hangs
// off its id.
type Project struct {
	ID                uint      `gorm:"column:id;primaryKey"`
	ProjectType       uint      `gorm:"column:project_type;not null;index"`
	ProjectCode       string    `gorm:"column:project_code;type:varchar(30);not null;uniqueIndex:uq_project_details_project_code"`
	ProjectName       string    `gorm:"column:project_name;type:varchar(100);not null"`
	ProjectContractNo string    `gorm:"column:project_contract_no;type:varchar(20);not null"`
	ProjectDetails    *string   `gorm:"column:project_details;type:varchar(300)"`
	ProjectClient     uint      `gorm:"column:project_client;not null;index"`
	ProjectManager    string    `gorm:"column:project_manager;type:varchar(10);not null;index"`
	ColorMark         string    `gorm:"column:color_mark;type:varchar(10);not null"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Project) TableName() string { return "project_details" }

type Duration struct {
	ID              uint           `gorm:"column:id;primaryKey"`
	ProjectID       uint           `gorm:"column:project_id;not null;uniqueIndex:uq_project_durations_project_id"`
	NumberOfPeriods int            `gorm:"column:number_of_periods;not null"`
	ProjectDuration int            `gorm:"column:project_duration;not null"`
	ProjectSignDate datatypes.Date `gorm:"column:project_sign_date;not null"`
	ProjectEndDate  datatypes.Date `gorm:"column:project_end_date;not null"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (Duration) TableName() string { return "project_durations" }

type Bill struct {
	ID                 uint      `gorm:"column:id;primaryKey"`
	ProjectID          uint      `gorm:"column:project_id;not null;uniqueIndex:uq_project_bills_project_id"`
	Billable           bool      `gorm:"column:billable;not null"`
	ProjectValue       float64   `gorm:"column:project_value;type:decimal(14,2);not null"`
	ProjectBillingRate float64   `gorm:"column:project_billing_rate;type:decimal(14,2);not null"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Bill) TableName() string { return "project_bills" }

// Plan is one delivery period of a project.
type Plan struct {
	ID           uint           `gorm:"column:id;primaryKey"`
	ProjectID    uint           `gorm:"column:project_id;not null;uniqueIndex:uq_project_plans_period,priority:1"`
	PeriodNo     int            `gorm:"column:period_no;not null;uniqueIndex:uq_project_plans_period,priority:2"`
	DeliDuration int            `gorm:"column:deli_duration;not null"`
	DeliDate     datatypes.Date `gorm:"column:deli_date;not null"`
	DeliDetails  *string        `gorm:"column:deli_details;type:varchar(300)"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (Plan) TableName() string { return "project_plans" }

// Member assigns an employee to a project. PositionID is a snapshot taken at
// assignment time and does not follow later hiring changes.
type Member struct {
	ID             uint           `gorm:"column:id;primaryKey"`
	ProjectID      uint           `gorm:"column:project_id;not null;uniqueIndex:uq_project_members_member,priority:1"`
	MemberID       string         `gorm:"column:member_id;type:varchar(10);not null;uniqueIndex:uq_project_members_member,priority:2;index"`
	PositionID     uint           `gorm:"column:position_id;not null;index"`
	AssignedDate   datatypes.Date `gorm:"column:assigned_date;not null"`
	AssignedDetail *string        `gorm:"column:assigned_detail;type:varchar(200)"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (Member) TableName() string { return "project_members" }

func Models() []any {
	return []any{&Project{}, &Duration{}, &Bill{}, &Plan{}, &Member{}}
}

// DashboardRow is one line of the project list.
type DashboardRow struct {
	ID              uint            `gorm:"column:id"`
	ProjectCode     string          `gorm:"column:project_code"`
	ProjectName     string          `gorm:"column:project_name"`
	ProjectType     string          `gorm:"column:project_type"`
	ClientName      string          `gorm:"column:client_name"`
	ProjectManager  string          `gorm:"column:project_manager"`
	ManagerName     *string         `gorm:"column:manager_name"`
	ColorMark       string          `gorm:"column:color_mark"`
	ProjectSignDate *datatypes.Date `gorm:"column:project_sign_date"`
	ProjectEndDate  *datatypes.Date `gorm:"column:project_end_date"`
	MemberCount     int64           `gorm:"column:member_count"`
}

// DetailRow is a project joined with its type and client names.
type DetailRow struct {
	Project
	ProjectTypeName string  `gorm:"column:project_type_name"`
	ClientName      string  `gorm:"column:client_name"`
	ManagerName     *string `gorm:"column:manager_name"`
}

// MemberRow is a member joined with the employee and position names.
type MemberRow struct {
	Member
	EngName      *string `gorm:"column:eng_name"`
	PositionName *string `gorm:"column:position_name"`
}
