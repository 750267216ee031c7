package timesheet

import (
	"time"

	"gorm.io/datatypes"
)

// TimeStamp is one block of work an employee logged against a project.
// TotalTime is derived from StartTime and EndTime on every write.
type TimeStamp struct {
	ID             uint           `gorm:"column:id;primaryKey"`
	EmpID          string         `gorm:"column:emp_id;type:varchar(10);not null;index:idx_time_stamps_emp_date,priority:1"`
	ProjectID      uint           `gorm:"column:project_id;not null;index"`
	PeriodID       *uint          `gorm:"column:period_id;index"`
	StampDate      datatypes.Date `gorm:"column:stamp_date;not null;index:idx_time_stamps_emp_date,priority:2"`
	StartTime      datatypes.Time `gorm:"column:start_time;not null"`
	EndTime        datatypes.Time `gorm:"column:end_time;not null"`
	TotalTime      string         `gorm:"column:total_time;type:varchar(5);not null"`
	StampDetails   *string        `gorm:"column:stamp_details;type:varchar(300)"`
	Disbursement   bool           `gorm:"column:disbursement;not null"`
	OverTime       bool           `gorm:"column:over_time;not null"`
	TravelExpenses bool           `gorm:"column:travel_expenses;not null"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (TimeStamp) TableName() string { return "time_stamps" }

// Row is a stamp joined with its project and plan period.
type Row struct {
	TimeStamp
	ProjectCode *string `gorm:"column:project_code"`
	ProjectName *string `gorm:"column:project_name"`
	PeriodNo    *int    `gorm:"column:period_no"`
}
