package user

import "time"

// User is an account that can log in. EmpID is the human readable employee
// code every employee record hangs off.
type User struct {
	ID          uint      `gorm:"column:id;primaryKey"`
	EmpID       string    `gorm:"column:emp_id;type:varchar(10);not null;uniqueIndex:uq_users_emp_id"`
	Email       string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_users_email"`
	Password    string    `gorm:"column:password;type:varchar(255);not null"`
	Role        string    `gorm:"column:role;type:varchar(20);not null"`
	ResetStatus bool      `gorm:"column:reset_status;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string { return "users" }
