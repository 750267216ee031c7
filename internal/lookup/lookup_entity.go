package lookup

import "time"

type Company struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(50);not null;uniqueIndex:uq_companies_name"`
	CreatedAt time.Time
}

type EmployeeType struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(50);not null;uniqueIndex:uq_employee_types_name"`
	CreatedAt time.Time
}

type ContractType struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(50);not null;uniqueIndex:uq_contract_types_name"`
	CreatedAt time.Time
}

type WorkingStatus struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(50);not null;uniqueIndex:uq_working_statuses_name"`
	CreatedAt time.Time
}

type Department struct {
	ID        uint       `gorm:"primaryKey"`
	Name      string     `gorm:"type:varchar(50);not null;uniqueIndex:uq_departments_name"`
	Positions []Position `gorm:"foreignKey:DepartmentID"`
	CreatedAt time.Time
}

// Position names are unique within their department only.
type Position struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"type:varchar(50);not null;uniqueIndex:uq_positions_department_name,priority:2"`
	DepartmentID uint   `gorm:"not null;uniqueIndex:uq_positions_department_name,priority:1"`
	CreatedAt    time.Time
}

// ProjectType also classifies clients; Code prefixes generated client codes.
type ProjectType struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(50);not null;uniqueIndex:uq_project_types_name"`
	Code      string `gorm:"type:varchar(10);not null;uniqueIndex:uq_project_types_code"`
	CreatedAt time.Time
}

// Models lists every lookup table for migration.
func Models() []any {
	return []any{
		&Company{},
		&EmployeeType{},
		&ContractType{},
		&WorkingStatus{},
		&Department{},
		&Position{},
		&ProjectType{},
	}
}

func (c Company) toItem() Item       { return Item{ID: c.ID, Name: c.Name} }
func (e EmployeeType) toItem() Item  { return Item{ID: e.ID, Name: e.Name} }
func (c ContractType) toItem() Item  { return Item{ID: c.ID, Name: c.Name} }
func (w WorkingStatus) toItem() Item { return Item{ID: w.ID, Name: w.Name} }

func (p Position) toItem() Item {
	deptID := p.DepartmentID
	return Item{ID: p.ID, Name: p.Name, DepartmentID: &deptID}
}

func (p ProjectType) toItem() Item { return Item{ID: p.ID, Name: p.Name, Code: p.Code} }

func (d Department) toItem() Item {
	item := Item{ID: d.ID, Name: d.Name, Positions: make([]Item, 0, len(d.Positions))}
	for _, p := range d.Positions {
		item.Positions = append(item.Positions, p.toItem())
	}
	return item
}
