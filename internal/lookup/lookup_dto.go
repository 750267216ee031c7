package lookup

import (
	"fmt"
	"strings"
)

// Kind names one lookup table as it appears in the URL.
type Kind string

const (
	KindCompanies       Kind = "companies"
	KindEmployeeTypes   Kind = "employee-types"
	KindContractTypes   Kind = "contract-types"
	KindDepartments     Kind = "departments"
	KindPositions       Kind = "positions"
	KindWorkingStatuses Kind = "working-statuses"
	KindProjectTypes    Kind = "project-types"
)

var kindLabels = map[Kind]string{
	KindCompanies:       "Company",
	KindEmployeeTypes:   "Employee type",
	KindContractTypes:   "Contract type",
	KindDepartments:     "Department",
	KindPositions:       "Position",
	KindWorkingStatuses: "Working status",
	KindProjectTypes:    "Project type",
}

func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	_, ok := kindLabels[k]
	return k, ok
}

func (k Kind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return string(k)
}

func (k Kind) CacheKey() string {
	return fmt.Sprintf("lookups:%s", k)
}

func (k Kind) table() string {
	switch k {
	case KindEmployeeTypes:
		return "employee_types"
	case KindContractTypes:
		return "contract_types"
	case KindWorkingStatuses:
		return "working_statuses"
	case KindProjectTypes:
		return "project_types"
	default:
		return string(k)
	}
}

// Item is the wire shape shared by every lookup kind. Code is set for
// project types, DepartmentID for positions, Positions for departments.
type Item struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Code         string `json:"code,omitempty"`
	DepartmentID *uint  `json:"department_id,omitempty"`
	Positions    []Item `json:"positions,omitempty"`
}

type CreateRequest struct {
	Name         string `json:"name" binding:"required,max=50"`
	Code         string `json:"code" binding:"omitempty,max=10,alphanum"`
	DepartmentID uint   `json:"department_id"`
}

type UpdatePositionRequest struct {
	Name         string `json:"name" binding:"required,max=50"`
	DepartmentID uint   `json:"department_id" binding:"required"`
}
