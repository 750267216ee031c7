// Package scope holds reusable GORM query scopes.
package scope

import (
	"strings"

	"gorm.io/gorm"
)

func EmpID(empID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("emp_id = ?", empID)
	}
}

// Search matches q case-insensitively against any of the given columns.
// A blank q leaves the query untouched.
func Search(q string, columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		q = strings.ToLower(strings.TrimSpace(q))
		if q == "" || len(columns) == 0 {
			return db
		}
		like := "%" + q + "%"
		conds := make([]string, len(columns))
		args := make([]any, len(columns))
		for i, c := range columns {
			conds[i] = "LOWER(" + c + ") LIKE ?"
			args[i] = like
		}
		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}

// Between restricts column to the closed range [from, to].
func Between(column string, from, to any) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" >= ? AND "+column+" <= ?", from, to)
	}
}
