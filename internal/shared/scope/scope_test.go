package scope_test

import (
	"testing"

	"go-hrfine/internal/shared/scope"
	"go-hrfine/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
)

type row struct {
	ID    uint `gorm:"primaryKey"`
	EmpID string
	Name  string
	Note  string
	Day   int
}

func seed(t *testing.T) []row {
	t.Helper()
	db := testdb.Open(t, &row{})
	rows := []row{
		{EmpID: "68001", Name: "Alice", Note: "backend", Day: 1},
		{EmpID: "68002", Name: "Bob", Note: "frontend", Day: 5},
		{EmpID: "68001", Name: "Carol", Note: "QA", Day: 9},
	}
	assert.NoError(t, db.Create(&rows).Error)

	var got []row
	assert.NoError(t, db.Scopes(scope.EmpID("68001"), scope.Between("day", 2, 10)).Find(&got).Error)
	return got
}

func TestEmpIDAndBetween(t *testing.T) {
	got := seed(t)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "Carol", got[0].Name)
	}
}

func TestSearch(t *testing.T) {
	db := testdb.Open(t, &row{})
	assert.NoError(t, db.Create(&[]row{
		{EmpID: "68001", Name: "Alice", Note: "backend"},
		{EmpID: "68002", Name: "Bob", Note: "Frontend"},
	}).Error)

	var got []row
	assert.NoError(t, db.Scopes(scope.Search("FRONT", "name", "note")).Find(&got).Error)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "Bob", got[0].Name)
	}

	got = nil
	assert.NoError(t, db.Scopes(scope.Search("  ", "name")).Find(&got).Error)
	assert.Len(t, got, 2)
}
