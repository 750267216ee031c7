package project_test

import (
	"context"
	"testing"

	"go-hrfine/internal/client"
	"go-hrfine/internal/employee"
	"go-hrfine/internal/lookup"
	"go-hrfine/internal/project"
	"go-hrfine/internal/shared/dateutil"
	"go-hrfine/internal/shared/dberr"
	"go-hrfine/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db      *gorm.DB
	repo    project.Repository
	project *project.Project
	pos     lookup.Position
}

func setupRepo(t *testing.T) *fixture {
	models := append([]any{
		&lookup.ProjectType{}, &lookup.Department{}, &lookup.Position{},
		&client.Client{}, &employee.PersonalInfo{},
	}, project.Models()...)
	db := testdb.Open(t, models...)

	pt := lookup.ProjectType{Name: "Software", Code: "SW"}
	require.NoError(t, db.Create(&pt).Error)
	dept := lookup.Department{Name: "Engineering"}
	require.NoError(t, db.Create(&dept).Error)
	pos := lookup.Position{Name: "Developer", DepartmentID: dept.ID}
	require.NoError(t, db.Create(&pos).Error)
	c := client.Client{ClientType: pt.ID, ClientName: "Siam Retail", ClientCode: "SR-001"}
	require.NoError(t, db.Create(&c).Error)
	require.NoError(t, db.Create(&employee.PersonalInfo{EmpID: "68001", EngName: "Somchai"}).Error)

	repo := project.NewRepository(db)
	p := &project.Project{
		ProjectType: pt.ID, ProjectCode: "SR-001-001", ProjectName: "POS rollout",
		ProjectContractNo: "C-1", ProjectClient: c.ID, ProjectManager: "68001", ColorMark: "#f80",
	}
	require.NoError(t, repo.CreateProject(context.Background(), p))
	return &fixture{db: db, repo: repo, project: p, pos: pos}
}

func TestRepository_ProjectQueries(t *testing.T) {
	ctx := context.Background()
	f := setupRepo(t)

	err := f.repo.CreateProject(ctx, &project.Project{ProjectCode: "SR-001-001", ProjectManager: "68001"})
	assert.True(t, dberr.IsUniqueViolation(err))

	taken, err := f.repo.ExistsCode(ctx, "sr-001-001", 0)
	require.NoError(t, err)
	assert.True(t, taken)
	taken, err = f.repo.ExistsCode(ctx, "SR-001-001", f.project.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	codes, err := f.repo.CodesWithPrefix(ctx, "SR-001")
	require.NoError(t, err)
	assert.Equal(t, []string{"SR-001-001"}, codes)

	row, err := f.repo.FindDetail(ctx, f.project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Software", row.ProjectTypeName)
	assert.Equal(t, "Siam Retail", row.ClientName)
	require.NotNil(t, row.ManagerName)
	assert.Equal(t, "Somchai", *row.ManagerName)

	_, err = f.repo.FindProject(ctx, 999)
	assert.True(t, dberr.IsNotFound(err))
}

func TestRepository_Sections(t *testing.T) {
	ctx := context.Background()
	f := setupRepo(t)
	id := f.project.ID

	sign, _ := dateutil.ParseDate("d", "2025-01-01")
	end, _ := dateutil.ParseDate("d", "2025-06-30")
	require.NoError(t, f.repo.CreateDuration(ctx, &project.Duration{
		ProjectID: id, NumberOfPeriods: 2, ProjectDuration: 6, ProjectSignDate: sign, ProjectEndDate: end,
	}))
	err := f.repo.CreateDuration(ctx, &project.Duration{ProjectID: id, NumberOfPeriods: 1, ProjectSignDate: sign, ProjectEndDate: end})
	assert.True(t, dberr.IsUniqueViolation(err))

	require.NoError(t, f.repo.CreatePlans(ctx, []project.Plan{
		{ProjectID: id, PeriodNo: 2, DeliDate: end},
		{ProjectID: id, PeriodNo: 1, DeliDate: sign},
	}))
	err = f.repo.CreatePlans(ctx, []project.Plan{{ProjectID: id, PeriodNo: 1, DeliDate: sign}})
	assert.True(t, dberr.IsUniqueViolation(err))

	plans, err := f.repo.ListPlans(ctx, []uint{id})
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, 1, plans[0].PeriodNo)

	plan, err := f.repo.FindPlan(ctx, id, plans[1].ID)
	require.NoError(t, err)
	plan.DeliDuration = 4
	require.NoError(t, f.repo.Save(ctx, plan))
	plan, err = f.repo.FindPlan(ctx, id, plans[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 4, plan.DeliDuration)

	_, err = f.repo.FindPlan(ctx, id+1, plans[1].ID)
	assert.True(t, dberr.IsNotFound(err))

	require.NoError(t, f.repo.CreateMember(ctx, &project.Member{
		ProjectID: id, MemberID: "68002", PositionID: f.pos.ID, AssignedDate: sign,
	}))
	err = f.repo.CreateMember(ctx, &project.Member{ProjectID: id, MemberID: "68002", PositionID: f.pos.ID, AssignedDate: sign})
	assert.True(t, dberr.IsUniqueViolation(err))

	members, err := f.repo.ListMembers(ctx, id)
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.NotNil(t, members[0].PositionName)
	assert.Equal(t, "Developer", *members[0].PositionName)
	assert.Nil(t, members[0].EngName)

	rows, err := f.repo.Dashboard(ctx, "pos")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].MemberCount)
	assert.Equal(t, "Siam Retail", rows[0].ClientName)

	rows, err = f.repo.Dashboard(ctx, "nothing-matches")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRepository_Assigned(t *testing.T) {
	ctx := context.Background()
	f := setupRepo(t)
	sign, _ := dateutil.ParseDate("d", "2025-01-01")

	other := &project.Project{
		ProjectType: f.project.ProjectType, ProjectCode: "SR-001-002", ProjectName: "Support",
		ProjectContractNo: "C-2", ProjectClient: f.project.ProjectClient, ProjectManager: "68009", ColorMark: "#00f",
	}
	require.NoError(t, f.repo.CreateProject(ctx, other))
	require.NoError(t, f.repo.CreateMember(ctx, &project.Member{
		ProjectID: other.ID, MemberID: "68002", PositionID: f.pos.ID, AssignedDate: sign,
	}))

	managed, err := f.repo.Assigned(ctx, "68001")
	require.NoError(t, err)
	require.Len(t, managed, 1)
	assert.Equal(t, "SR-001-001", managed[0].ProjectCode)

	member, err := f.repo.Assigned(ctx, "68002")
	require.NoError(t, err)
	require.Len(t, member, 1)
	assert.Equal(t, "SR-001-002", member[0].ProjectCode)

	none, err := f.repo.Assigned(ctx, "70000")
	require.NoError(t, err)
	assert.Empty(t, none)
}
