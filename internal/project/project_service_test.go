package project_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	clientpkg "go-hrfine/internal/client"
	clientMock "go-hrfine/internal/client/mock"
	"go-hrfine/internal/employee"
	employeeMock "go-hrfine/internal/employee/mock"
	"go-hrfine/internal/lookup"
	lookupMock "go-hrfine/internal/lookup/mock"
	"go-hrfine/internal/project"
	projecterrors "go-hrfine/internal/project/errors"
	projectMock "go-hrfine/internal/project/mock"
	"go-hrfine/internal/shared/apperror"
	"go-hrfine/internal/shared/composite"
	"go-hrfine/internal/shared/dateutil"
	"go-hrfine/internal/shared/patch"
	"go-hrfine/internal/user"
	userMock "go-hrfine/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock   sqlmock.Sqlmock
	repo      *projectMock.MockRepository
	clients   *clientMock.MockRepository
	lookups   *lookupMock.MockRepository
	users     *userMock.MockRepository
	employees *employeeMock.MockRepository
	service   project.Service
}

var fixedNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	deps := &serviceDeps{
		sqlMock:   sqlMock,
		repo:      projectMock.NewMockRepository(ctrl),
		clients:   clientMock.NewMockRepository(ctrl),
		lookups:   lookupMock.NewMockRepository(ctrl),
		users:     userMock.NewMockRepository(ctrl),
		employees: employeeMock.NewMockRepository(ctrl),
	}
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).AnyTimes()
	deps.clients.EXPECT().WithTx(gomock.Any()).Return(deps.clients).AnyTimes()
	deps.lookups.EXPECT().WithTx(gomock.Any()).Return(deps.lookups).AnyTimes()
	deps.users.EXPECT().WithTx(gomock.Any()).Return(deps.users).AnyTimes()
	deps.employees.EXPECT().WithTx(gomock.Any()).Return(deps.employees).AnyTimes()

	clock := dateutil.Clock{Loc: time.UTC, Now: func() time.Time { return fixedNow }}
	deps.service = project.NewService(db, deps.repo, deps.clients, deps.lookups, deps.users, deps.employees, clock)
	return deps
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

// expectSavepoint records the statements dbtx.Savepoint issues.
func expectSavepoint(mock sqlmock.Sqlmock, name string, ok bool) {
	mock.ExpectExec("SAVEPOINT " + name).WillReturnResult(sqlmock.NewResult(0, 0))
	if ok {
		mock.ExpectExec("RELEASE SAVEPOINT " + name).WillReturnResult(sqlmock.NewResult(0, 0))
	} else {
		mock.ExpectExec("ROLLBACK TO SAVEPOINT " + name).WillReturnResult(sqlmock.NewResult(0, 0))
	}
}

func uintPtr(v uint) *uint { return &v }

func submitReq() project.SubmitAllRequest {
	return project.SubmitAllRequest{
		ProjectInfo: project.ProjectInfo{
			ProjectDetails: &project.DetailsInput{
				ProjectType: 1, ProjectCode: "sr-001-001", ProjectName: "POS rollout",
				ProjectContractNo: "C-2025-01", ProjectClient: 4, ProjectManager: "68001", ColorMark: "#ff8800",
			},
			ProjectDuration: &project.DurationInput{
				NumberOfPeriods: 2, ProjectDuration: 6,
				ProjectSignDate: "2025-01-01", ProjectEndDate: "2025-06-30",
			},
			ProjectBill: &project.BillInput{Billable: true, ProjectValue: 1200000, ProjectBillingRate: 1500},
		},
		ProjectPlanInfo: project.PlanGroup{ProjectPlan: []project.PlanInput{
			{PeriodNo: 1, DeliDuration: 3, DeliDate: "2025-03-31"},
			{PeriodNo: 2, DeliDuration: 3, DeliDate: "2025-06-30"},
		}},
		ProjectMemberInfo: project.MemberGroup{ProjectMember: []project.MemberInput{
			{MemberID: "68002", PositionID: uintPtr(3)},
		}},
	}
}

// expectDetails primes the reference checks and the anchor insert.
func expectDetails(ctx context.Context, deps *serviceDeps) {
	deps.repo.EXPECT().ExistsCode(ctx, "SR-001-001", uint(0)).Return(false, nil)
	deps.lookups.EXPECT().FindProjectType(ctx, uint(1)).Return(&lookup.ProjectType{ID: 1, Name: "Software", Code: "SW"}, nil)
	deps.clients.EXPECT().FindByID(ctx, uint(4)).Return(&clientpkg.Row{}, nil)
	deps.users.EXPECT().FindByEmpID(ctx, "68001").Return(&user.User{EmpID: "68001"}, nil)
	deps.repo.EXPECT().CreateProject(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *project.Project) error {
		p.ID = 7
		return nil
	})
}

func TestProjectService_GenerateCode(t *testing.T) {
	ctx := context.Background()
	row := &clientpkg.Row{
		Client:      clientpkg.Client{ID: 4, ClientType: 1, ClientName: "Siam Retail", ClientCode: "SR-001"},
		ProjectType: "Software",
	}

	t.Run("next suffix under the client code", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.clients.EXPECT().FindByName(ctx, "Siam Retail").Return(row, nil)
		deps.repo.EXPECT().CodesWithPrefix(ctx, "SR-001").Return([]string{"SR-001-001", "SR-001-003"}, nil)

		resp, err := deps.service.GenerateCode(ctx, project.GenerateCodeRequest{ClientName: "Siam Retail", ProjectType: 1})

		require.NoError(t, err)
		assert.Equal(t, "SR-001-004", resp.ProjectCode)
	})

	t.Run("unknown client", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.clients.EXPECT().FindByName(ctx, "Nobody").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GenerateCode(ctx, project.GenerateCodeRequest{ClientName: "Nobody", ProjectType: 1})

		assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status)
		assert.Equal(t, "Invalid client name or no client found", apperror.ToHTTP(err).Message)
	})

	t.Run("type mismatch names both types", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.clients.EXPECT().FindByName(ctx, "Siam Retail").Return(row, nil)
		deps.lookups.EXPECT().FindProjectType(ctx, uint(2)).Return(&lookup.ProjectType{ID: 2, Name: "Consulting"}, nil)

		_, err := deps.service.GenerateCode(ctx, project.GenerateCodeRequest{ClientName: "Siam Retail", ProjectType: 2})

		assert.True(t, errors.Is(err, projecterrors.ErrProjectTypeMismatch))
		assert.Equal(t,
			"Project type mismatch: Client 'Siam Retail' is associated with 'Software', not 'Consulting'.",
			apperror.ToHTTP(err).Message)
	})
}

func TestProjectService_SubmitAll(t *testing.T) {
	ctx := context.Background()

	t.Run("all sections succeed", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		expectSavepoint(deps.sqlMock, project.SectionDuration, true)
		expectSavepoint(deps.sqlMock, project.SectionBill, true)
		expectSavepoint(deps.sqlMock, project.SectionPlan, true)
		expectSavepoint(deps.sqlMock, project.SectionMember, true)
		deps.sqlMock.ExpectCommit()

		expectDetails(ctx, deps)
		deps.repo.EXPECT().CreateDuration(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, d *project.Duration) error {
			assert.Equal(t, uint(7), d.ProjectID)
			assert.Equal(t, 2, d.NumberOfPeriods)
			return nil
		})
		deps.repo.EXPECT().CreateBill(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().CreatePlans(ctx, gomock.Len(2)).Return(nil)
		deps.users.EXPECT().FindByEmpID(ctx, "68002").Return(&user.User{EmpID: "68002"}, nil)
		deps.lookups.EXPECT().Exists(ctx, lookup.KindPositions, uint(3)).Return(true, nil)
		deps.repo.EXPECT().CreateMember(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, m *project.Member) error {
			assert.Equal(t, "2025-03-10", dateutil.FormatDate(m.AssignedDate))
			return nil
		})

		report, err := deps.service.SubmitAll(ctx, submitReq())

		require.NoError(t, err)
		assert.False(t, report.Failed())
		for _, section := range []string{
			project.SectionDetails, project.SectionDuration, project.SectionBill,
			project.SectionPlan, project.SectionMember,
		} {
			assert.Equal(t, composite.StatusSuccess, report[section].Status, section)
		}
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("plan count mismatch rejects only the plan section", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := submitReq()
		req.ProjectInfo.ProjectBill = nil
		req.ProjectPlanInfo.ProjectPlan = req.ProjectPlanInfo.ProjectPlan[:1]

		deps.sqlMock.ExpectBegin()
		expectSavepoint(deps.sqlMock, project.SectionDuration, true)
		expectSavepoint(deps.sqlMock, project.SectionPlan, false)
		expectSavepoint(deps.sqlMock, project.SectionMember, true)
		deps.sqlMock.ExpectCommit()

		expectDetails(ctx, deps)
		deps.repo.EXPECT().CreateDuration(ctx, gomock.Any()).Return(nil)
		deps.users.EXPECT().FindByEmpID(ctx, "68002").Return(&user.User{EmpID: "68002"}, nil)
		deps.lookups.EXPECT().Exists(ctx, lookup.KindPositions, uint(3)).Return(true, nil)
		deps.repo.EXPECT().CreateMember(ctx, gomock.Any()).Return(nil)

		report, err := deps.service.SubmitAll(ctx, req)

		require.NoError(t, err)
		assert.True(t, report.Failed())
		assert.Equal(t, composite.StatusSuccess, report[project.SectionDuration].Status)
		assert.Equal(t, composite.StatusError, report[project.SectionPlan].Status)
		assert.Equal(t,
			"Number of project plans (1) does not match the number of periods (2).",
			report[project.SectionPlan].Message)
		assert.Equal(t, composite.StatusSuccess, report[project.SectionMember].Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown member fails its item and keeps the others", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := submitReq()
		req.ProjectInfo.ProjectDuration = nil
		req.ProjectInfo.ProjectBill = nil
		req.ProjectPlanInfo.ProjectPlan = nil
		req.ProjectMemberInfo.ProjectMember = []project.MemberInput{
			{MemberID: "99999"},
			{MemberID: "68002", AssignedDate: strPtr("2025-03-03")},
		}

		deps.sqlMock.ExpectBegin()
		expectSavepoint(deps.sqlMock, project.SectionMember, false)
		expectSavepoint(deps.sqlMock, project.SectionMember, true)
		deps.sqlMock.ExpectCommit()

		expectDetails(ctx, deps)
		deps.users.EXPECT().FindByEmpID(ctx, "99999").Return(nil, gorm.ErrRecordNotFound)
		deps.users.EXPECT().FindByEmpID(ctx, "68002").Return(&user.User{EmpID: "68002"}, nil)
		deps.employees.EXPECT().Find(ctx, "68002", gomock.AssignableToTypeOf(&employee.HiringInfo{})).
			DoAndReturn(func(_ context.Context, _ string, dst employee.Section) error {
				dst.(*employee.HiringInfo).PositionID = 5
				return nil
			})
		deps.repo.EXPECT().CreateMember(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, m *project.Member) error {
			assert.Equal(t, uint(5), m.PositionID)
			assert.Equal(t, "2025-03-03", dateutil.FormatDate(m.AssignedDate))
			return nil
		})

		report, err := deps.service.SubmitAll(ctx, req)

		require.NoError(t, err)
		members := report[project.SectionMember]
		assert.Equal(t, composite.StatusError, members.Status)
		require.Len(t, members.Items, 2)
		assert.Equal(t, "Invalid project member. Employee does not exist.", members.Items[0].Message)
		assert.Equal(t, composite.StatusSuccess, members.Items[1].Status)
		assert.Equal(t, composite.StatusSuccess, report[project.SectionDetails].Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid manager rejects the whole request", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().ExistsCode(ctx, "SR-001-001", uint(0)).Return(false, nil)
		deps.lookups.EXPECT().FindProjectType(ctx, uint(1)).Return(&lookup.ProjectType{ID: 1}, nil)
		deps.clients.EXPECT().FindByID(ctx, uint(4)).Return(&clientpkg.Row{}, nil)
		deps.users.EXPECT().FindByEmpID(ctx, "68001").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.SubmitAll(ctx, submitReq())

		assert.Equal(t, "Invalid project manager. Employee does not exist.", apperror.ToHTTP(err).Message)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate project code", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().ExistsCode(ctx, "SR-001-001", uint(0)).Return(true, nil)

		_, err := deps.service.SubmitAll(ctx, submitReq())

		assert.Equal(t, http.StatusConflict, apperror.ToHTTP(err).Status)
		assert.Equal(t, "Project code 'SR-001-001' already exists. Please use a unique code.", apperror.ToHTTP(err).Message)
	})

	t.Run("unexpected section error aborts everything", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		expectSavepoint(deps.sqlMock, project.SectionDuration, true)
		expectSavepoint(deps.sqlMock, project.SectionBill, false)
		deps.sqlMock.ExpectRollback()

		expectDetails(ctx, deps)
		deps.repo.EXPECT().CreateDuration(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().CreateBill(ctx, gomock.Any()).Return(errors.New("connection reset"))

		_, err := deps.service.SubmitAll(ctx, submitReq())

		assert.Error(t, err)
		assert.False(t, apperror.IsClassified(err))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func strPtr(s string) *string { return &s }

func TestProjectService_UpdateDuration(t *testing.T) {
	ctx := context.Background()
	sign, _ := dateutil.ParseDate("d", "2025-01-01")
	end, _ := dateutil.ParseDate("d", "2025-06-30")
	current := func() *project.Duration {
		return &project.Duration{ID: 2, ProjectID: 7, NumberOfPeriods: 2, ProjectDuration: 6, ProjectSignDate: sign, ProjectEndDate: end}
	}

	t.Run("absent fields are kept", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().FindDuration(ctx, uint(7)).Return(current(), nil)
		deps.repo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, row any) error {
			d := row.(*project.Duration)
			assert.Equal(t, 8, d.ProjectDuration)
			assert.Equal(t, 2, d.NumberOfPeriods)
			return nil
		})

		resp, err := deps.service.UpdateDuration(ctx, 7, project.DurationPatch{
			ProjectDuration: patch.Of(8),
			ProjectEndDate:  patch.Of("2025-08-31"),
		})

		require.NoError(t, err)
		assert.Equal(t, "2025-01-01", resp.ProjectSignDate)
		assert.Equal(t, "2025-08-31", resp.ProjectEndDate)
	})

	t.Run("end before sign", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().FindDuration(ctx, uint(7)).Return(current(), nil)

		_, err := deps.service.UpdateDuration(ctx, 7, project.DurationPatch{ProjectEndDate: patch.Of("2024-12-31")})

		assert.True(t, errors.Is(err, projecterrors.ErrInvalidDateRange))
	})

	t.Run("missing duration", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().FindDuration(ctx, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.UpdateDuration(ctx, 9, project.DurationPatch{})

		assert.True(t, errors.Is(err, projecterrors.ErrDurationNotFound))
	})
}

func TestProjectService_UpdateDetails_ChecksOnlyChangedReferences(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().FindProject(ctx, uint(7)).Return(&project.Project{
		ID: 7, ProjectType: 1, ProjectCode: "SR-001-001", ProjectName: "POS rollout",
		ProjectContractNo: "C-1", ProjectClient: 4, ProjectManager: "68001", ColorMark: "#fff",
	}, nil)
	deps.users.EXPECT().FindByEmpID(ctx, "68003").Return(&user.User{EmpID: "68003"}, nil)
	deps.repo.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	resp, err := deps.service.UpdateDetails(ctx, 7, project.DetailsPatch{
		ProjectManager: patch.Of("68003"),
		ProjectDetails: patch.Null[string](),
	})

	require.NoError(t, err)
	assert.Equal(t, "68003", resp.ProjectManager)
	assert.Equal(t, "SR-001-001", resp.ProjectCode)
	assert.Nil(t, resp.ProjectDetails)
}

func TestProjectService_UpdateMember(t *testing.T) {
	ctx := context.Background()

	t.Run("not a member", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().FindMember(ctx, uint(7), "68009").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.UpdateMember(ctx, 7, "68009", project.MemberPatch{})

		assert.True(t, errors.Is(err, projecterrors.ErrMemberNotFound))
	})

	t.Run("new position must exist", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().FindMember(ctx, uint(7), "68002").Return(&project.Member{ProjectID: 7, MemberID: "68002", PositionID: 3}, nil)
		deps.lookups.EXPECT().Exists(ctx, lookup.KindPositions, uint(8)).Return(false, nil)

		_, err := deps.service.UpdateMember(ctx, 7, "68002", project.MemberPatch{PositionID: patch.Of(uint(8))})

		assert.True(t, errors.Is(err, projecterrors.ErrPositionNotFound))
	})
}

func TestProjectService_AddMember_UnknownProject(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	expectTx(t, deps.sqlMock, false)
	deps.repo.EXPECT().FindProject(ctx, uint(3)).Return(nil, gorm.ErrRecordNotFound)

	_, err := deps.service.AddMember(ctx, 3, project.MemberInput{MemberID: "68002"})

	assert.True(t, errors.Is(err, projecterrors.ErrProjectNotFound))
}

func TestProjectService_GetAssigned(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	d1, _ := dateutil.ParseDate("d", "2025-03-31")
	deps.repo.EXPECT().Assigned(ctx, "68002").Return([]project.Project{
		{ID: 7, ProjectCode: "SR-001-001", ProjectName: "POS rollout"},
		{ID: 9, ProjectCode: "SR-001-002", ProjectName: "Support"},
	}, nil)
	deps.repo.EXPECT().ListPlans(ctx, []uint{7, 9}).Return([]project.Plan{
		{ID: 11, ProjectID: 7, PeriodNo: 1, DeliDate: d1},
	}, nil)

	out, err := deps.service.GetAssigned(ctx, "68002")

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, []project.AssignedPeriod{{ID: 11, PeriodNo: 1, DeliDate: "2025-03-31"}}, out[0].Periods)
	assert.Empty(t, out[1].Periods)
	assert.NotNil(t, out[1].Periods)
}

func TestProjectService_GetByID(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	deps.repo.EXPECT().FindDetail(ctx, uint(7)).Return(&project.DetailRow{
		Project:         project.Project{ID: 7, ProjectCode: "SR-001-001"},
		ProjectTypeName: "Software",
		ClientName:      "Siam Retail",
	}, nil)
	deps.repo.EXPECT().FindDuration(ctx, uint(7)).Return(nil, gorm.ErrRecordNotFound)
	deps.repo.EXPECT().FindBill(ctx, uint(7)).Return(&project.Bill{ProjectID: 7, Billable: true}, nil)
	deps.repo.EXPECT().ListPlans(ctx, []uint{7}).Return(nil, nil)
	deps.repo.EXPECT().ListMembers(ctx, uint(7)).Return([]project.MemberRow{{Member: project.Member{MemberID: "68002"}}}, nil)

	d, err := deps.service.GetByID(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, "Siam Retail", d.ProjectDetails.ClientName)
	assert.Nil(t, d.ProjectDuration)
	assert.True(t, d.ProjectBill.Billable)
	assert.Empty(t, d.ProjectPlan)
	assert.Len(t, d.ProjectMember, 1)

	deps.repo.EXPECT().FindDetail(ctx, uint(8)).Return(nil, gorm.ErrRecordNotFound)
	_, err = deps.service.GetByID(ctx, 8)
	assert.True(t, errors.Is(err, projecterrors.ErrProjectNotFound))
}
