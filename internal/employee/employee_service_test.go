package employee_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go-hrfine/internal/employee"
	employeeerrors "go-hrfine/internal/employee/errors"
	employeeMock "go-hrfine/internal/employee/mock"
	"go-hrfine/internal/lookup"
	lookupMock "go-hrfine/internal/lookup/mock"
	"go-hrfine/internal/shared/apperror"
	"go-hrfine/internal/shared/composite"
	"go-hrfine/internal/shared/patch"
	"go-hrfine/internal/user"
	userMock "go-hrfine/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock sqlmock.Sqlmock
	repo    *employeeMock.MockRepository
	users   *userMock.MockRepository
	lookups *lookupMock.MockRepository
	service employee.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	deps := &serviceDeps{
		sqlMock: sqlMock,
		repo:    employeeMock.NewMockRepository(ctrl),
		users:   userMock.NewMockRepository(ctrl),
		lookups: lookupMock.NewMockRepository(ctrl),
	}
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).AnyTimes()
	deps.users.EXPECT().WithTx(gomock.Any()).Return(deps.users).AnyTimes()
	deps.lookups.EXPECT().WithTx(gomock.Any()).Return(deps.lookups).AnyTimes()
	deps.service = employee.NewService(db, deps.repo, deps.users, deps.lookups)
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

func strPtr(s string) *string { return &s }

func date(s string) datatypes.Date {
	t, _ := time.Parse("2006-01-02", s)
	return datatypes.Date(t)
}

func personalInput() *employee.PersonalInfoInput {
	return &employee.PersonalInfoInput{
		NationID:     "1103700012345",
		ThaiName:     "มาลี ใจดี",
		EngName:      "Malee Jaidee",
		ThaiNickname: "ลี",
		EngNickname:  "Lee",
		Gender:       "female",
		Nation:       "Thai",
		DateBirth:    strPtr("1995-04-12"),
	}
}

func hiringInput() *employee.HiringInfoInput {
	return &employee.HiringInfoInput{
		StartDate:       "2025-06-01",
		ProbationDate:   strPtr("2025-09-01"),
		WorkingStatusID: 1,
		EmployeeTypeID:  1,
		ContractTypeID:  1,
		CompanyID:       1,
		DepartmentID:    2,
		PositionID:      5,
		Manager:         strPtr("68001"),
	}
}

func TestEmployeeService_SubmitAll(t *testing.T) {
	ctx := context.Background()
	u := &user.User{ID: 7, EmpID: "68007", Email: "malee@hr.test", Role: "employee"}

	t.Run("unknown user fails the whole request", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.users.EXPECT().FindByEmpID(ctx, "68999").Return(nil, gorm.ErrRecordNotFound)

		report, err := deps.service.SubmitAll(ctx, employee.SubmitAllRequest{EmpID: "68999"})

		assert.Nil(t, report)
		assert.True(t, errors.Is(err, employeeerrors.ErrEmployeeNotFound))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("sections succeed, skip and fail independently", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := employee.SubmitAllRequest{
			EmpID: "68007",
			UserInfo: employee.UserInfo{
				PersonalInfo: personalInput(),
				AddressInfo: &employee.AddressInput{
					HouseNo: "99/1", VillageNo: 3, SubDistrict: "Lat Yao", District: "Chatuchak",
					Province: "Bangkok", Zipcode: "10900", Country: "Thailand",
				},
				ContactInfo: &employee.ContactInfoInput{Tel: "0812345678", LineID: "malee"},
			},
			HiringInfo:  employee.HiringGroup{HiringInfo: hiringInput()},
			PaymentInfo: employee.PaymentGroup{PaymentInfo: &employee.PaymentInfoInput{PaymentType: "transfer", Bank: strPtr("KBank")}},
		}

		deps.users.EXPECT().FindByEmpID(ctx, "68007").Return(u, nil)

		// personal_info: created
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().Exists(ctx, gomock.AssignableToTypeOf(&employee.PersonalInfo{}), "68007").Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.AssignableToTypeOf(&employee.PersonalInfo{})).
			DoAndReturn(func(_ context.Context, s employee.Section) error {
				p := s.(*employee.PersonalInfo)
				assert.Equal(t, "68007", p.EmpID)
				assert.Equal(t, "1995-04-12", time.Time(*p.DateBirth).Format("2006-01-02"))
				return nil
			})

		// address_info: already on file
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().Exists(ctx, gomock.AssignableToTypeOf(&employee.AddressInfo{}), "68007").Return(true, nil)

		// contact_info: email comes from the user
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().Exists(ctx, gomock.AssignableToTypeOf(&employee.ContactInfo{}), "68007").Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.AssignableToTypeOf(&employee.ContactInfo{})).
			DoAndReturn(func(_ context.Context, s employee.Section) error {
				assert.Equal(t, "malee@hr.test", s.(*employee.ContactInfo).Email)
				return nil
			})

		// hiring_info: unknown company
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().Exists(ctx, gomock.AssignableToTypeOf(&employee.HiringInfo{}), "68007").Return(false, nil)
		deps.lookups.EXPECT().Exists(ctx, lookup.KindCompanies, uint(1)).Return(false, nil)

		// payment_info: created
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().Exists(ctx, gomock.AssignableToTypeOf(&employee.PaymentInfo{}), "68007").Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.AssignableToTypeOf(&employee.PaymentInfo{})).Return(nil)

		report, err := deps.service.SubmitAll(ctx, req)

		assert.NoError(t, err)
		assert.Len(t, report, 5)
		assert.Equal(t, composite.StatusSuccess, report[employee.SectionPersonalInfo].Status)
		assert.Equal(t, composite.StatusSkip, report[employee.SectionAddressInfo].Status)
		assert.Equal(t, "Address info already exists", report[employee.SectionAddressInfo].Message)
		assert.Equal(t, composite.StatusSuccess, report[employee.SectionContactInfo].Status)
		assert.Equal(t, composite.StatusError, report[employee.SectionHiringInfo].Status)
		assert.Equal(t, "Company not found", report[employee.SectionHiringInfo].Message)
		assert.Equal(t, composite.StatusSuccess, report[employee.SectionPaymentInfo].Status)
		assert.True(t, report.Failed())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unexpected error is reported without detail", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := employee.SubmitAllRequest{EmpID: "68007", UserInfo: employee.UserInfo{PersonalInfo: personalInput()}}

		deps.users.EXPECT().FindByEmpID(ctx, "68007").Return(u, nil)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().Exists(ctx, gomock.Any(), "68007").Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("connection reset"))

		report, err := deps.service.SubmitAll(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, composite.Failure("Internal server error"), report[employee.SectionPersonalInfo])
	})
}

func TestEmployeeService_SubmitAll_HiringValidation(t *testing.T) {
	ctx := context.Background()
	u := &user.User{ID: 7, EmpID: "68007", Email: "malee@hr.test"}

	run := func(t *testing.T, deps *serviceDeps, in *employee.HiringInfoInput) composite.Result {
		t.Helper()
		deps.users.EXPECT().FindByEmpID(ctx, "68007").Return(u, nil)
		deps.repo.EXPECT().Exists(ctx, gomock.Any(), "68007").Return(false, nil)
		report, err := deps.service.SubmitAll(ctx, employee.SubmitAllRequest{
			EmpID:      "68007",
			HiringInfo: employee.HiringGroup{HiringInfo: in},
		})
		assert.NoError(t, err)
		return report[employee.SectionHiringInfo]
	}

	expectLookups := func(deps *serviceDeps) {
		deps.lookups.EXPECT().Exists(ctx, gomock.Any(), gomock.Any()).Return(true, nil).Times(5)
	}

	t.Run("probation before start", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		in := hiringInput()
		in.ProbationDate = strPtr("2025-01-01")

		res := run(t, deps, in)
		assert.Equal(t, "probation_date must not be earlier than start_date", res.Message)
	})

	t.Run("position from another department", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		expectLookups(deps)
		deps.lookups.EXPECT().FindPosition(ctx, uint(5)).Return(&lookup.Position{ID: 5, DepartmentID: 9}, nil)

		res := run(t, deps, hiringInput())
		assert.Equal(t, employeeerrors.ErrPositionNotInDepartment.Message, res.Message)
	})

	t.Run("unknown manager", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		expectLookups(deps)
		deps.lookups.EXPECT().FindPosition(ctx, uint(5)).Return(&lookup.Position{ID: 5, DepartmentID: 2}, nil)
		deps.users.EXPECT().FindByEmpID(ctx, "68001").Return(nil, gorm.ErrRecordNotFound)

		res := run(t, deps, hiringInput())
		assert.Equal(t, "Invalid manager. Employee does not exist.", res.Message)
	})

	t.Run("valid hiring info is stored", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		expectLookups(deps)
		deps.lookups.EXPECT().FindPosition(ctx, uint(5)).Return(&lookup.Position{ID: 5, DepartmentID: 2}, nil)
		deps.users.EXPECT().FindByEmpID(ctx, "68001").Return(&user.User{ID: 1, EmpID: "68001"}, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		res := run(t, deps, hiringInput())
		assert.Equal(t, composite.StatusSuccess, res.Status)
		data := res.Data.(*employee.HiringInfoResponse)
		assert.Equal(t, "2025-06-01", data.StartDate)
		assert.Equal(t, "68001", *data.Manager)
	})
}

func TestEmployeeService_UpdatePaymentInfo(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	deps.users.EXPECT().FindByEmpID(ctx, "68007").Return(&user.User{ID: 7, EmpID: "68007"}, nil)
	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().Find(ctx, "68007", gomock.AssignableToTypeOf(&employee.PaymentInfo{})).
		DoAndReturn(func(_ context.Context, _ string, dst employee.Section) error {
			*dst.(*employee.PaymentInfo) = employee.PaymentInfo{
				ID: 3, EmpID: "68007", PaymentType: "transfer",
				AccountNo: strPtr("123-4-56789-0"), Bank: strPtr("SCB"), AccountName: strPtr("Malee"),
			}
			return nil
		})
	deps.repo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s employee.Section) error {
		p := s.(*employee.PaymentInfo)
		assert.Equal(t, "X", *p.Bank)
		assert.Equal(t, "transfer", p.PaymentType)
		assert.Equal(t, "123-4-56789-0", *p.AccountNo)
		assert.Nil(t, p.AccountName)
		return nil
	})

	resp, err := deps.service.UpdatePaymentInfo(ctx, "68007", employee.PaymentInfoPatch{
		Bank:        patch.Of("X"),
		AccountName: patch.Null[string](),
	})

	assert.NoError(t, err)
	assert.Equal(t, "X", *resp.Bank)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_UpdateSection_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("section missing", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.users.EXPECT().FindByEmpID(ctx, "68007").Return(&user.User{ID: 7, EmpID: "68007"}, nil)
		deps.repo.EXPECT().Find(ctx, "68007", gomock.Any()).Return(gorm.ErrRecordNotFound)

		_, err := deps.service.UpdateDeductionInfo(ctx, "68007", employee.DeductionInfoPatch{Fee: patch.Of(10.0)})

		assert.True(t, errors.Is(err, employeeerrors.ErrSectionNotFound))
		assert.Equal(t, "Deduction info not found for this employee", apperror.ToHTTP(err).Message)
	})

	t.Run("null on required column", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.users.EXPECT().FindByEmpID(ctx, "68007").Return(&user.User{ID: 7, EmpID: "68007"}, nil)
		deps.repo.EXPECT().Find(ctx, "68007", gomock.Any()).Return(nil)

		_, err := deps.service.UpdatePersonalInfo(ctx, "68007", employee.PersonalInfoPatch{ThaiName: patch.Null[string]()})

		assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status)
		assert.Equal(t, "thai_name is required", apperror.ToHTTP(err).Message)
	})

	t.Run("percentage out of range", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.users.EXPECT().FindByEmpID(ctx, "68007").Return(&user.User{ID: 7, EmpID: "68007"}, nil)
		deps.repo.EXPECT().Find(ctx, "68007", gomock.Any()).Return(nil)

		_, err := deps.service.UpdateDeductionInfo(ctx, "68007", employee.DeductionInfoPatch{OtherPercentage: patch.Of(120.0)})

		assert.Equal(t, "other_percentage must be between 0 and 100", apperror.ToHTTP(err).Message)
	})
}

func TestEmployeeService_UpdateContactInfo(t *testing.T) {
	ctx := context.Background()
	u := &user.User{ID: 7, EmpID: "68007", Email: "malee@hr.test"}
	loadContact := func(_ context.Context, _ string, dst employee.Section) error {
		*dst.(*employee.ContactInfo) = employee.ContactInfo{ID: 1, EmpID: "68007", Email: "malee@hr.test", Tel: "0811111111", LineID: "malee"}
		return nil
	}

	t.Run("email change updates the user too", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		deps.users.EXPECT().FindByEmpID(ctx, "68007").Return(u, nil)
		deps.repo.EXPECT().Find(ctx, "68007", gomock.Any()).DoAndReturn(loadContact)
		deps.users.EXPECT().UpdateEmail(ctx, uint(7), "malee.j@hr.test").Return(nil)
		deps.repo.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.UpdateContactInfo(ctx, "68007", employee.ContactInfoPatch{Email: patch.Of(" malee.j@hr.test ")})

		assert.NoError(t, err)
		assert.Equal(t, "malee.j@hr.test", resp.Email)
		assert.Equal(t, "0811111111", resp.Tel)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.users.EXPECT().FindByEmpID(ctx, "68007").Return(u, nil)
		deps.repo.EXPECT().Find(ctx, "68007", gomock.Any()).DoAndReturn(loadContact)
		deps.users.EXPECT().UpdateEmail(ctx, uint(7), "hr@hr.test").
			Return(errors.New("UNIQUE constraint failed: users.email"))

		_, err := deps.service.UpdateContactInfo(ctx, "68007", employee.ContactInfoPatch{Email: patch.Of("hr@hr.test")})

		assert.Equal(t, http.StatusConflict, apperror.ToHTTP(err).Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid email", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.users.EXPECT().FindByEmpID(ctx, "68007").Return(u, nil)
		deps.repo.EXPECT().Find(ctx, "68007", gomock.Any()).DoAndReturn(loadContact)

		_, err := deps.service.UpdateContactInfo(ctx, "68007", employee.ContactInfoPatch{Email: patch.Of("not-an-email")})

		assert.True(t, errors.Is(err, employeeerrors.ErrInvalidEmail))
	})
}

func TestEmployeeService_GetByEmpID(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	deps.users.EXPECT().FindByEmpID(ctx, "68007").Return(&user.User{ID: 7, EmpID: "68007", Email: "malee@hr.test", Role: "hr"}, nil)
	deps.repo.EXPECT().Find(ctx, "68007", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, dst employee.Section) error {
		switch rec := dst.(type) {
		case *employee.PersonalInfo:
			*rec = employee.PersonalInfo{EmpID: "68007", EngName: "Malee Jaidee"}
			return nil
		case *employee.HiringInfo:
			*rec = employee.HiringInfo{EmpID: "68007", StartDate: date("2025-06-01"), DepartmentID: 2, PositionID: 5}
			return nil
		}
		return gorm.ErrRecordNotFound
	}).Times(7)

	d, err := deps.service.GetByEmpID(ctx, "68007")

	assert.NoError(t, err)
	assert.Equal(t, "hr", d.Role)
	assert.Equal(t, "Malee Jaidee", d.PersonalInfo.EngName)
	assert.Equal(t, "2025-06-01", d.HiringInfo.StartDate)
	assert.Nil(t, d.AddressInfo)
	assert.Nil(t, d.ContactInfo)
	assert.Nil(t, d.DeductionInfo)
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	deps.repo.EXPECT().List(ctx, "malee").Return([]employee.SummaryRow{
		{EmpID: "68007", Email: "malee@hr.test", Role: "employee", EngName: strPtr("Malee"), StartDate: &start},
		{EmpID: "68008", Email: "somchai@hr.test", Role: "employee"},
	}, nil)

	got, err := deps.service.GetAll(ctx, "malee")

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "2025-06-01", *got[0].StartDate)
	assert.Nil(t, got[1].StartDate)
}
