package employee

import (
	"context"
	"database/sql"
	"strings"
	"time"

	employeeerrors "go-hrfine/internal/employee/errors"
	"go-hrfine/internal/lookup"
	"go-hrfine/internal/shared/apperror"
	"go-hrfine/internal/shared/composite"
	"go-hrfine/internal/shared/contextutil"
	"go-hrfine/internal/shared/dberr"
	"go-hrfine/internal/user"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

var validate = validator.New()

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	SubmitAll(ctx context.Context, req SubmitAllRequest) (composite.Report, error)
	GetAll(ctx context.Context, q string) ([]EmployeeSummary, error)
	GetManagers(ctx context.Context) ([]ManagerOption, error)
	GetByEmpID(ctx context.Context, empID string) (*EmployeeDetail, error)
	UpdatePersonalInfo(ctx context.Context, empID string, req PersonalInfoPatch) (*PersonalInfoResponse, error)
	UpdateAddressInfo(ctx context.Context, empID string, req AddressPatch) (*AddressResponse, error)
	UpdateRegistrationAddress(ctx context.Context, empID string, req AddressPatch) (*AddressResponse, error)
	UpdateContactInfo(ctx context.Context, empID string, req ContactInfoPatch) (*ContactInfoResponse, error)
	UpdateHiringInfo(ctx context.Context, empID string, req HiringInfoPatch) (*HiringInfoResponse, error)
	UpdatePaymentInfo(ctx context.Context, empID string, req PaymentInfoPatch) (*PaymentInfoResponse, error)
	UpdateDeductionInfo(ctx context.Context, empID string, req DeductionInfoPatch) (*DeductionInfoResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	users   user.Repository
	lookups lookup.Repository
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	users user.Repository,
	lookups lookup.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		users:   users,
		lookups: lookups,
		logger:  l,
	}
}

func mapUserError(err error) error {
	if dberr.IsNotFound(err) {
		return employeeerrors.ErrEmployeeNotFound
	}
	return err
}

// sectionStep describes one dependent insert of a submit-all request.
type sectionStep struct {
	model Section
	build func(ctx context.Context, tx *sql.Tx) (Section, error)
	view  func(Section) any
}

func (s *service) SubmitAll(ctx context.Context, req SubmitAllRequest) (composite.Report, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	empID := strings.TrimSpace(req.EmpID)

	u, err := s.users.FindByEmpID(ctx, empID)
	if err != nil {
		return nil, mapUserError(err)
	}

	steps := []sectionStep{}
	add := func(provided bool, step sectionStep) {
		if provided {
			steps = append(steps, step)
		}
	}

	ui, hi, pi := req.UserInfo, req.HiringInfo, req.PaymentInfo
	add(ui.PersonalInfo != nil, sectionStep{
		model: &PersonalInfo{},
		build: func(context.Context, *sql.Tx) (Section, error) { return ui.PersonalInfo.toEntity(empID) },
		view:  func(r Section) any { return ToPersonalInfoResponse(r.(*PersonalInfo)) },
	})
	add(ui.AddressInfo != nil, sectionStep{
		model: &AddressInfo{},
		build: func(context.Context, *sql.Tx) (Section, error) {
			return &AddressInfo{EmpID: empID, Address: ui.AddressInfo.toAddress()}, nil
		},
		view: func(r Section) any { return ToAddressInfoResponse(r.(*AddressInfo)) },
	})
	add(ui.RegistrationAddress != nil, sectionStep{
		model: &RegistrationAddress{},
		build: func(context.Context, *sql.Tx) (Section, error) {
			return &RegistrationAddress{EmpID: empID, Address: ui.RegistrationAddress.toAddress()}, nil
		},
		view: func(r Section) any { return ToRegistrationAddressResponse(r.(*RegistrationAddress)) },
	})
	add(ui.ContactInfo != nil, sectionStep{
		model: &ContactInfo{},
		build: func(context.Context, *sql.Tx) (Section, error) {
			return &ContactInfo{EmpID: empID, Email: u.Email, Tel: ui.ContactInfo.Tel, LineID: ui.ContactInfo.LineID}, nil
		},
		view: func(r Section) any { return ToContactInfoResponse(r.(*ContactInfo)) },
	})
	add(hi.HiringInfo != nil, sectionStep{
		model: &HiringInfo{},
		build: func(ctx context.Context, tx *sql.Tx) (Section, error) {
			h, err := hi.HiringInfo.toEntity(empID)
			if err != nil {
				return nil, err
			}
			if err := s.validateHiring(ctx, tx, h); err != nil {
				return nil, err
			}
			return h, nil
		},
		view: func(r Section) any { return ToHiringInfoResponse(r.(*HiringInfo)) },
	})
	add(pi.PaymentInfo != nil, sectionStep{
		model: &PaymentInfo{},
		build: func(context.Context, *sql.Tx) (Section, error) { return pi.PaymentInfo.toEntity(empID), nil },
		view:  func(r Section) any { return ToPaymentInfoResponse(r.(*PaymentInfo)) },
	})
	add(pi.DeductionInfo != nil, sectionStep{
		model: &DeductionInfo{},
		build: func(context.Context, *sql.Tx) (Section, error) { return pi.DeductionInfo.toEntity(empID) },
		view:  func(r Section) any { return ToDeductionInfoResponse(r.(*DeductionInfo)) },
	})

	report := composite.Report{}
	for _, step := range steps {
		report[step.model.SectionName()] = s.runSection(ctx, l, empID, step)
	}

	l.Info("employee submit-all processed",
		zap.String("emp_id", empID),
		zap.Int("sections", len(report)),
		zap.Bool("partial", report.Failed()),
	)
	return report, nil
}

// runSection inserts one section in its own transaction. A section failure
// never touches sections that already committed.
func (s *service) runSection(ctx context.Context, l *zap.Logger, empID string, step sectionStep) composite.Result {
	name := step.model.SectionName()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.sectionFailure(l, name, err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.Exists(ctx, step.model, empID)
	if err != nil {
		return s.sectionFailure(l, name, err)
	}
	if exists {
		return composite.Skip(sectionLabel(name) + " already exists")
	}

	rec, err := step.build(ctx, tx)
	if err != nil {
		return s.sectionFailure(l, name, err)
	}
	if err := qtx.Create(ctx, rec); err != nil {
		return s.sectionFailure(l, name, mapRepositoryError(name, err))
	}
	if err := tx.Commit(); err != nil {
		return s.sectionFailure(l, name, err)
	}
	return composite.Success(step.view(rec))
}

func (s *service) sectionFailure(l *zap.Logger, section string, err error) composite.Result {
	if apperror.IsClassified(err) {
		return composite.Failure(apperror.ToHTTP(err).Message)
	}
	l.Error("employee section failed", zap.String("section", section), zap.Error(err))
	return composite.Failure(apperror.ErrInternal.Message)
}

func after(d *datatypes.Date, start datatypes.Date) bool {
	return d == nil || !time.Time(*d).Before(time.Time(start))
}

// validateHiring checks dates and every foreign reference of a hiring record.
func (s *service) validateHiring(ctx context.Context, tx *sql.Tx, h *HiringInfo) error {
	if !after(h.ProbationDate, h.StartDate) {
		return employeeerrors.ErrInvalidDateRange.Withf("probation_date must not be earlier than start_date")
	}
	if !after(h.TerminateDate, h.StartDate) {
		return employeeerrors.ErrInvalidDateRange.Withf("terminate_date must not be earlier than start_date")
	}

	lk := s.lookups.WithTx(tx)
	refs := []struct {
		kind lookup.Kind
		id   uint
	}{
		{lookup.KindCompanies, h.CompanyID},
		{lookup.KindEmployeeTypes, h.EmployeeTypeID},
		{lookup.KindContractTypes, h.ContractTypeID},
		{lookup.KindWorkingStatuses, h.WorkingStatusID},
		{lookup.KindDepartments, h.DepartmentID},
	}
	for _, ref := range refs {
		ok, err := lk.Exists(ctx, ref.kind, ref.id)
		if err != nil {
			return err
		}
		if !ok {
			return employeeerrors.ErrLookupNotFound.Withf("%s not found", ref.kind.Label())
		}
	}

	pos, err := lk.FindPosition(ctx, h.PositionID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return employeeerrors.ErrLookupNotFound.Withf("%s not found", lookup.KindPositions.Label())
		}
		return err
	}
	if pos.DepartmentID != h.DepartmentID {
		return employeeerrors.ErrPositionNotInDepartment
	}

	if h.Manager != nil {
		if *h.Manager == h.EmpID {
			return employeeerrors.ErrSelfManaged
		}
		if _, err := s.users.WithTx(tx).FindByEmpID(ctx, *h.Manager); err != nil {
			if dberr.IsNotFound(err) {
				return employeeerrors.ErrInvalidManager
			}
			return err
		}
	}
	return nil
}

func (s *service) GetAll(ctx context.Context, q string) ([]EmployeeSummary, error) {
	rows, err := s.repo.List(ctx, q)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list employees failed", zap.Error(err))
		return nil, err
	}
	out := make([]EmployeeSummary, len(rows))
	for i, r := range rows {
		out[i] = r.toSummary()
	}
	return out, nil
}

func (s *service) GetManagers(ctx context.Context) ([]ManagerOption, error) {
	managers, err := s.repo.Managers(ctx)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list managers failed", zap.Error(err))
		return nil, err
	}
	if managers == nil {
		managers = []ManagerOption{}
	}
	return managers, nil
}

// load reads one optional section; a missing row is reported as nil.
func load[T any, PT interface {
	*T
	Section
}](ctx context.Context, repo Repository, empID string) (PT, error) {
	rec := PT(new(T))
	if err := repo.Find(ctx, empID, rec); err != nil {
		if dberr.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (s *service) GetByEmpID(ctx context.Context, empID string) (*EmployeeDetail, error) {
	u, err := s.users.FindByEmpID(ctx, empID)
	if err != nil {
		return nil, mapUserError(err)
	}
	d := &EmployeeDetail{EmpID: u.EmpID, Email: u.Email, Role: u.Role}

	personal, err := load[PersonalInfo](ctx, s.repo, empID)
	if err != nil {
		return nil, err
	}
	address, err := load[AddressInfo](ctx, s.repo, empID)
	if err != nil {
		return nil, err
	}
	registration, err := load[RegistrationAddress](ctx, s.repo, empID)
	if err != nil {
		return nil, err
	}
	contact, err := load[ContactInfo](ctx, s.repo, empID)
	if err != nil {
		return nil, err
	}
	hiring, err := load[HiringInfo](ctx, s.repo, empID)
	if err != nil {
		return nil, err
	}
	payment, err := load[PaymentInfo](ctx, s.repo, empID)
	if err != nil {
		return nil, err
	}
	deduction, err := load[DeductionInfo](ctx, s.repo, empID)
	if err != nil {
		return nil, err
	}

	d.PersonalInfo = ToPersonalInfoResponse(personal)
	d.AddressInfo = ToAddressInfoResponse(address)
	d.RegistrationAddress = ToRegistrationAddressResponse(registration)
	d.ContactInfo = ToContactInfoResponse(contact)
	d.HiringInfo = ToHiringInfoResponse(hiring)
	d.PaymentInfo = ToPaymentInfoResponse(payment)
	d.DeductionInfo = ToDeductionInfoResponse(deduction)
	return d, nil
}

// update loads the section for empID, lets apply mutate it and writes it
// back, all in one transaction.
func update[T any, PT interface {
	*T
	Section
}, R any](
	ctx context.Context,
	s *service,
	empID string,
	apply func(ctx context.Context, tx *sql.Tx, u *user.User, rec PT) error,
	view func(PT) R,
) (R, error) {
	var zero R
	l := contextutil.GetLogger(ctx, s.logger)
	rec := PT(new(T))
	section := rec.SectionName()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("update employee begin tx failed", zap.Error(err))
		return zero, err
	}
	defer tx.Rollback()

	u, err := s.users.WithTx(tx).FindByEmpID(ctx, empID)
	if err != nil {
		return zero, mapUserError(err)
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.Find(ctx, empID, rec); err != nil {
		return zero, mapRepositoryError(section, err)
	}
	if err := apply(ctx, tx, u, rec); err != nil {
		return zero, err
	}
	if err := qtx.Save(ctx, rec); err != nil {
		l.Error("update employee section failed", zap.String("section", section), zap.Error(err))
		return zero, mapRepositoryError(section, err)
	}

	if err := tx.Commit(); err != nil {
		l.Error("update employee commit failed", zap.Error(err))
		return zero, err
	}

	l.Info("employee section updated", zap.String("emp_id", empID), zap.String("section", section))
	return view(rec), nil
}

func (s *service) UpdatePersonalInfo(ctx context.Context, empID string, req PersonalInfoPatch) (*PersonalInfoResponse, error) {
	return update(ctx, s, empID, func(_ context.Context, _ *sql.Tx, _ *user.User, rec *PersonalInfo) error {
		return req.apply(rec)
	}, ToPersonalInfoResponse)
}

func (s *service) UpdateAddressInfo(ctx context.Context, empID string, req AddressPatch) (*AddressResponse, error) {
	return update(ctx, s, empID, func(_ context.Context, _ *sql.Tx, _ *user.User, rec *AddressInfo) error {
		return req.apply(&rec.Address)
	}, ToAddressInfoResponse)
}

func (s *service) UpdateRegistrationAddress(ctx context.Context, empID string, req AddressPatch) (*AddressResponse, error) {
	return update(ctx, s, empID, func(_ context.Context, _ *sql.Tx, _ *user.User, rec *RegistrationAddress) error {
		return req.apply(&rec.Address)
	}, ToRegistrationAddressResponse)
}

// UpdateContactInfo keeps users.email and contact_infos.email in step.
func (s *service) UpdateContactInfo(ctx context.Context, empID string, req ContactInfoPatch) (*ContactInfoResponse, error) {
	return update(ctx, s, empID, func(ctx context.Context, tx *sql.Tx, u *user.User, rec *ContactInfo) error {
		if err := req.apply(rec); err != nil {
			return err
		}
		if !req.Email.Present {
			return nil
		}
		if req.Email.Value == nil {
			return apperror.Invalid("email cannot be null")
		}
		email := strings.TrimSpace(*req.Email.Value)
		if validate.Var(email, "required,email") != nil {
			return employeeerrors.ErrInvalidEmail
		}
		if email == u.Email {
			rec.Email = email
			return nil
		}
		if err := s.users.WithTx(tx).UpdateEmail(ctx, u.ID, email); err != nil {
			if dberr.IsUniqueViolation(err) {
				return employeeerrors.ErrEmailAlreadyExists
			}
			return err
		}
		rec.Email = email
		return nil
	}, ToContactInfoResponse)
}

func (s *service) UpdateHiringInfo(ctx context.Context, empID string, req HiringInfoPatch) (*HiringInfoResponse, error) {
	return update(ctx, s, empID, func(ctx context.Context, tx *sql.Tx, _ *user.User, rec *HiringInfo) error {
		if err := req.apply(rec); err != nil {
			return err
		}
		return s.validateHiring(ctx, tx, rec)
	}, ToHiringInfoResponse)
}

func (s *service) UpdatePaymentInfo(ctx context.Context, empID string, req PaymentInfoPatch) (*PaymentInfoResponse, error) {
	return update(ctx, s, empID, func(_ context.Context, _ *sql.Tx, _ *user.User, rec *PaymentInfo) error {
		return req.apply(rec)
	}, ToPaymentInfoResponse)
}

func (s *service) UpdateDeductionInfo(ctx context.Context, empID string, req DeductionInfoPatch) (*DeductionInfoResponse, error) {
	return update(ctx, s, empID, func(_ context.Context, _ *sql.Tx, _ *user.User, rec *DeductionInfo) error {
		return req.apply(rec)
	}, ToDeductionInfoResponse)
}
