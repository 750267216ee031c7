package project

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"go-hrfine/internal/client"
	"go-hrfine/internal/employee"
	"go-hrfine/internal/lookup"
	projecterrors "go-hrfine/internal/project/errors"
	"go-hrfine/internal/shared/apperror"
	"go-hrfine/internal/shared/codegen"
	"go-hrfine/internal/shared/composite"
	"go-hrfine/internal/shared/contextutil"
	"go-hrfine/internal/shared/dateutil"
	"go-hrfine/internal/shared/dberr"
	"go-hrfine/internal/shared/dbtx"
	"go-hrfine/internal/user"

	"go.uber.org/zap"
)

//go:generate mockgen -source=project_service.go -destination=mock/project_service_mock.go -package=mock
type Service interface {
	GenerateCode(ctx context.Context, req GenerateCodeRequest) (*GenerateCodeResponse, error)
	SubmitAll(ctx context.Context, req SubmitAllRequest) (composite.Report, error)
	GetAll(ctx context.Context, q string) ([]DashboardItem, error)
	GetByID(ctx context.Context, id uint) (*ProjectDetail, error)
	GetAssigned(ctx context.Context, empID string) ([]AssignedProject, error)
	AddMember(ctx context.Context, id uint, req MemberInput) (*MemberResponse, error)
	UpdateDetails(ctx context.Context, id uint, req DetailsPatch) (*DetailsResponse, error)
	UpdateDuration(ctx context.Context, id uint, req DurationPatch) (*DurationResponse, error)
	UpdateBill(ctx context.Context, id uint, req BillPatch) (*BillResponse, error)
	UpdatePlan(ctx context.Context, id, planID uint, req PlanPatch) (*PlanResponse, error)
	UpdateMember(ctx context.Context, id uint, empID string, req MemberPatch) (*MemberResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	clients   client.Repository
	lookups   lookup.Repository
	users     user.Repository
	employees employee.Repository
	clock     dateutil.Clock
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	clients client.Repository,
	lookups lookup.Repository,
	users user.Repository,
	employees employee.Repository,
	clock dateutil.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		clients:   clients,
		lookups:   lookups,
		users:     users,
		employees: employees,
		clock:     clock,
		logger:    l,
	}
}

// GenerateCode suggests the next project code under the client's code. Like
// client codes it reserves nothing; the unique index settles races.
func (s *service) GenerateCode(ctx context.Context, req GenerateCodeRequest) (*GenerateCodeResponse, error) {
	c, err := s.clients.FindByName(ctx, req.ClientName)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, projecterrors.ErrInvalidClient
		}
		return nil, err
	}

	if c.ClientType != req.ProjectType {
		requested := strconv.FormatUint(uint64(req.ProjectType), 10)
		pt, err := s.lookups.FindProjectType(ctx, req.ProjectType)
		switch {
		case err == nil:
			requested = pt.Name
		case !dberr.IsNotFound(err):
			return nil, err
		}
		return nil, projecterrors.ErrProjectTypeMismatch.Withf(
			"Project type mismatch: Client '%s' is associated with '%s', not '%s'.",
			c.ClientName, c.ProjectType, requested,
		)
	}

	prefix := strings.ToUpper(c.ClientCode)
	codes, err := s.repo.CodesWithPrefix(ctx, prefix)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("read project codes failed", zap.Error(err))
		return nil, err
	}
	return &GenerateCodeResponse{ProjectCode: codegen.Next(prefix, codes)}, nil
}

// checkDetails validates the references of p. When prev is set only the
// columns that changed are checked again.
func (s *service) checkDetails(ctx context.Context, tx *sql.Tx, p, prev *Project) error {
	if prev == nil || p.ProjectCode != prev.ProjectCode {
		taken, err := s.repo.WithTx(tx).ExistsCode(ctx, p.ProjectCode, p.ID)
		if err != nil {
			return err
		}
		if taken {
			return projecterrors.ErrProjectCodeExists.Withf(
				"Project code '%s' already exists. Please use a unique code.", p.ProjectCode)
		}
	}

	if prev == nil || p.ProjectType != prev.ProjectType {
		if _, err := s.lookups.WithTx(tx).FindProjectType(ctx, p.ProjectType); err != nil {
			if dberr.IsNotFound(err) {
				return projecterrors.ErrProjectTypeNotFound
			}
			return err
		}
	}

	if prev == nil || p.ProjectClient != prev.ProjectClient {
		if _, err := s.clients.WithTx(tx).FindByID(ctx, p.ProjectClient); err != nil {
			if dberr.IsNotFound(err) {
				return projecterrors.ErrClientNotFound
			}
			return err
		}
	}

	if prev == nil || p.ProjectManager != prev.ProjectManager {
		if _, err := s.users.WithTx(tx).FindByEmpID(ctx, p.ProjectManager); err != nil {
			if dberr.IsNotFound(err) {
				return projecterrors.ErrInvalidManager
			}
			return err
		}
	}
	return nil
}

// SubmitAll creates a project and its dependent sections in one transaction.
// Each dependent section runs under its own savepoint: a rejected section is
// undone and reported while the rest of the request still commits.
func (s *service) SubmitAll(ctx context.Context, req SubmitAllRequest) (composite.Report, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("project submit-all begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p := req.ProjectInfo.ProjectDetails.toEntity()
	if err := s.checkDetails(ctx, tx, p, nil); err != nil {
		return nil, err
	}
	if err := qtx.CreateProject(ctx, p); err != nil {
		l.Error("create project failed", zap.Error(err))
		return nil, mapRepositoryError(SectionDetails, err)
	}

	report := composite.Report{SectionDetails: composite.Success(toDetailsResponse(p))}
	run := func(section string, fn func() (any, error)) error {
		res, err := s.runSection(ctx, tx, section, fn)
		if err != nil {
			return err
		}
		report[section] = res
		return nil
	}

	var duration *Duration
	if in := req.ProjectInfo.ProjectDuration; in != nil {
		err := run(SectionDuration, func() (any, error) {
			d, err := in.toEntity(p.ID)
			if err != nil {
				return nil, err
			}
			if err := qtx.CreateDuration(ctx, d); err != nil {
				return nil, mapRepositoryError(SectionDuration, err)
			}
			duration = d
			return toDurationResponse(d), nil
		})
		if err != nil {
			return nil, err
		}
	}

	if in := req.ProjectInfo.ProjectBill; in != nil {
		err := run(SectionBill, func() (any, error) {
			b := in.toEntity(p.ID)
			if err := qtx.CreateBill(ctx, b); err != nil {
				return nil, mapRepositoryError(SectionBill, err)
			}
			return toBillResponse(b), nil
		})
		if err != nil {
			return nil, err
		}
	}

	if plans := req.ProjectPlanInfo.ProjectPlan; len(plans) > 0 {
		err := run(SectionPlan, func() (any, error) {
			return s.createPlans(ctx, qtx, p.ID, duration, plans)
		})
		if err != nil {
			return nil, err
		}
	}

	if members := req.ProjectMemberInfo.ProjectMember; len(members) > 0 {
		items := make([]composite.Result, 0, len(members))
		for _, in := range members {
			res, err := s.runSection(ctx, tx, SectionMember, func() (any, error) {
				m, err := s.createMember(ctx, tx, p.ID, in)
				if err != nil {
					return nil, err
				}
				return toMemberResponse(m), nil
			})
			if err != nil {
				return nil, err
			}
			items = append(items, res)
		}
		report[SectionMember] = composite.Aggregate(items)
	}

	if err := tx.Commit(); err != nil {
		l.Error("project submit-all commit failed", zap.Error(err))
		return nil, err
	}

	l.Info("project submit-all processed",
		zap.Uint("project_id", p.ID),
		zap.String("project_code", p.ProjectCode),
		zap.Bool("partial", report.Failed()),
	)
	return report, nil
}

// runSection runs fn under a savepoint named after the section. Classified
// errors become a reported failure; anything else is returned and aborts the
// whole request.
func (s *service) runSection(ctx context.Context, tx *sql.Tx, section string, fn func() (any, error)) (composite.Result, error) {
	var data any
	err := dbtx.Savepoint(ctx, tx, section, func() error {
		var err error
		data, err = fn()
		return err
	})
	if err == nil {
		return composite.Success(data), nil
	}
	if apperror.IsClassified(err) {
		return composite.Failure(apperror.ToHTTP(err).Message), nil
	}
	contextutil.GetLogger(ctx, s.logger).Error("project section failed", zap.String("section", section), zap.Error(err))
	return composite.Result{}, err
}

// createPlans writes every period or none. The count must match the duration
// submitted in the same request.
func (s *service) createPlans(ctx context.Context, qtx Repository, projectID uint, d *Duration, inputs []PlanInput) ([]PlanResponse, error) {
	if d == nil {
		return nil, projecterrors.ErrDurationRequired
	}
	if len(inputs) != d.NumberOfPeriods {
		return nil, projecterrors.ErrPlanCountMismatch.Withf(
			"Number of project plans (%d) does not match the number of periods (%d).",
			len(inputs), d.NumberOfPeriods,
		)
	}

	seen := make(map[int]bool, len(inputs))
	plans := make([]Plan, len(inputs))
	for i := range inputs {
		plan, err := inputs[i].toEntity(projectID)
		if err != nil {
			return nil, err
		}
		if seen[plan.PeriodNo] {
			return nil, projecterrors.ErrPeriodExists.Withf("period_no %d is submitted more than once", plan.PeriodNo)
		}
		seen[plan.PeriodNo] = true
		plans[i] = plan
	}

	if err := qtx.CreatePlans(ctx, plans); err != nil {
		return nil, mapRepositoryError(SectionPlan, err)
	}
	return toPlanResponses(plans), nil
}

// memberPosition returns the requested position, or the member's current
// hiring position when none was given.
func (s *service) memberPosition(ctx context.Context, tx *sql.Tx, empID string, requested *uint) (uint, error) {
	if requested != nil {
		ok, err := s.lookups.WithTx(tx).Exists(ctx, lookup.KindPositions, *requested)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, projecterrors.ErrPositionNotFound
		}
		return *requested, nil
	}

	var h employee.HiringInfo
	if err := s.employees.WithTx(tx).Find(ctx, empID, &h); err != nil {
		if dberr.IsNotFound(err) {
			return 0, projecterrors.ErrPositionUnresolved
		}
		return 0, err
	}
	return h.PositionID, nil
}

func (s *service) createMember(ctx context.Context, tx *sql.Tx, projectID uint, in MemberInput) (*Member, error) {
	empID := strings.TrimSpace(in.MemberID)
	if _, err := s.users.WithTx(tx).FindByEmpID(ctx, empID); err != nil {
		if dberr.IsNotFound(err) {
			return nil, projecterrors.ErrInvalidMember
		}
		return nil, err
	}

	positionID, err := s.memberPosition(ctx, tx, empID, in.PositionID)
	if err != nil {
		return nil, err
	}

	m := &Member{
		ProjectID:      projectID,
		MemberID:       empID,
		PositionID:     positionID,
		AssignedDate:   s.clock.Today(),
		AssignedDetail: in.AssignedDetail,
	}
	if d, err := dateutil.ParseDatePtr("assigned_date", in.AssignedDate); err != nil {
		return nil, err
	} else if d != nil {
		m.AssignedDate = *d
	}

	if err := s.repo.WithTx(tx).CreateMember(ctx, m); err != nil {
		return nil, mapRepositoryError(SectionMember, err)
	}
	return m, nil
}

func (s *service) GetAll(ctx context.Context, q string) ([]DashboardItem, error) {
	rows, err := s.repo.Dashboard(ctx, q)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list projects failed", zap.Error(err))
		return nil, err
	}
	out := make([]DashboardItem, len(rows))
	for i := range rows {
		out[i] = toDashboardItem(&rows[i])
	}
	return out, nil
}

// optional turns a missing one-to-one row into nil.
func optional[T any](v *T, err error) (*T, error) {
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*ProjectDetail, error) {
	row, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(SectionDetails, err)
	}
	duration, err := s.repo.FindDuration(ctx, id)
	if duration, err = optional(duration, err); err != nil {
		return nil, err
	}
	bill, err := s.repo.FindBill(ctx, id)
	if bill, err = optional(bill, err); err != nil {
		return nil, err
	}
	plans, err := s.repo.ListPlans(ctx, []uint{id})
	if err != nil {
		return nil, err
	}
	members, err := s.repo.ListMembers(ctx, id)
	if err != nil {
		return nil, err
	}

	d := &ProjectDetail{
		ProjectDetails:  toDetailRowResponse(row),
		ProjectDuration: toDurationResponse(duration),
		ProjectBill:     toBillResponse(bill),
		ProjectPlan:     toPlanResponses(plans),
		ProjectMember:   make([]MemberResponse, len(members)),
	}
	for i := range members {
		d.ProjectMember[i] = toMemberRowResponse(&members[i])
	}
	return d, nil
}

// GetAssigned lists the projects empID manages or works on, with their plan
// periods, for the time stamp form.
func (s *service) GetAssigned(ctx context.Context, empID string) ([]AssignedProject, error) {
	projects, err := s.repo.Assigned(ctx, empID)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list assigned projects failed", zap.Error(err))
		return nil, err
	}

	ids := make([]uint, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	plans, err := s.repo.ListPlans(ctx, ids)
	if err != nil {
		return nil, err
	}
	periods := make(map[uint][]AssignedPeriod, len(projects))
	for _, plan := range plans {
		periods[plan.ProjectID] = append(periods[plan.ProjectID], AssignedPeriod{
			ID:       plan.ID,
			PeriodNo: plan.PeriodNo,
			DeliDate: dateutil.FormatDate(plan.DeliDate),
		})
	}

	out := make([]AssignedProject, len(projects))
	for i, p := range projects {
		out[i] = AssignedProject{
			ID:          p.ID,
			ProjectCode: p.ProjectCode,
			ProjectName: p.ProjectName,
			ColorMark:   p.ColorMark,
			Periods:     periods[p.ID],
		}
		if out[i].Periods == nil {
			out[i].Periods = []AssignedPeriod{}
		}
	}
	return out, nil
}

// edit runs one read-modify-write of a project section in a transaction.
func edit[R any](ctx context.Context, s *service, section string, id uint, fn func(tx *sql.Tx, qtx Repository) (R, error)) (R, error) {
	var zero R
	l := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("update project begin tx failed", zap.Error(err))
		return zero, err
	}
	defer tx.Rollback()

	out, err := fn(tx, s.repo.WithTx(tx))
	if err != nil {
		if !apperror.IsClassified(err) {
			l.Error("update project section failed", zap.String("section", section), zap.Uint("project_id", id), zap.Error(err))
		}
		return zero, err
	}

	if err := tx.Commit(); err != nil {
		l.Error("update project commit failed", zap.Error(err))
		return zero, err
	}

	l.Info("project section updated", zap.Uint("project_id", id), zap.String("section", section))
	return out, nil
}

func (s *service) AddMember(ctx context.Context, id uint, req MemberInput) (*MemberResponse, error) {
	return edit(ctx, s, SectionMember, id, func(tx *sql.Tx, qtx Repository) (*MemberResponse, error) {
		if _, err := qtx.FindProject(ctx, id); err != nil {
			return nil, mapRepositoryError(SectionDetails, err)
		}
		m, err := s.createMember(ctx, tx, id, req)
		if err != nil {
			return nil, err
		}
		resp := toMemberResponse(m)
		return &resp, nil
	})
}

func (s *service) UpdateDetails(ctx context.Context, id uint, req DetailsPatch) (*DetailsResponse, error) {
	return edit(ctx, s, SectionDetails, id, func(tx *sql.Tx, qtx Repository) (*DetailsResponse, error) {
		prev, err := qtx.FindProject(ctx, id)
		if err != nil {
			return nil, mapRepositoryError(SectionDetails, err)
		}
		p := *prev
		if err := req.apply(&p); err != nil {
			return nil, err
		}
		if err := s.checkDetails(ctx, tx, &p, prev); err != nil {
			return nil, err
		}
		if err := qtx.Save(ctx, &p); err != nil {
			return nil, mapRepositoryError(SectionDetails, err)
		}
		resp := toDetailsResponse(&p)
		return &resp, nil
	})
}

func (s *service) UpdateDuration(ctx context.Context, id uint, req DurationPatch) (*DurationResponse, error) {
	return edit(ctx, s, SectionDuration, id, func(_ *sql.Tx, qtx Repository) (*DurationResponse, error) {
		d, err := qtx.FindDuration(ctx, id)
		if err != nil {
			return nil, mapRepositoryError(SectionDuration, err)
		}
		if err := req.apply(d); err != nil {
			return nil, err
		}
		if err := qtx.Save(ctx, d); err != nil {
			return nil, mapRepositoryError(SectionDuration, err)
		}
		return toDurationResponse(d), nil
	})
}

func (s *service) UpdateBill(ctx context.Context, id uint, req BillPatch) (*BillResponse, error) {
	return edit(ctx, s, SectionBill, id, func(_ *sql.Tx, qtx Repository) (*BillResponse, error) {
		b, err := qtx.FindBill(ctx, id)
		if err != nil {
			return nil, mapRepositoryError(SectionBill, err)
		}
		if err := req.apply(b); err != nil {
			return nil, err
		}
		if err := qtx.Save(ctx, b); err != nil {
			return nil, mapRepositoryError(SectionBill, err)
		}
		return toBillResponse(b), nil
	})
}

func (s *service) UpdatePlan(ctx context.Context, id, planID uint, req PlanPatch) (*PlanResponse, error) {
	return edit(ctx, s, SectionPlan, id, func(_ *sql.Tx, qtx Repository) (*PlanResponse, error) {
		p, err := qtx.FindPlan(ctx, id, planID)
		if err != nil {
			return nil, mapRepositoryError(SectionPlan, err)
		}
		if err := req.apply(p); err != nil {
			return nil, err
		}
		if err := qtx.Save(ctx, p); err != nil {
			return nil, mapRepositoryError(SectionPlan, err)
		}
		resp := toPlanResponse(p)
		return &resp, nil
	})
}

func (s *service) UpdateMember(ctx context.Context, id uint, empID string, req MemberPatch) (*MemberResponse, error) {
	return edit(ctx, s, SectionMember, id, func(tx *sql.Tx, qtx Repository) (*MemberResponse, error) {
		m, err := qtx.FindMember(ctx, id, empID)
		if err != nil {
			return nil, mapRepositoryError(SectionMember, err)
		}
		prevPosition := m.PositionID
		if err := req.apply(m); err != nil {
			return nil, err
		}
		if m.PositionID != prevPosition {
			if _, err := s.memberPosition(ctx, tx, empID, &m.PositionID); err != nil {
				return nil, err
			}
		}
		if err := qtx.Save(ctx, m); err != nil {
			return nil, mapRepositoryError(SectionMember, err)
		}
		resp := toMemberResponse(m)
		return &resp, nil
	})
}
