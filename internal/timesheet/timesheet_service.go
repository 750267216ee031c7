package timesheet

import (
	"context"
	"database/sql"
	"strings"

	"go-hrfine/internal/project"
	"go-hrfine/internal/shared/contextutil"
	"go-hrfine/internal/shared/dateutil"
	"go-hrfine/internal/shared/dberr"
	"go-hrfine/internal/shared/patch"
	timesheeterrors "go-hrfine/internal/timesheet/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=timesheet_service.go -destination=mock/timesheet_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, empID string, req CreateRequest) (*StampResponse, error)
	Update(ctx context.Context, empID string, id uint, req UpdateRequest) (*StampResponse, error)
	Delete(ctx context.Context, empID string, id uint) error
	Week(ctx context.Context, empID, targetDate string) (*WeekResponse, error)
	TotalTime(ctx context.Context, req TotalTimeRequest) (*TotalTimeResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	projects project.Repository
	clock    dateutil.Clock
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	projects project.Repository,
	clock dateutil.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("timesheet.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timesheet.service")
	}
	return &service{db: db, repo: repo, projects: projects, clock: clock, logger: l}
}

// ref is the project and period a stamp points at.
type ref struct {
	projectCode string
	projectName string
	periodNo    *int
}

// resolve checks that the project exists and that the period, when given,
// belongs to it.
func (s *service) resolve(ctx context.Context, projects project.Repository, ts *TimeStamp) (*ref, error) {
	p, err := projects.FindProject(ctx, ts.ProjectID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, timesheeterrors.ErrProjectNotFound
		}
		return nil, err
	}
	out := &ref{projectCode: p.ProjectCode, projectName: p.ProjectName}

	if ts.PeriodID != nil {
		plan, err := projects.FindPlan(ctx, ts.ProjectID, *ts.PeriodID)
		if err != nil {
			if dberr.IsNotFound(err) {
				return nil, timesheeterrors.ErrPeriodNotInProject
			}
			return nil, err
		}
		out.periodNo = &plan.PeriodNo
	}
	return out, nil
}

func (req CreateRequest) toEntity(empID string) (*TimeStamp, error) {
	date, err := dateutil.ParseDate("stamp_date", req.StampDate)
	if err != nil {
		return nil, err
	}
	start, err := dateutil.ParseClock("start_time", req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := dateutil.ParseClock("end_time", req.EndTime)
	if err != nil {
		return nil, err
	}
	return &TimeStamp{
		EmpID:          empID,
		ProjectID:      req.ProjectID,
		PeriodID:       req.PeriodID,
		StampDate:      date,
		StartTime:      start,
		EndTime:        end,
		StampDetails:   req.StampDetails,
		Disbursement:   req.Disbursement,
		OverTime:       req.OverTime,
		TravelExpenses: req.TravelExpenses,
	}, nil
}

func (s *service) Create(ctx context.Context, empID string, req CreateRequest) (*StampResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	if strings.TrimSpace(empID) == "" {
		return nil, timesheeterrors.ErrMissingEmpID
	}

	ts, err := req.toEntity(empID)
	if err != nil {
		return nil, err
	}
	if err := validate(ts, s.clock.Today()); err != nil {
		return nil, err
	}

	r, err := s.resolve(ctx, s.projects, ts)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, ts); err != nil {
		l.Error("create time stamp failed", zap.Error(err))
		return nil, err
	}

	l.Info("time stamp created",
		zap.Uint("id", ts.ID),
		zap.Uint("project_id", ts.ProjectID),
		zap.String("stamp_date", dateutil.FormatDate(ts.StampDate)),
	)
	return toResponse(ts, r), nil
}

func (req UpdateRequest) apply(ts *TimeStamp) error {
	req.StampDetails.ApplyPtr(&ts.StampDetails)
	req.PeriodID.ApplyPtr(&ts.PeriodID)
	return patch.FirstErr(
		req.ProjectID.Apply(&ts.ProjectID, "project_id"),
		patch.Date(req.StampDate, &ts.StampDate, "stamp_date"),
		applyClock(req.StartTime, &ts.StartTime, "start_time"),
		applyClock(req.EndTime, &ts.EndTime, "end_time"),
		req.Disbursement.Apply(&ts.Disbursement, "disbursement"),
		req.OverTime.Apply(&ts.OverTime, "OverTime"),
		req.TravelExpenses.Apply(&ts.TravelExpenses, "travel_expenses"),
	)
}

// owned loads stamp id and checks that empID owns it. A missing stamp is
// reported before ownership is looked at.
func (s *service) owned(ctx context.Context, repo Repository, empID string, id uint, action string) (*TimeStamp, error) {
	if strings.TrimSpace(empID) == "" {
		return nil, timesheeterrors.ErrMissingEmpID
	}
	ts, err := repo.FindByID(ctx, id)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, timesheeterrors.ErrStampNotFound.Withf("TimeStamp with ID %d not found.", id)
		}
		return nil, err
	}
	if ts.EmpID != empID {
		return nil, timesheeterrors.ErrNotOwner.Withf("You are not authorized to %s this timestamp.", action)
	}
	return ts, nil
}

// Update merges the present fields into the stored stamp and validates the
// result as if it were new.
func (s *service) Update(ctx context.Context, empID string, id uint, req UpdateRequest) (*StampResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("update time stamp begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ts, err := s.owned(ctx, qtx, empID, id, "edit")
	if err != nil {
		return nil, err
	}
	if err := req.apply(ts); err != nil {
		return nil, err
	}
	if err := validate(ts, s.clock.Today()); err != nil {
		return nil, err
	}
	r, err := s.resolve(ctx, s.projects.WithTx(tx), ts)
	if err != nil {
		return nil, err
	}

	if err := qtx.Save(ctx, ts); err != nil {
		l.Error("update time stamp failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		l.Error("update time stamp commit failed", zap.Error(err))
		return nil, err
	}
	return toResponse(ts, r), nil
}

func (s *service) Delete(ctx context.Context, empID string, id uint) error {
	l := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("delete time stamp begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := s.owned(ctx, qtx, empID, id, "delete"); err != nil {
		return err
	}
	if err := qtx.Delete(ctx, id); err != nil {
		if dberr.IsNotFound(err) {
			return timesheeterrors.ErrStampNotFound.Withf("TimeStamp with ID %d not found.", id)
		}
		l.Error("delete time stamp failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	if err := tx.Commit(); err != nil {
		l.Error("delete time stamp commit failed", zap.Error(err))
		return err
	}

	l.Info("time stamp deleted", zap.Uint("id", id))
	return nil
}

// Week lists the caller's stamps from Monday to Sunday of the week holding
// targetDate, or of the current week when targetDate is blank.
func (s *service) Week(ctx context.Context, empID, targetDate string) (*WeekResponse, error) {
	if strings.TrimSpace(empID) == "" {
		return nil, timesheeterrors.ErrMissingEmpID
	}

	target := s.clock.Today()
	if strings.TrimSpace(targetDate) != "" {
		d, err := dateutil.ParseDate("target_date", targetDate)
		if err != nil {
			return nil, err
		}
		target = d
	}

	start := WeekStart(dateutil.DateOf(target))
	end := start.AddDate(0, 0, 6)

	rows, err := s.repo.ListRange(ctx, empID, start, end)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list time stamps failed", zap.Error(err))
		return nil, err
	}

	out := &WeekResponse{
		WeekRange: WeekRange{
			StartDate: start.Format(dateutil.DateLayout),
			EndDate:   end.Format(dateutil.DateLayout),
		},
		TimeStamps: make([]StampResponse, len(rows)),
	}
	for i := range rows {
		out.TimeStamps[i] = *toRowResponse(&rows[i])
	}
	return out, nil
}

func (s *service) TotalTime(_ context.Context, req TotalTimeRequest) (*TotalTimeResponse, error) {
	start, err := dateutil.ParseClock("start_time", req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := dateutil.ParseClock("end_time", req.EndTime)
	if err != nil {
		return nil, err
	}
	total, err := TotalTime(start, end)
	if err != nil {
		return nil, err
	}
	return &TotalTimeResponse{TotalTime: total}, nil
}
