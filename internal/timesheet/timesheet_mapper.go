package timesheet

import (
	"go-hrfine/internal/shared/apperror"
	"go-hrfine/internal/shared/dateutil"
	"go-hrfine/internal/shared/patch"

	"gorm.io/datatypes"
)

func applyClock(f patch.Field[string], dst *datatypes.Time, name string) error {
	if !f.Present {
		return nil
	}
	if f.Value == nil {
		return apperror.Invalid("%s cannot be null", name)
	}
	t, err := dateutil.ParseClock(name, *f.Value)
	if err != nil {
		return err
	}
	*dst = t
	return nil
}

func toResponse(ts *TimeStamp, r *ref) *StampResponse {
	out := &StampResponse{
		ID:             ts.ID,
		EmpID:          ts.EmpID,
		ProjectID:      ts.ProjectID,
		PeriodID:       ts.PeriodID,
		StampDate:      dateutil.FormatDate(ts.StampDate),
		StartTime:      dateutil.FormatClock(ts.StartTime),
		EndTime:        dateutil.FormatClock(ts.EndTime),
		TotalTime:      ts.TotalTime,
		StampDetails:   ts.StampDetails,
		Disbursement:   ts.Disbursement,
		OverTime:       ts.OverTime,
		TravelExpenses: ts.TravelExpenses,
	}
	if r != nil {
		out.ProjectCode = &r.projectCode
		out.ProjectName = &r.projectName
		out.PeriodNumber = r.periodNo
	}
	return out
}

func toRowResponse(row *Row) *StampResponse {
	out := toResponse(&row.TimeStamp, nil)
	out.ProjectCode = row.ProjectCode
	out.ProjectName = row.ProjectName
	out.PeriodNumber = row.PeriodNo
	return out
}
