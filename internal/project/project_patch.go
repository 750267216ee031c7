package project

import (
	"strings"
	"time"

	projecterrors "go-hrfine/internal/project/errors"
	"go-hrfine/internal/shared/apperror"
	"go-hrfine/internal/shared/patch"
)

func (d *Duration) validate() error {
	switch {
	case d.NumberOfPeriods < 1:
		return apperror.Invalid("number_of_periods must be at least 1")
	case d.ProjectDuration < 0:
		return apperror.Invalid("project_duration must not be negative")
	case time.Time(d.ProjectEndDate).Before(time.Time(d.ProjectSignDate)):
		return projecterrors.ErrInvalidDateRange
	}
	return nil
}

func (p DetailsPatch) apply(rec *Project) error {
	p.ProjectDetails.ApplyPtr(&rec.ProjectDetails)
	if err := patch.FirstErr(
		p.ProjectType.Apply(&rec.ProjectType, "project_type"),
		patch.Text(p.ProjectCode, &rec.ProjectCode, "project_code"),
		patch.Text(p.ProjectName, &rec.ProjectName, "project_name"),
		patch.Text(p.ProjectContractNo, &rec.ProjectContractNo, "project_contract_no"),
		p.ProjectClient.Apply(&rec.ProjectClient, "project_client"),
		patch.Text(p.ProjectManager, &rec.ProjectManager, "project_manager"),
		patch.Text(p.ColorMark, &rec.ColorMark, "color_mark"),
	); err != nil {
		return err
	}
	rec.ProjectCode = strings.ToUpper(rec.ProjectCode)

	switch {
	case len(rec.ProjectCode) > 30:
		return apperror.Invalid("project_code must be at most 30 characters")
	case len(rec.ProjectName) > 100:
		return apperror.Invalid("project_name must be at most 100 characters")
	case len(rec.ProjectContractNo) > 20:
		return apperror.Invalid("project_contract_no must be at most 20 characters")
	case len(rec.ColorMark) > 10:
		return apperror.Invalid("color_mark must be at most 10 characters")
	case rec.ProjectDetails != nil && len(*rec.ProjectDetails) > 300:
		return apperror.Invalid("project_details must be at most 300 characters")
	}
	return nil
}

func (p DurationPatch) apply(rec *Duration) error {
	if err := patch.FirstErr(
		p.NumberOfPeriods.Apply(&rec.NumberOfPeriods, "number_of_periods"),
		p.ProjectDuration.Apply(&rec.ProjectDuration, "project_duration"),
		patch.Date(p.ProjectSignDate, &rec.ProjectSignDate, "project_sign_date"),
		patch.Date(p.ProjectEndDate, &rec.ProjectEndDate, "project_end_date"),
	); err != nil {
		return err
	}
	return rec.validate()
}

func (p BillPatch) apply(rec *Bill) error {
	if err := patch.FirstErr(
		p.Billable.Apply(&rec.Billable, "billable"),
		p.ProjectValue.Apply(&rec.ProjectValue, "project_value"),
		p.ProjectBillingRate.Apply(&rec.ProjectBillingRate, "project_billing_rate"),
	); err != nil {
		return err
	}
	if rec.ProjectValue < 0 || rec.ProjectBillingRate < 0 {
		return apperror.Invalid("project_value and project_billing_rate must not be negative")
	}
	return nil
}

func (p PlanPatch) apply(rec *Plan) error {
	p.DeliDetails.ApplyPtr(&rec.DeliDetails)
	if err := patch.FirstErr(
		p.PeriodNo.Apply(&rec.PeriodNo, "period_no"),
		p.DeliDuration.Apply(&rec.DeliDuration, "deli_duration"),
		patch.Date(p.DeliDate, &rec.DeliDate, "deli_date"),
	); err != nil {
		return err
	}
	switch {
	case rec.PeriodNo < 1:
		return apperror.Invalid("period_no must be at least 1")
	case rec.DeliDuration < 0:
		return apperror.Invalid("deli_duration must not be negative")
	case rec.DeliDetails != nil && len(*rec.DeliDetails) > 300:
		return apperror.Invalid("deli_details must be at most 300 characters")
	}
	return nil
}

func (p MemberPatch) apply(rec *Member) error {
	p.AssignedDetail.ApplyPtr(&rec.AssignedDetail)
	if err := patch.FirstErr(
		p.PositionID.Apply(&rec.PositionID, "position_id"),
		patch.Date(p.AssignedDate, &rec.AssignedDate, "assigned_date"),
	); err != nil {
		return err
	}
	if rec.AssignedDetail != nil && len(*rec.AssignedDetail) > 200 {
		return apperror.Invalid("assigned_detail must be at most 200 characters")
	}
	return nil
}
