package project

import (
	"strings"

	"go-hrfine/internal/shared/dateutil"
)

func (in *DetailsInput) toEntity() *Project {
	return &Project{
		ProjectType:       in.ProjectType,
		ProjectCode:       strings.ToUpper(strings.TrimSpace(in.ProjectCode)),
		ProjectName:       strings.TrimSpace(in.ProjectName),
		ProjectContractNo: strings.TrimSpace(in.ProjectContractNo),
		ProjectDetails:    in.ProjectDetails,
		ProjectClient:     in.ProjectClient,
		ProjectManager:    strings.TrimSpace(in.ProjectManager),
		ColorMark:         strings.TrimSpace(in.ColorMark),
	}
}

func (in *DurationInput) toEntity(projectID uint) (*Duration, error) {
	sign, err := dateutil.ParseDate("project_sign_date", in.ProjectSignDate)
	if err != nil {
		return nil, err
	}
	end, err := dateutil.ParseDate("project_end_date", in.ProjectEndDate)
	if err != nil {
		return nil, err
	}
	d := &Duration{
		ProjectID:       projectID,
		NumberOfPeriods: in.NumberOfPeriods,
		ProjectDuration: in.ProjectDuration,
		ProjectSignDate: sign,
		ProjectEndDate:  end,
	}
	return d, d.validate()
}

func (in *BillInput) toEntity(projectID uint) *Bill {
	return &Bill{
		ProjectID:          projectID,
		Billable:           in.Billable,
		ProjectValue:       in.ProjectValue,
		ProjectBillingRate: in.ProjectBillingRate,
	}
}

func (in *PlanInput) toEntity(projectID uint) (Plan, error) {
	deli, err := dateutil.ParseDate("deli_date", in.DeliDate)
	if err != nil {
		return Plan{}, err
	}
	return Plan{
		ProjectID:    projectID,
		PeriodNo:     in.PeriodNo,
		DeliDuration: in.DeliDuration,
		DeliDate:     deli,
		DeliDetails:  in.DeliDetails,
	}, nil
}

func toDetailsResponse(p *Project) DetailsResponse {
	return DetailsResponse{
		ID:                p.ID,
		ProjectType:       p.ProjectType,
		ProjectCode:       p.ProjectCode,
		ProjectName:       p.ProjectName,
		ProjectContractNo: p.ProjectContractNo,
		ProjectDetails:    p.ProjectDetails,
		ProjectClient:     p.ProjectClient,
		ProjectManager:    p.ProjectManager,
		ColorMark:         p.ColorMark,
	}
}

func toDetailRowResponse(row *DetailRow) DetailsResponse {
	out := toDetailsResponse(&row.Project)
	out.ProjectTypeName = row.ProjectTypeName
	out.ClientName = row.ClientName
	out.ManagerName = row.ManagerName
	return out
}

func toDurationResponse(d *Duration) *DurationResponse {
	if d == nil {
		return nil
	}
	return &DurationResponse{
		ProjectID:       d.ProjectID,
		NumberOfPeriods: d.NumberOfPeriods,
		ProjectDuration: d.ProjectDuration,
		ProjectSignDate: dateutil.FormatDate(d.ProjectSignDate),
		ProjectEndDate:  dateutil.FormatDate(d.ProjectEndDate),
	}
}

func toBillResponse(b *Bill) *BillResponse {
	if b == nil {
		return nil
	}
	return &BillResponse{
		ProjectID:          b.ProjectID,
		Billable:           b.Billable,
		ProjectValue:       b.ProjectValue,
		ProjectBillingRate: b.ProjectBillingRate,
	}
}

func toPlanResponse(p *Plan) PlanResponse {
	return PlanResponse{
		ID:           p.ID,
		ProjectID:    p.ProjectID,
		PeriodNo:     p.PeriodNo,
		DeliDuration: p.DeliDuration,
		DeliDate:     dateutil.FormatDate(p.DeliDate),
		DeliDetails:  p.DeliDetails,
	}
}

func toPlanResponses(plans []Plan) []PlanResponse {
	out := make([]PlanResponse, len(plans))
	for i := range plans {
		out[i] = toPlanResponse(&plans[i])
	}
	return out
}

func toMemberResponse(m *Member) MemberResponse {
	return MemberResponse{
		ProjectID:      m.ProjectID,
		MemberID:       m.MemberID,
		PositionID:     m.PositionID,
		AssignedDate:   dateutil.FormatDate(m.AssignedDate),
		AssignedDetail: m.AssignedDetail,
	}
}

func toMemberRowResponse(row *MemberRow) MemberResponse {
	out := toMemberResponse(&row.Member)
	out.EngName = row.EngName
	out.PositionName = row.PositionName
	return out
}

func toDashboardItem(row *DashboardRow) DashboardItem {
	return DashboardItem{
		ID:              row.ID,
		ProjectCode:     row.ProjectCode,
		ProjectName:     row.ProjectName,
		ProjectType:     row.ProjectType,
		ClientName:      row.ClientName,
		ProjectManager:  row.ProjectManager,
		ManagerName:     row.ManagerName,
		ColorMark:       row.ColorMark,
		ProjectSignDate: dateutil.FormatDatePtr(row.ProjectSignDate),
		ProjectEndDate:  dateutil.FormatDatePtr(row.ProjectEndDate),
		MemberCount:     row.MemberCount,
	}
}
