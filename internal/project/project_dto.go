package project

import "go-hrfine/internal/shared/patch"

type GenerateCodeRequest struct {
	ClientName  string `json:"client_name" binding:"required,max=50"`
	ProjectType uint   `json:"project_type" binding:"required"`
}

type GenerateCodeResponse struct {
	ProjectCode string `json:"project_code"`
}

// SubmitAllRequest mirrors the grouped payload posted by the project wizard.
type SubmitAllRequest struct {
	ProjectInfo       ProjectInfo `json:"projectInfo" binding:"required"`
	ProjectPlanInfo   PlanGroup   `json:"projectPlanInfo"`
	ProjectMemberInfo MemberGroup `json:"projectMemberInfo"`
}

type ProjectInfo struct {
	ProjectDetails  *DetailsInput  `json:"project_details" binding:"required"`
	ProjectDuration *DurationInput `json:"project_duration"`
	ProjectBill     *BillInput     `json:"project_bill"`
}

type PlanGroup struct {
	ProjectPlan []PlanInput `json:"project_plan" binding:"dive"`
}

type MemberGroup struct {
	ProjectMember []MemberInput `json:"project_member" binding:"dive"`
}

type DetailsInput struct {
	ProjectType       uint    `json:"project_type" binding:"required"`
	ProjectCode       string  `json:"project_code" binding:"required,max=30"`
	ProjectName       string  `json:"project_name" binding:"required,max=100"`
	ProjectContractNo string  `json:"project_contract_no" binding:"required,max=20"`
	ProjectDetails    *string `json:"project_details" binding:"omitempty,max=300"`
	ProjectClient     uint    `json:"project_client" binding:"required"`
	ProjectManager    string  `json:"project_manager" binding:"required,max=10"`
	ColorMark         string  `json:"color_mark" binding:"required,max=10"`
}

type DurationInput struct {
	NumberOfPeriods int    `json:"number_of_periods" binding:"required,gte=1"`
	ProjectDuration int    `json:"project_duration" binding:"gte=0"`
	ProjectSignDate string `json:"project_sign_date" binding:"required"`
	ProjectEndDate  string `json:"project_end_date" binding:"required"`
}

type BillInput struct {
	Billable           bool    `json:"billable"`
	ProjectValue       float64 `json:"project_value" binding:"gte=0"`
	ProjectBillingRate float64 `json:"project_billing_rate" binding:"gte=0"`
}

type PlanInput struct {
	PeriodNo     int     `json:"period_no" binding:"required,gte=1"`
	DeliDuration int     `json:"deli_duration" binding:"gte=0"`
	DeliDate     string  `json:"deli_date" binding:"required"`
	DeliDetails  *string `json:"deli_details" binding:"omitempty,max=300"`
}

// MemberInput assigns one employee. PositionID falls back to the position in
// the employee's hiring info when omitted.
type MemberInput struct {
	MemberID       string  `json:"member_id" binding:"required,max=10"`
	PositionID     *uint   `json:"position_id"`
	AssignedDate   *string `json:"assigned_date"`
	AssignedDetail *string `json:"assigned_detail" binding:"omitempty,max=200"`
}

type DetailsPatch struct {
	ProjectType       patch.Field[uint]   `json:"project_type"`
	ProjectCode       patch.Field[string] `json:"project_code"`
	ProjectName       patch.Field[string] `json:"project_name"`
	ProjectContractNo patch.Field[string] `json:"project_contract_no"`
	ProjectDetails    patch.Field[string] `json:"project_details"`
	ProjectClient     patch.Field[uint]   `json:"project_client"`
	ProjectManager    patch.Field[string] `json:"project_manager"`
	ColorMark         patch.Field[string] `json:"color_mark"`
}

type DurationPatch struct {
	NumberOfPeriods patch.Field[int]    `json:"number_of_periods"`
	ProjectDuration patch.Field[int]    `json:"project_duration"`
	ProjectSignDate patch.Field[string] `json:"project_sign_date"`
	ProjectEndDate  patch.Field[string] `json:"project_end_date"`
}

type BillPatch struct {
	Billable           patch.Field[bool]    `json:"billable"`
	ProjectValue       patch.Field[float64] `json:"project_value"`
	ProjectBillingRate patch.Field[float64] `json:"project_billing_rate"`
}

type PlanPatch struct {
	PeriodNo     patch.Field[int]    `json:"period_no"`
	DeliDuration patch.Field[int]    `json:"deli_duration"`
	DeliDate     patch.Field[string] `json:"deli_date"`
	DeliDetails  patch.Field[string] `json:"deli_details"`
}

type MemberPatch struct {
	PositionID     patch.Field[uint]   `json:"position_id"`
	AssignedDate   patch.Field[string] `json:"assigned_date"`
	AssignedDetail patch.Field[string] `json:"assigned_detail"`
}

type DetailsResponse struct {
	ID                uint    `json:"project_id"`
	ProjectType       uint    `json:"project_type"`
	ProjectTypeName   string  `json:"project_type_name,omitempty"`
	ProjectCode       string  `json:"project_code"`
	ProjectName       string  `json:"project_name"`
	ProjectContractNo string  `json:"project_contract_no"`
	ProjectDetails    *string `json:"project_details"`
	ProjectClient     uint    `json:"project_client"`
	ClientName        string  `json:"client_name,omitempty"`
	ProjectManager    string  `json:"project_manager"`
	ManagerName       *string `json:"manager_name,omitempty"`
	ColorMark         string  `json:"color_mark"`
}

type DurationResponse struct {
	ProjectID       uint   `json:"project_id"`
	NumberOfPeriods int    `json:"number_of_periods"`
	ProjectDuration int    `json:"project_duration"`
	ProjectSignDate string `json:"project_sign_date"`
	ProjectEndDate  string `json:"project_end_date"`
}

type BillResponse struct {
	ProjectID          uint    `json:"project_id"`
	Billable           bool    `json:"billable"`
	ProjectValue       float64 `json:"project_value"`
	ProjectBillingRate float64 `json:"project_billing_rate"`
}

type PlanResponse struct {
	ID           uint    `json:"plan_id"`
	ProjectID    uint    `json:"project_id"`
	PeriodNo     int     `json:"period_no"`
	DeliDuration int     `json:"deli_duration"`
	DeliDate     string  `json:"deli_date"`
	DeliDetails  *string `json:"deli_details"`
}

type MemberResponse struct {
	ProjectID      uint    `json:"project_id"`
	MemberID       string  `json:"member_id"`
	EngName        *string `json:"eng_name,omitempty"`
	PositionID     uint    `json:"position_id"`
	PositionName   *string `json:"position_name,omitempty"`
	AssignedDate   string  `json:"assigned_date"`
	AssignedDetail *string `json:"assigned_detail"`
}

type ProjectDetail struct {
	ProjectDetails  DetailsResponse   `json:"project_details"`
	ProjectDuration *DurationResponse `json:"project_duration"`
	ProjectBill     *BillResponse     `json:"project_bill"`
	ProjectPlan     []PlanResponse    `json:"project_plan"`
	ProjectMember   []MemberResponse  `json:"project_member"`
}

type DashboardItem struct {
	ID              uint    `json:"project_id"`
	ProjectCode     string  `json:"project_code"`
	ProjectName     string  `json:"project_name"`
	ProjectType     string  `json:"project_type"`
	ClientName      string  `json:"client_name"`
	ProjectManager  string  `json:"project_manager"`
	ManagerName     *string `json:"manager_name"`
	ColorMark       string  `json:"color_mark"`
	ProjectSignDate *string `json:"project_sign_date"`
	ProjectEndDate  *string `json:"project_end_date"`
	MemberCount     int64   `json:"member_count"`
}

// AssignedProject is a project the caller can stamp time against, with the
// plan periods a stamp may reference.
type AssignedProject struct {
	ID          uint             `json:"project_id"`
	ProjectCode string           `json:"project_code"`
	ProjectName string           `json:"project_name"`
	ColorMark   string           `json:"color_mark"`
	Periods     []AssignedPeriod `json:"periods"`
}

type AssignedPeriod struct {
	ID       uint   `json:"period_id"`
	PeriodNo int    `json:"period_no"`
	DeliDate string `json:"deli_date"`
}
