package timesheet

import "go-hrfine/internal/shared/patch"

// CreateRequest is a new stamp. The OverTime key keeps the casing the time
// sheet front end already sends.
type CreateRequest struct {
	ProjectID      uint    `json:"project_id" binding:"required"`
	PeriodID       *uint   `json:"period_id"`
	StampDate      string  `json:"stamp_date" binding:"required"`
	StartTime      string  `json:"start_time" binding:"required"`
	EndTime        string  `json:"end_time" binding:"required"`
	StampDetails   *string `json:"stamp_details" binding:"omitempty,max=300"`
	Disbursement   bool    `json:"disbursement"`
	OverTime       bool    `json:"OverTime"`
	TravelExpenses bool    `json:"travel_expenses"`
}

type UpdateRequest struct {
	ProjectID      patch.Field[uint]   `json:"project_id"`
	PeriodID       patch.Field[uint]   `json:"period_id"`
	StampDate      patch.Field[string] `json:"stamp_date"`
	StartTime      patch.Field[string] `json:"start_time"`
	EndTime        patch.Field[string] `json:"end_time"`
	StampDetails   patch.Field[string] `json:"stamp_details"`
	Disbursement   patch.Field[bool]   `json:"disbursement"`
	OverTime       patch.Field[bool]   `json:"OverTime"`
	TravelExpenses patch.Field[bool]   `json:"travel_expenses"`
}

type TotalTimeRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type TotalTimeResponse struct {
	TotalTime string `json:"total_time"`
}

type StampResponse struct {
	ID             uint    `json:"stamp_id"`
	EmpID          string  `json:"emp_id"`
	ProjectID      uint    `json:"project_id"`
	ProjectCode    *string `json:"project_code"`
	ProjectName    *string `json:"project_name"`
	PeriodID       *uint   `json:"period_id"`
	PeriodNumber   *int    `json:"period_number"`
	StampDate      string  `json:"stamp_date"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	TotalTime      string  `json:"total_time"`
	StampDetails   *string `json:"stamp_details"`
	Disbursement   bool    `json:"disbursement"`
	OverTime       bool    `json:"OverTime"`
	TravelExpenses bool    `json:"travel_expenses"`
}

type WeekRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type WeekResponse struct {
	WeekRange  WeekRange       `json:"week_range"`
	TimeStamps []StampResponse `json:"time_stamps"`
}
