package projecterrors

import (
	"net/http"

	"go-hrfine/internal/shared/apperror"
)

var (
	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)
	ErrDurationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project duration not found",
		http.StatusNotFound,
	)
	ErrBillNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project bill not found",
		http.StatusNotFound,
	)
	ErrPlanNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project plan not found",
		http.StatusNotFound,
	)
	ErrMemberNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project member not found",
		http.StatusNotFound,
	)
	ErrProjectCodeExists = apperror.New(
		apperror.CodeConflict,
		"Project code already exists. Please use a unique code.",
		http.StatusConflict,
	)
	ErrSectionExists = apperror.New(
		apperror.CodeConflict,
		"Project section already exists",
		http.StatusConflict,
	)
	ErrPeriodExists = apperror.New(
		apperror.CodeConflict,
		"Project plan period already exists",
		http.StatusConflict,
	)
	ErrMemberExists = apperror.New(
		apperror.CodeConflict,
		"Employee is already a member of this project",
		http.StatusConflict,
	)
	ErrInvalidClient = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid client name or no client found",
		http.StatusBadRequest,
	)
	ErrClientNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Client not found",
		http.StatusBadRequest,
	)
	ErrProjectTypeMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"Project type mismatch",
		http.StatusBadRequest,
	)
	ErrProjectTypeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Project type not found",
		http.StatusBadRequest,
	)
	ErrInvalidManager = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid project manager. Employee does not exist.",
		http.StatusBadRequest,
	)
	ErrInvalidMember = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid project member. Employee does not exist.",
		http.StatusBadRequest,
	)
	ErrPositionNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Position not found",
		http.StatusBadRequest,
	)
	ErrPositionUnresolved = apperror.New(
		apperror.CodeInvalidInput,
		"position_id is required when the employee has no hiring info",
		http.StatusBadRequest,
	)
	ErrPlanCountMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"Number of project plans does not match the number of periods.",
		http.StatusBadRequest,
	)
	ErrDurationRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Project duration is required before project plans",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"project_end_date must not be before project_sign_date",
		http.StatusBadRequest,
	)
	ErrInvalidProjectID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid project ID",
		http.StatusBadRequest,
	)
	ErrInvalidPlanID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid plan ID",
		http.StatusBadRequest,
	)
)
