package timesheeterrors

import (
	"net/http"

	"go-hrfine/internal/shared/apperror"
)

var (
	ErrStampNotFound = apperror.New(
		apperror.CodeNotFound,
		"TimeStamp not found",
		http.StatusNotFound,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"You are not authorized to modify this timestamp.",
		http.StatusForbidden,
	)
	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)
	ErrPeriodNotInProject = apperror.New(
		apperror.CodeInvalidInput,
		"Period does not belong to the project",
		http.StatusBadRequest,
	)
	ErrInvalidTimeRange = apperror.New(
		apperror.CodeInvalidInput,
		"End time must be after start time.",
		http.StatusBadRequest,
	)
	ErrStampTooOld = apperror.New(
		apperror.CodeInvalidInput,
		"Timestamp is older than the allowed window",
		http.StatusBadRequest,
	)
	ErrStampInFuture = apperror.New(
		apperror.CodeInvalidInput,
		"Future timestamps are not allowed",
		http.StatusBadRequest,
	)
	ErrDetailsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Stamp details are required when disbursement is set to True.",
		http.StatusBadRequest,
	)
	ErrDisbursementReason = apperror.New(
		apperror.CodeInvalidInput,
		"If disbursement is True, OverTime or travel_expenses must also be True.",
		http.StatusBadRequest,
	)
	ErrOvertimeWindow = apperror.New(
		apperror.CodeInvalidInput,
		"If OverTime or travel_expenses is True, work must be scheduled after 18:00.",
		http.StatusBadRequest,
	)
	ErrInvalidStampID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid time stamp ID",
		http.StatusBadRequest,
	)
	ErrMissingEmpID = apperror.New(
		apperror.CodeUnauthorized,
		"Employee ID does not exist in token",
		http.StatusUnauthorized,
	)
)
