package employeeerrors

import (
	"net/http"

	"go-hrfine/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrSectionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee record not found",
		http.StatusNotFound,
	)
	ErrSectionAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee record already exists",
		http.StatusConflict,
	)
	ErrInvalidManager = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid manager. Employee does not exist.",
		http.StatusBadRequest,
	)
	ErrSelfManaged = apperror.New(
		apperror.CodeInvalidInput,
		"An employee cannot be their own manager",
		http.StatusBadRequest,
	)
	ErrLookupNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Referenced lookup does not exist",
		http.StatusBadRequest,
	)
	ErrPositionNotInDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"Position does not belong to the selected department",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Dates must not be earlier than start_date",
		http.StatusBadRequest,
	)
	ErrInvalidEmail = apperror.New(
		apperror.CodeInvalidInput,
		"Email must be a valid email address",
		http.StatusBadRequest,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"User with the same email already exists",
		http.StatusConflict,
	)
)
