package lookuperrors

import (
	"net/http"

	"go-hrfine/internal/shared/apperror"
)

var (
	ErrUnknownKind = apperror.New(
		apperror.CodeNotFound,
		"Unknown lookup kind",
		http.StatusNotFound,
	)
	ErrAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Lookup value already exists",
		http.StatusConflict,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrPositionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Position not found",
		http.StatusNotFound,
	)
	ErrProjectTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project type not found",
		http.StatusNotFound,
	)
	ErrPositionNameTaken = apperror.New(
		apperror.CodeConflict,
		"Position with the same name already exists in this department",
		http.StatusConflict,
	)
	ErrDepartmentRequired = apperror.New(
		apperror.CodeInvalidInput,
		"department_id is required",
		http.StatusBadRequest,
	)
	ErrCodeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"code is required",
		http.StatusBadRequest,
	)
)
