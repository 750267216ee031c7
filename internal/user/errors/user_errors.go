package usererrors

import (
	"net/http"

	"go-hrfine/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"User with the same email already exists",
		http.StatusConflict,
	)

	ErrEmpIDAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee ID already exists",
		http.StatusConflict,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Role must be one of admin, hr, employee",
		http.StatusBadRequest,
	)

	ErrLastAdmin = apperror.New(
		apperror.CodeInvalidState,
		"The last admin cannot be demoted",
		http.StatusConflict,
	)
)
