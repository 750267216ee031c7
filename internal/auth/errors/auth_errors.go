package autherrors

import (
	"net/http"

	"go-hrfine/internal/shared/apperror"
)

const CodeInvalidCredentials = "INVALID_CREDENTIALS"

var (
	ErrInvalidCredentials = apperror.New(
		CodeInvalidCredentials,
		"Invalid employee ID or password",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrTokenRevoked = apperror.New(
		apperror.CodeUnauthorized,
		"Token has been revoked",
		http.StatusUnauthorized,
	)
	ErrTokenMissing = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid refresh token",
		http.StatusUnauthorized,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"Email already registered",
		http.StatusConflict,
	)
	ErrEmpIDConflict = apperror.New(
		apperror.CodeConflict,
		"Could not allocate a unique employee ID, please retry",
		http.StatusConflict,
	)
	ErrWrongPassword = apperror.New(
		apperror.CodeInvalidInput,
		"Current password is incorrect",
		http.StatusBadRequest,
	)
	ErrTempPasswordAlreadyChanged = apperror.New(
		apperror.CodeInvalidState,
		"Temporary password has already been changed",
		http.StatusConflict,
	)
	ErrSamePassword = apperror.New(
		apperror.CodeInvalidInput,
		"New password must differ from the current password",
		http.StatusBadRequest,
	)
)
