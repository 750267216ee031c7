package clienterrors

import (
	"net/http"

	"go-hrfine/internal/shared/apperror"
)

var (
	ErrClientNotFound = apperror.New(
		apperror.CodeNotFound,
		"Client not found",
		http.StatusNotFound,
	)
	ErrClientNameExists = apperror.New(
		apperror.CodeConflict,
		"Client with the same name already exists",
		http.StatusConflict,
	)
	ErrClientCodeExists = apperror.New(
		apperror.CodeConflict,
		"Client code already exists",
		http.StatusConflict,
	)
	ErrProjectTypeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Project type not found",
		http.StatusBadRequest,
	)
	ErrInvalidClientID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid client ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmail = apperror.New(
		apperror.CodeInvalidInput,
		"Client email must be a valid email address",
		http.StatusBadRequest,
	)
)
