package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"testing"

	"go-hrfine/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestWithf_KeepsSentinel(t *testing.T) {
	sentinel := apperror.New(apperror.CodeNotFound, "Client not found", http.StatusNotFound)

	err := sentinel.Withf("Client %d not found", 7)

	assert.True(t, errors.Is(err, sentinel))
	assert.Equal(t, "Client 7 not found", err.Message)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
	assert.Equal(t, apperror.CodeNotFound, err.Code)
}

func TestToHTTP(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.Conflict("Email %q already exists", "a@b.c"))
		assert.Equal(t, http.StatusConflict, got.Status)
		assert.Equal(t, apperror.CodeConflict, got.Code)
		assert.Equal(t, `Email "a@b.c" already exists`, got.Message)
	})

	t.Run("wrapped app error", func(t *testing.T) {
		got := apperror.ToHTTP(fmt.Errorf("section: %w", apperror.ErrForbidden))
		assert.Equal(t, http.StatusForbidden, got.Status)
	})

	t.Run("plain error hides detail", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("dial tcp: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.Equal(t, "Internal server error", got.Message)
	})
}

func TestIsClassified(t *testing.T) {
	assert.True(t, apperror.IsClassified(apperror.ErrInvalidInput))
	assert.False(t, apperror.IsClassified(apperror.ErrInternal))
	assert.False(t, apperror.IsClassified(errors.New("boom")))
}

type sample struct {
	RecipientName string `json:"recipient_name" validate:"required"`
	Email         string `json:"email" validate:"omitempty,email"`
}

func TestMapValidationError(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string { return f.Tag.Get("json") })

	err := v.Struct(sample{})
	got := apperror.MapValidationError(err)
	assert.Equal(t, "Recipient Name is required", got.Message)
	assert.Equal(t, http.StatusBadRequest, got.HTTPStatus)

	err = v.Struct(sample{RecipientName: "x", Email: "nope"})
	got = apperror.MapValidationError(err)
	assert.Equal(t, "Email must be a valid email address", got.Message)

	got = apperror.MapValidationError(errors.New("unexpected EOF"))
	assert.Equal(t, "Invalid request body", got.Message)
}
