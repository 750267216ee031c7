package user_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrfine/internal/user"
	usererrors "go-hrfine/internal/user/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeUserService struct {
	GetAllFn     func(ctx context.Context, q string) ([]user.UserResponse, error)
	GetByEmpIDFn func(ctx context.Context, empID string) (user.UserResponse, error)
	AssignRoleFn func(ctx context.Context, empID, role string) (user.UserResponse, error)
}

func (f *fakeUserService) GetAll(ctx context.Context, q string) ([]user.UserResponse, error) {
	return f.GetAllFn(ctx, q)
}
func (f *fakeUserService) GetByEmpID(ctx context.Context, empID string) (user.UserResponse, error) {
	return f.GetByEmpIDFn(ctx, empID)
}
func (f *fakeUserService) AssignRole(ctx context.Context, empID, role string) (user.UserResponse, error) {
	return f.AssignRoleFn(ctx, empID, role)
}

func setupRouter(h *user.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/users", h.GetAll)
	r.GET("/users/:emp_id", h.GetByEmpID)
	r.PATCH("/users/:emp_id/role", h.AssignRole)
	return r
}

func TestUserHandler_GetAll(t *testing.T) {
	svc := &fakeUserService{
		GetAllFn: func(ctx context.Context, q string) ([]user.UserResponse, error) {
			assert.Equal(t, "ma", q)
			return []user.UserResponse{{EmpID: "68001"}, {EmpID: "68002"}, {EmpID: "68003"}}, nil
		},
	}
	r := setupRouter(user.NewHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users?q=ma&page=2&page_size=2", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []user.UserResponse `json:"data"`
		Meta struct {
			Total      int `json:"total"`
			TotalPages int `json:"total_pages"`
		} `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
	assert.Equal(t, "68003", body.Data[0].EmpID)
	assert.Equal(t, 3, body.Meta.Total)
	assert.Equal(t, 2, body.Meta.TotalPages)
}

func TestUserHandler_GetByEmpID_NotFound(t *testing.T) {
	svc := &fakeUserService{
		GetByEmpIDFn: func(ctx context.Context, empID string) (user.UserResponse, error) {
			return user.UserResponse{}, usererrors.ErrUserNotFound
		},
	}
	r := setupRouter(user.NewHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/99999", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestUserHandler_AssignRole(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeUserService{
			AssignRoleFn: func(ctx context.Context, empID, role string) (user.UserResponse, error) {
				assert.Equal(t, "68003", empID)
				assert.Equal(t, "hr", role)
				return user.UserResponse{EmpID: empID, Role: role}, nil
			},
		}
		r := setupRouter(user.NewHandler(svc))

		req := httptest.NewRequest(http.MethodPatch, "/users/68003/role", bytes.NewBufferString(`{"role":"hr"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid role rejected by binding", func(t *testing.T) {
		r := setupRouter(user.NewHandler(&fakeUserService{}))

		req := httptest.NewRequest(http.MethodPatch, "/users/68003/role", bytes.NewBufferString(`{"role":"owner"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("last admin", func(t *testing.T) {
		svc := &fakeUserService{
			AssignRoleFn: func(ctx context.Context, empID, role string) (user.UserResponse, error) {
				return user.UserResponse{}, usererrors.ErrLastAdmin
			},
		}
		r := setupRouter(user.NewHandler(svc))

		req := httptest.NewRequest(http.MethodPatch, "/users/68001/role", bytes.NewBufferString(`{"role":"employee"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_STATE")
	})
}
