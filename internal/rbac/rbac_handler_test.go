package rbac_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrfine/internal/domain"
	"go-hrfine/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeRBACService struct {
	EnforceFn     func(req domain.EnforceRequest) (bool, error)
	PermissionsFn func(role string) ([]domain.PermissionResponse, error)
}

func (f *fakeRBACService) Enforce(req domain.EnforceRequest) (bool, error) {
	return f.EnforceFn(req)
}

func (f *fakeRBACService) Permissions(role string) ([]domain.PermissionResponse, error) {
	return f.PermissionsFn(role)
}

func withRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("role", role)
		c.Next()
	}
}

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func TestHandler_Enforce(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeRBACService{
		EnforceFn: func(req domain.EnforceRequest) (bool, error) {
			assert.Equal(t, rbac.RoleHR, req.Role)
			return req.Resource == "employee" && req.Action == "read", nil
		},
	}
	router := gin.New()
	router.POST("/rbac/enforce", withRole(rbac.RoleHR), rbac.NewHandler(svc).Enforce)

	t.Run("allowed", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"resource": " employee ", "action": "read", "role": "admin"})
		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var env envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		var resp domain.EnforceResponse
		assert.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.True(t, resp.Allowed)
	})

	t.Run("missing action", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{"resource":"employee"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Permissions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeRBACService{
			PermissionsFn: func(role string) ([]domain.PermissionResponse, error) {
				return []domain.PermissionResponse{{Resource: "lookup", Action: "read"}}, nil
			},
		}
		router := gin.New()
		router.GET("/rbac/permissions", withRole(rbac.RoleEmployee), rbac.NewHandler(svc).Permissions)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/permissions", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var env envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		var resp domain.RolePermissionsResponse
		assert.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.Equal(t, rbac.RoleEmployee, resp.Role)
		assert.Len(t, resp.Permissions, 1)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeRBACService{
			PermissionsFn: func(role string) ([]domain.PermissionResponse, error) {
				return nil, errors.New("boom")
			},
		}
		router := gin.New()
		router.GET("/rbac/permissions", withRole(rbac.RoleEmployee), rbac.NewHandler(svc).Permissions)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/permissions", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
