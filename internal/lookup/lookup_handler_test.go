package lookup_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrfine/internal/lookup"
	lookuperrors "go-hrfine/internal/lookup/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeLookupService struct {
	ListFn           func(ctx context.Context, kind lookup.Kind) ([]lookup.Item, error)
	CreateFn         func(ctx context.Context, kind lookup.Kind, req lookup.CreateRequest) (lookup.Item, error)
	UpdatePositionFn func(ctx context.Context, id uint, req lookup.UpdatePositionRequest) (lookup.Item, error)
}

func (f *fakeLookupService) List(ctx context.Context, kind lookup.Kind) ([]lookup.Item, error) {
	return f.ListFn(ctx, kind)
}
func (f *fakeLookupService) Create(ctx context.Context, kind lookup.Kind, req lookup.CreateRequest) (lookup.Item, error) {
	return f.CreateFn(ctx, kind, req)
}
func (f *fakeLookupService) UpdatePosition(ctx context.Context, id uint, req lookup.UpdatePositionRequest) (lookup.Item, error) {
	return f.UpdatePositionFn(ctx, id, req)
}

func setupRouter(h *lookup.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/lookups/:kind", h.List)
	r.POST("/lookups/:kind", h.Create)
	r.PUT("/lookups/positions/:id", h.UpdatePosition)
	return r
}

func TestLookupHandler_List(t *testing.T) {
	svc := &fakeLookupService{
		ListFn: func(ctx context.Context, kind lookup.Kind) ([]lookup.Item, error) {
			assert.Equal(t, lookup.KindWorkingStatuses, kind)
			return []lookup.Item{{ID: 1, Name: "Active"}}, nil
		},
	}
	r := setupRouter(lookup.NewHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/lookups/Working-Statuses", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"data":[{"id":1,"name":"Active"}]}`, w.Body.String())
}

func TestLookupHandler_UnknownKind(t *testing.T) {
	r := setupRouter(lookup.NewHandler(&fakeLookupService{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/lookups/planets", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLookupHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakeLookupService{
			CreateFn: func(ctx context.Context, kind lookup.Kind, req lookup.CreateRequest) (lookup.Item, error) {
				assert.Equal(t, lookup.KindProjectTypes, kind)
				assert.Equal(t, "SW", req.Code)
				return lookup.Item{ID: 1, Name: req.Name, Code: req.Code}, nil
			},
		}
		r := setupRouter(lookup.NewHandler(svc))

		w := httptest.NewRecorder()
		body := bytes.NewBufferString(`{"name":"Software","code":"SW"}`)
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/lookups/project-types", body))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		r := setupRouter(lookup.NewHandler(&fakeLookupService{}))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/lookups/companies", bytes.NewBufferString(`{}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("conflict", func(t *testing.T) {
		svc := &fakeLookupService{
			CreateFn: func(ctx context.Context, kind lookup.Kind, req lookup.CreateRequest) (lookup.Item, error) {
				return lookup.Item{}, lookuperrors.ErrAlreadyExists.Withf("%s already exists", kind.Label())
			},
		}
		r := setupRouter(lookup.NewHandler(svc))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/lookups/companies", bytes.NewBufferString(`{"name":"HQ"}`)))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Company already exists")
	})
}

func TestLookupHandler_UpdatePosition(t *testing.T) {
	t.Run("bad id", func(t *testing.T) {
		r := setupRouter(lookup.NewHandler(&fakeLookupService{}))

		w := httptest.NewRecorder()
		body := bytes.NewBufferString(`{"name":"Lead","department_id":1}`)
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/lookups/positions/abc", body))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeLookupService{
			UpdatePositionFn: func(ctx context.Context, id uint, req lookup.UpdatePositionRequest) (lookup.Item, error) {
				assert.Equal(t, uint(5), id)
				return lookup.Item{}, lookuperrors.ErrPositionNotFound
			},
		}
		r := setupRouter(lookup.NewHandler(svc))

		w := httptest.NewRecorder()
		body := bytes.NewBufferString(`{"name":"Lead","department_id":1}`)
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/lookups/positions/5", body))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
