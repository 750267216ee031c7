package lookup

import (
	"net/http"
	"strconv"

	lookuperrors "go-hrfine/internal/lookup/errors"
	"go-hrfine/internal/shared/apperror"
	"go-hrfine/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("lookup.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("lookup.handler")
	}
	return &Handler{svc: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("lookup request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) kind(c *gin.Context) (Kind, bool) {
	kind, ok := ParseKind(c.Param("kind"))
	if !ok {
		h.writeServiceError(c, lookuperrors.ErrUnknownKind)
	}
	return kind, ok
}

func (h *Handler) List(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	items, err := h.svc.List(c.Request.Context(), kind)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items, nil)
}

func (h *Handler) Create(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", appErr.Message, nil)
		return
	}

	item, err := h.svc.Create(c.Request.Context(), kind, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item, nil)
}

func (h *Handler) UpdatePosition(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "id is invalid", nil)
		return
	}

	var req UpdatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", appErr.Message, nil)
		return
	}

	item, err := h.svc.UpdatePosition(c.Request.Context(), uint(id), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item, nil)
}
