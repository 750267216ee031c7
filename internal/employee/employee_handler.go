package employee

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"go-hrfine/internal/shared/apperror"
	"go-hrfine/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("employee request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) bindError(c *gin.Context, err error) {
	appErr := apperror.MapValidationError(err)
	response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", appErr.Message, nil)
}

// SubmitAll answers 201 when every section went through and 207 when at
// least one section failed.
func (h *Handler) SubmitAll(c *gin.Context) {
	var req SubmitAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	report, err := h.service.SubmitAll(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	status := http.StatusCreated
	if report.Failed() {
		status = http.StatusMultiStatus
	}
	response.Success(c, status, report, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) GetManagers(c *gin.Context) {
	resp, err := h.service.GetManagers(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByEmpID(c *gin.Context) {
	resp, err := h.service.GetByEmpID(c.Request.Context(), strings.TrimSpace(c.Param("emp_id")))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func patchSection[P, R any](h *Handler, c *gin.Context, fn func(context.Context, string, P) (R, error)) {
	var req P
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	resp, err := fn(c.Request.Context(), strings.TrimSpace(c.Param("emp_id")), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdatePersonalInfo(c *gin.Context) {
	patchSection(h, c, h.service.UpdatePersonalInfo)
}

func (h *Handler) UpdateAddressInfo(c *gin.Context) {
	patchSection(h, c, h.service.UpdateAddressInfo)
}

func (h *Handler) UpdateRegistrationAddress(c *gin.Context) {
	patchSection(h, c, h.service.UpdateRegistrationAddress)
}

func (h *Handler) UpdateContactInfo(c *gin.Context) {
	patchSection(h, c, h.service.UpdateContactInfo)
}

func (h *Handler) UpdateHiringInfo(c *gin.Context) {
	patchSection(h, c, h.service.UpdateHiringInfo)
}

func (h *Handler) UpdatePaymentInfo(c *gin.Context) {
	patchSection(h, c, h.service.UpdatePaymentInfo)
}

func (h *Handler) UpdateDeductionInfo(c *gin.Context) {
	patchSection(h, c, h.service.UpdateDeductionInfo)
}
