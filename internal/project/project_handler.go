package project

import (
	"net/http"
	"strconv"
	"strings"

	"go-hrfine/internal/middleware"
	projecterrors "go-hrfine/internal/project/errors"
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
	l := zap.L().Named("project.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("project request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) bindError(c *gin.Context, err error) {
	appErr := apperror.MapValidationError(err)
	response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", appErr.Message, nil)
}

func parseUint(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) projectID(c *gin.Context) (uint, bool) {
	id, ok := parseUint(c, "id")
	if !ok {
		h.writeServiceError(c, projecterrors.ErrInvalidProjectID)
	}
	return id, ok
}

func (h *Handler) GenerateCode(c *gin.Context) {
	var req GenerateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	resp, err := h.service.GenerateCode(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// SubmitAll answers 201 when every section went through and 207 when some
// section was rejected.
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

func (h *Handler) GetAssigned(c *gin.Context) {
	resp, err := h.service.GetAssigned(c.Request.Context(), c.GetString(middleware.KeyEmpID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := h.projectID(c)
	if !ok {
		return
	}
	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AddMember(c *gin.Context) {
	id, ok := h.projectID(c)
	if !ok {
		return
	}
	var req MemberInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	resp, err := h.service.AddMember(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

// patchSection binds a patch body for a project section and writes the result.
func patchSection[P, R any](h *Handler, c *gin.Context, call func(id uint, req P) (R, error)) {
	id, ok := h.projectID(c)
	if !ok {
		return
	}
	var req P
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	resp, err := call(id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateDetails(c *gin.Context) {
	patchSection(h, c, func(id uint, req DetailsPatch) (*DetailsResponse, error) {
		return h.service.UpdateDetails(c.Request.Context(), id, req)
	})
}

func (h *Handler) UpdateDuration(c *gin.Context) {
	patchSection(h, c, func(id uint, req DurationPatch) (*DurationResponse, error) {
		return h.service.UpdateDuration(c.Request.Context(), id, req)
	})
}

func (h *Handler) UpdateBill(c *gin.Context) {
	patchSection(h, c, func(id uint, req BillPatch) (*BillResponse, error) {
		return h.service.UpdateBill(c.Request.Context(), id, req)
	})
}

func (h *Handler) UpdatePlan(c *gin.Context) {
	planID, ok := parseUint(c, "plan_id")
	if !ok {
		h.writeServiceError(c, projecterrors.ErrInvalidPlanID)
		return
	}
	patchSection(h, c, func(id uint, req PlanPatch) (*PlanResponse, error) {
		return h.service.UpdatePlan(c.Request.Context(), id, planID, req)
	})
}

func (h *Handler) UpdateMember(c *gin.Context) {
	empID := strings.TrimSpace(c.Param("member_id"))
	patchSection(h, c, func(id uint, req MemberPatch) (*MemberResponse, error) {
		return h.service.UpdateMember(c.Request.Context(), id, empID, req)
	})
}
