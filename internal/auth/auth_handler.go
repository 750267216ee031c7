package auth

import (
	"net/http"
	"strings"

	"go-hrfine/internal/middleware"
	"go-hrfine/internal/shared/apperror"
	"go-hrfine/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	HeaderClientType  = "X-Client-Type"
	CookieAccessToken = "access_token"
	CookieRefresh     = "refresh_token"
)

type Handler struct {
	service       Service
	secureCookies bool
	logger        *zap.Logger
}

func NewHandler(s Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, logger: l}
}

// WithSecureCookies marks session cookies Secure, for TLS deployments.
func (h *Handler) WithSecureCookies(secure bool) *Handler {
	h.secureCookies = secure
	return h
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("auth request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func bindError(c *gin.Context, err error) {
	appErr := apperror.MapValidationError(err)
	response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", appErr.Message, nil)
}

func isWebClient(c *gin.Context) bool {
	return strings.EqualFold(strings.TrimSpace(c.GetHeader(HeaderClientType)), "web")
}

func (h *Handler) setCookie(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if isWebClient(c) {
		h.setCookie(c, CookieAccessToken, resp.AccessToken, int(resp.ExpiresIn))
		h.setCookie(c, CookieRefresh, resp.RefreshToken, 0)
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Refresh(c *gin.Context) {
	var raw string
	if isWebClient(c) {
		raw, _ = c.Cookie(CookieRefresh)
	}
	if raw == "" {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		raw = req.RefreshToken
	}

	resp, err := h.service.Refresh(c.Request.Context(), raw)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if isWebClient(c) {
		h.setCookie(c, CookieAccessToken, resp.AccessToken, int(resp.ExpiresIn))
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	sess := Session{
		UserID:    c.GetUint(middleware.KeyUserID),
		SessionID: c.GetString(middleware.KeySessionID),
		TokenID:   c.GetString(middleware.KeyTokenID),
		ExpiresAt: c.GetTime(middleware.KeyTokenExpiresAt),
	}
	if err := h.service.Logout(c.Request.Context(), sess); err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.setCookie(c, CookieAccessToken, "", -1)
	h.setCookie(c, CookieRefresh, "", -1)
	response.Success(c, http.StatusOK, MessageResponse{Message: "Logged out successfully"}, nil)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), c.GetUint(middleware.KeyUserID), req); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, MessageResponse{Message: "Password changed successfully"}, nil)
}

func (h *Handler) ChangeTempPassword(c *gin.Context) {
	var req ChangeTempPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.service.ChangeTempPassword(c.Request.Context(), c.GetUint(middleware.KeyUserID), req); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, MessageResponse{Message: "Password reset successfully"}, nil)
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req.Email); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, MessageResponse{
		Message: "If the email is registered, a temporary password has been sent",
	}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	resp, err := h.service.Me(c.Request.Context(), c.GetUint(middleware.KeyUserID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
