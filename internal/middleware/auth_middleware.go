package middleware

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "go-hrfine/internal/auth/errors"
	"go-hrfine/internal/shared/apperror"
	"go-hrfine/internal/shared/response"
	"go-hrfine/internal/shared/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Keys written into the gin context by AuthMiddleware.
const (
	KeyUserID         = "user_id"
	KeyEmpID          = "emp_id"
	KeyRole           = "role"
	KeyResetStatus    = "reset_status"
	KeySessionID      = "session_id"
	KeyTokenID        = "token_id"
	KeyTokenExpiresAt = "token_expires_at"
)

type AccessTokenParser interface {
	ParseAccess(raw string) (*token.Claims, error)
}

type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthMiddleware verifies the bearer token (or the access_token cookie) and
// stores the caller identity on the gin context. denylist may be nil.
func AuthMiddleware(tokens AccessTokenParser, denylist RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			raw = ""
		}
		raw = strings.TrimSpace(raw)

		if raw == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				raw = cookie
			}
		}

		if raw == "" {
			abortWith(c, autherrors.ErrTokenMissing)
			return
		}

		claims, err := tokens.ParseAccess(raw)
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				abortWith(c, autherrors.ErrTokenExpired)
				return
			}
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		userID, err := claims.UserID()
		if err != nil || userID == 0 || claims.EmpID == "" {
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		if denylist != nil {
			revoked, err := denylist.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				// fail open when the denylist store is unreachable
				zap.L().Named("middleware.auth").Warn("denylist lookup failed", zap.Error(err))
			} else if revoked {
				abortWith(c, autherrors.ErrTokenRevoked)
				return
			}
		}

		c.Set(KeyUserID, userID)
		c.Set(KeyEmpID, claims.EmpID)
		c.Set(KeyRole, claims.Role)
		c.Set(KeyResetStatus, claims.ResetStatus)
		c.Set(KeySessionID, claims.SessionID)
		c.Set(KeyTokenID, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(KeyTokenExpiresAt, claims.ExpiresAt.Time)
		} else {
			c.Set(KeyTokenExpiresAt, time.Time{})
		}

		c.Next()
	}
}

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Abort(c, err.HTTPStatus, err.Code, err.Message)
}
