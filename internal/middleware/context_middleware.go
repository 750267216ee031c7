package middleware

import (
	"strconv"

	"go-hrfine/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger propagates the caller identity and a request scoped logger
// into the standard context so services can read them without gin.
// It runs after AuthMiddleware; on public routes the identity fields are empty.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString(KeyRequestID)

		uid := ""
		if id := c.GetUint(KeyUserID); id > 0 {
			uid = strconv.FormatUint(uint64(id), 10)
		}
		empID := c.GetString(KeyEmpID)
		role := c.GetString(KeyRole)

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("user_id", uid),
			zap.String("emp_id", empID),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithUserID(ctx, uid)
		ctx = contextutil.WithEmpID(ctx, empID)
		ctx = contextutil.WithRole(ctx, role)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
