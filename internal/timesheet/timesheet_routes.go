package timesheet

import (
	"go-hrfine/internal/middleware"
	"go-hrfine/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	auth gin.HandlerFunc,
	logger *zap.Logger,
) {
	stamps := r.Group("/time-stamps")
	stamps.Use(auth)
	stamps.Use(middleware.ContextLogger(logger))
	{
		stamps.POST("",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTimesheet, rbac.ActionCreate),
			handler.Create,
		)

		stamps.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTimesheet, rbac.ActionRead),
			handler.Week,
		)

		// Pure arithmetic, so any signed-in user may call it.
		stamps.POST("/total-time",
			middleware.RateLimitByUser(5, 10),
			handler.TotalTime,
		)

		stamps.PATCH("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTimesheet, rbac.ActionUpdate),
			handler.Update,
		)

		stamps.DELETE("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTimesheet, rbac.ActionDelete),
			handler.Delete,
		)
	}
}
