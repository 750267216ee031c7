package lookup

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
	lookups := r.Group("/lookups")
	lookups.Use(auth)
	lookups.Use(middleware.ContextLogger(logger))
	{
		lookups.GET("/:kind",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLookup, rbac.ActionRead),
			handler.List,
		)

		lookups.POST("/:kind",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLookup, rbac.ActionCreate),
			handler.Create,
		)

		lookups.PUT("/positions/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLookup, rbac.ActionUpdate),
			handler.UpdatePosition,
		)
	}
}
