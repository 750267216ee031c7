package client

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
	clients := r.Group("/clients")
	clients.Use(auth)
	clients.Use(middleware.ContextLogger(logger))
	{
		clients.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceClient, rbac.ActionRead),
			handler.GetAll,
		)

		clients.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceClient, rbac.ActionRead),
			handler.GetByID,
		)

		clients.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceClient, rbac.ActionCreate),
			handler.Create,
		)

		clients.POST("/generate-code",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceClient, rbac.ActionCreate),
			handler.GenerateCode,
		)

		clients.PATCH("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceClient, rbac.ActionUpdate),
			handler.Update,
		)
	}
}
