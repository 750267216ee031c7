package auth

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
	public := r.Group("/auth")
	{
		public.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		public.POST("/refresh", middleware.RateLimitByIP(0.5, 5), handler.Refresh)
		public.POST("/reset-password", middleware.RateLimitByIP(0.05, 3), handler.ResetPassword)
	}

	private := r.Group("/auth")
	private.Use(auth)
	private.Use(middleware.ContextLogger(logger))
	{
		private.GET("/me", middleware.RateLimitByUser(2, 5), handler.Me)
		private.POST("/logout", middleware.RateLimitByUser(2, 5), handler.Logout)
		private.POST("/change-password", middleware.RateLimitByUser(0.2, 3), handler.ChangePassword)
		private.POST("/change-temp-password", middleware.RateLimitByUser(0.2, 3), handler.ChangeTempPassword)

		private.POST("/register",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionCreate),
			handler.Register,
		)
	}
}
