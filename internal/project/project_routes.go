package project

import (
	"go-hrfine/internal/middleware"
	"go-hrfine/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	auth gin.HandlerFunc,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	projects := r.Group("/projects")
	projects.Use(auth)
	projects.Use(middleware.ContextLogger(logger))
	{
		projects.POST("/generate-code",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProject, rbac.ActionCreate),
			handler.GenerateCode,
		)

		projects.POST("/submit-all",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProject, rbac.ActionCreate),
			middleware.Idempotency(rdb),
			handler.SubmitAll,
		)

		projects.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProject, rbac.ActionRead),
			handler.GetAll,
		)

		projects.GET("/assigned",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProject, rbac.ActionReadAssigned),
			handler.GetAssigned,
		)

		projects.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProject, rbac.ActionRead),
			handler.GetByID,
		)

		projects.POST("/:id/members",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProject, rbac.ActionUpdate),
			handler.AddMember,
		)

		edits := map[string]gin.HandlerFunc{
			"/:id/details":            handler.UpdateDetails,
			"/:id/duration":           handler.UpdateDuration,
			"/:id/bill":               handler.UpdateBill,
			"/:id/plans/:plan_id":     handler.UpdatePlan,
			"/:id/members/:member_id": handler.UpdateMember,
		}
		for path, h := range edits {
			projects.PATCH(path,
				middleware.RateLimitByUser(0.5, 2),
				middleware.RBACAuthorize(rbacService, rbac.ResourceProject, rbac.ActionUpdate),
				h,
			)
		}
	}
}
