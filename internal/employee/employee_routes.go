package employee

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
	employees := r.Group("/employees")
	employees.Use(auth)
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.POST("/submit-all",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionCreate),
			middleware.Idempotency(rdb),
			handler.SubmitAll,
		)

		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionRead),
			handler.GetAll,
		)

		employees.GET("/managers",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionRead),
			handler.GetManagers,
		)

		employees.GET("/:emp_id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionRead),
			handler.GetByEmpID,
		)

		sections := map[string]gin.HandlerFunc{
			"/personal-info":        handler.UpdatePersonalInfo,
			"/address-info":         handler.UpdateAddressInfo,
			"/registration-address": handler.UpdateRegistrationAddress,
			"/contact-info":         handler.UpdateContactInfo,
			"/hiring-info":          handler.UpdateHiringInfo,
			"/payment-info":         handler.UpdatePaymentInfo,
			"/deduction-info":       handler.UpdateDeductionInfo,
		}
		for path, h := range sections {
			employees.PATCH("/:emp_id"+path,
				middleware.RateLimitByUser(0.5, 2),
				middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionUpdate),
				h,
			)
		}
	}
}
