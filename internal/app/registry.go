package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"go-hrfine/internal/auth"
	"go-hrfine/internal/client"
	"go-hrfine/internal/config"
	"go-hrfine/internal/employee"
	"go-hrfine/internal/lookup"
	"go-hrfine/internal/messaging/outbox"
	"go-hrfine/internal/middleware"
	"go-hrfine/internal/notification"
	"go-hrfine/internal/project"
	"go-hrfine/internal/rbac"
	"go-hrfine/internal/rbac/infra"
	"go-hrfine/internal/shared/apperror"
	"go-hrfine/internal/shared/counter"
	"go-hrfine/internal/shared/dateutil"
	"go-hrfine/internal/shared/response"
	"go-hrfine/internal/shared/token"
	"go-hrfine/internal/timesheet"
	"go-hrfine/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const apiPrefix = "/api/v1"

// newNotifier picks the mail transport for the configured mode.
func newNotifier(cfg *config.Config, gormDB *gorm.DB, logger *zap.Logger) (*notification.Service, error) {
	var dispatcher notification.Dispatcher
	if cfg.Notification.Mode == config.NotificationOutbox {
		dispatcher = notification.NewOutboxDispatcher(outbox.NewRepository(gormDB), cfg.NotificationTopic())
	} else {
		dispatcher = notification.NewDirectDispatcher(notification.NewSMTPMailer(cfg.SMTP))
	}
	return notification.NewService(dispatcher, cfg.SMTP.Company, logger)
}

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	clock := dateutil.NewClock(cfg.Location())

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	clientRepo := client.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	lookupRepo := lookup.NewRepository(gormDB)
	projectRepo := project.NewRepository(gormDB)
	timesheetRepo := timesheet.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.App.PolicyFile)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	// --- Auth ---
	tokens := token.NewManager(cfg.JWT)
	denylist := token.NewDenylist(rdb)
	authenticate := middleware.AuthMiddleware(tokens, denylist)

	notifier, err := newNotifier(cfg, gormDB, logger)
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(db, authRepo, userRepo, counterRepo, tokens, denylist, notifier, logger)
	clientService := client.NewService(db, clientRepo, lookupRepo, logger)
	employeeService := employee.NewService(db, employeeRepo, userRepo, lookupRepo, logger)
	lookupService := lookup.NewService(db, lookupRepo, rdb, cfg.Redis.CacheTTL, logger)
	projectService := project.NewService(db, projectRepo, clientRepo, lookupRepo, userRepo, employeeRepo, clock, logger)
	timesheetService := timesheet.NewService(db, timesheetRepo, projectRepo, clock, logger)
	userService := user.NewService(db, userRepo, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if created, err := authService.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		return err
	} else if created {
		logger.Info("bootstrap admin created", zap.String("email", cfg.Admin.Email))
	}

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger).WithSecureCookies(cfg.IsProduction())
	clientHandler := client.NewHandler(clientService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	lookupHandler := lookup.NewHandler(lookupService, logger)
	projectHandler := project.NewHandler(projectService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)
	timesheetHandler := timesheet.NewHandler(timesheetService, logger)
	userHandler := user.NewHandler(userService, logger)

	router.GET("/healthz", healthz(db))

	// --- Routes Registration ---
	api := router.Group(apiPrefix)
	{
		auth.RegisterRoutes(api, authHandler, rbacService, authenticate, logger)
		client.RegisterRoutes(api, clientHandler, rbacService, authenticate, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, authenticate, rdb, logger)
		lookup.RegisterRoutes(api, lookupHandler, rbacService, authenticate, logger)
		project.RegisterRoutes(api, projectHandler, rbacService, authenticate, rdb, logger)
		rbac.RegisterRoutes(api, rbacHandler, authenticate)
		timesheet.RegisterRoutes(api, timesheetHandler, rbacService, authenticate, logger)
		user.RegisterRoutes(api, userHandler, rbacService, authenticate, logger)
	}

	return nil
}

type pinger interface {
	PingContext(ctx context.Context) error
}

func healthz(db pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			response.Error(c, http.StatusServiceUnavailable, apperror.CodeServiceUnavailable, "database unavailable", nil)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	}
}
