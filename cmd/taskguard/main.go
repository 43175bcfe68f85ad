package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/taskguard-api/api/swagger"
	"github.com/noah-isme/taskguard-api/internal/handler"
	"github.com/noah-isme/taskguard-api/internal/middleware"
	"github.com/noah-isme/taskguard-api/internal/models"
	"github.com/noah-isme/taskguard-api/internal/repository"
	"github.com/noah-isme/taskguard-api/internal/service"
	"github.com/noah-isme/taskguard-api/pkg/cache"
	"github.com/noah-isme/taskguard-api/pkg/config"
	"github.com/noah-isme/taskguard-api/pkg/database"
	"github.com/noah-isme/taskguard-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/taskguard-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/taskguard-api/pkg/middleware/requestid"
)

// @title TaskGuard API
// @version 1.0.0
// @description Multi-user task tracking with permission-based access control and security audit logging
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect database", "error", err)
	}
	defer db.Close()

	var throttle service.LoginThrottle
	if cfg.Throttle.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect redis", "error", err)
		}
		defer redisClient.Close()
		throttle = service.NewRedisLoginThrottle(redisClient, cfg.Throttle)
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	authSvc := service.NewAuthService(userRepo, auditRepo, throttle, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             cfg.JWT.Issuer,
	})
	taskSvc := service.NewTaskService(taskRepo, validate, logr)
	auditSvc := service.NewAuditService(auditRepo)
	metricsSvc := service.NewMetricsService()

	authHandler := handler.NewAuthHandler(authSvc)
	taskHandler := handler.NewTaskHandler(taskSvc)
	adminHandler := handler.NewAdminHandler(taskSvc, auditSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/refresh", authHandler.Refresh)

	authed := r.Group("", middleware.JWT(authSvc))
	{
		authed.POST("/logout", authHandler.Logout)
		authed.POST("/logout-all", authHandler.LogoutAll)
		authed.GET("/me", authHandler.Me)

		authed.GET("/", taskHandler.List)
		authed.POST("/create", taskHandler.Create)
		authed.GET("/edit/:id", taskHandler.GetForEdit)
		authed.POST("/edit/:id", taskHandler.Update)
		authed.GET("/delete/:id", taskHandler.GetForDelete)
		authed.POST("/delete/:id", taskHandler.Delete)

		authed.GET("/admin-dashboard", middleware.RequirePermission(models.PermissionViewTask), adminHandler.Dashboard)

		auditGuard := middleware.RequirePermission(models.PermissionViewLogEntry)
		authed.GET("/audit-logs", auditGuard, adminHandler.AuditLogs)
		authed.GET("/audit-logs/export", auditGuard, adminHandler.ExportAuditLogs)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
