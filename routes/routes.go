package routes

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/sharath018/event-management-backend/config"
	_ "github.com/sharath018/event-management-backend/docs"
	"github.com/sharath018/event-management-backend/internal/auditlog"
	"github.com/sharath018/event-management-backend/internal/auth"
	"github.com/sharath018/event-management-backend/internal/event"
	"github.com/sharath018/event-management-backend/internal/feedback"
	"github.com/sharath018/event-management-backend/internal/metrics"
	"github.com/sharath018/event-management-backend/internal/notification"
	"github.com/sharath018/event-management-backend/internal/reports"
	"github.com/sharath018/event-management-backend/middleware"
	"github.com/sharath018/event-management-backend/utils"
)

// Deps are the process-wide resources the router is built from.
type Deps struct {
	Config    *config.Config
	DB        *gorm.DB
	Redis     *redis.Client // nil disables the shared limiter store
	Publisher notification.Publisher
}

// NewRouter returns an engine with the global middleware stack and every route mounted.
func NewRouter(deps Deps) (*gin.Engine, error) {
	r := gin.New()
	// forwarded-for headers are honoured only from these peers; none by default
	if err := r.SetTrustedProxies(deps.Config.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		utils.SendError(c, http.StatusInternalServerError, "internal server error")
	}))
	r.Use(metrics.Middleware())
	r.Use(cors.New(corsConfig(deps.Config.CORSOrigins)))

	if err := Setup(r, deps); err != nil {
		return nil, err
	}
	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", "Location", "WWW-Authenticate", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

func Setup(r *gin.Engine, deps Deps) error {
	cfg := deps.Config
	db := deps.DB
	utils.UseJSONFieldNames()
	publisher := deps.Publisher
	if publisher == nil {
		publisher = notification.NopPublisher{}
	}

	r.GET("/health", healthHandler(db, deps.Redis))
	r.GET("/metrics", metrics.Handler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limit, err := middleware.RateLimiter(cfg.RateLimitPerMinute, deps.Redis)
	if err != nil {
		return err
	}

	api := r.Group("/api/v1")
	api.Use(limit)
	api.Use(middleware.AuditMiddleware()) // Audit middleware to capture IP

	// ========== Audit Logs ==========
	auditRepo := auditlog.NewRepository(db)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	// ========== Users ==========
	authRepo := auth.NewRepository(db)
	authSvc := auth.NewService(authRepo, cfg, auditSvc, publisher)
	authHandler := auth.NewHandler(authSvc, cfg.BaseURL)

	// ========== Feedback ==========
	feedbackRepo := feedback.NewRepository(db)
	feedbackSvc := feedback.NewService(feedbackRepo, auditSvc, publisher)
	feedbackHandler := feedback.NewHandler(feedbackSvc)

	// ========== Events ==========
	eventRepo := event.NewRepository(db)
	eventSvc := event.NewService(eventRepo, cfg, auditSvc, publisher)
	eventHandler := event.NewHandler(eventSvc, cfg.BaseURL)

	// ========== Reports ==========
	reportSvc := reports.NewService(eventSvc, reports.NewReportExporter(), auditSvc)
	reportHandler := reports.NewHandler(reportSvc)

	// public
	api.POST("/users", authHandler.CreateUser)
	api.GET("/users/:id", authHandler.GetUser)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))
	{
		protected.GET("/users", authHandler.ListUsers)
		protected.GET("/token", authHandler.IssueToken)

		protected.POST("/feedback", feedbackHandler.Submit)

		protected.GET("/events", eventHandler.ListEvents)
		protected.GET("/events/:id", eventHandler.GetEventByID)
		protected.POST("/join/:id", eventHandler.JoinEvent)
		protected.GET("/going/:id", eventHandler.Going)
	}

	admin := protected.Group("")
	admin.Use(middleware.RequireAdmin(auditSvc))
	{
		admin.POST("/events", eventHandler.CreateEvent)
		admin.PUT("/admin/:id", authHandler.PromoteAdmin)
		// exports carry attendee contact details
		admin.GET("/going/:id/export", reportHandler.ExportAttendees)

		admin.GET("/auditlogs", auditHandler.GetAuditLogs)
		admin.GET("/auditlogs/:id", auditHandler.GetAuditLogByID)
	}

	return nil
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

func healthHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		resp := HealthResponse{Status: "ok", Database: "ok", Redis: "disabled"}
		status := http.StatusOK

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			log.Error().Err(err).Msg("health: database ping failed")
			resp.Status, resp.Database = "unavailable", "error"
			status = http.StatusServiceUnavailable
		}

		if rdb != nil {
			resp.Redis = "ok"
			if err := rdb.Ping(ctx).Err(); err != nil {
				// the limiter degrades, the API keeps serving
				log.Warn().Err(err).Msg("health: redis ping failed")
				resp.Redis = "error"
				if status == http.StatusOK {
					resp.Status = "degraded"
				}
			}
		}

		c.JSON(status, resp)
	}
}
