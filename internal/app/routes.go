package app

import (
	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/cache"
	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/calendar"
	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/config"
	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/handlers"
	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/notify"
	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/repo"
	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/scheduler"
	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// newRouter wires repositories, services and handlers and registers all routes.
func newRouter(cfg config.Config, db *pgxpool.Pool, rdb *redis.Client, cal *calendar.Calendar) (*gin.Engine, *scheduler.Scheduler) {
	r := newEngine(cfg)
	log := newLogger(cfg)

	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	deadlineRepo := repo.NewPGDeadlineRepo(db)
	documentRepo := repo.NewPGDocumentRepo(db)
	expedienteRepo := repo.NewPGExpedienteRepo(db)
	notificationRepo := repo.NewPGNotificationRepo(db)

	deadlineCache := cache.NewDeadlineCache(rdb, cfg.Redis.DefaultTTL.Duration())
	deadlineSvc := service.NewDeadlineService(deadlineRepo, documentRepo, expedienteRepo, deadlineCache, cal, log)

	notifier := notify.NewPGNotifier(notificationRepo)
	dispatcher := notify.NewDispatcher(deadlineRepo, notifier, cal, cfg.Scheduler.ReminderLeadDuration(), log)

	deadlineHandler := handlers.NewDeadlineHandler(deadlineSvc, dispatcher)
	registerDeadlineRoutes(api, deadlineHandler)

	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	api.GET("/notifications", notificationHandler.List)

	sched := scheduler.New(deadlineSvc, dispatcher, log)
	return r, sched
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Deadline API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerDeadlineRoutes(api *gin.RouterGroup, h *handlers.DeadlineHandler) {
	api.POST("/deadlines", h.Create)
	api.GET("/deadlines", h.List)
	api.POST("/deadlines/calculate", h.Calculate)
	api.POST("/deadlines/update-overdue", h.UpdateOverdue)
	api.POST("/deadlines/check-notifications", h.CheckNotifications)
	api.GET("/deadlines/:id", h.GetByID)
	api.PATCH("/deadlines/:id", h.Update)
	api.DELETE("/deadlines/:id", h.Delete)
	api.POST("/deadlines/:id/complete", h.Complete)
}
