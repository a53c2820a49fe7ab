package app

import (
	"database/sql"
	"net/http"

	"github.com/Dr-Min/Scheduler/internal/cache"
	"github.com/Dr-Min/Scheduler/internal/config"
	"github.com/Dr-Min/Scheduler/internal/handlers"
	"github.com/Dr-Min/Scheduler/internal/repo"
	"github.com/Dr-Min/Scheduler/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine. rdb may be nil; the
// schedule cache is disabled then.
func Setup(r *gin.Engine, cfg config.Config, db *sql.DB, rdb *redis.Client) {
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/test_db", testDBHandler(db))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	scheduleRepo := repo.NewSQLiteScheduleRepo(db)
	var scheduleCache *cache.ScheduleCache
	if rdb != nil {
		scheduleCache = cache.NewScheduleCache(rdb, cfg.Redis.DefaultTTL.Duration())
	}
	scheduleSvc := service.NewScheduleService(scheduleRepo, scheduleCache)
	scheduleHandler := handlers.NewScheduleHandler(scheduleSvc)

	api := r.Group("/api")
	registerScheduleRoutes(api, scheduleHandler)
	api.GET("/download_db", handlers.DownloadDB(cfg.DB.Path))

	// Everything unmatched, "/" included, is the SPA bundle.
	r.NoRoute(handlers.SPAFallback(cfg.Static.Dir))
}

func registerScheduleRoutes(api *gin.RouterGroup, h *handlers.ScheduleHandler) {
	api.GET("/schedules", h.List)
	api.POST("/schedules", h.Create)
	api.PUT("/schedules/:id", h.Update)
	api.GET("/schedules/:user", h.ListByUser)
	api.GET("/schedules/:user/:date", h.GetByUserDate)
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

func testDBHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.String(http.StatusOK, "Database connection failed: %v", err)
			return
		}
		c.String(http.StatusOK, "Database connection successful")
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
