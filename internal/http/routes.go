package http

import (
	"time"

	"taskvault/internal/config"
	"taskvault/internal/http/handlers"
	"taskvault/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config) {
	h := handlers.NewHandler(db, handlers.HandlerConfig{
		TokenTTL:     cfg.TokenTTL,
		CookieSecure: cfg.CookieSecure,
	})
	healthHandler := handlers.NewHealthHandler(db)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// Redis-backed limiter when configured, in-memory fallback otherwise.
	rateLimit := func(max int, window time.Duration) gin.HandlerFunc {
		if cfg.RedisAddr != "" {
			return middleware.RedisRateLimit(max, window)
		}
		return middleware.SimpleRateLimit(max, window)
	}

	api := r.Group("/api")
	api.Use(rateLimit(cfg.APIRateLimit, cfg.APIRateWindow))

	// Auth, rate limited harder to damp credential stuffing
	auth := api.Group("/auth")
	auth.Use(rateLimit(cfg.AuthRateLimit, cfg.AuthRateWindow))
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
	}

	// Current user
	api.GET("/me", middleware.Auth(), h.Me)

	// Tasks, every route owner-scoped behind the auth gate
	task := api.Group("/task")
	task.Use(middleware.Auth())
	{
		task.POST("", h.CreateTask)
		task.GET("/all", h.ListTasks)
		task.GET("/:id", h.GetTask)
		task.PUT("/:id", h.UpdateTask)
		task.DELETE("/:id", h.DeleteTask)
		task.DELETE("", h.DeleteAllTasks)
		task.PATCH("/:id/completion", h.CompleteTask)
		task.PATCH("/:id/priority", h.SetTaskPriority)
	}
}
