package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/trendlens/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.CORSOrigins),
		errorHandlingMiddleware(handler.logger),
	)

	router.GET("/healthz", handler.Health)

	api := router.Group("/api/v1")
	{
		api.GET("/trending", handler.Trending)
		api.GET("/suggestions", handler.Suggestions)
		api.GET("/coach", handler.Coach)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("http request", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "request_id", c.GetString("request_id"), "latency_ms", latency.Milliseconds())
	}
}
