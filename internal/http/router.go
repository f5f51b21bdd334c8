package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the API routes with logging and recovery middleware.
func NewRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(slogMiddleware(), gin.Recovery())

	api := r.Group("/api")
	api.GET("/overview", h.GetOverview)
	api.GET("/category/:name", h.GetCategory)
	api.GET("/file/*path", h.GetFile)
	api.GET("/search", h.Search)
	api.GET("/profile", h.GetProfile)

	return r
}

func slogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("[API] Request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()))
	}
}
