package rest

import (
	"github.com/dmitrijs2005/gatewayauth/internal/logging"
	"github.com/dmitrijs2005/gatewayauth/internal/server/metrics"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the middleware chain and all routes.
func NewRouter(h *Handler, m *metrics.Metrics, l logging.Logger) *gin.Engine {
	r := gin.New()
	r.Use(requestIDMiddleware(), gin.Recovery(), accessLogMiddleware(l), metricsMiddleware(m))

	v1 := r.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/logout", h.requireAuth, h.Logout)
		authGroup.GET("/me", h.requireAuth, h.Me)

		v1.GET("/metrics/current", h.requireAuth, h.CurrentMetrics)
		v1.GET("/gateway/status", h.Status)
	}

	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	return r
}
