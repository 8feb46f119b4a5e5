package rest

import (
	"time"

	"github.com/dmitrijs2005/gatewayauth/internal/common"
	"github.com/dmitrijs2005/gatewayauth/internal/logging"
	"github.com/dmitrijs2005/gatewayauth/internal/server/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const unmatchedRoute = "unmatched"

// requestIDMiddleware keeps an incoming X-Request-ID or generates one, echoes
// it in the response and stores it in the request context for logging.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(common.RequestIDHeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(common.RequestIDHeaderName, id)
		c.Request = c.Request.WithContext(logging.ContextWithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

func accessLogMiddleware(l logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.Last().Error())
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			l.Error(ctx, "request failed", args...)
		case status >= 400:
			l.Warn(ctx, "request rejected", args...)
		default:
			l.Info(ctx, "request served", args...)
		}
	}
}

func metricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		m.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
