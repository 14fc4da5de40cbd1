package middlewares

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sunshare/internal/metrics"
)

const (
	TraceIDHeader = "X-Trace-ID"
	loggerKey     = "logger"
)

// RequestLogger logs each request with a trace id and records its duration.
// A valid X-Trace-ID from the client is reused; otherwise a new one is issued.
func RequestLogger(log *slog.Logger, m *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = uuid.New().String()
		}
		c.Header(TraceIDHeader, traceID)

		reqLog := log.With("trace_id", traceID)
		c.Set(loggerKey, reqLog)

		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		m.RequestDuration.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())

		reqLog.Info("Request finished",
			"http_method", c.Request.Method,
			"http_path", c.Request.URL.Path,
			"remote_addr", c.ClientIP(),
			"status_code", status,
			"bytes_written", c.Writer.Size(),
			"duration_ms", elapsed.Milliseconds(),
		)
	}
}

// LoggerFrom returns the request-scoped logger, or fallback outside
// RequestLogger.
func LoggerFrom(c *gin.Context, fallback *slog.Logger) *slog.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if l, ok := v.(*slog.Logger); ok {
			return l
		}
	}
	return fallback
}
