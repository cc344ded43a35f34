package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"shiptrack/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

const healthCheckTimeout = 2 * time.Second

// NewEcho builds the echo instance with recovery, request logging, request
// metrics, /health, /metrics and the API routes of s.
func NewEcho(s *Server, m *metrics.Metrics, logger *zap.Logger, check HealthCheck) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.OFF)
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))
	if m != nil {
		e.Use(instrument(m))
	}

	e.GET("/health", func(c echo.Context) error {
		if check != nil {
			ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
			defer cancel()
			if err := check(ctx); err != nil {
				logger.Warn("health check failed", zap.Error(err))
				return writeError(c, http.StatusServiceUnavailable, "Unhealthy")
			}
		}
		return c.String(http.StatusOK, "Healthy")
	})
	if m != nil {
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}

	s.Register(e)
	return e
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			logger.Info("request", fields...)
			return nil
		},
	})
}

// instrument records request counts and latency by route template, so ids in
// paths do not blow up label cardinality.
func instrument(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.HTTPRequests.WithLabelValues(route, c.Request().Method, strconv.Itoa(c.Response().Status)).Inc()
			m.HTTPLatencyMS.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
			return nil
		}
	}
}
