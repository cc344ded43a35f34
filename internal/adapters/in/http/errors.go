package http

import (
	"context"
	"errors"
	"net/http"

	"shiptrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	headerRetryAfter = "Retry-After"

	// retryAfterSeconds is advertised on 503 responses.
	retryAfterSeconds = "1"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeError(c echo.Context, status int, message string) error {
	if status == http.StatusServiceUnavailable {
		c.Response().Header().Set(headerRetryAfter, retryAfterSeconds)
	}
	return c.JSON(status, ErrorResponse{Code: status, Message: message})
}

// statusOf maps the error taxonomy onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errs.IsValidation(err), errors.Is(err, errs.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrVersionIsInvalid), errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err and logs the ones the caller cannot fix.
func (s *Server) respondError(c echo.Context, err error) error {
	status := statusOf(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("route", c.Path()),
			zap.Int("status", status),
			zap.Error(err),
		)
	}
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	return writeError(c, status, message)
}

// errorHandler renders errors raised by echo itself (unknown routes, bad
// bodies, panics recovered by middleware) in the same shape.
func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := http.StatusText(status)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			}
		} else {
			logger.Error("unhandled error", zap.String("route", c.Path()), zap.Error(err))
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = writeError(c, status, message)
		}
		if err != nil {
			logger.Error("write error response", zap.Error(err))
		}
	}
}
