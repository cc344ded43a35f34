// Package http serves the order lifecycle and public tracking API with echo.
// Callers are identified by headers set by the authenticating gateway.
package http

import (
	"context"
	"errors"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
}

type UpdateOrderStatusHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
}

type FlagOrderHandler interface {
	Handle(ctx context.Context, cmd commands.FlagOrderCommand) (*order.Order, error)
}

type AddTrackingEventHandler interface {
	Handle(ctx context.Context, cmd commands.AddTrackingEventCommand) (bool, error)
}

type AssignCourierHandler interface {
	Handle(ctx context.Context, cmd commands.AssignCourierCommand) (*order.Order, error)
}

type GetOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
}

type GetOrdersForUserHandler interface {
	Handle(ctx context.Context, query queries.GetOrdersForUserQuery) ([]queries.OrderView, error)
}

type GetTrackingViewHandler interface {
	Handle(ctx context.Context, query queries.GetOrderByTrackingNumberQuery) (queries.TrackingView, bool, error)
}

type GetOrderTimelineHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) ([]queries.TrackingEventView, error)
}

type QuoteHandler interface {
	Handle(ctx context.Context, query queries.QuoteQuery) (queries.QuoteView, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateOrder       CreateOrderHandler
	UpdateOrderStatus UpdateOrderStatusHandler
	FlagOrder         FlagOrderHandler
	AddTrackingEvent  AddTrackingEventHandler
	AssignCourier     AssignCourierHandler

	// Query handlers
	GetOrder         GetOrderHandler
	GetOrdersForUser GetOrdersForUserHandler
	GetTrackingView  GetTrackingViewHandler
	GetOrderTimeline GetOrderTimelineHandler
	Quote            QuoteHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

func NewServer(handlers Handlers, logger *zap.Logger, m *metrics.Metrics) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger,
		metrics:  m,
	}
}

// Register mounts every route under /api/v1.
func (s *Server) Register(e *echo.Echo) {
	api := e.Group("/api/v1")

	orders := api.Group("/orders")
	orders.POST("", s.CreateOrder, authenticated(kernel.RoleSeller))
	orders.GET("", s.GetOrders, authenticated())
	orders.GET("/:id", s.GetOrder, authenticated())
	orders.PUT("/:id/status", s.UpdateOrderStatus, authenticated(kernel.RoleCourier, kernel.RoleSeller))
	orders.POST("/:id/flag", s.FlagOrder, authenticated(kernel.RoleBuyer))
	orders.POST("/:id/events", s.AddTrackingEvent, authenticated(kernel.RoleCourier, kernel.RoleSeller))
	orders.POST("/:id/location", s.RecordLocation, authenticated(kernel.RoleCourier))
	orders.PUT("/:id/courier", s.AssignCourier, authenticated(kernel.RoleSeller))

	tracking := api.Group("/tracking")
	tracking.GET("/public/:trackingNumber", s.TrackOrder)
	tracking.GET("/:orderId/timeline", s.GetOrderTimeline, authenticated())

	api.GET("/quote", s.Quote)
}

// record counts a lifecycle operation by outcome.
func (s *Server) record(operation string, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.OrderOperations.WithLabelValues(operation, outcomeOf(err)).Inc()
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, errs.ErrUnavailable):
		return "unavailable"
	case errs.IsDomain(err):
		return "rejected"
	default:
		return "error"
	}
}
