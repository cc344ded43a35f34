package http

import (
	"net/http"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := req.toCommand(identityFrom(c).UserID)
	if err != nil {
		return s.respondError(c, err)
	}

	o, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	s.record("create", err)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, queries.NewOrderView(o))
}

// GetOrders handles GET /api/v1/orders, listing the caller's orders by role.
func (s *Server) GetOrders(c echo.Context) error {
	id := identityFrom(c)
	query, err := queries.NewGetOrdersForUserQuery(id.UserID, id.Role.String())
	if err != nil {
		return s.respondError(c, err)
	}

	views, err := s.handlers.GetOrdersForUser.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, views)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.respondError(c, err)
	}

	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, view)
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "Invalid request body")
	}
	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(
		orderID, status, req.Location, req.Description, identityFrom(c).Actor())
	if err != nil {
		return s.respondError(c, err)
	}

	o, err := s.handlers.UpdateOrderStatus.Handle(c.Request().Context(), cmd)
	s.record("update_status", err)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, queries.NewOrderView(o))
}

// FlagOrder handles POST /api/v1/orders/:id/flag?reason=.
func (s *Server) FlagOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewFlagOrderCommand(orderID, c.QueryParam("reason"), identityFrom(c).Actor())
	if err != nil {
		return s.respondError(c, err)
	}

	o, err := s.handlers.FlagOrder.Handle(c.Request().Context(), cmd)
	s.record("flag", err)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, queries.NewOrderView(o))
}

// AddTrackingEvent handles POST /api/v1/orders/:id/events. An unknown order
// is not an error: the response reports applied=false.
func (s *Server) AddTrackingEvent(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}
	var req TrackingEventRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAddTrackingEventCommand(
		orderID, req.Status, req.Description, req.Location, identityFrom(c).Actor())
	if err != nil {
		return s.respondError(c, err)
	}

	return s.applySubEvent(c, "add_event", cmd)
}

// RecordLocation handles POST /api/v1/orders/:id/location.
func (s *Server) RecordLocation(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}
	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewRecordLocationCommand(orderID, req.Location, identityFrom(c).Actor())
	if err != nil {
		return s.respondError(c, err)
	}

	return s.applySubEvent(c, "record_location", cmd)
}

func (s *Server) applySubEvent(c echo.Context, operation string, cmd commands.AddTrackingEventCommand) error {
	applied, err := s.handlers.AddTrackingEvent.Handle(c.Request().Context(), cmd)
	s.record(operation, err)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, AppliedResponse{Applied: applied})
}

// AssignCourier handles PUT /api/v1/orders/:id/courier.
func (s *Server) AssignCourier(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}
	var req AssignCourierRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "Invalid request body")
	}
	courierID, err := parseUUID("courier id", req.CourierID)
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, courierID, identityFrom(c).Actor())
	if err != nil {
		return s.respondError(c, err)
	}

	o, err := s.handlers.AssignCourier.Handle(c.Request().Context(), cmd)
	s.record("assign_courier", err)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, queries.NewOrderView(o))
}

func pathUUID(c echo.Context, param string) (kernel.UUID, error) {
	return parseUUID(param, c.Param(param))
}
