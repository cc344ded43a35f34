package http

import (
	"net/http"
	"strconv"
	"strings"

	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TrackOrder handles GET /api/v1/tracking/public/:trackingNumber. It needs no
// identity.
func (s *Server) TrackOrder(c echo.Context) error {
	query, err := queries.NewGetOrderByTrackingNumberQuery(c.Param("trackingNumber"))
	if err != nil {
		return s.respondError(c, err)
	}

	view, found, err := s.handlers.GetTrackingView.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	if !found {
		return writeError(c, http.StatusNotFound, "Tracking number not found")
	}

	return c.JSON(http.StatusOK, view)
}

// GetOrderTimeline handles GET /api/v1/tracking/:orderId/timeline.
func (s *Server) GetOrderTimeline(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.respondError(c, err)
	}
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.respondError(c, err)
	}

	events, err := s.handlers.GetOrderTimeline.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, events)
}

// Quote handles GET /api/v1/quote?weight=&value=.
func (s *Server) Quote(c echo.Context) error {
	weight, err := parseFloat("weight", c.QueryParam("weight"))
	if err != nil {
		return s.respondError(c, err)
	}
	value, err := parseDecimal("value", c.QueryParam("value"))
	if err != nil {
		return s.respondError(c, err)
	}

	query, err := queries.NewQuoteQuery(weight, value)
	if err != nil {
		return s.respondError(c, err)
	}

	quote, err := s.handlers.Quote.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, quote)
}

func parseUUID(name, raw string) (kernel.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(name)
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func parseFloat(name, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errs.NewValueIsRequiredError(name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}

func parseDecimal(name, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, errs.NewValueIsRequiredError(name)
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}
