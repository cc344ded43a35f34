package queries

import (
	"context"
	"time"
)

// GetTrackingViewQueryHandler serves the public tracking page. It takes the
// same query as GetOrderByTrackingNumberQueryHandler but returns the reduced
// TrackingView.
type GetTrackingViewQueryHandler struct {
	reader  OrderReader
	timeout time.Duration
}

func NewGetTrackingViewQueryHandler(reader OrderReader, timeout time.Duration) GetTrackingViewQueryHandler {
	return GetTrackingViewQueryHandler{reader: reader, timeout: timeout}
}

func (h GetTrackingViewQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByTrackingNumberQuery,
) (view TrackingView, found bool, err error) {
	o, found, err := findByTrackingNumber(ctx, h.reader, h.timeout, query)
	if err != nil || !found {
		return TrackingView{}, found, err
	}
	return NewTrackingView(o), true, nil
}
