// Package notifications delivers order notifications off the request path.
// Commands hand messages to a Dispatcher, which queues them and lets a fixed
// pool of workers push them through a ports.NotificationPublisher.
package notifications

import (
	"context"
	"sync"
	"time"

	"shiptrack/internal/core/ports"
	"shiptrack/internal/pkg/metrics"

	"go.uber.org/zap"
)

const (
	resultSent    = "sent"
	resultFailed  = "failed"
	resultDropped = "dropped"
)

// Dispatcher implements ports.Notifier. Notify never blocks: when the queue
// is full the notification is dropped and logged. Delivery failures are
// logged and counted, never retried.
type Dispatcher struct {
	publisher ports.NotificationPublisher
	queue     chan ports.Notification
	workers   int
	timeout   time.Duration
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

// NewDispatcher creates a dispatcher with a queue of bufferSize entries.
// Nothing is delivered until Run is called.
func NewDispatcher(
	publisher ports.NotificationPublisher,
	workers, bufferSize int,
	timeout time.Duration,
	logger *zap.Logger,
	m *metrics.Metrics,
) *Dispatcher {
	return &Dispatcher{
		publisher: publisher,
		queue:     make(chan ports.Notification, max(bufferSize, 1)),
		workers:   max(workers, 1),
		timeout:   timeout,
		logger:    logger,
		metrics:   m,
	}
}

// Notify enqueues n. The caller's context is not used for delivery, which
// outlives the request that triggered it.
func (d *Dispatcher) Notify(_ context.Context, n ports.Notification) {
	select {
	case d.queue <- n:
		d.metrics.NotificationsQueue.Set(float64(len(d.queue)))
	default:
		d.metrics.Notifications.WithLabelValues(string(n.Kind), resultDropped).Inc()
		d.logger.Warn("notification queue full, dropping",
			zap.String("kind", string(n.Kind)),
			zap.String("order_number", n.OrderNumber),
		)
	}
}

// Run starts the workers and blocks until ctx is done. Notifications still
// queued at that point are delivered before Run returns.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.logger.Info("notification dispatcher started", zap.Int("workers", d.workers))

	var wg sync.WaitGroup
	for range d.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.work(ctx)
		}()
	}
	wg.Wait()

	d.logger.Info("notification dispatcher stopped")
	return nil
}

func (d *Dispatcher) work(ctx context.Context) {
	for {
		select {
		case n := <-d.queue:
			d.deliver(n)
		case <-ctx.Done():
			d.drain()
			return
		}
	}
}

func (d *Dispatcher) drain() {
	for {
		select {
		case n := <-d.queue:
			d.deliver(n)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(n ports.Notification) {
	d.metrics.NotificationsQueue.Set(float64(len(d.queue)))

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := d.publisher.Publish(ctx, n); err != nil {
		d.metrics.Notifications.WithLabelValues(string(n.Kind), resultFailed).Inc()
		d.logger.Error("notification delivery failed",
			zap.String("kind", string(n.Kind)),
			zap.String("order_number", n.OrderNumber),
			zap.Error(err),
		)
		return
	}

	d.metrics.Notifications.WithLabelValues(string(n.Kind), resultSent).Inc()
	d.logger.Debug("notification delivered",
		zap.String("kind", string(n.Kind)),
		zap.String("order_number", n.OrderNumber),
	)
}
