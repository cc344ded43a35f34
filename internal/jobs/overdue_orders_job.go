package jobs

import (
	"context"
	"time"

	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/pkg/logger"
	"shiptrack/internal/pkg/metrics"

	"github.com/go-faster/errors"
	"github.com/robfig/cron/v3"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// maxLoggedOverdue caps the order numbers listed in a single warning.
const maxLoggedOverdue = 20

type OverdueOrdersFinder interface {
	Handle(ctx context.Context, query queries.GetOverdueOrdersQuery) ([]queries.OverdueOrderView, error)
}

// OverdueOrdersJob periodically counts non-terminal orders whose estimated
// delivery has passed. It only reads.
type OverdueOrdersJob struct {
	finder   OverdueOrdersFinder
	schedule string
	cron     *cron.Cron
	metrics  *metrics.Metrics
	logger   *zap.Logger
	now      func() time.Time
}

// NewOverdueOrdersJob takes a six field cron schedule (with seconds).
func NewOverdueOrdersJob(
	finder OverdueOrdersFinder,
	schedule string,
	m *metrics.Metrics,
	l *zap.Logger,
) *OverdueOrdersJob {
	return &OverdueOrdersJob{
		finder:   finder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		metrics:  m,
		logger:   logger.Component(l, "overdue_orders_job"),
		now:      time.Now,
	}
}

// Start registers the scan on the schedule and starts the scheduler.
func (j *OverdueOrdersJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.Run(context.Background())
	}); err != nil {
		return errors.Wrapf(err, "schedule %q", j.schedule)
	}

	j.cron.Start()
	j.logger.Info("Overdue orders job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop stops scheduling and waits for a running scan to finish.
func (j *OverdueOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Overdue orders job stopped")
}

// Run performs one scan and returns the number of overdue orders. Failures
// are logged and leave the gauge at its previous value.
func (j *OverdueOrdersJob) Run(ctx context.Context) (int, error) {
	query, err := queries.NewGetOverdueOrdersQuery(j.now())
	if err != nil {
		return 0, err
	}

	overdue, err := j.finder.Handle(ctx, query)
	if err != nil {
		j.logger.Error("Overdue orders scan failed", zap.Error(err))
		return 0, err
	}

	if j.metrics != nil {
		j.metrics.OverdueOrders.Set(float64(len(overdue)))
	}
	if len(overdue) == 0 {
		j.logger.Debug("No overdue orders")
		return 0, nil
	}

	numbers := lo.Map(overdue, func(v queries.OverdueOrderView, _ int) string { return v.OrderNumber })
	j.logger.Warn("Orders are past their estimated delivery",
		zap.Int("count", len(overdue)),
		zap.Strings("orders", lo.Subset(numbers, 0, maxLoggedOverdue)),
		zap.Time("oldest_estimated_delivery", overdue[0].EstimatedDelivery),
	)
	return len(overdue), nil
}
