package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type MockOverdueOrdersFinder struct{ mock.Mock }

func (m *MockOverdueOrdersFinder) Handle(
	ctx context.Context, query queries.GetOverdueOrdersQuery,
) ([]queries.OverdueOrderView, error) {
	args := m.Called(ctx, query)
	v, _ := args.Get(0).([]queries.OverdueOrderView)
	return v, args.Error(1)
}

var scanAt = time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

func newJob(t *testing.T, finder OverdueOrdersFinder) (*OverdueOrdersJob, *metrics.Metrics, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	m := metrics.New()
	job := NewOverdueOrdersJob(finder, "0 */5 * * * *", m, zap.New(core))
	job.now = func() time.Time { return scanAt }
	return job, m, logs
}

func TestOverdueOrdersJob_SetsGaugeAndWarns(t *testing.T) {
	finder := &MockOverdueOrdersFinder{}
	finder.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOverdueOrdersQuery) bool {
		return q.AsOf().Equal(scanAt)
	})).Return([]queries.OverdueOrderView{
		{OrderNumber: "ORD-AAAAAAA1", EstimatedDelivery: scanAt.Add(-48 * time.Hour)},
		{OrderNumber: "ORD-AAAAAAA2", EstimatedDelivery: scanAt.Add(-time.Hour)},
	}, nil).Once()
	job, m, logs := newJob(t, finder)

	count, err := job.Run(t.Context())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.OverdueOrders))
	warnings := logs.FilterMessage("Orders are past their estimated delivery").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, int64(2), warnings[0].ContextMap()["count"])
	finder.AssertExpectations(t)
}

func TestOverdueOrdersJob_NothingOverdueResetsGauge(t *testing.T) {
	finder := &MockOverdueOrdersFinder{}
	finder.On("Handle", mock.Anything, mock.Anything).Return([]queries.OverdueOrderView{}, nil).Once()
	job, m, logs := newJob(t, finder)
	m.OverdueOrders.Set(7)

	count, err := job.Run(t.Context())

	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, testutil.ToFloat64(m.OverdueOrders))
	assert.Zero(t, logs.FilterLevelExact(zap.WarnLevel).Len())
}

func TestOverdueOrdersJob_FailureKeepsGauge(t *testing.T) {
	finder := &MockOverdueOrdersFinder{}
	finder.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset")).Once()
	job, m, logs := newJob(t, finder)
	m.OverdueOrders.Set(3)

	_, err := job.Run(t.Context())

	require.Error(t, err)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.OverdueOrders))
	assert.Equal(t, 1, logs.FilterMessage("Overdue orders scan failed").Len())
}

func TestOverdueOrdersJob_RejectsBadSchedule(t *testing.T) {
	job := NewOverdueOrdersJob(&MockOverdueOrdersFinder{}, "every five minutes", nil, zap.NewNop())

	require.Error(t, job.Start())
}

func TestOverdueOrdersJob_StartStop(t *testing.T) {
	job := NewOverdueOrdersJob(&MockOverdueOrdersFinder{}, "0 0 0 1 1 *", nil, zap.NewNop())

	require.NoError(t, job.Start())
	job.Stop()
}
