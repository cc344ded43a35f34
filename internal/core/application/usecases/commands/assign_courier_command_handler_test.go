package commands_test

import (
	"testing"
	"time"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAssignCourierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, nil)
	factory, uow, repo := expectMutation(stored)
	courierID := kernel.NewUUID()

	cmd, err := commands.NewAssignCourierCommand(stored.ID(), courierID, "seller1")
	require.NoError(t, err)

	h := commands.NewAssignCourierCommandHandler(newWriter(factory, &stubLocker{}), zap.NewNop())
	assigned, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, assigned.CourierID())
	assert.Equal(t, courierID, *assigned.CourierID())
	events := assigned.Timeline().Events()
	assert.Equal(t, order.EventCourierAssigned, events[len(events)-1].Status())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignCourierCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, nil)
	require.NoError(t, stored.ChangeStatus(order.PermissivePolicy(), order.Cancelled, "", "", "", fixedNow.Add(-time.Minute)))

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, _ := commands.NewAssignCourierCommand(stored.ID(), kernel.NewUUID(), "seller1")
	h := commands.NewAssignCourierCommandHandler(newWriter(factory, &stubLocker{}), zap.NewNop())

	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
