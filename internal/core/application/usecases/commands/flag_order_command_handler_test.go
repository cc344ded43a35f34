package commands_test

import (
	"testing"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFlagOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	stored := newStoredOrder(t, &buyerID)
	totalBefore := stored.Pricing().Total()
	factory, uow, repo := expectMutation(stored)

	cmd, err := commands.NewFlagOrderCommand(stored.ID(), "box arrived crushed", "buyer7")
	require.NoError(t, err)

	h := commands.NewFlagOrderCommandHandler(newWriter(factory, &stubLocker{}), order.PermissivePolicy(), zap.NewNop())
	flagged, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Flagged, flagged.Status())
	events := flagged.Timeline().Events()
	last := events[len(events)-1]
	assert.Equal(t, "FLAGGED", last.Status())
	assert.Contains(t, last.Description(), "box arrived crushed")
	assert.Equal(t, "Customer Service", last.Location())
	assert.Equal(t, "buyer7", last.UpdatedBy())
	assert.True(t, totalBefore.Equal(flagged.Pricing().Total()))

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestFlagOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("order", id)).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, _ := commands.NewFlagOrderCommand(id, "late", "buyer7")
	h := commands.NewFlagOrderCommandHandler(newWriter(factory, &stubLocker{}), order.PermissivePolicy(), zap.NewNop())

	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
