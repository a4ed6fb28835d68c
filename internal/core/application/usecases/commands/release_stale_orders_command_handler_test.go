package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewReleaseStaleOrdersCommand_ZeroCutoff(t *testing.T) {
	_, err := commands.NewReleaseStaleOrdersCommand(time.Time{})
	require.Error(t, err)
}

func TestReleaseStaleOrdersCommandHandler_Handle_CancelsAndReleases(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Now().Add(-30 * time.Minute)

	variationA := kernel.NewUUID()
	variationB := kernel.NewUUID()
	first := testOrder(t, kernel.NewUUID(), order.Pending, testLine(t, &variationA, 2))
	second := testOrder(t, kernel.NewUUID(), order.Pending, testLine(t, &variationB, 1))

	cmd, err := commands.NewReleaseStaleOrdersCommand(cutoff)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ledger := new(MockStockLedger)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("StockLedger").Return(ledger).Once()
	orderRepo.On("GetAllPendingCreatedBefore", mock.Anything, cutoff).
		Return([]*order.Order{first, second}, nil).Once()
	ledger.On("Release", mock.Anything, variationA, 2).Return(nil).Once()
	ledger.On("Release", mock.Anything, variationB, 1).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, first).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, second).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReleaseStaleOrdersCommandHandler(factory, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.Cancelled, first.Status())
	assert.Equal(t, order.Cancelled, second.Status())
	ledger.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestReleaseStaleOrdersCommandHandler_Handle_NothingStale(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Now().Add(-30 * time.Minute)

	cmd, err := commands.NewReleaseStaleOrdersCommand(cutoff)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetAllPendingCreatedBefore", mock.Anything, cutoff).
		Return([]*order.Order{}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReleaseStaleOrdersCommandHandler(factory, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}
