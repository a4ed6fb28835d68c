package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUpdateDeliveryStatusHandler(factory commands.OrderDeliveryUoWFactory) commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(
		factory, services.NewAccessPolicy(), silentNotifier{}, discardLogger(),
	)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_EnRouteStartsDelivery(t *testing.T) {
	ctx := t.Context()
	courier := testActor(t, kernel.RoleCourier)
	courierID := courier.ID()
	parent := testOrder(t, kernel.NewUUID(), order.ReadyForDelivery)
	d := testDelivery(t, parent.ID(), &courierID, delivery.Scheduled)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID(), courier, "en_route")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("OrderRepository").Return(orderRepo)
	deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, parent.ID()).Return(parent, nil).Once()
	orderRepo.On("Update", mock.Anything, parent).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newUpdateDeliveryStatusHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, delivery.EnRoute, d.Status())
	assert.Equal(t, order.InDelivery, parent.Status())
	uow.AssertExpectations(t)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_CompletedDeliversOrder(t *testing.T) {
	ctx := t.Context()
	admin := testActor(t, kernel.RoleAdministrator)
	parent := testOrder(t, kernel.NewUUID(), order.InDelivery)
	d := testDelivery(t, parent.ID(), nil, delivery.EnRoute)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID(), admin, "completed")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("OrderRepository").Return(orderRepo)
	deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, parent.ID()).Return(parent, nil).Once()
	orderRepo.On("Update", mock.Anything, parent).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newUpdateDeliveryStatusHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, delivery.Completed, d.Status())
	assert.Equal(t, order.Delivered, parent.Status())
}

func TestUpdateDeliveryStatusCommandHandler_Handle_ScheduledLeavesOrderUntouched(t *testing.T) {
	ctx := t.Context()
	admin := testActor(t, kernel.RoleAdministrator)
	parent := testOrder(t, kernel.NewUUID(), order.ReadyForDelivery)
	d := testDelivery(t, parent.ID(), nil, delivery.Scheduled)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID(), admin, "scheduled")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("OrderRepository").Return(orderRepo)
	deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, parent.ID()).Return(parent, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newUpdateDeliveryStatusHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.ReadyForDelivery, parent.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_UnassignedCourierForbidden(t *testing.T) {
	ctx := t.Context()
	other := testActor(t, kernel.RoleCourier)
	assigned := kernel.NewUUID()
	parent := testOrder(t, kernel.NewUUID(), order.InDelivery)
	d := testDelivery(t, parent.ID(), &assigned, delivery.EnRoute)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID(), other, "completed")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newUpdateDeliveryStatusHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), services.ErrForbidden)
	assert.Equal(t, delivery.EnRoute, d.Status())
}

func TestUpdateDeliveryStatusCommandHandler_Handle_CompletedIsTerminal(t *testing.T) {
	ctx := t.Context()
	admin := testActor(t, kernel.RoleAdministrator)
	parent := testOrder(t, kernel.NewUUID(), order.Delivered)
	d := testDelivery(t, parent.ID(), nil, delivery.Completed)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID(), admin, "en_route")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newUpdateDeliveryStatusHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), delivery.ErrDeliveryAlreadyCompleted)
}
