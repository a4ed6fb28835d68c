package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/claim"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Shared testify mocks for the command handler tests. One mock per port;
// the MockUoW satisfies every composed unit of work interface so each test
// wires only the factory flavor its handler needs.

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDeliveryRepository) DeleteByOrderID(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockClaimRepository struct{ mock.Mock }

func (m *MockClaimRepository) Add(ctx context.Context, c *claim.Claim) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClaimRepository) Update(ctx context.Context, c *claim.Claim) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClaimRepository) Get(ctx context.Context, id kernel.UUID) (*claim.Claim, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*claim.Claim), args.Error(1)
}

func (m *MockClaimRepository) GetAllByOrderID(ctx context.Context, orderID kernel.UUID) ([]*claim.Claim, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*claim.Claim), args.Error(1)
}

func (m *MockClaimRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClaimRepository) DeleteByOrderID(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockStockLedger struct{ mock.Mock }

func (m *MockStockLedger) Reserve(ctx context.Context, variationID kernel.UUID, quantity int) error {
	args := m.Called(ctx, variationID, quantity)
	return args.Error(0)
}

func (m *MockStockLedger) Release(ctx context.Context, variationID kernel.UUID, quantity int) error {
	args := m.Called(ctx, variationID, quantity)
	return args.Error(0)
}

type MockCatalogReader struct{ mock.Mock }

func (m *MockCatalogReader) GetArticle(ctx context.Context, articleID kernel.UUID) (ports.Article, error) {
	args := m.Called(ctx, articleID)
	return args.Get(0).(ports.Article), args.Error(1)
}

func (m *MockCatalogReader) ArticleHasVariation(ctx context.Context, articleID, variationID kernel.UUID) (bool, error) {
	args := m.Called(ctx, articleID, variationID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogReader) GetSellerIDs(ctx context.Context, articleIDs []kernel.UUID) ([]kernel.UUID, error) {
	args := m.Called(ctx, articleIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, n ports.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// silentNotifier accepts everything; for tests not interested in notifications.
type silentNotifier struct{}

func (silentNotifier) Notify(context.Context, ports.Notification) error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) ClaimRepository() ports.ClaimRepository {
	args := m.Called()
	return args.Get(0).(ports.ClaimRepository)
}

func (m *MockUoW) StockLedger() ports.StockLedger {
	args := m.Called()
	return args.Get(0).(ports.StockLedger)
}

type MockOrderStockUoWFactory struct{ mock.Mock }

func (m *MockOrderStockUoWFactory) Create() commands.OrderStockUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderStockUoW)
}

type MockOrderDeliveryUoWFactory struct{ mock.Mock }

func (m *MockOrderDeliveryUoWFactory) Create() commands.OrderDeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderDeliveryUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockOrderClaimUoWFactory struct{ mock.Mock }

func (m *MockOrderClaimUoWFactory) Create() commands.OrderClaimUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderClaimUoW)
}

type MockClaimUoWFactory struct{ mock.Mock }

func (m *MockClaimUoWFactory) Create() commands.ClaimUoW {
	args := m.Called()
	return args.Get(0).(commands.ClaimUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
