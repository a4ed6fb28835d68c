package cmd

import (
	"log/slog"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/catalogrepo"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires application handlers over the shared infrastructure:
// the gorm unit of work factory, the catalog reader, the access policy and
// the notification producer.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    ports.CatalogReader
	policy     services.AccessPolicy
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	notifier ports.Notifier,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalogrepo.NewGormCatalogReader(gormDB),
		policy:     services.NewAccessPolicy(),
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderStockUoWFactory = FuncOrderStockUoWFactory(func() commands.OrderStockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.catalog, c.policy, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.OrderDeliveryUoWFactory = FuncOrderDeliveryUoWFactory(func() commands.OrderDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f, c.catalog, c.policy, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.OrderDeliveryUoWFactory = FuncOrderDeliveryUoWFactory(func() commands.OrderDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f, c.policy, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateDeleteDeliveryCommandHandler() commands.DeleteDeliveryCommandHandler {
	var f commands.OrderDeliveryUoWFactory = FuncOrderDeliveryUoWFactory(func() commands.OrderDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteDeliveryCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateAssignDeliveryCourierCommandHandler() commands.AssignDeliveryCourierCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDeliveryCourierCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateCreateClaimCommandHandler() commands.CreateClaimCommandHandler {
	var f commands.OrderClaimUoWFactory = FuncOrderClaimUoWFactory(func() commands.OrderClaimUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateClaimCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateUpdateClaimStatusCommandHandler() commands.UpdateClaimStatusCommandHandler {
	var f commands.ClaimUoWFactory = FuncClaimUoWFactory(func() commands.ClaimUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateClaimStatusCommandHandler(f, c.policy, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateUpdateClaimDetailsCommandHandler() commands.UpdateClaimDetailsCommandHandler {
	var f commands.ClaimUoWFactory = FuncClaimUoWFactory(func() commands.ClaimUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateClaimDetailsCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateDeleteClaimCommandHandler() commands.DeleteClaimCommandHandler {
	var f commands.ClaimUoWFactory = FuncClaimUoWFactory(func() commands.ClaimUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteClaimCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateReleaseStaleOrdersCommandHandler() commands.ReleaseStaleOrdersCommandHandler {
	var f commands.OrderStockUoWFactory = FuncOrderStockUoWFactory(func() commands.OrderStockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseStaleOrdersCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetBuyerOrdersQueryHandler() queries.GetBuyerOrdersQueryHandler {
	return queries.NewGetBuyerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnfulfilledOrdersQueryHandler() queries.GetUnfulfilledOrdersQueryHandler {
	return queries.NewGetUnfulfilledOrdersQueryHandler(c.gormDB)
}

type FuncOrderStockUoWFactory func() commands.OrderStockUoW

func (f FuncOrderStockUoWFactory) Create() commands.OrderStockUoW {
	return f()
}

type FuncOrderDeliveryUoWFactory func() commands.OrderDeliveryUoW

func (f FuncOrderDeliveryUoWFactory) Create() commands.OrderDeliveryUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncOrderClaimUoWFactory func() commands.OrderClaimUoW

func (f FuncOrderClaimUoWFactory) Create() commands.OrderClaimUoW {
	return f()
}

type FuncClaimUoWFactory func() commands.ClaimUoW

func (f FuncClaimUoWFactory) Create() commands.ClaimUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
