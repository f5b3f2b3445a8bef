package cmd

import (
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/machinerepo"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	machines   ports.MachineStateProvider
	estimator  services.CompletionEstimator
	hours      services.OperatingHours
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	hours, err := services.NewOperatingHours(config.OpeningHour, config.ClosingHour)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		machines:   machinerepo.NewGormMachineStateProvider(gormDB),
		estimator:  services.NewCompletionEstimator(),
		hours:      hours,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.machines, c.estimator, c.hours)
}

func (c *CompositionRoot) CreateBindTagCommandHandler() commands.BindTagCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBindTagCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateBagCommandHandler() commands.CreateBagCommandHandler {
	var f commands.BagUoWFactory = FuncBagUoWFactory(func() commands.BagUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBagCommandHandler(f)
}

func (c *CompositionRoot) CreateAdmitOrderCommandHandler() commands.AdmitOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdmitOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateFinalizeBagCommandHandler() commands.FinalizeBagCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinalizeBagCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteBagCommandHandler() commands.DeleteBagCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteBagCommandHandler(f)
}

func (c *CompositionRoot) CreateHandoverBagCommandHandler() commands.HandoverBagCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewHandoverBagCommandHandler(f)
}

func (c *CompositionRoot) CreateReceiveBagCommandHandler() commands.ReceiveBagCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReceiveBagCommandHandler(f)
}

func (c *CompositionRoot) CreateRecalculateEstimatesCommandHandler() commands.RecalculateEstimatesCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecalculateEstimatesCommandHandler(f, c.machines, c.estimator, c.hours)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFillingBagsQueryHandler() queries.GetFillingBagsQueryHandler {
	return queries.NewGetFillingBagsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBagManifestQueryHandler() queries.GetBagManifestQueryHandler {
	return queries.NewGetBagManifestQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncBagUoWFactory func() commands.BagUoW

func (f FuncBagUoWFactory) Create() commands.BagUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
