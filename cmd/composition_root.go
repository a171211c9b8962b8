package cmd

import (
	"movers/internal/adapters/out/postgres"
	"movers/internal/core/application/usecases/commands"
	"movers/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateMoverCommandHandler() commands.CreateMoverCommandHandler {
	var f commands.MoverUoWFactory = FuncMoverUoWFactory(func() commands.MoverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMoverCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateItemCommandHandler() commands.CreateItemCommandHandler {
	var f commands.ItemUoWFactory = FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateItemCommandHandler(f)
}

func (c *CompositionRoot) CreateLoadMoverCommandHandler() commands.LoadMoverCommandHandler {
	var f commands.MissionUoWFactory = FuncMissionUoWFactory(func() commands.MissionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoadMoverCommandHandler(f)
}

func (c *CompositionRoot) CreateStartMissionCommandHandler() commands.StartMissionCommandHandler {
	var f commands.MissionUoWFactory = FuncMissionUoWFactory(func() commands.MissionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartMissionCommandHandler(f)
}

func (c *CompositionRoot) CreateEndMissionCommandHandler() commands.EndMissionCommandHandler {
	var f commands.MissionUoWFactory = FuncMissionUoWFactory(func() commands.MissionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEndMissionCommandHandler(f)
}

func (c *CompositionRoot) CreateGetMoversQueryHandler() queries.GetMoversQueryHandler {
	return queries.NewGetMoversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetItemsQueryHandler() queries.GetItemsQueryHandler {
	return queries.NewGetItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMoverActivityLogsQueryHandler() queries.GetMoverActivityLogsQueryHandler {
	return queries.NewGetMoverActivityLogsQueryHandler(c.gormDB)
}

type FuncMoverUoWFactory func() commands.MoverUoW

func (f FuncMoverUoWFactory) Create() commands.MoverUoW {
	return f()
}

type FuncItemUoWFactory func() commands.ItemUoW

func (f FuncItemUoWFactory) Create() commands.ItemUoW {
	return f()
}

type FuncMissionUoWFactory func() commands.MissionUoW

func (f FuncMissionUoWFactory) Create() commands.MissionUoW {
	return f()
}
