package cmd

import (
	"log/slog"
	"time"

	"restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/application/reports"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/ports"
	"restaurant/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	location   *time.Location
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.OrderEventPublisher,
	location *time.Location,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		location:   location,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() *commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	h := commands.NewPlaceOrderCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() *commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewUpdateOrderStatusCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() *commands.CreateMenuItemCommandHandler {
	h := commands.NewCreateMenuItemCommandHandler(c.menuUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() *commands.UpdateMenuItemCommandHandler {
	h := commands.NewUpdateMenuItemCommandHandler(c.menuUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() *commands.DeleteMenuItemCommandHandler {
	h := commands.NewDeleteMenuItemCommandHandler(c.menuUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuItemQueryHandler() queries.GetMenuItemQueryHandler {
	return queries.NewGetMenuItemQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMenuItemsQueryHandler() queries.ListMenuItemsQueryHandler {
	return queries.NewListMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDailySalesReportQueryHandler() queries.GetDailySalesReportQueryHandler {
	return queries.NewGetDailySalesReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDailySalesExporter() reports.DailySalesExporter {
	return reports.NewDailySalesExporter(c.CreateGetDailySalesReportQueryHandler())
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		PlaceOrder:          c.CreatePlaceOrderCommandHandler(),
		UpdateOrderStatus:   c.CreateUpdateOrderStatusCommandHandler(),
		CreateMenuItem:      c.CreateCreateMenuItemCommandHandler(),
		UpdateMenuItem:      c.CreateUpdateMenuItemCommandHandler(),
		DeleteMenuItem:      c.CreateDeleteMenuItemCommandHandler(),
		GetOrder:            c.CreateGetOrderQueryHandler(),
		GetMenuItem:         c.CreateGetMenuItemQueryHandler(),
		ListMenuItems:       c.CreateListMenuItemsQueryHandler(),
		GetDashboard:        c.CreateGetDashboardQueryHandler(),
		GetDailySalesReport: c.CreateGetDailySalesReportQueryHandler(),
		ExportDailySales:    c.CreateDailySalesExporter(),
	}, c.location)
}

// CreateJobManager wires the scheduled export. The export is disabled when
// REPORT_EXPORT_DIR is empty.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var exportJob *jobs.DailySalesExportJob
	if c.config.ReportExportDir != "" {
		exportJob = jobs.NewDailySalesExportJob(
			c.CreateDailySalesExporter(),
			c.config.ReportExportDir,
			c.config.ReportExportSchedule,
			c.location,
			c.logger,
		)
	}
	return jobs.NewJobManager(exportJob, c.logger)
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
