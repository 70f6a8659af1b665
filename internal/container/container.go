package container

import (
	"go.uber.org/zap"

	"agos/internal/assets"
	"agos/internal/audit"
	"agos/internal/catalog"
	"agos/internal/dashboard"
	"agos/internal/employees"
	"agos/internal/instances"
	"agos/internal/offices"
	"agos/internal/recordstore"
	"agos/internal/stocks"
	"agos/internal/vouchers"
)

type Container struct {
	Store            *recordstore.Store
	Recorder         *audit.Recorder
	OfficeHandler    *offices.OfficeHandler
	EmployeeHandler  *employees.EmployeeHandler
	CatalogHandler   *catalog.CatalogHandler
	AssetHandler     *assets.AssetHandler
	InstanceHandler  *instances.InstanceHandler
	StockHandler     *stocks.StockHandler
	VoucherHandler   *vouchers.VoucherHandler
	DashboardHandler *dashboard.DashboardHandler
}

func NewAppContainer(store *recordstore.Store, log *zap.Logger) *Container {
	recorder := audit.NewRecorder(log)

	officeRepo := offices.NewRepository(store)
	employeeRepo := employees.NewRepository(store)
	catalogRepo := catalog.NewRepository(store)
	assetService := assets.NewService(store, recorder)
	instanceService := instances.NewService(store, recorder)
	stockService := stocks.NewService(store, recorder)
	voucherRepo := vouchers.NewRepository(store)
	dashboardService := dashboard.NewService(store)

	return &Container{
		Store:            store,
		Recorder:         recorder,
		OfficeHandler:    offices.NewOfficeHandler(officeRepo),
		EmployeeHandler:  employees.NewEmployeeHandler(employeeRepo),
		CatalogHandler:   catalog.NewCatalogHandler(catalogRepo),
		AssetHandler:     assets.NewAssetHandler(assetService),
		InstanceHandler:  instances.NewInstanceHandler(instanceService),
		StockHandler:     stocks.NewStockHandler(stockService),
		VoucherHandler:   vouchers.NewVoucherHandler(voucherRepo, instanceService),
		DashboardHandler: dashboard.NewDashboardHandler(dashboardService),
	}
}
