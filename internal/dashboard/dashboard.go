package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agos/internal/database"
	"agos/internal/recordstore"
	"agos/pkg/models"
)

// Stats is the aggregate snapshot the dashboard renders.
type Stats struct {
	Offices           int                   `json:"offices"`
	Employees         int                   `json:"employees"`
	CatalogItems      int                   `json:"catalogItems"`
	Vouchers          int                   `json:"vouchers"`
	InstancesByStatus map[models.Status]int `json:"instancesByStatus"`
	TotalStockOnHand  int                   `json:"totalStockOnHand"`
}

type DashboardService struct {
	store *recordstore.Store
}

func NewService(store *recordstore.Store) *DashboardService {
	return &DashboardService{store: store}
}

func (s *DashboardService) GetStats() (*Stats, error) {
	stats := &Stats{InstancesByStatus: map[models.Status]int{}}

	offices, err := recordstore.All[models.Office](s.store, database.CollectionOffices)
	if err != nil {
		return nil, err
	}
	stats.Offices = len(offices)

	employees, err := recordstore.All[models.Employee](s.store, database.CollectionEmployees)
	if err != nil {
		return nil, err
	}
	stats.Employees = len(employees)

	catalog, err := recordstore.All[models.CatalogItem](s.store, database.CollectionAssetCatalog)
	if err != nil {
		return nil, err
	}
	stats.CatalogItems = len(catalog)

	vouchers, err := recordstore.All[models.ReceivingVoucher](s.store, database.CollectionVouchers)
	if err != nil {
		return nil, err
	}
	stats.Vouchers = len(vouchers)

	instances, err := recordstore.All[models.AssetInstance](s.store, database.CollectionAssetInstances)
	if err != nil {
		return nil, err
	}
	for _, inst := range instances {
		stats.InstancesByStatus[inst.Status]++
	}

	stock, err := recordstore.All[models.Stock](s.store, database.CollectionStock)
	if err != nil {
		return nil, err
	}
	for _, row := range stock {
		stats.TotalStockOnHand += row.QuantityOnHand
	}

	return stats, nil
}

type DashboardHandler struct {
	Service *DashboardService
}

func NewDashboardHandler(s *DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: s}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/stats", h.GetStats)
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.Service.GetStats()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not compute stats", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
