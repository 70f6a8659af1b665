package routes

import (
	"github.com/gin-gonic/gin"

	"agos/internal/container"
	"agos/internal/middleware"
	"agos/internal/security"
)

const version = "1.0.0"

func RegisterRoutes(router *gin.Engine, c *container.Container) {
	security.RegisterRoutes(router)

	c.OfficeHandler.RegisterRoutes(router)
	c.EmployeeHandler.RegisterRoutes(router)
	c.CatalogHandler.RegisterRoutes(router)
	c.AssetHandler.RegisterRoutes(router)
	c.InstanceHandler.RegisterRoutes(router)
	c.StockHandler.RegisterRoutes(router)
	c.VoucherHandler.RegisterRoutes(router)
	c.DashboardHandler.RegisterRoutes(router)

	router.GET("/health", middleware.HealthCheckHandler(version))
}
