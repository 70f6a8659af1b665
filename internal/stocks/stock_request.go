package stocks

import "agos/pkg/models"

type AddStockRequest struct {
	CatalogID int `json:"catalogID" binding:"required"`
	OfficeID  int `json:"officeID" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,gt=0"`
}

type AdjustStockRequest struct {
	Action         models.StockAction `json:"action" binding:"required"`
	QuantityChange int                `json:"quantityChange" binding:"required,gt=0"`
	Notes          *string            `json:"notes"`
}
