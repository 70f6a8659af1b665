package stocks

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	custom_error "agos/pkg/errors"
)

type StockHandler struct {
	Service *StockService
}

func NewStockHandler(s *StockService) *StockHandler {
	return &StockHandler{Service: s}
}

func (h *StockHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/stocks", h.GetStockLevels)
	router.GET("/stocks/:id", h.GetStock)
	router.GET("/stocks/:id/transactions", h.GetStockTransactions)
	router.POST("/stocks", h.AddStock)
	router.POST("/stocks/:id/adjust", h.AdjustStock)
	router.DELETE("/stocks/:id", h.RemoveStock)
}

func (h *StockHandler) GetStockLevels(c *gin.Context) {
	detailed, err := h.Service.GetDetailedStockLevels()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not list stock levels", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, detailed)
}

func (h *StockHandler) GetStock(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid stock id"})
		return
	}

	stock, err := h.Service.GetStockByID(id)
	if err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not get stock", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stock)
}

func (h *StockHandler) GetStockTransactions(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid stock id"})
		return
	}

	transactions, err := h.Service.GetTransactionsForStockItem(id)
	if err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not list stock transactions", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

func (h *StockHandler) AddStock(c *gin.Context) {
	var req AddStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	stock, err := h.Service.AddStock(req.CatalogID, req.OfficeID, req.Quantity)
	if err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not add stock", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, stock)
}

func (h *StockHandler) AdjustStock(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid stock id"})
		return
	}

	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	stock, err := h.Service.AdjustStockQuantity(id, req.Action, req.QuantityChange, req.Notes)
	if err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not adjust stock", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stock)
}

func (h *StockHandler) RemoveStock(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid stock id"})
		return
	}

	if err := h.Service.DeleteStock(id); err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not delete stock", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock deleted successfully"})
}
