package instances

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	custom_error "agos/pkg/errors"
	"agos/pkg/models"
)

type InstanceHandler struct {
	Service *InstanceService
}

func NewInstanceHandler(s *InstanceService) *InstanceHandler {
	return &InstanceHandler{Service: s}
}

func (h *InstanceHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/instances", h.GetInstances)
	router.GET("/instances/:id", h.GetInstance)
	router.GET("/instances/:id/transactions", h.GetInstanceTransactions)
	router.POST("/instances", h.CreateInstance)
	router.PUT("/instances/:id", h.UpdateInstance)
	router.DELETE("/instances/:id", h.RemoveInstance)
}

func (h *InstanceHandler) GetInstances(c *gin.Context) {
	detailed, err := h.Service.GetDetailedInstances()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not list asset instances", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, detailed)
}

func (h *InstanceHandler) GetInstance(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid instance id"})
		return
	}

	inst, err := h.Service.GetInstanceByID(id)
	if err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not get asset instance", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, inst)
}

func (h *InstanceHandler) GetInstanceTransactions(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid instance id"})
		return
	}

	transactions, err := h.Service.GetTransactionsForInstance(id)
	if err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not list transactions", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

func (h *InstanceHandler) CreateInstance(c *gin.Context) {
	var inst models.AssetInstance
	if err := c.ShouldBindJSON(&inst); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := h.Service.CreateInstance(&inst); err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not insert asset instance", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, inst)
}

func (h *InstanceHandler) UpdateInstance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid instance id"})
		return
	}

	var inst models.AssetInstance
	if err := c.ShouldBindJSON(&inst); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	inst.InstanceID = id

	updated, err := h.Service.UpdateInstance(inst)
	if err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not update asset instance", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *InstanceHandler) RemoveInstance(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid instance id"})
		return
	}

	if err := h.Service.DeleteInstance(id); err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not delete asset instance", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset instance deleted successfully"})
}
