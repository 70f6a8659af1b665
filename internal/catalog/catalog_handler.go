package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	custom_error "agos/pkg/errors"
	"agos/pkg/models"
)

type CatalogHandler struct {
	Repository *CatalogRepository
}

func NewCatalogHandler(r *CatalogRepository) *CatalogHandler {
	return &CatalogHandler{Repository: r}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/catalog", h.GetCatalogItems)
	router.GET("/catalog/:id", h.GetCatalogItem)
	router.POST("/catalog", h.CreateCatalogItem)
	router.PUT("/catalog/:id", h.UpdateCatalogItem)
	router.DELETE("/catalog/:id", h.RemoveCatalogItem)
}

func (h *CatalogHandler) GetCatalogItems(c *gin.Context) {
	items, err := h.Repository.GetCatalogItems()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not list catalog items", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) GetCatalogItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid catalog id"})
		return
	}

	item, err := h.Repository.GetCatalogItemByID(id)
	if err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not get catalog item", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) CreateCatalogItem(c *gin.Context) {
	var item models.CatalogItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := h.Repository.PersistCatalogItem(&item); err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not insert catalog item", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *CatalogHandler) UpdateCatalogItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid catalog id"})
		return
	}

	var item models.CatalogItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	item.CatalogID = id

	updated, err := h.Repository.UpdateCatalogItem(item)
	if err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not update catalog item", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *CatalogHandler) RemoveCatalogItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid catalog id"})
		return
	}

	if err := h.Repository.RemoveCatalogItem(id); err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not delete catalog item", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Catalog item deleted successfully"})
}
