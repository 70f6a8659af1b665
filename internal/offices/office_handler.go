package offices

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	custom_error "agos/pkg/errors"
	"agos/pkg/models"
)

type OfficeHandler struct {
	Repository *OfficeRepository
}

func NewOfficeHandler(r *OfficeRepository) *OfficeHandler {
	return &OfficeHandler{Repository: r}
}

func (h *OfficeHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/offices", h.GetOffices)
	router.GET("/offices/:id", h.GetOffice)
	router.POST("/offices", h.CreateOffice)
	router.PUT("/offices/:id", h.UpdateOffice)
	router.DELETE("/offices/:id", h.RemoveOffice)
}

func (h *OfficeHandler) GetOffices(c *gin.Context) {
	offices, err := h.Repository.GetOffices()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not list offices", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, offices)
}

func (h *OfficeHandler) GetOffice(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid office id"})
		return
	}

	office, err := h.Repository.GetOfficeByID(id)
	if err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not get office", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, office)
}

func (h *OfficeHandler) CreateOffice(c *gin.Context) {
	var office models.Office
	if err := c.ShouldBindJSON(&office); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := h.Repository.PersistOffice(&office); err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not insert office", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, office)
}

func (h *OfficeHandler) UpdateOffice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid office id"})
		return
	}

	var office models.Office
	if err := c.ShouldBindJSON(&office); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	office.OfficeID = id

	updated, err := h.Repository.UpdateOffice(office)
	if err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not update office", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *OfficeHandler) RemoveOffice(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid office id"})
		return
	}

	if err := h.Repository.RemoveOffice(id); err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not delete office", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Office deleted successfully"})
}
