package vouchers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"agos/internal/instances"
	custom_error "agos/pkg/errors"
	"agos/pkg/models"
)

type VoucherHandler struct {
	Repository      *VoucherRepository
	InstanceService *instances.InstanceService
}

func NewVoucherHandler(r *VoucherRepository, is *instances.InstanceService) *VoucherHandler {
	return &VoucherHandler{Repository: r, InstanceService: is}
}

func (h *VoucherHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/vouchers", h.GetVouchers)
	router.GET("/vouchers/:id", h.GetVoucher)
	router.GET("/vouchers/:id/instances", h.GetVoucherInstances)
	router.POST("/vouchers", h.CreateVoucher)
	router.PUT("/vouchers/:id", h.UpdateVoucher)
}

func (h *VoucherHandler) GetVouchers(c *gin.Context) {
	vouchers, err := h.Repository.GetDetailedVouchers()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not list vouchers", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, vouchers)
}

func (h *VoucherHandler) GetVoucher(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid voucher id"})
		return
	}

	voucher, err := h.Repository.GetVoucherByID(id)
	if err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not get voucher", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, voucher)
}

func (h *VoucherHandler) GetVoucherInstances(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid voucher id"})
		return
	}

	if _, err := h.Repository.GetVoucherByID(id); err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not get voucher", "details": err.Error()})
		return
	}

	delivered, err := h.InstanceService.GetInstancesByVoucher(id)
	if err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not list voucher instances", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, delivered)
}

func (h *VoucherHandler) CreateVoucher(c *gin.Context) {
	var voucher models.ReceivingVoucher
	if err := c.ShouldBindJSON(&voucher); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := h.Repository.PersistVoucher(&voucher); err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not insert voucher", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, voucher)
}

func (h *VoucherHandler) UpdateVoucher(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid voucher id"})
		return
	}

	var voucher models.ReceivingVoucher
	if err := c.ShouldBindJSON(&voucher); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	voucher.VoucherID = id

	updated, err := h.Repository.UpdateVoucher(voucher)
	if err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not update voucher", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}
