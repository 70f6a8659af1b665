package employees

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	custom_error "agos/pkg/errors"
	"agos/pkg/models"
)

type EmployeeHandler struct {
	Repository *EmployeeRepository
}

func NewEmployeeHandler(r *EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{Repository: r}
}

func (h *EmployeeHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/employees", h.GetEmployees)
	router.GET("/employees/:id", h.GetEmployee)
	router.POST("/employees", h.CreateEmployee)
	router.PUT("/employees/:id", h.UpdateEmployee)
	router.DELETE("/employees/:id", h.RemoveEmployee)
}

func (h *EmployeeHandler) GetEmployees(c *gin.Context) {
	employees, err := h.Repository.GetEmployees()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not list employees", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid employee id"})
		return
	}

	employee, err := h.Repository.GetEmployeeByID(id)
	if err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not get employee", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var employee models.Employee
	if err := c.ShouldBindJSON(&employee); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := h.Repository.PersistEmployee(&employee); err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not insert employee", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid employee id"})
		return
	}

	var employee models.Employee
	if err := c.ShouldBindJSON(&employee); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	employee.EmployeeID = id

	updated, err := h.Repository.UpdateEmployee(employee)
	if err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not update employee", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *EmployeeHandler) RemoveEmployee(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid employee id"})
		return
	}

	if err := h.Repository.RemoveEmployee(id); err != nil {
		c.AbortWithStatusJSON(custom_error.HTTPStatus(err), gin.H{"error": "Could not delete employee", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}
