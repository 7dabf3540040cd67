// Package customer exposes the customer endpoints.
package customer

import (
	"storefront/api/response"
	customerapp "storefront/application/customer"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service *customerapp.ApplicationService
}

func NewController(service *customerapp.ApplicationService) *Controller {
	return &Controller{service: service}
}

func (ctl *Controller) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/customers")
	{
		group.POST("", ctl.CreateCustomer)
		group.GET("", ctl.ListCustomers)
		group.GET("/:id", ctl.GetCustomer)
		group.PUT("/:id/address", ctl.ChangeAddress)
	}
}

// CreateCustomer handles POST /api/v1/customers.
func (ctl *Controller) CreateCustomer(c *gin.Context) {
	var req customerapp.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.HandleBadRequest(c, "invalid request parameters")
		return
	}

	resp, err := ctl.service.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		response.HandleDomainError(c, err)
		return
	}
	response.HandleCreated(c, resp, "customer created")
}

// ChangeAddress handles PUT /api/v1/customers/:id/address. A successful
// change fans out the address-changed event to every registered
// notification handler.
func (ctl *Controller) ChangeAddress(c *gin.Context) {
	var req customerapp.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.HandleBadRequest(c, "invalid request parameters")
		return
	}

	resp, err := ctl.service.ChangeAddress(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.HandleDomainError(c, err)
		return
	}
	response.HandleSuccess(c, resp, "customer address changed")
}

func (ctl *Controller) GetCustomer(c *gin.Context) {
	resp, err := ctl.service.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.HandleDomainError(c, err)
		return
	}
	response.HandleSuccess(c, resp, "customer retrieved")
}

func (ctl *Controller) ListCustomers(c *gin.Context) {
	resp, err := ctl.service.ListCustomers(c.Request.Context())
	if err != nil {
		response.HandleDomainError(c, err)
		return
	}
	response.HandleSuccess(c, resp, "customers retrieved")
}
