// Package order exposes the order endpoints.
package order

import (
	"storefront/api/response"
	orderapp "storefront/application/order"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service *orderapp.ApplicationService
}

func NewController(service *orderapp.ApplicationService) *Controller {
	return &Controller{service: service}
}

func (ctl *Controller) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/orders")
	{
		group.POST("", ctl.CreateOrder)
		group.GET("", ctl.ListOrders)
		group.GET("/:id", ctl.GetOrder)
		group.PUT("/:id/customer", ctl.ChangeCustomer)
	}
}

func (ctl *Controller) CreateOrder(c *gin.Context) {
	var req orderapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.HandleBadRequest(c, "invalid request parameters")
		return
	}

	resp, err := ctl.service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		response.HandleDomainError(c, err)
		return
	}
	response.HandleCreated(c, resp, "order created")
}

func (ctl *Controller) GetOrder(c *gin.Context) {
	resp, err := ctl.service.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.HandleDomainError(c, err)
		return
	}
	response.HandleSuccess(c, resp, "order retrieved")
}

func (ctl *Controller) ListOrders(c *gin.Context) {
	resp, err := ctl.service.ListOrders(c.Request.Context())
	if err != nil {
		response.HandleDomainError(c, err)
		return
	}
	response.HandleSuccess(c, resp, "orders retrieved")
}

// ChangeCustomer handles PUT /api/v1/orders/:id/customer. Per the
// repository contract only the customer association is rewritten.
func (ctl *Controller) ChangeCustomer(c *gin.Context) {
	var req orderapp.ChangeCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.HandleBadRequest(c, "invalid request parameters")
		return
	}

	resp, err := ctl.service.ChangeOrderCustomer(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.HandleDomainError(c, err)
		return
	}
	response.HandleSuccess(c, resp, "order customer changed")
}
