// Package product exposes the product endpoints.
package product

import (
	"storefront/api/response"
	productapp "storefront/application/product"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service *productapp.ApplicationService
}

func NewController(service *productapp.ApplicationService) *Controller {
	return &Controller{service: service}
}

func (ctl *Controller) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/products")
	{
		group.POST("", ctl.CreateProduct)
		group.GET("", ctl.ListProducts)
		group.GET("/:id", ctl.GetProduct)
		group.POST("/price-increase", ctl.IncreasePrices)
	}
}

func (ctl *Controller) CreateProduct(c *gin.Context) {
	var req productapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.HandleBadRequest(c, "invalid request parameters")
		return
	}

	resp, err := ctl.service.CreateProduct(c.Request.Context(), req)
	if err != nil {
		response.HandleDomainError(c, err)
		return
	}
	response.HandleCreated(c, resp, "product created")
}

func (ctl *Controller) GetProduct(c *gin.Context) {
	resp, err := ctl.service.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.HandleDomainError(c, err)
		return
	}
	response.HandleSuccess(c, resp, "product retrieved")
}

func (ctl *Controller) ListProducts(c *gin.Context) {
	resp, err := ctl.service.ListProducts(c.Request.Context())
	if err != nil {
		response.HandleDomainError(c, err)
		return
	}
	response.HandleSuccess(c, resp, "products retrieved")
}

// IncreasePrices handles POST /api/v1/products/price-increase, raising
// every product's price by the given percentage.
func (ctl *Controller) IncreasePrices(c *gin.Context) {
	var req productapp.IncreasePricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.HandleBadRequest(c, "invalid request parameters")
		return
	}

	resp, err := ctl.service.IncreasePrices(c.Request.Context(), req)
	if err != nil {
		response.HandleDomainError(c, err)
		return
	}
	response.HandleSuccess(c, resp, "product prices increased")
}
