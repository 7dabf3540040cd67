// Package api assembles the gin engine: middleware chain first, then
// every controller's routes under /api/v1.
package api

import (
	"storefront/api/customer"
	"storefront/api/health"
	"storefront/api/middleware"
	"storefront/api/order"
	"storefront/api/product"
	"storefront/config"

	"github.com/gin-gonic/gin"
)

type Router struct {
	engine             *gin.Engine
	config             *config.Config
	healthController   *health.Controller
	customerController *customer.Controller
	productController  *product.Controller
	orderController    *order.Controller
}

func NewRouter(
	cfg *config.Config,
	healthController *health.Controller,
	customerController *customer.Controller,
	productController *product.Controller,
	orderController *order.Controller,
) *Router {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Middleware order matters: the request id must exist before
	// anything logs, and recovery must wrap everything below it.
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logging())
	engine.Use(middleware.CORS(&cfg.CORS))
	engine.Use(middleware.RateLimit(&cfg.Server.RateLimit))

	return &Router{
		engine:             engine,
		config:             cfg,
		healthController:   healthController,
		customerController: customerController,
		productController:  productController,
		orderController:    orderController,
	}
}

func (r *Router) SetupRoutes() {
	apiGroup := r.engine.Group("/api/v1")
	{
		r.healthController.RegisterRoutes(apiGroup)
		r.customerController.RegisterRoutes(apiGroup)
		r.productController.RegisterRoutes(apiGroup)
		r.orderController.RegisterRoutes(apiGroup)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
