// Package health exposes the liveness endpoint.
package health

import (
	"time"

	"storefront/api/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	startedAt time.Time
}

func NewController() *Controller {
	return &Controller{startedAt: time.Now()}
}

func (ctl *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", ctl.Health)
}

func (ctl *Controller) Health(c *gin.Context) {
	response.HandleSuccess(c, gin.H{
		"status": "ok",
		"uptime": time.Since(ctl.startedAt).String(),
	}, "service is healthy")
}
