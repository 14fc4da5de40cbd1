package routes

import (
	"sunshare/internal/handlers"

	"github.com/gin-gonic/gin"
)

type PropertyRoutes struct {
	handler *handlers.PropertyHandler
}

func NewPropertyRoutes(handler *handlers.PropertyHandler) *PropertyRoutes {
	return &PropertyRoutes{handler: handler}
}

func (r *PropertyRoutes) RegisterRoutes(router *gin.RouterGroup) {
	properties := router.Group("/properties")
	{
		properties.GET("", r.handler.ListProperties)
		properties.POST("", r.handler.CreateProperty)
	}
}
