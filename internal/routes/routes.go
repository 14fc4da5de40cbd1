package routes

import (
	"net/http"

	"sunshare/internal/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine, propertyHandler *handlers.PropertyHandler, metricsHandler http.Handler) {
	api := router.Group("/api")

	propertyRoutes := NewPropertyRoutes(propertyHandler)
	propertyRoutes.RegisterRoutes(api)

	router.GET("/", propertyHandler.Health)
	router.GET("/metrics", gin.WrapH(metricsHandler))
}
