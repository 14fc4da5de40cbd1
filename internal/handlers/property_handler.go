package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"sunshare/internal/middlewares"
	"sunshare/internal/models"
	"sunshare/internal/responses"
	"sunshare/internal/services"
)

// DataSourceHeader tells the client which backend answered a list request;
// "fallback" means mock data was served after a read error.
const DataSourceHeader = "X-Data-Source"

type PropertyHandler struct {
	propertyService *services.PropertyService
	log             *slog.Logger
}

func NewPropertyHandler(propertyService *services.PropertyService, log *slog.Logger) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		log:             log.With("component", "property_handler"),
	}
}

// ListProperties handles GET /api/properties
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	result := h.propertyService.List(c.Request.Context())

	c.Header(DataSourceHeader, result.Source)
	responses.Success(c, http.StatusOK, result.Properties)
}

// CreateProperty handles POST /api/properties
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	log := middlewares.LoggerFrom(c, h.log)

	var req models.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Warn("Invalid create property body", "error", err)
		responses.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	property, err := h.propertyService.Create(c.Request.Context(), req)
	if err != nil {
		log.Error("POST /api/properties failed", "error", err)
		responses.Fail(c, http.StatusInternalServerError, "Failed to create property")
		return
	}

	responses.Success(c, http.StatusCreated, property)
}

// Health handles GET /
func (h *PropertyHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"backend": h.propertyService.Backend(),
	})
}
