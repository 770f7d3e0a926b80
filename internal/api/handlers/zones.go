package handlers

import (
	"net/http"

	"battery-atlas/internal/api/models"
	"battery-atlas/internal/registry"

	"github.com/gin-gonic/gin"
)

// ZoneHandler serves the pricing-zone registry.
type ZoneHandler struct {
	zones *registry.ZoneRegistry
}

func NewZoneHandler(zones *registry.ZoneRegistry) *ZoneHandler {
	return &ZoneHandler{zones: zones}
}

// List handles GET /api/v1/zones
func (h *ZoneHandler) List(c *gin.Context) {
	zones := h.zones.List()
	c.JSON(http.StatusOK, gin.H{
		"zones": zones,
		"count": len(zones),
	})
}

// Get handles GET /api/v1/zones/:id
func (h *ZoneHandler) Get(c *gin.Context) {
	id := c.Param("id")
	z, ok := h.zones.Find(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "ZONE_NOT_FOUND",
				Message: "No zone with id " + id,
			},
		})
		return
	}

	c.JSON(http.StatusOK, z)
}
