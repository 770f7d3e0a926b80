package handlers

import (
	"net/http"

	"battery-atlas/internal/api/models"
	"battery-atlas/internal/derive"
	"battery-atlas/internal/registry"

	"github.com/gin-gonic/gin"
)

// SummaryHandler serves the aggregate dashboard statistics.
type SummaryHandler struct {
	assets *registry.AssetRegistry
	zones  *registry.ZoneRegistry
}

func NewSummaryHandler(assets *registry.AssetRegistry, zones *registry.ZoneRegistry) *SummaryHandler {
	return &SummaryHandler{assets: assets, zones: zones}
}

// Get handles GET /api/v1/summary
func (h *SummaryHandler) Get(c *gin.Context) {
	s := derive.Summarize(h.assets.List(), h.zones.List())
	c.JSON(http.StatusOK, models.NewSummaryResponse(s))
}
