package handlers

import (
	"net/http"

	"battery-atlas/internal/api/models"
	"battery-atlas/internal/registry"

	"github.com/gin-gonic/gin"
)

// AssetHandler serves the asset registry.
type AssetHandler struct {
	assets *registry.AssetRegistry
}

func NewAssetHandler(assets *registry.AssetRegistry) *AssetHandler {
	return &AssetHandler{assets: assets}
}

// List handles GET /api/v1/assets
func (h *AssetHandler) List(c *gin.Context) {
	assets := h.assets.List()
	views := make([]models.AssetView, len(assets))
	for i, a := range assets {
		views[i] = models.NewAssetView(a)
	}

	c.JSON(http.StatusOK, gin.H{
		"assets": views,
		"count":  len(views),
	})
}

// Get handles GET /api/v1/assets/:id
func (h *AssetHandler) Get(c *gin.Context) {
	id := c.Param("id")
	a, ok := h.assets.Find(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "ASSET_NOT_FOUND",
				Message: "No asset with id " + id,
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.NewAssetView(a))
}
