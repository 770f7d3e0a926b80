package handlers

import (
	"net/http"

	"battery-atlas/internal/api/models"
	"battery-atlas/internal/selection"

	"github.com/gin-gonic/gin"
)

// SelectionHandler exposes the selection controller over HTTP. Selection
// writes always succeed: unknown IDs degrade to a cleared axis rather than
// an error, so the detail panel falls back to its "no selection" state.
type SelectionHandler struct {
	sel *selection.Controller
}

func NewSelectionHandler(sel *selection.Controller) *SelectionHandler {
	return &SelectionHandler{sel: sel}
}

// Get handles GET /api/v1/selection
func (h *SelectionHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, models.NewSelectionResponse(h.sel.Current()))
}

// SelectAsset handles PUT /api/v1/selection/asset
func (h *SelectionHandler) SelectAsset(c *gin.Context) {
	req, ok := bindSelect(c)
	if !ok {
		return
	}
	h.sel.SelectAssetID(req.ID)
	c.JSON(http.StatusOK, models.NewSelectionResponse(h.sel.Current()))
}

// SelectZone handles PUT /api/v1/selection/zone
func (h *SelectionHandler) SelectZone(c *gin.Context) {
	req, ok := bindSelect(c)
	if !ok {
		return
	}
	h.sel.SelectZone(req.ID)
	c.JSON(http.StatusOK, models.NewSelectionResponse(h.sel.Current()))
}

// Clear handles DELETE /api/v1/selection
func (h *SelectionHandler) Clear(c *gin.Context) {
	h.sel.Clear()
	c.JSON(http.StatusOK, models.NewSelectionResponse(h.sel.Current()))
}

func bindSelect(c *gin.Context) (models.SelectRequest, bool) {
	var req models.SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_BODY",
				Message: err.Error(),
			},
		})
		return models.SelectRequest{}, false
	}
	return req, true
}
