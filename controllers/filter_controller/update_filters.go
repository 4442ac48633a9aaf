package filter_controller

import (
	"log"
	"net/http"

	"github.com/SatpalInfilogix/kular-fashion-web/filters"
	"github.com/SatpalInfilogix/kular-fashion-web/middleware"
	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/gin-gonic/gin"
)

type toggleFilterRequest struct {
	Facet string `json:"facet" binding:"required,oneof=product_types sizes colors"`
	ID    string `json:"id" binding:"required"`
}

type priceFilterRequest struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ToggleFilter godoc
// @Summary Toggle a categorical facet selection
// @Description Symmetric-difference semantics: an already-selected id is removed, a new id is appended.
// @Tags Filters
// @Accept json
// @Produce json
// @Param toggle body toggleFilterRequest true "Facet and option id"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /store/filters/toggle [post]
func ToggleFilter(c *gin.Context) {
	var req toggleFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	sessionID := middleware.GetSessionID(c)
	ctx := c.Request.Context()

	def, err := facetDefinition(ctx)
	if err != nil {
		log.Printf("[filters] metadata fetch failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Filters are temporarily unavailable"))
		return
	}

	sidebar := filters.New(def, selectedFilters(ctx, sessionID), persistSelection(ctx, sessionID))
	sidebar.Toggle(filters.Facet(req.Facet), req.ID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter updated", sidebar.Selected()))
}

// SetPriceFilter godoc
// @Summary Replace the price range selection
// @Description Both bounds are replaced atomically. A max of -1 means no user-chosen cap.
// @Tags Filters
// @Accept json
// @Produce json
// @Param price body priceFilterRequest true "Price bounds"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /store/filters/price [put]
func SetPriceFilter(c *gin.Context) {
	var req priceFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}
	if req.Max != models.NoPriceCap && req.Min > req.Max {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Price minimum cannot exceed maximum"))
		return
	}

	sessionID := middleware.GetSessionID(c)
	ctx := c.Request.Context()

	def, err := facetDefinition(ctx)
	if err != nil {
		log.Printf("[filters] metadata fetch failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Filters are temporarily unavailable"))
		return
	}

	sidebar := filters.New(def, selectedFilters(ctx, sessionID), persistSelection(ctx, sessionID))
	sidebar.SetPriceRange(req.Min, req.Max)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Price range updated", sidebar.Selected()))
}

// ResetFilters godoc
// @Summary Clear the whole filter selection
// @Tags Filters
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/filters/reset [post]
func ResetFilters(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	ctx := c.Request.Context()

	// Reset never reads the facet universe, so a metadata outage cannot
	// block it.
	sidebar := filters.New(models.FacetDefinition{}, selectedFilters(ctx, sessionID), persistSelection(ctx, sessionID))
	sidebar.Reset()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filters reset", sidebar.Selected()))
}
