package filter_controller

import (
	"log"
	"net/http"

	"github.com/SatpalInfilogix/kular-fashion-web/filters"
	"github.com/SatpalInfilogix/kular-fashion-web/middleware"
	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/gin-gonic/gin"
)

// GetFilterMetadata godoc
// @Summary Get sidebar filter metadata
// @Description Returns the facet universe from the commerce API merged with the shopper's saved selection, plus which facet sections should render (trivial groups are hidden).
// @Tags Filters
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /store/filters [get]
func GetFilterMetadata(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	ctx := c.Request.Context()

	def, err := facetDefinition(ctx)
	if err != nil {
		log.Printf("[filters] metadata fetch failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Filters are temporarily unavailable"))
		return
	}

	selected := selectedFilters(ctx, sessionID)
	sidebar := filters.New(def, selected, nil)

	sections := make(map[string]bool, len(filters.Facets))
	for _, f := range filters.Facets {
		sections[string(f)] = sidebar.ShouldShowSection(f)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filters fetched successfully", gin.H{
		"facets":            def,
		"selected":          selected,
		"sections":          sections,
		"price_display_max": sidebar.DisplayPriceMax(),
	}))
}
