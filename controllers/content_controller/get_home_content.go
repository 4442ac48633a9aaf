package content_controller

import (
	"log"
	"net/http"

	content_cache "github.com/SatpalInfilogix/kular-fashion-web/cache"
	"github.com/SatpalInfilogix/kular-fashion-web/config"
	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/SatpalInfilogix/kular-fashion-web/services"
	"github.com/gin-gonic/gin"
)

// GetHomeContent godoc
// @Summary Get home page marketing content
// @Description Returns hero banners, featured categories, testimonials and the brand strip. Served from an in-process cache for repeat visits.
// @Tags Content
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.HomeContent}
// @Failure 500 {object} models.ApiResponse
// @Router /content/home [get]
func GetHomeContent(c *gin.Context) {
	if content, ok := content_cache.GetHome(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Home content fetched (cached)", content))
		return
	}

	var content models.HomeContent
	db := config.ContentGorm.WithContext(c.Request.Context())

	if err := db.Where("active = ?", true).Order("position asc").Find(&content.Hero).Error; err != nil {
		log.Printf("❌ [content] hero query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load home content"))
		return
	}
	if err := db.Where("active = ?", true).Order("position asc").Find(&content.FeaturedCategories).Error; err != nil {
		log.Printf("❌ [content] featured categories query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load home content"))
		return
	}
	if err := db.Where("active = ?", true).Order("created_at desc").Limit(6).Find(&content.Testimonials).Error; err != nil {
		log.Printf("❌ [content] testimonials query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load home content"))
		return
	}
	if err := db.Where("active = ?", true).Order("position asc").Find(&content.Brands).Error; err != nil {
		log.Printf("❌ [content] brands query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load home content"))
		return
	}

	resolveImageURLs(&content)

	content_cache.SetHome(content)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Home content fetched", content))
}

// resolveImageURLs swaps stored Cloudinary public IDs for delivery URLs so
// clients never see raw asset IDs.
func resolveImageURLs(content *models.HomeContent) {
	images := services.GetImageService()
	if images == nil {
		return
	}
	for i := range content.Hero {
		content.Hero[i].ImageID = images.ContentURL(content.Hero[i].ImageID)
	}
	for i := range content.FeaturedCategories {
		content.FeaturedCategories[i].ImageID = images.ContentURL(content.FeaturedCategories[i].ImageID)
	}
	for i := range content.Brands {
		content.Brands[i].LogoID = images.ContentURL(content.Brands[i].LogoID)
	}
}
