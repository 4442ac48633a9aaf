package cart_controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SatpalInfilogix/kular-fashion-web/middleware"
	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/SatpalInfilogix/kular-fashion-web/session"
	"github.com/gin-gonic/gin"
)

// RemoveCartItem godoc
// @Summary Remove an item from the guest cart
// @Tags Cart
// @Produce json
// @Param id path int true "Cart entry ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /cart/items/{id} [delete]
func RemoveCartItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid cart item ID"))
		return
	}

	sessionID := middleware.GetSessionID(c)
	ctx := c.Request.Context()

	var guest models.GuestCart
	if err := session.GetJSON(ctx, store, sessionID, models.SessionKeyCart, &guest); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart is empty"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read cart"))
		return
	}

	kept := guest.CartItems[:0]
	removed := false
	for _, entry := range guest.CartItems {
		if entry.ID == itemID {
			removed = true
			continue
		}
		kept = append(kept, entry)
	}
	if !removed {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart item not found"))
		return
	}
	guest.CartItems = kept

	if err := session.SetJSON(ctx, store, sessionID, models.SessionKeyCart, guest); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", guest))
}
