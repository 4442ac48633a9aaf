package cart_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/SatpalInfilogix/kular-fashion-web/middleware"
	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/SatpalInfilogix/kular-fashion-web/session"
	"github.com/gin-gonic/gin"
)

// AddCartItem godoc
// @Summary Add an item to the guest cart
// @Description Appends an entry to the session-held guest cart. Adding an already-present variant bumps its quantity instead.
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body models.GuestCartItem true "Cart entry"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /cart/items [post]
func AddCartItem(c *gin.Context) {
	var entry models.GuestCartItem
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}
	if entry.Quantity <= 0 {
		entry.Quantity = 1
	}

	sessionID := middleware.GetSessionID(c)
	ctx := c.Request.Context()

	var guest models.GuestCart
	if err := session.GetJSON(ctx, store, sessionID, models.SessionKeyCart, &guest); err != nil && !errors.Is(err, session.ErrNotFound) {
		// A malformed blob is replaced rather than surfaced; the shopper
		// only ever sees their cart, never a storage error.
		log.Printf("[cart.add] resetting malformed guest cart: %v", err)
		guest = models.GuestCart{}
	}

	merged := false
	for i, existing := range guest.CartItems {
		if existing.VariantID == entry.VariantID && entry.VariantID != 0 {
			guest.CartItems[i].Quantity += entry.Quantity
			merged = true
			break
		}
	}
	if !merged {
		if entry.ID == 0 {
			entry.ID = nextEntryID(guest.CartItems)
		}
		guest.CartItems = append(guest.CartItems, entry)
	}

	if err := session.SetJSON(ctx, store, sessionID, models.SessionKeyCart, guest); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added to cart", guest))
}

// nextEntryID issues an ID above every live entry. Cart length would reuse
// the ID of a removed entry, and removal matches by ID.
func nextEntryID(items []models.GuestCartItem) int {
	max := 0
	for _, entry := range items {
		if entry.ID > max {
			max = entry.ID
		}
	}
	return max + 1
}
