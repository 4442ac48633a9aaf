// Package cart normalizes the two cart representations, the server-held
// cart of an authenticated shopper and the session-held guest cart, into
// one CartItem view-model. The source is resolved once at hydration time;
// nothing downstream branches on where the cart came from.
package cart

import (
	"context"
	"log"

	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/SatpalInfilogix/kular-fashion-web/session"
	"github.com/shopspring/decimal"
)

// Fallbacks for absent product fields. Literal strings shown to shoppers.
const (
	UnknownProduct = "Unknown Product"
	UnknownColor   = "Unknown Color"
	UnknownSize    = "Unknown Size"
	UnknownBrand   = "Unknown Brand"

	DefaultImage      = "/images/temp/product1.jpg"
	DefaultQuantity   = 1
	DefaultTotalStock = 10
)

// Source is the tagged union of cart origins.
type Source interface {
	items(imageRoot string) []models.CartItem
}

// ServerSource wraps the commerce API cart graph.
type ServerSource struct {
	Cart *models.ServerCart
}

// GuestSource wraps the session-held guest cart.
type GuestSource struct {
	Cart *models.GuestCart
}

func (s ServerSource) items(imageRoot string) []models.CartItem {
	if s.Cart == nil {
		return []models.CartItem{}
	}
	out := make([]models.CartItem, 0, len(s.Cart.CartItems))
	for _, line := range s.Cart.CartItems {
		out = append(out, serverItem(line, imageRoot))
	}
	return out
}

func serverItem(line models.ServerCartItem, imageRoot string) models.CartItem {
	item := models.CartItem{
		ID:            line.ID,
		Name:          UnknownProduct,
		Color:         UnknownColor,
		Size:          UnknownSize,
		Brand:         UnknownBrand,
		Image:         DefaultImage,
		Quantity:      line.Quantity,
		TotalQuantity: DefaultTotalStock,
	}
	if item.Quantity == 0 {
		item.Quantity = DefaultQuantity
	}

	variant := line.Variant
	if variant == nil {
		return item
	}
	item.VariantID = variant.ID
	if variant.TotalQuantity != 0 {
		item.TotalQuantity = variant.TotalQuantity
	}
	if variant.Colors != nil && variant.Colors.ColorDetail != nil && variant.Colors.ColorDetail.Name != "" {
		item.Color = variant.Colors.ColorDetail.Name
	}
	if variant.Sizes != nil && variant.Sizes.SizeDetail != nil && variant.Sizes.SizeDetail.Size != "" {
		item.Size = variant.Sizes.SizeDetail.Size
	}

	product := variant.Product
	if product == nil {
		return item
	}
	if product.Name != "" {
		item.Name = product.Name
	}
	item.Price = product.Price
	if product.Brand != nil && product.Brand.Name != "" {
		item.Brand = product.Brand.Name
	}
	if len(product.WebImage) > 0 && product.WebImage[0].Path != "" {
		item.Image = imageRoot + product.WebImage[0].Path
	}
	return item
}

func (g GuestSource) items(imageRoot string) []models.CartItem {
	if g.Cart == nil {
		return []models.CartItem{}
	}
	out := make([]models.CartItem, 0, len(g.Cart.CartItems))
	for _, entry := range g.Cart.CartItems {
		out = append(out, guestItem(entry, imageRoot))
	}
	return out
}

func guestItem(entry models.GuestCartItem, imageRoot string) models.CartItem {
	item := models.CartItem{
		ID:            entry.ID,
		Name:          entry.Name,
		Color:         entry.Color,
		Size:          entry.Size,
		Price:         entry.Price,
		VariantID:     entry.VariantID,
		Quantity:      entry.Quantity,
		TotalQuantity: entry.TotalQuantity,
		Brand:         entry.Brand,
		Image:         DefaultImage,
	}
	if item.Name == "" {
		item.Name = UnknownProduct
	}
	if item.Color == "" {
		item.Color = UnknownColor
	}
	if item.Size == "" {
		item.Size = UnknownSize
	}
	if item.Brand == "" {
		item.Brand = UnknownBrand
	}
	if item.Quantity == 0 {
		item.Quantity = DefaultQuantity
	}
	if item.TotalQuantity == 0 {
		item.TotalQuantity = DefaultTotalStock
	}
	// guest entries already carry a relative path
	if entry.Image != "" {
		item.Image = imageRoot + entry.Image
	}
	return item
}

// Resolve maps a source into the CartItem sequence.
func Resolve(src Source, imageRoot string) []models.CartItem {
	return src.items(imageRoot)
}

// CartShower is the slice of the commerce client the hydrator needs.
type CartShower interface {
	ShowCart(ctx context.Context, token string) (*models.ServerCartResponse, error)
}

// Hydrator populates the checkout screen's cart from whichever source the
// session points at.
type Hydrator struct {
	Store     session.Store
	Client    CartShower
	ImageRoot string
}

// Hydrate returns the shopper's cart items. A network or parse failure on
// either path degrades to an empty cart; an empty cart is self-explanatory
// to the shopper, so hydration never blocks the screen.
func (h *Hydrator) Hydrate(ctx context.Context, sessionID string) []models.CartItem {
	token, _ := h.Store.Get(ctx, sessionID, models.SessionKeyAuthToken)

	var user models.UserDetails
	hasUser := session.GetJSON(ctx, h.Store, sessionID, models.SessionKeyUserDetails, &user) == nil && user.ID != 0

	if token != "" && hasUser {
		resp, err := h.Client.ShowCart(ctx, token)
		if err != nil {
			log.Printf("[cart.hydrate] cart/show failed, serving empty cart: %v", err)
			return []models.CartItem{}
		}
		if resp.Cart == nil {
			return []models.CartItem{}
		}
		return Resolve(ServerSource{Cart: resp.Cart}, h.ImageRoot)
	}

	var guest models.GuestCart
	if err := session.GetJSON(ctx, h.Store, sessionID, models.SessionKeyCart, &guest); err != nil {
		if err != session.ErrNotFound {
			log.Printf("[cart.hydrate] malformed guest cart, serving empty cart: %v", err)
		}
		return []models.CartItem{}
	}
	return Resolve(GuestSource{Cart: &guest}, h.ImageRoot)
}

// Subtotal is Σ price·quantity over the items. Empty cart sums to zero.
func Subtotal(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
