package cart_controller

import (
	"github.com/SatpalInfilogix/kular-fashion-web/cart"
	"github.com/SatpalInfilogix/kular-fashion-web/session"
)

var (
	store    session.Store
	hydrator *cart.Hydrator
)

// Init wires the cart controllers to the session store. Called once from main.
func Init(s session.Store, h *cart.Hydrator) {
	store = s
	hydrator = h
}
