package checkout_controller

import (
	"github.com/SatpalInfilogix/kular-fashion-web/cart"
	"github.com/SatpalInfilogix/kular-fashion-web/commerce"
	"github.com/SatpalInfilogix/kular-fashion-web/session"
)

var (
	store    session.Store
	client   *commerce.Client
	hydrator *cart.Hydrator
)

// Init wires the checkout controllers to the session store and commerce
// client. Called once from main.
func Init(s session.Store, c *commerce.Client, h *cart.Hydrator) {
	store = s
	client = c
	hydrator = h
}
