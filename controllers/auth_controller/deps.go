package auth_controller

import (
	"github.com/SatpalInfilogix/kular-fashion-web/commerce"
	"github.com/SatpalInfilogix/kular-fashion-web/session"
)

var (
	store  session.Store
	client *commerce.Client
)

// Init wires the session store and commerce client the auth handlers use.
func Init(s session.Store, c *commerce.Client) {
	store = s
	client = c
}
