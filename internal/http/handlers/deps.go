package handlers

import (
	"ferromart/internal/backend"
	"ferromart/internal/services"
	"ferromart/internal/store"
)

type Deps struct {
	CatalogHandler  *CatalogHandler
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	AuthHandler     *AuthHandler
	ProfileHandler  *ProfileHandler
	AdminHandler    *AdminHandler
	HealthHandler   *HealthHandler
}

func NewDeps(api *backend.Client, cart *store.CartStore, session *store.SessionStore) *Deps {
	checkoutSvc := services.NewCheckoutService(cart, session, api)

	return &Deps{
		CatalogHandler:  &CatalogHandler{API: api},
		ProductHandler:  &ProductHandler{API: api},
		CartHandler:     &CartHandler{API: api, Cart: cart},
		CheckoutHandler: &CheckoutHandler{Checkout: checkoutSvc},
		AuthHandler:     &AuthHandler{API: api, Session: session},
		ProfileHandler:  &ProfileHandler{API: api, Session: session},
		AdminHandler:    &AdminHandler{API: api},
		HealthHandler:   &HealthHandler{API: api},
	}
}
