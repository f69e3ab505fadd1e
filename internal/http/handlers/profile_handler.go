package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ferromart/internal/backend"
	"ferromart/internal/domain"
	applog "ferromart/internal/log"
	"ferromart/internal/store"
)

type ProfileHandler struct {
	API     *backend.Client
	Session *store.SessionStore
}

type orderRow struct {
	domain.Order
	StatusName string
}

// Show renders the profile page with the client's order history.
func (h *ProfileHandler) Show(c *fiber.Ctx) error {
	u := h.Session.Current()
	if u == nil {
		return c.Redirect("/login")
	}

	orders, err := h.API.ListOrdersByClient(c.Context(), u.ID)
	if err != nil {
		applog.Error(c, "profile.orders.load", err, map[string]any{"client_id": u.ID})
		orders = nil
	}
	rows := make([]orderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, orderRow{Order: o, StatusName: domain.OrderStatusName(o.Status)})
	}
	return render(c, "profile", fiber.Map{"Profile": u, "Orders": rows})
}
