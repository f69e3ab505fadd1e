package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "ferromart/internal/log"
	"ferromart/internal/services"
)

type CheckoutHandler struct {
	Checkout *services.CheckoutService
}

// Place runs the bill -> order -> details sequence. Every backend
// failure class is collapsed into one generic message at this boundary;
// the stage that failed is logged, and anything already created on the
// backend stays there.
func (h *CheckoutHandler) Place(c *fiber.Ctx) error {
	res, err := h.Checkout.Place(c.Context())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotLoggedIn):
			return c.Redirect("/login")
		case errors.Is(err, services.ErrEmptyCart):
			return c.Redirect("/cart?err=empty")
		}
		var ce *services.Error
		if errors.As(err, &ce) {
			applog.Error(c, "checkout.fail", ce.Err, map[string]any{"stage": ce.Stage.String()})
		} else {
			applog.Error(c, "checkout.fail", err, nil)
		}
		return c.Status(fiber.StatusBadGateway).Render("checkout_failed", fiber.Map{
			"Message": "Could not process your purchase. Please try again.",
		})
	}

	applog.Audit(c, "checkout.place", map[string]any{"order_id": res.OrderID, "bill_id": res.BillID, "total": res.Total})
	return render(c, "order_placed", fiber.Map{"OrderID": res.OrderID, "Total": res.Total})
}
