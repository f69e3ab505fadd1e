package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"ferromart/internal/backend"
	applog "ferromart/internal/log"
	"ferromart/internal/store"
	"ferromart/internal/validate"
)

type CartHandler struct {
	API  *backend.Client
	Cart *store.CartStore
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	return render(c, "cart", fiber.Map{
		"Lines":     h.Cart.Lines(),
		"Subtotal":  h.Cart.Subtotal(),
		"ItemCount": h.Cart.ItemCount(),
		"Err":       c.Query("err"),
	})
}

// Add fetches a fresh product snapshot from the backend and merges it
// into the cart.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	qty := validate.Qty(c.FormValue("qty"))

	p, err := h.API.GetProduct(c.Context(), id)
	if err != nil || p.ID == 0 {
		applog.Error(c, "cart.add.product", err, map[string]any{"product_id": id})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	h.Cart.Add(p, qty)
	applog.Info(c, "cart.add", map[string]any{"product_id": id, "qty": qty})
	return c.Redirect("/cart")
}

// Update sets a line quantity; zero or negative removes the line.
func (h *CartHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	qty, err := strconv.Atoi(c.FormValue("qty"))
	if err != nil {
		return c.Status(400).SendString("invalid qty")
	}
	h.Cart.UpdateQuantity(id, qty)
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	h.Cart.Remove(id)
	return c.Redirect("/cart")
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.Cart.Clear()
	return c.Redirect("/cart")
}
