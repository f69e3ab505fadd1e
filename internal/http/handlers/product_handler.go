package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ferromart/internal/backend"
	applog "ferromart/internal/log"
	"ferromart/internal/validate"
)

type ProductHandler struct {
	API *backend.Client
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	p, err := h.API.GetProduct(c.Context(), id)
	if err != nil || p.ID == 0 {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	return render(c, "product", fiber.Map{"P": p})
}
