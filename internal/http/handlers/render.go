package handlers

import "github.com/gofiber/fiber/v2"

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Inject user and cart badge count if present
	if u := c.Locals("user"); u != nil {
		data["User"] = u
	}
	if n, ok := c.Locals("cartCount").(int); ok {
		data["CartCount"] = n
	}
	// Pick up the token the CSRF middleware put into Locals
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	} else if cookTok := c.Cookies("csrf_"); cookTok != "" {
		// Fallback for edge cases where Locals wasn't populated.
		data["CSRFToken"] = cookTok
	}
	return c.Render(tmpl, data)
}
