package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "ferromart/internal/log"
	"ferromart/internal/store"
)

// RequireUser enforces that a profile is active; otherwise redirect to login.
func RequireUser(session *store.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := session.Current()
		if u == nil {
			return c.Redirect("/login")
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// RequireAdmin gates the admin panel on the profile's admin hint. This
// is UI gating only; the backend enforces real authorization.
func RequireAdmin(session *store.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := session.Current()
		if u == nil || !u.IsAdmin {
			applog.Security(c, "access.denied.admin", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
		}
		c.Locals("user", u)
		return c.Next()
	}
}
