package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ferromart/internal/backend"
)

type HealthHandler struct {
	API *backend.Client
}

// Check reports local liveness plus the reachability of the backend.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	backendOK := h.API.HealthCheck(c.Context()) == nil
	return c.JSON(fiber.Map{"ok": true, "backend": backendOK})
}
