package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	applog "hooksaurus/internal/log"
)

// Pinger is the slice of *sqlx.DB the health check needs.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type BaseHandler struct {
	DB Pinger
}

// GET /
func (h *BaseHandler) Index(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "index", nil)
}

// GET /health
func (h *BaseHandler) Health(c *fiber.Ctx) error {
	return c.SendString("ok")
}

// GET /healthz
func (h *BaseHandler) Healthz(c *fiber.Ctx) error {
	if h.DB == nil {
		return c.JSON(fiber.Map{"ok": true})
	}
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	if err := h.DB.PingContext(ctx); err != nil {
		applog.Error(c, "health.db", err, nil)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"ok": false, "db": "down"})
	}
	return c.JSON(fiber.Map{"ok": true, "db": "up"})
}
