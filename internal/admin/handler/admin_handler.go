package handler

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/slangstash/slang-service/internal/cache"
	"github.com/slangstash/slang-service/internal/middleware"
	"github.com/slangstash/slang-service/pkg/constant"
)

type AdminHandler struct {
	store cache.Cache
}

func NewAdminHandler(store cache.Cache) *AdminHandler {
	return &AdminHandler{store: store}
}

// InvalidateCache evicts a single cache entry, or every entry when no key is
// given. Not wired into any write path; manual operation only.
func (h *AdminHandler) InvalidateCache(c *fiber.Ctx) error {
	key := c.Query("key")

	deleted, err := cache.Invalidate(c.Context(), h.store, key)
	if err != nil {
		log.Printf("cache invalidation: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Internal server error.",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg":     "cache invalidated",
		"deleted": deleted,
	})
}

func RegisterRoutes(app *fiber.App, h *AdminHandler, authenticate fiber.Handler) {
	admin := app.Group("/admin", authenticate, middleware.RequireRole(constant.RoleEnforcer))
	admin.Delete("/cache", h.InvalidateCache)
}
