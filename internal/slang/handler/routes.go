package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/slangstash/slang-service/internal/cache"
	"github.com/slangstash/slang-service/internal/middleware"
	"github.com/slangstash/slang-service/pkg/constant"
)

func RegisterRoutes(app *fiber.App, h *SlangHandler, store cache.Cache, authenticate fiber.Handler) {
	app.Get("/",
		middleware.RateLimit(store, constant.LookupRateLimit, constant.DefaultRateWindow),
		h.Lookup)
	app.Post("/contribute",
		authenticate,
		middleware.RateLimit(store, constant.ContributeRateLimit, constant.DefaultRateWindow),
		h.Contribute)
}
