package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/slangstash/slang-service/internal/cache"
	"github.com/slangstash/slang-service/internal/middleware"
	"github.com/slangstash/slang-service/pkg/constant"
)

func RegisterRoutes(app *fiber.App, h *UserHandler, store cache.Cache, authenticate fiber.Handler) {
	app.Get("/verify-email",
		middleware.RateLimit(store, constant.VerifyEmailRateLimit, constant.DefaultRateWindow),
		h.VerifyEmail)
	app.Post("/register",
		middleware.RateLimit(store, constant.RegisterRateLimit, constant.RegisterRateWindow),
		h.Register)
	app.Post("/login",
		middleware.RateLimit(store, constant.LoginRateLimit, constant.DefaultRateWindow),
		h.Login)
	app.Put("/reset-password",
		middleware.RateLimit(store, constant.ResetPasswordRateLimit, constant.DefaultRateWindow),
		h.ResetPassword)
	app.Post("/reset-request",
		middleware.RateLimit(store, constant.ResetRequestRateLimit, constant.ResetRequestRateWindow),
		h.ResetRequest)

	app.Put("/update", authenticate, h.Update)
	app.Delete("/delete", authenticate, h.Delete)

	// Deprecated listing endpoint.
	app.Get("/user", authenticate, h.List)
}
