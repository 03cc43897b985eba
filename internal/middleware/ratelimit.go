package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/slangstash/slang-service/internal/cache"
	"github.com/slangstash/slang-service/pkg/constant"
)

// RateLimit admits at most limit requests per client IP inside a fixed window.
// The counter step is a single atomic increment-with-conditional-expire, so
// concurrent requests from one IP cannot slip past the ceiling. If the counter
// store is unreachable the request is rejected, not waved through.
func RateLimit(store cache.Cache, limit int, window time.Duration) fiber.Handler {
	if window <= 0 {
		window = constant.DefaultRateWindow
	}

	return func(c *fiber.Ctx) error {
		key := constant.RateLimiterPrefix + c.IP()

		count, err := store.IncrementWindow(c.Context(), key, window)
		if err != nil {
			log.Printf("rate limiter error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"msg": "Internal server error.",
			})
		}

		if count > int64(limit) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"msg": "Too many requests, please try again later.",
			})
		}

		return c.Next()
	}
}
