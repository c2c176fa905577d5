package middleware

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/service"
)

// TrackVisit increments today's visit counter for every GET request under
// /api/. It counts traffic, not successful fetches: requests that end in a
// 404 still count, which is why it runs before the handler. A failed
// increment is logged and never fails the request.
func TrackVisit(stats service.StatisticService, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodGet && strings.HasPrefix(c.Path(), "/api/") {
			if _, err := stats.IncrementVisit(c.UserContext()); err != nil {
				logger.Error("visit tracking failed", "path", c.Path(), "error", err)
			}
		}
		return c.Next()
	}
}
