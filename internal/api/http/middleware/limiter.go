package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"
)

// NewLimiterWithRedis rate-limits clients by IP over a sliding window, with
// counters kept in Redis so limits hold across replicas. Health and metrics
// probes are exempt.
func NewLimiterWithRedis(rdb *redis.Client) fiber.Handler {
	return limiter.New(limiter.Config{
		Storage: fiberredis.NewFromConnection(rdb),

		Max:               60,
		Expiration:        time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},

		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		Next: func(c fiber.Ctx) bool {
			switch c.Path() {
			case "/livez", "/readyz", "/startupz", "/metrics":
				return true
			}
			return false
		},
	})
}
