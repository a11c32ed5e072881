package middleware

import (
	"time"

	"ccx-marketplace/util/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLogger logs method, path, status and latency for every request and
// propagates (or assigns) an X-Request-ID header.
func RequestLogger() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("X-Request-ID", requestID)

		err := c.Next()

		logger.Log().Info("request completed",
			zap.String("request_id", requestID),
			zap.String("http.request.method", c.Method()),
			zap.String("url.path", c.Path()),
			zap.Int("http.response.status_code", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
		)

		return err
	}
}
