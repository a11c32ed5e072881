package middleware

import (
	"errors"

	"ccx-marketplace/util/errs"
	"ccx-marketplace/util/logger"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// ResponseError converts errors returned by handlers into JSON responses.
// AppErrors map to their kind's status; 5xx kinds and unknown errors are
// logged and answered generically so storage detail never reaches callers.
func ResponseError() fiber.Handler {
	return func(c fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}

		var appErr *errs.AppError
		if errors.As(err, &appErr) {
			status := appErr.HTTPStatus()
			if status >= fiber.StatusInternalServerError {
				logger.Log().Error("request failed",
					zap.String("url.path", c.Path()),
					zap.String("code", string(appErr.Kind)),
					zap.Error(appErr),
				)
				return c.Status(status).JSON(fiber.Map{
					"error": "internal server error",
					"code":  string(appErr.Kind),
				})
			}
			return c.Status(status).JSON(fiber.Map{
				"error": appErr.Message,
				"code":  string(appErr.Kind),
			})
		}

		logger.Log().Error("unhandled error",
			zap.String("url.path", c.Path()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
			"code":  string(errs.KindOperationFailed),
		})
	}
}
