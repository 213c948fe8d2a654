package middleware

import (
	"fmt"
	"runtime/debug"

	"tugas-go/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrorHandler mencatat setiap request masuk dengan request id
// dan menangkap panic agar tidak menjatuhkan proses.
func ErrorHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := uuid.NewString()
		c.Locals("requestID", requestID)

		defer func() {
			if r := recover(); r != nil {
				logger.ErrorLogger.Error(fmt.Sprintf("Recovered from panic: %v", r),
					zap.String("request_id", requestID),
					zap.String("stack", string(debug.Stack())),
				)
				// Detail internal hanya masuk log, tidak pernah ke klien
				c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "internal server error",
				})
			}
		}()

		// Logging request masuk
		logger.RequestLogger.Info("Incoming request",
			zap.String("request_id", requestID),
			zap.String("method", c.Method()),
			zap.String("url", c.OriginalURL()),
		)
		return c.Next()
	}
}
