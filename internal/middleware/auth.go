package middleware

import (
	"tugas-go/internal/auth"
	"tugas-go/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CookieName adalah nama cookie yang membawa token sesi.
const CookieName = "token"

// RequireAuth membaca token dari cookie, memverifikasinya lewat Manager,
// dan menaruh user ID di locals. Token yang hilang, rusak, atau
// kedaluwarsa semuanya menghasilkan 401.
func RequireAuth(tokens *auth.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := tokens.Verify(c.Cookies(CookieName))
		if err != nil {
			logger.SecurityLogger.Warn("Unauthenticated request",
				zap.String("method", c.Method()),
				zap.String("url", c.OriginalURL()),
			)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthenticated",
			})
		}
		c.Locals("userID", claims.UserID)
		return c.Next()
	}
}
