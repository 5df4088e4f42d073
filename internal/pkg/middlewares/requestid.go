package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"exusiai.dev/shufflestat/internal/constant"
	"exusiai.dev/shufflestat/internal/pkg/flog"
)

// RequestID repopulates the id injected by the logger middleware into ctx.Locals.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := flog.IDFromFiberCtx(c); ok {
			c.Locals(constant.ContextKeyRequestID, id.String())
		}
		return c.Next()
	}
}
