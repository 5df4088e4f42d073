package meta

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	"exusiai.dev/shufflestat/internal/pkg/bininfo"
	"exusiai.dev/shufflestat/internal/pkg/cachectrl"
	"exusiai.dev/shufflestat/internal/server/svr"
	"exusiai.dev/shufflestat/internal/service"
)

type Meta struct {
	fx.In

	HealthService *service.Health
}

func RegisterMeta(meta *svr.Meta, c Meta) {
	meta.Get("/bininfo", c.BinInfo)

	meta.Get("/health", cache.New(cache.Config{
		// cache it for a second to mitigate potential DDoS
		Expiration: time.Second,
	}), c.Health)
}

func (c *Meta) BinInfo(ctx *fiber.Ctx) error {
	cachectrl.OptIn(ctx, time.Now())
	return ctx.JSON(fiber.Map{
		"version": bininfo.Version,
		"build":   bininfo.BuildTime,
	})
}

func (c *Meta) Health(ctx *fiber.Ctx) error {
	status, err := c.HealthService.Ping(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(status)
}
