package meta

import (
	"github.com/gofiber/fiber/v2"

	"exusiai.dev/shufflestat/internal/pkg/bininfo"
	"exusiai.dev/shufflestat/internal/server/svr"
)

func RegisterIndex(root *svr.Root) {
	root.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Shufflestat API v1",
			"version": bininfo.Version,
			"endpoints": []string{
				"POST /api/v1/shuffle/results",
				"GET /api/v1/shuffle/chart",
				"POST /api/v1/shuffle/chart",
				"GET /api/v1/shuffle/permutation.csv",
				"POST /api/v1/access-patterns",
				"GET /api/v1/access-patterns/summary",
			},
		})
	})
}
