package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"exusiai.dev/shufflestat/internal/model"
	"exusiai.dev/shufflestat/internal/pkg/cachectrl"
	"exusiai.dev/shufflestat/internal/server/svr"
	"exusiai.dev/shufflestat/internal/service"
	"exusiai.dev/shufflestat/internal/util/rekuest"
)

type AccessPattern struct {
	fx.In

	AccessPatternService *service.AccessPattern
}

func RegisterAccessPattern(v1 *svr.V1, c AccessPattern) {
	group := v1.Group("/access-patterns")

	group.Post("/", c.IngestAccessPattern)
	group.Get("/summary", c.GetSummary)
}

// @Summary  Ingest Access Pattern
// @Tags     AccessPattern
// @Accept   json
// @Produce  json
// @Param    payload  body      model.AccessPatternResponse  true  "Access counters, raw or in the {success, data} envelope"
// @Success  200      {object}  service.AccessPatternSummary
// @Failure  400      {object}  apierr.Error  "Invalid payload"
// @Router   /api/v1/access-patterns [POST]
func (c *AccessPattern) IngestAccessPattern(ctx *fiber.Ctx) error {
	var resp model.AccessPatternResponse
	if err := rekuest.ValidEnvelope(ctx, &resp); err != nil {
		return err
	}

	summary, err := c.AccessPatternService.Ingest(ctx.UserContext(), &resp)
	if err != nil {
		return err
	}

	return ctx.JSON(summary)
}

// @Summary  Get Access Pattern Summary
// @Tags     AccessPattern
// @Produce  json
// @Success  200  {object}  service.AccessPatternSummary  "Zero counters when nothing has been ingested"
// @Router   /api/v1/access-patterns/summary [GET]
func (c *AccessPattern) GetSummary(ctx *fiber.Ctx) error {
	summary, err := c.AccessPatternService.Summary(ctx.UserContext())
	if err != nil {
		return err
	}

	cachectrl.OptOut(ctx)
	return ctx.JSON(summary)
}
