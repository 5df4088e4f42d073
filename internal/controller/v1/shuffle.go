package v1

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"exusiai.dev/shufflestat/internal/app/appconfig"
	"exusiai.dev/shufflestat/internal/constant"
	"exusiai.dev/shufflestat/internal/core/permutation"
	"exusiai.dev/shufflestat/internal/model"
	"exusiai.dev/shufflestat/internal/model/types"
	"exusiai.dev/shufflestat/internal/pkg/cachectrl"
	"exusiai.dev/shufflestat/internal/server/svr"
	"exusiai.dev/shufflestat/internal/service"
	"exusiai.dev/shufflestat/internal/util/rekuest"
)

type Shuffle struct {
	fx.In

	Conf                *appconfig.Config
	DistributionService *service.Distribution
	ExportService       *service.Export
}

func RegisterShuffle(v1 *svr.V1, c Shuffle) {
	group := v1.Group("/shuffle")

	group.Post("/results", c.IngestResults)
	group.Get("/chart", c.GetChart)
	group.Post("/chart", c.BuildChart)
	group.Get("/permutation.csv", c.GetPermutationCSV)
}

// @Summary  Ingest Shuffle Statistics
// @Tags     Shuffle
// @Accept   json
// @Produce  json
// @Param    payload  body      model.ShuffleStatsResponse  true  "Shuffle statistics, raw or in the producer envelope"
// @Success  200      {object}  types.IngestResult
// @Failure  400      {object}  apierr.Error  "Invalid observations"
// @Failure  422      {object}  apierr.Error  "The producer reported a failure"
// @Router   /api/v1/shuffle/results [POST]
func (c *Shuffle) IngestResults(ctx *fiber.Ctx) error {
	var resp model.ShuffleStatsResponse
	if err := rekuest.ValidEnvelope(ctx, &resp); err != nil {
		return err
	}

	result, err := c.DistributionService.Ingest(ctx.UserContext(), &resp)
	if err != nil {
		return err
	}

	return ctx.JSON(result)
}

// @Summary  Get Chart Model of the Current Snapshot
// @Tags     Shuffle
// @Produce  json
// @Param    k           query     int   false  "Number of top elements per position; default to 5"
// @Param    percentage  query     bool  false  "Display frequencies as percentages; default to true"
// @Param    relative    query     bool  false  "Display frequencies relative to the top-k total; default to false"
// @Success  200         {object}  distribution.ChartModel
// @Failure  400         {object}  apierr.Error  "Invalid parameters, or nothing ingested yet"
// @Router   /api/v1/shuffle/chart [GET]
func (c *Shuffle) GetChart(ctx *fiber.Ctx) error {
	k, err := queryInt(ctx, "k")
	if err != nil {
		return err
	}
	usePercentage, err := queryBool(ctx, "percentage")
	if err != nil {
		return err
	}
	showRelative, err := queryBool(ctx, "relative")
	if err != nil {
		return err
	}

	params, err := resolveChartParams(ctx, c.Conf.DefaultTopK, k, usePercentage, showRelative)
	if err != nil {
		return err
	}

	chart, err := c.DistributionService.CurrentChart(ctx.UserContext(), params)
	if err != nil {
		return err
	}

	cachectrl.OptOut(ctx)
	return ctx.JSON(chart)
}

// @Summary  Build Chart Model
// @Tags     Shuffle
// @Accept   json
// @Produce  json
// @Param    request  body      types.ChartRequest  true  "Frequencies and display parameters"
// @Success  200      {object}  distribution.ChartModel
// @Failure  400      {object}  apierr.Error  "Invalid parameters"
// @Router   /api/v1/shuffle/chart [POST]
func (c *Shuffle) BuildChart(ctx *fiber.Ctx) error {
	var req types.ChartRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	params, err := resolveChartParams(ctx, c.Conf.DefaultTopK, req.K, req.UsePercentage, req.ShowRelative)
	if err != nil {
		return err
	}

	chart, err := c.DistributionService.Chart(ctx.UserContext(), req.Frequencies, params)
	if err != nil {
		return err
	}

	return ctx.JSON(chart)
}

// @Summary  Download the Current Permutation as CSV
// @Tags     Shuffle
// @Produce  text/csv
// @Success  200  {string}  string        "Key,Value CSV"
// @Failure  400  {object}  apierr.Error  "Nothing to export"
// @Router   /api/v1/shuffle/permutation.csv [GET]
func (c *Shuffle) GetPermutationCSV(ctx *fiber.Ctx) error {
	export, err := c.ExportService.CurrentPermutation(ctx.UserContext())
	if err != nil {
		return err
	}

	cachectrl.OptOut(ctx)
	ctx.Attachment(permutation.Filename(time.Now()))
	ctx.Set(fiber.HeaderContentType, permutation.ContentType)
	ctx.Set(constant.AmbiguousTokensHeader, strconv.Itoa(len(export.Ambiguous)))

	return ctx.SendString(export.CSV)
}
