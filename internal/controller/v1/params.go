package v1

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gopkg.in/guregu/null.v3"

	"exusiai.dev/shufflestat/internal/constant"
	"exusiai.dev/shufflestat/internal/model/types"
	"exusiai.dev/shufflestat/internal/pkg/apierr"
	"exusiai.dev/shufflestat/internal/util/rekuest"
)

// resolveChartParams fills unset chart parameters with their defaults and bounds K.
func resolveChartParams(ctx *fiber.Ctx, defaultK int, k null.Int, usePercentage, showRelative null.Bool) (types.ChartParams, error) {
	params := types.ChartParams{
		K:             int(k.ValueOrZero()),
		UsePercentage: usePercentage.ValueOrZero(),
		ShowRelative:  showRelative.ValueOrZero(),
	}
	if !k.Valid {
		params.K = defaultK
	}
	if !usePercentage.Valid {
		params.UsePercentage = constant.DefaultUsePercentage
	}
	if !showRelative.Valid {
		params.ShowRelative = constant.DefaultShowRelative
	}

	if err := rekuest.ValidStruct(ctx, &params); err != nil {
		return types.ChartParams{}, err
	}
	return params, nil
}

func queryInt(ctx *fiber.Ctx, key string) (null.Int, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return null.Int{}, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return null.Int{}, apierr.ErrInvalidReq.Msg("invalid request: %s must be an integer, got %q", key, raw)
	}
	return null.IntFrom(v), nil
}

func queryBool(ctx *fiber.Ctx, key string) (null.Bool, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return null.Bool{}, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return null.Bool{}, apierr.ErrInvalidReq.Msg("invalid request: %s must be a boolean, got %q", key, raw)
	}
	return null.BoolFrom(v), nil
}
