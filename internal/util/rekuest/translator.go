package rekuest

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/gofiber/fiber/v2"

	"exusiai.dev/shufflestat/internal/util/i18n"
)

// TranslatorFromCtx returns the translator injected by middlewares.InjectI18n,
// or the fallback translator when the middleware did not run.
func TranslatorFromCtx(ctx *fiber.Ctx) ut.Translator {
	if t, ok := ctx.Locals(i18n.LocalsKey).(ut.Translator); ok {
		return t
	}
	return i18n.UT.GetFallback()
}
