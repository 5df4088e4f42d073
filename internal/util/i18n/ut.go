package i18n

import (
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
)

// LocalsKey is the fiber.Ctx locals key the request's translator is stored under.
const LocalsKey = "T"

var UT = ut.New(en.New(), en.New(), zh.New())
