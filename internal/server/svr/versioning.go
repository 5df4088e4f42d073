package svr

import (
	"github.com/gofiber/fiber/v2"
)

type V1 struct {
	fiber.Router
}

// Meta hosts service-level endpoints that are not part of the versioned API.
type Meta struct {
	fiber.Router
}

type Root struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App) (*V1, *Meta, *Root) {
	root := app.Group("/api")

	v1 := root.Group("/v1")
	meta := root.Group("/_")

	return &V1{Router: v1}, &Meta{Router: meta}, &Root{Router: root}
}
