package meta

import (
	"github.com/gofiber/fiber/v2"

	"sumstats.dev/explorer/internal/pkg/bininfo"
)

func RegisterIndex(app *fiber.App) {
	app.Get("/api", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "gnomAD per-sample summary statistics explorer",
			"release": bininfo.DataRelease,
			"@links": fiber.Map{
				"v1":     "/api/v1",
				"health": "/api/_/health",
			},
		})
	})
}
