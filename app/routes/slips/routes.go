package slips

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gunawanst/assahra-api/app/config"
	"github.com/gunawanst/assahra-api/app/sheetstore"
)

func SetupSlipsRoutes(app *fiber.App, repo *sheetstore.Repo, cfg *config.Config) {
	api := app.Group("/api/slips")
	api.Get("/", GetSlipAPI(repo, cfg))
}
