package admins

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gunawanst/assahra-api/app/config"
	"github.com/gunawanst/assahra-api/app/sheetstore"
)

func SetupAdminRoutes(app *fiber.App, repo *sheetstore.Repo, cfg *config.Config) {
	api := app.Group("/api/auth")
	api.Post("/login", LoginAPI(repo, cfg))
	api.Post("/admins", CreateAdminAPI(repo, cfg))
	api.Get("/status", AdminStatusAPI(repo))
}
