package teachers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gunawanst/assahra-api/app/sheetstore"
)

func SetupTeachersRoutes(app *fiber.App, repo *sheetstore.Repo) {
	api := app.Group("/api/teachers")
	api.Get("/", ListTeachersAPI(repo))
}
