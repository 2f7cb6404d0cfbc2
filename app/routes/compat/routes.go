// Package compat keeps the spreadsheet-era action routing alive: clients that
// still call GET/POST / with an ?action= parameter get the same behavior as
// the REST routes.
package compat

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gunawanst/assahra-api/app/config"
	"github.com/gunawanst/assahra-api/app/routes/admins"
	"github.com/gunawanst/assahra-api/app/routes/respond"
	"github.com/gunawanst/assahra-api/app/routes/slips"
	"github.com/gunawanst/assahra-api/app/routes/teachers"
	"github.com/gunawanst/assahra-api/app/sheetstore"
)

func SetupCompatRoutes(app *fiber.App, repo *sheetstore.Repo, cfg *config.Config) {
	adminStatus := admins.AdminStatusAPI(repo)
	listTeachers := teachers.ListTeachersAPI(repo)
	getSlip := slips.GetSlipAPI(repo, cfg)
	login := admins.LoginAPI(repo, cfg)
	create := admins.CreateAdminAPI(repo, cfg)

	app.Get("/", func(c *fiber.Ctx) error {
		switch strings.ToLower(c.Query("action")) {
		case "adminstatus":
			return adminStatus(c)
		case "listteachers":
			return listTeachers(c)
		case "getslip":
			return getSlip(c)
		default:
			return respond.Fail(c, "Unknown action")
		}
	})

	app.Post("/", func(c *fiber.Ctx) error {
		action := strings.ToLower(c.Query("action"))
		if action == "" {
			// legacy clients sent the action in the form/JSON body
			var body struct {
				Action string `json:"action"`
			}
			if err := c.BodyParser(&body); err == nil {
				action = strings.ToLower(body.Action)
			}
		}
		switch action {
		case "adminlogin":
			return login(c)
		case "admincreate":
			return create(c)
		default:
			return respond.Fail(c, "Unknown action")
		}
	})
}
