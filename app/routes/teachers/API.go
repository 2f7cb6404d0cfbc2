package teachers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gunawanst/assahra-api/app/routes/respond"
	"github.com/gunawanst/assahra-api/app/sheetstore"
)

// ListTeachersAPI returns every teacher as {teacher_id, name} pairs.
func ListTeachersAPI(repo *sheetstore.Repo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		teachers, err := repo.Teachers(c.UserContext())
		if err != nil {
			return respond.Fail(c, err.Error())
		}

		out := make([]fiber.Map, len(teachers))
		for i, t := range teachers {
			out[i] = fiber.Map{
				"teacher_id": t.TeacherID,
				"name":       t.Name,
			}
		}
		return respond.OK(c, fiber.Map{"data": out})
	}
}
