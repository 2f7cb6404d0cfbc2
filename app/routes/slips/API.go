package slips

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/gunawanst/assahra-api/app/auth"
	"github.com/gunawanst/assahra-api/app/config"
	"github.com/gunawanst/assahra-api/app/models"
	"github.com/gunawanst/assahra-api/app/payroll"
	"github.com/gunawanst/assahra-api/app/routes/respond"
	"github.com/gunawanst/assahra-api/app/sheetstore"
)

// GetSlipAPI computes the payroll slip for ?teacher_id=...&month=YYYY-MM.
// Admin-only: the token comes from the admin_token query parameter or a
// Bearer header. Classes and attendance are fetched concurrently, so the
// request costs roughly the slower of the two reads.
func GetSlipAPI(repo *sheetstore.Repo, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v := auth.VerifyToken(tokenFromRequest(c), cfg.JWTSecret, auth.AdminRole)
		if !v.Valid {
			return respond.Fail(c, v.Reason)
		}

		teacherID := strings.TrimSpace(c.Query("teacher_id"))
		month := strings.TrimSpace(c.Query("month"))
		if teacherID == "" || !IsMonth(month) {
			return respond.Fail(c, "Missing/invalid teacher_id or month (YYYY-MM)")
		}

		var (
			classes []models.Class
			entries []models.AttendanceEntry
		)
		g, ctx := errgroup.WithContext(c.UserContext())
		g.Go(func() error {
			var err error
			classes, err = repo.Classes(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			entries, err = repo.Attendance(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return respond.Fail(c, err.Error())
		}

		slip := payroll.BuildSlip(teacherID, month, classes, entries)
		return respond.OK(c, fiber.Map{"data": slip})
	}
}

func tokenFromRequest(c *fiber.Ctx) string {
	if t := c.Query("admin_token"); t != "" {
		return t
	}
	if h := c.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}
