package admins

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gunawanst/assahra-api/app/auth"
	"github.com/gunawanst/assahra-api/app/config"
	"github.com/gunawanst/assahra-api/app/routes/respond"
	"github.com/gunawanst/assahra-api/app/sheetstore"
)

// LoginAPI authenticates an admin by email and password and returns a fresh
// token. Every credential failure gets the same message so the endpoint does
// not leak which part was wrong.
func LoginAPI(repo *sheetstore.Repo, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type LoginRequest struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}

		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return respond.Fail(c, "Invalid request body")
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		if !IsEmail(email) || req.Password == "" {
			return respond.Fail(c, "Wrong email or password.")
		}

		admins, err := repo.Admins(c.UserContext())
		if err != nil {
			return respond.Fail(c, err.Error())
		}

		var hash string
		for _, admin := range admins {
			if admin.EmailKey() == email {
				hash = admin.Hash
				break
			}
		}
		if hash == "" || !auth.CheckPasswordHash(req.Password, hash) {
			return respond.Fail(c, "Wrong email or password.")
		}

		token, err := auth.IssueToken(email, cfg.JWTSecret, auth.DefaultTokenTTL)
		if err != nil {
			return respond.Fail(c, "Failed to issue token")
		}

		return respond.OK(c, fiber.Map{"email": email, "token": token})
	}
}

// CreateAdminAPI registers a new admin. The very first admin can be created
// without a token (bootstrap); after that a valid admin token is required.
// Duplicate emails are rejected here, not in the repository, so two
// near-simultaneous creates can still both land (documented limitation of
// the lock-free store).
func CreateAdminAPI(repo *sheetstore.Repo, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type CreateRequest struct {
			Email      string `json:"email"`
			Password   string `json:"password"`
			AdminToken string `json:"admin_token"`
		}

		var req CreateRequest
		if err := c.BodyParser(&req); err != nil {
			return respond.Fail(c, "Invalid request body")
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		if !IsEmail(email) {
			return respond.Fail(c, "Invalid email address.")
		}
		if len(req.Password) < 8 {
			return respond.Fail(c, "Password must be at least 8 characters.")
		}

		admins, err := repo.Admins(c.UserContext())
		if err != nil {
			return respond.Fail(c, err.Error())
		}

		if len(admins) > 0 {
			v := auth.VerifyToken(req.AdminToken, cfg.JWTSecret, auth.AdminRole)
			if !v.Valid {
				return respond.Fail(c, v.Reason)
			}
		}

		for _, admin := range admins {
			if admin.EmailKey() == email {
				return respond.Fail(c, "Email already registered.")
			}
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return respond.Fail(c, "Failed to hash password")
		}
		if err := repo.AddAdmin(c.UserContext(), email, hash, auth.AdminRole); err != nil {
			return respond.Fail(c, err.Error())
		}

		token, err := auth.IssueToken(email, cfg.JWTSecret, auth.DefaultTokenTTL)
		if err != nil {
			return respond.Fail(c, "Failed to issue token")
		}

		return respond.OK(c, fiber.Map{"email": email, "token": token})
	}
}

// AdminStatusAPI reports whether any admin exists yet, so clients know
// whether to show the bootstrap form.
func AdminStatusAPI(repo *sheetstore.Repo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		admins, err := repo.Admins(c.UserContext())
		if err != nil {
			return respond.Fail(c, err.Error())
		}
		return respond.OK(c, fiber.Map{"has_admin": len(admins) > 0})
	}
}
