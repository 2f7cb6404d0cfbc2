package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/gunawanst/assahra-api/app/config"
	"github.com/gunawanst/assahra-api/app/routes/admins"
	"github.com/gunawanst/assahra-api/app/routes/compat"
	"github.com/gunawanst/assahra-api/app/routes/slips"
	"github.com/gunawanst/assahra-api/app/routes/teachers"
	"github.com/gunawanst/assahra-api/app/sheetstore"
)

// errorHandler keeps unexpected errors inside the response envelope so no
// request ever sees a bare 500 page.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"ok": false, "error": err.Error()})
}

func main() {
	cfg := config.Load()

	client, err := sheetstore.NewClient(context.Background(), cfg)
	if err != nil {
		log.Fatalf("sheets client: %v", err)
	}
	repo := sheetstore.NewRepo(client, cfg.Tables)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	admins.SetupAdminRoutes(app, repo, cfg)
	teachers.SetupTeachersRoutes(app, repo)
	slips.SetupSlipsRoutes(app, repo, cfg)
	compat.SetupCompatRoutes(app, repo, cfg)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true, "ts": time.Now().UnixMilli()})
	})

	log.Printf("API running on http://localhost:%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
