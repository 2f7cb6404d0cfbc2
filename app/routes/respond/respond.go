// Package respond implements the uniform response envelope: every endpoint
// answers {"ok":true,...} or {"ok":false,"error":"message"}, including domain
// failures, which ship with HTTP 200 for client compatibility.
package respond

import "github.com/gofiber/fiber/v2"

// OK writes a success envelope merged with the given fields.
func OK(c *fiber.Ctx, data fiber.Map) error {
	payload := fiber.Map{"ok": true}
	for k, v := range data {
		payload[k] = v
	}
	return c.JSON(payload)
}

// Fail writes a failure envelope with a single human-readable message.
func Fail(c *fiber.Ctx, msg string) error {
	return c.JSON(fiber.Map{"ok": false, "error": msg})
}
