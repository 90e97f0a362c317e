package adminValidator

import (
	"strconv"
	"strings"

	"lyon/middleware"

	"github.com/gofiber/fiber/v2"
)

// IDParam validates a positive integer route parameter and stores it under
// the given locals key.
func IDParam(param, localKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params(param))
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+param+"!", nil)
		}
		c.Locals(localKey, id)
		return c.Next()
	}
}
