package middleware

import (
	"coursehub/database"
	"coursehub/models"

	"github.com/gofiber/fiber/v2"
)

// RequireActiveUser loads the authenticated account and blocks suspended,
// banned and deleted accounts. Runs after JWTMiddleware on routes that create
// content, so a status change takes effect immediately instead of at the
// token's expiry.
func RequireActiveUser(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	switch user.Status {
	case models.AccountSuspended:
		return JsonResponse(c, fiber.StatusForbidden, false, "Your account is suspended. Contact support.", nil)
	case models.AccountBanned:
		return JsonResponse(c, fiber.StatusForbidden, false, "Your account is banned.", nil)
	}

	return c.Next()
}
