package middleware

import (
	"coursehub/access"
	"coursehub/database"
	"coursehub/models"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin loads the acting user and ensures they hold the ADMIN role or
// are on the superadmin allow-list, and are active. The loaded user is stored
// in Locals("adminUser") for the handlers. This is route-level gating only;
// account actions are still checked per-target through access.CanPerform.
func RequireAdmin(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != models.RoleAdmin && !access.IsSuperAdmin(user.Email) {
		return JsonResponse(c, fiber.StatusForbidden, false, "Access Denied! Admin role required.", nil)
	}
	if user.Status != models.AccountActive {
		return JsonResponse(c, fiber.StatusForbidden, false, "Access Denied! Account is not active.", nil)
	}

	c.Locals("adminUser", user)
	return c.Next()
}

// RequireSuperAdmin allows only identities on the sealed allow-list through
func RequireSuperAdmin(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if !access.IsSuperAdmin(user.Email) {
		return JsonResponse(c, fiber.StatusForbidden, false, "Access Denied! Superadmin only.", nil)
	}

	c.Locals("adminUser", user)
	return c.Next()
}
