package superAdminRoutes

import (
	superAdminControllers "coursehub/controllers/superAdmin"
	"coursehub/middleware"
	superAdminValidators "coursehub/validators/superAdmin"

	"github.com/gofiber/fiber/v2"
)

func SetupSuperAdminRoutes(app *fiber.App) {
	superAdminGroup := app.Group("/super-admin", middleware.JWTMiddleware, middleware.RequireSuperAdmin)

	superAdminGroup.Post("/register-admin", superAdminValidators.RegisterAdmin(), superAdminControllers.RegisterAdmin)
	superAdminGroup.Get("/admin/list", superAdminControllers.AdminList)
	superAdminGroup.Delete("/admin/:id", superAdminControllers.RemoveAdmin)
}
