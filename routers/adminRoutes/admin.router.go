package adminRoutes

import (
	adminControllers "coursehub/controllers/admin"
	courseControllers "coursehub/controllers/course"
	reviewControllers "coursehub/controllers/review"
	"coursehub/middleware"
	adminValidators "coursehub/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireAdmin)

	// Course moderation
	adminGroup.Get("/course/pending", adminValidators.Pagination(), courseControllers.GetPendingCourses)
	adminGroup.Post("/course/moderate", adminValidators.Moderate(), courseControllers.ModerateCourse)
	adminGroup.Delete("/course/:id", courseControllers.DeleteCourse)
	adminGroup.Patch("/course/:id/featured", courseControllers.ToggleFeatured)

	// Review moderation
	adminGroup.Get("/review/pending", adminValidators.Pagination(), reviewControllers.GetPendingReviews)
	adminGroup.Post("/review/moderate", adminValidators.Moderate(), reviewControllers.ModerateReview)

	// Account management
	adminGroup.Get("/user/list", adminValidators.Pagination(), adminControllers.UserList)
	adminGroup.Patch("/user/status", adminValidators.UserStatus(), adminControllers.UpdateUserStatus)
	adminGroup.Patch("/user/role", adminValidators.UserRole(), adminControllers.UpdateUserRole)
	adminGroup.Delete("/user/:id", adminControllers.DeleteUser)

	// Dashboard
	adminGroup.Get("/dashboard/stats", adminControllers.DashboardStats)
}
