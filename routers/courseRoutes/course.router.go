package courseRoutes

import (
	courseControllers "coursehub/controllers/course"
	reviewControllers "coursehub/controllers/review"
	"coursehub/middleware"
	courseValidators "coursehub/validators/course"
	reviewValidators "coursehub/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Public catalog
	courseGroup.Get("/list", courseValidators.CourseList(), courseControllers.ListCourses)
	courseGroup.Get("/:id", courseControllers.GetCourseDetails)
	courseGroup.Get("/:id/reviews", reviewValidators.ReviewList(), reviewControllers.GetCourseReviews)

	// Authenticated submissions, closed to suspended and banned accounts
	courseGroup.Post("/submit", middleware.JWTMiddleware, middleware.RequireActiveUser, courseValidators.SubmitCourse(), courseControllers.SubmitCourse)
	courseGroup.Post("/:id/review", middleware.JWTMiddleware, middleware.RequireActiveUser, reviewValidators.SubmitReview(), reviewControllers.SubmitReview)
}
