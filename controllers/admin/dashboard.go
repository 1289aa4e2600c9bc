package adminController

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/moderation"

	"github.com/gofiber/fiber/v2"
)

// DashboardStats returns the counts shown on the admin landing page
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var (
		totalUsers      int64
		totalCourses    int64
		pendingCourses  int64
		pendingReviews  int64
		approvedReviews int64
		flaggedUsers    int64
	)

	db.Model(&models.User{}).Where("is_deleted = false").Count(&totalUsers)
	db.Model(&models.Course{}).
		Where("status = ? AND is_deleted = false", moderation.StatusApproved).
		Count(&totalCourses)
	db.Model(&models.Course{}).
		Where("status = ? AND is_deleted = false", moderation.StatusPending).
		Count(&pendingCourses)
	db.Model(&models.Review{}).
		Where("status = ? AND is_deleted = false", moderation.StatusPending).
		Count(&pendingReviews)
	db.Model(&models.Review{}).
		Where("status = ? AND is_deleted = false", moderation.StatusApproved).
		Count(&approvedReviews)
	db.Model(&models.User{}).
		Where("status = ? AND is_deleted = false", models.AccountFlagged).
		Count(&flaggedUsers)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched!", fiber.Map{
		"totalUsers":      totalUsers,
		"liveCourses":     totalCourses,
		"pendingCourses":  pendingCourses,
		"pendingReviews":  pendingReviews,
		"approvedReviews": approvedReviews,
		"flaggedUsers":    flaggedUsers,
	})
}
