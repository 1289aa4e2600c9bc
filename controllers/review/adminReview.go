package reviewController

import (
	adminController "coursehub/controllers/admin"
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/moderation"
	"coursehub/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetPendingReviews returns the review moderation queue (Admin only)
func GetPendingReviews(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPagination").(*struct {
		Page  int `query:"page"`
		Limit int `query:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	offset := (reqData.Page - 1) * reqData.Limit

	db := database.Database.Db

	var total int64
	db.Model(&models.Review{}).
		Where("status = ? AND is_deleted = false", moderation.StatusPending).
		Count(&total)

	var reviews []models.Review
	if err := db.Where("status = ? AND is_deleted = false", moderation.StatusPending).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, email")
		}).
		Order("created_at ASC").
		Offset(offset).
		Limit(reqData.Limit).
		Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pending reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending reviews fetched!", fiber.Map{
		"reviews": reviews,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

// ModerateReview applies an APPROVE/REJECT decision to one review. Each call
// targets exactly one record; re-applying the current status is a no-op
// success. A failed store write leaves the prior status in place.
func ModerateReview(c *fiber.Ctx) error {
	admin, ok := c.Locals("adminUser").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedModerate").(*struct {
		ID     uint   `json:"id"`
		Action string `json:"action"`
		Note   string `json:"note"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var review models.Review
	if err := db.Where("id = ? AND is_deleted = false", reqData.ID).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	decision, err := moderation.Apply(review.Status, reqData.Action, reqData.Note)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	if !decision.Changed {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Review already in requested status.", review)
	}

	fromStatus := review.Status
	updates := map[string]interface{}{"status": decision.NewStatus}
	if decision.Note != "" {
		updates["admin_note"] = decision.Note
	}
	if err := db.Model(&review).Updates(updates).Error; err != nil {
		log.Printf("Error moderating review %d: %v", review.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update review!", nil)
	}

	adminController.RecordModerationLog(models.EntityReview, review.ID, admin.ID,
		string(fromStatus), string(decision.NewStatus), decision.Note)

	notifyReviewer(review, decision)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review updated successfully!", review)
}

// notifyReviewer emails the review author about the decision. Best effort;
// the moderation outcome does not depend on delivery.
func notifyReviewer(review models.Review, decision moderation.Decision) {
	db := database.Database.Db

	var reviewer models.User
	if err := db.First(&reviewer, review.UserID).Error; err != nil {
		return
	}
	var course models.Course
	if err := db.First(&course, review.CourseID).Error; err != nil {
		return
	}

	if decision.NewStatus == moderation.StatusApproved {
		utils.SendReviewApprovedEmail(reviewer.Email, reviewer.Name, course.CourseName)
	} else {
		utils.SendReviewRejectedEmail(reviewer.Email, reviewer.Name, course.CourseName, decision.Note)
	}
}
