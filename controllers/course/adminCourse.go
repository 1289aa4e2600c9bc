package courseController

import (
	adminController "coursehub/controllers/admin"
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/moderation"
	"coursehub/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// GetPendingCourses returns the course moderation queue (Admin only)
func GetPendingCourses(c *fiber.Ctx) error {
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
	db.Model(&models.Course{}).
		Where("status = ? AND is_deleted = false", moderation.StatusPending).
		Count(&total)

	var courses []models.Course
	if err := db.Where("status = ? AND is_deleted = false", moderation.StatusPending).
		Order("created_at ASC").
		Offset(offset).
		Limit(reqData.Limit).
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pending courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending courses fetched!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

// ModerateCourse applies an APPROVE/REJECT decision to one course submission.
// One record per call; same-status re-application is a no-op success.
func ModerateCourse(c *fiber.Ctx) error {
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

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = false", reqData.ID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	decision, err := moderation.Apply(course.Status, reqData.Action, reqData.Note)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	if !decision.Changed {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course already in requested status.", course)
	}

	// Advisory link probe on approval; an unreachable URL warns, not blocks
	linkWarning := ""
	if decision.NewStatus == moderation.StatusApproved && course.CourseURL != "" {
		if err := utils.CheckCourseLink(course.CourseURL); err != nil {
			linkWarning = err.Error()
			log.Printf("Link check warning for course %d: %v", course.ID, err)
		}
	}

	fromStatus := course.Status
	updates := map[string]interface{}{"status": decision.NewStatus}
	if decision.Note != "" {
		updates["admin_note"] = decision.Note
	}
	if err := db.Model(&course).Updates(updates).Error; err != nil {
		log.Printf("Error moderating course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	adminController.RecordModerationLog(models.EntityCourse, course.ID, admin.ID,
		string(fromStatus), string(decision.NewStatus), decision.Note)

	notifySubmitter(course, decision)

	data := fiber.Map{"course": course}
	if linkWarning != "" {
		data["linkWarning"] = linkWarning
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", data)
}

// DeleteCourse removes a course from the marketplace (Admin only). Its
// reviews are marked deleted too so they can never re-enter aggregation.
func DeleteCourse(c *fiber.Ctx) error {
	admin, ok := c.Locals("adminUser").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseId, err := c.ParamsInt("id")
	if err != nil || courseId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = false", courseId).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := db.Model(&course).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	// Cascade to reviews
	db.Model(&models.Review{}).
		Where("course_id = ? AND is_deleted = false", course.ID).
		Update("is_deleted", true)

	adminController.RecordModerationLog(models.EntityCourse, course.ID, admin.ID,
		string(course.Status), "DELETED", "")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// ToggleFeatured flips the featured flag on an approved course (Admin only)
func ToggleFeatured(c *fiber.Ctx) error {
	courseId, err := c.ParamsInt("id")
	if err != nil || courseId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND status = ? AND is_deleted = false",
		courseId, moderation.StatusApproved).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Approved course not found!", nil)
	}

	if err := db.Model(&course).Update("is_featured", !course.IsFeatured).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}
	course.IsFeatured = !course.IsFeatured

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// notifySubmitter emails the course submitter about the decision
func notifySubmitter(course models.Course, decision moderation.Decision) {
	db := database.Database.Db

	var submitter models.User
	if err := db.First(&submitter, course.SubmittedBy).Error; err != nil {
		return
	}

	if decision.NewStatus == moderation.StatusApproved {
		utils.SendCourseApprovedEmail(submitter.Email, submitter.Name, course.CourseName)
	} else {
		utils.SendCourseRejectedEmail(submitter.Email, submitter.Name, course.CourseName, decision.Note)
	}
}
