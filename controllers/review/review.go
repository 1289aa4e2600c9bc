package reviewController

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/moderation"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SubmitReview allows a user to submit a review for an approved course. One
// review per user per course is enforced by the store's composite unique
// index; a duplicate insert comes back as gorm.ErrDuplicatedKey and is
// reported as a conflict, so two concurrent submissions cannot both land.
func SubmitReview(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseId, err := c.ParamsInt("id")
	if err != nil || courseId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedReview").(*struct {
		Rating          int      `json:"rating"`
		Comment         string   `json:"comment"`
		WorthInvestment *bool    `json:"worthInvestment"`
		RecommendFriend *bool    `json:"recommendFriend"`
		Tags            []string `json:"tags"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Reviews attach to listed courses only
	var course models.Course
	if err := db.Where("id = ? AND status = ? AND is_deleted = false",
		courseId, moderation.StatusApproved).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	review := models.Review{
		CourseID:        course.ID,
		UserID:          userId,
		Rating:          reqData.Rating,
		Comment:         reqData.Comment,
		WorthInvestment: reqData.WorthInvestment,
		RecommendFriend: reqData.RecommendFriend,
		Tags:            models.ToJSONList(reqData.Tags),
		Status:          moderation.StatusPending,
	}

	if err := db.Create(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already reviewed this course!", nil)
		}
		log.Printf("Error saving review: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review submitted successfully! Pending approval.", review)
}

// GetCourseReviews returns approved reviews for a course (Visible to all)
func GetCourseReviews(c *fiber.Ctx) error {
	courseId, err := c.ParamsInt("id")
	if err != nil || courseId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedList").(*struct {
		Page  int `query:"page"`
		Limit int `query:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	offset := (reqData.Page - 1) * reqData.Limit

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = false", courseId).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var total int64
	db.Model(&models.Review{}).
		Where("course_id = ? AND status = ? AND is_deleted = false", courseId, moderation.StatusApproved).
		Count(&total)

	var reviews []models.Review
	if err := db.Where("course_id = ? AND status = ? AND is_deleted = false", courseId, moderation.StatusApproved).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, profile_image")
		}).
		Order("created_at DESC").
		Offset(offset).
		Limit(reqData.Limit).
		Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", fiber.Map{
		"reviews": reviews,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}
