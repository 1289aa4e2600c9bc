package courseController

import (
	"coursehub/config"
	"coursehub/database"
	"coursehub/metrics"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/moderation"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// denominatorPolicy resolves the configured ROI denominator policy
func denominatorPolicy() metrics.DenominatorPolicy {
	if config.AppConfig == nil {
		return metrics.DenomAllReviews
	}
	return metrics.PolicyFromString(config.AppConfig.ROIDenominator)
}

// ComputeCourseMetrics loads the current approved reviews of a course and
// reduces them to the derived public metrics. Always computed fresh per
// request; nothing is cached, so the result tracks the approved set exactly.
func ComputeCourseMetrics(course models.Course) metrics.CourseMetrics {
	db := database.Database.Db

	var reviews []models.Review
	if err := db.Where("course_id = ? AND status = ? AND is_deleted = false",
		course.ID, moderation.StatusApproved).Find(&reviews).Error; err != nil {
		log.Printf("Error loading reviews for course %d: %v", course.ID, err)
		reviews = nil // degrade to the empty-set defaults rather than fail the page
	}

	inputs := make([]metrics.Review, 0, len(reviews))
	for _, r := range reviews {
		inputs = append(inputs, metrics.Review{
			Rating:          r.Rating,
			WorthInvestment: r.WorthInvestment,
			RecommendFriend: r.RecommendFriend,
			Tags:            r.TagList(),
		})
	}

	m := metrics.Compute(inputs, course.Category, denominatorPolicy())

	// A brand new course shows the placeholders baked in at creation
	if m.ReviewCount == 0 {
		if pros := models.FromJSONList(course.PlaceholderPros); len(pros) > 0 {
			m.TopPros = pros
		}
		if cons := models.FromJSONList(course.PlaceholderCons); len(cons) > 0 {
			m.TopCons = cons
		}
	}
	return m
}

// SubmitCourse creates a pending course submission
func SubmitCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
		CourseName   string `json:"courseName"`
		CoachName    string `json:"coachName"`
		Category     string `json:"category"`
		CourseURL    string `json:"courseUrl"`
		ThumbnailURL string `json:"thumbnailUrl"`
		AboutCourse  string `json:"aboutCourse"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	course := models.Course{
		CourseName:   reqData.CourseName,
		CoachName:    reqData.CoachName,
		Category:     reqData.Category,
		CourseURL:    reqData.CourseURL,
		ThumbnailURL: reqData.ThumbnailURL,
		AboutCourse:  reqData.AboutCourse,
		Status:       moderation.StatusPending,
		SubmittedBy:  userId,
		// Placeholder pros/cons shown until the first review is approved
		PlaceholderPros: models.ToJSONList(metrics.NewCoursePros),
		PlaceholderCons: models.ToJSONList(metrics.NewCourseCons),
	}

	// Same course by the same coach goes through moderation once; the partial
	// unique index makes the insert the authoritative check.
	if err := db.Create(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "This course has already been submitted!", nil)
		}
		log.Printf("Error saving course to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course submitted successfully! Pending approval.", course)
}

// ListCourses returns the public catalog: approved courses with their derived
// metrics, featured entries first.
func ListCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*struct {
		Page     int    `query:"page"`
		Limit    int    `query:"limit"`
		Category string `query:"category"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	offset := (reqData.Page - 1) * reqData.Limit

	db := database.Database.Db

	query := db.Model(&models.Course{}).
		Where("status = ? AND is_deleted = false", moderation.StatusApproved)
	if reqData.Category != "" {
		query = query.Where("category = ?", reqData.Category)
	}

	var total int64
	query.Count(&total)

	var courses []models.Course
	if err := query.
		Order("is_featured DESC, created_at DESC").
		Offset(offset).
		Limit(reqData.Limit).
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	type CourseResponse struct {
		models.Course
		Metrics metrics.CourseMetrics `json:"metrics"`
	}

	response := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		response = append(response, CourseResponse{
			Course:  course,
			Metrics: ComputeCourseMetrics(course),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched!", fiber.Map{
		"courses": response,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

// GetCourseDetails returns one approved course with fresh derived metrics
func GetCourseDetails(c *fiber.Ctx) error {
	courseId, err := c.ParamsInt("id")
	if err != nil || courseId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND status = ? AND is_deleted = false",
		courseId, moderation.StatusApproved).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched!", fiber.Map{
		"course":  course,
		"metrics": ComputeCourseMetrics(course),
	})
}
