package courseController

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursehub/config"
	"coursehub/database"
	"coursehub/metrics"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/moderation"
	courseValidators "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDb(t *testing.T) {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:         "test-secret",
		ROIDenominator: "all",
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
}

func seedCourse(t *testing.T, status moderation.Status) models.Course {
	t.Helper()
	course := models.Course{
		CourseName:      "Swing Trading Masterclass",
		CoachName:       "Jane Mentor",
		Category:        "Trading",
		Status:          status,
		SubmittedBy:     1,
		PlaceholderPros: models.ToJSONList(metrics.NewCoursePros),
		PlaceholderCons: models.ToJSONList(metrics.NewCourseCons),
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}

func seedReview(t *testing.T, courseID, userID uint, rating int, worth *bool, tags []string) {
	t.Helper()
	review := models.Review{
		CourseID:        courseID,
		UserID:          userID,
		Rating:          rating,
		WorthInvestment: worth,
		Tags:            models.ToJSONList(tags),
		Status:          moderation.StatusApproved,
	}
	require.NoError(t, database.Database.Db.Create(&review).Error)
}

func boolPtr(b bool) *bool { return &b }

func TestComputeCourseMetricsNewCourseShowsPlaceholders(t *testing.T) {
	setupTestDb(t)
	course := seedCourse(t, moderation.StatusApproved)

	m := ComputeCourseMetrics(course)

	assert.Equal(t, 0, m.ReviewCount)
	assert.Equal(t, metrics.GradeNotAvailable, m.SafetyGrade)
	assert.Equal(t, metrics.NewCourseSafetyTxt, m.SafetyLabel)
	assert.Equal(t, metrics.NewCoursePros, m.TopPros)
	assert.Equal(t, metrics.NewCourseCons, m.TopCons)
	assert.Equal(t, metrics.UnderReviewText, m.WorthItNarrative)
}

func TestComputeCourseMetricsAggregatesApprovedReviews(t *testing.T) {
	setupTestDb(t)
	course := seedCourse(t, moderation.StatusApproved)

	seedReview(t, course.ID, 1, 5, boolPtr(true), []string{"Clear Teaching", "Good Value"})
	seedReview(t, course.ID, 2, 4, boolPtr(true), []string{"Clear Teaching"})
	seedReview(t, course.ID, 3, 5, boolPtr(false), []string{"Overpriced"})
	seedReview(t, course.ID, 4, 3, nil, nil)

	m := ComputeCourseMetrics(course)

	assert.Equal(t, 4, m.ReviewCount)
	assert.Equal(t, 4.3, m.AverageRating)
	assert.Equal(t, "A", m.SafetyGrade)
	assert.Equal(t, 50, m.ROIPercent)
	assert.Equal(t, []string{"Clear Teaching", "Good Value"}, m.TopPros)
	assert.Equal(t, []string{"Overpriced"}, m.TopCons)
}

func TestComputeCourseMetricsIgnoresPendingReviews(t *testing.T) {
	setupTestDb(t)
	course := seedCourse(t, moderation.StatusApproved)

	pending := models.Review{
		CourseID: course.ID,
		UserID:   1,
		Rating:   1,
		Status:   moderation.StatusPending,
	}
	require.NoError(t, database.Database.Db.Create(&pending).Error)

	m := ComputeCourseMetrics(course)
	assert.Equal(t, 0, m.ReviewCount)
	assert.Equal(t, metrics.GradeNotAvailable, m.SafetyGrade)
}

func TestDuplicateCourseInsertHitsUniqueIndex(t *testing.T) {
	setupTestDb(t)
	first := seedCourse(t, moderation.StatusPending)

	duplicate := models.Course{
		CourseName:  first.CourseName,
		CoachName:   first.CoachName,
		Category:    "Trading",
		Status:      moderation.StatusPending,
		SubmittedBy: 2,
	}
	err := database.Database.Db.Create(&duplicate).Error
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	// A deleted course frees the name for resubmission
	require.NoError(t, database.Database.Db.Model(&first).Update("is_deleted", true).Error)
	resubmit := models.Course{
		CourseName:  first.CourseName,
		CoachName:   first.CoachName,
		Category:    "Trading",
		Status:      moderation.StatusPending,
		SubmittedBy: 2,
	}
	assert.NoError(t, database.Database.Db.Create(&resubmit).Error)
}

func TestSubmitCourseDuplicateConflict(t *testing.T) {
	setupTestDb(t)

	app := fiber.New()
	app.Post("/course/submit", middleware.JWTMiddleware, middleware.RequireActiveUser, courseValidators.SubmitCourse(), SubmitCourse)

	user := models.User{
		Name:            "Sam Student",
		Email:           "sam@example.com",
		Role:            models.RoleStudent,
		Status:          models.AccountActive,
		Password:        "hashed",
		IsEmailVerified: true,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	payload, err := json.Marshal(map[string]interface{}{
		"courseName": "Swing Trading Masterclass",
		"coachName":  "Jane Mentor",
		"category":   "Trading",
	})
	require.NoError(t, err)

	submit := func() int {
		req := httptest.NewRequest(http.MethodPost, "/course/submit", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, 5000)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, submit())
	assert.Equal(t, fiber.StatusConflict, submit())
}

func TestComputeCourseMetricsAnsweredOnlyPolicy(t *testing.T) {
	setupTestDb(t)
	config.AppConfig.ROIDenominator = "answered"
	course := seedCourse(t, moderation.StatusApproved)

	seedReview(t, course.ID, 1, 5, boolPtr(true), nil)
	seedReview(t, course.ID, 2, 4, nil, nil)

	m := ComputeCourseMetrics(course)
	assert.Equal(t, 100, m.ROIPercent)
}
