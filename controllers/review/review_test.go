package reviewController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursehub/config"
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/moderation"
	adminValidators "coursehub/validators/admin"
	reviewValidators "coursehub/validators/review"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:      "test-secret",
		SaltRound:   4,
		EmailSender: "noreply@coursehub.test",
		Password:    "unused",
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/course/:id/review", middleware.JWTMiddleware, middleware.RequireActiveUser, reviewValidators.SubmitReview(), SubmitReview)
	app.Get("/course/:id/reviews", reviewValidators.ReviewList(), GetCourseReviews)
	app.Post("/admin/review/moderate", middleware.JWTMiddleware, middleware.RequireAdmin, adminValidators.Moderate(), ModerateReview)
	return app
}

func createTestUser(t *testing.T, name, email, role string) (models.User, string) {
	t.Helper()
	user := models.User{
		Name:            name,
		Email:           email,
		Role:            role,
		Status:          models.AccountActive,
		Password:        "hashed",
		IsEmailVerified: true,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

func createApprovedCourse(t *testing.T, submittedBy uint) models.Course {
	t.Helper()
	course := models.Course{
		CourseName:  "Options Trading Bootcamp",
		CoachName:   "Jane Mentor",
		Category:    "Trading",
		Status:      moderation.StatusApproved,
		SubmittedBy: submittedBy,
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, apiResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestSubmitReviewLifecycle(t *testing.T) {
	app := setupTestApp(t)

	student, studentToken := createTestUser(t, "Sam Student", "sam@example.com", models.RoleStudent)
	_, adminToken := createTestUser(t, "Mona Mod", "mona@coursehub.io", models.RoleAdmin)
	course := createApprovedCourse(t, student.ID)

	reviewBody := map[string]interface{}{
		"rating":          5,
		"comment":         "Paid for itself within a month.",
		"worthInvestment": true,
		"recommendFriend": true,
		"tags":            []string{"Clear Teaching", "Good Value"},
	}

	// Submit lands in the pending queue
	resp, parsed := doJSON(t, app, http.MethodPost, fmt.Sprintf("/course/%d/review", course.ID), studentToken, reviewBody)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, parsed.Status)

	var review models.Review
	require.NoError(t, database.Database.Db.Where("course_id = ? AND user_id = ?", course.ID, student.ID).First(&review).Error)
	assert.Equal(t, moderation.StatusPending, review.Status)

	// Pending reviews are not publicly visible
	resp, parsed = doJSON(t, app, http.MethodGet, fmt.Sprintf("/course/%d/reviews", course.ID), "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var listing struct {
		Reviews []models.Review `json:"reviews"`
	}
	require.NoError(t, json.Unmarshal(parsed.Data, &listing))
	assert.Empty(t, listing.Reviews)

	// A second review for the same course hits the unique index
	resp, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/course/%d/review", course.ID), studentToken, reviewBody)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Admin approves
	resp, parsed = doJSON(t, app, http.MethodPost, "/admin/review/moderate", adminToken, map[string]interface{}{
		"id":     review.ID,
		"action": moderation.ActionApprove,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, parsed.Status)

	// The approved review is now public
	resp, parsed = doJSON(t, app, http.MethodGet, fmt.Sprintf("/course/%d/reviews", course.ID), "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(parsed.Data, &listing))
	require.Len(t, listing.Reviews, 1)
	assert.Equal(t, moderation.StatusApproved, listing.Reviews[0].Status)

	// Re-applying the same decision is a no-op success
	resp, parsed = doJSON(t, app, http.MethodPost, "/admin/review/moderate", adminToken, map[string]interface{}{
		"id":     review.ID,
		"action": moderation.ActionApprove,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, parsed.Message, "already in requested status")
}

func TestSubmitReviewRequiresApprovedCourse(t *testing.T) {
	app := setupTestApp(t)

	student, studentToken := createTestUser(t, "Sam Student", "sam@example.com", models.RoleStudent)

	pending := models.Course{
		CourseName:  "Unvetted Course",
		CoachName:   "Unknown Coach",
		Category:    "Trading",
		Status:      moderation.StatusPending,
		SubmittedBy: student.ID,
	}
	require.NoError(t, database.Database.Db.Create(&pending).Error)

	resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/course/%d/review", pending.ID), studentToken, map[string]interface{}{
		"rating": 4,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSubmitReviewBlockedAfterBan(t *testing.T) {
	app := setupTestApp(t)

	student, studentToken := createTestUser(t, "Sam Student", "sam@example.com", models.RoleStudent)
	course := createApprovedCourse(t, student.ID)

	// The token stays valid; the status check must not.
	require.NoError(t, database.Database.Db.Model(&student).Update("status", models.AccountBanned).Error)

	resp, parsed := doJSON(t, app, http.MethodPost, fmt.Sprintf("/course/%d/review", course.ID), studentToken, map[string]interface{}{
		"rating": 5,
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.False(t, parsed.Status)

	var count int64
	database.Database.Db.Model(&models.Review{}).Where("course_id = ?", course.ID).Count(&count)
	assert.Zero(t, count)
}

func TestSubmitReviewBlockedWhileSuspended(t *testing.T) {
	app := setupTestApp(t)

	student, studentToken := createTestUser(t, "Sam Student", "sam@example.com", models.RoleStudent)
	course := createApprovedCourse(t, student.ID)

	require.NoError(t, database.Database.Db.Model(&student).Update("status", models.AccountSuspended).Error)

	resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/course/%d/review", course.ID), studentToken, map[string]interface{}{
		"rating": 5,
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestSubmitReviewRejectsResetToken(t *testing.T) {
	app := setupTestApp(t)

	student, _ := createTestUser(t, "Sam Student", "sam@example.com", models.RoleStudent)
	course := createApprovedCourse(t, student.ID)

	resetToken, err := middleware.GenerateResetJWT(student.ID, student.Email)
	require.NoError(t, err)

	resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/course/%d/review", course.ID), resetToken, map[string]interface{}{
		"rating": 5,
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSubmitReviewRequiresAuth(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/course/1/review", "", map[string]interface{}{"rating": 4})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestModerateReviewRejectWithNote(t *testing.T) {
	app := setupTestApp(t)

	student, studentToken := createTestUser(t, "Sam Student", "sam@example.com", models.RoleStudent)
	_, adminToken := createTestUser(t, "Mona Mod", "mona@coursehub.io", models.RoleAdmin)
	course := createApprovedCourse(t, student.ID)

	resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/course/%d/review", course.ID), studentToken, map[string]interface{}{
		"rating":  1,
		"comment": "spam spam spam",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var review models.Review
	require.NoError(t, database.Database.Db.Where("course_id = ?", course.ID).First(&review).Error)

	resp, _ = doJSON(t, app, http.MethodPost, "/admin/review/moderate", adminToken, map[string]interface{}{
		"id":     review.ID,
		"action": moderation.ActionReject,
		"note":   "Suspected spam or self-promotion",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, database.Database.Db.First(&review, review.ID).Error)
	assert.Equal(t, moderation.StatusRejected, review.Status)
	assert.Equal(t, "Suspected spam or self-promotion", review.AdminNote)

	var logs []models.ModerationLog
	require.NoError(t, database.Database.Db.Where("entity_type = ? AND entity_id = ?", models.EntityReview, review.ID).Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, string(moderation.StatusPending), logs[0].FromStatus)
	assert.Equal(t, string(moderation.StatusRejected), logs[0].ToStatus)
}

func TestModerateReviewRequiresAdmin(t *testing.T) {
	app := setupTestApp(t)

	_, studentToken := createTestUser(t, "Sam Student", "sam@example.com", models.RoleStudent)

	resp, _ := doJSON(t, app, http.MethodPost, "/admin/review/moderate", studentToken, map[string]interface{}{
		"id":     1,
		"action": moderation.ActionApprove,
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
