package reviewValidator

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func validatorApp() *fiber.App {
	app := fiber.New()
	app.Post("/review", SubmitReview(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func postReview(t *testing.T, app *fiber.App, body map[string]interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/review", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp
}

func TestSubmitReviewValidPayload(t *testing.T) {
	app := validatorApp()

	resp := postReview(t, app, map[string]interface{}{
		"rating":          5,
		"comment":         "Great course, learned a lot.",
		"worthInvestment": true,
		"tags":            []string{"Clear Teaching", "Good Value"},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSubmitReviewRatingOutOfRange(t *testing.T) {
	app := validatorApp()

	for _, rating := range []int{0, 6, -1} {
		resp := postReview(t, app, map[string]interface{}{"rating": rating})
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode, "rating %d", rating)
	}
}

func TestSubmitReviewUnknownTag(t *testing.T) {
	app := validatorApp()

	resp := postReview(t, app, map[string]interface{}{
		"rating": 4,
		"tags":   []string{"Totally Made Up"},
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestSubmitReviewTooManyTags(t *testing.T) {
	app := validatorApp()

	resp := postReview(t, app, map[string]interface{}{
		"rating": 4,
		"tags":   []string{"Clear Teaching", "Good Value", "Great Community", "Beginner Friendly"},
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestSubmitReviewDuplicateTags(t *testing.T) {
	app := validatorApp()

	resp := postReview(t, app, map[string]interface{}{
		"rating": 4,
		"tags":   []string{"Clear Teaching", "Clear Teaching"},
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestSubmitReviewVotesOptional(t *testing.T) {
	app := validatorApp()

	resp := postReview(t, app, map[string]interface{}{"rating": 3})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
