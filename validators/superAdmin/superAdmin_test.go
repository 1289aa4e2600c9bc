package superAdminValidator

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerApp() *fiber.App {
	app := fiber.New()
	app.Post("/register-admin", RegisterAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func postRegister(t *testing.T, app *fiber.App, body map[string]interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/register-admin", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRegisterAdminValidPayload(t *testing.T) {
	app := registerApp()

	resp := postRegister(t, app, map[string]interface{}{
		"name":     "Mona Mod",
		"email":    "mona@coursehub.io",
		"password": "long-enough-password",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRegisterAdminRejectsMalformedEmail(t *testing.T) {
	app := registerApp()

	for _, email := range []string{"mona@", "@coursehub.io", "mona", "mona@coursehub"} {
		resp := postRegister(t, app, map[string]interface{}{
			"name":     "Mona Mod",
			"email":    email,
			"password": "long-enough-password",
		})
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode, "email %q", email)
	}
}

func TestRegisterAdminRejectsShortPassword(t *testing.T) {
	app := registerApp()

	resp := postRegister(t, app, map[string]interface{}{
		"name":     "Mona Mod",
		"email":    "mona@coursehub.io",
		"password": "short",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
