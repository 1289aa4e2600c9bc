package superAdminValidator

import (
	"coursehub/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	dot := strings.LastIndex(email, ".")
	return at > 0 && dot > at+1 && dot < len(email)-1
}

func RegisterAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if !isValidEmail(reqData.Email) {
			errors["email"] = "Email is not valid!"
		}
		if len(reqData.Password) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegisterAdmin", reqData)
		return c.Next()
	}
}
