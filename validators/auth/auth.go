package authValidator

import (
	"coursehub/middleware"
	"coursehub/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	dot := strings.LastIndex(email, ".")
	return at > 0 && dot > at+1 && dot < len(email)-1
}

func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
			Role     string `json:"role"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		} else if len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}

		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		} else if !isValidEmail(reqData.Email) {
			errors["email"] = "Email is not valid!"
		}

		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		} else if len(reqData.Password) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		// Only student and coach accounts self-register; admins are created
		// by a superadmin.
		if reqData.Role == "" {
			reqData.Role = models.RoleStudent
		}
		if reqData.Role != models.RoleStudent && reqData.Role != models.RoleCoach {
			errors["role"] = "Role must be STUDENT or COACH!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

func SendOTP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email string `json:"email"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if !isValidEmail(reqData.Email) {
			return middleware.ValidationErrorResponse(c, map[string]string{"email": "Email is not valid!"})
		}

		c.Locals("validatedSendOTP", reqData)
		return c.Next()
	}
}

func VerifyOTP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email string `json:"email"`
			Code  string `json:"code"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !isValidEmail(reqData.Email) {
			errors["email"] = "Email is not valid!"
		}
		if len(reqData.Code) != 6 {
			errors["code"] = "Code must be 6 digits!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVerifyOTP", reqData)
		return c.Next()
	}
}

func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			NewPassword string `json:"newPassword"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.NewPassword) < 8 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"newPassword": "Password must be at least 8 characters long!",
			})
		}

		c.Locals("validatedResetPassword", reqData)
		return c.Next()
	}
}
