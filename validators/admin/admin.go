package adminValidator

import (
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/moderation"

	"github.com/gofiber/fiber/v2"
)

// Moderate validates a moderation request for a course or a review
func Moderate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ID     uint   `json:"id"`
			Action string `json:"action"` // APPROVE, REJECT
			Note   string `json:"note"`   // Optional, user-visible on rejection
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ID == 0 {
			errors["id"] = "Record id is required!"
		}
		if reqData.Action != moderation.ActionApprove && reqData.Action != moderation.ActionReject {
			errors["action"] = "Invalid action! Use APPROVE or REJECT."
		}
		if len(reqData.Note) > 1000 {
			errors["note"] = "Note must be under 1000 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModerate", reqData)
		return c.Next()
	}
}

// UserStatus validates an account status change request
func UserStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID uint   `json:"userId"`
			Status string `json:"status"`
			Note   string `json:"note"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["userId"] = "User id is required!"
		}
		switch reqData.Status {
		case models.AccountActive, models.AccountSuspended, models.AccountBanned, models.AccountFlagged:
		default:
			errors["status"] = "Status must be ACTIVE, SUSPENDED, BANNED or FLAGGED!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUserStatus", reqData)
		return c.Next()
	}
}

// UserRole validates a role change request
func UserRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID uint   `json:"userId"`
			Role   string `json:"role"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["userId"] = "User id is required!"
		}
		switch reqData.Role {
		case models.RoleStudent, models.RoleCoach, models.RoleAdmin:
		default:
			errors["role"] = "Role must be STUDENT, COACH or ADMIN!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUserRole", reqData)
		return c.Next()
	}
}

// Pagination validates page/limit query parameters for admin lists
func Pagination() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  int `query:"page"`
			Limit int `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if reqData.Page < 1 {
			reqData.Page = 1
		}
		if reqData.Limit < 1 {
			reqData.Limit = 10
		}

		c.Locals("validatedPagination", reqData)
		return c.Next()
	}
}
