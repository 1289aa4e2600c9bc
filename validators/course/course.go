package courseValidator

import (
	"coursehub/middleware"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Categories a course submission may use
var Categories = []string{
	"Trading",
	"Investing",
	"Business",
	"Marketing",
	"Technology",
	"Personal Development",
}

func isValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func SubmitCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseName   string `json:"courseName"`
			CoachName    string `json:"coachName"`
			Category     string `json:"category"`
			CourseURL    string `json:"courseUrl"`
			ThumbnailURL string `json:"thumbnailUrl"`
			AboutCourse  string `json:"aboutCourse"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.CourseName) == "" {
			errors["courseName"] = "Course name is required!"
		} else if len(strings.TrimSpace(reqData.CourseName)) < 3 {
			errors["courseName"] = "Course name must be at least 3 characters long!"
		}

		if strings.TrimSpace(reqData.CoachName) == "" {
			errors["coachName"] = "Coach name is required!"
		}

		if !isValidCategory(reqData.Category) {
			errors["category"] = "Category must be one of: " + strings.Join(Categories, ", ")
		}

		if reqData.CourseURL != "" && !isValidURL(reqData.CourseURL) {
			errors["courseUrl"] = "Course URL must be a valid http(s) URL!"
		}
		if reqData.ThumbnailURL != "" && !isValidURL(reqData.ThumbnailURL) {
			errors["thumbnailUrl"] = "Thumbnail URL must be a valid http(s) URL!"
		}

		if len(reqData.AboutCourse) > 5000 {
			errors["aboutCourse"] = "About course must be under 5000 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page     int    `query:"page"`
			Limit    int    `query:"limit"`
			Category string `query:"category"`
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
		if reqData.Category != "" && !isValidCategory(reqData.Category) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"category": "Unknown category!",
			})
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}
