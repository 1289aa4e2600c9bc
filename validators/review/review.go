package reviewValidator

import (
	"coursehub/metrics"
	"coursehub/middleware"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// SubmitReview validates the review payload: rating 1-5, at most three tags
// drawn from the fixed vocabularies, tri-state votes left as pointers so an
// omitted field stays distinguishable from an explicit false.
func SubmitReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Rating          int      `json:"rating"`
			Comment         string   `json:"comment"`
			WorthInvestment *bool    `json:"worthInvestment"`
			RecommendFriend *bool    `json:"recommendFriend"`
			Tags            []string `json:"tags"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}

		if len(reqData.Comment) > 2000 {
			errors["comment"] = "Comment must be under 2000 characters!"
		}

		if len(reqData.Tags) > metrics.MaxTopTags {
			errors["tags"] = fmt.Sprintf("At most %d tags are allowed!", metrics.MaxTopTags)
		} else {
			seen := make(map[string]bool, len(reqData.Tags))
			for _, tag := range reqData.Tags {
				if !metrics.IsKnownTag(tag) {
					errors["tags"] = fmt.Sprintf("Unknown tag %q!", tag)
					break
				}
				if seen[tag] {
					errors["tags"] = fmt.Sprintf("Duplicate tag %q!", tag)
					break
				}
				seen[tag] = true
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

func ReviewList() fiber.Handler {
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

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}
