package utils

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// CheckCourseLink probes a course URL before approval. The result is
// advisory: an unreachable link produces a warning for the moderator, it does
// not block the transition.
func CheckCourseLink(courseURL string) error {
	if courseURL == "" {
		return fmt.Errorf("course URL is empty")
	}

	client := resty.New().
		SetTimeout(10 * time.Second).
		SetHeader("User-Agent", "CourseHub-LinkCheck/1.0")

	resp, err := client.R().Head(courseURL)
	if err != nil {
		return fmt.Errorf("failed to reach course URL: %v", err)
	}

	// Some course platforms reject HEAD; retry those with GET
	if resp.StatusCode() == 405 {
		resp, err = client.R().Get(courseURL)
		if err != nil {
			return fmt.Errorf("failed to reach course URL: %v", err)
		}
	}

	if resp.StatusCode() >= 400 {
		return fmt.Errorf("course URL responded with status %d", resp.StatusCode())
	}
	return nil
}
