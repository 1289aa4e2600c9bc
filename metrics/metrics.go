// Package metrics turns a course's approved reviews into the derived public
// metrics shown on its listing. Everything here is pure and recomputed fresh
// on every read; nothing is persisted or cached, so the output is always
// consistent with the current approved set.
package metrics

import (
	"fmt"
	"math"
)

// Review is the slice of a stored review the aggregation needs. The vote
// fields are tri-state: nil means the reviewer left the question unanswered.
type Review struct {
	Rating          int
	WorthInvestment *bool
	RecommendFriend *bool
	Tags            []string
}

// DenominatorPolicy names how unanswered worth/recommend votes count toward
// the percentage denominators.
type DenominatorPolicy int

const (
	// DenomAllReviews divides by the full review count, so an unanswered
	// vote effectively counts as a "no".
	DenomAllReviews DenominatorPolicy = iota
	// DenomAnsweredOnly divides by the number of reviews that answered.
	DenomAnsweredOnly
)

// PolicyFromString maps the ROI_DENOMINATOR config value to a policy.
func PolicyFromString(s string) DenominatorPolicy {
	if s == "answered" {
		return DenomAnsweredOnly
	}
	return DenomAllReviews
}

// CourseMetrics is recomputed per request and never stored.
type CourseMetrics struct {
	ReviewCount      int      `json:"reviewCount"`
	AverageRating    float64  `json:"averageRating"`
	SafetyGrade      string   `json:"safetyGrade"`
	SafetyPercent    int      `json:"safetyPercent"`
	SafetyLabel      string   `json:"safetyLabel"`
	ROIPercent       int      `json:"roiPercent"`
	RecommendPercent int      `json:"recommendPercent"`
	TopPros          []string `json:"topPros"`
	TopCons          []string `json:"topCons"`
	WorthItNarrative string   `json:"worthItNarrative"`
}

// Values used when a course has no approved reviews yet
const (
	GradeNotAvailable  = "N/A"
	UnderReviewText    = "This course is still under review by the community."
	NewCourseSafetyTxt = "Under Review"
)

// round1 rounds half-up to one decimal place
func round1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// roundPercent rounds half-up to the nearest whole percent
func roundPercent(v float64) int {
	return int(math.Floor(v + 0.5))
}

// safetyGrade is a fixed lookup from average rating to a display grade,
// percentage band and label. It is a presentation derivation, not a
// statistical one; the bands are product copy.
func safetyGrade(avg float64) (grade string, percent int, label string) {
	switch {
	case avg >= 4.5:
		return "A+", 98, "Very Safe Investment"
	case avg >= 4.0:
		return "A", 98, "Safe Investment"
	case avg >= 3.0:
		return "B", 85, "Generally Safe"
	default:
		return "C", 65, "Proceed With Caution"
	}
}

// votePercent computes an integer percentage of "yes" votes under the given
// denominator policy. The result is always in [0, 100]; an empty input or a
// zero denominator yields 0, never NaN.
func votePercent(reviews []Review, vote func(Review) *bool, policy DenominatorPolicy) int {
	if len(reviews) == 0 {
		return 0
	}

	yes, answered := 0, 0
	for _, r := range reviews {
		v := vote(r)
		if v == nil {
			continue
		}
		answered++
		if *v {
			yes++
		}
	}

	denominator := len(reviews)
	if policy == DenomAnsweredOnly {
		denominator = answered
	}
	if denominator == 0 {
		return 0
	}
	return roundPercent(100 * float64(yes) / float64(denominator))
}

// worthItNarrative selects one of three fixed templates keyed by the ROI
// percentage. Pure templating; nothing is generated.
func worthItNarrative(roiPercent, reviewCount int, category string) string {
	if category == "" {
		category = "this"
	}
	switch {
	case roiPercent >= 80:
		return fmt.Sprintf(
			"%d%% of %d reviewers say this %s course paid for itself. The community strongly agrees it is worth the investment.",
			roiPercent, reviewCount, category)
	case roiPercent >= 50:
		return fmt.Sprintf(
			"%d%% of %d reviewers found this %s course worth the money. Results are mixed, so read the recent reviews before buying.",
			roiPercent, reviewCount, category)
	default:
		return fmt.Sprintf(
			"Only %d%% of %d reviewers consider this %s course a worthwhile investment. Most of the community did not see a return.",
			roiPercent, reviewCount, category)
	}
}

// Compute reduces a course's approved reviews into its derived metrics.
// An empty input degrades to zeros and placeholders; it never errors, since
// this runs on every course page view.
func Compute(reviews []Review, category string, policy DenominatorPolicy) CourseMetrics {
	if len(reviews) == 0 {
		return CourseMetrics{
			ReviewCount:      0,
			AverageRating:    0,
			SafetyGrade:      GradeNotAvailable,
			SafetyPercent:    0,
			SafetyLabel:      NewCourseSafetyTxt,
			ROIPercent:       0,
			RecommendPercent: 0,
			TopPros:          append([]string(nil), NewCoursePros...),
			TopCons:          append([]string(nil), NewCourseCons...),
			WorthItNarrative: UnderReviewText,
		}
	}

	sum := 0
	var allTags []string
	for _, r := range reviews {
		sum += r.Rating
		allTags = append(allTags, r.Tags...)
	}
	avg := round1(float64(sum) / float64(len(reviews)))

	grade, gradePercent, label := safetyGrade(avg)
	roi := votePercent(reviews, func(r Review) *bool { return r.WorthInvestment }, policy)
	recommend := votePercent(reviews, func(r Review) *bool { return r.RecommendFriend }, policy)
	pros, cons := RankTags(allTags)

	return CourseMetrics{
		ReviewCount:      len(reviews),
		AverageRating:    avg,
		SafetyGrade:      grade,
		SafetyPercent:    gradePercent,
		SafetyLabel:      label,
		ROIPercent:       roi,
		RecommendPercent: recommend,
		TopPros:          pros,
		TopCons:          cons,
		WorthItNarrative: worthItNarrative(roi, len(reviews), category),
	}
}
