package metrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func ratedReviews(ratings ...int) []Review {
	reviews := make([]Review, 0, len(ratings))
	for _, r := range ratings {
		reviews = append(reviews, Review{Rating: r})
	}
	return reviews
}

func TestComputeAverageRoundsHalfUp(t *testing.T) {
	m := Compute(ratedReviews(5, 4, 5, 3), "Trading", DenomAllReviews)

	assert.Equal(t, 4, m.ReviewCount)
	assert.Equal(t, 4.3, m.AverageRating)
	assert.Equal(t, "A", m.SafetyGrade)
	assert.Equal(t, 98, m.SafetyPercent)
	assert.Equal(t, "Safe Investment", m.SafetyLabel)
}

func TestComputeEmptyReviews(t *testing.T) {
	m := Compute(nil, "Trading", DenomAllReviews)

	assert.Equal(t, 0, m.ReviewCount)
	assert.Equal(t, 0.0, m.AverageRating)
	assert.Equal(t, GradeNotAvailable, m.SafetyGrade)
	assert.Equal(t, 0, m.SafetyPercent)
	assert.Equal(t, NewCourseSafetyTxt, m.SafetyLabel)
	assert.Equal(t, 0, m.ROIPercent)
	assert.Equal(t, 0, m.RecommendPercent)
	assert.Equal(t, NewCoursePros, m.TopPros)
	assert.Equal(t, NewCourseCons, m.TopCons)
	assert.Equal(t, UnderReviewText, m.WorthItNarrative)
}

func TestSafetyGradeBoundaries(t *testing.T) {
	cases := []struct {
		avg     float64
		grade   string
		percent int
	}{
		{4.5, "A+", 98},
		{4.49, "A", 98},
		{4.0, "A", 98},
		{3.99, "B", 85},
		{3.0, "B", 85},
		{2.99, "C", 65},
		{1.0, "C", 65},
	}
	for _, tc := range cases {
		grade, percent, _ := safetyGrade(tc.avg)
		assert.Equal(t, tc.grade, grade, "avg %v", tc.avg)
		assert.Equal(t, tc.percent, percent, "avg %v", tc.avg)
	}
}

func TestVotePercentAllReviewsPolicy(t *testing.T) {
	// 1 yes, 1 no, 1 unanswered. Unanswered counts as a no here.
	reviews := []Review{
		{Rating: 5, WorthInvestment: boolPtr(true)},
		{Rating: 2, WorthInvestment: boolPtr(false)},
		{Rating: 4},
	}

	m := Compute(reviews, "Trading", DenomAllReviews)
	assert.Equal(t, 33, m.ROIPercent)
}

func TestVotePercentAnsweredOnlyPolicy(t *testing.T) {
	reviews := []Review{
		{Rating: 5, WorthInvestment: boolPtr(true)},
		{Rating: 2, WorthInvestment: boolPtr(false)},
		{Rating: 4},
	}

	m := Compute(reviews, "Trading", DenomAnsweredOnly)
	assert.Equal(t, 50, m.ROIPercent)
}

func TestVotePercentNoAnswersNeverNaN(t *testing.T) {
	reviews := ratedReviews(4, 5)

	m := Compute(reviews, "Trading", DenomAnsweredOnly)
	assert.Equal(t, 0, m.ROIPercent)
	assert.Equal(t, 0, m.RecommendPercent)
}

func TestPercentsStayInRange(t *testing.T) {
	reviews := make([]Review, 0, 10)
	for i := 0; i < 10; i++ {
		reviews = append(reviews, Review{
			Rating:          5,
			WorthInvestment: boolPtr(true),
			RecommendFriend: boolPtr(true),
		})
	}

	m := Compute(reviews, "Investing", DenomAllReviews)
	assert.Equal(t, 100, m.ROIPercent)
	assert.Equal(t, 100, m.RecommendPercent)
	assert.GreaterOrEqual(t, m.SafetyPercent, 0)
	assert.LessOrEqual(t, m.SafetyPercent, 100)
}

func TestWorthItNarrativeTemplates(t *testing.T) {
	strong := worthItNarrative(80, 10, "Trading")
	assert.True(t, strings.HasPrefix(strong, "80% of 10 reviewers say this Trading course paid for itself"))

	mixed := worthItNarrative(50, 6, "Investing")
	assert.Contains(t, mixed, "Results are mixed")

	weak := worthItNarrative(20, 5, "Business")
	assert.True(t, strings.HasPrefix(weak, "Only 20% of 5 reviewers"))
}

func TestComputeStrongROINarrative(t *testing.T) {
	reviews := make([]Review, 0, 10)
	for i := 0; i < 10; i++ {
		reviews = append(reviews, Review{Rating: 5, WorthInvestment: boolPtr(i < 8)})
	}

	m := Compute(reviews, "Trading", DenomAllReviews)
	assert.Equal(t, 80, m.ROIPercent)
	assert.Contains(t, m.WorthItNarrative, "strongly agrees")
}

func TestPolicyFromString(t *testing.T) {
	assert.Equal(t, DenomAnsweredOnly, PolicyFromString("answered"))
	assert.Equal(t, DenomAllReviews, PolicyFromString("all"))
	assert.Equal(t, DenomAllReviews, PolicyFromString(""))
}
