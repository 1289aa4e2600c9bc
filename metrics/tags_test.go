package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankTagsOrdersByFrequency(t *testing.T) {
	tags := []string{
		"Good Value", "Good Value", "Good Value",
		"Clear Teaching", "Clear Teaching",
		"Responsive Coach",
		"Overpriced", "Overpriced",
		"Slow Refunds",
	}

	pros, cons := RankTags(tags)
	assert.Equal(t, []string{"Good Value", "Clear Teaching", "Responsive Coach"}, pros)
	assert.Equal(t, []string{"Overpriced", "Slow Refunds"}, cons)
}

func TestRankTagsTieBreaksByDeclarationOrder(t *testing.T) {
	// Equal counts; the tag declared earlier in the vocabulary wins.
	tags := []string{"Good Value", "Clear Teaching", "Beginner Friendly"}

	pros, _ := RankTags(tags)
	assert.Equal(t, []string{"Clear Teaching", "Good Value", "Beginner Friendly"}, pros)
}

func TestRankTagsCapsAtThree(t *testing.T) {
	tags := []string{
		"Clear Teaching", "Actionable Content", "Responsive Coach",
		"Great Community", "Good Value", "Beginner Friendly",
	}

	pros, _ := RankTags(tags)
	assert.Len(t, pros, MaxTopTags)
}

func TestRankTagsIgnoresUnknownTags(t *testing.T) {
	tags := []string{"Clear Teaching", "Totally Made Up", "Overpriced"}

	pros, cons := RankTags(tags)
	assert.Equal(t, []string{"Clear Teaching"}, pros)
	assert.Equal(t, []string{"Overpriced"}, cons)
}

func TestRankTagsConsFallback(t *testing.T) {
	pros, cons := RankTags([]string{"Clear Teaching", "Good Value"})

	assert.NotEmpty(t, pros)
	assert.Equal(t, []string{NoConsFallback}, cons)
}

func TestRankTagsEmptyInput(t *testing.T) {
	pros, cons := RankTags(nil)
	assert.Empty(t, pros)
	assert.Empty(t, cons)
}

func TestRankTagsIsIdempotent(t *testing.T) {
	tags := []string{"Clear Teaching", "Overpriced", "Clear Teaching"}

	firstPros, firstCons := RankTags(tags)
	secondPros, secondCons := RankTags(tags)
	assert.Equal(t, firstPros, secondPros)
	assert.Equal(t, firstCons, secondCons)
}

func TestIsKnownTag(t *testing.T) {
	assert.True(t, IsKnownTag("Clear Teaching"))
	assert.True(t, IsKnownTag("Slow Refunds"))
	assert.False(t, IsKnownTag("clear teaching"))
	assert.False(t, IsKnownTag("Amazing"))
}
