package metrics

import "sort"

// Fixed tag vocabularies. Order matters: ties in the frequency ranking are
// broken by declaration order, so the earlier tag wins.
var PositiveTags = []string{
	"Clear Teaching",
	"Actionable Content",
	"Responsive Coach",
	"Great Community",
	"Good Value",
	"Beginner Friendly",
}

var NegativeTags = []string{
	"Overpriced",
	"Outdated Content",
	"Poor Support",
	"Too Basic",
	"Aggressive Upselling",
	"Slow Refunds",
}

// NoConsFallback is shown when approved reviews exist but none carried a
// negative tag. It is a UX fallback, not a statistical claim.
const NoConsFallback = "No major issues reported by the community yet"

// Placeholder pros/cons baked into a course at creation time and shown until
// the first review is approved.
var (
	NewCoursePros = []string{"Newly listed", "Awaiting first reviews"}
	NewCourseCons = []string{"Not enough reviews yet"}
)

// MaxTopTags caps the pros/cons lists
const MaxTopTags = 3

// IsKnownTag reports whether tag is in either vocabulary (exact match).
func IsKnownTag(tag string) bool {
	for _, t := range PositiveTags {
		if t == tag {
			return true
		}
	}
	for _, t := range NegativeTags {
		if t == tag {
			return true
		}
	}
	return false
}

// rankAgainst counts tags against one vocabulary, drops zero-count entries,
// sorts descending by count and returns at most MaxTopTags. The stable sort
// keeps declaration order for equal counts.
func rankAgainst(vocabulary []string, counts map[string]int) []string {
	type entry struct {
		tag   string
		count int
	}

	var ranked []entry
	for _, tag := range vocabulary {
		if counts[tag] > 0 {
			ranked = append(ranked, entry{tag: tag, count: counts[tag]})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].count > ranked[j].count
	})

	if len(ranked) > MaxTopTags {
		ranked = ranked[:MaxTopTags]
	}

	tags := make([]string, 0, len(ranked))
	for _, e := range ranked {
		tags = append(tags, e.tag)
	}
	return tags
}

// RankTags classifies the tags attached to approved reviews into top pros and
// cons. Tags outside both vocabularies are ignored. When reviews exist but no
// negative tag was used, the cons list carries the fixed fallback entry
// rather than being empty.
func RankTags(tags []string) (topPros, topCons []string) {
	counts := make(map[string]int, len(tags))
	for _, tag := range tags {
		counts[tag]++
	}

	topPros = rankAgainst(PositiveTags, counts)
	topCons = rankAgainst(NegativeTags, counts)

	if len(topCons) == 0 && len(topPros) > 0 {
		topCons = []string{NoConsFallback}
	}
	return topPros, topCons
}
