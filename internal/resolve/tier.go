package resolve

import (
	"context"
	"strings"

	"courseapi/internal/course"
)

// Strategy identifies which comparison rule produced a match.
type Strategy string

const (
	StrategyID             Strategy = "id"
	StrategySlug           Strategy = "slug"
	StrategySlugFold       Strategy = "slug_fold"
	StrategySlugNormalized Strategy = "slug_normalized"
	StrategySlugContains   Strategy = "slug_contains"
	StrategyTitleContains  Strategy = "title_contains"
)

// Tier is one data source consulted during resolution. FindBySlugOrID
// returns the first course satisfying the fixed comparison ladder, or
// ok=false when the tier holds no match. Implementations never fail:
// a storage error degrades to a miss so resolution can fall through.
type Tier interface {
	Name() course.Tier
	FindBySlugOrID(ctx context.Context, identifier, normalized string) (course.Course, Strategy, bool)
}

// matchCourses walks the comparison ladder rule by rule; within a rule
// candidates are checked in stored order, so ambiguous containment
// matches resolve to the earliest stored course rather than a ranked
// best guess.
func matchCourses(list []course.Course, identifier, normalized string) (course.Course, Strategy, bool) {
	for _, c := range list {
		if c.ID == identifier {
			return c, StrategyID, true
		}
	}
	for _, c := range list {
		if c.Slug == identifier {
			return c, StrategySlug, true
		}
	}
	for _, c := range list {
		if strings.EqualFold(c.Slug, identifier) {
			return c, StrategySlugFold, true
		}
	}
	if normalized != "" {
		for _, c := range list {
			if course.Normalize(c.Slug) == normalized {
				return c, StrategySlugNormalized, true
			}
		}
		for _, c := range list {
			stored := course.Normalize(c.Slug)
			if stored == "" {
				continue
			}
			if strings.Contains(stored, normalized) || strings.Contains(normalized, stored) {
				return c, StrategySlugContains, true
			}
		}
	}
	if tokens := course.LooseTokens(identifier); tokens != "" {
		for _, c := range list {
			if strings.Contains(strings.ToLower(c.Title), tokens) {
				return c, StrategyTitleContains, true
			}
		}
	}
	return course.Course{}, "", false
}
