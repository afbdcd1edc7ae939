package resolve

import (
	"context"

	"courseapi/internal/course"
)

// primaryTier fronts the authoritative store. The exact rules run as
// indexed lookups; the fuzzy rules scan the full candidate list, which
// the repository returns in stable stored order. Any storage error is
// swallowed as a miss so an outage degrades to the gated fallback
// tiers instead of failing the whole resolution.
type primaryTier struct {
	repo course.Repository
}

// NewPrimaryTier wraps the course repository as the primary tier.
func NewPrimaryTier(repo course.Repository) Tier {
	return &primaryTier{repo: repo}
}

func (t *primaryTier) Name() course.Tier {
	return course.TierPrimary
}

func (t *primaryTier) FindBySlugOrID(ctx context.Context, identifier, normalized string) (course.Course, Strategy, bool) {
	if c, err := t.repo.FindByID(ctx, identifier); err == nil {
		return c, StrategyID, true
	}
	if c, err := t.repo.FindBySlug(ctx, identifier); err == nil {
		return c, StrategySlug, true
	}
	all, err := t.repo.ListAll(ctx)
	if err != nil {
		return course.Course{}, "", false
	}
	return matchCourses(all, identifier, normalized)
}
