package resolve

import (
	"context"

	"courseapi/internal/course"
)

// staticTier serves a fixed bundled catalog. Stored order is the
// declaration order of the dataset, which keeps ambiguous containment
// matches deterministic.
type staticTier struct {
	name    course.Tier
	courses []course.Course
}

// NewStaticTier wraps a read-only course set as a tier.
func NewStaticTier(name course.Tier, courses []course.Course) Tier {
	return &staticTier{name: name, courses: courses}
}

func (t *staticTier) Name() course.Tier {
	return t.name
}

func (t *staticTier) FindBySlugOrID(_ context.Context, identifier, normalized string) (course.Course, Strategy, bool) {
	return matchCourses(t.courses, identifier, normalized)
}
