package resolve

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseapi/internal/course"
)

// stubRepo lets each test script the primary store, including outages.
type stubRepo struct {
	courses []course.Course
	err     error
}

func (s *stubRepo) FindByID(_ context.Context, id string) (course.Course, error) {
	if s.err != nil {
		return course.Course{}, s.err
	}
	for _, c := range s.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return course.Course{}, course.ErrNotFound
}

func (s *stubRepo) FindBySlug(_ context.Context, slug string) (course.Course, error) {
	if s.err != nil {
		return course.Course{}, s.err
	}
	for _, c := range s.courses {
		if c.Slug == slug {
			return c, nil
		}
	}
	return course.Course{}, course.ErrNotFound
}

func (s *stubRepo) ListPublished(_ context.Context) ([]course.Course, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []course.Course
	for _, c := range s.courses {
		if c.IsPublished {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubRepo) ListAll(_ context.Context) ([]course.Course, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.courses, nil
}

func newTestResolver(repo course.Repository, curated, legacy []course.Course) *Resolver {
	return NewResolver(
		NewPrimaryTier(repo),
		NewStaticTier(course.TierCurated, curated),
		NewStaticTier(course.TierLegacy, legacy),
		nil,
	)
}

func TestResolver_EmptyIdentifier(t *testing.T) {
	r := newTestResolver(&stubRepo{}, nil, nil)

	for _, raw := range []string{"", "   ", "\t\n"} {
		res := r.Resolve(context.Background(), Query{RawIdentifier: raw, RequesterRole: course.RoleAdmin, DemoModeEnabled: true})
		assert.False(t, res.Found, "identifier %q", raw)
	}
}

func TestResolver_PrimaryWinsOverCurated(t *testing.T) {
	primary := course.Course{ID: "p-1", Slug: "python-game-lab", Title: "Python Game Lab", IsPublished: true}
	curated := course.Course{ID: "c-1", Slug: "python-game-lab", Title: "Python Game Lab (demo)", IsPublished: true}
	r := newTestResolver(&stubRepo{courses: []course.Course{primary}}, []course.Course{curated}, nil)

	res := r.Resolve(context.Background(), Query{
		RawIdentifier:   "python-game-lab",
		RequesterRole:   course.RoleAdmin,
		DemoModeEnabled: true,
	})
	require.True(t, res.Found)
	assert.Equal(t, "p-1", res.Course.ID)
	assert.Equal(t, course.TierPrimary, res.Tier)
	assert.Equal(t, StrategySlug, res.Strategy)
}

func TestResolver_VisibilityGate(t *testing.T) {
	curated := []course.Course{{ID: "c-1", Slug: "abc-101", Title: "ABC 101", IsPublished: true}}
	r := newTestResolver(&stubRepo{}, curated, nil)
	ctx := context.Background()

	tests := []struct {
		name      string
		role      course.Role
		demoMode  bool
		wantFound bool
	}{
		{name: "parent with demo mode", role: course.RoleParent, demoMode: true, wantFound: false},
		{name: "student with demo mode", role: course.RoleStudent, demoMode: true, wantFound: false},
		{name: "guest with demo mode", role: course.RoleGuest, demoMode: true, wantFound: false},
		{name: "instructor with demo mode", role: course.RoleInstructor, demoMode: true, wantFound: false},
		{name: "admin without demo mode", role: course.RoleAdmin, demoMode: false, wantFound: false},
		{name: "admin with demo mode", role: course.RoleAdmin, demoMode: true, wantFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Resolve(ctx, Query{RawIdentifier: "abc-101", RequesterRole: tt.role, DemoModeEnabled: tt.demoMode})
			assert.Equal(t, tt.wantFound, res.Found)
			if tt.wantFound {
				assert.Equal(t, course.TierCurated, res.Tier)
				assert.Equal(t, "c-1", res.Course.ID)
			}
		})
	}
}

func TestResolver_CuratedBeforeLegacy(t *testing.T) {
	curated := []course.Course{{ID: "c-1", Slug: "shared-slug", Title: "Curated", IsPublished: true}}
	legacy := []course.Course{{ID: "l-1", Slug: "shared-slug", Title: "Legacy", IsPublished: true}}
	r := newTestResolver(&stubRepo{}, curated, legacy)

	res := r.Resolve(context.Background(), Query{
		RawIdentifier:   "shared-slug",
		RequesterRole:   course.RoleAdmin,
		DemoModeEnabled: true,
	})
	require.True(t, res.Found)
	assert.Equal(t, course.TierCurated, res.Tier)
	assert.Equal(t, "c-1", res.Course.ID)
}

func TestResolver_LegacyWhenCuratedMisses(t *testing.T) {
	legacy := []course.Course{{ID: "l-1", Slug: "robotics-with-microbit", Title: "Robotics", IsPublished: true}}
	r := newTestResolver(&stubRepo{}, nil, legacy)

	res := r.Resolve(context.Background(), Query{
		RawIdentifier:   "robotics-with-microbit",
		RequesterRole:   course.RoleAdmin,
		DemoModeEnabled: true,
	})
	require.True(t, res.Found)
	assert.Equal(t, course.TierLegacy, res.Tier)
}

func TestResolver_StoreOutageFailsOpen(t *testing.T) {
	down := &stubRepo{err: errors.New("connection refused")}
	curated := []course.Course{{ID: "c-1", Slug: "html-basics-for-kids", Title: "HTML Basics", IsPublished: true}}

	t.Run("gated requester reaches fallback", func(t *testing.T) {
		r := newTestResolver(down, curated, nil)
		res := r.Resolve(context.Background(), Query{
			RawIdentifier:   "html-basics-for-kids",
			RequesterRole:   course.RoleAdmin,
			DemoModeEnabled: true,
		})
		require.True(t, res.Found)
		assert.Equal(t, course.TierCurated, res.Tier)
	})

	t.Run("ungated requester gets not found, not an error", func(t *testing.T) {
		r := newTestResolver(down, curated, nil)
		res := r.Resolve(context.Background(), Query{
			RawIdentifier: "html-basics-for-kids",
			RequesterRole: course.RoleStudent,
		})
		assert.False(t, res.Found)
	})
}

func TestResolver_UnpublishedPrimary(t *testing.T) {
	draft := course.Course{ID: "p-1", Slug: "css-art-studio", Title: "CSS Art Studio", IsPublished: false}
	repo := &stubRepo{courses: []course.Course{draft}}

	t.Run("hidden from students", func(t *testing.T) {
		r := newTestResolver(repo, nil, nil)
		res := r.Resolve(context.Background(), Query{RawIdentifier: "css-art-studio", RequesterRole: course.RoleStudent})
		assert.False(t, res.Found)
	})

	t.Run("visible to instructors", func(t *testing.T) {
		r := newTestResolver(repo, nil, nil)
		res := r.Resolve(context.Background(), Query{RawIdentifier: "css-art-studio", RequesterRole: course.RoleInstructor})
		require.True(t, res.Found)
		assert.Equal(t, course.TierPrimary, res.Tier)
	})

	t.Run("draft falls through to fallback for admin in demo mode", func(t *testing.T) {
		// An unpublished primary hit does not short-circuit the gate; the
		// curated copy still serves the admin demo session.
		curated := []course.Course{{ID: "c-1", Slug: "css-art-studio", Title: "CSS Art Studio", IsPublished: true}}
		r := NewResolver(
			NewPrimaryTier(&stubRepo{courses: []course.Course{draft}}),
			NewStaticTier(course.TierCurated, curated),
			NewStaticTier(course.TierLegacy, nil),
			denyAll{},
		)
		res := r.Resolve(context.Background(), Query{
			RawIdentifier:   "css-art-studio",
			RequesterRole:   course.RoleAdmin,
			DemoModeEnabled: true,
		})
		require.True(t, res.Found)
		assert.Equal(t, course.TierCurated, res.Tier)
	})
}

type denyAll struct{}

func (denyAll) CanViewUnpublished(course.Role) bool { return false }

func TestResolver_MessyIdentifierAgainstPrimary(t *testing.T) {
	published := course.Course{ID: "p-1", Slug: "javascript-quest", Title: "JavaScript Quest", IsPublished: true}
	r := newTestResolver(&stubRepo{courses: []course.Course{published}}, nil, nil)

	res := r.Resolve(context.Background(), Query{
		RawIdentifier: "  JavaScript Quest!!  ",
		RequesterRole: course.RoleGuest,
	})
	require.True(t, res.Found)
	assert.Equal(t, "p-1", res.Course.ID)
	assert.Equal(t, StrategySlugNormalized, res.Strategy)
}
