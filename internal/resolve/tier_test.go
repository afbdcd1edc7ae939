package resolve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"courseapi/internal/course"
)

func testCatalog() []course.Course {
	return []course.Course{
		{ID: "id-1", Slug: "html-basics-for-kids", Title: "HTML Basics for Kids", IsPublished: true},
		{ID: "id-2", Slug: "css-art-studio", Title: "CSS Art Studio", IsPublished: true},
		{ID: "id-3", Slug: "javascript-quest", Title: "JavaScript Quest", IsPublished: true},
	}
}

func TestStaticTier_MatchLadder(t *testing.T) {
	tier := NewStaticTier(course.TierCurated, testCatalog())
	ctx := context.Background()

	tests := []struct {
		name       string
		identifier string
		wantID     string
		wantStrat  Strategy
	}{
		{
			name:       "exact id",
			identifier: "id-2",
			wantID:     "id-2",
			wantStrat:  StrategyID,
		},
		{
			name:       "exact slug",
			identifier: "javascript-quest",
			wantID:     "id-3",
			wantStrat:  StrategySlug,
		},
		{
			name:       "case-insensitive slug",
			identifier: "CSS-Art-Studio",
			wantID:     "id-2",
			wantStrat:  StrategySlugFold,
		},
		{
			name:       "normalized slug",
			identifier: "  HTML Basics for Kids!!  ",
			wantID:     "id-1",
			wantStrat:  StrategySlugNormalized,
		},
		{
			name:       "normalized slug containment",
			identifier: "javascript",
			wantID:     "id-3",
			wantStrat:  StrategySlugContains,
		},
		{
			name:       "normalized phrase inside slug",
			identifier: "art studio",
			wantID:     "id-2",
			wantStrat:  StrategySlugContains,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, strat, ok := tier.FindBySlugOrID(ctx, tt.identifier, course.Normalize(tt.identifier))
			assert.True(t, ok)
			assert.Equal(t, tt.wantID, c.ID)
			assert.Equal(t, tt.wantStrat, strat)
		})
	}
}

func TestStaticTier_Miss(t *testing.T) {
	tier := NewStaticTier(course.TierLegacy, testCatalog())

	_, _, ok := tier.FindBySlugOrID(context.Background(), "minecraft-modding", course.Normalize("minecraft-modding"))
	assert.False(t, ok)
}

func TestStaticTier_AmbiguousContainmentPrefersStoredOrder(t *testing.T) {
	courses := []course.Course{
		{ID: "first", Slug: "python-for-explorers", Title: "Python for Explorers"},
		{ID: "second", Slug: "python-game-lab", Title: "Python Game Lab"},
	}
	tier := NewStaticTier(course.TierLegacy, courses)

	c, strat, ok := tier.FindBySlugOrID(context.Background(), "python", course.Normalize("python"))
	assert.True(t, ok)
	assert.Equal(t, "first", c.ID)
	assert.Equal(t, StrategySlugContains, strat)
}

func TestStaticTier_TitleMatchViaLooseTokens(t *testing.T) {
	courses := []course.Course{
		{ID: "only", Slug: "mbot", Title: "Robotics with micro:bit"},
	}
	tier := NewStaticTier(course.TierLegacy, courses)

	c, strat, ok := tier.FindBySlugOrID(context.Background(), "Robotics With", course.Normalize("Robotics With"))
	assert.True(t, ok)
	assert.Equal(t, "only", c.ID)
	assert.Equal(t, StrategyTitleContains, strat)
}
