package resolve

import (
	"context"
	"strings"

	"courseapi/internal/course"
)

// Authorizer decides whether a role may view unpublished content.
type Authorizer interface {
	CanViewUnpublished(role course.Role) bool
}

// RoleAuthorizer grants unpublished access to instructors and admins.
type RoleAuthorizer struct{}

func (RoleAuthorizer) CanViewUnpublished(role course.Role) bool {
	return role == course.RoleInstructor || role == course.RoleAdmin
}

// Query is the input to a single resolution. DemoModeEnabled comes
// from an external feature toggle and is passed in explicitly so the
// resolver stays a pure function of its inputs.
type Query struct {
	RawIdentifier   string
	RequesterRole   course.Role
	DemoModeEnabled bool
}

// Result is the outcome of a resolution. Found is false for every
// failure cause: bad input, a store outage, and genuine absence all
// surface uniformly as not found.
type Result struct {
	Found    bool
	Course   course.Course
	Tier     course.Tier
	Strategy Strategy
}

// Resolver maps a raw course identifier onto exactly one record by
// consulting the tiers in precedence order. Whichever tier matches
// supplies the complete record; fields are never merged across tiers.
type Resolver struct {
	primary Tier
	curated Tier
	legacy  Tier
	authz   Authorizer
}

// NewResolver builds a resolver over the three tiers. A nil authz
// falls back to the role-based default.
func NewResolver(primary, curated, legacy Tier, authz Authorizer) *Resolver {
	if authz == nil {
		authz = RoleAuthorizer{}
	}
	return &Resolver{primary: primary, curated: curated, legacy: legacy, authz: authz}
}

// Resolve runs the tier ladder for one identifier.
func (r *Resolver) Resolve(ctx context.Context, q Query) Result {
	if strings.TrimSpace(q.RawIdentifier) == "" {
		return Result{}
	}
	normalized := course.Normalize(q.RawIdentifier)

	if c, strategy, ok := r.primary.FindBySlugOrID(ctx, q.RawIdentifier, normalized); ok {
		if c.IsPublished || r.authz.CanViewUnpublished(q.RequesterRole) {
			return Result{Found: true, Course: c, Tier: r.primary.Name(), Strategy: strategy}
		}
	}

	// Fallback tiers hold demo content and must never leak outside an
	// admin demo session, even when a matching slug exists.
	if q.RequesterRole != course.RoleAdmin || !q.DemoModeEnabled {
		return Result{}
	}

	if c, strategy, ok := r.curated.FindBySlugOrID(ctx, q.RawIdentifier, normalized); ok {
		return Result{Found: true, Course: c, Tier: r.curated.Name(), Strategy: strategy}
	}
	if c, strategy, ok := r.legacy.FindBySlugOrID(ctx, q.RawIdentifier, normalized); ok {
		return Result{Found: true, Course: c, Tier: r.legacy.Name(), Strategy: strategy}
	}
	return Result{}
}
