package course

import (
	"context"
)

// Repository defines the contract for course data storage.
type Repository interface {
	// Find a course by its opaque id
	FindByID(ctx context.Context, id string) (Course, error)
	// Find a course by exact slug
	FindBySlug(ctx context.Context, slug string) (Course, error)
	// List published courses for the catalog
	ListPublished(ctx context.Context) ([]Course, error)
	// List every course in stable stored order
	ListAll(ctx context.Context) ([]Course, error)
}
