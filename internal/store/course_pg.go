package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"courseapi/internal/course"
)

// CoursePG implements course.Repository against Postgres.
type CoursePG struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewCoursePG(db *pgxpool.Pool, timeout time.Duration) *CoursePG {
	return &CoursePG{db: db, timeout: timeout}
}

func (r *CoursePG) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

const courseColumns = `id, slug, title, description, level, age_group, language,
	       total_xp, estimated_hours, lesson_count, is_published, created_at, updated_at`

func scanCourse(row pgx.Row) (course.Course, error) {
	var c course.Course
	err := row.Scan(
		&c.ID, &c.Slug, &c.Title, &c.Description, &c.Level, &c.AgeGroup, &c.Language,
		&c.TotalXP, &c.EstimatedHours, &c.LessonCount, &c.IsPublished, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *CoursePG) FindByID(ctx context.Context, id string) (course.Course, error) {
	// id arrives as raw user input, so compare textually instead of
	// letting Postgres reject it as a malformed uuid.
	const query = `
		SELECT ` + courseColumns + `
		FROM courses
		WHERE id::text = $1
		LIMIT 1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	c, err := scanCourse(r.db.QueryRow(timeoutCtx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return course.Course{}, course.ErrNotFound
		}
		return course.Course{}, err
	}
	return c, nil
}

func (r *CoursePG) FindBySlug(ctx context.Context, slug string) (course.Course, error) {
	const query = `
		SELECT ` + courseColumns + `
		FROM courses
		WHERE slug = $1
		LIMIT 1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	c, err := scanCourse(r.db.QueryRow(timeoutCtx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return course.Course{}, course.ErrNotFound
		}
		return course.Course{}, err
	}
	return c, nil
}

func (r *CoursePG) ListPublished(ctx context.Context) ([]course.Course, error) {
	const query = `
		SELECT ` + courseColumns + `
		FROM courses
		WHERE is_published
		ORDER BY title
	`
	return r.list(ctx, query)
}

// ListAll returns every course ordered by (created_at, id) so the
// fuzzy-match candidate scan sees a stable stored order.
func (r *CoursePG) ListAll(ctx context.Context) ([]course.Course, error) {
	const query = `
		SELECT ` + courseColumns + `
		FROM courses
		ORDER BY created_at, id
	`
	return r.list(ctx, query)
}

func (r *CoursePG) list(ctx context.Context, query string) ([]course.Course, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []course.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
