package http

import (
	"net/http"
	"strconv"
	"strings"

	"courseapi/internal/catalog"
	"courseapi/internal/course"
	"courseapi/internal/httpx"
	"courseapi/internal/resolve"
)

// CourseHandler serves the public catalog listing and content
// resolution endpoints.
type CourseHandler struct {
	repo       course.Repository
	resolver   *resolve.Resolver
	categories catalog.Categories
	demoMode   bool
}

func NewCourseHandler(repo course.Repository, resolver *resolve.Resolver, demoMode bool) *CourseHandler {
	return &CourseHandler{
		repo:       repo,
		resolver:   resolver,
		categories: catalog.DefaultCategories,
		demoMode:   demoMode,
	}
}

type listQuery struct {
	Q        string `validate:"max=100"`
	Age      string `validate:"max=40"`
	Level    string `validate:"max=40,level_filter"`
	Category string `validate:"max=40"`
	Language string `validate:"max=40"`
	Page     int    `validate:"min=1"`
}

// List handles GET /courses: filter + paginate the course catalog.
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	params := listQuery{
		Q:        query.Get("q"),
		Age:      query.Get("age"),
		Level:    query.Get("level"),
		Category: query.Get("category"),
		Language: query.Get("language"),
		Page:     page,
	}
	if errs := ValidateStruct(params); errs != nil {
		details := make([]httpx.ErrorDetail, 0, len(errs))
		for _, e := range errs {
			details = append(details, httpx.ErrorDetail{Field: e.Field, Message: e.Message})
		}
		httpx.JSONError(r, w, http.StatusBadRequest, "invalid_query", "Invalid query parameters", details)
		return
	}

	courses, err := h.repo.ListPublished(ctx)
	if err != nil || len(courses) == 0 {
		// The catalog stays browsable on an empty or unreachable store.
		courses = resolve.LegacyCourses()
	}

	state := catalog.FilterState{
		SearchText:    params.Q,
		AgeFilter:     params.Age,
		LevelFilter:   params.Level,
		CategoryID:    params.Category,
		ExactLanguage: params.Language,
		Page:          params.Page,
		PageSize:      catalog.DefaultPageSize,
	}
	result := catalog.View(catalog.FromCourses(courses), state, h.categories)

	httpx.JSONSuccess(r, w, result.PageItems, map[string]interface{}{
		"page":        result.Page,
		"page_size":   catalog.DefaultPageSize,
		"total":       result.TotalCount,
		"total_pages": result.TotalPages,
	})
}

type resolvedCourse struct {
	course.Course
	Tier     course.Tier      `json:"tier"`
	Strategy resolve.Strategy `json:"match_strategy"`
}

// Get handles GET /courses/{identifier}: resolve a messy identifier
// onto one course. Every failure cause answers the same 404 so tier
// and store internals never leak to the caller.
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	const prefix = "/courses/"
	if !strings.HasPrefix(r.URL.Path, prefix) {
		http.NotFound(w, r)
		return
	}
	identifier := strings.TrimPrefix(r.URL.Path, prefix)
	if identifier == "" || strings.Contains(identifier, "/") {
		http.NotFound(w, r)
		return
	}

	role := course.Role(httpx.RoleFrom(r))
	if role == "" {
		role = course.RoleGuest
	}

	res := h.resolver.Resolve(r.Context(), resolve.Query{
		RawIdentifier:   identifier,
		RequesterRole:   role,
		DemoModeEnabled: h.demoMode,
	})
	if !res.Found {
		httpx.JSONError(r, w, http.StatusNotFound, "not_found", "content not found", nil)
		return
	}

	httpx.JSONSuccess(r, w, resolvedCourse{
		Course:   res.Course,
		Tier:     res.Tier,
		Strategy: res.Strategy,
	}, nil)
}
