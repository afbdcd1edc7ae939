package catalog

import (
	"strings"

	"courseapi/internal/course"
)

// DefaultPageSize is the fixed number of entries on a catalog page.
const DefaultPageSize = 9

// Sentinel filter values meaning "no filtering on this facet".
const (
	AllAges       = "All Ages"
	AllLevels     = "All Levels"
	AllCategories = "all"
)

// Entry is the denormalized course projection the filter engine
// operates on. Level and language are lowercased at projection time so
// the filters can compare without re-folding.
type Entry struct {
	ID           string  `json:"id"`
	Slug         string  `json:"slug"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Level        string  `json:"level"`
	AgeLabel     string  `json:"age_label"`
	Language     string  `json:"language"`
	XP           int     `json:"xp"`
	Hours        float64 `json:"hours"`
	LessonsCount int     `json:"lessons_count"`
}

// FromCourse projects a course record into a catalog entry.
func FromCourse(c course.Course) Entry {
	return Entry{
		ID:           c.ID,
		Slug:         c.Slug,
		Title:        c.Title,
		Description:  c.Description,
		Level:        strings.ToLower(string(c.Level)),
		AgeLabel:     c.AgeGroup.Label(),
		Language:     strings.ToLower(c.Language),
		XP:           c.TotalXP,
		Hours:        c.EstimatedHours,
		LessonsCount: c.LessonCount,
	}
}

// FromCourses projects a course list, preserving order.
func FromCourses(cs []course.Course) []Entry {
	entries := make([]Entry, 0, len(cs))
	for _, c := range cs {
		entries = append(entries, FromCourse(c))
	}
	return entries
}

// FilterState is a snapshot of the caller's filter and paging choices.
// The engine never mutates it; callers reset Page to 1 whenever any
// other field changes.
type FilterState struct {
	SearchText    string
	AgeFilter     string
	LevelFilter   string
	CategoryID    string
	ExactLanguage string
	Page          int
	PageSize      int
}

// Categories maps a category id to the language tags it groups.
type Categories map[string][]string

// DefaultCategories groups the catalog's topic tags for browsing.
var DefaultCategories = Categories{
	"web":         {"html", "css", "javascript"},
	"programming": {"python", "scratch"},
	"hardware":    {"microbit", "arduino"},
}
