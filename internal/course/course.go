package course

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a course is not found.
var ErrNotFound = errors.New("course not found")

// Level is the difficulty band of a course.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelExpert       Level = "expert"
	LevelMaster       Level = "master"
)

// AgeGroup is the age band a course is written for.
type AgeGroup string

const (
	Ages5To7   AgeGroup = "5-7"
	Ages7To10  AgeGroup = "7-10"
	Ages10To13 AgeGroup = "10-13"
	Ages13To16 AgeGroup = "13-16"
)

// Label returns the display form of the age band, e.g. "Ages 7-10".
func (a AgeGroup) Label() string {
	return "Ages " + string(a)
}

// Role of the requester, supplied by the auth collaborator.
type Role string

const (
	RoleGuest      Role = "guest"
	RoleParent     Role = "parent"
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// Tier identifies which data source supplied a resolved record.
type Tier string

const (
	TierPrimary Tier = "primary"
	TierCurated Tier = "curated"
	TierLegacy  Tier = "legacy"
)

// Course represents a course content record. Slugs are unique within a
// data source but may repeat across sources, since the fallback sets
// mirror courses that also exist in the primary store.
type Course struct {
	ID             string    `json:"id"`
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Level          Level     `json:"level"`
	AgeGroup       AgeGroup  `json:"age_group"`
	Language       string    `json:"language"`
	TotalXP        int       `json:"total_xp"`
	EstimatedHours float64   `json:"estimated_hours"`
	LessonCount    int       `json:"lesson_count"`
	IsPublished    bool      `json:"is_published"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
