package resolve

import (
	"courseapi/internal/course"
)

// Bundled fallback catalogs. Both sets are read-only and conform to
// the same course shape as the primary store; their declaration order
// is the stored order used by the matching rules.

var curatedCourses = []course.Course{
	{
		ID:             "curated-html-101",
		Slug:           "html-basics-for-kids",
		Title:          "HTML Basics for Kids",
		Description:    "Build your very first web page with friendly, bite-sized lessons.",
		Level:          course.LevelBeginner,
		AgeGroup:       course.Ages7To10,
		Language:       "html",
		TotalXP:        450,
		EstimatedHours: 6,
		LessonCount:    12,
		IsPublished:    true,
	},
	{
		ID:             "curated-scratch-101",
		Slug:           "scratch-adventures",
		Title:          "Scratch Adventures",
		Description:    "Drag, drop, and animate your own stories and mini games.",
		Level:          course.LevelBeginner,
		AgeGroup:       course.Ages5To7,
		Language:       "scratch",
		TotalXP:        300,
		EstimatedHours: 4,
		LessonCount:    10,
		IsPublished:    true,
	},
	{
		ID:             "curated-python-201",
		Slug:           "python-game-lab",
		Title:          "Python Game Lab",
		Description:    "Level up from blocks to real code by building arcade games in Python.",
		Level:          course.LevelIntermediate,
		AgeGroup:       course.Ages10To13,
		Language:       "python",
		TotalXP:        800,
		EstimatedHours: 10,
		LessonCount:    18,
		IsPublished:    true,
	},
}

var legacyCourses = []course.Course{
	{
		ID:             "legacy-html-1",
		Slug:           "html-basics-for-kids",
		Title:          "HTML Basics for Kids",
		Description:    "Learn the building blocks of every web page.",
		Level:          course.LevelBeginner,
		AgeGroup:       course.Ages7To10,
		Language:       "html",
		TotalXP:        400,
		EstimatedHours: 5,
		LessonCount:    10,
		IsPublished:    true,
	},
	{
		ID:             "legacy-css-1",
		Slug:           "css-art-studio",
		Title:          "CSS Art Studio",
		Description:    "Paint the web with colors, layouts, and animations.",
		Level:          course.LevelBeginner,
		AgeGroup:       course.Ages7To10,
		Language:       "css",
		TotalXP:        420,
		EstimatedHours: 5.5,
		LessonCount:    11,
		IsPublished:    true,
	},
	{
		ID:             "legacy-js-1",
		Slug:           "javascript-quest",
		Title:          "JavaScript Quest",
		Description:    "Make your pages come alive with interactive quests.",
		Level:          course.LevelIntermediate,
		AgeGroup:       course.Ages10To13,
		Language:       "javascript",
		TotalXP:        700,
		EstimatedHours: 9,
		LessonCount:    16,
		IsPublished:    true,
	},
	{
		ID:             "legacy-python-1",
		Slug:           "python-for-explorers",
		Title:          "Python for Explorers",
		Description:    "A gentle introduction to real text-based programming.",
		Level:          course.LevelIntermediate,
		AgeGroup:       course.Ages10To13,
		Language:       "python",
		TotalXP:        750,
		EstimatedHours: 9.5,
		LessonCount:    17,
		IsPublished:    true,
	},
	{
		ID:             "legacy-scratch-1",
		Slug:           "scratch-first-steps",
		Title:          "Scratch First Steps",
		Description:    "Your very first programs, one colorful block at a time.",
		Level:          course.LevelBeginner,
		AgeGroup:       course.Ages5To7,
		Language:       "scratch",
		TotalXP:        250,
		EstimatedHours: 3.5,
		LessonCount:    8,
		IsPublished:    true,
	},
	{
		ID:             "legacy-robotics-1",
		Slug:           "robotics-with-microbit",
		Title:          "Robotics with micro:bit",
		Description:    "Program tiny robots and wearables with block code.",
		Level:          course.LevelAdvanced,
		AgeGroup:       course.Ages13To16,
		Language:       "microbit",
		TotalXP:        900,
		EstimatedHours: 12,
		LessonCount:    20,
		IsPublished:    true,
	},
}

// CuratedCourses returns the small hand-picked fallback catalog.
func CuratedCourses() []course.Course {
	return curatedCourses
}

// LegacyCourses returns the static bundled catalog. It doubles as the
// whole-catalog fallback when the primary store has nothing published.
func LegacyCourses() []course.Course {
	return legacyCourses
}
