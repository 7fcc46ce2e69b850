package model

import (
	"math"

	"github.com/google/uuid"
)

// Lesson is the atomic trackable unit of a course. Only Completed and
// ScheduledDate are ever mutated after creation.
type Lesson struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Duration      string `json:"duration"` // free-text label, e.g. "30 min"
	Completed     bool   `json:"completed"`
	Content       string `json:"content,omitempty"`
	VideoURL      string `json:"videoUrl,omitempty"`      // embeddable player URL
	ScheduledDate string `json:"scheduledDate,omitempty"` // RFC3339
}

// Module is a named, ordered grouping of lessons. Lesson order is display
// order and is never changed after creation.
type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// Course is the top-level learning unit. TotalLessons, CompletedLessons and
// Progress are derived from the lesson completion flags; every mutation of a
// completion flag must go through CalculateProgress before the course is
// stored or returned.
type Course struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	ImageURL         string   `json:"imageUrl"`
	CreatedAt        string   `json:"createdAt"` // RFC3339
	Modules          []Module `json:"modules"`
	TotalLessons     int      `json:"totalLessons"`
	CompletedLessons int      `json:"completedLessons"`
	Progress         int      `json:"progress"` // 0 to 100
}

// CourseStats is the dashboard aggregate over the whole collection.
type CourseStats struct {
	TotalCourses     int `json:"totalCourses"`
	TotalLessons     int `json:"totalLessons"`
	CompletedLessons int `json:"completedLessons"`
	AverageProgress  int `json:"averageProgress"` // 0 to 100
}

// NewID returns a fresh opaque identity for a course, module or lesson.
func NewID() string {
	return uuid.NewString()
}

// CalculateProgress recomputes the derived lesson counters of a course and
// returns the updated value. A course with no lessons reports 0% rather than
// dividing by zero.
func CalculateProgress(course Course) Course {
	total := 0
	completed := 0

	for _, mod := range course.Modules {
		for _, lesson := range mod.Lessons {
			total++
			if lesson.Completed {
				completed++
			}
		}
	}

	progress := 0
	if total > 0 {
		progress = int(math.Round(float64(completed) / float64(total) * 100))
	}

	course.TotalLessons = total
	course.CompletedLessons = completed
	course.Progress = progress
	return course
}

// CalculateStats aggregates the derived counters of every course into the
// dashboard numbers. AverageProgress is the global completion percentage,
// not a mean of per-course percentages.
func CalculateStats(courses []Course) CourseStats {
	stats := CourseStats{TotalCourses: len(courses)}

	for _, course := range courses {
		stats.TotalLessons += course.TotalLessons
		stats.CompletedLessons += course.CompletedLessons
	}

	if stats.TotalLessons > 0 {
		stats.AverageProgress = int(math.Round(float64(stats.CompletedLessons) / float64(stats.TotalLessons) * 100))
	}

	return stats
}
