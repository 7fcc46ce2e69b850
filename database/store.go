package database

import (
	"coursemaster/model"
)

// CoursesKey is the fixed key the whole course collection is stored under.
const CoursesKey = "coursemaster_db_v1"

// Storage defines the interface the course store implementation must satisfy
type Storage interface {
	// Lifecycle methods
	Init() error
	Close() error
	HealthCheck() error

	// Course collection blob
	LoadCourses() ([]model.Course, error)
	SaveCourses(courses []model.Course) error
}
