package services

import (
	"log"
	"sync"

	"coursemaster/database"
	"coursemaster/model"
)

// View names the screen the client is currently on
type View string

const (
	ViewDashboard    View = "DASHBOARD"
	ViewCourses      View = "COURSES"
	ViewCourseDetail View = "COURSE_DETAIL"
	ViewAIGenerator  View = "AI_GENERATOR"
)

// ParseView validates a view name coming from the client
func ParseView(s string) (View, bool) {
	switch View(s) {
	case ViewDashboard, ViewCourses, ViewCourseDetail, ViewAIGenerator:
		return View(s), true
	}
	return "", false
}

// CourseService owns the authoritative course collection and the navigation
// state. Every mutation replaces whole Course values (never edits in place)
// and persists the full collection before returning; a failed save is logged
// and the in-memory state stays authoritative for the session.
type CourseService struct {
	mu       sync.Mutex
	store    database.Storage
	courses  []model.Course
	view     View
	selected string // currently selected course id, "" when none
}

// NewCourseService loads the persisted collection and starts on the dashboard
func NewCourseService(store database.Storage) *CourseService {
	courses, err := store.LoadCourses()
	if err != nil {
		log.Println("Failed to load courses, starting with an empty collection:", err)
		courses = []model.Course{}
	}

	return &CourseService{
		store:   store,
		courses: courses,
		view:    ViewDashboard,
	}
}

// Courses returns the collection, most recently added first
func (s *CourseService) Courses() []model.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Course, len(s.courses))
	copy(out, s.courses)
	return out
}

// Course returns the course with the given id
func (s *CourseService) Course(id string) (model.Course, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, course := range s.courses {
		if course.ID == id {
			return course, true
		}
	}
	return model.Course{}, false
}

// AddCourse prepends a fully-formed course and navigates to the course list
func (s *CourseService) AddCourse(course model.Course) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Course, 0, len(s.courses)+1)
	next = append(next, course)
	next = append(next, s.courses...)
	s.courses = next
	s.view = ViewCourses

	s.persistLocked()
}

// DeleteCourse removes the matching course. If it was the selected one the
// selection is cleared and the view falls back to the course list.
func (s *CourseService) DeleteCourse(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Course, 0, len(s.courses))
	found := false
	for _, course := range s.courses {
		if course.ID == id {
			found = true
			continue
		}
		next = append(next, course)
	}
	if !found {
		return false
	}

	s.courses = next
	if s.selected == id {
		s.selected = ""
		s.view = ViewCourses
	}

	s.persistLocked()
	return true
}

// ToggleLesson flips the completion flag of the lesson matching all three
// identities and recomputes the owning course's derived progress fields.
// A mismatch on any id is a no-op.
func (s *CourseService) ToggleLesson(courseID, moduleID, lessonID string) (model.Course, bool) {
	return s.updateLesson(courseID, moduleID, lessonID, true, func(lesson model.Lesson) model.Lesson {
		lesson.Completed = !lesson.Completed
		return lesson
	})
}

// RescheduleLesson overwrites the lesson's scheduled date. Progress is not
// affected, so derived fields are left alone.
func (s *CourseService) RescheduleLesson(courseID, moduleID, lessonID, newDate string) (model.Course, bool) {
	return s.updateLesson(courseID, moduleID, lessonID, false, func(lesson model.Lesson) model.Lesson {
		lesson.ScheduledDate = newDate
		return lesson
	})
}

// SelectCourse marks a course as the one being viewed
func (s *CourseService) SelectCourse(id string) (model.Course, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, course := range s.courses {
		if course.ID == id {
			s.selected = id
			s.view = ViewCourseDetail
			return course, true
		}
	}
	return model.Course{}, false
}

// SetView changes the navigation view without touching the selection
func (s *CourseService) SetView(view View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view
}

// State returns the current view and selected course id
func (s *CourseService) State() (View, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view, s.selected
}

// Stats aggregates the dashboard numbers over the whole collection
func (s *CourseService) Stats() model.CourseStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CalculateStats(s.courses)
}

// updateLesson rebuilds the course -> module -> lesson structure around the
// single changed lesson so the previous values are never mutated in place.
func (s *CourseService) updateLesson(courseID, moduleID, lessonID string, recompute bool, apply func(model.Lesson) model.Lesson) (model.Course, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, course := range s.courses {
		if course.ID != courseID {
			continue
		}

		updated, found := replaceLesson(course, moduleID, lessonID, apply)
		if !found {
			return model.Course{}, false
		}
		if recompute {
			updated = model.CalculateProgress(updated)
		}

		next := make([]model.Course, len(s.courses))
		copy(next, s.courses)
		next[i] = updated
		s.courses = next

		s.persistLocked()
		return updated, true
	}

	return model.Course{}, false
}

func replaceLesson(course model.Course, moduleID, lessonID string, apply func(model.Lesson) model.Lesson) (model.Course, bool) {
	found := false

	modules := make([]model.Module, len(course.Modules))
	for i, mod := range course.Modules {
		if mod.ID != moduleID {
			modules[i] = mod
			continue
		}

		lessons := make([]model.Lesson, len(mod.Lessons))
		for j, lesson := range mod.Lessons {
			if lesson.ID == lessonID {
				lessons[j] = apply(lesson)
				found = true
			} else {
				lessons[j] = lesson
			}
		}
		mod.Lessons = lessons
		modules[i] = mod
	}

	course.Modules = modules
	return course, found
}

// persistLocked writes the whole collection. Callers must hold s.mu.
func (s *CourseService) persistLocked() {
	if err := s.store.SaveCourses(s.courses); err != nil {
		log.Println("Failed to save courses, in-memory state kept:", err)
	}
}
