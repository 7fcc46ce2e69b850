package course

import (
	"github.com/gofiber/fiber/v2"

	"coursemaster/model"
	"coursemaster/services"
	"coursemaster/utils"
	"coursemaster/utils/response"
	"coursemaster/utils/validation"
)

// CourseHandler handles course-related requests
type CourseHandler struct {
	courses   *services.CourseService
	validator *validation.Validator
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(courses *services.CourseService) *CourseHandler {
	return &CourseHandler{
		courses:   courses,
		validator: validation.NewValidator(),
	}
}

// RescheduleLessonRequest represents the request body for rescheduling a lesson
type RescheduleLessonRequest struct {
	ScheduledDate string `json:"scheduledDate" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

// lessonDetail is a lesson plus its derived watch-page URL
type lessonDetail struct {
	model.Lesson
	WatchURL string `json:"watchUrl,omitempty"`
}

type moduleDetail struct {
	ID      string         `json:"id"`
	Title   string         `json:"title"`
	Lessons []lessonDetail `json:"lessons"`
}

// courseDetail mirrors model.Course with enriched lessons
type courseDetail struct {
	model.Course
	Modules []moduleDetail `json:"modules"`
}

func toDetail(course model.Course) courseDetail {
	modules := make([]moduleDetail, len(course.Modules))
	for i, mod := range course.Modules {
		lessons := make([]lessonDetail, len(mod.Lessons))
		for j, lesson := range mod.Lessons {
			lessons[j] = lessonDetail{Lesson: lesson}
			if lesson.VideoURL != "" {
				lessons[j].WatchURL = utils.WatchURL(lesson.VideoURL)
			}
		}
		modules[i] = moduleDetail{ID: mod.ID, Title: mod.Title, Lessons: lessons}
	}
	return courseDetail{Course: course, Modules: modules}
}

// ListCourses handles GET /api/v1/courses
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	return response.Success(c, h.courses.Courses())
}

// GetCourse handles GET /api/v1/courses/:id
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	course, ok := h.courses.Course(c.Params("id"))
	if !ok {
		return response.NotFound(c, "Course not found")
	}
	return response.Success(c, toDetail(course))
}

// DeleteCourse handles DELETE /api/v1/courses/:id. Deletion is destructive,
// so it must be explicitly confirmed; without confirm=true nothing changes.
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	if c.Query("confirm") != "true" {
		return response.BadRequest(c, "Deletion must be confirmed with confirm=true")
	}

	if !h.courses.DeleteCourse(c.Params("id")) {
		return response.NotFound(c, "Course not found")
	}
	return response.NoContent(c)
}

// SelectCourse handles POST /api/v1/courses/:id/select
func (h *CourseHandler) SelectCourse(c *fiber.Ctx) error {
	course, ok := h.courses.SelectCourse(c.Params("id"))
	if !ok {
		return response.NotFound(c, "Course not found")
	}
	return response.Success(c, toDetail(course))
}

// ToggleLesson handles PATCH /api/v1/courses/:courseId/modules/:moduleId/lessons/:lessonId/toggle
func (h *CourseHandler) ToggleLesson(c *fiber.Ctx) error {
	course, ok := h.courses.ToggleLesson(
		c.Params("courseId"),
		c.Params("moduleId"),
		c.Params("lessonId"),
	)
	if !ok {
		return response.NotFound(c, "Lesson not found")
	}
	return response.Success(c, course)
}

// RescheduleLesson handles PATCH /api/v1/courses/:courseId/modules/:moduleId/lessons/:lessonId/schedule
func (h *CourseHandler) RescheduleLesson(c *fiber.Ctx) error {
	var req RescheduleLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	course, ok := h.courses.RescheduleLesson(
		c.Params("courseId"),
		c.Params("moduleId"),
		c.Params("lessonId"),
		req.ScheduledDate,
	)
	if !ok {
		return response.NotFound(c, "Lesson not found")
	}
	return response.Success(c, course)
}
