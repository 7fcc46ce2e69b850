package generator

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"coursemaster/services"
	"coursemaster/utils/response"
	"coursemaster/utils/validation"
)

// GeneratorHandler handles course-producing requests
type GeneratorHandler struct {
	courses   *services.CourseService
	templates *services.TemplateService
	generator *services.GeneratorService
	validator *validation.Validator
}

// NewGeneratorHandler creates a new generator handler
func NewGeneratorHandler(courses *services.CourseService, templates *services.TemplateService, generator *services.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{
		courses:   courses,
		templates: templates,
		generator: generator,
		validator: validation.NewValidator(),
	}
}

// GenerateCourseRequest represents the request body for AI course generation
type GenerateCourseRequest struct {
	Topic string `json:"topic" validate:"required,min=2,max=200"`
}

// ImportTemplate handles POST /api/v1/courses/template
func (h *GeneratorHandler) ImportTemplate(c *fiber.Ctx) error {
	course := h.templates.Generate()
	h.courses.AddCourse(course)
	return response.Created(c, course)
}

// GenerateCourse handles POST /api/v1/courses/generate. The two failure
// kinds get distinct user-facing messages: missing credential vs a
// generation attempt that should simply be retried.
func (h *GeneratorHandler) GenerateCourse(c *fiber.Ctx) error {
	var req GenerateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Topic = validation.SanitizeString(req.Topic)
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	course, err := h.generator.GenerateFromTopic(c.Context(), req.Topic)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotConfigured):
			return response.ServiceUnavailable(c, "AI course generation is not configured. Set GEMINI_API_KEY to enable it.")
		case errors.Is(err, services.ErrGenerationInFlight):
			return response.Conflict(c, "A course is already being generated. Wait for it to finish.")
		default:
			return response.BadGateway(c, "Course generation failed. Please try again later.")
		}
	}

	h.courses.AddCourse(course)
	return response.Created(c, course)
}
