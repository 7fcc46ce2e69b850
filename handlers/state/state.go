package state

import (
	"github.com/gofiber/fiber/v2"

	"coursemaster/services"
	"coursemaster/utils/response"
)

// StateHandler exposes the navigation state owned by the course service
type StateHandler struct {
	courses *services.CourseService
}

// NewStateHandler creates a new state handler
func NewStateHandler(courses *services.CourseService) *StateHandler {
	return &StateHandler{courses: courses}
}

// SetViewRequest represents the request body for changing the active view
type SetViewRequest struct {
	View string `json:"view"`
}

type stateResponse struct {
	View             services.View `json:"view"`
	SelectedCourseID string        `json:"selectedCourseId,omitempty"`
}

// GetState handles GET /api/v1/state
func (h *StateHandler) GetState(c *fiber.Ctx) error {
	view, selected := h.courses.State()
	return response.Success(c, stateResponse{View: view, SelectedCourseID: selected})
}

// SetView handles PUT /api/v1/state
func (h *StateHandler) SetView(c *fiber.Ctx) error {
	var req SetViewRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	view, ok := services.ParseView(req.View)
	if !ok {
		return response.BadRequest(c, "Unknown view: "+req.View)
	}

	h.courses.SetView(view)
	current, selected := h.courses.State()
	return response.Success(c, stateResponse{View: current, SelectedCourseID: selected})
}
