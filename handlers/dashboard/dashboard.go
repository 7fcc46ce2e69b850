package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"coursemaster/model"
	"coursemaster/services"
	"coursemaster/utils/response"
)

// chartTitleLimit is how much of a course title fits on a chart axis label
const chartTitleLimit = 15

// DashboardHandler serves the aggregate progress view
type DashboardHandler struct {
	courses *services.CourseService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(courses *services.CourseService) *DashboardHandler {
	return &DashboardHandler{courses: courses}
}

// ChartRow is one bar of the per-course progress chart
type ChartRow struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

type statsResponse struct {
	model.CourseStats
	Chart []ChartRow `json:"chart"`
}

// GetStats handles GET /api/v1/dashboard/stats
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	courses := h.courses.Courses()

	chart := make([]ChartRow, len(courses))
	for i, course := range courses {
		chart[i] = ChartRow{Name: truncateTitle(course.Title), Progress: course.Progress}
	}

	return response.Success(c, statsResponse{
		CourseStats: h.courses.Stats(),
		Chart:       chart,
	})
}

func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) > chartTitleLimit {
		return string(runes[:chartTitleLimit]) + "..."
	}
	return title
}
