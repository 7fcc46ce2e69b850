package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"coursemaster/config"
	"coursemaster/database"
	"coursemaster/handlers"
	course_handlers "coursemaster/handlers/course"
	dashboard_handlers "coursemaster/handlers/dashboard"
	generator_handlers "coursemaster/handlers/generator"
	state_handlers "coursemaster/handlers/state"
	"coursemaster/services"
	"coursemaster/utils/middleware"
)

func SetupRoutes(app *fiber.App, store database.Storage, env *config.EnviornmentVariable) {
	// Apply security middleware
	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    env.ALLOWED_ORIGINS,
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
	})

	// Initialize services
	courseService := services.NewCourseService(store)
	templateService := services.NewTemplateService()
	generatorService := services.NewGeneratorService(env)

	// Initialize handlers
	courseHandler := course_handlers.NewCourseHandler(courseService)
	dashboardHandler := dashboard_handlers.NewDashboardHandler(courseService)
	generatorHandler := generator_handlers.NewGeneratorHandler(courseService, templateService, generatorService)
	stateHandler := state_handlers.NewStateHandler(courseService)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return handlers.HandleCheckHealth(c, store)
	})

	api := app.Group("/api/v1")

	// Course collection
	courses := api.Group("/courses")
	courses.Get("/", courseHandler.ListCourses)
	courses.Post("/template", generatorHandler.ImportTemplate)
	courses.Post("/generate", generatorHandler.GenerateCourse)
	courses.Get("/:id", courseHandler.GetCourse)
	courses.Delete("/:id", courseHandler.DeleteCourse)
	courses.Post("/:id/select", courseHandler.SelectCourse)

	// Lesson mutations, addressed through the lesson's true parent module
	lessons := courses.Group("/:courseId/modules/:moduleId/lessons/:lessonId")
	lessons.Patch("/toggle", courseHandler.ToggleLesson)
	lessons.Patch("/schedule", courseHandler.RescheduleLesson)

	// Dashboard
	api.Get("/dashboard/stats", dashboardHandler.GetStats)

	// Navigation state
	api.Get("/state", stateHandler.GetState)
	api.Put("/state", stateHandler.SetView)
}
