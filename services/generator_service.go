package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"coursemaster/config"
	"coursemaster/model"
	"coursemaster/services/gemini"
	"coursemaster/utils"
	"coursemaster/utils/validation"
)

var (
	// ErrNotConfigured means no Gemini credential was provided; it is
	// returned before any network call is attempted.
	ErrNotConfigured = errors.New("course generation is not configured: missing API key")

	// ErrGenerationInFlight means another generation request is still
	// running; requests are not queued or cancelled.
	ErrGenerationInFlight = errors.New("a course generation request is already in flight")
)

// GenerationError wraps a failed generation attempt: transport failure,
// unusable response text or an outline that does not match the schema.
type GenerationError struct {
	Stage string // "request", "parse" or "validate"
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("course generation failed (%s): %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// courseOutline is the structure the model is asked to return
type courseOutline struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Modules     []moduleOutline `json:"modules" validate:"required,min=1,dive"`
}

type moduleOutline struct {
	Title   string          `json:"title" validate:"required"`
	Lessons []lessonOutline `json:"lessons" validate:"required,min=1,dive"`
}

type lessonOutline struct {
	Title    string `json:"title" validate:"required"`
	Duration string `json:"duration" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

// outlineSchema is the declared response schema sent with every request
var outlineSchema = &gemini.Schema{
	Type: gemini.TypeObject,
	Properties: map[string]*gemini.Schema{
		"title":       {Type: gemini.TypeString},
		"description": {Type: gemini.TypeString},
		"category":    {Type: gemini.TypeString},
		"modules": {
			Type: gemini.TypeArray,
			Items: &gemini.Schema{
				Type: gemini.TypeObject,
				Properties: map[string]*gemini.Schema{
					"title": {Type: gemini.TypeString},
					"lessons": {
						Type: gemini.TypeArray,
						Items: &gemini.Schema{
							Type: gemini.TypeObject,
							Properties: map[string]*gemini.Schema{
								"title":    {Type: gemini.TypeString},
								"duration": {Type: gemini.TypeString},
								"content":  {Type: gemini.TypeString},
							},
							Required: []string{"title", "duration", "content"},
						},
					},
				},
				Required: []string{"title", "lessons"},
			},
		},
	},
	Required: []string{"title", "description", "category", "modules"},
}

// contentClient is the slice of the Gemini client the generator needs
type contentClient interface {
	GenerateContent(ctx context.Context, prompt string, schema *gemini.Schema) (string, error)
}

// GeneratorService turns a free-text topic into a fully-formed course via one
// schema-constrained Gemini call. At most one request runs at a time.
type GeneratorService struct {
	client    contentClient
	validator *validation.Validator
	busy      atomic.Bool
}

// NewGeneratorService wires the Gemini client from the environment. Without
// an API key the service stays up but fails fast with ErrNotConfigured.
func NewGeneratorService(env *config.EnviornmentVariable) *GeneratorService {
	var client contentClient
	if env.GEMINI_API_KEY != "" {
		client = gemini.NewClient(gemini.Config{
			APIKey:  env.GEMINI_API_KEY,
			BaseURL: env.GEMINI_BASE_URL,
			Model:   env.GEMINI_MODEL,
		})
	}

	return &GeneratorService{
		client:    client,
		validator: validation.NewValidator(),
	}
}

// Configured reports whether a credential is available
func (s *GeneratorService) Configured() bool {
	return s.client != nil
}

// GenerateFromTopic asks the model for a course outline about the topic and
// maps it into a Course with fresh identities, no schedule and no videos.
func (s *GeneratorService) GenerateFromTopic(ctx context.Context, topic string) (model.Course, error) {
	if s.client == nil {
		return model.Course{}, ErrNotConfigured
	}

	if !s.busy.CompareAndSwap(false, true) {
		return model.Course{}, ErrGenerationInFlight
	}
	defer s.busy.Store(false)

	prompt := fmt.Sprintf(`Create a complete course structure about the topic: %q.
The course must have an engaging title, a description, a category and 3 to 5 modules.
Each module must have 2 to 4 lessons.
For each lesson provide a title, an estimated duration (e.g. '15 min') and a short summary of the content.`, topic)

	text, err := s.client.GenerateContent(ctx, prompt, outlineSchema)
	if err != nil {
		return model.Course{}, &GenerationError{Stage: "request", Err: err}
	}

	var outline courseOutline
	if err := utils.ExtractJSONTo(text, &outline); err != nil {
		return model.Course{}, &GenerationError{Stage: "parse", Err: err}
	}

	if err := s.validator.ValidateStruct(outline); err != nil {
		return model.Course{}, &GenerationError{Stage: "validate", Err: err}
	}

	return buildCourse(outline), nil
}

// buildCourse maps a validated outline into the Course shape. Every lesson
// starts incomplete, unscheduled and without a video.
func buildCourse(outline courseOutline) model.Course {
	modules := make([]model.Module, len(outline.Modules))
	for i, mod := range outline.Modules {
		lessons := make([]model.Lesson, len(mod.Lessons))
		for j, less := range mod.Lessons {
			lessons[j] = model.Lesson{
				ID:        model.NewID(),
				Title:     less.Title,
				Duration:  less.Duration,
				Completed: false,
				Content:   less.Content,
			}
		}
		modules[i] = model.Module{
			ID:      model.NewID(),
			Title:   mod.Title,
			Lessons: lessons,
		}
	}

	course := model.Course{
		ID:          model.NewID(),
		Title:       outline.Title,
		Description: outline.Description,
		Category:    outline.Category,
		ImageURL:    fmt.Sprintf("https://picsum.photos/800/600?random=%d", rand.Intn(1000)),
		CreatedAt:   time.Now().Format(time.RFC3339),
		Modules:     modules,
	}

	return model.CalculateProgress(course)
}
