package generator

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursemaster/config"
	"coursemaster/model"
	"coursemaster/services"
	"coursemaster/utils/response"
)

type memStore struct {
	courses []model.Course
}

func (m *memStore) Init() error                              { return nil }
func (m *memStore) Close() error                             { return nil }
func (m *memStore) HealthCheck() error                       { return nil }
func (m *memStore) LoadCourses() ([]model.Course, error)     { return m.courses, nil }
func (m *memStore) SaveCourses(courses []model.Course) error { m.courses = courses; return nil }

func newTestApp(store *memStore, env *config.EnviornmentVariable) *fiber.App {
	app := fiber.New()
	courseService := services.NewCourseService(store)
	handler := NewGeneratorHandler(courseService, services.NewTemplateService(), services.NewGeneratorService(env))

	app.Post("/api/v1/courses/template", handler.ImportTemplate)
	app.Post("/api/v1/courses/generate", handler.GenerateCourse)

	return app
}

func postJSON(t *testing.T, app *fiber.App, target, body string) (*http.Response, response.Response) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	var envelope response.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func TestImportTemplate(t *testing.T) {
	store := &memStore{}
	app := newTestApp(store, &config.EnviornmentVariable{})

	resp, envelope := postJSON(t, app, "/api/v1/courses/template", "")

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, envelope.Success)
	require.Len(t, store.courses, 1)
	assert.Equal(t, "JavaScript - Curso em Vídeo", store.courses[0].Title)
	assert.Equal(t, 18, store.courses[0].TotalLessons)
}

func TestImportTemplatePrepends(t *testing.T) {
	store := &memStore{courses: []model.Course{{ID: "existing", Title: "Existing"}}}
	app := newTestApp(store, &config.EnviornmentVariable{})

	postJSON(t, app, "/api/v1/courses/template", "")

	require.Len(t, store.courses, 2)
	assert.Equal(t, "JavaScript - Curso em Vídeo", store.courses[0].Title)
	assert.Equal(t, "existing", store.courses[1].ID)
}

func TestGenerateCourseTopicRequired(t *testing.T) {
	app := newTestApp(&memStore{}, &config.EnviornmentVariable{})

	resp, envelope := postJSON(t, app, "/api/v1/courses/generate", `{"topic":""}`)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)

	fields, ok := envelope.Error.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Topic is required", fields["topic"])
}

func TestGenerateCourseNotConfigured(t *testing.T) {
	app := newTestApp(&memStore{}, &config.EnviornmentVariable{}) // no GEMINI_API_KEY

	resp, envelope := postJSON(t, app, "/api/v1/courses/generate", `{"topic":"graph theory"}`)

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "SERVICE_UNAVAILABLE", envelope.Error.Code)
	assert.Contains(t, envelope.Error.Message, "not configured")
}

func TestGenerateCourseUpstreamFailure(t *testing.T) {
	// a configured key pointed at a dead endpoint -> generation error kind
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	env := &config.EnviornmentVariable{
		GEMINI_API_KEY:  "test-key",
		GEMINI_BASE_URL: server.URL,
	}
	app := newTestApp(&memStore{}, env)

	resp, envelope := postJSON(t, app, "/api/v1/courses/generate", `{"topic":"graph theory"}`)

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "BAD_GATEWAY", envelope.Error.Code)
	assert.Contains(t, envelope.Error.Message, "try again")
}

func TestGenerateCourseSuccess(t *testing.T) {
	outline := `{"title":"Graph Theory 101","description":"Vertices and edges","category":"Math",` +
		`"modules":[{"title":"Foundations","lessons":[` +
		`{"title":"What is a graph?","duration":"15 min","content":"Definitions"},` +
		`{"title":"Degrees","duration":"10 min","content":"Counting edges"}]}]}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := json.Marshal(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": outline}},
				}},
			},
		})
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}))
	defer server.Close()

	store := &memStore{}
	env := &config.EnviornmentVariable{
		GEMINI_API_KEY:  "test-key",
		GEMINI_BASE_URL: server.URL,
	}
	app := newTestApp(store, env)

	resp, envelope := postJSON(t, app, "/api/v1/courses/generate", `{"topic":"graph theory"}`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, envelope.Success)
	require.Len(t, store.courses, 1)
	assert.Equal(t, "Graph Theory 101", store.courses[0].Title)
	assert.Equal(t, 2, store.courses[0].TotalLessons)
	assert.Equal(t, 0, store.courses[0].Progress)
}
