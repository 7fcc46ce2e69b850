package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateResponse(text string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"role":  "model",
					"parts": []map[string]string{{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	})
	return string(body)
}

func TestGenerateContent(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(candidateResponse(`{"title":"Go Basics"}`)))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	schema := &Schema{Type: TypeObject, Properties: map[string]*Schema{
		"title": {Type: TypeString},
	}}

	text, err := client.GenerateContent(context.Background(), "make a course", schema)

	require.NoError(t, err)
	assert.Equal(t, `{"title":"Go Basics"}`, text)
	assert.Equal(t, "/v1beta/models/"+DefaultModel+":generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "make a course", gotBody.Contents[0].Parts[0].Text)
	require.NotNil(t, gotBody.GenerationConfig)
	assert.Equal(t, "application/json", gotBody.GenerationConfig.ResponseMIMEType)
	assert.Equal(t, TypeObject, gotBody.GenerationConfig.ResponseSchema.Type)
}

func TestGenerateContentNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})

	_, err := client.GenerateContent(context.Background(), "make a course", nil)

	assert.ErrorContains(t, err, "no candidates")
}

func TestGenerateContentEmptyText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(candidateResponse("")))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})

	_, err := client.GenerateContent(context.Background(), "make a course", nil)

	assert.ErrorContains(t, err, "no usable text")
}

func TestGenerateContentAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "bad-key", BaseURL: server.URL})

	_, err := client.GenerateContent(context.Background(), "make a course", nil)

	assert.ErrorContains(t, err, "PERMISSION_DENIED")
}

func TestGenerateContentTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})

	_, err := client.GenerateContent(context.Background(), "make a course", nil)

	assert.ErrorContains(t, err, "request failed")
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Config{APIKey: "k"})

	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, DefaultModel, client.model)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
}
