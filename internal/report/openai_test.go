package report

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

const testMarkdown = "### 1. Incident Overview\n\nCPU saturation caused a latency spike."

type fakeOpenAI struct {
	mu       sync.Mutex
	calls    int
	bodies   []string
	status   int
	response string
}

func (f *fakeOpenAI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.calls++
	f.bodies = append(f.bodies, string(body))
	status := f.status
	response := f.response
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(response))
}

func (f *fakeOpenAI) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls
}

func (f *fakeOpenAI) lastBody() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.bodies) == 0 {
		return ""
	}
	return f.bodies[len(f.bodies)-1]
}

func completionJSON(content string) string {
	resp := map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message": map[string]any{
				"role":    "assistant",
				"content": content,
			},
		}},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		panic(err)
	}
	return string(data)
}

func newTestGenerator(t *testing.T, fake *fakeOpenAI) *OpenAIGenerator {
	t.Helper()

	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	generator, err := NewOpenAIGenerator(OpenAIConfig{
		APIKey:      "test-key",
		Model:       "gpt-4o-mini",
		Temperature: 0.1,
		BaseURL:     server.URL,
	})
	if err != nil {
		t.Fatalf("failed to create generator: %v", err)
	}

	return generator
}

func TestOpenAIGeneratorReturnsContentVerbatim(t *testing.T) {
	fake := &fakeOpenAI{status: http.StatusOK, response: completionJSON(testMarkdown)}
	generator := newTestGenerator(t, fake)

	transcript := "10:00 AM Li reports latency spike. 10:10 AM Li confirms CPU at 100%."

	markdown, err := generator.Generate(context.Background(), transcript)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if markdown != testMarkdown {
		t.Fatalf("expected service content verbatim, got %q", markdown)
	}

	if got := fake.callCount(); got != 1 {
		t.Fatalf("expected exactly one outbound request, got %d", got)
	}

	var payload struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		Temperature float64 `json:"temperature"`
	}
	if err := json.Unmarshal([]byte(fake.lastBody()), &payload); err != nil {
		t.Fatalf("failed to decode request body: %v", err)
	}

	if payload.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected model: %q", payload.Model)
	}
	if payload.Temperature != 0.1 {
		t.Fatalf("unexpected temperature: %v", payload.Temperature)
	}
	if len(payload.Messages) != 1 || payload.Messages[0].Role != "user" {
		t.Fatalf("expected a single user message, got %+v", payload.Messages)
	}
	if !strings.Contains(payload.Messages[0].Content, transcript) {
		t.Fatalf("prompt does not contain the transcript verbatim")
	}
}

func TestOpenAIGeneratorServiceError(t *testing.T) {
	fake := &fakeOpenAI{
		status:   http.StatusUnauthorized,
		response: `{"error":{"message":"invalid api key","type":"invalid_request_error"}}`,
	}
	generator := newTestGenerator(t, fake)

	if _, err := generator.Generate(context.Background(), "some transcript"); err == nil {
		t.Fatalf("expected error for unauthorized response")
	}
}

func TestOpenAIGeneratorMissingChoices(t *testing.T) {
	fake := &fakeOpenAI{
		status:   http.StatusOK,
		response: `{"id":"chatcmpl-test","object":"chat.completion","choices":[]}`,
	}
	generator := newTestGenerator(t, fake)

	if _, err := generator.Generate(context.Background(), "some transcript"); err == nil {
		t.Fatalf("expected error for empty choices")
	}
}

func TestOpenAIGeneratorEmptyContent(t *testing.T) {
	fake := &fakeOpenAI{status: http.StatusOK, response: completionJSON("  \n")}
	generator := newTestGenerator(t, fake)

	if _, err := generator.Generate(context.Background(), "some transcript"); err == nil {
		t.Fatalf("expected error for blank content")
	}
}

func TestOpenAIGeneratorRejectsBlankTranscript(t *testing.T) {
	fake := &fakeOpenAI{status: http.StatusOK, response: completionJSON(testMarkdown)}
	generator := newTestGenerator(t, fake)

	for _, transcript := range []string{"", "   ", "\n\t "} {
		if _, err := generator.Generate(context.Background(), transcript); err == nil {
			t.Fatalf("expected error for blank transcript %q", transcript)
		}
	}

	if got := fake.callCount(); got != 0 {
		t.Fatalf("expected no outbound requests for blank transcripts, got %d", got)
	}
}

func TestNewOpenAIGeneratorRequiresModel(t *testing.T) {
	if _, err := NewOpenAIGenerator(OpenAIConfig{APIKey: "test-key"}); err == nil {
		t.Fatalf("expected error for missing model")
	}
}
