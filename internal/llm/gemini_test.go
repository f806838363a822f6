package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-pro", "gemini-3-pro-preview"},
		{"gemini-flash", "gemini-3-flash-preview"},
		{"gemini-2.5-pro", "gemini-2.5-pro"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"matrix":    map[string]any{"type": "string"},
			"examPaper": map[string]any{"type": "string", "description": "questions"},
			"level":     map[string]any{"type": "string", "enum": []any{"A", "B"}},
			"scores": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "number"},
			},
		},
		"required": []any{"matrix", "examPaper"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["matrix"].Type != "STRING" {
		t.Fatalf("expected STRING for matrix, got %s", schema.Properties["matrix"].Type)
	}
	if schema.Properties["examPaper"].Description != "questions" {
		t.Fatalf("expected description to carry over")
	}
	if len(schema.Properties["level"].Enum) != 2 {
		t.Fatalf("expected 2 enum values, got %d", len(schema.Properties["level"].Enum))
	}
	if schema.Properties["scores"].Items.Type != "NUMBER" {
		t.Fatalf("expected NUMBER for scores items, got %s", schema.Properties["scores"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func newTestGeminiProvider(t *testing.T, handler http.HandlerFunc) *GeminiProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewGeminiProvider(context.Background(), GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-pro",
		BaseURL: server.URL,
	})
	if err != nil {
		t.Fatalf("create provider: %v", err)
	}
	return p
}

func TestGeminiProvider_HappyPath(t *testing.T) {
	var gotBody map[string]any
	handler := func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{
					"content": map[string]any{
						"role":  "model",
						"parts": []map[string]any{{"text": "```json\n{\"matrix\":\"M\"}\n```"}},
					},
					"finishReason": "STOP",
				},
			},
			"usageMetadata": map[string]any{
				"promptTokenCount":     120,
				"candidatesTokenCount": 80,
				"totalTokenCount":      200,
			},
		})
	}

	p := newTestGeminiProvider(t, handler)
	resp, err := p.Generate(context.Background(), UserPrompt("Soạn đề", &Schema{
		Name:       "gemini-happy",
		Definition: map[string]any{"type": "object"},
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(resp.Text(), `{"matrix":"M"}`) {
		t.Fatalf("unexpected content %q", resp.Text())
	}
	if resp.Usage.InputTokens != 120 || resp.Usage.OutputTokens != 80 {
		t.Fatalf("unexpected usage %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp.StopReason)
	}

	cfg, _ := gotBody["generationConfig"].(map[string]any)
	if cfg["responseMimeType"] != "application/json" {
		t.Fatalf("expected JSON mime type in request, got %v", cfg["responseMimeType"])
	}
}

func TestGeminiProvider_NotFound(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    404,
				"message": "Requested entity was not found.",
				"status":  "NOT_FOUND",
			},
		})
	}

	p := newTestGeminiProvider(t, handler)
	_, err := p.Generate(context.Background(), UserPrompt("x", nil))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected 404 in error message, got %v", err)
	}
}

func TestGeminiProvider_RequiresKey(t *testing.T) {
	_, err := NewGeminiProvider(context.Background(), GeminiConfig{})
	if err == nil {
		t.Fatal("expected error for missing key")
	}
}

func TestMapGeminiError_Fallback(t *testing.T) {
	err := mapGeminiError(errors.New("dial tcp: connection refused"))
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}
