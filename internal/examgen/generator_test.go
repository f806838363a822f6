package examgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thcsdongtra/examgen/internal/llm"
)

const validReply = "```json\n" +
	`{"matrix":"<table><tr><td>Số nguyên</td></tr></table>","specTable":"<table><tr><td>Nhận biết</td></tr></table>","examPaper":"THCS ĐÔNG TRÀ\nCâu 1.","answerKey":"Câu 1: A"}` +
	"\n```"

func newTestGenerator(p llm.Provider) (*Generator, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(p, Config{MaxTokens: 4096, Temperature: 0.4}, logger), &buf
}

func TestGenerate_Success(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText(validReply))
	gen, _ := newTestGenerator(mock)

	result, err := gen.Generate(context.Background(), dongTraConfig())
	require.NoError(t, err)

	assert.Equal(t, "<table><tr><td>Số nguyên</td></tr></table>", result.Matrix)
	assert.Equal(t, "<table><tr><td>Nhận biết</td></tr></table>", result.SpecTable)
	assert.Equal(t, "THCS ĐÔNG TRÀ\nCâu 1.", result.ExamPaper)
	assert.Equal(t, "Câu 1: A", result.AnswerKey)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, ExamSchema, req.Schema)
	assert.Equal(t, 4096, req.MaxTokens)
	assert.InDelta(t, 0.4, req.Temperature, 1e-9)
	assert.Contains(t, mock.LastPrompt(), "- Phạm vi: Số nguyên")
	assert.Contains(t, mock.LastPrompt(), "THCS ĐÔNG TRÀ")
}

func TestGenerate_DongTraScenario(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText(`{"matrix":"M","specTable":"S","examPaper":"E","answerKey":"A"}`))
	gen, _ := newTestGenerator(mock)

	result, err := gen.Generate(context.Background(), dongTraConfig())
	require.NoError(t, err)
	assert.Equal(t, &ExamResult{Matrix: "M", SpecTable: "S", ExamPaper: "E", AnswerKey: "A"}, result)

	prompt := mock.LastPrompt()
	assert.Contains(t, prompt, "Số nguyên")
	assert.Contains(t, prompt, "THCS ĐÔNG TRÀ")
}

func TestGenerate_NotFoundIsAuthRequired(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockError(&llm.ErrNotFound{Err: errors.New("models/gemini-3-pro-preview is not found")}),
	)
	gen, _ := newTestGenerator(mock)

	result, err := gen.Generate(context.Background(), dongTraConfig())
	assert.Nil(t, result)
	assert.Same(t, ErrAuthRequired, err)
	assert.Equal(t, "AUTH_REQUIRED", err.Error())
}

func TestGenerate_EntityNotFoundMessageIsAuthRequired(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockError(errors.New("Requested entity was not found.")))
	gen, _ := newTestGenerator(mock)

	_, err := gen.Generate(context.Background(), dongTraConfig())
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestGenerate_NetworkErrorIsGeneric(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockError(errors.New("network timeout")))
	gen, logs := newTestGenerator(mock)

	_, err := gen.Generate(context.Background(), dongTraConfig())
	require.Error(t, err)
	assert.Same(t, ErrGenerationFailed, err)
	assert.Equal(t, "Không thể tạo nội dung. Vui lòng kiểm tra kết nối hoặc thử lại.", err.Error())
	assert.NotContains(t, err.Error(), "network timeout")

	assert.Contains(t, logs.String(), "network timeout")
	assert.Contains(t, logs.String(), "stage=\"provider call\"")
}

func TestGenerate_MalformedReplyIsGeneric(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText(`{"matrix": "M", "specTable": `))
	gen, logs := newTestGenerator(mock)

	result, err := gen.Generate(context.Background(), dongTraConfig())
	assert.Nil(t, result)
	assert.Same(t, ErrGenerationFailed, err)
	assert.Contains(t, logs.String(), "stage=\"decode response\"")
}

func TestGenerate_DecodeErrorMentioning404IsStillGeneric(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText(`{"matrix":"404","specTable":"S"}`))
	gen, _ := newTestGenerator(mock)

	_, err := gen.Generate(context.Background(), dongTraConfig())
	assert.Same(t, ErrGenerationFailed, err)
}

func TestGenerate_EmptyReplyIsGeneric(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText("```json\n```"))
	gen, _ := newTestGenerator(mock)

	_, err := gen.Generate(context.Background(), dongTraConfig())
	assert.Same(t, ErrGenerationFailed, err)
}

func TestGenerate_SingleAttempt(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockError(&llm.ErrProviderUnavailable{Err: errors.New("503")}),
		llm.MockText(validReply),
	)
	gen, _ := newTestGenerator(mock)

	_, err := gen.Generate(context.Background(), dongTraConfig())
	assert.Same(t, ErrGenerationFailed, err)
	assert.Equal(t, 1, mock.CallCount(), "failed call is not retried")
}

func TestGenerate_TagsContext(t *testing.T) {
	var purpose, runID string
	p := providerFunc(func(ctx context.Context, _ llm.Request) (*llm.Response, error) {
		purpose = llm.PurposeFrom(ctx)
		runID = llm.RunIDFrom(ctx)
		return &llm.Response{Content: json.RawMessage(validReply)}, nil
	})
	gen, _ := newTestGenerator(p)

	_, err := gen.Generate(context.Background(), dongTraConfig())
	require.NoError(t, err)
	assert.Equal(t, Purpose, purpose)
	assert.Len(t, runID, 36)
}

func TestGenerate_NilLogger(t *testing.T) {
	gen := New(llm.NewMockProvider(llm.MockError(errors.New("boom"))), Config{}, nil)
	_, err := gen.Generate(context.Background(), dongTraConfig())
	assert.Same(t, ErrGenerationFailed, err)
}

func TestGenerate_GeminiNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    404,
				"message": "Requested entity was not found.",
				"status":  "NOT_FOUND",
			},
		})
	}))
	t.Cleanup(server.Close)

	provider, err := llm.NewGeminiProvider(context.Background(), llm.GeminiConfig{
		APIKey:  "expired-key",
		Model:   "gemini-pro",
		BaseURL: server.URL,
	})
	require.NoError(t, err)

	gen, _ := newTestGenerator(provider)
	_, err = gen.Generate(context.Background(), dongTraConfig())
	assert.Same(t, ErrAuthRequired, err)
}

func TestIsAuthRequired(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"status code", errors.New("HTTP 404"), true},
		{"entity message", errors.New("Requested entity was not found."), true},
		{"wrapped not found", &llm.ErrNotFound{Err: errors.New("x")}, true},
		{"rate limit", &llm.ErrRateLimit{Err: errors.New("429")}, false},
		{"timeout", errors.New("network timeout"), false},
		{"case sensitive", errors.New("requested entity was not found"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAuthRequired(tt.err))
		})
	}
}

type providerFunc func(ctx context.Context, req llm.Request) (*llm.Response, error)

func (f providerFunc) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	return f(ctx, req)
}

func (f providerFunc) ModelID() string { return "func" }
