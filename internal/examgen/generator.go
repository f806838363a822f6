package examgen

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/thcsdongtra/examgen/internal/llm"
	"github.com/thcsdongtra/examgen/internal/logger"
)

// Purpose labels exam generation requests in logs and the audit store.
const Purpose = "exam-gen"

// Config tunes the single generation request.
type Config struct {
	// MaxTokens caps the reply. Zero leaves the provider default.
	MaxTokens int

	// Temperature controls randomness. Zero leaves the provider default.
	Temperature float64
}

// Generator turns an ExamConfig into an ExamResult with one provider call.
// It holds no per-call state and is safe for concurrent use when its
// provider is.
type Generator struct {
	provider llm.Provider
	config   Config
	logger   *slog.Logger
}

// New creates a Generator. A nil logger discards diagnostics.
func New(provider llm.Provider, cfg Config, log *slog.Logger) *Generator {
	if log == nil {
		log = logger.Discard()
	}
	return &Generator{provider: provider, config: cfg, logger: log}
}

// Generate sends one request for cfg and decodes the reply. It never
// retries. On failure it logs the underlying error and returns either
// ErrAuthRequired or ErrGenerationFailed.
func (g *Generator) Generate(ctx context.Context, cfg ExamConfig) (*ExamResult, error) {
	runID := uuid.NewString()
	ctx = llm.WithRunID(llm.WithPurpose(ctx, Purpose), runID)

	req := llm.UserPrompt(BuildPrompt(cfg), ExamSchema)
	req.MaxTokens = g.config.MaxTokens
	req.Temperature = g.config.Temperature

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		g.logFailure(ctx, runID, "provider call", err)
		return nil, classifyCallError(err)
	}

	result, err := Decode(resp.Text())
	if err != nil {
		g.logFailure(ctx, runID, "decode response", err)
		return nil, ErrGenerationFailed
	}

	g.logger.DebugContext(ctx, "exam generated",
		"run_id", runID,
		"model", resp.Model,
		"subject", cfg.Subject,
		"grade", cfg.Grade)

	return result, nil
}

func (g *Generator) logFailure(ctx context.Context, runID, stage string, err error) {
	g.logger.ErrorContext(ctx, "exam generation failed",
		"run_id", runID,
		"stage", stage,
		"model", g.provider.ModelID(),
		"error", err)
}
