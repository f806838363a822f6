package examgen

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/thcsdongtra/examgen/internal/llm"
)

const (
	fenceOpenJSON = "```json"
	fence         = "```"
)

// Sanitize strips every JSON fence opener and fence closer from text and
// trims surrounding whitespace. Removal repeats until no fence is left, so
// Sanitize(Sanitize(x)) == Sanitize(x) even when removing one fence joins
// stray backticks into another.
func Sanitize(text string) string {
	for strings.Contains(text, fence) {
		text = strings.ReplaceAll(text, fenceOpenJSON, "")
		text = strings.ReplaceAll(text, fence, "")
	}
	return strings.TrimSpace(text)
}

// Decode sanitizes a raw model reply and decodes it into an ExamResult.
// The reply must satisfy ExamSchema; no repair is attempted.
func Decode(text string) (*ExamResult, error) {
	clean := Sanitize(text)
	if clean == "" {
		return nil, errors.New("empty response")
	}

	raw := json.RawMessage(clean)
	if err := llm.ValidateResponse(ExamSchema, raw); err != nil {
		return nil, err
	}

	var result ExamResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode exam result: %w", err)
	}
	return &result, nil
}
