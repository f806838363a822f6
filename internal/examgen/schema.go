package examgen

import "github.com/thcsdongtra/examgen/internal/llm"

// ExamSchema is the response contract sent with every generation request.
var ExamSchema = &llm.Schema{
	Name:        "exam-dossier",
	Description: "Assessment matrix, specification table, exam paper and answer key",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"matrix": map[string]any{
				"type":        "string",
				"description": "Ma trận đề kiểm tra",
			},
			"specTable": map[string]any{
				"type":        "string",
				"description": "Bản đặc tả đề kiểm tra",
			},
			"examPaper": map[string]any{
				"type":        "string",
				"description": "Đề kiểm tra",
			},
			"answerKey": map[string]any{
				"type":        "string",
				"description": "Đáp án và hướng dẫn chấm",
			},
		},
		"required":             []any{"matrix", "specTable", "examPaper", "answerKey"},
		"additionalProperties": false,
	},
}
