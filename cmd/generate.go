package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thcsdongtra/examgen/internal/examgen"
	"github.com/thcsdongtra/examgen/internal/llm"
	"github.com/thcsdongtra/examgen/internal/store"
	"github.com/thcsdongtra/examgen/internal/ui/theme"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the matrix, specification table, exam paper and answer key",
	Example: `  examgen generate --subject "Toán" --grade 6 --scope TOPIC --topic "Số nguyên" \
    --duration "45 phút" --school "THCS Đông Trà"
  examgen generate --exam exam.yaml --format json --out dossier.json`,
	RunE: runGenerate,
}

func init() {
	addExamFlags(generateCmd.Flags())
	generateCmd.Flags().StringP("format", "f", "text", "Output format: text or json")
	generateCmd.Flags().StringP("out", "o", "", "Write the result to a file instead of stdout")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	exam, err := examFromFlags(cmd)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}

	var repo store.EventRepo
	if appConfig.Store.Enabled {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		repo = s.EventRepo()
	}

	provider, err := llm.NewProvider(ctx, appConfig.Provider(), repo, appLog)
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	gen := examgen.New(provider, appConfig.Generation(), appLog)
	result, err := gen.Generate(ctx, exam)
	if errors.Is(err, examgen.ErrAuthRequired) {
		return fmt.Errorf("%w: the API key was rejected or cannot reach model %s; set a new API_KEY and retry",
			err, provider.ModelID())
	}
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}

	if format == "json" {
		return writeJSON(w, result)
	}
	return writeSections(w, result)
}

func writeJSON(w io.Writer, result *examgen.ExamResult) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func writeSections(w io.Writer, result *examgen.ExamResult) error {
	sections := []struct {
		title string
		body  string
	}{
		{"Ma trận đề kiểm tra", result.Matrix},
		{"Bản đặc tả", result.SpecTable},
		{"Đề kiểm tra", result.ExamPaper},
		{"Đáp án và hướng dẫn chấm", result.AnswerKey},
	}
	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n", theme.Heading(s.title), s.body); err != nil {
			return err
		}
	}
	return nil
}
