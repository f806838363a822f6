package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thcsdongtra/examgen/internal/examgen"
	"github.com/thcsdongtra/examgen/internal/ui/theme"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the prompt and response schema without calling the model",
	RunE: func(cmd *cobra.Command, args []string) error {
		exam, err := examFromFlags(cmd)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, theme.Heading("Prompt"))
		fmt.Fprintln(w, examgen.BuildPrompt(exam))

		if withSchema, _ := cmd.Flags().GetBool("schema"); withSchema {
			def, err := json.MarshalIndent(examgen.ExamSchema.Definition, "", "  ")
			if err != nil {
				return fmt.Errorf("encode schema: %w", err)
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, theme.Heading("Schema "+examgen.ExamSchema.Name))
			fmt.Fprintln(w, string(def))
		}
		return nil
	},
}

func init() {
	addExamFlags(promptCmd.Flags())
	promptCmd.Flags().Bool("schema", false, "Also print the response schema")
}
