package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/thcsdongtra/examgen/internal/config"
	"github.com/thcsdongtra/examgen/internal/examgen"
)

// addExamFlags registers the flags describing one exam.
func addExamFlags(fs *pflag.FlagSet) {
	fs.String("exam", "", "Read the exam settings from a YAML or JSON file")
	fs.String("subject", "", "Subject, e.g. Toán")
	fs.String("grade", "", "Grade, e.g. 6")
	fs.String("scope", "", "Scope: MIDTERM_1, FINAL_1, MIDTERM_2, FINAL_2 or TOPIC")
	fs.String("topic", "", "Topic to cover when --scope is TOPIC")
	fs.String("duration", "", "Duration, e.g. \"45 phút\"")
	fs.String("scale", "10", "Score scale")
	fs.String("school", "", "School name printed on the paper")
}

// examFromFlags builds an ExamConfig from --exam, then applies any flags set
// explicitly on the command line, and validates the result.
func examFromFlags(cmd *cobra.Command) (examgen.ExamConfig, error) {
	var cfg examgen.ExamConfig
	flags := cmd.Flags()

	if path, _ := flags.GetString("exam"); path != "" {
		loaded, err := config.LoadExam(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	override := func(name string, dst *string) {
		if flags.Changed(name) || *dst == "" {
			*dst, _ = flags.GetString(name)
		}
	}
	override("subject", &cfg.Subject)
	override("grade", &cfg.Grade)
	scope := string(cfg.ScopeType)
	override("scope", &scope)
	cfg.ScopeType = examgen.ScopeType(scope)
	override("topic", &cfg.SpecificTopic)
	override("duration", &cfg.Duration)
	override("scale", &cfg.Scale)
	override("school", &cfg.School)

	return cfg, cfg.Validate()
}
