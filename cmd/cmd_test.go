package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thcsdongtra/examgen/internal/examgen"
)

func newExamCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	addExamFlags(c.Flags())
	require.NoError(t, c.Flags().Parse(args))
	return c
}

func TestExamFromFlags(t *testing.T) {
	c := newExamCmd(t,
		"--subject", "Toán", "--grade", "6", "--scope", "TOPIC", "--topic", "Số nguyên",
		"--duration", "45 phút", "--school", "THCS Đông Trà")

	exam, err := examFromFlags(c)
	require.NoError(t, err)
	assert.Equal(t, examgen.ScopeTopic, exam.ScopeType)
	assert.Equal(t, "10", exam.Scale, "scale defaults to 10")
	assert.Equal(t, "THCS Đông Trà", exam.School)
}

func TestExamFromFlags_FileWithOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exam.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
subject: Toán
grade: 7
scopeType: MIDTERM_1
duration: 60 phút
scale: 10
school: THCS Đông Trà
`), 0o600))

	c := newExamCmd(t, "--exam", path, "--grade", "8")
	exam, err := examFromFlags(c)
	require.NoError(t, err)
	assert.Equal(t, "8", exam.Grade, "explicit flag wins over file")
	assert.Equal(t, examgen.ScopeMidterm1, exam.ScopeType)
	assert.Equal(t, "60 phút", exam.Duration)
}

func TestExamFromFlags_Invalid(t *testing.T) {
	c := newExamCmd(t, "--subject", "Toán", "--scope", "TOPIC")
	_, err := examFromFlags(c)
	assert.ErrorContains(t, err, "specificTopic is required")
}

func TestWriteSections(t *testing.T) {
	var buf bytes.Buffer
	err := writeSections(&buf, &examgen.ExamResult{
		Matrix:    "MATRIX-BODY",
		SpecTable: "SPEC-BODY",
		ExamPaper: "PAPER-BODY",
		AnswerKey: "KEY-BODY",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "MA TRẬN ĐỀ KIỂM TRA")
	assert.Contains(t, out, "ĐÁP ÁN VÀ HƯỚNG DẪN CHẤM")
	for _, body := range []string{"MATRIX-BODY", "SPEC-BODY", "PAPER-BODY", "KEY-BODY"} {
		assert.Contains(t, out, body)
	}
}

func TestWriteJSON_KeepsMarkup(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, &examgen.ExamResult{Matrix: "<table></table>"}))

	assert.Contains(t, buf.String(), "<table></table>")
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "<table></table>", decoded["matrix"])
}

func TestPromptCommand(t *testing.T) {
	isolateEnv(t)

	out, err := runRoot(t, "prompt", "--schema",
		"--subject", "Toán", "--grade", "6", "--scope", "FINAL_1",
		"--duration", "45 phút", "--school", "THCS Đông Trà")
	require.NoError(t, err)
	assert.Contains(t, out, "- Phạm vi: Cuối học kỳ I")
	assert.Contains(t, out, "THCS ĐÔNG TRÀ")
	assert.Contains(t, out, `"additionalProperties": false`)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "gemini", truncate("gemini", 32))
	got := truncate("mô-hình-tiếng-việt", 5)
	assert.Equal(t, "mô-hì", got)
	assert.True(t, utf8.ValidString(got))
}
