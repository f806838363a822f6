package theme

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestHeading(t *testing.T) {
	out := Heading("Đề kiểm tra")
	assert.Contains(t, out, "ĐỀ KIỂM TRA")
	assert.Equal(t, 2, lipgloss.Height(out), "heading is underlined")
}

func TestField(t *testing.T) {
	out := Field("Model", "gemini-3-pro-preview")
	assert.Contains(t, out, "Model:")
	assert.Contains(t, out, "gemini-3-pro-preview")
}

func TestStatus(t *testing.T) {
	assert.Contains(t, Status(true), "✓")
	assert.Contains(t, Status(false), "✗")
}
