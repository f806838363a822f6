package examgen

import (
	"errors"
	"strings"
)

var (
	// ErrAuthRequired means the provider no longer accepts the caller's
	// credentials for the requested model. Callers should ask for a new key.
	ErrAuthRequired = errors.New("AUTH_REQUIRED")

	// ErrGenerationFailed covers every other failure. The message is shown to
	// end users as-is.
	ErrGenerationFailed = errors.New("Không thể tạo nội dung. Vui lòng kiểm tra kết nối hoặc thử lại.")
)

// authFailureMarkers are substrings of provider error messages that signal a
// missing or unauthorized resource.
var authFailureMarkers = []string{
	"Requested entity was not found",
	"404",
}

// IsAuthRequired reports whether a provider error means the credentials need
// renewing. It matches on message text, which depends on the provider's
// wording; keep all such matching here.
func IsAuthRequired(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range authFailureMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// classifyCallError maps a failed provider call onto the public error kinds.
func classifyCallError(err error) error {
	if IsAuthRequired(err) {
		return ErrAuthRequired
	}
	return ErrGenerationFailed
}
