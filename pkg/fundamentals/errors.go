package fundamentals

import "fmt"

// ValidationError reports malformed caller input: an empty or blank ticker
// argument, an unknown statement kind, or a missing API key. It is always
// raised before any network activity.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "fundamentals: " + e.Reason
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
