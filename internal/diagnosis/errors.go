package diagnosis

import (
	"fmt"
	"strings"
)

// ErrUnsupportedStatus indicates a status outside {"0", "1"}.
type ErrUnsupportedStatus struct {
	Status Status
}

func (e *ErrUnsupportedStatus) Error() string {
	return fmt.Sprintf("unsupported execution status: %q", e.Status)
}

// ErrUnsupportedLanguage indicates a language with no rule table.
type ErrUnsupportedLanguage struct {
	Language Language
}

func (e *ErrUnsupportedLanguage) Error() string {
	return fmt.Sprintf("unsupported code language: %q", e.Language)
}

// ErrUnrecognizedError indicates a failed run whose error text matched no rule.
type ErrUnrecognizedError struct {
	Language Language
	Message  string
}

func (e *ErrUnrecognizedError) Error() string {
	return fmt.Sprintf("unrecognized %s error: %q", e.Language, lastLine(e.Message))
}

// ErrNoDefectFound indicates a successful run where no detector fired.
type ErrNoDefectFound struct{}

func (e *ErrNoDefectFound) Error() string {
	return "no silent defect found"
}

// lastLine returns the final non-empty line, which carries the exception
// name and message in a Python traceback.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
