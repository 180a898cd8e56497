package hints

import (
	"strings"

	"github.com/abhisek/blockhint/internal/diagnosis"
)

// Extractor recovers the offending source statement from runtime error
// text. Extraction is best-effort: callers render a placeholder when it
// fails.
type Extractor interface {
	Statement(errorText string) (string, bool)
}

// ExtractorFunc adapts a function to Extractor.
type ExtractorFunc func(errorText string) (string, bool)

func (f ExtractorFunc) Statement(errorText string) (string, bool) { return f(errorText) }

// ExtractorFor returns the extractor for a language's error format.
// Unknown languages use the traceback convention.
func ExtractorFor(lang diagnosis.Language) Extractor {
	if lang == diagnosis.LanguageArduino {
		return ExtractorFunc(compilerStatement)
	}
	return ExtractorFunc(tracebackStatement)
}

func nonEmptyLines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// tracebackStatement returns the second-to-last non-empty line. A Python
// traceback echoes the failing statement right above the exception line.
func tracebackStatement(errorText string) (string, bool) {
	lines := nonEmptyLines(errorText)
	if len(lines) < 2 {
		return "", false
	}
	return lines[len(lines)-2], true
}

// compilerStatement returns the source line gcc echoes below the first
// diagnostic, skipping the caret marker line.
func compilerStatement(errorText string) (string, bool) {
	lines := nonEmptyLines(errorText)
	for i, l := range lines {
		if !strings.Contains(l, "error:") && !strings.Contains(l, "warning:") {
			continue
		}
		if i+1 < len(lines) && !isCaretLine(lines[i+1]) {
			return stripGutter(lines[i+1]), true
		}
		break
	}
	return tracebackStatement(errorText)
}

func isCaretLine(l string) bool {
	return strings.Trim(l, "^~ |") == ""
}

// stripGutter removes the "  5 | " line-number gutter newer gcc prints.
func stripGutter(l string) string {
	num, rest, ok := strings.Cut(l, "|")
	if !ok || strings.Trim(num, " 0123456789") != "" || strings.TrimSpace(num) == "" {
		return l
	}
	return strings.TrimSpace(rest)
}
