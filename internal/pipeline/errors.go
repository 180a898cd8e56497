package pipeline

import (
	"errors"

	"github.com/abhisek/blockhint/internal/blocktree"
	"github.com/abhisek/blockhint/internal/diagnosis"
	"github.com/abhisek/blockhint/internal/hints"
)

// NoHintAvailable reports whether err means "no rule matched": the input
// was acceptable but no hint could be composed for it.
func NoHintAvailable(err error) bool {
	var (
		unrecognized *diagnosis.ErrUnrecognizedError
		noDefect     *diagnosis.ErrNoDefectFound
		noGenerator  *hints.ErrNoGenerator
		noFacts      *hints.ErrFactsNotFound
	)
	return errors.As(err, &unrecognized) ||
		errors.As(err, &noDefect) ||
		errors.As(err, &noGenerator) ||
		errors.As(err, &noFacts)
}

// IsMalformed reports whether err means the block tree did not parse.
func IsMalformed(err error) bool {
	var malformed *blocktree.ErrMalformedInput
	return errors.As(err, &malformed)
}

// IsUnsupported reports whether err means the status or language is outside
// the supported set.
func IsUnsupported(err error) bool {
	var (
		status *diagnosis.ErrUnsupportedStatus
		lang   *diagnosis.ErrUnsupportedLanguage
	)
	return errors.As(err, &status) || errors.As(err, &lang)
}
