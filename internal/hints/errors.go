package hints

import (
	"fmt"

	"github.com/abhisek/blockhint/internal/diagnosis"
)

// ErrFactsNotFound indicates the generator could not find the pattern the
// classifier reported. It points at a disagreement between the two.
type ErrFactsNotFound struct {
	Category diagnosis.ErrorCategory
}

func (e *ErrFactsNotFound) Error() string {
	return fmt.Sprintf("no facts found for category %q", e.Category)
}

// ErrNoGenerator indicates a category without a registered hint generator.
type ErrNoGenerator struct {
	Category diagnosis.ErrorCategory
}

func (e *ErrNoGenerator) Error() string {
	return fmt.Sprintf("no hint generator for category %q", e.Category)
}
