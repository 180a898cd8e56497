// Package hints turns a classified category into a six-section pedagogical
// hint. Each category has one generator that gathers facts from the block
// tree or the error text and renders them through fixed templates.
package hints

import "sort"

// Placeholder is rendered in place of a fact that could not be resolved.
const Placeholder = "(unknown)"

// Fact keys shared across generators.
const (
	FactFunction  = "function"
	FactParameter = "parameter"
	FactLeft      = "left"
	FactRight     = "right"
	FactLeftKind  = "left_kind"
	FactRightKind = "right_kind"
	FactOperator  = "operator"
	FactEnclosing = "enclosing"
	FactBlock     = "block"
	FactReason    = "reason"
	FactStatement = "statement"
	FactOutside   = "outside"
)

// ErrorInfo holds the facts extracted for one hint. It is built per request
// and never shared.
type ErrorInfo map[string]string

// Value returns the fact for key, or Placeholder if it is missing or empty.
func (e ErrorInfo) Value(key string) string {
	if v := e[key]; v != "" {
		return v
	}
	return Placeholder
}

// Has reports whether a non-empty fact exists for key.
func (e ErrorInfo) Has(key string) bool {
	return e[key] != ""
}

// Keys returns the keys with non-empty facts, sorted.
func (e ErrorInfo) Keys() []string {
	keys := make([]string, 0, len(e))
	for k, v := range e {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
