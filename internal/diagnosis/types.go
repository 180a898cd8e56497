package diagnosis

// ErrorCategory names one diagnosable error class.
type ErrorCategory string

const (
	CategoryZeroDivision       ErrorCategory = "zero_division_error"
	CategoryOutOfBounds        ErrorCategory = "out_of_bounds_error"
	CategoryTypeError          ErrorCategory = "type_error"
	CategoryNoneType           ErrorCategory = "none_type_error"
	CategoryAmbiguousParameter ErrorCategory = "ambiguous_parameter_name"
	CategoryComparingLiterals  ErrorCategory = "comparing_literals_error"
	CategoryIncompleteBlocks   ErrorCategory = "incomplete_block_sequences_error"
	CategoryParameterScope     ErrorCategory = "parameter_out_of_scope_error"
)

// Language is the authoring language the block program was generated into.
type Language string

const (
	LanguagePython  Language = "Python"
	LanguageArduino Language = "Arduino"
)

// SupportedLanguages returns the languages with a runtime rule table.
func SupportedLanguages() []Language {
	return []Language{LanguagePython, LanguageArduino}
}

// Supported reports whether l has a runtime rule table.
func (l Language) Supported() bool {
	_, ok := runtimeRules[l]
	return ok
}

// Status is the upstream execution status.
type Status string

const (
	StatusSuccess Status = "0" // ran to completion; may still hide a silent defect
	StatusFailure Status = "1" // crashed with a runtime error
)

// Outcome is what the upstream run produced.
type Outcome struct {
	ErrorText string
	Output    string
	Status    Status
	Language  Language
}

// Diagnosis is the result of classifying an outcome.
type Diagnosis struct {
	Category  ErrorCategory
	MatchedBy string // rule substring or detector name that fired
}
