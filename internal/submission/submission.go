// Package submission defines the hint request envelope and validates it
// against a JSON Schema before any diagnosis runs.
package submission

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/blockhint/internal/diagnosis"
)

// Request is the body of a hint request.
type Request struct {
	Code         string `json:"code"`
	Output       string `json:"output"`
	Error        string `json:"error"`
	Status       string `json:"status"`
	CodeLanguage string `json:"code_language,omitempty"`
}

// Response is the body of a hint response.
type Response struct {
	HintText string `json:"hint_text"`
	Category string `json:"category,omitempty"`
}

// ErrInvalidSubmission indicates a body that is not JSON or does not match
// the request schema.
type ErrInvalidSubmission struct {
	Err error
}

func (e *ErrInvalidSubmission) Error() string {
	return fmt.Sprintf("invalid submission: %v", e.Err)
}

func (e *ErrInvalidSubmission) Unwrap() error { return e.Err }

// Decode parses and validates a raw request body. A missing code_language
// defaults to Python.
func Decode(raw []byte) (*Request, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidSubmission{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := getCompiledSchema(requestSchema)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", requestSchema.Name, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, &ErrInvalidSubmission{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, &ErrInvalidSubmission{Err: err}
	}
	if req.CodeLanguage == "" {
		req.CodeLanguage = string(diagnosis.LanguagePython)
	}
	return &req, nil
}

// Outcome returns the execution outcome the classifier consumes.
func (r *Request) Outcome() diagnosis.Outcome {
	lang := r.CodeLanguage
	if lang == "" {
		lang = string(diagnosis.LanguagePython)
	}
	return diagnosis.Outcome{
		ErrorText: r.Error,
		Output:    r.Output,
		Status:    diagnosis.Status(r.Status),
		Language:  diagnosis.Language(lang),
	}
}
