package hints

import (
	"net/http"
	"strings"

	"github.com/abhisek/blockhint/internal/diagnosis"
)

// NoHintMessage is the fallback text when no hint can be composed.
const NoHintMessage = "No hint found for this error."

// Section identifies one of the six fixed parts of a hint.
type Section int

const (
	SectionGeneral Section = iota
	SectionLocation
	SectionData
	SectionTransformation
	SectionBehavior
	SectionExample

	sectionCount
)

var sectionLabels = [sectionCount]string{
	SectionGeneral:        "",
	SectionLocation:       "Location hint:",
	SectionData:           "Data hint:",
	SectionTransformation: "Transformation hint:",
	SectionBehavior:       "Behavior hint:",
	SectionExample:        "Example hint:",
}

var sectionNames = [sectionCount]string{
	SectionGeneral:        "general",
	SectionLocation:       "location",
	SectionData:           "data",
	SectionTransformation: "transformation",
	SectionBehavior:       "behavior",
	SectionExample:        "example",
}

// Sections returns every section in rendering order.
func Sections() []Section {
	out := make([]Section, sectionCount)
	for i := range out {
		out[i] = Section(i)
	}
	return out
}

// String returns the section's short name, e.g. "location".
func (s Section) String() string {
	if s < 0 || s >= sectionCount {
		return "unknown"
	}
	return sectionNames[s]
}

// Label returns the heading that prefixes the section, "" for general.
func (s Section) Label() string {
	if s < 0 || s >= sectionCount {
		return ""
	}
	return sectionLabels[s]
}

// HintDocument is a rendered hint plus an HTTP-style status code.
type HintDocument struct {
	Category   diagnosis.ErrorCategory
	Info       ErrorInfo
	StatusCode int

	bodies [sectionCount]string
}

// NotFound returns the document used when no hint is available.
func NotFound() *HintDocument {
	return &HintDocument{StatusCode: http.StatusNotFound}
}

// Found reports whether the document carries a composed hint.
func (d *HintDocument) Found() bool {
	return d.StatusCode == http.StatusOK
}

// Body returns a section's text without its label.
func (d *HintDocument) Body(s Section) string {
	if s < 0 || s >= sectionCount {
		return ""
	}
	return d.bodies[s]
}

// Text returns a section with its label.
func (d *HintDocument) Text(s Section) string {
	body := d.Body(s)
	if l := s.Label(); l != "" {
		return l + " " + body
	}
	return body
}

// String renders the sections in order, separated by blank lines.
func (d *HintDocument) String() string {
	if !d.Found() {
		return NoHintMessage
	}
	parts := make([]string, 0, sectionCount)
	for _, s := range Sections() {
		parts = append(parts, d.Text(s))
	}
	return strings.Join(parts, "\n\n")
}
