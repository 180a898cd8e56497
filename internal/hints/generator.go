package hints

import (
	"fmt"
	"net/http"
	"strings"
	"text/template"

	"github.com/abhisek/blockhint/internal/blocktree"
	"github.com/abhisek/blockhint/internal/diagnosis"
)

// Input is what a generator inspects. Tree may be nil when only error text
// is available.
type Input struct {
	Tree      *blocktree.Tree
	ErrorText string
	Language  diagnosis.Language
}

// gatherFunc extracts a category's facts. It returns false when the
// category's defining pattern is absent.
type gatherFunc func(in Input) (ErrorInfo, bool)

// generatorSpec is one entry of the generator table: a fact gatherer and
// the templates for the six sections.
type generatorSpec struct {
	gather   gatherFunc
	sections [sectionCount]string
}

type compiledGenerator struct {
	gather    gatherFunc
	templates [sectionCount]*template.Template
}

func compile(category diagnosis.ErrorCategory, spec generatorSpec) *compiledGenerator {
	g := &compiledGenerator{gather: spec.gather}
	for _, s := range Sections() {
		name := string(category) + "." + s.String()
		g.templates[s] = template.Must(template.New(name).Parse(spec.sections[s]))
	}
	return g
}

// Generator produces the hint for one category and one request.
type Generator struct {
	category diagnosis.ErrorCategory
	compiled *compiledGenerator
	input    Input
}

// Category returns the category this generator serves.
func (g *Generator) Category() diagnosis.ErrorCategory {
	return g.category
}

// GatherFacts extracts the facts the templates need.
func (g *Generator) GatherFacts() (ErrorInfo, error) {
	info, ok := g.compiled.gather(g.input)
	if !ok {
		return nil, &ErrFactsNotFound{Category: g.category}
	}
	return info, nil
}

// Render fills the six sections from info. Missing facts render as
// Placeholder.
func (g *Generator) Render(info ErrorInfo) (*HintDocument, error) {
	if info == nil {
		info = ErrorInfo{}
	}
	doc := &HintDocument{Category: g.category, Info: info, StatusCode: http.StatusOK}
	for _, s := range Sections() {
		var b strings.Builder
		if err := g.compiled.templates[s].Execute(&b, info); err != nil {
			return nil, fmt.Errorf("render %s section: %w", s, err)
		}
		doc.bodies[s] = strings.TrimSpace(b.String())
	}
	return doc, nil
}

// Generate gathers facts and renders them.
func (g *Generator) Generate() (*HintDocument, error) {
	info, err := g.GatherFacts()
	if err != nil {
		return nil, err
	}
	return g.Render(info)
}
