package hints

import (
	"sort"

	"github.com/abhisek/blockhint/internal/blocktree"
	"github.com/abhisek/blockhint/internal/diagnosis"
)

// builtinGenerators holds the compiled generator table. Templates are
// immutable once parsed.
var builtinGenerators = compileAll(generatorSpecs)

func compileAll(specs map[diagnosis.ErrorCategory]generatorSpec) map[diagnosis.ErrorCategory]*compiledGenerator {
	out := make(map[diagnosis.ErrorCategory]*compiledGenerator, len(specs))
	for cat, spec := range specs {
		out[cat] = compile(cat, spec)
	}
	return out
}

// Factory selects the generator for a classified category.
type Factory struct {
	generators map[diagnosis.ErrorCategory]*compiledGenerator
}

// NewFactory returns a factory that must serve every category in
// categories. It fails with *ErrNoGenerator for the first category, in
// the given order, that has no generator.
func NewFactory(categories []diagnosis.ErrorCategory) (*Factory, error) {
	return newFactory(builtinGenerators, categories)
}

func newFactory(generators map[diagnosis.ErrorCategory]*compiledGenerator, categories []diagnosis.ErrorCategory) (*Factory, error) {
	for _, cat := range categories {
		if _, ok := generators[cat]; !ok {
			return nil, &ErrNoGenerator{Category: cat}
		}
	}
	return &Factory{generators: generators}, nil
}

// DefaultFactory returns a factory covering the whole taxonomy. It panics
// if the generator table has drifted from the taxonomy.
func DefaultFactory() *Factory {
	f, err := NewFactory(TaxonomyIDs())
	if err != nil {
		panic(err)
	}
	return f
}

// TaxonomyIDs returns every category ID in the taxonomy, sorted.
func TaxonomyIDs() []diagnosis.ErrorCategory {
	all := diagnosis.AllCategories()
	ids := make([]diagnosis.ErrorCategory, len(all))
	for i, c := range all {
		ids[i] = c.ID
	}
	return ids
}

// Create returns the generator for category bound to one request's input.
func (f *Factory) Create(category diagnosis.ErrorCategory, tree *blocktree.Tree, errorText string, lang diagnosis.Language) (*Generator, error) {
	g, ok := f.generators[category]
	if !ok {
		return nil, &ErrNoGenerator{Category: category}
	}
	return &Generator{
		category: category,
		compiled: g,
		input:    Input{Tree: tree, ErrorText: errorText, Language: lang},
	}, nil
}

// Categories returns the categories this factory can serve, sorted.
func (f *Factory) Categories() []diagnosis.ErrorCategory {
	out := make([]diagnosis.ErrorCategory, 0, len(f.generators))
	for cat := range f.generators {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
