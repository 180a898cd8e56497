package diagnosis

import "github.com/abhisek/blockhint/internal/blocktree"

// DuplicateParameter describes a function declaring a parameter twice.
type DuplicateParameter struct {
	Function  *blocktree.Node
	Name      string // function name
	Parameter string
}

// FindDuplicateParameter returns the first function definition that
// declares a parameter name more than once.
func FindDuplicateParameter(tree *blocktree.Tree) (*DuplicateParameter, bool) {
	for _, fn := range tree.FindAll(isFunctionDefinition) {
		seen := make(map[string]bool)
		for _, p := range Parameters(fn) {
			if seen[p] {
				return &DuplicateParameter{Function: fn, Name: FunctionName(fn), Parameter: p}, true
			}
			seen[p] = true
		}
	}
	return nil, false
}

// DuplicateParameterDetector fires on functions with repeated parameter names.
type DuplicateParameterDetector struct{}

func (d *DuplicateParameterDetector) Name() string            { return "duplicate-parameter" }
func (d *DuplicateParameterDetector) Category() ErrorCategory { return CategoryAmbiguousParameter }

func (d *DuplicateParameterDetector) Detect(tree *blocktree.Tree) bool {
	_, ok := FindDuplicateParameter(tree)
	return ok
}
