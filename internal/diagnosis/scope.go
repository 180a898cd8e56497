package diagnosis

import "github.com/abhisek/blockhint/internal/blocktree"

// ParameterLeak describes a function parameter referenced outside the
// function that declares it.
type ParameterLeak struct {
	Function  *blocktree.Node
	Name      string // function name
	Parameter string
	Total     int // references anywhere in the tree
	InScope   int // references inside the function
}

// FindParameterLeak returns the first parameter, in document order of
// function definitions and then declaration order, that has more
// references tree-wide than inside its function.
func FindParameterLeak(tree *blocktree.Tree) (*ParameterLeak, bool) {
	for _, fn := range tree.FindAll(isFunctionDefinition) {
		for _, param := range Parameters(fn) {
			total := variableReferences(tree.Root, param)
			inScope := variableReferences(fn, param)
			if total > inScope {
				return &ParameterLeak{
					Function:  fn,
					Name:      FunctionName(fn),
					Parameter: param,
					Total:     total,
					InScope:   inScope,
				}, true
			}
		}
	}
	return nil, false
}

// ParameterScopeDetector fires when a parameter leaks out of its function.
type ParameterScopeDetector struct{}

func (d *ParameterScopeDetector) Name() string            { return "parameter-out-of-scope" }
func (d *ParameterScopeDetector) Category() ErrorCategory { return CategoryParameterScope }

func (d *ParameterScopeDetector) Detect(tree *blocktree.Tree) bool {
	_, ok := FindParameterLeak(tree)
	return ok
}
