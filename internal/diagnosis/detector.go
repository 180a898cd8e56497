package diagnosis

import "github.com/abhisek/blockhint/internal/blocktree"

// Detector tests a block tree for one silent-defect pattern.
// Detect must return false, never panic, on trees without its target blocks.
type Detector interface {
	Name() string
	Category() ErrorCategory
	Detect(tree *blocktree.Tree) bool
}

// DefaultDetectors returns detectors in priority order.
// Comparing literals ranks first: a constant condition explains the
// observed behavior more directly than any structural gap around it.
func DefaultDetectors() []Detector {
	return []Detector{
		&ComparingLiteralsDetector{},
		&IncompleteBlocksDetector{},
		&ParameterScopeDetector{},
		&TypeMismatchDetector{},
		&DuplicateParameterDetector{},
	}
}

// RunDetectors executes detectors in order.
// Returns the first match, or ("", "") if no detector fires.
func RunDetectors(detectors []Detector, tree *blocktree.Tree) (ErrorCategory, string) {
	for _, d := range detectors {
		if d.Detect(tree) {
			return d.Category(), d.Name()
		}
	}
	return "", ""
}
