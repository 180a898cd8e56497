package diagnosis

import "github.com/abhisek/blockhint/internal/blocktree"

// Classifier maps an execution outcome and its block tree to one category.
// It holds only immutable tables and is safe for concurrent use.
type Classifier struct {
	rules     map[Language][]Rule
	detectors []Detector
}

// NewClassifier returns a classifier with the default rule tables and
// detector order.
func NewClassifier() *Classifier {
	return &Classifier{
		rules:     runtimeRules,
		detectors: DefaultDetectors(),
	}
}

// Detectors returns the detectors in the order they run.
func (c *Classifier) Detectors() []Detector {
	out := make([]Detector, len(c.detectors))
	copy(out, c.detectors)
	return out
}

// Classify branches on language, then on status. A failed run is matched
// against the language's runtime rules; a successful run is handed to the
// structural detectors. tree may be nil for failed runs.
func (c *Classifier) Classify(outcome Outcome, tree *blocktree.Tree) (Diagnosis, error) {
	rules, ok := c.rules[outcome.Language]
	if !ok {
		return Diagnosis{}, &ErrUnsupportedLanguage{Language: outcome.Language}
	}

	switch outcome.Status {
	case StatusFailure:
		r, ok := MatchRule(rules, outcome.ErrorText)
		if !ok {
			return Diagnosis{}, &ErrUnrecognizedError{Language: outcome.Language, Message: outcome.ErrorText}
		}
		return Diagnosis{Category: r.Category, MatchedBy: r.Substring}, nil

	case StatusSuccess:
		if tree == nil {
			return Diagnosis{}, &ErrNoDefectFound{}
		}
		cat, name := RunDetectors(c.detectors, tree)
		if cat == "" {
			return Diagnosis{}, &ErrNoDefectFound{}
		}
		return Diagnosis{Category: cat, MatchedBy: name}, nil
	}

	return Diagnosis{}, &ErrUnsupportedStatus{Status: outcome.Status}
}
