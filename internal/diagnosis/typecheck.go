package diagnosis

import "github.com/abhisek/blockhint/internal/blocktree"

// Operand is one resolved side of an arithmetic block.
type Operand struct {
	Label string // literal text, variable name, or block type
	Kind  ValueKind
}

// TypeMismatch describes an arithmetic block combining incompatible kinds.
type TypeMismatch struct {
	Block *blocktree.Node
	Left  Operand
	Right Operand
}

// FindTypeMismatch returns the first arithmetic block whose operands resolve
// to different known kinds. Operands that cannot be resolved are treated as
// compatible with anything.
//
// A variable resolves through the last assignment to the same name that
// precedes the arithmetic block in document order. Branches and function
// scope are not considered.
func FindTypeMismatch(tree *blocktree.Tree) (*TypeMismatch, bool) {
	for _, arith := range tree.FindAll(blocktree.BlockOfType(blockArithmetic)) {
		left := resolveOperand(tree, arith.Input(slotLeft), arith, 0)
		right := resolveOperand(tree, arith.Input(slotRight), arith, 0)
		if left.Kind == KindUnknown || right.Kind == KindUnknown {
			continue
		}
		if left.Kind != right.Kind {
			return &TypeMismatch{Block: arith, Left: left, Right: right}, true
		}
	}
	return nil, false
}

// resolveOperand determines the kind of b as seen from anchor.
func resolveOperand(tree *blocktree.Tree, b, anchor *blocktree.Node, depth int) Operand {
	if b == nil {
		return Operand{Kind: KindUnknown}
	}
	if k := LiteralKind(b); k != "" {
		return Operand{Label: b.FirstFieldText(), Kind: k}
	}
	if b.Type != blockVariableGet {
		return Operand{Label: b.Type, Kind: expressionKind(b.Type)}
	}

	name := b.FieldText(fieldVariable)
	op := Operand{Label: name, Kind: KindUnknown}
	if depth >= maxResolutionDepth {
		return op
	}
	assign := lastAssignment(tree, name, anchor)
	if assign == nil {
		return op
	}
	op.Kind = resolveOperand(tree, assign.Input(slotAssignedValue), assign, depth+1).Kind
	return op
}

// lastAssignment returns the last variables_set block for name that comes
// before anchor in document order, skipping assignments whose value
// encloses anchor.
func lastAssignment(tree *blocktree.Tree, name string, anchor *blocktree.Node) *blocktree.Node {
	var last *blocktree.Node
	for _, set := range tree.FindAll(blocktree.BlockOfType(blockVariableSet)) {
		if !tree.Precedes(set, anchor) {
			break
		}
		// x = x + 1 reads x before the enclosing assignment completes.
		// Later statements also nest under set via <next>, so only the
		// VALUE slot counts as enclosing.
		if slot := set.Child(blocktree.TagValue, slotAssignedValue); slot != nil && tree.Contains(slot, anchor) {
			continue
		}
		if set.FieldText(fieldVariable) == name {
			last = set
		}
	}
	return last
}

// TypeMismatchDetector fires on arithmetic over incompatible kinds.
type TypeMismatchDetector struct{}

func (d *TypeMismatchDetector) Name() string            { return "type-mismatch" }
func (d *TypeMismatchDetector) Category() ErrorCategory { return CategoryTypeError }

func (d *TypeMismatchDetector) Detect(tree *blocktree.Tree) bool {
	_, ok := FindTypeMismatch(tree)
	return ok
}
