package diagnosis

import "github.com/abhisek/blockhint/internal/blocktree"

// operatorSymbols maps logic_compare OP values to their rendered symbol.
var operatorSymbols = map[string]string{
	"EQ":  "=",
	"NEQ": "≠",
	"LT":  "<",
	"LTE": "≤",
	"GT":  ">",
	"GTE": "≥",
}

// enclosingBlockNames maps block types that commonly host a condition to
// the name the learner sees in the editor.
var enclosingBlockNames = map[string]string{
	blockIf:               "if",
	blockIfElse:           "if-else",
	"controls_whileUntil": "repeat-while",
}

// LiteralComparison describes a comparison between two constants.
type LiteralComparison struct {
	Block     *blocktree.Node
	Kind      ValueKind
	Left      string
	Right     string
	Operator  string // rendered symbol, or the raw OP value if unmapped
	Enclosing string // learner-facing name of the host block, "" if none
}

// FindLiteralComparison returns the first comparison whose operands are
// literals of the same kind.
func FindLiteralComparison(tree *blocktree.Tree) (*LiteralComparison, bool) {
	for _, cmp := range tree.FindAll(blocktree.BlockOfType(blockCompare)) {
		a, b := cmp.Input(slotLeft), cmp.Input(slotRight)
		ka, kb := LiteralKind(a), LiteralKind(b)
		if ka == "" || ka != kb {
			continue
		}

		op := cmp.FieldText(fieldOperator)
		if sym, ok := operatorSymbols[op]; ok {
			op = sym
		}
		m := &LiteralComparison{
			Block:    cmp,
			Kind:     ka,
			Left:     a.FirstFieldText(),
			Right:    b.FirstFieldText(),
			Operator: op,
		}
		if parent := tree.NearestTypedAncestor(cmp); parent != nil {
			m.Enclosing = enclosingBlockNames[parent.Type]
		}
		return m, true
	}
	return nil, false
}

// ComparingLiteralsDetector fires on comparisons whose outcome is fixed.
type ComparingLiteralsDetector struct{}

func (d *ComparingLiteralsDetector) Name() string            { return "comparing-literals" }
func (d *ComparingLiteralsDetector) Category() ErrorCategory { return CategoryComparingLiterals }

func (d *ComparingLiteralsDetector) Detect(tree *blocktree.Tree) bool {
	_, ok := FindLiteralComparison(tree)
	return ok
}
