package diagnosis

import (
	"strings"

	"github.com/abhisek/blockhint/internal/blocktree"
)

// Block types the detectors understand.
const (
	blockCompare       = "logic_compare"
	blockArithmetic    = "math_arithmetic"
	blockText          = "text"
	blockNumber        = "math_number"
	blockBoolean       = "logic_boolean"
	blockIf            = "controls_if"
	blockIfElse        = "controls_ifelse"
	blockFuncNoReturn  = "procedures_defnoreturn"
	blockFuncReturn    = "procedures_defreturn"
	blockVariableGet   = "variables_get"
	blockVariableSet   = "variables_set"
	fieldVariable      = "VAR"
	fieldFunctionName  = "NAME"
	fieldOperator      = "OP"
	slotLeft           = "A"
	slotRight          = "B"
	slotCondition      = "IF0"
	slotAssignedValue  = "VALUE"
	maxResolutionDepth = 8
)

// ValueKind is the effective type of an operand.
type ValueKind string

const (
	KindString  ValueKind = "string"
	KindNumber  ValueKind = "number"
	KindBoolean ValueKind = "boolean"
	KindList    ValueKind = "list"
	KindUnknown ValueKind = "unknown"
)

// literalKinds maps literal block types to the kind they produce.
var literalKinds = map[string]ValueKind{
	blockText:    KindString,
	blockNumber:  KindNumber,
	blockBoolean: KindBoolean,
}

// LiteralKind returns the kind of a literal block, or "" if b is not a literal.
func LiteralKind(b *blocktree.Node) ValueKind {
	if b == nil {
		return ""
	}
	return literalKinds[b.Type]
}

// kindOverrides lists expression blocks whose result kind differs from
// their category.
var kindOverrides = map[string]ValueKind{
	"text_length":          KindNumber,
	"text_indexOf":         KindNumber,
	"text_isEmpty":         KindBoolean,
	"lists_length":         KindNumber,
	"lists_indexOf":        KindNumber,
	"lists_isEmpty":        KindBoolean,
	"lists_getIndex":       KindUnknown,
	"math_number_property": KindBoolean,
}

// expressionKind maps an expression block type to its result kind by the
// Blockly category prefix.
func expressionKind(blockType string) ValueKind {
	if k, ok := literalKinds[blockType]; ok {
		return k
	}
	if k, ok := kindOverrides[blockType]; ok {
		return k
	}
	switch {
	case strings.HasPrefix(blockType, "math_"):
		return KindNumber
	case strings.HasPrefix(blockType, "text"):
		return KindString
	case strings.HasPrefix(blockType, "logic_"):
		return KindBoolean
	case strings.HasPrefix(blockType, "lists_"):
		return KindList
	}
	return KindUnknown
}

// isFunctionDefinition matches both procedure definition blocks.
var isFunctionDefinition = blocktree.BlockOfType(blockFuncNoReturn, blockFuncReturn)

// FunctionName returns a function definition's declared name.
func FunctionName(fn *blocktree.Node) string {
	return fn.FieldText(fieldFunctionName)
}

// Parameters returns a function definition's parameter names in declaration
// order. Only the definition's own mutation is read; calls nested in the
// body carry mutations of their own.
func Parameters(fn *blocktree.Node) []string {
	var names []string
	for _, m := range fn.ChildrenByTag(blocktree.TagMutation) {
		for _, arg := range m.ChildrenByTag(blocktree.TagArg) {
			names = append(names, arg.Name)
		}
	}
	return names
}

// variableReferences returns every VAR field under n, getters and setters alike.
func variableReferences(n *blocktree.Node, name string) int {
	count := 0
	for _, f := range n.FindAll(blocktree.FieldNamed(fieldVariable)) {
		if f.Text == name {
			count++
		}
	}
	return count
}
