package hints

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/abhisek/blockhint/internal/diagnosis"
)

func comparingLiteralsFacts(in Input) (ErrorInfo, bool) {
	if in.Tree == nil {
		return nil, false
	}
	m, ok := diagnosis.FindLiteralComparison(in.Tree)
	if !ok {
		return nil, false
	}
	return ErrorInfo{
		FactLeft:      m.Left,
		FactRight:     m.Right,
		FactLeftKind:  string(m.Kind),
		FactRightKind: string(m.Kind),
		FactOperator:  m.Operator,
		FactEnclosing: m.Enclosing,
	}, true
}

func incompleteBlocksFacts(in Input) (ErrorInfo, bool) {
	if in.Tree == nil {
		return nil, false
	}
	m, ok := diagnosis.FindIncompleteConditional(in.Tree)
	if !ok {
		return nil, false
	}
	return ErrorInfo{FactBlock: m.Label, FactReason: m.Reason}, true
}

func parameterScopeFacts(in Input) (ErrorInfo, bool) {
	if in.Tree == nil {
		return nil, false
	}
	m, ok := diagnosis.FindParameterLeak(in.Tree)
	if !ok {
		return nil, false
	}
	return ErrorInfo{
		FactFunction:  m.Name,
		FactParameter: m.Parameter,
		FactOutside:   strconv.Itoa(m.Total - m.InScope),
	}, true
}

func ambiguousParameterFacts(in Input) (ErrorInfo, bool) {
	if in.Tree == nil {
		return nil, false
	}
	m, ok := diagnosis.FindDuplicateParameter(in.Tree)
	if !ok {
		return nil, false
	}
	return ErrorInfo{FactFunction: m.Name, FactParameter: m.Parameter}, true
}

// typeErrorFacts prefers the arithmetic mismatch visible in the tree. A
// crashing run often mixes types the tree heuristic cannot resolve, so the
// offending statement from the error text is the fallback.
func typeErrorFacts(in Input) (ErrorInfo, bool) {
	if in.Tree != nil {
		if m, ok := diagnosis.FindTypeMismatch(in.Tree); ok {
			return ErrorInfo{
				FactLeft:      m.Left.Label,
				FactRight:     m.Right.Label,
				FactLeftKind:  string(m.Left.Kind),
				FactRightKind: string(m.Right.Kind),
			}, true
		}
	}
	if stmt, ok := ExtractorFor(in.Language).Statement(in.ErrorText); ok {
		return ErrorInfo{FactStatement: stmt}, true
	}
	return nil, false
}

// statementFacts serves the runtime categories whose only evidence is the
// error text. A statement that cannot be extracted renders as Placeholder.
func statementFacts(in Input) (ErrorInfo, bool) {
	info := ErrorInfo{}
	if stmt, ok := ExtractorFor(in.Language).Statement(in.ErrorText); ok {
		info[FactStatement] = stmt
	}
	return info, true
}

// statementBlocks maps statement prefixes to the block a learner would
// look for.
var statementBlocks = []struct {
	prefix string
	block  string
}{
	{"if", "If"},
	{"print", "Print"},
	{"Serial.print", "Print"},
	{"Serial.println", "Print"},
	{"math.sqrt", "Square root"},
	{"sqrt", "Square root"},
}

func outOfBoundsFacts(in Input) (ErrorInfo, bool) {
	info, _ := statementFacts(in)
	stmt := info[FactStatement]
	for _, sb := range statementBlocks {
		if hasWordPrefix(stmt, sb.prefix) {
			info[FactBlock] = sb.block
			break
		}
	}
	return info, true
}

// hasWordPrefix reports whether s starts with prefix followed by a
// non-identifier character, so "if" does not match "iffy = 1".
func hasWordPrefix(s, prefix string) bool {
	if !strings.HasPrefix(s, prefix) {
		return false
	}
	rest := strings.TrimPrefix(s, prefix)
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
