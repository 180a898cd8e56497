package diagnosis

import "strings"

// Rule maps a substring of a runtime error message to a category.
type Rule struct {
	Substring string
	Category  ErrorCategory
}

// runtimeRules holds the ordered rule table per language. Order matters:
// more specific substrings must precede more general ones.
var runtimeRules = map[Language][]Rule{
	LanguagePython: {
		// SyntaxError: duplicate argument 'x' in function definition
		{Substring: "duplicate argument", Category: CategoryAmbiguousParameter},
		{Substring: "ZeroDivisionError", Category: CategoryZeroDivision},
		{Substring: "IndexError", Category: CategoryOutOfBounds},
		// Must precede TypeError: "TypeError: 'NoneType' object is not subscriptable".
		{Substring: "'NoneType' object", Category: CategoryNoneType},
		{Substring: "TypeError", Category: CategoryTypeError},
	},
	LanguageArduino: {
		{Substring: "redefinition of parameter", Category: CategoryAmbiguousParameter},
		{Substring: "multiple parameters named", Category: CategoryAmbiguousParameter},
		{Substring: "division by zero", Category: CategoryZeroDivision},
		{Substring: "array subscript", Category: CategoryOutOfBounds},
		{Substring: "invalid operands", Category: CategoryTypeError},
		{Substring: "no match for 'operator", Category: CategoryTypeError},
	},
}

// RuntimeRules returns a copy of the rule table for lang, in match order.
func RuntimeRules(lang Language) []Rule {
	rules := runtimeRules[lang]
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// MatchRule returns the first rule whose substring occurs in text.
func MatchRule(rules []Rule, text string) (Rule, bool) {
	for _, r := range rules {
		if strings.Contains(text, r.Substring) {
			return r, true
		}
	}
	return Rule{}, false
}
