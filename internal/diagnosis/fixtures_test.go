package diagnosis

import (
	"testing"

	"github.com/abhisek/blockhint/internal/blocktree"
)

const xmlHeader = `<xml xmlns="https://developers.google.com/blockly/xml">`

func program(body string) string {
	return xmlHeader + body + `</xml>`
}

func mustParse(t *testing.T, src string) *blocktree.Tree {
	t.Helper()
	tree, err := blocktree.Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return tree
}

func number(n string) string {
	return `<block type="math_number"><field name="NUM">` + n + `</field></block>`
}

func text(s string) string {
	return `<block type="text"><field name="TEXT">` + s + `</field></block>`
}

func boolean(b string) string {
	return `<block type="logic_boolean"><field name="BOOL">` + b + `</field></block>`
}

func variable(name string) string {
	return `<block type="variables_get"><field name="VAR">` + name + `</field></block>`
}

func compare(op, a, b string) string {
	return `<block type="logic_compare"><field name="OP">` + op + `</field>` +
		`<value name="A">` + a + `</value><value name="B">` + b + `</value></block>`
}

func arithmetic(a, b string) string {
	return `<block type="math_arithmetic"><field name="OP">ADD</field>` +
		`<value name="A">` + a + `</value><value name="B">` + b + `</value></block>`
}

func ifBlock(cond, body string) string {
	out := `<block type="controls_if">`
	if cond != "" {
		out += `<value name="IF0">` + cond + `</value>`
	}
	return out + `<statement name="DO0">` + body + `</statement></block>`
}

func printBlock(v string) string {
	return `<block type="text_print"><value name="TEXT">` + v + `</value></block>`
}

func assign(name, value string, next string) string {
	out := `<block type="variables_set"><field name="VAR">` + name + `</field>` +
		`<value name="VALUE">` + value + `</value>`
	if next != "" {
		out += `<next>` + next + `</next>`
	}
	return out + `</block>`
}

func function(name string, params []string, body string) string {
	out := `<block type="procedures_defnoreturn"><mutation>`
	for _, p := range params {
		out += `<arg name="` + p + `"></arg>`
	}
	return out + `</mutation><field name="NAME">` + name + `</field>` +
		`<statement name="STACK">` + body + `</statement></block>`
}
