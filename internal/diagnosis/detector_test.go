package diagnosis

import "testing"

func TestComparingLiterals(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"no comparison", program(printBlock(text("hi"))), false},
		{"numbers", program(ifBlock(compare("EQ", number("5"), number("5")), "")), true},
		{"texts", program(ifBlock(compare("NEQ", text("a"), text("b")), "")), true},
		{"booleans", program(ifBlock(compare("EQ", boolean("TRUE"), boolean("FALSE")), "")), true},
		{"variable and number", program(ifBlock(compare("EQ", variable("x"), number("5")), "")), false},
		{"number and variable", program(ifBlock(compare("LT", number("5"), variable("x")), "")), false},
		{"text and number", program(ifBlock(compare("EQ", text("5"), number("5")), "")), false},
		{"empty right slot", program(ifBlock(compare("EQ", number("5"), ""), "")), false},
		{"both slots empty", program(compare("EQ", "", "")), false},
	}

	d := &ComparingLiteralsDetector{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(mustParse(t, tt.src)); got != tt.want {
				t.Errorf("Detect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindLiteralComparison_Facts(t *testing.T) {
	tree := mustParse(t, program(ifBlock(compare("GTE", number("3"), number("7")), printBlock(text("yes")))))
	m, ok := FindLiteralComparison(tree)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Kind != KindNumber {
		t.Errorf("kind = %q, want %q", m.Kind, KindNumber)
	}
	if m.Left != "3" || m.Right != "7" {
		t.Errorf("operands = %q, %q, want 3, 7", m.Left, m.Right)
	}
	if m.Operator != "≥" {
		t.Errorf("operator = %q, want ≥", m.Operator)
	}
	if m.Enclosing != "if" {
		t.Errorf("enclosing = %q, want if", m.Enclosing)
	}
}

func TestFindLiteralComparison_TopLevelHasNoEnclosingBlock(t *testing.T) {
	m, ok := FindLiteralComparison(mustParse(t, program(compare("EQ", text("a"), text("a")))))
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Enclosing != "" {
		t.Errorf("enclosing = %q, want empty", m.Enclosing)
	}
}

func TestIncompleteBlocks(t *testing.T) {
	emptyIF0 := `<block type="controls_if"><value name="IF0"></value><statement name="DO0"></statement></block>`
	wrongFirst := `<block type="controls_ifelse"><value name="IF1">` + boolean("TRUE") + `</value></block>`

	tests := []struct {
		name       string
		src        string
		want       bool
		wantReason string
	}{
		{"no conditional", program(printBlock(text("hi"))), false, ""},
		{"complete if", program(ifBlock(variable("ok"), printBlock(text("hi")))), false, ""},
		{"missing condition", program(ifBlock("", printBlock(text("hi")))), true, "no condition slot"},
		{"empty condition", program(emptyIF0), true, "condition slot is empty"},
		{"wrong first slot", program(wrongFirst), true, "first slot is IF1"},
	}

	d := &IncompleteBlocksDetector{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := mustParse(t, tt.src)
			if got := d.Detect(tree); got != tt.want {
				t.Fatalf("Detect = %v, want %v", got, tt.want)
			}
			if !tt.want {
				return
			}
			m, _ := FindIncompleteConditional(tree)
			if m.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", m.Reason, tt.wantReason)
			}
		})
	}
}

func TestIncompleteBlocks_Labels(t *testing.T) {
	m, ok := FindIncompleteConditional(mustParse(t, program(`<block type="controls_ifelse"></block>`)))
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Label != "if do else do" {
		t.Errorf("label = %q, want %q", m.Label, "if do else do")
	}
}

func TestIncompleteBlocks_NestedConditionIsNotTheOuterSlot(t *testing.T) {
	// The inner if is complete; the outer if has no condition of its own.
	inner := ifBlock(variable("ok"), "")
	tree := mustParse(t, program(ifBlock("", inner)))
	m, ok := FindIncompleteConditional(tree)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Reason != "no condition slot" {
		t.Errorf("reason = %q, want %q", m.Reason, "no condition slot")
	}
}

func TestParameterScope(t *testing.T) {
	inside := printBlock(variable("x"))
	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"no functions", program(printBlock(variable("x"))), false},
		{"used only inside", program(function("show", []string{"x"}, inside)), false},
		{"used outside", program(function("show", []string{"x"}, inside) + printBlock(variable("x"))), true},
		{"assigned outside", program(function("show", []string{"x"}, inside) + assign("x", number("1"), "")), true},
		{"unrelated variable outside", program(function("show", []string{"x"}, inside) + printBlock(variable("y"))), false},
		{"parameter never used", program(function("show", []string{"x"}, "")), false},
	}

	d := &ParameterScopeDetector{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(mustParse(t, tt.src)); got != tt.want {
				t.Errorf("Detect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindParameterLeak_Facts(t *testing.T) {
	src := program(function("greet", []string{"name", "x"}, printBlock(variable("x"))) + printBlock(variable("x")))
	m, ok := FindParameterLeak(mustParse(t, src))
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Name != "greet" || m.Parameter != "x" {
		t.Errorf("got %s(%s), want greet(x)", m.Name, m.Parameter)
	}
	if m.Total != 2 || m.InScope != 1 {
		t.Errorf("counts = %d/%d, want 2/1", m.Total, m.InScope)
	}
}

func TestParameters_IgnoresNestedCallMutations(t *testing.T) {
	call := `<block type="procedures_callnoreturn"><mutation name="other"><arg name="z"></arg></mutation></block>`
	tree := mustParse(t, program(function("f", []string{"a"}, call)))
	fn := tree.FindFirst(isFunctionDefinition)
	got := Parameters(fn)
	if len(got) != 1 || got[0] != "a" {
		t.Errorf("Parameters = %v, want [a]", got)
	}
}

func TestTypeMismatch(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"no arithmetic", program(printBlock(text("hi"))), false},
		{"number plus number", program(printBlock(arithmetic(number("1"), number("2")))), false},
		{"text plus number", program(printBlock(arithmetic(text("1"), number("2")))), true},
		{"variable holding text", program(assign("x", text("hello"), printBlock(arithmetic(variable("x"), number("1"))))), true},
		{"variable holding number", program(assign("x", number("4"), printBlock(arithmetic(variable("x"), number("1"))))), false},
		{"unassigned variable", program(printBlock(arithmetic(variable("x"), number("1")))), false},
		{"empty operand", program(printBlock(arithmetic(number("1"), ""))), false},
		{"self assignment reads previous value", program(assign("x", text("a"), assign("x", arithmetic(variable("x"), number("1")), ""))), true},
		{"assignment after use is ignored", program(printBlock(arithmetic(variable("x"), number("1"))) + assign("x", text("a"), "")), false},
	}

	d := &TypeMismatchDetector{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(mustParse(t, tt.src)); got != tt.want {
				t.Errorf("Detect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTypeMismatch_LastPrecedingAssignmentWins(t *testing.T) {
	// x is text, then number; the arithmetic sees the number.
	src := program(assign("x", text("a"), assign("x", number("2"), printBlock(arithmetic(variable("x"), number("1"))))))
	if _, ok := FindTypeMismatch(mustParse(t, src)); ok {
		t.Error("expected no mismatch after reassignment to a number")
	}
}

func TestTypeMismatch_ResolvesThroughVariableChain(t *testing.T) {
	src := program(assign("a", text("s"), assign("b", variable("a"), printBlock(arithmetic(variable("b"), number("1"))))))
	m, ok := FindTypeMismatch(mustParse(t, src))
	if !ok {
		t.Fatal("expected a mismatch")
	}
	if m.Left.Label != "b" || m.Left.Kind != KindString {
		t.Errorf("left = %+v, want b/string", m.Left)
	}
	if m.Right.Label != "1" || m.Right.Kind != KindNumber {
		t.Errorf("right = %+v, want 1/number", m.Right)
	}
}

func TestDuplicateParameter(t *testing.T) {
	tests := []struct {
		name   string
		params []string
		want   string
	}{
		{"unique", []string{"a", "b"}, ""},
		{"repeated", []string{"a", "b", "a"}, "a"},
		{"first repeat wins", []string{"b", "a", "a", "b"}, "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := FindDuplicateParameter(mustParse(t, program(function("f", tt.params, ""))))
			if tt.want == "" {
				if ok {
					t.Errorf("unexpected match on %q", m.Parameter)
				}
				return
			}
			if !ok {
				t.Fatal("expected a match")
			}
			if m.Parameter != tt.want || m.Name != "f" {
				t.Errorf("got %s(%s), want f(%s)", m.Name, m.Parameter, tt.want)
			}
		})
	}
}

func TestDetectors_EmptyProgram(t *testing.T) {
	tree := mustParse(t, program(""))
	for _, d := range DefaultDetectors() {
		if d.Detect(tree) {
			t.Errorf("%s fired on an empty program", d.Name())
		}
	}
}

func TestDefaultDetectors_Order(t *testing.T) {
	want := []string{
		"comparing-literals",
		"incomplete-block-sequences",
		"parameter-out-of-scope",
		"type-mismatch",
		"duplicate-parameter",
	}
	got := DefaultDetectors()
	if len(got) != len(want) {
		t.Fatalf("got %d detectors, want %d", len(got), len(want))
	}
	for i, d := range got {
		if d.Name() != want[i] {
			t.Errorf("detector[%d] = %q, want %q", i, d.Name(), want[i])
		}
	}
}

func TestRunDetectors_FirstMatchWins(t *testing.T) {
	// Both a literal comparison and a missing condition are present.
	src := program(ifBlock("", "") + ifBlock(compare("EQ", number("5"), number("5")), ""))
	cat, name := RunDetectors(DefaultDetectors(), mustParse(t, src))
	if cat != CategoryComparingLiterals {
		t.Errorf("category = %q, want %q", cat, CategoryComparingLiterals)
	}
	if name != "comparing-literals" {
		t.Errorf("name = %q, want comparing-literals", name)
	}
}

func TestRunDetectors_NoMatch(t *testing.T) {
	cat, name := RunDetectors(DefaultDetectors(), mustParse(t, program(printBlock(text("hi")))))
	if cat != "" || name != "" {
		t.Errorf("got (%q, %q), want empty", cat, name)
	}
}
