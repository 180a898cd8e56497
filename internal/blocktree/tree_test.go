package blocktree

import (
	"errors"
	"testing"
)

const compareInIf = `<xml xmlns="https://developers.google.com/blockly/xml">
  <block type="controls_if" id="if1" x="10" y="20">
    <value name="IF0">
      <block type="logic_compare" id="cmp1">
        <field name="OP">EQ</field>
        <value name="A">
          <block type="math_number"><field name="NUM">5</field></block>
        </value>
        <value name="B">
          <shadow type="math_number"><field name="NUM">1</field></shadow>
          <block type="math_number"><field name="NUM">5</field></block>
        </value>
      </block>
    </value>
    <statement name="DO0">
      <block type="text_print">
        <value name="TEXT">
          <shadow type="text"><field name="TEXT">same</field></shadow>
        </value>
      </block>
    </statement>
  </block>
</xml>`

func mustParse(t *testing.T, src string) *Tree {
	t.Helper()
	tree, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return tree
}

func TestParse_Structure(t *testing.T) {
	tree := mustParse(t, compareInIf)

	if tree.Root.Tag != TagXML {
		t.Fatalf("root tag = %q, want xml", tree.Root.Tag)
	}
	ifBlock := tree.At(0)
	if ifBlock == nil || ifBlock.Type != "controls_if" {
		t.Fatalf("At(0) = %+v, want controls_if block", ifBlock)
	}
	if got := ifBlock.Attr("id"); got != "if1" {
		t.Errorf("id attr = %q, want if1", got)
	}
	if got := ifBlock.Attr("xmlns"); got != "" {
		t.Errorf("xmlns leaked into attrs: %q", got)
	}
	cmp := ifBlock.Input("IF0")
	if cmp == nil || cmp.Type != "logic_compare" {
		t.Fatalf("IF0 input = %+v, want logic_compare", cmp)
	}
	if got := cmp.FieldText("OP"); got != "EQ" {
		t.Errorf("OP = %q, want EQ", got)
	}
}

func TestParse_InputPrefersBlockOverShadow(t *testing.T) {
	tree := mustParse(t, compareInIf)
	cmp := tree.FindFirst(BlockOfType("logic_compare"))

	b := cmp.Input("B")
	if b == nil || b.Tag != TagBlock {
		t.Fatalf("B input = %+v, want real block", b)
	}
	if got := b.FirstFieldText(); got != "5" {
		t.Errorf("B value = %q, want 5", got)
	}

	printBlock := tree.FindFirst(BlockOfType("text_print"))
	shadow := printBlock.Input("TEXT")
	if shadow == nil || shadow.Tag != TagShadow {
		t.Fatalf("TEXT input = %+v, want shadow fallback", shadow)
	}
}

func TestParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":         "",
		"whitespace":    "   \n",
		"unclosed":      `<xml><block type="text">`,
		"mismatched":    `<xml><block></value></xml>`,
		"two roots":     `<xml></xml><xml></xml>`,
		"plain text":    `not xml at all`,
		"trailing text": `<xml></xml> junk`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(src)
			if err == nil {
				t.Fatal("expected error")
			}
			var malformed *ErrMalformedInput
			if !errors.As(err, &malformed) {
				t.Errorf("got %T, want *ErrMalformedInput", err)
			}
		})
	}
}

func TestFindAll_DocumentOrder(t *testing.T) {
	tree := mustParse(t, compareInIf)

	numbers := tree.FindAll(BlockOfType("math_number"))
	if len(numbers) != 2 {
		t.Fatalf("got %d math_number blocks, want 2 (shadows excluded)", len(numbers))
	}
	if !tree.Precedes(numbers[0], numbers[1]) {
		t.Error("FindAll did not return nodes in document order")
	}

	fields := tree.FindAll(FieldNamed("NUM"))
	if len(fields) != 3 {
		t.Errorf("got %d NUM fields, want 3", len(fields))
	}
}

func TestFindFirst_NoMatch(t *testing.T) {
	tree := mustParse(t, compareInIf)
	if n := tree.FindFirst(BlockOfType("procedures_defreturn")); n != nil {
		t.Errorf("got %+v, want nil", n)
	}
}

func TestNearestTypedAncestor_SkipsWrappers(t *testing.T) {
	tree := mustParse(t, compareInIf)
	cmp := tree.FindFirst(BlockOfType("logic_compare"))

	parent := tree.NearestTypedAncestor(cmp)
	if parent == nil || parent.Type != "controls_if" {
		t.Fatalf("got %+v, want controls_if", parent)
	}

	slot := tree.FindAncestor(cmp, ByTag(TagValue))
	if slot == nil || slot.Name != "IF0" {
		t.Errorf("nearest value slot = %+v, want IF0", slot)
	}
}

func TestNearestTypedAncestor_TopLevelBlock(t *testing.T) {
	tree := mustParse(t, compareInIf)
	if got := tree.NearestTypedAncestor(tree.At(0)); got != nil {
		t.Errorf("got %+v, want nil for top-level block", got)
	}
	if got := tree.Lineage(tree.Root); got != nil {
		t.Errorf("root lineage = %v, want nil", got)
	}
}

func TestLineage_ForeignNode(t *testing.T) {
	tree := mustParse(t, compareInIf)
	if got := tree.Lineage(&Node{Tag: TagBlock}); got != nil {
		t.Errorf("got %v, want nil for node outside tree", got)
	}
	if got := tree.Position(&Node{}); got != -1 {
		t.Errorf("Position = %d, want -1", got)
	}
}

func TestContains(t *testing.T) {
	tree := mustParse(t, compareInIf)
	ifBlock := tree.At(0)
	cmp := tree.FindFirst(BlockOfType("logic_compare"))
	if !tree.Contains(ifBlock, cmp) {
		t.Error("controls_if should contain the comparison")
	}
	if tree.Contains(cmp, ifBlock) {
		t.Error("comparison should not contain controls_if")
	}
	if tree.Contains(cmp, cmp) {
		t.Error("a node does not contain itself")
	}
}

func TestAt_OutOfRange(t *testing.T) {
	tree := mustParse(t, compareInIf)
	if got := tree.At(0, 99); got != nil {
		t.Errorf("got %+v, want nil", got)
	}
	if got := tree.At(); got != tree.Root {
		t.Error("At() should return the root")
	}
}

func TestRoundTrip_NodeAtKnownPath(t *testing.T) {
	root := &Node{Tag: TagXML}
	fn := &Node{Tag: TagBlock, Type: "procedures_defnoreturn"}
	mutation := &Node{Tag: TagMutation}
	arg := &Node{Tag: TagArg, Name: "x"}
	mutation.Children = append(mutation.Children, arg)
	fn.Children = append(fn.Children, mutation, &Node{Tag: TagField, Name: "NAME", Text: "do_something"})
	root.Children = append(root.Children, &Node{Tag: TagBlock, Type: "text"}, fn)
	built := New(root)

	if got := built.At(1, 0, 0); got != arg {
		t.Fatalf("At(1,0,0) = %+v, want inserted arg", got)
	}
	if got := built.FindFirst(And(ByTag(TagArg), ByName("x"))); got != arg {
		t.Errorf("FindFirst returned %+v, want the inserted arg", got)
	}
	if got := built.NearestTypedAncestor(arg); got != fn {
		t.Errorf("NearestTypedAncestor = %+v, want function block", got)
	}

	parsed := mustParse(t, `<xml><block type="text"></block><block type="procedures_defnoreturn">`+
		`<mutation><arg name="x"></arg></mutation><field name="NAME">do_something</field></block></xml>`)
	found := parsed.FindFirst(And(ByTag(TagArg), ByName("x")))
	if found == nil || found != parsed.At(1, 0, 0) {
		t.Errorf("parsed tree: FindFirst = %+v, At = %+v; want the same node", found, parsed.At(1, 0, 0))
	}
}
