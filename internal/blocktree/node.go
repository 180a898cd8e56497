package blocktree

// Structural roles of nodes in Blockly XML.
const (
	TagXML       = "xml"
	TagBlock     = "block"
	TagShadow    = "shadow"
	TagValue     = "value"
	TagStatement = "statement"
	TagNext      = "next"
	TagField     = "field"
	TagMutation  = "mutation"
	TagArg       = "arg"
)

// Node is one element of a parsed block tree.
type Node struct {
	Tag      string            // element local name: block, value, field, mutation, arg, ...
	Type     string            // semantic block kind; empty on structural wrappers
	Name     string            // slot/field identifier, unique among siblings
	Text     string            // trimmed character data for leaf fields
	Attrs    map[string]string // remaining attributes (id, x, y, ...)
	Children []*Node
}

// IsBlock reports whether n is a block or shadow block.
func (n *Node) IsBlock() bool {
	return n.Tag == TagBlock || n.Tag == TagShadow
}

// Child returns the first direct child with the given tag and name.
func (n *Node) Child(tag, name string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag && c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenByTag returns direct children with the given tag, in document order.
func (n *Node) ChildrenByTag(tag string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// Field returns the block's own field with the given name, or nil.
func (n *Node) Field(name string) *Node {
	return n.Child(TagField, name)
}

// FieldText returns the text of the named field, or "" if absent.
func (n *Node) FieldText(name string) string {
	if f := n.Field(name); f != nil {
		return f.Text
	}
	return ""
}

// FirstFieldText returns the text of the block's first field. Literal
// blocks carry their value there (TEXT, NUM, BOOL).
func (n *Node) FirstFieldText() string {
	for _, c := range n.Children {
		if c.Tag == TagField {
			return c.Text
		}
	}
	return ""
}

// Input returns the block plugged into the named value slot. A real block
// wins over a shadow. Returns nil for a missing or empty slot.
func (n *Node) Input(name string) *Node {
	slot := n.Child(TagValue, name)
	if slot == nil {
		return nil
	}
	return slot.SlotBlock()
}

// SlotBlock returns the block held by a value slot, preferring a real block
// over a shadow.
func (n *Node) SlotBlock() *Node {
	var shadow *Node
	for _, c := range n.Children {
		switch c.Tag {
		case TagBlock:
			return c
		case TagShadow:
			if shadow == nil {
				shadow = c
			}
		}
	}
	return shadow
}

// Attr returns an attribute value that was not mapped to Type or Name.
func (n *Node) Attr(key string) string {
	return n.Attrs[key]
}

// FindAll returns every node in n's subtree, n included, matching pred in
// pre-order.
func (n *Node) FindAll(pred Predicate) []*Node {
	var out []*Node
	n.walk(func(x *Node) {
		if pred(x) {
			out = append(out, x)
		}
	})
	return out
}

// FindFirst returns the first pre-order match in n's subtree, or nil.
func (n *Node) FindFirst(pred Predicate) *Node {
	var found *Node
	n.walkUntil(func(x *Node) bool {
		if pred(x) {
			found = x
			return true
		}
		return false
	})
	return found
}

func (n *Node) walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.Children {
		c.walk(visit)
	}
}

// walkUntil stops as soon as visit returns true.
func (n *Node) walkUntil(visit func(*Node) bool) bool {
	if visit(n) {
		return true
	}
	for _, c := range n.Children {
		if c.walkUntil(visit) {
			return true
		}
	}
	return false
}
