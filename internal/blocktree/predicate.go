package blocktree

// Predicate selects nodes during a traversal.
type Predicate func(*Node) bool

// ByTag matches nodes with the given tag.
func ByTag(tag string) Predicate {
	return func(n *Node) bool { return n.Tag == tag }
}

// ByName matches nodes with the given name attribute.
func ByName(name string) Predicate {
	return func(n *Node) bool { return n.Name == name }
}

// BlockOfType matches block (not shadow) nodes whose type is one of types.
func BlockOfType(types ...string) Predicate {
	return func(n *Node) bool {
		if n.Tag != TagBlock {
			return false
		}
		for _, t := range types {
			if n.Type == t {
				return true
			}
		}
		return false
	}
}

// FieldNamed matches field nodes with the given name.
func FieldNamed(name string) Predicate {
	return func(n *Node) bool { return n.Tag == TagField && n.Name == name }
}

// HasType matches semantically typed nodes. Structural wrappers such as
// value and statement slots carry no type.
func HasType(n *Node) bool {
	return n.Type != ""
}

// And matches when every predicate matches.
func And(preds ...Predicate) Predicate {
	return func(n *Node) bool {
		for _, p := range preds {
			if !p(n) {
				return false
			}
		}
		return true
	}
}
