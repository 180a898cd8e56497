// Package blocktree parses Blockly XML into a read-only tree and answers
// structural queries over it.
//
// A Tree is built once per request and never mutated afterwards, so it can
// be shared freely between detectors and hint generators of that request.
package blocktree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedInput indicates the source is not well-formed tree markup.
type ErrMalformedInput struct {
	Err error
}

func (e *ErrMalformedInput) Error() string {
	return fmt.Sprintf("malformed block tree: %v", e.Err)
}

func (e *ErrMalformedInput) Unwrap() error { return e.Err }

// Tree is a parsed block program.
type Tree struct {
	Root  *Node
	order map[*Node]int
}

// Parse reads Blockly XML. Namespaces are ignored; element local names
// become node tags.
func Parse(source string) (*Tree, error) {
	if strings.TrimSpace(source) == "" {
		return nil, &ErrMalformedInput{Err: errors.New("empty source")}
	}

	dec := xml.NewDecoder(strings.NewReader(source))
	var (
		root  *Node
		stack []*Node
		text  []string
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ErrMalformedInput{Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := newNode(t)
			if len(stack) == 0 {
				if root != nil {
					return nil, &ErrMalformedInput{Err: errors.New("more than one root element")}
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
			text = append(text, "")
		case xml.EndElement:
			n := stack[len(stack)-1]
			if len(n.Children) == 0 {
				n.Text = strings.TrimSpace(text[len(text)-1])
			}
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		case xml.CharData:
			if len(stack) > 0 {
				text[len(text)-1] += string(t)
			} else if strings.TrimSpace(string(t)) != "" {
				return nil, &ErrMalformedInput{Err: errors.New("text outside root element")}
			}
		}
	}

	if root == nil {
		return nil, &ErrMalformedInput{Err: errors.New("no root element")}
	}
	if len(stack) != 0 {
		return nil, &ErrMalformedInput{Err: errors.New("unclosed element")}
	}
	return newTree(root), nil
}

func newNode(se xml.StartElement) *Node {
	n := &Node{Tag: se.Name.Local}
	for _, a := range se.Attr {
		switch a.Name.Local {
		case "type":
			n.Type = a.Value
		case "name":
			n.Name = a.Value
		case "xmlns":
		default:
			if a.Name.Space == "xmlns" {
				continue
			}
			if n.Attrs == nil {
				n.Attrs = make(map[string]string)
			}
			n.Attrs[a.Name.Local] = a.Value
		}
	}
	return n
}

// New wraps an already-built node structure. The caller must not mutate it
// afterwards.
func New(root *Node) *Tree {
	return newTree(root)
}

func newTree(root *Node) *Tree {
	t := &Tree{Root: root, order: make(map[*Node]int)}
	i := 0
	root.walk(func(n *Node) {
		t.order[n] = i
		i++
	})
	return t
}

// FindAll returns all nodes matching pred in document (pre-)order.
func (t *Tree) FindAll(pred Predicate) []*Node {
	return t.Root.FindAll(pred)
}

// FindFirst returns the first node matching pred in document order, or nil.
func (t *Tree) FindFirst(pred Predicate) *Node {
	return t.Root.FindFirst(pred)
}

// Position returns n's pre-order index, or -1 if n is not part of the tree.
func (t *Tree) Position(n *Node) int {
	if i, ok := t.order[n]; ok {
		return i
	}
	return -1
}

// Precedes reports whether a comes before b in document order.
func (t *Tree) Precedes(a, b *Node) bool {
	pa, pb := t.Position(a), t.Position(b)
	return pa >= 0 && pb >= 0 && pa < pb
}

// Lineage returns the chain of ancestors of n from the root down to n's
// parent. Nodes hold no parent pointers, so the chain is rebuilt by walking
// from the root. Returns nil when n is the root or not in the tree.
func (t *Tree) Lineage(n *Node) []*Node {
	var path []*Node
	var search func(cur *Node) bool
	search = func(cur *Node) bool {
		if cur == n {
			return true
		}
		path = append(path, cur)
		for _, c := range cur.Children {
			if search(c) {
				return true
			}
		}
		path = path[:len(path)-1]
		return false
	}
	if !search(t.Root) {
		return nil
	}
	return path
}

// FindAncestor returns the nearest ancestor of n matching pred, or nil.
func (t *Tree) FindAncestor(n *Node, pred Predicate) *Node {
	lineage := t.Lineage(n)
	for i := len(lineage) - 1; i >= 0; i-- {
		if pred(lineage[i]) {
			return lineage[i]
		}
	}
	return nil
}

// NearestTypedAncestor skips untyped structural wrappers (value and
// statement slots, next links) and returns the closest enclosing block.
func (t *Tree) NearestTypedAncestor(n *Node) *Node {
	return t.FindAncestor(n, HasType)
}

// Contains reports whether n lies within ancestor's subtree, ancestor
// itself excluded.
func (t *Tree) Contains(ancestor, n *Node) bool {
	if ancestor == n {
		return false
	}
	return ancestor.FindFirst(func(x *Node) bool { return x == n }) != nil
}

// At follows child indexes from the root. Returns nil if any index is out
// of range.
func (t *Tree) At(path ...int) *Node {
	cur := t.Root
	for _, i := range path {
		if i < 0 || i >= len(cur.Children) {
			return nil
		}
		cur = cur.Children[i]
	}
	return cur
}
