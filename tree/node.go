package tree

import (
	"slices"
	"strconv"
)

// Kind is the type of a tree node.
type Kind uint8

const (
	// Leaf nodes hold a single byte value and no children.
	Leaf Kind = iota
	// Map nodes hold named children with key/value semantics.
	Map
	// List nodes hold children whose keys are ordinal positions.
	List
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Map:
		return "map"
	case List:
		return "list"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// IsContainer reports whether nodes of this kind hold children.
func (k Kind) IsContainer() bool {
	return k == Map || k == List
}

// Node is an element of a configuration tree. The root node has no key and starts
// out as a Map. Nodes are created by a Builder and are read-only afterwards.
type Node struct {
	kind     Kind
	key      string
	hasKey   bool
	value    Bytes
	children []*Node
}

func newRoot() *Node {
	return &Node{kind: Map}
}

func newContainer(key string) *Node {
	return &Node{kind: Map, key: key, hasKey: true}
}

func newLeaf(key string, value []byte) *Node {
	return &Node{kind: Leaf, key: key, hasKey: true, value: CopyBytes(value)}
}

// Kind returns the node kind.
func (n *Node) Kind() Kind {
	return n.kind
}

// Key returns the key of the node under its parent. It is empty for the root.
func (n *Node) Key() string {
	return n.key
}

// IsRoot reports whether n is the keyless root of a tree.
func (n *Node) IsRoot() bool {
	return !n.hasKey
}

// Value returns a copy of the leaf value. Containers have no value and return nil.
func (n *Node) Value() []byte {
	if n.kind != Leaf {
		return nil
	}

	return CopyBytes(n.value)
}

// String returns the leaf value as a string, or "" for containers.
func (n *Node) String() string {
	if n.kind != Leaf {
		return ""
	}

	return n.value.String()
}

// Len returns the byte length of a leaf or the number of children of a container.
func (n *Node) Len() int {
	if n.kind == Leaf {
		return n.value.Len()
	}

	return len(n.children)
}

// Children returns the children of a container in insertion order.
// The returned slice is a copy; the nodes themselves are shared.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Child returns the direct child with the given key.
func (n *Node) Child(key string) (*Node, bool) {
	for _, child := range n.children {
		if child.key == key {
			return child, true
		}
	}

	return nil, false
}

// Walk calls fn for n and every node below it in depth-first insertion order,
// passing the components of the path leading to each node. Returning false from fn
// skips the children of that node.
func (n *Node) Walk(fn func(path []string, node *Node) bool) {
	n.walk(nil, fn)
}

func (n *Node) walk(path []string, fn func([]string, *Node) bool) {
	if !fn(path, n) {
		return
	}

	for _, child := range n.children {
		child.walk(append(slices.Clip(path), child.key), fn)
	}
}

// Leaves returns every leaf below n with its dotted path relative to n, in
// depth-first insertion order.
func (n *Node) Leaves() []Entry {
	var entries []Entry

	n.Walk(func(path []string, node *Node) bool {
		if node.kind == Leaf {
			entries = append(entries, Entry{Path: JoinPath(path...), Value: node.Value()})
		}

		return true
	})

	return entries
}

// Entry is a flattened leaf: its dotted path and value.
type Entry struct {
	Path  string
	Value []byte
}
