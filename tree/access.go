package tree

import (
	"errors"
	"fmt"
)

// ErrPathNotFound is returned by Access.Err for NotFound.
var ErrPathNotFound = errors.New("path not found")

// ErrWrongType is returned by Access.Err for FoundWrongType.
var ErrWrongType = errors.New("path has wrong type")

// Access is the outcome of a typed lookup.
type Access uint8

const (
	// NotFound means some component of the path does not exist.
	NotFound Access = iota
	// FoundWrongType means the path exists but the node has a different kind.
	FoundWrongType
	// FoundOK means the path exists with the expected kind.
	FoundOK
)

func (a Access) String() string {
	switch a {
	case NotFound:
		return "not found"
	case FoundWrongType:
		return "found wrong type"
	case FoundOK:
		return "found"
	default:
		return fmt.Sprintf("access(%d)", uint8(a))
	}
}

// Err converts a into an error for path, or nil for FoundOK.
func (a Access) Err(path string) error {
	switch a {
	case FoundOK:
		return nil
	case FoundWrongType:
		return fmt.Errorf("%w: %q", ErrWrongType, path)
	default:
		return fmt.Errorf("%w: %q", ErrPathNotFound, path)
	}
}

// Lookup returns the node at the dotted path below root regardless of its kind.
// The empty path returns root itself.
func Lookup(root *Node, path string) (*Node, bool) {
	node := root

	for _, component := range SplitPath(path) {
		child, found := node.Child(component)
		if !found {
			return nil, false
		}

		node = child
	}

	return node, true
}

// Resolve looks up path below root and checks the node against kind.
// The node is only returned together with FoundOK.
func Resolve(root *Node, path string, kind Kind) (*Node, Access) {
	node, found := Lookup(root, path)
	if !found {
		return nil, NotFound
	}

	if node.kind != kind {
		return nil, FoundWrongType
	}

	return node, FoundOK
}

// Get resolves path below n with the expected kind.
func (n *Node) Get(path string, kind Kind) (*Node, Access) {
	return Resolve(n, path, kind)
}

// GetString resolves path below n as a leaf.
func (n *Node) GetString(path string) (*Node, Access) {
	return Resolve(n, path, Leaf)
}

// GetMap resolves path below n as a map.
func (n *Node) GetMap(path string) (*Node, Access) {
	return Resolve(n, path, Map)
}

// GetList resolves path below n as a list.
func (n *Node) GetList(path string) (*Node, Access) {
	return Resolve(n, path, List)
}
