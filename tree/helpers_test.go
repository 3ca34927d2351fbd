package tree_test

import (
	"github.com/0xalexb/lcfg/tree"
)

// entry is a single (path, value) pair fed to a builder.
type entry struct {
	key   string
	value string
}

// staticSource replays a fixed list of entries.
type staticSource []entry

func (s staticSource) Accept(visit tree.Visitor) error {
	for _, e := range s {
		err := visit(e.key, []byte(e.value))
		if err != nil {
			return err
		}
	}

	return nil
}

// exampleEntries is the stream produced by the reference example configuration.
func exampleEntries() staticSource {
	return staticSource{
		{"string-value", "foo"},
		{"list_value.0", "a"},
		{"list_value.1", "b"},
		{"list_value.2", "c"},
		{"map-value.foo", "bar"},
		{"map-value.bar", "foo"},
		{"binary_string", "\x00\xff\r\n\x00\x00\x4a"},
		{"winpath", `c:\windows\`},
		{"nested-list.0.0.0.0", "deep nesting"},
		{"a.d.0", "d"},
		{"a.d.1.0", "e"},
		{"a.d.1.1", "r"},
		{"a.d.2", "my index is 2"},
	}
}

// shape flattens a tree into "path kind" lines for comparison.
func shape(root *tree.Node) []string {
	var lines []string

	root.Walk(func(path []string, node *tree.Node) bool {
		lines = append(lines, tree.JoinPath(path...)+" "+node.Kind().String())

		return true
	})

	return lines
}
