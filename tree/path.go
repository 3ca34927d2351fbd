package tree

import "strings"

// Separator separates the components of a path.
const Separator = "."

// SplitPath splits a dotted path into its components.
// Empty components are kept, so "a..b" yields "a", "", "b". The empty path yields no
// components and addresses the root.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}

	return strings.Split(path, Separator)
}

// JoinPath is the inverse of SplitPath.
func JoinPath(components ...string) string {
	return strings.Join(components, Separator)
}
