package tree

import (
	"errors"
	"strconv"
	"strings"
)

// CorrectTypes turns every Map below and including n into a List when its first
// child's key is a non-negative base-10 integer. Only the first child is inspected,
// so a map whose first key is "0" becomes a list even if later keys are not numeric.
// Running it more than once has no further effect.
func CorrectTypes(n *Node) {
	if n.kind == Leaf {
		return
	}

	if n.kind == Map && len(n.children) > 0 && isIndex(n.children[0].key) {
		n.kind = List
	}

	for _, child := range n.children {
		CorrectTypes(child)
	}
}

// isIndex reports whether key parses completely as an integer >= 0. Values too
// large for int64 still count.
func isIndex(key string) bool {
	value, err := strconv.ParseInt(key, 10, 64)
	if err == nil {
		return value >= 0
	}

	return errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(key, "-")
}
