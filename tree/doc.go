// Package tree assembles a flat stream of dotted key paths and byte values into a
// hierarchical configuration tree and resolves typed values from it.
//
// A tree is built once from a Source, which drives a Visitor with one call per
// configuration entry:
//
//	string-value        = "foo"
//	list_value.0        = "a"
//	map-value.foo       = "bar"
//	nested-list.0.0.0.0 = "deep nesting"
//
// Every path component except the last names a container node, the last one names
// a leaf holding the raw value bytes. After the stream is consumed, CorrectTypes turns
// every map whose first child key is a non-negative integer into a list.
//
// # Lookups
//
// Lookups use the same dot separator and return a tri-state Access:
//
//	node, access := tree.Resolve(root, "list_value", tree.List)
//	switch access {
//	case tree.FoundOK:
//	    // use node
//	case tree.FoundWrongType:
//	    // the path exists but is a map or a leaf
//	case tree.NotFound:
//	    // the path does not exist
//	}
//
// A built tree is never modified again, so lookups are safe from multiple goroutines.
package tree
