// Package syntax scans and parses the lcfg configuration text format.
//
// An lcfg document is a sequence of statements. A statement assigns a string, a map
// or a list to a key:
//
//	# comments start with '#' or '//', block comments use /* ... */
//	string-value = "foo"
//	list_value = ["a", "b", "c"]
//	map-value = {
//	    foo = "bar"
//	    bar = "foo"
//	}
//	binary_string = "\0\xff\r\n\0\0\x4a"
//	nested-list = [[[["deep nesting"]]]]
//
// The '=' may be left out in front of a map or list. Parsing produces a Document
// whose Accept method visits every string value with its fully qualified dotted key
// ("map-value.foo", "list_value.0", ...) in document order, which makes it a
// tree.Source.
package syntax
