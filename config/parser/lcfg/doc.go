// Package lcfg provides a config.Parser backed by the configuration tree.
//
// The parser assembles the raw data into a tree (lcfg text by default, or any other
// tree.Source via WithSourceFunc), resolves the dotted path and decodes the selected
// node into the target with github.com/goccy/go-yaml. Maps decode into structs or
// maps, lists into slices and leaves into strings or byte slices. Leaf values are
// always strings: numeric interpretation is left to the target type's consumer.
// Binary leaves keep every byte in string and []byte fields.
//
// Usage:
//
//	parser := lcfg.NewParser()
//	var server ServerConfig
//	err := parser.Parse(data, &server, "services.api")
package lcfg
