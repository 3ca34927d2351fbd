// Package yaml provides a YAML key/value source for the configuration tree.
//
// This package uses github.com/goccy/go-yaml with ordered maps to walk a YAML
// document in document order and report every scalar with its dotted path, the
// same stream the lcfg syntax produces. Mappings contribute their keys, sequences
// contribute element indexes:
//
//	server:
//	  host: localhost      -> "server.host"    = "localhost"
//	  ports: [80, 443]     -> "server.ports.0" = "80", "server.ports.1" = "443"
//
// Usage:
//
//	root, err := tree.Build(yaml.NewSource(data))
//
// Scalars are reported in their decoded textual form: null becomes an empty value,
// numbers and booleans are formatted back to text. Keys containing a dot are
// rejected because they cannot be addressed by a dotted path.
package yaml
