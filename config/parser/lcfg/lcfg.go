package lcfg

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"unicode"
	"unicode/utf8"

	"github.com/0xalexb/lcfg/syntax"
	"github.com/0xalexb/lcfg/tree"

	"github.com/goccy/go-yaml"
)

// ErrPathNotFound is returned when the specified path is not found in the configuration.
var ErrPathNotFound = errors.New("path not found")

// SourceFunc turns raw data into a key/value source.
type SourceFunc func(data []byte) (tree.Source, error)

// Option configures a Parser.
type Option func(*Parser)

// WithSourceFunc replaces the lcfg text syntax with another source, for example a
// YAML source.
func WithSourceFunc(fn SourceFunc) Option {
	return func(p *Parser) {
		p.source = fn
	}
}

// WithLogger sets the logger passed to the tree builder.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// Parser implements config.Parser and config.TreeParser.
type Parser struct {
	source SourceFunc
	logger *slog.Logger
}

// NewParser creates a parser for lcfg text.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{source: parseText}

	for _, apply := range opts {
		apply(parser)
	}

	return parser
}

func parseText(data []byte) (tree.Source, error) {
	return syntax.Parse(data)
}

// ParseTree assembles data into a type-corrected configuration tree.
// Empty data yields an empty root map. Errors raised while reading the source wrap
// tree.ErrSource.
func (p *Parser) ParseTree(data []byte) (*tree.Node, error) {
	src, err := p.source(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", tree.ErrSource, err)
	}

	var opts []tree.Option
	if p.logger != nil {
		opts = append(opts, tree.WithLogger(p.logger))
	}

	root, err := tree.Build(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("building tree: %w", err)
	}

	return root, nil
}

// Parse builds the tree from data and decodes the node at path into target.
// The path uses dot (.) as separator. Empty path decodes the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	root, err := p.ParseTree(data)
	if err != nil {
		return err
	}

	node, found := tree.Lookup(root, path)
	if !found {
		return fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	return Decode(node, target)
}

// Decode decodes a node into target using YAML decoding rules.
//
// Leaves that are not printable UTF-8 travel as !!binary and keep every byte when
// decoded into string or []byte fields. Decoded into an interface they become []byte.
func Decode(node *tree.Node, target any) error {
	if bytesTarget, ok := target.(*[]byte); ok && node.Kind() == tree.Leaf {
		*bytesTarget = node.Value()

		return nil
	}

	encoded, err := yaml.Marshal(toYAML(node))
	if err != nil {
		return fmt.Errorf("encoding %s node: %w", node.Kind(), err)
	}

	err = yaml.UnmarshalWithOptions(encoded, target,
		yaml.CustomUnmarshaler[string](decodeString),
		yaml.CustomUnmarshaler[[]byte](decodeBytes),
	)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}

// toYAML converts a node into ordered YAML values.
func toYAML(node *tree.Node) any {
	switch node.Kind() {
	case tree.Map:
		children := node.Children()
		items := make(yaml.MapSlice, 0, len(children))

		for _, child := range children {
			items = append(items, yaml.MapItem{Key: child.Key(), Value: toYAML(child)})
		}

		return items
	case tree.List:
		children := node.Children()
		elems := make([]any, 0, len(children))

		for _, child := range children {
			elems = append(elems, toYAML(child))
		}

		return elems
	default:
		value := node.Value()
		if !printable(value) {
			return binaryLeaf(value)
		}

		return string(value)
	}
}

const binaryTag = "!!binary"

// binaryLeaf is a leaf value that YAML text cannot carry byte for byte.
type binaryLeaf []byte

// MarshalYAML implements yaml.BytesMarshaler.
func (b binaryLeaf) MarshalYAML() ([]byte, error) {
	return []byte(binaryTag + " " + base64.StdEncoding.EncodeToString(b)), nil
}

// printable reports whether value is UTF-8 without control characters.
func printable(value []byte) bool {
	if !utf8.Valid(value) {
		return false
	}

	return !bytes.ContainsFunc(value, unicode.IsControl)
}

func decodeString(target *string, data []byte) error {
	value, err := decodeScalar(data)
	if err != nil {
		return err
	}

	*target = string(value)

	return nil
}

func decodeBytes(target *[]byte, data []byte) error {
	value, err := decodeScalar(data)
	if err != nil {
		return err
	}

	*target = value

	return nil
}

// decodeScalar returns the bytes of a scalar node, undoing the !!binary encoding.
func decodeScalar(data []byte) ([]byte, error) {
	text := bytes.TrimSpace(data)

	if encoded, ok := bytes.CutPrefix(text, []byte(binaryTag)); ok {
		value, err := base64.StdEncoding.DecodeString(string(bytes.TrimSpace(encoded)))
		if err != nil {
			return nil, fmt.Errorf("decoding binary leaf: %w", err)
		}

		return value, nil
	}

	var value string

	err := yaml.Unmarshal(text, &value)
	if err != nil {
		return nil, err
	}

	return []byte(value), nil
}
