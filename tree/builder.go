package tree

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrSource is returned by Build when the key/value source fails.
var ErrSource = errors.New("key/value source failed")

// Visitor receives one configuration entry: its dotted key path and raw value.
// The value buffer may be reused by the caller after the call returns.
type Visitor func(key string, value []byte) error

// Source produces the flat key/value stream of a configuration. Accept must call
// visit once per entry, in document order, and report any parse failure.
type Source interface {
	Accept(visit Visitor) error
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(visit Visitor) error

// Accept calls f(visit).
func (f SourceFunc) Accept(visit Visitor) error {
	return f(visit)
}

// Options holds Builder settings.
type Options struct {
	Logger *slog.Logger
}

// Option configures a Builder.
type Option func(*Options)

// WithLogger sets the logger used to report dropped entries.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// Builder assembles a raw tree from individual entries.
// It is not safe for concurrent use.
type Builder struct {
	root    *Node
	logger  *slog.Logger
	entries int
}

// NewBuilder creates a Builder with an empty root map.
func NewBuilder(opts ...Option) *Builder {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Builder{
		root:   newRoot(),
		logger: logger,
	}
}

// Root returns the root of the tree built so far. Types are not corrected yet.
func (b *Builder) Root() *Node {
	return b.root
}

// Entries returns the number of entries passed to Insert.
func (b *Builder) Entries() int {
	return b.entries
}

// Visit splits key into path components and inserts value. It never fails and
// can be passed directly to Source.Accept.
func (b *Builder) Visit(key string, value []byte) error {
	b.Insert(SplitPath(key), value)

	return nil
}

// Insert places a copy of value at path, creating intermediate maps on demand.
// If a leaf already exists at path the first value is kept.
func (b *Builder) Insert(path []string, value []byte) {
	b.entries++

	if len(path) == 0 {
		b.logger.Warn("dropping entry with empty path")

		return
	}

	node := b.root

	for i, component := range path[:len(path)-1] {
		child, found := node.Child(component)
		if !found {
			child = newContainer(component)
			node.children = append(node.children, child)
		}

		if child.kind == Leaf {
			b.logger.Warn("dropping entry below a leaf",
				slog.String("path", JoinPath(path...)),
				slog.String("leaf", JoinPath(path[:i+1]...)))

			return
		}

		node = child
	}

	last := path[len(path)-1]

	if existing, found := node.Child(last); found {
		b.logger.Debug("keeping first value for duplicate path",
			slog.String("path", JoinPath(path...)),
			slog.String("kind", existing.kind.String()))

		return
	}

	node.children = append(node.children, newLeaf(last, value))
}

// Build drives src once, assembles its entries into a tree and corrects container
// types. On source failure the partial tree is discarded.
func Build(src Source, opts ...Option) (*Node, error) {
	builder := NewBuilder(opts...)

	err := src.Accept(builder.Visit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSource, err)
	}

	CorrectTypes(builder.root)

	builder.logger.Debug("configuration tree built", slog.Int("entries", builder.entries))

	return builder.root, nil
}
