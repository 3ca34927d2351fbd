package config

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/lcfg/tree"
)

// Parser defines an interface for parsing configuration data into a target structure.
//
// The path parameter selects a section of the configuration using dot (.) as the
// separator for nested keys, the same rule the configuration tree uses:
//   - "api.permissions" navigates to config["api"]["permissions"]
//   - "servers.0" navigates to the first element of the servers list
//   - "" (empty path) means parse the entire document
//
// See config/parser/lcfg for the implementation backed by the configuration tree.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// TreeParser defines an interface for assembling raw configuration data into a tree.
type TreeParser interface {
	// ParseTree returns the type-corrected root of the tree built from data.
	ParseTree(data []byte) (*tree.Node, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that reads, parses, sets defaults, and validates configuration data.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, dataSourcer DataFetcher) (*T, error) {
		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		err = parser.Parse(data, target, path)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}

// TreeProvider returns a function that reads configuration data, assembles it into a
// tree and returns the container node at path. The empty path returns the root.
// A path that resolves to a leaf is rejected with tree.ErrWrongType.
// A nil logger logs through slog.Default.
func TreeProvider(path string, logger *slog.Logger) func(TreeParser, DataFetcher) (*tree.Node, error) {
	if logger == nil {
		logger = slog.Default()
	}

	return func(parser TreeParser, dataSourcer DataFetcher) (*tree.Node, error) {
		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		root, err := parser.ParseTree(data)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		node, found := tree.Lookup(root, path)
		if !found {
			return nil, tree.NotFound.Err(path)
		}

		if !node.Kind().IsContainer() {
			return nil, tree.FoundWrongType.Err(path)
		}

		logger.Debug("configuration section loaded",
			slog.String("path", path),
			slog.String("kind", node.Kind().String()),
			slog.Int("children", node.Len()))

		return node, nil
	}
}
