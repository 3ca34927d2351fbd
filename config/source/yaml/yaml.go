package yaml

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/0xalexb/lcfg/tree"

	"github.com/goccy/go-yaml"
)

// ErrNotContainer is returned when the document root is a scalar.
var ErrNotContainer = errors.New("document root must be a mapping or a sequence")

// ErrDottedKey is returned when a mapping key contains the path separator.
var ErrDottedKey = errors.New("mapping key contains a dot")

// Source implements tree.Source for YAML data.
type Source struct {
	data []byte
}

// NewSource creates a Source over data. Decoding happens in Accept.
func NewSource(data []byte) *Source {
	return &Source{data: data}
}

// Accept decodes the document and visits every scalar in document order.
// An empty document visits nothing.
func (s *Source) Accept(visit tree.Visitor) error {
	var doc any

	err := yaml.UnmarshalWithOptions(s.data, &doc, yaml.UseOrderedMap())
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	switch doc.(type) {
	case nil:
		return nil
	case yaml.MapSlice, []any:
		return walk(nil, doc, visit)
	default:
		return ErrNotContainer
	}
}

func walk(path []string, value any, visit tree.Visitor) error {
	switch typed := value.(type) {
	case yaml.MapSlice:
		for _, item := range typed {
			key := scalarText(item.Key)
			if strings.Contains(key, tree.Separator) {
				return fmt.Errorf("%w: %q", ErrDottedKey, key)
			}

			err := walk(append(path[:len(path):len(path)], key), item.Value, visit)
			if err != nil {
				return err
			}
		}

		return nil
	case []any:
		for i, elem := range typed {
			err := walk(append(path[:len(path):len(path)], strconv.Itoa(i)), elem, visit)
			if err != nil {
				return err
			}
		}

		return nil
	default:
		return visit(tree.JoinPath(path...), []byte(scalarText(typed)))
	}
}

// scalarText converts a decoded scalar back to text.
func scalarText(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'g', -1, 64)
	default:
		return fmt.Sprint(typed)
	}
}
