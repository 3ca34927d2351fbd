package syntax

import (
	"fmt"
	"io"
	"strconv"

	"github.com/0xalexb/lcfg/tree"
)

// MaxDepth limits the nesting of maps and lists.
const MaxDepth = 256

// Entry is a resolved configuration value with its fully qualified key.
type Entry struct {
	Key   string
	Value []byte
}

// Document is a parsed lcfg input.
type Document struct {
	entries []Entry
}

// Entries returns the resolved entries in document order.
func (d *Document) Entries() []Entry {
	return d.entries
}

// Accept calls visit for every entry in document order and stops at the first error.
func (d *Document) Accept(visit tree.Visitor) error {
	for _, entry := range d.entries {
		err := visit(entry.Key, entry.Value)
		if err != nil {
			return fmt.Errorf("visiting %q: %w", entry.Key, err)
		}
	}

	return nil
}

// Parse parses a complete lcfg document.
func Parse(src []byte) (*Document, error) {
	p := &parser{scanner: NewScanner(src)}

	err := p.next()
	if err != nil {
		return nil, err
	}

	for p.tok.Type != EOF {
		err = p.parseStatement(nil, 0)
		if err != nil {
			return nil, err
		}
	}

	return &Document{entries: p.entries}, nil
}

// ParseReader reads r to the end and parses it.
func ParseReader(r io.Reader) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return Parse(src)
}

type parser struct {
	scanner *Scanner
	tok     Token
	entries []Entry
}

func (p *parser) next() error {
	tok, err := p.scanner.Next()
	if err != nil {
		return err
	}

	p.tok = tok

	return nil
}

func (p *parser) expect(typ TokenType) error {
	if p.tok.Type != typ {
		return errorf(p.tok.Pos, "expected %s, found %s", typ, p.tok.Type)
	}

	return p.next()
}

// parseStatement parses "key [=] value" below prefix.
func (p *parser) parseStatement(prefix []string, depth int) error {
	if p.tok.Type != Identifier {
		return errorf(p.tok.Pos, "expected key, found %s", p.tok.Type)
	}

	path := append(prefix[:len(prefix):len(prefix)], string(p.tok.Value))

	err := p.next()
	if err != nil {
		return err
	}

	switch p.tok.Type {
	case Equals:
		err = p.next()
		if err != nil {
			return err
		}
	case LBrace, LBracket:
	default:
		return errorf(p.tok.Pos, "expected '=' after key %q, found %s", path[len(path)-1], p.tok.Type)
	}

	return p.parseValue(path, depth)
}

func (p *parser) parseValue(path []string, depth int) error {
	if depth >= MaxDepth {
		return errorf(p.tok.Pos, "nesting deeper than %d levels", MaxDepth)
	}

	switch p.tok.Type {
	case String:
		p.entries = append(p.entries, Entry{Key: tree.JoinPath(path...), Value: p.tok.Value})

		return p.next()
	case LBrace:
		return p.parseMap(path, depth+1)
	case LBracket:
		return p.parseList(path, depth+1)
	default:
		return errorf(p.tok.Pos, "expected value, found %s", p.tok.Type)
	}
}

func (p *parser) parseMap(path []string, depth int) error {
	err := p.expect(LBrace)
	if err != nil {
		return err
	}

	for p.tok.Type != RBrace {
		if p.tok.Type == EOF {
			return errorf(p.tok.Pos, "unterminated map %q", tree.JoinPath(path...))
		}

		err = p.parseStatement(path, depth)
		if err != nil {
			return err
		}

		if p.tok.Type == Comma {
			err = p.next()
			if err != nil {
				return err
			}
		}
	}

	return p.next()
}

func (p *parser) parseList(path []string, depth int) error {
	err := p.expect(LBracket)
	if err != nil {
		return err
	}

	for index := 0; p.tok.Type != RBracket; index++ {
		if p.tok.Type == EOF {
			return errorf(p.tok.Pos, "unterminated list %q", tree.JoinPath(path...))
		}

		elem := append(path[:len(path):len(path)], strconv.Itoa(index))

		err = p.parseValue(elem, depth)
		if err != nil {
			return err
		}

		if p.tok.Type == RBracket {
			break
		}

		err = p.expect(Comma)
		if err != nil {
			return err
		}
	}

	return p.next()
}
