package syntax

import "fmt"

// TokenType identifies the lexical class of a token.
type TokenType uint8

const (
	// EOF marks the end of input.
	EOF TokenType = iota
	// Identifier is a bare key.
	Identifier
	// String is a double-quoted value with escapes decoded.
	String
	// Equals is '='.
	Equals
	// LBrace is '{'.
	LBrace
	// RBrace is '}'.
	RBrace
	// LBracket is '['.
	LBracket
	// RBracket is ']'.
	RBracket
	// Comma is ','.
	Comma
)

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "end of input"
	case Identifier:
		return "identifier"
	case String:
		return "string"
	case Equals:
		return "'='"
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case LBracket:
		return "'['"
	case RBracket:
		return "']'"
	case Comma:
		return "','"
	default:
		return fmt.Sprintf("token(%d)", uint8(t))
	}
}

// Pos is a 1-based position in the input.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a lexical token. Value holds the identifier text or the decoded string
// bytes, and is nil for punctuation.
type Token struct {
	Type  TokenType
	Value []byte
	Pos   Pos
}
