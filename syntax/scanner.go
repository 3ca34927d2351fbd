package syntax

// Scanner splits lcfg input into tokens. Tokens are pulled one at a time with Next.
type Scanner struct {
	src    []byte
	offset int
	line   int
	column int
}

// NewScanner creates a Scanner over src. The input is not copied and must not be
// modified while scanning.
func NewScanner(src []byte) *Scanner {
	return &Scanner{src: src, line: 1, column: 1}
}

// HasNext reports whether a token other than EOF remains. A malformed comment counts
// as remaining input so that Next can report it.
func (s *Scanner) HasNext() bool {
	probe := *s

	err := probe.skipTrivia()
	if err != nil {
		return true
	}

	return probe.offset < len(probe.src)
}

// Next returns the next token. At the end of input it returns an EOF token, and keeps
// doing so on further calls.
func (s *Scanner) Next() (Token, error) {
	err := s.skipTrivia()
	if err != nil {
		return Token{}, err
	}

	pos := s.pos()

	if s.offset >= len(s.src) {
		return Token{Type: EOF, Pos: pos}, nil
	}

	c := s.src[s.offset]

	switch c {
	case '=':
		s.advance()

		return Token{Type: Equals, Pos: pos}, nil
	case '{':
		s.advance()

		return Token{Type: LBrace, Pos: pos}, nil
	case '}':
		s.advance()

		return Token{Type: RBrace, Pos: pos}, nil
	case '[':
		s.advance()

		return Token{Type: LBracket, Pos: pos}, nil
	case ']':
		s.advance()

		return Token{Type: RBracket, Pos: pos}, nil
	case ',':
		s.advance()

		return Token{Type: Comma, Pos: pos}, nil
	case '"':
		return s.scanString(pos)
	}

	if isIdentByte(c) {
		start := s.offset
		for s.offset < len(s.src) && isIdentByte(s.src[s.offset]) {
			s.advance()
		}

		return Token{Type: Identifier, Value: s.src[start:s.offset:s.offset], Pos: pos}, nil
	}

	return Token{}, errorf(pos, "unexpected character %q", c)
}

func (s *Scanner) scanString(pos Pos) (Token, error) {
	s.advance()

	var value []byte

	for {
		if s.offset >= len(s.src) {
			return Token{}, errorf(pos, "unterminated string")
		}

		c := s.src[s.offset]

		switch c {
		case '"':
			s.advance()

			if value == nil {
				value = []byte{}
			}

			return Token{Type: String, Value: value, Pos: pos}, nil
		case '\\':
			escPos := s.pos()
			s.advance()

			decoded, err := s.scanEscape(escPos)
			if err != nil {
				return Token{}, err
			}

			value = append(value, decoded)
		default:
			value = append(value, c)
			s.advance()
		}
	}
}

func (s *Scanner) scanEscape(pos Pos) (byte, error) {
	if s.offset >= len(s.src) {
		return 0, errorf(pos, "unterminated escape sequence")
	}

	c := s.src[s.offset]
	s.advance()

	switch c {
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case '0':
		return 0, nil
	case '\\', '"', '\'':
		return c, nil
	case 'x':
		if s.offset+2 > len(s.src) {
			return 0, errorf(pos, "short hex escape")
		}

		hi, okHi := unhex(s.src[s.offset])
		lo, okLo := unhex(s.src[s.offset+1])

		if !okHi || !okLo {
			return 0, errorf(pos, "invalid hex escape %q", s.src[s.offset:s.offset+2])
		}

		s.advance()
		s.advance()

		return hi<<4 | lo, nil
	default:
		return 0, errorf(pos, "unknown escape sequence \\%c", c)
	}
}

// skipTrivia skips whitespace and comments.
func (s *Scanner) skipTrivia() error {
	for s.offset < len(s.src) {
		c := s.src[s.offset]

		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			s.advance()
		case c == '#':
			s.skipLine()
		case c == '/' && s.peek(1) == '/':
			s.skipLine()
		case c == '/' && s.peek(1) == '*':
			pos := s.pos()
			s.advance()
			s.advance()

			for {
				if s.offset >= len(s.src) {
					return errorf(pos, "unterminated block comment")
				}

				if s.src[s.offset] == '*' && s.peek(1) == '/' {
					s.advance()
					s.advance()

					break
				}

				s.advance()
			}
		default:
			return nil
		}
	}

	return nil
}

func (s *Scanner) skipLine() {
	for s.offset < len(s.src) && s.src[s.offset] != '\n' {
		s.advance()
	}
}

func (s *Scanner) peek(n int) byte {
	if s.offset+n >= len(s.src) {
		return 0
	}

	return s.src[s.offset+n]
}

func (s *Scanner) advance() {
	if s.src[s.offset] == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}

	s.offset++
}

func (s *Scanner) pos() Pos {
	return Pos{Line: s.line, Column: s.column}
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-'
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
