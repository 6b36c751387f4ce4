package lexer

// The raw cursor is the lowest lexing layer: it cuts the input into
// (kind, length) pairs with no allocation and no diagnostics. Malformed
// input is described by flags on the raw token (Terminated, EmptyDigits,
// ...) and turned into diagnostics one layer up.

// RawKind classifies a raw token.
type RawKind uint8

const (
	RawEOF RawKind = iota
	RawWhitespace
	RawLineComment
	RawBlockComment
	RawIdent
	RawInt
	RawRational
	RawStr
	RawUnicodeStr
	RawHexStr
	RawPunct
	RawUnknown
)

// RawToken is one scanned chunk. Len is the byte length; the remaining
// fields only apply to the kinds noted.
type RawToken struct {
	Kind RawKind
	Len  uint32

	Doc         bool // comments: /// or /** form
	Terminated  bool // strings, hex strings, block comments
	Quote       byte // strings: the quote character used
	Base        int  // numbers: 2, 8, 10 or 16
	EmptyDigits bool // numbers: base prefix with no digits
	EmptyExp    bool // rationals: e/E with no digits
}

// Cursor scans one source buffer from start to end.
type Cursor struct {
	src string
	pos int
}

// NewCursor returns a cursor over src.
func NewCursor(src string) *Cursor {
	return &Cursor{src: src}
}

// Pos returns the byte offset of the next unscanned byte.
func (c *Cursor) Pos() int { return c.pos }

const eofByte = 0

// first returns the next byte without consuming it.
func (c *Cursor) first() byte {
	if c.pos >= len(c.src) {
		return eofByte
	}
	return c.src[c.pos]
}

// second returns the byte after next without consuming anything.
func (c *Cursor) second() byte {
	if c.pos+1 >= len(c.src) {
		return eofByte
	}
	return c.src[c.pos+1]
}

func (c *Cursor) bump() byte {
	b := c.first()
	if b != eofByte {
		c.pos++
	}
	return b
}

func (c *Cursor) eatWhile(pred func(byte) bool) {
	for c.pos < len(c.src) && pred(c.src[c.pos]) {
		c.pos++
	}
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isIdentStart(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// Next scans and returns the next raw token.
func (c *Cursor) Next() RawToken {
	start := c.pos
	b := c.bump()

	var tok RawToken
	switch {
	case b == eofByte:
		return RawToken{Kind: RawEOF}

	case isWhitespace(b):
		c.eatWhile(isWhitespace)
		tok.Kind = RawWhitespace

	case b == '/':
		switch c.first() {
		case '/':
			tok = c.lineComment()
		case '*':
			tok = c.blockComment()
		default:
			tok.Kind = RawPunct
			c.eatOperator(b)
		}

	case isIdentStart(b):
		tok = c.identOrPrefixedString(start)

	case isDigit(b):
		tok = c.number(b)

	case b == '.' && isDigit(c.first()):
		// Fraction with no integer part, as in ".5 ether".
		tok.Kind = RawRational
		tok.Base = 10
		c.eatDigits(isDigit)
		if c.first() == 'e' || c.first() == 'E' {
			if isDigit(c.second()) || c.second() == '-' || c.second() == '_' {
				c.bump()
				if c.first() == '-' {
					c.bump()
				}
				tok.EmptyExp = !c.eatDigits(isDigit)
			}
		}

	case b == '"' || b == '\'':
		tok = c.stringLiteral(b)
		tok.Kind = RawStr

	case isPunctByte(b):
		tok.Kind = RawPunct
		c.eatOperator(b)

	default:
		// Skip the remaining bytes of one UTF-8 sequence so a stray
		// multibyte character yields a single unknown token.
		switch {
		case b < 0x80:
		case b < 0xE0:
			c.pos += min(1, len(c.src)-c.pos)
		case b < 0xF0:
			c.pos += min(2, len(c.src)-c.pos)
		default:
			c.pos += min(3, len(c.src)-c.pos)
		}
		tok.Kind = RawUnknown
	}

	tok.Len = uint32(c.pos - start)
	return tok
}

// lineComment scans from the second '/' of "//". Exactly three slashes
// begin a doc comment; four or more are a plain comment.
func (c *Cursor) lineComment() RawToken {
	c.bump() // second '/'
	doc := c.first() == '/' && c.second() != '/'
	c.eatWhile(func(b byte) bool { return b != '\n' })
	return RawToken{Kind: RawLineComment, Doc: doc}
}

// blockComment scans from the '*' of "/*". "/**" begins a doc comment
// unless it is immediately closed ("/**/") or followed by another star.
func (c *Cursor) blockComment() RawToken {
	c.bump() // '*'
	doc := c.first() == '*' && c.second() != '*' && c.second() != '/'
	for c.pos < len(c.src) {
		if c.bump() == '*' && c.first() == '/' {
			c.bump()
			return RawToken{Kind: RawBlockComment, Doc: doc, Terminated: true}
		}
	}
	return RawToken{Kind: RawBlockComment, Doc: doc}
}

// identOrPrefixedString scans an identifier, upgrading the spellings
// hex"..." and unicode"..." into prefixed string literals when the
// quote follows the word immediately.
func (c *Cursor) identOrPrefixedString(start int) RawToken {
	c.eatWhile(isIdentCont)
	name := c.src[start:c.pos]
	q := c.first()
	if q == '"' || q == '\'' {
		switch name {
		case "hex":
			c.bump()
			tok := c.stringLiteral(q)
			tok.Kind = RawHexStr
			return tok
		case "unicode":
			c.bump()
			tok := c.stringLiteral(q)
			tok.Kind = RawUnicodeStr
			return tok
		}
	}
	return RawToken{Kind: RawIdent}
}

// stringLiteral scans the body after the opening quote. Escaped quotes
// and backslashes are skipped; everything else, newlines included, is
// left for the unescaper to judge.
func (c *Cursor) stringLiteral(quote byte) RawToken {
	tok := RawToken{Quote: quote}
	for c.pos < len(c.src) {
		b := c.bump()
		switch b {
		case quote:
			tok.Terminated = true
			return tok
		case '\\':
			if c.first() == '\\' || c.first() == quote {
				c.bump()
			}
		}
	}
	return tok
}

// number scans an integer or rational literal starting at first, which
// has already been consumed.
func (c *Cursor) number(first byte) RawToken {
	tok := RawToken{Kind: RawInt, Base: 10}

	if first == '0' {
		switch c.first() {
		case 'b', 'B':
			tok.Base = 2
			c.bump()
			tok.EmptyDigits = !c.eatDigits(isDigit)
		case 'o', 'O':
			tok.Base = 8
			c.bump()
			tok.EmptyDigits = !c.eatDigits(isDigit)
		case 'x', 'X':
			tok.Base = 16
			c.bump()
			tok.EmptyDigits = !c.eatDigits(isHexDigit)
		default:
			c.eatDigits(isDigit)
		}
	} else {
		c.eatDigits(isDigit)
	}

	// Hex literals take no fraction or exponent; 'e' is a digit there.
	if tok.Base != 10 {
		return tok
	}

	// A dot only starts a fraction when what follows could not begin an
	// identifier, so member access like 2.wei or 12.foo() lexes as an
	// integer followed by '.'. A separator underscore still counts as a
	// fraction so the error lands on the number, not the field access.
	if c.first() == '.' && (!isIdentStart(c.second()) || c.second() == '_') {
		tok.Kind = RawRational
		c.bump()
		c.eatDigits(isDigit)
	}

	if c.first() == 'e' || c.first() == 'E' {
		// Only a sign or digit after the 'e' makes it an exponent;
		// otherwise it is the start of an identifier like "ether".
		if isDigit(c.second()) || c.second() == '-' || c.second() == '_' {
			tok.Kind = RawRational
			c.bump()
			if c.first() == '-' {
				c.bump()
			}
			tok.EmptyExp = !c.eatDigits(isDigit)
		}
	}
	return tok
}

// eatDigits consumes digits and separator underscores, reporting
// whether at least one real digit was seen. Underscore placement is
// validated during literal materialization, not here.
func (c *Cursor) eatDigits(digit func(byte) bool) bool {
	seen := false
	for c.pos < len(c.src) {
		b := c.src[c.pos]
		if digit(b) {
			seen = true
		} else if b != '_' {
			break
		}
		c.pos++
	}
	return seen
}

func isPunctByte(b byte) bool {
	switch b {
	case '+', '-', '*', '/', '%', '=', '!', '<', '>', '&', '|', '^', '~',
		'?', ':', ';', ',', '(', ')', '[', ']', '{', '}', '.':
		return true
	}
	return false
}

// eatOperator extends a punctuation token to its maximal munch. The
// first byte has already been consumed.
func (c *Cursor) eatOperator(first byte) {
	second := c.first()
	switch first {
	case '<':
		if second == '<' {
			c.bump()
			if c.first() == '=' {
				c.bump() // <<=
			}
			return
		}
		if second == '=' {
			c.bump()
		}
	case '>':
		if second == '>' {
			c.bump()
			if c.first() == '=' {
				c.bump() // >>=
			}
			return
		}
		if second == '=' {
			c.bump()
		}
	case '=':
		if second == '=' || second == '>' {
			c.bump()
		}
	case '+':
		if second == '+' || second == '=' {
			c.bump()
		}
	case '-':
		if second == '-' || second == '=' || second == '>' {
			c.bump()
		}
	case '*':
		if second == '*' || second == '=' {
			c.bump()
		}
	case '/', '%', '^':
		if second == '=' {
			c.bump()
		}
	case '&':
		if second == '&' || second == '=' {
			c.bump()
		}
	case '|':
		if second == '|' || second == '=' {
			c.bump()
		}
	case '!':
		if second == '=' {
			c.bump()
		}
	case ':':
		if second == '=' {
			c.bump()
		}
	}
}
