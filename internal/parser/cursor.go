package parser

import (
	"github.com/solyn-lang/solyn/internal/lexer"
)

// Cursor walks a tokenized file with arbitrary lookahead and cheap
// save/restore, which is what the statement disambiguator needs to
// scan ahead without committing. Doc-comment tokens are transparent:
// Current, Peek and Bump never land on one, and DocsBefore recovers
// the run sitting immediately before the current token.
type Cursor struct {
	toks []lexer.Token
	pos  int
}

// NewCursor wraps a token slice as produced by lexer.Tokenize. The
// slice must end in an EOF token.
func NewCursor(toks []lexer.Token) *Cursor {
	if len(toks) == 0 || toks[len(toks)-1].Type != lexer.TokenEOF {
		toks = append(toks, lexer.Token{Type: lexer.TokenEOF})
	}
	c := &Cursor{toks: toks}
	c.pos = c.skipDocs(0)
	return c
}

func isDocToken(tt lexer.TokenType) bool {
	return tt == lexer.TokenDocLineComment || tt == lexer.TokenDocBlockComment
}

// skipDocs returns the first non-doc index at or after i. The final
// EOF token stops the scan, so the result is always in range.
func (c *Cursor) skipDocs(i int) int {
	for i < len(c.toks)-1 && isDocToken(c.toks[i].Type) {
		i++
	}
	return i
}

// Current returns the token under the cursor without consuming it
func (c *Cursor) Current() lexer.Token { return c.toks[c.pos] }

// Peek returns the nth non-doc token after the current one; Peek(0)
// is Current. Past the end of the stream it keeps returning EOF.
func (c *Cursor) Peek(n int) lexer.Token {
	i := c.pos
	for n > 0 && c.toks[i].Type != lexer.TokenEOF {
		i = c.skipDocs(i + 1)
		n--
	}
	return c.toks[i]
}

// Bump consumes and returns the current token. At EOF it returns the
// EOF token forever.
func (c *Cursor) Bump() lexer.Token {
	tok := c.toks[c.pos]
	if tok.Type != lexer.TokenEOF {
		c.pos = c.skipDocs(c.pos + 1)
	}
	return tok
}

// Pos returns an opaque checkpoint for SeekTo
func (c *Cursor) Pos() int { return c.pos }

// SeekTo rewinds (or forwards) the cursor to a checkpoint previously
// returned by Pos
func (c *Cursor) SeekTo(pos int) { c.pos = pos }

// DocsBefore returns the contiguous run of doc-comment tokens
// immediately preceding the current token, or nil. The result aliases
// the underlying token slice.
func (c *Cursor) DocsBefore() []lexer.Token {
	lo := c.pos
	for lo > 0 && isDocToken(c.toks[lo-1].Type) {
		lo--
	}
	if lo == c.pos {
		return nil
	}
	return c.toks[lo:c.pos]
}

// AtEOF reports whether the cursor has reached the end of the stream
func (c *Cursor) AtEOF() bool { return c.toks[c.pos].Type == lexer.TokenEOF }
