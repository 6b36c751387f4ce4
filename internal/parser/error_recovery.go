package parser

import (
	"github.com/solyn-lang/solyn/internal/lexer"
)

// Recovery is resynchronization by token class: after a parse error
// the cursor skips forward to the next boundary where a fresh item or
// statement plausibly begins, so one mistake produces one diagnostic
// instead of a cascade.

// itemStart reports whether tt can begin a file-level or contract
// item. Identifiers are deliberately excluded: they are too common in
// skipped garbage to be a useful anchor.
func itemStart(tt lexer.TokenType) bool {
	switch tt {
	case lexer.TokenPragma, lexer.TokenImport, lexer.TokenUsing,
		lexer.TokenAbstract, lexer.TokenContract, lexer.TokenInterface, lexer.TokenLibrary,
		lexer.TokenFunction, lexer.TokenConstructor, lexer.TokenFallback, lexer.TokenReceive,
		lexer.TokenModifier, lexer.TokenStruct, lexer.TokenEnum, lexer.TokenEvent,
		lexer.TokenErrorKw, lexer.TokenTypeKw, lexer.TokenMapping:
		return true
	}
	return tt.IsElementaryType()
}

// stmtStart reports whether tt begins an unambiguous statement
func stmtStart(tt lexer.TokenType) bool {
	switch tt {
	case lexer.TokenIf, lexer.TokenFor, lexer.TokenWhile, lexer.TokenDo,
		lexer.TokenReturn, lexer.TokenBreak, lexer.TokenContinue,
		lexer.TokenEmit, lexer.TokenRevert, lexer.TokenTry, lexer.TokenDelete,
		lexer.TokenAssembly, lexer.TokenUnchecked:
		return true
	}
	return false
}

// syncItem skips ahead to the next plausible item start. Brace groups
// are skipped whole. A `;` at nesting depth zero is consumed, since it
// most likely terminates the broken item. When stopAtBrace is set an
// unmatched `}` is left for the caller to consume as its closing
// delimiter; at file level strays are eaten instead.
func (p *Parser) syncItem(stopAtBrace bool) {
	depth := 0
	for !p.aborted {
		switch tt := p.current().Type; tt {
		case lexer.TokenEOF:
			return
		case lexer.TokenLBrace:
			depth++
			p.next()
		case lexer.TokenRBrace:
			if depth == 0 && stopAtBrace {
				return
			}
			if depth > 0 {
				depth--
			}
			p.next()
		case lexer.TokenSemicolon:
			p.next()
			if depth == 0 {
				return
			}
		default:
			if depth == 0 && itemStart(tt) {
				return
			}
			p.next()
		}
	}
}

// syncStatement skips ahead to the next statement boundary inside a
// block: past a `;`, or up to a `{`, `}` or statement keyword.
func (p *Parser) syncStatement() {
	for !p.aborted {
		switch tt := p.current().Type; tt {
		case lexer.TokenEOF, lexer.TokenLBrace, lexer.TokenRBrace:
			return
		case lexer.TokenSemicolon:
			p.next()
			return
		default:
			if stmtStart(tt) {
				return
			}
			p.next()
		}
	}
}

// skipBalanced advances the cursor past one balanced open..close
// group, nesting included. The cursor must sit on open; the scan uses
// the cursor directly and does not touch p.prev. Returns false when
// the group never closes.
func (p *Parser) skipBalanced(open, close lexer.TokenType) bool {
	if p.c.Current().Type != open {
		return false
	}
	depth := 0
	for {
		switch tt := p.c.Current().Type; tt {
		case lexer.TokenEOF:
			return false
		case open:
			depth++
			p.c.Bump()
		case close:
			depth--
			p.c.Bump()
			if depth == 0 {
				return true
			}
		default:
			p.c.Bump()
		}
	}
}
