// Package parser turns Solidity and Yul source into the syntax trees
// of the ast package. Parsing is recursive descent with single-token
// dispatch almost everywhere; expressions use precedence climbing and
// the few ambiguous statement heads are resolved by scanning ahead
// over balanced brackets. Errors never stop the parse: the parser
// records a diagnostic, resynchronizes at the next safe boundary and
// keeps going, so one pass over a file yields one tree and the full
// set of complaints.
package parser

import (
	"fmt"

	"github.com/solyn-lang/solyn/internal/ast"
	"github.com/solyn-lang/solyn/internal/diag"
	"github.com/solyn-lang/solyn/internal/intern"
	"github.com/solyn-lang/solyn/internal/lexer"
	"github.com/solyn-lang/solyn/internal/source"
)

// maxNestingDepth bounds statement, expression and type recursion so
// that adversarial input cannot blow the goroutine stack. Reaching
// the limit aborts the file with a fatal diagnostic.
const maxNestingDepth = 256

// Parser holds the state of one file parse. It is not safe for
// concurrent use; parallel builds run one Parser per file.
type Parser struct {
	file     *source.SourceFile
	interner *intern.Interner
	sink     *diag.Sink
	arena    *ast.Arena
	c        *Cursor

	prev    lexer.Token // last consumed token, closes parent spans
	depth   int
	aborted bool

	underscore intern.Symbol
}

// New tokenizes file and returns a parser over the result. Lexer
// diagnostics land in the same sink as parser diagnostics.
func New(file *source.SourceFile, interner *intern.Interner, sink *diag.Sink, arena *ast.Arena) *Parser {
	toks := lexer.New(file, interner, sink).Tokenize()
	return &Parser{
		file:       file,
		interner:   interner,
		sink:       sink,
		arena:      arena,
		c:          NewCursor(toks),
		underscore: interner.Intern("_"),
	}
}

// ParseSourceUnit parses the whole file and returns its root node.
// The tree is complete even for malformed input: constructs that did
// not parse are covered by Bad* nodes and a diagnostic each.
func (p *Parser) ParseSourceUnit() *ast.SourceUnit {
	var items []ast.Item
	for !p.c.AtEOF() && !p.aborted {
		if p.sink.LimitReached() {
			break
		}
		pos := p.c.Pos()
		items = append(items, p.parseItem())
		if p.c.Pos() == pos {
			// The item parser failed without consuming anything.
			p.next()
		}
	}
	return ast.NewIn(p.arena, ast.SourceUnit{
		Span:  p.file.Span(),
		Name:  p.file.Name,
		Items: items,
	})
}

// ====== Token Helpers ======

func (p *Parser) current() lexer.Token { return p.c.Current() }

func (p *Parser) next() lexer.Token {
	p.prev = p.c.Bump()
	return p.prev
}

func (p *Parser) currentIs(tt lexer.TokenType) bool { return p.c.Current().Type == tt }

func (p *Parser) peekIs(n int, tt lexer.TokenType) bool { return p.c.Peek(n).Type == tt }

// accept consumes the current token if it has the given type
func (p *Parser) accept(tt lexer.TokenType) bool {
	if p.currentIs(tt) {
		p.next()
		return true
	}
	return false
}

// expect consumes the current token if it has the given type and
// reports an error otherwise. The offending token is not consumed, so
// the caller can resynchronize on it.
func (p *Parser) expect(tt lexer.TokenType) bool {
	if p.currentIs(tt) {
		p.next()
		return true
	}
	p.expected(tt)
	return false
}

// expectClosing is expect for closing delimiters: the error carries a
// label pointing back at the unmatched opener.
func (p *Parser) expectClosing(tt lexer.TokenType, open lexer.Token) bool {
	if p.currentIs(tt) {
		p.next()
		return true
	}
	if p.aborted {
		return false
	}
	cur := p.current()
	p.sink.Emit(diag.New(diag.Error, diag.CodeExpectedToken, cur.Span,
		fmt.Sprintf("expected %s, found %s", describeToken(tt), describeToken(cur.Type))).
		WithLabel(open.Span, fmt.Sprintf("to match this %s", describeToken(open.Type))))
	return false
}

// spanFrom closes a node span: from start to the last consumed token
func (p *Parser) spanFrom(start source.Span) source.Span {
	return start.To(p.prev.Span)
}

// ====== Diagnostics ======

// errorf emits a parse error. After the nesting guard trips nothing
// more is reported; the unwinding frames would otherwise flood the
// sink with one missing-delimiter error per level.
func (p *Parser) errorf(code diag.Code, span source.Span, format string, args ...interface{}) {
	if p.aborted {
		return
	}
	p.sink.Emit(diag.New(diag.Error, code, span, fmt.Sprintf(format, args...)))
}

func (p *Parser) expected(tt lexer.TokenType) {
	cur := p.current()
	p.errorf(diag.CodeExpectedToken, cur.Span,
		"expected %s, found %s", describeToken(tt), describeToken(cur.Type))
}

// describeToken renders a token type the way diagnostics quote it:
// punctuation and keywords by their spelling, open classes by name.
func describeToken(tt lexer.TokenType) string {
	switch tt {
	case lexer.TokenEOF:
		return "end of file"
	case lexer.TokenError:
		return "invalid token"
	case lexer.TokenIdentifier:
		return "identifier"
	case lexer.TokenInteger, lexer.TokenRational:
		return "number"
	case lexer.TokenString, lexer.TokenHexString, lexer.TokenUnicodeString:
		return "string literal"
	case lexer.TokenDocLineComment, lexer.TokenDocBlockComment:
		return "doc comment"
	default:
		return "'" + tt.String() + "'"
	}
}

// ====== Nesting Guard ======

// tooDeep reports whether the recursion budget is exhausted, emitting
// the fatal diagnostic once. Callers bump p.depth before asking.
func (p *Parser) tooDeep(span source.Span) bool {
	if p.depth <= maxNestingDepth {
		return false
	}
	if !p.aborted {
		p.aborted = true
		p.sink.Emit(diag.New(diag.Fatal, diag.CodeNestingTooDeep, span,
			fmt.Sprintf("more than %d levels of nesting, giving up on this file", maxNestingDepth)))
	}
	return true
}

// ====== Shared Productions ======

// identLike reports whether the token can serve as an identifier.
// A few keywords are contextual and remain usable as names.
func identLike(tt lexer.TokenType) bool {
	switch tt {
	case lexer.TokenIdentifier, lexer.TokenFrom, lexer.TokenGlobal, lexer.TokenErrorKw:
		return true
	}
	return false
}

// parseIdent consumes one identifier. On failure it reports the error
// and returns an empty ident at the current position, consuming
// nothing.
func (p *Parser) parseIdent() *ast.Ident {
	tok := p.current()
	if !identLike(tok.Type) {
		p.expected(lexer.TokenIdentifier)
		return ast.NewIn(p.arena, ast.Ident{Span: tok.Span.ShrinkToLo()})
	}
	p.next()
	return ast.NewIn(p.arena, ast.Ident{Span: tok.Span, Name: tok.Symbol})
}

// parseIdentPath parses a dotted path such as a.b.c
func (p *Parser) parseIdentPath() *ast.IdentPath {
	first := p.parseIdent()
	parts := []*ast.Ident{first}
	for p.currentIs(lexer.TokenDot) {
		p.next()
		parts = append(parts, p.parseIdent())
	}
	return ast.NewIn(p.arena, ast.IdentPath{Span: first.Span.To(p.prev.Span), Parts: parts})
}

// takeDocs collects the doc-comment tokens sitting immediately before
// the current token, ready to attach to a declaration.
func (p *Parser) takeDocs() []ast.DocComment {
	toks := p.c.DocsBefore()
	if len(toks) == 0 {
		return nil
	}
	out := make([]ast.DocComment, len(toks))
	for i, tok := range toks {
		out[i] = ast.DocComment{Span: tok.Span, Text: tok.Symbol}
	}
	return out
}

// docSetter is satisfied by every item node through its embedded doc
// list
type docSetter interface {
	SetDocs([]ast.DocComment)
}

func attachDocs(item ast.Item, doc []ast.DocComment) {
	if len(doc) == 0 {
		return
	}
	if s, ok := item.(docSetter); ok {
		s.SetDocs(doc)
	}
}

// textBetween returns the source text in the byte range [lo, hi)
func (p *Parser) textBetween(lo, hi source.BytePos) string {
	base := p.file.StartPos
	return p.file.Content[int(lo-base):int(hi-base)]
}

// ====== Item Dispatch ======

// parseItem parses one source-unit level declaration
func (p *Parser) parseItem() ast.Item {
	doc := p.takeDocs()
	start := p.current().Span
	var item ast.Item
	switch p.current().Type {
	case lexer.TokenPragma:
		item = p.parsePragma()
	case lexer.TokenImport:
		item = p.parseImport()
	case lexer.TokenAbstract, lexer.TokenContract, lexer.TokenInterface, lexer.TokenLibrary:
		item = p.parseContract()
	case lexer.TokenFunction:
		item = p.parseFunction(ast.FnFunction)
	case lexer.TokenStruct:
		item = p.parseStruct()
	case lexer.TokenEnum:
		item = p.parseEnum()
	case lexer.TokenEvent:
		item = p.parseEvent()
	case lexer.TokenErrorKw:
		item = p.parseErrorDef()
	case lexer.TokenUsing:
		item = p.parseUsing()
	case lexer.TokenTypeKw:
		item = p.parseUDVT()
	default:
		if p.startsType() {
			item = p.parseStateVar()
		} else {
			p.errorf(diag.CodeExpectedItem, start,
				"expected a declaration, found %s", describeToken(p.current().Type))
			p.syncItem(false)
			item = ast.NewIn(p.arena, ast.BadItem{Span: p.spanFrom(start)})
		}
	}
	attachDocs(item, doc)
	return item
}

// parseContractItem parses one declaration inside a contract,
// interface or library body.
func (p *Parser) parseContractItem() ast.Item {
	doc := p.takeDocs()
	start := p.current().Span
	var item ast.Item
	switch p.current().Type {
	case lexer.TokenFunction:
		item = p.parseFunction(ast.FnFunction)
	case lexer.TokenConstructor:
		item = p.parseFunction(ast.FnConstructor)
	case lexer.TokenFallback:
		item = p.parseFunction(ast.FnFallback)
	case lexer.TokenReceive:
		item = p.parseFunction(ast.FnReceive)
	case lexer.TokenModifier:
		item = p.parseFunction(ast.FnModifier)
	case lexer.TokenStruct:
		item = p.parseStruct()
	case lexer.TokenEnum:
		item = p.parseEnum()
	case lexer.TokenEvent:
		item = p.parseEvent()
	case lexer.TokenErrorKw:
		item = p.parseErrorDef()
	case lexer.TokenUsing:
		item = p.parseUsing()
	case lexer.TokenTypeKw:
		item = p.parseUDVT()
	case lexer.TokenPragma, lexer.TokenImport:
		p.errorf(diag.CodeExpectedItem, start,
			"%s is only allowed at file level", describeToken(p.current().Type))
		p.next()
		p.syncItem(true)
		item = ast.NewIn(p.arena, ast.BadItem{Span: p.spanFrom(start)})
	default:
		if p.startsType() {
			item = p.parseStateVar()
		} else {
			p.errorf(diag.CodeExpectedItem, start,
				"expected a declaration, found %s", describeToken(p.current().Type))
			p.syncItem(true)
			item = ast.NewIn(p.arena, ast.BadItem{Span: p.spanFrom(start)})
		}
	}
	attachDocs(item, doc)
	return item
}

// startsType reports whether the current token can begin a type, and
// with it a state variable or file-level constant declaration.
func (p *Parser) startsType() bool {
	tt := p.current().Type
	return tt.IsElementaryType() || tt == lexer.TokenMapping || identLike(tt)
}
