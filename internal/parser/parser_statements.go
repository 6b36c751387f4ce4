package parser

import (
	"github.com/solyn-lang/solyn/internal/ast"
	"github.com/solyn-lang/solyn/internal/diag"
	"github.com/solyn-lang/solyn/internal/intern"
	"github.com/solyn-lang/solyn/internal/lexer"
)

// ====== Statement Parsing ======

func (p *Parser) parseBlock() *ast.Block {
	open := p.current()
	if !p.expect(lexer.TokenLBrace) {
		return ast.NewIn(p.arena, ast.Block{Span: open.Span.ShrinkToLo()})
	}
	var stmts []ast.Stmt
	for !p.currentIs(lexer.TokenRBrace) && !p.c.AtEOF() && !p.aborted {
		pos := p.c.Pos()
		stmts = append(stmts, p.parseStatement())
		if p.c.Pos() == pos {
			p.next()
		}
	}
	p.expectClosing(lexer.TokenRBrace, open)
	return ast.NewIn(p.arena, ast.Block{Span: open.Span.To(p.prev.Span), Stmts: stmts})
}

func (p *Parser) parseStatement() ast.Stmt {
	p.depth++
	defer func() { p.depth-- }()
	if p.aborted || p.tooDeep(p.current().Span) {
		return ast.NewIn(p.arena, ast.BadStmt{Span: p.current().Span.ShrinkToLo()})
	}
	switch p.current().Type {
	case lexer.TokenLBrace:
		return p.parseBlock()
	case lexer.TokenUnchecked:
		return p.parseUnchecked()
	case lexer.TokenIf:
		return p.parseIf()
	case lexer.TokenFor:
		return p.parseFor()
	case lexer.TokenWhile:
		return p.parseWhile()
	case lexer.TokenDo:
		return p.parseDoWhile()
	case lexer.TokenContinue:
		start := p.next().Span
		p.expect(lexer.TokenSemicolon)
		return ast.NewIn(p.arena, ast.ContinueStmt{Span: p.spanFrom(start)})
	case lexer.TokenBreak:
		start := p.next().Span
		p.expect(lexer.TokenSemicolon)
		return ast.NewIn(p.arena, ast.BreakStmt{Span: p.spanFrom(start)})
	case lexer.TokenReturn:
		return p.parseReturn()
	case lexer.TokenEmit:
		return p.parseEmit()
	case lexer.TokenRevert:
		// `revert E(...)` is the revert statement; `revert(...)` is a
		// plain call to the builtin and parses as an expression.
		if identLike(p.c.Peek(1).Type) {
			return p.parseRevert()
		}
		return p.parseSimpleStatement(true)
	case lexer.TokenTry:
		return p.parseTry()
	case lexer.TokenAssembly:
		return p.parseAssembly()
	case lexer.TokenSemicolon:
		tok := p.next()
		p.errorf(diag.CodeExpectedStatement, tok.Span, "expected a statement, found ';'")
		return ast.NewIn(p.arena, ast.BadStmt{Span: tok.Span})
	default:
		if tok := p.current(); tok.Type == lexer.TokenIdentifier &&
			tok.Symbol == p.underscore && p.peekIs(1, lexer.TokenSemicolon) {
			p.next()
			p.expect(lexer.TokenSemicolon)
			return ast.NewIn(p.arena, ast.PlaceholderStmt{Span: p.spanFrom(tok.Span)})
		}
		return p.parseSimpleStatement(true)
	}
}

func (p *Parser) parseUnchecked() ast.Stmt {
	start := p.next().Span // unchecked
	var body *ast.Block
	if p.currentIs(lexer.TokenLBrace) {
		body = p.parseBlock()
	} else {
		p.expected(lexer.TokenLBrace)
		body = ast.NewIn(p.arena, ast.Block{Span: p.current().Span.ShrinkToLo()})
	}
	return ast.NewIn(p.arena, ast.UncheckedBlock{Span: p.spanFrom(start), Body: body})
}

func (p *Parser) parseIf() ast.Stmt {
	start := p.next().Span // if
	p.expect(lexer.TokenLParen)
	cond := p.parseExpression(LOWEST)
	p.expect(lexer.TokenRParen)
	then := p.parseStatement()
	var els ast.Stmt
	if p.accept(lexer.TokenElse) {
		els = p.parseStatement()
	}
	return ast.NewIn(p.arena, ast.IfStmt{Span: p.spanFrom(start), Cond: cond, Then: then, Else: els})
}

func (p *Parser) parseFor() ast.Stmt {
	start := p.next().Span // for
	p.expect(lexer.TokenLParen)
	var init ast.Stmt
	if !p.accept(lexer.TokenSemicolon) {
		init = p.parseSimpleStatement(false)
		p.expect(lexer.TokenSemicolon)
	}
	var cond ast.Expr
	if !p.currentIs(lexer.TokenSemicolon) {
		cond = p.parseExpression(LOWEST)
	}
	p.expect(lexer.TokenSemicolon)
	var post ast.Expr
	if !p.currentIs(lexer.TokenRParen) {
		post = p.parseExpression(LOWEST)
	}
	p.expect(lexer.TokenRParen)
	body := p.loopBody()
	return ast.NewIn(p.arena, ast.ForStmt{
		Span: p.spanFrom(start),
		Init: init,
		Cond: cond,
		Post: post,
		Body: body,
	})
}

func (p *Parser) parseWhile() ast.Stmt {
	start := p.next().Span // while
	p.expect(lexer.TokenLParen)
	cond := p.parseExpression(LOWEST)
	p.expect(lexer.TokenRParen)
	body := p.loopBody()
	return ast.NewIn(p.arena, ast.WhileStmt{Span: p.spanFrom(start), Cond: cond, Body: body})
}

func (p *Parser) parseDoWhile() ast.Stmt {
	start := p.next().Span // do
	body := p.loopBody()
	p.expect(lexer.TokenWhile)
	p.expect(lexer.TokenLParen)
	cond := p.parseExpression(LOWEST)
	p.expect(lexer.TokenRParen)
	p.expect(lexer.TokenSemicolon)
	return ast.NewIn(p.arena, ast.DoWhileStmt{Span: p.spanFrom(start), Body: body, Cond: cond})
}

// loopBody parses the body of a loop and rejects a bare variable
// declaration there: a declaration needs an enclosing block, since as
// the whole body it could never be referenced.
func (p *Parser) loopBody() ast.Stmt {
	body := p.parseStatement()
	if decl, ok := body.(*ast.VarDeclStmt); ok {
		p.errorf(diag.CodeVarDeclInLoopBody, decl.Span,
			"variable declarations can only be used inside blocks")
		return ast.NewIn(p.arena, ast.BadStmt{Span: decl.Span})
	}
	return body
}

func (p *Parser) parseReturn() ast.Stmt {
	start := p.next().Span // return
	var value ast.Expr
	if !p.currentIs(lexer.TokenSemicolon) && !p.currentIs(lexer.TokenRBrace) && !p.c.AtEOF() {
		value = p.parseExpression(LOWEST)
	}
	if !p.expect(lexer.TokenSemicolon) {
		p.syncStatement()
	}
	return ast.NewIn(p.arena, ast.ReturnStmt{Span: p.spanFrom(start), Value: value})
}

func (p *Parser) parseEmit() ast.Stmt {
	start := p.next().Span // emit
	call := p.expectCall(p.parseExpression(LOWEST), "expected an event call after 'emit'")
	if !p.expect(lexer.TokenSemicolon) {
		p.syncStatement()
	}
	return ast.NewIn(p.arena, ast.EmitStmt{Span: p.spanFrom(start), Call: call})
}

func (p *Parser) parseRevert() ast.Stmt {
	start := p.next().Span // revert
	call := p.expectCall(p.parseExpression(LOWEST), "expected an error call after 'revert'")
	if !p.expect(lexer.TokenSemicolon) {
		p.syncStatement()
	}
	return ast.NewIn(p.arena, ast.RevertStmt{Span: p.spanFrom(start), Call: call})
}

// expectCall checks that an emit or revert operand really is a call
// and wraps anything else so the statement node stays well-formed.
func (p *Parser) expectCall(x ast.Expr, msg string) *ast.CallExpr {
	if call, ok := x.(*ast.CallExpr); ok {
		return call
	}
	p.errorf(diag.CodeExpectedExpr, x.GetSpan(), "%s", msg)
	args := ast.NewIn(p.arena, ast.CallArgs{Span: x.GetSpan().ShrinkToHi()})
	return ast.NewIn(p.arena, ast.CallExpr{Span: x.GetSpan(), Callee: x, Args: args})
}

func (p *Parser) parseTry() ast.Stmt {
	start := p.next().Span // try
	call := p.parseExpression(LOWEST)
	if _, ok := call.(*ast.CallExpr); !ok {
		p.errorf(diag.CodeExpectedExpr, call.GetSpan(), "expected an external call after 'try'")
	}
	var returns *ast.ParamList
	if p.accept(lexer.TokenReturns) {
		returns = p.parseParamList(false)
	}
	body := p.parseBlock()
	var catches []*ast.CatchClause
	for p.currentIs(lexer.TokenCatch) && !p.aborted {
		catches = append(catches, p.parseCatch())
	}
	if len(catches) == 0 {
		p.expected(lexer.TokenCatch)
	}
	return ast.NewIn(p.arena, ast.TryStmt{
		Span:    p.spanFrom(start),
		Call:    call,
		Returns: returns,
		Body:    body,
		Catches: catches,
	})
}

// parseCatch parses one catch clause: bare `catch {}`, the low-level
// `catch (bytes memory data) {}`, or named `catch Error(string memory
// reason) {}`.
func (p *Parser) parseCatch() *ast.CatchClause {
	start := p.next().Span // catch
	var name *ast.Ident
	if identLike(p.current().Type) {
		name = p.parseIdent()
	}
	var params *ast.ParamList
	if p.currentIs(lexer.TokenLParen) {
		params = p.parseParamList(false)
	}
	body := p.parseBlock()
	return ast.NewIn(p.arena, ast.CatchClause{
		Span:   p.spanFrom(start),
		Name:   name,
		Params: params,
		Body:   body,
	})
}

// parseAssembly parses `assembly "evmasm" flags { ... }`, handing the
// block body to the Yul grammar.
func (p *Parser) parseAssembly() ast.Stmt {
	start := p.next().Span // assembly
	dialect := intern.EmptySymbol
	if p.currentIs(lexer.TokenString) {
		tok := p.next()
		dialect = tok.Symbol
		if p.interner.Resolve(tok.Symbol) != "evmasm" {
			p.errorf(diag.CodeYulSyntax, tok.Span,
				"only \"evmasm\" is supported as an assembly dialect")
		}
	}
	var flags []intern.Symbol
	if p.currentIs(lexer.TokenLParen) {
		open := p.next()
		for !p.currentIs(lexer.TokenRParen) && !p.c.AtEOF() {
			tok := p.current()
			if tok.Type != lexer.TokenString {
				p.errorf(diag.CodeExpectedToken, tok.Span,
					"expected a string assembly flag, found %s", describeToken(tok.Type))
				break
			}
			p.next()
			flags = append(flags, tok.Symbol)
			if !p.accept(lexer.TokenComma) {
				break
			}
		}
		p.expectClosing(lexer.TokenRParen, open)
	}
	body := p.parseYulBlock()
	return ast.NewIn(p.arena, ast.AssemblyStmt{
		Span:    p.spanFrom(start),
		Dialect: dialect,
		Flags:   flags,
		Body:    body,
	})
}

// ====== Simple Statements ======

// parseSimpleStatement parses a variable declaration or expression
// statement. With eatSemi the trailing semicolon is consumed as well;
// the for-loop header passes false and handles it itself.
func (p *Parser) parseSimpleStatement(eatSemi bool) ast.Stmt {
	start := p.current().Span
	stmt := p.parseSimpleCore()
	if eatSemi && !p.expect(lexer.TokenSemicolon) {
		p.syncStatement()
	}
	// The span closes late so it covers the semicolon.
	span := p.spanFrom(start)
	switch s := stmt.(type) {
	case *ast.VarDeclStmt:
		s.Span = span
	case *ast.ExprStmt:
		s.Span = span
	}
	return stmt
}

func (p *Parser) parseSimpleCore() ast.Stmt {
	if p.currentIs(lexer.TokenLParen) {
		return p.parseTupleStatement()
	}
	if p.looksLikeVarDecl() {
		decl := p.parseVarDeclCore()
		var value ast.Expr
		if p.accept(lexer.TokenAssign) {
			value = p.parseExpression(LOWEST)
		}
		return ast.NewIn(p.arena, ast.VarDeclStmt{Decls: []*ast.VarDecl{decl}, Value: value})
	}
	x := p.parseExpression(LOWEST)
	return ast.NewIn(p.arena, ast.ExprStmt{X: x})
}

// parseVarDeclCore parses `Type [location] name`, the unit shared by
// single and tuple declarations
func (p *Parser) parseVarDeclCore() *ast.VarDecl {
	start := p.current().Span
	typ := p.parseType()
	loc := ast.LocationNone
	if l := locationOf(p.current().Type); l != ast.LocationNone {
		loc = l
		p.next()
	}
	name := p.parseIdent()
	return ast.NewIn(p.arena, ast.VarDecl{
		Span:     p.spanFrom(start),
		Type:     typ,
		Location: loc,
		Name:     name,
	})
}

// parseTupleStatement disambiguates statements opening with `(`: a
// tuple declaration `(uint a, , uint c) = f()`, a tuple assignment
// `(a, b) = (b, a)`, or a parenthesized expression.
func (p *Parser) parseTupleStatement() ast.Stmt {
	if p.scanTupleDecl() {
		return p.parseTupleDecl()
	}
	x := p.parseExpression(LOWEST)
	return ast.NewIn(p.arena, ast.ExprStmt{X: x})
}

func (p *Parser) parseTupleDecl() ast.Stmt {
	open := p.next() // (
	var decls []*ast.VarDecl
	for {
		if p.currentIs(lexer.TokenComma) || p.currentIs(lexer.TokenRParen) {
			decls = append(decls, nil) // hole
		} else {
			decls = append(decls, p.parseVarDeclCore())
		}
		if !p.accept(lexer.TokenComma) {
			break
		}
	}
	p.expectClosing(lexer.TokenRParen, open)
	if !p.expect(lexer.TokenAssign) {
		return ast.NewIn(p.arena, ast.VarDeclStmt{Decls: decls, IsTuple: true})
	}
	value := p.parseExpression(LOWEST)
	return ast.NewIn(p.arena, ast.VarDeclStmt{Decls: decls, IsTuple: true, Value: value})
}

// ====== Lookahead ======

// looksLikeVarDecl reports whether a variable declaration starts at
// the cursor. The cursor position is restored.
func (p *Parser) looksLikeVarDecl() bool {
	pos := p.c.Pos()
	ok := p.scanVarDecl()
	p.c.SeekTo(pos)
	return ok
}

// scanVarDecl walks forward over one candidate declaration head:
// a type (elementary, path, mapping or function), any number of
// balanced bracket suffixes, then a location keyword or name. The
// grammar needs the scan because `A.B[3] storage x` and `a.b[3] = x`
// share an arbitrarily long prefix. Only the cursor moves; p.prev
// stays untouched so spans are unaffected.
func (p *Parser) scanVarDecl() bool {
	switch tt := p.c.Current().Type; {
	case tt == lexer.TokenMapping, tt == lexer.TokenFunction:
		// Neither can begin an expression, so this is already decided.
		return true
	case tt.IsElementaryType():
		p.c.Bump()
		if p.c.Current().Type == lexer.TokenPayable {
			p.c.Bump()
		}
	case identLike(tt):
		p.c.Bump()
		for p.c.Current().Type == lexer.TokenDot {
			p.c.Bump()
			if !identLike(p.c.Current().Type) {
				return false
			}
			p.c.Bump()
		}
	default:
		return false
	}
	for p.c.Current().Type == lexer.TokenLBracket {
		if !p.skipBalanced(lexer.TokenLBracket, lexer.TokenRBracket) {
			return false
		}
	}
	tt := p.c.Current().Type
	return identLike(tt) || locationOf(tt) != ast.LocationNone
}

// scanTupleDecl decides whether a `(` opens a tuple declaration by
// scanning to the first non-empty component. The cursor position is
// restored.
func (p *Parser) scanTupleDecl() bool {
	pos := p.c.Pos()
	defer p.c.SeekTo(pos)
	p.c.Bump() // (
	for p.c.Current().Type == lexer.TokenComma {
		p.c.Bump()
	}
	if p.c.Current().Type == lexer.TokenRParen {
		return false
	}
	return p.scanVarDecl()
}
