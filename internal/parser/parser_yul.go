package parser

import (
	"math/big"
	"strings"

	"github.com/solyn-lang/solyn/internal/ast"
	"github.com/solyn-lang/solyn/internal/diag"
	"github.com/solyn-lang/solyn/internal/lexer"
)

// ====== Yul Parsing ======
//
// Yul shares the Solidity token stream but almost none of its grammar:
// there are no operators, no semicolons, and most Solidity keywords
// become ordinary identifiers so that builtins like return(0, 0) and
// byte(0, x) keep working.

// ParseYul parses a file that is entirely Yul, as with standalone
// .yul inputs. The result is the top-level block.
func (p *Parser) ParseYul() *ast.YulBlock {
	block := p.parseYulBlock()
	if !p.c.AtEOF() && !p.aborted {
		p.errorf(diag.CodeUnexpectedTrailer, p.current().Span,
			"expected end of file, found %s", describeToken(p.current().Type))
	}
	return block
}

// yulIdentToken reports whether a token can serve as a Yul identifier.
// Only the structural Yul keywords and literal spellings are excluded.
func yulIdentToken(tt lexer.TokenType) bool {
	switch {
	case tt == lexer.TokenIdentifier:
		return true
	case tt == lexer.TokenTrue, tt == lexer.TokenFalse, tt == lexer.TokenHex:
		return false
	case tt.IsYulKeyword():
		return false
	default:
		return tt.IsKeyword()
	}
}

func yulLiteralToken(tt lexer.TokenType) bool {
	return tt.IsLiteral() || tt == lexer.TokenTrue || tt == lexer.TokenFalse
}

func (p *Parser) parseYulBlock() *ast.YulBlock {
	p.depth++
	defer func() { p.depth-- }()
	open := p.current()
	if p.aborted || p.tooDeep(open.Span) {
		return ast.NewIn(p.arena, ast.YulBlock{Span: open.Span.ShrinkToLo()})
	}
	if !p.expect(lexer.TokenLBrace) {
		return ast.NewIn(p.arena, ast.YulBlock{Span: open.Span.ShrinkToLo()})
	}
	var stmts []ast.YulStmt
	for !p.currentIs(lexer.TokenRBrace) && !p.c.AtEOF() && !p.aborted {
		pos := p.c.Pos()
		if stmt := p.parseYulStatement(); stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.c.Pos() == pos {
			p.next()
		}
	}
	p.expectClosing(lexer.TokenRBrace, open)
	return ast.NewIn(p.arena, ast.YulBlock{Span: open.Span.To(p.prev.Span), Stmts: stmts})
}

// parseYulStatement returns nil when the statement could not be
// parsed; the enclosing block skips it.
func (p *Parser) parseYulStatement() ast.YulStmt {
	tok := p.current()
	switch tok.Type {
	case lexer.TokenLBrace:
		return p.parseYulBlock()
	case lexer.TokenFunction:
		return p.parseYulFunction()
	case lexer.TokenLet:
		return p.parseYulVarDecl()
	case lexer.TokenIf:
		start := p.next().Span
		cond := p.parseYulExpression()
		body := p.parseYulBlock()
		return ast.NewIn(p.arena, ast.YulIf{Span: p.spanFrom(start), Cond: cond, Body: body})
	case lexer.TokenSwitch:
		return p.parseYulSwitch()
	case lexer.TokenFor:
		return p.parseYulFor()
	case lexer.TokenBreak:
		p.next()
		return ast.NewIn(p.arena, ast.YulBreak{Span: tok.Span})
	case lexer.TokenContinue:
		p.next()
		return ast.NewIn(p.arena, ast.YulContinue{Span: tok.Span})
	case lexer.TokenLeave:
		p.next()
		return ast.NewIn(p.arena, ast.YulLeave{Span: tok.Span})
	case lexer.TokenSemicolon:
		p.next()
		p.errorf(diag.CodeYulSolidityOnly, tok.Span, "statements inside assembly need no semicolon")
		return nil
	}
	if yulIdentToken(tok.Type) {
		return p.parseYulCallOrAssign()
	}
	if yulLiteralToken(tok.Type) {
		lit := p.parseYulLiteral()
		p.errorf(diag.CodeYulSyntax, lit.Span, "expected a call or assignment, found a literal")
		return nil
	}
	p.errorf(diag.CodeYulSyntax, tok.Span,
		"expected a statement inside assembly, found %s", describeToken(tok.Type))
	return nil
}

// parseYulCallOrAssign parses the statements that begin with an
// identifier: a bare call, or an assignment to one or more targets.
func (p *Parser) parseYulCallOrAssign() ast.YulStmt {
	start := p.current().Span
	first := p.parseYulPath()
	if p.currentIs(lexer.TokenLParen) {
		if len(first.Parts) > 1 {
			p.errorf(diag.CodeYulSyntax, first.Span, "only plain identifiers can be called")
		}
		call := p.parseYulCallTail(first.Parts[0])
		return ast.NewIn(p.arena, ast.YulExprStmt{Span: p.spanFrom(start), X: call})
	}
	targets := []*ast.YulPath{first}
	for p.accept(lexer.TokenComma) {
		targets = append(targets, p.parseYulPath())
	}
	switch {
	case p.accept(lexer.TokenYulAssign):
	case p.currentIs(lexer.TokenAssign):
		tok := p.next()
		p.sink.Emit(diag.New(diag.Error, diag.CodeYulSolidityOnly, tok.Span,
			"assignments inside assembly do not use '='").WithHelp("write ':=' instead"))
	default:
		if len(targets) == 1 {
			p.errorf(diag.CodeYulSyntax, p.current().Span, "expected a call or assignment")
			return nil
		}
		p.expected(lexer.TokenYulAssign)
		return nil
	}
	value := p.parseYulExpression()
	p.checkYulMultiValue(len(targets), value)
	return ast.NewIn(p.arena, ast.YulAssign{Span: p.spanFrom(start), Targets: targets, Value: value})
}

func (p *Parser) parseYulVarDecl() ast.YulStmt {
	start := p.next().Span // let
	var names []*ast.Ident
	for {
		names = append(names, p.parseYulIdent())
		if !p.accept(lexer.TokenComma) {
			break
		}
	}
	var value ast.YulExpr
	switch {
	case p.accept(lexer.TokenYulAssign):
		value = p.parseYulExpression()
	case p.currentIs(lexer.TokenAssign):
		tok := p.next()
		p.sink.Emit(diag.New(diag.Error, diag.CodeYulSolidityOnly, tok.Span,
			"assignments inside assembly do not use '='").WithHelp("write ':=' instead"))
		value = p.parseYulExpression()
	}
	p.checkYulMultiValue(len(names), value)
	return ast.NewIn(p.arena, ast.YulVarDecl{Span: p.spanFrom(start), Names: names, Value: value})
}

func (p *Parser) checkYulMultiValue(n int, value ast.YulExpr) {
	if n <= 1 || value == nil {
		return
	}
	if _, ok := value.(*ast.YulCall); !ok {
		p.errorf(diag.CodeYulSyntax, value.GetSpan(), "only a function call can yield multiple values")
	}
}

func (p *Parser) parseYulSwitch() ast.YulStmt {
	start := p.next().Span // switch
	expr := p.parseYulExpression()
	var cases []*ast.YulSwitchCase
	seenDefault := false
	for !p.aborted {
		if p.currentIs(lexer.TokenCase) {
			cstart := p.next().Span
			if seenDefault {
				p.errorf(diag.CodeYulSyntax, p.prev.Span, "case is not allowed after the default case")
			}
			var value *ast.YulLit
			if tok := p.current(); yulLiteralToken(tok.Type) {
				value = p.parseYulLiteral()
			} else {
				p.errorf(diag.CodeYulSyntax, tok.Span,
					"expected a literal case value, found %s", describeToken(tok.Type))
			}
			body := p.parseYulBlock()
			cases = append(cases, ast.NewIn(p.arena, ast.YulSwitchCase{
				Span:  cstart.To(p.prev.Span),
				Value: value,
				Body:  body,
			}))
			continue
		}
		if p.currentIs(lexer.TokenDefault) {
			dstart := p.next().Span
			if seenDefault {
				p.errorf(diag.CodeYulSyntax, p.prev.Span, "only one default case is allowed")
			}
			seenDefault = true
			body := p.parseYulBlock()
			cases = append(cases, ast.NewIn(p.arena, ast.YulSwitchCase{
				Span: dstart.To(p.prev.Span),
				Body: body,
			}))
			continue
		}
		break
	}
	if len(cases) == 0 {
		p.errorf(diag.CodeYulSyntax, p.current().Span,
			"switch statement needs at least one case or a default")
	}
	return ast.NewIn(p.arena, ast.YulSwitch{Span: p.spanFrom(start), Expr: expr, Cases: cases})
}

func (p *Parser) parseYulFor() ast.YulStmt {
	start := p.next().Span // for
	init := p.parseYulBlock()
	cond := p.parseYulExpression()
	post := p.parseYulBlock()
	body := p.parseYulBlock()
	return ast.NewIn(p.arena, ast.YulFor{
		Span: p.spanFrom(start),
		Init: init,
		Cond: cond,
		Post: post,
		Body: body,
	})
}

func (p *Parser) parseYulFunction() ast.YulStmt {
	start := p.next().Span // function
	name := p.parseYulIdent()
	open := p.current()
	p.expect(lexer.TokenLParen)
	var params []*ast.Ident
	if !p.currentIs(lexer.TokenRParen) {
		for {
			params = append(params, p.parseYulIdent())
			if !p.accept(lexer.TokenComma) {
				break
			}
		}
	}
	p.expectClosing(lexer.TokenRParen, open)
	var returns []*ast.Ident
	if p.accept(lexer.TokenArrow) {
		for {
			returns = append(returns, p.parseYulIdent())
			if !p.accept(lexer.TokenComma) {
				break
			}
		}
	}
	body := p.parseYulBlock()
	return ast.NewIn(p.arena, ast.YulFunctionDef{
		Span:    p.spanFrom(start),
		Name:    name,
		Params:  params,
		Returns: returns,
		Body:    body,
	})
}

// ====== Yul Expressions ======

// parseYulExpression parses a literal, a path, or a call. Yul has no
// operators, so trailing Solidity operator syntax is reported with a
// pointer at the builtin alternative.
func (p *Parser) parseYulExpression() ast.YulExpr {
	p.depth++
	defer func() { p.depth-- }()
	tok := p.current()
	if p.aborted || p.tooDeep(tok.Span) {
		return ast.NewIn(p.arena, ast.YulLit{
			Span:   tok.Span.ShrinkToLo(),
			Kind:   ast.YulLitNumber,
			IntVal: new(big.Int),
		})
	}
	var x ast.YulExpr
	switch {
	case yulLiteralToken(tok.Type):
		x = p.parseYulLiteral()
	case yulIdentToken(tok.Type):
		path := p.parseYulPath()
		if p.currentIs(lexer.TokenLParen) {
			if len(path.Parts) > 1 {
				p.errorf(diag.CodeYulSyntax, path.Span, "only plain identifiers can be called")
			}
			x = p.parseYulCallTail(path.Parts[0])
		} else {
			x = path
		}
	case tok.Type == lexer.TokenNot, tok.Type == lexer.TokenBitNot, tok.Type == lexer.TokenMinus:
		p.next()
		p.sink.Emit(diag.New(diag.Error, diag.CodeYulSolidityOnly, tok.Span,
			"the "+describeToken(tok.Type)+" operator is not allowed inside assembly blocks").
			WithHelp("use the builtin functions instead"))
		return p.parseYulExpression()
	default:
		p.errorf(diag.CodeYulSyntax, tok.Span,
			"expected an expression, found %s", describeToken(tok.Type))
		return ast.NewIn(p.arena, ast.YulLit{
			Span:   tok.Span.ShrinkToLo(),
			Kind:   ast.YulLitNumber,
			IntVal: new(big.Int),
		})
	}
	return p.checkYulOperator(x)
}

// checkYulOperator reports Solidity operator syntax after a Yul
// expression and skips over the operand so one misuse produces one
// diagnostic.
func (p *Parser) checkYulOperator(x ast.YulExpr) ast.YulExpr {
	tok := p.current()
	if tok.Type == lexer.TokenQuestion {
		p.errorf(diag.CodeYulSolidityOnly, tok.Span,
			"the ternary operator is not allowed inside assembly blocks")
		p.next()
		p.parseYulExpression()
		if p.accept(lexer.TokenColon) {
			p.parseYulExpression()
		}
		return x
	}
	if _, ok := binaryOps[tok.Type]; ok {
		p.sink.Emit(diag.New(diag.Error, diag.CodeYulSolidityOnly, tok.Span,
			"the "+describeToken(tok.Type)+" operator is not allowed inside assembly blocks").
			WithHelp("use the builtin functions instead, as in add(x, y)"))
		p.next()
		p.parseYulExpression()
		return x
	}
	return x
}

func (p *Parser) parseYulPath() *ast.YulPath {
	first := p.parseYulIdent()
	path := ast.NewIn(p.arena, ast.YulPath{Span: first.Span, Parts: []*ast.Ident{first}})
	for p.currentIs(lexer.TokenDot) {
		p.next()
		part := p.parseYulIdent()
		path.Parts = append(path.Parts, part)
		path.Span = path.Span.To(part.Span)
	}
	return path
}

func (p *Parser) parseYulIdent() *ast.Ident {
	tok := p.current()
	if !yulIdentToken(tok.Type) {
		p.errorf(diag.CodeExpectedToken, tok.Span,
			"expected identifier, found %s", describeToken(tok.Type))
		return ast.NewIn(p.arena, ast.Ident{Span: tok.Span.ShrinkToLo()})
	}
	p.next()
	return ast.NewIn(p.arena, ast.Ident{Span: tok.Span, Name: tok.Symbol})
}

func (p *Parser) parseYulCallTail(name *ast.Ident) *ast.YulCall {
	open := p.next() // (
	var args []ast.YulExpr
	if !p.currentIs(lexer.TokenRParen) {
		for {
			args = append(args, p.parseYulExpression())
			if !p.accept(lexer.TokenComma) {
				break
			}
		}
	}
	p.expectClosing(lexer.TokenRParen, open)
	return ast.NewIn(p.arena, ast.YulCall{Span: name.Span.To(p.prev.Span), Name: name, Args: args})
}

// ====== Yul Literals ======

// parseYulLiteral materializes a Yul literal. Numbers must fit the EVM
// word and strings its 32 bytes; rationals and unicode strings do not
// exist in Yul at all.
func (p *Parser) parseYulLiteral() *ast.YulLit {
	tok := p.next()
	lit := ast.NewIn(p.arena, ast.YulLit{Span: tok.Span, Raw: tok.Symbol})
	switch tok.Type {
	case lexer.TokenTrue, lexer.TokenFalse:
		lit.Kind = ast.YulLitBool
		lit.BoolVal = tok.Type == lexer.TokenTrue
	case lexer.TokenInteger:
		lit.Kind = ast.YulLitNumber
		clean := strings.ReplaceAll(p.interner.Resolve(tok.Symbol), "_", "")
		base := 10
		if strings.HasPrefix(clean, "0x") || strings.HasPrefix(clean, "0X") {
			base = 16
			clean = clean[2:]
		}
		val, ok := new(big.Int).SetString(clean, base)
		if !ok {
			lit.IntVal = new(big.Int)
			break
		}
		if val.BitLen() > 256 {
			p.errorf(diag.CodeYulInvalidLiteral, tok.Span,
				"number literal does not fit in 256 bits")
			val = new(big.Int)
		}
		lit.IntVal = val
	case lexer.TokenRational:
		lit.Kind = ast.YulLitNumber
		lit.IntVal = new(big.Int)
		p.errorf(diag.CodeYulInvalidLiteral, tok.Span,
			"only integer numbers are allowed inside assembly")
	case lexer.TokenString:
		lit.Kind = ast.YulLitString
		lit.StrVal = lexer.Unescape(p.interner.Resolve(tok.Symbol), lexer.ModeStr, nil)
		p.checkYulStringLen(lit)
	case lexer.TokenHexString:
		lit.Kind = ast.YulLitHexString
		lit.StrVal = lexer.Unescape(p.interner.Resolve(tok.Symbol), lexer.ModeHexStr, nil)
		p.checkYulStringLen(lit)
	case lexer.TokenUnicodeString:
		lit.Kind = ast.YulLitString
		lit.StrVal = lexer.Unescape(p.interner.Resolve(tok.Symbol), lexer.ModeUnicodeStr, nil)
		p.errorf(diag.CodeYulInvalidLiteral, tok.Span,
			"unicode string literals are not allowed inside assembly")
	}
	return lit
}

func (p *Parser) checkYulStringLen(lit *ast.YulLit) {
	if len(lit.StrVal) > 32 {
		p.errorf(diag.CodeYulInvalidLiteral, lit.Span,
			"string literals inside assembly are limited to 32 bytes")
	}
}
