package parser

import (
	"github.com/solyn-lang/solyn/internal/ast"
	"github.com/solyn-lang/solyn/internal/diag"
	"github.com/solyn-lang/solyn/internal/lexer"
)

// ====== Precedence ======

type Precedence int

const (
	LOWEST      Precedence = iota + 1
	ASSIGN      // = += -= *= /= %= &= |= ^= <<= >>=
	TERNARY     // ? :
	LOGICAL_OR  // ||
	LOGICAL_AND // &&
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	BITWISE_OR  // |
	BITWISE_XOR // ^
	BITWISE_AND // &
	SHIFT       // << >>
	SUM         // + -
	PRODUCT     // * / %
	POWER       // **
	PREFIX      // -x !x ~x ++x --x delete x
	POSTFIX     // x++ x--
	CALL        // x() x[] x.y x{gas: g}
)

var precedences = map[lexer.TokenType]Precedence{
	lexer.TokenAssign:       ASSIGN,
	lexer.TokenPlusAssign:   ASSIGN,
	lexer.TokenMinusAssign:  ASSIGN,
	lexer.TokenMulAssign:    ASSIGN,
	lexer.TokenDivAssign:    ASSIGN,
	lexer.TokenModAssign:    ASSIGN,
	lexer.TokenBitAndAssign: ASSIGN,
	lexer.TokenBitOrAssign:  ASSIGN,
	lexer.TokenBitXorAssign: ASSIGN,
	lexer.TokenShlAssign:    ASSIGN,
	lexer.TokenShrAssign:    ASSIGN,
	lexer.TokenQuestion:     TERNARY,
	lexer.TokenOr:           LOGICAL_OR,
	lexer.TokenAnd:          LOGICAL_AND,
	lexer.TokenEq:           EQUALS,
	lexer.TokenNe:           EQUALS,
	lexer.TokenLt:           LESSGREATER,
	lexer.TokenLe:           LESSGREATER,
	lexer.TokenGt:           LESSGREATER,
	lexer.TokenGe:           LESSGREATER,
	lexer.TokenBitOr:        BITWISE_OR,
	lexer.TokenBitXor:       BITWISE_XOR,
	lexer.TokenBitAnd:       BITWISE_AND,
	lexer.TokenShl:          SHIFT,
	lexer.TokenShr:          SHIFT,
	lexer.TokenPlus:         SUM,
	lexer.TokenMinus:        SUM,
	lexer.TokenMul:          PRODUCT,
	lexer.TokenDiv:          PRODUCT,
	lexer.TokenMod:          PRODUCT,
	lexer.TokenPower:        POWER,
	lexer.TokenInc:          POSTFIX,
	lexer.TokenDec:          POSTFIX,
	lexer.TokenLParen:       CALL,
	lexer.TokenLBracket:     CALL,
	lexer.TokenDot:          CALL,
	lexer.TokenLBrace:       CALL,
}

var binaryOps = map[lexer.TokenType]ast.BinOp{
	lexer.TokenPlus:   ast.BinAdd,
	lexer.TokenMinus:  ast.BinSub,
	lexer.TokenMul:    ast.BinMul,
	lexer.TokenDiv:    ast.BinDiv,
	lexer.TokenMod:    ast.BinMod,
	lexer.TokenPower:  ast.BinPow,
	lexer.TokenShl:    ast.BinShl,
	lexer.TokenShr:    ast.BinShr,
	lexer.TokenBitAnd: ast.BinBitAnd,
	lexer.TokenBitOr:  ast.BinBitOr,
	lexer.TokenBitXor: ast.BinBitXor,
	lexer.TokenAnd:    ast.BinAnd,
	lexer.TokenOr:     ast.BinOr,
	lexer.TokenEq:     ast.BinEq,
	lexer.TokenNe:     ast.BinNe,
	lexer.TokenLt:     ast.BinLt,
	lexer.TokenLe:     ast.BinLe,
	lexer.TokenGt:     ast.BinGt,
	lexer.TokenGe:     ast.BinGe,
}

// assignOps maps assignment tokens to the operator of their compound
// form; plain `=` maps to BinInvalid.
var assignOps = map[lexer.TokenType]ast.BinOp{
	lexer.TokenAssign:       ast.BinInvalid,
	lexer.TokenPlusAssign:   ast.BinAdd,
	lexer.TokenMinusAssign:  ast.BinSub,
	lexer.TokenMulAssign:    ast.BinMul,
	lexer.TokenDivAssign:    ast.BinDiv,
	lexer.TokenModAssign:    ast.BinMod,
	lexer.TokenBitAndAssign: ast.BinBitAnd,
	lexer.TokenBitOrAssign:  ast.BinBitOr,
	lexer.TokenBitXorAssign: ast.BinBitXor,
	lexer.TokenShlAssign:    ast.BinShl,
	lexer.TokenShrAssign:    ast.BinShr,
}

// ====== Expression Parsing ======

// parseExpression climbs precedence levels starting from min. Callers
// outside this file pass LOWEST.
func (p *Parser) parseExpression(min Precedence) ast.Expr {
	p.depth++
	defer func() { p.depth-- }()
	if p.aborted || p.tooDeep(p.current().Span) {
		return ast.NewIn(p.arena, ast.BadExpr{Span: p.current().Span.ShrinkToLo()})
	}
	left := p.parseUnaryExpression()
	for {
		tt := p.current().Type
		if tt == lexer.TokenLBrace && !p.startsCallOptions() {
			// A block, not `f{gas: g}` options.
			return left
		}
		prec, ok := precedences[tt]
		if !ok || prec < min {
			return left
		}
		left = p.parseInfix(left, prec)
	}
}

// startsCallOptions distinguishes `f{gas: g}(...)` from a statement
// block after the expression: the brace must be followed by `name :`.
func (p *Parser) startsCallOptions() bool {
	return identLike(p.c.Peek(1).Type) && p.c.Peek(2).Type == lexer.TokenColon
}

func (p *Parser) parseInfix(left ast.Expr, prec Precedence) ast.Expr {
	tok := p.current()
	switch tok.Type {
	case lexer.TokenLParen:
		args := p.parseCallArgs()
		return ast.NewIn(p.arena, ast.CallExpr{
			Span:   left.GetSpan().To(args.Span),
			Callee: left,
			Args:   args,
		})
	case lexer.TokenLBracket:
		return p.parseIndexOrSlice(left)
	case lexer.TokenDot:
		p.next()
		member := p.parseMemberName()
		return ast.NewIn(p.arena, ast.MemberExpr{
			Span:   left.GetSpan().To(member.Span),
			X:      left,
			Member: member,
		})
	case lexer.TokenLBrace:
		opts := p.parseNamedArgs()
		return ast.NewIn(p.arena, ast.CallOptionsExpr{
			Span: left.GetSpan().To(p.prev.Span),
			X:    left,
			Opts: opts,
		})
	case lexer.TokenInc, lexer.TokenDec:
		p.next()
		op := ast.UnInc
		if tok.Type == lexer.TokenDec {
			op = ast.UnDec
		}
		return ast.NewIn(p.arena, ast.UnaryExpr{
			Span: left.GetSpan().To(tok.Span),
			Op:   op,
			X:    left,
		})
	case lexer.TokenQuestion:
		return p.parseTernary(left)
	}
	if op, ok := assignOps[tok.Type]; ok {
		p.next()
		rhs := p.parseExpression(prec) // right associative
		return ast.NewIn(p.arena, ast.AssignExpr{
			Span: left.GetSpan().To(rhs.GetSpan()),
			Op:   op,
			X:    left,
			Y:    rhs,
		})
	}
	p.next()
	rhsPrec := prec + 1
	if tok.Type == lexer.TokenPower {
		rhsPrec = prec // a ** b ** c nests to the right
	}
	rhs := p.parseExpression(rhsPrec)
	return ast.NewIn(p.arena, ast.BinaryExpr{
		Span: left.GetSpan().To(rhs.GetSpan()),
		Op:   binaryOps[tok.Type],
		X:    left,
		Y:    rhs,
	})
}

func (p *Parser) parseTernary(cond ast.Expr) ast.Expr {
	p.next() // ?
	then := p.parseExpression(LOWEST)
	p.expect(lexer.TokenColon)
	// An assignment binds into the else branch: `a ? b : c = d`
	// assigns to c, not to the whole conditional.
	els := p.parseExpression(ASSIGN)
	return ast.NewIn(p.arena, ast.TernaryExpr{
		Span: cond.GetSpan().To(els.GetSpan()),
		Cond: cond,
		Then: then,
		Else: els,
	})
}

func (p *Parser) parseIndexOrSlice(x ast.Expr) ast.Expr {
	open := p.next() // [
	if p.accept(lexer.TokenColon) {
		var end ast.Expr
		if !p.currentIs(lexer.TokenRBracket) {
			end = p.parseExpression(LOWEST)
		}
		p.expectClosing(lexer.TokenRBracket, open)
		return ast.NewIn(p.arena, ast.SliceExpr{Span: x.GetSpan().To(p.prev.Span), X: x, End: end})
	}
	var index ast.Expr
	if !p.currentIs(lexer.TokenRBracket) {
		index = p.parseExpression(LOWEST)
	}
	if p.accept(lexer.TokenColon) {
		var end ast.Expr
		if !p.currentIs(lexer.TokenRBracket) {
			end = p.parseExpression(LOWEST)
		}
		p.expectClosing(lexer.TokenRBracket, open)
		return ast.NewIn(p.arena, ast.SliceExpr{
			Span:  x.GetSpan().To(p.prev.Span),
			X:     x,
			Start: index,
			End:   end,
		})
	}
	p.expectClosing(lexer.TokenRBracket, open)
	// `x[]` with no index stays legal for abstract type positions like
	// `abi.decode(data, (uint[]))`.
	return ast.NewIn(p.arena, ast.IndexExpr{Span: x.GetSpan().To(p.prev.Span), X: x, Index: index})
}

// parseMemberName accepts a plain identifier or the `address` keyword,
// which doubles as a member in `f.address`.
func (p *Parser) parseMemberName() *ast.Ident {
	if tok := p.current(); tok.Type == lexer.TokenAddress {
		p.next()
		return ast.NewIn(p.arena, ast.Ident{Span: tok.Span, Name: tok.Symbol})
	}
	return p.parseIdent()
}

// ====== Unary and Primary ======

func (p *Parser) parseUnaryExpression() ast.Expr {
	tok := p.current()
	var op ast.UnOp
	switch tok.Type {
	case lexer.TokenPlus:
		p.next()
		p.errorf(diag.CodeUnaryPlus, tok.Span, "use of the unary + operator is not allowed")
		return p.parseExpression(PREFIX)
	case lexer.TokenMinus:
		op = ast.UnNeg
	case lexer.TokenNot:
		op = ast.UnNot
	case lexer.TokenBitNot:
		op = ast.UnBitNot
	case lexer.TokenInc:
		op = ast.UnInc
	case lexer.TokenDec:
		op = ast.UnDec
	case lexer.TokenDelete:
		op = ast.UnDelete
	default:
		return p.parsePrimaryExpression()
	}
	p.next()
	x := p.parseExpression(PREFIX)
	return ast.NewIn(p.arena, ast.UnaryExpr{
		Span:   tok.Span.To(x.GetSpan()),
		Op:     op,
		X:      x,
		Prefix: true,
	})
}

func (p *Parser) parsePrimaryExpression() ast.Expr {
	tok := p.current()
	switch {
	case tok.Type == lexer.TokenTrue, tok.Type == lexer.TokenFalse:
		p.next()
		return ast.NewIn(p.arena, ast.Literal{
			Span:    tok.Span,
			Kind:    ast.LitBool,
			Raw:     tok.Symbol,
			BoolVal: tok.Type == lexer.TokenTrue,
		})

	case tok.Type == lexer.TokenInteger, tok.Type == lexer.TokenRational:
		return p.parseNumberLiteral()

	case tok.Type == lexer.TokenString, tok.Type == lexer.TokenUnicodeString,
		tok.Type == lexer.TokenHexString:
		return p.parseStringLiteral()

	case tok.Type == lexer.TokenNew:
		start := p.next().Span
		typ := p.parseType()
		return ast.NewIn(p.arena, ast.NewExpr{Span: start.To(typ.GetSpan()), Type: typ})

	case tok.Type == lexer.TokenTypeKw:
		start := p.next().Span
		open := p.current()
		p.expect(lexer.TokenLParen)
		typ := p.parseType()
		p.expectClosing(lexer.TokenRParen, open)
		return ast.NewIn(p.arena, ast.TypeExpr{Span: p.spanFrom(start), Type: typ})

	case tok.Type == lexer.TokenPayable:
		// `payable(addr)` casts; the callee is the type expression.
		p.next()
		et := ast.NewIn(p.arena, ast.ElementaryType{
			Span:    tok.Span,
			Kind:    ast.ElemAddress,
			Payable: true,
		})
		return ast.NewIn(p.arena, ast.ElementaryTypeExpr{Span: tok.Span, Type: et})

	case tok.Type == lexer.TokenByte:
		p.next()
		p.errorf(diag.CodeExpectedType, tok.Span, "type 'byte' has been removed, use 'bytes1'")
		et := ast.NewIn(p.arena, ast.ElementaryType{
			Span: tok.Span,
			Kind: ast.ElemFixedBytes,
			Size: 1,
		})
		return ast.NewIn(p.arena, ast.ElementaryTypeExpr{Span: tok.Span, Type: et})

	case tok.Type.IsElementaryType():
		et := p.parseElementaryType()
		return ast.NewIn(p.arena, ast.ElementaryTypeExpr{Span: et.Span, Type: et})

	case identLike(tok.Type), tok.Type == lexer.TokenRevert:
		// `revert` doubles as the builtin function in `revert("why")`.
		p.next()
		return ast.NewIn(p.arena, ast.Ident{Span: tok.Span, Name: tok.Symbol})

	case tok.Type == lexer.TokenLParen:
		return p.parseTupleExpr()

	case tok.Type == lexer.TokenLBracket:
		return p.parseArrayLiteral()

	default:
		p.errorf(diag.CodeExpectedExpr, tok.Span,
			"expected an expression, found %s", describeToken(tok.Type))
		return ast.NewIn(p.arena, ast.BadExpr{Span: tok.Span.ShrinkToLo()})
	}
}

func (p *Parser) parseTupleExpr() ast.Expr {
	open := p.next() // (
	var elems []ast.Expr
	if !p.currentIs(lexer.TokenRParen) {
		for {
			if p.currentIs(lexer.TokenComma) || p.currentIs(lexer.TokenRParen) {
				elems = append(elems, nil) // hole
			} else {
				elems = append(elems, p.parseExpression(LOWEST))
			}
			if !p.accept(lexer.TokenComma) {
				break
			}
		}
	}
	p.expectClosing(lexer.TokenRParen, open)
	return ast.NewIn(p.arena, ast.TupleExpr{Span: open.Span.To(p.prev.Span), Elems: elems})
}

// parseArrayLiteral parses `[a, b, c]`. Unlike tuples, arrays have no
// holes; an empty component is reported where it occurs.
func (p *Parser) parseArrayLiteral() ast.Expr {
	open := p.next() // [
	var elems []ast.Expr
	if !p.currentIs(lexer.TokenRBracket) {
		for {
			elems = append(elems, p.parseExpression(LOWEST))
			if !p.accept(lexer.TokenComma) {
				break
			}
		}
	}
	p.expectClosing(lexer.TokenRBracket, open)
	return ast.NewIn(p.arena, ast.TupleExpr{
		Span:    open.Span.To(p.prev.Span),
		Elems:   elems,
		IsArray: true,
	})
}

// ====== Arguments ======

// parseCallArgs parses `(a, b)` or the named form `({x: a, y: b})`.
func (p *Parser) parseCallArgs() *ast.CallArgs {
	open := p.current()
	if !p.expect(lexer.TokenLParen) {
		return ast.NewIn(p.arena, ast.CallArgs{Span: open.Span.ShrinkToLo()})
	}
	args := ast.NewIn(p.arena, ast.CallArgs{})
	switch {
	case p.currentIs(lexer.TokenRParen):
	case p.currentIs(lexer.TokenLBrace):
		args.IsNamed = true
		args.Named = p.parseNamedArgs()
	default:
		for {
			args.Positional = append(args.Positional, p.parseExpression(LOWEST))
			if !p.accept(lexer.TokenComma) {
				break
			}
		}
	}
	p.expectClosing(lexer.TokenRParen, open)
	args.Span = open.Span.To(p.prev.Span)
	return args
}

// parseNamedArgs parses a braced `name: value` list, shared by named
// call arguments and call options.
func (p *Parser) parseNamedArgs() []*ast.NamedArg {
	open := p.current()
	p.next() // {
	var named []*ast.NamedArg
	for !p.currentIs(lexer.TokenRBrace) && !p.c.AtEOF() && !p.aborted {
		start := p.current().Span
		name := p.parseIdent()
		p.expect(lexer.TokenColon)
		value := p.parseExpression(LOWEST)
		named = append(named, ast.NewIn(p.arena, ast.NamedArg{
			Span:  start.To(value.GetSpan()),
			Name:  name,
			Value: value,
		}))
		if !p.accept(lexer.TokenComma) {
			break
		}
	}
	p.expectClosing(lexer.TokenRBrace, open)
	return named
}
