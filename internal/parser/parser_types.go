package parser

import (
	"strconv"
	"strings"

	"github.com/solyn-lang/solyn/internal/ast"
	"github.com/solyn-lang/solyn/internal/diag"
	"github.com/solyn-lang/solyn/internal/lexer"
)

// ====== Type Parsing ======

// parseType parses a type name: elementary, named path, mapping,
// array or function type. Array suffixes are applied iteratively so
// uint[2][] nests as ([2] then []).
func (p *Parser) parseType() ast.TypeName {
	p.depth++
	defer func() { p.depth-- }()
	if p.aborted || p.tooDeep(p.current().Span) {
		return ast.NewIn(p.arena, ast.BadType{Span: p.current().Span.ShrinkToLo()})
	}

	var typ ast.TypeName
	switch tok := p.current(); {
	case tok.Type == lexer.TokenByte:
		// `byte` was removed in 0.8.0; recover as its replacement.
		p.errorf(diag.CodeExpectedType, tok.Span, "type 'byte' has been removed, use 'bytes1'")
		p.next()
		typ = ast.NewIn(p.arena, ast.ElementaryType{Span: tok.Span, Kind: ast.ElemFixedBytes, Size: 1})
	case tok.Type.IsElementaryType():
		typ = p.parseElementaryType()
	case tok.Type == lexer.TokenMapping:
		typ = p.parseMappingType()
	case tok.Type == lexer.TokenFunction:
		typ = p.parseFunctionType()
	case identLike(tok.Type):
		path := p.parseIdentPath()
		typ = ast.NewIn(p.arena, ast.NamedType{Span: path.Span, Path: path})
	default:
		p.errorf(diag.CodeExpectedType, tok.Span,
			"expected a type name, found %s", describeToken(tok.Type))
		return ast.NewIn(p.arena, ast.BadType{Span: tok.Span.ShrinkToLo()})
	}

	for p.currentIs(lexer.TokenLBracket) {
		open := p.next()
		var length ast.Expr
		if !p.currentIs(lexer.TokenRBracket) {
			length = p.parseExpression(LOWEST)
		}
		p.expectClosing(lexer.TokenRBracket, open)
		typ = ast.NewIn(p.arena, ast.ArrayType{
			Span: typ.GetSpan().To(p.prev.Span),
			Elem: typ,
			Len:  length,
		})
	}
	return typ
}

// parseElementaryType consumes one elementary type token. The size
// suffix comes out of the token spelling; the lexer already validated
// it, so the digits parse unconditionally here.
func (p *Parser) parseElementaryType() *ast.ElementaryType {
	tok := p.next()
	node := ast.ElementaryType{Span: tok.Span}
	switch tok.Type {
	case lexer.TokenAddress:
		node.Kind = ast.ElemAddress
		if p.currentIs(lexer.TokenPayable) {
			node.Payable = true
			node.Span = tok.Span.To(p.next().Span)
		}
	case lexer.TokenBool:
		node.Kind = ast.ElemBool
	case lexer.TokenStringType:
		node.Kind = ast.ElemString
	case lexer.TokenBytes:
		spelling := p.interner.Resolve(tok.Symbol)
		if spelling == "bytes" {
			node.Kind = ast.ElemBytes
		} else {
			node.Kind = ast.ElemFixedBytes
			node.Size = suffixInt(spelling, "bytes")
		}
	case lexer.TokenInt:
		node.Kind = ast.ElemInt
		node.Size = suffixInt(p.interner.Resolve(tok.Symbol), "int")
	case lexer.TokenUint:
		node.Kind = ast.ElemUint
		node.Size = suffixInt(p.interner.Resolve(tok.Symbol), "uint")
	case lexer.TokenFixed:
		node.Kind = ast.ElemFixed
		node.Size, node.Frac = fixedSuffix(p.interner.Resolve(tok.Symbol), "fixed")
	case lexer.TokenUfixed:
		node.Kind = ast.ElemUfixed
		node.Size, node.Frac = fixedSuffix(p.interner.Resolve(tok.Symbol), "ufixed")
	}
	return ast.NewIn(p.arena, node)
}

// suffixInt parses the numeric tail of a sized type spelling such as
// uint256; the bare spelling yields 0.
func suffixInt(spelling, base string) int {
	tail := strings.TrimPrefix(spelling, base)
	if tail == "" {
		return 0
	}
	n, _ := strconv.Atoi(tail)
	return n
}

// fixedSuffix splits the MxN tail of fixed128x18 spellings
func fixedSuffix(spelling, base string) (size, frac int) {
	tail := strings.TrimPrefix(spelling, base)
	if tail == "" {
		return 0, 0
	}
	m, n, ok := strings.Cut(tail, "x")
	if !ok {
		return 0, 0
	}
	size, _ = strconv.Atoi(m)
	frac, _ = strconv.Atoi(n)
	return size, frac
}

// parseMappingType parses `mapping(K => V)` with the optional key and
// value names of 0.8.18.
func (p *Parser) parseMappingType() *ast.MappingType {
	start := p.next().Span // mapping
	node := ast.MappingType{}
	open := p.current()
	if !p.expect(lexer.TokenLParen) {
		node.Span = p.spanFrom(start)
		node.Key = ast.NewIn(p.arena, ast.BadType{Span: open.Span.ShrinkToLo()})
		node.Value = ast.NewIn(p.arena, ast.BadType{Span: open.Span.ShrinkToLo()})
		return ast.NewIn(p.arena, node)
	}
	node.Key = p.parseType()
	switch node.Key.(type) {
	case *ast.ElementaryType, *ast.NamedType, *ast.BadType:
	default:
		p.errorf(diag.CodeExpectedType, node.Key.GetSpan(),
			"only elementary types and user defined types can be mapping keys")
	}
	if identLike(p.current().Type) {
		node.KeyName = p.parseIdent()
	}
	p.expect(lexer.TokenFatArrow)
	node.Value = p.parseType()
	if identLike(p.current().Type) {
		node.ValueName = p.parseIdent()
	}
	p.expectClosing(lexer.TokenRParen, open)
	node.Span = p.spanFrom(start)
	return ast.NewIn(p.arena, node)
}

// parseFunctionType parses the function type in a type position, as
// in `function (uint) external view returns (bool) f`.
func (p *Parser) parseFunctionType() *ast.FunctionType {
	start := p.next().Span // function
	node := ast.FunctionType{}
	node.Params = p.parseParamList(false)
	for {
		tok := p.current()
		switch tok.Type {
		case lexer.TokenInternal, lexer.TokenExternal:
			if node.Visibility != ast.VisibilityNone {
				p.errorf(diag.CodeInvalidModifier, tok.Span,
					"visibility already specified as '%s'", node.Visibility)
			} else {
				node.Visibility = visibilityOf(tok.Type)
			}
			p.next()
			continue
		case lexer.TokenPure, lexer.TokenView, lexer.TokenPayable:
			if node.Mutability != ast.MutabilityNonpayable {
				p.errorf(diag.CodeInvalidModifier, tok.Span,
					"state mutability already specified as '%s'", node.Mutability)
			} else {
				node.Mutability = mutabilityOf(tok.Type)
			}
			p.next()
			continue
		}
		break
	}
	if p.accept(lexer.TokenReturns) {
		node.Returns = p.parseParamList(false)
	}
	node.Span = p.spanFrom(start)
	return ast.NewIn(p.arena, node)
}
