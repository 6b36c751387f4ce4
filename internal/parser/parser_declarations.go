package parser

import (
	"github.com/solyn-lang/solyn/internal/ast"
	"github.com/solyn-lang/solyn/internal/diag"
	"github.com/solyn-lang/solyn/internal/intern"
	"github.com/solyn-lang/solyn/internal/lexer"
	"github.com/solyn-lang/solyn/internal/source"
)

// ====== Directives ======

// parsePragma parses `pragma <key> <anything> ;`. The value is kept
// as raw source text; only `pragma solidity` gets its constraint
// parsed, because that one the compiler acts on.
func (p *Parser) parsePragma() *ast.PragmaDirective {
	start := p.next().Span // pragma
	key := p.parseIdent()
	valLo := p.current().Span.Lo()
	valHi := valLo
	for !p.currentIs(lexer.TokenSemicolon) && !p.c.AtEOF() {
		valHi = p.next().Span.Hi()
	}
	value := ""
	if valHi > valLo {
		value = p.textBetween(valLo, valHi)
	}
	p.expect(lexer.TokenSemicolon)
	node := ast.NewIn(p.arena, ast.PragmaDirective{
		Span:  p.spanFrom(start),
		Key:   key,
		Value: p.interner.Intern(value),
	})
	if p.interner.Resolve(key.Name) == "solidity" {
		valueSpan := source.NewSpan(valLo, valHi)
		if value == "" {
			p.errorf(diag.CodePragmaSyntax, node.Span, "missing version constraint in solidity pragma")
		} else if req, err := ast.ParseVersionReq(value); err != nil {
			p.errorf(diag.CodePragmaSyntax, valueSpan, "invalid version constraint %q", value)
		} else {
			node.Req = req
		}
	}
	return node
}

// parseImport parses the three import forms:
//
//	import "path";            import "path" as A;
//	import * as A from "path";
//	import {a, b as c} from "path";
func (p *Parser) parseImport() *ast.ImportDirective {
	start := p.next().Span // import
	node := ast.NewIn(p.arena, ast.ImportDirective{})
	switch {
	case p.currentIs(lexer.TokenMul):
		node.Kind = ast.ImportStar
		p.next()
		p.expect(lexer.TokenAs)
		node.Alias = p.parseIdent()
		p.expect(lexer.TokenFrom)
		node.Path, node.PathSpan = p.parseImportPath()
	case p.currentIs(lexer.TokenLBrace):
		node.Kind = ast.ImportSymbols
		open := p.next()
		for {
			node.Symbols = append(node.Symbols, p.parseImportAlias())
			if !p.accept(lexer.TokenComma) {
				break
			}
		}
		p.expectClosing(lexer.TokenRBrace, open)
		p.expect(lexer.TokenFrom)
		node.Path, node.PathSpan = p.parseImportPath()
	default:
		node.Kind = ast.ImportPlain
		node.Path, node.PathSpan = p.parseImportPath()
		if p.accept(lexer.TokenAs) {
			node.Alias = p.parseIdent()
		}
	}
	if !p.expect(lexer.TokenSemicolon) {
		p.syncItem(true)
	}
	node.Span = p.spanFrom(start)
	return node
}

func (p *Parser) parseImportAlias() *ast.ImportAlias {
	name := p.parseIdent()
	var alias *ast.Ident
	if p.accept(lexer.TokenAs) {
		alias = p.parseIdent()
	}
	return ast.NewIn(p.arena, ast.ImportAlias{
		Span:  name.Span.To(p.prev.Span),
		Name:  name,
		Alias: alias,
	})
}

// parseImportPath consumes the path string of an import. The decoded
// path is interned; resolution against remappings happens later.
func (p *Parser) parseImportPath() (intern.Symbol, source.Span) {
	tok := p.current()
	if tok.Type != lexer.TokenString {
		p.errorf(diag.CodeExpectedToken, tok.Span,
			"expected import path string, found %s", describeToken(tok.Type))
		return intern.EmptySymbol, tok.Span.ShrinkToLo()
	}
	p.next()
	body := p.interner.Resolve(tok.Symbol)
	decoded := lexer.Unescape(body, lexer.ModeStr, nil)
	return p.interner.Intern(string(decoded)), tok.Span
}

// parseUsing parses `using Lib for T;` and the braced list form with
// operator bindings, `using {add as +, neg} for Int global;`.
func (p *Parser) parseUsing() *ast.UsingDirective {
	start := p.next().Span // using
	node := ast.NewIn(p.arena, ast.UsingDirective{})
	if p.currentIs(lexer.TokenLBrace) {
		open := p.next()
		for {
			node.Items = append(node.Items, p.parseUsingItem())
			if !p.accept(lexer.TokenComma) {
				break
			}
		}
		p.expectClosing(lexer.TokenRBrace, open)
	} else {
		node.Lib = p.parseIdentPath()
	}
	p.expect(lexer.TokenFor)
	if !p.accept(lexer.TokenMul) {
		node.Target = p.parseType()
	}
	node.Global = p.accept(lexer.TokenGlobal)
	p.expect(lexer.TokenSemicolon)
	node.Span = p.spanFrom(start)
	return node
}

func (p *Parser) parseUsingItem() *ast.UsingItem {
	path := p.parseIdentPath()
	op := ""
	if p.accept(lexer.TokenAs) {
		tok := p.current()
		if usingOperator(tok.Type) {
			op = tok.Type.String()
			p.next()
		} else {
			p.errorf(diag.CodeUnexpectedToken, tok.Span,
				"%s is not a user-definable operator", describeToken(tok.Type))
		}
	}
	return ast.NewIn(p.arena, ast.UsingItem{Span: path.Span.To(p.prev.Span), Path: path, Op: op})
}

// usingOperator reports whether tt can be bound to a library function
// in a using directive
func usingOperator(tt lexer.TokenType) bool {
	switch tt {
	case lexer.TokenBitAnd, lexer.TokenBitNot, lexer.TokenBitOr, lexer.TokenBitXor,
		lexer.TokenPlus, lexer.TokenMinus, lexer.TokenMul, lexer.TokenDiv, lexer.TokenMod,
		lexer.TokenEq, lexer.TokenNe, lexer.TokenLt, lexer.TokenLe, lexer.TokenGt, lexer.TokenGe:
		return true
	}
	return false
}

// ====== Contracts ======

func (p *Parser) parseContract() *ast.ContractDef {
	start := p.current().Span
	abstract := p.accept(lexer.TokenAbstract)
	var kind ast.ContractKind
	switch p.current().Type {
	case lexer.TokenContract:
		kind = ast.KindContract
		if abstract {
			kind = ast.KindAbstractContract
		}
		p.next()
	case lexer.TokenInterface:
		kind = ast.KindInterface
		if abstract {
			p.errorf(diag.CodeUnexpectedToken, start, "only contracts can be abstract")
		}
		p.next()
	case lexer.TokenLibrary:
		kind = ast.KindLibrary
		if abstract {
			p.errorf(diag.CodeUnexpectedToken, start, "only contracts can be abstract")
		}
		p.next()
	default:
		// `abstract` not followed by `contract`
		p.expected(lexer.TokenContract)
		kind = ast.KindAbstractContract
	}
	name := p.parseIdent()
	var bases []*ast.InheritanceSpecifier
	if p.accept(lexer.TokenIs) {
		for {
			bases = append(bases, p.parseInheritanceSpecifier())
			if !p.accept(lexer.TokenComma) {
				break
			}
		}
	}
	var items []ast.Item
	if open := p.current(); p.expect(lexer.TokenLBrace) {
		for !p.currentIs(lexer.TokenRBrace) && !p.c.AtEOF() && !p.aborted {
			if p.sink.LimitReached() {
				break
			}
			pos := p.c.Pos()
			items = append(items, p.parseContractItem())
			if p.c.Pos() == pos {
				p.next()
			}
		}
		p.expectClosing(lexer.TokenRBrace, open)
	}
	return ast.NewIn(p.arena, ast.ContractDef{
		Span:  p.spanFrom(start),
		Kind:  kind,
		Name:  name,
		Bases: bases,
		Items: items,
	})
}

func (p *Parser) parseInheritanceSpecifier() *ast.InheritanceSpecifier {
	path := p.parseIdentPath()
	var args *ast.CallArgs
	if p.currentIs(lexer.TokenLParen) {
		args = p.parseCallArgs()
	}
	return ast.NewIn(p.arena, ast.InheritanceSpecifier{
		Span: path.Span.To(p.prev.Span),
		Path: path,
		Args: args,
	})
}

// ====== Functions ======

// parseFunction parses every function-like declaration. The caller
// determined kind from the introducer token, which is still current.
func (p *Parser) parseFunction(kind ast.FunctionKind) *ast.FunctionDef {
	start := p.next().Span // function, constructor, fallback, receive or modifier
	var name *ast.Ident
	if kind == ast.FnFunction || kind == ast.FnModifier {
		name = p.parseIdent()
	}
	var params *ast.ParamList
	if p.currentIs(lexer.TokenLParen) {
		params = p.parseParamList(false)
	} else if kind != ast.FnModifier {
		// Modifiers may omit the list entirely; everything else
		// must write at least ().
		p.expected(lexer.TokenLParen)
	}

	var (
		mods     []*ast.ModifierInvocation
		vis      ast.Visibility
		mut      ast.StateMutability
		virtual  bool
		override *ast.OverrideSpecifier
	)
header:
	for {
		switch tok := p.current(); tok.Type {
		case lexer.TokenPublic, lexer.TokenPrivate, lexer.TokenInternal, lexer.TokenExternal:
			if vis != ast.VisibilityNone {
				p.errorf(diag.CodeInvalidModifier, tok.Span,
					"visibility already specified as '%s'", vis)
			} else {
				vis = visibilityOf(tok.Type)
			}
			p.next()
		case lexer.TokenPure, lexer.TokenView, lexer.TokenPayable:
			if mut != ast.MutabilityNonpayable {
				p.errorf(diag.CodeInvalidModifier, tok.Span,
					"state mutability already specified as '%s'", mut)
			} else {
				mut = mutabilityOf(tok.Type)
			}
			p.next()
		case lexer.TokenConstant:
			p.errorf(diag.CodeInvalidModifier, tok.Span,
				"functions cannot be declared 'constant', use 'view'")
			p.next()
		case lexer.TokenVirtual:
			if virtual {
				p.errorf(diag.CodeInvalidModifier, tok.Span, "'virtual' already specified")
			}
			virtual = true
			p.next()
		case lexer.TokenOverride:
			override = p.parseOverride()
		default:
			if identLike(tok.Type) {
				mods = append(mods, p.parseModifierInvocation())
				continue
			}
			break header
		}
	}

	var returns *ast.ParamList
	if p.accept(lexer.TokenReturns) {
		returns = p.parseParamList(false)
	}

	var body *ast.Block
	switch {
	case p.accept(lexer.TokenSemicolon):
	case p.currentIs(lexer.TokenLBrace):
		body = p.parseBlock()
	default:
		p.errorf(diag.CodeExpectedToken, p.current().Span,
			"expected ';' or a function body, found %s", describeToken(p.current().Type))
		p.syncItem(true)
	}
	return ast.NewIn(p.arena, ast.FunctionDef{
		Span:       p.spanFrom(start),
		Kind:       kind,
		Name:       name,
		Params:     params,
		Returns:    returns,
		Modifiers:  mods,
		Visibility: vis,
		Mutability: mut,
		Virtual:    virtual,
		Override:   override,
		Body:       body,
	})
}

// parseOverride parses `override` with its optional base list
func (p *Parser) parseOverride() *ast.OverrideSpecifier {
	start := p.next().Span // override
	var paths []*ast.IdentPath
	if p.currentIs(lexer.TokenLParen) {
		open := p.next()
		for !p.currentIs(lexer.TokenRParen) && !p.c.AtEOF() {
			paths = append(paths, p.parseIdentPath())
			if !p.accept(lexer.TokenComma) {
				break
			}
		}
		p.expectClosing(lexer.TokenRParen, open)
	}
	return ast.NewIn(p.arena, ast.OverrideSpecifier{Span: p.spanFrom(start), Paths: paths})
}

func (p *Parser) parseModifierInvocation() *ast.ModifierInvocation {
	path := p.parseIdentPath()
	var args *ast.CallArgs
	if p.currentIs(lexer.TokenLParen) {
		args = p.parseCallArgs()
	}
	return ast.NewIn(p.arena, ast.ModifierInvocation{
		Span: path.Span.To(p.prev.Span),
		Path: path,
		Args: args,
	})
}

// parseParamList parses a parenthesized list of parameters. The type
// is mandatory per parameter, location and name are optional, and
// `indexed` is accepted only for event parameters.
func (p *Parser) parseParamList(allowIndexed bool) *ast.ParamList {
	open := p.current()
	if !p.expect(lexer.TokenLParen) {
		return ast.NewIn(p.arena, ast.ParamList{Span: open.Span.ShrinkToLo()})
	}
	var params []*ast.Param
	for !p.currentIs(lexer.TokenRParen) && !p.c.AtEOF() {
		params = append(params, p.parseParam(allowIndexed))
		if !p.accept(lexer.TokenComma) {
			break
		}
	}
	p.expectClosing(lexer.TokenRParen, open)
	return ast.NewIn(p.arena, ast.ParamList{Span: open.Span.To(p.prev.Span), Params: params})
}

func (p *Parser) parseParam(allowIndexed bool) *ast.Param {
	start := p.current().Span
	typ := p.parseType()
	indexed := false
	loc := ast.LocationNone
	for {
		tok := p.current()
		if tok.Type == lexer.TokenIndexed {
			if !allowIndexed {
				p.errorf(diag.CodeInvalidModifier, tok.Span,
					"'indexed' is only allowed on event parameters")
			}
			indexed = true
			p.next()
			continue
		}
		if l := locationOf(tok.Type); l != ast.LocationNone {
			if loc != ast.LocationNone {
				p.errorf(diag.CodeInvalidModifier, tok.Span,
					"data location already specified as '%s'", loc)
			} else {
				loc = l
			}
			p.next()
			continue
		}
		break
	}
	var name *ast.Ident
	if identLike(p.current().Type) {
		name = p.parseIdent()
	}
	return ast.NewIn(p.arena, ast.Param{
		Span:     start.To(p.prev.Span),
		Type:     typ,
		Location: loc,
		Indexed:  indexed,
		Name:     name,
	})
}

// ====== State Variables ======

// parseStateVar parses a state variable or file-level constant
func (p *Parser) parseStateVar() *ast.StateVarDecl {
	start := p.current().Span
	typ := p.parseType()
	var (
		vis      ast.Visibility
		mut      ast.VarMutability
		override *ast.OverrideSpecifier
	)
flags:
	for {
		switch tok := p.current(); tok.Type {
		case lexer.TokenPublic, lexer.TokenPrivate, lexer.TokenInternal:
			if vis != ast.VisibilityNone {
				p.errorf(diag.CodeInvalidModifier, tok.Span,
					"visibility already specified as '%s'", vis)
			} else {
				vis = visibilityOf(tok.Type)
			}
			p.next()
		case lexer.TokenExternal:
			p.errorf(diag.CodeInvalidModifier, tok.Span, "state variables cannot be 'external'")
			p.next()
		case lexer.TokenConstant, lexer.TokenImmutable, lexer.TokenTransient:
			if mut != ast.VarMutable {
				p.errorf(diag.CodeInvalidModifier, tok.Span,
					"mutability already specified as '%s'", mut)
			} else {
				mut = varMutabilityOf(tok.Type)
			}
			p.next()
		case lexer.TokenOverride:
			override = p.parseOverride()
		default:
			break flags
		}
	}
	name := p.parseIdent()
	var value ast.Expr
	if p.accept(lexer.TokenAssign) {
		value = p.parseExpression(LOWEST)
	}
	if !p.expect(lexer.TokenSemicolon) {
		p.syncItem(true)
	}
	return ast.NewIn(p.arena, ast.StateVarDecl{
		Span:       p.spanFrom(start),
		Type:       typ,
		Name:       name,
		Visibility: vis,
		Mut:        mut,
		Override:   override,
		Value:      value,
	})
}

// ====== User-Defined Types ======

func (p *Parser) parseStruct() *ast.StructDef {
	start := p.next().Span // struct
	name := p.parseIdent()
	var fields []*ast.StructField
	if open := p.current(); p.expect(lexer.TokenLBrace) {
		for !p.currentIs(lexer.TokenRBrace) && !p.c.AtEOF() && !p.aborted {
			pos := p.c.Pos()
			fields = append(fields, p.parseStructField())
			if p.c.Pos() == pos {
				p.next()
			}
		}
		p.expectClosing(lexer.TokenRBrace, open)
	}
	return ast.NewIn(p.arena, ast.StructDef{Span: p.spanFrom(start), Name: name, Fields: fields})
}

func (p *Parser) parseStructField() *ast.StructField {
	start := p.current().Span
	typ := p.parseType()
	name := p.parseIdent()
	if !p.expect(lexer.TokenSemicolon) {
		p.syncStatement()
	}
	return ast.NewIn(p.arena, ast.StructField{Span: p.spanFrom(start), Type: typ, Name: name})
}

func (p *Parser) parseEnum() *ast.EnumDef {
	start := p.next().Span // enum
	name := p.parseIdent()
	var variants []*ast.Ident
	if open := p.current(); p.expect(lexer.TokenLBrace) {
		for {
			variants = append(variants, p.parseIdent())
			if !p.accept(lexer.TokenComma) {
				break
			}
		}
		p.expectClosing(lexer.TokenRBrace, open)
	}
	return ast.NewIn(p.arena, ast.EnumDef{Span: p.spanFrom(start), Name: name, Variants: variants})
}

func (p *Parser) parseEvent() *ast.EventDef {
	start := p.next().Span // event
	name := p.parseIdent()
	params := p.parseParamList(true)
	anonymous := p.accept(lexer.TokenAnonymous)
	p.expect(lexer.TokenSemicolon)
	return ast.NewIn(p.arena, ast.EventDef{
		Span:      p.spanFrom(start),
		Name:      name,
		Params:    params,
		Anonymous: anonymous,
	})
}

func (p *Parser) parseErrorDef() *ast.ErrorDef {
	start := p.next().Span // error
	name := p.parseIdent()
	params := p.parseParamList(false)
	p.expect(lexer.TokenSemicolon)
	return ast.NewIn(p.arena, ast.ErrorDef{Span: p.spanFrom(start), Name: name, Params: params})
}

// parseUDVT parses `type Name is ElementaryType;`
func (p *Parser) parseUDVT() *ast.UDVTDef {
	start := p.next().Span // type
	name := p.parseIdent()
	p.expect(lexer.TokenIs)
	underlying := p.parseType()
	if _, ok := underlying.(*ast.ElementaryType); !ok {
		p.errorf(diag.CodeExpectedType, underlying.GetSpan(),
			"the underlying type of a user defined value type must be elementary")
	}
	p.expect(lexer.TokenSemicolon)
	return ast.NewIn(p.arena, ast.UDVTDef{Span: p.spanFrom(start), Name: name, Underlying: underlying})
}

// ====== Flag Helpers ======

func visibilityOf(tt lexer.TokenType) ast.Visibility {
	switch tt {
	case lexer.TokenPublic:
		return ast.VisibilityPublic
	case lexer.TokenPrivate:
		return ast.VisibilityPrivate
	case lexer.TokenInternal:
		return ast.VisibilityInternal
	case lexer.TokenExternal:
		return ast.VisibilityExternal
	default:
		return ast.VisibilityNone
	}
}

func mutabilityOf(tt lexer.TokenType) ast.StateMutability {
	switch tt {
	case lexer.TokenPure:
		return ast.MutabilityPure
	case lexer.TokenView:
		return ast.MutabilityView
	case lexer.TokenPayable:
		return ast.MutabilityPayable
	default:
		return ast.MutabilityNonpayable
	}
}

func varMutabilityOf(tt lexer.TokenType) ast.VarMutability {
	switch tt {
	case lexer.TokenConstant:
		return ast.VarConstant
	case lexer.TokenImmutable:
		return ast.VarImmutable
	case lexer.TokenTransient:
		return ast.VarTransient
	default:
		return ast.VarMutable
	}
}

func locationOf(tt lexer.TokenType) ast.DataLocation {
	switch tt {
	case lexer.TokenMemory:
		return ast.LocationMemory
	case lexer.TokenStorage:
		return ast.LocationStorage
	case lexer.TokenCalldata:
		return ast.LocationCalldata
	default:
		return ast.LocationNone
	}
}
