package ast

import (
	"math/big"

	"github.com/solyn-lang/solyn/internal/intern"
	"github.com/solyn-lang/solyn/internal/source"
)

// ====== Yul statements ======

// YulBlock is a curly-brace Yul statement list
type YulBlock struct {
	Span  source.Span
	Stmts []YulStmt
}

func (b *YulBlock) GetSpan() source.Span               { return b.Span }
func (b *YulBlock) String() string                     { return "YulBlock" }
func (b *YulBlock) Accept(visitor Visitor) interface{} { return visitor.VisitYulBlock(b) }
func (b *YulBlock) yulStmtNode()                       {}

// YulFunctionDef is `function name(params) -> returns { ... }`
type YulFunctionDef struct {
	Span    source.Span
	Name    *Ident
	Params  []*Ident
	Returns []*Ident
	Body    *YulBlock
}

func (f *YulFunctionDef) GetSpan() source.Span               { return f.Span }
func (f *YulFunctionDef) String() string                     { return "YulFunctionDef" }
func (f *YulFunctionDef) Accept(visitor Visitor) interface{} { return visitor.VisitYulFunction(f) }
func (f *YulFunctionDef) yulStmtNode()                       {}

// YulVarDecl is `let a, b := expr` with the initializer optional
type YulVarDecl struct {
	Span  source.Span
	Names []*Ident
	Value YulExpr // can be nil
}

func (v *YulVarDecl) GetSpan() source.Span               { return v.Span }
func (v *YulVarDecl) String() string                     { return "YulVarDecl" }
func (v *YulVarDecl) Accept(visitor Visitor) interface{} { return visitor.VisitYulVarDecl(v) }
func (v *YulVarDecl) yulStmtNode()                       {}

// YulAssign is `a := expr` or the multi-target `a, b := f()`
type YulAssign struct {
	Span    source.Span
	Targets []*YulPath
	Value   YulExpr
}

func (a *YulAssign) GetSpan() source.Span               { return a.Span }
func (a *YulAssign) String() string                     { return "YulAssign" }
func (a *YulAssign) Accept(visitor Visitor) interface{} { return visitor.VisitYulAssign(a) }
func (a *YulAssign) yulStmtNode()                       {}

// YulIf is `if cond { ... }`. Yul has no else branch.
type YulIf struct {
	Span source.Span
	Cond YulExpr
	Body *YulBlock
}

func (i *YulIf) GetSpan() source.Span               { return i.Span }
func (i *YulIf) String() string                     { return "YulIf" }
func (i *YulIf) Accept(visitor Visitor) interface{} { return visitor.VisitYulIf(i) }
func (i *YulIf) yulStmtNode()                       {}

// YulSwitchCase is one `case value { ... }` arm; Value is nil for the
// default arm
type YulSwitchCase struct {
	Span  source.Span
	Value *YulLit // can be nil; nil means default
	Body  *YulBlock
}

func (c *YulSwitchCase) GetSpan() source.Span               { return c.Span }
func (c *YulSwitchCase) String() string                     { return "YulSwitchCase" }
func (c *YulSwitchCase) Accept(visitor Visitor) interface{} { return visitor.VisitYulSwitchCase(c) }

// YulSwitch is `switch expr case ... default ...`
type YulSwitch struct {
	Span  source.Span
	Expr  YulExpr
	Cases []*YulSwitchCase
}

func (s *YulSwitch) GetSpan() source.Span               { return s.Span }
func (s *YulSwitch) String() string                     { return "YulSwitch" }
func (s *YulSwitch) Accept(visitor Visitor) interface{} { return visitor.VisitYulSwitch(s) }
func (s *YulSwitch) yulStmtNode()                       {}

// YulFor is `for { init } cond { post } { body }`
type YulFor struct {
	Span source.Span
	Init *YulBlock
	Cond YulExpr
	Post *YulBlock
	Body *YulBlock
}

func (f *YulFor) GetSpan() source.Span               { return f.Span }
func (f *YulFor) String() string                     { return "YulFor" }
func (f *YulFor) Accept(visitor Visitor) interface{} { return visitor.VisitYulFor(f) }
func (f *YulFor) yulStmtNode()                       {}

// YulBreak is `break`
type YulBreak struct {
	Span source.Span
}

func (b *YulBreak) GetSpan() source.Span               { return b.Span }
func (b *YulBreak) String() string                     { return "YulBreak" }
func (b *YulBreak) Accept(visitor Visitor) interface{} { return visitor.VisitYulBreak(b) }
func (b *YulBreak) yulStmtNode()                       {}

// YulContinue is `continue`
type YulContinue struct {
	Span source.Span
}

func (c *YulContinue) GetSpan() source.Span               { return c.Span }
func (c *YulContinue) String() string                     { return "YulContinue" }
func (c *YulContinue) Accept(visitor Visitor) interface{} { return visitor.VisitYulContinue(c) }
func (c *YulContinue) yulStmtNode()                       {}

// YulLeave is `leave`
type YulLeave struct {
	Span source.Span
}

func (l *YulLeave) GetSpan() source.Span               { return l.Span }
func (l *YulLeave) String() string                     { return "YulLeave" }
func (l *YulLeave) Accept(visitor Visitor) interface{} { return visitor.VisitYulLeave(l) }
func (l *YulLeave) yulStmtNode()                       {}

// YulExprStmt is a bare call used as a statement
type YulExprStmt struct {
	Span source.Span
	X    YulExpr
}

func (e *YulExprStmt) GetSpan() source.Span               { return e.Span }
func (e *YulExprStmt) String() string                     { return "YulExprStmt" }
func (e *YulExprStmt) Accept(visitor Visitor) interface{} { return visitor.VisitYulExprStmt(e) }
func (e *YulExprStmt) yulStmtNode()                       {}

// ====== Yul expressions ======

// YulCall is `name(args)`
type YulCall struct {
	Span source.Span
	Name *Ident
	Args []YulExpr
}

func (c *YulCall) GetSpan() source.Span               { return c.Span }
func (c *YulCall) String() string                     { return "YulCall" }
func (c *YulCall) Accept(visitor Visitor) interface{} { return visitor.VisitYulCall(c) }
func (c *YulCall) yulExprNode()                       {}

// YulPath is a possibly dotted identifier. Dots only reach external
// Solidity references, as in `x.slot` and `x.offset`.
type YulPath struct {
	Span  source.Span
	Parts []*Ident
}

func (p *YulPath) GetSpan() source.Span               { return p.Span }
func (p *YulPath) String() string                     { return "YulPath" }
func (p *YulPath) Accept(visitor Visitor) interface{} { return visitor.VisitYulPath(p) }
func (p *YulPath) yulExprNode()                       {}

// YulLitKind discriminates Yul literal variants
type YulLitKind int

const (
	YulLitNumber YulLitKind = iota
	YulLitString
	YulLitHexString
	YulLitBool
)

// YulLit is a Yul literal. Numbers must fit the EVM word; the parser
// rejects values above 2^256-1.
type YulLit struct {
	Span    source.Span
	Kind    YulLitKind
	Raw     intern.Symbol
	IntVal  *big.Int // YulLitNumber
	StrVal  []byte   // string kinds
	BoolVal bool     // YulLitBool
}

func (l *YulLit) GetSpan() source.Span               { return l.Span }
func (l *YulLit) String() string                     { return "YulLit" }
func (l *YulLit) Accept(visitor Visitor) interface{} { return visitor.VisitYulLit(l) }
func (l *YulLit) yulExprNode()                       {}
