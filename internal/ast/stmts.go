package ast

import (
	"github.com/solyn-lang/solyn/internal/intern"
	"github.com/solyn-lang/solyn/internal/source"
)

// ====== Blocks ======

// Block is a curly-brace statement list
type Block struct {
	Span  source.Span
	Stmts []Stmt
}

func (b *Block) GetSpan() source.Span               { return b.Span }
func (b *Block) String() string                     { return "Block" }
func (b *Block) Accept(visitor Visitor) interface{} { return visitor.VisitBlock(b) }
func (b *Block) stmtNode()                          {}

// UncheckedBlock is `unchecked { ... }`
type UncheckedBlock struct {
	Span source.Span
	Body *Block
}

func (u *UncheckedBlock) GetSpan() source.Span               { return u.Span }
func (u *UncheckedBlock) String() string                     { return "UncheckedBlock" }
func (u *UncheckedBlock) Accept(visitor Visitor) interface{} { return visitor.VisitUnchecked(u) }
func (u *UncheckedBlock) stmtNode()                          {}

// ====== Declarations ======

// VarDecl is a single declared variable inside a statement
type VarDecl struct {
	Span     source.Span
	Type     TypeName
	Location DataLocation
	Name     *Ident
}

func (v *VarDecl) GetSpan() source.Span               { return v.Span }
func (v *VarDecl) String() string                     { return "VarDecl" }
func (v *VarDecl) Accept(visitor Visitor) interface{} { return visitor.VisitVarDecl(v) }

// VarDeclStmt is a variable declaration statement. The tuple form
// `(uint a, , bool c) = f()` keeps nil holes for skipped components.
type VarDeclStmt struct {
	Span    source.Span
	Decls   []*VarDecl // nil entries are tuple holes
	IsTuple bool
	Value   Expr // can be nil
}

func (v *VarDeclStmt) GetSpan() source.Span               { return v.Span }
func (v *VarDeclStmt) String() string                     { return "VarDeclStmt" }
func (v *VarDeclStmt) Accept(visitor Visitor) interface{} { return visitor.VisitVarDeclStmt(v) }
func (v *VarDeclStmt) stmtNode()                          {}

// ====== Simple statements ======

// ExprStmt is an expression followed by a semicolon
type ExprStmt struct {
	Span source.Span
	X    Expr
}

func (e *ExprStmt) GetSpan() source.Span               { return e.Span }
func (e *ExprStmt) String() string                     { return "ExprStmt" }
func (e *ExprStmt) Accept(visitor Visitor) interface{} { return visitor.VisitExprStmt(e) }
func (e *ExprStmt) stmtNode()                          {}

// PlaceholderStmt is the `_;` statement inside a modifier body
type PlaceholderStmt struct {
	Span source.Span
}

func (p *PlaceholderStmt) GetSpan() source.Span               { return p.Span }
func (p *PlaceholderStmt) String() string                     { return "PlaceholderStmt" }
func (p *PlaceholderStmt) Accept(visitor Visitor) interface{} { return visitor.VisitPlaceholder(p) }
func (p *PlaceholderStmt) stmtNode()                          {}

// ====== Control flow ======

// IfStmt is an if statement with an optional else branch
type IfStmt struct {
	Span source.Span
	Cond Expr
	Then Stmt
	Else Stmt // can be nil
}

func (i *IfStmt) GetSpan() source.Span               { return i.Span }
func (i *IfStmt) String() string                     { return "IfStmt" }
func (i *IfStmt) Accept(visitor Visitor) interface{} { return visitor.VisitIf(i) }
func (i *IfStmt) stmtNode()                          {}

// ForStmt is a for loop. All three header slots are optional.
type ForStmt struct {
	Span source.Span
	Init Stmt // can be nil; VarDeclStmt or ExprStmt
	Cond Expr // can be nil
	Post Expr // can be nil
	Body Stmt
}

func (f *ForStmt) GetSpan() source.Span               { return f.Span }
func (f *ForStmt) String() string                     { return "ForStmt" }
func (f *ForStmt) Accept(visitor Visitor) interface{} { return visitor.VisitFor(f) }
func (f *ForStmt) stmtNode()                          {}

// WhileStmt is a while loop
type WhileStmt struct {
	Span source.Span
	Cond Expr
	Body Stmt
}

func (w *WhileStmt) GetSpan() source.Span               { return w.Span }
func (w *WhileStmt) String() string                     { return "WhileStmt" }
func (w *WhileStmt) Accept(visitor Visitor) interface{} { return visitor.VisitWhile(w) }
func (w *WhileStmt) stmtNode()                          {}

// DoWhileStmt is a do-while loop
type DoWhileStmt struct {
	Span source.Span
	Body Stmt
	Cond Expr
}

func (d *DoWhileStmt) GetSpan() source.Span               { return d.Span }
func (d *DoWhileStmt) String() string                     { return "DoWhileStmt" }
func (d *DoWhileStmt) Accept(visitor Visitor) interface{} { return visitor.VisitDoWhile(d) }
func (d *DoWhileStmt) stmtNode()                          {}

// ContinueStmt is `continue;`
type ContinueStmt struct {
	Span source.Span
}

func (c *ContinueStmt) GetSpan() source.Span               { return c.Span }
func (c *ContinueStmt) String() string                     { return "ContinueStmt" }
func (c *ContinueStmt) Accept(visitor Visitor) interface{} { return visitor.VisitContinue(c) }
func (c *ContinueStmt) stmtNode()                          {}

// BreakStmt is `break;`
type BreakStmt struct {
	Span source.Span
}

func (b *BreakStmt) GetSpan() source.Span               { return b.Span }
func (b *BreakStmt) String() string                     { return "BreakStmt" }
func (b *BreakStmt) Accept(visitor Visitor) interface{} { return visitor.VisitBreak(b) }
func (b *BreakStmt) stmtNode()                          {}

// ReturnStmt is `return;` or `return expr;`
type ReturnStmt struct {
	Span  source.Span
	Value Expr // can be nil
}

func (r *ReturnStmt) GetSpan() source.Span               { return r.Span }
func (r *ReturnStmt) String() string                     { return "ReturnStmt" }
func (r *ReturnStmt) Accept(visitor Visitor) interface{} { return visitor.VisitReturn(r) }
func (r *ReturnStmt) stmtNode()                          {}

// ====== Events and errors ======

// EmitStmt is `emit Event(args);`
type EmitStmt struct {
	Span source.Span
	Call *CallExpr
}

func (e *EmitStmt) GetSpan() source.Span               { return e.Span }
func (e *EmitStmt) String() string                     { return "EmitStmt" }
func (e *EmitStmt) Accept(visitor Visitor) interface{} { return visitor.VisitEmit(e) }
func (e *EmitStmt) stmtNode()                          {}

// RevertStmt is `revert Error(args);`
type RevertStmt struct {
	Span source.Span
	Call *CallExpr
}

func (r *RevertStmt) GetSpan() source.Span               { return r.Span }
func (r *RevertStmt) String() string                     { return "RevertStmt" }
func (r *RevertStmt) Accept(visitor Visitor) interface{} { return visitor.VisitRevert(r) }
func (r *RevertStmt) stmtNode()                          {}

// ====== Try ======

// CatchClause is one catch arm of a try statement. Name is the builtin
// selector (Error, Panic) or nil for a bare catch.
type CatchClause struct {
	Span   source.Span
	Name   *Ident     // can be nil
	Params *ParamList // can be nil
	Body   *Block
}

func (c *CatchClause) GetSpan() source.Span               { return c.Span }
func (c *CatchClause) String() string                     { return "CatchClause" }
func (c *CatchClause) Accept(visitor Visitor) interface{} { return visitor.VisitCatch(c) }

// TryStmt is `try expr returns (...) { } catch ... { }`
type TryStmt struct {
	Span    source.Span
	Call    Expr
	Returns *ParamList // can be nil
	Body    *Block
	Catches []*CatchClause
}

func (t *TryStmt) GetSpan() source.Span               { return t.Span }
func (t *TryStmt) String() string                     { return "TryStmt" }
func (t *TryStmt) Accept(visitor Visitor) interface{} { return visitor.VisitTry(t) }
func (t *TryStmt) stmtNode()                          {}

// ====== Assembly ======

// AssemblyStmt is an inline assembly block. Dialect is the string
// literal after the keyword when present, normally "evmasm".
type AssemblyStmt struct {
	Span    source.Span
	Dialect intern.Symbol // EmptySymbol when absent
	Flags   []intern.Symbol
	Body    *YulBlock
}

func (a *AssemblyStmt) GetSpan() source.Span               { return a.Span }
func (a *AssemblyStmt) String() string                     { return "AssemblyStmt" }
func (a *AssemblyStmt) Accept(visitor Visitor) interface{} { return visitor.VisitAssembly(a) }
func (a *AssemblyStmt) stmtNode()                          {}

// ====== Recovery ======

// BadStmt is the placeholder left where a statement failed to parse
type BadStmt struct {
	Span source.Span
}

func (b *BadStmt) GetSpan() source.Span               { return b.Span }
func (b *BadStmt) String() string                     { return "BadStmt" }
func (b *BadStmt) Accept(visitor Visitor) interface{} { return visitor.VisitBadStmt(b) }
func (b *BadStmt) stmtNode()                          {}
