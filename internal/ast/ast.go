// Package ast defines the syntax tree for Solidity and Yul source.
// Nodes are allocated in a per-file Arena, carry their source span, and
// are immutable once the parser returns: later passes read the tree
// through the Visitor or Inspect without mutating it.
//
// The node set mirrors the grammar, not the semantics: paths stay
// unresolved, literals keep their raw text next to the materialized
// value, and malformed constructs appear as Bad* nodes so that one
// error does not erase its neighbors.
package ast

import (
	"github.com/solyn-lang/solyn/internal/intern"
	"github.com/solyn-lang/solyn/internal/source"
)

// Node is the base interface for all AST nodes
type Node interface {
	// GetSpan returns the source span covered by this node
	GetSpan() source.Span
	// String returns a short human-readable description of the node
	String() string
	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}
}

// Item represents all source-unit and contract level declarations
type Item interface {
	Node
	itemNode()
	// Docs returns the doc comments attached to the declaration
	Docs() []DocComment
}

// Stmt represents all statement nodes
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents all expression nodes
type Expr interface {
	Node
	exprNode()
}

// TypeName represents all type nodes
type TypeName interface {
	Node
	typeNode()
}

// YulStmt represents all Yul statement nodes
type YulStmt interface {
	Node
	yulStmtNode()
}

// YulExpr represents all Yul expression nodes
type YulExpr interface {
	Node
	yulExprNode()
}

// ====== Source Unit ======

// SourceUnit is the root node of one parsed file
type SourceUnit struct {
	Span  source.Span
	Name  string // file name as registered in the source map
	Items []Item
}

func (s *SourceUnit) GetSpan() source.Span               { return s.Span }
func (s *SourceUnit) String() string                     { return "SourceUnit" }
func (s *SourceUnit) Accept(visitor Visitor) interface{} { return visitor.VisitSourceUnit(s) }

// DocComment is one /// or /** */ comment attached to a declaration
type DocComment struct {
	Span source.Span
	Text intern.Symbol // raw comment including the markers
}

// docs is embedded by every item to carry attached doc comments
type docs struct {
	Doc []DocComment
}

// Docs returns the doc comments attached to the declaration
func (d docs) Docs() []DocComment { return d.Doc }

// SetDocs attaches doc comments. The parser calls this while building
// the node, before the tree is handed out.
func (d *docs) SetDocs(doc []DocComment) { d.Doc = doc }

// ====== Shared pieces ======

// Ident is a single identifier with its interned name
type Ident struct {
	Span source.Span
	Name intern.Symbol
}

func (i *Ident) GetSpan() source.Span               { return i.Span }
func (i *Ident) String() string                     { return "Ident" }
func (i *Ident) Accept(visitor Visitor) interface{} { return visitor.VisitIdent(i) }
func (i *Ident) exprNode()                          {}

// IdentPath is a dotted path of identifiers such as a.b.c, left
// unresolved by the parser
type IdentPath struct {
	Span  source.Span
	Parts []*Ident
}

func (p *IdentPath) GetSpan() source.Span               { return p.Span }
func (p *IdentPath) String() string                     { return "IdentPath" }
func (p *IdentPath) Accept(visitor Visitor) interface{} { return visitor.VisitIdentPath(p) }

// DataLocation is the declared storage location of a variable
type DataLocation int

const (
	LocationNone DataLocation = iota
	LocationMemory
	LocationStorage
	LocationCalldata
)

func (l DataLocation) String() string {
	switch l {
	case LocationMemory:
		return "memory"
	case LocationStorage:
		return "storage"
	case LocationCalldata:
		return "calldata"
	default:
		return ""
	}
}

// Visibility of a function or state variable
type Visibility int

const (
	VisibilityNone Visibility = iota
	VisibilityPublic
	VisibilityPrivate
	VisibilityInternal
	VisibilityExternal
)

func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityPrivate:
		return "private"
	case VisibilityInternal:
		return "internal"
	case VisibilityExternal:
		return "external"
	default:
		return ""
	}
}

// StateMutability of a function
type StateMutability int

const (
	MutabilityNonpayable StateMutability = iota
	MutabilityPure
	MutabilityView
	MutabilityPayable
)

func (m StateMutability) String() string {
	switch m {
	case MutabilityPure:
		return "pure"
	case MutabilityView:
		return "view"
	case MutabilityPayable:
		return "payable"
	default:
		return ""
	}
}

// VarMutability of a state variable
type VarMutability int

const (
	VarMutable VarMutability = iota
	VarConstant
	VarImmutable
	VarTransient
)

func (m VarMutability) String() string {
	switch m {
	case VarConstant:
		return "constant"
	case VarImmutable:
		return "immutable"
	case VarTransient:
		return "transient"
	default:
		return ""
	}
}

// Param is one parameter, return value, or event field. Name may be
// nil; Indexed is only meaningful for event parameters.
type Param struct {
	Span     source.Span
	Type     TypeName
	Location DataLocation
	Indexed  bool
	Name     *Ident // can be nil
}

func (p *Param) GetSpan() source.Span               { return p.Span }
func (p *Param) String() string                     { return "Param" }
func (p *Param) Accept(visitor Visitor) interface{} { return visitor.VisitParam(p) }

// ParamList is a parenthesized parameter list
type ParamList struct {
	Span   source.Span
	Params []*Param
}

func (p *ParamList) GetSpan() source.Span               { return p.Span }
func (p *ParamList) String() string                     { return "ParamList" }
func (p *ParamList) Accept(visitor Visitor) interface{} { return visitor.VisitParamList(p) }

// OverrideSpecifier is `override` with an optional list of overridden
// bases
type OverrideSpecifier struct {
	Span  source.Span
	Paths []*IdentPath
}

func (o *OverrideSpecifier) GetSpan() source.Span { return o.Span }
func (o *OverrideSpecifier) String() string       { return "override" }
func (o *OverrideSpecifier) Accept(visitor Visitor) interface{} {
	return visitor.VisitOverrideSpecifier(o)
}

// CallArgs is an argument list: positional `(a, b)` or named
// `({x: a, y: b})`
type CallArgs struct {
	Span       source.Span
	Positional []Expr
	Named      []*NamedArg
	IsNamed    bool
}

func (c *CallArgs) GetSpan() source.Span               { return c.Span }
func (c *CallArgs) String() string                     { return "CallArgs" }
func (c *CallArgs) Accept(visitor Visitor) interface{} { return visitor.VisitCallArgs(c) }

// NamedArg is one `name: value` pair in named call arguments or call
// options
type NamedArg struct {
	Span  source.Span
	Name  *Ident
	Value Expr
}

func (n *NamedArg) GetSpan() source.Span               { return n.Span }
func (n *NamedArg) String() string                     { return "NamedArg" }
func (n *NamedArg) Accept(visitor Visitor) interface{} { return visitor.VisitNamedArg(n) }

// ModifierInvocation is one modifier or base-constructor call on a
// function header. Args is nil when no parentheses were written.
type ModifierInvocation struct {
	Span source.Span
	Path *IdentPath
	Args *CallArgs // can be nil
}

func (m *ModifierInvocation) GetSpan() source.Span { return m.Span }
func (m *ModifierInvocation) String() string       { return "ModifierInvocation" }
func (m *ModifierInvocation) Accept(visitor Visitor) interface{} {
	return visitor.VisitModifierInvocation(m)
}
