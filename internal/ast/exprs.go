package ast

import (
	"math/big"

	"github.com/solyn-lang/solyn/internal/intern"
	"github.com/solyn-lang/solyn/internal/source"
)

// ====== Literals ======

// LitKind discriminates the literal variants
type LitKind int

const (
	LitBool LitKind = iota
	LitNumber
	LitRational
	LitAddress
	LitString
	LitUnicodeString
	LitHexString
)

func (k LitKind) String() string {
	switch k {
	case LitBool:
		return "bool"
	case LitNumber:
		return "number"
	case LitRational:
		return "rational"
	case LitAddress:
		return "address"
	case LitString:
		return "string"
	case LitUnicodeString:
		return "unicode string"
	case LitHexString:
		return "hex string"
	default:
		return "literal"
	}
}

// SubDenom is the unit suffix on a number literal
type SubDenom int

const (
	DenomNone SubDenom = iota
	DenomWei
	DenomGwei
	DenomEther
	DenomSeconds
	DenomMinutes
	DenomHours
	DenomDays
	DenomWeeks
	DenomYears
)

func (d SubDenom) String() string {
	switch d {
	case DenomWei:
		return "wei"
	case DenomGwei:
		return "gwei"
	case DenomEther:
		return "ether"
	case DenomSeconds:
		return "seconds"
	case DenomMinutes:
		return "minutes"
	case DenomHours:
		return "hours"
	case DenomDays:
		return "days"
	case DenomWeeks:
		return "weeks"
	case DenomYears:
		return "years"
	default:
		return ""
	}
}

// Multiplier returns the wei or seconds factor for the denomination
func (d SubDenom) Multiplier() *big.Int {
	switch d {
	case DenomGwei:
		return big.NewInt(1e9)
	case DenomEther:
		return new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	case DenomMinutes:
		return big.NewInt(60)
	case DenomHours:
		return big.NewInt(3600)
	case DenomDays:
		return big.NewInt(86400)
	case DenomWeeks:
		return big.NewInt(604800)
	case DenomYears:
		return big.NewInt(31536000)
	default:
		return big.NewInt(1)
	}
}

// Literal is any literal expression. Adjacent string literals of the
// same kind are concatenated into one node whose span covers all
// parts. Exactly one of the value fields is set, per Kind; IntVal
// already includes the denomination multiplier.
type Literal struct {
	Span    source.Span
	Kind    LitKind
	Raw     intern.Symbol // first raw token body
	IntVal  *big.Int      // LitNumber, LitAddress
	RatVal  *big.Rat      // LitRational
	StrVal  []byte        // string kinds, unescaped and concatenated
	BoolVal bool          // LitBool
	Denom   SubDenom
}

func (l *Literal) GetSpan() source.Span               { return l.Span }
func (l *Literal) String() string                     { return l.Kind.String() }
func (l *Literal) Accept(visitor Visitor) interface{} { return visitor.VisitLiteral(l) }
func (l *Literal) exprNode()                          {}

// ====== Operators ======

// BinOp is a binary or assignment operator
type BinOp int

const (
	BinInvalid BinOp = iota
	BinAdd
	BinSub
	BinMul
	BinDiv
	BinMod
	BinPow
	BinShl
	BinShr
	BinBitAnd
	BinBitOr
	BinBitXor
	BinAnd
	BinOr
	BinEq
	BinNe
	BinLt
	BinLe
	BinGt
	BinGe
)

var binOpNames = map[BinOp]string{
	BinAdd:    "+",
	BinSub:    "-",
	BinMul:    "*",
	BinDiv:    "/",
	BinMod:    "%",
	BinPow:    "**",
	BinShl:    "<<",
	BinShr:    ">>",
	BinBitAnd: "&",
	BinBitOr:  "|",
	BinBitXor: "^",
	BinAnd:    "&&",
	BinOr:     "||",
	BinEq:     "==",
	BinNe:     "!=",
	BinLt:     "<",
	BinLe:     "<=",
	BinGt:     ">",
	BinGe:     ">=",
}

func (op BinOp) String() string {
	if name, ok := binOpNames[op]; ok {
		return name
	}
	return "?"
}

// UnOp is a unary operator
type UnOp int

const (
	UnInvalid UnOp = iota
	UnNeg
	UnNot
	UnBitNot
	UnInc
	UnDec
	UnDelete
)

var unOpNames = map[UnOp]string{
	UnNeg:    "-",
	UnNot:    "!",
	UnBitNot: "~",
	UnInc:    "++",
	UnDec:    "--",
	UnDelete: "delete",
}

func (op UnOp) String() string {
	if name, ok := unOpNames[op]; ok {
		return name
	}
	return "?"
}

// ====== Compound expressions ======

// BinaryExpr is a binary operation
type BinaryExpr struct {
	Span source.Span
	Op   BinOp
	X    Expr
	Y    Expr
}

func (b *BinaryExpr) GetSpan() source.Span               { return b.Span }
func (b *BinaryExpr) String() string                     { return "BinaryExpr" }
func (b *BinaryExpr) Accept(visitor Visitor) interface{} { return visitor.VisitBinary(b) }
func (b *BinaryExpr) exprNode()                          {}

// UnaryExpr is a prefix or postfix unary operation
type UnaryExpr struct {
	Span   source.Span
	Op     UnOp
	X      Expr
	Prefix bool
}

func (u *UnaryExpr) GetSpan() source.Span               { return u.Span }
func (u *UnaryExpr) String() string                     { return "UnaryExpr" }
func (u *UnaryExpr) Accept(visitor Visitor) interface{} { return visitor.VisitUnary(u) }
func (u *UnaryExpr) exprNode()                          {}

// AssignExpr is an assignment. Op is BinInvalid for plain `=` and the
// arithmetic operator for compound forms like `+=`.
type AssignExpr struct {
	Span source.Span
	Op   BinOp
	X    Expr
	Y    Expr
}

func (a *AssignExpr) GetSpan() source.Span               { return a.Span }
func (a *AssignExpr) String() string                     { return "AssignExpr" }
func (a *AssignExpr) Accept(visitor Visitor) interface{} { return visitor.VisitAssign(a) }
func (a *AssignExpr) exprNode()                          {}

// TernaryExpr is `cond ? then : else`
type TernaryExpr struct {
	Span source.Span
	Cond Expr
	Then Expr
	Else Expr
}

func (t *TernaryExpr) GetSpan() source.Span               { return t.Span }
func (t *TernaryExpr) String() string                     { return "TernaryExpr" }
func (t *TernaryExpr) Accept(visitor Visitor) interface{} { return visitor.VisitTernary(t) }
func (t *TernaryExpr) exprNode()                          {}

// CallExpr is a function call
type CallExpr struct {
	Span   source.Span
	Callee Expr
	Args   *CallArgs
}

func (c *CallExpr) GetSpan() source.Span               { return c.Span }
func (c *CallExpr) String() string                     { return "CallExpr" }
func (c *CallExpr) Accept(visitor Visitor) interface{} { return visitor.VisitCall(c) }
func (c *CallExpr) exprNode()                          {}

// CallOptionsExpr is the `{value: 1, gas: 2}` option block applied to
// a callee before the argument list
type CallOptionsExpr struct {
	Span source.Span
	X    Expr
	Opts []*NamedArg
}

func (c *CallOptionsExpr) GetSpan() source.Span               { return c.Span }
func (c *CallOptionsExpr) String() string                     { return "CallOptionsExpr" }
func (c *CallOptionsExpr) Accept(visitor Visitor) interface{} { return visitor.VisitCallOptions(c) }
func (c *CallOptionsExpr) exprNode()                          {}

// MemberExpr is `x.member`
type MemberExpr struct {
	Span   source.Span
	X      Expr
	Member *Ident
}

func (m *MemberExpr) GetSpan() source.Span               { return m.Span }
func (m *MemberExpr) String() string                     { return "MemberExpr" }
func (m *MemberExpr) Accept(visitor Visitor) interface{} { return visitor.VisitMember(m) }
func (m *MemberExpr) exprNode()                          {}

// IndexExpr is `x[i]`. Index can be nil in abstract type positions
// such as `abi.decode(data, (uint[]))`.
type IndexExpr struct {
	Span  source.Span
	X     Expr
	Index Expr // can be nil
}

func (i *IndexExpr) GetSpan() source.Span               { return i.Span }
func (i *IndexExpr) String() string                     { return "IndexExpr" }
func (i *IndexExpr) Accept(visitor Visitor) interface{} { return visitor.VisitIndex(i) }
func (i *IndexExpr) exprNode()                          {}

// SliceExpr is `x[start:end]` with both bounds optional
type SliceExpr struct {
	Span  source.Span
	X     Expr
	Start Expr // can be nil
	End   Expr // can be nil
}

func (s *SliceExpr) GetSpan() source.Span               { return s.Span }
func (s *SliceExpr) String() string                     { return "SliceExpr" }
func (s *SliceExpr) Accept(visitor Visitor) interface{} { return visitor.VisitSlice(s) }
func (s *SliceExpr) exprNode()                          {}

// NewExpr is `new T`
type NewExpr struct {
	Span source.Span
	Type TypeName
}

func (n *NewExpr) GetSpan() source.Span               { return n.Span }
func (n *NewExpr) String() string                     { return "NewExpr" }
func (n *NewExpr) Accept(visitor Visitor) interface{} { return visitor.VisitNew(n) }
func (n *NewExpr) exprNode()                          {}

// TypeExpr is the `type(T)` meta expression
type TypeExpr struct {
	Span source.Span
	Type TypeName
}

func (t *TypeExpr) GetSpan() source.Span               { return t.Span }
func (t *TypeExpr) String() string                     { return "TypeExpr" }
func (t *TypeExpr) Accept(visitor Visitor) interface{} { return visitor.VisitTypeExpr(t) }
func (t *TypeExpr) exprNode()                          {}

// ElementaryTypeExpr is an elementary type keyword used in expression
// position, as in `uint(x)`, `payable(addr)` or `abi.decode` type
// tuples
type ElementaryTypeExpr struct {
	Span source.Span
	Type *ElementaryType
}

func (e *ElementaryTypeExpr) GetSpan() source.Span { return e.Span }
func (e *ElementaryTypeExpr) String() string       { return "ElementaryTypeExpr" }
func (e *ElementaryTypeExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitElementaryTypeExpr(e)
}
func (e *ElementaryTypeExpr) exprNode() {}

// TupleExpr is a parenthesized tuple `(a, b)` or an inline array
// `[a, b]`. Tuple holes are nil entries.
type TupleExpr struct {
	Span    source.Span
	Elems   []Expr // nil entries are holes
	IsArray bool
}

func (t *TupleExpr) GetSpan() source.Span               { return t.Span }
func (t *TupleExpr) String() string                     { return "TupleExpr" }
func (t *TupleExpr) Accept(visitor Visitor) interface{} { return visitor.VisitTuple(t) }
func (t *TupleExpr) exprNode()                          {}

// ====== Recovery ======

// BadExpr is the placeholder left where an expression failed to parse
type BadExpr struct {
	Span source.Span
}

func (b *BadExpr) GetSpan() source.Span               { return b.Span }
func (b *BadExpr) String() string                     { return "BadExpr" }
func (b *BadExpr) Accept(visitor Visitor) interface{} { return visitor.VisitBadExpr(b) }
func (b *BadExpr) exprNode()                          {}
