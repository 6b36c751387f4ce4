package ast

import (
	"fmt"

	"github.com/solyn-lang/solyn/internal/source"
)

// ====== Elementary types ======

// ElemKind discriminates the builtin value types
type ElemKind int

const (
	ElemAddress ElemKind = iota
	ElemBool
	ElemString
	ElemBytes      // dynamic bytes
	ElemFixedBytes // bytes1..bytes32, Size in bytes
	ElemInt        // int8..int256, Size in bits
	ElemUint       // uint8..uint256, Size in bits
	ElemFixed      // fixedMxN, Size in bits, Frac decimal digits
	ElemUfixed
)

// ElementaryType is a builtin value type. Size and Frac carry the
// parsed suffix; the unsuffixed spellings keep the defaults int256,
// uint256, fixed128x18 and ufixed128x18.
type ElementaryType struct {
	Span    source.Span
	Kind    ElemKind
	Size    int
	Frac    int
	Payable bool // address payable
}

func (e *ElementaryType) GetSpan() source.Span { return e.Span }

func (e *ElementaryType) String() string {
	switch e.Kind {
	case ElemAddress:
		if e.Payable {
			return "address payable"
		}
		return "address"
	case ElemBool:
		return "bool"
	case ElemString:
		return "string"
	case ElemBytes:
		return "bytes"
	case ElemFixedBytes:
		return fmt.Sprintf("bytes%d", e.Size)
	case ElemInt:
		return fmt.Sprintf("int%d", e.Size)
	case ElemUint:
		return fmt.Sprintf("uint%d", e.Size)
	case ElemFixed:
		return fmt.Sprintf("fixed%dx%d", e.Size, e.Frac)
	case ElemUfixed:
		return fmt.Sprintf("ufixed%dx%d", e.Size, e.Frac)
	default:
		return "type"
	}
}

func (e *ElementaryType) Accept(visitor Visitor) interface{} { return visitor.VisitElementaryType(e) }
func (e *ElementaryType) typeNode()                          {}

// ====== Named types ======

// NamedType is a user-defined type referenced by a possibly qualified
// path
type NamedType struct {
	Span source.Span
	Path *IdentPath
}

func (n *NamedType) GetSpan() source.Span               { return n.Span }
func (n *NamedType) String() string                     { return "NamedType" }
func (n *NamedType) Accept(visitor Visitor) interface{} { return visitor.VisitNamedType(n) }
func (n *NamedType) typeNode()                          {}

// ====== Composite types ======

// MappingType is `mapping(K maybeName => V maybeName)`
type MappingType struct {
	Span      source.Span
	Key       TypeName
	KeyName   *Ident // can be nil
	Value     TypeName
	ValueName *Ident // can be nil
}

func (m *MappingType) GetSpan() source.Span               { return m.Span }
func (m *MappingType) String() string                     { return "MappingType" }
func (m *MappingType) Accept(visitor Visitor) interface{} { return visitor.VisitMappingType(m) }
func (m *MappingType) typeNode()                          {}

// ArrayType is `T[]` or `T[len]`
type ArrayType struct {
	Span source.Span
	Elem TypeName
	Len  Expr // can be nil; nil means dynamic
}

func (a *ArrayType) GetSpan() source.Span               { return a.Span }
func (a *ArrayType) String() string                     { return "ArrayType" }
func (a *ArrayType) Accept(visitor Visitor) interface{} { return visitor.VisitArrayType(a) }
func (a *ArrayType) typeNode()                          {}

// FunctionType is the function type `function (...) ... returns (...)`
type FunctionType struct {
	Span       source.Span
	Params     *ParamList
	Returns    *ParamList // can be nil
	Visibility Visibility
	Mutability StateMutability
}

func (f *FunctionType) GetSpan() source.Span               { return f.Span }
func (f *FunctionType) String() string                     { return "FunctionType" }
func (f *FunctionType) Accept(visitor Visitor) interface{} { return visitor.VisitFunctionType(f) }
func (f *FunctionType) typeNode()                          {}

// ====== Recovery ======

// BadType is the placeholder left where a type failed to parse. A
// diagnostic was already emitted.
type BadType struct {
	Span source.Span
}

func (b *BadType) GetSpan() source.Span               { return b.Span }
func (b *BadType) String() string                     { return "BadType" }
func (b *BadType) Accept(visitor Visitor) interface{} { return visitor.VisitBadType(b) }
func (b *BadType) typeNode()                          {}
