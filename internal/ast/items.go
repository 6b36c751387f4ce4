package ast

import (
	"github.com/solyn-lang/solyn/internal/intern"
	"github.com/solyn-lang/solyn/internal/source"
)

// ====== Directives ======

// PragmaDirective is `pragma <key> <value>;`. For `pragma solidity`
// the version requirement is additionally parsed into Req; every other
// pragma keeps only the raw value text.
type PragmaDirective struct {
	docs
	Span  source.Span
	Key   *Ident        // solidity, abicoder, experimental, ...
	Value intern.Symbol // raw text between key and semicolon
	Req   *VersionReq   // can be nil; set for pragma solidity
}

func (p *PragmaDirective) GetSpan() source.Span               { return p.Span }
func (p *PragmaDirective) String() string                     { return "pragma" }
func (p *PragmaDirective) Accept(visitor Visitor) interface{} { return visitor.VisitPragma(p) }
func (p *PragmaDirective) itemNode()                          {}

// ImportKind distinguishes the imported surface forms
type ImportKind int

const (
	// ImportPlain is `import "path";` with an optional `as alias`
	ImportPlain ImportKind = iota
	// ImportStar is `import * as alias from "path";`
	ImportStar
	// ImportSymbols is `import {a, b as c} from "path";`
	ImportSymbols
)

// ImportAlias is one `name` or `name as alias` in a symbol import
type ImportAlias struct {
	Span  source.Span
	Name  *Ident
	Alias *Ident // can be nil
}

func (i *ImportAlias) GetSpan() source.Span               { return i.Span }
func (i *ImportAlias) String() string                     { return "ImportAlias" }
func (i *ImportAlias) Accept(visitor Visitor) interface{} { return visitor.VisitImportAlias(i) }

// ImportDirective is one import statement
type ImportDirective struct {
	docs
	Span     source.Span
	Kind     ImportKind
	Path     intern.Symbol // import path string body
	PathSpan source.Span
	Alias    *Ident         // can be nil; plain and star forms
	Symbols  []*ImportAlias // symbol form only
}

func (i *ImportDirective) GetSpan() source.Span               { return i.Span }
func (i *ImportDirective) String() string                     { return "import" }
func (i *ImportDirective) Accept(visitor Visitor) interface{} { return visitor.VisitImport(i) }
func (i *ImportDirective) itemNode()                          {}

// UsingItem is one entry of a using-for list, optionally bound to an
// operator, as in `using {add as +} for Int`.
type UsingItem struct {
	Span source.Span
	Path *IdentPath
	Op   string // operator spelling, "" when unbound
}

func (u *UsingItem) GetSpan() source.Span               { return u.Span }
func (u *UsingItem) String() string                     { return "UsingItem" }
func (u *UsingItem) Accept(visitor Visitor) interface{} { return visitor.VisitUsingItem(u) }

// UsingDirective is `using <library or list> for <type or *>` with an
// optional trailing `global`.
type UsingDirective struct {
	docs
	Span   source.Span
	Lib    *IdentPath   // can be nil; single library form
	Items  []*UsingItem // list form
	Target TypeName     // can be nil; nil means `*`
	Global bool
}

func (u *UsingDirective) GetSpan() source.Span               { return u.Span }
func (u *UsingDirective) String() string                     { return "using" }
func (u *UsingDirective) Accept(visitor Visitor) interface{} { return visitor.VisitUsing(u) }
func (u *UsingDirective) itemNode()                          {}

// ====== Contracts ======

// ContractKind distinguishes contract-like declarations
type ContractKind int

const (
	KindContract ContractKind = iota
	KindAbstractContract
	KindInterface
	KindLibrary
)

func (k ContractKind) String() string {
	switch k {
	case KindAbstractContract:
		return "abstract contract"
	case KindInterface:
		return "interface"
	case KindLibrary:
		return "library"
	default:
		return "contract"
	}
}

// InheritanceSpecifier is one base in an `is` list, with optional
// constructor arguments
type InheritanceSpecifier struct {
	Span source.Span
	Path *IdentPath
	Args *CallArgs // can be nil
}

func (i *InheritanceSpecifier) GetSpan() source.Span { return i.Span }
func (i *InheritanceSpecifier) String() string       { return "InheritanceSpecifier" }
func (i *InheritanceSpecifier) Accept(visitor Visitor) interface{} {
	return visitor.VisitInheritanceSpecifier(i)
}

// ContractDef is a contract, abstract contract, interface or library
type ContractDef struct {
	docs
	Span  source.Span
	Kind  ContractKind
	Name  *Ident
	Bases []*InheritanceSpecifier
	Items []Item
}

func (c *ContractDef) GetSpan() source.Span               { return c.Span }
func (c *ContractDef) String() string                     { return c.Kind.String() }
func (c *ContractDef) Accept(visitor Visitor) interface{} { return visitor.VisitContract(c) }
func (c *ContractDef) itemNode()                          {}

// ====== Functions ======

// FunctionKind distinguishes the function-like declarations
type FunctionKind int

const (
	FnFunction FunctionKind = iota
	FnConstructor
	FnFallback
	FnReceive
	FnModifier
)

func (k FunctionKind) String() string {
	switch k {
	case FnConstructor:
		return "constructor"
	case FnFallback:
		return "fallback"
	case FnReceive:
		return "receive"
	case FnModifier:
		return "modifier"
	default:
		return "function"
	}
}

// FunctionDef is any function-like declaration: free function, member
// function, constructor, fallback, receive or modifier. Body is nil
// for declarations ending in a semicolon.
type FunctionDef struct {
	docs
	Span       source.Span
	Kind       FunctionKind
	Name       *Ident // can be nil; constructor, fallback, receive
	Params     *ParamList
	Returns    *ParamList // can be nil
	Modifiers  []*ModifierInvocation
	Visibility Visibility
	Mutability StateMutability
	Virtual    bool
	Override   *OverrideSpecifier // can be nil
	Body       *Block             // can be nil
}

func (f *FunctionDef) GetSpan() source.Span               { return f.Span }
func (f *FunctionDef) String() string                     { return f.Kind.String() }
func (f *FunctionDef) Accept(visitor Visitor) interface{} { return visitor.VisitFunction(f) }
func (f *FunctionDef) itemNode()                          {}

// ====== Variables ======

// StateVarDecl is a state variable or file-level constant declaration
type StateVarDecl struct {
	docs
	Span       source.Span
	Type       TypeName
	Name       *Ident
	Visibility Visibility
	Mut        VarMutability
	Override   *OverrideSpecifier // can be nil
	Value      Expr               // can be nil
}

func (v *StateVarDecl) GetSpan() source.Span               { return v.Span }
func (v *StateVarDecl) String() string                     { return "StateVarDecl" }
func (v *StateVarDecl) Accept(visitor Visitor) interface{} { return visitor.VisitStateVar(v) }
func (v *StateVarDecl) itemNode()                          {}

// ====== User-defined types ======

// StructField is one member of a struct definition
type StructField struct {
	Span source.Span
	Type TypeName
	Name *Ident
}

func (f *StructField) GetSpan() source.Span               { return f.Span }
func (f *StructField) String() string                     { return "StructField" }
func (f *StructField) Accept(visitor Visitor) interface{} { return visitor.VisitStructField(f) }

// StructDef is a struct definition
type StructDef struct {
	docs
	Span   source.Span
	Name   *Ident
	Fields []*StructField
}

func (s *StructDef) GetSpan() source.Span               { return s.Span }
func (s *StructDef) String() string                     { return "struct" }
func (s *StructDef) Accept(visitor Visitor) interface{} { return visitor.VisitStruct(s) }
func (s *StructDef) itemNode()                          {}

// EnumDef is an enum definition
type EnumDef struct {
	docs
	Span     source.Span
	Name     *Ident
	Variants []*Ident
}

func (e *EnumDef) GetSpan() source.Span               { return e.Span }
func (e *EnumDef) String() string                     { return "enum" }
func (e *EnumDef) Accept(visitor Visitor) interface{} { return visitor.VisitEnum(e) }
func (e *EnumDef) itemNode()                          {}

// EventDef is an event definition
type EventDef struct {
	docs
	Span      source.Span
	Name      *Ident
	Params    *ParamList
	Anonymous bool
}

func (e *EventDef) GetSpan() source.Span               { return e.Span }
func (e *EventDef) String() string                     { return "event" }
func (e *EventDef) Accept(visitor Visitor) interface{} { return visitor.VisitEvent(e) }
func (e *EventDef) itemNode()                          {}

// ErrorDef is a custom error definition
type ErrorDef struct {
	docs
	Span   source.Span
	Name   *Ident
	Params *ParamList
}

func (e *ErrorDef) GetSpan() source.Span               { return e.Span }
func (e *ErrorDef) String() string                     { return "error" }
func (e *ErrorDef) Accept(visitor Visitor) interface{} { return visitor.VisitError(e) }
func (e *ErrorDef) itemNode()                          {}

// UDVTDef is a user-defined value type: `type Name is Underlying;`
type UDVTDef struct {
	docs
	Span       source.Span
	Name       *Ident
	Underlying TypeName
}

func (u *UDVTDef) GetSpan() source.Span               { return u.Span }
func (u *UDVTDef) String() string                     { return "type" }
func (u *UDVTDef) Accept(visitor Visitor) interface{} { return visitor.VisitUDVT(u) }
func (u *UDVTDef) itemNode()                          {}

// ====== Recovery ======

// BadItem is the placeholder left where an item failed to parse. The
// span covers the consumed tokens; a diagnostic was already emitted.
type BadItem struct {
	docs
	Span source.Span
}

func (b *BadItem) GetSpan() source.Span               { return b.Span }
func (b *BadItem) String() string                     { return "BadItem" }
func (b *BadItem) Accept(visitor Visitor) interface{} { return visitor.VisitBadItem(b) }
func (b *BadItem) itemNode()                          {}
