package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/solyn-lang/solyn/internal/intern"
)

// Fprint writes an indented dump of the tree rooted at node, one node
// per line with its byte span. The interner resolves identifier
// symbols; it may be nil, in which case symbols print numerically.
func Fprint(w io.Writer, in *intern.Interner, node Node) error {
	p := &printer{w: w, in: in}
	p.print(node, 0)
	return p.err
}

type printer struct {
	w   io.Writer
	in  *intern.Interner
	err error
}

func (p *printer) print(node Node, depth int) {
	if p.err != nil {
		return
	}
	span := node.GetSpan()
	_, p.err = fmt.Fprintf(p.w, "%s%s [%d..%d)\n",
		strings.Repeat("  ", depth), p.label(node), span.Lo(), span.Hi())
	eachChild(node, func(child Node) { p.print(child, depth+1) })
}

func (p *printer) label(node Node) string {
	switch n := node.(type) {
	case *Ident:
		return "Ident " + p.symbol(n.Name)
	case *PragmaDirective:
		return "pragma " + p.symbol(n.Key.Name) + " " + p.symbol(n.Value)
	case *ImportDirective:
		return fmt.Sprintf("import %q", p.symbol(n.Path))
	case *ContractDef:
		return n.Kind.String() + " " + p.symbol(n.Name.Name)
	case *FunctionDef:
		if n.Name != nil {
			return n.Kind.String() + " " + p.symbol(n.Name.Name)
		}
		return n.Kind.String()
	case *StateVarDecl:
		return "StateVarDecl " + p.symbol(n.Name.Name)
	case *StructDef:
		return "struct " + p.symbol(n.Name.Name)
	case *EnumDef:
		return "enum " + p.symbol(n.Name.Name)
	case *EventDef:
		return "event " + p.symbol(n.Name.Name)
	case *ErrorDef:
		return "error " + p.symbol(n.Name.Name)
	case *UDVTDef:
		return "type " + p.symbol(n.Name.Name)
	case *Literal:
		return "Literal " + p.literal(n)
	case *BinaryExpr:
		return "BinaryExpr " + n.Op.String()
	case *UnaryExpr:
		return "UnaryExpr " + n.Op.String()
	case *AssignExpr:
		if n.Op == BinInvalid {
			return "AssignExpr ="
		}
		return "AssignExpr " + n.Op.String() + "="
	case *ElementaryType:
		return n.String()
	case *YulLit:
		return "YulLit " + p.symbol(n.Raw)
	default:
		return node.String()
	}
}

func (p *printer) symbol(sym intern.Symbol) string {
	if p.in == nil {
		return fmt.Sprintf("#%d", sym)
	}
	return p.in.Resolve(sym)
}

func (p *printer) literal(lit *Literal) string {
	switch lit.Kind {
	case LitBool:
		return fmt.Sprintf("%v", lit.BoolVal)
	case LitNumber, LitAddress:
		if lit.IntVal != nil {
			return lit.IntVal.String()
		}
	case LitRational:
		if lit.RatVal != nil {
			return lit.RatVal.RatString()
		}
	case LitString, LitUnicodeString, LitHexString:
		return fmt.Sprintf("%q", lit.StrVal)
	}
	return p.symbol(lit.Raw)
}
