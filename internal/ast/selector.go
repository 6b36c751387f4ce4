package ast

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/solyn-lang/solyn/internal/intern"
)

// ABI selectors are the first four bytes of the keccak-256 hash of the
// canonical signature; event topics use the full hash. Canonical form
// spells out elided type sizes and drops parameter names and data
// locations.

// Selector returns the 4-byte call selector of a canonical signature
func Selector(signature string) [4]byte {
	var sel [4]byte
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(signature))
	copy(sel[:], h.Sum(nil))
	return sel
}

// Topic returns the 32-byte event topic of a canonical signature
func Topic(signature string) [32]byte {
	var topic [32]byte
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(signature))
	copy(topic[:], h.Sum(nil))
	return topic
}

// Signature renders the canonical signature `name(type,...)` for a
// parameter list. The interner resolves identifier symbols.
func Signature(in *intern.Interner, name string, params *ParamList) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	if params != nil {
		for i, p := range params.Params {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(CanonicalType(in, p.Type))
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

// CanonicalType renders the canonical ABI spelling of a type name.
// User-defined types are rendered by path; resolving them to their
// underlying tuple or value type is the binder's job, not the
// parser's.
func CanonicalType(in *intern.Interner, t TypeName) string {
	switch ty := t.(type) {
	case *ElementaryType:
		return canonicalElementary(ty)
	case *ArrayType:
		if ty.Len == nil {
			return CanonicalType(in, ty.Elem) + "[]"
		}
		if lit, ok := ty.Len.(*Literal); ok && lit.IntVal != nil {
			return fmt.Sprintf("%s[%s]", CanonicalType(in, ty.Elem), lit.IntVal)
		}
		return CanonicalType(in, ty.Elem) + "[]"
	case *NamedType:
		parts := make([]string, len(ty.Path.Parts))
		for i, p := range ty.Path.Parts {
			parts[i] = in.Resolve(p.Name)
		}
		return strings.Join(parts, ".")
	case *FunctionType:
		return "function"
	case *MappingType:
		return "mapping"
	default:
		return ""
	}
}

func canonicalElementary(t *ElementaryType) string {
	// The parser keeps elided sizes as zero; the ABI wants them
	// spelled out (uint means uint256, fixed means fixed128x18).
	size := t.Size
	switch t.Kind {
	case ElemAddress:
		return "address"
	case ElemInt, ElemUint:
		if size == 0 {
			size = 256
		}
		if t.Kind == ElemInt {
			return fmt.Sprintf("int%d", size)
		}
		return fmt.Sprintf("uint%d", size)
	case ElemFixed, ElemUfixed:
		frac := t.Frac
		if size == 0 {
			size, frac = 128, 18
		}
		if t.Kind == ElemFixed {
			return fmt.Sprintf("fixed%dx%d", size, frac)
		}
		return fmt.Sprintf("ufixed%dx%d", size, frac)
	default:
		return t.String()
	}
}
