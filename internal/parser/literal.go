package parser

import (
	"math/big"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/solyn-lang/solyn/internal/ast"
	"github.com/solyn-lang/solyn/internal/diag"
	"github.com/solyn-lang/solyn/internal/lexer"
)

// ====== Number Literals ======

var denoms = map[lexer.TokenType]ast.SubDenom{
	lexer.TokenWei:     ast.DenomWei,
	lexer.TokenGwei:    ast.DenomGwei,
	lexer.TokenEther:   ast.DenomEther,
	lexer.TokenSeconds: ast.DenomSeconds,
	lexer.TokenMinutes: ast.DenomMinutes,
	lexer.TokenHours:   ast.DenomHours,
	lexer.TokenDays:    ast.DenomDays,
	lexer.TokenWeeks:   ast.DenomWeeks,
	lexer.TokenYears:   ast.DenomYears,
}

// parseNumberLiteral materializes an integer or rational literal,
// folding in the unit denomination that follows it, if any. Values are
// arbitrary precision; range checks against a concrete type happen
// after name resolution.
func (p *Parser) parseNumberLiteral() ast.Expr {
	tok := p.next()
	raw := p.interner.Resolve(tok.Symbol)
	span := tok.Span

	denom := ast.DenomNone
	if d, ok := denoms[p.current().Type]; ok {
		denom = d
		span = span.To(p.current().Span)
		p.next()
	}

	lit := ast.NewIn(p.arena, ast.Literal{Span: span, Raw: tok.Symbol, Denom: denom})
	if tok.Type == lexer.TokenRational {
		p.materializeRational(lit, raw)
	} else {
		p.materializeInteger(lit, raw)
	}
	return lit
}

func (p *Parser) materializeInteger(lit *ast.Literal, raw string) {
	lit.Kind = ast.LitNumber
	clean := strings.ReplaceAll(raw, "_", "")
	isHex := strings.HasPrefix(clean, "0x") || strings.HasPrefix(clean, "0X")
	if isHex && lit.Denom != ast.DenomNone {
		p.sink.Emit(diag.New(diag.Error, diag.CodeInvalidNumber, lit.Span,
			"hex numbers cannot be used with unit denominations").
			WithHelp("multiply by the unit instead, as in 0x1234 * 1 days"))
		lit.Denom = ast.DenomNone
	}
	if isAddressCandidate(raw) && p.checkAddress(lit, raw) {
		return
	}
	base := 10
	if isHex {
		base = 16
		clean = clean[2:]
	}
	val, ok := new(big.Int).SetString(clean, base)
	if !ok {
		// The lexer already reported the malformed literal.
		lit.IntVal = new(big.Int)
		return
	}
	lit.IntVal = val.Mul(val, lit.Denom.Multiplier())
}

func (p *Parser) materializeRational(lit *ast.Literal, raw string) {
	clean := strings.ReplaceAll(raw, "_", "")
	if strings.HasPrefix(clean, ".") {
		clean = "0" + clean
	}
	rat, ok := new(big.Rat).SetString(clean)
	if !ok {
		lit.Kind = ast.LitRational
		lit.RatVal = new(big.Rat)
		return
	}
	rat.Mul(rat, new(big.Rat).SetInt(lit.Denom.Multiplier()))
	// `0.1 ether` and `1e18` both collapse to whole numbers.
	if rat.IsInt() {
		lit.Kind = ast.LitNumber
		lit.IntVal = rat.Num()
		return
	}
	lit.Kind = ast.LitRational
	lit.RatVal = rat
}

// ====== Address Literals ======

// isAddressCandidate reports whether the literal spells exactly 40 hex
// digits after 0x with no separators, which subjects it to the EIP-55
// checksum rules.
func isAddressCandidate(raw string) bool {
	if len(raw) != 42 || !strings.HasPrefix(raw, "0x") {
		return false
	}
	for i := 2; i < len(raw); i++ {
		if !isHexDigit(raw[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// checkAddress applies EIP-55: a mixed-case candidate must match its
// checksummed spelling and becomes an address literal either way, so
// one typo does not cascade into type errors. Single-case spellings
// carry no checksum and stay plain numbers.
func (p *Parser) checkAddress(lit *ast.Literal, raw string) bool {
	hexPart := raw[2:]
	var hasUpper, hasLower bool
	for i := 0; i < len(hexPart); i++ {
		c := hexPart[i]
		hasUpper = hasUpper || c >= 'A' && c <= 'F'
		hasLower = hasLower || c >= 'a' && c <= 'f'
	}
	if !hasUpper || !hasLower {
		return false
	}
	if sum := checksumAddress(hexPart); sum != hexPart {
		p.sink.Emit(diag.New(diag.Error, diag.CodeAddressChecksum, lit.Span,
			"address literal has an invalid checksum").
			WithHelp("correct checksummed address is \"0x" + sum + "\""))
	}
	lit.Kind = ast.LitAddress
	lit.IntVal, _ = new(big.Int).SetString(strings.ToLower(hexPart), 16)
	return true
}

// checksumAddress returns the EIP-55 spelling of a 40-digit hex
// address: a letter is uppercase when the matching nibble of the
// keccak256 hash of the lowercase spelling is 8 or more.
func checksumAddress(hexPart string) string {
	lower := strings.ToLower(hexPart)
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	hash := h.Sum(nil)
	out := []byte(lower)
	for i := 0; i < len(out); i++ {
		if out[i] < 'a' || out[i] > 'f' {
			continue
		}
		nibble := hash[i/2] >> 4
		if i%2 == 1 {
			nibble = hash[i/2] & 0x0f
		}
		if nibble >= 8 {
			out[i] -= 'a' - 'A'
		}
	}
	return string(out)
}

// ====== String Literals ======

// parseStringLiteral parses a string literal, concatenating adjacent
// parts of the same kind into one node the way `"abc" "def"` denotes a
// single string.
func (p *Parser) parseStringLiteral() ast.Expr {
	first := p.current()
	kind, mode := stringKind(first.Type)
	span := first.Span
	var val []byte
	for p.current().Type == first.Type {
		part := p.next()
		span = span.To(part.Span)
		val = append(val, lexer.Unescape(p.interner.Resolve(part.Symbol), mode, nil)...)
	}
	return ast.NewIn(p.arena, ast.Literal{Span: span, Kind: kind, Raw: first.Symbol, StrVal: val})
}

func stringKind(tt lexer.TokenType) (ast.LitKind, lexer.StrMode) {
	switch tt {
	case lexer.TokenUnicodeString:
		return ast.LitUnicodeString, lexer.ModeUnicodeStr
	case lexer.TokenHexString:
		return ast.LitHexString, lexer.ModeHexStr
	default:
		return ast.LitString, lexer.ModeStr
	}
}
