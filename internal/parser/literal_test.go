package parser

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/solyn-lang/solyn/internal/ast"
	"github.com/solyn-lang/solyn/internal/diag"
)

// parseLiteral parses one literal in expression position.
func parseLiteral(t *testing.T, src string) *ast.Literal {
	t.Helper()
	expr, _ := parseExprStmt(t, src)
	lit, ok := expr.(*ast.Literal)
	if !ok {
		t.Fatalf("expression is not *ast.Literal. got=%T", expr)
	}
	return lit
}

// parseLiteralWithErrors is parseLiteral for inputs that diagnose.
func parseLiteralWithErrors(t *testing.T, src string) (*ast.Literal, *diag.Sink) {
	t.Helper()
	unit, sink, _ := parseUnit(t, wrapBody(src+";"))
	c := firstContract(t, unit)
	fn, ok := c.Items[0].(*ast.FunctionDef)
	if !ok {
		t.Fatalf("items[0] is not *ast.FunctionDef. got=%T", c.Items[0])
	}
	es, ok := fn.Body.Stmts[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("stmts[0] is not *ast.ExprStmt. got=%T", fn.Body.Stmts[0])
	}
	lit, ok := es.X.(*ast.Literal)
	if !ok {
		t.Fatalf("expression is not *ast.Literal. got=%T", es.X)
	}
	return lit, sink
}

func TestParseIntegerLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "0"},
		{"42", "42"},
		{"1_000_000", "1000000"},
		{"0x1234_5678", "305419896"},
		{"0xFF", "255"},
		{"115792089237316195423570985008687907853269984665640564039457584007913129639935",
			"115792089237316195423570985008687907853269984665640564039457584007913129639935"},
	}
	for i, tt := range tests {
		lit := parseLiteral(t, tt.input)
		if lit.Kind != ast.LitNumber {
			t.Fatalf("tests[%d] - kind wrong. expected=%v, got=%v", i, ast.LitNumber, lit.Kind)
		}
		if got := lit.IntVal.String(); got != tt.want {
			t.Fatalf("tests[%d] - value wrong. expected=%s, got=%s", i, tt.want, got)
		}
	}
}

func TestParseScientificNotation(t *testing.T) {
	// Whole results collapse to integers no matter how they are spelled.
	tests := []struct {
		input string
		want  string
	}{
		{"1e18", "1000000000000000000"},
		{"2e3", "2000"},
		{"1.5e2", "150"},
	}
	for i, tt := range tests {
		lit := parseLiteral(t, tt.input)
		if lit.Kind != ast.LitNumber {
			t.Fatalf("tests[%d] - kind wrong. expected=%v, got=%v", i, ast.LitNumber, lit.Kind)
		}
		if got := lit.IntVal.String(); got != tt.want {
			t.Fatalf("tests[%d] - value wrong. expected=%s, got=%s", i, tt.want, got)
		}
	}

	lit := parseLiteral(t, "25e-2")
	if lit.Kind != ast.LitRational {
		t.Fatalf("kind wrong. expected=%v, got=%v", ast.LitRational, lit.Kind)
	}
	if got := lit.RatVal.RatString(); got != "1/4" {
		t.Fatalf("value wrong. expected=%s, got=%s", "1/4", got)
	}
}

func TestParseRationalLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0.5", "1/2"},
		{".25", "1/4"},
		{"3.14", "157/50"},
	}
	for i, tt := range tests {
		lit := parseLiteral(t, tt.input)
		if lit.Kind != ast.LitRational {
			t.Fatalf("tests[%d] - kind wrong. expected=%v, got=%v", i, ast.LitRational, lit.Kind)
		}
		if got := lit.RatVal.RatString(); got != tt.want {
			t.Fatalf("tests[%d] - value wrong. expected=%s, got=%s", i, tt.want, got)
		}
	}
}

func TestParseDenominations(t *testing.T) {
	tests := []struct {
		input string
		want  string
		denom ast.SubDenom
	}{
		{"1 wei", "1", ast.DenomWei},
		{"2 gwei", "2000000000", ast.DenomGwei},
		{"1 ether", "1000000000000000000", ast.DenomEther},
		{"0.1 ether", "100000000000000000", ast.DenomEther},
		{"2.5 gwei", "2500000000", ast.DenomGwei},
		{"1 seconds", "1", ast.DenomSeconds},
		{"2 minutes", "120", ast.DenomMinutes},
		{"3 hours", "10800", ast.DenomHours},
		{"2 days", "172800", ast.DenomDays},
		{"1 weeks", "604800", ast.DenomWeeks},
		{"1 years", "31536000", ast.DenomYears},
	}
	for i, tt := range tests {
		lit := parseLiteral(t, tt.input)
		if lit.Kind != ast.LitNumber {
			t.Fatalf("tests[%d] - kind wrong. expected=%v, got=%v", i, ast.LitNumber, lit.Kind)
		}
		if got := lit.IntVal.String(); got != tt.want {
			t.Fatalf("tests[%d] - value wrong. expected=%s, got=%s", i, tt.want, got)
		}
		if lit.Denom != tt.denom {
			t.Fatalf("tests[%d] - denomination wrong. expected=%v, got=%v", i, tt.denom, lit.Denom)
		}
	}

	// A fractional count of seconds has no exact value and stays
	// rational.
	lit := parseLiteral(t, "0.5 seconds")
	if lit.Kind != ast.LitRational {
		t.Fatalf("kind wrong. expected=%v, got=%v", ast.LitRational, lit.Kind)
	}
	if got := lit.RatVal.RatString(); got != "1/2" {
		t.Fatalf("value wrong. expected=%s, got=%s", "1/2", got)
	}
}

func TestParseHexWithDenomination(t *testing.T) {
	lit, sink := parseLiteralWithErrors(t, "0x10 days")
	d := findCode(sink, diag.CodeInvalidNumber)
	if d == nil {
		t.Fatalf("hex number with denomination accepted")
	}
	if d.Message != "hex numbers cannot be used with unit denominations" {
		t.Fatalf("message wrong. got=%q", d.Message)
	}
	if d.Help != "multiply by the unit instead, as in 0x1234 * 1 days" {
		t.Fatalf("help wrong. got=%q", d.Help)
	}
	if lit.Denom != ast.DenomNone {
		t.Fatalf("denomination not dropped. got=%v", lit.Denom)
	}
	if got := lit.IntVal.String(); got != "16" {
		t.Fatalf("value wrong. expected=%s, got=%s", "16", got)
	}
}

func TestParseAddressLiterals(t *testing.T) {
	// EIP-55 test vectors.
	addrs := []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	}
	for i, addr := range addrs {
		lit := parseLiteral(t, addr)
		if lit.Kind != ast.LitAddress {
			t.Fatalf("tests[%d] - kind wrong. expected=%v, got=%v", i, ast.LitAddress, lit.Kind)
		}
		want, _ := new(big.Int).SetString(strings.ToLower(addr[2:]), 16)
		if lit.IntVal.Cmp(want) != 0 {
			t.Fatalf("tests[%d] - value wrong. expected=%s, got=%s", i, want, lit.IntVal)
		}
	}
}

func TestParseAddressSingleCase(t *testing.T) {
	// Single-case spellings carry no checksum and stay numbers.
	for i, input := range []string{
		"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		"0x5AAEB6053F3E94C9B9A09F33669435E7EF1BEAED",
	} {
		lit := parseLiteral(t, input)
		if lit.Kind != ast.LitNumber {
			t.Fatalf("tests[%d] - kind wrong. expected=%v, got=%v", i, ast.LitNumber, lit.Kind)
		}
	}
}

func TestParseAddressBadChecksum(t *testing.T) {
	// First letter lowercased out of its checksummed spelling.
	lit, sink := parseLiteralWithErrors(t, "0x5aaeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	d := findCode(sink, diag.CodeAddressChecksum)
	if d == nil {
		t.Fatalf("broken checksum accepted")
	}
	if d.Message != "address literal has an invalid checksum" {
		t.Fatalf("message wrong. got=%q", d.Message)
	}
	want := `correct checksummed address is "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"`
	if d.Help != want {
		t.Fatalf("help wrong. expected=%q, got=%q", want, d.Help)
	}
	// The literal still becomes an address so one typo does not cascade.
	if lit.Kind != ast.LitAddress {
		t.Fatalf("kind wrong. expected=%v, got=%v", ast.LitAddress, lit.Kind)
	}
}

func TestParseStringLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"foo" "bar"`, "foobar"},
		{`"tab\tnewline\n"`, "tab\tnewline\n"},
		{`"\x41\x42"`, "AB"},
		{`"A"`, "A"},
		{`"quote\"backslash\\"`, `quote"backslash\`},
	}
	for i, tt := range tests {
		lit := parseLiteral(t, tt.input)
		if lit.Kind != ast.LitString {
			t.Fatalf("tests[%d] - kind wrong. expected=%v, got=%v", i, ast.LitString, lit.Kind)
		}
		if got := string(lit.StrVal); got != tt.want {
			t.Fatalf("tests[%d] - value wrong. expected=%q, got=%q", i, tt.want, got)
		}
	}
}

func TestParseUnicodeStringLiteral(t *testing.T) {
	lit := parseLiteral(t, `unicode"héllo ☃"`)
	if lit.Kind != ast.LitUnicodeString {
		t.Fatalf("kind wrong. expected=%v, got=%v", ast.LitUnicodeString, lit.Kind)
	}
	if got := string(lit.StrVal); got != "héllo ☃" {
		t.Fatalf("value wrong. expected=%q, got=%q", "héllo ☃", got)
	}
}

func TestParseHexStringLiteral(t *testing.T) {
	tests := []struct {
		input string
		want  []byte
	}{
		{`hex"deadbeef"`, []byte{0xde, 0xad, 0xbe, 0xef}},
		{`hex"dead_beef"`, []byte{0xde, 0xad, 0xbe, 0xef}},
		{`hex""`, nil},
	}
	for i, tt := range tests {
		lit := parseLiteral(t, tt.input)
		if lit.Kind != ast.LitHexString {
			t.Fatalf("tests[%d] - kind wrong. expected=%v, got=%v", i, ast.LitHexString, lit.Kind)
		}
		if !bytes.Equal(lit.StrVal, tt.want) {
			t.Fatalf("tests[%d] - value wrong. expected=%x, got=%x", i, tt.want, lit.StrVal)
		}
	}
}

func TestParseBoolLiterals(t *testing.T) {
	for i, tt := range []struct {
		input string
		want  bool
	}{
		{"true", true},
		{"false", false},
	} {
		lit := parseLiteral(t, tt.input)
		if lit.Kind != ast.LitBool {
			t.Fatalf("tests[%d] - kind wrong. expected=%v, got=%v", i, ast.LitBool, lit.Kind)
		}
		if lit.BoolVal != tt.want {
			t.Fatalf("tests[%d] - value wrong. expected=%v, got=%v", i, tt.want, lit.BoolVal)
		}
	}
}
