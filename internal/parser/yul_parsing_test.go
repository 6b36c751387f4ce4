package parser

import (
	"strings"
	"testing"

	"github.com/solyn-lang/solyn/internal/ast"
	"github.com/solyn-lang/solyn/internal/diag"
	"github.com/solyn-lang/solyn/internal/intern"
	"github.com/solyn-lang/solyn/internal/lexer"
	"github.com/solyn-lang/solyn/internal/source"
)

// parseYulStmts parses the statements of one assembly block.
func parseYulStmts(t *testing.T, body string) ([]ast.YulStmt, *intern.Interner) {
	t.Helper()
	stmts, in := parseBody(t, "assembly { "+body+" }")
	as, ok := stmts[0].(*ast.AssemblyStmt)
	if !ok {
		t.Fatalf("statement is not *ast.AssemblyStmt. got=%T", stmts[0])
	}
	return as.Body.Stmts, in
}

// parseYulErr parses an assembly block that is expected to diagnose.
func parseYulErr(t *testing.T, body string) *diag.Sink {
	t.Helper()
	_, sink, _ := parseUnit(t, wrapBody("assembly { "+body+" }"))
	return sink
}

func TestParseYulVarDecl(t *testing.T) {
	stmts, in := parseYulStmts(t, "let x := 1")
	decl, ok := stmts[0].(*ast.YulVarDecl)
	if !ok {
		t.Fatalf("stmts[0] is not *ast.YulVarDecl. got=%T", stmts[0])
	}
	if len(decl.Names) != 1 {
		t.Fatalf("got %d names, expected 1", len(decl.Names))
	}
	if got := identName(t, in, decl.Names[0]); got != "x" {
		t.Fatalf("name wrong. expected=%q, got=%q", "x", got)
	}
	lit, ok := decl.Value.(*ast.YulLit)
	if !ok {
		t.Fatalf("value is not *ast.YulLit. got=%T", decl.Value)
	}
	if lit.Kind != ast.YulLitNumber || lit.IntVal.Int64() != 1 {
		t.Fatalf("value wrong. got kind=%v val=%v", lit.Kind, lit.IntVal)
	}

	stmts, _ = parseYulStmts(t, "let a, b := f()")
	decl = stmts[0].(*ast.YulVarDecl)
	if len(decl.Names) != 2 {
		t.Fatalf("got %d names, expected 2", len(decl.Names))
	}
	if _, ok := decl.Value.(*ast.YulCall); !ok {
		t.Fatalf("value is not *ast.YulCall. got=%T", decl.Value)
	}

	stmts, _ = parseYulStmts(t, "let zero")
	decl = stmts[0].(*ast.YulVarDecl)
	if decl.Value != nil {
		t.Fatalf("declaration without initializer has value %T", decl.Value)
	}
}

func TestParseYulAssignments(t *testing.T) {
	stmts, in := parseYulStmts(t, "x := add(x, 1)")
	assign, ok := stmts[0].(*ast.YulAssign)
	if !ok {
		t.Fatalf("stmts[0] is not *ast.YulAssign. got=%T", stmts[0])
	}
	if len(assign.Targets) != 1 {
		t.Fatalf("got %d targets, expected 1", len(assign.Targets))
	}
	call, ok := assign.Value.(*ast.YulCall)
	if !ok {
		t.Fatalf("value is not *ast.YulCall. got=%T", assign.Value)
	}
	if got := identName(t, in, call.Name); got != "add" {
		t.Fatalf("callee wrong. expected=%q, got=%q", "add", got)
	}
	if len(call.Args) != 2 {
		t.Fatalf("got %d arguments, expected 2", len(call.Args))
	}

	stmts, _ = parseYulStmts(t, "a, b := f()")
	assign = stmts[0].(*ast.YulAssign)
	if len(assign.Targets) != 2 {
		t.Fatalf("got %d targets, expected 2", len(assign.Targets))
	}

	// Dotted paths reach Solidity storage pointers.
	stmts, in = parseYulStmts(t, "x.slot := caller()")
	assign = stmts[0].(*ast.YulAssign)
	if len(assign.Targets[0].Parts) != 2 {
		t.Fatalf("got %d path parts, expected 2", len(assign.Targets[0].Parts))
	}
	if got := identName(t, in, assign.Targets[0].Parts[1]); got != "slot" {
		t.Fatalf("path part wrong. expected=%q, got=%q", "slot", got)
	}
}

func TestParseYulMultiValueNonCall(t *testing.T) {
	for i, body := range []string{"let a, b := 1", "a, b := x"} {
		sink := parseYulErr(t, body)
		d := findCode(sink, diag.CodeYulSyntax)
		if d == nil {
			t.Fatalf("tests[%d] - multi-value non-call accepted: %s", i, body)
		}
		if d.Message != "only a function call can yield multiple values" {
			t.Fatalf("tests[%d] - message wrong. got=%q", i, d.Message)
		}
	}
}

func TestParseYulKeywordBuiltins(t *testing.T) {
	// Most Solidity keywords are ordinary identifiers inside assembly,
	// so the builtins named after them keep working.
	tests := []struct {
		input string
		name  string
		args  int
	}{
		{"return(0, 0)", "return", 2},
		{"byte(1, x)", "byte", 2},
		{"address()", "address", 0},
		{"revert(0, 0)", "revert", 2},
	}
	for i, tt := range tests {
		stmts, in := parseYulStmts(t, tt.input)
		es, ok := stmts[0].(*ast.YulExprStmt)
		if !ok {
			t.Fatalf("tests[%d] - stmts[0] is not *ast.YulExprStmt. got=%T", i, stmts[0])
		}
		call, ok := es.X.(*ast.YulCall)
		if !ok {
			t.Fatalf("tests[%d] - expression is not *ast.YulCall. got=%T", i, es.X)
		}
		if got := identName(t, in, call.Name); got != tt.name {
			t.Fatalf("tests[%d] - callee wrong. expected=%q, got=%q", i, tt.name, got)
		}
		if len(call.Args) != tt.args {
			t.Fatalf("tests[%d] - got %d arguments, expected %d", i, len(call.Args), tt.args)
		}
	}
}

func TestParseYulIf(t *testing.T) {
	stmts, _ := parseYulStmts(t, "if eq(x, 0) { leave }")
	ifs, ok := stmts[0].(*ast.YulIf)
	if !ok {
		t.Fatalf("stmts[0] is not *ast.YulIf. got=%T", stmts[0])
	}
	if _, ok := ifs.Cond.(*ast.YulCall); !ok {
		t.Fatalf("condition is not *ast.YulCall. got=%T", ifs.Cond)
	}
	if len(ifs.Body.Stmts) != 1 {
		t.Fatalf("got %d body statements, expected 1", len(ifs.Body.Stmts))
	}
	if _, ok := ifs.Body.Stmts[0].(*ast.YulLeave); !ok {
		t.Fatalf("body statement is not *ast.YulLeave. got=%T", ifs.Body.Stmts[0])
	}
}

func TestParseYulFor(t *testing.T) {
	stmts, _ := parseYulStmts(t, "for { let i := 0 } lt(i, 10) { i := add(i, 1) } { if done { break } continue }")
	fs, ok := stmts[0].(*ast.YulFor)
	if !ok {
		t.Fatalf("stmts[0] is not *ast.YulFor. got=%T", stmts[0])
	}
	if len(fs.Init.Stmts) != 1 {
		t.Fatalf("got %d init statements, expected 1", len(fs.Init.Stmts))
	}
	if _, ok := fs.Cond.(*ast.YulCall); !ok {
		t.Fatalf("condition is not *ast.YulCall. got=%T", fs.Cond)
	}
	if len(fs.Post.Stmts) != 1 {
		t.Fatalf("got %d post statements, expected 1", len(fs.Post.Stmts))
	}
	body := fs.Body.Stmts
	inner := body[0].(*ast.YulIf)
	if _, ok := inner.Body.Stmts[0].(*ast.YulBreak); !ok {
		t.Fatalf("if body is not *ast.YulBreak. got=%T", inner.Body.Stmts[0])
	}
	if _, ok := body[1].(*ast.YulContinue); !ok {
		t.Fatalf("body[1] is not *ast.YulContinue. got=%T", body[1])
	}
}

func TestParseYulSwitch(t *testing.T) {
	stmts, _ := parseYulStmts(t, `switch shr(224, calldataload(0))
case 0 { result := 1 }
case 0x2e { result := 2 }
default { revert(0, 0) }`)
	sw, ok := stmts[0].(*ast.YulSwitch)
	if !ok {
		t.Fatalf("stmts[0] is not *ast.YulSwitch. got=%T", stmts[0])
	}
	if len(sw.Cases) != 3 {
		t.Fatalf("got %d cases, expected 3", len(sw.Cases))
	}
	if sw.Cases[0].Value == nil || sw.Cases[0].Value.IntVal.Int64() != 0 {
		t.Fatalf("cases[0] value wrong. got=%v", sw.Cases[0].Value)
	}
	if sw.Cases[1].Value == nil || sw.Cases[1].Value.IntVal.Int64() != 0x2e {
		t.Fatalf("cases[1] value wrong. got=%v", sw.Cases[1].Value)
	}
	if sw.Cases[2].Value != nil {
		t.Fatalf("default case has value %v", sw.Cases[2].Value)
	}
}

func TestParseYulSwitchErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"switch x default { } case 1 { }", "case is not allowed after the default case"},
		{"switch x default { } default { }", "only one default case is allowed"},
		{"switch x case y { }", "expected a literal case value, found identifier"},
		{"switch x", "switch statement needs at least one case or a default"},
	}
	for i, tt := range tests {
		sink := parseYulErr(t, tt.input)
		d := findCode(sink, diag.CodeYulSyntax)
		if d == nil {
			t.Fatalf("tests[%d] - malformed switch accepted: %s", i, tt.input)
		}
		if d.Message != tt.want {
			t.Fatalf("tests[%d] - message wrong. expected=%q, got=%q", i, tt.want, d.Message)
		}
	}
}

func TestParseYulFunction(t *testing.T) {
	stmts, in := parseYulStmts(t, "function split(word) -> hi, lo { hi := shr(128, word) lo := and(word, mask) }")
	fn, ok := stmts[0].(*ast.YulFunctionDef)
	if !ok {
		t.Fatalf("stmts[0] is not *ast.YulFunctionDef. got=%T", stmts[0])
	}
	if got := identName(t, in, fn.Name); got != "split" {
		t.Fatalf("name wrong. expected=%q, got=%q", "split", got)
	}
	if len(fn.Params) != 1 || len(fn.Returns) != 2 {
		t.Fatalf("signature wrong: %d params, %d returns", len(fn.Params), len(fn.Returns))
	}
	if len(fn.Body.Stmts) != 2 {
		t.Fatalf("got %d body statements, expected 2", len(fn.Body.Stmts))
	}

	stmts, _ = parseYulStmts(t, "function noop() { }")
	fn = stmts[0].(*ast.YulFunctionDef)
	if len(fn.Params) != 0 || len(fn.Returns) != 0 {
		t.Fatalf("signature wrong: %d params, %d returns", len(fn.Params), len(fn.Returns))
	}
}

func TestParseYulSolidityOperators(t *testing.T) {
	tests := []struct {
		input string
		want  string
		help  string
	}{
		{"x = 1", "assignments inside assembly do not use '='", "write ':=' instead"},
		{"let x = 1", "assignments inside assembly do not use '='", "write ':=' instead"},
		{"let x := 1 + 2", "the '+' operator is not allowed inside assembly blocks",
			"use the builtin functions instead, as in add(x, y)"},
		{"let x := -1", "the '-' operator is not allowed inside assembly blocks",
			"use the builtin functions instead"},
		{"let x := a ? b : c", "the ternary operator is not allowed inside assembly blocks", ""},
	}
	for i, tt := range tests {
		sink := parseYulErr(t, tt.input)
		d := findCode(sink, diag.CodeYulSolidityOnly)
		if d == nil {
			t.Fatalf("tests[%d] - solidity syntax accepted: %s", i, tt.input)
		}
		if d.Message != tt.want {
			t.Fatalf("tests[%d] - message wrong. expected=%q, got=%q", i, tt.want, d.Message)
		}
		if d.Help != tt.help {
			t.Fatalf("tests[%d] - help wrong. expected=%q, got=%q", i, tt.help, d.Help)
		}
	}
}

func TestParseYulSemicolon(t *testing.T) {
	sink := parseYulErr(t, "let x := 1;")
	d := findCode(sink, diag.CodeYulSolidityOnly)
	if d == nil {
		t.Fatalf("semicolon inside assembly accepted")
	}
	if d.Message != "statements inside assembly need no semicolon" {
		t.Fatalf("message wrong. got=%q", d.Message)
	}
}

func TestParseYulLiterals(t *testing.T) {
	stmts, _ := parseYulStmts(t, `let a := 42
let b := 0xff
let c := true
let d := "abc"
let e := hex"c0de"`)
	wantNum := func(i int, val int64) {
		t.Helper()
		lit := stmts[i].(*ast.YulVarDecl).Value.(*ast.YulLit)
		if lit.Kind != ast.YulLitNumber || lit.IntVal.Int64() != val {
			t.Fatalf("stmts[%d] value wrong. got kind=%v val=%v", i, lit.Kind, lit.IntVal)
		}
	}
	wantNum(0, 42)
	wantNum(1, 255)
	lit := stmts[2].(*ast.YulVarDecl).Value.(*ast.YulLit)
	if lit.Kind != ast.YulLitBool || !lit.BoolVal {
		t.Fatalf("stmts[2] value wrong. got kind=%v val=%v", lit.Kind, lit.BoolVal)
	}
	lit = stmts[3].(*ast.YulVarDecl).Value.(*ast.YulLit)
	if lit.Kind != ast.YulLitString || string(lit.StrVal) != "abc" {
		t.Fatalf("stmts[3] value wrong. got kind=%v val=%q", lit.Kind, lit.StrVal)
	}
	lit = stmts[4].(*ast.YulVarDecl).Value.(*ast.YulLit)
	if lit.Kind != ast.YulLitHexString || len(lit.StrVal) != 2 {
		t.Fatalf("stmts[4] value wrong. got kind=%v val=%x", lit.Kind, lit.StrVal)
	}

	// The largest EVM word is fine.
	stmts, _ = parseYulStmts(t, "let max := 0x"+strings.Repeat("f", 64))
	lit = stmts[0].(*ast.YulVarDecl).Value.(*ast.YulLit)
	if lit.IntVal.BitLen() != 256 {
		t.Fatalf("value wrong. got %d bits", lit.IntVal.BitLen())
	}
}

func TestParseYulLiteralErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"let x := 0x1" + strings.Repeat("0", 64), "number literal does not fit in 256 bits"},
		{`let x := "` + strings.Repeat("a", 33) + `"`, "string literals inside assembly are limited to 32 bytes"},
		{"let x := 1.5", "only integer numbers are allowed inside assembly"},
		{`let x := unicode"abc"`, "unicode string literals are not allowed inside assembly"},
	}
	for i, tt := range tests {
		sink := parseYulErr(t, tt.input)
		d := findCode(sink, diag.CodeYulInvalidLiteral)
		if d == nil {
			t.Fatalf("tests[%d] - invalid literal accepted: %s", i, tt.input)
		}
		if d.Message != tt.want {
			t.Fatalf("tests[%d] - message wrong. expected=%q, got=%q", i, tt.want, d.Message)
		}
	}
}

func TestParseYulBareExpressions(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"x", "expected a call or assignment"},
		{"1", "expected a call or assignment, found a literal"},
		{"a.b()", "only plain identifiers can be called"},
	}
	for i, tt := range tests {
		sink := parseYulErr(t, tt.input)
		d := findCode(sink, diag.CodeYulSyntax)
		if d == nil {
			t.Fatalf("tests[%d] - bare expression accepted: %s", i, tt.input)
		}
		if d.Message != tt.want {
			t.Fatalf("tests[%d] - message wrong. expected=%q, got=%q", i, tt.want, d.Message)
		}
	}
}

func TestParseYulNestedBlock(t *testing.T) {
	stmts, _ := parseYulStmts(t, "{ let x := 1 }")
	block, ok := stmts[0].(*ast.YulBlock)
	if !ok {
		t.Fatalf("stmts[0] is not *ast.YulBlock. got=%T", stmts[0])
	}
	if len(block.Stmts) != 1 {
		t.Fatalf("got %d nested statements, expected 1", len(block.Stmts))
	}
}

func TestParseStandaloneYul(t *testing.T) {
	sm := source.NewSourceMap()
	f := sm.AddFile("test.yul", "{ mstore(0, 1) return(0, 32) }")
	in := intern.NewInterner(lexer.KeywordStrings()...)
	sink := diag.NewSink(0)
	block := New(f, in, sink, ast.NewArena()).ParseYul()
	if sink.HasErrors() {
		t.Fatalf("clean input produced diagnostics: %v", sink.Diagnostics())
	}
	if len(block.Stmts) != 2 {
		t.Fatalf("got %d statements, expected 2", len(block.Stmts))
	}
}

func TestParseStandaloneYulTrailer(t *testing.T) {
	sm := source.NewSourceMap()
	f := sm.AddFile("test.yul", "{ } contract")
	in := intern.NewInterner(lexer.KeywordStrings()...)
	sink := diag.NewSink(0)
	New(f, in, sink, ast.NewArena()).ParseYul()
	d := findCode(sink, diag.CodeUnexpectedTrailer)
	if d == nil {
		t.Fatalf("trailing tokens accepted")
	}
	if d.Message != "expected end of file, found 'contract'" {
		t.Fatalf("message wrong. got=%q", d.Message)
	}
}
