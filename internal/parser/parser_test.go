package parser

import (
	"testing"

	"github.com/solyn-lang/solyn/internal/ast"
	"github.com/solyn-lang/solyn/internal/diag"
	"github.com/solyn-lang/solyn/internal/intern"
	"github.com/solyn-lang/solyn/internal/lexer"
	"github.com/solyn-lang/solyn/internal/source"
)

// parseUnit runs the parser over input registered as test.sol and
// returns the tree together with the sink and interner.
func parseUnit(t *testing.T, input string) (*ast.SourceUnit, *diag.Sink, *intern.Interner) {
	t.Helper()
	sm := source.NewSourceMap()
	f := sm.AddFile("test.sol", input)
	in := intern.NewInterner(lexer.KeywordStrings()...)
	sink := diag.NewSink(0)
	unit := New(f, in, sink, ast.NewArena()).ParseSourceUnit()
	return unit, sink, in
}

// parseClean is parseUnit for input that must parse without
// diagnostics.
func parseClean(t *testing.T, input string) (*ast.SourceUnit, *intern.Interner) {
	t.Helper()
	unit, sink, in := parseUnit(t, input)
	if sink.HasErrors() {
		t.Fatalf("clean input produced diagnostics: %v", sink.Diagnostics())
	}
	return unit, in
}

func findCode(sink *diag.Sink, code diag.Code) *diag.Diagnostic {
	for _, d := range sink.Diagnostics() {
		if d.Code == code {
			return d
		}
	}
	return nil
}

func countCode(sink *diag.Sink, code diag.Code) int {
	n := 0
	for _, d := range sink.Diagnostics() {
		if d.Code == code {
			n++
		}
	}
	return n
}

func identName(t *testing.T, in *intern.Interner, id *ast.Ident) string {
	t.Helper()
	if id == nil {
		t.Fatalf("identifier is nil")
	}
	return in.Resolve(id.Name)
}

// firstContract pulls the contract out of a single-item source unit
func firstContract(t *testing.T, unit *ast.SourceUnit) *ast.ContractDef {
	t.Helper()
	if len(unit.Items) == 0 {
		t.Fatalf("source unit has no items")
	}
	c, ok := unit.Items[0].(*ast.ContractDef)
	if !ok {
		t.Fatalf("items[0] is not *ast.ContractDef. got=%T", unit.Items[0])
	}
	return c
}

func TestParseEmptyFile(t *testing.T) {
	unit, _ := parseClean(t, "")
	if len(unit.Items) != 0 {
		t.Fatalf("empty file has %d items, expected 0", len(unit.Items))
	}
	if unit.Name != "test.sol" {
		t.Fatalf("source unit name wrong. expected=%q, got=%q", "test.sol", unit.Name)
	}
}

func TestParsePragmaSolidity(t *testing.T) {
	unit, in := parseClean(t, "pragma solidity ^0.8.0;\n")
	if len(unit.Items) != 1 {
		t.Fatalf("got %d items, expected 1", len(unit.Items))
	}
	pragma, ok := unit.Items[0].(*ast.PragmaDirective)
	if !ok {
		t.Fatalf("items[0] is not *ast.PragmaDirective. got=%T", unit.Items[0])
	}
	if got := identName(t, in, pragma.Key); got != "solidity" {
		t.Fatalf("pragma key wrong. expected=%q, got=%q", "solidity", got)
	}
	if got := in.Resolve(pragma.Value); got != "^0.8.0" {
		t.Fatalf("pragma value wrong. expected=%q, got=%q", "^0.8.0", got)
	}
	if pragma.Req == nil {
		t.Fatalf("solidity pragma has no parsed version requirement")
	}
	if !pragma.Req.Matches("0.8.20") {
		t.Fatalf("^0.8.0 should match 0.8.20")
	}
	if pragma.Req.Matches("0.7.0") {
		t.Fatalf("^0.8.0 should not match 0.7.0")
	}
}

func TestParsePragmaOther(t *testing.T) {
	unit, in := parseClean(t, "pragma abicoder v2;\npragma experimental SMTChecker;\n")
	if len(unit.Items) != 2 {
		t.Fatalf("got %d items, expected 2", len(unit.Items))
	}
	pragma := unit.Items[0].(*ast.PragmaDirective)
	if got := identName(t, in, pragma.Key); got != "abicoder" {
		t.Fatalf("pragma key wrong. expected=%q, got=%q", "abicoder", got)
	}
	if got := in.Resolve(pragma.Value); got != "v2" {
		t.Fatalf("pragma value wrong. expected=%q, got=%q", "v2", got)
	}
	if pragma.Req != nil {
		t.Fatalf("non-solidity pragma parsed a version requirement: %v", pragma.Req)
	}
}

func TestParsePragmaErrors(t *testing.T) {
	tests := []string{
		"pragma solidity;",
		"pragma solidity banana;",
	}
	for i, input := range tests {
		_, sink, _ := parseUnit(t, input)
		if findCode(sink, diag.CodePragmaSyntax) == nil {
			t.Fatalf("tests[%d] - no pragma error for %q", i, input)
		}
	}
}

func TestParseImportForms(t *testing.T) {
	unit, in := parseClean(t, `
import "./lib/SafeMath.sol";
import "./Token.sol" as Token;
import * as Utils from "./Utils.sol";
import {Ownable, Context as Ctx} from "@oz/access/Ownable.sol";
`)
	if len(unit.Items) != 4 {
		t.Fatalf("got %d items, expected 4", len(unit.Items))
	}
	imports := make([]*ast.ImportDirective, len(unit.Items))
	for i, item := range unit.Items {
		imp, ok := item.(*ast.ImportDirective)
		if !ok {
			t.Fatalf("items[%d] is not *ast.ImportDirective. got=%T", i, item)
		}
		imports[i] = imp
	}

	if imports[0].Kind != ast.ImportPlain || imports[0].Alias != nil {
		t.Fatalf("plain import parsed wrong: kind=%v alias=%v", imports[0].Kind, imports[0].Alias)
	}
	if got := in.Resolve(imports[0].Path); got != "./lib/SafeMath.sol" {
		t.Fatalf("import path wrong. expected=%q, got=%q", "./lib/SafeMath.sol", got)
	}

	if imports[1].Kind != ast.ImportPlain {
		t.Fatalf("aliased plain import has kind %v", imports[1].Kind)
	}
	if got := identName(t, in, imports[1].Alias); got != "Token" {
		t.Fatalf("import alias wrong. expected=%q, got=%q", "Token", got)
	}

	if imports[2].Kind != ast.ImportStar {
		t.Fatalf("star import has kind %v", imports[2].Kind)
	}
	if got := identName(t, in, imports[2].Alias); got != "Utils" {
		t.Fatalf("star import alias wrong. expected=%q, got=%q", "Utils", got)
	}

	if imports[3].Kind != ast.ImportSymbols || len(imports[3].Symbols) != 2 {
		t.Fatalf("symbol import parsed wrong: kind=%v symbols=%d",
			imports[3].Kind, len(imports[3].Symbols))
	}
	if got := identName(t, in, imports[3].Symbols[0].Name); got != "Ownable" {
		t.Fatalf("imported symbol wrong. expected=%q, got=%q", "Ownable", got)
	}
	if imports[3].Symbols[0].Alias != nil {
		t.Fatalf("unaliased symbol has alias %v", imports[3].Symbols[0].Alias)
	}
	if got := identName(t, in, imports[3].Symbols[1].Alias); got != "Ctx" {
		t.Fatalf("symbol alias wrong. expected=%q, got=%q", "Ctx", got)
	}
}

func TestParseImportBadPath(t *testing.T) {
	_, sink, _ := parseUnit(t, "import 42;")
	if findCode(sink, diag.CodeExpectedToken) == nil {
		t.Fatalf("numeric import path accepted")
	}
}

func TestParseContractKinds(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.ContractKind
		name  string
	}{
		{"contract Token {}", ast.KindContract, "Token"},
		{"abstract contract Base {}", ast.KindAbstractContract, "Base"},
		{"interface IERC20 {}", ast.KindInterface, "IERC20"},
		{"library SafeMath {}", ast.KindLibrary, "SafeMath"},
	}
	for i, tt := range tests {
		unit, in := parseClean(t, tt.input)
		c := firstContract(t, unit)
		if c.Kind != tt.kind {
			t.Fatalf("tests[%d] - contract kind wrong. expected=%v, got=%v", i, tt.kind, c.Kind)
		}
		if got := identName(t, in, c.Name); got != tt.name {
			t.Fatalf("tests[%d] - contract name wrong. expected=%q, got=%q", i, tt.name, got)
		}
	}
}

func TestParseAbstractNonContract(t *testing.T) {
	for i, input := range []string{"abstract interface I {}", "abstract library L {}"} {
		_, sink, _ := parseUnit(t, input)
		if findCode(sink, diag.CodeUnexpectedToken) == nil {
			t.Fatalf("tests[%d] - %q accepted", i, input)
		}
	}
}

func TestParseInheritance(t *testing.T) {
	unit, in := parseClean(t, `contract Token is ERC20("Gold", "GLD"), Ownable, Pausable {}`)
	c := firstContract(t, unit)
	if len(c.Bases) != 3 {
		t.Fatalf("got %d bases, expected 3", len(c.Bases))
	}
	first := c.Bases[0]
	if got := identName(t, in, first.Path.Parts[0]); got != "ERC20" {
		t.Fatalf("base name wrong. expected=%q, got=%q", "ERC20", got)
	}
	if first.Args == nil || len(first.Args.Positional) != 2 {
		t.Fatalf("base constructor arguments parsed wrong: %v", first.Args)
	}
	if c.Bases[1].Args != nil {
		t.Fatalf("bare base has constructor arguments")
	}
}

func TestParseStateVariables(t *testing.T) {
	unit, in := parseClean(t, `contract Vault {
    uint256 public totalSupply;
    address private owner = msg.sender;
    uint256 internal constant MAX = 10_000;
    bytes32 immutable salt;
    mapping(address => uint256) balances;
}`)
	c := firstContract(t, unit)
	if len(c.Items) != 5 {
		t.Fatalf("got %d items, expected 5", len(c.Items))
	}
	vars := make([]*ast.StateVarDecl, len(c.Items))
	for i, item := range c.Items {
		v, ok := item.(*ast.StateVarDecl)
		if !ok {
			t.Fatalf("items[%d] is not *ast.StateVarDecl. got=%T", i, item)
		}
		vars[i] = v
	}

	if vars[0].Visibility != ast.VisibilityPublic || vars[0].Value != nil {
		t.Fatalf("totalSupply parsed wrong: vis=%v value=%v", vars[0].Visibility, vars[0].Value)
	}
	if vars[1].Visibility != ast.VisibilityPrivate || vars[1].Value == nil {
		t.Fatalf("owner parsed wrong: vis=%v value=%v", vars[1].Visibility, vars[1].Value)
	}
	if vars[2].Mut != ast.VarConstant {
		t.Fatalf("MAX mutability wrong. expected=%v, got=%v", ast.VarConstant, vars[2].Mut)
	}
	if got := identName(t, in, vars[2].Name); got != "MAX" {
		t.Fatalf("constant name wrong. expected=%q, got=%q", "MAX", got)
	}
	if vars[3].Mut != ast.VarImmutable {
		t.Fatalf("salt mutability wrong. expected=%v, got=%v", ast.VarImmutable, vars[3].Mut)
	}
	if _, ok := vars[4].Type.(*ast.MappingType); !ok {
		t.Fatalf("balances type is not *ast.MappingType. got=%T", vars[4].Type)
	}
}

func TestParseStateVarExternalError(t *testing.T) {
	_, sink, _ := parseUnit(t, "contract C { uint256 external x; }")
	if findCode(sink, diag.CodeInvalidModifier) == nil {
		t.Fatalf("'external' state variable accepted")
	}
}

func TestParseFileLevelConstant(t *testing.T) {
	unit, in := parseClean(t, "uint256 constant DECIMALS = 18;")
	v, ok := unit.Items[0].(*ast.StateVarDecl)
	if !ok {
		t.Fatalf("items[0] is not *ast.StateVarDecl. got=%T", unit.Items[0])
	}
	if v.Mut != ast.VarConstant {
		t.Fatalf("mutability wrong. expected=%v, got=%v", ast.VarConstant, v.Mut)
	}
	if got := identName(t, in, v.Name); got != "DECIMALS" {
		t.Fatalf("name wrong. expected=%q, got=%q", "DECIMALS", got)
	}
	if v.Value == nil {
		t.Fatalf("constant has no initializer")
	}
}

func TestParseFunctionHeader(t *testing.T) {
	unit, in := parseClean(t, `contract Token {
    function transfer(address to, uint256 amount) public virtual override(ERC20, IERC20) onlyOwner returns (bool ok) {
        return true;
    }
}`)
	c := firstContract(t, unit)
	fn, ok := c.Items[0].(*ast.FunctionDef)
	if !ok {
		t.Fatalf("items[0] is not *ast.FunctionDef. got=%T", c.Items[0])
	}
	if fn.Kind != ast.FnFunction {
		t.Fatalf("function kind wrong. expected=%v, got=%v", ast.FnFunction, fn.Kind)
	}
	if got := identName(t, in, fn.Name); got != "transfer" {
		t.Fatalf("function name wrong. expected=%q, got=%q", "transfer", got)
	}
	if len(fn.Params.Params) != 2 {
		t.Fatalf("got %d parameters, expected 2", len(fn.Params.Params))
	}
	if fn.Visibility != ast.VisibilityPublic {
		t.Fatalf("visibility wrong. expected=%v, got=%v", ast.VisibilityPublic, fn.Visibility)
	}
	if !fn.Virtual {
		t.Fatalf("virtual flag not set")
	}
	if fn.Override == nil || len(fn.Override.Paths) != 2 {
		t.Fatalf("override specifier parsed wrong: %v", fn.Override)
	}
	if len(fn.Modifiers) != 1 {
		t.Fatalf("got %d modifiers, expected 1", len(fn.Modifiers))
	}
	if got := identName(t, in, fn.Modifiers[0].Path.Parts[0]); got != "onlyOwner" {
		t.Fatalf("modifier name wrong. expected=%q, got=%q", "onlyOwner", got)
	}
	if fn.Returns == nil || len(fn.Returns.Params) != 1 {
		t.Fatalf("returns clause parsed wrong: %v", fn.Returns)
	}
	if got := identName(t, in, fn.Returns.Params[0].Name); got != "ok" {
		t.Fatalf("return name wrong. expected=%q, got=%q", "ok", got)
	}
	if fn.Body == nil {
		t.Fatalf("function body missing")
	}
}

func TestParseFunctionWithoutBody(t *testing.T) {
	unit, _ := parseClean(t, `interface IERC20 {
    function totalSupply() external view returns (uint256);
}`)
	c := firstContract(t, unit)
	fn := c.Items[0].(*ast.FunctionDef)
	if fn.Body != nil {
		t.Fatalf("interface function has a body")
	}
	if fn.Mutability != ast.MutabilityView {
		t.Fatalf("mutability wrong. expected=%v, got=%v", ast.MutabilityView, fn.Mutability)
	}
}

func TestParseSpecialFunctions(t *testing.T) {
	unit, in := parseClean(t, `contract Wallet {
    constructor(address owner) {}
    receive() external payable {}
    fallback() external {}
    modifier onlyOwner() { _; }
}`)
	c := firstContract(t, unit)
	kinds := []ast.FunctionKind{ast.FnConstructor, ast.FnReceive, ast.FnFallback, ast.FnModifier}
	for i, want := range kinds {
		fn, ok := c.Items[i].(*ast.FunctionDef)
		if !ok {
			t.Fatalf("items[%d] is not *ast.FunctionDef. got=%T", i, c.Items[i])
		}
		if fn.Kind != want {
			t.Fatalf("items[%d] - function kind wrong. expected=%v, got=%v", i, want, fn.Kind)
		}
	}
	ctor := c.Items[0].(*ast.FunctionDef)
	if ctor.Name != nil {
		t.Fatalf("constructor has a name: %v", ctor.Name)
	}
	mod := c.Items[3].(*ast.FunctionDef)
	if got := identName(t, in, mod.Name); got != "onlyOwner" {
		t.Fatalf("modifier name wrong. expected=%q, got=%q", "onlyOwner", got)
	}
}

func TestParseModifierWithoutParams(t *testing.T) {
	unit, _ := parseClean(t, "contract C { modifier locked { _; } }")
	c := firstContract(t, unit)
	mod := c.Items[0].(*ast.FunctionDef)
	if mod.Params != nil {
		t.Fatalf("parameterless modifier has a parameter list: %v", mod.Params)
	}
}

func TestParseFunctionHeaderDuplicates(t *testing.T) {
	tests := []string{
		"contract C { function f() public private {} }",
		"contract C { function f() pure view {} }",
		"contract C { function f() virtual virtual {} }",
	}
	for i, input := range tests {
		_, sink, _ := parseUnit(t, input)
		if findCode(sink, diag.CodeInvalidModifier) == nil {
			t.Fatalf("tests[%d] - duplicate flag accepted: %s", i, input)
		}
	}
}

func TestParseFunctionConstantError(t *testing.T) {
	unit, sink, _ := parseUnit(t, "contract C { function f() constant returns (uint256) {} }")
	if findCode(sink, diag.CodeInvalidModifier) == nil {
		t.Fatalf("'constant' function accepted")
	}
	c := firstContract(t, unit)
	fn := c.Items[0].(*ast.FunctionDef)
	if fn.Mutability != ast.MutabilityNonpayable {
		t.Fatalf("'constant' set mutability to %v", fn.Mutability)
	}
}

func TestParseStructDefinition(t *testing.T) {
	unit, in := parseClean(t, `struct Proposal {
    address proposer;
    uint256 voteCount;
    mapping(address => bool) voted;
}`)
	s, ok := unit.Items[0].(*ast.StructDef)
	if !ok {
		t.Fatalf("items[0] is not *ast.StructDef. got=%T", unit.Items[0])
	}
	if got := identName(t, in, s.Name); got != "Proposal" {
		t.Fatalf("struct name wrong. expected=%q, got=%q", "Proposal", got)
	}
	if len(s.Fields) != 3 {
		t.Fatalf("got %d fields, expected 3", len(s.Fields))
	}
	if got := identName(t, in, s.Fields[1].Name); got != "voteCount" {
		t.Fatalf("field name wrong. expected=%q, got=%q", "voteCount", got)
	}
	if _, ok := s.Fields[2].Type.(*ast.MappingType); !ok {
		t.Fatalf("field type is not *ast.MappingType. got=%T", s.Fields[2].Type)
	}
}

func TestParseEnumDefinition(t *testing.T) {
	unit, in := parseClean(t, "enum Status { Pending, Active, Closed }")
	e, ok := unit.Items[0].(*ast.EnumDef)
	if !ok {
		t.Fatalf("items[0] is not *ast.EnumDef. got=%T", unit.Items[0])
	}
	want := []string{"Pending", "Active", "Closed"}
	if len(e.Variants) != len(want) {
		t.Fatalf("got %d variants, expected %d", len(e.Variants), len(want))
	}
	for i, w := range want {
		if got := identName(t, in, e.Variants[i]); got != w {
			t.Fatalf("variants[%d] wrong. expected=%q, got=%q", i, w, got)
		}
	}
}

func TestParseEmptyEnum(t *testing.T) {
	_, sink, _ := parseUnit(t, "enum Empty {}")
	if findCode(sink, diag.CodeExpectedToken) == nil {
		t.Fatalf("empty enum accepted")
	}
}

func TestParseEventDefinition(t *testing.T) {
	unit, in := parseClean(t, `contract C {
    event Transfer(address indexed from, address indexed to, uint256 value);
    event Log(string message) anonymous;
}`)
	c := firstContract(t, unit)
	ev, ok := c.Items[0].(*ast.EventDef)
	if !ok {
		t.Fatalf("items[0] is not *ast.EventDef. got=%T", c.Items[0])
	}
	if got := identName(t, in, ev.Name); got != "Transfer" {
		t.Fatalf("event name wrong. expected=%q, got=%q", "Transfer", got)
	}
	if len(ev.Params.Params) != 3 {
		t.Fatalf("got %d parameters, expected 3", len(ev.Params.Params))
	}
	if !ev.Params.Params[0].Indexed || !ev.Params.Params[1].Indexed || ev.Params.Params[2].Indexed {
		t.Fatalf("indexed flags wrong: %v %v %v", ev.Params.Params[0].Indexed,
			ev.Params.Params[1].Indexed, ev.Params.Params[2].Indexed)
	}
	if ev.Anonymous {
		t.Fatalf("Transfer marked anonymous")
	}
	log := c.Items[1].(*ast.EventDef)
	if !log.Anonymous {
		t.Fatalf("anonymous flag not set")
	}
}

func TestParseIndexedOutsideEvent(t *testing.T) {
	_, sink, _ := parseUnit(t, "contract C { function f(uint256 indexed x) public {} }")
	if findCode(sink, diag.CodeInvalidModifier) == nil {
		t.Fatalf("'indexed' function parameter accepted")
	}
}

func TestParseErrorDefinition(t *testing.T) {
	unit, in := parseClean(t, "error InsufficientBalance(uint256 available, uint256 required);")
	e, ok := unit.Items[0].(*ast.ErrorDef)
	if !ok {
		t.Fatalf("items[0] is not *ast.ErrorDef. got=%T", unit.Items[0])
	}
	if got := identName(t, in, e.Name); got != "InsufficientBalance" {
		t.Fatalf("error name wrong. expected=%q, got=%q", "InsufficientBalance", got)
	}
	if len(e.Params.Params) != 2 {
		t.Fatalf("got %d parameters, expected 2", len(e.Params.Params))
	}
}

func TestParseUserDefinedValueType(t *testing.T) {
	unit, in := parseClean(t, "type Price is uint128;")
	u, ok := unit.Items[0].(*ast.UDVTDef)
	if !ok {
		t.Fatalf("items[0] is not *ast.UDVTDef. got=%T", unit.Items[0])
	}
	if got := identName(t, in, u.Name); got != "Price" {
		t.Fatalf("type name wrong. expected=%q, got=%q", "Price", got)
	}
	elem, ok := u.Underlying.(*ast.ElementaryType)
	if !ok {
		t.Fatalf("underlying is not *ast.ElementaryType. got=%T", u.Underlying)
	}
	if elem.Kind != ast.ElemUint || elem.Size != 128 {
		t.Fatalf("underlying type wrong: kind=%v size=%d", elem.Kind, elem.Size)
	}
}

func TestParseUDVTNonElementary(t *testing.T) {
	_, sink, _ := parseUnit(t, "type Handle is MyStruct;")
	if findCode(sink, diag.CodeExpectedType) == nil {
		t.Fatalf("non-elementary underlying type accepted")
	}
}

func TestParseUsingFor(t *testing.T) {
	unit, in := parseClean(t, `contract C {
    using SafeMath for uint256;
    using SafeERC20 for *;
}`)
	c := firstContract(t, unit)
	u1, ok := c.Items[0].(*ast.UsingDirective)
	if !ok {
		t.Fatalf("items[0] is not *ast.UsingDirective. got=%T", c.Items[0])
	}
	if u1.Lib == nil {
		t.Fatalf("library path missing")
	}
	if got := identName(t, in, u1.Lib.Parts[0]); got != "SafeMath" {
		t.Fatalf("library name wrong. expected=%q, got=%q", "SafeMath", got)
	}
	if _, ok := u1.Target.(*ast.ElementaryType); !ok {
		t.Fatalf("target is not *ast.ElementaryType. got=%T", u1.Target)
	}
	u2 := c.Items[1].(*ast.UsingDirective)
	if u2.Target != nil {
		t.Fatalf("wildcard target is %T, expected nil", u2.Target)
	}
}

func TestParseUsingOperators(t *testing.T) {
	unit, in := parseClean(t, "using {add as +, sub as -, eq as ==, neg} for Int global;")
	u, ok := unit.Items[0].(*ast.UsingDirective)
	if !ok {
		t.Fatalf("items[0] is not *ast.UsingDirective. got=%T", unit.Items[0])
	}
	if len(u.Items) != 4 {
		t.Fatalf("got %d using items, expected 4", len(u.Items))
	}
	wantOps := []string{"+", "-", "==", ""}
	for i, w := range wantOps {
		if u.Items[i].Op != w {
			t.Fatalf("items[%d] - operator wrong. expected=%q, got=%q", i, w, u.Items[i].Op)
		}
	}
	if got := identName(t, in, u.Items[0].Path.Parts[0]); got != "add" {
		t.Fatalf("bound function wrong. expected=%q, got=%q", "add", got)
	}
	if !u.Global {
		t.Fatalf("global flag not set")
	}
	if _, ok := u.Target.(*ast.NamedType); !ok {
		t.Fatalf("target is not *ast.NamedType. got=%T", u.Target)
	}
}

func TestParseUsingBadOperator(t *testing.T) {
	_, sink, _ := parseUnit(t, "using {shift as <<} for Int;")
	if findCode(sink, diag.CodeUnexpectedToken) == nil {
		t.Fatalf("'<<' accepted as user-definable operator")
	}
}

func TestParseDocCommentAttachment(t *testing.T) {
	unit, in := parseClean(t, `/// @title Counter
/// @notice Counts things.
contract Counter {
    /** Increments by one. */
    function inc() public {}

    uint256 internal count;
}`)
	c := firstContract(t, unit)
	docs := c.Docs()
	if len(docs) != 2 {
		t.Fatalf("got %d doc comments, expected 2", len(docs))
	}
	if got := in.Resolve(docs[0].Text); got != "/// @title Counter" {
		t.Fatalf("doc text wrong. expected=%q, got=%q", "/// @title Counter", got)
	}
	fn := c.Items[0].(*ast.FunctionDef)
	if len(fn.Docs()) != 1 {
		t.Fatalf("got %d function doc comments, expected 1", len(fn.Docs()))
	}
	if got := in.Resolve(fn.Docs()[0].Text); got != "/** Increments by one. */" {
		t.Fatalf("doc text wrong. expected=%q, got=%q", "/** Increments by one. */", got)
	}
	v := c.Items[1].(*ast.StateVarDecl)
	if len(v.Docs()) != 0 {
		t.Fatalf("undocumented variable carries %d doc comments", len(v.Docs()))
	}
}

func TestParseMisplacedPragma(t *testing.T) {
	unit, sink, _ := parseUnit(t, "contract C { pragma solidity ^0.8.0; uint256 x; }")
	if findCode(sink, diag.CodeExpectedItem) == nil {
		t.Fatalf("pragma inside contract accepted")
	}
	c := firstContract(t, unit)
	found := false
	for _, item := range c.Items {
		if _, ok := item.(*ast.StateVarDecl); ok {
			found = true
		}
	}
	if !found {
		t.Fatalf("declaration after the misplaced pragma was lost")
	}
}

func TestParseFreeFunction(t *testing.T) {
	unit, in := parseClean(t, `function min(uint256 a, uint256 b) pure returns (uint256) {
    return a < b ? a : b;
}`)
	fn, ok := unit.Items[0].(*ast.FunctionDef)
	if !ok {
		t.Fatalf("items[0] is not *ast.FunctionDef. got=%T", unit.Items[0])
	}
	if got := identName(t, in, fn.Name); got != "min" {
		t.Fatalf("function name wrong. expected=%q, got=%q", "min", got)
	}
	if fn.Mutability != ast.MutabilityPure {
		t.Fatalf("mutability wrong. expected=%v, got=%v", ast.MutabilityPure, fn.Mutability)
	}
}
