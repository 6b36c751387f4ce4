package lexer

import (
	"fmt"

	"github.com/solyn-lang/solyn/internal/intern"
	"github.com/solyn-lang/solyn/internal/source"
)

// TokenType represents the type of a token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenError

	// Identifiers and literals
	TokenIdentifier
	TokenInteger
	TokenRational
	TokenString
	TokenHexString
	TokenUnicodeString

	// Doc comments survive lexing so they can be attached to the
	// declaration that follows them; plain comments do not.
	TokenDocLineComment
	TokenDocBlockComment

	// Declaration keywords
	TokenAbstract
	TokenContract
	TokenInterface
	TokenLibrary
	TokenFunction
	TokenConstructor
	TokenFallback
	TokenReceive
	TokenModifier
	TokenStruct
	TokenEnum
	TokenEvent
	TokenErrorKw
	TokenMapping
	TokenImport
	TokenPragma
	TokenUsing
	TokenIs
	TokenAs
	TokenFrom
	TokenGlobal
	TokenTypeKw

	// Statement keywords
	TokenIf
	TokenElse
	TokenFor
	TokenWhile
	TokenDo
	TokenBreak
	TokenContinue
	TokenReturn
	TokenReturns
	TokenTry
	TokenCatch
	TokenEmit
	TokenRevert
	TokenAssembly
	TokenUnchecked
	TokenDelete
	TokenNew

	// Visibility and mutability
	TokenPublic
	TokenPrivate
	TokenInternal
	TokenExternal
	TokenPure
	TokenView
	TokenPayable
	TokenConstant
	TokenImmutable
	TokenTransient
	TokenVirtual
	TokenOverride
	TokenAnonymous
	TokenIndexed

	// Data location
	TokenMemory
	TokenStorage
	TokenCalldata

	// Elementary types. Sized variants (uint256, bytes32, ...) share
	// the base type's token; the exact spelling stays in the symbol.
	TokenAddress
	TokenBool
	TokenStringType
	TokenBytes
	TokenByte
	TokenInt
	TokenUint
	TokenFixed
	TokenUfixed

	// Literal keywords and denominations
	TokenTrue
	TokenFalse
	TokenHex
	TokenUnicode
	TokenWei
	TokenGwei
	TokenEther
	TokenSeconds
	TokenMinutes
	TokenHours
	TokenDays
	TokenWeeks
	TokenYears

	// Yul keywords. Reserved in Solidity; structural inside assembly.
	TokenLet
	TokenLeave
	TokenSwitch
	TokenCase
	TokenDefault

	// Remaining reserved words. Using one outside assembly is an
	// error, but they must lex as keywords so the message can say so.
	TokenReserved

	// Operators
	TokenAssign
	TokenPlusAssign
	TokenMinusAssign
	TokenMulAssign
	TokenDivAssign
	TokenModAssign
	TokenBitAndAssign
	TokenBitOrAssign
	TokenBitXorAssign
	TokenShlAssign
	TokenShrAssign
	TokenPlus
	TokenMinus
	TokenMul
	TokenDiv
	TokenMod
	TokenPower
	TokenInc
	TokenDec
	TokenEq
	TokenNe
	TokenLt
	TokenLe
	TokenGt
	TokenGe
	TokenAnd
	TokenOr
	TokenNot
	TokenBitAnd
	TokenBitOr
	TokenBitXor
	TokenBitNot
	TokenShl
	TokenShr
	TokenQuestion
	TokenYulAssign // :=

	// Delimiters
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenSemicolon
	TokenComma
	TokenDot
	TokenColon
	TokenArrow    // ->
	TokenFatArrow // =>
)

// Token represents a lexical token. The symbol carries the interned
// source text for identifiers, literals and doc comments; operator and
// keyword tokens leave it empty.
type Token struct {
	Type   TokenType
	Span   source.Span
	Symbol intern.Symbol
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("{Type: %s, Span: [%d,%d)}", t.Type, t.Span.Lo(), t.Span.Hi())
}

// IsKeyword returns true for any keyword token, reserved ones included.
func (t TokenType) IsKeyword() bool {
	return t >= TokenAbstract && t <= TokenReserved
}

// IsLiteral returns true for literal tokens.
func (t TokenType) IsLiteral() bool {
	return t >= TokenInteger && t <= TokenUnicodeString
}

// IsElementaryType returns true for the elementary type keywords.
func (t TokenType) IsElementaryType() bool {
	return t >= TokenAddress && t <= TokenUfixed
}

// IsYulKeyword returns true for the keywords that are structural inside
// assembly blocks.
func (t TokenType) IsYulKeyword() bool {
	return t >= TokenLet && t <= TokenDefault ||
		t == TokenFunction || t == TokenIf || t == TokenFor ||
		t == TokenBreak || t == TokenContinue
}

func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// tokenNames provides string representations for token types
var tokenNames = map[TokenType]string{
	TokenEOF:   "EOF",
	TokenError: "ERROR",

	TokenIdentifier:    "IDENTIFIER",
	TokenInteger:       "INTEGER",
	TokenRational:      "RATIONAL",
	TokenString:        "STRING",
	TokenHexString:     "HEX_STRING",
	TokenUnicodeString: "UNICODE_STRING",

	TokenDocLineComment:  "DOC_LINE_COMMENT",
	TokenDocBlockComment: "DOC_BLOCK_COMMENT",

	TokenAbstract:    "abstract",
	TokenContract:    "contract",
	TokenInterface:   "interface",
	TokenLibrary:     "library",
	TokenFunction:    "function",
	TokenConstructor: "constructor",
	TokenFallback:    "fallback",
	TokenReceive:     "receive",
	TokenModifier:    "modifier",
	TokenStruct:      "struct",
	TokenEnum:        "enum",
	TokenEvent:       "event",
	TokenErrorKw:     "error",
	TokenMapping:     "mapping",
	TokenImport:      "import",
	TokenPragma:      "pragma",
	TokenUsing:       "using",
	TokenIs:          "is",
	TokenAs:          "as",
	TokenFrom:        "from",
	TokenGlobal:      "global",
	TokenTypeKw:      "type",

	TokenIf:        "if",
	TokenElse:      "else",
	TokenFor:       "for",
	TokenWhile:     "while",
	TokenDo:        "do",
	TokenBreak:     "break",
	TokenContinue:  "continue",
	TokenReturn:    "return",
	TokenReturns:   "returns",
	TokenTry:       "try",
	TokenCatch:     "catch",
	TokenEmit:      "emit",
	TokenRevert:    "revert",
	TokenAssembly:  "assembly",
	TokenUnchecked: "unchecked",
	TokenDelete:    "delete",
	TokenNew:       "new",

	TokenPublic:    "public",
	TokenPrivate:   "private",
	TokenInternal:  "internal",
	TokenExternal:  "external",
	TokenPure:      "pure",
	TokenView:      "view",
	TokenPayable:   "payable",
	TokenConstant:  "constant",
	TokenImmutable: "immutable",
	TokenTransient: "transient",
	TokenVirtual:   "virtual",
	TokenOverride:  "override",
	TokenAnonymous: "anonymous",
	TokenIndexed:   "indexed",

	TokenMemory:   "memory",
	TokenStorage:  "storage",
	TokenCalldata: "calldata",

	TokenAddress:    "address",
	TokenBool:       "bool",
	TokenStringType: "string",
	TokenBytes:      "bytes",
	TokenByte:       "byte",
	TokenInt:        "int",
	TokenUint:       "uint",
	TokenFixed:      "fixed",
	TokenUfixed:     "ufixed",

	TokenTrue:    "true",
	TokenFalse:   "false",
	TokenHex:     "hex",
	TokenUnicode: "unicode",
	TokenWei:     "wei",
	TokenGwei:    "gwei",
	TokenEther:   "ether",
	TokenSeconds: "seconds",
	TokenMinutes: "minutes",
	TokenHours:   "hours",
	TokenDays:    "days",
	TokenWeeks:   "weeks",
	TokenYears:   "years",

	TokenLet:     "let",
	TokenLeave:   "leave",
	TokenSwitch:  "switch",
	TokenCase:    "case",
	TokenDefault: "default",

	TokenReserved: "RESERVED",

	TokenAssign:       "=",
	TokenPlusAssign:   "+=",
	TokenMinusAssign:  "-=",
	TokenMulAssign:    "*=",
	TokenDivAssign:    "/=",
	TokenModAssign:    "%=",
	TokenBitAndAssign: "&=",
	TokenBitOrAssign:  "|=",
	TokenBitXorAssign: "^=",
	TokenShlAssign:    "<<=",
	TokenShrAssign:    ">>=",
	TokenPlus:         "+",
	TokenMinus:        "-",
	TokenMul:          "*",
	TokenDiv:          "/",
	TokenMod:          "%",
	TokenPower:        "**",
	TokenInc:          "++",
	TokenDec:          "--",
	TokenEq:           "==",
	TokenNe:           "!=",
	TokenLt:           "<",
	TokenLe:           "<=",
	TokenGt:           ">",
	TokenGe:           ">=",
	TokenAnd:          "&&",
	TokenOr:           "||",
	TokenNot:          "!",
	TokenBitAnd:       "&",
	TokenBitOr:        "|",
	TokenBitXor:       "^",
	TokenBitNot:       "~",
	TokenShl:          "<<",
	TokenShr:          ">>",
	TokenQuestion:     "?",
	TokenYulAssign:    ":=",

	TokenLParen:    "(",
	TokenRParen:    ")",
	TokenLBrace:    "{",
	TokenRBrace:    "}",
	TokenLBracket:  "[",
	TokenRBracket:  "]",
	TokenSemicolon: ";",
	TokenComma:     ",",
	TokenDot:       ".",
	TokenColon:     ":",
	TokenArrow:     "->",
	TokenFatArrow:  "=>",
}

// keywords maps reserved spellings to their token types
var keywords = map[string]TokenType{
	"abstract":    TokenAbstract,
	"contract":    TokenContract,
	"interface":   TokenInterface,
	"library":     TokenLibrary,
	"function":    TokenFunction,
	"constructor": TokenConstructor,
	"fallback":    TokenFallback,
	"receive":     TokenReceive,
	"modifier":    TokenModifier,
	"struct":      TokenStruct,
	"enum":        TokenEnum,
	"event":       TokenEvent,
	"error":       TokenErrorKw,
	"mapping":     TokenMapping,
	"import":      TokenImport,
	"pragma":      TokenPragma,
	"using":       TokenUsing,
	"is":          TokenIs,
	"as":          TokenAs,
	"from":        TokenFrom,
	"global":      TokenGlobal,
	"type":        TokenTypeKw,

	"if":        TokenIf,
	"else":      TokenElse,
	"for":       TokenFor,
	"while":     TokenWhile,
	"do":        TokenDo,
	"break":     TokenBreak,
	"continue":  TokenContinue,
	"return":    TokenReturn,
	"returns":   TokenReturns,
	"try":       TokenTry,
	"catch":     TokenCatch,
	"emit":      TokenEmit,
	"revert":    TokenRevert,
	"assembly":  TokenAssembly,
	"unchecked": TokenUnchecked,
	"delete":    TokenDelete,
	"new":       TokenNew,

	"public":    TokenPublic,
	"private":   TokenPrivate,
	"internal":  TokenInternal,
	"external":  TokenExternal,
	"pure":      TokenPure,
	"view":      TokenView,
	"payable":   TokenPayable,
	"constant":  TokenConstant,
	"immutable": TokenImmutable,
	"transient": TokenTransient,
	"virtual":   TokenVirtual,
	"override":  TokenOverride,
	"anonymous": TokenAnonymous,
	"indexed":   TokenIndexed,

	"memory":   TokenMemory,
	"storage":  TokenStorage,
	"calldata": TokenCalldata,

	"address": TokenAddress,
	"bool":    TokenBool,
	"string":  TokenStringType,
	"bytes":   TokenBytes,
	"byte":    TokenByte,
	"int":     TokenInt,
	"uint":    TokenUint,
	"fixed":   TokenFixed,
	"ufixed":  TokenUfixed,

	"true":    TokenTrue,
	"false":   TokenFalse,
	"hex":     TokenHex,
	"unicode": TokenUnicode,
	"wei":     TokenWei,
	"gwei":    TokenGwei,
	"ether":   TokenEther,
	"seconds": TokenSeconds,
	"minutes": TokenMinutes,
	"hours":   TokenHours,
	"days":    TokenDays,
	"weeks":   TokenWeeks,
	"years":   TokenYears,

	"let":     TokenLet,
	"leave":   TokenLeave,
	"switch":  TokenSwitch,
	"case":    TokenCase,
	"default": TokenDefault,
}

// reservedWords are claimed by the language but carry no grammar. They
// all lex to TokenReserved with the spelling in the symbol.
var reservedWords = map[string]bool{
	"after": true, "alias": true, "apply": true, "auto": true,
	"copyof": true, "define": true, "final": true, "implements": true,
	"in": true, "inline": true, "macro": true, "match": true,
	"mutable": true, "null": true, "of": true, "partial": true,
	"promise": true, "reference": true, "relocatable": true,
	"sealed": true, "sizeof": true, "static": true, "supports": true,
	"typedef": true, "typeof": true, "var": true,
}

// LookupKeyword classifies an identifier spelling. Sized elementary
// types (uint256, bytes32, fixed128x18, ...) map to their base type's
// token when the size suffix is one the language defines; anything else
// stays an identifier.
func LookupKeyword(name string) TokenType {
	if tt, ok := keywords[name]; ok {
		return tt
	}
	if reservedWords[name] {
		return TokenReserved
	}
	if tt, ok := sizedTypeKeyword(name); ok {
		return tt
	}
	return TokenIdentifier
}

// sizedTypeKeyword matches uintN/intN (N in 8..256, multiple of 8),
// bytesN (N in 1..32) and fixedMxN/ufixedMxN (M in 8..256 multiple of
// 8, N in 0..80).
func sizedTypeKeyword(name string) (TokenType, bool) {
	switch {
	case len(name) > 4 && name[:4] == "uint":
		if validIntSize(name[4:]) {
			return TokenUint, true
		}
	case len(name) > 3 && name[:3] == "int":
		if validIntSize(name[3:]) {
			return TokenInt, true
		}
	case len(name) > 5 && name[:5] == "bytes":
		if n, ok := atoiStrict(name[5:]); ok && n >= 1 && n <= 32 {
			return TokenBytes, true
		}
	case len(name) > 6 && name[:6] == "ufixed":
		if validFixedSize(name[6:]) {
			return TokenUfixed, true
		}
	case len(name) > 5 && name[:5] == "fixed":
		if validFixedSize(name[5:]) {
			return TokenFixed, true
		}
	}
	return TokenIdentifier, false
}

func validIntSize(s string) bool {
	n, ok := atoiStrict(s)
	return ok && n >= 8 && n <= 256 && n%8 == 0
}

func validFixedSize(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == 'x' {
			m, ok1 := atoiStrict(s[:i])
			n, ok2 := atoiStrict(s[i+1:])
			return ok1 && ok2 && m >= 8 && m <= 256 && m%8 == 0 && n <= 80
		}
	}
	return false
}

// atoiStrict parses a decimal with no sign, no leading zero and at
// most three digits, which covers every type size the grammar allows.
func atoiStrict(s string) (int, bool) {
	if len(s) == 0 || len(s) > 3 || (s[0] == '0' && len(s) > 1) {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}

// KeywordStrings returns every keyword spelling, for pre-interning.
func KeywordStrings() []string {
	out := make([]string, 0, len(keywords)+len(reservedWords))
	for s := range keywords {
		out = append(out, s)
	}
	for s := range reservedWords {
		out = append(out, s)
	}
	return out
}
