// Package lexer turns Solidity source text into a token stream. It is
// split into a raw cursor that cuts the input into sized chunks and a
// token assembler that skips trivia, interns text, validates literal
// bodies and reports malformed input. The lexer never stops on an
// error: every byte of input becomes either a token or trivia, so the
// parser always sees a terminated stream.
package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/solyn-lang/solyn/internal/diag"
	"github.com/solyn-lang/solyn/internal/intern"
	"github.com/solyn-lang/solyn/internal/source"
)

// Lexer assembles tokens for one source file.
type Lexer struct {
	file     *source.SourceFile
	interner *intern.Interner
	sink     *diag.Sink
	cursor   *Cursor
}

// New returns a lexer over file. Diagnostics go to sink; identifier and
// literal text is interned into interner.
func New(file *source.SourceFile, interner *intern.Interner, sink *diag.Sink) *Lexer {
	return &Lexer{
		file:     file,
		interner: interner,
		sink:     sink,
		cursor:   NewCursor(file.Content),
	}
}

// Tokenize scans the whole file. The returned slice always ends with
// an EOF token whose span is the empty span at end of file.
func (l *Lexer) Tokenize() []Token {
	// Most source sits around 8 bytes per token.
	toks := make([]Token, 0, len(l.file.Content)/8+1)
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Type == TokenEOF {
			return toks
		}
	}
}

// Next returns the next token, skipping whitespace and non-doc
// comments. At end of input it returns EOF forever.
func (l *Lexer) Next() Token {
	for {
		start := l.cursor.Pos()
		raw := l.cursor.Next()
		end := l.cursor.Pos()
		span := l.spanOf(start, end)
		text := l.file.Content[start:end]

		switch raw.Kind {
		case RawEOF:
			return Token{Type: TokenEOF, Span: source.PointSpan(span.Hi())}

		case RawWhitespace:
			continue

		case RawLineComment:
			if raw.Doc {
				return Token{Type: TokenDocLineComment, Span: span, Symbol: l.interner.Intern(text)}
			}

		case RawBlockComment:
			if !raw.Terminated {
				l.sink.Emit(diag.New(diag.Error, diag.CodeUnterminatedComment, span,
					"unterminated block comment"))
			}
			if raw.Doc {
				return Token{Type: TokenDocBlockComment, Span: span, Symbol: l.interner.Intern(text)}
			}

		case RawIdent:
			return Token{Type: LookupKeyword(text), Span: span, Symbol: l.interner.Intern(text)}

		case RawInt:
			l.checkNumber(raw, span, text)
			return Token{Type: TokenInteger, Span: span, Symbol: l.interner.Intern(text)}

		case RawRational:
			l.checkNumber(raw, span, text)
			return Token{Type: TokenRational, Span: span, Symbol: l.interner.Intern(text)}

		case RawStr:
			return l.stringToken(TokenString, raw, span, text, 1)

		case RawUnicodeStr:
			return l.stringToken(TokenUnicodeString, raw, span, text, len("unicode")+1)

		case RawHexStr:
			return l.stringToken(TokenHexString, raw, span, text, len("hex")+1)

		case RawPunct:
			tt, ok := operators[text]
			if !ok {
				// Maximal munch only produces spellings in the table.
				l.sink.Emit(diag.New(diag.Bug, diag.CodeNone, span,
					fmt.Sprintf("unmapped operator %q", text)))
				tt = TokenError
			}
			return Token{Type: tt, Span: span}

		case RawUnknown:
			r, _ := utf8.DecodeRuneInString(text)
			l.sink.Emit(diag.New(diag.Error, diag.CodeInvalidChar, span,
				fmt.Sprintf("invalid character %q in source", r)))
			return Token{Type: TokenError, Span: span, Symbol: l.interner.Intern(text)}
		}
	}
}

func (l *Lexer) spanOf(start, end int) source.Span {
	return source.NewSpan(l.file.StartPos+source.BytePos(start), l.file.StartPos+source.BytePos(end))
}

// stringToken validates a string literal body and interns it. The
// symbol holds the raw body between the quotes; decoding happens again
// at materialization.
func (l *Lexer) stringToken(tt TokenType, raw RawToken, span source.Span, text string, bodyStart int) Token {
	bodyEnd := len(text)
	if raw.Terminated {
		bodyEnd--
	} else {
		l.sink.Emit(diag.New(diag.Error, diag.CodeUnterminatedString, span,
			"unterminated string literal"))
	}
	body := text[bodyStart:bodyEnd]

	var mode StrMode
	switch tt {
	case TokenHexString:
		mode = ModeHexStr
	case TokenUnicodeString:
		mode = ModeUnicodeStr
	default:
		mode = ModeStr
	}

	Unescape(body, mode, func(lo, hi int, err EscapeError) {
		errSpan := source.NewSpan(
			span.Lo()+source.BytePos(bodyStart+lo),
			span.Lo()+source.BytePos(bodyStart+hi),
		)
		l.sink.Emit(diag.New(diag.Error, escapeCode(err), errSpan, err.String()))
	})

	return Token{Type: tt, Span: span, Symbol: l.interner.Intern(body)}
}

func escapeCode(err EscapeError) diag.Code {
	switch err {
	case EscHexPrefix, EscHexOddDigits, EscHexNotDigit, EscHexBadUnderscore:
		return diag.CodeInvalidHexString
	case EscStrNewline, EscBareCarriageReturn, EscStrNonAscii:
		return diag.CodeInvalidStringChar
	default:
		return diag.CodeInvalidEscape
	}
}

// checkNumber reports malformed number literals: missing digits after a
// base prefix, unsupported bases, empty exponents and misplaced
// separator underscores. The token is still produced with its raw text
// so the parser can keep going.
func (l *Lexer) checkNumber(raw RawToken, span source.Span, text string) {
	if raw.EmptyDigits {
		l.sink.Emit(diag.New(diag.Error, diag.CodeEmptyIntLiteral, span,
			"number literal has no digits"))
		return
	}
	switch raw.Base {
	case 2:
		l.sink.Emit(diag.New(diag.Error, diag.CodeInvalidNumber, span,
			"binary literals are not supported"))
		return
	case 8:
		l.sink.Emit(diag.New(diag.Error, diag.CodeInvalidNumber, span,
			"octal literals are not supported"))
		return
	}
	if raw.EmptyExp {
		l.sink.Emit(diag.New(diag.Error, diag.CodeEmptyExponent, span,
			"exponent has no digits"))
		return
	}
	if i, ok := badSeparator(text, raw.Base); ok {
		l.sink.Emit(diag.New(diag.Error, diag.CodeInvalidNumber,
			source.NewSpan(span.Lo()+source.BytePos(i), span.Lo()+source.BytePos(i)+1),
			"underscores must be surrounded by digits"))
	}
}

// badSeparator returns the index of the first underscore that is not
// strictly between two digits of the literal's base.
func badSeparator(text string, base int) (int, bool) {
	digit := isDigit
	if base == 16 {
		digit = isHexDigit
	}
	for i := 0; i < len(text); i++ {
		if text[i] != '_' {
			continue
		}
		if i == 0 || i+1 == len(text) || !digit(text[i-1]) || !digit(text[i+1]) {
			return i, true
		}
	}
	return 0, false
}

// operators maps punctuation spellings to token types. The cursor's
// maximal munch guarantees the longest spelling is matched.
var operators = map[string]TokenType{
	"=":   TokenAssign,
	"+=":  TokenPlusAssign,
	"-=":  TokenMinusAssign,
	"*=":  TokenMulAssign,
	"/=":  TokenDivAssign,
	"%=":  TokenModAssign,
	"&=":  TokenBitAndAssign,
	"|=":  TokenBitOrAssign,
	"^=":  TokenBitXorAssign,
	"<<=": TokenShlAssign,
	">>=": TokenShrAssign,
	"+":   TokenPlus,
	"-":   TokenMinus,
	"*":   TokenMul,
	"/":   TokenDiv,
	"%":   TokenMod,
	"**":  TokenPower,
	"++":  TokenInc,
	"--":  TokenDec,
	"==":  TokenEq,
	"!=":  TokenNe,
	"<":   TokenLt,
	"<=":  TokenLe,
	">":   TokenGt,
	">=":  TokenGe,
	"&&":  TokenAnd,
	"||":  TokenOr,
	"!":   TokenNot,
	"&":   TokenBitAnd,
	"|":   TokenBitOr,
	"^":   TokenBitXor,
	"~":   TokenBitNot,
	"<<":  TokenShl,
	">>":  TokenShr,
	"?":   TokenQuestion,
	":=":  TokenYulAssign,
	"(":   TokenLParen,
	")":   TokenRParen,
	"{":   TokenLBrace,
	"}":   TokenRBrace,
	"[":   TokenLBracket,
	"]":   TokenRBracket,
	";":   TokenSemicolon,
	",":   TokenComma,
	".":   TokenDot,
	":":   TokenColon,
	"->":  TokenArrow,
	"=>":  TokenFatArrow,
}
