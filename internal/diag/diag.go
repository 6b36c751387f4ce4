// Package diag defines the diagnostic data model of the Solyn front
// end: structured error and warning records with spans, secondary
// labels, notes, and stable numeric codes. Diagnostics are pure data;
// rendering lives in the emitters and stays out of the parse path.
package diag

import "github.com/solyn-lang/solyn/internal/source"

// Level is the severity of a diagnostic.
type Level int

const (
	// Bug reports an internal invariant violation. Presence of a Bug
	// diagnostic means the front end itself is broken.
	Bug Level = iota
	// Fatal aborts processing of the current file immediately, e.g. on
	// pathological nesting depth.
	Fatal
	Error
	Warning
	Note
	Help
)

func (l Level) String() string {
	switch l {
	case Bug:
		return "internal error"
	case Fatal:
		return "fatal error"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	case Help:
		return "help"
	default:
		return "unknown"
	}
}

// IsError reports whether the level counts against the error limit.
func (l Level) IsError() bool { return l <= Error }

// Code is a stable 4-digit diagnostic identifier. Codes are grouped by
// phase: 1xxx lexing, 2xxx parsing, 3xxx structural rules, 4xxx
// version/pragma checks, 9xxx internal.
type Code uint16

const (
	CodeNone Code = 0

	// Lexer.
	CodeInvalidChar         Code = 1001
	CodeUnterminatedString  Code = 1002
	CodeUnterminatedComment Code = 1003
	CodeEmptyIntLiteral     Code = 1004
	CodeEmptyExponent       Code = 1005
	CodeInvalidEscape       Code = 1006
	CodeInvalidStringChar   Code = 1007
	CodeInvalidHexString    Code = 1008
	CodeInvalidNumber       Code = 1009

	// Parser.
	CodeExpectedToken     Code = 2001
	CodeUnexpectedToken   Code = 2002
	CodeExpectedItem      Code = 2003
	CodeExpectedStatement Code = 2004
	CodeExpectedExpr      Code = 2005
	CodeExpectedType      Code = 2006
	CodeInvalidModifier   Code = 2007
	CodeUnexpectedTrailer Code = 2008
	CodeYulSyntax         Code = 2101
	CodeYulInvalidLiteral Code = 2102
	CodeYulSolidityOnly   Code = 2103

	// Structural.
	CodeVarDeclInLoopBody Code = 3001
	CodeNestingTooDeep    Code = 3002
	CodeUnaryPlus         Code = 3003
	CodeAddressChecksum   Code = 3004

	// Pragma / versioning.
	CodePragmaSyntax     Code = 4001
	CodeCompilerMismatch Code = 4002

	// Session.
	CodeTooManyErrors Code = 9001
)

// Label attaches a message to a secondary span, pointing at related
// source such as the opening brace of an unclosed block.
type Label struct {
	Span    source.Span
	Message string
}

// Diagnostic is one reported finding. Primary is the span the main
// caret points at; Labels carry secondary underlines.
type Diagnostic struct {
	Level   Level
	Code    Code
	Message string
	Primary source.Span
	Labels  []Label
	Notes   []string
	Help    string
}

// New returns a diagnostic with the given severity, code, message and
// primary span. Secondary information is attached with the With
// methods, which chain.
func New(level Level, code Code, span source.Span, message string) *Diagnostic {
	return &Diagnostic{Level: level, Code: code, Message: message, Primary: span}
}

// WithLabel adds a secondary labeled span.
func (d *Diagnostic) WithLabel(span source.Span, message string) *Diagnostic {
	d.Labels = append(d.Labels, Label{Span: span, Message: message})
	return d
}

// WithNote appends a free-standing note line.
func (d *Diagnostic) WithNote(note string) *Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}

// WithHelp sets the help line suggesting how to fix the problem.
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}
