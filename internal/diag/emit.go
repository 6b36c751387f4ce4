package diag

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/solyn-lang/solyn/internal/source"
)

// Emitter renders collected diagnostics for a consumer. Emitters run
// after parsing; they are never called from the parse path.
type Emitter interface {
	Emit(d *Diagnostic) error
}

// HumanEmitter renders diagnostics with source snippets and caret
// underlines, one block per diagnostic:
//
//	error[2001]: expected ';', found '}'
//	  --> token.sol:4:12
//	   |
//	 4 |     uint x
//	   |           ^ expected ';'
type HumanEmitter struct {
	Out   io.Writer
	Map   *source.SourceMap
	Color bool
}

// NewHumanEmitter returns an emitter writing annotated blocks to out,
// resolving spans through sm.
func NewHumanEmitter(out io.Writer, sm *source.SourceMap) *HumanEmitter {
	return &HumanEmitter{Out: out, Map: sm}
}

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiRed    = "\x1b[31;1m"
	ansiYellow = "\x1b[33;1m"
	ansiBlue   = "\x1b[34;1m"
	ansiCyan   = "\x1b[36;1m"
)

func (e *HumanEmitter) levelColor(l Level) string {
	if !e.Color {
		return ""
	}
	switch {
	case l.IsError():
		return ansiRed
	case l == Warning:
		return ansiYellow
	case l == Help:
		return ansiCyan
	default:
		return ansiBlue
	}
}

func (e *HumanEmitter) reset() string {
	if !e.Color {
		return ""
	}
	return ansiReset
}

// Emit writes one annotated block.
func (e *HumanEmitter) Emit(d *Diagnostic) error {
	var b strings.Builder

	b.WriteString(e.levelColor(d.Level))
	b.WriteString(d.Level.String())
	if d.Code != CodeNone {
		fmt.Fprintf(&b, "[%04d]", d.Code)
	}
	b.WriteString(e.reset())
	if e.Color {
		b.WriteString(ansiBold)
	}
	b.WriteString(": ")
	b.WriteString(d.Message)
	b.WriteString(e.reset())
	b.WriteByte('\n')

	if !d.Primary.IsDummy() && e.Map != nil {
		pos := e.Map.PositionOf(d.Primary.Lo())
		fmt.Fprintf(&b, "  --> %s\n", pos)
		e.writeSnippet(&b, d.Primary, "^", "")
		for _, label := range d.Labels {
			e.writeSnippet(&b, label.Span, "-", label.Message)
		}
	}

	for _, note := range d.Notes {
		fmt.Fprintf(&b, "   = note: %s\n", note)
	}
	if d.Help != "" {
		fmt.Fprintf(&b, "   = help: %s\n", d.Help)
	}

	_, err := io.WriteString(e.Out, b.String())
	return err
}

// writeSnippet prints the first source line of the span with an
// underline of the given marker character. Spans reaching past the
// line are clamped to its end.
func (e *HumanEmitter) writeSnippet(b *strings.Builder, sp source.Span, marker, label string) {
	f := e.Map.FileOf(sp.Lo())
	if f == nil {
		return
	}
	line, col := f.LineCol(sp.Lo())
	text := f.LineText(line)

	width := int(sp.Len())
	if width < 1 {
		width = 1
	}
	if max := len(text) - (col - 1); width > max {
		width = max
		if width < 1 {
			width = 1
		}
	}

	fmt.Fprintf(b, "   |\n%4d | %s\n   | %s%s", line, text,
		strings.Repeat(" ", col-1), strings.Repeat(marker, width))
	if label != "" {
		b.WriteByte(' ')
		b.WriteString(label)
	}
	b.WriteByte('\n')
}

// EmitAll renders every diagnostic in order and returns the first
// write error.
func EmitAll(e Emitter, diags []*Diagnostic) error {
	for _, d := range diags {
		if err := e.Emit(d); err != nil {
			return err
		}
	}
	return nil
}

// JSONEmitter writes one JSON object per diagnostic, newline-delimited,
// for tooling consumers.
type JSONEmitter struct {
	Out io.Writer
	Map *source.SourceMap

	enc *json.Encoder
}

// NewJSONEmitter returns an emitter writing NDJSON records to out.
func NewJSONEmitter(out io.Writer, sm *source.SourceMap) *JSONEmitter {
	return &JSONEmitter{Out: out, Map: sm, enc: json.NewEncoder(out)}
}

type jsonLabel struct {
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
	Length  uint32 `json:"length,omitempty"`
	Message string `json:"message,omitempty"`
}

type jsonDiagnostic struct {
	Level   string      `json:"level"`
	Code    uint16      `json:"code,omitempty"`
	Message string      `json:"message"`
	File    string      `json:"file,omitempty"`
	Line    int         `json:"line,omitempty"`
	Column  int         `json:"column,omitempty"`
	Length  uint32      `json:"length,omitempty"`
	Labels  []jsonLabel `json:"labels,omitempty"`
	Notes   []string    `json:"notes,omitempty"`
	Help    string      `json:"help,omitempty"`
}

func (e *JSONEmitter) resolve(sp source.Span) (string, int, int) {
	if sp.IsDummy() || e.Map == nil {
		return "", 0, 0
	}
	pos := e.Map.PositionOf(sp.Lo())
	return pos.Filename, pos.Line, pos.Column
}

// Emit writes one JSON record.
func (e *JSONEmitter) Emit(d *Diagnostic) error {
	rec := jsonDiagnostic{
		Level:   d.Level.String(),
		Code:    uint16(d.Code),
		Message: d.Message,
		Notes:   d.Notes,
		Help:    d.Help,
	}
	rec.File, rec.Line, rec.Column = e.resolve(d.Primary)
	rec.Length = d.Primary.Len()
	for _, label := range d.Labels {
		jl := jsonLabel{Message: label.Message, Length: label.Span.Len()}
		jl.File, jl.Line, jl.Column = e.resolve(label.Span)
		rec.Labels = append(rec.Labels, jl)
	}
	return e.enc.Encode(rec)
}
