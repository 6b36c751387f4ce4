package source

import (
	"fmt"
	"sort"
	"sync"
)

// Position is a resolved human-readable location: 1-based line and
// column within a named file. Columns count bytes, not display cells.
type Position struct {
	Filename string
	Line     int
	Column   int
}

// String returns "file:line:column", the form diagnostics print.
func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// IsValid reports whether the position names a real location.
func (p Position) IsValid() bool { return p.Line > 0 && p.Column > 0 }

// SourceFile is a single registered source file. Content is immutable
// after registration; the line index is built on first use.
type SourceFile struct {
	Name     string
	Content  string
	StartPos BytePos // global offset of Content[0]

	lineOnce sync.Once
	lines    []BytePos // global offsets of line starts, lines[0] == StartPos
}

// EndPos returns the global offset one past the last byte of the file.
func (f *SourceFile) EndPos() BytePos {
	return f.StartPos + BytePos(len(f.Content))
}

// Span returns the span covering the whole file.
func (f *SourceFile) Span() Span {
	return Span{lo: f.StartPos, hi: f.EndPos()}
}

func (f *SourceFile) buildLineIndex() {
	f.lines = append(f.lines, f.StartPos)
	for i := 0; i < len(f.Content); i++ {
		if f.Content[i] == '\n' {
			f.lines = append(f.lines, f.StartPos+BytePos(i)+1)
		}
	}
}

// LineCol converts a global offset inside the file to a 1-based line
// and byte column.
func (f *SourceFile) LineCol(pos BytePos) (line, col int) {
	f.lineOnce.Do(f.buildLineIndex)
	// Last line whose start is <= pos.
	i := sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > pos }) - 1
	if i < 0 {
		i = 0
	}
	return i + 1, int(pos-f.lines[i]) + 1
}

// LineText returns the text of the 1-based line without its newline.
func (f *SourceFile) LineText(line int) string {
	f.lineOnce.Do(f.buildLineIndex)
	if line < 1 || line > len(f.lines) {
		return ""
	}
	start := int(f.lines[line-1] - f.StartPos)
	end := len(f.Content)
	if line < len(f.lines) {
		end = int(f.lines[line]-f.StartPos) - 1
	}
	if end > 0 && end <= len(f.Content) && end > start && f.Content[end-1] == '\r' {
		end--
	}
	return f.Content[start:end]
}

// SourceMap owns every source file of a session and hands out the
// disjoint global offset ranges spans index into. Registration is safe
// for concurrent use; parse workers add their files as they start.
type SourceMap struct {
	mu     sync.RWMutex
	files  []*SourceFile
	byName map[string]*SourceFile
	next   BytePos
}

// NewSourceMap returns an empty source map. The first registered byte
// gets offset 1, reserving 0 so the dummy span never points at real
// source.
func NewSourceMap() *SourceMap {
	return &SourceMap{byName: make(map[string]*SourceFile), next: 1}
}

// AddFile registers content under name and returns the file. Adding the
// same name twice returns the existing file unchanged.
func (sm *SourceMap) AddFile(name, content string) *SourceFile {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if f, ok := sm.byName[name]; ok {
		return f
	}
	f := &SourceFile{Name: name, Content: content, StartPos: sm.next}
	// Leave a one-byte gap so the EOF position of this file is not the
	// first position of the next.
	sm.next = f.EndPos() + 1
	sm.files = append(sm.files, f)
	sm.byName[name] = f
	return f
}

// FileByName returns the registered file or nil.
func (sm *SourceMap) FileByName(name string) *SourceFile {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.byName[name]
}

// Files returns the registered files in registration order.
func (sm *SourceMap) Files() []*SourceFile {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	out := make([]*SourceFile, len(sm.files))
	copy(out, sm.files)
	return out
}

// FileOf returns the file containing the global offset, or nil if the
// offset is outside every registered file.
func (sm *SourceMap) FileOf(pos BytePos) *SourceFile {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	i := sort.Search(len(sm.files), func(i int) bool { return sm.files[i].StartPos > pos }) - 1
	if i < 0 {
		return nil
	}
	f := sm.files[i]
	if pos > f.EndPos() {
		return nil
	}
	return f
}

// PositionOf resolves a global offset to a file/line/column position.
func (sm *SourceMap) PositionOf(pos BytePos) Position {
	f := sm.FileOf(pos)
	if f == nil {
		return Position{}
	}
	line, col := f.LineCol(pos)
	return Position{Filename: f.Name, Line: line, Column: col}
}

// SnippetOf returns the source text a span covers, or "" if the span is
// dummy or crosses file boundaries.
func (sm *SourceMap) SnippetOf(sp Span) string {
	if sp.IsDummy() {
		return ""
	}
	f := sm.FileOf(sp.Lo())
	if f == nil || sp.Hi() > f.EndPos() {
		return ""
	}
	return f.Content[sp.Lo()-f.StartPos : sp.Hi()-f.StartPos]
}

// SpanString formats a span as "file:line:column" of its start.
func (sm *SourceMap) SpanString(sp Span) string {
	if sp.IsDummy() {
		return "<unknown>"
	}
	return sm.PositionOf(sp.Lo()).String()
}
