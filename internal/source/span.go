// Package source provides byte-offset based source position tracking
// for the Solyn compiler front end. Spans are two 32-bit offsets into a
// session-wide address space managed by SourceMap, so every AST node can
// carry its location in eight bytes.
package source

// BytePos is an absolute byte offset into the session's source map.
// Offsets are global: every registered file occupies a disjoint range,
// so a BytePos alone identifies both the file and the byte within it.
type BytePos uint32

// Span is a half-open byte range [Lo, Hi) in the session's source map.
// The zero value is the dummy span, used for synthesized nodes that have
// no corresponding source text.
type Span struct {
	lo BytePos
	hi BytePos
}

// DummySpan is the span of synthesized nodes. It compares equal to the
// zero Span value.
var DummySpan = Span{}

// NewSpan returns the span [lo, hi). If lo > hi the bounds are swapped,
// so a span constructed from misordered recovery positions stays valid.
func NewSpan(lo, hi BytePos) Span {
	if lo > hi {
		lo, hi = hi, lo
	}
	return Span{lo: lo, hi: hi}
}

// PointSpan returns the empty span [pos, pos).
func PointSpan(pos BytePos) Span {
	return Span{lo: pos, hi: pos}
}

// Lo returns the inclusive start offset.
func (s Span) Lo() BytePos { return s.lo }

// Hi returns the exclusive end offset.
func (s Span) Hi() BytePos { return s.hi }

// Len returns the number of bytes the span covers.
func (s Span) Len() uint32 { return uint32(s.hi - s.lo) }

// IsDummy returns true for the dummy (zero) span.
func (s Span) IsDummy() bool { return s.lo == 0 && s.hi == 0 }

// IsEmpty returns true if the span covers no bytes.
func (s Span) IsEmpty() bool { return s.lo == s.hi }

// WithLo returns a copy of the span with the start replaced.
func (s Span) WithLo(lo BytePos) Span { return NewSpan(lo, s.hi) }

// WithHi returns a copy of the span with the end replaced.
func (s Span) WithHi(hi BytePos) Span { return NewSpan(s.lo, hi) }

// ShrinkToLo returns the empty span at the start of s.
func (s Span) ShrinkToLo() Span { return Span{lo: s.lo, hi: s.lo} }

// ShrinkToHi returns the empty span at the end of s.
func (s Span) ShrinkToHi() Span { return Span{lo: s.hi, hi: s.hi} }

// To returns the smallest span covering both s and end. This is the
// primary way parent node spans are built from child spans.
func (s Span) To(end Span) Span {
	lo := s.lo
	if end.lo < lo {
		lo = end.lo
	}
	hi := s.hi
	if end.hi > hi {
		hi = end.hi
	}
	return Span{lo: lo, hi: hi}
}

// Between returns the span of the gap separating s and end.
func (s Span) Between(end Span) Span { return NewSpan(s.hi, end.lo) }

// Until returns the span from the start of s to the start of end.
func (s Span) Until(end Span) Span { return NewSpan(s.lo, end.lo) }

// Contains returns true if s fully encloses other.
func (s Span) Contains(other Span) bool {
	return s.lo <= other.lo && other.hi <= s.hi
}

// ContainsPos returns true if the offset lies within the span.
func (s Span) ContainsPos(pos BytePos) bool {
	return s.lo <= pos && pos < s.hi
}

// Overlaps returns true if the two spans share at least one byte.
func (s Span) Overlaps(other Span) bool {
	return s.lo < other.hi && other.lo < s.hi
}

// JoinSpans returns the smallest span covering every non-dummy span in
// the slice, or the dummy span if there are none.
func JoinSpans(spans []Span) Span {
	out := DummySpan
	for _, sp := range spans {
		if sp.IsDummy() {
			continue
		}
		if out.IsDummy() {
			out = sp
		} else {
			out = out.To(sp)
		}
	}
	return out
}
