package diag

import (
	"sort"
	"sync"
)

// Sink collects diagnostics from every parser of a session. Emission is
// append-only and safe for concurrent use; parse workers for different
// files share one Sink. Collected diagnostics are never mutated.
type Sink struct {
	mu       sync.Mutex
	diags    []*Diagnostic
	errors   int
	warnings int

	// Limit is the error budget. 0 means unlimited. The limit is
	// advisory: the sink keeps accepting, and parsers consult
	// LimitReached between top-level items so an item is never
	// half-reported.
	Limit int
}

// NewSink returns an empty sink with the given error limit (0 for
// unlimited).
func NewSink(limit int) *Sink {
	return &Sink{Limit: limit}
}

// Emit records a diagnostic.
func (s *Sink) Emit(d *Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diags = append(s.diags, d)
	switch {
	case d.Level.IsError():
		s.errors++
	case d.Level == Warning:
		s.warnings++
	}
}

// ErrorCount returns the number of error-or-worse diagnostics emitted.
func (s *Sink) ErrorCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errors
}

// WarningCount returns the number of warnings emitted.
func (s *Sink) WarningCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.warnings
}

// HasErrors reports whether any error-or-worse diagnostic was emitted.
func (s *Sink) HasErrors() bool { return s.ErrorCount() > 0 }

// LimitReached reports whether the error budget is spent.
func (s *Sink) LimitReached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Limit > 0 && s.errors >= s.Limit
}

// Diagnostics returns a snapshot in emission order.
func (s *Sink) Diagnostics() []*Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Diagnostic, len(s.diags))
	copy(out, s.diags)
	return out
}

// Sorted returns a snapshot ordered by primary span start, then by
// emission order. Parallel parses emit in nondeterministic order; this
// is the order reports are printed in.
func (s *Sink) Sorted() []*Diagnostic {
	out := s.Diagnostics()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Primary.Lo() < out[j].Primary.Lo()
	})
	return out
}
