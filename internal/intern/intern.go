// Package intern provides a session-scoped string interner. Every
// identifier and literal the lexer produces is reduced to a Symbol, a
// 32-bit handle that makes later comparisons integer equality and keeps
// tokens and AST nodes small.
package intern

import "sync"

// Symbol is an opaque handle for an interned string. Two symbols from
// the same Interner are equal exactly when their strings are equal.
// The zero Symbol is the empty string.
type Symbol uint32

// EmptySymbol is the handle of "".
const EmptySymbol Symbol = 0

const shardCount = 32 // power of two, see shardFor

// Interner deduplicates strings into Symbols. It is safe for
// concurrent use: parse workers of one session share a single Interner
// so symbols from different files compare directly.
type Interner struct {
	shards [shardCount]shard
}

type shard struct {
	mu      sync.RWMutex
	symbols map[string]Symbol
	strings []string
}

// NewInterner returns an Interner with the given strings pre-interned.
// Pre-interning the keyword and builtin tables up front keeps the hot
// path on the read lock.
func NewInterner(prelude ...string) *Interner {
	in := &Interner{}
	for i := range in.shards {
		in.shards[i].symbols = make(map[string]Symbol)
	}
	for _, s := range prelude {
		in.Intern(s)
	}
	return in
}

// fnv-1a; inlined so interning does not allocate a hasher per call.
func shardFor(s string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h & (shardCount - 1)
}

// Symbols pack the shard in the low bits and the 1-based slot in the
// rest, so resolution needs no cross-shard state.
func packSymbol(shardID, slot uint32) Symbol {
	return Symbol((slot+1)<<5 | shardID)
}

// Intern returns the symbol for s, creating it on first sight.
func (in *Interner) Intern(s string) Symbol {
	if s == "" {
		return EmptySymbol
	}
	id := shardFor(s)
	sh := &in.shards[id]

	sh.mu.RLock()
	sym, ok := sh.symbols[s]
	sh.mu.RUnlock()
	if ok {
		return sym
	}

	sh.mu.Lock()
	defer sh.mu.Unlock()
	if sym, ok := sh.symbols[s]; ok {
		return sym
	}
	// Copy keeps the interner from pinning a large source buffer (or a
	// memory mapping) through a substring.
	owned := string(append([]byte(nil), s...))
	sym = packSymbol(id, uint32(len(sh.strings)))
	sh.symbols[owned] = sym
	sh.strings = append(sh.strings, owned)
	return sym
}

// Lookup returns the symbol for s without creating it. ok is false if s
// was never interned.
func (in *Interner) Lookup(s string) (Symbol, bool) {
	if s == "" {
		return EmptySymbol, true
	}
	sh := &in.shards[shardFor(s)]
	sh.mu.RLock()
	sym, ok := sh.symbols[s]
	sh.mu.RUnlock()
	return sym, ok
}

// Resolve returns the string a symbol stands for. Resolving a symbol
// that this Interner never produced returns "".
func (in *Interner) Resolve(sym Symbol) string {
	if sym == EmptySymbol {
		return ""
	}
	sh := &in.shards[uint32(sym)&(shardCount-1)]
	slot := uint32(sym)>>5 - 1
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	if slot >= uint32(len(sh.strings)) {
		return ""
	}
	return sh.strings[slot]
}

// Len returns the number of distinct strings interned so far, not
// counting the empty string.
func (in *Interner) Len() int {
	n := 0
	for i := range in.shards {
		sh := &in.shards[i]
		sh.mu.RLock()
		n += len(sh.strings)
		sh.mu.RUnlock()
	}
	return n
}
