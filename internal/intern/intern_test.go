package intern

import (
	"fmt"
	"sync"
	"testing"
)

func TestInternRoundTrip(t *testing.T) {
	in := NewInterner()

	tests := []string{"balanceOf", "transfer", "x", "_", "$dollar", "uint256"}
	syms := make([]Symbol, len(tests))
	for i, s := range tests {
		syms[i] = in.Intern(s)
	}

	for i, s := range tests {
		if got := in.Intern(s); got != syms[i] {
			t.Errorf("tests[%d] - re-interning %q gave %d, expected %d", i, s, got, syms[i])
		}
		if got := in.Resolve(syms[i]); got != s {
			t.Errorf("tests[%d] - Resolve = %q, expected %q", i, got, s)
		}
	}

	if in.Len() != len(tests) {
		t.Fatalf("Len = %d, expected %d", in.Len(), len(tests))
	}
}

func TestInternEmptyString(t *testing.T) {
	in := NewInterner()
	if sym := in.Intern(""); sym != EmptySymbol {
		t.Fatalf("Intern(\"\") = %d, expected EmptySymbol", sym)
	}
	if got := in.Resolve(EmptySymbol); got != "" {
		t.Fatalf("Resolve(EmptySymbol) = %q, expected empty", got)
	}
}

func TestInternDistinctStringsDistinctSymbols(t *testing.T) {
	in := NewInterner()
	a := in.Intern("owner")
	b := in.Intern("Owner")
	if a == b {
		t.Fatalf("case-distinct strings interned to the same symbol %d", a)
	}
}

func TestLookupDoesNotCreate(t *testing.T) {
	in := NewInterner("known")
	if _, ok := in.Lookup("known"); !ok {
		t.Fatalf("Lookup missed a pre-interned string")
	}
	if _, ok := in.Lookup("unknown"); ok {
		t.Fatalf("Lookup created or found a never-interned string")
	}
	if in.Len() != 1 {
		t.Fatalf("Lookup must not intern; Len = %d", in.Len())
	}
}

func TestInternConcurrent(t *testing.T) {
	in := NewInterner()
	const workers = 8
	const words = 200

	var wg sync.WaitGroup
	results := make([][]Symbol, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			syms := make([]Symbol, words)
			for i := 0; i < words; i++ {
				syms[i] = in.Intern(fmt.Sprintf("ident%d", i))
			}
			results[w] = syms
		}(w)
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		for i := 0; i < words; i++ {
			if results[w][i] != results[0][i] {
				t.Fatalf("worker %d interned ident%d to %d, worker 0 got %d",
					w, i, results[w][i], results[0][i])
			}
		}
	}
	if in.Len() != words {
		t.Fatalf("Len = %d, expected %d", in.Len(), words)
	}
}
