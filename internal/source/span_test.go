package source

import "testing"

func TestNewSpanSwapsBounds(t *testing.T) {
	sp := NewSpan(10, 4)
	if sp.Lo() != 4 || sp.Hi() != 10 {
		t.Fatalf("NewSpan(10, 4) = [%d, %d), expected [4, 10)", sp.Lo(), sp.Hi())
	}
}

func TestSpanCombinators(t *testing.T) {
	a := NewSpan(10, 20)
	b := NewSpan(30, 40)

	tests := []struct {
		name string
		got  Span
		lo   BytePos
		hi   BytePos
	}{
		{"To", a.To(b), 10, 40},
		{"To reversed", b.To(a), 10, 40},
		{"Between", a.Between(b), 20, 30},
		{"Until", a.Until(b), 10, 30},
		{"WithLo", a.WithLo(5), 5, 20},
		{"WithHi", a.WithHi(25), 10, 25},
		{"ShrinkToLo", a.ShrinkToLo(), 10, 10},
		{"ShrinkToHi", a.ShrinkToHi(), 20, 20},
	}

	for i, tt := range tests {
		if tt.got.Lo() != tt.lo || tt.got.Hi() != tt.hi {
			t.Errorf("tests[%d] - %s = [%d, %d), expected [%d, %d)",
				i, tt.name, tt.got.Lo(), tt.got.Hi(), tt.lo, tt.hi)
		}
	}
}

func TestSpanPredicates(t *testing.T) {
	a := NewSpan(10, 20)

	if !a.Contains(NewSpan(12, 18)) {
		t.Errorf("expected [10,20) to contain [12,18)")
	}
	if a.Contains(NewSpan(12, 22)) {
		t.Errorf("expected [10,20) not to contain [12,22)")
	}
	if !a.ContainsPos(10) || a.ContainsPos(20) {
		t.Errorf("ContainsPos must include lo and exclude hi")
	}
	if !a.Overlaps(NewSpan(19, 25)) {
		t.Errorf("expected [10,20) to overlap [19,25)")
	}
	if a.Overlaps(NewSpan(20, 25)) {
		t.Errorf("expected [10,20) not to overlap [20,25)")
	}
	if !DummySpan.IsDummy() || a.IsDummy() {
		t.Errorf("dummy detection broken")
	}
}

func TestJoinSpans(t *testing.T) {
	got := JoinSpans([]Span{DummySpan, NewSpan(30, 35), NewSpan(5, 12), DummySpan})
	if got.Lo() != 5 || got.Hi() != 35 {
		t.Fatalf("JoinSpans = [%d, %d), expected [5, 35)", got.Lo(), got.Hi())
	}
	if !JoinSpans(nil).IsDummy() {
		t.Fatalf("JoinSpans(nil) must be dummy")
	}
}
