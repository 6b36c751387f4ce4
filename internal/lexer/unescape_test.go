package lexer

import (
	"bytes"
	"testing"
)

type escErr struct {
	lo, hi int
	err    EscapeError
}

func collectErrs(body string, mode StrMode) ([]byte, []escErr) {
	var errs []escErr
	out := Unescape(body, mode, func(lo, hi int, err EscapeError) {
		errs = append(errs, escErr{lo, hi, err})
	})
	return out, errs
}

func TestUnescapeValid(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{``, ``},
		{`hello`, `hello`},
		{`a\nb`, "a\nb"},
		{`a\rb`, "a\rb"},
		{`a\tb`, "a\tb"},
		{`\'\"\\`, `'"\`},
		{`\x41\x62`, "Ab"},
		{`\x00`, "\x00"},
		{`\xff`, "\xff"},
		{`A`, "A"},
		{"ab\\\ncd", "abcd"},
		{"ab\\\n    cd", "abcd"},
		{"ab\\\n\t\tcd", "abcd"},
	}

	for i, tt := range tests {
		got, errs := collectErrs(tt.body, ModeStr)
		if len(errs) != 0 {
			t.Errorf("tests[%d] - %q reported %v, expected no errors", i, tt.body, errs)
			continue
		}
		if !bytes.Equal(got, []byte(tt.want)) {
			t.Errorf("tests[%d] - Unescape(%q) = %q, expected %q", i, tt.body, got, tt.want)
		}
	}
}

func TestUnescapeErrors(t *testing.T) {
	tests := []struct {
		body string
		err  EscapeError
		lo   int
		hi   int
	}{
		{`\`, EscLoneSlash, 0, 1},
		{`\q`, EscInvalidEscape, 0, 2},
		{`\x`, EscHexEscapeTooShort, 0, 2},
		{`\x1`, EscHexEscapeTooShort, 0, 3},
		{`\xzz`, EscInvalidHexEscape, 0, 3},
		{`\u`, EscUnicodeEscapeTooShort, 0, 2},
		{`\u12`, EscUnicodeEscapeTooShort, 0, 4},
		{`\u12g4`, EscInvalidUnicodeEscape, 0, 5},
		{`\ud800`, EscInvalidUnicodeEscape, 0, 6},
		{"a\nb", EscStrNewline, 1, 2},
		{"a\rb", EscBareCarriageReturn, 1, 2},
		{"café", EscStrNonAscii, 3, 5},
		{"a\\\n \n b", EscCannotSkipMultipleLines, 1, 6},
	}

	for i, tt := range tests {
		_, errs := collectErrs(tt.body, ModeStr)
		if len(errs) != 1 {
			t.Errorf("tests[%d] - %q reported %d errors, expected 1: %v", i, tt.body, len(errs), errs)
			continue
		}
		e := errs[0]
		if e.err != tt.err || e.lo != tt.lo || e.hi != tt.hi {
			t.Errorf("tests[%d] - %q reported %v at [%d,%d), expected %v at [%d,%d)",
				i, tt.body, e.err, e.lo, e.hi, tt.err, tt.lo, tt.hi)
		}
	}
}

func TestUnescapeContinuesPastErrors(t *testing.T) {
	got, errs := collectErrs(`a\qb\wc`, ModeStr)
	if len(errs) != 2 {
		t.Fatalf("reported %d errors, expected 2: %v", len(errs), errs)
	}
	if string(got) != "abc" {
		t.Fatalf("decoded %q, expected %q", got, "abc")
	}
}

func TestUnescapeUnicodeMode(t *testing.T) {
	got, errs := collectErrs("café \\u2603", ModeUnicodeStr)
	if len(errs) != 0 {
		t.Fatalf("unicode mode rejected non-ASCII: %v", errs)
	}
	if string(got) != "café ☃" {
		t.Fatalf("decoded %q, expected %q", got, "café ☃")
	}
}

func TestUnescapeHexStrings(t *testing.T) {
	valid := []struct {
		body string
		want []byte
	}{
		{``, []byte{}},
		{`00`, []byte{0x00}},
		{`DEADbeef`, []byte{0xde, 0xad, 0xbe, 0xef}},
		{`12_34`, []byte{0x12, 0x34}},
		{`1234_5678`, []byte{0x12, 0x34, 0x56, 0x78}},
	}
	for i, tt := range valid {
		got, errs := collectErrs(tt.body, ModeHexStr)
		if len(errs) != 0 {
			t.Errorf("valid[%d] - %q reported %v", i, tt.body, errs)
			continue
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("valid[%d] - decoded % x, expected % x", i, got, tt.want)
		}
	}

	invalid := []struct {
		body string
		err  EscapeError
	}{
		{`0x1234`, EscHexPrefix},
		{`0X12`, EscHexPrefix},
		{`123`, EscHexOddDigits},
		{`12g4`, EscHexNotDigit},
		{`_12`, EscHexBadUnderscore},
		{`12_`, EscHexBadUnderscore},
		{`1_234`, EscHexBadUnderscore},
		{`12__34`, EscHexBadUnderscore},
	}
	for i, tt := range invalid {
		_, errs := collectErrs(tt.body, ModeHexStr)
		if len(errs) == 0 {
			t.Errorf("invalid[%d] - %q reported no errors, expected %v", i, tt.body, tt.err)
			continue
		}
		if errs[0].err != tt.err {
			t.Errorf("invalid[%d] - %q reported %v first, expected %v", i, tt.body, errs[0].err, tt.err)
		}
	}
}

func TestUnescapeHexUnderscoreReportedOnce(t *testing.T) {
	_, errs := collectErrs(`1_2_3_45`, ModeHexStr)
	n := 0
	for _, e := range errs {
		if e.err == EscHexBadUnderscore {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("reported %d underscore errors, expected 1: %v", n, errs)
	}
}
