package lexer

import "unicode/utf8"

// String literal bodies are validated when lexed and decoded again when
// the parser materializes the value. Both passes share Unescape; the
// first runs it with an error callback, the second without.

// EscapeError identifies one way a literal body can be malformed.
type EscapeError int

const (
	// String escapes.
	EscLoneSlash EscapeError = iota
	EscInvalidEscape
	EscHexEscapeTooShort
	EscInvalidHexEscape
	EscUnicodeEscapeTooShort
	EscInvalidUnicodeEscape
	EscStrNewline
	EscBareCarriageReturn
	EscStrNonAscii
	EscCannotSkipMultipleLines

	// Hex string bodies.
	EscHexPrefix
	EscHexOddDigits
	EscHexNotDigit
	EscHexBadUnderscore
)

func (e EscapeError) String() string {
	switch e {
	case EscLoneSlash:
		return "escape sequence is missing its character"
	case EscInvalidEscape:
		return "unknown escape sequence"
	case EscHexEscapeTooShort:
		return "hex escape must be followed by 2 hex digits"
	case EscInvalidHexEscape:
		return "invalid character in hex escape"
	case EscUnicodeEscapeTooShort:
		return "unicode escape must be followed by 4 hex digits"
	case EscInvalidUnicodeEscape:
		return "invalid unicode escape"
	case EscStrNewline:
		return "string literal must not span lines without a backslash"
	case EscBareCarriageReturn:
		return "bare carriage return in string literal"
	case EscStrNonAscii:
		return "non-ASCII character in string literal; use a unicode literal"
	case EscCannotSkipMultipleLines:
		return "a line continuation can only skip one line"
	case EscHexPrefix:
		return "hex string literal must not start with 0x"
	case EscHexOddDigits:
		return "hex string literal has an odd number of digits"
	case EscHexNotDigit:
		return "invalid character in hex string literal"
	case EscHexBadUnderscore:
		return "underscores in hex strings are only allowed between byte pairs"
	default:
		return "malformed literal"
	}
}

// StrMode selects the validation rules for a literal body.
type StrMode int

const (
	// ModeStr is a plain string literal: ASCII only, escapes allowed.
	ModeStr StrMode = iota
	// ModeUnicodeStr allows any UTF-8 content, escapes allowed.
	ModeUnicodeStr
	// ModeHexStr is a hex"..." body: digit pairs, no escapes.
	ModeHexStr
)

// Unescape decodes the body of a string literal (the text between the
// quotes) and returns the decoded bytes. Every malformed range is
// reported through errf with body-relative byte offsets; errf may be
// nil when the caller only wants the bytes. Decoding continues past
// errors so one bad escape does not hide the next.
func Unescape(body string, mode StrMode, errf func(lo, hi int, err EscapeError)) []byte {
	if mode == ModeHexStr {
		return unescapeHex(body, errf)
	}

	report := func(lo, hi int, err EscapeError) {
		if errf != nil {
			errf(lo, hi, err)
		}
	}

	out := make([]byte, 0, len(body))
	i := 0
	for i < len(body) {
		b := body[i]
		switch {
		case b == '\\':
			i = unescapeOne(body, i, mode, &out, report)

		case b == '\n':
			report(i, i+1, EscStrNewline)
			i++

		case b == '\r':
			report(i, i+1, EscBareCarriageReturn)
			i++

		case b >= 0x80:
			_, size := utf8.DecodeRuneInString(body[i:])
			if mode == ModeStr {
				report(i, i+size, EscStrNonAscii)
			} else {
				out = append(out, body[i:i+size]...)
			}
			i += size

		default:
			out = append(out, b)
			i++
		}
	}
	return out
}

// unescapeOne decodes the escape starting at the backslash at offset i
// and returns the offset after it.
func unescapeOne(body string, i int, mode StrMode, out *[]byte, report func(lo, hi int, err EscapeError)) int {
	start := i
	i++ // backslash
	if i >= len(body) {
		report(start, i, EscLoneSlash)
		return i
	}

	switch body[i] {
	case '\'', '"', '\\':
		*out = append(*out, body[i])
		return i + 1
	case 'n':
		*out = append(*out, '\n')
		return i + 1
	case 'r':
		*out = append(*out, '\r')
		return i + 1
	case 't':
		*out = append(*out, '\t')
		return i + 1

	case 'x':
		i++
		v := 0
		for n := 0; n < 2; n++ {
			if i >= len(body) {
				report(start, i, EscHexEscapeTooShort)
				return i
			}
			d := hexDigitValue(body[i])
			if d < 0 {
				report(start, i+1, EscInvalidHexEscape)
				return i
			}
			v = v<<4 | d
			i++
		}
		*out = append(*out, byte(v))
		return i

	case 'u':
		i++
		v := 0
		for n := 0; n < 4; n++ {
			if i >= len(body) {
				report(start, i, EscUnicodeEscapeTooShort)
				return i
			}
			d := hexDigitValue(body[i])
			if d < 0 {
				report(start, i+1, EscInvalidUnicodeEscape)
				return i
			}
			v = v<<4 | d
			i++
		}
		if v >= 0xD800 && v <= 0xDFFF {
			report(start, i, EscInvalidUnicodeEscape)
			return i
		}
		*out = utf8.AppendRune(*out, rune(v))
		return i

	case '\n', '\r':
		// Line continuation: the backslash, the line terminator and
		// the following indentation vanish from the value. Only one
		// line may be skipped.
		if body[i] == '\r' && i+1 < len(body) && body[i+1] == '\n' {
			i++
		}
		i++
		for i < len(body) && (body[i] == ' ' || body[i] == '\t') {
			i++
		}
		if i < len(body) && (body[i] == '\n' || body[i] == '\r') {
			for i < len(body) && (body[i] == ' ' || body[i] == '\t' ||
				body[i] == '\n' || body[i] == '\r') {
				i++
			}
			report(start, i, EscCannotSkipMultipleLines)
		}
		return i

	default:
		report(start, i+1, EscInvalidEscape)
		return i + 1
	}
}

// unescapeHex decodes a hex"..." body. Underscores separate byte
// pairs; only the first underscore violation is reported, odd digit
// counts are reported once at the end.
func unescapeHex(body string, errf func(lo, hi int, err EscapeError)) []byte {
	report := func(lo, hi int, err EscapeError) {
		if errf != nil {
			errf(lo, hi, err)
		}
	}

	// The prefix is skipped by index so later errors keep body-relative
	// offsets.
	first := 0
	if len(body) >= 2 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		report(0, 2, EscHexPrefix)
		first = 2
	}

	out := make([]byte, 0, (len(body)-first)/2)
	digits := 0
	underscoreErr := false
	cur := 0
	for i := first; i < len(body); i++ {
		b := body[i]
		if b == '_' {
			// Legal only between complete byte pairs.
			if !underscoreErr && (digits == 0 || digits%2 != 0 || i+1 == len(body) || body[i+1] == '_') {
				report(i, i+1, EscHexBadUnderscore)
				underscoreErr = true
			}
			continue
		}
		d := hexDigitValue(b)
		if d < 0 {
			report(i, i+1, EscHexNotDigit)
			return out
		}
		cur = cur<<4 | d
		digits++
		if digits%2 == 0 {
			out = append(out, byte(cur))
			cur = 0
		}
	}
	if digits%2 != 0 {
		report(0, len(body), EscHexOddDigits)
	}
	return out
}

func hexDigitValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}
