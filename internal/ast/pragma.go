package ast

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// VersionReq is the parsed requirement of a `pragma solidity` value.
// The raw text keeps the source spelling; the constraint uses npm
// range semantics, which is what the pragma grammar follows.
type VersionReq struct {
	Raw        string
	Constraint *semver.Constraints
}

// ParseVersionReq parses a version requirement expression such as
// `^0.8.0` or `>=0.4.22 <0.9.0 || 0.6.x`. Adjacent comparators are
// conjunctions, `||` separates alternatives and `a.b.c - d.e.f` is an
// inclusive range.
func ParseVersionReq(raw string) (*VersionReq, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("empty version requirement")
	}
	c, err := semver.NewConstraint(normalizeReq(trimmed))
	if err != nil {
		return nil, fmt.Errorf("invalid version requirement %q: %w", raw, err)
	}
	return &VersionReq{Raw: trimmed, Constraint: c}, nil
}

// Check reports whether the given compiler version satisfies the
// requirement
func (r *VersionReq) Check(v *semver.Version) bool {
	return r.Constraint.Check(v)
}

// Matches is Check on an unparsed version string. Malformed versions
// never match.
func (r *VersionReq) Matches(version string) bool {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return r.Check(v)
}

func (r *VersionReq) String() string { return r.Raw }

// normalizeReq rewrites the pragma's space-as-conjunction form into
// the comma form the constraint parser expects, keeping `||` and
// hyphen ranges intact. An operator split from its operand, as in
// `>= 0.8.0`, is also rejoined.
func normalizeReq(raw string) string {
	var alts []string
	for _, alt := range strings.Split(raw, "||") {
		fields := strings.Fields(alt)
		var terms []string
		for i := 0; i < len(fields); i++ {
			f := fields[i]
			switch {
			case f == "-" && len(terms) > 0 && i+1 < len(fields):
				terms[len(terms)-1] += " - " + fields[i+1]
				i++
			case isOperator(f) && i+1 < len(fields):
				terms = append(terms, f+fields[i+1])
				i++
			default:
				terms = append(terms, f)
			}
		}
		alts = append(alts, strings.Join(terms, ", "))
	}
	return strings.Join(alts, " || ")
}

func isOperator(s string) bool {
	switch s {
	case "^", "~", "=", "<", ">", "<=", ">=", "!=":
		return true
	}
	return false
}
