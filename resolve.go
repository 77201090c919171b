// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Implicit typing of plain scalars per the YAML 1.2 core schema, and the
// inverse predicate deciding when an emitted string must be quoted.

package yaml

import (
	"math"
	"strconv"
	"strings"
)

// isNull reports whether plain scalar text denotes null.
func isNull(text string) bool {
	switch text {
	case "", "~", "null", "Null", "NULL":
		return true
	}
	return false
}

// parseBool interprets plain scalar text as a bool. Only the core schema
// spellings are accepted; y/yes/on and friends stay strings.
func parseBool(text string) (bool, bool) {
	switch text {
	case "true", "True", "TRUE":
		return true, true
	case "false", "False", "FALSE":
		return false, true
	}
	return false, false
}

// parseUnsigned interprets plain scalar text as a uint64, accepting decimal
// and the 0x/0o/0b radix prefixes. One leading "+" is stripped; a sign
// after a radix prefix is rejected.
func parseUnsigned(text string) (uint64, bool) {
	text = strings.TrimPrefix(text, "+")
	if rest, base, ok := splitRadix(text); ok {
		n, err := strconv.ParseUint(rest, base, 64)
		return n, err == nil
	}
	if text == "" || text[0] == '+' || text[0] == '-' {
		return 0, false
	}
	if digitsButNotNumber(text) {
		return 0, false
	}
	n, err := strconv.ParseUint(text, 10, 64)
	return n, err == nil
}

// parseSigned interprets plain scalar text as an int64. Negative radix
// forms like -0x1A are reconstructed by prepending the sign to the digits.
func parseSigned(text string) (int64, bool) {
	if rest, ok := strings.CutPrefix(text, "-"); ok {
		if digits, base, ok := splitRadix(rest); ok {
			n, err := strconv.ParseInt("-"+digits, base, 64)
			return n, err == nil
		}
		if rest == "" || rest[0] == '+' || rest[0] == '-' {
			return 0, false
		}
		if digitsButNotNumber(text) {
			return 0, false
		}
		n, err := strconv.ParseInt(text, 10, 64)
		return n, err == nil
	}
	text = strings.TrimPrefix(text, "+")
	if digits, base, ok := splitRadix(text); ok {
		n, err := strconv.ParseInt(digits, base, 64)
		return n, err == nil
	}
	if text == "" || text[0] == '+' || text[0] == '-' {
		return 0, false
	}
	if digitsButNotNumber(text) {
		return 0, false
	}
	n, err := strconv.ParseInt(text, 10, 64)
	return n, err == nil
}

// splitRadix strips a 0x/0o/0b prefix. The digits must not start with a
// sign (no "0x-5").
func splitRadix(text string) (digits string, base int, ok bool) {
	switch {
	case strings.HasPrefix(text, "0x"):
		digits, base = text[2:], 16
	case strings.HasPrefix(text, "0o"):
		digits, base = text[2:], 8
	case strings.HasPrefix(text, "0b"):
		digits, base = text[2:], 2
	default:
		return "", 0, false
	}
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return "", 0, false
	}
	return digits, base, true
}

// parseFloat interprets plain scalar text as an f64. The YAML spellings of
// infinity and NaN are recognized; .nan always gets a positive sign bit,
// and "-.nan" is deliberately not a float (it stays a string, matching the
// classifier's historical behavior). Other text must be a finite decimal
// number.
func parseFloat(text string) (float64, bool) {
	unsigned := strings.TrimPrefix(text, "+")
	switch unsigned {
	case ".inf", ".Inf", ".INF":
		return math.Inf(1), true
	case "-.inf", "-.Inf", "-.INF":
		return math.Inf(-1), true
	case ".nan", ".NaN", ".NAN":
		return math.Abs(math.NaN()), true
	}
	// strconv accepts forms YAML does not: inf/nan spellings are filtered
	// by the finite check, hex floats and underscores by the byte scan.
	if strings.ContainsAny(unsigned, "xX_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(unsigned, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// digitsButNotNumber reports whether text is all decimal digits with a
// disallowed leading zero, like "0123". Such text is a string, never a
// number (the YAML 1.2 leading-zero rule).
func digitsButNotNumber(text string) bool {
	if rest, ok := strings.CutPrefix(text, "-"); ok {
		text = rest
	} else {
		text = strings.TrimPrefix(text, "+")
	}
	if len(text) < 2 || text[0] != '0' {
		return false
	}
	for i := 1; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}

// ParseNumber interprets text as a YAML number using the core schema rules
// and returns a uint64, int64 or float64. Text that does not classify as a
// number fails with a FailedToParseNumber error.
func ParseNumber(text string) (any, error) {
	if n, ok := parseUnsigned(text); ok {
		return n, nil
	}
	if n, ok := parseSigned(text); ok {
		return n, nil
	}
	if !digitsButNotNumber(text) {
		if f, ok := parseFloat(text); ok {
			return f, nil
		}
	}
	return nil, errKind(KindFailedToParseNumber)
}

// needsQuoting reports whether a plain string would be reinterpreted as a
// different type by a YAML parser on re-read and so must be quoted when
// emitted.
func needsQuoting(text string) bool {
	if text == "" {
		return true
	}
	switch strings.ToLower(text) {
	case "null", "~", "true", "false",
		"y", "yes", "n", "no", "on", "off", "nil", "nan":
		return true
	}
	switch c := text[0]; {
	case c >= '0' && c <= '9', c == '-', c == '.', c == '+':
		return true
	}
	return false
}
