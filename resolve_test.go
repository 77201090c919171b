// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"math"
	"testing"

	"github.com/serde-go/yaml/internal/testutil/assert"
)

func TestParseBool(t *testing.T) {
	for _, text := range []string{"true", "True", "TRUE"} {
		b, ok := parseBool(text)
		assert.True(t, ok)
		assert.Equal(t, true, b)
	}
	for _, text := range []string{"false", "False", "FALSE"} {
		b, ok := parseBool(text)
		assert.True(t, ok)
		assert.Equal(t, false, b)
	}
	// The extended truthy spellings are not booleans in the core schema.
	for _, text := range []string{"yes", "no", "y", "on", "off", "tRuE", ""} {
		_, ok := parseBool(text)
		assert.False(t, ok)
	}
}

func TestIsNull(t *testing.T) {
	for _, text := range []string{"", "~", "null", "Null", "NULL"} {
		assert.True(t, isNull(text))
	}
	for _, text := range []string{"nil", "NuLL", "none", "-"} {
		assert.False(t, isNull(text))
	}
}

func TestParseUnsigned(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
	}{
		{"0", 0},
		{"7", 7},
		{"+7", 7},
		{"18446744073709551615", math.MaxUint64},
		{"0x1A", 26},
		{"0o17", 15},
		{"0b101", 5},
		{"+0x10", 16},
	}
	for _, c := range cases {
		n, ok := parseUnsigned(c.in)
		assert.Truef(t, ok, "%q", c.in)
		assert.Equalf(t, c.want, n, "%q", c.in)
	}
	// Decimal digits with a leading zero are never an integer.
	for _, in := range []string{"", "-1", "++1", "+-1", "0x", "0x-5", "0b", "abc", "1.5", "0x1G", "01", "0123", "+099"} {
		_, ok := parseUnsigned(in)
		assert.Falsef(t, ok, "%q", in)
	}
}

func TestParseSigned(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"-1", -1},
		{"+3", 3},
		{"3", 3},
		{"-0x1A", -26},
		{"-0o17", -15},
		{"-0b101", -5},
		{"-9223372036854775808", math.MinInt64},
	}
	for _, c := range cases {
		n, ok := parseSigned(c.in)
		assert.Truef(t, ok, "%q", c.in)
		assert.Equalf(t, c.want, n, "%q", c.in)
	}
	for _, in := range []string{"", "--1", "-+1", "-0x", "-0x-5", "9223372036854775808", "x", "01", "-012", "+099"} {
		_, ok := parseSigned(in)
		assert.Falsef(t, ok, "%q", in)
	}
}

func TestParseFloat(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1.5", 1.5},
		{"-2.25", -2.25},
		{"+0.5", 0.5},
		{"1e3", 1000},
		{".inf", math.Inf(1)},
		{".Inf", math.Inf(1)},
		{".INF", math.Inf(1)},
		{"+.inf", math.Inf(1)},
		{"-.inf", math.Inf(-1)},
		{"-.Inf", math.Inf(-1)},
	}
	for _, c := range cases {
		f, ok := parseFloat(c.in)
		assert.Truef(t, ok, "%q", c.in)
		assert.Equalf(t, c.want, f, "%q", c.in)
	}

	for _, in := range []string{".nan", ".NaN", ".NAN"} {
		f, ok := parseFloat(in)
		assert.Truef(t, ok, "%q", in)
		assert.True(t, math.IsNaN(f))
		assert.False(t, math.Signbit(f))
	}

	// "-.nan" is not a float; it stays a string. Spellings that other
	// parsers accept are rejected too.
	for _, in := range []string{"-.nan", "inf", "nan", "Infinity", "0x1p4", "1_000", ""} {
		_, ok := parseFloat(in)
		assert.Falsef(t, ok, "%q", in)
	}
}

func TestDigitsButNotNumber(t *testing.T) {
	for _, in := range []string{"01", "0123", "-012", "+099"} {
		assert.Truef(t, digitsButNotNumber(in), "%q", in)
	}
	for _, in := range []string{"0", "10", "0.5", "0x1A", "", "abc", "-0"} {
		assert.Falsef(t, digitsButNotNumber(in), "%q", in)
	}
}

func TestParseNumber(t *testing.T) {
	n, err := ParseNumber("42")
	assert.NoError(t, err)
	assert.Equal(t, uint64(42), n)

	n, err = ParseNumber("-42")
	assert.NoError(t, err)
	assert.Equal(t, int64(-42), n)

	n, err = ParseNumber("2.5")
	assert.NoError(t, err)
	assert.Equal(t, 2.5, n)

	for _, in := range []string{"abc", "01", "", "-.nan"} {
		_, err := ParseNumber(in)
		assert.ErrorMatches(t, "failed to parse YAML number", err)
		assert.Equal(t, KindFailedToParseNumber, err.(*Error).Kind())
	}
}

func TestNeedsQuoting(t *testing.T) {
	for _, in := range []string{
		"", "null", "Null", "~", "true", "FALSE",
		"y", "yes", "No", "ON", "off", "nil", "nan",
		"5", "-1", ".5", "+x", "0abc",
	} {
		assert.Truef(t, needsQuoting(in), "%q", in)
	}
	for _, in := range []string{"hello", "a1", "x-y", "nope", "trueish", "nulls"} {
		assert.Falsef(t, needsQuoting(in), "%q", in)
	}
}
