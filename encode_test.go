// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yaml_test

import (
	"math"
	"testing"

	yaml "github.com/serde-go/yaml"
	"github.com/serde-go/yaml/internal/testutil/assert"
)

func marshaled(t *testing.T, v any) string {
	t.Helper()
	out, err := yaml.Marshal(v)
	assert.NoError(t, err)
	return string(out)
}

func TestMarshalScalars(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, "null\n"},
		{true, "true\n"},
		{42, "42\n"},
		{int8(-1), "-1\n"},
		{uint64(7), "7\n"},
		{1.5, "1.5\n"},
		{1.0, "1.0\n"},
		{math.Inf(1), ".inf\n"},
		{math.Inf(-1), "-.inf\n"},
		{math.NaN(), ".nan\n"},
		{"plain", "plain\n"},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, marshaled(t, c.in), "%v", c.in)
	}
}

func TestMarshalQuotesAmbiguousStrings(t *testing.T) {
	// Strings that would re-read as another type are quoted.
	cases := []struct {
		in   string
		want string
	}{
		{"true", "'true'\n"},
		{"null", "'null'\n"},
		{"~", "'~'\n"},
		{"01", "'01'\n"},
		{"-5", "'-5'\n"},
		{".inf", "'.inf'\n"},
		{"-.nan", "'-.nan'\n"},
		{"", "''\n"},
		{"hello", "hello\n"},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, marshaled(t, c.in), "%q", c.in)
	}
}

func TestMarshalMultilineString(t *testing.T) {
	assert.Equal(t, "|-\n    a\n    b\n", marshaled(t, "a\nb"))
}

func TestMarshalCollections(t *testing.T) {
	assert.Equal(t, "- 1\n- 2\n", marshaled(t, []int{1, 2}))
	// Map entries come out sorted by key.
	assert.Equal(t, "a: 1\nb: 2\n", marshaled(t, map[string]int{"b": 2, "a": 1}))
	assert.Equal(t, "a:\n    b: 1\n", marshaled(t, map[string]any{"a": map[string]int{"b": 1}}))
}

func TestMarshalStruct(t *testing.T) {
	type config struct {
		Name    string
		Retries int    `yaml:"retries,omitempty"`
		Secret  string `yaml:"-"`
	}
	assert.Equal(t, "name: db\n", marshaled(t, config{Name: "db", Secret: "hunter2"}))
	assert.Equal(t, "name: db\nretries: 3\n", marshaled(t, config{Name: "db", Retries: 3}))
}

func TestMarshalBytesUnsupported(t *testing.T) {
	_, err := yaml.Marshal([]byte("raw"))
	assert.ErrorEqual(t, "serialization and deserialization of bytes in YAML is not implemented", err)
	assert.Equal(t, yaml.KindBytesUnsupported, kindOf(t, err))
}

type fahrenheit float64

func (f fahrenheit) MarshalYAML() (any, error) {
	return map[string]any{"unit": "F", "value": float64(f)}, nil
}

func TestMarshalMarshaler(t *testing.T) {
	assert.Equal(t, "unit: F\nvalue: 212.0\n", marshaled(t, fahrenheit(212)))
}

func TestRoundTrip(t *testing.T) {
	values := []any{
		nil,
		true,
		42,
		-7,
		2.5,
		"plain",
		"true",
		"01",
		"-.nan",
		[]any{1, "two", false},
		map[string]any{"a": 1, "b": []any{"x"}},
	}
	for _, v := range values {
		out, err := yaml.Marshal(v)
		assert.NoError(t, err)
		var back any
		assert.NoError(t, yaml.Unmarshal(out, &back))
		assert.DeepEqual(t, v, back)
	}
}
