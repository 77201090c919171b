// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yaml_test

import (
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	yaml "github.com/serde-go/yaml"
	"github.com/serde-go/yaml/internal/testutil/assert"
)

func kindOf(t *testing.T, err error) yaml.ErrorKind {
	t.Helper()
	var e *yaml.Error
	if !errors.As(err, &e) {
		t.Fatalf("error %v (%T) is not a *yaml.Error", err, err)
	}
	return e.Kind()
}

func TestUnmarshalScalars(t *testing.T) {
	var b bool
	assert.NoError(t, yaml.Unmarshal([]byte("true"), &b))
	assert.Equal(t, true, b)

	var n int
	assert.NoError(t, yaml.Unmarshal([]byte("-42"), &n))
	assert.Equal(t, -42, n)

	var u uint16
	assert.NoError(t, yaml.Unmarshal([]byte("0x1A"), &u))
	assert.Equal(t, uint16(26), u)

	var f float64
	assert.NoError(t, yaml.Unmarshal([]byte("1.5"), &f))
	assert.Equal(t, 1.5, f)

	assert.NoError(t, yaml.Unmarshal([]byte(".inf"), &f))
	assert.True(t, math.IsInf(f, 1))

	var s string
	assert.NoError(t, yaml.Unmarshal([]byte("hello"), &s))
	assert.Equal(t, "hello", s)

	// Quoting suppresses implicit typing.
	assert.NoError(t, yaml.Unmarshal([]byte(`"true"`), &s))
	assert.Equal(t, "true", s)
}

func TestUnmarshalScalarTypeMismatch(t *testing.T) {
	var s string
	err := yaml.Unmarshal([]byte("true"), &s)
	assert.ErrorEqual(t, "invalid type: boolean `true`, expected a string", err)

	var b bool
	err = yaml.Unmarshal([]byte("5"), &b)
	assert.ErrorEqual(t, "invalid type: integer `5`, expected a boolean", err)

	var n int
	err = yaml.Unmarshal([]byte("hello"), &n)
	assert.ErrorEqual(t, `invalid type: string "hello", expected an integer`, err)
}

func TestUnmarshalIntegerOverflow(t *testing.T) {
	var n int8
	err := yaml.Unmarshal([]byte("300"), &n)
	assert.ErrorMatches(t, "invalid value: integer `300`, expected int8", err)

	var u uint8
	err = yaml.Unmarshal([]byte("-1"), &u)
	assert.ErrorMatches(t, "invalid value: integer `-1`, expected uint8", err)
}

func TestUnmarshalAny(t *testing.T) {
	cases := []struct {
		in   string
		want any
	}{
		{"", nil},
		{"~", nil},
		{"null", nil},
		{"true", true},
		{"12", 12},
		{"-5", -5},
		{"0o17", 15},
		{"9223372036854775807", math.MaxInt64},
		{"18446744073709551615", uint64(math.MaxUint64)},
		{"1e3", 1000.0},
		{"01", "01"},
		{"-.nan", "-.nan"},
		{"plain text", "plain text"},
		{"[]", []any{}},
		{"[1, two, 3.5, true, null]", []any{1, "two", 3.5, true, nil}},
		{"a: 1\nb: [x, y]\n", map[string]any{"a": 1, "b": []any{"x", "y"}}},
		{"1: one\n", map[string]any{"1": "one"}},
	}
	for _, c := range cases {
		var out any
		assert.NoError(t, yaml.Unmarshal([]byte(c.in), &out))
		assert.DeepEqual(t, c.want, out)
	}

	var out any
	assert.NoError(t, yaml.Unmarshal([]byte(".nan"), &out))
	f, ok := out.(float64)
	assert.True(t, ok)
	assert.True(t, math.IsNaN(f))
}

func TestUnmarshalStruct(t *testing.T) {
	type inner struct {
		Name  string
		Count int `yaml:"n"`
	}
	type outer struct {
		Items  []inner `yaml:"items"`
		Limit  *int
		Hidden string `yaml:"-"`
	}

	in := []byte("items:\n- name: a\n  n: 1\n- name: b\n  n: 2\nlimit: 7\nextra: ignored\n")
	var out outer
	assert.NoError(t, yaml.Unmarshal(in, &out))
	assert.DeepEqual(t, []inner{{Name: "a", Count: 1}, {Name: "b", Count: 2}}, out.Items)
	assert.Equal(t, 7, *out.Limit)
	assert.Equal(t, "", out.Hidden)
}

func TestUnmarshalPointer(t *testing.T) {
	var p *int
	assert.NoError(t, yaml.Unmarshal([]byte("5"), &p))
	assert.Equal(t, 5, *p)

	assert.NoError(t, yaml.Unmarshal([]byte("null"), &p))
	assert.IsNil(t, p)

	type holder struct {
		V *string `yaml:"v"`
	}
	var h holder
	assert.NoError(t, yaml.Unmarshal([]byte("v:\n"), &h))
	assert.IsNil(t, h.V)
}

func TestUnmarshalEmptyValueMakesEmptyCollections(t *testing.T) {
	type out struct {
		A []string       `yaml:"a"`
		B map[string]int `yaml:"b"`
	}
	var v out
	assert.NoError(t, yaml.Unmarshal([]byte("a:\nb:\n"), &v))
	assert.DeepEqual(t, []string{}, v.A)
	assert.DeepEqual(t, map[string]int{}, v.B)
}

func TestUnmarshalNullIntoSequenceFails(t *testing.T) {
	var v []int
	err := yaml.Unmarshal([]byte("null"), &v)
	assert.ErrorEqual(t, "invalid type: unit value, expected a sequence", err)
}

func TestUnmarshalArray(t *testing.T) {
	var a [3]int
	assert.NoError(t, yaml.Unmarshal([]byte("[1, 2, 3]"), &a))
	assert.Equal(t, [3]int{1, 2, 3}, a)

	err := yaml.Unmarshal([]byte("[1, 2]"), &a)
	assert.ErrorMatches(t, "invalid length 2, expected an array of 3 elements", err)

	err = yaml.Unmarshal([]byte("[1, 2, 3, 4]"), &a)
	assert.ErrorMatches(t, "invalid length 4, expected sequence of 3 elements", err)
}

func TestUnmarshalErrorCarriesPathAndPosition(t *testing.T) {
	type out struct {
		A []int `yaml:"a"`
	}
	var v out
	err := yaml.Unmarshal([]byte("a:\n- 0\n- hello\n"), &v)
	assert.ErrorEqual(t, `a[1]: invalid type: string "hello", expected an integer at line 3 column 3`, err)

	var e *yaml.Error
	assert.True(t, errors.As(err, &e))
	loc, ok := e.Location()
	assert.True(t, ok)
	assert.Equal(t, 3, loc.Line)
	assert.Equal(t, 3, loc.Column)
}

func TestUnmarshalAliases(t *testing.T) {
	var out map[string]map[string]int
	assert.NoError(t, yaml.Unmarshal([]byte("a: &x {k: 1}\nb: *x\n"), &out))
	assert.DeepEqual(t, map[string]map[string]int{"a": {"k": 1}, "b": {"k": 1}}, out)
}

func TestUnmarshalUnknownAnchor(t *testing.T) {
	var out any
	err := yaml.Unmarshal([]byte("a: *nowhere\n"), &out)
	assert.ErrorEqual(t, "unknown anchor", err)
	assert.Equal(t, yaml.KindUnknownAnchor, kindOf(t, err))
}

func TestUnmarshalParseError(t *testing.T) {
	var out any
	err := yaml.Unmarshal([]byte("a: [1\n"), &out)
	assert.ErrorMatches(t, "did not find expected", err)
	assert.Equal(t, yaml.KindParse, kindOf(t, err))
}

func TestUnmarshalRejectsMultipleDocuments(t *testing.T) {
	var out any
	err := yaml.Unmarshal([]byte("---\na: 1\n---\nb: 2\n"), &out)
	assert.ErrorEqual(t, "deserializing from YAML containing more than one document is not supported", err)
	assert.Equal(t, yaml.KindMoreThanOneDocument, kindOf(t, err))
}

func TestUnmarshalTargetMustBePointer(t *testing.T) {
	var out map[string]int
	err := yaml.Unmarshal([]byte("a: 1\n"), out)
	assert.ErrorMatches(t, "unmarshal target must be a non-nil pointer", err)
}

func TestDecoderStream(t *testing.T) {
	dec := yaml.NewDecoder(strings.NewReader("a: 1\n---\nb: 2\n"))

	var first, second, extra map[string]int
	assert.NoError(t, dec.Decode(&first))
	assert.DeepEqual(t, map[string]int{"a": 1}, first)
	assert.NoError(t, dec.Decode(&second))
	assert.DeepEqual(t, map[string]int{"b": 2}, second)
	assert.Equal(t, io.EOF, dec.Decode(&extra))
	assert.Equal(t, io.EOF, dec.Decode(&extra))
}

func TestDecoderEmptyInput(t *testing.T) {
	dec := yaml.NewDecoder(strings.NewReader(""))
	var v any
	assert.NoError(t, dec.Decode(&v))
	assert.IsNil(t, v)
	assert.Equal(t, io.EOF, dec.Decode(&v))
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("socket closed")
}

func TestDecoderReadFailureIsSticky(t *testing.T) {
	dec := yaml.NewDecoder(errReader{})
	var v any

	err := dec.Decode(&v)
	assert.ErrorEqual(t, "socket closed", err)
	assert.Equal(t, yaml.KindIO, kindOf(t, err))

	err = dec.Decode(&v)
	assert.ErrorEqual(t, "socket closed", err)
	assert.Equal(t, yaml.KindIO, kindOf(t, err))
}

// loud decodes through the protocol directly instead of reflection.
type loud string

func (l *loud) DeserializeYAML(d yaml.Deserializer) error {
	v := &loudVisitor{BaseVisitor: yaml.BaseVisitor{Expect: "a string"}}
	if err := d.DeserializeString(v); err != nil {
		return err
	}
	*l = loud(strings.ToUpper(v.s))
	return nil
}

type loudVisitor struct {
	yaml.BaseVisitor
	s string
}

func (v *loudVisitor) VisitString(s string) error {
	v.s = s
	return nil
}

func TestUnmarshalDeserializable(t *testing.T) {
	var l loud
	assert.NoError(t, yaml.Unmarshal([]byte("quiet"), &l))
	assert.Equal(t, loud("QUIET"), l)

	type wrapper struct {
		Word loud `yaml:"word"`
	}
	var w wrapper
	assert.NoError(t, yaml.Unmarshal([]byte("word: whisper\n"), &w))
	assert.Equal(t, loud("WHISPER"), w.Word)
}
