// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yaml_test

import (
	"testing"

	yaml "github.com/serde-go/yaml"
	"github.com/serde-go/yaml/internal/testutil/assert"
)

func TestUnmarshalTaggedScalar(t *testing.T) {
	var tv yaml.TaggedValue
	assert.NoError(t, yaml.Unmarshal([]byte("!Celsius 100\n"), &tv))
	assert.Equal(t, "Celsius", tv.Tag)
	assert.Equal(t, 100, tv.Value)
}

func TestUnmarshalTaggedCollections(t *testing.T) {
	var tv yaml.TaggedValue
	assert.NoError(t, yaml.Unmarshal([]byte("!Point {x: 1, y: 2}\n"), &tv))
	assert.Equal(t, "Point", tv.Tag)
	assert.DeepEqual(t, map[string]any{"x": 1, "y": 2}, tv.Value)

	assert.NoError(t, yaml.Unmarshal([]byte("!Pair [1, 2]\n"), &tv))
	assert.Equal(t, "Pair", tv.Tag)
	assert.DeepEqual(t, []any{1, 2}, tv.Value)
}

func TestUnmarshalBareVariantName(t *testing.T) {
	// An untagged non-empty scalar is a unit variant with no payload.
	var tv yaml.TaggedValue
	assert.NoError(t, yaml.Unmarshal([]byte("Red\n"), &tv))
	assert.Equal(t, "Red", tv.Tag)
	assert.IsNil(t, tv.Value)
}

func TestUnmarshalTaggedIntoAny(t *testing.T) {
	var out any
	assert.NoError(t, yaml.Unmarshal([]byte("state: !On {level: 3}\n"), &out))
	assert.DeepEqual(t, map[string]any{
		"state": &yaml.TaggedValue{Tag: "On", Value: map[string]any{"level": 3}},
	}, out)

	// A tag with an empty payload carries a nil value.
	assert.NoError(t, yaml.Unmarshal([]byte("!Off\n"), &out))
	assert.DeepEqual(t, &yaml.TaggedValue{Tag: "Off", Value: nil}, out)
}

func TestMarshalTagged(t *testing.T) {
	out, err := yaml.Marshal(yaml.TaggedValue{Tag: "Celsius", Value: 100})
	assert.NoError(t, err)
	assert.Equal(t, "!Celsius 100\n", string(out))

	// The stored tag may or may not carry its own "!".
	out, err = yaml.Marshal(yaml.TaggedValue{Tag: "!Celsius", Value: 100})
	assert.NoError(t, err)
	assert.Equal(t, "!Celsius 100\n", string(out))
}

func TestTaggedRoundTrip(t *testing.T) {
	original := map[string]any{
		"reading": &yaml.TaggedValue{Tag: "Celsius", Value: 100},
		"mode":    &yaml.TaggedValue{Tag: "Auto", Value: nil},
	}
	out, err := yaml.Marshal(original)
	assert.NoError(t, err)
	var back any
	assert.NoError(t, yaml.Unmarshal(out, &back))
	assert.DeepEqual(t, original, back)
}

func TestMarshalTaggedErrors(t *testing.T) {
	_, err := yaml.Marshal(yaml.TaggedValue{Tag: "", Value: 1})
	assert.ErrorEqual(t, "empty YAML tag is not allowed", err)
	assert.Equal(t, yaml.KindEmptyTag, kindOf(t, err))

	_, err = yaml.Marshal(yaml.TaggedValue{
		Tag:   "Outer",
		Value: yaml.TaggedValue{Tag: "Inner", Value: 1},
	})
	assert.ErrorEqual(t, "serializing nested enums in YAML is not supported yet", err)
	assert.Equal(t, yaml.KindNestedEnum, kindOf(t, err))
}
