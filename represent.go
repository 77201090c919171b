// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The representer: Go values to composed nodes for emission. Plain strings
// that would be reinterpreted on re-read are quoted, floats use the YAML
// spellings of infinity and NaN, and TaggedValue round-trips as `!Tag`.

package yaml

import (
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/serde-go/yaml/internal/libyaml"
)

// Marshaler lets a type substitute another value for itself when
// marshaling.
type Marshaler interface {
	MarshalYAML() (any, error)
}

var (
	marshalerType   = reflect.TypeOf((*Marshaler)(nil)).Elem()
	taggedValueType = reflect.TypeOf(TaggedValue{})
)

func represent(rv reflect.Value) (*libyaml.Node, error) {
	if !rv.IsValid() {
		return nullNode(), nil
	}
	if rv.Type().Implements(marshalerType) {
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nullNode(), nil
		}
		inner, err := rv.Interface().(Marshaler).MarshalYAML()
		if err != nil {
			return nil, err
		}
		return represent(reflect.ValueOf(inner))
	}
	if rv.CanAddr() && reflect.PointerTo(rv.Type()).Implements(marshalerType) {
		return represent(rv.Addr())
	}
	if rv.Type() == taggedValueType {
		return representTagged(rv.Interface().(TaggedValue))
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nullNode(), nil
		}
		return represent(rv.Elem())
	case reflect.Bool:
		return scalarNode("!!bool", strconv.FormatBool(rv.Bool())), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return scalarNode("!!int", strconv.FormatInt(rv.Int(), 10)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return scalarNode("!!int", strconv.FormatUint(rv.Uint(), 10)), nil
	case reflect.Float32, reflect.Float64:
		return scalarNode("!!float", formatFloat(rv.Float())), nil
	case reflect.String:
		return stringNode(rv.String()), nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, errKind(KindBytesUnsupported)
		}
		fallthrough
	case reflect.Array:
		node := &libyaml.Node{Kind: libyaml.SequenceNode, Tag: "!!seq"}
		for i := 0; i < rv.Len(); i++ {
			child, err := represent(rv.Index(i))
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case reflect.Map:
		return representMap(rv)
	case reflect.Struct:
		return representStruct(rv)
	}
	return nil, errMessage("cannot marshal type %s", rv.Type())
}

func representTagged(tv TaggedValue) (*libyaml.Node, error) {
	if tv.Tag == "" {
		return nil, errKind(KindEmptyTag)
	}
	switch tv.Value.(type) {
	case TaggedValue, *TaggedValue:
		return nil, &Error{
			kind: KindNestedEnum,
			msg:  "serializing nested enums in YAML is not supported yet",
		}
	}
	node, err := represent(reflect.ValueOf(tv.Value))
	if err != nil {
		return nil, err
	}
	node.Tag = "!" + strings.TrimPrefix(tv.Tag, "!")
	node.Style |= libyaml.TaggedStyle
	return node, nil
}

func representMap(rv reflect.Value) (*libyaml.Node, error) {
	type entry struct {
		key, value *libyaml.Node
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key, err := represent(iter.Key())
		if err != nil {
			return nil, err
		}
		value, err := represent(iter.Value())
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{key, value})
	}
	// Map iteration order is random; sort for a stable rendering.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].key.Value < entries[j].key.Value
	})
	node := &libyaml.Node{Kind: libyaml.MappingNode, Tag: "!!map"}
	for _, e := range entries {
		node.Content = append(node.Content, e.key, e.value)
	}
	return node, nil
}

func representStruct(rv reflect.Value) (*libyaml.Node, error) {
	meta := cachedFields(rv.Type())
	node := &libyaml.Node{Kind: libyaml.MappingNode, Tag: "!!map"}
	for _, f := range meta.fields {
		fv := rv.FieldByIndex(f.index)
		if f.omitempty && fv.IsZero() {
			continue
		}
		value, err := represent(fv)
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, stringNode(f.name), value)
	}
	return node, nil
}

func nullNode() *libyaml.Node {
	return scalarNode("!!null", "null")
}

func scalarNode(tag, value string) *libyaml.Node {
	return &libyaml.Node{Kind: libyaml.ScalarNode, Tag: tag, Value: value}
}

func stringNode(s string) *libyaml.Node {
	node := scalarNode("!!str", s)
	switch {
	case strings.ContainsRune(s, '\n'):
		node.Style = libyaml.LiteralStyle
	case !printable(s):
		node.Style = libyaml.DoubleQuotedStyle
	case needsQuoting(s):
		node.Style = libyaml.SingleQuotedStyle
	}
	return node
}

func printable(s string) bool {
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// formatFloat renders a float so that re-reading it classifies as a float
// again: infinities and NaN use their YAML spellings, and integral values
// keep a trailing ".0".
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
