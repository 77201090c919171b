// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package yaml is a YAML codec built around an event-driven
// deserialization engine.
//
// The parser output of a document is buffered into a flat event list (the
// Document), with anchors resolved to event indices as the buffer fills. A
// cursor then walks the buffer on demand: nested values advance one shared
// position, aliases re-seek the cursor to the anchored event instead of
// copying data, plain scalars are typed by the YAML core schema, and
// explicit `!Tag` annotations dispatch to enum handling. Structural depth
// and total alias work are bounded, so adversarially nested or
// alias-dense input fails with a typed error instead of exhausting the
// stack.
//
// Unmarshal and Marshal convert single documents to and from Go values.
// Decoder iterates the documents of a multi-document stream. Types can
// take over their own decoding and encoding via the Deserializable and
// Marshaler interfaces, or work with the engine directly through
// NewLoader, NewDeserializer and the Visitor protocol.
package yaml

import (
	"io"
	"reflect"

	"github.com/serde-go/yaml/internal/libyaml"
)

// Unmarshal decodes exactly one YAML document into the value pointed to by
// v. A stream with a second document fails with a MoreThanOneDocument
// error.
//
// Scalars map to Go bools, integers, floats and strings per the core
// schema; sequences to slices and arrays; mappings to maps and structs.
// Decoding into a pointer makes null and absent values nil. Decoding into
// an any produces nil, bool, int, int64, uint64, float64, string, []any,
// map[string]any, or *TaggedValue for application-tagged nodes.
//
// Struct fields are matched by their lowercased name, or by the name given
// in the field's yaml tag.
func Unmarshal(in []byte, v any) error {
	loader := NewLoaderBytes(in)
	doc := loader.NextDocument()
	if doc == nil {
		return errKind(KindEndOfStream)
	}
	if err := construct(NewDeserializer(doc), v); err != nil {
		return err
	}
	if loader.NextDocument() != nil {
		return errKind(KindMoreThanOneDocument)
	}
	return nil
}

// Marshal encodes v as one YAML document.
//
// Plain strings that would be reinterpreted as another type on re-read are
// quoted. A TaggedValue is rendered as its payload with a `!Tag`
// annotation, so tagged values round-trip through Unmarshal.
func Marshal(v any) ([]byte, error) {
	node, err := represent(reflect.ValueOf(v))
	if err != nil {
		return nil, err
	}
	return libyaml.Emit(node)
}

// A Decoder reads the documents of a YAML stream one Decode call at a
// time.
type Decoder struct {
	loader *Loader
	err    *Error
}

// NewDecoder returns a Decoder reading from r. The input is consumed
// eagerly; a read failure is reported by every subsequent Decode call.
func NewDecoder(r io.Reader) *Decoder {
	loader, err := NewLoader(r)
	if err != nil {
		return &Decoder{err: asError(err)}
	}
	return &Decoder{loader: loader}
}

// Decode decodes the next document of the stream into the value pointed to
// by v. It returns io.EOF when no documents remain.
func (dec *Decoder) Decode(v any) error {
	if dec.err != nil {
		return sharedOf(dec.err)
	}
	doc := dec.loader.NextDocument()
	if doc == nil {
		return io.EOF
	}
	return construct(NewDeserializer(doc), v)
}
