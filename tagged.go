// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yaml

// TaggedValue is a YAML value carrying an application tag, like
// `!Thing {x: 1}`. The tag is stored without its leading "!".
//
// Decoding into an untyped target produces *TaggedValue for any node whose
// tag is not part of the core schema; a bare tagged scalar like `!Switch`
// decodes as a TaggedValue with a nil Value.
type TaggedValue struct {
	Tag   string
	Value any
}

// DeserializeYAML decodes one enum-shaped value: the tag names the
// variant and the payload becomes Value.
func (t *TaggedValue) DeserializeYAML(d Deserializer) error {
	return d.DeserializeEnum("TaggedValue", nil, &taggedVisitor{
		BaseVisitor: BaseVisitor{Expect: "a tagged value"},
		out:         t,
	})
}

type taggedVisitor struct {
	BaseVisitor
	out *TaggedValue
}

func (v *taggedVisitor) VisitEnum(e EnumAccess) error {
	tag, va, err := e.Variant()
	if err != nil {
		return err
	}
	var payload anyVisitor
	if err := va.Payload().DeserializeAny(&payload); err != nil {
		return err
	}
	v.out.Tag = tag
	v.out.Value = payload.value
	return nil
}
