// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The generic deserialization protocol: a Deserializer dispatches on the
// shape the caller requests, and a Visitor receives whichever primitive,
// sequence, mapping or enum the input actually holds.

package yaml

import "fmt"

// A Deserializer reads one value out of the input. Each method requests a
// shape; the engine walks the event stream and calls back into the visitor
// with what it finds. The visitor decides whether that is acceptable.
type Deserializer interface {
	// DeserializeAny lets the input decide the shape.
	DeserializeAny(v Visitor) error

	DeserializeBool(v Visitor) error
	DeserializeInt8(v Visitor) error
	DeserializeInt16(v Visitor) error
	DeserializeInt32(v Visitor) error
	DeserializeInt64(v Visitor) error
	DeserializeUint8(v Visitor) error
	DeserializeUint16(v Visitor) error
	DeserializeUint32(v Visitor) error
	DeserializeUint64(v Visitor) error
	DeserializeFloat32(v Visitor) error
	DeserializeFloat64(v Visitor) error
	DeserializeString(v Visitor) error

	// DeserializeBytes always fails: YAML has no native binary scalar in
	// this data model.
	DeserializeBytes(v Visitor) error

	// DeserializeOption distinguishes null/absent from present values
	// without consuming present ones.
	DeserializeOption(v Visitor) error
	DeserializeUnit(v Visitor) error
	DeserializeUnitStruct(name string, v Visitor) error
	DeserializeNewtypeStruct(name string, v Visitor) error

	DeserializeSeq(v Visitor) error
	DeserializeTuple(n int, v Visitor) error
	DeserializeTupleStruct(name string, n int, v Visitor) error
	DeserializeMap(v Visitor) error
	DeserializeStruct(name string, fields []string, v Visitor) error
	DeserializeEnum(name string, variants []string, v Visitor) error

	// DeserializeIdentifier reads a field or variant name.
	DeserializeIdentifier(v Visitor) error
	// DeserializeIgnoredAny skips one value of any shape.
	DeserializeIgnoredAny(v Visitor) error
}

// A Visitor receives the value found in the input. Implementations embed
// BaseVisitor and override the methods for the shapes they accept; the
// defaults reject with an "invalid type" error built from Expecting.
type Visitor interface {
	// Expecting describes what the visitor accepts, for error messages.
	Expecting() string

	VisitNull() error
	VisitBool(b bool) error
	VisitInt(n int64) error
	VisitUint(n uint64) error
	VisitFloat(f float64) error
	VisitString(s string) error

	// VisitNone receives an absent optional value.
	VisitNone() error
	// VisitSome receives a present optional value, still unread.
	VisitSome(d Deserializer) error
	// VisitNewtypeStruct receives a newtype wrapper's inner value.
	VisitNewtypeStruct(d Deserializer) error

	VisitSeq(seq SeqAccess) error
	VisitMap(m MapAccess) error
	VisitEnum(e EnumAccess) error
}

// SeqAccess hands out the elements of a sequence one at a time.
type SeqAccess interface {
	// NextElement returns a Deserializer for the next element, or false
	// when the sequence is exhausted. The element must be fully consumed
	// before the next call.
	NextElement() (Deserializer, bool, error)
}

// MapAccess hands out the entries of a mapping as alternating keys and
// values. Each key must be consumed before NextValue, and each value
// before the next NextKey.
type MapAccess interface {
	NextKey() (Deserializer, bool, error)
	NextValue() (Deserializer, error)
}

// EnumAccess resolves the variant of an enum value.
type EnumAccess interface {
	// Variant returns the variant name and access to its payload.
	Variant() (string, VariantAccess, error)
}

// VariantAccess reads an enum variant's payload.
type VariantAccess interface {
	// UnitVariant consumes an empty payload.
	UnitVariant() error
	// Payload returns a Deserializer positioned on the variant payload.
	// A unit variant's payload deserializes as an absent value.
	Payload() Deserializer
}

// BaseVisitor provides default Visitor methods that reject every shape.
// Expect is the description used in the resulting errors.
type BaseVisitor struct {
	Expect string
}

func (b BaseVisitor) Expecting() string { return b.Expect }

func (b BaseVisitor) VisitNull() error {
	return invalidType("unit value", b.Expect)
}

func (b BaseVisitor) VisitBool(v bool) error {
	return invalidType(fmt.Sprintf("boolean `%t`", v), b.Expect)
}

func (b BaseVisitor) VisitInt(n int64) error {
	return invalidType(fmt.Sprintf("integer `%d`", n), b.Expect)
}

func (b BaseVisitor) VisitUint(n uint64) error {
	return invalidType(fmt.Sprintf("integer `%d`", n), b.Expect)
}

func (b BaseVisitor) VisitFloat(f float64) error {
	return invalidType(fmt.Sprintf("floating point `%v`", f), b.Expect)
}

func (b BaseVisitor) VisitString(s string) error {
	return invalidType(fmt.Sprintf("string %q", s), b.Expect)
}

func (b BaseVisitor) VisitNone() error {
	return invalidType("unit value", b.Expect)
}

func (b BaseVisitor) VisitSome(d Deserializer) error {
	return invalidType("optional value", b.Expect)
}

func (b BaseVisitor) VisitNewtypeStruct(d Deserializer) error {
	return invalidType("newtype struct", b.Expect)
}

func (b BaseVisitor) VisitSeq(seq SeqAccess) error {
	return invalidType("sequence", b.Expect)
}

func (b BaseVisitor) VisitMap(m MapAccess) error {
	return invalidType("map", b.Expect)
}

func (b BaseVisitor) VisitEnum(e EnumAccess) error {
	return invalidType("enum", b.Expect)
}

func invalidType(unexpected, expected string) *Error {
	return errMessage("invalid type: %s, expected %s", unexpected, expected)
}

func invalidValue(unexpected, expected string) *Error {
	return errMessage("invalid value: %s, expected %s", unexpected, expected)
}
