// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The cursor-based deserialization engine: a position-tracking cursor over
// one Document's event buffer implementing the Deserializer protocol, with
// alias jumps, implicit scalar typing, enum tag dispatch, and recursion and
// repetition guards.

package yaml

import (
	"fmt"
	"unicode/utf8"

	"github.com/serde-go/yaml/internal/libyaml"
)

// maxRecursion bounds structural descent independently of the native call
// stack, so adversarially nested input fails cleanly instead of
// overflowing.
const maxRecursion = 128

// jumpBudgetFactor scales the alias-jump budget with the buffer size. The
// multiplier is a generous safety valve, not a tuned constant: it allows
// legitimate dense reuse while keeping cyclic or pathological alias graphs
// from running forever.
const jumpBudgetFactor = 100

type enumContext struct {
	name string
	tag  string
}

// eventDeserializer is a cursor over a Document's events.
//
// pos and jumps are shared cells: sibling and nested reads advance one
// global position, and all alias work across the document counts against
// one budget. depth is plain value state so that returning from a subtree
// restores the parent's budget. An alias jump creates a new pos cell seeded
// from the anchor table, leaving the caller's own cursor in place.
type eventDeserializer struct {
	doc   *Document
	pos   *int
	jumps *int
	depth int
	path  *path
	enum  *enumContext
}

// NewDeserializer returns a Deserializer that reads the given document.
// The document must not be shared with another deserializer.
func NewDeserializer(doc *Document) Deserializer {
	pos, jumps := 0, 0
	return &eventDeserializer{
		doc:   doc,
		pos:   &pos,
		jumps: &jumps,
		depth: maxRecursion,
		path:  rootPath,
	}
}

func (d *eventDeserializer) peekEvent() (*event, libyaml.Mark, *Error) {
	if *d.pos < len(d.doc.events) {
		e := &d.doc.events[*d.pos]
		return e, e.mark, nil
	}
	if d.doc.err != nil {
		return nil, libyaml.Mark{}, sharedOf(d.doc.err)
	}
	return nil, libyaml.Mark{}, errKind(KindEndOfStream)
}

// nextEvent consumes the next event. Advancing the cursor also closes any
// enum-tag context: the context only ever applies to the event it was set
// for.
func (d *eventDeserializer) nextEvent() (*event, libyaml.Mark, *Error) {
	e, mark, err := d.peekEvent()
	if err != nil {
		return nil, mark, err
	}
	*d.pos++
	d.enum = nil
	return e, mark, nil
}

// jump resolves an alias to a new cursor positioned at the anchored event.
// The new cursor gets its own position cell but shares the jump budget.
func (d *eventDeserializer) jump(anchorID int) (*eventDeserializer, *Error) {
	*d.jumps++
	if *d.jumps > len(d.doc.events)*jumpBudgetFactor {
		return nil, errKind(KindRepetitionLimitExceeded)
	}
	if anchorID < 0 || anchorID >= len(d.doc.anchors) {
		panic(fmt.Sprintf("yaml: unresolved alias id %d", anchorID))
	}
	pos := d.doc.anchors[anchorID]
	return &eventDeserializer{
		doc:   d.doc,
		pos:   &pos,
		jumps: d.jumps,
		depth: d.depth,
		path:  d.path.alias(),
	}, nil
}

// recursionCheck charges one level of structural descent against the depth
// budget for the duration of f, restoring it afterwards so sibling
// subtrees get the full budget back.
func (d *eventDeserializer) recursionCheck(mark libyaml.Mark, f func() *Error) *Error {
	if d.depth == 0 {
		return errKindAt(KindRecursionLimitExceeded, mark)
	}
	d.depth--
	err := f()
	d.depth++
	return err
}

// jumpAnd follows an alias (whose event has been consumed) and runs f on
// the jumped cursor. The jump itself counts as a descent.
func (d *eventDeserializer) jumpAnd(anchorID int, mark libyaml.Mark, f func(*eventDeserializer) *Error) *Error {
	return d.recursionCheck(mark, func() *Error {
		jumped, err := d.jump(anchorID)
		if err != nil {
			return err
		}
		return f(jumped)
	})
}

// variantTag extracts the enum variant name from an explicit tag: "!Name"
// or "!!Name" yields "Name". Core schema tags are not variant tags.
func variantTag(tag string) (string, bool) {
	if tag == "" || tag[0] != '!' {
		return "", false
	}
	name := tag[1:]
	if len(name) > 0 && name[0] == '!' {
		name = name[1:]
	}
	if name == "" {
		return "", false
	}
	return name, true
}

// unexpectedEvent describes the consumed event for an "invalid type"
// message, classifying plain scalars the way DeserializeAny would.
func unexpectedEvent(e *event, tagged bool) string {
	switch e.kind {
	case eventScalar:
		tag := e.tag
		if tagged {
			tag = ""
		}
		if e.style != libyaml.PLAIN_SCALAR_STYLE || (tag != "" && tag != libyaml.STR_TAG) {
			return fmt.Sprintf("string %q", e.value)
		}
		text := e.value
		switch {
		case isNull(text):
			return "unit value"
		}
		if b, ok := parseBool(text); ok {
			return fmt.Sprintf("boolean `%t`", b)
		}
		if n, ok := parseUnsigned(text); ok {
			return fmt.Sprintf("integer `%d`", n)
		}
		if n, ok := parseSigned(text); ok {
			return fmt.Sprintf("integer `%d`", n)
		}
		if !digitsButNotNumber(text) {
			if f, ok := parseFloat(text); ok {
				return fmt.Sprintf("floating point `%v`", f)
			}
		}
		return fmt.Sprintf("string %q", text)
	case eventSequenceStart:
		return "sequence"
	case eventMappingStart:
		return "map"
	case eventVoid:
		return "unit value"
	case eventSequenceEnd:
		panic("yaml: unexpected end of sequence")
	case eventMappingEnd:
		panic("yaml: unexpected end of mapping")
	}
	return "value"
}

// visitUntaggedScalar applies the implicit typing rules of the core schema
// and hands the classified value to the visitor.
func visitUntaggedScalar(v Visitor, text string) *Error {
	if isNull(text) {
		return asError(v.VisitNull())
	}
	if b, ok := parseBool(text); ok {
		return asError(v.VisitBool(b))
	}
	if n, ok := parseUnsigned(text); ok {
		return asError(v.VisitUint(n))
	}
	if n, ok := parseSigned(text); ok {
		return asError(v.VisitInt(n))
	}
	if !digitsButNotNumber(text) {
		if f, ok := parseFloat(text); ok {
			return asError(v.VisitFloat(f))
		}
	}
	return asError(v.VisitString(text))
}

// visitScalar dispatches a scalar event: explicit core schema tags force
// an interpretation, plain untagged scalars go through implicit typing,
// and quoted or block scalars are always taken literally as strings.
// tagged means an enclosing enum context already consumed the tag.
func visitScalar(v Visitor, e *event, tagged bool) *Error {
	text := e.value
	if !utf8.ValidString(text) {
		return errKind(KindInvalidUTF8)
	}
	tag := e.tag
	if tagged {
		tag = ""
	}
	switch tag {
	case libyaml.NULL_TAG:
		if isNull(text) {
			return asError(v.VisitNull())
		}
		return invalidValue(fmt.Sprintf("string %q", text), v.Expecting())
	case libyaml.BOOL_TAG:
		if b, ok := parseBool(text); ok {
			return asError(v.VisitBool(b))
		}
		return invalidValue(fmt.Sprintf("string %q", text), v.Expecting())
	case libyaml.INT_TAG:
		if n, ok := parseUnsigned(text); ok {
			return asError(v.VisitUint(n))
		}
		if n, ok := parseSigned(text); ok {
			return asError(v.VisitInt(n))
		}
		return invalidValue(fmt.Sprintf("string %q", text), v.Expecting())
	case libyaml.FLOAT_TAG:
		if f, ok := parseFloat(text); ok {
			return asError(v.VisitFloat(f))
		}
		return invalidValue(fmt.Sprintf("string %q", text), v.Expecting())
	case libyaml.STR_TAG:
		return asError(v.VisitString(text))
	}
	if e.style == libyaml.PLAIN_SCALAR_STYLE && tag == "" {
		return visitUntaggedScalar(v, text)
	}
	return asError(v.VisitString(text))
}

// isEmptyScalar reports whether the event is the degenerate empty plain
// scalar that may stand in for an empty collection.
func isEmptyScalar(e *event, tagged bool) bool {
	return e.kind == eventScalar &&
		e.value == "" &&
		e.style == libyaml.PLAIN_SCALAR_STYLE &&
		(tagged || e.tag == "")
}

// deserializeScalar serves every primitive request: the classified value
// is offered to the visitor, which accepts or rejects it.
func (d *eventDeserializer) deserializeScalar(v Visitor) *Error {
	tagged := d.enum != nil
	e, mark, err := d.nextEvent()
	if err != nil {
		return err
	}
	var res *Error
	switch e.kind {
	case eventAlias:
		res = d.jumpAnd(e.anchor, mark, func(jumped *eventDeserializer) *Error {
			return jumped.deserializeScalar(v)
		})
	case eventScalar:
		res = visitScalar(v, e, tagged)
	case eventVoid:
		res = errKind(KindEndOfStream)
	default:
		res = invalidType(unexpectedEvent(e, tagged), v.Expecting())
	}
	return fixMark(res, mark, d.path)
}

func (d *eventDeserializer) DeserializeBool(v Visitor) error {
	return errOrNil(d.deserializeScalar(v))
}

func (d *eventDeserializer) DeserializeInt8(v Visitor) error  { return errOrNil(d.deserializeScalar(v)) }
func (d *eventDeserializer) DeserializeInt16(v Visitor) error { return errOrNil(d.deserializeScalar(v)) }
func (d *eventDeserializer) DeserializeInt32(v Visitor) error { return errOrNil(d.deserializeScalar(v)) }
func (d *eventDeserializer) DeserializeInt64(v Visitor) error { return errOrNil(d.deserializeScalar(v)) }

func (d *eventDeserializer) DeserializeUint8(v Visitor) error  { return errOrNil(d.deserializeScalar(v)) }
func (d *eventDeserializer) DeserializeUint16(v Visitor) error { return errOrNil(d.deserializeScalar(v)) }
func (d *eventDeserializer) DeserializeUint32(v Visitor) error { return errOrNil(d.deserializeScalar(v)) }
func (d *eventDeserializer) DeserializeUint64(v Visitor) error { return errOrNil(d.deserializeScalar(v)) }

func (d *eventDeserializer) DeserializeFloat32(v Visitor) error {
	return errOrNil(d.deserializeScalar(v))
}

func (d *eventDeserializer) DeserializeFloat64(v Visitor) error {
	return errOrNil(d.deserializeScalar(v))
}

func (d *eventDeserializer) DeserializeString(v Visitor) error {
	return errOrNil(d.deserializeScalar(v))
}

func (d *eventDeserializer) DeserializeIdentifier(v Visitor) error {
	return errOrNil(d.deserializeScalar(v))
}

func (d *eventDeserializer) DeserializeBytes(v Visitor) error {
	_, mark, err := d.peekEvent()
	if err != nil {
		return err
	}
	return errOrNil(fixMark(errKind(KindBytesUnsupported), mark, d.path))
}

func (d *eventDeserializer) DeserializeOption(v Visitor) error {
	tagged := d.enum != nil
	e, mark, err := d.peekEvent()
	if err != nil {
		return err
	}
	isSome := false
	switch e.kind {
	case eventAlias:
		*d.pos++
		d.enum = nil
		return errOrNil(fixMark(d.jumpAnd(e.anchor, mark, func(jumped *eventDeserializer) *Error {
			return asError(jumped.DeserializeOption(v))
		}), mark, d.path))
	case eventScalar:
		switch {
		case e.style != libyaml.PLAIN_SCALAR_STYLE:
			isSome = true
		case e.tag != "" && !tagged:
			isSome = e.tag != libyaml.NULL_TAG
		default:
			isSome = !isNull(e.value)
		}
	case eventSequenceStart, eventMappingStart:
		isSome = true
	case eventVoid:
		isSome = false
	default:
		return errOrNil(fixMark(invalidType(unexpectedEvent(e, tagged), v.Expecting()), mark, d.path))
	}
	if isSome {
		return errOrNil(fixMark(asError(v.VisitSome(d)), mark, d.path))
	}
	*d.pos++
	d.enum = nil
	return errOrNil(fixMark(asError(v.VisitNone()), mark, d.path))
}

func (d *eventDeserializer) DeserializeUnit(v Visitor) error {
	tagged := d.enum != nil
	e, mark, err := d.nextEvent()
	if err != nil {
		return err
	}
	var res *Error
	switch {
	case e.kind == eventAlias:
		res = d.jumpAnd(e.anchor, mark, func(jumped *eventDeserializer) *Error {
			return asError(jumped.DeserializeUnit(v))
		})
	case e.kind == eventVoid:
		res = asError(v.VisitNull())
	case e.kind == eventScalar && (tagged || e.tag == "" || e.tag == libyaml.NULL_TAG) &&
		e.style == libyaml.PLAIN_SCALAR_STYLE && isNull(e.value):
		res = asError(v.VisitNull())
	default:
		res = invalidType(unexpectedEvent(e, tagged), v.Expecting())
	}
	return errOrNil(fixMark(res, mark, d.path))
}

func (d *eventDeserializer) DeserializeUnitStruct(name string, v Visitor) error {
	return d.DeserializeUnit(v)
}

func (d *eventDeserializer) DeserializeNewtypeStruct(name string, v Visitor) error {
	_, mark, err := d.peekEvent()
	if err != nil {
		return err
	}
	return errOrNil(fixMark(d.recursionCheck(mark, func() *Error {
		return asError(v.VisitNewtypeStruct(d))
	}), mark, d.path))
}

func (d *eventDeserializer) DeserializeSeq(v Visitor) error {
	tagged := d.enum != nil
	e, mark, err := d.nextEvent()
	if err != nil {
		return err
	}
	var res *Error
	switch {
	case e.kind == eventAlias:
		res = d.jumpAnd(e.anchor, mark, func(jumped *eventDeserializer) *Error {
			return asError(jumped.DeserializeSeq(v))
		})
	case e.kind == eventSequenceStart:
		res = d.visitSequence(v, mark)
	case e.kind == eventVoid || isEmptyScalar(e, tagged):
		res = asError(v.VisitSeq(&seqAccess{de: d, empty: true}))
	default:
		res = invalidType(unexpectedEvent(e, tagged), v.Expecting())
	}
	return errOrNil(fixMark(res, mark, d.path))
}

func (d *eventDeserializer) DeserializeTuple(n int, v Visitor) error {
	return d.DeserializeSeq(v)
}

func (d *eventDeserializer) DeserializeTupleStruct(name string, n int, v Visitor) error {
	return d.DeserializeSeq(v)
}

func (d *eventDeserializer) DeserializeMap(v Visitor) error {
	tagged := d.enum != nil
	e, mark, err := d.nextEvent()
	if err != nil {
		return err
	}
	var res *Error
	switch {
	case e.kind == eventAlias:
		res = d.jumpAnd(e.anchor, mark, func(jumped *eventDeserializer) *Error {
			return asError(jumped.DeserializeMap(v))
		})
	case e.kind == eventMappingStart:
		res = d.visitMapping(v, mark)
	case e.kind == eventVoid || isEmptyScalar(e, tagged):
		res = asError(v.VisitMap(&mapAccess{de: d, empty: true}))
	default:
		res = invalidType(unexpectedEvent(e, tagged), v.Expecting())
	}
	return errOrNil(fixMark(res, mark, d.path))
}

func (d *eventDeserializer) DeserializeStruct(name string, fields []string, v Visitor) error {
	return d.DeserializeMap(v)
}

func (d *eventDeserializer) DeserializeEnum(name string, variants []string, v Visitor) error {
	e, mark, err := d.peekEvent()
	if err != nil {
		return err
	}
	if d.enum != nil {
		// Inside an outer tag only a scalar naming a unit variant is
		// allowed; any structurally nested enum is rejected. The scalar
		// still carries the consumed outer tag.
		if e.kind == eventScalar && e.value != "" {
			return errOrNil(fixMark(asError(v.VisitEnum(&unitVariantAccess{de: d})), mark, d.path))
		}
		return errOrNil(fixMark(errNestedEnum(d.enum.name, d.enum.tag), mark, d.path))
	}
	var res *Error
	switch e.kind {
	case eventAlias:
		*d.pos++
		res = d.jumpAnd(e.anchor, mark, func(jumped *eventDeserializer) *Error {
			return asError(jumped.DeserializeEnum(name, variants, v))
		})
	case eventScalar:
		if tag, ok := variantTag(e.tag); ok && e.style == libyaml.PLAIN_SCALAR_STYLE {
			res = asError(v.VisitEnum(&enumAccess{de: d, name: name, tag: tag}))
		} else if e.tag == "" && e.value != "" {
			res = asError(v.VisitEnum(&unitVariantAccess{de: d}))
		} else {
			res = invalidType(unexpectedEvent(e, false), v.Expecting())
		}
	case eventSequenceStart, eventMappingStart:
		if tag, ok := variantTag(e.tag); ok {
			res = asError(v.VisitEnum(&enumAccess{de: d, name: name, tag: tag}))
		} else {
			res = invalidType(unexpectedEvent(e, false), v.Expecting())
		}
	case eventVoid:
		res = errKind(KindEndOfStream)
	default:
		res = invalidType(unexpectedEvent(e, false), v.Expecting())
	}
	return errOrNil(fixMark(res, mark, d.path))
}

func (d *eventDeserializer) DeserializeAny(v Visitor) error {
	tagged := d.enum != nil
	e, mark, err := d.nextEvent()
	if err != nil {
		return err
	}
	var res *Error
	switch e.kind {
	case eventAlias:
		res = d.jumpAnd(e.anchor, mark, func(jumped *eventDeserializer) *Error {
			return asError(jumped.DeserializeAny(v))
		})
	case eventScalar:
		if tag, ok := variantTag(e.tag); ok && !tagged && e.style == libyaml.PLAIN_SCALAR_STYLE {
			// Rewind so the enum payload cursor re-reads this event with
			// the tag marked as consumed.
			*d.pos--
			res = asError(v.VisitEnum(&enumAccess{de: d, tag: tag}))
		} else {
			res = visitScalar(v, e, tagged)
		}
	case eventSequenceStart:
		if tag, ok := variantTag(e.tag); ok && !tagged {
			*d.pos--
			res = asError(v.VisitEnum(&enumAccess{de: d, tag: tag}))
		} else {
			res = d.visitSequence(v, mark)
		}
	case eventMappingStart:
		if tag, ok := variantTag(e.tag); ok && !tagged {
			*d.pos--
			res = asError(v.VisitEnum(&enumAccess{de: d, tag: tag}))
		} else {
			res = d.visitMapping(v, mark)
		}
	case eventVoid:
		res = asError(v.VisitNone())
	case eventSequenceEnd:
		panic("yaml: unexpected end of sequence")
	case eventMappingEnd:
		panic("yaml: unexpected end of mapping")
	}
	return errOrNil(fixMark(res, mark, d.path))
}

// ignoreAny skips one complete value without interpreting it. Aliases are
// skipped positionally, costing no jumps.
func (d *eventDeserializer) ignoreAny() *Error {
	depth := 0
	for {
		e, _, err := d.nextEvent()
		if err != nil {
			return err
		}
		switch e.kind {
		case eventAlias, eventScalar, eventVoid:
		case eventSequenceStart, eventMappingStart:
			depth++
		case eventSequenceEnd, eventMappingEnd:
			depth--
			if depth < 0 {
				panic("yaml: unexpected end of collection")
			}
		}
		if depth == 0 {
			return nil
		}
	}
}

func (d *eventDeserializer) DeserializeIgnoredAny(v Visitor) error {
	if err := d.ignoreAny(); err != nil {
		return err
	}
	return v.VisitNull()
}

// visitSequence hands the sequence to the visitor, then drains whatever the
// visitor left unconsumed and verifies the closing event, reporting a
// length mismatch if the visitor required an exact element count.
func (d *eventDeserializer) visitSequence(v Visitor, mark libyaml.Mark) *Error {
	var consumed int
	err := d.recursionCheck(mark, func() *Error {
		seq := &seqAccess{de: d}
		verr := asError(v.VisitSeq(seq))
		consumed = seq.len
		return verr
	})
	if err != nil {
		return err
	}
	return d.endSequence(consumed)
}

func (d *eventDeserializer) endSequence(expected int) *Error {
	seq := &seqAccess{de: d, len: expected}
	for {
		el, ok, err := seq.NextElement()
		if err != nil {
			return asError(err)
		}
		if !ok {
			break
		}
		if err := el.DeserializeIgnoredAny(ignoreVisitor{}); err != nil {
			return asError(err)
		}
	}
	total := seq.len
	e, _, nerr := d.nextEvent()
	if nerr != nil {
		return nerr
	}
	if e.kind != eventSequenceEnd {
		panic("yaml: expected end of sequence")
	}
	if total != expected {
		return errMessage("invalid length %d, expected sequence of %d element%s",
			total, expected, plural(expected))
	}
	return nil
}

func (d *eventDeserializer) visitMapping(v Visitor, mark libyaml.Mark) *Error {
	var consumed int
	err := d.recursionCheck(mark, func() *Error {
		m := &mapAccess{de: d}
		verr := asError(v.VisitMap(m))
		consumed = m.len
		return verr
	})
	if err != nil {
		return err
	}
	return d.endMapping(consumed)
}

func (d *eventDeserializer) endMapping(expected int) *Error {
	m := &mapAccess{de: d, len: expected}
	for {
		key, ok, err := m.NextKey()
		if err != nil {
			return asError(err)
		}
		if !ok {
			break
		}
		if err := key.DeserializeIgnoredAny(ignoreVisitor{}); err != nil {
			return asError(err)
		}
		value, verr := m.NextValue()
		if verr != nil {
			return asError(verr)
		}
		if err := value.DeserializeIgnoredAny(ignoreVisitor{}); err != nil {
			return asError(err)
		}
	}
	total := m.len
	e, _, nerr := d.nextEvent()
	if nerr != nil {
		return nerr
	}
	if e.kind != eventMappingEnd {
		panic("yaml: expected end of mapping")
	}
	if total != expected {
		return errMessage("invalid length %d, expected map containing %d entr%s",
			total, expected, pluralEntries(expected))
	}
	return nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func pluralEntries(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

// seqAccess iterates the elements between a consumed SequenceStart and its
// SequenceEnd. empty marks the degenerate empty-scalar form, which has no
// events to consume.
type seqAccess struct {
	de    *eventDeserializer
	len   int
	empty bool
}

func (s *seqAccess) NextElement() (Deserializer, bool, error) {
	if s.empty {
		return nil, false, nil
	}
	e, _, err := s.de.peekEvent()
	if err != nil {
		return nil, false, err
	}
	if e.kind == eventSequenceEnd {
		return nil, false, nil
	}
	element := &eventDeserializer{
		doc:   s.de.doc,
		pos:   s.de.pos,
		jumps: s.de.jumps,
		depth: s.de.depth,
		path:  s.de.path.seq(s.len),
	}
	s.len++
	return element, true, nil
}

// mapAccess iterates the entries between a consumed MappingStart and its
// MappingEnd. The value cursor's path segment carries the key when the key
// was a readable scalar.
type mapAccess struct {
	de     *eventDeserializer
	len    int
	empty  bool
	key    string
	hasKey bool
}

func (m *mapAccess) NextKey() (Deserializer, bool, error) {
	if m.empty {
		return nil, false, nil
	}
	e, _, err := m.de.peekEvent()
	if err != nil {
		return nil, false, err
	}
	if e.kind == eventMappingEnd {
		return nil, false, nil
	}
	if e.kind == eventScalar && utf8.ValidString(e.value) {
		m.key, m.hasKey = e.value, true
	} else {
		m.hasKey = false
	}
	m.len++
	key := &eventDeserializer{
		doc:   m.de.doc,
		pos:   m.de.pos,
		jumps: m.de.jumps,
		depth: m.de.depth,
		path:  m.de.path,
	}
	return key, true, nil
}

func (m *mapAccess) NextValue() (Deserializer, error) {
	p := m.de.path.unknown()
	if m.hasKey {
		p = m.de.path.field(m.key)
	}
	value := &eventDeserializer{
		doc:   m.de.doc,
		pos:   m.de.pos,
		jumps: m.de.jumps,
		depth: m.de.depth,
		path:  p,
	}
	return value, nil
}

// enumAccess resolves a tagged event: the tag names the variant, and the
// payload cursor re-reads the event with the tag marked as consumed.
type enumAccess struct {
	de   *eventDeserializer
	name string
	tag  string
}

func (a *enumAccess) Variant() (string, VariantAccess, error) {
	payload := &eventDeserializer{
		doc:   a.de.doc,
		pos:   a.de.pos,
		jumps: a.de.jumps,
		depth: a.de.depth,
		path:  a.de.path,
		enum:  &enumContext{name: a.name, tag: a.tag},
	}
	return a.tag, &variantAccess{de: payload}, nil
}

type variantAccess struct {
	de *eventDeserializer
}

func (a *variantAccess) UnitVariant() error {
	return a.de.DeserializeUnit(unitVisitor{BaseVisitor{Expect: "unit variant"}})
}

func (a *variantAccess) Payload() Deserializer {
	return a.de
}

// unitVariantAccess serves the bare-scalar form, where an untagged
// non-empty scalar is the variant name and there is no payload.
type unitVariantAccess struct {
	de *eventDeserializer
}

func (a *unitVariantAccess) Variant() (string, VariantAccess, error) {
	name := newStringVisitor()
	if err := a.de.DeserializeIdentifier(&name); err != nil {
		return "", nil, err
	}
	return name.value, a, nil
}

func (a *unitVariantAccess) UnitVariant() error {
	return nil
}

func (a *unitVariantAccess) Payload() Deserializer {
	// No payload events exist; reads see an absent value.
	pos, jumps := 0, 0
	return &eventDeserializer{
		doc:   voidDocument,
		pos:   &pos,
		jumps: &jumps,
		depth: maxRecursion,
		path:  rootPath,
	}
}

var voidDocument = &Document{events: []event{{kind: eventVoid}}}

type unitVisitor struct {
	BaseVisitor
}

func (unitVisitor) VisitNull() error { return nil }
func (unitVisitor) VisitNone() error { return nil }

type stringVisitor struct {
	BaseVisitor
	value string
}

func newStringVisitor() stringVisitor {
	return stringVisitor{BaseVisitor: BaseVisitor{Expect: "a string"}}
}

func (v *stringVisitor) VisitString(s string) error {
	v.value = s
	return nil
}

// ignoreVisitor accepts the unit result of DeserializeIgnoredAny.
type ignoreVisitor struct{}

func (ignoreVisitor) Expecting() string                    { return "ignored value" }
func (ignoreVisitor) VisitNull() error                     { return nil }
func (ignoreVisitor) VisitBool(bool) error                 { return nil }
func (ignoreVisitor) VisitInt(int64) error                 { return nil }
func (ignoreVisitor) VisitUint(uint64) error               { return nil }
func (ignoreVisitor) VisitFloat(float64) error             { return nil }
func (ignoreVisitor) VisitString(string) error             { return nil }
func (ignoreVisitor) VisitNone() error                     { return nil }
func (ignoreVisitor) VisitSome(Deserializer) error         { return nil }
func (ignoreVisitor) VisitNewtypeStruct(Deserializer) error { return nil }
func (ignoreVisitor) VisitSeq(SeqAccess) error             { return nil }
func (ignoreVisitor) VisitMap(MapAccess) error             { return nil }
func (ignoreVisitor) VisitEnum(EnumAccess) error           { return nil }
