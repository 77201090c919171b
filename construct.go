// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The reflect adapter between the deserialization protocol and plain Go
// values: visitors that fill reflect.Values, and the struct field metadata
// read from `yaml` tags.

package yaml

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Deserializable lets a type drive the deserialization protocol directly
// instead of being filled by reflection.
type Deserializable interface {
	DeserializeYAML(d Deserializer) error
}

var deserializableType = reflect.TypeOf((*Deserializable)(nil)).Elem()

func construct(d Deserializer, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errMessage("unmarshal target must be a non-nil pointer, got %T", v)
	}
	return constructValue(d, rv.Elem())
}

func constructValue(d Deserializer, out reflect.Value) error {
	if out.Kind() != reflect.Pointer && out.CanAddr() {
		addr := out.Addr()
		if addr.Type().Implements(deserializableType) {
			return addr.Interface().(Deserializable).DeserializeYAML(d)
		}
	}
	switch out.Kind() {
	case reflect.Bool:
		return d.DeserializeBool(newScalarVisitor(out))
	case reflect.Int, reflect.Int64:
		return d.DeserializeInt64(newScalarVisitor(out))
	case reflect.Int8:
		return d.DeserializeInt8(newScalarVisitor(out))
	case reflect.Int16:
		return d.DeserializeInt16(newScalarVisitor(out))
	case reflect.Int32:
		return d.DeserializeInt32(newScalarVisitor(out))
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return d.DeserializeUint64(newScalarVisitor(out))
	case reflect.Uint8:
		return d.DeserializeUint8(newScalarVisitor(out))
	case reflect.Uint16:
		return d.DeserializeUint16(newScalarVisitor(out))
	case reflect.Uint32:
		return d.DeserializeUint32(newScalarVisitor(out))
	case reflect.Float32:
		return d.DeserializeFloat32(newScalarVisitor(out))
	case reflect.Float64:
		return d.DeserializeFloat64(newScalarVisitor(out))
	case reflect.String:
		return d.DeserializeString(newScalarVisitor(out))
	case reflect.Pointer:
		return d.DeserializeOption(&optionVisitor{
			BaseVisitor: BaseVisitor{Expect: "an optional " + out.Type().Elem().String()},
			out:         out,
		})
	case reflect.Slice:
		return d.DeserializeSeq(&seqVisitor{
			BaseVisitor: BaseVisitor{Expect: "a sequence"},
			out:         out,
		})
	case reflect.Array:
		expect := fmt.Sprintf("an array of %d element%s", out.Len(), plural(out.Len()))
		return d.DeserializeTuple(out.Len(), &arrayVisitor{
			BaseVisitor: BaseVisitor{Expect: expect},
			out:         out,
		})
	case reflect.Map:
		return d.DeserializeMap(&mapVisitor{
			BaseVisitor: BaseVisitor{Expect: "a map"},
			out:         out,
		})
	case reflect.Struct:
		t := out.Type()
		meta := cachedFields(t)
		return d.DeserializeStruct(t.Name(), meta.names, &structVisitor{
			BaseVisitor: BaseVisitor{Expect: "struct " + t.Name()},
			out:         out,
			meta:        meta,
		})
	case reflect.Interface:
		if out.NumMethod() == 0 {
			var av anyVisitor
			if err := d.DeserializeAny(&av); err != nil {
				return err
			}
			if av.value == nil {
				out.Set(reflect.Zero(out.Type()))
			} else {
				out.Set(reflect.ValueOf(av.value))
			}
			return nil
		}
	}
	return errMessage("cannot unmarshal into %s", out.Type())
}

// scalarVisitor fills one scalar-kinded reflect.Value, converting across
// the numeric kinds when the value fits.
type scalarVisitor struct {
	BaseVisitor
	out reflect.Value
}

func newScalarVisitor(out reflect.Value) *scalarVisitor {
	var expect string
	switch out.Kind() {
	case reflect.Bool:
		expect = "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		expect = "an integer"
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		expect = "an unsigned integer"
	case reflect.Float32, reflect.Float64:
		expect = "a floating point number"
	case reflect.String:
		expect = "a string"
	default:
		expect = out.Type().String()
	}
	return &scalarVisitor{BaseVisitor: BaseVisitor{Expect: expect}, out: out}
}

func (v *scalarVisitor) VisitBool(b bool) error {
	if v.out.Kind() != reflect.Bool {
		return invalidType(fmt.Sprintf("boolean `%t`", b), v.Expecting())
	}
	v.out.SetBool(b)
	return nil
}

func (v *scalarVisitor) VisitInt(n int64) error {
	switch v.out.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.out.OverflowInt(n) {
			return invalidValue(fmt.Sprintf("integer `%d`", n), v.out.Type().String())
		}
		v.out.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if n < 0 || v.out.OverflowUint(uint64(n)) {
			return invalidValue(fmt.Sprintf("integer `%d`", n), v.out.Type().String())
		}
		v.out.SetUint(uint64(n))
		return nil
	case reflect.Float32, reflect.Float64:
		v.out.SetFloat(float64(n))
		return nil
	}
	return invalidType(fmt.Sprintf("integer `%d`", n), v.Expecting())
}

func (v *scalarVisitor) VisitUint(n uint64) error {
	switch v.out.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n > math.MaxInt64 || v.out.OverflowInt(int64(n)) {
			return invalidValue(fmt.Sprintf("integer `%d`", n), v.out.Type().String())
		}
		v.out.SetInt(int64(n))
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if v.out.OverflowUint(n) {
			return invalidValue(fmt.Sprintf("integer `%d`", n), v.out.Type().String())
		}
		v.out.SetUint(n)
		return nil
	case reflect.Float32, reflect.Float64:
		v.out.SetFloat(float64(n))
		return nil
	}
	return invalidType(fmt.Sprintf("integer `%d`", n), v.Expecting())
}

func (v *scalarVisitor) VisitFloat(f float64) error {
	switch v.out.Kind() {
	case reflect.Float32, reflect.Float64:
		if v.out.OverflowFloat(f) {
			return invalidValue(fmt.Sprintf("floating point `%v`", f), v.out.Type().String())
		}
		v.out.SetFloat(f)
		return nil
	}
	return invalidType(fmt.Sprintf("floating point `%v`", f), v.Expecting())
}

func (v *scalarVisitor) VisitString(s string) error {
	if v.out.Kind() != reflect.String {
		return invalidType(fmt.Sprintf("string %q", s), v.Expecting())
	}
	v.out.SetString(s)
	return nil
}

// optionVisitor fills a pointer: null and absent become nil, anything else
// allocates and recurses.
type optionVisitor struct {
	BaseVisitor
	out reflect.Value
}

func (v *optionVisitor) VisitNull() error {
	v.out.Set(reflect.Zero(v.out.Type()))
	return nil
}

func (v *optionVisitor) VisitNone() error {
	v.out.Set(reflect.Zero(v.out.Type()))
	return nil
}

func (v *optionVisitor) VisitSome(d Deserializer) error {
	p := reflect.New(v.out.Type().Elem())
	if err := constructValue(d, p.Elem()); err != nil {
		return err
	}
	v.out.Set(p)
	return nil
}

type seqVisitor struct {
	BaseVisitor
	out reflect.Value
}

func (v *seqVisitor) VisitSeq(seq SeqAccess) error {
	t := v.out.Type()
	slice := reflect.MakeSlice(t, 0, 0)
	for {
		el, ok, err := seq.NextElement()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		ev := reflect.New(t.Elem()).Elem()
		if err := constructValue(el, ev); err != nil {
			return err
		}
		slice = reflect.Append(slice, ev)
	}
	v.out.Set(slice)
	return nil
}

type arrayVisitor struct {
	BaseVisitor
	out reflect.Value
}

func (v *arrayVisitor) VisitSeq(seq SeqAccess) error {
	n := v.out.Len()
	for i := 0; i < n; i++ {
		el, ok, err := seq.NextElement()
		if err != nil {
			return err
		}
		if !ok {
			return errMessage("invalid length %d, expected %s", i, v.Expecting())
		}
		if err := constructValue(el, v.out.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

type mapVisitor struct {
	BaseVisitor
	out reflect.Value
}

func (v *mapVisitor) VisitNull() error {
	v.out.Set(reflect.Zero(v.out.Type()))
	return nil
}

func (v *mapVisitor) VisitMap(m MapAccess) error {
	t := v.out.Type()
	result := reflect.MakeMap(t)
	for {
		kd, ok, err := m.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		key := reflect.New(t.Key()).Elem()
		if err := constructValue(kd, key); err != nil {
			return err
		}
		vd, err := m.NextValue()
		if err != nil {
			return err
		}
		value := reflect.New(t.Elem()).Elem()
		if err := constructValue(vd, value); err != nil {
			return err
		}
		result.SetMapIndex(key, value)
	}
	v.out.Set(result)
	return nil
}

type structVisitor struct {
	BaseVisitor
	out  reflect.Value
	meta *structMeta
}

func (v *structVisitor) VisitMap(m MapAccess) error {
	for {
		kd, ok, err := m.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		key := newStringVisitor()
		if err := kd.DeserializeIdentifier(&key); err != nil {
			return err
		}
		vd, err := m.NextValue()
		if err != nil {
			return err
		}
		if f, known := v.meta.byName[key.value]; known {
			if err := constructValue(vd, v.out.FieldByIndex(f.index)); err != nil {
				return err
			}
			continue
		}
		if err := vd.DeserializeIgnoredAny(ignoreVisitor{}); err != nil {
			return err
		}
	}
}

// anyVisitor builds the generic representation: nil, bool, int, int64,
// uint64, float64, string, []any, map[string]any, or *TaggedValue.
type anyVisitor struct {
	value any
}

func (v *anyVisitor) Expecting() string { return "any YAML value" }

func (v *anyVisitor) VisitNull() error { v.value = nil; return nil }
func (v *anyVisitor) VisitNone() error { v.value = nil; return nil }

func (v *anyVisitor) VisitBool(b bool) error { v.value = b; return nil }

func (v *anyVisitor) VisitInt(n int64) error {
	if n >= math.MinInt && n <= math.MaxInt {
		v.value = int(n)
	} else {
		v.value = n
	}
	return nil
}

func (v *anyVisitor) VisitUint(n uint64) error {
	if n <= math.MaxInt {
		v.value = int(n)
	} else {
		v.value = n
	}
	return nil
}

func (v *anyVisitor) VisitFloat(f float64) error { v.value = f; return nil }

func (v *anyVisitor) VisitString(s string) error { v.value = s; return nil }

func (v *anyVisitor) VisitSome(d Deserializer) error {
	var inner anyVisitor
	if err := d.DeserializeAny(&inner); err != nil {
		return err
	}
	v.value = inner.value
	return nil
}

func (v *anyVisitor) VisitNewtypeStruct(d Deserializer) error {
	return v.VisitSome(d)
}

func (v *anyVisitor) VisitSeq(seq SeqAccess) error {
	list := []any{}
	for {
		el, ok, err := seq.NextElement()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		var ev anyVisitor
		if err := el.DeserializeAny(&ev); err != nil {
			return err
		}
		list = append(list, ev.value)
	}
	v.value = list
	return nil
}

func (v *anyVisitor) VisitMap(m MapAccess) error {
	result := map[string]any{}
	for {
		kd, ok, err := m.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		var kv anyVisitor
		if err := kd.DeserializeAny(&kv); err != nil {
			return err
		}
		key, isString := kv.value.(string)
		if !isString {
			key = fmt.Sprint(kv.value)
		}
		vd, err := m.NextValue()
		if err != nil {
			return err
		}
		var vv anyVisitor
		if err := vd.DeserializeAny(&vv); err != nil {
			return err
		}
		result[key] = vv.value
	}
	v.value = result
	return nil
}

func (v *anyVisitor) VisitEnum(e EnumAccess) error {
	tag, va, err := e.Variant()
	if err != nil {
		return err
	}
	var payload anyVisitor
	if err := va.Payload().DeserializeAny(&payload); err != nil {
		return err
	}
	v.value = &TaggedValue{Tag: tag, Value: payload.value}
	return nil
}

// Struct field metadata, read once per type from `yaml` tags. The key
// before the first comma renames the field, "-" skips it, and the
// "omitempty" option is honored when marshaling. Unnamed fields default to
// the lowercased field name.
type fieldMeta struct {
	name      string
	index     []int
	omitempty bool
}

type structMeta struct {
	fields []fieldMeta
	byName map[string]fieldMeta
	names  []string
}

var fieldCache sync.Map // reflect.Type -> *structMeta

func cachedFields(t reflect.Type) *structMeta {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.(*structMeta)
	}
	meta := &structMeta{byName: make(map[string]fieldMeta)}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := strings.ToLower(f.Name)
		omitempty := false
		if tag, ok := f.Tag.Lookup("yaml"); ok {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
			for _, opt := range parts[1:] {
				if opt == "omitempty" {
					omitempty = true
				}
			}
		}
		fm := fieldMeta{name: name, index: f.Index, omitempty: omitempty}
		meta.fields = append(meta.fields, fm)
		meta.byName[name] = fm
		meta.names = append(meta.names, name)
	}
	sort.Strings(meta.names)
	fieldCache.Store(t, meta)
	return meta
}
