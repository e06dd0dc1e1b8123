package mirror

import (
	"iter"
	"strings"
)

type dynField struct {
	name  string
	value Reflected
}

// DynamicStruct is the loosely-typed stand-in for struct shapes. It is built
// field by field at runtime and compares equal to any struct view with
// matching fields, concrete or dynamic.
type DynamicStruct struct {
	name   string
	fields []dynField
	byName map[string]int
}

// NewDynamicStruct creates an empty dynamic struct.
func NewDynamicStruct() *DynamicStruct {
	return &DynamicStruct{byName: make(map[string]int)}
}

// SetName records the type path of the type this value stands in for.
func (d *DynamicStruct) SetName(name string) { d.name = name }

// Insert adds a field, replacing the value if the name is already present.
func (d *DynamicStruct) Insert(name string, value Reflected) {
	if i, ok := d.byName[name]; ok {
		d.fields[i].value = value

		return
	}

	d.byName[name] = len(d.fields)
	d.fields = append(d.fields, dynField{name: name, value: value})
}

// TypePath returns the represented type's path, "" when unset.
func (d *DynamicStruct) TypePath() string { return d.name }

// TypeInfo returns nil: dynamic values carry no compile-time shape.
func (d *DynamicStruct) TypeInfo() *TypeInfo { return nil }

// Ref returns the struct view.
func (d *DynamicStruct) Ref() Ref { return StructRef(d) }

// Unwrap returns nil: there is no underlying concrete value.
func (d *DynamicStruct) Unwrap() any { return nil }

// CloneDynamic copies the value, cloning each field.
func (d *DynamicStruct) CloneDynamic() Reflected {
	out := NewDynamicStruct()
	out.name = d.name

	for _, f := range d.fields {
		out.Insert(f.name, f.value.CloneDynamic())
	}

	return out
}

// ReflectEqual compares structurally against any struct view.
func (d *DynamicStruct) ReflectEqual(other Reflected) (bool, bool) {
	os, ok := other.Ref().AsStruct()
	if !ok {
		return false, true
	}

	return StructsEqual(d, os), true
}

// ReflectHash reports unhashable: dynamic values never opt into hashing.
func (d *DynamicStruct) ReflectHash() (uint64, bool) { return 0, false }

// DebugString renders the fields in insertion order.
func (d *DynamicStruct) DebugString() string {
	var b strings.Builder

	b.WriteString("DynamicStruct(")
	b.WriteString(d.name)
	b.WriteString(") {")

	for _, f := range d.fields {
		b.WriteString("\n  ")
		b.WriteString(f.name)
		b.WriteString(": ")
		b.WriteString(strings.ReplaceAll(f.value.DebugString(), "\n", "\n  "))
	}

	if len(d.fields) > 0 {
		b.WriteString("\n")
	}

	b.WriteString("}")

	return b.String()
}

// Field implements Struct.
func (d *DynamicStruct) Field(name string) (Reflected, bool) {
	i, ok := d.byName[name]
	if !ok {
		return nil, false
	}

	return d.fields[i].value, true
}

// FieldAt implements Struct.
func (d *DynamicStruct) FieldAt(index int) (Reflected, bool) {
	if index < 0 || index >= len(d.fields) {
		return nil, false
	}

	return d.fields[index].value, true
}

// SetField implements Struct. Unlike Insert it never adds a field.
func (d *DynamicStruct) SetField(name string, value Reflected) bool {
	i, ok := d.byName[name]
	if !ok {
		return false
	}

	d.fields[i].value = value

	return true
}

// NameAt implements Struct.
func (d *DynamicStruct) NameAt(index int) (string, bool) {
	if index < 0 || index >= len(d.fields) {
		return "", false
	}

	return d.fields[index].name, true
}

// NumFields implements Struct.
func (d *DynamicStruct) NumFields() int { return len(d.fields) }

// Fields implements Struct.
func (d *DynamicStruct) Fields() iter.Seq2[string, Reflected] {
	return func(yield func(string, Reflected) bool) {
		for _, f := range d.fields {
			if !yield(f.name, f.value) {
				return
			}
		}
	}
}

// DynamicTupleStruct is the loosely-typed stand-in for tuple struct shapes.
type DynamicTupleStruct struct {
	name   string
	fields []Reflected
}

// NewDynamicTupleStruct creates an empty dynamic tuple struct.
func NewDynamicTupleStruct() *DynamicTupleStruct {
	return &DynamicTupleStruct{}
}

// SetName records the type path of the type this value stands in for.
func (d *DynamicTupleStruct) SetName(name string) { d.name = name }

// Insert appends a field.
func (d *DynamicTupleStruct) Insert(value Reflected) {
	d.fields = append(d.fields, value)
}

// TypePath returns the represented type's path, "" when unset.
func (d *DynamicTupleStruct) TypePath() string { return d.name }

// TypeInfo returns nil: dynamic values carry no compile-time shape.
func (d *DynamicTupleStruct) TypeInfo() *TypeInfo { return nil }

// Ref returns the tuple struct view.
func (d *DynamicTupleStruct) Ref() Ref { return TupleStructRef(d) }

// Unwrap returns nil: there is no underlying concrete value.
func (d *DynamicTupleStruct) Unwrap() any { return nil }

// CloneDynamic copies the value, cloning each field.
func (d *DynamicTupleStruct) CloneDynamic() Reflected {
	out := NewDynamicTupleStruct()
	out.name = d.name

	for _, f := range d.fields {
		out.Insert(f.CloneDynamic())
	}

	return out
}

// ReflectEqual compares structurally against any tuple struct view.
func (d *DynamicTupleStruct) ReflectEqual(other Reflected) (bool, bool) {
	ot, ok := other.Ref().AsTupleStruct()
	if !ok {
		return false, true
	}

	return TupleStructsEqual(d, ot), true
}

// ReflectHash reports unhashable.
func (d *DynamicTupleStruct) ReflectHash() (uint64, bool) { return 0, false }

// DebugString renders the fields in positional order.
func (d *DynamicTupleStruct) DebugString() string {
	var b strings.Builder

	b.WriteString("DynamicTupleStruct(")
	b.WriteString(d.name)
	b.WriteString(") {")

	for _, f := range d.fields {
		b.WriteString("\n  ")
		b.WriteString(strings.ReplaceAll(f.DebugString(), "\n", "\n  "))
	}

	if len(d.fields) > 0 {
		b.WriteString("\n")
	}

	b.WriteString("}")

	return b.String()
}

// Field implements TupleStruct.
func (d *DynamicTupleStruct) Field(index int) (Reflected, bool) {
	if index < 0 || index >= len(d.fields) {
		return nil, false
	}

	return d.fields[index], true
}

// SetField implements TupleStruct.
func (d *DynamicTupleStruct) SetField(index int, value Reflected) bool {
	if index < 0 || index >= len(d.fields) {
		return false
	}

	d.fields[index] = value

	return true
}

// NumFields implements TupleStruct.
func (d *DynamicTupleStruct) NumFields() int { return len(d.fields) }

// Fields implements TupleStruct.
func (d *DynamicTupleStruct) Fields() iter.Seq2[int, Reflected] {
	return func(yield func(int, Reflected) bool) {
		for i, f := range d.fields {
			if !yield(i, f) {
				return
			}
		}
	}
}

// DynamicEnum is the loosely-typed stand-in for enum shapes: a variant name
// plus that variant's fields.
type DynamicEnum struct {
	name    string
	variant string
	vkind   VariantKind
	fields  []dynField
	byName  map[string]int
}

// NewDynamicEnum creates a dynamic enum with no active variant.
func NewDynamicEnum() *DynamicEnum {
	return &DynamicEnum{byName: make(map[string]int)}
}

// SetName records the type path of the enum this value stands in for.
func (d *DynamicEnum) SetName(name string) { d.name = name }

// SetVariant selects the active variant, discarding any previous fields.
func (d *DynamicEnum) SetVariant(name string, kind VariantKind) {
	d.variant = name
	d.vkind = kind
	d.fields = nil
	d.byName = make(map[string]int)
}

// InsertField adds a field to the active variant. The name is empty for
// unnamed variants.
func (d *DynamicEnum) InsertField(name string, value Reflected) {
	if name != "" {
		if i, ok := d.byName[name]; ok {
			d.fields[i].value = value

			return
		}

		d.byName[name] = len(d.fields)
	}

	d.fields = append(d.fields, dynField{name: name, value: value})
}

// TypePath returns the represented enum's path, "" when unset.
func (d *DynamicEnum) TypePath() string { return d.name }

// TypeInfo returns nil: dynamic values carry no compile-time shape.
func (d *DynamicEnum) TypeInfo() *TypeInfo { return nil }

// Ref returns the enum view.
func (d *DynamicEnum) Ref() Ref { return EnumRef(d) }

// Unwrap returns nil: there is no underlying concrete value.
func (d *DynamicEnum) Unwrap() any { return nil }

// CloneDynamic copies the value, cloning each field.
func (d *DynamicEnum) CloneDynamic() Reflected {
	out := NewDynamicEnum()
	out.name = d.name
	out.SetVariant(d.variant, d.vkind)

	for _, f := range d.fields {
		out.InsertField(f.name, f.value.CloneDynamic())
	}

	return out
}

// ReflectEqual compares structurally against any enum view.
func (d *DynamicEnum) ReflectEqual(other Reflected) (bool, bool) {
	oe, ok := other.Ref().AsEnum()
	if !ok {
		return false, true
	}

	return EnumsEqual(d, oe), true
}

// ReflectHash reports unhashable.
func (d *DynamicEnum) ReflectHash() (uint64, bool) { return 0, false }

// DebugString renders the active variant and its fields.
func (d *DynamicEnum) DebugString() string {
	var b strings.Builder

	b.WriteString("DynamicEnum(")
	b.WriteString(d.name)
	b.WriteString("::")
	b.WriteString(d.variant)
	b.WriteString(") {")

	for _, f := range d.fields {
		b.WriteString("\n  ")

		if f.name != "" {
			b.WriteString(f.name)
			b.WriteString(": ")
		}

		b.WriteString(strings.ReplaceAll(f.value.DebugString(), "\n", "\n  "))
	}

	if len(d.fields) > 0 {
		b.WriteString("\n")
	}

	b.WriteString("}")

	return b.String()
}

// VariantName implements Enum.
func (d *DynamicEnum) VariantName() string { return d.variant }

// VariantKind implements Enum.
func (d *DynamicEnum) VariantKind() VariantKind { return d.vkind }

// Field implements Enum.
func (d *DynamicEnum) Field(name string) (Reflected, bool) {
	i, ok := d.byName[name]
	if !ok {
		return nil, false
	}

	return d.fields[i].value, true
}

// FieldAt implements Enum.
func (d *DynamicEnum) FieldAt(index int) (Reflected, bool) {
	if index < 0 || index >= len(d.fields) {
		return nil, false
	}

	return d.fields[index].value, true
}

// NumFields implements Enum.
func (d *DynamicEnum) NumFields() int { return len(d.fields) }

// Fields implements Enum.
func (d *DynamicEnum) Fields() iter.Seq2[string, Reflected] {
	return func(yield func(string, Reflected) bool) {
		for _, f := range d.fields {
			if !yield(f.name, f.value) {
				return
			}
		}
	}
}
