package mirror

import "reflect"

// TypeInfo is the compile-time-known shape description of a mirrored type.
// Exactly one of the shape fields matching Kind is populated.
type TypeInfo struct {
	kind  Kind
	path  TypePath
	rtype reflect.Type

	strct       *StructInfo
	tupleStruct *TupleStructInfo
	enum        *EnumInfo
	value       *ValueInfo
}

// NewStructTypeInfo describes a named-field struct shape. Unit-like types
// pass an empty field list.
func NewStructTypeInfo(path TypePath, rtype reflect.Type, fields ...NamedField) *TypeInfo {
	byName := make(map[string]int, len(fields))
	for i, f := range fields {
		byName[f.Name] = i
	}

	return &TypeInfo{
		kind:  KindStruct,
		path:  path,
		rtype: rtype,
		strct: &StructInfo{fields: fields, byName: byName},
	}
}

// NewTupleStructTypeInfo describes a positional-field struct shape.
func NewTupleStructTypeInfo(path TypePath, rtype reflect.Type, fields ...UnnamedField) *TypeInfo {
	return &TypeInfo{
		kind:        KindTupleStruct,
		path:        path,
		rtype:       rtype,
		tupleStruct: &TupleStructInfo{fields: fields},
	}
}

// NewEnumTypeInfo describes a closed sum shape with its full variant set.
func NewEnumTypeInfo(path TypePath, rtype reflect.Type, variants ...VariantInfo) *TypeInfo {
	byName := make(map[string]int, len(variants))
	for i, v := range variants {
		byName[v.Name] = i
	}

	return &TypeInfo{
		kind:  KindEnum,
		path:  path,
		rtype: rtype,
		enum:  &EnumInfo{variants: variants, byName: byName},
	}
}

// NewValueTypeInfo describes an opaque value shape.
func NewValueTypeInfo(path TypePath, rtype reflect.Type) *TypeInfo {
	return &TypeInfo{
		kind:  KindValue,
		path:  path,
		rtype: rtype,
		value: &ValueInfo{},
	}
}

// Kind returns the described shape kind.
func (t *TypeInfo) Kind() Kind { return t.kind }

// Path returns the type's path identity.
func (t *TypeInfo) Path() TypePath { return t.path }

// Type returns the underlying Go type.
func (t *TypeInfo) Type() reflect.Type { return t.rtype }

// AsStruct returns the struct shape description.
func (t *TypeInfo) AsStruct() (*StructInfo, bool) { return t.strct, t.kind == KindStruct }

// AsTupleStruct returns the tuple struct shape description.
func (t *TypeInfo) AsTupleStruct() (*TupleStructInfo, bool) {
	return t.tupleStruct, t.kind == KindTupleStruct
}

// AsEnum returns the enum shape description.
func (t *TypeInfo) AsEnum() (*EnumInfo, bool) { return t.enum, t.kind == KindEnum }

// AsValue returns the opaque value shape description.
func (t *TypeInfo) AsValue() (*ValueInfo, bool) { return t.value, t.kind == KindValue }

// NamedField describes one field of a struct shape or a named variant.
type NamedField struct {
	Name string
	Type reflect.Type

	// Index is the declaration position.
	Index int

	// Docs carries the field's doc comment, empty when absent.
	Docs string
}

// UnnamedField describes one positional field.
type UnnamedField struct {
	Type  reflect.Type
	Index int
}

// StructInfo lists a struct shape's fields in declaration order.
type StructInfo struct {
	fields []NamedField
	byName map[string]int
}

// Field looks a field up by name.
func (s *StructInfo) Field(name string) (NamedField, bool) {
	i, ok := s.byName[name]
	if !ok {
		return NamedField{}, false
	}

	return s.fields[i], true
}

// FieldAt returns the field at the declaration index.
func (s *StructInfo) FieldAt(index int) (NamedField, bool) {
	if index < 0 || index >= len(s.fields) {
		return NamedField{}, false
	}

	return s.fields[index], true
}

// NumFields returns the field count.
func (s *StructInfo) NumFields() int { return len(s.fields) }

// Fields returns the fields in declaration order.
func (s *StructInfo) Fields() []NamedField { return s.fields }

// TupleStructInfo lists a tuple struct shape's fields in positional order.
type TupleStructInfo struct {
	fields []UnnamedField
}

// FieldAt returns the field at the given position.
func (s *TupleStructInfo) FieldAt(index int) (UnnamedField, bool) {
	if index < 0 || index >= len(s.fields) {
		return UnnamedField{}, false
	}

	return s.fields[index], true
}

// NumFields returns the field count.
func (s *TupleStructInfo) NumFields() int { return len(s.fields) }

// Fields returns the fields in positional order.
func (s *TupleStructInfo) Fields() []UnnamedField { return s.fields }

// VariantInfo describes one variant of an enum shape.
type VariantInfo struct {
	Name string
	Kind VariantKind

	// Named holds the fields of a named variant.
	Named []NamedField

	// Unnamed holds the fields of an unnamed variant.
	Unnamed []UnnamedField
}

// EnumInfo lists an enum shape's variants.
type EnumInfo struct {
	variants []VariantInfo
	byName   map[string]int
}

// Variant looks a variant up by name.
func (e *EnumInfo) Variant(name string) (VariantInfo, bool) {
	i, ok := e.byName[name]
	if !ok {
		return VariantInfo{}, false
	}

	return e.variants[i], true
}

// NumVariants returns the variant count.
func (e *EnumInfo) NumVariants() int { return len(e.variants) }

// Variants returns the variants in declaration order.
func (e *EnumInfo) Variants() []VariantInfo { return e.variants }

// ValueInfo describes an opaque value shape. It carries no structure; the
// type participates in reflection as an indivisible unit.
type ValueInfo struct{}
