package mirror

import "iter"

// Reflected is the core contract every mirrored value satisfies, whether it
// wraps a concrete type through a generated adapter or is one of the dynamic
// stand-ins.
//
// ReflectEqual and ReflectHash report a second boolean: false means the type
// did not opt into the behavior, and the caller should fall back to the
// structural helpers ([StructsEqual] and friends) or treat the value as
// unhashable.
type Reflected interface {
	// TypePath returns the stable fully-qualified type path. Dynamic values
	// return the path of the type they stand in for, or "" when unset.
	TypePath() string

	// TypeInfo returns the cached shape description, nil for dynamic values.
	TypeInfo() *TypeInfo

	// Ref returns the kind-discriminated view of this value.
	Ref() Ref

	// Unwrap returns the underlying concrete value, nil for dynamic values.
	Unwrap() any

	// CloneDynamic copies the value into its loosely-typed representation.
	CloneDynamic() Reflected

	// ReflectEqual compares against another reflected value if the type
	// registered an equality behavior.
	ReflectEqual(other Reflected) (equal, ok bool)

	// ReflectHash produces a stable hash if the type registered a hashing
	// behavior.
	ReflectHash() (hash uint64, ok bool)

	// DebugString renders the value for diagnostics.
	DebugString() string
}

// Struct is the capability view over named-field values. Unit-like types
// (zero fields) implement it too, with NumFields reporting zero.
type Struct interface {
	Reflected

	// Field returns the value of the field with the given name.
	Field(name string) (Reflected, bool)

	// FieldAt returns the value of the field at the declaration index.
	FieldAt(index int) (Reflected, bool)

	// SetField replaces the field with the given name. It reports false when
	// the field does not exist or the new value cannot be converted to the
	// field's type.
	SetField(name string, value Reflected) bool

	// NameAt returns the name of the field at the declaration index.
	NameAt(index int) (string, bool)

	// NumFields returns the field count.
	NumFields() int

	// Fields iterates fields in declaration order.
	Fields() iter.Seq2[string, Reflected]
}

// TupleStruct is the capability view over positional-field values.
type TupleStruct interface {
	Reflected

	// Field returns the value of the field at the given position.
	Field(index int) (Reflected, bool)

	// SetField replaces the field at the given position.
	SetField(index int, value Reflected) bool

	// NumFields returns the field count.
	NumFields() int

	// Fields iterates fields in positional order.
	Fields() iter.Seq2[int, Reflected]
}

// Tuple is the capability view over anonymous fixed-arity sequences.
type Tuple interface {
	Reflected

	Field(index int) (Reflected, bool)
	NumFields() int
	Fields() iter.Seq2[int, Reflected]
}

// List is the capability view over growable ordered sequences.
type List interface {
	Reflected

	Get(index int) (Reflected, bool)
	Len() int
	Append(value Reflected)
	Items() iter.Seq2[int, Reflected]
}

// Array is the capability view over fixed-length ordered sequences.
type Array interface {
	Reflected

	Get(index int) (Reflected, bool)
	Len() int
	Items() iter.Seq2[int, Reflected]
}

// Map is the capability view over keyed collections.
type Map interface {
	Reflected

	Get(key Reflected) (Reflected, bool)
	Len() int
	Insert(key, value Reflected)
	Entries() iter.Seq2[Reflected, Reflected]
}

// VariantKind describes the shape of an enum variant.
type VariantKind int

const (
	VariantUnit VariantKind = iota
	VariantNamed
	VariantUnnamed
)

// String returns a human-readable variant kind name.
func (k VariantKind) String() string {
	switch k {
	case VariantUnit:
		return "unit"
	case VariantNamed:
		return "named"
	case VariantUnnamed:
		return "unnamed"
	default:
		return "unknown"
	}
}

// Enum is the capability view over closed sum types: a sealed interface with
// a fixed set of implementing variants.
type Enum interface {
	Reflected

	// VariantName returns the active variant's name.
	VariantName() string

	// VariantKind returns the active variant's shape.
	VariantKind() VariantKind

	// Field returns the value of the named field on a named variant.
	Field(name string) (Reflected, bool)

	// FieldAt returns the value of the field at the given position.
	FieldAt(index int) (Reflected, bool)

	// NumFields returns the active variant's field count.
	NumFields() int

	// Fields iterates the active variant's fields; names are empty for
	// unnamed variants.
	Fields() iter.Seq2[string, Reflected]
}
