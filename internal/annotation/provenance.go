package annotation

import "mirror-generator/internal/common"

// Derive identifies which generation pass is consuming the attributes.
type Derive int

const (
	// DeriveReflect is the full mirror derive.
	DeriveReflect Derive = iota
	// DeriveFromReflect generates only the reconstruction implementation.
	DeriveFromReflect
	// DeriveTypePath generates only the type identity implementation.
	DeriveTypePath
)

// Source identifies where the annotated declaration comes from.
type Source int

const (
	// SourceLocal is a type defined by the package being generated.
	SourceLocal Source = iota
	// SourceExtern is a foreign type pulled in through a type alias.
	SourceExtern
)

// TypeKind is the reflected shape of a declaration.
type TypeKind int

const (
	KindUnknown TypeKind = iota
	KindStruct
	KindTupleStruct
	KindUnitStruct
	KindEnum
	KindValue
)

// String returns a human-readable shape name.
func (k TypeKind) String() string {
	switch k {
	case KindStruct:
		return "struct"
	case KindTupleStruct:
		return "tuple struct"
	case KindUnitStruct:
		return "unit struct"
	case KindEnum:
		return "enum"
	case KindValue:
		return "value"
	default:
		return common.UnknownStr
	}
}

// Provenance describes the context an attribute list is parsed in: which
// derive is running, what shape is being derived, and whether the type is
// locally defined. It gates which attributes are legal.
type Provenance struct {
	Derive Derive
	Source Source
	Kind   TypeKind
}
