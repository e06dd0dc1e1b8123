package analyze

import (
	"go/token"

	"mirror-generator/internal/annotation"
	"mirror-generator/internal/common"
)

// PackageModel is the analyzed form of one loaded package: every annotated
// type in declaration order, plus what the generated file must import.
type PackageModel struct {
	// Path is the package's import path.
	Path string

	// Name is the package's declared name.
	Name string

	// Dir is the package's source directory on disk, empty when the package
	// was analyzed from memory.
	Dir string

	// Types lists the annotated types in declaration order.
	Types []*TypeModel

	// Imports maps import paths to the package names the rendered field
	// types refer to.
	Imports map[string]string
}

// TypeModel is the analyzed form of one annotated type declaration.
type TypeModel struct {
	// Name is the declared identifier.
	Name string

	// Kind is the reflectable shape the declaration mapped to.
	Kind annotation.TypeKind

	// Prov records how the type entered the system.
	Prov annotation.Provenance

	// Attrs is the merged attribute set across every directive line.
	Attrs *annotation.ContainerAttributes

	// CustomPath overrides the derived type path when a typepath directive
	// is present.
	CustomPath string

	// AliasOf is the qualified origin type for non-local declarations,
	// e.g. "ext.Duration". Empty for local types.
	AliasOf string

	// Fields holds struct and tuple struct fields in declaration order.
	Fields []FieldModel

	// Variants holds enum variants in declaration order.
	Variants []VariantModel

	// TypeParams holds the declaration's type parameters, empty for
	// non-generic types.
	TypeParams []TypeParam

	// Ignored collects the declaration indices of serialization-excluded
	// fields.
	Ignored common.BitSet

	// Pos is the declaration's source position.
	Pos token.Position
}

// IsGeneric reports whether the declaration carries type parameters.
func (t *TypeModel) IsGeneric() bool { return len(t.TypeParams) > 0 }

// FieldModel is the analyzed form of one field.
type FieldModel struct {
	// Name is the field identifier; for tuple struct fields it follows the
	// F0..Fn convention.
	Name string

	// Index is the declaration position.
	Index int

	// TypeExpr is the field's type rendered relative to the declaring
	// package.
	TypeExpr string

	// Ignore excludes the field from reflection and serialization.
	Ignore bool

	// Default opts the field into intrinsic-default fallback during
	// reconstruction.
	Default bool

	// DefaultFn names the fallback producer when the default tag carries a
	// function, e.g. `mirror:"default=newUUID"`.
	DefaultFn string

	Pos token.Position
}

// VariantStyle describes the shape of one enum variant.
type VariantStyle int

const (
	VariantStyleUnit VariantStyle = iota
	VariantStyleNamed
	VariantStyleUnnamed
)

// String returns a human-readable variant style name.
func (s VariantStyle) String() string {
	switch s {
	case VariantStyleUnit:
		return "unit"
	case VariantStyleNamed:
		return "named"
	case VariantStyleUnnamed:
		return "unnamed"
	default:
		return common.UnknownStr
	}
}

// VariantModel is the analyzed form of one enum variant: a package-local
// struct implementing the sealed interface.
type VariantModel struct {
	// Name is the variant struct's identifier.
	Name string

	// Style is the variant's field shape.
	Style VariantStyle

	// Fields holds the variant's fields in declaration order.
	Fields []FieldModel

	// PtrOnly is set when only the pointer type implements the sealed
	// interface; generated type switches must match *Name instead of Name.
	PtrOnly bool

	Pos token.Position
}

// TypeParam is one type parameter of a generic declaration.
type TypeParam struct {
	// Name is the parameter identifier.
	Name string

	// Constraint is the declared constraint rendered relative to the
	// declaring package.
	Constraint string
}
