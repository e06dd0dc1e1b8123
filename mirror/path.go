package mirror

import "reflect"

// TypePath is the stable identity of a mirrored type.
//
// Path is globally unique and generic-aware: instantiations of a generic type
// embed their argument paths, so Pair[int] and Pair[string] never collide.
type TypePath struct {
	// Path is the fully-qualified path, e.g. "example.com/geo.Point".
	Path string

	// Short is the abbreviated form without the package qualifier, with
	// generic arguments also abbreviated, e.g. "Pair[int, string]".
	Short string

	// Ident is the bare type name, empty for anonymous shapes.
	Ident string

	// Pkg is the import path of the declaring package, empty for primitives
	// and anonymous shapes.
	Pkg string
}

// NamedTypePath builds the path identity of a package-level named type.
func NamedTypePath(pkg, ident string) TypePath {
	return TypePath{
		Path:  pkg + "." + ident,
		Short: ident,
		Ident: ident,
		Pkg:   pkg,
	}
}

// PrimitiveTypePath builds the path identity of a builtin type, whose path
// carries no package qualifier.
func PrimitiveTypePath(name string) TypePath {
	return TypePath{Path: name, Short: name, Ident: name}
}

// PathOf returns the native path identity of T. It backs generated adapters
// for declarations that opted out of the derived stable path, and the
// argument segments of generic instantiation paths.
func PathOf[T any]() string {
	t := reflect.TypeFor[T]()
	if t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}

	return t.String()
}

// GenericTypePath builds the path identity of one instantiation of a generic
// type. args are the instantiated type arguments in declaration order.
func GenericTypePath(pkg, ident string, args ...TypePath) TypePath {
	full := pkg + "." + ident + "["
	short := ident + "["

	for i, a := range args {
		if i > 0 {
			full += ", "
			short += ", "
		}

		full += a.Path
		short += a.Short
	}

	return TypePath{
		Path:  full + "]",
		Short: short + "]",
		Ident: ident,
		Pkg:   pkg,
	}
}
