package mirror

import "reflect"

// valuesEqual compares two reflected field values, preferring a registered
// equality behavior and falling back to a deep structural comparison.
func valuesEqual(a, b Reflected) bool {
	if eq, ok := a.ReflectEqual(b); ok {
		return eq
	}

	return reflect.DeepEqual(a.Unwrap(), b.Unwrap())
}

// StructsEqual compares two struct views field by field. Fields match by
// name; a missing field on either side fails the comparison. It is the
// default body of generated equality methods on struct shapes and accepts
// dynamic stand-ins interchangeably with concrete adapters.
func StructsEqual(a, b Struct) bool {
	if a.NumFields() != b.NumFields() {
		return false
	}

	for name, av := range a.Fields() {
		bv, ok := b.Field(name)
		if !ok || !valuesEqual(av, bv) {
			return false
		}
	}

	return true
}

// TupleStructsEqual compares two tuple struct views position by position.
func TupleStructsEqual(a, b TupleStruct) bool {
	if a.NumFields() != b.NumFields() {
		return false
	}

	for i, av := range a.Fields() {
		bv, ok := b.Field(i)
		if !ok || !valuesEqual(av, bv) {
			return false
		}
	}

	return true
}

// EnumsEqual compares two enum views: the active variants must carry the
// same name and equal fields.
func EnumsEqual(a, b Enum) bool {
	if a.VariantName() != b.VariantName() || a.NumFields() != b.NumFields() {
		return false
	}

	switch a.VariantKind() {
	case VariantNamed:
		for name, av := range a.Fields() {
			bv, ok := b.Field(name)
			if !ok || !valuesEqual(av, bv) {
				return false
			}
		}
	default:
		for i := range a.NumFields() {
			av, _ := a.FieldAt(i)

			bv, ok := b.FieldAt(i)
			if !ok || !valuesEqual(av, bv) {
				return false
			}
		}
	}

	return true
}

// ValuesEqual compares two opaque value views by their concrete contents.
func ValuesEqual(a, b Reflected) bool {
	return reflect.DeepEqual(a.Unwrap(), b.Unwrap())
}
