package mirror

// Kind is the closed set of reflected type shapes.
type Kind int

const (
	KindValue Kind = iota
	KindStruct
	KindTupleStruct
	KindTuple
	KindList
	KindArray
	KindMap
	KindEnum

	// KindTotal is the total number of kinds defined.
	KindTotal = int(iota)
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindStruct:
		return "struct"
	case KindTupleStruct:
		return "tuple struct"
	case KindTuple:
		return "tuple"
	case KindList:
		return "list"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Ref is an immutable enumeration of "kinds" of reflected value.
//
// The kind set is fixed and exhaustively known, so Ref is a closed tagged
// union: exactly one capability view is populated, matching Kind. A Ref is
// obtained via [Reflected.Ref].
type Ref struct {
	kind        Kind
	strct       Struct
	tupleStruct TupleStruct
	tuple       Tuple
	list        List
	array       Array
	mapv        Map
	enum        Enum
	value       Reflected
}

// StructRef wraps a struct view.
func StructRef(s Struct) Ref { return Ref{kind: KindStruct, strct: s} }

// TupleStructRef wraps a tuple struct view.
func TupleStructRef(t TupleStruct) Ref { return Ref{kind: KindTupleStruct, tupleStruct: t} }

// TupleRef wraps a tuple view.
func TupleRef(t Tuple) Ref { return Ref{kind: KindTuple, tuple: t} }

// ListRef wraps a list view.
func ListRef(l List) Ref { return Ref{kind: KindList, list: l} }

// ArrayRef wraps an array view.
func ArrayRef(a Array) Ref { return Ref{kind: KindArray, array: a} }

// MapRef wraps a map view.
func MapRef(m Map) Ref { return Ref{kind: KindMap, mapv: m} }

// EnumRef wraps an enum view.
func EnumRef(e Enum) Ref { return Ref{kind: KindEnum, enum: e} }

// ValueRef wraps an opaque value.
func ValueRef(v Reflected) Ref { return Ref{kind: KindValue, value: v} }

// Kind returns which capability view is populated.
func (r Ref) Kind() Kind { return r.kind }

// AsStruct returns the struct view, if this is a struct.
func (r Ref) AsStruct() (Struct, bool) { return r.strct, r.kind == KindStruct }

// AsTupleStruct returns the tuple struct view, if this is a tuple struct.
func (r Ref) AsTupleStruct() (TupleStruct, bool) { return r.tupleStruct, r.kind == KindTupleStruct }

// AsTuple returns the tuple view, if this is a tuple.
func (r Ref) AsTuple() (Tuple, bool) { return r.tuple, r.kind == KindTuple }

// AsList returns the list view, if this is a list.
func (r Ref) AsList() (List, bool) { return r.list, r.kind == KindList }

// AsArray returns the array view, if this is an array.
func (r Ref) AsArray() (Array, bool) { return r.array, r.kind == KindArray }

// AsMap returns the map view, if this is a map.
func (r Ref) AsMap() (Map, bool) { return r.mapv, r.kind == KindMap }

// AsEnum returns the enum view, if this is an enum.
func (r Ref) AsEnum() (Enum, bool) { return r.enum, r.kind == KindEnum }

// AsValue returns the opaque value view, if this is a value.
func (r Ref) AsValue() (Reflected, bool) { return r.value, r.kind == KindValue }
