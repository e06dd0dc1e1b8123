// Package mirror is the runtime half of the mirror generator: the interface
// hierarchy that generated introspection code targets.
//
// A concrete type annotated with a mirror directive gets a generated adapter
// implementing [Reflected] plus the capability interface matching its shape
// ([Struct], [TupleStruct], or [Enum]), a reconstruction function, and a
// [TypeRegistration] describing its opted-in behaviors. Code that wants to
// inspect values without knowing their concrete types works against these
// interfaces and the [Dynamic*] stand-ins.
//
// The package carries no implementations for specific standard collection
// types; lists, arrays and maps participate only through their interface
// contracts.
package mirror
