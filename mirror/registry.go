package mirror

import "reflect"

// TypeData is one capability record attached to a type registration. The
// name keys the record inside the registration; registering a second record
// under the same name silently replaces the first.
type TypeData interface {
	TypeDataName() string
}

// TypeRegistration is the per-type record produced by generated registration
// builders: the shape description plus every capability the type opted into.
type TypeRegistration struct {
	info  *TypeInfo
	data  map[string]TypeData
	order []string
}

// NewTypeRegistration starts a registration around a shape description.
func NewTypeRegistration(info *TypeInfo) *TypeRegistration {
	return &TypeRegistration{
		info: info,
		data: make(map[string]TypeData),
	}
}

// Info returns the registered type's shape description.
func (r *TypeRegistration) Info() *TypeInfo { return r.info }

// Insert attaches a capability record, keyed by its name. A record under an
// already-present name overwrites the previous one in place, keeping the
// original insertion position.
func (r *TypeRegistration) Insert(data TypeData) {
	name := data.TypeDataName()
	if _, ok := r.data[name]; !ok {
		r.order = append(r.order, name)
	}

	r.data[name] = data
}

// Data looks a capability record up by name.
func (r *TypeRegistration) Data(name string) (TypeData, bool) {
	d, ok := r.data[name]

	return d, ok
}

// DataNames returns the capability names in insertion order.
func (r *TypeRegistration) DataNames() []string { return r.order }

// DataFor looks a typed capability record up on a registration.
func DataFor[D TypeData](r *TypeRegistration, name string) (D, bool) {
	d, ok := r.data[name]
	if !ok {
		var zero D

		return zero, false
	}

	typed, ok := d.(D)

	return typed, ok
}

// FromPtrName keys the pointer-conversion capability.
const FromPtrName = "FromPtr"

// FromPtr converts an untyped pointer to a registered type into its
// reflected view. It is attached to every registration so that erased
// storage can re-enter the reflection system.
type FromPtr struct {
	fn func(ptr any) (Reflected, bool)
}

// FromPtrFor builds the pointer-conversion capability for one concrete type.
func FromPtrFor[T any](adapt func(*T) Reflected) FromPtr {
	return FromPtr{fn: func(ptr any) (Reflected, bool) {
		p, ok := ptr.(*T)
		if !ok {
			return nil, false
		}

		return adapt(p), true
	}}
}

// TypeDataName implements TypeData.
func (FromPtr) TypeDataName() string { return FromPtrName }

// Reflect converts ptr, which must be a pointer to the registered type.
func (f FromPtr) Reflect(ptr any) (Reflected, bool) { return f.fn(ptr) }

// SerializationDataName keys the serialization-exclusion capability.
const SerializationDataName = "SerializationData"

// SerializationData records which field indices serializers must skip. It is
// attached whenever at least one field carries the ignore tag.
type SerializationData struct {
	ignored map[int]struct{}
}

// NewSerializationData records the ignored declaration indices.
func NewSerializationData(indices ...int) SerializationData {
	ignored := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		ignored[i] = struct{}{}
	}

	return SerializationData{ignored: ignored}
}

// TypeDataName implements TypeData.
func (SerializationData) TypeDataName() string { return SerializationDataName }

// IsIgnored reports whether the field at the declaration index is excluded.
func (d SerializationData) IsIgnored(index int) bool {
	_, ok := d.ignored[index]

	return ok
}

// NumIgnored returns the excluded field count.
func (d SerializationData) NumIgnored() int { return len(d.ignored) }

// DefaultValueName keys the default-construction capability.
const DefaultValueName = "DefaultValue"

// DefaultValue produces a freshly-constructed instance of the registered
// type, used as the base for reconstruction with missing fields.
type DefaultValue struct {
	Make func() any
}

// TypeDataName implements TypeData.
func (DefaultValue) TypeDataName() string { return DefaultValueName }

// MarkerData is the capability attached for a bare marker attribute when no
// richer constructor is registered for its name.
type MarkerData struct {
	Name string
	Type reflect.Type
}

// TypeDataName implements TypeData.
func (m MarkerData) TypeDataName() string { return m.Name }
