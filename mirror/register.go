package mirror

import (
	"reflect"
	"sync"
)

// Registration bundles everything generated code publishes for one type.
type Registration[T any] struct {
	// Adapt wraps a pointer to the concrete value in its reflected view.
	Adapt func(*T) Reflected

	// FromReflected reconstructs a concrete value from any reflected source
	// of matching shape. Nil when the type opted out of reconstruction.
	FromReflected func(Reflected) (T, bool)

	// Build produces the type's capability registration. Nil when the type
	// only participates through its adapter.
	Build func() *TypeRegistration
}

type registryEntry struct {
	adapt func(any) (Reflected, bool)
	from  func(Reflected) (any, bool)

	buildOnce sync.Once
	build     func() *TypeRegistration
	reg       *TypeRegistration
}

// Registry maps concrete Go types to their published reflection entries.
// The zero value is not usable; use NewRegistry or the package-level default.
type Registry struct {
	mu      sync.RWMutex
	entries map[reflect.Type]*registryEntry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[reflect.Type]*registryEntry)}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry that generated init
// functions publish into.
func DefaultRegistry() *Registry { return defaultRegistry }

func registerIn[T any](r *Registry, reg Registration[T]) {
	entry := &registryEntry{build: reg.Build}

	if reg.Adapt != nil {
		adapt := reg.Adapt
		entry.adapt = func(ptr any) (Reflected, bool) {
			p, ok := ptr.(*T)
			if !ok {
				return nil, false
			}

			return adapt(p), true
		}
	}

	if reg.FromReflected != nil {
		from := reg.FromReflected
		entry.from = func(v Reflected) (any, bool) {
			out, ok := from(v)

			return out, ok
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-registration replaces the previous entry wholesale.
	r.entries[reflect.TypeFor[T]()] = entry
}

func (r *Registry) lookup(t reflect.Type) (*registryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[t]

	return e, ok
}

// Register publishes a type's reflection entry into the default registry.
// Generated code calls this from init.
func Register[T any](reg Registration[T]) {
	registerIn(defaultRegistry, reg)
}

// Reflect wraps a pointer to a registered type in its reflected view. The
// second result is false when ptr is not a pointer or its element type has
// no registered adapter.
func Reflect(ptr any) (Reflected, bool) {
	return ReflectIn(defaultRegistry, ptr)
}

// ReflectIn is Reflect against an explicit registry.
func ReflectIn(r *Registry, ptr any) (Reflected, bool) {
	t := reflect.TypeOf(ptr)
	if t == nil || t.Kind() != reflect.Pointer {
		return nil, false
	}

	e, ok := r.lookup(t.Elem())
	if !ok || e.adapt == nil {
		return nil, false
	}

	return e.adapt(ptr)
}

// FieldValue wraps a pointer to a field, preferring the field type's
// registered adapter and falling back to an opaque value view. Generated
// accessors route every field access through it.
func FieldValue[T any](ptr *T) Reflected {
	if r, ok := Reflect(ptr); ok {
		return r
	}

	return ValueAt(ptr)
}

// FromReflected reconstructs a concrete T from a reflected source. It tries
// the registered reconstruction function first, then a direct unwrap of the
// source's concrete value.
func FromReflected[T any](v Reflected) (T, bool) {
	return FromReflectedIn[T](defaultRegistry, v)
}

// FromReflectedIn is FromReflected against an explicit registry.
func FromReflectedIn[T any](r *Registry, v Reflected) (T, bool) {
	if e, ok := r.lookup(reflect.TypeFor[T]()); ok && e.from != nil {
		if out, ok := e.from(v); ok {
			return out.(T), true
		}
	}

	if out, ok := v.Unwrap().(T); ok {
		return out, true
	}

	var zero T

	return zero, false
}

// RegistrationFor returns the capability registration published for T,
// building it on first request.
func RegistrationFor[T any]() (*TypeRegistration, bool) {
	return RegistrationIn[T](defaultRegistry)
}

// RegistrationIn is RegistrationFor against an explicit registry.
func RegistrationIn[T any](r *Registry) (*TypeRegistration, bool) {
	e, ok := r.lookup(reflect.TypeFor[T]())
	if !ok || e.build == nil {
		return nil, false
	}

	e.buildOnce.Do(func() {
		e.reg = e.build()
	})

	return e.reg, true
}

var typeDataCtors sync.Map // string -> func(reflect.Type) TypeData

// RegisterTypeDataCtor installs a constructor for marker capabilities with
// the given name. Absent a constructor, markers register as [MarkerData].
func RegisterTypeDataCtor(name string, ctor func(reflect.Type) TypeData) {
	typeDataCtors.Store(name, ctor)
}

// TypeDataFor builds the capability record registered under name for type T.
// Generated registration builders call it once per marker attribute, in the
// attribute's registration order.
func TypeDataFor[T any](name string) TypeData {
	t := reflect.TypeFor[T]()

	if ctor, ok := typeDataCtors.Load(name); ok {
		return ctor.(func(reflect.Type) TypeData)(t)
	}

	return MarkerData{Name: name, Type: t}
}
