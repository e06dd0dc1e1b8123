package mirror

import "reflect"

// valueMirror is the reflected view of a value with no registered adapter:
// it participates as an indivisible opaque unit.
type valueMirror struct {
	v any
}

// ValueOf wraps a concrete value in an opaque reflected view. Primitives and
// unregistered field types enter the reflection system through it.
func ValueOf(v any) Reflected { return valueMirror{v: v} }

// ValueAt is ValueOf over the pointed-to value.
func ValueAt[T any](ptr *T) Reflected { return valueMirror{v: *ptr} }

func (m valueMirror) TypePath() string {
	t := reflect.TypeOf(m.v)
	if t == nil {
		return "nil"
	}

	return t.String()
}

func (m valueMirror) TypeInfo() *TypeInfo { return nil }

func (m valueMirror) Ref() Ref { return ValueRef(m) }

func (m valueMirror) Unwrap() any { return m.v }

func (m valueMirror) CloneDynamic() Reflected { return valueMirror{v: m.v} }

func (m valueMirror) ReflectEqual(other Reflected) (bool, bool) {
	return ValuesEqual(m, other), true
}

func (m valueMirror) ReflectHash() (uint64, bool) {
	return Hash(m.TypePath(), m.v)
}

func (m valueMirror) DebugString() string { return DebugString(m.v) }
