package mirror

import (
	"reflect"
	"sync"
)

// InfoCell caches one lazily-built value for a non-generic type. Generated
// TypeInfo and TypePath accessors build their result on first call and serve
// the cached copy afterwards.
type InfoCell[V any] struct {
	once  sync.Once
	value V
}

// GetOrInit returns the cached value, building it on first use. Concurrent
// callers during the first call block until build completes; build runs once.
func (c *InfoCell[V]) GetOrInit(build func() V) V {
	c.once.Do(func() {
		c.value = build()
	})

	return c.value
}

// GenericInfoCell caches one value per instantiation of a generic type,
// keyed by the instantiated reflect.Type. Distinct instantiations never
// share an entry.
type GenericInfoCell[V any] struct {
	entries sync.Map // reflect.Type -> V
}

// GetOrInsert returns the value cached for key, building and publishing it on
// first use. When two goroutines race on the same fresh key both may run
// build, but all callers observe the same stored value.
func (c *GenericInfoCell[V]) GetOrInsert(key reflect.Type, build func() V) V {
	if v, ok := c.entries.Load(key); ok {
		return v.(V)
	}

	v, _ := c.entries.LoadOrStore(key, build())

	return v.(V)
}
