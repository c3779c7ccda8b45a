package atomic

import "sync"

// mt is the concrete implementation of MapTyped[K, V], a thin type-safe
// layer over sync.Map.
type mt[K comparable, V any] struct {
	m *sync.Map
}

func (o *mt[K, V]) Load(key K) (value V, ok bool) {
	v, found := o.m.Load(key)
	if !found {
		return value, false
	}
	value, ok = v.(V)
	return value, ok
}

func (o *mt[K, V]) Store(key K, value V) {
	o.m.Store(key, value)
}

func (o *mt[K, V]) Delete(key K) {
	o.m.Delete(key)
}

func (o *mt[K, V]) Range(f func(key K, value V) bool) {
	o.m.Range(func(k, v any) bool {
		key, kok := k.(K)
		value, vok := v.(V)
		if !kok || !vok {
			return true
		}
		return f(key, value)
	})
}
