// Package atomic wraps sync/atomic.Value and sync.Map with generic,
// type-safe accessors. It is trimmed to the two shapes the connector
// actually stores: a single typed value (the embedded server's liveness
// flag) and a typed concurrent map (the daemon registry, the rejection
// pool's indexed errors).
package atomic

import (
	"sync"
	"sync/atomic"
)

// Value holds a single value of type T behind sync/atomic.Value, with
// default substitution for the zero value on both Load and Store.
type Value[T any] interface {
	// SetDefaultLoad sets the value Load returns before the first Store.
	// Call it before the Value is shared across goroutines.
	SetDefaultLoad(def T)
	// SetDefaultStore sets the value Store substitutes for a zero T.
	// Call it before the Value is shared across goroutines.
	SetDefaultStore(def T)

	// Load returns the current value, or the default load value if
	// nothing has been stored yet.
	Load() (val T)
	// Store sets the current value. A zero T is replaced by the
	// configured default store value.
	Store(val T)
}

// MapTyped is a concurrent map keyed by K holding values of type V,
// backed by sync.Map.
type MapTyped[K comparable, V any] interface {
	Load(key K) (value V, ok bool)
	Store(key K, value V)
	Delete(key K)
	// Range calls f for every entry until f returns false.
	Range(f func(key K, value V) bool)
}

// NewValue returns a Value[T] whose default load and store values are
// the zero value of T.
func NewValue[T any]() Value[T] {
	var zero T
	return NewValueDefault[T](zero, zero)
}

// NewValueDefault returns a Value[T] with the given default load and
// store values.
func NewValueDefault[T any](load, store T) Value[T] {
	o := &val[T]{av: new(atomic.Value), dl: new(atomic.Value), ds: new(atomic.Value)}
	o.SetDefaultLoad(load)
	o.SetDefaultStore(store)
	return o
}

// NewMapTyped returns an empty MapTyped[K, V] backed by sync.Map.
func NewMapTyped[K comparable, V any]() MapTyped[K, V] {
	return &mt[K, V]{m: new(sync.Map)}
}
