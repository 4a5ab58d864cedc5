package coll

import "fmt"

// BasicEntry is an immutable key/value snapshot. SetValue is not supported.
type BasicEntry[K, V any] struct {
	K K
	V V
}

// NewEntry creates a snapshot entry.
func NewEntry[K, V any](k K, v V) *BasicEntry[K, V] {
	return &BasicEntry[K, V]{K: k, V: v}
}

func (e *BasicEntry[K, V]) Key() K   { return e.K }
func (e *BasicEntry[K, V]) Value() V { return e.V }

func (e *BasicEntry[K, V]) SetValue(V) (V, error) {
	var zero V
	return zero, Unsupported("SetValue on a snapshot entry")
}

func (e *BasicEntry[K, V]) String() string {
	return fmt.Sprintf("%v=>%v", e.K, e.V)
}

// EntriesEqual compares two entries by key and value.
func EntriesEqual[K, V any](a, b Entry[K, V]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Equal(a.Key(), b.Key()) && Equal(a.Value(), b.Value())
}
