package sorted

import (
	"iter"
	"reflect"

	"github.com/ValentinKolb/dColl/lib/coll"
	"github.com/ValentinKolb/dColl/lib/coll/views"
	"github.com/puzpuzpuz/xsync/v3"
)

// --------------------------------------------------------------------------
// Empty Map
// --------------------------------------------------------------------------

// empties holds one EmptyMap per key/value type pair
var empties = xsync.NewMapOf[reflect.Type, any]()

// EmptyMap is the immutable sorted map without entries. Every range operation
// returns the receiver.
type EmptyMap[K coll.Scalar, V any] struct{}

// compile time check
var _ coll.SortedMap[int8, int8] = (*EmptyMap[int8, int8])(nil)

// Empty returns the shared EmptyMap for K and V.
func Empty[K coll.Scalar, V any]() *EmptyMap[K, V] {
	m, _ := empties.LoadOrCompute(reflect.TypeFor[EmptyMap[K, V]](), func() any {
		return &EmptyMap[K, V]{}
	})
	return m.(*EmptyMap[K, V])
}

func (m *EmptyMap[K, V]) Len() int                       { return 0 }
func (m *EmptyMap[K, V]) IsEmpty() bool                  { return true }
func (m *EmptyMap[K, V]) ContainsKey(K) bool             { return false }
func (m *EmptyMap[K, V]) ContainsValue(V) bool           { return false }
func (m *EmptyMap[K, V]) Comparator() coll.Comparator[K] { return nil }
func (m *EmptyMap[K, V]) String() string                 { return "{}" }

func (m *EmptyMap[K, V]) Get(K) V {
	var zero V
	return zero
}

func (m *EmptyMap[K, V]) Lookup(K) (V, bool) {
	var zero V
	return zero, false
}

func (m *EmptyMap[K, V]) DefaultReturnValue() V {
	var zero V
	return zero
}

func (m *EmptyMap[K, V]) SetDefaultReturnValue(V) error {
	return coll.Unsupported("SetDefaultReturnValue on an immutable map")
}

func (m *EmptyMap[K, V]) Put(K, V) (V, error) {
	var zero V
	return zero, coll.Unsupported("Put on an immutable map")
}

func (m *EmptyMap[K, V]) Remove(K) (V, error) {
	var zero V
	return zero, coll.Unsupported("Remove on an immutable map")
}

// Clear succeeds because there is nothing to remove.
func (m *EmptyMap[K, V]) Clear() error {
	return nil
}

func (m *EmptyMap[K, V]) KeySet() coll.Set[K] {
	return views.UnmodifiableSet(views.KeySet[K, V](m))
}

func (m *EmptyMap[K, V]) Values() coll.Collection[V] {
	return views.UnmodifiableCollection(views.Values[K, V](m))
}

func (m *EmptyMap[K, V]) EntrySet() coll.Set[coll.Entry[K, V]] {
	return views.UnmodifiableSet(views.EntrySet[K, V](m))
}

func (m *EmptyMap[K, V]) Iterator() coll.EntryIterator[K, V] {
	return views.Entries[K, V]()
}

func (m *EmptyMap[K, V]) All() iter.Seq2[K, V] {
	return func(func(K, V) bool) {}
}

func (m *EmptyMap[K, V]) FirstKey() (K, error) {
	var zero K
	return zero, coll.NoSuchElement("FirstKey on an empty map")
}

func (m *EmptyMap[K, V]) LastKey() (K, error) {
	var zero K
	return zero, coll.NoSuchElement("LastKey on an empty map")
}

func (m *EmptyMap[K, V]) SubMap(K, K) (coll.SortedMap[K, V], error) { return m, nil }
func (m *EmptyMap[K, V]) HeadMap(K) (coll.SortedMap[K, V], error)   { return m, nil }
func (m *EmptyMap[K, V]) TailMap(K) (coll.SortedMap[K, V], error)   { return m, nil }

// --------------------------------------------------------------------------
// Singleton Map
// --------------------------------------------------------------------------

// SingletonMap is an immutable sorted map holding exactly one entry. Range
// operations return the receiver if the key is in range and Empty otherwise.
type SingletonMap[K coll.Scalar, V any] struct {
	key   K
	value V
	cmp   coll.Comparator[K]
}

// compile time check
var _ coll.SortedMap[int8, int8] = (*SingletonMap[int8, int8])(nil)

// Singleton creates an immutable map holding k => v with natural ordering.
func Singleton[K coll.Scalar, V any](k K, v V) *SingletonMap[K, V] {
	return &SingletonMap[K, V]{key: k, value: v}
}

// SingletonWithComparator creates an immutable map holding k => v ordered by c.
func SingletonWithComparator[K coll.Scalar, V any](k K, v V, c coll.Comparator[K]) *SingletonMap[K, V] {
	return &SingletonMap[K, V]{key: k, value: v, cmp: c}
}

func (m *SingletonMap[K, V]) Len() int                       { return 1 }
func (m *SingletonMap[K, V]) IsEmpty() bool                  { return false }
func (m *SingletonMap[K, V]) ContainsKey(k K) bool           { return m.compare(k, m.key) == 0 }
func (m *SingletonMap[K, V]) ContainsValue(v V) bool         { return coll.Equal(m.value, v) }
func (m *SingletonMap[K, V]) Comparator() coll.Comparator[K] { return m.cmp }
func (m *SingletonMap[K, V]) FirstKey() (K, error)           { return m.key, nil }
func (m *SingletonMap[K, V]) LastKey() (K, error)            { return m.key, nil }
func (m *SingletonMap[K, V]) String() string                 { return coll.FormatMap[K, V](m) }

func (m *SingletonMap[K, V]) compare(a, b K) int {
	return coll.CompareWith(m.cmp, a, b)
}

func (m *SingletonMap[K, V]) Get(k K) V {
	v, _ := m.Lookup(k)
	return v
}

func (m *SingletonMap[K, V]) Lookup(k K) (V, bool) {
	if m.ContainsKey(k) {
		return m.value, true
	}
	var zero V
	return zero, false
}

func (m *SingletonMap[K, V]) DefaultReturnValue() V {
	var zero V
	return zero
}

func (m *SingletonMap[K, V]) SetDefaultReturnValue(V) error {
	return coll.Unsupported("SetDefaultReturnValue on an immutable map")
}

func (m *SingletonMap[K, V]) Put(K, V) (V, error) {
	var zero V
	return zero, coll.Unsupported("Put on an immutable map")
}

func (m *SingletonMap[K, V]) Remove(K) (V, error) {
	var zero V
	return zero, coll.Unsupported("Remove on an immutable map")
}

func (m *SingletonMap[K, V]) Clear() error {
	return coll.Unsupported("Clear on an immutable map")
}

func (m *SingletonMap[K, V]) KeySet() coll.Set[K] {
	return views.UnmodifiableSet(views.KeySet[K, V](m))
}

func (m *SingletonMap[K, V]) Values() coll.Collection[V] {
	return views.UnmodifiableCollection(views.Values[K, V](m))
}

func (m *SingletonMap[K, V]) EntrySet() coll.Set[coll.Entry[K, V]] {
	return views.UnmodifiableSet(views.EntrySet[K, V](m))
}

func (m *SingletonMap[K, V]) Iterator() coll.EntryIterator[K, V] {
	return views.Entries[K, V](coll.NewEntry(m.key, m.value))
}

func (m *SingletonMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		yield(m.key, m.value)
	}
}

func (m *SingletonMap[K, V]) SubMap(from, to K) (coll.SortedMap[K, V], error) {
	if m.compare(from, m.key) <= 0 && m.compare(m.key, to) < 0 {
		return m, nil
	}
	return Empty[K, V](), nil
}

func (m *SingletonMap[K, V]) HeadMap(to K) (coll.SortedMap[K, V], error) {
	if m.compare(m.key, to) < 0 {
		return m, nil
	}
	return Empty[K, V](), nil
}

func (m *SingletonMap[K, V]) TailMap(from K) (coll.SortedMap[K, V], error) {
	if m.compare(from, m.key) <= 0 {
		return m, nil
	}
	return Empty[K, V](), nil
}
