package arraymap

import (
	"io"
	"iter"

	"github.com/ValentinKolb/dColl/lib/coll"
	"github.com/ValentinKolb/dColl/lib/coll/codec"
	"github.com/lni/dragonboat/v4/logger"
)

var plog = logger.GetLogger("arraymap")

// --------------------------------------------------------------------------
// Core ArrayMap structure
// --------------------------------------------------------------------------

// ArrayMap is a map backed by two parallel buffers with linear-scan lookup.
// keys[0:size) are pairwise distinct and values[i] belongs to keys[i]; there is no
// ordering constraint, iteration follows insertion order until removals shift the tail.
//
// Thread-safety: ArrayMap is not thread-safe. Use decorate.SynchronizedMap for
// concurrent access.
type ArrayMap[K coll.Scalar, V any] struct {
	keys        []K
	values      []V
	size        int
	defRetValue V
}

// compile time checks
var (
	_ coll.Map[int8, string]          = (*ArrayMap[int8, string])(nil)
	_ coll.FastIterable[int8, string] = (*ArrayMap[int8, string])(nil)
)

// --------------------------------------------------------------------------
// Initialization
// --------------------------------------------------------------------------

// New creates an empty ArrayMap with no preallocated storage
func New[K coll.Scalar, V any]() *ArrayMap[K, V] {
	return &ArrayMap[K, V]{}
}

// NewWithCapacity creates an empty ArrayMap able to hold capacity entries without growing
func NewWithCapacity[K coll.Scalar, V any](capacity int) (*ArrayMap[K, V], error) {
	if capacity < 0 {
		return nil, coll.IllegalArgument("capacity (%d) must be non-negative", capacity)
	}
	return &ArrayMap[K, V]{
		keys:   make([]K, capacity),
		values: make([]V, capacity),
	}, nil
}

// NewFrom creates an ArrayMap that uses keys and values as its storage (no copy).
// The caller guarantees that keys are pairwise distinct.
func NewFrom[K coll.Scalar, V any](keys []K, values []V) (*ArrayMap[K, V], error) {
	return NewFromSized(keys, values, len(keys))
}

// NewFromSized creates an ArrayMap from the first size elements of keys and values (no copy).
// The caller guarantees that keys[0:size) are pairwise distinct.
func NewFromSized[K coll.Scalar, V any](keys []K, values []V, size int) (*ArrayMap[K, V], error) {
	if len(keys) != len(values) {
		return nil, coll.IllegalArgument("keys and values have different lengths (%d, %d)", len(keys), len(values))
	}
	if size < 0 {
		return nil, coll.IllegalArgument("size (%d) must be non-negative", size)
	}
	if size > len(keys) {
		return nil, coll.IllegalArgument("size (%d) is larger than the backing buffers (%d)", size, len(keys))
	}
	return &ArrayMap[K, V]{
		keys:   keys,
		values: values,
		size:   size,
	}, nil
}

// NewFromMap creates an ArrayMap holding a copy of the entries of m, in the iteration order of m
func NewFromMap[K coll.Scalar, V any](m coll.Map[K, V]) *ArrayMap[K, V] {
	n := m.Len()
	am := &ArrayMap[K, V]{
		keys:   make([]K, n),
		values: make([]V, n),
	}
	for k, v := range m.All() {
		am.keys[am.size] = k
		am.values[am.size] = v
		am.size++
	}
	am.defRetValue = m.DefaultReturnValue()
	return am
}

// --------------------------------------------------------------------------
// Helper Functions
// --------------------------------------------------------------------------

// findKey scans from the end backward, favoring recently inserted keys.
// Returns -1 if k is absent.
func (m *ArrayMap[K, V]) findKey(k K) int {
	for i := m.size - 1; i >= 0; i-- {
		if coll.ScalarEqual(m.keys[i], k) {
			return i
		}
	}
	return -1
}

// grow doubles the storage (minimum 2)
func (m *ArrayMap[K, V]) grow() {
	newCap := 2 * m.size
	if newCap < 2 {
		newCap = 2
	}

	keys := make([]K, newCap)
	values := make([]V, newCap)
	copy(keys, m.keys[:m.size])
	copy(values, m.values[:m.size])
	m.keys = keys
	m.values = values

	plog.Debugf("grew storage to %d entries", newCap)
}

// removeAt shifts the tail left over position i and clears the vacated value slot
func (m *ArrayMap[K, V]) removeAt(i int) V {
	old := m.values[i]
	copy(m.keys[i:], m.keys[i+1:m.size])
	copy(m.values[i:], m.values[i+1:m.size])
	m.size--

	var zero V
	m.values[m.size] = zero
	return old
}

// --------------------------------------------------------------------------
// Map Interface Methods (docu see coll.Map)
// --------------------------------------------------------------------------

func (m *ArrayMap[K, V]) Len() int {
	return m.size
}

func (m *ArrayMap[K, V]) IsEmpty() bool {
	return m.size == 0
}

func (m *ArrayMap[K, V]) Get(k K) V {
	if i := m.findKey(k); i >= 0 {
		return m.values[i]
	}
	return m.defRetValue
}

func (m *ArrayMap[K, V]) Lookup(k K) (V, bool) {
	if i := m.findKey(k); i >= 0 {
		return m.values[i], true
	}
	return m.defRetValue, false
}

func (m *ArrayMap[K, V]) ContainsKey(k K) bool {
	return m.findKey(k) >= 0
}

func (m *ArrayMap[K, V]) ContainsValue(v V) bool {
	for i := m.size - 1; i >= 0; i-- {
		if coll.Equal(m.values[i], v) {
			return true
		}
	}
	return false
}

// Put overwrites the value of an existing key in place or appends a new entry.
// It never fails; the error is part of the coll.Map contract.
func (m *ArrayMap[K, V]) Put(k K, v V) (V, error) {
	if i := m.findKey(k); i >= 0 {
		old := m.values[i]
		m.values[i] = v
		return old, nil
	}

	if m.size == len(m.keys) {
		m.grow()
	}
	m.keys[m.size] = k
	m.values[m.size] = v
	m.size++
	return m.defRetValue, nil
}

// Remove deletes k by shifting the tail of both buffers down by one.
func (m *ArrayMap[K, V]) Remove(k K) (V, error) {
	i := m.findKey(k)
	if i < 0 {
		return m.defRetValue, nil
	}
	return m.removeAt(i), nil
}

// Clear removes all entries; the storage is kept.
func (m *ArrayMap[K, V]) Clear() error {
	clear(m.values[:m.size])
	m.size = 0
	return nil
}

func (m *ArrayMap[K, V]) DefaultReturnValue() V {
	return m.defRetValue
}

func (m *ArrayMap[K, V]) SetDefaultReturnValue(v V) error {
	m.defRetValue = v
	return nil
}

func (m *ArrayMap[K, V]) KeySet() coll.Set[K] {
	return &keySet[K, V]{m: m}
}

func (m *ArrayMap[K, V]) Values() coll.Collection[V] {
	return &valueCollection[K, V]{m: m}
}

func (m *ArrayMap[K, V]) EntrySet() coll.Set[coll.Entry[K, V]] {
	return &entrySet[K, V]{m: m}
}

// Iterator returns an entry iterator that allocates a snapshot entry per step.
func (m *ArrayMap[K, V]) Iterator() coll.EntryIterator[K, V] {
	return &entryIterator[K, V]{cursor: newCursor(m)}
}

// FastIterator returns an entry iterator that reuses one entry for every step.
// The entry reads and writes through to the buffers at the current position.
func (m *ArrayMap[K, V]) FastIterator() coll.EntryIterator[K, V] {
	it := &fastEntryIterator[K, V]{cursor: newCursor(m)}
	it.entry.m = m
	return it
}

// All iterates in storage order. The map must not be modified during iteration.
func (m *ArrayMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := 0; i < m.size; i++ {
			if !yield(m.keys[i], m.values[i]) {
				return
			}
		}
	}
}

// --------------------------------------------------------------------------
// Additional Methods
// --------------------------------------------------------------------------

// Capacity returns the number of entries the map can hold without growing.
func (m *ArrayMap[K, V]) Capacity() int {
	return len(m.keys)
}

// Clone returns an independent copy with the same capacity and default return value.
func (m *ArrayMap[K, V]) Clone() *ArrayMap[K, V] {
	c := &ArrayMap[K, V]{
		keys:        make([]K, len(m.keys)),
		values:      make([]V, len(m.values)),
		size:        m.size,
		defRetValue: m.defRetValue,
	}
	copy(c.keys, m.keys[:m.size])
	copy(c.values, m.values[:m.size])
	return c
}

// Equal reports whether other holds the same keys mapped to equal values.
func (m *ArrayMap[K, V]) Equal(other coll.Map[K, V]) bool {
	return coll.MapsEqual[K, V](m, other)
}

func (m *ArrayMap[K, V]) String() string {
	return coll.FormatMap[K, V](m)
}

// --------------------------------------------------------------------------
// Persistence Operations
// --------------------------------------------------------------------------

// Save writes the persisted form: the entry count followed by every key and value in storage order.
func (m *ArrayMap[K, V]) Save(w io.Writer, kc codec.Codec[K], vc codec.Codec[V]) error {
	return codec.WriteMap(w, m.size, m.All(), kc, vc)
}

// Load replaces the content of m with the persisted form read from r.
// The storage holds exactly the persisted entries; up to codec.MaxPrealloc of
// them are allocated before reading.
func (m *ArrayMap[K, V]) Load(r io.Reader, kc codec.Codec[K], vc codec.Codec[V]) error {
	var (
		keys   []K
		values []V
	)
	_, err := codec.ReadMap(r, kc, vc,
		func(n int) {
			keys = make([]K, 0, n)
			values = make([]V, 0, n)
		},
		func(k K, v V) {
			keys = append(keys, k)
			values = append(values, v)
		})
	if err != nil {
		return err
	}

	m.keys, m.values, m.size = keys, values, len(keys)
	plog.Debugf("loaded %d entries", m.size)
	return nil
}

// Read creates a new ArrayMap from its persisted form.
func Read[K coll.Scalar, V any](r io.Reader, kc codec.Codec[K], vc codec.Codec[V]) (*ArrayMap[K, V], error) {
	m := New[K, V]()
	if err := m.Load(r, kc, vc); err != nil {
		return nil, err
	}
	return m, nil
}
