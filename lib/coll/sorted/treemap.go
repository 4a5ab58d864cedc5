package sorted

import (
	"io"
	"iter"

	"github.com/ValentinKolb/dColl/lib/coll"
	"github.com/ValentinKolb/dColl/lib/coll/codec"
	"github.com/ValentinKolb/dColl/lib/coll/views"
	"github.com/google/btree"
	"github.com/lni/dragonboat/v4/logger"
)

var plog = logger.GetLogger("sorted")

// degree of the B-tree nodes
const degree = 32

// --------------------------------------------------------------------------
// Storage
// --------------------------------------------------------------------------

// node is a single entry. Nodes are stored by pointer so that entries handed
// out by fast iteration can write their value through.
type node[K coll.Scalar, V any] struct {
	key   K
	value V
}

// storage is shared by a TreeMap and all range views derived from it
type storage[K coll.Scalar, V any] struct {
	tree        *btree.BTreeG[*node[K, V]]
	cmp         coll.Comparator[K]
	defRetValue V
}

func newStorage[K coll.Scalar, V any](c coll.Comparator[K]) *storage[K, V] {
	return &storage[K, V]{
		tree: btree.NewG[*node[K, V]](degree, func(a, b *node[K, V]) bool {
			return coll.CompareWith(c, a.key, b.key) < 0
		}),
		cmp: c,
	}
}

// bound is an optional range limit
type bound[K coll.Scalar] struct {
	key K
	set bool
}

// --------------------------------------------------------------------------
// Core TreeMap structure
// --------------------------------------------------------------------------

// TreeMap is a sorted map backed by a B-tree. A TreeMap created by New covers
// all keys; SubMap, HeadMap and TailMap return TreeMaps restricted to the range
// [lo, hi) that share the same storage.
//
// Thread-safety: TreeMap is not thread-safe.
type TreeMap[K coll.Scalar, V any] struct {
	s  *storage[K, V]
	lo bound[K] // inclusive
	hi bound[K] // exclusive
}

// compile time checks
var (
	_ coll.SortedMap[int64, string]    = (*TreeMap[int64, string])(nil)
	_ coll.FastIterable[int64, string] = (*TreeMap[int64, string])(nil)
)

// --------------------------------------------------------------------------
// Initialization
// --------------------------------------------------------------------------

// New creates an empty TreeMap with natural key ordering
func New[K coll.Scalar, V any]() *TreeMap[K, V] {
	return NewWithComparator[K, V](nil)
}

// NewWithComparator creates an empty TreeMap ordered by c (nil means natural ordering)
func NewWithComparator[K coll.Scalar, V any](c coll.Comparator[K]) *TreeMap[K, V] {
	return &TreeMap[K, V]{s: newStorage[K, V](c)}
}

// NewFromMap creates a TreeMap holding a copy of the entries of m. If m is a
// coll.SortedMap its comparator is kept.
func NewFromMap[K coll.Scalar, V any](m coll.Map[K, V]) *TreeMap[K, V] {
	var c coll.Comparator[K]
	if sm, ok := m.(coll.SortedMap[K, V]); ok {
		c = sm.Comparator()
	}
	t := NewWithComparator[K, V](c)
	for k, v := range m.All() {
		t.s.tree.ReplaceOrInsert(&node[K, V]{key: k, value: v})
	}
	t.s.defRetValue = m.DefaultReturnValue()
	return t
}

// --------------------------------------------------------------------------
// Helper Functions
// --------------------------------------------------------------------------

func (m *TreeMap[K, V]) compare(a, b K) int {
	return coll.CompareWith(m.s.cmp, a, b)
}

func (m *TreeMap[K, V]) probe(k K) *node[K, V] {
	return &node[K, V]{key: k}
}

func (m *TreeMap[K, V]) bounded() bool {
	return m.lo.set || m.hi.set
}

func (m *TreeMap[K, V]) tooLow(k K) bool {
	return m.lo.set && m.compare(k, m.lo.key) < 0
}

func (m *TreeMap[K, V]) tooHigh(k K) bool {
	return m.hi.set && m.compare(k, m.hi.key) >= 0
}

func (m *TreeMap[K, V]) inRange(k K) bool {
	return !m.tooLow(k) && !m.tooHigh(k)
}

// ascendFrom visits the nodes in range with key >= from (or from the lower bound
// when from is not set) in order until fn returns false.
func (m *TreeMap[K, V]) ascendFrom(from bound[K], fn func(n *node[K, V]) bool) {
	if !from.set || m.tooLow(from.key) {
		from = m.lo
	}
	visit := func(n *node[K, V]) bool {
		if m.tooHigh(n.key) {
			return false
		}
		return fn(n)
	}
	if from.set {
		m.s.tree.AscendGreaterOrEqual(m.probe(from.key), visit)
	} else {
		m.s.tree.Ascend(visit)
	}
}

// ceiling returns the first node in range with key >= k
func (m *TreeMap[K, V]) ceiling(k bound[K]) *node[K, V] {
	var res *node[K, V]
	m.ascendFrom(k, func(n *node[K, V]) bool {
		res = n
		return false
	})
	return res
}

// higher returns the first node in range with key > k
func (m *TreeMap[K, V]) higher(k K) *node[K, V] {
	var res *node[K, V]
	m.ascendFrom(bound[K]{key: k, set: true}, func(n *node[K, V]) bool {
		if m.compare(n.key, k) == 0 {
			return true
		}
		res = n
		return false
	})
	return res
}

func (m *TreeMap[K, V]) find(k K) *node[K, V] {
	if !m.inRange(k) {
		return nil
	}
	n, ok := m.s.tree.Get(m.probe(k))
	if !ok {
		return nil
	}
	return n
}

// --------------------------------------------------------------------------
// Map Interface Methods (docu see coll.Map)
// --------------------------------------------------------------------------

// Len is O(1) for an unrestricted map and O(size of the range) for a view.
func (m *TreeMap[K, V]) Len() int {
	if !m.bounded() {
		return m.s.tree.Len()
	}
	n := 0
	m.ascendFrom(bound[K]{}, func(*node[K, V]) bool {
		n++
		return true
	})
	return n
}

func (m *TreeMap[K, V]) IsEmpty() bool {
	return m.ceiling(bound[K]{}) == nil
}

func (m *TreeMap[K, V]) Get(k K) V {
	if n := m.find(k); n != nil {
		return n.value
	}
	return m.s.defRetValue
}

func (m *TreeMap[K, V]) Lookup(k K) (V, bool) {
	if n := m.find(k); n != nil {
		return n.value, true
	}
	return m.s.defRetValue, false
}

func (m *TreeMap[K, V]) ContainsKey(k K) bool {
	return m.find(k) != nil
}

func (m *TreeMap[K, V]) ContainsValue(v V) bool {
	found := false
	m.ascendFrom(bound[K]{}, func(n *node[K, V]) bool {
		found = coll.Equal(n.value, v)
		return !found
	})
	return found
}

// Put fails with coll.ErrIllegalArgument if k is outside the range of the view.
func (m *TreeMap[K, V]) Put(k K, v V) (V, error) {
	if !m.inRange(k) {
		return m.s.defRetValue, coll.IllegalArgument("key (%v) is out of the range of this view", k)
	}
	if n, ok := m.s.tree.Get(m.probe(k)); ok {
		old := n.value
		n.value = v
		return old, nil
	}
	m.s.tree.ReplaceOrInsert(&node[K, V]{key: k, value: v})
	return m.s.defRetValue, nil
}

// Remove returns the default return value without side effects if k is absent
// or outside the range of the view.
func (m *TreeMap[K, V]) Remove(k K) (V, error) {
	if !m.inRange(k) {
		return m.s.defRetValue, nil
	}
	n, ok := m.s.tree.Delete(m.probe(k))
	if !ok {
		return m.s.defRetValue, nil
	}
	return n.value, nil
}

// Clear removes every entry in range; for an unrestricted map the tree is reset.
func (m *TreeMap[K, V]) Clear() error {
	if !m.bounded() {
		m.s.tree.Clear(false)
		return nil
	}
	var doomed []*node[K, V]
	m.ascendFrom(bound[K]{}, func(n *node[K, V]) bool {
		doomed = append(doomed, n)
		return true
	})
	for _, n := range doomed {
		m.s.tree.Delete(n)
	}
	plog.Debugf("cleared %d entries of a range view", len(doomed))
	return nil
}

// DefaultReturnValue is shared by a map and all of its views.
func (m *TreeMap[K, V]) DefaultReturnValue() V {
	return m.s.defRetValue
}

func (m *TreeMap[K, V]) SetDefaultReturnValue(v V) error {
	m.s.defRetValue = v
	return nil
}

// KeySet returns a live view of the keys in ascending order.
func (m *TreeMap[K, V]) KeySet() coll.Set[K] {
	return views.KeySet[K, V](m)
}

// Values returns a live view of the values in key order.
func (m *TreeMap[K, V]) Values() coll.Collection[V] {
	return views.Values[K, V](m)
}

func (m *TreeMap[K, V]) EntrySet() coll.Set[coll.Entry[K, V]] {
	return views.EntrySet[K, V](m)
}

// Iterator returns an ascending entry iterator handing out snapshot entries.
func (m *TreeMap[K, V]) Iterator() coll.EntryIterator[K, V] {
	return newIterator(m, bound[K]{}, false)
}

// FastIterator returns an ascending entry iterator that reuses one entry. The
// entry writes values through to the map.
func (m *TreeMap[K, V]) FastIterator() coll.EntryIterator[K, V] {
	return newIterator(m, bound[K]{}, true)
}

// IteratorFrom returns an ascending entry iterator positioned at the first key >= from.
func (m *TreeMap[K, V]) IteratorFrom(from K) coll.EntryIterator[K, V] {
	return newIterator(m, bound[K]{key: from, set: true}, false)
}

// All iterates in ascending key order. The map must not be modified structurally
// during iteration.
func (m *TreeMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.ascendFrom(bound[K]{}, func(n *node[K, V]) bool {
			return yield(n.key, n.value)
		})
	}
}

// --------------------------------------------------------------------------
// SortedMap Interface Methods (docu see coll.SortedMap)
// --------------------------------------------------------------------------

func (m *TreeMap[K, V]) Comparator() coll.Comparator[K] {
	return m.s.cmp
}

func (m *TreeMap[K, V]) FirstKey() (K, error) {
	n := m.ceiling(bound[K]{})
	if n == nil {
		var zero K
		return zero, coll.NoSuchElement("FirstKey on an empty map")
	}
	return n.key, nil
}

func (m *TreeMap[K, V]) LastKey() (K, error) {
	var res *node[K, V]
	visit := func(n *node[K, V]) bool {
		if m.tooHigh(n.key) {
			return true
		}
		if !m.tooLow(n.key) {
			res = n
		}
		return false
	}
	if m.hi.set {
		m.s.tree.DescendLessOrEqual(m.probe(m.hi.key), visit)
	} else {
		m.s.tree.Descend(visit)
	}
	if res == nil {
		var zero K
		return zero, coll.NoSuchElement("LastKey on an empty map")
	}
	return res.key, nil
}

// SubMap returns the view of the keys in [from, to) intersected with the range of m.
func (m *TreeMap[K, V]) SubMap(from, to K) (coll.SortedMap[K, V], error) {
	if m.compare(from, to) > 0 {
		return nil, coll.IllegalArgument("start key (%v) is greater than end key (%v)", from, to)
	}
	return m.restrict(bound[K]{key: from, set: true}, bound[K]{key: to, set: true})
}

// HeadMap returns the view of the keys less than to intersected with the range of m.
func (m *TreeMap[K, V]) HeadMap(to K) (coll.SortedMap[K, V], error) {
	return m.restrict(bound[K]{}, bound[K]{key: to, set: true})
}

// TailMap returns the view of the keys greater than or equal to from intersected
// with the range of m.
func (m *TreeMap[K, V]) TailMap(from K) (coll.SortedMap[K, V], error) {
	return m.restrict(bound[K]{key: from, set: true}, bound[K]{})
}

// restrict keeps the tighter of each pair of bounds. A resulting range with
// lo > hi fails with coll.ErrIllegalArgument.
func (m *TreeMap[K, V]) restrict(lo, hi bound[K]) (coll.SortedMap[K, V], error) {
	if !lo.set || (m.lo.set && m.compare(m.lo.key, lo.key) > 0) {
		lo = m.lo
	}
	if !hi.set || (m.hi.set && m.compare(m.hi.key, hi.key) < 0) {
		hi = m.hi
	}
	if lo.set && hi.set && m.compare(lo.key, hi.key) > 0 {
		return nil, coll.IllegalArgument("range [%v, %v) is outside of the range of this view", lo.key, hi.key)
	}
	return &TreeMap[K, V]{s: m.s, lo: lo, hi: hi}, nil
}

// --------------------------------------------------------------------------
// Additional Methods
// --------------------------------------------------------------------------

// Clone returns an independent unrestricted TreeMap holding the entries in range.
func (m *TreeMap[K, V]) Clone() *TreeMap[K, V] {
	c := NewWithComparator[K, V](m.s.cmp)
	c.s.defRetValue = m.s.defRetValue
	m.ascendFrom(bound[K]{}, func(n *node[K, V]) bool {
		c.s.tree.ReplaceOrInsert(&node[K, V]{key: n.key, value: n.value})
		return true
	})
	return c
}

// Equal reports whether other holds the same keys mapped to equal values.
func (m *TreeMap[K, V]) Equal(other coll.Map[K, V]) bool {
	return coll.MapsEqual[K, V](m, other)
}

func (m *TreeMap[K, V]) String() string {
	return coll.FormatMap[K, V](m)
}

// --------------------------------------------------------------------------
// Persistence Operations
// --------------------------------------------------------------------------

// Save writes the entry count followed by every key and value in ascending key order.
func (m *TreeMap[K, V]) Save(w io.Writer, kc codec.Codec[K], vc codec.Codec[V]) error {
	return codec.WriteMap(w, m.Len(), m.All(), kc, vc)
}

// Read creates a TreeMap ordered by c from its persisted form.
func Read[K coll.Scalar, V any](r io.Reader, c coll.Comparator[K], kc codec.Codec[K], vc codec.Codec[V]) (*TreeMap[K, V], error) {
	m := NewWithComparator[K, V](c)
	_, err := codec.ReadMap(r, kc, vc, nil, func(k K, v V) {
		m.s.tree.ReplaceOrInsert(&node[K, V]{key: k, value: v})
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}
