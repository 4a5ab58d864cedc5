package decorate

import (
	"fmt"
	"sync"
	"testing"

	"github.com/ValentinKolb/dColl/lib/coll"
	"github.com/ValentinKolb/dColl/lib/coll/arraymap"
	"github.com/ValentinKolb/dColl/lib/coll/list"
	"github.com/ValentinKolb/dColl/lib/coll/sorted"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --------------------------------------------------------------------------
// Synchronized
// --------------------------------------------------------------------------

func TestConcurrentPuts(t *testing.T) {
	m := SynchronizedSortedMap[int32, string](sorted.New[int32, string]())

	const workers, perWorker = 8, 250
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				k := int32(w*perWorker + i)
				_, err := m.Put(k, fmt.Sprint(k))
				assert.NoError(t, err)
				assert.Equal(t, fmt.Sprint(k), m.Get(k))
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, m.Len())
	first, err := m.FirstKey()
	require.NoError(t, err)
	last, err := m.LastKey()
	require.NoError(t, err)
	assert.Equal(t, int32(0), first)
	assert.Equal(t, int32(workers*perWorker-1), last)
}

func TestConcurrentListPushPop(t *testing.T) {
	l := SynchronizedList[int64](list.NewArrayList[int64]())

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				assert.NoError(t, l.Push(int64(i)))
			}
			for i := 0; i < 250; i++ {
				_, err := l.Pop()
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1000, l.Len())
}

func TestViewsShareLock(t *testing.T) {
	mu := &sync.Mutex{}
	m := SynchronizedSortedMap[int32, string](sorted.New[int32, string](), WithLocker(mu))
	assert.Same(t, mu, m.Locker())

	for k := int32(0); k < 10; k++ {
		_, err := m.Put(k, "v")
		require.NoError(t, err)
	}

	sub, err := m.SubMap(2, 8)
	require.NoError(t, err)
	head, err := sub.HeadMap(5)
	require.NoError(t, err)

	synced, ok := head.(*SyncSortedMap[int32, string])
	require.True(t, ok, "expected range views to stay synchronized, got %T", head)
	assert.Same(t, mu, synced.Locker())
	assert.Equal(t, 3, head.Len())

	// the lock is held while Do runs, so a view call from another goroutine
	// has to wait for it
	done := make(chan int)
	m.Do(func(inner coll.SortedMap[int32, string]) {
		go func() { done <- head.Len() }()
		_, err := inner.Remove(2)
		require.NoError(t, err)
	})
	assert.Equal(t, 2, <-done)

	keys, ok := m.KeySet().(*syncCollection[int32])
	require.True(t, ok)
	assert.Same(t, m.g, keys.g)
}

func TestDefaultLocker(t *testing.T) {
	m := SynchronizedMap[int32, string](arraymap.New[int32, string]())
	assert.IsType(t, &xsync.RBMutex{}, m.Locker())

	l := SynchronizedList[int32](list.NewArrayList[int32]())
	assert.NotSame(t, m.Locker(), l.Locker())
}

func TestDoIterates(t *testing.T) {
	m := SynchronizedMap[int32, string](arraymap.New[int32, string]())
	for k := int32(0); k < 5; k++ {
		_, err := m.Put(k, fmt.Sprint(k))
		require.NoError(t, err)
	}

	var sum int32
	m.Do(func(inner coll.Map[int32, string]) {
		for k := range inner.All() {
			sum += k
		}
	})
	assert.Equal(t, int32(10), sum)
}

func TestAllIsSnapshot(t *testing.T) {
	m := SynchronizedMap[int32, string](arraymap.New[int32, string]())
	for k := int32(0); k < 4; k++ {
		_, err := m.Put(k, "v")
		require.NoError(t, err)
	}

	// removing while ranging does not disturb the iteration and does not deadlock
	n := 0
	for k := range m.All() {
		_, err := m.Remove(k)
		require.NoError(t, err)
		n++
	}
	assert.Equal(t, 4, n)
	assert.True(t, m.IsEmpty())
}

func TestSyncEntrySetValue(t *testing.T) {
	m := SynchronizedMap[int32, string](arraymap.New[int32, string]())
	_, err := m.Put(1, "a")
	require.NoError(t, err)

	it := m.Iterator()
	e, err := it.Next()
	require.NoError(t, err)
	if _, err := e.SetValue("b"); err != nil {
		// stable entries of ArrayMap are snapshots
		assert.ErrorIs(t, err, coll.ErrUnsupportedOperation)
	}
	assert.Equal(t, it.Kind(), m.m.Iterator().Kind())
}

func TestSyncListEqualItself(t *testing.T) {
	l := SynchronizedList[int32](list.NewArrayListFrom[int32](1, 2, 3), WithLocker(&sync.Mutex{}))
	assert.True(t, l.Equal(l))
	assert.Equal(t, 0, l.Compare(l))

	sub, err := l.SubList(0, 2)
	require.NoError(t, err)
	assert.Positive(t, l.Compare(sub))
	assert.Equal(t, "[1, 2]", fmt.Sprint(sub))
}

// --------------------------------------------------------------------------
// Unmodifiable
// --------------------------------------------------------------------------

// requireReadOnlyMap checks that every mutator of m fails and recurses depth
// levels into the range views m exposes.
func requireReadOnlyMap(t *testing.T, m coll.Map[int32, string], depth int) {
	t.Helper()

	_, err := m.Put(100, "x")
	assert.ErrorIs(t, err, coll.ErrUnsupportedOperation)
	_, err = m.Remove(1)
	assert.ErrorIs(t, err, coll.ErrUnsupportedOperation)
	assert.ErrorIs(t, m.Clear(), coll.ErrUnsupportedOperation)
	assert.ErrorIs(t, m.SetDefaultReturnValue("d"), coll.ErrUnsupportedOperation)

	_, err = m.KeySet().Remove(1)
	assert.ErrorIs(t, err, coll.ErrUnsupportedOperation)
	assert.ErrorIs(t, m.Values().Clear(), coll.ErrUnsupportedOperation)
	_, err = m.EntrySet().Remove(coll.NewEntry[int32, string](1, "a"))
	assert.ErrorIs(t, err, coll.ErrUnsupportedOperation)

	it := m.Iterator()
	if it.HasNext() {
		e, err := it.Next()
		require.NoError(t, err)
		_, err = e.SetValue("x")
		assert.ErrorIs(t, err, coll.ErrUnsupportedOperation)
		assert.ErrorIs(t, it.Remove(), coll.ErrUnsupportedOperation)
	}
	for e := range m.EntrySet().All() {
		_, err := e.SetValue("x")
		assert.ErrorIs(t, err, coll.ErrUnsupportedOperation)
	}
	keys := m.KeySet().Iterator()
	if keys.HasNext() {
		_, err := keys.Next()
		require.NoError(t, err)
		assert.ErrorIs(t, keys.Remove(), coll.ErrUnsupportedOperation)
	}

	if sm, ok := m.(coll.SortedMap[int32, string]); ok && depth > 0 {
		for _, view := range sortedViews(t, sm) {
			requireReadOnlyMap(t, view, depth-1)
		}
	}
}

func sortedViews(t *testing.T, m coll.SortedMap[int32, string]) []coll.SortedMap[int32, string] {
	if m.Len() < 2 {
		return nil
	}
	first, err := m.FirstKey()
	require.NoError(t, err)
	last, err := m.LastKey()
	require.NoError(t, err)

	sub, err := m.SubMap(first+1, last)
	require.NoError(t, err)
	head, err := m.HeadMap(last)
	require.NoError(t, err)
	tail, err := m.TailMap(first + 1)
	require.NoError(t, err)
	return []coll.SortedMap[int32, string]{sub, head, tail}
}

func TestUnmodifiableMap(t *testing.T) {
	inner := arraymap.New[int32, string]()
	for k := int32(1); k <= 3; k++ {
		_, err := inner.Put(k, fmt.Sprint(k))
		require.NoError(t, err)
	}
	m := UnmodifiableMap[int32, string](inner)

	requireReadOnlyMap(t, m, 0)
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, "2", m.Get(2))

	// changes to the wrapped map stay visible
	_, err := inner.Put(4, "4")
	require.NoError(t, err)
	assert.True(t, m.ContainsKey(4))
	assert.Equal(t, "{1=>1, 2=>2, 3=>3, 4=>4}", m.String())
}

func TestUnmodifiableSortedMapPropagates(t *testing.T) {
	inner := sorted.New[int32, string]()
	for k := int32(0); k < 16; k++ {
		_, err := inner.Put(k, fmt.Sprint(k))
		require.NoError(t, err)
	}
	m := UnmodifiableSortedMap[int32, string](inner)

	requireReadOnlyMap(t, m, 3)
	assert.Equal(t, 16, inner.Len())

	sub, err := m.SubMap(3, 7)
	require.NoError(t, err)
	_, ok := sub.(*ReadOnlySortedMap[int32, string])
	assert.True(t, ok, "expected a read-only view, got %T", sub)
	assert.Equal(t, 4, sub.Len())

	_, err = m.SubMap(7, 3)
	assert.ErrorIs(t, err, coll.ErrIllegalArgument)
}

func TestUnmodifiableList(t *testing.T) {
	inner := list.NewArrayListFrom[int32](1, 2, 3, 4)
	l := UnmodifiableList[int32](inner)

	assert.True(t, l.SupportsFeature(coll.FeatureRandomAccess))
	assert.False(t, l.SupportsFeature(coll.FeatureInsert))
	assert.False(t, l.SupportsFeature(coll.FeatureBulkRemove))

	var lists []coll.List[int32]
	lists = append(lists, l)
	sub, err := l.SubList(1, 4)
	require.NoError(t, err)
	nested, err := sub.SubList(1, 2)
	require.NoError(t, err)
	lists = append(lists, sub, nested)

	for _, ro := range lists {
		_, err := ro.Add(9)
		assert.ErrorIs(t, err, coll.ErrUnsupportedOperation)
		_, err = ro.Set(0, 9)
		assert.ErrorIs(t, err, coll.ErrUnsupportedOperation)
		_, err = ro.RemoveAt(0)
		assert.ErrorIs(t, err, coll.ErrUnsupportedOperation)
		_, err = ro.Pop()
		assert.ErrorIs(t, err, coll.ErrUnsupportedOperation)
		assert.ErrorIs(t, ro.Push(9), coll.ErrUnsupportedOperation)
		assert.ErrorIs(t, ro.Insert(0, 9), coll.ErrUnsupportedOperation)
		assert.ErrorIs(t, ro.InsertAll(0, []int32{9}), coll.ErrUnsupportedOperation)
		assert.ErrorIs(t, ro.RemoveRange(0, 1), coll.ErrUnsupportedOperation)
		assert.ErrorIs(t, ro.Resize(0), coll.ErrUnsupportedOperation)
		assert.ErrorIs(t, ro.Clear(), coll.ErrUnsupportedOperation)

		it := ro.ListIterator()
		_, err = it.Next()
		require.NoError(t, err)
		assert.ErrorIs(t, it.Remove(), coll.ErrUnsupportedOperation)
		assert.ErrorIs(t, it.Set(9), coll.ErrUnsupportedOperation)
		assert.ErrorIs(t, it.Add(9), coll.ErrUnsupportedOperation)
	}

	assert.Equal(t, []int32{1, 2, 3, 4}, inner.ToSlice())
	assert.Equal(t, []int32{3}, nested.ToSlice())
	top, err := l.Top()
	require.NoError(t, err)
	assert.Equal(t, int32(4), top)
	assert.True(t, l.Equal(inner))
}
