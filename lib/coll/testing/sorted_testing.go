package testing

import (
	"slices"
	"testing"

	"github.com/ValentinKolb/dColl/lib/coll"
)

// RunSortedMapTests runs the range view test suite for a coll.SortedMap
// implementation. The factory must return empty maps with natural ordering.
// It also runs RunMapTests for the same factory.
func RunSortedMapTests(t *testing.T, name string, factory SortedMapFactory) {
	t.Run(name, func(t *testing.T) {
		RunMapTests(t, "Map", func() coll.Map[int32, string] { return factory() })

		t.Run("Order", func(t *testing.T) {
			testSortedOrder(t, factory())
		})

		t.Run("FirstLast", func(t *testing.T) {
			testSortedFirstLast(t, factory())
		})

		t.Run("SubMap", func(t *testing.T) {
			testSortedSubMap(t, factory())
		})

		t.Run("HeadTail", func(t *testing.T) {
			testSortedHeadTail(t, factory())
		})

		t.Run("NestedViews", func(t *testing.T) {
			testSortedNestedViews(t, factory())
		})

		t.Run("ViewPropagation", func(t *testing.T) {
			testSortedViewPropagation(t, factory())
		})

		t.Run("ViewIteratorRemove", func(t *testing.T) {
			testSortedViewIteratorRemove(t, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

func keysOf(m coll.Map[int32, string]) []int32 {
	var keys []int32
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

func expectKeys(t testing.TB, m coll.Map[int32, string], want ...int32) {
	t.Helper()
	if got := keysOf(m); !slices.Equal(got, want) || m.Len() != len(want) {
		t.Errorf("Expected keys %v (size %d), got %v (size %d)", want, len(want), got, m.Len())
	}
}

// fillSorted puts the keys 0, 10, ..., 90 in shuffled order
func fillSorted(t testing.TB, m coll.Map[int32, string]) {
	for _, k := range []int32{50, 10, 90, 30, 70, 0, 20, 80, 40, 60} {
		put(t, m, k, "v")
	}
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testSortedOrder(t *testing.T, m coll.SortedMap[int32, string]) {
	fillSorted(t, m)
	expectKeys(t, m, 0, 10, 20, 30, 40, 50, 60, 70, 80, 90)

	if !slices.IsSorted(m.KeySet().ToSlice()) {
		t.Errorf("Expected the key set to iterate in ascending order")
	}
	if m.Comparator() != nil {
		t.Errorf("Expected natural ordering to be reported as a nil comparator")
	}
}

func testSortedFirstLast(t *testing.T, m coll.SortedMap[int32, string]) {
	_, err := m.FirstKey()
	expectCode(t, err, coll.ErrNoSuchElement)
	_, err = m.LastKey()
	expectCode(t, err, coll.ErrNoSuchElement)

	fillSorted(t, m)
	if k, _ := m.FirstKey(); k != 0 {
		t.Errorf("Expected FirstKey() = 0, got %d", k)
	}
	if k, _ := m.LastKey(); k != 90 {
		t.Errorf("Expected LastKey() = 90, got %d", k)
	}

	sub, err := m.SubMap(15, 45)
	if err != nil {
		t.Fatal(err)
	}
	if k, _ := sub.FirstKey(); k != 20 {
		t.Errorf("Expected FirstKey() of [15, 45) = 20, got %d", k)
	}
	if k, _ := sub.LastKey(); k != 40 {
		t.Errorf("Expected LastKey() of [15, 45) = 40, got %d", k)
	}

	// exclusive upper bound
	sub, _ = m.SubMap(20, 40)
	if k, _ := sub.LastKey(); k != 30 {
		t.Errorf("Expected LastKey() of [20, 40) = 30, got %d", k)
	}

	empty, _ := m.SubMap(41, 49)
	_, err = empty.FirstKey()
	expectCode(t, err, coll.ErrNoSuchElement)
	_, err = empty.LastKey()
	expectCode(t, err, coll.ErrNoSuchElement)
}

func testSortedSubMap(t *testing.T, m coll.SortedMap[int32, string]) {
	fillSorted(t, m)

	sub, err := m.SubMap(20, 50)
	if err != nil {
		t.Fatal(err)
	}
	expectKeys(t, sub, 20, 30, 40)

	if sub.ContainsKey(50) || sub.ContainsKey(10) || !sub.ContainsKey(20) {
		t.Errorf("Expected [20, 50) to contain only keys in range")
	}
	if _, ok := sub.Lookup(60); ok {
		t.Errorf("Expected Lookup outside of the range to report false")
	}

	_, err = sub.Put(50, "x")
	expectCode(t, err, coll.ErrIllegalArgument)
	_, err = sub.Put(19, "x")
	expectCode(t, err, coll.ErrIllegalArgument)

	if v, err := sub.Remove(60); err != nil || v != sub.DefaultReturnValue() || !m.ContainsKey(60) {
		t.Errorf("Expected Remove outside of the range to have no effect")
	}

	_, err = m.SubMap(50, 20)
	expectCode(t, err, coll.ErrIllegalArgument)

	same, err := m.SubMap(30, 30)
	if err != nil || !same.IsEmpty() {
		t.Errorf("Expected [30, 30) to be an empty view, got %v", err)
	}

	if sub.Comparator() != nil {
		t.Errorf("Expected views to inherit the comparator")
	}
}

func testSortedHeadTail(t *testing.T, m coll.SortedMap[int32, string]) {
	fillSorted(t, m)

	head, err := m.HeadMap(30)
	if err != nil {
		t.Fatal(err)
	}
	expectKeys(t, head, 0, 10, 20)

	tail, err := m.TailMap(70)
	if err != nil {
		t.Fatal(err)
	}
	expectKeys(t, tail, 70, 80, 90)

	_, err = head.Put(30, "x")
	expectCode(t, err, coll.ErrIllegalArgument)
	_, err = tail.Put(69, "x")
	expectCode(t, err, coll.ErrIllegalArgument)
}

func testSortedNestedViews(t *testing.T, m coll.SortedMap[int32, string]) {
	fillSorted(t, m)

	outer, err := m.SubMap(10, 60)
	if err != nil {
		t.Fatal(err)
	}

	// bounds are intersected with the bounds of the view
	inner, err := outer.SubMap(30, 90)
	if err != nil {
		t.Fatal(err)
	}
	expectKeys(t, inner, 30, 40, 50)

	head, err := outer.HeadMap(80)
	if err != nil {
		t.Fatal(err)
	}
	expectKeys(t, head, 10, 20, 30, 40, 50)

	tail, err := outer.TailMap(0)
	if err != nil {
		t.Fatal(err)
	}
	expectKeys(t, tail, 10, 20, 30, 40, 50)

	deep, err := inner.TailMap(40)
	if err != nil {
		t.Fatal(err)
	}
	expectKeys(t, deep, 40, 50)

	// a range that does not overlap the view
	_, err = outer.HeadMap(5)
	expectCode(t, err, coll.ErrIllegalArgument)

	_, err = deep.Put(30, "x")
	expectCode(t, err, coll.ErrIllegalArgument)
}

func testSortedViewPropagation(t *testing.T, m coll.SortedMap[int32, string]) {
	fillSorted(t, m)

	sub, err := m.SubMap(20, 50)
	if err != nil {
		t.Fatal(err)
	}

	// view -> map
	if _, err := sub.Put(25, "new"); err != nil {
		t.Fatal(err)
	}
	if m.Get(25) != "new" {
		t.Errorf("Expected Put through the view to reach the map")
	}
	if _, err := sub.Remove(30); err != nil {
		t.Fatal(err)
	}
	if m.ContainsKey(30) {
		t.Errorf("Expected Remove through the view to reach the map")
	}

	// map -> view
	put(t, m, 45, "late")
	put(t, m, 55, "outside")
	expectKeys(t, sub, 20, 25, 40, 45)

	// key set of a view
	keys := sub.KeySet()
	if keys.Contains(55) || !keys.Contains(45) {
		t.Errorf("Expected the key set of the view to respect the range")
	}
	if ok, _ := keys.Remove(40); !ok || m.ContainsKey(40) {
		t.Errorf("Expected key set removal to reach the map")
	}

	// clearing a view only removes the range
	if err := sub.Clear(); err != nil {
		t.Fatal(err)
	}
	expectKeys(t, m, 0, 10, 50, 55, 60, 70, 80, 90)
}

func testSortedViewIteratorRemove(t *testing.T, m coll.SortedMap[int32, string]) {
	fillSorted(t, m)

	sub, err := m.SubMap(10, 80)
	if err != nil {
		t.Fatal(err)
	}

	var seen []int32
	it := sub.KeySet().Iterator()
	for it.HasNext() {
		k, err := it.Next()
		if err != nil {
			t.Fatal(err)
		}
		seen = append(seen, k)
		if k%20 == 0 {
			if err := it.Remove(); err != nil {
				t.Fatal(err)
			}
		}
	}

	if !slices.Equal(seen, []int32{10, 20, 30, 40, 50, 60, 70}) {
		t.Errorf("Expected to see every key of the range once, saw %v", seen)
	}
	expectKeys(t, m, 0, 10, 30, 50, 70, 80, 90)
}
