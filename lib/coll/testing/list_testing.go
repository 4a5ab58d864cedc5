package testing

import (
	"slices"
	"strings"
	"testing"

	"github.com/ValentinKolb/dColl/lib/coll"
)

// RunListTests runs a comprehensive test suite for a coll.List implementation.
// The factory must return empty lists.
func RunListTests(t *testing.T, name string, factory ListFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Add&Get", func(t *testing.T) {
			testListAddGet(t, factory())
		})

		t.Run("InsertRemove", func(t *testing.T) {
			testListInsertRemove(t, factory())
		})

		t.Run("Search", func(t *testing.T) {
			testListSearch(t, factory())
		})

		t.Run("Stack", func(t *testing.T) {
			testListStack(t, factory())
		})

		t.Run("ListIterator", func(t *testing.T) {
			testListIterator(t, factory())
		})

		t.Run("IteratorRemove", func(t *testing.T) {
			testListIteratorRemove(t, factory())
		})

		t.Run("SkipBack", func(t *testing.T) {
			testListSkipBack(t, factory())
		})

		t.Run("Ranges", func(t *testing.T) {
			testListRanges(t, factory())
		})

		t.Run("Resize", func(t *testing.T) {
			testListResize(t, factory())
		})

		t.Run("Clear", func(t *testing.T) {
			testListClear(t, factory())
		})

		t.Run("CompareEqual", func(t *testing.T) {
			testListCompareEqual(t, factory)
		})

		t.Run("SubList", func(t *testing.T) {
			testSubList(t, factory())
		})

		t.Run("SubListBounds", func(t *testing.T) {
			testSubListBounds(t, factory())
		})

		t.Run("SubListConsistency", func(t *testing.T) {
			testSubListConsistency(t, factory())
		})

		t.Run("NestedSubList", func(t *testing.T) {
			testNestedSubList(t, factory())
		})

		t.Run("SubListIterator", func(t *testing.T) {
			testSubListIterator(t, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testListAddGet(t *testing.T, l coll.List[int32]) {
	requireFeature(t, l, coll.FeatureInsert)

	if !l.IsEmpty() {
		t.Fatalf("Expected a new list to be empty, has %d elements", l.Len())
	}

	fill(t, l, 1, 2, 3, 4, 5)
	for i := 0; i < 5; i++ {
		v, err := l.Get(i)
		if err != nil {
			t.Fatalf("Get(%d) failed: %v", i, err)
		}
		if v != int32(i+1) {
			t.Errorf("Expected Get(%d) = %d, got %d", i, i+1, v)
		}
	}

	_, err := l.Get(5)
	expectCode(t, err, coll.ErrIndexOutOfBounds)
	if err != nil && (!strings.Contains(err.Error(), "(5)") || !strings.Contains(err.Error(), "size 5")) {
		t.Errorf("Bounds error should name the index and the size, got %q", err)
	}

	_, err = l.Get(-1)
	expectCode(t, err, coll.ErrIndexOutOfBounds)

	if l.SupportsFeature(coll.FeatureReplace) {
		old, err := l.Set(0, 10)
		if err != nil || old != 1 {
			t.Errorf("Expected Set to return the old value 1, got %d, %v", old, err)
		}
		_, err = l.Set(5, 0)
		expectCode(t, err, coll.ErrIndexOutOfBounds)
		expectList(t, l, 10, 2, 3, 4, 5)
	}
}

func testListInsertRemove(t *testing.T, l coll.List[int32]) {
	requireFeature(t, l, coll.FeatureInsert|coll.FeatureRemove)

	if err := l.Insert(0, 1); err != nil {
		t.Fatal(err)
	}
	if err := l.Insert(1, 3); err != nil {
		t.Fatal(err)
	}
	if err := l.Insert(1, 2); err != nil {
		t.Fatal(err)
	}
	expectList(t, l, 1, 2, 3)

	expectCode(t, l.Insert(4, 9), coll.ErrIndexOutOfBounds)
	expectCode(t, l.Insert(-1, 9), coll.ErrIndexOutOfBounds)

	v, err := l.RemoveAt(1)
	if err != nil || v != 2 {
		t.Errorf("Expected RemoveAt(1) to return 2, got %d, %v", v, err)
	}
	expectList(t, l, 1, 3)

	_, err = l.RemoveAt(2)
	expectCode(t, err, coll.ErrIndexOutOfBounds)
}

func testListSearch(t *testing.T, l coll.List[int32]) {
	requireFeature(t, l, coll.FeatureInsert|coll.FeatureRemove)

	fill(t, l, 5, 1, 5, 2)

	if i := l.IndexOf(5); i != 0 {
		t.Errorf("Expected IndexOf(5) = 0, got %d", i)
	}
	if i := l.LastIndexOf(5); i != 2 {
		t.Errorf("Expected LastIndexOf(5) = 2, got %d", i)
	}
	if i := l.IndexOf(7); i != -1 {
		t.Errorf("Expected IndexOf(7) = -1, got %d", i)
	}
	if !l.Contains(2) || l.Contains(7) {
		t.Errorf("Contains returned wrong results for %v", l.ToSlice())
	}

	if ok, err := l.Remove(5); !ok || err != nil {
		t.Errorf("Expected Remove(5) to succeed, got %v, %v", ok, err)
	}
	expectList(t, l, 1, 5, 2)

	if ok, _ := l.Remove(7); ok {
		t.Errorf("Expected Remove(7) to report no change")
	}
}

func testListStack(t *testing.T, l coll.List[int32]) {
	requireFeature(t, l, coll.FeatureInsert|coll.FeatureRemove)

	_, err := l.Pop()
	expectCode(t, err, coll.ErrNoSuchElement)
	_, err = l.Top()
	expectCode(t, err, coll.ErrNoSuchElement)

	for v := int32(1); v <= 3; v++ {
		if err := l.Push(v); err != nil {
			t.Fatalf("Push(%d) failed: %v", v, err)
		}
	}

	if v, _ := l.Top(); v != 3 {
		t.Errorf("Expected Top() = 3, got %d", v)
	}
	if v, _ := l.Peek(0); v != 3 {
		t.Errorf("Expected Peek(0) = 3, got %d", v)
	}
	if v, _ := l.Peek(2); v != 1 {
		t.Errorf("Expected Peek(2) = 1, got %d", v)
	}
	_, err = l.Peek(3)
	expectCode(t, err, coll.ErrIndexOutOfBounds)

	for want := int32(3); want >= 1; want-- {
		v, err := l.Pop()
		if err != nil || v != want {
			t.Errorf("Expected Pop() = %d, got %d, %v", want, v, err)
		}
	}

	_, err = l.Pop()
	expectCode(t, err, coll.ErrNoSuchElement)
}

func testListIterator(t *testing.T, l coll.List[int32]) {
	requireFeature(t, l, coll.FeatureInsert|coll.FeatureRemove|coll.FeatureReplace)

	fill(t, l, 1, 2, 3)
	it := l.ListIterator()

	expectCode(t, it.Remove(), coll.ErrIllegalState)
	expectCode(t, it.Set(0), coll.ErrIllegalState)

	if _, err := it.Previous(); err == nil {
		t.Errorf("Expected Previous at the start to fail")
	}

	it.Next()
	it.Next()
	v, err := it.Previous()
	if err != nil || v != 2 {
		t.Fatalf("Expected Previous() = 2, got %d, %v", v, err)
	}

	// removing the element after the cursor must not move the cursor
	if err := it.Remove(); err != nil {
		t.Fatal(err)
	}
	expectList(t, l, 1, 3)
	expectCode(t, it.Remove(), coll.ErrIllegalState)

	v, _ = it.Next()
	if v != 3 {
		t.Errorf("Expected Next() = 3 after removal, got %d", v)
	}

	if err := it.Set(30); err != nil {
		t.Fatal(err)
	}
	expectList(t, l, 1, 30)

	if err := it.Add(5); err != nil {
		t.Fatal(err)
	}
	expectList(t, l, 1, 30, 5)
	expectCode(t, it.Set(0), coll.ErrIllegalState)

	if it.HasNext() {
		t.Errorf("Expected the iterator to be after the inserted element")
	}
	if it.NextIndex() != 3 || it.PreviousIndex() != 2 {
		t.Errorf("Expected indices 3/2, got %d/%d", it.NextIndex(), it.PreviousIndex())
	}
	v, _ = it.Previous()
	if v != 5 {
		t.Errorf("Expected Previous() = 5, got %d", v)
	}

	if _, err := l.ListIteratorAt(4); err == nil {
		t.Errorf("Expected ListIteratorAt beyond the size to fail")
	}
	it, err = l.ListIteratorAt(3)
	if err != nil || it.HasNext() {
		t.Errorf("Expected an iterator at the end, got %v", err)
	}
}

func testListIteratorRemove(t *testing.T, l coll.List[int32]) {
	requireFeature(t, l, coll.FeatureInsert|coll.FeatureRemove)

	fill(t, l, 1, 2, 3, 4, 5, 6)

	seen := 0
	it := l.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			t.Fatal(err)
		}
		seen++
		if v%2 == 0 {
			if err := it.Remove(); err != nil {
				t.Fatal(err)
			}
		}
	}

	if seen != 6 {
		t.Errorf("Expected to see 6 elements, saw %d", seen)
	}
	expectList(t, l, 1, 3, 5)

	_, err := it.Next()
	expectCode(t, err, coll.ErrNoSuchElement)
}

func testListSkipBack(t *testing.T, l coll.List[int32]) {
	requireFeature(t, l, coll.FeatureInsert)

	fill(t, l, 1, 2, 3, 4, 5)
	it := l.ListIterator()

	if n := it.Skip(2); n != 2 {
		t.Errorf("Expected Skip(2) = 2, got %d", n)
	}
	if v, _ := it.Next(); v != 3 {
		t.Errorf("Expected Next() = 3, got %d", v)
	}
	if n := it.Back(10); n != 3 {
		t.Errorf("Expected Back(10) = 3, got %d", n)
	}
	if v, _ := it.Next(); v != 1 {
		t.Errorf("Expected Next() = 1, got %d", v)
	}
	if n := it.Skip(10); n != 4 {
		t.Errorf("Expected Skip(10) = 4, got %d", n)
	}
}

func testListRanges(t *testing.T, l coll.List[int32]) {
	requireFeature(t, l, coll.FeatureInsert|coll.FeatureRemove)

	fill(t, l, 1, 2, 3, 4, 5)

	if err := l.InsertAll(2, []int32{7, 8}); err != nil {
		t.Fatal(err)
	}
	expectList(t, l, 1, 2, 7, 8, 3, 4, 5)

	if err := l.RemoveRange(1, 3); err != nil {
		t.Fatal(err)
	}
	expectList(t, l, 1, 8, 3, 4, 5)

	dst := make([]int32, 3)
	if err := l.GetRange(1, dst); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(dst, []int32{8, 3, 4}) {
		t.Errorf("Expected GetRange to copy [8 3 4], got %v", dst)
	}

	expectCode(t, l.GetRange(4, make([]int32, 2)), coll.ErrIndexOutOfBounds)
	expectCode(t, l.RemoveRange(3, 2), coll.ErrIndexOutOfBounds)
	expectCode(t, l.RemoveRange(0, 6), coll.ErrIndexOutOfBounds)
	expectCode(t, l.InsertAll(6, []int32{1}), coll.ErrIndexOutOfBounds)

	// empty ranges are no-ops
	if err := l.RemoveRange(2, 2); err != nil {
		t.Errorf("Expected an empty RemoveRange to succeed, got %v", err)
	}
	if err := l.InsertAll(0, nil); err != nil {
		t.Errorf("Expected an empty InsertAll to succeed, got %v", err)
	}
	expectList(t, l, 1, 8, 3, 4, 5)
}

func testListResize(t *testing.T, l coll.List[int32]) {
	requireFeature(t, l, coll.FeatureInsert|coll.FeatureRemove)

	fill(t, l, 1, 2, 3)

	if err := l.Resize(5); err != nil {
		t.Fatal(err)
	}
	expectList(t, l, 1, 2, 3, 0, 0)

	if err := l.Resize(1); err != nil {
		t.Fatal(err)
	}
	expectList(t, l, 1)

	expectCode(t, l.Resize(-1), coll.ErrIllegalArgument)
}

func testListClear(t *testing.T, l coll.List[int32]) {
	requireFeature(t, l, coll.FeatureInsert|coll.FeatureRemove)

	fill(t, l, 1, 2, 3)
	if err := l.Clear(); err != nil {
		t.Fatal(err)
	}
	if !l.IsEmpty() {
		t.Errorf("Expected the list to be empty after Clear, got %v", l.ToSlice())
	}

	fill(t, l, 4)
	expectList(t, l, 4)
}

func testListCompareEqual(t *testing.T, factory ListFactory) {
	a, b, c := factory(), factory(), factory()
	requireFeature(t, a, coll.FeatureInsert)

	fill(t, a, 1, 2, 3)
	fill(t, b, 1, 2, 3)
	fill(t, c, 1, 3)

	if !a.Equal(b) || a.Compare(b) != 0 {
		t.Errorf("Expected equal lists to be equal and compare as 0")
	}
	if a.Compare(c) >= 0 || c.Compare(a) <= 0 {
		t.Errorf("Expected [1 2 3] < [1 3]")
	}

	fill(t, b, 4)
	if a.Equal(b) {
		t.Errorf("Expected lists of different length to differ")
	}
	if a.Compare(b) >= 0 || b.Compare(a) <= 0 {
		t.Errorf("Expected a strict prefix to be smaller")
	}
}

// testSubList covers [10,20,30,40].subList(1,3).removeAt(0)
func testSubList(t *testing.T, l coll.List[int32]) {
	requireFeature(t, l, coll.FeatureInsert|coll.FeatureRemove)

	fill(t, l, 10, 20, 30, 40)

	view, err := l.SubList(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	expectList(t, view, 20, 30)

	v, err := view.RemoveAt(0)
	if err != nil || v != 20 {
		t.Fatalf("Expected RemoveAt(0) = 20, got %d, %v", v, err)
	}
	expectList(t, l, 10, 30, 40)
	expectList(t, view, 30)

	if _, err := view.Add(35); err != nil {
		t.Fatal(err)
	}
	expectList(t, l, 10, 30, 35, 40)
	expectList(t, view, 30, 35)
}

func testSubListBounds(t *testing.T, l coll.List[int32]) {
	requireFeature(t, l, coll.FeatureInsert)

	fill(t, l, 10, 20, 30, 40)

	_, err := l.SubList(3, 1)
	expectCode(t, err, coll.ErrIllegalArgument)
	_, err = l.SubList(0, 5)
	expectCode(t, err, coll.ErrIndexOutOfBounds)
	_, err = l.SubList(-1, 2)
	expectCode(t, err, coll.ErrIndexOutOfBounds)

	view, err := l.SubList(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	_, err = view.Get(2)
	expectCode(t, err, coll.ErrIndexOutOfBounds)
	expectCode(t, view.Insert(3, 0), coll.ErrIndexOutOfBounds)

	empty, err := l.SubList(2, 2)
	if err != nil || !empty.IsEmpty() {
		t.Errorf("Expected an empty view, got %v", err)
	}
}

// testSubListConsistency applies edits alternately through the parent and the
// view and checks that the view keeps translating into the parent.
func testSubListConsistency(t *testing.T, l coll.List[int32]) {
	requireFeature(t, l, coll.FeatureInsert|coll.FeatureRemove)

	for v := int32(0); v < 10; v++ {
		fill(t, l, v)
	}
	const from = 2
	view, err := l.SubList(from, 6)
	if err != nil {
		t.Fatal(err)
	}
	size := 4
	next := int32(100)

	for step := 0; step < 40; step++ {
		if step%2 == 0 {
			// through the view
			switch step / 2 % 5 {
			case 0:
				err = view.Insert(view.Len()/2, next)
				size++
			case 1:
				_, err = view.Add(next)
				size++
			case 2:
				if view.Len() > 0 {
					_, err = view.RemoveAt(0)
					size--
				}
			case 3:
				err = view.InsertAll(0, []int32{next, next + 1})
				size += 2
			case 4:
				if view.Len() >= 2 {
					err = view.RemoveRange(view.Len()-2, view.Len())
					size -= 2
				}
			}
		} else {
			// through the parent, outside of the window
			switch step / 2 % 3 {
			case 0:
				err = l.Insert(0, next)
			case 1:
				_, err = l.Add(next)
			case 2:
				if l.Len() > from+view.Len() {
					_, err = l.RemoveAt(l.Len() - 1)
				}
			}
		}
		if err != nil {
			t.Fatalf("Step %d failed: %v", step, err)
		}
		next += 2

		if view.Len() != size {
			t.Fatalf("Step %d: expected view size %d, got %d", step, size, view.Len())
		}
		for j := 0; j < view.Len(); j++ {
			a, err1 := view.Get(j)
			b, err2 := l.Get(from + j)
			if err1 != nil || err2 != nil || a != b {
				t.Fatalf("Step %d: view[%d] = %d, parent[%d] = %d (%v, %v)", step, j, a, from+j, b, err1, err2)
			}
		}
	}
}

func testNestedSubList(t *testing.T, l coll.List[int32]) {
	requireFeature(t, l, coll.FeatureInsert|coll.FeatureRemove)

	fill(t, l, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	outer, err := l.SubList(2, 8)
	if err != nil {
		t.Fatal(err)
	}
	inner, err := outer.SubList(1, 4)
	if err != nil {
		t.Fatal(err)
	}
	expectList(t, inner, 3, 4, 5)

	_, err = outer.SubList(0, 7)
	expectCode(t, err, coll.ErrIndexOutOfBounds)

	if _, err := inner.Add(99); err != nil {
		t.Fatal(err)
	}
	expectList(t, l, 0, 1, 2, 3, 4, 5, 99, 6, 7, 8, 9)
	expectList(t, outer, 2, 3, 4, 5, 99, 6, 7)
	expectList(t, inner, 3, 4, 5, 99)

	if _, err := inner.RemoveAt(0); err != nil {
		t.Fatal(err)
	}
	expectList(t, l, 0, 1, 2, 4, 5, 99, 6, 7, 8, 9)
	expectList(t, outer, 2, 4, 5, 99, 6, 7)
	expectList(t, inner, 4, 5, 99)

	if err := inner.Clear(); err != nil {
		t.Fatal(err)
	}
	expectList(t, l, 0, 1, 2, 6, 7, 8, 9)
	expectList(t, outer, 2, 6, 7)
	expectList(t, inner)
}

func testSubListIterator(t *testing.T, l coll.List[int32]) {
	requireFeature(t, l, coll.FeatureInsert|coll.FeatureRemove|coll.FeatureReplace)

	fill(t, l, 1, 2, 3, 4, 5)
	view, err := l.SubList(1, 4)
	if err != nil {
		t.Fatal(err)
	}

	it := view.ListIterator()
	if v, _ := it.Next(); v != 2 {
		t.Fatalf("Expected Next() = 2, got %d", v)
	}
	if err := it.Remove(); err != nil {
		t.Fatal(err)
	}
	expectList(t, l, 1, 3, 4, 5)
	expectList(t, view, 3, 4)

	it.Next()
	if err := it.Add(9); err != nil {
		t.Fatal(err)
	}
	expectList(t, l, 1, 3, 9, 4, 5)
	expectList(t, view, 3, 9, 4)

	if v, _ := it.Next(); v != 4 {
		t.Errorf("Expected Next() = 4, got %d", v)
	}
	if err := it.Set(40); err != nil {
		t.Fatal(err)
	}
	if it.HasNext() {
		t.Errorf("Expected the view iterator to stop at the end of the window")
	}
	expectList(t, l, 1, 3, 9, 40, 5)
}
