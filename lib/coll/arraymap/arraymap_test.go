package arraymap

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/ValentinKolb/dColl/lib/coll"
	"github.com/ValentinKolb/dColl/lib/coll/codec"
	colltesting "github.com/ValentinKolb/dColl/lib/coll/testing"
)

// TestByteToObjectScenario walks through the put/overwrite/remove life cycle of a single key
func TestByteToObjectScenario(t *testing.T) {
	m := New[int8, string]()
	if err := m.SetDefaultReturnValue("<none>"); err != nil {
		t.Fatal(err)
	}

	if m.Len() != 0 {
		t.Fatalf("new map should be empty, has %d entries", m.Len())
	}

	old, _ := m.Put(3, "x")
	if old != "<none>" {
		t.Errorf("Put of a new key should return the default value, got %q", old)
	}
	if m.Len() != 1 || m.Get(3) != "x" {
		t.Errorf("expected size 1 and get(3)=x, got size %d and %q", m.Len(), m.Get(3))
	}

	old, _ = m.Put(3, "y")
	if old != "x" {
		t.Errorf("overwrite should return the old value x, got %q", old)
	}
	if m.Len() != 1 || m.Get(3) != "y" {
		t.Errorf("expected size 1 and get(3)=y, got size %d and %q", m.Len(), m.Get(3))
	}

	removed, _ := m.Remove(3)
	if removed != "y" {
		t.Errorf("Remove should return y, got %q", removed)
	}
	if m.Len() != 0 {
		t.Errorf("map should be empty after remove, has %d entries", m.Len())
	}
	if m.Get(3) != "<none>" {
		t.Errorf("Get of a removed key should return the default value, got %q", m.Get(3))
	}
}

// TestShiftOnRemoval verifies that removing the entry at position i shifts every later entry down by one
func TestShiftOnRemoval(t *testing.T) {
	const n = 8
	for removePos := 0; removePos < n; removePos++ {
		m := New[int32, int64]()
		for i := 0; i < n; i++ {
			m.Put(int32(i*10), int64(i*100))
		}

		m.Remove(int32(removePos * 10))

		if m.Len() != n-1 {
			t.Fatalf("expected %d entries, got %d", n-1, m.Len())
		}
		for i := 0; i < n-1; i++ {
			src := i
			if i >= removePos {
				src = i + 1
			}
			if m.keys[i] != int32(src*10) || m.values[i] != int64(src*100) {
				t.Errorf("pos %d: expected (%d,%d), got (%d,%d)", i, src*10, src*100, m.keys[i], m.values[i])
			}
		}
	}
}

func TestRemoveClearsVacatedSlot(t *testing.T) {
	m := New[int16, *string]()
	a, b := "a", "b"
	m.Put(1, &a)
	m.Put(2, &b)

	m.Remove(1)

	if m.values[1] != nil {
		t.Errorf("vacated value slot should be cleared")
	}
	if *m.values[0] != "b" {
		t.Errorf("remaining value should have been shifted down")
	}
}

func TestRemoveAbsent(t *testing.T) {
	m := New[int32, string]()
	m.Put(1, "a")
	m.SetDefaultReturnValue("def")

	v, err := m.Remove(99)
	if err != nil || v != "def" {
		t.Errorf("Remove of an absent key should return the default value, got %q, %v", v, err)
	}
	if m.Len() != 1 {
		t.Errorf("Remove of an absent key must not change the map")
	}
}

func TestGrowth(t *testing.T) {
	m := New[uint8, int]()
	if m.Capacity() != 0 {
		t.Fatalf("new map should not preallocate, capacity %d", m.Capacity())
	}

	m.Put(1, 1)
	if m.Capacity() != 2 {
		t.Errorf("first growth should allocate 2 slots, got %d", m.Capacity())
	}
	m.Put(2, 2)
	m.Put(3, 3)
	if m.Capacity() != 4 {
		t.Errorf("second growth should double to 4, got %d", m.Capacity())
	}
	for i := 4; i <= 5; i++ {
		m.Put(uint8(i), i)
	}
	if m.Capacity() != 8 {
		t.Errorf("third growth should double to 8, got %d", m.Capacity())
	}

	// storage never shrinks automatically
	m.Clear()
	if m.Capacity() != 8 {
		t.Errorf("Clear should keep the storage, capacity %d", m.Capacity())
	}
}

func TestConstruction(t *testing.T) {
	if _, err := NewFrom([]int32{1, 2}, []string{"a"}); !errors.Is(err, coll.ErrIllegalArgument) {
		t.Errorf("mismatched buffers should fail with IllegalArgument, got %v", err)
	}
	if _, err := NewFromSized([]int32{1, 2}, []string{"a", "b"}, 3); !errors.Is(err, coll.ErrIllegalArgument) {
		t.Errorf("size above capacity should fail with IllegalArgument, got %v", err)
	}
	_, err := NewFromSized([]int32{1}, []string{"a"}, -1)
	if !errors.Is(err, coll.ErrIllegalArgument) || !strings.Contains(err.Error(), "non-negative") {
		t.Errorf("negative size should fail with IllegalArgument, got %v", err)
	}
	if _, err := NewWithCapacity[int32, string](-1); !errors.Is(err, coll.ErrIllegalArgument) {
		t.Errorf("negative capacity should fail with IllegalArgument, got %v", err)
	}

	m, err := NewFromSized([]int32{1, 2, 3}, []string{"a", "b", "c"}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if m.Len() != 2 || m.ContainsKey(3) {
		t.Errorf("only the first two entries should be visible, got %s", m)
	}

	m.Put(4, "d")
	if m.Capacity() != 3 || m.Get(4) != "d" {
		t.Errorf("Put should reuse the free slot of the backing buffers, got capacity %d", m.Capacity())
	}

	cp := NewFromMap[int32, string](m)
	cp.Put(1, "changed")
	if m.Get(1) != "a" {
		t.Errorf("NewFromMap must copy the entries")
	}
}

func TestFloatKeys(t *testing.T) {
	m := New[float64, string]()
	nan := math.NaN()

	m.Put(nan, "first")
	m.Put(nan, "second")
	if m.Len() != 1 {
		t.Errorf("NaN keys must stay unique, got %d entries", m.Len())
	}
	if m.Get(nan) != "second" {
		t.Errorf("expected the overwritten value, got %q", m.Get(nan))
	}
}

func TestContainsValueNullSafe(t *testing.T) {
	m := New[int32, *int]()
	m.Put(1, nil)

	if !m.ContainsValue(nil) {
		t.Error("nil values should be found")
	}
	x := 3
	if m.ContainsValue(&x) {
		t.Error("unexpected value found")
	}
}

// TestKeyIteratorRemove removes every second key through the iterator
func TestKeyIteratorRemove(t *testing.T) {
	m := New[int32, string]()
	for i := int32(0); i < 6; i++ {
		m.Put(i, "v")
	}

	it := m.KeySet().Iterator()
	var seen []int32
	for it.HasNext() {
		k, err := it.Next()
		if err != nil {
			t.Fatal(err)
		}
		seen = append(seen, k)
		if k%2 == 0 {
			if err := it.Remove(); err != nil {
				t.Fatal(err)
			}
		}
	}

	if len(seen) != 6 {
		t.Errorf("removal must not skip elements, saw %v", seen)
	}
	want := []int32{1, 3, 5}
	got := m.KeySet().ToSlice()
	if len(got) != len(want) {
		t.Fatalf("expected keys %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected keys %v, got %v", want, got)
		}
	}
}

func TestIteratorRemoveState(t *testing.T) {
	m := New[int32, string]()
	m.Put(1, "a")
	m.Put(2, "b")

	it := m.Values().Iterator()
	if err := it.Remove(); !errors.Is(err, coll.ErrIllegalState) {
		t.Errorf("Remove before Next should fail with IllegalState, got %v", err)
	}

	if _, err := it.Next(); err != nil {
		t.Fatal(err)
	}
	if err := it.Remove(); err != nil {
		t.Fatal(err)
	}
	if err := it.Remove(); !errors.Is(err, coll.ErrIllegalState) {
		t.Errorf("second Remove should fail with IllegalState, got %v", err)
	}

	v, err := it.Next()
	if err != nil || v != "b" {
		t.Errorf("expected b after removal, got %q, %v", v, err)
	}
	if _, err := it.Next(); !errors.Is(err, coll.ErrNoSuchElement) {
		t.Errorf("exhausted iterator should fail with NoSuchElement, got %v", err)
	}

	// a Skip that moves nowhere does not make Remove legal again
	m.Put(1, "a")
	keys := m.KeySet().Iterator()
	keys.Next()
	keys.Next()
	if err := keys.Remove(); err != nil {
		t.Fatal(err)
	}
	if n := keys.Skip(5); n != 0 {
		t.Errorf("expected Skip at the end to move 0, moved %d", n)
	}
	if err := keys.Remove(); !errors.Is(err, coll.ErrIllegalState) {
		t.Errorf("Remove after an empty Skip should fail with IllegalState, got %v", err)
	}
	if m.Len() != 1 {
		t.Errorf("expected 1 entry left, got %d", m.Len())
	}
}

func TestSkip(t *testing.T) {
	m := New[int32, string]()
	for i := int32(0); i < 5; i++ {
		m.Put(i, "v")
	}

	it := m.KeySet().Iterator()
	if n := it.Skip(3); n != 3 {
		t.Errorf("expected to skip 3, skipped %d", n)
	}
	k, _ := it.Next()
	if k != 3 {
		t.Errorf("expected key 3 after skipping, got %d", k)
	}
	if n := it.Skip(10); n != 1 {
		t.Errorf("expected to skip only the remaining element, skipped %d", n)
	}
	if it.HasNext() {
		t.Error("iterator should be exhausted")
	}

	// the last skipped element can be removed
	if err := it.Remove(); err != nil {
		t.Errorf("Remove after Skip should succeed, got %v", err)
	}
	if m.ContainsKey(4) {
		t.Error("key 4 should have been removed")
	}
}

func TestFastIteratorReusesEntry(t *testing.T) {
	m := New[int32, string]()
	m.Put(1, "a")
	m.Put(2, "b")

	fast := m.FastIterator()
	if fast.Kind() != coll.ReusedEntryView {
		t.Errorf("fast iterator should report ReusedEntryView, got %s", fast.Kind())
	}
	e1, _ := fast.Next()
	k1 := e1.Key()
	e2, _ := fast.Next()
	if e1 != e2 {
		t.Error("fast iterator should return the same entry instance")
	}
	if k1 != 1 || e2.Key() != 2 {
		t.Errorf("unexpected keys %d, %d", k1, e2.Key())
	}

	// write through
	if old, err := e2.SetValue("B"); err != nil || old != "b" {
		t.Errorf("SetValue should return the old value, got %q, %v", old, err)
	}
	if m.Get(2) != "B" {
		t.Errorf("SetValue should write through, got %q", m.Get(2))
	}

	stable := m.Iterator()
	if stable.Kind() != coll.StableEntries {
		t.Errorf("default iterator should report StableEntries, got %s", stable.Kind())
	}
	s1, _ := stable.Next()
	s2, _ := stable.Next()
	if s1 == s2 || s1.Key() != 1 || s2.Key() != 2 {
		t.Error("stable iterator should return independent entries")
	}
	if _, err := s1.SetValue("x"); !errors.Is(err, coll.ErrUnsupportedOperation) {
		t.Errorf("snapshot entries should not support SetValue, got %v", err)
	}
}

func TestFastIteratorRemove(t *testing.T) {
	m := New[int32, string]()
	for i := int32(0); i < 4; i++ {
		m.Put(i, "v")
	}

	it := m.FastIterator()
	for it.HasNext() {
		e, _ := it.Next()
		if e.Key() < 2 {
			if err := it.Remove(); err != nil {
				t.Fatal(err)
			}
		}
	}
	if m.Len() != 2 || !m.ContainsKey(2) || !m.ContainsKey(3) {
		t.Errorf("expected keys 2 and 3 to remain, got %s", m)
	}
}

func TestViews(t *testing.T) {
	m := New[int32, string]()
	m.Put(1, "a")
	m.Put(2, "b")
	m.Put(3, "a")

	keys := m.KeySet()
	values := m.Values()
	entries := m.EntrySet()

	if _, err := keys.Add(4); !errors.Is(err, coll.ErrUnsupportedOperation) {
		t.Errorf("Add on a key set should be unsupported, got %v", err)
	}

	if ok, _ := values.Remove("a"); !ok {
		t.Error("values.Remove should remove the first matching entry")
	}
	if m.ContainsKey(1) || !m.ContainsKey(3) {
		t.Errorf("the first entry with value a should be removed, got %s", m)
	}

	if !entries.Contains(coll.NewEntry[int32, string](2, "b")) {
		t.Error("entry set should contain 2=>b")
	}
	if entries.Contains(coll.NewEntry[int32, string](2, "x")) {
		t.Error("entry set should not contain 2=>x")
	}
	if ok, _ := entries.Remove(coll.NewEntry[int32, string](2, "b")); !ok {
		t.Error("entry removal should succeed")
	}

	// views are live
	m.Put(9, "z")
	if keys.Len() != 2 || !keys.Contains(9) || !values.Contains("z") {
		t.Errorf("views should reflect later changes, keys=%v", keys.ToSlice())
	}

	if err := entries.Clear(); err != nil || !m.IsEmpty() {
		t.Errorf("Clear through a view should empty the map")
	}
}

// TestSaveLoadRoundTrip checks the persisted form keeps the insertion order
func TestSaveLoadRoundTrip(t *testing.T) {
	m := New[int32, string]()
	m.Put(1, "a")
	m.Put(5, "b")
	m.Put(2, "c")

	var buf bytes.Buffer
	if err := m.Save(&buf, codec.NewBinaryCodec[int32](), codec.NewStringCodec()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Read(&buf, codec.NewBinaryCodec[int32](), codec.NewStringCodec())
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if loaded.Capacity() != 3 {
		t.Errorf("loaded storage should have exactly the persisted size, got %d", loaded.Capacity())
	}
	if loaded.String() != "{1=>a, 5=>b, 2=>c}" {
		t.Errorf("iteration order not preserved: %s", loaded)
	}
	if !loaded.Equal(m) {
		t.Error("loaded map should equal the original")
	}
}

// TestConsecutiveForms reads two maps saved back to back into one stream
func TestConsecutiveForms(t *testing.T) {
	kc, vc := codec.NewBinaryCodec[int32](), codec.NewStringCodec()
	a := New[int32, string]()
	a.Put(1, "a")
	b := New[int32, string]()
	b.Put(2, "b")
	b.Put(3, "c")

	var buf bytes.Buffer
	if err := a.Save(&buf, kc, vc); err != nil {
		t.Fatal(err)
	}
	if err := b.Save(&buf, kc, vc); err != nil {
		t.Fatal(err)
	}

	r := bytes.NewReader(buf.Bytes())
	first, err := Read(r, kc, vc)
	if err != nil {
		t.Fatalf("first Read failed: %v", err)
	}
	second, err := Read(r, kc, vc)
	if err != nil {
		t.Fatalf("second Read failed: %v", err)
	}
	if !first.Equal(a) || !second.Equal(b) {
		t.Errorf("expected %s and %s, got %s and %s", a, b, first, second)
	}
	if r.Len() != 0 {
		t.Errorf("%d bytes left after reading both maps", r.Len())
	}
}

// TestReadCorruptCount checks that a huge count fails on the missing entries
func TestReadCorruptCount(t *testing.T) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, uint64(1)<<62); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(&buf, codec.NewBinaryCodec[int32](), codec.NewStringCodec()); err == nil {
		t.Error("expected an error for a count larger than the input")
	}
}

func TestCloneAndEqual(t *testing.T) {
	m := New[int64, string]()
	m.Put(1, "a")
	m.Put(2, "b")

	c := m.Clone()
	if !c.Equal(m) || !m.Equal(c) {
		t.Error("clone should equal the original")
	}

	c.Put(3, "c")
	if m.ContainsKey(3) || m.Equal(c) {
		t.Error("clone must be independent")
	}

	// equality ignores order
	other := New[int64, string]()
	other.Put(2, "b")
	other.Put(1, "a")
	if !m.Equal(other) {
		t.Error("maps with the same entries in a different order should be equal")
	}
}

func TestArrayMapConformance(t *testing.T) {
	colltesting.RunMapTests(t, "ArrayMap", func() coll.Map[int32, string] {
		return New[int32, string]()
	})
}

func BenchmarkArrayMap(b *testing.B) {
	colltesting.RunMapBenchmarks(b, "ArrayMap", func() coll.Map[int32, string] {
		return New[int32, string]()
	}, 64)
}
