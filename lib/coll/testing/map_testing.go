package testing

import (
	"testing"

	"github.com/ValentinKolb/dColl/lib/coll"
)

// RunMapTests runs a comprehensive test suite for a coll.Map implementation.
// The factory must return empty maps. The suite does not depend on iteration order.
func RunMapTests(t *testing.T, name string, factory MapFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Put&Get", func(t *testing.T) {
			testMapPutGet(t, factory())
		})

		t.Run("Remove", func(t *testing.T) {
			testMapRemove(t, factory())
		})

		t.Run("DefaultReturnValue", func(t *testing.T) {
			testMapDefaultReturnValue(t, factory())
		})

		t.Run("ContainsValue", func(t *testing.T) {
			testMapContainsValue(t, factory())
		})

		t.Run("KeySet", func(t *testing.T) {
			testMapKeySet(t, factory())
		})

		t.Run("Values", func(t *testing.T) {
			testMapValues(t, factory())
		})

		t.Run("EntrySet", func(t *testing.T) {
			testMapEntrySet(t, factory())
		})

		t.Run("IteratorRemove", func(t *testing.T) {
			testMapIteratorRemove(t, factory())
		})

		t.Run("All", func(t *testing.T) {
			testMapAll(t, factory())
		})

		t.Run("Clear", func(t *testing.T) {
			testMapClear(t, factory())
		})

		t.Run("Equality", func(t *testing.T) {
			testMapEquality(t, factory)
		})

		t.Run("RealisticUsage", func(t *testing.T) {
			testMapRealisticUsage(t, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

func put(t testing.TB, m coll.Map[int32, string], k int32, v string) {
	t.Helper()
	if _, err := m.Put(k, v); err != nil {
		t.Fatalf("Put(%d, %q) failed: %v", k, v, err)
	}
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testMapPutGet(t *testing.T, m coll.Map[int32, string]) {
	if !m.IsEmpty() || m.Len() != 0 {
		t.Fatalf("Expected a new map to be empty, has %d entries", m.Len())
	}

	old, err := m.Put(3, "x")
	if err != nil || old != m.DefaultReturnValue() {
		t.Errorf("Expected Put of a new key to return the default value, got %q, %v", old, err)
	}
	if m.Len() != 1 || m.Get(3) != "x" {
		t.Errorf("Expected size 1 and Get(3) = x, got size %d and %q", m.Len(), m.Get(3))
	}

	old, err = m.Put(3, "y")
	if err != nil || old != "x" {
		t.Errorf("Expected overwrite to return x, got %q, %v", old, err)
	}
	if m.Len() != 1 || m.Get(3) != "y" {
		t.Errorf("Expected size 1 and Get(3) = y, got size %d and %q", m.Len(), m.Get(3))
	}

	if v, ok := m.Lookup(3); !ok || v != "y" {
		t.Errorf("Expected Lookup(3) = y, true, got %q, %v", v, ok)
	}
	if _, ok := m.Lookup(4); ok {
		t.Errorf("Expected Lookup of an absent key to report false")
	}
	if !m.ContainsKey(3) || m.ContainsKey(4) {
		t.Errorf("ContainsKey returned wrong results")
	}
}

func testMapRemove(t *testing.T, m coll.Map[int32, string]) {
	for k := int32(0); k < 10; k++ {
		put(t, m, k, string(rune('a'+k)))
	}

	v, err := m.Remove(4)
	if err != nil || v != "e" {
		t.Errorf("Expected Remove(4) = e, got %q, %v", v, err)
	}
	if m.Len() != 9 || m.ContainsKey(4) {
		t.Errorf("Expected key 4 to be removed, size %d", m.Len())
	}

	v, err = m.Remove(4)
	if err != nil || v != m.DefaultReturnValue() {
		t.Errorf("Expected Remove of an absent key to return the default value, got %q, %v", v, err)
	}
	if m.Len() != 9 {
		t.Errorf("Remove of an absent key must not change the size")
	}

	for k := int32(0); k < 10; k++ {
		if k == 4 {
			continue
		}
		if got := m.Get(k); got != string(rune('a'+k)) {
			t.Errorf("Expected Get(%d) = %c, got %q", k, 'a'+k, got)
		}
	}
}

func testMapDefaultReturnValue(t *testing.T, m coll.Map[int32, string]) {
	if err := m.SetDefaultReturnValue("<none>"); err != nil {
		t.Fatal(err)
	}
	if m.DefaultReturnValue() != "<none>" {
		t.Errorf("Expected the default value to be <none>, got %q", m.DefaultReturnValue())
	}
	if m.Get(1) != "<none>" {
		t.Errorf("Expected Get of an absent key to return the default value, got %q", m.Get(1))
	}

	// a stored value equal to the default is indistinguishable through Get
	put(t, m, 1, "<none>")
	if m.Get(1) != "<none>" {
		t.Errorf("Expected the stored value")
	}
	if _, ok := m.Lookup(1); !ok {
		t.Errorf("Expected Lookup to tell a stored value from absence")
	}
}

func testMapContainsValue(t *testing.T, m coll.Map[int32, string]) {
	put(t, m, 1, "a")
	put(t, m, 2, "b")

	if !m.ContainsValue("a") || !m.ContainsValue("b") || m.ContainsValue("c") {
		t.Errorf("ContainsValue returned wrong results")
	}
}

func testMapKeySet(t *testing.T, m coll.Map[int32, string]) {
	put(t, m, 1, "a")
	put(t, m, 2, "b")
	keys := m.KeySet()

	if keys.Len() != 2 || !keys.Contains(1) || !keys.Contains(2) || keys.Contains(3) {
		t.Errorf("Key set does not match the map: %v", keys.ToSlice())
	}

	_, err := keys.Add(3)
	expectCode(t, err, coll.ErrUnsupportedOperation)

	// views are live in both directions
	put(t, m, 3, "c")
	if !keys.Contains(3) || keys.Len() != 3 {
		t.Errorf("Expected the key set to reflect Put")
	}
	if ok, err := keys.Remove(1); !ok || err != nil {
		t.Errorf("Expected key set removal to succeed, got %v, %v", ok, err)
	}
	if m.ContainsKey(1) || m.Len() != 2 {
		t.Errorf("Expected key set removal to propagate to the map")
	}
	if ok, _ := keys.Remove(1); ok {
		t.Errorf("Expected removal of an absent key to report no change")
	}
}

func testMapValues(t *testing.T, m coll.Map[int32, string]) {
	put(t, m, 1, "a")
	put(t, m, 2, "b")
	put(t, m, 3, "a")
	values := m.Values()

	if values.Len() != 3 || !values.Contains("a") || values.Contains("z") {
		t.Errorf("Values do not match the map: %v", values.ToSlice())
	}

	_, err := values.Add("z")
	expectCode(t, err, coll.ErrUnsupportedOperation)

	if ok, err := values.Remove("a"); !ok || err != nil {
		t.Errorf("Expected value removal to succeed, got %v, %v", ok, err)
	}
	if m.Len() != 2 || !m.ContainsValue("a") {
		t.Errorf("Expected exactly one entry with value a to be removed")
	}
}

func testMapEntrySet(t *testing.T, m coll.Map[int32, string]) {
	put(t, m, 1, "a")
	put(t, m, 2, "b")
	entries := m.EntrySet()

	if entries.Len() != 2 {
		t.Errorf("Expected 2 entries, got %d", entries.Len())
	}
	if !entries.Contains(coll.NewEntry[int32, string](1, "a")) {
		t.Errorf("Expected the entry set to contain 1=>a")
	}
	if entries.Contains(coll.NewEntry[int32, string](1, "b")) {
		t.Errorf("Expected the entry set not to contain 1=>b")
	}

	if ok, _ := entries.Remove(coll.NewEntry[int32, string](2, "x")); ok {
		t.Errorf("Expected removal of a mismatching entry to report no change")
	}
	if ok, err := entries.Remove(coll.NewEntry[int32, string](2, "b")); !ok || err != nil {
		t.Errorf("Expected entry removal to succeed, got %v, %v", ok, err)
	}
	if m.ContainsKey(2) {
		t.Errorf("Expected entry removal to propagate to the map")
	}

	count := 0
	for e := range entries.All() {
		if e.Key() != 1 || e.Value() != "a" {
			t.Errorf("Unexpected entry %v=>%v", e.Key(), e.Value())
		}
		count++
	}
	if count != 1 {
		t.Errorf("Expected 1 entry, iterated %d", count)
	}
}

func testMapIteratorRemove(t *testing.T, m coll.Map[int32, string]) {
	for k := int32(0); k < 8; k++ {
		put(t, m, k, "v")
	}

	it := m.Iterator()
	if it.Kind() != coll.StableEntries {
		t.Errorf("Expected Iterator() to hand out stable entries, got %s", it.Kind())
	}
	expectCode(t, it.Remove(), coll.ErrIllegalState)

	seen := 0
	var entries []coll.Entry[int32, string]
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			t.Fatal(err)
		}
		entries = append(entries, e)
		seen++
		if e.Key()%2 == 1 {
			if err := it.Remove(); err != nil {
				t.Fatal(err)
			}
		}
	}

	if seen != 8 {
		t.Errorf("Expected to see 8 entries, saw %d", seen)
	}
	if m.Len() != 4 {
		t.Errorf("Expected 4 remaining entries, got %d", m.Len())
	}
	for k := range m.All() {
		if k%2 == 1 {
			t.Errorf("Expected odd key %d to be removed", k)
		}
	}

	// stable entries keep their content
	keys := map[int32]bool{}
	for _, e := range entries {
		keys[e.Key()] = true
	}
	if len(keys) != 8 {
		t.Errorf("Expected 8 distinct retained entries, got %d", len(keys))
	}

	_, err := it.Next()
	expectCode(t, err, coll.ErrNoSuchElement)
}

func testMapAll(t *testing.T, m coll.Map[int32, string]) {
	for k := int32(0); k < 5; k++ {
		put(t, m, k, "v")
	}

	n := 0
	for range m.All() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("Expected All to stop after break, got %d", n)
	}
}

func testMapClear(t *testing.T, m coll.Map[int32, string]) {
	put(t, m, 1, "a")
	put(t, m, 2, "b")
	keys := m.KeySet()

	if err := m.Clear(); err != nil {
		t.Fatal(err)
	}
	if !m.IsEmpty() || !keys.IsEmpty() {
		t.Errorf("Expected the map and its views to be empty after Clear")
	}

	put(t, m, 3, "c")
	if m.Len() != 1 || m.Get(3) != "c" {
		t.Errorf("Expected the map to be usable after Clear")
	}
}

func testMapEquality(t *testing.T, factory MapFactory) {
	a, b := factory(), factory()
	put(t, a, 1, "a")
	put(t, a, 2, "b")
	put(t, b, 2, "b")
	put(t, b, 1, "a")

	if !coll.MapsEqual(a, b) {
		t.Errorf("Expected maps with equal entries to be equal")
	}
	put(t, b, 1, "x")
	if coll.MapsEqual(a, b) {
		t.Errorf("Expected maps with different values to differ")
	}
}

func testMapRealisticUsage(t *testing.T, m coll.Map[int32, string]) {
	reference := map[int32]string{}

	for i := int32(0); i < 200; i++ {
		k := (i * 37) % 61
		switch i % 3 {
		case 0, 1:
			v := string(rune('a' + i%26))
			put(t, m, k, v)
			reference[k] = v
		case 2:
			m.Remove(k)
			delete(reference, k)
		}
	}

	if m.Len() != len(reference) {
		t.Fatalf("Expected %d entries, got %d", len(reference), m.Len())
	}
	for k, v := range reference {
		if got, ok := m.Lookup(k); !ok || got != v {
			t.Errorf("Expected %d => %q, got %q, %v", k, v, got, ok)
		}
	}
}
