package testing

import (
	"errors"
	"slices"
	"testing"

	"github.com/ValentinKolb/dColl/lib/coll"
)

// ListFactory creates a new, empty list
type ListFactory func() coll.List[int32]

// MapFactory creates a new, empty map
type MapFactory func() coll.Map[int32, string]

// SortedMapFactory creates a new, empty sorted map with natural ordering
type SortedMapFactory func() coll.SortedMap[int32, string]

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// Checks if the list supports the specified feature
// Skip the test if it is not supported
func requireFeature(t testing.TB, l coll.List[int32], feature coll.Feature) {
	if !l.SupportsFeature(feature) {
		t.Skip()
	}
}

// fill appends vs and fails the test on the first error
func fill(t testing.TB, l coll.List[int32], vs ...int32) {
	t.Helper()
	for _, v := range vs {
		if _, err := l.Add(v); err != nil {
			t.Fatalf("Add(%d) failed: %v", v, err)
		}
	}
}

func expectList(t testing.TB, l coll.List[int32], want ...int32) {
	t.Helper()
	if got := l.ToSlice(); !slices.Equal(got, want) || l.Len() != len(want) {
		t.Errorf("Expected %v (size %d), got %v (size %d)", want, len(want), got, l.Len())
	}
}

func expectCode(t testing.TB, err error, target *coll.Error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("Expected %s error, got %v", target.Code, err)
	}
}
